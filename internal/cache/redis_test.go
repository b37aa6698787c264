package cache

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/cerealshop/storefront/internal/models"

	"github.com/go-redis/redismock/v9"
)

func setupMockRedis(t *testing.T) redismock.ClientMock {
	t.Helper()
	client, mock := redismock.NewClientMock()
	SetClient(client, "test")
	t.Cleanup(func() {
		SetClient(nil, "")
	})
	return mock
}

func TestBuildKeyUsesPrefix(t *testing.T) {
	setupMockRedis(t)
	if got := BuildKey("catalog:featured:3"); got != "test:catalog:featured:3" {
		t.Fatalf("key want test:catalog:featured:3 got %s", got)
	}
	if got := BuildKey("  "); got != "test" {
		t.Fatalf("blank key want prefix got %s", got)
	}
}

func TestDisabledCacheIsNoop(t *testing.T) {
	SetClient(nil, "")
	var dest []models.Cereal
	hit, err := GetJSON(context.Background(), "anything", &dest)
	if err != nil || hit {
		t.Fatalf("disabled cache should miss silently, hit=%v err=%v", hit, err)
	}
	if err := SetJSON(context.Background(), "anything", dest, time.Minute); err != nil {
		t.Fatalf("disabled set should be a no-op: %v", err)
	}
}

func TestGetFeaturedMissAndHit(t *testing.T) {
	mock := setupMockRedis(t)
	ctx := context.Background()
	key := BuildKey(FeaturedKey(3))

	mock.ExpectGet(key).RedisNil()
	cereals, hit, err := GetFeatured(ctx, 3)
	if err != nil {
		t.Fatalf("miss should not fail: %v", err)
	}
	if hit || cereals != nil {
		t.Fatalf("expected cache miss")
	}

	flavor := "Honey"
	stored := []models.Cereal{{ID: 1, Name: "Golden Honey Crunch", Price: models.MustMoney("8.99"), Flavor: &flavor, IsFeatured: true}}
	body, err := json.Marshal(stored)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	mock.ExpectGet(key).SetVal(string(body))
	cereals, hit, err = GetFeatured(ctx, 3)
	if err != nil || !hit {
		t.Fatalf("expected cache hit, hit=%v err=%v", hit, err)
	}
	if len(cereals) != 1 || cereals[0].Name != "Golden Honey Crunch" {
		t.Fatalf("unexpected cached cereals: %#v", cereals)
	}
	if cereals[0].Price.String() != "8.99" {
		t.Fatalf("price want 8.99 got %s", cereals[0].Price.String())
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("redis expectations: %v", err)
	}
}

func TestSetFeaturedWritesWithTTL(t *testing.T) {
	mock := setupMockRedis(t)
	ctx := context.Background()
	cereals := []models.Cereal{{ID: 2, Name: "Berry Burst Granola", Price: models.MustMoney("10.99")}}
	body, err := json.Marshal(cereals)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	mock.ExpectSet(BuildKey(FeaturedKey(3)), body, 5*time.Minute).SetVal("OK")
	if err := SetFeatured(ctx, 3, cereals, 5*time.Minute); err != nil {
		t.Fatalf("set featured failed: %v", err)
	}
	if err := SetFeatured(ctx, 3, cereals, 0); err != nil {
		t.Fatalf("zero ttl should skip: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("redis expectations: %v", err)
	}
}

func TestDelRemovesKey(t *testing.T) {
	mock := setupMockRedis(t)
	mock.ExpectDel(BuildKey("catalog:featured:3")).SetVal(1)
	if err := Del(context.Background(), "catalog:featured:3"); err != nil {
		t.Fatalf("del failed: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("redis expectations: %v", err)
	}
}
