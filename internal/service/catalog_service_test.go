package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/cerealshop/storefront/internal/cache"
	"github.com/cerealshop/storefront/internal/models"

	"github.com/go-redis/redismock/v9"
)

func TestCatalogListEchoesEffectiveFilters(t *testing.T) {
	env := newServiceTestEnv(t)
	svc := NewCatalogService(env.cerealRepo, 0)
	env.createCereal(t, "Golden Honey Crunch", "8.99", "Honey", true)
	env.createCereal(t, "Honey Loops", "4.50", "Honey", false)
	env.createCereal(t, "Cocoa Puffs", "5.25", "Chocolate", false)

	page, err := svc.List(context.Background(), CatalogListInput{
		Page:      0,
		Flavor:    " Honey ",
		MinPrice:  "4.5",
		Sort:      "unknown",
		Direction: "sideways",
	})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if page.Page != 1 || page.PageSize != 12 {
		t.Fatalf("page want 1/12 got %d/%d", page.Page, page.PageSize)
	}
	if page.Total != 2 || len(page.Cereals) != 2 {
		t.Fatalf("total want 2 got %d (%d rows)", page.Total, len(page.Cereals))
	}
	if page.Cereals[0].Name != "Golden Honey Crunch" {
		t.Fatalf("fallback sort should be name asc, got %s first", page.Cereals[0].Name)
	}
	want := CatalogFilters{Flavor: "Honey", MinPrice: "4.50", Sort: "name", Direction: "asc"}
	if page.Filters != want {
		t.Fatalf("filters want %#v got %#v", want, page.Filters)
	}
	if len(page.Flavors) != 2 || page.Flavors[0] != "Chocolate" || page.Flavors[1] != "Honey" {
		t.Fatalf("unexpected flavors: %v", page.Flavors)
	}
	if page.TotalPages != 1 {
		t.Fatalf("total pages want 1 got %d", page.TotalPages)
	}
}

func TestCatalogListRejectsMalformedPrice(t *testing.T) {
	env := newServiceTestEnv(t)
	svc := NewCatalogService(env.cerealRepo, 0)

	cases := []struct {
		input CatalogListInput
		field string
	}{
		{input: CatalogListInput{MinPrice: "cheap"}, field: "min_price"},
		{input: CatalogListInput{MaxPrice: "-1"}, field: "max_price"},
	}
	for _, tc := range cases {
		_, err := svc.List(context.Background(), tc.input)
		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("want validation error for %s, got %v", tc.field, err)
		}
		if _, ok := verr.Fields[tc.field]; !ok {
			t.Fatalf("field %s missing from %v", tc.field, verr.Fields)
		}
		if !errors.Is(err, ErrValidation) {
			t.Fatalf("validation error should unwrap to ErrValidation")
		}
	}
}

func TestCatalogPaginationTwentyFiveEntries(t *testing.T) {
	env := newServiceTestEnv(t)
	svc := NewCatalogService(env.cerealRepo, 0)
	for i := 0; i < 25; i++ {
		env.createCereal(t, fmt.Sprintf("Cereal %02d", i), "3.00", "Original", false)
	}
	page, err := svc.List(context.Background(), CatalogListInput{Page: 3})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if page.TotalPages != 3 || len(page.Cereals) != 1 {
		t.Fatalf("want 3 pages with 1 entry on page 3, got %d pages and %d entries", page.TotalPages, len(page.Cereals))
	}
}

func TestCatalogGetMissing(t *testing.T) {
	env := newServiceTestEnv(t)
	svc := NewCatalogService(env.cerealRepo, 0)
	if _, err := svc.Get(context.Background(), 999); !errors.Is(err, ErrCerealNotFound) {
		t.Fatalf("want ErrCerealNotFound got %v", err)
	}
	cereal := env.createCereal(t, "Berry Burst Granola", "10.99", "Mixed Berry", true)
	got, err := svc.Get(context.Background(), cereal.ID)
	if err != nil || got == nil || got.Name != "Berry Burst Granola" {
		t.Fatalf("get failed: %v %#v", err, got)
	}
}

func TestCatalogFeaturedLimits(t *testing.T) {
	env := newServiceTestEnv(t)
	svc := NewCatalogService(env.cerealRepo, 0)
	for i := 0; i < 14; i++ {
		env.createCereal(t, fmt.Sprintf("Featured %02d", i), "6.00", "Honey", true)
	}
	env.createCereal(t, "Plain", "2.00", "", false)

	cases := []struct {
		limit int
		want  int
	}{
		{limit: 0, want: 3},
		{limit: 5, want: 5},
		{limit: 50, want: 12},
	}
	for _, tc := range cases {
		got, err := svc.Featured(context.Background(), tc.limit)
		if err != nil {
			t.Fatalf("featured(%d) failed: %v", tc.limit, err)
		}
		if len(got) != tc.want {
			t.Fatalf("featured(%d) want %d got %d", tc.limit, tc.want, len(got))
		}
		for _, c := range got {
			if !c.IsFeatured {
				t.Fatalf("non featured cereal returned: %s", c.Name)
			}
		}
	}
}

func TestCatalogFeaturedServedFromCache(t *testing.T) {
	env := newServiceTestEnv(t)
	client, mock := redismock.NewClientMock()
	cache.SetClient(client, "test")
	t.Cleanup(func() {
		cache.SetClient(nil, "")
	})
	svc := NewCatalogService(env.cerealRepo, time.Minute)

	cached := []models.Cereal{{ID: 42, Name: "From Cache", Price: models.MustMoney("7.77"), IsFeatured: true}}
	body, err := json.Marshal(cached)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	mock.ExpectGet(cache.BuildKey(cache.FeaturedKey(3))).SetVal(string(body))

	got, err := svc.Featured(context.Background(), 3)
	if err != nil {
		t.Fatalf("featured failed: %v", err)
	}
	if len(got) != 1 || got[0].Name != "From Cache" {
		t.Fatalf("expected cached result, got %#v", got)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("redis expectations: %v", err)
	}
}

func TestCatalogFeaturedFallsBackWhenCacheFails(t *testing.T) {
	env := newServiceTestEnv(t)
	client, mock := redismock.NewClientMock()
	cache.SetClient(client, "test")
	t.Cleanup(func() {
		cache.SetClient(nil, "")
	})
	svc := NewCatalogService(env.cerealRepo, time.Minute)
	env.createCereal(t, "Golden Honey Crunch", "8.99", "Honey", true)

	mock.ExpectGet(cache.BuildKey(cache.FeaturedKey(3))).SetErr(errors.New("connection refused"))
	got, err := svc.Featured(context.Background(), 3)
	if err != nil {
		t.Fatalf("cache failure should not surface: %v", err)
	}
	if len(got) != 1 || got[0].Name != "Golden Honey Crunch" {
		t.Fatalf("expected database result, got %#v", got)
	}
}
