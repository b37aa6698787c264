package repository

import (
	"context"
	"sync"
	"testing"

	"github.com/cerealshop/storefront/internal/models"
)

func TestCartAddOrIncrementMergesSamePair(t *testing.T) {
	db := setupRepositoryTestDB(t)
	cereals := NewCerealRepository(db)
	repo := NewCartRepository(db)
	ctx := context.Background()
	cereal := createTestCereal(t, cereals, "Golden Honey Crunch", "8.99", "Honey", true)
	session := models.SessionID("session-a")

	if err := repo.AddOrIncrement(ctx, session, cereal.ID, 3); err != nil {
		t.Fatalf("first add failed: %v", err)
	}
	if err := repo.AddOrIncrement(ctx, session, cereal.ID, 9); err != nil {
		t.Fatalf("second add failed: %v", err)
	}

	items, err := repo.ListBySession(ctx, session)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("merge should keep one line, got %d", len(items))
	}
	if items[0].Quantity != 12 {
		t.Fatalf("merged quantity want 12 got %d", items[0].Quantity)
	}
	if items[0].Cereal == nil || items[0].Cereal.Name != "Golden Honey Crunch" {
		t.Fatalf("cereal should be preloaded")
	}
}

func TestCartAddOrIncrementConcurrentKeepsSingleLine(t *testing.T) {
	db := setupRepositoryTestDB(t)
	cereals := NewCerealRepository(db)
	repo := NewCartRepository(db)
	ctx := context.Background()
	cereal := createTestCereal(t, cereals, "Berry Burst Granola", "10.99", "Mixed Berry", true)
	session := models.SessionID("session-race")

	const workers = 8
	var wg sync.WaitGroup
	errCh := make(chan error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errCh <- repo.AddOrIncrement(ctx, session, cereal.ID, 1)
		}()
	}
	wg.Wait()
	close(errCh)
	for err := range errCh {
		if err != nil {
			t.Fatalf("concurrent add failed: %v", err)
		}
	}

	var count int64
	if err := db.Model(&models.CartItem{}).Where("session_id = ? AND cereal_id = ?", session, cereal.ID).Count(&count).Error; err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 1 {
		t.Fatalf("want exactly one line, got %d", count)
	}
	items, err := repo.ListBySession(ctx, session)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if items[0].Quantity != workers {
		t.Fatalf("quantity want %d got %d", workers, items[0].Quantity)
	}
}

func TestCartSessionScopedMutations(t *testing.T) {
	db := setupRepositoryTestDB(t)
	cereals := NewCerealRepository(db)
	repo := NewCartRepository(db)
	ctx := context.Background()
	cereal := createTestCereal(t, cereals, "Chocolate Dream Clusters", "9.49", "Chocolate", true)
	owner := models.SessionID("owner")
	other := models.SessionID("other")

	if err := repo.AddOrIncrement(ctx, owner, cereal.ID, 2); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	items, err := repo.ListBySession(ctx, owner)
	if err != nil || len(items) != 1 {
		t.Fatalf("list owner failed: %v len=%d", err, len(items))
	}
	itemID := items[0].ID

	affected, err := repo.UpdateQuantityForSession(ctx, other, itemID, 5)
	if err != nil {
		t.Fatalf("update other failed: %v", err)
	}
	if affected != 0 {
		t.Fatalf("other session must not update, affected=%d", affected)
	}
	affected, err = repo.DeleteForSession(ctx, other, itemID)
	if err != nil {
		t.Fatalf("delete other failed: %v", err)
	}
	if affected != 0 {
		t.Fatalf("other session must not delete, affected=%d", affected)
	}

	affected, err = repo.UpdateQuantityForSession(ctx, owner, itemID, 7)
	if err != nil || affected != 1 {
		t.Fatalf("update owner failed: %v affected=%d", err, affected)
	}
	got, err := repo.GetByID(ctx, itemID)
	if err != nil || got == nil {
		t.Fatalf("get item failed: %v", err)
	}
	if got.Quantity != 7 {
		t.Fatalf("quantity want 7 got %d", got.Quantity)
	}

	affected, err = repo.DeleteForSession(ctx, owner, itemID)
	if err != nil || affected != 1 {
		t.Fatalf("delete owner failed: %v affected=%d", err, affected)
	}
	got, err = repo.GetByID(ctx, itemID)
	if err != nil {
		t.Fatalf("get deleted item failed: %v", err)
	}
	if got != nil {
		t.Fatalf("deleted item should be gone")
	}
}

func TestCartClearBySessionLeavesOtherSessions(t *testing.T) {
	db := setupRepositoryTestDB(t)
	cereals := NewCerealRepository(db)
	repo := NewCartRepository(db)
	ctx := context.Background()
	first := createTestCereal(t, cereals, "A", "3.00", "Fruit", false)
	second := createTestCereal(t, cereals, "B", "4.00", "Fruit", false)

	_ = repo.AddOrIncrement(ctx, "s1", first.ID, 1)
	_ = repo.AddOrIncrement(ctx, "s1", second.ID, 2)
	_ = repo.AddOrIncrement(ctx, "s2", first.ID, 3)

	removed, err := repo.ClearBySession(ctx, "s1")
	if err != nil {
		t.Fatalf("clear failed: %v", err)
	}
	if removed != 2 {
		t.Fatalf("removed want 2 got %d", removed)
	}
	removed, err = repo.ClearBySession(ctx, "s1")
	if err != nil || removed != 0 {
		t.Fatalf("clearing empty cart should be a no-op: %v removed=%d", err, removed)
	}

	left, err := repo.ListBySession(ctx, "s2")
	if err != nil {
		t.Fatalf("list s2 failed: %v", err)
	}
	if len(left) != 1 || left[0].Quantity != 3 {
		t.Fatalf("other session cart changed: %#v", left)
	}
}

func TestCartItemsCascadeWithCereal(t *testing.T) {
	db := setupRepositoryTestDB(t)
	cereals := NewCerealRepository(db)
	repo := NewCartRepository(db)
	ctx := context.Background()
	cereal := createTestCereal(t, cereals, "Discontinued", "5.55", "Original", false)

	if err := repo.AddOrIncrement(ctx, "s1", cereal.ID, 1); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if err := cereals.Delete(ctx, cereal.ID); err != nil {
		t.Fatalf("delete cereal failed: %v", err)
	}
	items, err := repo.ListBySession(ctx, "s1")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("cart lines should cascade with cereal, got %d", len(items))
	}
}

func TestCartTransactionRollsBack(t *testing.T) {
	db := setupRepositoryTestDB(t)
	cereals := NewCerealRepository(db)
	repo := NewCartRepository(db)
	ctx := context.Background()
	cereal := createTestCereal(t, cereals, "A", "3.00", "Fruit", false)
	_ = repo.AddOrIncrement(ctx, "s1", cereal.ID, 1)

	errStop := context.Canceled
	err := repo.Transaction(ctx, func(tx CartRepository) error {
		if _, err := tx.ClearBySession(ctx, "s1"); err != nil {
			return err
		}
		return errStop
	})
	if err != errStop {
		t.Fatalf("transaction error want %v got %v", errStop, err)
	}
	items, err := repo.ListBySession(ctx, "s1")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("rollback should keep the line, got %d", len(items))
	}
}
