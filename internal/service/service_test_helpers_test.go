package service

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/cerealshop/storefront/internal/models"
	"github.com/cerealshop/storefront/internal/repository"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type serviceTestEnv struct {
	db         *gorm.DB
	cerealRepo *repository.GormCerealRepository
	cartRepo   *repository.GormCartRepository
}

func newServiceTestEnv(t *testing.T) *serviceTestEnv {
	t.Helper()
	name := strings.ReplaceAll(uuid.NewString(), "-", "")
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_pragma=foreign_keys(1)", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("get sql db failed: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})
	if err := models.Migrate(db); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}
	return &serviceTestEnv{
		db:         db,
		cerealRepo: repository.NewCerealRepository(db),
		cartRepo:   repository.NewCartRepository(db),
	}
}

func (e *serviceTestEnv) createCereal(t *testing.T, name, price, flavor string, featured bool) *models.Cereal {
	t.Helper()
	cereal := &models.Cereal{
		Name:        name,
		Description: name,
		Price:       models.MustMoney(price),
		Ingredients: models.StringArray{"Oats"},
		IsFeatured:  featured,
	}
	if flavor != "" {
		f := flavor
		cereal.Flavor = &f
	}
	if err := e.cerealRepo.Create(context.Background(), cereal); err != nil {
		t.Fatalf("create cereal failed: %v", err)
	}
	return cereal
}

func (e *serviceTestEnv) countLines(t *testing.T, sessionID models.SessionID) int64 {
	t.Helper()
	var count int64
	if err := e.db.Model(&models.CartItem{}).Where("session_id = ?", sessionID).Count(&count).Error; err != nil {
		t.Fatalf("count cart lines failed: %v", err)
	}
	return count
}
