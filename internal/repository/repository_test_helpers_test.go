package repository

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/cerealshop/storefront/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

func setupRepositoryTestDB(t *testing.T) *gorm.DB {
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
	return db
}

func createTestCereal(t *testing.T, repo *GormCerealRepository, name, price, flavor string, featured bool) *models.Cereal {
	t.Helper()
	cereal := &models.Cereal{
		Name:        name,
		Description: name + " description",
		Price:       models.MustMoney(price),
		Ingredients: models.StringArray{"Whole grain oats", "Sugar"},
		IsFeatured:  featured,
	}
	if flavor != "" {
		f := flavor
		cereal.Flavor = &f
	}
	if err := repo.Create(context.Background(), cereal); err != nil {
		t.Fatalf("create cereal failed: %v", err)
	}
	return cereal
}
