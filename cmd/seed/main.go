package main

import (
	"context"
	"fmt"

	"github.com/cerealshop/storefront/internal/config"
	"github.com/cerealshop/storefront/internal/logger"
	"github.com/cerealshop/storefront/internal/models"
	"github.com/cerealshop/storefront/internal/repository"

	"github.com/shopspring/decimal"
)

const (
	defaultImageURL   = "https://images.unsplash.com/photo-1567306226416-28f0efdc88ce?w=400&h=400&fit=crop"
	regularCerealSize = 12
)

var regularFlavors = []string{"Chocolate", "Vanilla", "Strawberry", "Honey", "Cinnamon", "Fruit", "Original"}

var regularHealthBenefits = []models.StringArray{
	{"High Fiber", "Low Sugar"},
	{"Whole Grains", "Vitamin D"},
	{"Protein Rich", "Iron Fortified"},
	{"Gluten Free", "Organic"},
	{"Heart Healthy", "Antioxidants"},
}

var regularNames = []string{
	"Crispy Morning Crunch",
	"Golden Honey Loops",
	"Chocolate Dream Flakes",
	"Berry Burst Clusters",
	"Vanilla Almond Squares",
	"Cinnamon Swirl Rings",
	"Fruity Rainbow Puffs",
	"Nutty Granola Bites",
	"Strawberry Fields Flakes",
	"Maple Oat Crisps",
	"Original Bran Sticks",
	"Cocoa Puffed Rice",
}

var defaultRecipes = models.RecipeList{
	{Name: "Breakfast Parfait", Description: "Layer cereal with yogurt and fresh berries"},
	{Name: "Cereal Bars", Description: "Mix with honey and press into bars for a portable snack"},
}

func main() {
	// 连接数据库
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()
	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
		MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
	}, cfg.Database.Debug); err != nil {
		stdLog.Fatalf("Failed to connect database: %v", err)
	}

	// 自动迁移
	if err := models.AutoMigrate(); err != nil {
		stdLog.Fatalf("Failed to migrate database: %v", err)
	}

	repo := repository.NewCerealRepository(models.DB)
	ctx := context.Background()
	cereals := append(featuredCereals(), regularCereals()...)

	created := 0
	for i := range cereals {
		cereal := cereals[i]
		var count int64
		if err := models.DB.Model(&models.Cereal{}).Where("name = ?", cereal.Name).Count(&count).Error; err != nil {
			stdLog.Printf("Failed to check cereal %s: %v", cereal.Name, err)
			continue
		}
		if count > 0 {
			stdLog.Printf("Cereal already exists: %s", cereal.Name)
			continue
		}
		if err := repo.Create(ctx, &cereal); err != nil {
			stdLog.Printf("Failed to create cereal %s: %v", cereal.Name, err)
			continue
		}
		created++
		stdLog.Printf("Created cereal: %s (%s)", cereal.Name, cereal.Price.String())
	}

	fmt.Printf("Seed completed: %d created, %d total\n", created, len(cereals))
}

// featuredCereals 首页展示的三款精选麦片
func featuredCereals() []models.Cereal {
	return []models.Cereal{
		{
			Name:           "Golden Honey Crunch",
			Description:    "Start your morning with the perfect blend of crispy whole grain clusters and natural honey sweetness. Each bite delivers a satisfying crunch with wholesome nutrition.",
			Price:          models.MustMoney("8.99"),
			Flavor:         strPtr("Honey"),
			HealthBenefits: models.StringArray{"High Fiber", "Whole Grains", "Natural Sweeteners"},
			Ingredients:    models.StringArray{"Whole grain oats", "Honey", "Brown rice", "Almonds", "Natural vanilla", "Sea salt", "Vitamin D"},
			Recipes:        defaultRecipes,
			ImageURL:       strPtr("https://images.unsplash.com/photo-1544787219-7f47ccb76574?w=400&h=400&fit=crop"),
			IsFeatured:     true,
			StockQuantity:  50,
		},
		{
			Name:           "Chocolate Dream Clusters",
			Description:    "Indulge in rich chocolate flavor while getting essential nutrients. Made with real cocoa and fortified with vitamins for a guilt-free breakfast treat.",
			Price:          models.MustMoney("9.49"),
			Flavor:         strPtr("Chocolate"),
			HealthBenefits: models.StringArray{"Antioxidants", "Iron Fortified", "Protein Rich"},
			Ingredients:    models.StringArray{"Whole grain wheat", "Cocoa powder", "Sugar", "Rice flour", "Natural chocolate flavor", "Iron", "B vitamins"},
			Recipes:        defaultRecipes,
			ImageURL:       strPtr("https://images.unsplash.com/photo-1578662996442-48f60103fc96?w=400&h=400&fit=crop"),
			IsFeatured:     true,
			StockQuantity:  50,
		},
		{
			Name:           "Berry Burst Granola",
			Description:    "A delightful mix of crunchy granola clusters with real dried berries. Packed with fiber and natural fruit flavors for a nutritious start to your day.",
			Price:          models.MustMoney("10.99"),
			Flavor:         strPtr("Mixed Berry"),
			HealthBenefits: models.StringArray{"High Fiber", "Antioxidants", "Organic"},
			Ingredients:    models.StringArray{"Organic oats", "Dried strawberries", "Dried blueberries", "Maple syrup", "Sunflower seeds", "Coconut flakes"},
			Recipes:        defaultRecipes,
			ImageURL:       strPtr("https://images.unsplash.com/photo-1571741140674-5c2d5fc0de99?w=400&h=400&fit=crop"),
			IsFeatured:     true,
			StockQuantity:  50,
		},
	}
}

// regularCereals 常规商品，价格在 3.99 ~ 12.99 之间按序分布
func regularCereals() []models.Cereal {
	minPrice := decimal.RequireFromString("3.99")
	step := decimal.RequireFromString("0.75")

	cereals := make([]models.Cereal, 0, regularCerealSize)
	for i := 0; i < regularCerealSize; i++ {
		name := regularNames[i%len(regularNames)]
		price := minPrice.Add(step.Mul(decimal.NewFromInt(int64(i))))
		cereals = append(cereals, models.Cereal{
			Name:           name,
			Description:    fmt.Sprintf("%s is a wholesome breakfast cereal made with whole grains and a touch of natural flavor.", name),
			Price:          models.NewMoneyFromDecimal(price),
			Flavor:         strPtr(regularFlavors[i%len(regularFlavors)]),
			HealthBenefits: regularHealthBenefits[i%len(regularHealthBenefits)],
			Ingredients:    models.StringArray{"Whole grain oats", "Sugar", "Salt", "Natural flavoring", "Vitamins and minerals"},
			Recipes:        defaultRecipes,
			ImageURL:       strPtr(defaultImageURL),
			StockQuantity:  (i * 9) % 101,
		})
	}
	return cereals
}

func strPtr(value string) *string {
	return &value
}
