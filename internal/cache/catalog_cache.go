package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/cerealshop/storefront/internal/constants"
	"github.com/cerealshop/storefront/internal/models"
)

// FeaturedKey 精选麦片缓存键
func FeaturedKey(limit int) string {
	return fmt.Sprintf("%s:%d", constants.FeaturedCacheKeyPrefix, limit)
}

// GetFeatured 读取精选麦片缓存
func GetFeatured(ctx context.Context, limit int) ([]models.Cereal, bool, error) {
	var cereals []models.Cereal
	hit, err := GetJSON(ctx, FeaturedKey(limit), &cereals)
	if err != nil || !hit {
		return nil, false, err
	}
	return cereals, true, nil
}

// SetFeatured 写入精选麦片缓存，ttl <= 0 时不缓存
func SetFeatured(ctx context.Context, limit int, cereals []models.Cereal, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	return SetJSON(ctx, FeaturedKey(limit), cereals, ttl)
}
