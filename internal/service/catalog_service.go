package service

import (
	"context"
	"strings"
	"time"

	"github.com/cerealshop/storefront/internal/cache"
	"github.com/cerealshop/storefront/internal/constants"
	"github.com/cerealshop/storefront/internal/logger"
	"github.com/cerealshop/storefront/internal/models"
	"github.com/cerealshop/storefront/internal/repository"

	"github.com/shopspring/decimal"
)

// CatalogListInput 目录查询输入（原始查询参数）
type CatalogListInput struct {
	Page      int
	Flavor    string
	MinPrice  string
	MaxPrice  string
	Sort      string
	Direction string
}

// CatalogFilters 实际生效的筛选条件，回显给前端
type CatalogFilters struct {
	Flavor    string `json:"flavor"`
	MinPrice  string `json:"min_price"`
	MaxPrice  string `json:"max_price"`
	Sort      string `json:"sort"`
	Direction string `json:"direction"`
}

// CatalogPage 目录分页结果
type CatalogPage struct {
	Cereals    []models.Cereal
	Total      int64
	Page       int
	PageSize   int
	TotalPages int64
	Flavors    []string
	Filters    CatalogFilters
}

// CatalogService 商品目录服务
type CatalogService struct {
	cerealRepo  repository.CerealRepository
	featuredTTL time.Duration
}

// NewCatalogService 创建目录服务
func NewCatalogService(cerealRepo repository.CerealRepository, featuredTTL time.Duration) *CatalogService {
	return &CatalogService{
		cerealRepo:  cerealRepo,
		featuredTTL: featuredTTL,
	}
}

// List 按口味、价格区间筛选，排序并分页
func (s *CatalogService) List(ctx context.Context, input CatalogListInput) (*CatalogPage, error) {
	minPrice, err := parsePriceBound("min_price", input.MinPrice)
	if err != nil {
		return nil, err
	}
	maxPrice, err := parsePriceBound("max_price", input.MaxPrice)
	if err != nil {
		return nil, err
	}

	page := input.Page
	if page < 1 {
		page = 1
	}
	filter := repository.CerealListFilter{
		Page:          page,
		PageSize:      constants.CatalogPageSize,
		Flavor:        strings.TrimSpace(input.Flavor),
		MinPrice:      minPrice,
		MaxPrice:      maxPrice,
		SortField:     repository.NormalizeSortField(input.Sort),
		SortDirection: repository.NormalizeSortDirection(input.Direction),
	}

	cereals, total, err := s.cerealRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	flavors, err := s.cerealRepo.DistinctFlavors(ctx)
	if err != nil {
		return nil, err
	}
	if cereals == nil {
		cereals = []models.Cereal{}
	}
	if flavors == nil {
		flavors = []string{}
	}

	return &CatalogPage{
		Cereals:    cereals,
		Total:      total,
		Page:       page,
		PageSize:   filter.PageSize,
		TotalPages: repository.TotalPages(total, filter.PageSize),
		Flavors:    flavors,
		Filters: CatalogFilters{
			Flavor:    filter.Flavor,
			MinPrice:  formatPriceBound(minPrice),
			MaxPrice:  formatPriceBound(maxPrice),
			Sort:      filter.SortField,
			Direction: filter.SortDirection,
		},
	}, nil
}

// DistinctFlavors 当前目录的口味列表
func (s *CatalogService) DistinctFlavors(ctx context.Context) ([]string, error) {
	return s.cerealRepo.DistinctFlavors(ctx)
}

// Get 获取麦片详情
func (s *CatalogService) Get(ctx context.Context, id uint) (*models.Cereal, error) {
	if id == 0 {
		return nil, ErrCerealNotFound
	}
	cereal, err := s.cerealRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if cereal == nil {
		return nil, ErrCerealNotFound
	}
	return cereal, nil
}

// Featured 精选麦片，启用 Redis 时读写缓存
func (s *CatalogService) Featured(ctx context.Context, limit int) ([]models.Cereal, error) {
	limit = normalizeFeaturedLimit(limit)

	if s.featuredTTL > 0 {
		cached, hit, err := cache.GetFeatured(ctx, limit)
		if err != nil {
			logger.Warnw("catalog_featured_cache_get_failed", "limit", limit, "error", err)
		} else if hit {
			return cached, nil
		}
	}

	cereals, err := s.cerealRepo.ListFeatured(ctx, limit)
	if err != nil {
		return nil, err
	}
	if cereals == nil {
		cereals = []models.Cereal{}
	}
	if err := cache.SetFeatured(ctx, limit, cereals, s.featuredTTL); err != nil {
		logger.Warnw("catalog_featured_cache_set_failed", "limit", limit, "error", err)
	}
	return cereals, nil
}

func normalizeFeaturedLimit(limit int) int {
	if limit <= 0 {
		return constants.FeaturedDefaultLimit
	}
	if limit > constants.FeaturedMaxLimit {
		return constants.FeaturedMaxLimit
	}
	return limit
}

// parsePriceBound 空值不限制；非数字或负数视为校验失败
func parsePriceBound(field, raw string) (*decimal.Decimal, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil, nil
	}
	value, err := decimal.NewFromString(trimmed)
	if err != nil {
		return nil, newValidationError(field, "numeric")
	}
	if value.IsNegative() {
		return nil, newValidationError(field, "min")
	}
	return &value, nil
}

func formatPriceBound(value *decimal.Decimal) string {
	if value == nil {
		return ""
	}
	return value.StringFixed(2)
}
