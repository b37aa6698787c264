package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/cerealshop/storefront/internal/constants"
	"github.com/cerealshop/storefront/internal/models"

	"gorm.io/gorm"
)

// CerealRepository 麦片数据访问接口
type CerealRepository interface {
	List(ctx context.Context, filter CerealListFilter) ([]models.Cereal, int64, error)
	DistinctFlavors(ctx context.Context) ([]string, error)
	GetByID(ctx context.Context, id uint) (*models.Cereal, error)
	ListFeatured(ctx context.Context, limit int) ([]models.Cereal, error)
	Create(ctx context.Context, cereal *models.Cereal) error
	Delete(ctx context.Context, id uint) error
}

// GormCerealRepository GORM 实现
type GormCerealRepository struct {
	db *gorm.DB
}

// NewCerealRepository 创建麦片仓库
func NewCerealRepository(db *gorm.DB) *GormCerealRepository {
	return &GormCerealRepository{db: db}
}

// WithTx 绑定事务
func (r *GormCerealRepository) WithTx(tx *gorm.DB) *GormCerealRepository {
	if tx == nil {
		return r
	}
	return &GormCerealRepository{db: tx}
}

// List 麦片列表（过滤 + 排序 + 分页）
func (r *GormCerealRepository) List(ctx context.Context, filter CerealListFilter) ([]models.Cereal, int64, error) {
	var cereals []models.Cereal

	query := r.db.WithContext(ctx).Model(&models.Cereal{})
	if flavor := strings.TrimSpace(filter.Flavor); flavor != "" {
		query = query.Where("flavor = ?", flavor)
	}
	if filter.MinPrice != nil {
		query = query.Where("price >= ?", filter.MinPrice.Round(2).String())
	}
	if filter.MaxPrice != nil {
		query = query.Where("price <= ?", filter.MaxPrice.Round(2).String())
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = applyPagination(query, filter.Page, filter.PageSize)

	if err := query.Order(buildCerealOrder(filter.SortField, filter.SortDirection)).Find(&cereals).Error; err != nil {
		return nil, 0, err
	}
	return cereals, total, nil
}

// buildCerealOrder 只允许白名单字段，id 升序兜底保证结果稳定
func buildCerealOrder(field, direction string) string {
	column := NormalizeSortField(field)
	dir := NormalizeSortDirection(direction)
	return fmt.Sprintf("%s %s, id ASC", column, strings.ToUpper(dir))
}

// NormalizeSortField 非法排序字段回退为 name
func NormalizeSortField(field string) string {
	switch strings.ToLower(strings.TrimSpace(field)) {
	case constants.SortFieldPrice:
		return constants.SortFieldPrice
	case constants.SortFieldFlavor:
		return constants.SortFieldFlavor
	default:
		return constants.SortFieldName
	}
}

// NormalizeSortDirection 非法排序方向回退为 asc
func NormalizeSortDirection(direction string) string {
	if strings.EqualFold(strings.TrimSpace(direction), constants.SortDirectionDesc) {
		return constants.SortDirectionDesc
	}
	return constants.SortDirectionAsc
}

// DistinctFlavors 当前目录中出现过的口味（去重、排序、排除空值）
func (r *GormCerealRepository) DistinctFlavors(ctx context.Context) ([]string, error) {
	var flavors []string
	err := r.db.WithContext(ctx).Model(&models.Cereal{}).
		Where("flavor IS NOT NULL AND flavor <> ''").
		Distinct("flavor").
		Order("flavor ASC").
		Pluck("flavor", &flavors).Error
	if err != nil {
		return nil, err
	}
	return flavors, nil
}

// GetByID 根据 ID 获取麦片
func (r *GormCerealRepository) GetByID(ctx context.Context, id uint) (*models.Cereal, error) {
	var cereal models.Cereal
	if err := r.db.WithContext(ctx).First(&cereal, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &cereal, nil
}

// ListFeatured 获取精选麦片
func (r *GormCerealRepository) ListFeatured(ctx context.Context, limit int) ([]models.Cereal, error) {
	var cereals []models.Cereal
	query := r.db.WithContext(ctx).Where("is_featured = ?", true).Order("id ASC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&cereals).Error; err != nil {
		return nil, err
	}
	return cereals, nil
}

// Create 创建麦片
func (r *GormCerealRepository) Create(ctx context.Context, cereal *models.Cereal) error {
	return r.db.WithContext(ctx).Create(cereal).Error
}

// Delete 删除麦片，关联购物车项由外键级联删除
func (r *GormCerealRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Cereal{}, id).Error
}
