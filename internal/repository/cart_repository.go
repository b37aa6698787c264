package repository

import (
	"context"
	"errors"
	"time"

	"github.com/cerealshop/storefront/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CartRepository 购物车数据访问接口
type CartRepository interface {
	ListBySession(ctx context.Context, sessionID models.SessionID) ([]models.CartItem, error)
	GetByID(ctx context.Context, id uint) (*models.CartItem, error)
	AddOrIncrement(ctx context.Context, sessionID models.SessionID, cerealID uint, quantity int) error
	UpdateQuantityForSession(ctx context.Context, sessionID models.SessionID, id uint, quantity int) (int64, error)
	DeleteForSession(ctx context.Context, sessionID models.SessionID, id uint) (int64, error)
	ClearBySession(ctx context.Context, sessionID models.SessionID) (int64, error)
	Transaction(ctx context.Context, fn func(repo CartRepository) error) error
}

// GormCartRepository GORM 实现
type GormCartRepository struct {
	db *gorm.DB
}

// NewCartRepository 创建购物车仓库
func NewCartRepository(db *gorm.DB) *GormCartRepository {
	return &GormCartRepository{db: db}
}

// WithTx 绑定事务
func (r *GormCartRepository) WithTx(tx *gorm.DB) *GormCartRepository {
	if tx == nil {
		return r
	}
	return &GormCartRepository{db: tx}
}

// Transaction 在同一事务内执行多个购物车操作
func (r *GormCartRepository) Transaction(ctx context.Context, fn func(repo CartRepository) error) error {
	if fn == nil {
		return nil
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(r.WithTx(tx))
	})
}

// ListBySession 获取会话购物车项（按插入顺序）
func (r *GormCartRepository) ListBySession(ctx context.Context, sessionID models.SessionID) ([]models.CartItem, error) {
	var items []models.CartItem
	if err := r.db.WithContext(ctx).Preload("Cereal").Where("session_id = ?", sessionID).Order("id asc").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// GetByID 根据 ID 获取购物车项
func (r *GormCartRepository) GetByID(ctx context.Context, id uint) (*models.CartItem, error) {
	var item models.CartItem
	if err := r.db.WithContext(ctx).First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

// AddOrIncrement 单条 upsert：不存在则创建，存在则数量累加
// 依赖 (session_id, cereal_id) 唯一索引，并发添加同一商品不会产生重复行
func (r *GormCartRepository) AddOrIncrement(ctx context.Context, sessionID models.SessionID, cerealID uint, quantity int) error {
	now := time.Now()
	item := &models.CartItem{
		SessionID: sessionID,
		CerealID:  cerealID,
		Quantity:  quantity,
		CreatedAt: now,
		UpdatedAt: now,
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "session_id"}, {Name: "cereal_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"quantity":   gorm.Expr("cart_items.quantity + excluded.quantity"),
			"updated_at": gorm.Expr("excluded.updated_at"),
		}),
	}).Create(item).Error
}

// UpdateQuantityForSession 仅更新属于该会话的购物车项，返回受影响行数
func (r *GormCartRepository) UpdateQuantityForSession(ctx context.Context, sessionID models.SessionID, id uint, quantity int) (int64, error) {
	result := r.db.WithContext(ctx).Model(&models.CartItem{}).
		Where("id = ? AND session_id = ?", id, sessionID).
		Updates(map[string]interface{}{
			"quantity":   quantity,
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

// DeleteForSession 仅删除属于该会话的购物车项，返回受影响行数
func (r *GormCartRepository) DeleteForSession(ctx context.Context, sessionID models.SessionID, id uint) (int64, error) {
	result := r.db.WithContext(ctx).Where("id = ? AND session_id = ?", id, sessionID).Delete(&models.CartItem{})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

// ClearBySession 清空会话购物车
func (r *GormCartRepository) ClearBySession(ctx context.Context, sessionID models.SessionID) (int64, error) {
	result := r.db.WithContext(ctx).Where("session_id = ?", sessionID).Delete(&models.CartItem{})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}
