package service

import (
	"context"

	"github.com/cerealshop/storefront/internal/logger"
	"github.com/cerealshop/storefront/internal/models"
	"github.com/cerealshop/storefront/internal/repository"
)

// CartLine 购物车行（用于响应）
type CartLine struct {
	ID        uint           `json:"id"`
	CerealID  uint           `json:"cereal_id"`
	Quantity  int            `json:"quantity"`
	UnitPrice models.Money   `json:"unit_price"`
	LineTotal models.Money   `json:"line_total"`
	Cereal    *models.Cereal `json:"cereal"`
}

// CartView 购物车页面数据
type CartView struct {
	Items     []CartLine   `json:"items"`
	Subtotal  models.Money `json:"subtotal"`
	ItemCount int          `json:"item_count"`
}

// AddCartItemInput 加入购物车输入
type AddCartItemInput struct {
	SessionID models.SessionID `json:"session_id" validate:"required"`
	CerealID  uint             `json:"cereal_id" validate:"required"`
	Quantity  int              `json:"quantity" validate:"gte=1,lte=10"`
}

type updateCartItemInput struct {
	SessionID models.SessionID `json:"session_id" validate:"required"`
	ItemID    uint             `json:"id" validate:"required"`
	Quantity  int              `json:"quantity" validate:"gte=1,lte=10"`
}

// CartService 购物车服务，所有操作以会话为租户边界
type CartService struct {
	cartRepo   repository.CartRepository
	cerealRepo repository.CerealRepository
}

// NewCartService 创建购物车服务
func NewCartService(cartRepo repository.CartRepository, cerealRepo repository.CerealRepository) *CartService {
	return &CartService{
		cartRepo:   cartRepo,
		cerealRepo: cerealRepo,
	}
}

// AddItem 加入购物车；已存在同一麦片时数量累加，累加结果不再截断
func (s *CartService) AddItem(ctx context.Context, input AddCartItemInput) error {
	if err := validateStruct(input); err != nil {
		return err
	}
	cereal, err := s.cerealRepo.GetByID(ctx, input.CerealID)
	if err != nil {
		return err
	}
	if cereal == nil {
		return ErrCerealNotFound
	}
	if err := s.cartRepo.AddOrIncrement(ctx, input.SessionID, cereal.ID, input.Quantity); err != nil {
		return err
	}
	logger.Infow("cart_item_added",
		"session_id", input.SessionID,
		"cereal_id", cereal.ID,
		"quantity", input.Quantity,
	)
	return nil
}

// UpdateQuantity 修改购物车项数量
func (s *CartService) UpdateQuantity(ctx context.Context, sessionID models.SessionID, itemID uint, quantity int) error {
	if err := validateStruct(updateCartItemInput{SessionID: sessionID, ItemID: itemID, Quantity: quantity}); err != nil {
		return err
	}
	affected, err := s.cartRepo.UpdateQuantityForSession(ctx, sessionID, itemID, quantity)
	if err != nil {
		return err
	}
	if affected == 0 {
		return s.resolveMissingItem(ctx, itemID)
	}
	logger.Infow("cart_item_updated",
		"session_id", sessionID,
		"item_id", itemID,
		"quantity", quantity,
	)
	return nil
}

// RemoveItem 删除购物车项
func (s *CartService) RemoveItem(ctx context.Context, sessionID models.SessionID, itemID uint) error {
	if sessionID == "" {
		return newValidationError("session_id", "required")
	}
	affected, err := s.cartRepo.DeleteForSession(ctx, sessionID, itemID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return s.resolveMissingItem(ctx, itemID)
	}
	logger.Infow("cart_item_removed",
		"session_id", sessionID,
		"item_id", itemID,
	)
	return nil
}

// resolveMissingItem 区分行不存在与归属其他会话
func (s *CartService) resolveMissingItem(ctx context.Context, itemID uint) error {
	item, err := s.cartRepo.GetByID(ctx, itemID)
	if err != nil {
		return err
	}
	if item == nil {
		return ErrCartItemNotFound
	}
	return ErrCartItemForbidden
}

// ListForSession 会话购物车项（含麦片信息）
func (s *CartService) ListForSession(ctx context.Context, sessionID models.SessionID) ([]models.CartItem, error) {
	if sessionID == "" {
		return []models.CartItem{}, nil
	}
	return s.cartRepo.ListBySession(ctx, sessionID)
}

// ClearSession 清空会话购物车，空购物车也视为成功
func (s *CartService) ClearSession(ctx context.Context, sessionID models.SessionID) error {
	if sessionID == "" {
		return nil
	}
	_, err := s.cartRepo.ClearBySession(ctx, sessionID)
	return err
}

// Subtotal 会话购物车小计
func (s *CartService) Subtotal(ctx context.Context, sessionID models.SessionID) (models.Money, error) {
	items, err := s.ListForSession(ctx, sessionID)
	if err != nil {
		return models.ZeroMoney(), err
	}
	return sumLines(items), nil
}

// View 购物车页面：明细、小计、件数
func (s *CartService) View(ctx context.Context, sessionID models.SessionID) (*CartView, error) {
	items, err := s.ListForSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return buildCartView(items), nil
}

func buildCartView(items []models.CartItem) *CartView {
	view := &CartView{
		Items:    make([]CartLine, 0, len(items)),
		Subtotal: sumLines(items),
	}
	for i := range items {
		item := &items[i]
		unitPrice := models.ZeroMoney()
		if item.Cereal != nil {
			unitPrice = item.Cereal.Price
		}
		view.Items = append(view.Items, CartLine{
			ID:        item.ID,
			CerealID:  item.CerealID,
			Quantity:  item.Quantity,
			UnitPrice: unitPrice,
			LineTotal: item.LineTotal(),
			Cereal:    item.Cereal,
		})
		view.ItemCount += item.Quantity
	}
	return view
}

func sumLines(items []models.CartItem) models.Money {
	total := models.ZeroMoney()
	for i := range items {
		total = total.Add(items[i].LineTotal())
	}
	return total
}
