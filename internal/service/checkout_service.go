package service

import (
	"context"
	"strings"
	"time"

	"github.com/cerealshop/storefront/internal/constants"
	"github.com/cerealshop/storefront/internal/logger"
	"github.com/cerealshop/storefront/internal/models"
	"github.com/cerealshop/storefront/internal/queue"
	"github.com/cerealshop/storefront/internal/repository"

	"github.com/hibiken/asynq"
)

// CheckoutEventPublisher 结账完成事件发布
type CheckoutEventPublisher interface {
	EnqueueCheckoutCompleted(payload queue.CheckoutCompletedPayload, opts ...asynq.Option) error
}

// DeliveryRates 配送费（固定常量，与地址无关）
type DeliveryRates struct {
	Base     models.Money `json:"base"`
	Extended models.Money `json:"extended"`
}

// CheckoutTotals 各配送方式下的展示总额，提交时不做校验
type CheckoutTotals struct {
	Base     models.Money `json:"base"`
	Extended models.Money `json:"extended"`
}

// CheckoutSummary 结账页数据
type CheckoutSummary struct {
	Items         []CartLine     `json:"items"`
	Subtotal      models.Money   `json:"subtotal"`
	ItemCount     int            `json:"item_count"`
	DeliveryRates DeliveryRates  `json:"delivery_rates"`
	Totals        CheckoutTotals `json:"totals"`
}

// ContactInfo 联系信息
type ContactInfo struct {
	Name    string `json:"name" validate:"required,max=255"`
	Email   string `json:"email" validate:"required,email,max=255"`
	Phone   string `json:"phone" validate:"required,max=20"`
	Address string `json:"address" validate:"required,max=500"`
}

// SubmitOrderInput 提交订单输入
type SubmitOrderInput struct {
	ContactInfo
	DeliveryOption string `json:"delivery_option" validate:"required,oneof=base extended"`
}

// OrderAcknowledgement 提交结果，不产生订单记录
type OrderAcknowledgement struct {
	DeliveryOption string    `json:"delivery_option"`
	ClearedLines   int64     `json:"cleared_lines"`
	SubmittedAt    time.Time `json:"submitted_at"`
}

// CheckoutService 结账服务
type CheckoutService struct {
	cartRepo  repository.CartRepository
	publisher CheckoutEventPublisher
}

// NewCheckoutService 创建结账服务，publisher 可为 nil
func NewCheckoutService(cartRepo repository.CartRepository, publisher CheckoutEventPublisher) *CheckoutService {
	return &CheckoutService{
		cartRepo:  cartRepo,
		publisher: publisher,
	}
}

// Rates 固定配送费
func Rates() DeliveryRates {
	return DeliveryRates{
		Base:     models.MustMoney(constants.DeliveryRateBase),
		Extended: models.MustMoney(constants.DeliveryRateExtended),
	}
}

// BuildSummary 结账汇总，空购物车返回 ErrCartEmpty
func (s *CheckoutService) BuildSummary(ctx context.Context, sessionID models.SessionID) (*CheckoutSummary, error) {
	if sessionID == "" {
		return nil, ErrCartEmpty
	}
	items, err := s.cartRepo.ListBySession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, ErrCartEmpty
	}
	view := buildCartView(items)
	rates := Rates()
	return &CheckoutSummary{
		Items:         view.Items,
		Subtotal:      view.Subtotal,
		ItemCount:     view.ItemCount,
		DeliveryRates: rates,
		Totals: CheckoutTotals{
			Base:     view.Subtotal.Add(rates.Base),
			Extended: view.Subtotal.Add(rates.Extended),
		},
	}, nil
}

// SubmitOrder 校验联系信息后清空购物车；不创建订单、不扣款、不发邮件
func (s *CheckoutService) SubmitOrder(ctx context.Context, sessionID models.SessionID, input SubmitOrderInput) (*OrderAcknowledgement, error) {
	input = normalizeSubmitOrderInput(input)
	if err := validateStruct(input); err != nil {
		return nil, err
	}
	if sessionID == "" {
		return nil, newValidationError("session_id", "required")
	}

	var (
		subtotal  models.Money
		lineCount int
		cleared   int64
	)
	err := s.cartRepo.Transaction(ctx, func(repo repository.CartRepository) error {
		items, err := repo.ListBySession(ctx, sessionID)
		if err != nil {
			return err
		}
		subtotal = sumLines(items)
		lineCount = len(items)
		cleared, err = repo.ClearBySession(ctx, sessionID)
		return err
	})
	if err != nil {
		return nil, err
	}

	ack := &OrderAcknowledgement{
		DeliveryOption: input.DeliveryOption,
		ClearedLines:   cleared,
		SubmittedAt:    time.Now(),
	}
	logger.Infow("checkout_submitted",
		"session_id", sessionID,
		"line_count", lineCount,
		"delivery_option", input.DeliveryOption,
		"subtotal", subtotal.String(),
	)
	s.publishCompleted(sessionID, input, lineCount, subtotal, ack.SubmittedAt)
	return ack, nil
}

func (s *CheckoutService) publishCompleted(sessionID models.SessionID, input SubmitOrderInput, lineCount int, subtotal models.Money, at time.Time) {
	if s.publisher == nil {
		return
	}
	payload := queue.CheckoutCompletedPayload{
		SessionID:      sessionID.String(),
		LineCount:      lineCount,
		DeliveryOption: input.DeliveryOption,
		Subtotal:       subtotal.String(),
		Email:          input.Email,
		SubmittedAt:    at,
	}
	if err := s.publisher.EnqueueCheckoutCompleted(payload); err != nil {
		logger.Warnw("checkout_event_enqueue_failed",
			"session_id", sessionID,
			"error", err,
		)
	}
}

func normalizeSubmitOrderInput(input SubmitOrderInput) SubmitOrderInput {
	input.Name = strings.TrimSpace(input.Name)
	input.Email = strings.TrimSpace(input.Email)
	input.Phone = strings.TrimSpace(input.Phone)
	input.Address = strings.TrimSpace(input.Address)
	input.DeliveryOption = strings.ToLower(strings.TrimSpace(input.DeliveryOption))
	return input
}
