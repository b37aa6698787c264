package worker

import (
	"context"

	"github.com/cerealshop/storefront/internal/logger"
	"github.com/cerealshop/storefront/internal/models"
	"github.com/cerealshop/storefront/internal/provider"
	"github.com/cerealshop/storefront/internal/queue"

	"github.com/hibiken/asynq"
)

// Consumer 异步任务消费者
type Consumer struct {
	*provider.Container
}

// NewConsumer 创建消费者
func NewConsumer(c *provider.Container) *Consumer {
	return &Consumer{
		Container: c,
	}
}

// Register 注册消费者
func (c *Consumer) Register(mux *asynq.ServeMux) {
	if c == nil || mux == nil {
		logger.Debugw("worker_register_skip_nil", "consumer_nil", c == nil, "mux_nil", mux == nil)
		return
	}
	mux.HandleFunc(queue.TaskCheckoutCompleted, c.handleCheckoutCompleted)
}

// handleCheckoutCompleted 记录结账完成事件
// 不生成订单、不发送邮件；仅在会话又出现新购物车项时额外记录
func (c *Consumer) handleCheckoutCompleted(ctx context.Context, task *asynq.Task) error {
	if c == nil || task == nil {
		logger.Debugw("worker_checkout_completed_skip_nil", "consumer_nil", c == nil, "task_nil", task == nil)
		return nil
	}
	payload, err := queue.ParseCheckoutCompletedPayload(task)
	if err != nil {
		logger.Warnw("worker_checkout_completed_unmarshal_failed", "error", err)
		return err
	}
	if payload.SessionID == "" {
		logger.Debugw("worker_checkout_completed_skip_invalid_payload", "session_id", payload.SessionID)
		return nil
	}

	remaining := 0
	if c.Container != nil && c.CartRepo != nil {
		items, err := c.CartRepo.ListBySession(ctx, models.SessionID(payload.SessionID))
		if err != nil {
			logger.Warnw("worker_checkout_completed_list_cart_failed", "session_id", payload.SessionID, "error", err)
			return err
		}
		remaining = len(items)
	}

	logger.Infow("checkout_completed_event",
		"session_id", payload.SessionID,
		"line_count", payload.LineCount,
		"delivery_option", payload.DeliveryOption,
		"subtotal", payload.Subtotal,
		"submitted_at", payload.SubmittedAt,
		"remaining_lines", remaining,
	)
	return nil
}
