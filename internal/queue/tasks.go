package queue

import (
	"encoding/json"
	"time"

	"github.com/cerealshop/storefront/internal/constants"

	"github.com/hibiken/asynq"
)

const (
	// TaskCheckoutCompleted 结账完成事件
	TaskCheckoutCompleted = constants.TaskCheckoutCompleted
)

// CheckoutCompletedPayload 结账完成事件载荷
// 仅用于记录，不生成订单也不发送邮件
type CheckoutCompletedPayload struct {
	SessionID      string    `json:"session_id"`
	LineCount      int       `json:"line_count"`
	DeliveryOption string    `json:"delivery_option"`
	Subtotal       string    `json:"subtotal"`
	Email          string    `json:"email"`
	SubmittedAt    time.Time `json:"submitted_at"`
}

// NewCheckoutCompletedTask 创建结账完成任务
func NewCheckoutCompletedTask(payload CheckoutCompletedPayload) (*asynq.Task, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskCheckoutCompleted, body), nil
}

// ParseCheckoutCompletedPayload 解析结账完成任务载荷
func ParseCheckoutCompletedPayload(task *asynq.Task) (CheckoutCompletedPayload, error) {
	var payload CheckoutCompletedPayload
	if task == nil {
		return payload, nil
	}
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return payload, err
	}
	return payload, nil
}
