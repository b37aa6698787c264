package queue

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/cerealshop/storefront/internal/config"
	"github.com/cerealshop/storefront/internal/constants"

	"github.com/hibiken/asynq"
)

const (
	// DefaultQueue 默认队列名称
	DefaultQueue = constants.QueueDefault

	defaultMaxRetry    = 3
	defaultConcurrency = 10
	checkoutTaskTTL    = 30 * time.Second
)

// Client 结账事件投递客户端，未启用队列时所有投递为空操作
type Client struct {
	client    *asynq.Client
	queue     string
	maxRetry  int
	retention time.Duration
}

// NewClient 创建队列客户端
func NewClient(cfg *config.QueueConfig) (*Client, error) {
	c := &Client{queue: DefaultQueue, maxRetry: defaultMaxRetry}
	if cfg == nil || !cfg.Enabled {
		return c, nil
	}
	if cfg.MaxRetry > 0 {
		c.maxRetry = cfg.MaxRetry
	}
	if cfg.Retention > 0 {
		c.retention = time.Duration(cfg.Retention) * time.Second
	}
	c.client = asynq.NewClient(buildRedisOpt(cfg))
	return c, nil
}

// Enabled 判断是否启用
func (c *Client) Enabled() bool {
	return c != nil && c.client != nil
}

// Close 关闭客户端
func (c *Client) Close() error {
	if !c.Enabled() {
		return nil
	}
	return c.client.Close()
}

// EnqueueCheckoutCompleted 推送结账完成事件
// 同一会话同一提交时间只会入队一次
func (c *Client) EnqueueCheckoutCompleted(payload CheckoutCompletedPayload, opts ...asynq.Option) error {
	if !c.Enabled() {
		return nil
	}
	task, err := NewCheckoutCompletedTask(payload)
	if err != nil {
		return err
	}
	_, err = c.client.Enqueue(task, append(c.checkoutTaskOptions(payload), opts...)...)
	if errors.Is(err, asynq.ErrTaskIDConflict) {
		return nil
	}
	return err
}

func (c *Client) checkoutTaskOptions(payload CheckoutCompletedPayload) []asynq.Option {
	options := []asynq.Option{
		asynq.Queue(c.queue),
		asynq.MaxRetry(c.maxRetry),
		asynq.Timeout(checkoutTaskTTL),
		asynq.TaskID(CheckoutTaskID(payload)),
	}
	if c.retention > 0 {
		options = append(options, asynq.Retention(c.retention))
	}
	return options
}

// CheckoutTaskID 结账事件去重 ID
func CheckoutTaskID(payload CheckoutCompletedPayload) string {
	return fmt.Sprintf("%s:%s:%d", TaskCheckoutCompleted, payload.SessionID, payload.SubmittedAt.UnixNano())
}

// BuildServerConfig 生成 worker 服务配置
func BuildServerConfig(cfg *config.QueueConfig) (asynq.RedisClientOpt, asynq.Config) {
	concurrency := defaultConcurrency
	queues := map[string]int{DefaultQueue: 1}
	if cfg != nil {
		if cfg.Concurrency > 0 {
			concurrency = cfg.Concurrency
		}
		if len(cfg.Queues) > 0 {
			queues = cfg.Queues
		}
	}
	return buildRedisOpt(cfg), asynq.Config{
		Concurrency: concurrency,
		Queues:      queues,
	}
}

func buildRedisOpt(cfg *config.QueueConfig) asynq.RedisClientOpt {
	opt := asynq.RedisClientOpt{Addr: "127.0.0.1:6379"}
	if cfg == nil {
		return opt
	}
	host := strings.TrimSpace(cfg.Host)
	if host == "" {
		host = "127.0.0.1"
	}
	port := cfg.Port
	if port <= 0 {
		port = 6379
	}
	opt.Addr = fmt.Sprintf("%s:%d", host, port)
	opt.Password = cfg.Password
	opt.DB = cfg.DB
	return opt
}
