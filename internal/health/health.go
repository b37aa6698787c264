package health

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cerealshop/storefront/internal/cache"

	"github.com/hellofresh/health-go/v5"
	"gorm.io/gorm"
)

const (
	componentName    = "cereal-storefront"
	componentVersion = "1.0.0"
)

// Checker 组件健康检查
type Checker struct {
	h *health.Health
}

// Report 健康检查结果
type Report struct {
	Status    string            `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
	Failures  map[string]string `json:"failures,omitempty"`
	Component string            `json:"component"`
	Version   string            `json:"version"`
}

// New 注册数据库与 Redis 检查；Redis 未启用时跳过
func New(db *gorm.DB) (*Checker, error) {
	checks := []health.Config{
		{
			Name:      "database",
			Timeout:   3 * time.Second,
			SkipOnErr: false,
			Check:     databaseCheck(db),
		},
	}
	if cache.Enabled() {
		checks = append(checks, health.Config{
			Name:      "redis",
			Timeout:   2 * time.Second,
			SkipOnErr: true,
			Check:     cache.Ping,
		})
	}

	h, err := health.New(
		health.WithComponent(health.Component{
			Name:    componentName,
			Version: componentVersion,
		}),
		health.WithChecks(checks...),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create health instance: %w", err)
	}
	return &Checker{h: h}, nil
}

// Measure 执行全部检查
func (c *Checker) Measure(ctx context.Context) Report {
	result := c.h.Measure(ctx)
	return Report{
		Status:    string(result.Status),
		Timestamp: result.Timestamp,
		Failures:  result.Failures,
		Component: result.Component.Name,
		Version:   result.Component.Version,
	}
}

// Healthy 是否可以对外提供服务（部分降级也视为可用）
func (r Report) Healthy() bool {
	return r.Status == string(health.StatusOK) || r.Status == string(health.StatusPartiallyAvailable)
}

func databaseCheck(db *gorm.DB) health.CheckFunc {
	return func(ctx context.Context) error {
		if db == nil {
			return errors.New("database is not initialized")
		}
		sqlDB, err := db.DB()
		if err != nil {
			return fmt.Errorf("failed to get database handle: %w", err)
		}
		if err := sqlDB.PingContext(ctx); err != nil {
			return fmt.Errorf("failed to ping database: %w", err)
		}
		return nil
	}
}
