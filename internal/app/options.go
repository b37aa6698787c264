package app

import (
	"os"
	"time"

	"github.com/cerealshop/storefront/internal/config"
	"github.com/cerealshop/storefront/internal/logger"

	"go.uber.org/zap"
)

// 启动模式
const (
	ModeAll    = "all"
	ModeAPI    = "api"
	ModeWorker = "worker"
)

// Options 应用启动选项
type Options struct {
	Config          *config.Config
	Logger          *zap.SugaredLogger
	Signals         []os.Signal
	ShutdownTimeout time.Duration
	Mode            string
}

// normalizeOptions 补齐默认参数，关闭超时优先取配置
func normalizeOptions(opts Options) Options {
	if opts.Logger == nil {
		opts.Logger = logger.S()
	}
	if opts.ShutdownTimeout <= 0 && opts.Config != nil && opts.Config.Server.ShutdownTimeoutSeconds > 0 {
		opts.ShutdownTimeout = time.Duration(opts.Config.Server.ShutdownTimeoutSeconds) * time.Second
	}
	if opts.ShutdownTimeout <= 0 {
		opts.ShutdownTimeout = 10 * time.Second
	}
	if opts.Mode == "" {
		opts.Mode = ModeAll
	}
	return opts
}
