package app

import (
	"errors"

	"github.com/cerealshop/storefront/internal/config"
	"github.com/cerealshop/storefront/internal/logger"
	"github.com/cerealshop/storefront/internal/provider"
	"github.com/cerealshop/storefront/internal/router"
	"github.com/cerealshop/storefront/internal/worker"
)

// BuildRunner 构建服务运行器
func BuildRunner(cfg *config.Config, mode string, container *provider.Container) (*Runner, error) {
	if cfg == nil {
		return nil, errors.New("config is nil")
	}
	if container == nil {
		return nil, errors.New("container is nil")
	}

	var services []Service

	// 初始化 HTTP 服务
	if mode == ModeAll || mode == ModeAPI {
		engine := router.SetupRouter(cfg, container)
		services = append(services, NewHTTPService(cfg.Server, engine))
	}

	// 初始化 Worker 服务；all 模式下队列未启用时跳过
	if mode == ModeAll || mode == ModeWorker {
		consumer := worker.NewConsumer(container)
		workerService, err := worker.NewService(&cfg.Queue, consumer)
		switch {
		case err == nil:
			services = append(services, workerService)
		case errors.Is(err, worker.ErrQueueDisabled) && mode == ModeAll:
			logger.Infow("app_worker_skipped", "reason", err.Error())
		default:
			return nil, err
		}
	}

	if len(services) == 0 {
		return nil, errors.New("no services initialized (check mode and config)")
	}

	return NewRunner(services...), nil
}

// Run 应用启动入口
func Run(opts Options) error {
	opts = normalizeOptions(opts)
	if opts.Config == nil {
		return errors.New("config is nil")
	}

	container := provider.NewContainer(opts.Config)
	defer container.Close()

	runner, err := BuildRunner(opts.Config, opts.Mode, container)
	if err != nil {
		return err
	}

	opts.Logger.Infow("app_start", "addr", opts.Config.Server.Addr(), "mode", opts.Mode)
	return RunWithOptions(runner, opts)
}
