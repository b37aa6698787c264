package app

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Service 可启动/停止的后台服务（HTTP、队列 worker）
type Service interface {
	Name() string
	Start(ctx context.Context) error
	Stop(ctx context.Context) error
}

// errServiceExited 服务在未收到停止信号时自行退出
var errServiceExited = errors.New("service exited")

// Runner 服务运行器
type Runner struct {
	services []Service
}

// NewRunner 创建服务运行器
func NewRunner(services ...Service) *Runner {
	return &Runner{services: services}
}

// RunWithOptions 运行服务并处理系统信号
func RunWithOptions(runner *Runner, opts Options) error {
	if runner == nil {
		return errors.New("runner is nil")
	}
	opts = normalizeOptions(opts)
	ctx := context.Background()
	if len(opts.Signals) > 0 {
		var cancel context.CancelFunc
		ctx, cancel = signal.NotifyContext(ctx, opts.Signals...)
		defer cancel()
	}
	return runner.Run(ctx, opts.ShutdownTimeout, opts.Logger)
}

// Run 并发启动全部服务；任一服务退出或 ctx 取消后统一停止
func (r *Runner) Run(ctx context.Context, stopTimeout time.Duration, log *zap.SugaredLogger) error {
	if r == nil || len(r.services) == 0 {
		return errors.New("no services to run")
	}
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	for _, svc := range r.services {
		if svc == nil {
			return errors.New("service is nil")
		}
	}

	g, gctx := errgroup.WithContext(ctx)
	for _, svc := range r.services {
		service := svc
		g.Go(func() error {
			log.Infow("service_start", "service", service.Name())
			err := service.Start(gctx)
			log.Infow("service_exit", "service", service.Name(), "error", err)
			if err == nil && gctx.Err() == nil {
				return fmt.Errorf("%s: %w", service.Name(), errServiceExited)
			}
			return err
		})
	}
	g.Go(func() error {
		<-gctx.Done()
		r.stopAll(stopTimeout, log)
		return nil
	})

	err := g.Wait()
	if errors.Is(err, context.Canceled) || errors.Is(err, errServiceExited) {
		return nil
	}
	return err
}

func (r *Runner) stopAll(timeout time.Duration, log *zap.SugaredLogger) {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	stopCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	for _, svc := range r.services {
		if err := svc.Stop(stopCtx); err != nil {
			log.Errorw("service_stop_failed", "service", svc.Name(), "error", err)
		}
	}
}
