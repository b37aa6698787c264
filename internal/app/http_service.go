package app

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/cerealshop/storefront/internal/config"
	"github.com/cerealshop/storefront/internal/logger"
)

// HTTPService 店铺 API 服务
type HTTPService struct {
	server *http.Server
}

// NewHTTPService 按服务器配置创建 HTTP 服务
func NewHTTPService(cfg config.ServerConfig, handler http.Handler) *HTTPService {
	return &HTTPService{
		server: &http.Server{
			Addr:              cfg.Addr(),
			Handler:           handler,
			ReadHeaderTimeout: secondsOr(cfg.ReadHeaderTimeoutSeconds, 10),
			IdleTimeout:       secondsOr(cfg.IdleTimeoutSeconds, 120),
		},
	}
}

// Name 服务名称
func (s *HTTPService) Name() string {
	return "http"
}

// Start 监听并阻塞，直到 Stop 被调用
func (s *HTTPService) Start(ctx context.Context) error {
	if s == nil || s.server == nil {
		return errors.New("http server not initialized")
	}
	s.server.BaseContext = func(net.Listener) context.Context {
		return ctx
	}
	logger.Infow("http_listen", "addr", s.server.Addr)
	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Stop 优雅关闭，等待进行中的请求完成
func (s *HTTPService) Stop(ctx context.Context) error {
	if s == nil || s.server == nil {
		return nil
	}
	return s.server.Shutdown(ctx)
}

func secondsOr(value, fallback int) time.Duration {
	if value <= 0 {
		value = fallback
	}
	return time.Duration(value) * time.Second
}
