package provider

import (
	"github.com/cerealshop/storefront/internal/cache"
	"github.com/cerealshop/storefront/internal/config"
	"github.com/cerealshop/storefront/internal/health"
	"github.com/cerealshop/storefront/internal/logger"
	"github.com/cerealshop/storefront/internal/models"
	"github.com/cerealshop/storefront/internal/queue"
	"github.com/cerealshop/storefront/internal/repository"
	"github.com/cerealshop/storefront/internal/service"

	"gorm.io/gorm"
)

// Container 依赖注入容器
type Container struct {
	Config      *config.Config
	DB          *gorm.DB
	QueueClient *queue.Client

	// Repositories
	CerealRepo repository.CerealRepository
	CartRepo   repository.CartRepository

	// Services
	CatalogService  *service.CatalogService
	CartService     *service.CartService
	CheckoutService *service.CheckoutService
	HealthChecker   *health.Checker
}

// NewContainer 初始化容器（使用全局数据库连接）
func NewContainer(cfg *config.Config) *Container {
	// 初始化缓存
	if err := cache.InitRedis(&cfg.Redis); err != nil {
		logger.Warnw("provider_init_redis_failed", "error", err)
	}

	// 初始化队列客户端
	queueClient, err := queue.NewClient(&cfg.Queue)
	if err != nil {
		logger.Errorw("provider_init_queue_client_failed", "error", err)
		queueClient = nil
	}

	return NewContainerWithDB(cfg, models.DB, queueClient)
}

// NewContainerWithDB 使用指定连接初始化容器
func NewContainerWithDB(cfg *config.Config, db *gorm.DB, queueClient *queue.Client) *Container {
	c := &Container{
		Config:      cfg,
		DB:          db,
		QueueClient: queueClient,
	}

	// 1. 初始化 Repositories
	c.initRepositories()

	// 2. 初始化 Services
	c.initServices()

	return c
}

func (c *Container) initRepositories() {
	c.CerealRepo = repository.NewCerealRepository(c.DB)
	c.CartRepo = repository.NewCartRepository(c.DB)
}

func (c *Container) initServices() {
	c.CatalogService = service.NewCatalogService(c.CerealRepo, c.Config.Catalog.FeaturedCacheTTL())
	c.CartService = service.NewCartService(c.CartRepo, c.CerealRepo)

	var publisher service.CheckoutEventPublisher
	if c.QueueClient != nil && c.QueueClient.Enabled() {
		publisher = c.QueueClient
	}
	c.CheckoutService = service.NewCheckoutService(c.CartRepo, publisher)

	checker, err := health.New(c.DB)
	if err != nil {
		logger.Warnw("provider_init_health_failed", "error", err)
	} else {
		c.HealthChecker = checker
	}
}

// Close 释放外部连接
func (c *Container) Close() {
	if c == nil {
		return
	}
	if err := c.QueueClient.Close(); err != nil {
		logger.Warnw("provider_close_queue_client_failed", "error", err)
	}
	if err := cache.Close(); err != nil {
		logger.Warnw("provider_close_redis_failed", "error", err)
	}
}
