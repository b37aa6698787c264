package router

import (
	"fmt"
	"strings"

	"github.com/cerealshop/storefront/internal/cache"
	"github.com/cerealshop/storefront/internal/config"
	publichandlers "github.com/cerealshop/storefront/internal/http/handlers/public"
	handlershared "github.com/cerealshop/storefront/internal/http/handlers/shared"
	"github.com/cerealshop/storefront/internal/http/response"
	"github.com/cerealshop/storefront/internal/logger"
	"github.com/cerealshop/storefront/internal/provider"

	"github.com/gin-gonic/gin"
)

// SetupRouter 初始化路由
func SetupRouter(cfg *config.Config, c *provider.Container) *gin.Engine {
	log := logger.L
	if log == nil {
		log = logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	}
	r := gin.New()

	publicHandler := publichandlers.New(c)
	redisPrefix := strings.TrimSpace(cfg.Redis.Prefix)
	if redisPrefix == "" {
		redisPrefix = "cereal"
	}
	redisClient := cache.Client()
	checkoutRule := RateLimitRule{
		Prefix:        fmt.Sprintf("%s:rate:checkout", redisPrefix),
		WindowSeconds: cfg.Security.CheckoutRateLimit.WindowSeconds,
		MaxRequests:   cfg.Security.CheckoutRateLimit.MaxRequests,
		BlockSeconds:  cfg.Security.CheckoutRateLimit.BlockSeconds,
		MessageKey:    "error.checkout_too_many",
	}
	cartRule := RateLimitRule{
		Prefix:        fmt.Sprintf("%s:rate:cart", redisPrefix),
		WindowSeconds: cfg.Security.CartRateLimit.WindowSeconds,
		MaxRequests:   cfg.Security.CartRateLimit.MaxRequests,
		BlockSeconds:  cfg.Security.CartRateLimit.BlockSeconds,
		MessageKey:    "error.rate_limited",
	}

	// 中间件
	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(MetricsMiddleware())
	r.Use(CORSMiddleware(cfg.CORS))
	r.Use(SessionMiddleware(cfg.Session))
	r.Use(LoggerMiddleware(log))

	apiV1 := r.Group("/api/v1")
	{
		// 公开目录
		public := apiV1.Group("/public")
		{
			public.GET("/cereals", publicHandler.GetCereals)
			public.GET("/cereals/featured", publicHandler.GetFeaturedCereals)
			public.GET("/cereals/:id", publicHandler.GetCereal)
			public.GET("/flavors", publicHandler.GetFlavors)
		}

		// 购物车（按会话隔离）
		cart := apiV1.Group("/cart")
		{
			cart.GET("", publicHandler.GetCart)
			cart.POST("", RateLimitMiddleware(redisClient, cartRule, KeyBySessionAndIP), publicHandler.AddCartItem)
			cart.PATCH("/:id", RateLimitMiddleware(redisClient, cartRule, KeyBySessionAndIP), publicHandler.UpdateCartItem)
			cart.DELETE("/:id", RateLimitMiddleware(redisClient, cartRule, KeyBySessionAndIP), publicHandler.DeleteCartItem)
		}

		// 结账
		checkout := apiV1.Group("/checkout")
		{
			checkout.GET("", publicHandler.GetCheckout)
			checkout.POST("", RateLimitMiddleware(redisClient, checkoutRule, KeyBySessionAndIP), publicHandler.SubmitCheckout)
		}
	}

	// 健康检查与指标
	r.GET("/health-check", publicHandler.HealthCheck)
	r.GET("/metrics", MetricsHandler())

	r.NoRoute(func(ctx *gin.Context) {
		handlershared.RespondError(ctx, response.CodeNotFound, "error.not_found", nil)
	})

	return r
}
