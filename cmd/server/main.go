package main

import (
	"flag"
	"fmt"
	"os"
	"syscall"

	"github.com/cerealshop/storefront/internal/app"
	"github.com/cerealshop/storefront/internal/config"
	"github.com/cerealshop/storefront/internal/logger"
	"github.com/cerealshop/storefront/internal/models"

	"github.com/gin-gonic/gin"
)

const (
	ansiReset     = "\033[0m"
	ansiBold      = "\033[1m"
	ansiDim       = "\033[2m"
	ansiGreen     = "\033[32m"
	ansiBlue      = "\033[34m"
	ansiCyan      = "\033[36m"
	ansiBrightMag = "\033[95m"
)

func main() {
	printStartupBanner()

	// 加载配置
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()

	// 初始化数据库
	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
		MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
	}, cfg.Database.Debug); err != nil {
		stdLog.Fatalf("数据库初始化失败: %v", err)
	}

	// 自动迁移数据库表
	if err := models.AutoMigrate(); err != nil {
		stdLog.Fatalf("数据库迁移失败: %v", err)
	}

	// 设置 Gin 模式
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	// 解析命令行参数
	var mode string
	flag.StringVar(&mode, "mode", app.ModeAll, "启动模式: all (默认), api, worker")
	flag.Parse()

	if err := app.Run(app.Options{
		Config:  cfg,
		Logger:  logger.S(),
		Signals: []os.Signal{syscall.SIGINT, syscall.SIGTERM},
		Mode:    mode,
	}); err != nil {
		stdLog.Fatalf("服务运行失败: %v", err)
	}
}

func printStartupBanner() {
	fmt.Println(ansiBrightMag + "╔══════════════════════════════════════════════════════╗" + ansiReset)
	fmt.Println(ansiBrightMag + "║            🥣 Cereal Storefront API 启动中            ║" + ansiReset)
	fmt.Println(ansiBrightMag + "╚══════════════════════════════════════════════════════╝" + ansiReset)
	fmt.Println(ansiCyan + " ██████╗███████╗██████╗ ███████╗ █████╗ ██╗     " + ansiReset)
	fmt.Println(ansiCyan + "██╔════╝██╔════╝██╔══██╗██╔════╝██╔══██╗██║     " + ansiReset)
	fmt.Println(ansiCyan + "██║     █████╗  ██████╔╝█████╗  ███████║██║     " + ansiReset)
	fmt.Println(ansiCyan + "██║     ██╔══╝  ██╔══██╗██╔══╝  ██╔══██║██║     " + ansiReset)
	fmt.Println(ansiCyan + "╚██████╗███████╗██║  ██║███████╗██║  ██║███████╗" + ansiReset)
	fmt.Println(ansiCyan + " ╚═════╝╚══════╝╚═╝  ╚═╝╚══════╝╚═╝  ╚═╝╚══════╝" + ansiReset)
	fmt.Println(ansiGreen + ansiBold + "Endpoints" + ansiReset)
	fmt.Println(ansiBlue + "• Catalog:  /api/v1/public/cereals" + ansiReset)
	fmt.Println(ansiBlue + "• Cart:     /api/v1/cart" + ansiReset)
	fmt.Println(ansiBlue + "• Checkout: /api/v1/checkout" + ansiReset)
	fmt.Println(ansiBlue + "• Health:   /health-check  Metrics: /metrics" + ansiReset)
	fmt.Println(ansiDim + "--------------------------------------------------------------" + ansiReset)
}
