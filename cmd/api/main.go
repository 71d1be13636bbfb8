package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/xiebiao/bookshelf/docs"
	"github.com/xiebiao/bookshelf/pkg/metrics"
	"github.com/xiebiao/bookshelf/pkg/tracing"
)

// @title        Bookshelf API
// @version      1.0
// @description  图书目录服务:增删改查、随机推荐、收藏切换
// @host         localhost:3000
// @BasePath     /
func main() {
	// 1. 指标注册要早于路由处理任何请求
	metrics.InitMetrics()

	// 2. 依赖注入（wire_gen.go）
	app, cleanup, err := InitializeApp()
	if err != nil {
		log.Fatalf("初始化应用失败: %v", err)
	}
	defer cleanup()

	cfg := app.Config
	log.Printf("✓ 配置加载成功 (port=%d, mode=%s, driver=%s, redis=%t)",
		cfg.Server.Port, cfg.Server.Mode, cfg.Database.Driver, cfg.Redis.Enabled)

	// 3. 链路追踪（可选）
	if cfg.Tracing.Enabled {
		shutdownTracer, err := tracing.InitTracer(cfg.Tracing.ServiceName, cfg.Tracing.Endpoint)
		if err != nil {
			log.Fatalf("初始化Tracer失败: %v", err)
		}
		defer func() {
			if err := shutdownTracer(context.Background()); err != nil {
				log.Printf("关闭Tracer失败: %v", err)
			}
		}()
		log.Printf("✓ 链路追踪已启用 (%s)", cfg.Tracing.Endpoint)
	}

	// 4. HTTP服务器
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      app.Engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		log.Printf("🚀 服务启动成功: http://localhost:%d", cfg.Server.Port)
		log.Printf("   健康检查: http://localhost:%d/ping", cfg.Server.Port)
		if cfg.Server.EnableSwagger {
			log.Printf("   API文档:  http://localhost:%d/swagger/index.html", cfg.Server.Port)
		}
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("❌ HTTP服务器启动失败: %v", err)
		}
	}()

	// 5. 优雅关闭
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("⏳ 正在优雅关闭服务...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("❌ 服务器强制关闭: %v", err)
	}

	log.Println("👋 服务已关闭")
}
