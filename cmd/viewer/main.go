package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"order-viewer/internal/core/cache"
	"order-viewer/internal/core/config"
	"order-viewer/internal/core/locale"
	"order-viewer/internal/core/logger"
	"order-viewer/internal/core/server"
	lookupadapter "order-viewer/internal/features/lookup/adapters"
	lookuphandler "order-viewer/internal/features/lookup/handler"
	noticeadapters "order-viewer/internal/features/notices/adapters"
	noticehandler "order-viewer/internal/features/notices/handler"
	noticeports "order-viewer/internal/features/notices/ports"
	noticeservice "order-viewer/internal/features/notices/service"

	"go.uber.org/zap"
)

//go:generate swag init -g cmd/viewer/main.go -d ../../ -o ../../docs/swagger

// @title Order Viewer API
// @version 1.0
// @description Looks up orders in the order-lookup service and renders them for display.
// @contact.name API Support
// @license.name MIT
// @host localhost:8080
// @BasePath /
func main() {
	cfg, err := config.Load(".")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(cfg.Environment, cfg.LogLevel); err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer logger.Sync()

	l := logger.Get()
	l.Info("Application starting",
		zap.String("environment", cfg.Environment),
		zap.String("log_level", cfg.LogLevel),
		zap.String("order_service", cfg.OrderService.URL),
	)

	loc, err := cfg.Display.Location()
	if err != nil {
		l.Fatal("Invalid display settings", zap.Error(err))
	}
	formatter := locale.New(cfg.Display.Locale, loc)

	source := lookupadapter.NewHTTPOrderSource(cfg.OrderService)

	healthCtx, cancel := context.WithTimeout(context.Background(), cfg.OrderService.Timeout)
	if err := source.HealthCheck(healthCtx); err != nil {
		// The service may come up later; lookups report their own failures.
		l.Warn("Order service health check failed", zap.Error(err))
	} else {
		l.Info("Order service reachable")
	}
	cancel()

	srv := server.New(cfg)

	var notices noticeports.NoticeService
	if cfg.Redis.URL != "" {
		redisCache, err := cache.NewRedisAdapter(cfg.Redis.URL)
		if err != nil {
			l.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		defer redisCache.Close()

		pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := redisCache.Ping(pingCtx); err != nil {
			l.Warn("Redis not reachable, notices may fail", zap.Error(err))
		}
		cancel()

		noticeSvc := noticeservice.NewNoticeService(noticeadapters.NewRedisNoticeRepository(redisCache))
		notices = noticeSvc
		noticehandler.NewNoticeHandler(noticeSvc).Register(srv.App)
		l.Info("Operator notices enabled")
	}

	lookuphandler.NewLookupHandler(source, formatter, formatter.Tag().String(), notices).Register(srv.App)

	go func() {
		if err := srv.Run(); err != nil {
			l.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		l.Error("Server shutdown failed", zap.Error(err))
	}
}
