package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"buymyshop/config"
	"buymyshop/internal/database"
	"buymyshop/internal/logger"
	"buymyshop/internal/repository"
	"buymyshop/internal/router"
	"buymyshop/internal/service"
	"buymyshop/pkg/cloudinary"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

func main() {
	cfg := config.Load()
	log := logger.New(cfg.Server.Env)
	defer log.Sync()

	db, err := database.NewDB(&cfg.Database)
	if err != nil {
		log.Fatal("database", zap.Error(err))
	}
	if err := database.AutoMigrate(db); err != nil {
		// Schema bootstrap failure is fatal: a half-initialized schema only
		// trades a crash now for data loss later.
		log.Fatal("migrate", zap.Error(err))
	}

	var cloud cloudinary.Client
	if cfg.Cloudinary.CloudName != "" {
		cloud, err = cloudinary.NewClientFromParams(cfg.Cloudinary.CloudName, cfg.Cloudinary.APIKey, cfg.Cloudinary.APISecret)
		if err != nil {
			log.Fatal("cloudinary", zap.Error(err))
		}
	} else {
		log.Warn("blob store not configured, proof images will not be uploaded")
	}

	var notifier service.Notifier = service.NopNotifier{}
	if cfg.Telegram.BotToken != "" {
		tn, err := service.NewTelegramNotifier(cfg.Telegram.BotToken, cfg.Telegram.AdminChatID, log)
		if err != nil {
			log.Warn("telegram notifier disabled", zap.Error(err))
		} else {
			notifier = tn
		}
	}

	metricRepo := repository.NewMetricRepository(db)
	c := cron.New()
	if _, err := c.AddFunc(service.DailyReportSpec, service.DailyMetricsReport(metricRepo, log)); err != nil {
		log.Error("daily report schedule failed", zap.Error(err))
	}
	c.Start()

	engine := router.Setup(cfg, db, cloud, notifier, log)
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}
	go func() {
		log.Info("server listening", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("listen", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down")
	c.Stop()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("server shutdown", zap.Error(err))
	}
	log.Info("server stopped")
}
