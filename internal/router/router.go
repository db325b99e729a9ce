package router

import (
	"time"

	"buymyshop/config"
	"buymyshop/internal/handler"
	"buymyshop/internal/middleware"
	"buymyshop/internal/repository"
	"buymyshop/internal/service"
	"buymyshop/pkg/cloudinary"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func Setup(cfg *config.Config, db *gorm.DB, cloud cloudinary.Client, notifier service.Notifier, log *zap.Logger) *gin.Engine {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.Observe())
	r.Use(middleware.RateLimit(middleware.NewInMemoryRateLimiter(100, 60*time.Second)))

	paymentRepo := repository.NewPaymentRepository(db)
	settingRepo := repository.NewSettingRepository(db)
	metricRepo := repository.NewMetricRepository(db)

	paymentHandler := handler.NewPaymentHandler(paymentRepo, settingRepo, metricRepo, cloud, notifier, cfg, log)
	userHandler := handler.NewUserHandler(paymentRepo)
	financeHandler := handler.NewFinanceHandler(paymentRepo, &cfg.Finance, log)
	adminHandler := handler.NewAdminHandler(paymentRepo, settingRepo, notifier, log)
	authHandler := handler.NewAuthHandler(&cfg.Telegram)
	trackHandler := handler.NewTrackHandler(metricRepo, log)
	healthHandler := handler.NewHealthHandler(db, cloud != nil, cfg.Telegram.BotToken != "")

	api := r.Group("/api")
	{
		api.POST("/payment", paymentHandler.Submit)
		api.GET("/user", userHandler.Status)
		api.GET("/metrics/finance", financeHandler.Metrics)
		api.POST("/auth/telegram", authHandler.VerifyTelegram)
		api.POST("/track/visit", trackHandler.Visit)

		admin := api.Group("/admin")
		admin.Use(middleware.AdminRequired(cfg.Admin.Token))
		{
			admin.GET("/payments", adminHandler.ListPayments)
			admin.POST("/payments/:id/approve", adminHandler.Approve)
			admin.POST("/payments/:id/reject", adminHandler.Reject)
			admin.GET("/settings/:user_id", adminHandler.GetSetting)
			admin.PUT("/settings/:user_id", adminHandler.UpsertSetting)
		}
	}

	r.GET("/healthz", healthHandler.Healthz)
	r.GET("/health/detailed", healthHandler.Detailed)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}
