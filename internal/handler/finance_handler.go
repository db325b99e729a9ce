package handler

import (
	"math"
	"net/http"
	"time"

	"buymyshop/config"
	"buymyshop/internal/repository"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type FinanceHandler struct {
	paymentRepo *repository.PaymentRepository
	cfg         *config.FinanceConfig
	log         *zap.Logger
}

func NewFinanceHandler(paymentRepo *repository.PaymentRepository, cfg *config.FinanceConfig, log *zap.Logger) *FinanceHandler {
	return &FinanceHandler{paymentRepo: paymentRepo, cfg: cfg, log: log}
}

// Metrics serves GET /api/metrics/finance. The endpoint never fails because
// metrics are unavailable: a storage error degrades to the same shape with
// all-zero values.
func (h *FinanceHandler) Metrics(c *gin.Context) {
	stats, err := h.paymentRepo.Aggregate()
	if err != nil {
		h.log.Warn("finance metrics unavailable", zap.Error(err))
		stats = &repository.FinanceStats{}
	}

	totalReserve := round2(stats.TotalAmount * h.cfg.ReservePercent)
	totalNet := round2(stats.TotalAmount - totalReserve)

	c.JSON(http.StatusOK, gin.H{
		"timestamp": time.Now().UTC().Format(time.RFC3339Nano),
		"reserve": gin.H{
			"total_amount":   stats.TotalAmount,
			"total_reserve":  totalReserve,
			"total_net":      totalNet,
			"total_payments": stats.TotalPayments,
			"approved_count": stats.ApprovedCount,
			"pending_count":  stats.PendingCount,
			"rejected_count": stats.RejectedCount,
		},
		"approvals": gin.H{
			"pending":  stats.PendingCount,
			"approved": stats.ApprovedCount,
			"rejected": stats.RejectedCount,
			"total":    stats.TotalPayments,
		},
	})
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
