package handler

import (
	"net/http"
	"strconv"

	"buymyshop/internal/domain"
	"buymyshop/internal/metrics"
	"buymyshop/internal/models"
	"buymyshop/internal/repository"
	"buymyshop/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// AdminHandler is the HTTP face of the payment review flow that the admin
// otherwise drives from the Telegram side.
type AdminHandler struct {
	paymentRepo *repository.PaymentRepository
	settingRepo *repository.SettingRepository
	notifier    service.Notifier
	log         *zap.Logger
}

func NewAdminHandler(paymentRepo *repository.PaymentRepository, settingRepo *repository.SettingRepository, notifier service.Notifier, log *zap.Logger) *AdminHandler {
	return &AdminHandler{paymentRepo: paymentRepo, settingRepo: settingRepo, notifier: notifier, log: log}
}

// ListPayments returns records filtered by status (default pending, newest
// first).
func (h *AdminHandler) ListPayments(c *gin.Context) {
	status := c.DefaultQuery("status", domain.StatusPending)
	if status != "" && status != domain.StatusPending && !domain.IsTerminalStatus(status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid status"})
		return
	}
	payments, err := h.paymentRepo.ListByStatus(status, 100)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"payments": payments, "count": len(payments)})
}

func (h *AdminHandler) Approve(c *gin.Context) {
	h.decide(c, domain.StatusApproved)
}

func (h *AdminHandler) Reject(c *gin.Context) {
	h.decide(c, domain.StatusRejected)
}

func (h *AdminHandler) decide(c *gin.Context, status string) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payment id"})
		return
	}
	var body struct {
		Reason string `json:"reason"`
	}
	_ = c.ShouldBindJSON(&body)

	p, err := h.paymentRepo.SetStatus(uint(id), status, body.Reason)
	switch {
	case err == repository.ErrTerminalState:
		c.JSON(http.StatusConflict, gin.H{"error": "payment already decided"})
		return
	case err == gorm.ErrRecordNotFound:
		c.JSON(http.StatusNotFound, gin.H{"error": "payment not found"})
		return
	case err != nil:
		h.log.Error("payment decision failed", zap.Uint64("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	metrics.PaymentsDecided.WithLabelValues(status).Inc()
	h.notifier.NotifyDecision(p)
	c.JSON(http.StatusOK, gin.H{"success": true, "payment": p})
}

// GetSetting reads one user's admin-configured defaults.
func (h *AdminHandler) GetSetting(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Param("user_id"), 10, 64)
	if err != nil || userID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user_id"})
		return
	}
	s, err := h.settingRepo.Get(userID)
	if err == gorm.ErrRecordNotFound {
		c.JSON(http.StatusNotFound, gin.H{"error": "settings not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusOK, s)
}

// UpsertSetting writes one user's defaults, snapshotted into future
// submissions.
func (h *AdminHandler) UpsertSetting(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Param("user_id"), 10, 64)
	if err != nil || userID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user_id"})
		return
	}
	var body struct {
		BankAccount string `json:"bank_account"`
		GroupLink   string `json:"group_link"`
		CustomPrice int    `json:"custom_price"`
		BSCWallet   string `json:"bsc_wallet"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	if body.CustomPrice <= 0 {
		body.CustomPrice = domain.DefaultCustomPrice
	}
	s := &models.UserSetting{
		UserID:      userID,
		BankAccount: body.BankAccount,
		GroupLink:   body.GroupLink,
		CustomPrice: body.CustomPrice,
		BSCWallet:   body.BSCWallet,
	}
	if err := h.settingRepo.Upsert(s); err != nil {
		h.log.Error("settings upsert failed", zap.Int64("user_id", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "settings": s})
}
