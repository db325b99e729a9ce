package handler

import (
	"net/http"
	"time"

	"buymyshop/config"
	"buymyshop/pkg/telegramlogin"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	cfg *config.TelegramConfig
}

func NewAuthHandler(cfg *config.TelegramConfig) *AuthHandler {
	return &AuthHandler{cfg: cfg}
}

// VerifyTelegram lets the frontend validate a Telegram Login widget payload
// before driving the payment flow with it.
func (h *AuthHandler) VerifyTelegram(c *gin.Context) {
	if h.cfg.BotToken == "" {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "telegram login verification not configured"})
		return
	}
	var d telegramlogin.UserData
	if err := c.ShouldBindJSON(&d); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	if err := telegramlogin.Verify(d, h.cfg.BotToken, h.cfg.LoginMaxAge, time.Now()); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"verified": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"verified": true,
		"user": gin.H{
			"id":         d.ID,
			"first_name": d.FirstName,
			"last_name":  d.LastName,
			"username":   d.Username,
		},
	})
}
