package handler

import (
	"net/http"
	"strconv"

	"buymyshop/internal/domain"
	"buymyshop/internal/repository"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type UserHandler struct {
	paymentRepo *repository.PaymentRepository
}

func NewUserHandler(paymentRepo *repository.PaymentRepository) *UserHandler {
	return &UserHandler{paymentRepo: paymentRepo}
}

// Status answers GET /api/user?action=status&user_id=<id>. The answer is
// derived from the user's most recent record (max created_at, id as the
// tie-break); earlier history does not override it.
func (h *UserHandler) Status(c *gin.Context) {
	if c.Query("action") != "status" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown action"})
		return
	}
	userID, err := strconv.ParseInt(c.Query("user_id"), 10, 64)
	if err != nil || userID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing user_id"})
		return
	}
	p, err := h.paymentRepo.LatestByUserID(userID)
	if err == gorm.ErrRecordNotFound {
		c.JSON(http.StatusOK, gin.H{"status": domain.StatusNone})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	if p.Status == domain.StatusApproved {
		c.JSON(http.StatusOK, gin.H{
			"status":   domain.StatusApproved,
			"userData": gin.H{"personal_link": p.PersonalLink},
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": p.Status})
}
