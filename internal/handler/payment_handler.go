package handler

import (
	"io"
	"net/http"
	"strconv"
	"strings"

	"buymyshop/config"
	"buymyshop/internal/domain"
	"buymyshop/internal/metrics"
	"buymyshop/internal/models"
	"buymyshop/internal/repository"
	"buymyshop/internal/service"
	"buymyshop/pkg/cloudinary"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type PaymentHandler struct {
	paymentRepo *repository.PaymentRepository
	settingRepo *repository.SettingRepository
	metricRepo  *repository.MetricRepository
	cloud       cloudinary.Client
	notifier    service.Notifier
	cfg         *config.Config
	log         *zap.Logger
}

func NewPaymentHandler(paymentRepo *repository.PaymentRepository, settingRepo *repository.SettingRepository, metricRepo *repository.MetricRepository, cloud cloudinary.Client, notifier service.Notifier, cfg *config.Config, log *zap.Logger) *PaymentHandler {
	return &PaymentHandler{
		paymentRepo: paymentRepo,
		settingRepo: settingRepo,
		metricRepo:  metricRepo,
		cloud:       cloud,
		notifier:    notifier,
		cfg:         cfg,
		log:         log,
	}
}

// Submit accepts a multipart payment-proof submission and records it as
// pending. The proof screenshot is required: a submission is only worth
// reviewing once the payer attached evidence.
func (h *PaymentHandler) Submit(c *gin.Context) {
	userID, err := strconv.ParseInt(c.PostForm("user_id"), 10, 64)
	if err != nil || userID <= 0 {
		fail(c, http.StatusBadRequest, "missing user_id")
		return
	}
	firstName := strings.TrimSpace(c.PostForm("first_name"))
	if firstName == "" {
		fail(c, http.StatusBadRequest, "missing first_name")
		return
	}
	method := c.PostForm("payment_method")
	if method == "" {
		fail(c, http.StatusBadRequest, "missing payment_method")
		return
	}
	if !domain.IsValidPaymentMethod(method) {
		fail(c, http.StatusBadRequest, "invalid payment_method")
		return
	}

	file, err := c.FormFile("proof_image")
	if err != nil {
		fail(c, http.StatusBadRequest, "missing proof_image")
		return
	}
	if file.Size > domain.MaxProofImageBytes {
		fail(c, http.StatusBadRequest, "proof_image exceeds 5MB limit")
		return
	}
	f, err := file.Open()
	if err != nil {
		fail(c, http.StatusBadRequest, "could not read proof_image")
		return
	}
	defer f.Close()
	head := make([]byte, 512)
	n, _ := f.Read(head)
	if !strings.HasPrefix(http.DetectContentType(head[:n]), "image/") {
		fail(c, http.StatusBadRequest, "proof_image must be an image")
		return
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		fail(c, http.StatusBadRequest, "could not read proof_image")
		return
	}

	// Snapshot the admin-configured settings; defaults apply when the admin
	// never set up this user.
	price := domain.DefaultCustomPrice
	bankAccount, groupLink, bscWallet := "", "", ""
	if s, err := h.settingRepo.Get(userID); err == nil {
		price = s.CustomPrice
		bankAccount = s.BankAccount
		groupLink = s.GroupLink
		bscWallet = s.BSCWallet
	} else if err != gorm.ErrRecordNotFound {
		h.log.Error("settings lookup failed", zap.Int64("user_id", userID), zap.Error(err))
		fail(c, http.StatusInternalServerError, "internal error")
		return
	}
	personalLink := groupLink
	if personalLink == "" {
		// Literal placeholder substitution: a template without {user_id} is
		// a static community link, not a formatting error.
		personalLink = strings.ReplaceAll(h.cfg.Admin.PersonalLinkTemplate, "{user_id}", strconv.FormatInt(userID, 10))
	}

	proofURL := file.Filename
	if h.cloud != nil {
		folder := "buymyshop/proofs/" + strconv.FormatInt(userID, 10)
		publicID := "proof_" + strings.ReplaceAll(uuid.New().String(), "-", "")[:16]
		proofURL, err = h.cloud.UploadImage(c.Request.Context(), f, folder, publicID)
		if err != nil {
			h.log.Error("proof upload failed", zap.Int64("user_id", userID), zap.Error(err))
			fail(c, http.StatusInternalServerError, "proof upload failed")
			return
		}
	}

	p := &models.WebsitePayment{
		UserID:           userID,
		TelegramUsername: strings.TrimPrefix(c.PostForm("username"), "@"),
		FirstName:        firstName,
		LastName:         strings.TrimSpace(c.PostForm("last_name")),
		PaymentMethod:    method,
		ProofImage:       proofURL,
		PersonalLink:     personalLink,
		CustomPrice:      price,
		BSCWallet:        bscWallet,
		BankAccount:      bankAccount,
		GroupLink:        groupLink,
		Status:           domain.StatusPending,
	}
	if err := h.paymentRepo.Create(p); err != nil {
		h.log.Error("payment create failed", zap.Int64("user_id", userID), zap.Error(err))
		fail(c, http.StatusInternalServerError, "internal error")
		return
	}

	metrics.PaymentsSubmitted.WithLabelValues(method).Inc()
	if err := h.metricRepo.RecordConversion(repository.Today()); err != nil {
		h.log.Warn("conversion count failed", zap.Error(err))
	}
	h.notifier.NotifyNewPayment(p)

	c.JSON(http.StatusOK, gin.H{"success": true, "payment_id": p.ID})
}

func fail(c *gin.Context, code int, msg string) {
	c.JSON(code, gin.H{"success": false, "error": msg})
}
