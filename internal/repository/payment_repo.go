package repository

import (
	"errors"

	"buymyshop/internal/domain"
	"buymyshop/internal/models"

	"gorm.io/gorm"
)

// ErrTerminalState is returned when an approve/reject targets a record that
// already reached approved or rejected. Terminal records never revert.
var ErrTerminalState = errors.New("payment already in terminal state")

type PaymentRepository struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) *PaymentRepository {
	return &PaymentRepository{db: db}
}

func (r *PaymentRepository) Create(p *models.WebsitePayment) error {
	return r.db.Create(p).Error
}

func (r *PaymentRepository) GetByID(id uint) (*models.WebsitePayment, error) {
	var p models.WebsitePayment
	if err := r.db.First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

// LatestByUserID returns the user's most recent record, defined as
// max(created_at) with id as the tie-break. gorm.ErrRecordNotFound when the
// user never submitted.
func (r *PaymentRepository) LatestByUserID(userID int64) (*models.WebsitePayment, error) {
	var p models.WebsitePayment
	err := r.db.Where("user_id = ?", userID).
		Order("created_at DESC").Order("id DESC").
		First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PaymentRepository) ListByStatus(status string, limit int) ([]models.WebsitePayment, error) {
	var out []models.WebsitePayment
	q := r.db.Order("created_at DESC").Order("id DESC")
	if status != "" {
		q = q.Where("status = ?", status)
	}
	if limit > 0 {
		q = q.Limit(limit)
	}
	err := q.Find(&out).Error
	return out, err
}

// SetStatus moves a pending record to approved or rejected. The transition
// is a conditional UPDATE so a record that already reached a terminal state
// stays there even under concurrent review.
func (r *PaymentRepository) SetStatus(id uint, status, reason string) (*models.WebsitePayment, error) {
	if !domain.IsTerminalStatus(status) {
		return nil, errors.New("invalid target status: " + status)
	}
	updates := map[string]interface{}{"status": status}
	if reason != "" {
		updates["reject_reason"] = reason
	}
	res := r.db.Model(&models.WebsitePayment{}).
		Where("id = ? AND status = ?", id, domain.StatusPending).
		Updates(updates)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		// Either the record does not exist or it is already terminal.
		var p models.WebsitePayment
		if err := r.db.First(&p, id).Error; err != nil {
			return nil, err
		}
		return nil, ErrTerminalState
	}
	return r.GetByID(id)
}

// FinanceStats is the all-time aggregate over website_payments.
type FinanceStats struct {
	TotalAmount   float64
	TotalPayments int64
	ApprovedCount int64
	PendingCount  int64
	RejectedCount int64
}

// Aggregate computes the finance stats in one grouped query.
func (r *PaymentRepository) Aggregate() (*FinanceStats, error) {
	var rows []struct {
		Status string
		Count  int64
		Amount float64
	}
	err := r.db.Model(&models.WebsitePayment{}).
		Select("status, COUNT(*) AS count, COALESCE(SUM(custom_price), 0) AS amount").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	stats := &FinanceStats{}
	for _, row := range rows {
		stats.TotalPayments += row.Count
		stats.TotalAmount += row.Amount
		switch row.Status {
		case domain.StatusApproved:
			stats.ApprovedCount = row.Count
		case domain.StatusPending:
			stats.PendingCount = row.Count
		case domain.StatusRejected:
			stats.RejectedCount = row.Count
		}
	}
	return stats, nil
}
