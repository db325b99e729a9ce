package repository

import (
	"testing"
	"time"

	"buymyshop/internal/domain"
	"buymyshop/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.WebsitePayment{}, &models.UserSetting{}, &models.SiteMetric{}))
	return db
}

func newPayment(userID int64, status string) *models.WebsitePayment {
	return &models.WebsitePayment{
		UserID:        userID,
		FirstName:     "Dana",
		PaymentMethod: domain.MethodBank,
		PersonalLink:  "https://t.me/+abc",
		CustomPrice:   39,
		Status:        status,
	}
}

func TestCreateAndLatest(t *testing.T) {
	repo := NewPaymentRepository(setupTestDB(t))

	first := newPayment(42, domain.StatusPending)
	require.NoError(t, repo.Create(first))
	second := newPayment(42, domain.StatusPending)
	second.PaymentMethod = domain.MethodPayPal
	require.NoError(t, repo.Create(second))

	latest, err := repo.LatestByUserID(42)
	require.NoError(t, err)
	assert.Equal(t, second.ID, latest.ID)
	assert.Equal(t, domain.MethodPayPal, latest.PaymentMethod)

	_, err = repo.LatestByUserID(999)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestLatestPrefersNewestCreatedAt(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPaymentRepository(db)

	old := newPayment(7, domain.StatusApproved)
	require.NoError(t, repo.Create(old))
	// Backdate the first record so created_at ordering, not insert order,
	// decides.
	require.NoError(t, db.Model(old).Update("created_at", time.Now().Add(-48*time.Hour)).Error)

	recent := newPayment(7, domain.StatusPending)
	require.NoError(t, repo.Create(recent))

	latest, err := repo.LatestByUserID(7)
	require.NoError(t, err)
	assert.Equal(t, recent.ID, latest.ID)
	assert.Equal(t, domain.StatusPending, latest.Status)
}

func TestSetStatusLifecycle(t *testing.T) {
	repo := NewPaymentRepository(setupTestDB(t))
	p := newPayment(1, domain.StatusPending)
	require.NoError(t, repo.Create(p))

	approved, err := repo.SetStatus(p.ID, domain.StatusApproved, "")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusApproved, approved.Status)

	// Terminal records never revert or flip.
	_, err = repo.SetStatus(p.ID, domain.StatusRejected, "changed my mind")
	assert.ErrorIs(t, err, ErrTerminalState)
	_, err = repo.SetStatus(p.ID, domain.StatusApproved, "")
	assert.ErrorIs(t, err, ErrTerminalState)

	got, err := repo.GetByID(p.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusApproved, got.Status)
}

func TestSetStatusRejectWithReason(t *testing.T) {
	repo := NewPaymentRepository(setupTestDB(t))
	p := newPayment(2, domain.StatusPending)
	require.NoError(t, repo.Create(p))

	rejected, err := repo.SetStatus(p.ID, domain.StatusRejected, "proof unreadable")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusRejected, rejected.Status)
	assert.Equal(t, "proof unreadable", rejected.RejectReason)
}

func TestSetStatusUnknownRecord(t *testing.T) {
	repo := NewPaymentRepository(setupTestDB(t))
	_, err := repo.SetStatus(12345, domain.StatusApproved, "")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestSetStatusInvalidTarget(t *testing.T) {
	repo := NewPaymentRepository(setupTestDB(t))
	p := newPayment(3, domain.StatusPending)
	require.NoError(t, repo.Create(p))
	_, err := repo.SetStatus(p.ID, domain.StatusPending, "")
	assert.Error(t, err)
}

func TestAggregate(t *testing.T) {
	repo := NewPaymentRepository(setupTestDB(t))

	prices := map[string][]int{
		domain.StatusApproved: {39, 100},
		domain.StatusPending:  {39},
		domain.StatusRejected: {50, 39, 39},
	}
	for status, ps := range prices {
		for _, price := range ps {
			p := newPayment(10, status)
			p.CustomPrice = price
			require.NoError(t, repo.Create(p))
		}
	}

	stats, err := repo.Aggregate()
	require.NoError(t, err)
	assert.EqualValues(t, 6, stats.TotalPayments)
	assert.EqualValues(t, 2, stats.ApprovedCount)
	assert.EqualValues(t, 1, stats.PendingCount)
	assert.EqualValues(t, 3, stats.RejectedCount)
	assert.Equal(t, stats.TotalPayments, stats.ApprovedCount+stats.PendingCount+stats.RejectedCount)
	assert.InDelta(t, 306.0, stats.TotalAmount, 0.001)
}

func TestAggregateEmpty(t *testing.T) {
	repo := NewPaymentRepository(setupTestDB(t))
	stats, err := repo.Aggregate()
	require.NoError(t, err)
	assert.EqualValues(t, 0, stats.TotalPayments)
	assert.EqualValues(t, 0, stats.TotalAmount)
}

func TestListByStatus(t *testing.T) {
	repo := NewPaymentRepository(setupTestDB(t))
	require.NoError(t, repo.Create(newPayment(1, domain.StatusPending)))
	require.NoError(t, repo.Create(newPayment(2, domain.StatusApproved)))
	require.NoError(t, repo.Create(newPayment(3, domain.StatusPending)))

	pending, err := repo.ListByStatus(domain.StatusPending, 0)
	require.NoError(t, err)
	assert.Len(t, pending, 2)

	all, err := repo.ListByStatus("", 0)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}
