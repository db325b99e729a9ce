package repository

import (
	"time"

	"buymyshop/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type MetricRepository struct {
	db *gorm.DB
}

func NewMetricRepository(db *gorm.DB) *MetricRepository {
	return &MetricRepository{db: db}
}

// Day formats a metrics row key for t (UTC calendar date).
func Day(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// Today is the metrics row key for the current UTC date.
func Today() string {
	return Day(time.Now())
}

// RecordVisit bumps the day's visit counters, creating the row on first
// visit. The increment happens inside the upsert statement itself so
// concurrent requests never read stale counts or collide on the date
// unique index.
func (r *MetricRepository) RecordVisit(date string, unique bool) error {
	uniqueDelta := int64(0)
	if unique {
		uniqueDelta = 1
	}
	return r.upsert(&models.SiteMetric{Date: date, Visits: 1, UniqueVisitors: uniqueDelta}, map[string]interface{}{
		"visits":          gorm.Expr("visits + ?", 1),
		"unique_visitors": gorm.Expr("unique_visitors + ?", uniqueDelta),
	})
}

// RecordConversion bumps the day's conversion counter (one per submitted
// payment proof).
func (r *MetricRepository) RecordConversion(date string) error {
	return r.upsert(&models.SiteMetric{Date: date, Conversions: 1}, map[string]interface{}{
		"conversions": gorm.Expr("conversions + ?", 1),
	})
}

func (r *MetricRepository) GetByDate(date string) (*models.SiteMetric, error) {
	var m models.SiteMetric
	if err := r.db.First(&m, "date = ?", date).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *MetricRepository) upsert(m *models.SiteMetric, bumps map[string]interface{}) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "date"}},
		DoUpdates: clause.Assignments(bumps),
	}).Create(m).Error
}
