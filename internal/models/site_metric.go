package models

import "time"

// SiteMetric counts landing-page traffic for one calendar day.
type SiteMetric struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	Date           string    `gorm:"size:10;uniqueIndex;not null" json:"date"` // YYYY-MM-DD
	Visits         int64     `gorm:"not null;default:0" json:"visits"`
	UniqueVisitors int64     `gorm:"not null;default:0" json:"unique_visitors"`
	Conversions    int64     `gorm:"not null;default:0" json:"conversions"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func (SiteMetric) TableName() string {
	return "site_metrics"
}
