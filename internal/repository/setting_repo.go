package repository

import (
	"buymyshop/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SettingRepository struct {
	db *gorm.DB
}

func NewSettingRepository(db *gorm.DB) *SettingRepository {
	return &SettingRepository{db: db}
}

// Get returns the admin-configured settings row for a user.
// gorm.ErrRecordNotFound when the admin never configured one.
func (r *SettingRepository) Get(userID int64) (*models.UserSetting, error) {
	var s models.UserSetting
	if err := r.db.First(&s, "user_id = ?", userID).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

// Upsert writes the full settings row, replacing any existing one.
func (r *SettingRepository) Upsert(s *models.UserSetting) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		UpdateAll: true,
	}).Create(s).Error
}
