package models

import "time"

// UserSetting holds admin-configured defaults for one Telegram user.
// Read at submission time and denormalized into the payment record.
type UserSetting struct {
	UserID      int64  `gorm:"primaryKey;autoIncrement:false" json:"user_id"`
	BankAccount string `gorm:"size:512" json:"bank_account"`
	GroupLink   string `gorm:"size:512" json:"group_link"`
	CustomPrice int    `gorm:"not null;default:39" json:"custom_price"`
	BSCWallet   string `gorm:"size:255" json:"bsc_wallet"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (UserSetting) TableName() string {
	return "user_settings"
}
