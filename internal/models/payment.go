package models

import (
	"time"
)

// WebsitePayment is one payment-proof submission from the landing page.
// A user may submit more than once; user_id is indexed but not unique.
type WebsitePayment struct {
	ID               uint   `gorm:"primaryKey" json:"id"`
	UserID           int64  `gorm:"not null;index" json:"user_id"`
	TelegramUsername string `gorm:"size:255" json:"telegram_username"`
	FirstName        string `gorm:"size:255;not null" json:"first_name"`
	LastName         string `gorm:"size:255" json:"last_name"`
	PaymentMethod    string `gorm:"size:20;not null" json:"payment_method"` // bank, paybox, bit, paypal, telegram
	ProofImage       string `gorm:"size:512" json:"proof_image"`
	PersonalLink     string `gorm:"size:512;not null" json:"personal_link"`
	CustomPrice      int    `gorm:"not null;default:39" json:"custom_price"`
	BSCWallet        string `gorm:"size:255" json:"bsc_wallet"`

	// Snapshot of admin settings at submission time.
	BankAccount string `gorm:"size:512" json:"bank_account"`
	GroupLink   string `gorm:"size:512" json:"group_link"`

	Status       string `gorm:"size:20;not null;default:'pending';index" json:"status"` // pending, approved, rejected
	RejectReason string `gorm:"size:512" json:"reject_reason,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (WebsitePayment) TableName() string {
	return "website_payments"
}
