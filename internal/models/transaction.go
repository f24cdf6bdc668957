package models

import (
	"strings"

	"github.com/fintrack-ph/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// DefaultCurrency is used for transactions created without a currency.
const DefaultCurrency = "PHP"

// Transaction is a payment to a recipient.
//
// The TransactionID is the human readable number, unique per user.
type Transaction struct {
	DefaultModel
	UserID         uuid.UUID `gorm:"type:varchar(36);not null;uniqueIndex:idx_transaction_number,priority:1"`
	User           User      `gorm:"constraint:OnDelete:CASCADE"`
	TransactionID  string    `gorm:"type:varchar(32);not null;uniqueIndex:idx_transaction_number,priority:2"`
	Date           types.Date `gorm:"index"`
	RecipientName  string
	RecipientEmail string
	Type           string          `gorm:"type:varchar(32);index"`
	Amount         decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Currency       string          `gorm:"type:varchar(3)"`
	PaymentMethod  string
	CardLastFour   string `gorm:"type:varchar(4)"`
	Status         string `gorm:"type:varchar(32);index"`
	CategoryID     *uuid.UUID `gorm:"type:varchar(36);index"`
	Category       *Category  `gorm:"constraint:OnDelete:SET NULL"`
}

func (t *Transaction) BeforeSave(_ *gorm.DB) error {
	t.RecipientName = strings.TrimSpace(t.RecipientName)
	t.RecipientEmail = strings.TrimSpace(t.RecipientEmail)
	t.PaymentMethod = strings.TrimSpace(t.PaymentMethod)
	t.CardLastFour = strings.TrimSpace(t.CardLastFour)

	t.Currency = strings.ToUpper(strings.TrimSpace(t.Currency))
	if t.Currency == "" {
		t.Currency = DefaultCurrency
	}

	t.Status = strings.TrimSpace(t.Status)
	if t.Status == "" {
		t.Status = DefaultStatus
	}

	// Ensure that the category ID is nil and not a pointer to a nil UUID
	if t.CategoryID != nil && *t.CategoryID == uuid.Nil {
		t.CategoryID = nil
	}
	return nil
}
