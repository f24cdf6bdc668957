package models

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PaymentMethod is a card, bank account or e-wallet of a user.
//
// At most one payment method per user is the default. This is enforced by
// a partial unique index where the database supports it.
type PaymentMethod struct {
	DefaultModel
	UserID        uuid.UUID `gorm:"type:varchar(36);not null;index"`
	User          User      `gorm:"constraint:OnDelete:CASCADE"`
	Type          string    `gorm:"type:varchar(32);not null"`
	AccountNumber string    `gorm:"not null"`
	AccountName   string    `gorm:"not null"`
	CVC           string    `gorm:"column:cvc;type:varchar(4)"`
	ExpiryDate    string    `gorm:"type:varchar(7)"`
	IsDefault     bool      `gorm:"not null;default:false"`
	Notes         string
}

func (p *PaymentMethod) BeforeSave(_ *gorm.DB) error {
	p.Type = strings.TrimSpace(p.Type)
	p.AccountNumber = strings.TrimSpace(p.AccountNumber)
	p.AccountName = strings.TrimSpace(p.AccountName)
	p.CVC = strings.TrimSpace(p.CVC)
	p.ExpiryDate = strings.TrimSpace(p.ExpiryDate)
	p.Notes = strings.TrimSpace(p.Notes)
	return nil
}

// SetDefaultPaymentMethod makes the payment method with the given ID the
// only default payment method of the user.
//
// It must be called inside a database transaction.
func SetDefaultPaymentMethod(tx *gorm.DB, userID, id uuid.UUID) error {
	err := tx.Model(&PaymentMethod{}).
		Scopes(OwnedBy(userID)).
		Where("is_default = ? AND id <> ?", true, id).
		Update("is_default", false).Error
	if err != nil {
		return err
	}

	return tx.Model(&PaymentMethod{}).
		Scopes(OwnedBy(userID)).
		Where("id = ?", id).
		Update("is_default", true).Error
}
