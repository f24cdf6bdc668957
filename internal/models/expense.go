package models

import (
	"strings"

	"github.com/fintrack-ph/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// DefaultStatus is used for expenses, revenue and transactions created without a status.
const DefaultStatus = "Pending"

// Expense is money spent.
type Expense struct {
	DefaultModel
	UserID        uuid.UUID `gorm:"type:varchar(36);not null;index"`
	User          User      `gorm:"constraint:OnDelete:CASCADE"`
	Description   string    `gorm:"not null"`
	CategoryID    uuid.UUID `gorm:"type:varchar(36);not null;index"`
	Category      Category  `gorm:"constraint:OnDelete:RESTRICT"`
	Amount        decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Date          types.Date      `gorm:"index"`
	PaymentMethod string
	Status        string `gorm:"type:varchar(32);index"`
	Vendor        string
	Notes         string
}

func (e *Expense) BeforeSave(_ *gorm.DB) error {
	e.Description = strings.TrimSpace(e.Description)
	e.PaymentMethod = strings.TrimSpace(e.PaymentMethod)
	e.Vendor = strings.TrimSpace(e.Vendor)
	e.Notes = strings.TrimSpace(e.Notes)

	e.Status = strings.TrimSpace(e.Status)
	if e.Status == "" {
		e.Status = DefaultStatus
	}
	return nil
}

// Revenue is money received.
type Revenue struct {
	DefaultModel
	UserID        uuid.UUID `gorm:"type:varchar(36);not null;index"`
	User          User      `gorm:"constraint:OnDelete:CASCADE"`
	Description   string    `gorm:"not null"`
	CategoryID    uuid.UUID `gorm:"type:varchar(36);not null;index"`
	Category      Category  `gorm:"constraint:OnDelete:RESTRICT"`
	Amount        decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Date          types.Date      `gorm:"index"`
	PaymentMethod string
	Status        string `gorm:"type:varchar(32);index"`
	Customer      string
	Notes         string
}

// TableName keeps the uncountable name.
func (Revenue) TableName() string {
	return "revenue"
}

func (r *Revenue) BeforeSave(_ *gorm.DB) error {
	r.Description = strings.TrimSpace(r.Description)
	r.PaymentMethod = strings.TrimSpace(r.PaymentMethod)
	r.Customer = strings.TrimSpace(r.Customer)
	r.Notes = strings.TrimSpace(r.Notes)

	r.Status = strings.TrimSpace(r.Status)
	if r.Status == "" {
		r.Status = DefaultStatus
	}
	return nil
}
