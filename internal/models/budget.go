package models

import (
	"strings"

	"github.com/fintrack-ph/backend/internal/finance"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Budget is an amount allocated to a category for a period.
type Budget struct {
	DefaultModel
	UserID    uuid.UUID `gorm:"type:varchar(36);not null;index"`
	User      User      `gorm:"constraint:OnDelete:CASCADE"`
	Name      string    `gorm:"not null"`
	Category  string
	Allocated decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Spent     decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Period    string
	Status    string `gorm:"type:varchar(32)"`
}

// BeforeSave derives the status from the allocated and spent amounts.
func (b *Budget) BeforeSave(_ *gorm.DB) error {
	b.Name = strings.TrimSpace(b.Name)
	b.Category = strings.TrimSpace(b.Category)
	b.Period = strings.TrimSpace(b.Period)
	b.Status = string(finance.ClassifyBudget(b.Allocated, b.Spent))
	return nil
}

// Percentage is the share of the allocation that has been spent.
func (b Budget) Percentage() decimal.Decimal {
	return finance.BudgetPercentage(b.Allocated, b.Spent)
}
