package models

import (
	"strings"

	"github.com/fintrack-ph/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Savings is a deposit into or withdrawal from savings.
type Savings struct {
	DefaultModel
	UserID      uuid.UUID `gorm:"type:varchar(36);not null;index"`
	User        User      `gorm:"constraint:OnDelete:CASCADE"`
	Description string    `gorm:"not null"`
	Type        string    `gorm:"type:varchar(16);not null;index"`
	Amount      decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Date        types.Date      `gorm:"index"`
	Category    string
	Notes       string
}

func (Savings) TableName() string {
	return "savings"
}

func (s *Savings) BeforeSave(_ *gorm.DB) error {
	s.Description = strings.TrimSpace(s.Description)
	s.Category = strings.TrimSpace(s.Category)
	s.Notes = strings.TrimSpace(s.Notes)
	return nil
}
