package models

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Category types.
const (
	CategoryTypeExpense = "Expense"
	CategoryTypeIncome  = "Income"
)

// DefaultCategoryColor is used for categories created without a color.
const DefaultCategoryColor = "#3b82f6"

// Category groups expenses, revenue and transactions.
type Category struct {
	DefaultModel
	UserID      uuid.UUID `gorm:"type:varchar(36);not null;index"`
	User        User      `gorm:"constraint:OnDelete:CASCADE"`
	Name        string    `gorm:"not null"`
	Type        string    `gorm:"type:varchar(16);not null;index"`
	Description string
	Color       string `gorm:"type:varchar(16)"`
}

func (c *Category) BeforeSave(_ *gorm.DB) error {
	c.Name = strings.TrimSpace(c.Name)
	c.Description = strings.TrimSpace(c.Description)
	c.Color = strings.TrimSpace(c.Color)

	if c.Color == "" {
		c.Color = DefaultCategoryColor
	}
	return nil
}
