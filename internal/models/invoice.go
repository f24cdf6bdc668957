package models

import (
	"strings"

	"github.com/fintrack-ph/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Invoice statuses with meaning for the backend.
const (
	InvoiceStatusDraft = "Draft"
	InvoiceStatusPaid  = "Paid"
)

// Invoice is a bill sent to a customer.
//
// Invoice numbers are unique per user.
type Invoice struct {
	DefaultModel
	UserID        uuid.UUID `gorm:"type:varchar(36);not null;uniqueIndex:idx_invoice_number,priority:1"`
	User          User      `gorm:"constraint:OnDelete:CASCADE"`
	InvoiceNumber string    `gorm:"type:varchar(32);not null;uniqueIndex:idx_invoice_number,priority:2"`
	Customer      string    `gorm:"not null"`
	Date          types.Date `gorm:"index"`
	DueDate       types.Date
	Status        string        `gorm:"type:varchar(32);index"`
	Items         []InvoiceItem `gorm:"constraint:OnDelete:CASCADE"`
	Subtotal      decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Tax           decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Total         decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Notes         string
}

// InvoiceItem is a line on an invoice.
type InvoiceItem struct {
	DefaultModel
	InvoiceID   uuid.UUID `gorm:"type:varchar(36);not null;index"`
	Position    int
	Description string
	Quantity    decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Price       decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Amount      decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
}

func (i *Invoice) BeforeSave(_ *gorm.DB) error {
	i.Customer = strings.TrimSpace(i.Customer)
	i.Notes = strings.TrimSpace(i.Notes)

	i.Status = strings.TrimSpace(i.Status)
	if i.Status == "" {
		i.Status = InvoiceStatusDraft
	}
	return nil
}

func (i *InvoiceItem) BeforeSave(_ *gorm.DB) error {
	i.Description = strings.TrimSpace(i.Description)
	return nil
}

// Recalculate sets the amount of every item, the subtotal as the sum of all
// item amounts and the total as subtotal plus tax.
func (i *Invoice) Recalculate() {
	i.Subtotal = decimal.Zero
	for n := range i.Items {
		i.Items[n].Position = n
		i.Items[n].Amount = i.Items[n].Quantity.Mul(i.Items[n].Price)
		i.Subtotal = i.Subtotal.Add(i.Items[n].Amount)
	}
	i.Total = i.Subtotal.Add(i.Tax)
}

// Overdue reports whether the invoice is unpaid after its due date.
func (i Invoice) Overdue(today types.Date) bool {
	return !i.DueDate.IsZero() && i.DueDate.Before(today) && i.Status != InvoiceStatusPaid
}
