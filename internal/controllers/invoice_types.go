package controllers

import (
	"github.com/fintrack-ph/backend/internal/models"
	"github.com/fintrack-ph/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
)

// InvoiceItemEditable is a line of an invoice as sent by clients
type InvoiceItemEditable struct {
	Description string          `json:"description" example:"Website redesign"`                    // What is billed
	Quantity    decimal.Decimal `json:"quantity" example:"2" swaggertype:"number" minimum:"0"`     // Number of units
	Price       decimal.Decimal `json:"price" example:"12500.00" swaggertype:"number" minimum:"0"` // Price per unit
}

type InvoiceItem struct {
	InvoiceItemEditable
	Amount decimal.Decimal `json:"amount" example:"25000.00" swaggertype:"number"` // Quantity times price
}

// InvoiceEditable represents all user configurable parameters
type InvoiceEditable struct {
	Customer string                `json:"customer" example:"Juan dela Cruz"`                               // Who the invoice is addressed to
	Date     types.Date            `json:"date" example:"2024-01-05" swaggertype:"string" format:"date"`    // Day the invoice was issued
	DueDate  types.Date            `json:"dueDate" example:"2024-02-05" swaggertype:"string" format:"date"` // Day the invoice is due
	Status   string                `json:"status" example:"Sent" enums:"Draft,Sent,Paid" default:"Draft"`   // Status of the invoice
	Items    []InvoiceItemEditable `json:"items"`                                                           // Invoice lines
	Tax      decimal.Decimal       `json:"tax" example:"3000.00" swaggertype:"number" minimum:"0"`          // Tax added to the subtotal
	Notes    string                `json:"notes" example:"Payable via bank transfer"`                       // Free text notes
}

func (editable InvoiceEditable) model(userID uuid.UUID) models.Invoice {
	invoice := models.Invoice{
		UserID:   userID,
		Customer: editable.Customer,
		Date:     editable.Date,
		DueDate:  editable.DueDate,
		Status:   editable.Status,
		Tax:      editable.Tax,
		Notes:    editable.Notes,
	}

	for _, item := range editable.Items {
		invoice.Items = append(invoice.Items, models.InvoiceItem{
			Description: item.Description,
			Quantity:    item.Quantity,
			Price:       item.Price,
		})
	}

	invoice.Recalculate()
	return invoice
}

// validate checks the items and amounts of an invoice.
func (editable InvoiceEditable) validate() error {
	err := checkAmounts(editable.Tax)
	if err != nil {
		return err
	}

	for _, item := range editable.Items {
		if blank := checkRequired(item, []any{"Description"}, true, "Description"); blank != nil {
			return blank
		}

		if !item.Quantity.IsPositive() {
			return errInvoiceQuantity
		}

		err = checkAmounts(item.Price)
		if err != nil {
			return err
		}
	}

	return nil
}

type Invoice struct {
	models.DefaultModel
	InvoiceNumber string `json:"invoiceNumber" example:"INV-0001"` // Generated, unique per user
	InvoiceEditable
	Items    []InvoiceItem   `json:"items"`                                            // Invoice lines with their amounts
	Subtotal decimal.Decimal `json:"subtotal" example:"25000.00" swaggertype:"number"` // Sum of all item amounts
	Total    decimal.Decimal `json:"total" example:"28000.00" swaggertype:"number"`    // Subtotal plus tax
	Overdue  bool            `json:"overdue" example:"false"`                          // Due date has passed and the invoice is not paid
}

func newInvoice(model models.Invoice, today types.Date) Invoice {
	invoice := Invoice{
		DefaultModel:  model.DefaultModel,
		InvoiceNumber: model.InvoiceNumber,
		InvoiceEditable: InvoiceEditable{
			Customer: model.Customer,
			Date:     model.Date,
			DueDate:  model.DueDate,
			Status:   model.Status,
			Tax:      model.Tax,
			Notes:    model.Notes,
		},
		Items:    make([]InvoiceItem, 0, len(model.Items)),
		Subtotal: model.Subtotal,
		Total:    model.Total,
		Overdue:  model.Overdue(today),
	}

	items := slices.Clone(model.Items)
	slices.SortFunc(items, func(a, b models.InvoiceItem) int { return a.Position - b.Position })

	for _, item := range items {
		invoice.Items = append(invoice.Items, InvoiceItem{
			InvoiceItemEditable: InvoiceItemEditable{
				Description: item.Description,
				Quantity:    item.Quantity,
				Price:       item.Price,
			},
			Amount: item.Amount,
		})
	}

	return invoice
}

var invoiceRequired = []string{"Customer", "Date", "DueDate", "Items"}

type InvoiceQueryFilter struct {
	Status string `form:"status"` // By status
}

func (f InvoiceQueryFilter) model() models.Invoice {
	return models.Invoice{
		Status: f.Status,
	}
}
