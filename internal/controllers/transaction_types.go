package controllers

import (
	"github.com/fintrack-ph/backend/internal/finance"
	"github.com/fintrack-ph/backend/internal/models"
	"github.com/fintrack-ph/backend/internal/types"
	ft_uuid "github.com/fintrack-ph/backend/internal/uuid"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

// TransactionEditable represents all user configurable parameters
type TransactionEditable struct {
	Date           types.Date      `json:"date" example:"2024-01-20" swaggertype:"string" format:"date"` // Day of the transaction
	RecipientName  string          `json:"recipientName" example:"Maria Santos"`                         // Who received the money
	RecipientEmail string          `json:"recipientEmail" example:"maria@example.com"`                   // Email address of the recipient
	Type           string          `json:"type" example:"Transfer"`                                      // Kind of transaction
	Amount         decimal.Decimal `json:"amount" example:"2500.00" swaggertype:"number" minimum:"0"`    // Amount in the currency of the transaction
	Currency       string          `json:"currency" example:"PHP" default:"PHP"`                         // ISO 4217 currency code
	PaymentMethod  string          `json:"paymentMethod" example:"Credit Card"`                          // How the transaction was paid
	CardLastFour   string          `json:"cardLastFour" example:"4242" maxLength:"4"`                    // Card used, only the last four digits are stored
	Status         string          `json:"status" example:"Completed" default:"Pending"`                 // Status of the transaction
	CategoryID     *uuid.UUID      `json:"categoryId" example:"52d967d3-33f4-4b04-9ba7-772e5ab9d0ce"`    // ID of the category, optional
}

func (editable TransactionEditable) model(userID uuid.UUID) models.Transaction {
	return models.Transaction{
		UserID:         userID,
		Date:           editable.Date,
		RecipientName:  editable.RecipientName,
		RecipientEmail: editable.RecipientEmail,
		Type:           editable.Type,
		Amount:         editable.Amount,
		Currency:       editable.Currency,
		PaymentMethod:  editable.PaymentMethod,
		CardLastFour:   finance.LastFour(editable.CardLastFour),
		Status:         editable.Status,
		CategoryID:     editable.CategoryID,
	}
}

// validate checks the amount, currency and category of a transaction.
// Only fields that are set are checked.
func (editable TransactionEditable) validate(c categoryChecker) error {
	err := checkAmounts(editable.Amount)
	if err != nil {
		return err
	}

	if editable.Currency != "" {
		if _, err := currency.ParseISO(editable.Currency); err != nil {
			return errCurrency
		}
	}

	if editable.CategoryID != nil && *editable.CategoryID != uuid.Nil {
		return c(*editable.CategoryID)
	}

	return nil
}

// categoryChecker verifies that a category can be referenced.
type categoryChecker func(id uuid.UUID) error

type Transaction struct {
	models.DefaultModel
	TransactionID string `json:"transactionId" example:"#0001"` // Generated, unique per user
	TransactionEditable
	Category *Category `json:"category"` // The category of the transaction
}

func newTransaction(model models.Transaction) Transaction {
	transaction := Transaction{
		DefaultModel:  model.DefaultModel,
		TransactionID: model.TransactionID,
		TransactionEditable: TransactionEditable{
			Date:           model.Date,
			RecipientName:  model.RecipientName,
			RecipientEmail: model.RecipientEmail,
			Type:           model.Type,
			Amount:         model.Amount,
			Currency:       model.Currency,
			PaymentMethod:  model.PaymentMethod,
			CardLastFour:   model.CardLastFour,
			Status:         model.Status,
			CategoryID:     model.CategoryID,
		},
	}

	if model.Category != nil {
		category := newCategory(*model.Category)
		transaction.Category = &category
	}

	return transaction
}

var (
	transactionRequired       = []string{"Date", "RecipientName", "Type", "Amount", "PaymentMethod"}
	transactionUpdateRequired = append([]string{"Status", "Currency"}, transactionRequired...)
)

type TransactionQueryFilter struct {
	Type       string       `form:"type"`                          // By type
	Status     string       `form:"status"`                        // By status
	CategoryID ft_uuid.UUID `form:"categoryId"`                    // By ID of the category
	Recipient  string       `form:"recipient" filterField:"false"` // By recipient name, supports * as wildcard
}

func (f TransactionQueryFilter) model() models.Transaction {
	transaction := models.Transaction{
		Type:   f.Type,
		Status: f.Status,
	}

	if !f.CategoryID.IsNil() {
		transaction.CategoryID = &f.CategoryID.UUID
	}

	return transaction
}
