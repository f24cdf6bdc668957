package controllers

import (
	"github.com/fintrack-ph/backend/internal/models"
	"github.com/fintrack-ph/backend/internal/types"
	ft_uuid "github.com/fintrack-ph/backend/internal/uuid"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ExpenseEditable represents all user configurable parameters
type ExpenseEditable struct {
	Description   string          `json:"description" example:"Office rent"`                                      // What the money was spent on
	CategoryID    uuid.UUID       `json:"categoryId" example:"52d967d3-33f4-4b04-9ba7-772e5ab9d0ce"`              // ID of the category
	Amount        decimal.Decimal `json:"amount" example:"15000.00" swaggertype:"number" minimum:"0"`             // Amount in PHP
	Date          types.Date      `json:"date" example:"2024-01-05" swaggertype:"string" format:"date"`           // Day of the expense
	PaymentMethod string          `json:"paymentMethod" example:"Bank Transfer"`                                  // How the expense was paid
	Status        string          `json:"status" example:"Paid" enums:"Pending,Paid,Cancelled" default:"Pending"` // Payment status
	Vendor        string          `json:"vendor" example:"Ayala Land"`                                            // Who was paid
	Notes         string          `json:"notes" example:""`                                                       // Free text notes
}

func (editable ExpenseEditable) model(userID uuid.UUID) models.Expense {
	return models.Expense{
		UserID:        userID,
		Description:   editable.Description,
		CategoryID:    editable.CategoryID,
		Amount:        editable.Amount,
		Date:          editable.Date,
		PaymentMethod: editable.PaymentMethod,
		Status:        editable.Status,
		Vendor:        editable.Vendor,
		Notes:         editable.Notes,
	}
}

type Expense struct {
	models.DefaultModel
	ExpenseEditable
	Category *Category `json:"category"` // The category of the expense
}

func newExpense(model models.Expense) Expense {
	expense := Expense{
		DefaultModel: model.DefaultModel,
		ExpenseEditable: ExpenseEditable{
			Description:   model.Description,
			CategoryID:    model.CategoryID,
			Amount:        model.Amount,
			Date:          model.Date,
			PaymentMethod: model.PaymentMethod,
			Status:        model.Status,
			Vendor:        model.Vendor,
			Notes:         model.Notes,
		},
	}

	if model.Category.ID != uuid.Nil {
		category := newCategory(model.Category)
		expense.Category = &category
	}

	return expense
}

var (
	expenseRequired       = []string{"Description", "CategoryID", "Amount", "Date", "PaymentMethod"}
	expenseUpdateRequired = append([]string{"Status"}, expenseRequired...)
)

type ExpenseQueryFilter struct {
	CategoryID  ft_uuid.UUID `form:"categoryId"`                      // By ID of the category
	Status      string       `form:"status"`                          // By status
	Description string       `form:"description" filterField:"false"` // By description, supports * as wildcard
}

func (f ExpenseQueryFilter) model() models.Expense {
	return models.Expense{
		CategoryID: f.CategoryID.UUID,
		Status:     f.Status,
	}
}
