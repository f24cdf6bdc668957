package controllers

import (
	"github.com/fintrack-ph/backend/internal/finance"
	"github.com/fintrack-ph/backend/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BudgetEditable represents all user configurable parameters
type BudgetEditable struct {
	Name      string          `json:"name" example:"Marketing Q1"`                                   // Name of the budget
	Category  string          `json:"category" example:"Marketing"`                                  // Name of the budgeted category
	Allocated decimal.Decimal `json:"allocated" example:"50000.00" swaggertype:"number" minimum:"0"` // Amount available for the period
	Spent     decimal.Decimal `json:"spent" example:"12500.00" swaggertype:"number" minimum:"0"`     // Amount spent so far
	Period    string          `json:"period" example:"Monthly"`                                      // Budget period, e.g. Monthly
}

func (editable BudgetEditable) model(userID uuid.UUID) models.Budget {
	return models.Budget{
		UserID:    userID,
		Name:      editable.Name,
		Category:  editable.Category,
		Allocated: editable.Allocated,
		Spent:     editable.Spent,
		Period:    editable.Period,
	}
}

type Budget struct {
	models.DefaultModel
	BudgetEditable
	Status     string          `json:"status" example:"On Track" enums:"On Track,Warning,Over Budget"` // Derived from allocated and spent amounts
	Percentage decimal.Decimal `json:"percentage" example:"25" swaggertype:"number"`                   // Share of the allocation that has been spent
}

func newBudget(model models.Budget) Budget {
	return Budget{
		DefaultModel: model.DefaultModel,
		BudgetEditable: BudgetEditable{
			Name:      model.Name,
			Category:  model.Category,
			Allocated: model.Allocated,
			Spent:     model.Spent,
			Period:    model.Period,
		},
		Status:     model.Status,
		Percentage: model.Percentage(),
	}
}

var budgetRequired = []string{"Name", "Category", "Allocated", "Period"}

// validate checks the amounts of a budget after the update is applied.
func (editable BudgetEditable) validate() error {
	if !editable.Allocated.IsPositive() {
		return errAllocatedNotPositive
	}

	return checkAmounts(editable.Spent)
}

// budgetStatus classifies the budget the editable describes.
func (editable BudgetEditable) status() string {
	return string(finance.ClassifyBudget(editable.Allocated, editable.Spent))
}
