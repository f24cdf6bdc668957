package controllers

import (
	"github.com/fintrack-ph/backend/internal/finance"
	"github.com/fintrack-ph/backend/internal/models"
	"github.com/fintrack-ph/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SavingsEditable represents all user configurable parameters
type SavingsEditable struct {
	Description string          `json:"description" example:"Emergency fund"`                         // What the savings entry is for
	Type        string          `json:"type" example:"Deposit" enums:"Deposit,Withdrawal"`            // Direction of the money
	Amount      decimal.Decimal `json:"amount" example:"5000.00" swaggertype:"number" minimum:"0"`    // Amount in PHP
	Date        types.Date      `json:"date" example:"2024-01-15" swaggertype:"string" format:"date"` // Day of the deposit or withdrawal
	Category    string          `json:"category" example:"Emergency"`                                 // Name of the savings goal
	Notes       string          `json:"notes" example:""`                                             // Free text notes
}

func (editable SavingsEditable) model(userID uuid.UUID) models.Savings {
	return models.Savings{
		UserID:      userID,
		Description: editable.Description,
		Type:        editable.Type,
		Amount:      editable.Amount,
		Date:        editable.Date,
		Category:    editable.Category,
		Notes:       editable.Notes,
	}
}

type Savings struct {
	models.DefaultModel
	SavingsEditable
}

func newSavings(model models.Savings) Savings {
	return Savings{
		DefaultModel: model.DefaultModel,
		SavingsEditable: SavingsEditable{
			Description: model.Description,
			Type:        model.Type,
			Amount:      model.Amount,
			Date:        model.Date,
			Category:    model.Category,
			Notes:       model.Notes,
		},
	}
}

var savingsRequired = []string{"Description", "Type", "Amount", "Date"}

func validSavingsType(t string) bool {
	return t == finance.SavingsDeposit || t == finance.SavingsWithdrawal
}

type SavingsQueryFilter struct {
	Type      string     `form:"type"`                          // By type
	StartDate types.Date `form:"startDate" filterField:"false"` // First day to include
	EndDate   types.Date `form:"endDate" filterField:"false"`   // Last day to include
}

func (f SavingsQueryFilter) model() models.Savings {
	return models.Savings{
		Type: f.Type,
	}
}
