package controllers

import (
	"github.com/fintrack-ph/backend/internal/models"
	"github.com/fintrack-ph/backend/internal/types"
	ft_uuid "github.com/fintrack-ph/backend/internal/uuid"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RevenueEditable represents all user configurable parameters
type RevenueEditable struct {
	Description   string          `json:"description" example:"Consulting fee"`                                           // What the money was received for
	CategoryID    uuid.UUID       `json:"categoryId" example:"52d967d3-33f4-4b04-9ba7-772e5ab9d0ce"`                      // ID of the category
	Amount        decimal.Decimal `json:"amount" example:"15000.00" swaggertype:"number" minimum:"0"`                     // Amount in PHP
	Date          types.Date      `json:"date" example:"2024-01-05" swaggertype:"string" format:"date"`                   // Day the revenue was received
	PaymentMethod string          `json:"paymentMethod" example:"Bank Transfer"`                                          // How the revenue was received
	Status        string          `json:"status" example:"Received" enums:"Pending,Received,Cancelled" default:"Pending"` // Payment status
	Customer      string          `json:"customer" example:"Acme Corp"`                                                   // Who paid
	Notes         string          `json:"notes" example:""`                                                               // Free text notes
}

func (editable RevenueEditable) model(userID uuid.UUID) models.Revenue {
	return models.Revenue{
		UserID:        userID,
		Description:   editable.Description,
		CategoryID:    editable.CategoryID,
		Amount:        editable.Amount,
		Date:          editable.Date,
		PaymentMethod: editable.PaymentMethod,
		Status:        editable.Status,
		Customer:      editable.Customer,
		Notes:         editable.Notes,
	}
}

type Revenue struct {
	models.DefaultModel
	RevenueEditable
	Category *Category `json:"category"` // The category of the revenue
}

func newRevenue(model models.Revenue) Revenue {
	revenue := Revenue{
		DefaultModel: model.DefaultModel,
		RevenueEditable: RevenueEditable{
			Description:   model.Description,
			CategoryID:    model.CategoryID,
			Amount:        model.Amount,
			Date:          model.Date,
			PaymentMethod: model.PaymentMethod,
			Status:        model.Status,
			Customer:      model.Customer,
			Notes:         model.Notes,
		},
	}

	if model.Category.ID != uuid.Nil {
		category := newCategory(model.Category)
		revenue.Category = &category
	}

	return revenue
}

var (
	revenueRequired       = []string{"Description", "CategoryID", "Amount", "Date", "PaymentMethod"}
	revenueUpdateRequired = append([]string{"Status"}, revenueRequired...)
)

type RevenueQueryFilter struct {
	CategoryID  ft_uuid.UUID `form:"categoryId"`                      // By ID of the category
	Status      string       `form:"status"`                          // By status
	Description string       `form:"description" filterField:"false"` // By description, supports * as wildcard
}

func (f RevenueQueryFilter) model() models.Revenue {
	return models.Revenue{
		CategoryID: f.CategoryID.UUID,
		Status:     f.Status,
	}
}
