package controllers

import (
	ft_uuid "github.com/fintrack-ph/backend/internal/uuid"
)

type URIID struct {
	ID ft_uuid.UUID `uri:"id" binding:"required" format:"UUID"` // ID of the resource
}

type QueryTimeframe struct {
	Timeframe string `form:"timeframe" example:"6months"` // Length of the reporting window
}

type messageResponse struct {
	Message string `json:"message" example:"Expense deleted successfully"`
}
