package controllers

import (
	"errors"
	"net/http"

	"github.com/fintrack-ph/backend/internal/auth"
	"github.com/fintrack-ph/backend/internal/models"
)

type httpError struct {
	Error string `json:"error" example:"there is no expense matching your query"`
}

// status returns the appropriate status for an error
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) {
		return http.StatusNotFound
	}

	if errors.Is(err, auth.ErrUnauthorized) || errors.Is(err, auth.ErrInvalidCredentials) {
		return http.StatusUnauthorized
	}

	return http.StatusBadRequest
}

var (
	errMissingFields  = errors.New("missing required fields")
	errNegativeAmount = errors.New("amounts must not be negative")
)

// Category errors
var (
	errCategoryType     = errors.New("the category type must be Expense or Income")
	errCategoryNotOwned = errors.New("the specified category does not exist")
)

// Budget errors
var (
	errAllocatedNotPositive = errors.New("the allocated amount must be greater than zero")
)

// Invoice errors
var (
	errInvoiceNoItems  = errors.New("an invoice needs at least one item")
	errInvoiceDueDate  = errors.New("the due date must not be before the invoice date")
	errInvoiceQuantity = errors.New("item quantities must be greater than zero")
)

// Savings errors
var (
	errSavingsType = errors.New("the savings type must be Deposit or Withdrawal")
	errDateRange   = errors.New("the start date must not be after the end date")
)

// Transaction errors
var (
	errCurrency = errors.New("the currency must be an ISO 4217 currency code")
)

// User and session errors
var (
	errPasswordTooShort   = errors.New("passwords must be at least 8 characters long")
	errWrongPassword      = errors.New("the current password is incorrect")
	errRevokeCurrent      = errors.New("the current session cannot be revoked, sign out instead")
	errInvalidEmail       = errors.New("the email address is invalid")
	errDetectNumberNeeded = errors.New("the accountNumber field must be set")
)

// Report errors
var (
	errTimeframe = errors.New("the timeframe is not supported")
)
