package controllers

import (
	"github.com/fintrack-ph/backend/internal/finance"
	"github.com/fintrack-ph/backend/internal/models"
	"github.com/google/uuid"
)

// PaymentMethodEditable represents all user configurable parameters
type PaymentMethodEditable struct {
	Type          string `json:"type" example:"Credit Card" enums:"Credit Card,GCash,Maya,Bank Account,Other"` // Kind of payment method
	AccountNumber string `json:"accountNumber" example:"4111 1111 1111 1111"`                                  // Card, account or mobile number
	AccountName   string `json:"accountName" example:"Juan dela Cruz"`                                         // Name on the account
	CVC           string `json:"cvc" example:"123" maxLength:"4"`                                              // Card verification code
	ExpiryDate    string `json:"expiryDate" example:"12/27"`                                                   // Card expiry as MM/YY
	IsDefault     bool   `json:"isDefault" example:"true" default:"false"`                                     // Whether this is the default payment method. Only one method per user can be the default.
	Notes         string `json:"notes" example:""`                                                             // Free text notes
}

func (editable PaymentMethodEditable) model(userID uuid.UUID) models.PaymentMethod {
	return models.PaymentMethod{
		UserID:        userID,
		Type:          editable.Type,
		AccountNumber: editable.AccountNumber,
		AccountName:   editable.AccountName,
		CVC:           editable.CVC,
		ExpiryDate:    editable.ExpiryDate,
		IsDefault:     editable.IsDefault,
		Notes:         editable.Notes,
	}
}

type PaymentMethod struct {
	models.DefaultModel
	PaymentMethodEditable
	Provider string `json:"provider" example:"Visa"` // Provider detected from the account number, empty when unknown
}

func newPaymentMethod(model models.PaymentMethod) PaymentMethod {
	method := PaymentMethod{
		DefaultModel: model.DefaultModel,
		PaymentMethodEditable: PaymentMethodEditable{
			Type:          model.Type,
			AccountNumber: model.AccountNumber,
			AccountName:   model.AccountName,
			CVC:           model.CVC,
			ExpiryDate:    model.ExpiryDate,
			IsDefault:     model.IsDefault,
			Notes:         model.Notes,
		},
	}

	// Detection is independent of the type chosen by the user here
	if detection := finance.DetectPaymentProvider(model.AccountNumber, ""); detection != nil {
		method.Provider = detection.Provider
	}

	return method
}

var paymentMethodRequired = []string{"Type", "AccountNumber", "AccountName"}

type DetectRequest struct {
	AccountNumber string `json:"accountNumber" example:"5500 0000 0000 0004"` // Number to inspect
	Type          string `json:"type" example:"Other"`                        // Currently selected type. Types other than "Credit Card" and "Other" disable detection.
}

type DetectResponse struct {
	Detected  bool   `json:"detected" example:"true"`                 // Whether a provider could be suggested
	Formatted string `json:"formatted" example:"5500 0000 0000 0004"` // Account number digits grouped by four
	*finance.Detection
}
