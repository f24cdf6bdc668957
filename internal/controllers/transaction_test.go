package controllers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/fintrack-ph/backend/internal/controllers"
	"github.com/fintrack-ph/backend/internal/models"
	"github.com/fintrack-ph/backend/internal/types"
	"github.com/fintrack-ph/backend/test"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) createTestTransaction(t controllers.TransactionEditable, expectedStatus ...int) controllers.Transaction {
	if t.Date.IsZero() {
		t.Date = types.NewDate(2024, 1, 20)
	}

	if t.RecipientName == "" {
		t.RecipientName = "Juan Dela Cruz"
	}

	if t.Type == "" {
		t.Type = "Transfer"
	}

	if t.Amount.IsZero() {
		t.Amount = decimal.NewFromInt(2500)
	}

	if t.PaymentMethod == "" {
		t.PaymentMethod = "Credit Card"
	}

	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	r := suite.request(http.MethodPost, "http://example.com/api/transactions", t)
	test.AssertHTTPStatus(suite.T(), &r, expectedStatus...)

	var transaction controllers.Transaction
	if r.Code == http.StatusCreated {
		test.DecodeResponse(suite.T(), &r, &transaction)
	}
	return transaction
}

func (suite *TestSuiteStandard) TestTransactionsCreate() {
	category := suite.createTestCategory(controllers.CategoryEditable{})

	transaction := suite.createTestTransaction(controllers.TransactionEditable{
		CardLastFour: "4111 1111 1111 1234",
		CategoryID:   &category.ID,
	})

	suite.Assert().Equal("#0001", transaction.TransactionID)
	suite.Assert().Equal(models.DefaultCurrency, transaction.Currency)
	suite.Assert().Equal(models.DefaultStatus, transaction.Status)
	suite.Assert().Equal("1234", transaction.CardLastFour, "only the last four digits are stored")
	suite.Require().NotNil(transaction.Category)
	suite.Assert().Equal(category.ID, transaction.Category.ID)

	second := suite.createTestTransaction(controllers.TransactionEditable{Currency: "USD"})
	suite.Assert().Equal("#0002", second.TransactionID)
	suite.Assert().Equal("USD", second.Currency)
	suite.Assert().Nil(second.Category)
}

func (suite *TestSuiteStandard) TestTransactionsCreateFails() {
	unknown := uuid.New()

	tests := []struct {
		name        string
		transaction controllers.TransactionEditable
		err         string
	}{
		{"Invalid currency", controllers.TransactionEditable{Currency: "PESO"}, "the currency must be an ISO 4217 currency code"},
		{"Negative amount", controllers.TransactionEditable{Amount: decimal.NewFromInt(-1)}, "amounts must not be negative"},
		{"Unknown category", controllers.TransactionEditable{CategoryID: &unknown}, "the specified category does not exist"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			suite.createTestTransaction(tt.transaction, http.StatusBadRequest)
		})
	}
}

func (suite *TestSuiteStandard) TestTransactionsList() {
	category := suite.createTestCategory(controllers.CategoryEditable{})
	suite.createTestTransaction(controllers.TransactionEditable{RecipientName: "Maria Santos", Type: "Payment", CategoryID: &category.ID})
	suite.createTestTransaction(controllers.TransactionEditable{RecipientName: "Jose Rizal", Type: "Transfer", Status: "Completed"})
	suite.createTestTransaction(controllers.TransactionEditable{RecipientName: "Maria Clara", Type: "Transfer"})

	tests := []struct {
		name  string
		query string
		len   int
	}{
		{"All", "", 3},
		{"By type", "type=Transfer", 2},
		{"By status", "status=Completed", 1},
		{"By category", fmt.Sprintf("categoryId=%s", category.ID), 1},
		{"By recipient", "recipient=maria*", 2},
		{"Type and recipient", "type=Transfer&recipient=maria", 1},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := suite.request(http.MethodGet, fmt.Sprintf("http://example.com/api/transactions?%s", tt.query), "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var transactions []controllers.Transaction
			test.DecodeResponse(t, &r, &transactions)
			assert.Len(t, transactions, tt.len)
		})
	}
}

func (suite *TestSuiteStandard) TestTransactionsUpdate() {
	transaction := suite.createTestTransaction(controllers.TransactionEditable{})
	path := fmt.Sprintf("http://example.com/api/transactions/%s", transaction.ID)

	r := suite.request(http.MethodPatch, path, map[string]any{"status": "Completed", "cardLastFour": "5555-4444-3333-2222"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var updated controllers.Transaction
	test.DecodeResponse(suite.T(), &r, &updated)
	suite.Assert().Equal("Completed", updated.Status)
	suite.Assert().Equal("2222", updated.CardLastFour)
	suite.Assert().Equal(transaction.TransactionID, updated.TransactionID)

	for _, body := range []map[string]any{{"currency": ""}, {"currency": "XYZW"}, {"status": " "}} {
		r = suite.request(http.MethodPatch, path, body)
		test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
	}

	r = suite.request(http.MethodDelete, path, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
}
