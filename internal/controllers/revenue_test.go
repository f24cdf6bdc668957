package controllers_test

import (
	"fmt"
	"net/http"

	"github.com/fintrack-ph/backend/internal/controllers"
	"github.com/fintrack-ph/backend/internal/models"
	"github.com/fintrack-ph/backend/internal/types"
	"github.com/fintrack-ph/backend/test"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) createTestRevenue(e controllers.RevenueEditable) controllers.Revenue {
	if e.CategoryID == uuid.Nil {
		e.CategoryID = suite.createTestCategory(controllers.CategoryEditable{Type: models.CategoryTypeIncome}).ID
	}

	if e.Description == "" {
		e.Description = "Consulting fee"
	}

	if e.Amount.IsZero() {
		e.Amount = decimal.NewFromInt(25000)
	}

	if e.Date.IsZero() {
		e.Date = types.NewDate(2024, 1, 15)
	}

	if e.PaymentMethod == "" {
		e.PaymentMethod = "Bank Transfer"
	}

	r := suite.request(http.MethodPost, "http://example.com/api/revenue", e)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	var revenue controllers.Revenue
	test.DecodeResponse(suite.T(), &r, &revenue)
	return revenue
}

func (suite *TestSuiteStandard) TestRevenue() {
	revenue := suite.createTestRevenue(controllers.RevenueEditable{Customer: "Acme Corp"})
	suite.Assert().Equal(models.DefaultStatus, revenue.Status)
	suite.Assert().Equal("Acme Corp", revenue.Customer)
	suite.Require().NotNil(revenue.Category)

	path := fmt.Sprintf("http://example.com/api/revenue/%s", revenue.ID)
	r := suite.request(http.MethodPatch, path, map[string]any{"status": "Received"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	r = suite.request(http.MethodGet, "http://example.com/api/revenue?status=Received", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var list []controllers.Revenue
	test.DecodeResponse(suite.T(), &r, &list)
	suite.Require().Len(list, 1)
	suite.Assert().Equal(revenue.ID, list[0].ID)

	r = suite.request(http.MethodDelete, path, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	r = suite.request(http.MethodGet, "http://example.com/api/revenue", "")
	test.DecodeResponse(suite.T(), &r, &list)
	suite.Assert().Len(list, 0)
}
