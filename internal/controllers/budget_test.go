package controllers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/fintrack-ph/backend/internal/controllers"
	"github.com/fintrack-ph/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) createTestBudget(b controllers.BudgetEditable) controllers.Budget {
	if b.Name == "" {
		b.Name = "Groceries"
	}

	if b.Category == "" {
		b.Category = "Food"
	}

	if b.Allocated.IsZero() {
		b.Allocated = decimal.NewFromInt(1000)
	}

	if b.Period == "" {
		b.Period = "Monthly"
	}

	r := suite.request(http.MethodPost, "http://example.com/api/budget", b)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	var budget controllers.Budget
	test.DecodeResponse(suite.T(), &r, &budget)
	return budget
}

func (suite *TestSuiteStandard) TestBudgetsCreate() {
	tests := []struct {
		name       string
		allocated  int64
		spent      int64
		status     string
		percentage int64
	}{
		{"Nothing spent", 1000, 0, "On Track", 0},
		{"Below warning", 1000, 799, "On Track", 0},
		{"Warning at 80%", 1000, 800, "Warning", 80},
		{"Fully spent", 1000, 1000, "Over Budget", 100},
		{"Over budget", 1000, 1001, "Over Budget", 0},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			budget := suite.createTestBudget(controllers.BudgetEditable{
				Allocated: decimal.NewFromInt(tt.allocated),
				Spent:     decimal.NewFromInt(tt.spent),
			})
			assert.Equal(t, tt.status, budget.Status)

			if tt.percentage != 0 {
				assert.True(t, decimal.NewFromInt(tt.percentage).Equal(budget.Percentage), "percentage is %s", budget.Percentage)
			}
		})
	}
}

func (suite *TestSuiteStandard) TestBudgetsCreateFails() {
	tests := []struct {
		name string
		body any
		err  string
	}{
		{"Zero allocated", map[string]any{"name": "Food", "category": "Food", "allocated": 0, "period": "Monthly"}, ""},
		{"Negative allocated", map[string]any{"name": "Food", "category": "Food", "allocated": -10, "period": "Monthly"}, "the allocated amount must be greater than zero"},
		{"Negative spent", map[string]any{"name": "Food", "category": "Food", "allocated": 10, "spent": -1, "period": "Monthly"}, "amounts must not be negative"},
		{"Missing period", map[string]any{"name": "Food", "category": "Food", "allocated": 10}, "missing required fields: period"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := suite.request(http.MethodPost, "http://example.com/api/budget", tt.body)
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)

			if tt.err != "" {
				assert.Equal(t, tt.err, test.DecodeError(t, r.Body.Bytes()))
			}
		})
	}
}

// TestBudgetsUpdateStatus verifies that the status follows the amounts
// after every update, including updates of only one of them.
func (suite *TestSuiteStandard) TestBudgetsUpdateStatus() {
	budget := suite.createTestBudget(controllers.BudgetEditable{
		Allocated: decimal.NewFromInt(1000),
		Spent:     decimal.NewFromInt(500),
	})
	suite.Require().Equal("On Track", budget.Status)
	path := fmt.Sprintf("http://example.com/api/budget/%s", budget.ID)

	tests := []struct {
		name   string
		body   map[string]any
		code   int
		status string
	}{
		{"Spent raised", map[string]any{"spent": 900}, http.StatusOK, "Warning"},
		{"Allocated raised", map[string]any{"allocated": 2000}, http.StatusOK, "On Track"},
		{"Both changed", map[string]any{"allocated": 100, "spent": 150}, http.StatusOK, "Over Budget"},
		{"Rename keeps status", map[string]any{"name": "Food"}, http.StatusOK, "Over Budget"},
		{"Allocated zero", map[string]any{"allocated": 0}, http.StatusBadRequest, ""},
		{"Spent negative", map[string]any{"spent": -5}, http.StatusBadRequest, ""},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := suite.request(http.MethodPatch, path, tt.body)
			test.AssertHTTPStatus(t, &r, tt.code)

			if tt.code == http.StatusOK {
				var updated controllers.Budget
				test.DecodeResponse(t, &r, &updated)
				assert.Equal(t, tt.status, updated.Status)

				r = suite.request(http.MethodGet, path, "")
				test.DecodeResponse(t, &r, &updated)
				assert.Equal(t, tt.status, updated.Status, "stored status differs from response")
			}
		})
	}
}

func (suite *TestSuiteStandard) TestBudgetsListAndDelete() {
	first := suite.createTestBudget(controllers.BudgetEditable{Name: "Food", Allocated: decimal.NewFromInt(100)})
	suite.createTestBudget(controllers.BudgetEditable{Name: "Transport", Allocated: decimal.NewFromInt(100)})

	r := suite.request(http.MethodGet, "http://example.com/api/budget", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var budgets []controllers.Budget
	test.DecodeResponse(suite.T(), &r, &budgets)
	suite.Require().Len(budgets, 2)

	r = suite.request(http.MethodDelete, fmt.Sprintf("http://example.com/api/budget/%s", first.ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	r = suite.request(http.MethodGet, "http://example.com/api/budget", "")
	test.DecodeResponse(suite.T(), &r, &budgets)
	suite.Require().Len(budgets, 1)
	suite.Assert().Equal("Transport", budgets[0].Name)
}
