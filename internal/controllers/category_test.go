package controllers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/fintrack-ph/backend/internal/controllers"
	"github.com/fintrack-ph/backend/internal/models"
	"github.com/fintrack-ph/backend/test"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestCategoriesCreate() {
	tests := []struct {
		name   string
		body   any
		status int
	}{
		{"Expense category", controllers.CategoryEditable{Name: "Utilities", Type: "Expense"}, http.StatusCreated},
		{"Income category", controllers.CategoryEditable{Name: "Consulting", Type: "Income", Color: "#10b981"}, http.StatusCreated},
		{"Invalid type", controllers.CategoryEditable{Name: "Utilities", Type: "Transfer"}, http.StatusBadRequest},
		{"Missing name", `{"type": "Expense"}`, http.StatusBadRequest},
		{"Broken body", `{"name": 2}`, http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := suite.request(http.MethodPost, "http://example.com/api/categories", tt.body)
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestCategoriesDefaultColor() {
	category := suite.createTestCategory(controllers.CategoryEditable{Name: "Rent"})
	suite.Assert().Equal(models.DefaultCategoryColor, category.Color)
}

func (suite *TestSuiteStandard) TestCategoriesList() {
	suite.createTestCategory(controllers.CategoryEditable{Type: models.CategoryTypeExpense})
	suite.createTestCategory(controllers.CategoryEditable{Type: models.CategoryTypeExpense})
	suite.createTestCategory(controllers.CategoryEditable{Type: models.CategoryTypeIncome})

	tests := []struct {
		name  string
		query string
		len   int
	}{
		{"All", "", 3},
		{"Expense", "type=Expense", 2},
		{"Income", "type=Income", 1},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := suite.request(http.MethodGet, fmt.Sprintf("http://example.com/api/categories?%s", tt.query), "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var categories []controllers.Category
			test.DecodeResponse(t, &r, &categories)
			assert.Len(t, categories, tt.len)
		})
	}
}

// TestCategoriesOwnership verifies that resources of other users cannot be
// seen or changed.
func (suite *TestSuiteStandard) TestCategoriesOwnership() {
	category := suite.createTestCategory(controllers.CategoryEditable{})
	stranger := suite.signUp("stranger@example.com")
	path := fmt.Sprintf("http://example.com/api/categories/%s", category.ID)

	for _, method := range []string{http.MethodGet, http.MethodPatch, http.MethodDelete, http.MethodOptions} {
		suite.T().Run(method, func(t *testing.T) {
			r := suite.requestAs(stranger.Token, method, path, map[string]any{"name": "Stolen"})
			test.AssertHTTPStatus(t, &r, http.StatusNotFound)
		})
	}

	r := suite.requestAs(stranger.Token, http.MethodGet, "http://example.com/api/categories", "")
	var categories []controllers.Category
	test.DecodeResponse(suite.T(), &r, &categories)
	suite.Assert().Len(categories, 0)
}

func (suite *TestSuiteStandard) TestCategoriesOptions() {
	tests := []struct {
		name   string
		id     string
		status int
	}{
		{"No Category with this ID", uuid.New().String(), http.StatusNotFound},
		{"Not a valid UUID", "NotParseableAsUUID", http.StatusBadRequest},
		{"Category exists", suite.createTestCategory(controllers.CategoryEditable{}).ID.String(), http.StatusNoContent},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := suite.request(http.MethodOptions, fmt.Sprintf("http://example.com/api/categories/%s", tt.id), "")
			test.AssertHTTPStatus(t, &r, tt.status)

			if tt.status == http.StatusNoContent {
				assert.Equal(t, "OPTIONS, GET, PATCH, DELETE", r.Header().Get("allow"))
			}
		})
	}

	r := suite.request(http.MethodOptions, "http://example.com/api/categories", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	suite.Assert().Equal("OPTIONS, GET, POST", r.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestCategoriesUpdate() {
	category := suite.createTestCategory(controllers.CategoryEditable{Name: "Utilities", Description: "Power"})
	path := fmt.Sprintf("http://example.com/api/categories/%s", category.ID)

	tests := []struct {
		name   string
		body   any
		status int
	}{
		{"Empty update", map[string]any{}, http.StatusOK},
		{"Clear description", map[string]any{"description": ""}, http.StatusOK},
		{"Rename", map[string]any{"name": "Bills"}, http.StatusOK},
		{"Blank name", map[string]any{"name": ""}, http.StatusBadRequest},
		{"Invalid type", map[string]any{"type": "Transfer"}, http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := suite.request(http.MethodPatch, path, tt.body)
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}

	r := suite.request(http.MethodGet, path, "")
	var updated controllers.Category
	test.DecodeResponse(suite.T(), &r, &updated)
	suite.Assert().Equal("Bills", updated.Name)
	suite.Assert().Equal("", updated.Description)
	suite.Assert().Equal(models.CategoryTypeExpense, updated.Type)
}

func (suite *TestSuiteStandard) TestCategoriesDelete() {
	category := suite.createTestCategory(controllers.CategoryEditable{})
	path := fmt.Sprintf("http://example.com/api/categories/%s", category.ID)

	r := suite.request(http.MethodDelete, path, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var message struct {
		Message string `json:"message"`
	}
	test.DecodeResponse(suite.T(), &r, &message)
	suite.Assert().Equal("Category deleted successfully", message.Message)

	r = suite.request(http.MethodDelete, path, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
	suite.Assert().Equal("there is no category matching your query", test.DecodeError(suite.T(), r.Body.Bytes()))
}

func (suite *TestSuiteStandard) TestCategoriesDeleteInUse() {
	category := suite.createTestCategory(controllers.CategoryEditable{})
	suite.createTestExpense(controllers.ExpenseEditable{CategoryID: category.ID})

	path := fmt.Sprintf("http://example.com/api/categories/%s", category.ID)
	r := suite.request(http.MethodDelete, path, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
	suite.Assert().Equal(models.ErrResourceInUse.Error(), test.DecodeError(suite.T(), r.Body.Bytes()))

	r = suite.request(http.MethodGet, path, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
}
