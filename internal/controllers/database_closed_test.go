package controllers_test

import (
	"net/http"
	"testing"

	"github.com/fintrack-ph/backend/internal/controllers"
	"github.com/fintrack-ph/backend/internal/models"
	"github.com/fintrack-ph/backend/test"
	"github.com/stretchr/testify/assert"
)

// TestDatabaseClosed verifies that errors are processed correctly when
// the database is closed.
func (suite *TestSuiteStandard) TestDatabaseClosed() {
	tests := []struct {
		name   string
		method string
		path   string
		body   any
	}{
		{"List categories", http.MethodGet, "/api/categories", ""},
		{"Create expense", http.MethodPost, "/api/expenses", map[string]any{}},
		{"Dashboard", http.MethodGet, "/api/reports/dashboard", ""},
		{"Export", http.MethodGet, "/api/reports/export", ""},
	}

	suite.CloseDB()

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := suite.request(tt.method, "http://example.com"+tt.path, tt.body)
			test.AssertHTTPStatus(t, &r, http.StatusInternalServerError)
			assert.Equal(t, models.ErrGeneral.Error(), test.DecodeError(t, r.Body.Bytes()))
		})
	}

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/api/auth/sign-in", controllers.SignInRequest{Email: "owner@example.com", Password: "correct horse battery"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusInternalServerError)
}
