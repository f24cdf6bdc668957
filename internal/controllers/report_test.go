package controllers_test

import (
	"bytes"
	"net/http"
	"testing"
	"time"

	"github.com/fintrack-ph/backend/internal/controllers"
	"github.com/fintrack-ph/backend/internal/models"
	"github.com/fintrack-ph/backend/internal/reports"
	"github.com/fintrack-ph/backend/internal/types"
	"github.com/fintrack-ph/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/xuri/excelize/v2"
)

// seedReportData creates realized and pending records dated today.
func (suite *TestSuiteStandard) seedReportData() {
	today := types.DateOf(time.Now())

	rent := suite.createTestCategory(controllers.CategoryEditable{Name: "Rent"})
	consulting := suite.createTestCategory(controllers.CategoryEditable{Name: "Consulting", Type: models.CategoryTypeIncome})

	suite.createTestExpense(controllers.ExpenseEditable{CategoryID: rent.ID, Amount: decimal.NewFromInt(15000), Date: today, Status: "Paid"})
	suite.createTestExpense(controllers.ExpenseEditable{CategoryID: rent.ID, Amount: decimal.NewFromInt(999), Date: today})
	suite.createTestRevenue(controllers.RevenueEditable{CategoryID: consulting.ID, Amount: decimal.NewFromInt(40000), Date: today, Status: "Received"})
	suite.createTestSavings(controllers.SavingsEditable{Amount: decimal.NewFromInt(5000), Date: today})
	suite.createTestBudget(controllers.BudgetEditable{Allocated: decimal.NewFromInt(20000), Spent: decimal.NewFromInt(17000)})
}

func (suite *TestSuiteStandard) TestReportsDashboard() {
	suite.seedReportData()

	r := suite.request(http.MethodGet, "http://example.com/api/reports/dashboard", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var dashboard reports.Dashboard
	test.DecodeResponse(suite.T(), &r, &dashboard)

	suite.Assert().True(decimal.NewFromInt(40000).Equal(dashboard.Totals.Revenue), "revenue is %s", dashboard.Totals.Revenue)
	suite.Assert().True(decimal.NewFromInt(15000).Equal(dashboard.Totals.Expenses), "pending expenses must not count")
	suite.Assert().True(decimal.NewFromInt(25000).Equal(dashboard.Totals.NetProfit))
	suite.Assert().Equal(3, dashboard.TransactionCount)
	suite.Require().Len(dashboard.TopExpenseCategories, 1)
	suite.Assert().Equal("Rent", dashboard.TopExpenseCategories[0].Name)
	suite.Require().Len(dashboard.Budgets.Budgets, 1)
	suite.Assert().Equal("Warning", dashboard.Budgets.Budgets[0].Status)
	suite.Assert().True(decimal.NewFromInt(5000).Equal(dashboard.Savings.Net), "net savings are %s", dashboard.Savings.Net)
}

func (suite *TestSuiteStandard) TestReportsTimeframes() {
	suite.seedReportData()

	tests := []struct {
		name   string
		path   string
		status int
	}{
		{"Report default", "/api/reports", http.StatusOK},
		{"Report one month", "/api/reports?timeframe=1month", http.StatusOK},
		{"Report one year", "/api/reports?timeframe=1year", http.StatusOK},
		{"Report unknown", "/api/reports?timeframe=2weeks", http.StatusBadRequest},
		{"Cash flow default", "/api/reports/cash-flow", http.StatusOK},
		{"Cash flow daily", "/api/reports/cash-flow?timeframe=daily", http.StatusOK},
		{"Cash flow report timeframe", "/api/reports/cash-flow?timeframe=6months", http.StatusBadRequest},
		{"Export unknown", "/api/reports/export?timeframe=forever", http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := suite.request(http.MethodGet, "http://example.com"+tt.path, "")
			test.AssertHTTPStatus(t, &r, tt.status)

			if tt.status == http.StatusBadRequest {
				assert.Contains(t, test.DecodeError(t, r.Body.Bytes()), "the timeframe is not supported")
			}
		})
	}

	r := suite.request(http.MethodGet, "http://example.com/api/reports?timeframe=3months", "")
	var report reports.Financial
	test.DecodeResponse(suite.T(), &r, &report)
	suite.Assert().Equal("3months", report.Timeframe)
	suite.Assert().True(decimal.NewFromInt(40000).Equal(report.Totals.Revenue))
	suite.Require().Len(report.RevenueByCategory, 1)
	suite.Assert().Equal("Consulting", report.RevenueByCategory[0].Name)

	r = suite.request(http.MethodGet, "http://example.com/api/reports/cash-flow", "")
	var cashFlow struct {
		Timeframe   string          `json:"timeframe"`
		TotalIncome decimal.Decimal `json:"totalIncome"`
		Net         decimal.Decimal `json:"net"`
	}
	test.DecodeResponse(suite.T(), &r, &cashFlow)
	suite.Assert().Equal("monthly", cashFlow.Timeframe)
	suite.Assert().True(decimal.NewFromInt(40000).Equal(cashFlow.TotalIncome))
	suite.Assert().True(decimal.NewFromInt(25000).Equal(cashFlow.Net))
}

func (suite *TestSuiteStandard) TestReportsExport() {
	suite.seedReportData()

	r := suite.request(http.MethodGet, "http://example.com/api/reports/export?timeframe=1year", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	suite.Assert().Equal(reports.XLSXContentType, r.Header().Get("Content-Type"))
	suite.Assert().Contains(r.Header().Get("Content-Disposition"), "fintrack-report-1year-")

	f, err := excelize.OpenReader(bytes.NewReader(r.Body.Bytes()))
	suite.Require().Nil(err)
	defer f.Close()

	suite.Assert().Equal([]string{
		reports.SheetSummary,
		reports.SheetMonthly,
		reports.SheetExpensesByCat,
		reports.SheetRevenueByCat,
		reports.SheetSavings,
	}, f.GetSheetList())
}

// TestReportsIsolated verifies that reports only contain the data of the
// authenticated user.
func (suite *TestSuiteStandard) TestReportsIsolated() {
	suite.seedReportData()
	stranger := suite.signUp("stranger@example.com")

	r := suite.requestAs(stranger.Token, http.MethodGet, "http://example.com/api/reports/dashboard", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var dashboard reports.Dashboard
	test.DecodeResponse(suite.T(), &r, &dashboard)
	suite.Assert().True(dashboard.Totals.Revenue.IsZero())
	suite.Assert().Equal(0, dashboard.TransactionCount)
	suite.Assert().Len(dashboard.Budgets.Budgets, 0)
}
