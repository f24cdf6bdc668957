// Package reports derives dashboards, financial reports and cash flow
// statements from the records of a user.
package reports

import (
	"time"

	"github.com/fintrack-ph/backend/internal/finance"
	"github.com/fintrack-ph/backend/internal/models"
	"github.com/fintrack-ph/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	trendDays          = 30
	dashboardMonths    = 12
	dashboardTopN      = 4
	dashboardBudgetCap = 4
)

// Generator builds reports for one user at a fixed point in time.
type Generator struct {
	db     *gorm.DB
	userID uuid.UUID
	now    time.Time
}

func NewGenerator(db *gorm.DB, userID uuid.UUID, now time.Time) Generator {
	return Generator{db: db, userID: userID, now: now}
}

type BudgetItem struct {
	ID         uuid.UUID       `json:"id" example:"7c8b3a2e-7f5b-4f0a-8e21-0d9d1c5d3b11"`
	Name       string          `json:"name" example:"Marketing Q1"`
	Category   string          `json:"category" example:"Marketing"`
	Allocated  decimal.Decimal `json:"allocated" swaggertype:"number"`
	Spent      decimal.Decimal `json:"spent" swaggertype:"number"`
	Percentage decimal.Decimal `json:"percentage" swaggertype:"number"`
	Status     string          `json:"status" example:"On Track"`
}

// BudgetSummary sums all budgets of a user.
type BudgetSummary struct {
	Allocated  decimal.Decimal `json:"allocated" swaggertype:"number"`
	Spent      decimal.Decimal `json:"spent" swaggertype:"number"`
	Remaining  decimal.Decimal `json:"remaining" swaggertype:"number"`
	Percentage decimal.Decimal `json:"percentage" swaggertype:"number"`
	Budgets    []BudgetItem    `json:"budgets"`
}

// InvoiceSummary counts invoices and sums their totals by payment status.
type InvoiceSummary struct {
	Count        int             `json:"count" example:"12"`
	PaidCount    int             `json:"paidCount" example:"9"`
	PendingCount int             `json:"pendingCount" example:"3"`
	OverdueCount int             `json:"overdueCount" example:"1"`
	Total        decimal.Decimal `json:"total" swaggertype:"number"`
	Paid         decimal.Decimal `json:"paid" swaggertype:"number"`
	Pending      decimal.Decimal `json:"pending" swaggertype:"number"`
}

type Dashboard struct {
	Totals               finance.Totals           `json:"totals"`
	Trends               finance.Trends           `json:"trends"`
	Monthly              []finance.MonthlyPoint   `json:"monthly"`
	Daily                []finance.CashFlowBucket `json:"daily"`
	TopExpenseCategories []finance.CategorySlice  `json:"topExpenseCategories"`
	Budgets              BudgetSummary            `json:"budgets"`
	Savings              finance.SavingsSummary   `json:"savings"`
	Invoices             InvoiceSummary           `json:"invoices"`
	TransactionCount     int                      `json:"transactionCount" example:"42"` // Number of expenses and revenue entries
}

type Financial struct {
	Timeframe          string                  `json:"timeframe" example:"6months"`
	StartDate          string                  `json:"startDate" example:"2023-07-15"`
	Totals             finance.Totals          `json:"totals"`
	Monthly            []finance.MonthlyPoint  `json:"monthly"`
	ExpensesByCategory []finance.CategorySlice `json:"expensesByCategory"`
	RevenueByCategory  []finance.CategorySlice `json:"revenueByCategory"`
	Savings            finance.SavingsSummary  `json:"savings"`
	Budgets            BudgetSummary           `json:"budgets"`
}

// budgets summarizes the budgets of the user. At most limit budgets are
// listed, newest first. A limit of zero lists all budgets.
func (g Generator) budgets(limit int) (BudgetSummary, error) {
	var budgets []models.Budget
	err := g.db.Scopes(models.OwnedBy(g.userID)).Order("created_at DESC").Find(&budgets).Error
	if err != nil {
		return BudgetSummary{}, err
	}

	summary := BudgetSummary{Budgets: []BudgetItem{}}
	for i, b := range budgets {
		summary.Allocated = summary.Allocated.Add(b.Allocated)
		summary.Spent = summary.Spent.Add(b.Spent)

		if limit > 0 && i >= limit {
			continue
		}

		summary.Budgets = append(summary.Budgets, BudgetItem{
			ID:         b.ID,
			Name:       b.Name,
			Category:   b.Category,
			Allocated:  b.Allocated,
			Spent:      b.Spent,
			Percentage: b.Percentage(),
			Status:     b.Status,
		})
	}

	summary.Remaining = summary.Allocated.Sub(summary.Spent)
	summary.Percentage = finance.BudgetPercentage(summary.Allocated, summary.Spent)
	return summary, nil
}

func (g Generator) invoices() (InvoiceSummary, error) {
	var invoices []models.Invoice
	err := g.db.Scopes(models.OwnedBy(g.userID)).Find(&invoices).Error
	if err != nil {
		return InvoiceSummary{}, err
	}

	today := types.DateOf(g.now)

	var summary InvoiceSummary
	for _, i := range invoices {
		summary.Count++
		summary.Total = summary.Total.Add(i.Total)

		if i.Status == models.InvoiceStatusPaid {
			summary.PaidCount++
			summary.Paid = summary.Paid.Add(i.Total)
		} else {
			summary.PendingCount++
			summary.Pending = summary.Pending.Add(i.Total)
		}

		if i.Overdue(today) {
			summary.OverdueCount++
		}
	}

	return summary, nil
}

// Dashboard collects the overview of all records of the user.
func (g Generator) Dashboard() (Dashboard, error) {
	records, err := LoadRecords(g.db, g.userID)
	if err != nil {
		return Dashboard{}, err
	}

	budgets, err := g.budgets(dashboardBudgetCap)
	if err != nil {
		return Dashboard{}, err
	}

	invoices, err := g.invoices()
	if err != nil {
		return Dashboard{}, err
	}

	return Dashboard{
		Totals:               finance.Sum(records),
		Trends:               finance.WindowTrends(records, g.now, trendDays),
		Monthly:              finance.LastMonths(finance.MonthlySeries(records), dashboardMonths),
		Daily:                finance.DailySeries(records, g.now),
		TopExpenseCategories: finance.CategoryBreakdown(records, finance.KindExpense, finance.ExpensePalette, dashboardTopN),
		Budgets:              budgets,
		Savings:              finance.SummarizeSavings(records),
		Invoices:             invoices,
		TransactionCount:     count(records, finance.KindExpense, finance.KindRevenue),
	}, nil
}

// Financial builds the report for the records dated within the timeframe.
// Budgets are not dated and always included.
func (g Generator) Financial(timeframe string) (Financial, error) {
	records, err := LoadRecords(g.db, g.userID)
	if err != nil {
		return Financial{}, err
	}

	budgets, err := g.budgets(0)
	if err != nil {
		return Financial{}, err
	}

	start, timeframe := finance.TimeframeStart(g.now, timeframe)
	records = finance.FilterSince(records, start)

	return Financial{
		Timeframe:          timeframe,
		StartDate:          start.String(),
		Totals:             finance.Sum(records),
		Monthly:            finance.MonthlySeries(records),
		ExpensesByCategory: finance.CategoryBreakdown(records, finance.KindExpense, finance.ExpensePalette, 0),
		RevenueByCategory:  finance.CategoryBreakdown(records, finance.KindRevenue, finance.RevenuePalette, 0),
		Savings:            finance.SummarizeSavings(records),
		Budgets:            budgets,
	}, nil
}

// CashFlow builds the daily or monthly cash flow statement.
func (g Generator) CashFlow(timeframe string) (finance.CashFlow, error) {
	records, err := LoadRecords(g.db, g.userID)
	if err != nil {
		return finance.CashFlow{}, err
	}

	return finance.CashFlowSeries(records, g.now, timeframe), nil
}
