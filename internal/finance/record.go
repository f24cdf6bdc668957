package finance

import (
	"github.com/fintrack-ph/backend/internal/types"
	"github.com/shopspring/decimal"
)

// Kind is the type of a financial record.
type Kind string

const (
	KindExpense Kind = "expense"
	KindRevenue Kind = "revenue"
	KindSavings Kind = "savings"
)

// Statuses and savings types that carry meaning for aggregation.
const (
	StatusPaid        = "Paid"
	StatusReceived    = "Received"
	SavingsDeposit    = "Deposit"
	SavingsWithdrawal = "Withdrawal"
)

// Uncategorized is used for records without a category name.
const Uncategorized = "Uncategorized"

// Record is a dated amount that can be aggregated.
type Record struct {
	Kind        Kind
	Amount      decimal.Decimal
	Date        types.Date
	Status      string
	Category    string
	SavingsType string
}

// Realized reports whether the record counts toward totals: paid expenses
// and received revenue.
func (r Record) Realized() bool {
	switch r.Kind {
	case KindExpense:
		return r.Status == StatusPaid
	case KindRevenue:
		return r.Status == StatusReceived
	}
	return false
}

func (r Record) category() string {
	if r.Category == "" {
		return Uncategorized
	}
	return r.Category
}

// FilterSince returns the records dated on or after since.
func FilterSince(records []Record, since types.Date) []Record {
	filtered := make([]Record, 0, len(records))
	for _, r := range records {
		if !r.Date.Before(since) {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

// Totals are the realized sums over a set of records.
type Totals struct {
	Revenue      decimal.Decimal `json:"revenue"`
	Expenses     decimal.Decimal `json:"expenses"`
	NetProfit    decimal.Decimal `json:"netProfit"`
	ProfitMargin decimal.Decimal `json:"profitMargin"` // Net profit as percentage of revenue
}

// Sum returns the realized totals of the records.
func Sum(records []Record) Totals {
	var t Totals
	for _, r := range records {
		if !r.Realized() {
			continue
		}

		switch r.Kind {
		case KindRevenue:
			t.Revenue = t.Revenue.Add(r.Amount)
		case KindExpense:
			t.Expenses = t.Expenses.Add(r.Amount)
		}
	}

	t.NetProfit = t.Revenue.Sub(t.Expenses)
	if t.Revenue.IsPositive() {
		t.ProfitMargin = t.NetProfit.Mul(hundred).Div(t.Revenue).Round(2)
	}
	return t
}
