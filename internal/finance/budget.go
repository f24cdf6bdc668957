package finance

import "github.com/shopspring/decimal"

// BudgetStatus is the band a budget falls into based on how much of it is spent.
type BudgetStatus string

const (
	BudgetOnTrack    BudgetStatus = "On Track"
	BudgetWarning    BudgetStatus = "Warning"
	BudgetOverBudget BudgetStatus = "Over Budget"
)

var (
	hundred          = decimal.NewFromInt(100)
	warningThreshold = decimal.NewFromInt(80)
)

// ClassifyBudget returns the status for a budget.
//
// Spending 80% of the allocation is a warning, spending all of it or more
// is over budget. A budget without a positive allocation is over budget as
// soon as anything is spent.
func ClassifyBudget(allocated, spent decimal.Decimal) BudgetStatus {
	if !allocated.IsPositive() {
		if spent.IsPositive() {
			return BudgetOverBudget
		}
		return BudgetOnTrack
	}

	// Compare spent*100 against allocated*threshold to keep the boundaries exact
	scaled := spent.Mul(hundred)
	switch {
	case scaled.GreaterThanOrEqual(allocated.Mul(hundred)):
		return BudgetOverBudget
	case scaled.GreaterThanOrEqual(allocated.Mul(warningThreshold)):
		return BudgetWarning
	default:
		return BudgetOnTrack
	}
}

// BudgetPercentage returns spent as percentage of allocated, rounded to two
// decimals. It is zero when nothing is allocated.
func BudgetPercentage(allocated, spent decimal.Decimal) decimal.Decimal {
	if !allocated.IsPositive() {
		return decimal.Zero
	}
	return spent.Mul(hundred).Div(allocated).Round(2)
}
