package finance

import (
	"time"

	"github.com/fintrack-ph/backend/internal/types"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
)

// Chart palettes. Colors are assigned by the order in which categories are
// first seen.
var (
	ExpensePalette = []string{"#ef4444", "#f97316", "#eab308", "#8b5cf6", "#3b82f6", "#10b981"}
	RevenuePalette = []string{"#9333ea", "#3b82f6", "#10b981", "#f59e0b", "#ef4444", "#8b5cf6"}
)

// MonthlyPoint is the realized revenue and expenses of one month.
type MonthlyPoint struct {
	Key      string          `json:"key" example:"2024-01"`    // Chronologically sortable key
	Month    string          `json:"month" example:"Jan 2024"` // Display label
	Revenue  decimal.Decimal `json:"revenue"`
	Expenses decimal.Decimal `json:"expenses"`
	Profit   decimal.Decimal `json:"profit"`
}

// MonthlySeries groups realized expenses and revenue by calendar month.
// The result only contains months with records, in chronological order.
func MonthlySeries(records []Record) []MonthlyPoint {
	byKey := map[string]*MonthlyPoint{}
	for _, r := range records {
		if !r.Realized() || r.Date.IsZero() {
			continue
		}

		month := r.Date.Month()
		p, ok := byKey[month.String()]
		if !ok {
			p = &MonthlyPoint{Key: month.String(), Month: month.Label()}
			byKey[month.String()] = p
		}

		if r.Kind == KindRevenue {
			p.Revenue = p.Revenue.Add(r.Amount)
		} else {
			p.Expenses = p.Expenses.Add(r.Amount)
		}
	}

	points := make([]MonthlyPoint, 0, len(byKey))
	for _, p := range byKey {
		p.Profit = p.Revenue.Sub(p.Expenses)
		points = append(points, *p)
	}

	slices.SortFunc(points, func(a, b MonthlyPoint) int {
		switch {
		case a.Key < b.Key:
			return -1
		case a.Key > b.Key:
			return 1
		}
		return 0
	})
	return points
}

// LastMonths returns at most the n latest points of a monthly series.
func LastMonths(points []MonthlyPoint, n int) []MonthlyPoint {
	if len(points) <= n {
		return points
	}
	return points[len(points)-n:]
}

// CategorySlice is the realized sum for one category.
type CategorySlice struct {
	Name  string          `json:"name" example:"Rent"`
	Value decimal.Decimal `json:"value"`
	Color string          `json:"color" example:"#ef4444"`
}

// CategoryBreakdown sums realized records of one kind by category name.
//
// The result is sorted by value, descending. Ties keep the order in which
// categories were first seen. A topN greater than zero truncates the result.
func CategoryBreakdown(records []Record, kind Kind, palette []string, topN int) []CategorySlice {
	var slicesByName []CategorySlice
	index := map[string]int{}

	for _, r := range records {
		if r.Kind != kind || !r.Realized() {
			continue
		}

		name := r.category()
		i, ok := index[name]
		if !ok {
			i = len(slicesByName)
			index[name] = i

			color := ""
			if len(palette) > 0 {
				color = palette[i%len(palette)]
			}
			slicesByName = append(slicesByName, CategorySlice{Name: name, Color: color})
		}
		slicesByName[i].Value = slicesByName[i].Value.Add(r.Amount)
	}

	if slicesByName == nil {
		return []CategorySlice{}
	}

	slices.SortStableFunc(slicesByName, func(a, b CategorySlice) int {
		return b.Value.Cmp(a.Value)
	})

	if topN > 0 && len(slicesByName) > topN {
		slicesByName = slicesByName[:topN]
	}
	return slicesByName
}

// Trend is the change from previous to current in percent. It is zero when
// previous is not positive.
func Trend(current, previous decimal.Decimal) decimal.Decimal {
	if !previous.IsPositive() {
		return decimal.Zero
	}
	return current.Sub(previous).Mul(hundred).Div(previous).Round(2)
}

// Trends compares a trailing window with the window before it.
type Trends struct {
	Revenue  decimal.Decimal `json:"revenue"`
	Expenses decimal.Decimal `json:"expenses"`
	Profit   decimal.Decimal `json:"profit"`
}

// WindowTrends compares realized sums of the last days days (counted back
// from now) against the days days before that.
func WindowTrends(records []Record, now time.Time, days int) Trends {
	start := types.DateOf(now).AddDays(-days)
	previousStart := start.AddDays(-days)

	var current, previous []Record
	for _, r := range records {
		switch {
		case !r.Date.Before(start):
			current = append(current, r)
		case !r.Date.Before(previousStart):
			previous = append(previous, r)
		}
	}

	c, p := Sum(current), Sum(previous)
	return Trends{
		Revenue:  Trend(c.Revenue, p.Revenue),
		Expenses: Trend(c.Expenses, p.Expenses),
		Profit:   Trend(c.NetProfit, p.NetProfit),
	}
}
