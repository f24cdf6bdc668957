package finance

import (
	"time"

	"github.com/fintrack-ph/backend/internal/types"
	"github.com/shopspring/decimal"
)

// Cash flow timeframes.
const (
	CashFlowDaily   = "daily"
	CashFlowMonthly = "monthly"
)

// CashFlowBucket is income and expenses for one day or month.
type CashFlowBucket struct {
	Key      string          `json:"key" example:"2024-01"`
	Label    string          `json:"label" example:"Jan 2024"`
	Income   decimal.Decimal `json:"income"`
	Expenses decimal.Decimal `json:"expenses"`
	Net      decimal.Decimal `json:"net"`
}

// CashFlow is a rolling series of buckets with totals.
type CashFlow struct {
	Timeframe     string           `json:"timeframe" example:"monthly"`
	Buckets       []CashFlowBucket `json:"buckets"`
	TotalIncome   decimal.Decimal  `json:"totalIncome"`
	TotalExpenses decimal.Decimal  `json:"totalExpenses"`
	Net           decimal.Decimal  `json:"net"`
	Average       decimal.Decimal  `json:"average"` // Average net per bucket
}

// CashFlowSeries builds the cash flow for the last 7 days (daily) or the last
// 12 months (monthly, the default) up to and including now. Buckets without
// records are included with zero values.
func CashFlowSeries(records []Record, now time.Time, timeframe string) CashFlow {
	var keys []string
	var labels []string
	var keyOf func(types.Date) string

	today := types.DateOf(now)
	if timeframe == CashFlowDaily {
		for i := 6; i >= 0; i-- {
			d := today.AddDays(-i)
			keys = append(keys, d.String())
			labels = append(labels, d.Time().Format("Mon"))
		}
		keyOf = func(d types.Date) string { return d.String() }
	} else {
		timeframe = CashFlowMonthly
		current := today.Month()
		for i := 11; i >= 0; i-- {
			m := current.AddDate(0, -i)
			keys = append(keys, m.String())
			labels = append(labels, m.Label())
		}
		keyOf = func(d types.Date) string { return d.Month().String() }
	}

	buckets := make([]CashFlowBucket, len(keys))
	index := make(map[string]int, len(keys))
	for i, k := range keys {
		buckets[i] = CashFlowBucket{Key: k, Label: labels[i]}
		index[k] = i
	}

	for _, r := range records {
		if !r.Realized() {
			continue
		}

		i, ok := index[keyOf(r.Date)]
		if !ok {
			continue
		}

		if r.Kind == KindRevenue {
			buckets[i].Income = buckets[i].Income.Add(r.Amount)
		} else {
			buckets[i].Expenses = buckets[i].Expenses.Add(r.Amount)
		}
	}

	cf := CashFlow{Timeframe: timeframe, Buckets: buckets}
	for i := range buckets {
		buckets[i].Net = buckets[i].Income.Sub(buckets[i].Expenses)
		cf.TotalIncome = cf.TotalIncome.Add(buckets[i].Income)
		cf.TotalExpenses = cf.TotalExpenses.Add(buckets[i].Expenses)
	}

	cf.Net = cf.TotalIncome.Sub(cf.TotalExpenses)
	cf.Average = cf.Net.Div(decimal.NewFromInt(int64(len(buckets)))).Round(2)
	return cf
}

// DailySeries returns realized revenue and expenses for each of the last
// seven days, oldest first.
func DailySeries(records []Record, now time.Time) []CashFlowBucket {
	return CashFlowSeries(records, now, CashFlowDaily).Buckets
}
