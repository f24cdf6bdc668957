package finance

import "github.com/shopspring/decimal"

// SavingsCategory sums savings movements for one category.
type SavingsCategory struct {
	Name        string          `json:"name" example:"Emergency Fund"`
	Deposits    decimal.Decimal `json:"deposits"`
	Withdrawals decimal.Decimal `json:"withdrawals"`
	Net         decimal.Decimal `json:"net"`
}

// SavingsSummary sums deposits and withdrawals.
type SavingsSummary struct {
	Deposits    decimal.Decimal   `json:"deposits"`
	Withdrawals decimal.Decimal   `json:"withdrawals"`
	Net         decimal.Decimal   `json:"net"`
	ByCategory  []SavingsCategory `json:"byCategory"`
}

// SummarizeSavings sums all savings records. Categories are listed in the
// order they are first seen.
func SummarizeSavings(records []Record) SavingsSummary {
	s := SavingsSummary{ByCategory: []SavingsCategory{}}
	index := map[string]int{}

	for _, r := range records {
		if r.Kind != KindSavings {
			continue
		}

		name := r.category()
		i, ok := index[name]
		if !ok {
			i = len(s.ByCategory)
			index[name] = i
			s.ByCategory = append(s.ByCategory, SavingsCategory{Name: name})
		}

		c := &s.ByCategory[i]
		switch r.SavingsType {
		case SavingsDeposit:
			s.Deposits = s.Deposits.Add(r.Amount)
			c.Deposits = c.Deposits.Add(r.Amount)
		case SavingsWithdrawal:
			s.Withdrawals = s.Withdrawals.Add(r.Amount)
			c.Withdrawals = c.Withdrawals.Add(r.Amount)
		}
		c.Net = c.Deposits.Sub(c.Withdrawals)
	}

	s.Net = s.Deposits.Sub(s.Withdrawals)
	return s
}
