package reports

import (
	"github.com/fintrack-ph/backend/internal/finance"
	"github.com/fintrack-ph/backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LoadRecords reads the expenses, revenue and savings of a user as
// records for aggregation.
func LoadRecords(db *gorm.DB, userID uuid.UUID) ([]finance.Record, error) {
	var expenses []models.Expense
	err := db.Scopes(models.OwnedBy(userID)).Preload("Category").Find(&expenses).Error
	if err != nil {
		return nil, err
	}

	var revenue []models.Revenue
	err = db.Scopes(models.OwnedBy(userID)).Preload("Category").Find(&revenue).Error
	if err != nil {
		return nil, err
	}

	var savings []models.Savings
	err = db.Scopes(models.OwnedBy(userID)).Find(&savings).Error
	if err != nil {
		return nil, err
	}

	records := make([]finance.Record, 0, len(expenses)+len(revenue)+len(savings))
	for _, e := range expenses {
		records = append(records, finance.Record{
			Kind:     finance.KindExpense,
			Amount:   e.Amount,
			Date:     e.Date,
			Status:   e.Status,
			Category: e.Category.Name,
		})
	}

	for _, r := range revenue {
		records = append(records, finance.Record{
			Kind:     finance.KindRevenue,
			Amount:   r.Amount,
			Date:     r.Date,
			Status:   r.Status,
			Category: r.Category.Name,
		})
	}

	for _, s := range savings {
		records = append(records, finance.Record{
			Kind:        finance.KindSavings,
			Amount:      s.Amount,
			Date:        s.Date,
			Category:    s.Category,
			SavingsType: s.Type,
		})
	}

	return records, nil
}

// count returns the number of records of a kind.
func count(records []finance.Record, kinds ...finance.Kind) int {
	n := 0
	for _, r := range records {
		for _, k := range kinds {
			if r.Kind == k {
				n++
				break
			}
		}
	}
	return n
}
