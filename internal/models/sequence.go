package models

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Sequence names.
const (
	SequenceInvoice     = "invoice"
	SequenceTransaction = "transaction"
)

// Sequence is a per-user counter for human readable numbers.
type Sequence struct {
	Timestamps
	UserID uuid.UUID `gorm:"type:varchar(36);primaryKey"`
	Name   string    `gorm:"type:varchar(32);primaryKey"`
	Value  uint
}

// NextSequence increments the named counter of a user and returns the new value.
//
// It must be called inside a database transaction so that the number is
// released again when the surrounding write fails. Two transactions creating
// the first number for a user at the same time lead to ErrSequenceConflict for one of them.
func NextSequence(tx *gorm.DB, userID uuid.UUID, name string) (uint, error) {
	res := tx.Model(&Sequence{}).
		Where("user_id = ? AND name = ?", userID, name).
		UpdateColumn("value", gorm.Expr("value + ?", 1))
	if res.Error != nil {
		return 0, res.Error
	}

	if res.RowsAffected == 0 {
		err := tx.Create(&Sequence{UserID: userID, Name: name, Value: 1}).Error
		if err != nil {
			return 0, err
		}
		return 1, nil
	}

	var s Sequence
	err := tx.Where("user_id = ? AND name = ?", userID, name).First(&s).Error
	if err != nil {
		return 0, err
	}
	return s.Value, nil
}

// FormatInvoiceNumber formats an invoice number, e.g. INV-0001.
func FormatInvoiceNumber(n uint) string {
	return fmt.Sprintf("INV-%04d", n)
}

// FormatTransactionID formats a transaction number, e.g. #0001.
func FormatTransactionID(n uint) string {
	return fmt.Sprintf("#%04d", n)
}

// maxSequenceAttempts is how often a numbered create is tried.
const maxSequenceAttempts = 3

// CreateNumbered runs create in a transaction with the next number of the
// named sequence. Conflicts on the generated number are retried.
func CreateNumbered(db *gorm.DB, userID uuid.UUID, name string, create func(tx *gorm.DB, n uint) error) (err error) {
	for attempt := 0; attempt < maxSequenceAttempts; attempt++ {
		err = db.Transaction(func(tx *gorm.DB) error {
			n, err := NextSequence(tx, userID, name)
			if err != nil {
				return err
			}
			return create(tx, n)
		})

		if !errors.Is(err, ErrSequenceConflict) {
			return err
		}
	}
	return err
}
