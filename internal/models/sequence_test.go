package models_test

import (
	"errors"
	"sync"

	"github.com/fintrack-ph/backend/internal/models"
	"gorm.io/gorm"
)

func (suite *TestSuiteStandard) TestNextSequence() {
	alice := suite.createTestUser("seq-alice@example.com")
	bob := suite.createTestUser("seq-bob@example.com")

	next := func(user models.User, name string) uint {
		var n uint
		err := models.DB.Transaction(func(tx *gorm.DB) (err error) {
			n, err = models.NextSequence(tx, user.ID, name)
			return err
		})
		suite.Require().Nil(err)
		return n
	}

	suite.Assert().Equal(uint(1), next(alice, models.SequenceInvoice))
	suite.Assert().Equal(uint(2), next(alice, models.SequenceInvoice))
	suite.Assert().Equal(uint(1), next(alice, models.SequenceTransaction))
	suite.Assert().Equal(uint(1), next(bob, models.SequenceInvoice))
	suite.Assert().Equal(uint(3), next(alice, models.SequenceInvoice))
}

// TestCreateNumberedRollsBack verifies that a failed create does not use up a number.
func (suite *TestSuiteStandard) TestCreateNumberedRollsBack() {
	user := suite.createTestUser("rollback@example.com")

	failure := errors.New("nope")
	err := models.CreateNumbered(models.DB, user.ID, models.SequenceInvoice, func(_ *gorm.DB, _ uint) error {
		return failure
	})
	suite.Assert().ErrorIs(err, failure)

	var number uint
	err = models.CreateNumbered(models.DB, user.ID, models.SequenceInvoice, func(_ *gorm.DB, n uint) error {
		number = n
		return nil
	})
	suite.Require().Nil(err)
	suite.Assert().Equal(uint(1), number)
}

func (suite *TestSuiteStandard) TestSequenceFormat() {
	suite.Assert().Equal("INV-0001", models.FormatInvoiceNumber(1))
	suite.Assert().Equal("INV-12345", models.FormatInvoiceNumber(12345))
	suite.Assert().Equal("#0042", models.FormatTransactionID(42))
}

func (suite *TestSuiteStandard) TestInvoiceNumberUnique() {
	user := suite.createTestUser("unique-invoice@example.com")

	first := models.Invoice{UserID: user.ID, InvoiceNumber: "INV-0001", Customer: "ACME"}
	suite.Require().Nil(models.DB.Create(&first).Error)

	second := models.Invoice{UserID: user.ID, InvoiceNumber: "INV-0001", Customer: "ACME"}
	suite.Assert().ErrorIs(models.DB.Create(&second).Error, models.ErrSequenceConflict)
}

// TestCreateNumberedConcurrent verifies that concurrent creates never
// receive the same number.
func (suite *TestSuiteStandard) TestCreateNumberedConcurrent() {
	user := suite.createTestUser("concurrent@example.com")

	const n = 10
	var wg sync.WaitGroup
	numbers := make(chan uint, n)
	errs := make(chan error, n)

	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := models.CreateNumbered(models.DB, user.ID, models.SequenceTransaction, func(tx *gorm.DB, number uint) error {
				numbers <- number
				return nil
			})
			if err != nil {
				errs <- err
			}
		}()
	}
	wg.Wait()
	close(numbers)
	close(errs)

	for err := range errs {
		suite.Assert().Nil(err)
	}

	seen := map[uint]bool{}
	for number := range numbers {
		suite.Assert().False(seen[number], "number %d was handed out twice", number)
		seen[number] = true
	}
	suite.Assert().Len(seen, n)
}
