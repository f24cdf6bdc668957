package models_test

import (
	"github.com/fintrack-ph/backend/internal/models"
	"gorm.io/gorm"
)

func (suite *TestSuiteStandard) TestSetDefaultPaymentMethod() {
	user := suite.createTestUser("default@example.com")
	other := suite.createTestUser("other-default@example.com")

	var methods []models.PaymentMethod
	for i, u := range []models.User{user, user, user, other} {
		m := models.PaymentMethod{UserID: u.ID, Type: "Cash", AccountNumber: "0000", AccountName: "Wallet", IsDefault: i == 0 || i == 3}
		suite.Require().Nil(models.DB.Create(&m).Error)
		methods = append(methods, m)
	}

	err := models.DB.Transaction(func(tx *gorm.DB) error {
		return models.SetDefaultPaymentMethod(tx, user.ID, methods[2].ID)
	})
	suite.Require().Nil(err)

	var defaults []models.PaymentMethod
	suite.Require().Nil(models.DB.Where("is_default = ?", true).Order("created_at").Find(&defaults).Error)
	suite.Require().Len(defaults, 2)

	ids := []any{defaults[0].ID, defaults[1].ID}
	suite.Assert().Contains(ids, methods[2].ID)
	suite.Assert().Contains(ids, methods[3].ID)
}

// TestSecondDefaultRejected verifies the partial unique index.
func (suite *TestSuiteStandard) TestSecondDefaultRejected() {
	user := suite.createTestUser("index@example.com")

	first := models.PaymentMethod{UserID: user.ID, Type: "Cash", AccountNumber: "1", AccountName: "A", IsDefault: true}
	suite.Require().Nil(models.DB.Create(&first).Error)

	second := models.PaymentMethod{UserID: user.ID, Type: "Cash", AccountNumber: "2", AccountName: "B", IsDefault: true}
	suite.Assert().ErrorIs(models.DB.Create(&second).Error, models.ErrDefaultConflict)
}
