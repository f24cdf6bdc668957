package models_test

import (
	"github.com/fintrack-ph/backend/internal/models"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestBudgetStatusDerived() {
	user := suite.createTestUser("budget@example.com")

	budget := models.Budget{
		UserID:    user.ID,
		Name:      " Groceries ",
		Allocated: decimal.NewFromInt(1000),
		Spent:     decimal.NewFromInt(800),
		Status:    "On Track",
	}
	suite.Require().Nil(models.DB.Create(&budget).Error)
	suite.Assert().Equal("Warning", budget.Status)
	suite.Assert().Equal("Groceries", budget.Name)
	suite.Assert().True(decimal.NewFromInt(80).Equal(budget.Percentage()))

	budget.Spent = decimal.NewFromInt(1200)
	suite.Require().Nil(models.DB.Save(&budget).Error)

	var reloaded models.Budget
	suite.Require().Nil(models.DB.First(&reloaded, "id = ?", budget.ID).Error)
	suite.Assert().Equal("Over Budget", reloaded.Status)
}
