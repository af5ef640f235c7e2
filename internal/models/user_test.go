package models_test

import (
	"github.com/ledgerbook/backend/internal/models"
)

func (suite *TestSuiteStandard) TestUserEmailNormalized() {
	user := models.User{Name: "Somchai", Email: "  Somchai@Example.COM "}
	suite.Require().Nil(models.DB.Create(&user).Error)

	suite.Assert().Equal("somchai@example.com", user.Email)
}

func (suite *TestSuiteStandard) TestUserEmailUnique() {
	suite.Require().Nil(models.DB.Create(&models.User{Email: "a@example.com"}).Error)

	err := models.DB.Create(&models.User{Email: "A@example.com"}).Error
	suite.Assert().ErrorIs(err, models.ErrEmailNotUnique)
}
