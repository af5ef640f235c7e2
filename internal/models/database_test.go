package models_test

import (
	"context"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/ledgerbook/backend/internal/models"
	"github.com/ledgerbook/backend/internal/types"
)

func (suite *TestSuiteStandard) TestConnectInvalidPath() {
	err := models.Connect(filepath.Join(suite.T().TempDir(), "missing", "dir", "db.sqlite"))
	suite.Assert().NotNil(err)
}

func (suite *TestSuiteStandard) TestNotFoundNamesResource() {
	_, err := models.LatestTemplate(context.Background(), models.DB, uuid.New(), types.Income)

	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
	suite.Assert().Equal("there is no template matching your query", err.Error())
}

func (suite *TestSuiteStandard) TestDatabaseClosed() {
	suite.CloseDB()

	_, err := models.Entries(context.Background(), models.DB, uuid.New(), types.Expense, 0)
	suite.Assert().ErrorIs(err, models.ErrGeneral)

	err = models.DB.Create(&models.Entry{OwnerID: uuid.New(), Category: types.Expense}).Error
	suite.Assert().ErrorIs(err, models.ErrGeneral)
}
