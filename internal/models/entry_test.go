package models_test

import (
	"context"

	"github.com/google/uuid"
	"github.com/ledgerbook/backend/internal/models"
	"github.com/ledgerbook/backend/internal/types"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestEntryItemsRoundTrip() {
	entry := suite.createTestEntry(models.Entry{
		Category: types.Income,
		Date:     types.NewDate(2024, 2, 1),
		Items: []models.Item{
			{Label: "Salary", Amount: types.NewAmount(decimal.NewFromInt(30000)), Note: "February"},
			{Label: "Bonus", Amount: types.ParseAmount("")},
		},
	})

	var loaded models.Entry
	suite.Require().Nil(models.DB.First(&loaded, "id = ?", entry.ID).Error)

	suite.Assert().Equal(types.NewDate(2024, 2, 1), loaded.Date)
	suite.Require().Len(loaded.Items, 2)
	suite.Assert().Equal("Salary", loaded.Items[0].Label)
	suite.Assert().True(decimal.NewFromInt(30000).Equal(loaded.Items[0].Amount.Decimal()))
	suite.Assert().Equal("February", loaded.Items[0].Note)
	suite.Assert().False(loaded.Items[1].Amount.IsSet())
}

func (suite *TestSuiteStandard) TestEntriesFilter() {
	owner := uuid.New()

	suite.createTestEntry(models.Entry{OwnerID: owner, Category: types.Income, Date: types.NewDate(2023, 12, 31)})
	suite.createTestEntry(models.Entry{OwnerID: owner, Category: types.Income, Date: types.NewDate(2024, 3, 1)})
	suite.createTestEntry(models.Entry{OwnerID: owner, Category: types.Income, Date: types.NewDate(2024, 1, 1)})
	suite.createTestEntry(models.Entry{OwnerID: owner, Category: types.Income, Date: types.NewDate(2025, 1, 1)})
	suite.createTestEntry(models.Entry{OwnerID: owner, Category: types.Expense, Date: types.NewDate(2024, 5, 1)})
	suite.createTestEntry(models.Entry{Category: types.Income, Date: types.NewDate(2024, 5, 1)})

	tests := []struct {
		name     string
		category types.Category
		year     int
		dates    []types.Date
	}{
		{"All years", types.Income, 0, []types.Date{types.NewDate(2023, 12, 31), types.NewDate(2024, 1, 1), types.NewDate(2024, 3, 1), types.NewDate(2025, 1, 1)}},
		{"Single year", types.Income, 2024, []types.Date{types.NewDate(2024, 1, 1), types.NewDate(2024, 3, 1)}},
		{"Other category", types.Expense, 0, []types.Date{types.NewDate(2024, 5, 1)}},
		{"Empty", types.Savings, 0, []types.Date{}},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			entries, err := models.Entries(context.Background(), models.DB, owner, tt.category, tt.year)
			suite.Require().Nil(err)

			dates := make([]types.Date, 0, len(entries))
			for _, e := range entries {
				dates = append(dates, e.Date)
			}
			suite.Assert().Equal(tt.dates, dates)
		})
	}
}
