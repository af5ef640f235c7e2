package aggregate

import (
	"github.com/ledgerbook/backend/internal/models"
	"github.com/ledgerbook/backend/internal/types"
	"github.com/shopspring/decimal"
)

// FinancialBalance is what is left of the income after expenses
// and savings.
type FinancialBalance struct {
	TotalIncome  float64 `json:"totalIncome" example:"45000"`
	TotalExpense float64 `json:"totalExpense" example:"30000"`
	TotalSaving  float64 `json:"totalSaving" example:"5000"`
	Balance      float64 `json:"balance" example:"10000"`
}

// Balance sums every item of every entry per category.
func Balance(entries []models.Entry) FinancialBalance {
	totals := make(map[types.Category]decimal.Decimal, len(types.Categories))

	for _, entry := range entries {
		for _, item := range entry.Items {
			totals[entry.Category] = totals[entry.Category].Add(item.Amount.Decimal())
		}
	}

	income := totals[types.Income]
	expense := totals[types.Expense]
	saving := totals[types.Savings]

	return FinancialBalance{
		TotalIncome:  income.InexactFloat64(),
		TotalExpense: expense.InexactFloat64(),
		TotalSaving:  saving.InexactFloat64(),
		Balance:      income.Sub(expense).Sub(saving).InexactFloat64(),
	}
}
