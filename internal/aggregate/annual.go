package aggregate

import (
	"github.com/ledgerbook/backend/internal/models"
	"github.com/ledgerbook/backend/internal/types"
	"github.com/shopspring/decimal"
)

// MonthTotals are the totals of a category per calendar month,
// January at index 0.
type MonthTotals [12]float64

// AnnualSummary holds the month totals of all three categories.
type AnnualSummary struct {
	Income   MonthTotals `json:"income"`
	Expenses MonthTotals `json:"expenses"`
	Savings  MonthTotals `json:"savings"`
}

// AnnualTotals sums all items per category and calendar month.
//
// Entries of different years that fall in the same calendar month are
// added up, callers restrict the entries to a year if needed. Months
// without entries are zero.
func AnnualTotals(entries []models.Entry) AnnualSummary {
	sums := map[types.Category]*[12]decimal.Decimal{
		types.Income:  {},
		types.Expense: {},
		types.Savings: {},
	}

	for _, entry := range entries {
		months, ok := sums[entry.Category]
		if !ok || entry.Date.IsZero() {
			continue
		}

		i := int(entry.Date.Month()) - 1
		for _, item := range entry.Items {
			months[i] = months[i].Add(item.Amount.Decimal())
		}
	}

	return AnnualSummary{
		Income:   monthTotals(sums[types.Income]),
		Expenses: monthTotals(sums[types.Expense]),
		Savings:  monthTotals(sums[types.Savings]),
	}
}

func monthTotals(sums *[12]decimal.Decimal) MonthTotals {
	var t MonthTotals
	for i, s := range sums {
		t[i] = s.InexactFloat64()
	}
	return t
}
