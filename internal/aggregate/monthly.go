// Package aggregate turns raw entries into the monthly, annual and
// per-label summaries shown to users.
//
// All functions are pure. They never change their input and return the
// same result for the same entries.
package aggregate

import (
	"time"

	"github.com/ledgerbook/backend/internal/models"
	"github.com/ledgerbook/backend/internal/types"
	"github.com/shopspring/decimal"
)

// MonthlyItem is the rounded total of one label within a month.
type MonthlyItem struct {
	Label  string  `json:"label" example:"Salary"`
	Amount float64 `json:"amount" example:"30000"`
}

// MonthlyAggregate is the breakdown of one month of a category.
type MonthlyAggregate struct {
	Month time.Month    `json:"-"`
	Name  string        `json:"month" example:"มกราคม"`
	Items []MonthlyItem `json:"items"`
	Total float64       `json:"total" example:"35000"`
}

type monthLabel struct {
	month time.Month
	label string
}

// MonthlyBreakdown groups the items of all entries dated in year by month
// and label.
//
// Labels whose amounts add up to exactly zero are left out, as are months
// that have no labels left. Item amounts and month totals are rounded to
// whole units, the month total is rounded after summing the exact label
// totals. Months are returned in calendar order.
func MonthlyBreakdown(entries []models.Entry, year int, names types.MonthNames) []MonthlyAggregate {
	sums := newGroups[monthLabel]()

	for _, entry := range entries {
		if entry.Date.IsZero() || entry.Date.Year() != year {
			continue
		}

		for _, item := range entry.Items {
			sums.add(monthLabel{entry.Date.Month(), item.Label}, item.Amount.Decimal())
		}
	}

	var months [13]*MonthlyAggregate
	var totals [13]decimal.Decimal

	sums.each(func(key monthLabel, grp *group) {
		if grp.sum.IsZero() {
			return
		}

		m := months[key.month]
		if m == nil {
			m = &MonthlyAggregate{
				Month: key.month,
				Name:  names.Name(key.month),
				Items: make([]MonthlyItem, 0),
			}
			months[key.month] = m
		}

		m.Items = append(m.Items, MonthlyItem{Label: key.label, Amount: round(grp.sum)})
		totals[key.month] = totals[key.month].Add(grp.sum)
	})

	result := make([]MonthlyAggregate, 0)
	for month := time.January; month <= time.December; month++ {
		if months[month] == nil {
			continue
		}

		months[month].Total = round(totals[month])
		result = append(result, *months[month])
	}

	return result
}
