package types

import (
	"errors"
	"fmt"
)

// ErrCategoryUnknown is returned when a string does not name a category.
var ErrCategoryUnknown = errors.New("unknown category")

// Category is one of the three kinds of money flow an entry can record.
type Category string

const (
	Income  Category = "income"
	Expense Category = "expense"
	Savings Category = "savings"
)

// Categories lists all categories in their canonical order.
var Categories = []Category{Income, Expense, Savings}

// ParseCategory parses a category from its canonical name, its route
// slug or its collection name.
func ParseCategory(s string) (Category, error) {
	for _, c := range Categories {
		if s == string(c) || s == c.Slug() || s == c.Collection() {
			return c, nil
		}
	}

	return "", fmt.Errorf("%w: '%s'", ErrCategoryUnknown, s)
}

// Slug is used in the monthly and template list routes.
func (c Category) Slug() string {
	if c == Savings {
		return "saving"
	}
	return string(c)
}

// Collection is used in the entry routes.
func (c Category) Collection() string {
	switch c {
	case Income:
		return "incomes"
	case Expense:
		return "expenses"
	default:
		return "savings"
	}
}

// Report is the name of the all-time label report for the category.
func (c Category) Report() string {
	switch c {
	case Income:
		return "totalIncome"
	case Expense:
		return "totalExpense"
	default:
		return "totalSaving"
	}
}

// CategoryForReport returns the category a report name refers to.
func CategoryForReport(report string) (Category, error) {
	for _, c := range Categories {
		if c.Report() == report {
			return c, nil
		}
	}

	return "", fmt.Errorf("%w: no report called '%s'", ErrCategoryUnknown, report)
}

// Valid reports if c is one of the known categories.
func (c Category) Valid() bool {
	return c == Income || c == Expense || c == Savings
}
