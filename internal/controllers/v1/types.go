package v1

import (
	"time"
)

// QueryYear restricts results to a single calendar year.
type QueryYear struct {
	Year int `form:"year" binding:"omitempty,min=1,max=9999" example:"2024"` // Calendar year, e.g. 2024
}

// QueryMonthly selects the year and the language of month names.
type QueryMonthly struct {
	QueryYear
	Lang string `form:"lang" example:"th"` // Language of the month names, "th" or "en"
}

// year returns the requested year, or fallback if none was requested.
func (q QueryYear) year(fallback int) int {
	if q.Year == 0 {
		return fallback
	}
	return q.Year
}

func currentYear() int {
	return time.Now().UTC().Year()
}
