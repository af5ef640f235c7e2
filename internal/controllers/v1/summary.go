package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ledgerbook/backend/internal/aggregate"
	"github.com/ledgerbook/backend/internal/auth"
	"github.com/ledgerbook/backend/internal/types"
)

// @Summary		Financial summary
// @Description	Returns the monthly totals of income, expenses and savings. Months with the same number are added up across years unless a year is given.
// @Tags			Summaries
// @Produce		json
// @Success		200		{object}	aggregate.AnnualSummary
// @Failure		400		{object}	httpError
// @Failure		401		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			owner	path		string	true	"ID of the owner"
// @Param			year	query		int		false	"Only entries of this year"
// @Router			/v1/financial-summary/{owner} [get]
func (co Controller) GetFinancialSummary(c *gin.Context) {
	var query QueryYear
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, httpError{Error: err.Error()})
		return
	}

	owner, err := auth.Owner(c)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	entries, err := loadEntries(c.Request.Context(), owner, query.Year, types.Categories...)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, aggregate.AnnualTotals(entries))
}

// @Summary		Financial balance
// @Description	Returns the total income, expenses and savings and the balance left. All years are included unless a year is given.
// @Tags			Summaries
// @Produce		json
// @Success		200		{object}	aggregate.FinancialBalance
// @Failure		400		{object}	httpError
// @Failure		401		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			owner	path		string	true	"ID of the owner"
// @Param			year	query		int		false	"Only entries of this year"
// @Router			/v1/financial-balance/{owner} [get]
func (co Controller) GetFinancialBalance(c *gin.Context) {
	var query QueryYear
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, httpError{Error: err.Error()})
		return
	}

	owner, err := auth.Owner(c)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	entries, err := loadEntries(c.Request.Context(), owner, query.Year, types.Categories...)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, aggregate.Balance(entries))
}

// @Summary		Monthly breakdown
// @Description	Returns the totals per label for every month of a year that has any. Labels that net to zero are left out.
// @Tags			Summaries
// @Produce		json
// @Success		200		{array}		aggregate.MonthlyAggregate
// @Failure		400		{object}	httpError
// @Failure		401		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			owner	path		string	true	"ID of the owner"
// @Param			year	query		int		false	"Year, defaults to the current year"
// @Param			lang	query		string	false	"Language of the month names, th or en"
// @Router			/v1/monthly-income/{owner} [get]
// @Router			/v1/monthly-expense/{owner} [get]
// @Router			/v1/monthly-saving/{owner} [get]
func (co Controller) GetMonthly(category types.Category) gin.HandlerFunc {
	return func(c *gin.Context) {
		var query QueryMonthly
		if err := c.ShouldBindQuery(&query); err != nil {
			c.JSON(http.StatusBadRequest, httpError{Error: err.Error()})
			return
		}

		owner, err := auth.Owner(c)
		if err != nil {
			c.JSON(status(err), httpError{Error: err.Error()})
			return
		}

		year := query.year(currentYear())
		entries, err := loadEntries(c.Request.Context(), owner, year, category)
		if err != nil {
			c.JSON(status(err), httpError{Error: err.Error()})
			return
		}

		names := types.MonthNamesFor(query.Lang, c.GetHeader("Accept-Language"), co.Locale)
		c.JSON(http.StatusOK, aggregate.MonthlyBreakdown(entries, year, names))
	}
}
