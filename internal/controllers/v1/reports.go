package v1

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ledgerbook/backend/internal/aggregate"
	"github.com/ledgerbook/backend/internal/auth"
	"github.com/ledgerbook/backend/internal/export"
	"github.com/ledgerbook/backend/internal/types"
	"github.com/rs/zerolog/log"
	"github.com/ryanuber/go-glob"
)

const (
	formatJSON = "json"
	formatCSV  = "csv"
	formatXLSX = "xlsx"
)

// QueryReport selects the report and how it is rendered.
type QueryReport struct {
	Report string `form:"report" example:"totalIncome"` // totalIncome, totalExpense or totalSaving
	Match  string `form:"match" example:"Rent*"`        // Only labels matching this pattern, "*" matches any text
	Format string `form:"format" example:"json"`        // json (default), csv or xlsx
}

type ReportResponse struct {
	Success bool                    `json:"success" example:"true"`                                       // If the report was generated
	Data    *[]aggregate.LabelTotal `json:"data,omitempty"`                                               // Totals per label
	Message string                  `json:"message,omitempty" example:"the report parameter must be set"` // The error, if any occurred
}

func reportError(c *gin.Context, code int, err error) {
	c.JSON(code, ReportResponse{Message: err.Error()})
}

// @Summary		Label report
// @Description	Returns the total per label over all entries of a category, with the notes written for each label
// @Tags			Reports
// @Produce		json
// @Produce		text/csv
// @Produce		application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success		200		{object}	ReportResponse
// @Failure		400		{object}	ReportResponse
// @Failure		401		{object}	ReportResponse
// @Failure		500		{object}	ReportResponse
// @Param			owner	path		string	true	"ID of the owner"
// @Param			report	query		string	true	"totalIncome, totalExpense or totalSaving"
// @Param			match	query		string	false	"Only labels matching this pattern"
// @Param			format	query		string	false	"json, csv or xlsx"
// @Router			/v1/reports/{owner} [get]
func (co Controller) GetReport(c *gin.Context) {
	var query QueryReport
	if err := c.ShouldBindQuery(&query); err != nil {
		reportError(c, http.StatusBadRequest, err)
		return
	}

	if query.Report == "" {
		reportError(c, http.StatusBadRequest, errReportMissing)
		return
	}

	category, err := types.CategoryForReport(query.Report)
	if err != nil {
		reportError(c, http.StatusBadRequest, err)
		return
	}

	if query.Format == "" {
		query.Format = formatJSON
	}

	if query.Format != formatJSON && query.Format != formatCSV && query.Format != formatXLSX {
		reportError(c, http.StatusBadRequest, errReportFormat)
		return
	}

	owner, err := auth.Owner(c)
	if err != nil {
		reportError(c, status(err), err)
		return
	}

	entries, err := loadEntries(c.Request.Context(), owner, 0, category)
	if err != nil {
		reportError(c, status(err), err)
		return
	}

	rows := aggregate.LabelTotalsAllTime(entries)
	if query.Match != "" {
		matching := make([]aggregate.LabelTotal, 0, len(rows))
		for _, row := range rows {
			if glob.Glob(query.Match, row.Label) {
				matching = append(matching, row)
			}
		}
		rows = matching
	}

	switch query.Format {
	case formatCSV:
		var b bytes.Buffer
		if err := export.CSV(&b, rows); err != nil {
			log.Error().Err(err).Str("report", query.Report).Msg("csv export")
			reportError(c, http.StatusInternalServerError, err)
			return
		}

		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", query.Report+".csv"))
		c.Data(http.StatusOK, "text/csv; charset=utf-8", b.Bytes())

	case formatXLSX:
		var b bytes.Buffer
		if err := export.XLSX(&b, query.Report, rows); err != nil {
			log.Error().Err(err).Str("report", query.Report).Msg("xlsx export")
			reportError(c, http.StatusInternalServerError, err)
			return
		}

		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", query.Report+".xlsx"))
		c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", b.Bytes())

	default:
		c.JSON(http.StatusOK, ReportResponse{Success: true, Data: &rows})
	}
}
