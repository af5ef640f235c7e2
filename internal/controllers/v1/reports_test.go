package v1_test

import (
	"bytes"
	"fmt"
	"net/http"
	"testing"

	"github.com/ledgerbook/backend/internal/aggregate"
	"github.com/ledgerbook/backend/internal/auth"
	v1 "github.com/ledgerbook/backend/internal/controllers/v1"
	"github.com/ledgerbook/backend/internal/types"
	ledger_uuid "github.com/ledgerbook/backend/internal/uuid"
	"github.com/ledgerbook/backend/test"
	"github.com/stretchr/testify/assert"
	"github.com/xuri/excelize/v2"
)

func (suite *TestSuiteStandard) TestReport() {
	owner, headers := test.SignUp(suite.T(), "Somchai")

	suite.createTestEntry(owner, headers, types.Expense, "2024-01-01", item("Rent", 15000, "Jan"), item("Fuel", 1200))
	suite.createTestEntry(owner, headers, types.Expense, "2024-02-01", item("Rent", 15000, " Feb "), item("Rental car", 800, "trip"))
	suite.createTestEntry(owner, headers, types.Expense, "2023-02-01", item("Rent", 14000, "Jan"))

	// Zero amounts and blank labels are ignored, netting labels dropped
	suite.createTestEntry(owner, headers, types.Expense, "2024-03-01", item("Fuel", 0, "ignored"), item("  ", 500), item("Deposit", 100), item("Deposit", -100))

	// Other categories are not part of the report
	suite.createTestEntry(owner, headers, types.Income, "2024-01-01", item("Rent", 20000))

	tests := []struct {
		name  string
		query string
		rows  []aggregate.LabelTotal
	}{
		{
			"All labels",
			"report=totalExpense",
			[]aggregate.LabelTotal{
				{Label: "Rent", Amount: 44000, Comment: "Jan, Feb"},
				{Label: "Fuel", Amount: 1200},
				{Label: "Rental car", Amount: 800, Comment: "trip"},
			},
		},
		{
			"Matching labels",
			"report=totalExpense&match=Rent*",
			[]aggregate.LabelTotal{
				{Label: "Rent", Amount: 44000, Comment: "Jan, Feb"},
				{Label: "Rental car", Amount: 800, Comment: "trip"},
			},
		},
		{
			"Nothing matches",
			"report=totalExpense&match=Food",
			[]aggregate.LabelTotal{},
		},
		{
			"Explicit JSON",
			"report=totalIncome&format=json",
			[]aggregate.LabelTotal{{Label: "Rent", Amount: 20000}},
		},
		{
			"No entries",
			"report=totalSaving",
			[]aggregate.LabelTotal{},
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/reports/%s?%s", owner, tt.query), "", headers)
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.ReportResponse
			test.DecodeResponse(t, &r, &response)
			assert.True(t, response.Success)
			assert.Empty(t, response.Message)
			if assert.NotNil(t, response.Data) {
				assert.Equal(t, tt.rows, *response.Data)
			}
		})
	}
}

func (suite *TestSuiteStandard) TestReportCSV() {
	owner, headers := test.SignUp(suite.T(), "Somchai")
	suite.createTestEntry(owner, headers, types.Income, "2024-01-01", item("Salary", 30000, "Jan"), item("Bonus", 1500.5))

	r := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/reports/%s?report=totalIncome&format=csv", owner), "", headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	suite.Assert().Equal("text/csv; charset=utf-8", r.Header().Get("Content-Type"))
	suite.Assert().Equal(`attachment; filename="totalIncome.csv"`, r.Header().Get("Content-Disposition"))
	suite.Assert().Equal("\xEF\xBB\xBFlabel,amount,comment\nSalary,30000,Jan\nBonus,1500.5,\n", r.Body.String())
}

func (suite *TestSuiteStandard) TestReportXLSX() {
	owner, headers := test.SignUp(suite.T(), "Somchai")
	suite.createTestEntry(owner, headers, types.Savings, "2024-01-01", item("Deposit", 1000, "bank"))

	r := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/reports/%s?report=totalSaving&format=xlsx", owner), "", headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	suite.Assert().Equal("application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", r.Header().Get("Content-Type"))

	f, err := excelize.OpenReader(bytes.NewReader(r.Body.Bytes()))
	suite.Require().Nil(err)
	defer f.Close()

	rows, err := f.GetRows("totalSaving")
	suite.Require().Nil(err)
	suite.Assert().Equal([][]string{
		{"label", "amount", "comment"},
		{"Deposit", "1000", "bank"},
	}, rows)
}

func (suite *TestSuiteStandard) TestReportFails() {
	owner, headers := test.SignUp(suite.T(), "Somchai")

	tests := []struct {
		name  string
		query string
	}{
		{"No report", ""},
		{"Unknown report", "report=totalEverything"},
		{"Unknown format", "report=totalIncome&format=pdf"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/reports/%s?%s", owner, tt.query), "", headers)
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)

			var response v1.ReportResponse
			test.DecodeResponse(t, &r, &response)
			assert.False(t, response.Success)
			assert.NotEmpty(t, response.Message)
			assert.Nil(t, response.Data)
		})
	}
}

func (suite *TestSuiteStandard) TestReportAccessDenied() {
	owner, _ := test.SignUp(suite.T(), "Somchai")
	_, otherHeaders := test.SignUp(suite.T(), "Malee")

	tests := []struct {
		name    string
		owner   string
		headers map[string]string
		status  int
	}{
		{"Other user", owner.String(), otherHeaders, http.StatusUnauthorized},
		{"No token", owner.String(), nil, http.StatusUnauthorized},
		{"Malformed owner", "not-an-id", otherHeaders, http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/reports/%s?report=totalIncome", tt.owner), "", tt.headers)
			test.AssertHTTPStatus(t, &r, tt.status)
			assert.JSONEq(t, fmt.Sprintf(`{"success": false, "message": %q}`, gateMessage(tt.status)), r.Body.String())
		})
	}
}

func gateMessage(status int) string {
	if status == http.StatusBadRequest {
		return ledger_uuid.ErrInvalid.Error()
	}
	return auth.ErrUnauthenticated.Error()
}

func (suite *TestSuiteStandard) TestReportDBClosed() {
	owner, headers := test.SignUp(suite.T(), "Somchai")
	suite.CloseDB()

	r := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/reports/%s?report=totalIncome", owner), "", headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusInternalServerError)

	var response v1.ReportResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().False(response.Success)
	suite.Assert().NotEmpty(response.Message)
}
