package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	v1 "github.com/ledgerbook/backend/internal/controllers/v1"
	"github.com/ledgerbook/backend/internal/models"
	"github.com/ledgerbook/backend/internal/types"
	"github.com/ledgerbook/backend/test"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestEntriesCreateAndList() {
	owner, headers := test.SignUp(suite.T(), "Somchai")

	e := suite.createTestEntry(owner, headers, types.Income, "2024-03-01", item("Salary", 30000, "March"))
	suite.Assert().Equal(owner, e.OwnerID)
	suite.Assert().Equal(types.Income, e.Category)
	suite.Assert().Equal("2024-03-01", e.Date.String())

	// Saving the same date again creates another entry
	suite.createTestEntry(owner, headers, types.Income, "2024-03-01", item("Bonus", 5000))
	suite.createTestEntry(owner, headers, types.Income, "2023-12-31", item("Salary", 28000))
	suite.createTestEntry(owner, headers, types.Expense, "2024-03-02", item("Rent", 15000))

	tests := []struct {
		name  string
		url   string
		dates []string
	}{
		{"All years", fmt.Sprintf("http://example.com/v1/incomes/%s", owner), []string{"2023-12-31", "2024-03-01", "2024-03-01"}},
		{"One year", fmt.Sprintf("http://example.com/v1/incomes/%s?year=2024", owner), []string{"2024-03-01", "2024-03-01"}},
		{"Year without entries", fmt.Sprintf("http://example.com/v1/incomes/%s?year=2020", owner), []string{}},
		{"Other category", fmt.Sprintf("http://example.com/v1/expenses/%s", owner), []string{"2024-03-02"}},
		{"Category without entries", fmt.Sprintf("http://example.com/v1/savings/%s", owner), []string{}},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, tt.url, "", headers)
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.EntryListResponse
			test.DecodeResponse(t, &r, &response)

			dates := make([]string, 0)
			for _, e := range response.Data {
				dates = append(dates, e.Date.String())
			}
			assert.Equal(t, tt.dates, dates)
		})
	}
}

func (suite *TestSuiteStandard) TestEntriesTolerantAmounts() {
	owner, headers := test.SignUp(suite.T(), "Somchai")

	body := `{"date": "2024-01-15", "items": [{"label": "Salary", "amount": "30000"}, {"label": "Tips", "amount": "a lot"}, {"label": "Bonus", "amount": null}]}`
	r := test.Request(suite.T(), http.MethodPost, fmt.Sprintf("http://example.com/v1/incomes/%s", owner), body, headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	var response v1.EntryResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().NotNil(response.Data)
	suite.Require().Len(response.Data.Items, 3)
	suite.Assert().Equal("30000", response.Data.Items[0].Amount.String())
	suite.Assert().True(response.Data.Items[1].Amount.Decimal().IsZero())
	suite.Assert().False(response.Data.Items[2].Amount.IsSet())
}

func (suite *TestSuiteStandard) TestEntriesCreateFails() {
	owner, headers := test.SignUp(suite.T(), "Somchai")
	url := fmt.Sprintf("http://example.com/v1/expenses/%s", owner)

	tests := []struct {
		name    string
		body    any
		headers map[string]string
		status  int
	}{
		{"No date", `{"items": [{"label": "Rent", "amount": 1}]}`, headers, http.StatusBadRequest},
		{"Invalid date", `{"date": "yesterday", "items": []}`, headers, http.StatusBadRequest},
		{"Empty body", "", headers, http.StatusBadRequest},
		{"Not authenticated", `{"date": "2024-01-01", "items": []}`, map[string]string{}, http.StatusUnauthorized},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, url, tt.body, tt.headers)
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}

	var count int64
	suite.Require().Nil(models.DB.Model(&models.Entry{}).Count(&count).Error)
	suite.Assert().Equal(int64(0), count)
}

func (suite *TestSuiteStandard) TestEntriesOtherOwner() {
	owner, _ := test.SignUp(suite.T(), "Somchai")
	_, otherHeaders := test.SignUp(suite.T(), "Malee")

	r := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/incomes/%s", owner), "", otherHeaders)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusUnauthorized)

	r = test.Request(suite.T(), http.MethodPost, fmt.Sprintf("http://example.com/v1/incomes/%s", owner), `{"date": "2024-01-01", "items": []}`, otherHeaders)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusUnauthorized)
}

func (suite *TestSuiteStandard) TestEntriesInvalidYear() {
	owner, headers := test.SignUp(suite.T(), "Somchai")

	for _, year := range []string{"abc", "-1", "10000"} {
		r := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/incomes/%s?year=%s", owner, year), "", headers)
		test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
	}
}

func (suite *TestSuiteStandard) TestEntriesDBClosed() {
	owner, headers := test.SignUp(suite.T(), "Somchai")
	suite.CloseDB()

	r := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/incomes/%s", owner), "", headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusInternalServerError)

	var response v1.EntryListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().NotNil(response.Error)
	suite.Assert().Equal(models.ErrGeneral.Error(), *response.Error)
}
