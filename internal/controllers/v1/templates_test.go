package v1_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/google/uuid"
	v1 "github.com/ledgerbook/backend/internal/controllers/v1"
	"github.com/ledgerbook/backend/internal/models"
	"github.com/ledgerbook/backend/internal/templates"
	"github.com/ledgerbook/backend/internal/types"
	"github.com/ledgerbook/backend/test"
	"github.com/stretchr/testify/assert"
)

func templateURL(category types.Category, owner uuid.UUID) string {
	return fmt.Sprintf("http://example.com/v1/%s-list/%s", category.Slug(), owner)
}

func labels(t v1.TemplateResponse) []string {
	l := make([]string, 0, len(t.Items))
	for _, i := range t.Items {
		l = append(l, i.Label)
	}
	return l
}

func (suite *TestSuiteStandard) getTemplate(owner uuid.UUID, headers map[string]string, category types.Category) v1.TemplateResponse {
	r := test.Request(suite.T(), http.MethodGet, templateURL(category, owner), "", headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.TemplateResponse
	test.DecodeResponse(suite.T(), &r, &response)
	return response
}

func (suite *TestSuiteStandard) TestTemplateSeedsDefaults() {
	owner, headers := test.SignUp(suite.T(), "Somchai")

	for _, category := range types.Categories {
		suite.T().Run(string(category), func(t *testing.T) {
			r := test.Request(t, http.MethodGet, templateURL(category, owner), "", headers)
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.TemplateResponse
			test.DecodeResponse(t, &r, &response)

			expected := make([]string, 0)
			for _, i := range templates.Defaults(category) {
				expected = append(expected, i.Label)
			}

			assert.Equal(t, expected, labels(response))
			assert.Equal(t, uint(1), response.Version)
			assert.NotEqual(t, uuid.Nil, response.ID)
			assert.False(t, response.CreatedAt.IsZero())

			// Amounts and comments are sent as empty strings
			var raw struct {
				Items []map[string]any `json:"items"`
			}
			assert.Nil(t, json.Unmarshal(r.Body.Bytes(), &raw))
			for _, i := range raw.Items {
				assert.Equal(t, "", i["amount"])
				assert.Equal(t, "", i["comment"])
			}
		})
	}

	// Reading again does not seed again
	suite.Assert().Equal(uint(1), suite.getTemplate(owner, headers, types.Income).Version)
}

func (suite *TestSuiteStandard) TestTemplateAppend() {
	owner, headers := test.SignUp(suite.T(), "Somchai")
	defaults := len(templates.Defaults(types.Expense))

	// Appending to an owner without template seeds the defaults first
	r := test.Request(suite.T(), http.MethodPost, templateURL(types.Expense, owner), `{"item": {"label": "Gym", "amount": "990", "comment": "monthly"}}`, headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.TemplateResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().Len(response.Items, defaults+1)
	suite.Assert().Equal("Gym", response.Items[defaults].Label)
	suite.Assert().False(response.Items[defaults].Amount.IsSet())
	suite.Assert().Equal("", response.Items[defaults].Note)
	suite.Assert().Equal(uint(2), response.Version)

	// Duplicates are kept
	r = test.Request(suite.T(), http.MethodPost, templateURL(types.Expense, owner), `{"item": {"label": "Gym", "amount": 1}}`, headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	suite.Assert().Len(suite.getTemplate(owner, headers, types.Expense).Items, defaults+2)

	// The amount is stored even though it is never returned
	var stored models.Template
	suite.Require().Nil(models.DB.Where(&models.Template{OwnerID: owner, Category: types.Expense, Version: 2}).First(&stored).Error)
	suite.Assert().Equal("990", stored.Items[defaults].Amount.String())
	suite.Assert().Equal("monthly", stored.Items[defaults].Note)
}

func (suite *TestSuiteStandard) TestTemplateAppendNoop() {
	owner, headers := test.SignUp(suite.T(), "Somchai")
	before := suite.getTemplate(owner, headers, types.Income)

	for _, body := range []string{
		`{"item": {"label": "", "amount": 100}}`,
		`{"item": {"label": "   ", "amount": 100}}`,
		`{"item": {"label": "Tips", "amount": ""}}`,
		`{"item": {"label": "Tips"}}`,
	} {
		r := test.Request(suite.T(), http.MethodPost, templateURL(types.Income, owner), body, headers)
		test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

		var response v1.TemplateResponse
		test.DecodeResponse(suite.T(), &r, &response)
		suite.Assert().Equal(before.Version, response.Version, body)
		suite.Assert().Equal(labels(before), labels(response), body)
	}
}

func (suite *TestSuiteStandard) TestTemplateReplace() {
	owner, headers := test.SignUp(suite.T(), "Somchai")

	r := test.Request(suite.T(), http.MethodPost, templateURL(types.Savings, owner), `{"items": [{"label": "Gold", "amount": ""}, {"label": "Bonds", "amount": ""}]}`, headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.TemplateResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Equal([]string{"Gold", "Bonds"}, labels(response))
	suite.Assert().Equal(uint(1), response.Version)

	r = test.Request(suite.T(), http.MethodPost, templateURL(types.Savings, owner), `{"items": []}`, headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	t := suite.getTemplate(owner, headers, types.Savings)
	suite.Assert().Empty(t.Items)
	suite.Assert().Equal(uint(2), t.Version)
}

func (suite *TestSuiteStandard) TestTemplateUpdateFails() {
	owner, headers := test.SignUp(suite.T(), "Somchai")

	tests := []struct {
		name string
		body string
	}{
		{"Neither items nor item", `{}`},
		{"Both items and item", `{"items": [], "item": {"label": "Gym", "amount": 1}}`},
		{"Empty body", ""},
		{"Wrong type", `{"items": "Gym"}`},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, templateURL(types.Expense, owner), tt.body, headers)
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)
		})
	}
}

func (suite *TestSuiteStandard) TestTemplateDelete() {
	owner, headers := test.SignUp(suite.T(), "Somchai")
	before := suite.getTemplate(owner, headers, types.Income)
	suite.Require().GreaterOrEqual(len(before.Items), 3)

	r := test.Request(suite.T(), http.MethodDelete, templateURL(types.Income, owner), `{"index": 1}`, headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.TemplateResponse
	test.DecodeResponse(suite.T(), &r, &response)

	expected := append([]string{}, labels(before)[0])
	expected = append(expected, labels(before)[2:]...)
	suite.Assert().Equal(expected, labels(response))
	suite.Assert().Equal(before.Version+1, response.Version)
}

func (suite *TestSuiteStandard) TestTemplateDeleteFails() {
	owner, headers := test.SignUp(suite.T(), "Somchai")

	// Without a template, there is nothing to delete
	r := test.Request(suite.T(), http.MethodDelete, templateURL(types.Expense, owner), `{"index": 0}`, headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	before := suite.getTemplate(owner, headers, types.Expense)

	tests := []struct {
		name   string
		body   string
		status int
	}{
		{"Negative index", `{"index": -1}`, http.StatusBadRequest},
		{"Index too large", fmt.Sprintf(`{"index": %d}`, len(before.Items)), http.StatusBadRequest},
		{"No index", `{}`, http.StatusBadRequest},
		{"Empty body", "", http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodDelete, templateURL(types.Expense, owner), tt.body, headers)
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}

	// Nothing was changed
	suite.Assert().Equal(before.Version, suite.getTemplate(owner, headers, types.Expense).Version)
}

func (suite *TestSuiteStandard) TestTemplateOwners() {
	owner, headers := test.SignUp(suite.T(), "Somchai")
	other, otherHeaders := test.SignUp(suite.T(), "Malee")

	r := test.Request(suite.T(), http.MethodPost, templateURL(types.Income, owner), `{"items": [{"label": "Consulting", "amount": ""}]}`, headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	// Other owners still get the defaults
	suite.Assert().Len(suite.getTemplate(other, otherHeaders, types.Income).Items, len(templates.Defaults(types.Income)))

	r = test.Request(suite.T(), http.MethodGet, templateURL(types.Income, owner), "", otherHeaders)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusUnauthorized)

	r = test.Request(suite.T(), http.MethodDelete, templateURL(types.Income, owner), `{"index": 0}`, otherHeaders)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusUnauthorized)
}

func (suite *TestSuiteStandard) TestTemplateOptions() {
	owner, _ := test.SignUp(suite.T(), "Somchai")

	r := test.Request(suite.T(), http.MethodOptions, templateURL(types.Income, owner), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	suite.Assert().Equal("OPTIONS, GET, POST, DELETE", r.Header().Get("allow"))
}
