package v1_test

import (
	"fmt"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/ledgerbook/backend/internal/auth"
	v1 "github.com/ledgerbook/backend/internal/controllers/v1"
	"github.com/ledgerbook/backend/internal/models"
	"github.com/ledgerbook/backend/test"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestSignUp() {
	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/sign-up", v1.SignUpEditable{
		Name:     "Somchai",
		Email:    "  Somchai@Example.com ",
		Password: "correct horse battery staple",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	var response v1.UserResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().NotNil(response.Data)
	suite.Assert().Equal("Somchai", response.Data.Name)
	suite.Assert().Equal("somchai@example.com", response.Data.Email)
	suite.Assert().NotContains(r.Body.String(), "correct horse", "the password must never be returned")
	suite.Assert().NotContains(r.Body.String(), "$2a$", "the password hash must never be returned")
}

func (suite *TestSuiteStandard) TestSignUpFails() {
	// A user to collide with
	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/sign-up", v1.SignUpEditable{
		Name:     "Somchai",
		Email:    "somchai@example.com",
		Password: "correct horse battery staple",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	tests := []struct {
		name   string
		body   any
		status int
		err    string
	}{
		{"Duplicate e-mail", v1.SignUpEditable{Name: "Other", Email: "SOMCHAI@example.com", Password: "another long password"}, http.StatusConflict, models.ErrEmailNotUnique.Error()},
		{"Short password", v1.SignUpEditable{Name: "Short", Email: "short@example.com", Password: "short"}, http.StatusBadRequest, auth.ErrPasswordTooShort.Error()},
		{"No name", v1.SignUpEditable{Name: " ", Email: "noname@example.com", Password: "long enough password"}, http.StatusBadRequest, "name and e-mail"},
		{"No e-mail", v1.SignUpEditable{Name: "No Mail", Password: "long enough password"}, http.StatusBadRequest, "name and e-mail"},
		{"Empty body", "", http.StatusBadRequest, "the request body must not be empty"},
		{"Broken body", `{"name": 2}`, http.StatusBadRequest, "the body of your request contains invalid"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, "http://example.com/v1/sign-up", tt.body)
			test.AssertHTTPStatus(t, &r, tt.status)

			var response v1.UserResponse
			test.DecodeResponse(t, &r, &response)
			if assert.NotNil(t, response.Error) {
				assert.Contains(t, *response.Error, tt.err)
			}
		})
	}
}

func (suite *TestSuiteStandard) TestSignIn() {
	owner, _ := test.SignUp(suite.T(), "Somchai")

	var user models.User
	suite.Require().Nil(models.DB.First(&user, owner).Error)

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/sign-in", v1.SignInEditable{
		Email:    strings.ToUpper(user.Email),
		Password: "correct horse battery staple",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.SessionResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().NotNil(response.Data)
	suite.Assert().Equal(owner, response.Data.UserID)
	suite.Assert().Equal("Somchai", response.Data.Name)
	suite.Assert().NotEmpty(response.Data.Token)

	cookie := r.Result().Cookies()
	suite.Require().Len(cookie, 1)
	suite.Assert().Equal(auth.CookieName, cookie[0].Name)
	suite.Assert().Equal(response.Data.Token, cookie[0].Value)
	suite.Assert().True(cookie[0].HttpOnly)

	// Tokens expire after a working day unless AUTH_TOKEN_TTL says otherwise
	suite.Assert().Equal(8*60*60, cookie[0].MaxAge)
	suite.Assert().WithinDuration(time.Now().Add(8*time.Hour), response.Data.ExpiresAt, time.Minute)
}

func (suite *TestSuiteStandard) TestSignInFails() {
	owner, _ := test.SignUp(suite.T(), "Somchai")

	var user models.User
	suite.Require().Nil(models.DB.First(&user, owner).Error)

	tests := []struct {
		name   string
		body   any
		status int
	}{
		{"Wrong password", v1.SignInEditable{Email: user.Email, Password: "wrong horse battery staple"}, http.StatusUnauthorized},
		{"Unknown e-mail", v1.SignInEditable{Email: "nobody@example.com", Password: "correct horse battery staple"}, http.StatusUnauthorized},
		{"Blank e-mail", v1.SignInEditable{Email: "   ", Password: "correct horse battery staple"}, http.StatusUnauthorized},
		{"Empty body", "", http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, "http://example.com/v1/sign-in", tt.body)
			test.AssertHTTPStatus(t, &r, tt.status)
			assert.Empty(t, r.Result().Cookies())
		})
	}
}

func (suite *TestSuiteStandard) TestLogout() {
	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/logout", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	cookie := r.Result().Cookies()
	suite.Require().Len(cookie, 1)
	suite.Assert().Equal(auth.CookieName, cookie[0].Name)
	suite.Assert().Equal("", cookie[0].Value)
	suite.Assert().Less(cookie[0].MaxAge, 0)
}

func (suite *TestSuiteStandard) TestVerifyAuth() {
	owner, headers := test.SignUp(suite.T(), "Somchai")

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/verify-auth", "", headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.UserResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().NotNil(response.Data)
	suite.Assert().Equal(owner, response.Data.ID)

	// The token can also be sent as query parameter
	token := strings.TrimPrefix(headers["Authorization"], "Bearer ")
	r = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/verify-auth?token="+token, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	// and as cookie
	r = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/verify-auth", "", map[string]string{"Cookie": auth.CookieName + "=" + token})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	r = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/verify-auth", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusUnauthorized)

	r = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/verify-auth", "", map[string]string{"Authorization": "Bearer not-a-token"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusUnauthorized)

	// Users removed after sign-in are not authenticated anymore
	suite.Require().Nil(models.DB.Delete(&models.User{}, owner).Error)
	r = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/verify-auth", "", headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusUnauthorized)
}

func (suite *TestSuiteStandard) TestGetUser() {
	owner, headers := test.SignUp(suite.T(), "Somchai")
	other, _ := test.SignUp(suite.T(), "Malee")

	r := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/users/%s", owner), "", headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.UserResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().NotNil(response.Data)
	suite.Assert().Equal("Somchai", response.Data.Name)

	r = test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/users/%s", other), "", headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusUnauthorized)

	r = test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/users/%s", owner), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusUnauthorized)

	r = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/users/not-a-uuid", "", headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestUserDBClosed() {
	owner, headers := test.SignUp(suite.T(), "Somchai")
	suite.CloseDB()

	r := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/users/%s", owner), "", headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusInternalServerError)

	var response v1.UserResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().NotNil(response.Error)
	suite.Assert().Equal(models.ErrGeneral.Error(), *response.Error)
}
