package test

import (
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// SignUp creates a user with a random e-mail address and signs in.
//
// It returns the ID of the user and the headers to authenticate as it.
func SignUp(t *testing.T, name string) (uuid.UUID, map[string]string) {
	email := uuid.NewString() + "@example.com"
	password := "correct horse battery staple"

	r := Request(t, http.MethodPost, "http://example.com/v1/sign-up", map[string]string{
		"name":     name,
		"email":    email,
		"password": password,
	})
	AssertHTTPStatus(t, &r, http.StatusCreated)

	r = Request(t, http.MethodPost, "http://example.com/v1/sign-in", map[string]string{
		"email":    email,
		"password": password,
	})
	AssertHTTPStatus(t, &r, http.StatusOK)

	var session struct {
		Data struct {
			Token  string    `json:"token"`
			UserID uuid.UUID `json:"userId"`
		} `json:"data"`
	}
	DecodeResponse(t, &r, &session)
	require.NotEmpty(t, session.Data.Token)

	return session.Data.UserID, map[string]string{"Authorization": "Bearer " + session.Data.Token}
}
