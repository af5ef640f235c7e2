package auth

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/ledgerbook/backend/internal/httputil"
	ledger_uuid "github.com/ledgerbook/backend/internal/uuid"
	"github.com/rs/zerolog/log"
)

// CookieName is the cookie sign-in stores the token in.
const CookieName = "ledgerbook_token"

const ownerKey = "ledgerbook-owner"

// Token returns the access token sent with the request.
//
// It is read from the Authorization header, the token query parameter
// or the token cookie, in that order.
func Token(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if scheme, token, ok := strings.Cut(header, " "); ok && strings.EqualFold(scheme, "Bearer") {
		return strings.TrimSpace(token)
	}

	if token := c.Query("token"); token != "" {
		return token
	}

	if cookie, err := c.Cookie(CookieName); err == nil {
		return cookie
	}

	return ""
}

// Authenticate returns the user the request is authenticated as.
func (i Issuer) Authenticate(c *gin.Context) (uuid.UUID, error) {
	token := Token(c)
	if token == "" {
		return uuid.Nil, ErrUnauthenticated
	}

	return i.Parse(token)
}

// Deny writes the response for a request that RequireOwnerFunc rejects.
type Deny func(c *gin.Context, status int, err error)

func denyJSON(c *gin.Context, status int, err error) {
	c.JSON(status, httputil.HTTPError{Error: err.Error()})
}

// RequireOwner only lets requests pass that are authenticated as the
// owner named in the path parameter.
//
// Malformed owner IDs are rejected with 400, everything else that does
// not match with 401.
func (i Issuer) RequireOwner(param string) gin.HandlerFunc {
	return i.RequireOwnerFunc(param, denyJSON)
}

// RequireOwnerFunc is RequireOwner with deny rendering the rejections.
func (i Issuer) RequireOwnerFunc(param string, deny Deny) gin.HandlerFunc {
	return func(c *gin.Context) {
		var owner ledger_uuid.UUID
		if err := owner.UnmarshalParam(c.Param(param)); err != nil || owner == ledger_uuid.Nil {
			deny(c, http.StatusBadRequest, ledger_uuid.ErrInvalid)
			c.Abort()
			return
		}

		user, err := i.Authenticate(c)
		if err == nil && user != owner.UUID {
			err = ErrUnauthenticated
		}

		if err != nil {
			log.Debug().Str("request-id", requestid.Get(c)).Err(err).Msg("access denied")
			deny(c, http.StatusUnauthorized, ErrUnauthenticated)
			c.Abort()
			return
		}

		c.Set(ownerKey, owner.UUID)
		c.Next()
	}
}

// Owner returns the owner that RequireOwner verified.
func Owner(c *gin.Context) (uuid.UUID, error) {
	v, ok := c.Get(ownerKey)
	if !ok {
		return uuid.Nil, ErrUnauthenticated
	}

	owner, ok := v.(uuid.UUID)
	if !ok {
		return uuid.Nil, errors.New("owner has unexpected type")
	}

	return owner, nil
}
