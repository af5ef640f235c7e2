// Package auth issues access tokens and checks that callers may access
// the resources of an owner.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrUnauthenticated    = errors.New("you need to sign in as the owner of this resource")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

const issuer = "ledgerbook"

// Issuer creates and verifies signed access tokens. The subject of a
// token is the ID of the user it was issued to.
type Issuer struct {
	secret []byte
	ttl    time.Duration
}

func NewIssuer(secret string, ttl time.Duration) Issuer {
	return Issuer{secret: []byte(secret), ttl: ttl}
}

// TTL is the lifetime of issued tokens.
func (i Issuer) TTL() time.Duration {
	return i.ttl
}

// Issue returns a token for the user and the time it expires.
func (i Issuer) Issue(user uuid.UUID) (string, time.Time, error) {
	now := time.Now()
	expires := now.Add(i.ttl)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   user.String(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expires),
	})

	signed, err := token.SignedString(i.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("signing token: %w", err)
	}

	return signed, expires, nil
}

// Parse verifies the token and returns the user it was issued to.
func (i Issuer) Parse(token string) (uuid.UUID, error) {
	var claims jwt.RegisteredClaims

	_, err := jwt.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
		return i.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return uuid.Nil, errors.Join(ErrUnauthenticated, err)
	}

	user, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, errors.Join(ErrUnauthenticated, err)
	}

	return user, nil
}
