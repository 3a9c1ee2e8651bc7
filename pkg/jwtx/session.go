// Package jwtx mints and verifies the short-lived session tokens handed out
// after a successful login. Tokens are HS256-signed JWTs carrying the account
// ID as subject; they authenticate the profile endpoints, nothing more.
package jwtx

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultSessionTTL is the default session token lifetime. Short-lived on
// purpose: a user who outlives it can always log back in via password or
// magic link.
const DefaultSessionTTL = 24 * time.Hour

var ErrInvalidSession = errors.New("jwtx: invalid session token")

// Authentication method reference values recorded in session claims.
const (
	AMRPassword  = "pwd"
	AMRMagicLink = "link"
)

// SessionClaims are the claims embedded in a session token. Additive changes
// only, to keep older tokens verifiable.
type SessionClaims struct {
	jwt.RegisteredClaims

	// Email of the authenticated account, for display without a lookup.
	Email string `json:"email,omitempty"`

	// AMR records how the session was established:
	//   "pwd"   password login
	//   "link"  magic-link login
	AMR []string `json:"amr,omitempty"`
}

// SessionMinter issues and verifies session tokens with a shared HMAC secret.
type SessionMinter struct {
	Secret []byte
	Issuer string
	TTL    time.Duration
}

// SessionTTL returns the effective token lifetime.
func (m *SessionMinter) SessionTTL() time.Duration {
	if m.TTL <= 0 {
		return DefaultSessionTTL
	}
	return m.TTL
}

// Mint signs a session token for the given account.
func (m *SessionMinter) Mint(userID, email string, amr []string, now time.Time) (string, error) {
	ttl := m.TTL
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}

	claims := SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    m.Issuer,
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		Email: email,
		AMR:   amr,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.Secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}
	return signed, nil
}

// Verify parses and validates a session token, returning its claims.
// Any parse, signature, issuer or expiry failure maps to ErrInvalidSession.
func (m *SessionMinter) Verify(tokenString string) (*SessionClaims, error) {
	claims := &SessionClaims{}
	_, err := jwt.ParseWithClaims(
		tokenString,
		claims,
		func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method %q", t.Method.Alg())
			}
			return m.Secret, nil
		},
		jwt.WithIssuer(m.Issuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, ErrInvalidSession
	}
	if claims.Subject == "" {
		return nil, ErrInvalidSession
	}
	return claims, nil
}
