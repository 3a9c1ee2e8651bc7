package accountsdk

import (
	"context"
	"net/http"
	"time"
)

// Session is an authenticated client bound to one account's session token.
type Session struct {
	client    *SDKClient
	token     string
	user      UserResponse
	expiresAt time.Time
}

func newSession(c *SDKClient, resp SessionResponse) *Session {
	return &Session{
		client:    c,
		token:     resp.SessionToken,
		user:      resp.User,
		expiresAt: time.Now().Add(time.Duration(resp.ExpiresIn) * time.Second),
	}
}

// NewSessionFromToken rebuilds a session from a stored token, e.g. one kept
// in a cookie between requests. The user snapshot is empty until Me is
// called.
func (c *SDKClient) NewSessionFromToken(token string) *Session {
	return &Session{client: c, token: token}
}

// Token returns the raw session token for storage.
func (s *Session) Token() string {
	return s.token
}

// User returns the account snapshot captured when the session was created
// or last refreshed via Me.
func (s *Session) User() UserResponse {
	return s.user
}

// Expired reports whether the session token's lifetime has elapsed. It is
// a client-side convenience; the service is the authority.
func (s *Session) Expired() bool {
	return !s.expiresAt.IsZero() && time.Now().After(s.expiresAt)
}

// Me fetches the current account and refreshes the local snapshot.
func (s *Session) Me(ctx context.Context) (UserResponse, error) {
	var out UserResponse
	err := s.client.doJSON(ctx, http.MethodGet, "/v1/accounts/me", nil, s.token, &out, http.StatusOK)
	if err != nil {
		return UserResponse{}, err
	}
	s.user = out
	return out, nil
}

// UpdateProfile merges personal fields into the account. Nil fields are
// left untouched.
func (s *Session) UpdateProfile(ctx context.Context, req UpdateProfileRequest) (UserResponse, error) {
	var out UserResponse
	err := s.client.doJSON(ctx, http.MethodPatch, "/v1/accounts/me", req, s.token, &out, http.StatusOK)
	if err != nil {
		return UserResponse{}, err
	}
	s.user = out
	return out, nil
}

// RefreshVerification runs the periodic re-verification check for the
// account. When RenewalRequired is true the caller should prompt the user
// through SendVerifyEmail and VerifyEmail again.
func (s *Session) RefreshVerification(ctx context.Context) (bool, error) {
	var out RefreshVerificationResponse
	err := s.client.doJSON(ctx, http.MethodPost, "/v1/accounts/verify-email/refresh", nil, s.token, &out, http.StatusOK)
	return out.RenewalRequired, err
}
