package accountsdk

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// SDKClient is a client for the accounts service. Unauthenticated
// operations hang off the client directly; operations that need a session
// token hang off the Session returned by Login, LoginWithMagicLink and
// ChangePassword.
type SDKClient struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewSDKClient creates a client for the service at baseURL.
func NewSDKClient(baseURL string) *SDKClient {
	return &SDKClient{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// StartLogin probes whether an account exists for the address so a UI can
// branch between login and signup. A mistyped address fails with an
// APIError carrying a did-you-mean suggestion.
func (c *SDKClient) StartLogin(ctx context.Context, email string) (StartLoginResponse, error) {
	var out StartLoginResponse
	err := c.doJSON(ctx, http.MethodPost, "/v1/accounts/start-login",
		StartLoginRequest{Email: email}, "", &out, http.StatusOK)
	return out, err
}

// Signup registers a new account. The service emails a verification PIN;
// confirm it with VerifyEmail.
func (c *SDKClient) Signup(ctx context.Context, email, password string) (UserResponse, error) {
	var out UserResponse
	err := c.doJSON(ctx, http.MethodPost, "/v1/accounts/signup",
		SignupRequest{Email: email, Password: password}, "", &out, http.StatusCreated)
	return out, err
}

// Login authenticates with email and password and returns an authenticated
// session.
func (c *SDKClient) Login(ctx context.Context, email, password string) (*Session, error) {
	var out SessionResponse
	err := c.doJSON(ctx, http.MethodPost, "/v1/accounts/login",
		LoginRequest{Email: email, Password: password}, "", &out, http.StatusOK)
	if err != nil {
		return nil, err
	}
	return newSession(c, out), nil
}

// SendVerifyEmail asks for a verification PIN. With checkBeforeSend set the
// service refuses to re-issue while an unexpired PIN is outstanding and the
// response reports Sent=false.
func (c *SDKClient) SendVerifyEmail(ctx context.Context, email string, checkBeforeSend bool) (bool, error) {
	var out SendVerifyEmailResponse
	err := c.doJSON(ctx, http.MethodPost, "/v1/accounts/verify-email/send",
		SendVerifyEmailRequest{Email: email, CheckBeforeSend: checkBeforeSend}, "", &out, http.StatusOK)
	return out.Sent, err
}

// VerifyEmail consumes a verification PIN.
func (c *SDKClient) VerifyEmail(ctx context.Context, email, token string) error {
	return c.doJSON(ctx, http.MethodPost, "/v1/accounts/verify-email",
		VerifyEmailRequest{Email: email, Token: token}, "", nil, http.StatusNoContent)
}

// SendMagicLink asks for a one-time sign-in link. An unknown address gets
// an account created implicitly, so this doubles as passwordless signup.
func (c *SDKClient) SendMagicLink(ctx context.Context, email string) error {
	return c.doJSON(ctx, http.MethodPost, "/v1/accounts/magic-link/send",
		SendMagicLinkRequest{Email: email}, "", nil, http.StatusAccepted)
}

// LoginWithMagicLink consumes a magic link token and returns an
// authenticated session. The token is single use.
func (c *SDKClient) LoginWithMagicLink(ctx context.Context, token string) (*Session, error) {
	var out SessionResponse
	path := "/users/sign-in-with-magic-link?magic_link_token=" + url.QueryEscape(token)
	err := c.doJSON(ctx, http.MethodGet, path, nil, "", &out, http.StatusOK)
	if err != nil {
		return nil, err
	}
	return newSession(c, out), nil
}

// SendPasswordReset asks for a reset link. It succeeds whether or not the
// address is registered.
func (c *SDKClient) SendPasswordReset(ctx context.Context, email string) error {
	return c.doJSON(ctx, http.MethodPost, "/v1/accounts/reset-password/send",
		SendPasswordResetRequest{Email: email}, "", nil, http.StatusAccepted)
}

// ChangePassword consumes a reset token, sets a new password and returns an
// authenticated session for the recovered account.
func (c *SDKClient) ChangePassword(ctx context.Context, token, password string) (*Session, error) {
	var out SessionResponse
	err := c.doJSON(ctx, http.MethodPost, "/v1/accounts/reset-password",
		ChangePasswordRequest{Token: token, Password: password}, "", &out, http.StatusOK)
	if err != nil {
		return nil, err
	}
	return newSession(c, out), nil
}

// Livez checks the liveness probe.
func (c *SDKClient) Livez(ctx context.Context) (HealthResponse, error) {
	var out HealthResponse
	err := c.doJSON(ctx, http.MethodGet, "/livez", nil, "", &out, http.StatusOK)
	return out, err
}

// Readyz checks the readiness probe.
func (c *SDKClient) Readyz(ctx context.Context) (HealthResponse, error) {
	var out HealthResponse
	err := c.doJSON(ctx, http.MethodGet, "/readyz", nil, "", &out, http.StatusOK)
	return out, err
}
