package accountsdk

import "time"

// ErrorResponse is the wire shape of every error the service returns.
type ErrorResponse struct {
	// Error is the machine-readable error code (e.g. "invalid_credentials")
	Error string `json:"error"`

	// ErrorDescription is a human-readable description of the error
	ErrorDescription string `json:"error_description"`

	// Suggestion carries a did-you-mean correction when an email address
	// was rejected as undeliverable
	Suggestion string `json:"suggestion,omitempty"`
}

// UserResponse is the public view of an account. The password hash and all
// outstanding tokens never leave the service.
type UserResponse struct {
	ID            string     `json:"id"`
	Email         string     `json:"email"`
	EmailVerified bool       `json:"email_verified"`
	GivenName     string     `json:"given_name,omitempty"`
	FamilyName    string     `json:"family_name,omitempty"`
	PhoneNumber   string     `json:"phone_number,omitempty"`
	Job           string     `json:"job,omitempty"`
	SignInCount   int64      `json:"sign_in_count"`
	LastSignInAt  *time.Time `json:"last_sign_in_at,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}

// StartLoginRequest probes whether an address has an account.
type StartLoginRequest struct {
	Email string `json:"email"`
}

// StartLoginResponse tells the caller which UI to show next. It reveals
// existence only for addresses the caller already typed.
type StartLoginResponse struct {
	Email      string `json:"email"`
	UserExists bool   `json:"user_exists"`
}

// SignupRequest registers a new account.
type SignupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest authenticates with email and password.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SessionResponse is returned by every operation that establishes a
// session: login, magic-link sign-in and password reset completion.
type SessionResponse struct {
	// SessionToken is a signed JWT presented as a bearer token
	SessionToken string `json:"session_token"`

	// TokenType is always "Bearer"
	TokenType string `json:"token_type"`

	// ExpiresIn is the session lifetime in seconds
	ExpiresIn int `json:"expires_in"`

	User UserResponse `json:"user"`
}

// SendVerifyEmailRequest asks for a verification PIN to be issued.
type SendVerifyEmailRequest struct {
	Email string `json:"email"`

	// CheckBeforeSend suppresses the re-issue when an unexpired PIN is
	// already outstanding, preventing mailbox spam from repeated requests
	CheckBeforeSend bool `json:"check_before_send,omitempty"`
}

// SendVerifyEmailResponse reports whether a PIN was actually sent. Sent is
// false when CheckBeforeSend found a still-valid PIN outstanding.
type SendVerifyEmailResponse struct {
	Sent bool `json:"sent"`
}

// VerifyEmailRequest consumes a verification PIN. The PIN may be supplied
// in its grouped display format.
type VerifyEmailRequest struct {
	Email string `json:"email"`
	Token string `json:"token"`
}

// RefreshVerificationResponse reports whether the account needs a fresh
// mailbox proof under the periodic re-verification policy.
type RefreshVerificationResponse struct {
	RenewalRequired bool `json:"renewal_required"`
}

// SendMagicLinkRequest asks for a one-time sign-in link. Unknown addresses
// get an account created implicitly.
type SendMagicLinkRequest struct {
	Email string `json:"email"`
}

// SendPasswordResetRequest asks for a reset link. The response is identical
// whether or not the address is registered.
type SendPasswordResetRequest struct {
	Email string `json:"email"`
}

// ChangePasswordRequest consumes a reset token and sets a new password.
type ChangePasswordRequest struct {
	Token    string `json:"token"`
	Password string `json:"password"`
}

// UpdateProfileRequest merges personal fields into the account. Omitted
// (null) fields are left untouched; an explicit empty string clears one.
type UpdateProfileRequest struct {
	GivenName   *string `json:"given_name,omitempty"`
	FamilyName  *string `json:"family_name,omitempty"`
	PhoneNumber *string `json:"phone_number,omitempty"`
	Job         *string `json:"job,omitempty"`
}

// AcceptedResponse acknowledges a request whose outcome is deliberately
// opaque, such as a password reset for an address that may not exist.
type AcceptedResponse struct {
	Status string `json:"status"`
}

// HealthChecks reports the state of the service's critical dependencies.
type HealthChecks struct {
	Database string `json:"database"`
}

// HealthResponse is returned by the liveness and readiness probes.
type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime"`
	Version string        `json:"version"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}
