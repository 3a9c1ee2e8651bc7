package service

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidCredentials covers both a missing account and a wrong
	// password so a caller cannot tell the cases apart.
	ErrInvalidCredentials = errors.New("invalid email or password")

	ErrEmailUnavailable     = errors.New("email is already registered")
	ErrWeakPassword         = errors.New("password does not meet the policy")
	ErrLeakedPassword       = errors.New("password appears in a known data breach")
	ErrUserNotFound         = errors.New("user not found")
	ErrInvalidToken         = errors.New("invalid or expired token")
	ErrInvalidMagicLink     = errors.New("invalid or expired magic link")
	ErrEmailAlreadyVerified = errors.New("email address is already verified")
)

// InvalidEmailError marks an address the deliverability guard refused to
// accept. Suggestion, when non-empty, is a plausible correction the caller
// can offer back to the user.
type InvalidEmailError struct {
	Email      string
	Suggestion string
}

func (e *InvalidEmailError) Error() string {
	if e.Suggestion != "" {
		return fmt.Sprintf("email %q looks undeliverable (did you mean %q?)", e.Email, e.Suggestion)
	}
	return fmt.Sprintf("email %q looks undeliverable", e.Email)
}
