package http

import (
	"errors"
	"net/http"

	"github.com/aussiebroadwan/accounts/internal/accounts/service"
	"github.com/aussiebroadwan/accounts/pkg/accountsdk"
)

// mapServiceError translates a service error into the wire error it should
// be reported as. Anything unrecognized is a server error; the handler is
// expected to have logged it already.
func mapServiceError(err error) *accountsdk.APIError {
	var invalidEmail *service.InvalidEmailError
	if errors.As(err, &invalidEmail) {
		return &accountsdk.APIError{
			StatusCode:  http.StatusUnprocessableEntity,
			Code:        accountsdk.ErrorCodeInvalidEmail,
			Description: "this email address looks undeliverable",
			Suggestion:  invalidEmail.Suggestion,
		}
	}

	switch {
	case errors.Is(err, service.ErrInvalidCredentials):
		return accountsdk.ErrInvalidCredentials
	case errors.Is(err, service.ErrEmailUnavailable):
		return accountsdk.ErrEmailUnavailable
	case errors.Is(err, service.ErrWeakPassword):
		return accountsdk.ErrWeakPassword
	case errors.Is(err, service.ErrLeakedPassword):
		return accountsdk.ErrLeakedPassword
	case errors.Is(err, service.ErrUserNotFound):
		return accountsdk.ErrNotFound
	case errors.Is(err, service.ErrInvalidToken):
		return accountsdk.ErrInvalidToken
	case errors.Is(err, service.ErrInvalidMagicLink):
		return accountsdk.ErrInvalidMagicLink
	case errors.Is(err, service.ErrEmailAlreadyVerified):
		return accountsdk.ErrAlreadyVerified
	default:
		return accountsdk.ErrServerError
	}
}
