package accountsdk

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/aussiebroadwan/accounts/pkg/httpx"
)

// Error codes shared between the service and this SDK.
const (
	ErrorCodeInvalidRequest     = "invalid_request"
	ErrorCodeInvalidCredentials = "invalid_credentials"
	ErrorCodeEmailUnavailable   = "email_unavailable"
	ErrorCodeWeakPassword       = "weak_password"
	ErrorCodeLeakedPassword     = "leaked_password"
	ErrorCodeInvalidEmail       = "invalid_email"
	ErrorCodeInvalidToken       = "invalid_token"
	ErrorCodeInvalidMagicLink   = "invalid_magic_link"
	ErrorCodeAlreadyVerified    = "already_verified"
	ErrorCodeNotFound           = "not_found"
	ErrorCodeServerError        = "server_error"
)

// APIError is the typed form of an ErrorResponse. The server uses it to
// write error responses; the SDK returns it from failed calls.
type APIError struct {
	// StatusCode is the HTTP status code for this error
	StatusCode int `json:"-"`

	// Code is the machine-readable error code
	Code string `json:"error"`

	// Description is a human-readable description of the error
	Description string `json:"error_description"`

	// Suggestion carries a did-you-mean correction for invalid_email errors
	Suggestion string `json:"suggestion,omitempty"`
}

func (e *APIError) Error() string {
	if e.Suggestion != "" {
		return fmt.Sprintf("%s: %s (did you mean %q?)", e.Code, e.Description, e.Suggestion)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Description)
}

// WriteError writes the error to an HTTP response writer.
func (e *APIError) WriteError(w http.ResponseWriter) {
	httpx.NoCache(w)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(e.StatusCode)
	_ = json.NewEncoder(w).Encode(ErrorResponse{
		Error:            e.Code,
		ErrorDescription: e.Description,
		Suggestion:       e.Suggestion,
	})
}

// NewAPIError builds a custom APIError.
func NewAPIError(statusCode int, code, description string) *APIError {
	return &APIError{
		StatusCode:  statusCode,
		Code:        code,
		Description: description,
	}
}

var (
	ErrInvalidRequest = &APIError{
		StatusCode:  http.StatusBadRequest,
		Code:        ErrorCodeInvalidRequest,
		Description: "the request is malformed or missing required parameters",
	}

	ErrInvalidCredentials = &APIError{
		StatusCode:  http.StatusUnauthorized,
		Code:        ErrorCodeInvalidCredentials,
		Description: "invalid email or password",
	}

	ErrEmailUnavailable = &APIError{
		StatusCode:  http.StatusConflict,
		Code:        ErrorCodeEmailUnavailable,
		Description: "an account with this email already exists",
	}

	ErrWeakPassword = &APIError{
		StatusCode:  http.StatusUnprocessableEntity,
		Code:        ErrorCodeWeakPassword,
		Description: "password must be at least 8 characters with upper and lower case letters and a digit, and must not contain your email",
	}

	ErrLeakedPassword = &APIError{
		StatusCode:  http.StatusUnprocessableEntity,
		Code:        ErrorCodeLeakedPassword,
		Description: "this password appears in a known data breach, choose a different one",
	}

	ErrInvalidToken = &APIError{
		StatusCode:  http.StatusUnauthorized,
		Code:        ErrorCodeInvalidToken,
		Description: "the token is invalid or has expired",
	}

	ErrInvalidMagicLink = &APIError{
		StatusCode:  http.StatusUnauthorized,
		Code:        ErrorCodeInvalidMagicLink,
		Description: "the sign-in link is invalid or has expired",
	}

	ErrAlreadyVerified = &APIError{
		StatusCode:  http.StatusConflict,
		Code:        ErrorCodeAlreadyVerified,
		Description: "this email address is already verified",
	}

	ErrNotFound = &APIError{
		StatusCode:  http.StatusNotFound,
		Code:        ErrorCodeNotFound,
		Description: "no account found for this email",
	}

	ErrServerError = &APIError{
		StatusCode:  http.StatusInternalServerError,
		Code:        ErrorCodeServerError,
		Description: "internal server error",
	}
)

// parseErrorResponse turns a non-2xx HTTP response into a typed *APIError.
func parseErrorResponse(resp *http.Response, body []byte) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	var errResp ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error != "" {
		return &APIError{
			StatusCode:  resp.StatusCode,
			Code:        errResp.Error,
			Description: errResp.ErrorDescription,
			Suggestion:  errResp.Suggestion,
		}
	}

	return &APIError{
		StatusCode:  resp.StatusCode,
		Code:        ErrorCodeServerError,
		Description: fmt.Sprintf("HTTP %d: %s", resp.StatusCode, http.StatusText(resp.StatusCode)),
	}
}
