package service

import (
	"strings"
	"unicode"
)

const minPasswordLength = 8

// isSecurePassword applies the structural password policy: minimum length,
// mixed case, at least one digit, and no containment of the account's email
// address or its local part in either direction of casing.
func isSecurePassword(password, email string) bool {
	if len(password) < minPasswordLength {
		return false
	}

	var hasUpper, hasLower, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	if !hasUpper || !hasLower || !hasDigit {
		return false
	}

	if email != "" {
		lowerPassword := strings.ToLower(password)
		lowerEmail := strings.ToLower(email)
		if strings.Contains(lowerPassword, lowerEmail) {
			return false
		}
		if local, _, ok := strings.Cut(lowerEmail, "@"); ok && local != "" {
			if strings.Contains(lowerPassword, local) {
				return false
			}
		}
	}

	return true
}
