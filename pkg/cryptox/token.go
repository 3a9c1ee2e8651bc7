package cryptox

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"math/big"
	"strings"
)

// Token size constants (in bytes before encoding).
const (
	// TokenSize128 provides 128 bits of entropy (22 chars base64url).
	TokenSize128 = 16
	// TokenSize256 provides 256 bits of entropy (43 chars base64url).
	TokenSize256 = 32
)

// PINLength is the number of digits in a verification PIN. Six digits is
// enough when the code is single-use, short-lived and scoped to one email
// address.
const PINLength = 6

// GenerateToken creates a cryptographically secure random token of the given
// byte length, encoded as base64url without padding. These tokens are bearer
// capabilities: whoever presents one within its validity window is treated as
// the owner of the mailbox it was sent to, so the entropy must make guessing
// infeasible within that window.
func GenerateToken(size int) (string, error) {
	if size <= 0 {
		return "", fmt.Errorf("token size must be positive, got %d", size)
	}

	buf := make([]byte, size)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate random token: %w", err)
	}

	return base64.RawURLEncoding.EncodeToString(buf), nil
}

// MustGenerateToken is like GenerateToken but panics on error. Use only
// during initialization where failure is unrecoverable.
func MustGenerateToken(size int) string {
	token, err := GenerateToken(size)
	if err != nil {
		panic(fmt.Sprintf("cryptox: failed to generate token: %v", err))
	}
	return token
}

// GeneratePIN creates a cryptographically secure numeric code of PINLength
// digits, for flows where the user retypes the code by hand (e.g. reading it
// from a phone). Each digit is drawn independently from crypto/rand, never
// from a seeded generator.
func GeneratePIN() (string, error) {
	var b strings.Builder
	b.Grow(PINLength)
	for i := 0; i < PINLength; i++ {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", fmt.Errorf("failed to generate pin digit: %w", err)
		}
		b.WriteByte(byte('0' + n.Int64()))
	}
	return b.String(), nil
}

// FormatPIN renders a PIN for display by inserting a hyphen every 3 digits
// ("123456" -> "123-456"). Display formatting only: the stored and compared
// value is always the raw digit string.
func FormatPIN(pin string) string {
	var b strings.Builder
	for i, r := range pin {
		if i > 0 && i%3 == 0 {
			b.WriteByte('-')
		}
		b.WriteRune(r)
	}
	return b.String()
}
