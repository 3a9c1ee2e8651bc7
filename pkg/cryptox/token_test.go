package cryptox

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenerateToken(t *testing.T) {
	tests := []struct {
		name string
		size int
	}{
		{"128-bit token", TokenSize128},
		{"256-bit token", TokenSize256},
		{"custom size", 24},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := GenerateToken(tt.size)
			require.NoError(t, err)
			require.NotEmpty(t, token)

			// URL-safe alphabet only: tokens are embedded in links.
			require.NotContains(t, token, "+")
			require.NotContains(t, token, "/")
			require.NotContains(t, token, "=")

			token2, err := GenerateToken(tt.size)
			require.NoError(t, err)
			require.NotEqual(t, token, token2, "tokens should be unique")
		})
	}
}

func TestGenerateToken_InvalidSize(t *testing.T) {
	for _, size := range []int{0, -1} {
		token, err := GenerateToken(size)
		require.Error(t, err)
		require.Empty(t, token)
	}
}

func TestMustGenerateToken(t *testing.T) {
	require.NotEmpty(t, MustGenerateToken(TokenSize256))
	require.Panics(t, func() { MustGenerateToken(0) })
}

func TestGeneratePIN(t *testing.T) {
	pin, err := GeneratePIN()
	require.NoError(t, err)
	require.Len(t, pin, PINLength)

	for _, r := range pin {
		require.True(t, r >= '0' && r <= '9', "pin must be numeric, got %q", pin)
	}
}

func TestGeneratePIN_NotConstant(t *testing.T) {
	// A crypto-random 6-digit code repeating 20 times in a row would be
	// astronomically unlikely; catching a broken generator is the point.
	seen := make(map[string]struct{})
	for i := 0; i < 20; i++ {
		pin, err := GeneratePIN()
		require.NoError(t, err)
		seen[pin] = struct{}{}
	}
	require.Greater(t, len(seen), 1)
}

func TestFormatPIN(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"123456", "123-456"},
		{"123456789", "123-456-789"},
		{"12", "12"},
		{"", ""},
	}

	for _, tt := range tests {
		require.Equal(t, tt.want, FormatPIN(tt.in))
	}
}

func TestFormatPIN_NeverAltersDigits(t *testing.T) {
	pin, err := GeneratePIN()
	require.NoError(t, err)
	require.Equal(t, pin, strings.ReplaceAll(FormatPIN(pin), "-", ""))
}
