package cryptox

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashAndVerifyPassword(t *testing.T) {
	SetPepperPath(t.TempDir() + "/pepper")

	hash, err := HashPassword("correct horse battery staple")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(hash, "$argon2id$v=19$"))

	require.NoError(t, VerifyPassword("correct horse battery staple", hash))
	require.ErrorIs(t, VerifyPassword("wrong password", hash), ErrPasswordMismatch)
}

func TestHashPassword_SaltsDiffer(t *testing.T) {
	SetPepperPath(t.TempDir() + "/pepper")

	a, err := HashPassword("same password")
	require.NoError(t, err)
	b, err := HashPassword("same password")
	require.NoError(t, err)

	require.NotEqual(t, a, b, "each hash must use a fresh salt")
}

func TestVerifyPassword_MalformedHash(t *testing.T) {
	SetPepperPath(t.TempDir() + "/pepper")

	tests := []struct {
		name string
		hash string
	}{
		{"empty", ""},
		{"wrong part count", "$argon2id$v=19$m=19456,t=2,p=1$salt"},
		{"wrong algorithm", "$bcrypt$v=19$m=19456,t=2,p=1$c2FsdA$aGFzaA"},
		{"bad salt encoding", "$argon2id$v=19$m=19456,t=2,p=1$!!!$aGFzaA"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := VerifyPassword("anything", tt.hash)
			require.Error(t, err)
			require.NotErrorIs(t, err, ErrPasswordMismatch)
		})
	}
}
