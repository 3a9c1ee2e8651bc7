package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSignup(t *testing.T) {
	t.Run("creates account and issues verification PIN", func(t *testing.T) {
		f := newFixture(t)

		u, err := f.svc.Signup(context.Background(), "Alice@Example.com", "Sturdy-Pass-1")
		require.NoError(t, err)
		require.NotEmpty(t, u.ID)
		require.Equal(t, "alice@example.com", u.Email)
		require.NotEmpty(t, u.PasswordHash)
		require.NotEqual(t, "Sturdy-Pass-1", u.PasswordHash)
		require.False(t, u.EmailVerified)
		require.NotNil(t, u.VerifyEmailToken)
		require.Len(t, *u.VerifyEmailToken, 6)

		msg := f.mailer.last(t)
		require.Equal(t, "alice@example.com", msg.To)
		require.Equal(t, "Confirm your email address", msg.Subject)
	})

	t.Run("registered email is unavailable", func(t *testing.T) {
		f := newFixture(t)
		f.signup(t, "alice@example.com", "Sturdy-Pass-1")

		_, err := f.svc.Signup(context.Background(), "ALICE@example.com", "Another-Pass-2")
		require.ErrorIs(t, err, ErrEmailUnavailable)
	})

	t.Run("weak password rejected", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.svc.Signup(context.Background(), "bob@example.com", "weak")
		require.ErrorIs(t, err, ErrWeakPassword)
	})

	t.Run("password containing email local part rejected", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.svc.Signup(context.Background(), "carol@example.com", "MyCarol12345")
		require.ErrorIs(t, err, ErrWeakPassword)
	})

	t.Run("breached password rejected", func(t *testing.T) {
		f := newFixture(t)
		f.breach.count = 12345

		_, err := f.svc.Signup(context.Background(), "dave@example.com", "Sturdy-Pass-1")
		require.ErrorIs(t, err, ErrLeakedPassword)
	})

	t.Run("breach corpus outage fails open", func(t *testing.T) {
		f := newFixture(t)
		f.breach.err = errors.New("corpus unreachable")

		_, err := f.svc.Signup(context.Background(), "erin@example.com", "Sturdy-Pass-1")
		require.NoError(t, err)
	})

	t.Run("mail failure does not undo the signup", func(t *testing.T) {
		f := newFixture(t)
		f.mailer.fail = errors.New("smtp down")

		u, err := f.svc.Signup(context.Background(), "frank@example.com", "Sturdy-Pass-1")
		require.NoError(t, err)

		got, err := f.store.Users().GetUserByID(context.Background(), u.ID)
		require.NoError(t, err)
		require.Equal(t, "frank@example.com", got.Email)
	})
}
