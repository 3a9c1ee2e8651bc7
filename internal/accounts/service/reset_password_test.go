package service

import (
	"context"
	"testing"
	"time"

	"github.com/aussiebroadwan/accounts/internal/accounts/domain"
	"github.com/stretchr/testify/require"
)

func storedResetToken(t *testing.T, f *fixture, email string) string {
	t.Helper()
	u, err := f.store.Users().GetUserByEmail(context.Background(), email)
	require.NoError(t, err)
	require.NotNil(t, u.ResetPasswordToken)
	return *u.ResetPasswordToken
}

func TestSendPasswordReset(t *testing.T) {
	t.Run("issues token and mails the link", func(t *testing.T) {
		f := newFixture(t)
		f.signup(t, "alice@example.com", "Sturdy-Pass-1")

		require.NoError(t, f.svc.SendPasswordReset(context.Background(), "alice@example.com", "https://accounts.example.com"))

		token := storedResetToken(t, f, "alice@example.com")
		msg := f.mailer.last(t)
		require.Equal(t, "Reset your password", msg.Subject)
		require.Contains(t, msg.Body,
			"https://accounts.example.com/users/reset-password?reset_password_token="+token)
	})

	t.Run("unknown email succeeds without sending", func(t *testing.T) {
		f := newFixture(t)
		mails := f.mailer.count()

		err := f.svc.SendPasswordReset(context.Background(), "ghost@example.com", "https://accounts.example.com")
		require.NoError(t, err, "must not reveal whether the address is registered")
		require.Equal(t, mails, f.mailer.count())
	})
}

func TestChangePassword(t *testing.T) {
	setup := func(t *testing.T) (*fixture, string, domain.User) {
		f := newFixture(t)
		f.signup(t, "alice@example.com", "Sturdy-Pass-1")
		require.NoError(t, f.svc.SendPasswordReset(context.Background(), "alice@example.com", "https://accounts.example.com"))
		token := storedResetToken(t, f, "alice@example.com")

		before, err := f.store.Users().GetUserByEmail(context.Background(), "alice@example.com")
		require.NoError(t, err)
		return f, token, before
	}

	t.Run("consumes the token and verifies the email", func(t *testing.T) {
		f, token, before := setup(t)

		u, err := f.svc.ChangePassword(context.Background(), token, "Fresh-Pass-2")
		require.NoError(t, err)
		require.NotEqual(t, before.PasswordHash, u.PasswordHash)
		require.Nil(t, u.ResetPasswordToken)
		require.True(t, u.EmailVerified, "mailbox proof doubles as verification")

		// The old password is dead, the new one works.
		_, err = f.svc.Login(context.Background(), "alice@example.com", "Sturdy-Pass-1")
		require.ErrorIs(t, err, ErrInvalidCredentials)
		_, err = f.svc.Login(context.Background(), "alice@example.com", "Fresh-Pass-2")
		require.NoError(t, err)

		// Single use.
		_, err = f.svc.ChangePassword(context.Background(), token, "Another-Pass-3")
		require.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("weak replacement leaves hash and token untouched", func(t *testing.T) {
		f, token, before := setup(t)

		_, err := f.svc.ChangePassword(context.Background(), token, "weak")
		require.ErrorIs(t, err, ErrWeakPassword)

		after, err := f.store.Users().GetUserByEmail(context.Background(), "alice@example.com")
		require.NoError(t, err)
		require.Equal(t, before.PasswordHash, after.PasswordHash)
		require.NotNil(t, after.ResetPasswordToken, "token survives so the user can retry")

		// The same link still works with an acceptable password.
		_, err = f.svc.ChangePassword(context.Background(), token, "Fresh-Pass-2")
		require.NoError(t, err)
	})

	t.Run("breached replacement rejected", func(t *testing.T) {
		f, token, _ := setup(t)
		f.breach.count = 99

		_, err := f.svc.ChangePassword(context.Background(), token, "Fresh-Pass-2")
		require.ErrorIs(t, err, ErrLeakedPassword)
	})

	t.Run("empty token rejected outright", func(t *testing.T) {
		f := newFixture(t)
		f.signup(t, "alice@example.com", "Sturdy-Pass-1")

		_, err := f.svc.ChangePassword(context.Background(), "", "Fresh-Pass-2")
		require.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("expired token rejected", func(t *testing.T) {
		f := newFixture(t)
		id := f.signup(t, "alice@example.com", "Sturdy-Pass-1")

		stale := time.Now().UTC().Add(-f.svc.Config.ResetPasswordTTL - time.Minute)
		require.NoError(t, f.store.Users().SetResetPasswordToken(context.Background(), id, "stale-reset", stale))

		_, err := f.svc.ChangePassword(context.Background(), "stale-reset", "Fresh-Pass-2")
		require.ErrorIs(t, err, ErrInvalidToken)
	})
}

func TestUpdateProfile(t *testing.T) {
	t.Run("merges only supplied fields", func(t *testing.T) {
		f := newFixture(t)
		id := f.signup(t, "alice@example.com", "Sturdy-Pass-1")

		given := "Alice"
		phone := "+61 400 000 000"
		u, err := f.svc.UpdateProfile(context.Background(), id, domain.ProfileUpdate{
			GivenName:   &given,
			PhoneNumber: &phone,
		})
		require.NoError(t, err)
		require.Equal(t, "Alice", u.GivenName)
		require.Equal(t, "+61 400 000 000", u.PhoneNumber)

		family := "Smith"
		u, err = f.svc.UpdateProfile(context.Background(), id, domain.ProfileUpdate{FamilyName: &family})
		require.NoError(t, err)
		require.Equal(t, "Alice", u.GivenName, "untouched fields survive")
		require.Equal(t, "Smith", u.FamilyName)
	})

	t.Run("unknown user", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.svc.UpdateProfile(context.Background(), "no-such-id", domain.ProfileUpdate{})
		require.ErrorIs(t, err, ErrUserNotFound)
	})
}
