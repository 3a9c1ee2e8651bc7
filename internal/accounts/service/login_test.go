package service

import (
	"context"
	"errors"
	"testing"

	"github.com/aussiebroadwan/accounts/internal/accounts/deliverability"
	"github.com/aussiebroadwan/accounts/internal/accounts/domain"
	"github.com/aussiebroadwan/accounts/pkg/idx"
	"github.com/stretchr/testify/require"
)

func TestStartLogin(t *testing.T) {
	t.Run("existing account", func(t *testing.T) {
		f := newFixture(t)
		f.signup(t, "alice@example.com", "Sturdy-Pass-1")

		res, err := f.svc.StartLogin(context.Background(), "Alice@Example.com")
		require.NoError(t, err)
		require.True(t, res.UserExists)
		require.Equal(t, "alice@example.com", res.Email)
	})

	t.Run("unknown deliverable address", func(t *testing.T) {
		f := newFixture(t)

		res, err := f.svc.StartLogin(context.Background(), "new@example.com")
		require.NoError(t, err)
		require.False(t, res.UserExists)
	})

	t.Run("unknown risky address surfaces suggestion", func(t *testing.T) {
		f := newFixture(t)
		f.deliv.res = deliverability.Result{SafeToSend: false, DidYouMean: "new@gmail.com"}

		_, err := f.svc.StartLogin(context.Background(), "new@gmial.com")

		var invalidEmail *InvalidEmailError
		require.ErrorAs(t, err, &invalidEmail)
		require.Equal(t, "new@gmail.com", invalidEmail.Suggestion)
	})

	t.Run("guard outage fails open", func(t *testing.T) {
		f := newFixture(t)
		f.deliv.err = errors.New("upstream down")

		res, err := f.svc.StartLogin(context.Background(), "new@example.com")
		require.NoError(t, err)
		require.False(t, res.UserExists)
	})
}

func TestLogin(t *testing.T) {
	t.Run("success records sign-in", func(t *testing.T) {
		f := newFixture(t)
		f.signup(t, "alice@example.com", "Sturdy-Pass-1")

		u, err := f.svc.Login(context.Background(), "alice@example.com", "Sturdy-Pass-1")
		require.NoError(t, err)
		require.EqualValues(t, 1, u.SignInCount)
		require.NotNil(t, u.LastSignInAt)

		u, err = f.svc.Login(context.Background(), "alice@example.com", "Sturdy-Pass-1")
		require.NoError(t, err)
		require.EqualValues(t, 2, u.SignInCount)
	})

	t.Run("unknown email and wrong password are indistinguishable", func(t *testing.T) {
		f := newFixture(t)
		f.signup(t, "alice@example.com", "Sturdy-Pass-1")

		_, errUnknown := f.svc.Login(context.Background(), "ghost@example.com", "Sturdy-Pass-1")
		_, errWrong := f.svc.Login(context.Background(), "alice@example.com", "Wrong-Pass-1")

		require.ErrorIs(t, errUnknown, ErrInvalidCredentials)
		require.ErrorIs(t, errWrong, ErrInvalidCredentials)
		require.Equal(t, errUnknown.Error(), errWrong.Error())
	})

	t.Run("passwordless account rejects password login", func(t *testing.T) {
		f := newFixture(t)

		// Magic-link-only account: created without a password hash.
		u := domain.User{ID: idx.New().String(), Email: "linkonly@example.com"}
		require.NoError(t, f.store.Users().CreateUser(context.Background(), u))

		_, err := f.svc.Login(context.Background(), "linkonly@example.com", "")
		require.ErrorIs(t, err, ErrInvalidCredentials)
	})
}
