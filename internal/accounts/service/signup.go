package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/aussiebroadwan/accounts/internal/accounts/domain"
	"github.com/aussiebroadwan/accounts/internal/accounts/store"
	"github.com/aussiebroadwan/accounts/pkg/cryptox"
	"github.com/aussiebroadwan/accounts/pkg/idx"
	"github.com/aussiebroadwan/accounts/pkg/slogx"
)

// Signup registers a new account with a password, then issues the first
// email verification PIN. A failed verification send does not undo the
// signup; the user can request another PIN later.
func (s *AccountService) Signup(ctx context.Context, email, password string) (domain.User, error) {
	log := slogx.FromContext(ctx)
	email = normalizeEmail(email)

	// 1. The address must be free.
	_, err := s.Store.Users().GetUserByEmail(ctx, email)
	if err == nil {
		log.Warn("signup attempt for registered email")
		return domain.User{}, ErrEmailUnavailable
	}
	if !errors.Is(err, store.ErrNotFound) {
		log.Error("failed to look up user", slog.Any("error", err))
		return domain.User{}, err
	}

	// 2. Structural password policy.
	if !isSecurePassword(password, email) {
		return domain.User{}, ErrWeakPassword
	}

	// 3. Breach corpus check (fail-open).
	if s.isLeaked(ctx, password) {
		log.Warn("signup attempt with breached password")
		return domain.User{}, ErrLeakedPassword
	}

	// 4. Hash and create.
	hash, err := cryptox.HashPassword(password)
	if err != nil {
		log.Error("failed to hash password", slog.Any("error", err))
		return domain.User{}, err
	}

	u := domain.User{
		ID:           idx.New().String(),
		Email:        email,
		PasswordHash: hash,
	}
	if err := s.Store.Users().CreateUser(ctx, u); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			// Lost a race with a concurrent signup for the same address.
			return domain.User{}, ErrEmailUnavailable
		}
		log.Error("failed to create user", slog.Any("error", err))
		return domain.User{}, err
	}

	log.Info("user signed up", slog.String("user_id", u.ID))

	// 5. Kick off email verification. Best effort only.
	if _, err := s.SendVerifyEmail(ctx, email, false); err != nil {
		log.Warn("failed to issue verification email after signup",
			slog.String("user_id", u.ID),
			slog.Any("error", err),
		)
	}

	created, err := s.Store.Users().GetUserByID(ctx, u.ID)
	if err != nil {
		log.Error("failed to reload created user", slog.Any("error", err))
		return domain.User{}, err
	}
	return created, nil
}
