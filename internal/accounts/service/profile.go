package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/aussiebroadwan/accounts/internal/accounts/domain"
	"github.com/aussiebroadwan/accounts/internal/accounts/store"
	"github.com/aussiebroadwan/accounts/pkg/slogx"
)

// UpdateProfile merges the supplied personal fields into the user record.
// Nil fields are left untouched; an explicit empty string clears a field.
// No token or credential semantics are involved.
func (s *AccountService) UpdateProfile(ctx context.Context, userID string, p domain.ProfileUpdate) (domain.User, error) {
	log := slogx.FromContext(ctx)

	if err := s.Store.Users().UpdateProfile(ctx, userID, p); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, ErrUserNotFound
		}
		log.Error("failed to update profile",
			slog.String("user_id", userID),
			slog.Any("error", err),
		)
		return domain.User{}, err
	}

	u, err := s.Store.Users().GetUserByID(ctx, userID)
	if err != nil {
		log.Error("failed to reload user", slog.Any("error", err))
		return domain.User{}, err
	}

	log.Debug("profile updated", slog.String("user_id", userID))
	return u, nil
}
