package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/aussiebroadwan/accounts/internal/accounts/domain"
	"github.com/aussiebroadwan/accounts/internal/accounts/mail"
	"github.com/aussiebroadwan/accounts/internal/accounts/store"
	"github.com/aussiebroadwan/accounts/pkg/cryptox"
	"github.com/aussiebroadwan/accounts/pkg/slogx"
)

// SendPasswordReset issues a reset token and mails a deep link embedding
// it. An unknown address returns success without sending anything: the
// caller must not be able to tell registered and unregistered addresses
// apart through this endpoint.
func (s *AccountService) SendPasswordReset(ctx context.Context, email, host string) error {
	log := slogx.FromContext(ctx)
	email = normalizeEmail(email)

	// 1. Look up; silently succeed for unknown addresses.
	u, err := s.Store.Users().GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			log.Info("password reset requested for unknown email")
			return nil
		}
		log.Error("failed to look up user", slog.Any("error", err))
		return err
	}

	// 2. Issue the token. A new request replaces any outstanding token.
	token, err := cryptox.GenerateToken(cryptox.TokenSize256)
	if err != nil {
		log.Error("failed to generate reset token", slog.Any("error", err))
		return err
	}

	now := time.Now().UTC()
	if err := s.Store.Users().SetResetPasswordToken(ctx, u.ID, token, now); err != nil {
		log.Error("failed to store reset token",
			slog.String("user_id", u.ID),
			slog.Any("error", err),
		)
		return err
	}

	log.Info("password reset issued", slog.String("user_id", u.ID))

	// 3. Deliver the link.
	link := resetPasswordURL(host, token)
	s.sendMail(ctx, mail.PasswordResetMessage(email, link, s.Config.ResetPasswordTTL))
	return nil
}

// ChangePassword consumes a reset token and stores a new password hash.
// The new password is validated before the token is consumed, so a weak
// candidate leaves both the token and the old hash untouched and the user
// can retry with the same link. Completing a reset also marks the email
// verified: proving control of the mailbox is the same proof verification
// asks for.
func (s *AccountService) ChangePassword(ctx context.Context, token, password string) (domain.User, error) {
	log := slogx.FromContext(ctx)

	if token == "" {
		log.Warn("password change attempt with empty token")
		return domain.User{}, ErrInvalidToken
	}

	// 1. Look up by token.
	u, err := s.Store.Users().GetUserByResetPasswordToken(ctx, token)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			log.Warn("password change attempt with unknown token")
			return domain.User{}, ErrInvalidToken
		}
		log.Error("failed to look up reset token", slog.Any("error", err))
		return domain.User{}, err
	}

	// 2. Check the validity window.
	now := time.Now().UTC()
	if !pending(u.ResetPasswordToken, u.ResetPasswordSentAt) ||
		expired(*u.ResetPasswordSentAt, s.Config.ResetPasswordTTL, now) {
		log.Warn("password change attempt with expired token",
			slog.String("user_id", u.ID),
		)
		return domain.User{}, ErrInvalidToken
	}

	// 3. Validate the replacement before consuming anything.
	if !isSecurePassword(password, u.Email) {
		return domain.User{}, ErrWeakPassword
	}
	if s.isLeaked(ctx, password) {
		log.Warn("password change attempt with breached password",
			slog.String("user_id", u.ID),
		)
		return domain.User{}, ErrLeakedPassword
	}

	hash, err := cryptox.HashPassword(password)
	if err != nil {
		log.Error("failed to hash password", slog.Any("error", err))
		return domain.User{}, err
	}

	// 4. Consume: new hash, cleared token pair and the verified flag all
	// land in one update.
	if err := s.Store.Users().CompletePasswordReset(ctx, u.ID, hash, now); err != nil {
		log.Error("failed to complete password reset",
			slog.String("user_id", u.ID),
			slog.Any("error", err),
		)
		return domain.User{}, err
	}

	log.Info("password changed via reset", slog.String("user_id", u.ID))

	refreshed, err := s.Store.Users().GetUserByID(ctx, u.ID)
	if err != nil {
		log.Error("failed to reload user", slog.Any("error", err))
		return domain.User{}, err
	}
	return refreshed, nil
}

func resetPasswordURL(host, token string) string {
	return fmt.Sprintf("%s/users/reset-password?reset_password_token=%s",
		strings.TrimRight(host, "/"), url.QueryEscape(token))
}
