package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/aussiebroadwan/accounts/internal/accounts/mail"
	"github.com/aussiebroadwan/accounts/internal/accounts/store"
	"github.com/aussiebroadwan/accounts/pkg/cryptox"
	"github.com/aussiebroadwan/accounts/pkg/slogx"
)

// SendVerifyEmail issues a verification PIN to the address. A fresh PIN
// overwrites any outstanding one, invalidating it. With checkBeforeSend
// set, an unexpired outstanding PIN suppresses the re-issue and the call
// returns false without error, so repeated requests cannot spam a mailbox.
func (s *AccountService) SendVerifyEmail(ctx context.Context, email string, checkBeforeSend bool) (bool, error) {
	log := slogx.FromContext(ctx)
	email = normalizeEmail(email)

	// 1. The account must exist and still be unverified.
	u, err := s.Store.Users().GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return false, ErrUserNotFound
		}
		log.Error("failed to look up user", slog.Any("error", err))
		return false, err
	}
	if u.EmailVerified {
		return false, ErrEmailAlreadyVerified
	}

	now := time.Now().UTC()

	// 2. Honor an unexpired outstanding PIN when asked to.
	if checkBeforeSend && pending(u.VerifyEmailToken, u.VerifyEmailSentAt) &&
		!expired(*u.VerifyEmailSentAt, s.Config.VerifyEmailTTL, now) {
		log.Debug("verification email suppressed, previous PIN still valid",
			slog.String("user_id", u.ID),
		)
		return false, nil
	}

	// 3. Issue a new PIN.
	pin, err := cryptox.GeneratePIN()
	if err != nil {
		log.Error("failed to generate verification PIN", slog.Any("error", err))
		return false, err
	}
	if err := s.Store.Users().SetVerifyEmailToken(ctx, u.ID, pin, now); err != nil {
		log.Error("failed to store verification PIN",
			slog.String("user_id", u.ID),
			slog.Any("error", err),
		)
		return false, err
	}

	log.Info("verification email issued", slog.String("user_id", u.ID))

	// 4. Deliver. The PIN is already persisted; a failed send just means
	// the user asks for another one.
	s.sendMail(ctx, mail.VerifyEmailMessage(email, pin, s.Config.VerifyEmailTTL))
	return true, nil
}

// VerifyEmail consumes a verification PIN. The PIN is scoped by email:
// both must match together. Mismatch, absence and expiry are all the same
// error to the caller.
func (s *AccountService) VerifyEmail(ctx context.Context, email, token string) error {
	log := slogx.FromContext(ctx)
	email = normalizeEmail(email)

	// The display format groups digits with a separator; accept it typed
	// either way.
	token = strings.ReplaceAll(token, "-", "")
	if token == "" {
		return ErrInvalidToken
	}

	// 1. Look up by email, never by PIN alone.
	u, err := s.Store.Users().GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			log.Warn("email verification attempt for unknown email")
			return ErrInvalidToken
		}
		log.Error("failed to look up user", slog.Any("error", err))
		return err
	}
	if u.EmailVerified {
		return ErrEmailAlreadyVerified
	}

	// 2. There must be an outstanding, matching, unexpired PIN.
	if !pending(u.VerifyEmailToken, u.VerifyEmailSentAt) {
		return ErrInvalidToken
	}
	if subtle.ConstantTimeCompare([]byte(*u.VerifyEmailToken), []byte(token)) != 1 {
		log.Warn("email verification attempt with wrong PIN",
			slog.String("user_id", u.ID),
		)
		return ErrInvalidToken
	}
	now := time.Now().UTC()
	if expired(*u.VerifyEmailSentAt, s.Config.VerifyEmailTTL, now) {
		log.Warn("email verification attempt with expired PIN",
			slog.String("user_id", u.ID),
		)
		return ErrInvalidToken
	}

	// 3. Consume: clear the pair and flip the flag in one update.
	if err := s.Store.Users().MarkEmailVerified(ctx, u.ID, now); err != nil {
		log.Error("failed to mark email verified",
			slog.String("user_id", u.ID),
			slog.Any("error", err),
		)
		return err
	}

	log.Info("email verified", slog.String("user_id", u.ID))
	return nil
}

// RefreshEmailVerification enforces the periodic re-verification policy.
// When the last mailbox proof is older than the renewal window the
// verified flag is dropped and the caller is told to re-send a PIN. The
// returned bool is true whenever a fresh verification is needed.
func (s *AccountService) RefreshEmailVerification(ctx context.Context, email string) (bool, error) {
	log := slogx.FromContext(ctx)
	email = normalizeEmail(email)

	u, err := s.Store.Users().GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return false, ErrUserNotFound
		}
		log.Error("failed to look up user", slog.Any("error", err))
		return false, err
	}

	// Never verified, or verified before the timestamp column existed:
	// renewal is needed either way.
	if !u.EmailVerified || u.EmailVerifiedAt == nil {
		return true, nil
	}

	now := time.Now().UTC()
	if !expired(*u.EmailVerifiedAt, s.Config.VerifiedRenewalWindow, now) {
		return false, nil
	}

	if err := s.Store.Users().ExpireEmailVerification(ctx, u.ID); err != nil {
		log.Error("failed to expire email verification",
			slog.String("user_id", u.ID),
			slog.Any("error", err),
		)
		return false, err
	}

	log.Info("email verification expired, renewal required",
		slog.String("user_id", u.ID),
	)
	return true, nil
}
