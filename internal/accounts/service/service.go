// Package service implements the account credential lifecycle: signup,
// login, email verification, magic-link sign-in, password reset and
// periodic re-verification. All state lives behind the store contract;
// every operation reads one user record, applies policy, mutates exactly
// one record and optionally sends one email.
package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/aussiebroadwan/accounts/internal/accounts/breach"
	"github.com/aussiebroadwan/accounts/internal/accounts/deliverability"
	"github.com/aussiebroadwan/accounts/internal/accounts/mail"
	"github.com/aussiebroadwan/accounts/internal/accounts/store"
	"github.com/aussiebroadwan/accounts/pkg/slogx"
)

// Config carries the token validity windows. Zero values fall back to the
// defaults below.
type Config struct {
	VerifyEmailTTL        time.Duration
	MagicLinkTTL          time.Duration
	ResetPasswordTTL      time.Duration
	VerifiedRenewalWindow time.Duration
}

const (
	DefaultVerifyEmailTTL        = 15 * time.Minute
	DefaultMagicLinkTTL          = 30 * time.Minute
	DefaultResetPasswordTTL      = 2 * time.Hour
	DefaultVerifiedRenewalWindow = 90 * 24 * time.Hour
)

func (c Config) withDefaults() Config {
	if c.VerifyEmailTTL <= 0 {
		c.VerifyEmailTTL = DefaultVerifyEmailTTL
	}
	if c.MagicLinkTTL <= 0 {
		c.MagicLinkTTL = DefaultMagicLinkTTL
	}
	if c.ResetPasswordTTL <= 0 {
		c.ResetPasswordTTL = DefaultResetPasswordTTL
	}
	if c.VerifiedRenewalWindow <= 0 {
		c.VerifiedRenewalWindow = DefaultVerifiedRenewalWindow
	}
	return c
}

// AccountService orchestrates the credential lifecycle. Mail delivery is
// fire-and-forget: a failed send is logged but never rolls back the state
// transition that preceded it.
type AccountService struct {
	Store          store.Store
	Mailer         mail.Mailer
	Breach         breach.Checker
	Deliverability deliverability.Verifier
	Config         Config
}

func NewAccountService(
	st store.Store,
	mailer mail.Mailer,
	breachChecker breach.Checker,
	verifier deliverability.Verifier,
	cfg Config,
) *AccountService {
	return &AccountService{
		Store:          st,
		Mailer:         mailer,
		Breach:         breachChecker,
		Deliverability: verifier,
		Config:         cfg.withDefaults(),
	}
}

// sendMail delivers a message without letting a failure surface to the
// caller. State transitions are already persisted by the time this runs.
func (s *AccountService) sendMail(ctx context.Context, msg mail.Message) {
	log := slogx.FromContext(ctx)
	if err := s.Mailer.Send(ctx, msg); err != nil {
		log.Warn("failed to send email",
			slog.String("subject", msg.Subject),
			slog.Any("error", err),
		)
		return
	}
	log.Debug("email sent", slog.String("subject", msg.Subject))
}

// isLeaked consults the breach corpus. The corpus is network-fallible and
// fails open: an unreachable upstream logs a warning and lets the password
// through rather than blocking signups on a third party.
func (s *AccountService) isLeaked(ctx context.Context, password string) bool {
	log := slogx.FromContext(ctx)

	count, err := s.Breach.Count(ctx, password)
	if err != nil {
		log.Warn("breach corpus unavailable, skipping check", slog.Any("error", err))
		return false
	}
	return count > 0
}
