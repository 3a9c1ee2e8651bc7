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
	"github.com/aussiebroadwan/accounts/pkg/idx"
	"github.com/aussiebroadwan/accounts/pkg/slogx"
)

// SendMagicLink issues a one-time sign-in link for the address. An unknown
// address gets an account created on the spot, so the magic link doubles
// as an implicit signup. A fresh link always replaces any outstanding one.
func (s *AccountService) SendMagicLink(ctx context.Context, email, host string) error {
	log := slogx.FromContext(ctx)
	email = normalizeEmail(email)

	// 1. Find or create the account.
	u, err := s.Store.Users().GetUserByEmail(ctx, email)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			log.Error("failed to look up user", slog.Any("error", err))
			return err
		}

		u = domain.User{
			ID:    idx.New().String(),
			Email: email,
		}
		if err := s.Store.Users().CreateUser(ctx, u); err != nil {
			if errors.Is(err, store.ErrAlreadyExists) {
				// Concurrent request for the same address won the race;
				// reload and continue with the winner's record.
				u, err = s.Store.Users().GetUserByEmail(ctx, email)
				if err != nil {
					log.Error("failed to reload user after create race", slog.Any("error", err))
					return err
				}
			} else {
				log.Error("failed to create user for magic link", slog.Any("error", err))
				return err
			}
		} else {
			log.Info("user created via magic link request", slog.String("user_id", u.ID))
		}
	}

	// 2. Issue the token.
	token, err := cryptox.GenerateToken(cryptox.TokenSize256)
	if err != nil {
		log.Error("failed to generate magic link token", slog.Any("error", err))
		return err
	}

	now := time.Now().UTC()
	if err := s.Store.Users().SetMagicLinkToken(ctx, u.ID, token, now); err != nil {
		log.Error("failed to store magic link token",
			slog.String("user_id", u.ID),
			slog.Any("error", err),
		)
		return err
	}

	log.Info("magic link issued", slog.String("user_id", u.ID))

	// 3. Deliver the deep link.
	link := magicLinkURL(host, token)
	s.sendMail(ctx, mail.MagicLinkMessage(email, link, s.Config.MagicLinkTTL))
	return nil
}

// LoginWithMagicLink consumes a magic link token. The token is the whole
// credential, so the lookup is by token alone. An empty token is rejected
// outright: it must never be allowed to probe accounts that have no link
// outstanding.
func (s *AccountService) LoginWithMagicLink(ctx context.Context, token string) (domain.User, error) {
	log := slogx.FromContext(ctx)

	if token == "" {
		log.Warn("magic link login attempt with empty token")
		return domain.User{}, ErrInvalidMagicLink
	}

	// 1. Look up by token.
	u, err := s.Store.Users().GetUserByMagicLinkToken(ctx, token)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			log.Warn("magic link login attempt with unknown token")
			return domain.User{}, ErrInvalidMagicLink
		}
		log.Error("failed to look up magic link token", slog.Any("error", err))
		return domain.User{}, err
	}

	// 2. Check the validity window.
	now := time.Now().UTC()
	if !pending(u.MagicLinkToken, u.MagicLinkSentAt) ||
		expired(*u.MagicLinkSentAt, s.Config.MagicLinkTTL, now) {
		log.Warn("magic link login attempt with expired token",
			slog.String("user_id", u.ID),
		)
		return domain.User{}, ErrInvalidMagicLink
	}

	// 3. Consume: clearing the pair, verifying the email and stamping the
	// sign-in happen in one update, so the link can never be replayed.
	if err := s.Store.Users().ConsumeMagicLinkToken(ctx, u.ID, now); err != nil {
		log.Error("failed to consume magic link token",
			slog.String("user_id", u.ID),
			slog.Any("error", err),
		)
		return domain.User{}, err
	}

	log.Info("user logged in via magic link", slog.String("user_id", u.ID))

	refreshed, err := s.Store.Users().GetUserByID(ctx, u.ID)
	if err != nil {
		log.Error("failed to reload user", slog.Any("error", err))
		return domain.User{}, err
	}
	return refreshed, nil
}

func magicLinkURL(host, token string) string {
	return fmt.Sprintf("%s/users/sign-in-with-magic-link?magic_link_token=%s",
		strings.TrimRight(host, "/"), url.QueryEscape(token))
}
