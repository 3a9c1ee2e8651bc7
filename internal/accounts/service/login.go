package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/aussiebroadwan/accounts/internal/accounts/domain"
	"github.com/aussiebroadwan/accounts/internal/accounts/store"
	"github.com/aussiebroadwan/accounts/pkg/cryptox"
	"github.com/aussiebroadwan/accounts/pkg/slogx"
)

// LoginStart is the result of an existence probe. It deliberately carries
// no more than the caller needs to branch between login and signup UI.
type LoginStart struct {
	Email      string
	UserExists bool
}

// StartLogin probes whether an account exists for the address. For an
// unknown address the deliverability guard runs before the caller is
// allowed to continue into signup; a risky address fails with
// InvalidEmailError carrying any correction the guard could offer.
func (s *AccountService) StartLogin(ctx context.Context, email string) (LoginStart, error) {
	log := slogx.FromContext(ctx)
	email = normalizeEmail(email)

	// 1. Existence probe.
	_, err := s.Store.Users().GetUserByEmail(ctx, email)
	if err == nil {
		return LoginStart{Email: email, UserExists: true}, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		log.Error("failed to look up user", slog.Any("error", err))
		return LoginStart{}, err
	}

	// 2. Unknown address: check it is worth sending signup mail to. The
	// guard is advisory and fails open when the upstream is unreachable.
	res, err := s.Deliverability.Verify(ctx, email)
	if err != nil {
		log.Warn("deliverability service unavailable, allowing signup",
			slog.Any("error", err),
		)
		return LoginStart{Email: email, UserExists: false}, nil
	}
	if !res.SafeToSend {
		log.Info("rejected undeliverable signup address",
			slog.String("suggestion", res.DidYouMean),
		)
		return LoginStart{}, &InvalidEmailError{Email: email, Suggestion: res.DidYouMean}
	}

	return LoginStart{Email: email, UserExists: false}, nil
}

// Login authenticates by email and password. A missing account and a wrong
// password produce the same error.
func (s *AccountService) Login(ctx context.Context, email, password string) (domain.User, error) {
	log := slogx.FromContext(ctx)
	email = normalizeEmail(email)

	// 1. Look up the account. Absence reads as bad credentials.
	u, err := s.Store.Users().GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			log.Warn("login attempt for unknown email")
			return domain.User{}, ErrInvalidCredentials
		}
		log.Error("failed to look up user", slog.Any("error", err))
		return domain.User{}, err
	}

	// 2. Magic-link-only accounts have no password to check against.
	if !u.HasPassword() {
		log.Warn("password login attempt on passwordless account",
			slog.String("user_id", u.ID),
		)
		return domain.User{}, ErrInvalidCredentials
	}

	// 3. Verify the password.
	if err := cryptox.VerifyPassword(password, u.PasswordHash); err != nil {
		if errors.Is(err, cryptox.ErrPasswordMismatch) {
			log.Warn("login attempt with wrong password",
				slog.String("user_id", u.ID),
			)
			return domain.User{}, ErrInvalidCredentials
		}
		log.Error("failed to verify password", slog.Any("error", err))
		return domain.User{}, err
	}

	// 4. Record the sign-in.
	now := time.Now().UTC()
	if err := s.Store.Users().RecordSignIn(ctx, u.ID, now); err != nil {
		log.Error("failed to record sign-in",
			slog.String("user_id", u.ID),
			slog.Any("error", err),
		)
		return domain.User{}, err
	}

	u.SignInCount++
	u.LastSignInAt = &now

	log.Info("user logged in",
		slog.String("user_id", u.ID),
		slog.Int64("sign_in_count", u.SignInCount),
	)
	return u, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
