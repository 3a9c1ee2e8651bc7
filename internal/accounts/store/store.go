package store

import (
	"context"
	"errors"
	"time"

	"github.com/aussiebroadwan/accounts/internal/accounts/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite today)
// implement it. Lookups return ErrNotFound for absent rows, never a sentinel
// empty value, so callers can distinguish "no such user" from driver errors.
type Store interface {
	Users() Users

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes fn within a transaction, committing when fn returns
	// nil and rolling back otherwise. Preferred over Tx for multi-step
	// operations that must be atomic.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It exposes the same repos plus Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

// Users is the credential store contract. The mutating calls that consume a
// token are single-statement updates: the token pair is cleared and the state
// transition it authorizes is applied atomically, so a concurrent reader can
// never observe a consumed token with its side effects missing.
type Users interface {
	// GetUserByID returns a user by id.
	GetUserByID(ctx context.Context, id string) (domain.User, error)

	// GetUserByEmail looks a user up by the case-insensitive email key.
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)

	// GetUserByMagicLinkToken looks a user up by an outstanding magic-link
	// token. The token is the only identifier the requester presents.
	GetUserByMagicLinkToken(ctx context.Context, token string) (domain.User, error)

	// GetUserByResetPasswordToken looks a user up by an outstanding
	// reset-password token.
	GetUserByResetPasswordToken(ctx context.Context, token string) (domain.User, error)

	// CreateUser inserts a new user (id is provided by the app via ULID).
	// Returns ErrAlreadyExists when the email is taken.
	CreateUser(ctx context.Context, u domain.User) error

	// SetVerifyEmailToken issues (or re-issues, overwriting) the
	// verify-email token pair.
	SetVerifyEmailToken(ctx context.Context, userID, token string, sentAt time.Time) error

	// MarkEmailVerified consumes the verify-email pair: clears both fields
	// and sets email_verified/email_verified_at in the same update.
	MarkEmailVerified(ctx context.Context, userID string, at time.Time) error

	// SetMagicLinkToken issues (or re-issues, overwriting) the magic-link
	// token pair.
	SetMagicLinkToken(ctx context.Context, userID, token string, sentAt time.Time) error

	// ConsumeMagicLinkToken consumes the magic-link pair: clears both
	// fields, marks the email verified (a magic-link login proves mailbox
	// ownership) and bumps last_sign_in_at, all in the same update.
	ConsumeMagicLinkToken(ctx context.Context, userID string, at time.Time) error

	// SetResetPasswordToken issues (or re-issues, overwriting) the
	// reset-password token pair.
	SetResetPasswordToken(ctx context.Context, userID, token string, sentAt time.Time) error

	// CompletePasswordReset consumes the reset-password pair: clears both
	// fields, replaces the password hash and marks the email verified
	// (resetting via mailbox also proves ownership), in the same update.
	CompletePasswordReset(ctx context.Context, userID, newHash string, at time.Time) error

	// RecordSignIn increments sign_in_count by exactly 1 and sets
	// last_sign_in_at, for a successful password login.
	RecordSignIn(ctx context.Context, userID string, at time.Time) error

	// ExpireEmailVerification flips email_verified back off for one user
	// whose periodic re-proof is due. email_verified_at is retained for
	// audit but no longer current.
	ExpireEmailVerification(ctx context.Context, userID string) error

	// ExpireVerificationsBefore is the sweep form of
	// ExpireEmailVerification: flips email_verified off for every user
	// verified before the cutoff. Returns the number of rows changed.
	ExpireVerificationsBefore(ctx context.Context, cutoff time.Time) (int64, error)

	// ClearExpiredTokens is housekeeping: nulls any token pair whose
	// sent_at is older than its family's cutoff. Returns rows changed.
	ClearExpiredTokens(ctx context.Context, verifyCutoff, magicCutoff, resetCutoff time.Time) (int64, error)

	// UpdateProfile merges the supplied profile fields; nil fields are
	// left untouched.
	UpdateProfile(ctx context.Context, userID string, p domain.ProfileUpdate) error
}
