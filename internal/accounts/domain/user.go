package domain

import "time"

// User is the sole entity owned by the accounts service. A record is created
// on first signup or first magic-link request, whichever happens first, so an
// account may exist without a password.
//
// Each of the three token families (verify-email, magic-link, reset-password)
// is a (token, sent_at) pair: both fields are nil when nothing is pending and
// both are set while a single-use token is outstanding. The pair is never
// half-set.
type User struct {
	ID           string
	Email        string // lowercased, unique identity key
	PasswordHash string // argon2 encoded; empty for magic-link-only accounts

	EmailVerified   bool
	EmailVerifiedAt *time.Time // only meaningful while EmailVerified is true

	VerifyEmailToken  *string
	VerifyEmailSentAt *time.Time

	MagicLinkToken  *string
	MagicLinkSentAt *time.Time

	ResetPasswordToken  *string
	ResetPasswordSentAt *time.Time

	SignInCount  int64 // successful password logins; never decreases
	LastSignInAt *time.Time

	GivenName   string
	FamilyName  string
	PhoneNumber string
	Job         string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasPassword reports whether the account can authenticate with a password.
func (u User) HasPassword() bool { return u.PasswordHash != "" }

// ProfileUpdate carries a partial update of the free-form profile fields.
// Nil fields are left untouched; set fields overwrite, including to "".
type ProfileUpdate struct {
	GivenName   *string
	FamilyName  *string
	PhoneNumber *string
	Job         *string
}
