package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/aussiebroadwan/accounts/internal/accounts/domain"
	"github.com/aussiebroadwan/accounts/internal/accounts/store"
)

type usersRepo struct {
	q querier
}

const userColumns = `
	id, email, password_hash,
	email_verified, email_verified_at,
	verify_email_token, verify_email_sent_at,
	magic_link_token, magic_link_sent_at,
	reset_password_token, reset_password_sent_at,
	sign_in_count, last_sign_in_at,
	given_name, family_name, phone_number, job,
	created_at, updated_at`

func scanUser(row *sql.Row) (domain.User, error) {
	var (
		u               domain.User
		passwordHash    sql.NullString
		emailVerifiedAt sql.NullTime
		verifyToken     sql.NullString
		verifySentAt    sql.NullTime
		magicToken      sql.NullString
		magicSentAt     sql.NullTime
		resetToken      sql.NullString
		resetSentAt     sql.NullTime
		lastSignInAt    sql.NullTime
	)

	err := row.Scan(
		&u.ID, &u.Email, &passwordHash,
		&u.EmailVerified, &emailVerifiedAt,
		&verifyToken, &verifySentAt,
		&magicToken, &magicSentAt,
		&resetToken, &resetSentAt,
		&u.SignInCount, &lastSignInAt,
		&u.GivenName, &u.FamilyName, &u.PhoneNumber, &u.Job,
		&u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return domain.User{}, err
	}

	u.PasswordHash = mapNullString(passwordHash)
	u.EmailVerifiedAt = mapNullTimePtr(emailVerifiedAt)
	u.VerifyEmailToken = mapNullStringPtr(verifyToken)
	u.VerifyEmailSentAt = mapNullTimePtr(verifySentAt)
	u.MagicLinkToken = mapNullStringPtr(magicToken)
	u.MagicLinkSentAt = mapNullTimePtr(magicSentAt)
	u.ResetPasswordToken = mapNullStringPtr(resetToken)
	u.ResetPasswordSentAt = mapNullTimePtr(resetSentAt)
	u.LastSignInAt = mapNullTimePtr(lastSignInAt)
	return u, nil
}

func (r *usersRepo) GetUserByID(ctx context.Context, id string) (domain.User, error) {
	row := r.q.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE id = ?`, id)
	u, err := scanUser(row)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return u, nil
}

func (r *usersRepo) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	row := r.q.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE email = ? COLLATE NOCASE`, email)
	u, err := scanUser(row)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return u, nil
}

func (r *usersRepo) GetUserByMagicLinkToken(ctx context.Context, token string) (domain.User, error) {
	// Exact indexed equality only. A NULL column never matches, so an
	// unissued account can't be found with an empty probe.
	row := r.q.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE magic_link_token = ?`, token)
	u, err := scanUser(row)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return u, nil
}

func (r *usersRepo) GetUserByResetPasswordToken(ctx context.Context, token string) (domain.User, error) {
	row := r.q.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE reset_password_token = ?`, token)
	u, err := scanUser(row)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return u, nil
}

func (r *usersRepo) CreateUser(ctx context.Context, u domain.User) error {
	_, err := r.q.ExecContext(ctx, `
		INSERT INTO users (
			id, email, password_hash,
			email_verified, email_verified_at,
			verify_email_token, verify_email_sent_at,
			magic_link_token, magic_link_sent_at,
			reset_password_token, reset_password_sent_at,
			sign_in_count, last_sign_in_at,
			given_name, family_name, phone_number, job
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		u.ID, u.Email, mapEmptyNull(u.PasswordHash),
		u.EmailVerified, mapOptionalTime(u.EmailVerifiedAt),
		mapOptionalString(u.VerifyEmailToken), mapOptionalTime(u.VerifyEmailSentAt),
		mapOptionalString(u.MagicLinkToken), mapOptionalTime(u.MagicLinkSentAt),
		mapOptionalString(u.ResetPasswordToken), mapOptionalTime(u.ResetPasswordSentAt),
		u.SignInCount, mapOptionalTime(u.LastSignInAt),
		u.GivenName, u.FamilyName, u.PhoneNumber, u.Job,
	)
	if isUniqueViolation(err) {
		return store.ErrAlreadyExists
	}
	return err
}

func (r *usersRepo) SetVerifyEmailToken(ctx context.Context, userID, token string, sentAt time.Time) error {
	return r.exec(ctx, `
		UPDATE users
		SET verify_email_token = ?, verify_email_sent_at = ?, updated_at = ?
		WHERE id = ?`,
		token, sentAt, sentAt, userID)
}

func (r *usersRepo) MarkEmailVerified(ctx context.Context, userID string, at time.Time) error {
	return r.exec(ctx, `
		UPDATE users
		SET email_verified = 1, email_verified_at = ?,
		    verify_email_token = NULL, verify_email_sent_at = NULL,
		    updated_at = ?
		WHERE id = ?`,
		at, at, userID)
}

func (r *usersRepo) SetMagicLinkToken(ctx context.Context, userID, token string, sentAt time.Time) error {
	return r.exec(ctx, `
		UPDATE users
		SET magic_link_token = ?, magic_link_sent_at = ?, updated_at = ?
		WHERE id = ?`,
		token, sentAt, sentAt, userID)
}

func (r *usersRepo) ConsumeMagicLinkToken(ctx context.Context, userID string, at time.Time) error {
	return r.exec(ctx, `
		UPDATE users
		SET magic_link_token = NULL, magic_link_sent_at = NULL,
		    email_verified = 1, email_verified_at = ?,
		    last_sign_in_at = ?,
		    updated_at = ?
		WHERE id = ?`,
		at, at, at, userID)
}

func (r *usersRepo) SetResetPasswordToken(ctx context.Context, userID, token string, sentAt time.Time) error {
	return r.exec(ctx, `
		UPDATE users
		SET reset_password_token = ?, reset_password_sent_at = ?, updated_at = ?
		WHERE id = ?`,
		token, sentAt, sentAt, userID)
}

func (r *usersRepo) CompletePasswordReset(ctx context.Context, userID, newHash string, at time.Time) error {
	return r.exec(ctx, `
		UPDATE users
		SET reset_password_token = NULL, reset_password_sent_at = NULL,
		    password_hash = ?,
		    email_verified = 1, email_verified_at = ?,
		    updated_at = ?
		WHERE id = ?`,
		newHash, at, at, userID)
}

func (r *usersRepo) RecordSignIn(ctx context.Context, userID string, at time.Time) error {
	return r.exec(ctx, `
		UPDATE users
		SET sign_in_count = sign_in_count + 1, last_sign_in_at = ?, updated_at = ?
		WHERE id = ?`,
		at, at, userID)
}

func (r *usersRepo) ExpireEmailVerification(ctx context.Context, userID string) error {
	// email_verified_at is kept for audit; only the flag goes stale.
	return r.exec(ctx, `
		UPDATE users
		SET email_verified = 0, updated_at = CURRENT_TIMESTAMP
		WHERE id = ?`,
		userID)
}

func (r *usersRepo) ExpireVerificationsBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := r.q.ExecContext(ctx, `
		UPDATE users
		SET email_verified = 0, updated_at = CURRENT_TIMESTAMP
		WHERE email_verified = 1 AND email_verified_at < ?`,
		cutoff)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *usersRepo) ClearExpiredTokens(ctx context.Context, verifyCutoff, magicCutoff, resetCutoff time.Time) (int64, error) {
	res, err := r.q.ExecContext(ctx, `
		UPDATE users
		SET verify_email_token     = CASE WHEN verify_email_sent_at   < ?1 THEN NULL ELSE verify_email_token     END,
		    verify_email_sent_at   = CASE WHEN verify_email_sent_at   < ?1 THEN NULL ELSE verify_email_sent_at   END,
		    magic_link_token       = CASE WHEN magic_link_sent_at     < ?2 THEN NULL ELSE magic_link_token       END,
		    magic_link_sent_at     = CASE WHEN magic_link_sent_at     < ?2 THEN NULL ELSE magic_link_sent_at     END,
		    reset_password_token   = CASE WHEN reset_password_sent_at < ?3 THEN NULL ELSE reset_password_token   END,
		    reset_password_sent_at = CASE WHEN reset_password_sent_at < ?3 THEN NULL ELSE reset_password_sent_at END
		WHERE verify_email_sent_at < ?1 OR magic_link_sent_at < ?2 OR reset_password_sent_at < ?3`,
		verifyCutoff, magicCutoff, resetCutoff)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *usersRepo) UpdateProfile(ctx context.Context, userID string, p domain.ProfileUpdate) error {
	return r.exec(ctx, `
		UPDATE users
		SET given_name   = COALESCE(?, given_name),
		    family_name  = COALESCE(?, family_name),
		    phone_number = COALESCE(?, phone_number),
		    job          = COALESCE(?, job),
		    updated_at   = CURRENT_TIMESTAMP
		WHERE id = ?`,
		mapOptionalString(p.GivenName),
		mapOptionalString(p.FamilyName),
		mapOptionalString(p.PhoneNumber),
		mapOptionalString(p.Job),
		userID)
}

// exec runs an update that must touch exactly one row; zero rows means the
// user vanished between the caller's read and this write.
func (r *usersRepo) exec(ctx context.Context, query string, args ...any) error {
	res, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}
