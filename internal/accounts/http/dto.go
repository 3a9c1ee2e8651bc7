package http

import (
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/aussiebroadwan/accounts/internal/accounts/domain"
	"github.com/aussiebroadwan/accounts/pkg/accountsdk"
	"github.com/aussiebroadwan/accounts/pkg/httpx"
	"github.com/aussiebroadwan/accounts/pkg/jwtx"
)

func toUserResponse(u domain.User) accountsdk.UserResponse {
	return accountsdk.UserResponse{
		ID:            u.ID,
		Email:         u.Email,
		EmailVerified: u.EmailVerified,
		GivenName:     u.GivenName,
		FamilyName:    u.FamilyName,
		PhoneNumber:   u.PhoneNumber,
		Job:           u.Job,
		SignInCount:   u.SignInCount,
		LastSignInAt:  u.LastSignInAt,
		CreatedAt:     u.CreatedAt,
	}
}

// writeSession mints a session token for the user and writes the standard
// session response.
func writeSession(w http.ResponseWriter, minter *jwtx.SessionMinter, u domain.User, amr []string) error {
	token, err := minter.Mint(u.ID, u.Email, amr, time.Now())
	if err != nil {
		return err
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, accountsdk.SessionResponse{
		SessionToken: token,
		TokenType:    "Bearer",
		ExpiresIn:    int(minter.SessionTTL().Seconds()),
		User:         toUserResponse(u),
	})
	return nil
}

// decodeJSON reads a JSON request body into dst. A missing or malformed
// body reports false after writing the error response.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(io.LimitReader(r.Body, 1<<20)).Decode(dst); err != nil {
		accountsdk.ErrInvalidRequest.WriteError(w)
		return false
	}
	return true
}
