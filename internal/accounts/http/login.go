package http

import (
	"log/slog"
	"net/http"

	"github.com/aussiebroadwan/accounts/internal/accounts/service"
	"github.com/aussiebroadwan/accounts/pkg/accountsdk"
	"github.com/aussiebroadwan/accounts/pkg/jwtx"
	"github.com/aussiebroadwan/accounts/pkg/slogx"
)

type LoginHandler struct {
	AccountService *service.AccountService
	Minter         *jwtx.SessionMinter
}

// ServeHTTP godoc
//
//	@Summary		Login Endpoint
//	@Description	Authenticate with email and password, returning a bearer session token
//	@Description	A missing account and a wrong password produce the same error
//	@Tags			Accounts
//	@Accept			json
//	@Produce		json
//	@Param			request	body		accountsdk.LoginRequest		true	"Email and password"
//	@Success		200		{object}	accountsdk.SessionResponse	"session_token, token_type, expires_in, user"
//	@Failure		400		{object}	accountsdk.ErrorResponse	"error, error_description"
//	@Failure		401		{object}	accountsdk.ErrorResponse	"invalid credentials"
//	@Router			/v1/accounts/login [post].
func (h *LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req accountsdk.LoginRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Email == "" || req.Password == "" {
		accountsdk.ErrInvalidRequest.WriteError(w)
		return
	}

	u, err := h.AccountService.Login(ctx, req.Email, req.Password)
	if err != nil {
		mapServiceError(err).WriteError(w)
		return
	}

	if err := writeSession(w, h.Minter, u, []string{jwtx.AMRPassword}); err != nil {
		log.Error("failed to mint session token", slog.Any("error", err))
		accountsdk.ErrServerError.WriteError(w)
	}
}
