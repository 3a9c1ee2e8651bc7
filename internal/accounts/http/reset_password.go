package http

import (
	"log/slog"
	"net/http"

	"github.com/aussiebroadwan/accounts/internal/accounts/service"
	"github.com/aussiebroadwan/accounts/pkg/accountsdk"
	"github.com/aussiebroadwan/accounts/pkg/httpx"
	"github.com/aussiebroadwan/accounts/pkg/jwtx"
	"github.com/aussiebroadwan/accounts/pkg/slogx"
)

type SendPasswordResetHandler struct {
	AccountService *service.AccountService

	// Host is the externally visible base URL embedded in the emailed link.
	Host string
}

// ServeHTTP godoc
//
//	@Summary		Send Password Reset Endpoint
//	@Description	Email a password reset link to the address
//	@Description	The response is identical whether or not the address is registered
//	@Tags			PasswordReset
//	@Accept			json
//	@Produce		json
//	@Param			request	body		accountsdk.SendPasswordResetRequest	true	"Email"
//	@Success		202		{object}	accountsdk.AcceptedResponse			"status"
//	@Failure		400		{object}	accountsdk.ErrorResponse			"error, error_description"
//	@Router			/v1/accounts/reset-password/send [post].
func (h *SendPasswordResetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req accountsdk.SendPasswordResetRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Email == "" {
		accountsdk.ErrInvalidRequest.WriteError(w)
		return
	}

	if err := h.AccountService.SendPasswordReset(r.Context(), req.Email, h.Host); err != nil {
		mapServiceError(err).WriteError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusAccepted, accountsdk.AcceptedResponse{Status: "sent"})
}

type ChangePasswordHandler struct {
	AccountService *service.AccountService
	Minter         *jwtx.SessionMinter
}

// ServeHTTP godoc
//
//	@Summary		Change Password Endpoint
//	@Description	Consume a reset token and set a new password, returning a session for the recovered account
//	@Description	Completing a reset also marks the email verified; a weak or breached replacement leaves the token usable for a retry
//	@Tags			PasswordReset
//	@Accept			json
//	@Produce		json
//	@Param			request	body		accountsdk.ChangePasswordRequest	true	"Reset token and new password"
//	@Success		200		{object}	accountsdk.SessionResponse			"session_token, token_type, expires_in, user"
//	@Failure		400		{object}	accountsdk.ErrorResponse			"error, error_description"
//	@Failure		401		{object}	accountsdk.ErrorResponse			"invalid or expired token"
//	@Failure		422		{object}	accountsdk.ErrorResponse			"weak or breached password"
//	@Router			/v1/accounts/reset-password [post].
func (h *ChangePasswordHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req accountsdk.ChangePasswordRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Token == "" || req.Password == "" {
		accountsdk.ErrInvalidRequest.WriteError(w)
		return
	}

	u, err := h.AccountService.ChangePassword(ctx, req.Token, req.Password)
	if err != nil {
		mapServiceError(err).WriteError(w)
		return
	}

	if err := writeSession(w, h.Minter, u, []string{jwtx.AMRPassword}); err != nil {
		log.Error("failed to mint session token", slog.Any("error", err))
		accountsdk.ErrServerError.WriteError(w)
	}
}
