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

type SendMagicLinkHandler struct {
	AccountService *service.AccountService

	// Host is the externally visible base URL embedded in the emailed link.
	Host string
}

// ServeHTTP godoc
//
//	@Summary		Send Magic Link Endpoint
//	@Description	Email a one-time sign-in link to the address
//	@Description	An unknown address gets an account created implicitly, so this doubles as passwordless signup
//	@Tags			MagicLink
//	@Accept			json
//	@Produce		json
//	@Param			request	body		accountsdk.SendMagicLinkRequest	true	"Email"
//	@Success		202		{object}	accountsdk.AcceptedResponse		"status"
//	@Failure		400		{object}	accountsdk.ErrorResponse		"error, error_description"
//	@Router			/v1/accounts/magic-link/send [post].
func (h *SendMagicLinkHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req accountsdk.SendMagicLinkRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Email == "" {
		accountsdk.ErrInvalidRequest.WriteError(w)
		return
	}

	if err := h.AccountService.SendMagicLink(r.Context(), req.Email, h.Host); err != nil {
		mapServiceError(err).WriteError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusAccepted, accountsdk.AcceptedResponse{Status: "sent"})
}

type MagicLinkLoginHandler struct {
	AccountService *service.AccountService
	Minter         *jwtx.SessionMinter
}

// ServeHTTP godoc
//
//	@Summary		Magic Link Sign-In Endpoint
//	@Description	Consume a magic link token and return a bearer session token
//	@Description	Links are single use; following one also marks the email verified
//	@Tags			MagicLink
//	@Produce		json
//	@Param			magic_link_token	query		string						true	"Token from the emailed link"
//	@Success		200					{object}	accountsdk.SessionResponse	"session_token, token_type, expires_in, user"
//	@Failure		401					{object}	accountsdk.ErrorResponse	"invalid or expired link"
//	@Router			/users/sign-in-with-magic-link [get].
func (h *MagicLinkLoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	token := r.URL.Query().Get("magic_link_token")

	u, err := h.AccountService.LoginWithMagicLink(ctx, token)
	if err != nil {
		mapServiceError(err).WriteError(w)
		return
	}

	if err := writeSession(w, h.Minter, u, []string{jwtx.AMRMagicLink}); err != nil {
		log.Error("failed to mint session token", slog.Any("error", err))
		accountsdk.ErrServerError.WriteError(w)
	}
}
