package http

import (
	"net/http"

	"github.com/aussiebroadwan/accounts/internal/accounts/service"
	"github.com/aussiebroadwan/accounts/pkg/accountsdk"
	"github.com/aussiebroadwan/accounts/pkg/httpx"
)

type SendVerifyEmailHandler struct {
	AccountService *service.AccountService
}

// ServeHTTP godoc
//
//	@Summary		Send Verification Email Endpoint
//	@Description	Issue an email verification PIN to an unverified account
//	@Description	With check_before_send set, an unexpired outstanding PIN suppresses the re-issue and sent=false is returned
//	@Tags			Verification
//	@Accept			json
//	@Produce		json
//	@Param			request	body		accountsdk.SendVerifyEmailRequest	true	"Email and optional check_before_send"
//	@Success		200		{object}	accountsdk.SendVerifyEmailResponse	"sent"
//	@Failure		400		{object}	accountsdk.ErrorResponse			"error, error_description"
//	@Failure		404		{object}	accountsdk.ErrorResponse			"no account for this email"
//	@Failure		409		{object}	accountsdk.ErrorResponse			"email already verified"
//	@Router			/v1/accounts/verify-email/send [post].
func (h *SendVerifyEmailHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req accountsdk.SendVerifyEmailRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Email == "" {
		accountsdk.ErrInvalidRequest.WriteError(w)
		return
	}

	sent, err := h.AccountService.SendVerifyEmail(r.Context(), req.Email, req.CheckBeforeSend)
	if err != nil {
		mapServiceError(err).WriteError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, accountsdk.SendVerifyEmailResponse{Sent: sent})
}

type VerifyEmailHandler struct {
	AccountService *service.AccountService
}

// ServeHTTP godoc
//
//	@Summary		Verify Email Endpoint
//	@Description	Consume a verification PIN, marking the account's email verified
//	@Description	The PIN is scoped by email and may be supplied in its grouped display format
//	@Tags			Verification
//	@Accept			json
//	@Produce		json
//	@Param			request	body	accountsdk.VerifyEmailRequest	true	"Email and PIN"
//	@Success		204		"email verified"
//	@Failure		400		{object}	accountsdk.ErrorResponse	"error, error_description"
//	@Failure		401		{object}	accountsdk.ErrorResponse	"invalid or expired PIN"
//	@Failure		409		{object}	accountsdk.ErrorResponse	"email already verified"
//	@Router			/v1/accounts/verify-email [post].
func (h *VerifyEmailHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req accountsdk.VerifyEmailRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Email == "" || req.Token == "" {
		accountsdk.ErrInvalidRequest.WriteError(w)
		return
	}

	if err := h.AccountService.VerifyEmail(r.Context(), req.Email, req.Token); err != nil {
		mapServiceError(err).WriteError(w)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type RefreshVerificationHandler struct {
	AccountService *service.AccountService
}

// ServeHTTP godoc
//
//	@Summary		Refresh Verification Endpoint
//	@Description	Run the periodic re-verification check for the authenticated account
//	@Description	When the last mailbox proof is older than the renewal window, the verified flag is dropped and renewal_required=true is returned
//	@Tags			Verification
//	@Produce		json
//	@Success		200	{object}	accountsdk.RefreshVerificationResponse	"renewal_required"
//	@Failure		401	{object}	accountsdk.ErrorResponse				"missing or invalid session token"
//	@Security		BearerAuth
//	@Router			/v1/accounts/verify-email/refresh [post].
func (h *RefreshVerificationHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	email := httpx.EmailFromContext(ctx)
	if email == "" {
		accountsdk.ErrInvalidToken.WriteError(w)
		return
	}

	needsRenewal, err := h.AccountService.RefreshEmailVerification(ctx, email)
	if err != nil {
		mapServiceError(err).WriteError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, accountsdk.RefreshVerificationResponse{
		RenewalRequired: needsRenewal,
	})
}
