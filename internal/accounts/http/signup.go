package http

import (
	"net/http"

	"github.com/aussiebroadwan/accounts/internal/accounts/service"
	"github.com/aussiebroadwan/accounts/pkg/accountsdk"
	"github.com/aussiebroadwan/accounts/pkg/httpx"
)

type SignupHandler struct {
	AccountService *service.AccountService
}

// ServeHTTP godoc
//
//	@Summary		Signup Endpoint
//	@Description	Register a new account with an email and password
//	@Description	A verification PIN is emailed to the address; confirm it via the verify-email endpoint
//	@Tags			Accounts
//	@Accept			json
//	@Produce		json
//	@Param			request	body		accountsdk.SignupRequest	true	"Email and password"
//	@Success		201		{object}	accountsdk.UserResponse		"the created account"
//	@Failure		400		{object}	accountsdk.ErrorResponse	"error, error_description"
//	@Failure		409		{object}	accountsdk.ErrorResponse	"email already registered"
//	@Failure		422		{object}	accountsdk.ErrorResponse	"weak or breached password"
//	@Router			/v1/accounts/signup [post].
func (h *SignupHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req accountsdk.SignupRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Email == "" || req.Password == "" {
		accountsdk.ErrInvalidRequest.WriteError(w)
		return
	}

	u, err := h.AccountService.Signup(r.Context(), req.Email, req.Password)
	if err != nil {
		mapServiceError(err).WriteError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, toUserResponse(u))
}
