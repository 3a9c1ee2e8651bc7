package http

import (
	"net/http"

	"github.com/aussiebroadwan/accounts/internal/accounts/service"
	"github.com/aussiebroadwan/accounts/pkg/accountsdk"
	"github.com/aussiebroadwan/accounts/pkg/httpx"
)

type StartLoginHandler struct {
	AccountService *service.AccountService
}

// ServeHTTP godoc
//
//	@Summary		Start Login Endpoint
//	@Description	Probe whether an account exists for an email address so the UI can branch between login and signup
//	@Description	Unknown addresses are checked for deliverability; a mistyped address fails with a did-you-mean suggestion
//	@Tags			Accounts
//	@Accept			json
//	@Produce		json
//	@Param			request	body		accountsdk.StartLoginRequest	true	"Email to probe"
//	@Success		200		{object}	accountsdk.StartLoginResponse	"email, user_exists"
//	@Failure		400		{object}	accountsdk.ErrorResponse		"error, error_description"
//	@Failure		422		{object}	accountsdk.ErrorResponse		"error, error_description, suggestion"
//	@Router			/v1/accounts/start-login [post].
func (h *StartLoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req accountsdk.StartLoginRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Email == "" {
		accountsdk.ErrInvalidRequest.WriteError(w)
		return
	}

	res, err := h.AccountService.StartLogin(r.Context(), req.Email)
	if err != nil {
		mapServiceError(err).WriteError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, accountsdk.StartLoginResponse{
		Email:      res.Email,
		UserExists: res.UserExists,
	})
}
