package http

import (
	"net/http"

	"github.com/aussiebroadwan/accounts/internal/accounts/domain"
	"github.com/aussiebroadwan/accounts/internal/accounts/service"
	"github.com/aussiebroadwan/accounts/internal/accounts/store"
	"github.com/aussiebroadwan/accounts/pkg/accountsdk"
	"github.com/aussiebroadwan/accounts/pkg/httpx"
)

type MeHandler struct {
	Store          store.Store
	AccountService *service.AccountService
}

// HandleGet godoc
//
//	@Summary		Current Account Endpoint
//	@Description	Return the authenticated account's public profile
//	@Tags			Accounts
//	@Produce		json
//	@Success		200	{object}	accountsdk.UserResponse		"the account"
//	@Failure		401	{object}	accountsdk.ErrorResponse	"missing or invalid session token"
//	@Security		BearerAuth
//	@Router			/v1/accounts/me [get].
func (h *MeHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID := httpx.UserIDFromContext(ctx)
	if userID == "" {
		accountsdk.ErrInvalidToken.WriteError(w)
		return
	}

	u, err := h.Store.Users().GetUserByID(ctx, userID)
	if err != nil {
		accountsdk.ErrNotFound.WriteError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toUserResponse(u))
}

// HandlePatch godoc
//
//	@Summary		Update Profile Endpoint
//	@Description	Merge personal fields into the authenticated account
//	@Description	Omitted fields are left untouched; an explicit empty string clears a field
//	@Tags			Accounts
//	@Accept			json
//	@Produce		json
//	@Param			request	body		accountsdk.UpdateProfileRequest	true	"Fields to merge"
//	@Success		200		{object}	accountsdk.UserResponse			"the updated account"
//	@Failure		400		{object}	accountsdk.ErrorResponse		"error, error_description"
//	@Failure		401		{object}	accountsdk.ErrorResponse		"missing or invalid session token"
//	@Security		BearerAuth
//	@Router			/v1/accounts/me [patch].
func (h *MeHandler) HandlePatch(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID := httpx.UserIDFromContext(ctx)
	if userID == "" {
		accountsdk.ErrInvalidToken.WriteError(w)
		return
	}

	var req accountsdk.UpdateProfileRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	u, err := h.AccountService.UpdateProfile(ctx, userID, domain.ProfileUpdate{
		GivenName:   req.GivenName,
		FamilyName:  req.FamilyName,
		PhoneNumber: req.PhoneNumber,
		Job:         req.Job,
	})
	if err != nil {
		mapServiceError(err).WriteError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toUserResponse(u))
}
