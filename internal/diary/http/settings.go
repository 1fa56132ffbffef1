package http

import (
	"net/http"

	"github.com/mydayhq/myday/internal/diary/service"
	"github.com/mydayhq/myday/pkg/httpx"
	"github.com/mydayhq/myday/pkg/slogx"
)

type SettingsHandler struct {
	UserService *service.UserService
}

type settingsRequest struct {
	CurrentPassword string  `json:"current_password"`
	Username        *string `json:"username"`
	NewPassword     *string `json:"new_password"`
	TwoFA           *bool   `json:"two_fa"`
}

type settingsResponse struct {
	Message string   `json:"message"`
	User    UserView `json:"user"`
}

// ServeHTTP applies account settings changes. Every change is gated on the
// current password; absent fields are left untouched.
//
//	@Summary		Update account settings
//	@Description	Changes username, password and/or the two-factor flag. Requires the current password. A password change logs out all other sessions.
//	@Tags			Users
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			body	body		settingsRequest	true	"Settings changes"
//	@Success		200		{object}	settingsResponse
//	@Failure		400		{object}	apiError	"Missing current password or username already in use"
//	@Failure		401		{object}	apiError	"Current password is incorrect"
//	@Router			/v1/settings [post].
func (h *SettingsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	userID := httpx.UserIDFromCtx(ctx)
	if userID == "" {
		errUnauthorized.WriteError(w)
		return
	}

	var req settingsRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		errBadBody.WriteError(w)
		return
	}

	u, err := h.UserService.UpdateSettings(ctx, userID, service.UpdateSettingsParams{
		CurrentPassword: req.CurrentPassword,
		Username:        req.Username,
		NewPassword:     req.NewPassword,
		TwoFA:           req.TwoFA,
	})
	if err != nil {
		writeServiceError(w, log, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, settingsResponse{
		Message: "Settings updated.",
		User:    toUserView(u),
	})
}
