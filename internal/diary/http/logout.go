package http

import (
	"net/http"
	"strings"

	"github.com/mydayhq/myday/internal/diary/service"
	"github.com/mydayhq/myday/pkg/httpx"
	"github.com/mydayhq/myday/pkg/slogx"
)

type LogoutHandler struct {
	TokenService *service.TokenService
}

type logoutRequest struct {
	Refresh string `json:"refresh"`
}

type logoutResponse struct {
	Message string `json:"message"`
}

// ServeHTTP revokes the presented refresh token, ending that session. The
// access token stays valid until it expires on its own.
//
//	@Summary		Log out
//	@Description	Revokes the presented refresh token so it can no longer be rotated.
//	@Tags			Users
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			body	body		logoutRequest	true	"Refresh token"
//	@Success		200		{object}	logoutResponse
//	@Failure		401		{object}	apiError	"Invalid, expired or revoked refresh token"
//	@Router			/v1/logout [post].
func (h *LogoutHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req logoutRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		errBadBody.WriteError(w)
		return
	}

	if strings.TrimSpace(req.Refresh) == "" {
		(&apiError{http.StatusUnauthorized, "invalid_token", "Invalid or expired refresh token."}).WriteError(w)
		return
	}

	if err := h.TokenService.Revoke(ctx, req.Refresh); err != nil {
		writeServiceError(w, log, err)
		return
	}

	log.Info("refresh token revoked", "user_id", httpx.UserIDFromCtx(ctx))

	httpx.WriteJSON(w, http.StatusOK, logoutResponse{Message: "Logged out."})
}
