package http

import (
	"net/http"
	"strings"

	"github.com/mydayhq/myday/internal/diary/service"
	"github.com/mydayhq/myday/pkg/httpx"
	"github.com/mydayhq/myday/pkg/slogx"
)

type RefreshHandler struct {
	TokenService *service.TokenService
}

type refreshRequest struct {
	Refresh string `json:"refresh"`
}

// ServeHTTP exchanges a refresh token for a new pair. The presented token is
// revoked as part of the exchange.
//
//	@Summary		Refresh tokens
//	@Description	Rotates a valid refresh token into a new access/refresh pair.
//	@Tags			Users
//	@Accept			json
//	@Produce		json
//	@Param			body	body		refreshRequest	true	"Refresh token"
//	@Success		200		{object}	TokenView
//	@Failure		401		{object}	apiError	"Invalid, expired or revoked refresh token"
//	@Router			/v1/refresh [post].
func (h *RefreshHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req refreshRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		errBadBody.WriteError(w)
		return
	}

	if strings.TrimSpace(req.Refresh) == "" {
		(&apiError{http.StatusUnauthorized, "invalid_token", "Invalid or expired refresh token."}).WriteError(w)
		return
	}

	pair, err := h.TokenService.Refresh(ctx, req.Refresh)
	if err != nil {
		writeServiceError(w, log, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toTokenView(pair))
}
