package http

import (
	"net/http"

	"github.com/mydayhq/myday/internal/diary/service"
	"github.com/mydayhq/myday/pkg/httpx"
	"github.com/mydayhq/myday/pkg/slogx"
)

type LoginHandler struct {
	UserService  *service.UserService
	TokenService *service.TokenService
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ServeHTTP handles email/password login.
//
//	@Summary		Log in
//	@Description	Verifies credentials and returns an access/refresh token pair.
//	@Tags			Users
//	@Accept			json
//	@Produce		json
//	@Param			body	body		loginRequest	true	"Login credentials"
//	@Success		200		{object}	TokenView
//	@Failure		400		{object}	apiError	"Missing email or password"
//	@Failure		401		{object}	apiError	"Wrong password"
//	@Failure		404		{object}	apiError	"Unknown email"
//	@Router			/v1/login [post].
func (h *LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req loginRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		errBadBody.WriteError(w)
		return
	}

	u, err := h.UserService.Authenticate(ctx, req.Email, req.Password)
	if err != nil {
		writeServiceError(w, log, err)
		return
	}

	pair, err := h.TokenService.IssueTokens(ctx, u)
	if err != nil {
		log.Error("failed to issue tokens", "user_id", u.ID, "err", err)
		errServer.WriteError(w)
		return
	}

	log.Info("user logged in", "user_id", u.ID)

	httpx.WriteJSON(w, http.StatusOK, toTokenView(pair))
}
