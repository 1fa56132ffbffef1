package http

import (
	"net/http"

	"github.com/mydayhq/myday/internal/diary/service"
	"github.com/mydayhq/myday/pkg/httpx"
	"github.com/mydayhq/myday/pkg/slogx"
)

type RegisterHandler struct {
	UserService *service.UserService
}

type registerRequest struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
}

type registerResponse struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Username string `json:"username"`
}

// ServeHTTP handles account registration.
//
//	@Summary		Register a new account
//	@Description	Creates a user from email, username and password. The password must be at least 8 characters.
//	@Tags			Users
//	@Accept			json
//	@Produce		json
//	@Param			body	body		registerRequest	true	"Registration fields"
//	@Success		201		{object}	registerResponse
//	@Failure		400		{object}	apiError	"Missing field, short password, or email/username already in use"
//	@Router			/v1/register [post].
func (h *RegisterHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req registerRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		errBadBody.WriteError(w)
		return
	}

	u, err := h.UserService.Register(ctx, req.Email, req.Username, req.Password)
	if err != nil {
		writeServiceError(w, log, err)
		return
	}

	log.Info("user registered", "user_id", u.ID)

	httpx.WriteJSON(w, http.StatusCreated, registerResponse{
		ID:       u.ID,
		Email:    u.Email,
		Username: u.Username,
	})
}
