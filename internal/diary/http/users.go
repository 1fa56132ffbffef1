package http

import (
	"net/http"

	"github.com/mydayhq/myday/internal/diary/service"
	"github.com/mydayhq/myday/pkg/httpx"
	"github.com/mydayhq/myday/pkg/slogx"
)

type UsersHandler struct {
	UserService *service.UserService
}

// ServeHTTP lists all registered accounts.
//
//	@Summary		List users
//	@Description	Returns every registered account, oldest first.
//	@Tags			Users
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		UserView
//	@Failure		401	{object}	apiError
//	@Router			/v1/all_users [get].
func (h *UsersHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	users, err := h.UserService.ListUsers(ctx)
	if err != nil {
		log.Error("failed to list users", "err", err)
		errServer.WriteError(w)
		return
	}

	out := make([]UserView, 0, len(users))
	for _, u := range users {
		out = append(out, toUserView(u))
	}

	httpx.WriteJSON(w, http.StatusOK, out)
}
