package http

import (
	"net/http"

	"github.com/mydayhq/myday/pkg/httpx"
)

type verifyTokenResponse struct {
	Valid    bool   `json:"valid"`
	UserID   string `json:"user_id"`
	Username string `json:"username"`
}

// VerifyTokenHandler confirms the bearer token is valid. The heavy lifting
// happens in AuthnMiddleware; reaching this handler means the token passed.
//
//	@Summary		Verify access token
//	@Description	Returns valid:true with the token's subject when the bearer token verifies.
//	@Tags			Users
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	verifyTokenResponse
//	@Failure		401	{object}	apiError	"Missing, malformed or expired token"
//	@Router			/v1/verify_token [get].
func VerifyTokenHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		httpx.WriteJSON(w, http.StatusOK, verifyTokenResponse{
			Valid:    true,
			UserID:   httpx.UserIDFromCtx(ctx),
			Username: httpx.UsernameFromCtx(ctx),
		})
	}
}
