package http

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/mydayhq/myday/internal/diary/service"
	"github.com/mydayhq/myday/pkg/httpx"
)

// apiError is the structured error body every failing endpoint returns.
type apiError struct {
	// StatusCode is the HTTP status code for this error
	StatusCode int `json:"-"`

	// Code is a stable machine-readable error code
	Code string `json:"error"`

	// Message is a human-readable description safe to show to users
	Message string `json:"message"`
}

// Error implements the error interface.
func (e *apiError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// WriteError writes this apiError to an HTTP response writer.
func (e *apiError) WriteError(w http.ResponseWriter) {
	httpx.WriteJSON(w, e.StatusCode, map[string]string{
		"error":   e.Code,
		"message": e.Message,
	})
}

var (
	errServer = &apiError{
		StatusCode: http.StatusInternalServerError,
		Code:       "server_error",
		Message:    "An internal error occurred.",
	}
	errBadBody = &apiError{
		StatusCode: http.StatusBadRequest,
		Code:       "invalid_request",
		Message:    "Request body must be valid JSON.",
	}
	errUnauthorized = &apiError{
		StatusCode: http.StatusUnauthorized,
		Code:       "invalid_token",
		Message:    "Authentication required.",
	}
)

// writeServiceError maps service-layer errors onto the wire format. Unknown
// errors are logged and surfaced as a 500.
func writeServiceError(w http.ResponseWriter, log *slog.Logger, err error) {
	var verr *service.ValidationError
	if errors.As(err, &verr) {
		(&apiError{http.StatusBadRequest, "invalid_request", verr.Message}).WriteError(w)
		return
	}

	switch {
	case errors.Is(err, service.ErrEmailTaken):
		(&apiError{http.StatusBadRequest, "conflict", "Email is already in use."}).WriteError(w)
	case errors.Is(err, service.ErrUsernameTaken):
		(&apiError{http.StatusBadRequest, "conflict", "Username is already in use."}).WriteError(w)
	case errors.Is(err, service.ErrDiaryExists):
		(&apiError{http.StatusBadRequest, "conflict", "A diary entry already exists for today."}).WriteError(w)
	case errors.Is(err, service.ErrUserNotFound):
		(&apiError{http.StatusNotFound, "not_found", "User not found."}).WriteError(w)
	case errors.Is(err, service.ErrDiaryNotFound):
		(&apiError{http.StatusNotFound, "not_found", "Diary not found."}).WriteError(w)
	case errors.Is(err, service.ErrTodoNotFound):
		(&apiError{http.StatusNotFound, "not_found", "Todo not found."}).WriteError(w)
	case errors.Is(err, service.ErrInvalidCredentials):
		(&apiError{http.StatusUnauthorized, "invalid_credentials", "Invalid credentials."}).WriteError(w)
	case errors.Is(err, service.ErrCurrentPassword):
		(&apiError{http.StatusUnauthorized, "invalid_credentials", "Current password is incorrect."}).WriteError(w)
	case errors.Is(err, service.ErrInvalidRefresh):
		(&apiError{http.StatusUnauthorized, "invalid_token", "Invalid or expired refresh token."}).WriteError(w)
	default:
		log.Error("unhandled service error", "err", err)
		errServer.WriteError(w)
	}
}
