package service

import "errors"

var (
	ErrEmailTaken         = errors.New("email_taken")
	ErrUsernameTaken      = errors.New("username_taken")
	ErrUserNotFound       = errors.New("user_not_found")
	ErrInvalidCredentials = errors.New("invalid_credentials")
	ErrCurrentPassword    = errors.New("current_password_incorrect")
	ErrInvalidRefresh     = errors.New("invalid_refresh_token")
	ErrDiaryNotFound      = errors.New("diary_not_found")
	ErrDiaryExists        = errors.New("diary_exists")
	ErrTodoNotFound       = errors.New("todo_not_found")
)

// ValidationError carries a request-level validation message that is safe to
// surface to the client verbatim.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// Validation builds a *ValidationError with the given message.
func Validation(msg string) error {
	return &ValidationError{Message: msg}
}
