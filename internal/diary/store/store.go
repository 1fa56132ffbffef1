package store

import (
	"context"
	"errors"
	"time"

	"github.com/mydayhq/myday/internal/diary/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite for now)
// implement this. It exposes sub-repositories to keep concerns tidy and
// testable.
type Store interface {
	Users() Users
	Diaries() Diaries
	Todos() Todos
	RefreshTokens() RefreshTokens

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// Use it for multi-step operations that must be atomic (e.g., settings
	// update plus token revocation). The caller MUST call Commit() or
	// Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes a function within a transaction.
	// If fn returns an error, the transaction is rolled back.
	// If fn returns nil, the transaction is committed.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	// GetUserByID returns a user by id.
	GetUserByID(ctx context.Context, id string) (domain.User, error)

	// GetUserByEmail is used during login (email is the login key).
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)

	// GetUserByUsername is used for settings collision checks.
	GetUserByUsername(ctx context.Context, username string) (domain.User, error)

	// CreateUser inserts a new user (id is provided by app via ULID).
	// Returns ErrAlreadyExists when the email or username is taken.
	CreateUser(ctx context.Context, u domain.User) error

	// UpdateUsername mutates the username and bumps updated_at.
	// Returns ErrAlreadyExists on a username collision.
	UpdateUsername(ctx context.Context, userID string, username string) error

	// UpdatePasswordHash sets the password_hash (argon2) and bumps updated_at.
	UpdatePasswordHash(ctx context.Context, userID string, newHash string) error

	// UpdateTwoFA flips the two-factor flag.
	UpdateTwoFA(ctx context.Context, userID string, enabled bool) error

	// ListUsers returns all users ordered by creation date (oldest first).
	ListUsers(ctx context.Context) ([]domain.User, error)
}

type Diaries interface {
	// CreateDiary inserts a new entry. Returns ErrAlreadyExists when an
	// entry already exists for (user, pub date).
	CreateDiary(ctx context.Context, d domain.Diary) error

	// GetDiaryByID returns a diary by id.
	GetDiaryByID(ctx context.Context, id string) (domain.Diary, error)

	// GetDiaryByUserAndDate returns the one entry for a (user, date) pair.
	GetDiaryByUserAndDate(ctx context.Context, userID, pubDate string) (domain.Diary, error)

	// ListDiariesByUser returns all entries for a user, newest date first.
	ListDiariesByUser(ctx context.Context, userID string) ([]domain.Diary, error)
}

type Todos interface {
	// CreateTodo inserts a new todo record.
	CreateTodo(ctx context.Context, t domain.Todo) error

	// GetTodoByIDAndUser fetches a todo only when owned by the given user.
	GetTodoByIDAndUser(ctx context.Context, id, userID string) (domain.Todo, error)

	// ListTodosByUser returns the user's todos ordered by start time
	// descending.
	ListTodosByUser(ctx context.Context, userID string) ([]domain.Todo, error)

	// ListTodosByUserBetween restricts the listing to todos whose start time
	// is within [from, to), same descending order.
	ListTodosByUserBetween(ctx context.Context, userID string, from, to time.Time) ([]domain.Todo, error)

	// UpdateTodoStatus sets the status and bumps updated_at; ErrNotFound if
	// the todo does not exist or is not owned by the user.
	UpdateTodoStatus(ctx context.Context, id, userID string, status domain.TodoStatus) error

	// DeleteTodo removes the todo; ErrNotFound if not owned by the user.
	DeleteTodo(ctx context.Context, id, userID string) error
}

type RefreshTokens interface {
	// CreateRefreshToken stores a new refresh token record.
	CreateRefreshToken(ctx context.Context, t domain.RefreshToken) error

	// GetRefreshTokenByHash returns the token by its hashed value.
	GetRefreshTokenByHash(ctx context.Context, hash string) (domain.RefreshToken, error)

	// RevokeRefreshToken flips revoked=1, sets updated_at.
	RevokeRefreshToken(ctx context.Context, hash string) error

	// RevokeAllUserRefreshTokens bulk revocation for a user (password change).
	RevokeAllUserRefreshTokens(ctx context.Context, userID string) error

	// DeleteExpiredRefreshTokens is optional housekeeping.
	DeleteExpiredRefreshTokens(ctx context.Context) error
}
