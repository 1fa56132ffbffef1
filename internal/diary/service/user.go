package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/mydayhq/myday/internal/diary/domain"
	"github.com/mydayhq/myday/internal/diary/store"
	"github.com/mydayhq/myday/pkg/cryptox"
	"github.com/mydayhq/myday/pkg/idx"
	"github.com/mydayhq/myday/pkg/slogx"
)

const minPasswordLength = 8

type UserService struct {
	Store store.Store
}

// Register creates a new account. The email conflict is reported before the
// username conflict when both collide.
func (s *UserService) Register(ctx context.Context, email, username, password string) (domain.User, error) {
	email = strings.TrimSpace(email)
	username = strings.TrimSpace(username)

	if email == "" || username == "" || password == "" {
		return domain.User{}, Validation("Email, username and password are required.")
	}
	if len(password) < minPasswordLength {
		return domain.User{}, Validation("Password must be at least 8 characters.")
	}

	if _, err := s.Store.Users().GetUserByEmail(ctx, email); err == nil {
		return domain.User{}, ErrEmailTaken
	} else if !errors.Is(err, store.ErrNotFound) {
		return domain.User{}, err
	}

	if _, err := s.Store.Users().GetUserByUsername(ctx, username); err == nil {
		return domain.User{}, ErrUsernameTaken
	} else if !errors.Is(err, store.ErrNotFound) {
		return domain.User{}, err
	}

	hash, err := cryptox.HashPassword(password)
	if err != nil {
		return domain.User{}, err
	}

	now := time.Now().UTC()
	u := domain.User{
		ID:           idx.New().String(),
		Email:        email,
		Username:     username,
		PasswordHash: hash,
		TwoFA:        true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.Store.Users().CreateUser(ctx, u); err != nil {
		// A concurrent register can still hit the DB unique constraint.
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.User{}, ErrEmailTaken
		}
		return domain.User{}, err
	}

	return u, nil
}

// Authenticate verifies an email/password pair and returns the account.
func (s *UserService) Authenticate(ctx context.Context, email, password string) (domain.User, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return domain.User{}, Validation("Email and password are required.")
	}

	u, err := s.Store.Users().GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, ErrUserNotFound
		}
		return domain.User{}, err
	}

	if err := cryptox.VerifyPassword(password, u.PasswordHash); err != nil {
		return domain.User{}, ErrInvalidCredentials
	}

	return u, nil
}

// UpdateSettingsParams carries the optional settings changes. Nil pointers
// mean the field was not present in the request and stays untouched.
type UpdateSettingsParams struct {
	CurrentPassword string
	Username        *string
	NewPassword     *string
	TwoFA           *bool
}

// UpdateSettings applies account changes after re-verifying the current
// password. A password change revokes all of the user's refresh tokens.
func (s *UserService) UpdateSettings(ctx context.Context, userID string, p UpdateSettingsParams) (domain.User, error) {
	log := slogx.FromContext(ctx)

	if p.CurrentPassword == "" {
		return domain.User{}, Validation("Current password is required.")
	}

	u, err := s.Store.Users().GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, ErrUserNotFound
		}
		return domain.User{}, err
	}

	if err := cryptox.VerifyPassword(p.CurrentPassword, u.PasswordHash); err != nil {
		return domain.User{}, ErrCurrentPassword
	}

	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if p.Username != nil {
			name := strings.TrimSpace(*p.Username)
			if name == "" {
				return Validation("Username must not be empty.")
			}
			if name != u.Username {
				if other, err := tx.Users().GetUserByUsername(ctx, name); err == nil && other.ID != u.ID {
					return ErrUsernameTaken
				} else if err != nil && !errors.Is(err, store.ErrNotFound) {
					return err
				}
				if err := tx.Users().UpdateUsername(ctx, u.ID, name); err != nil {
					if errors.Is(err, store.ErrAlreadyExists) {
						return ErrUsernameTaken
					}
					return err
				}
				u.Username = name
			}
		}

		if p.NewPassword != nil {
			if len(*p.NewPassword) < minPasswordLength {
				return Validation("Password must be at least 8 characters.")
			}
			hash, err := cryptox.HashPassword(*p.NewPassword)
			if err != nil {
				return err
			}
			if err := tx.Users().UpdatePasswordHash(ctx, u.ID, hash); err != nil {
				return err
			}
			// Outstanding sessions must re-authenticate after a password change.
			if err := tx.RefreshTokens().RevokeAllUserRefreshTokens(ctx, u.ID); err != nil {
				return err
			}
			u.PasswordHash = hash
			log.Info("password changed, refresh tokens revoked", "user_id", u.ID)
		}

		if p.TwoFA != nil {
			if err := tx.Users().UpdateTwoFA(ctx, u.ID, *p.TwoFA); err != nil {
				return err
			}
			u.TwoFA = *p.TwoFA
		}

		return nil
	})
	if err != nil {
		return domain.User{}, err
	}

	return u, nil
}

// GetUserByID fetches a user by id.
func (s *UserService) GetUserByID(ctx context.Context, userID string) (domain.User, error) {
	u, err := s.Store.Users().GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, ErrUserNotFound
		}
		return domain.User{}, err
	}
	return u, nil
}

// ListUsers returns all accounts ordered by creation time.
func (s *UserService) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.Store.Users().ListUsers(ctx)
}
