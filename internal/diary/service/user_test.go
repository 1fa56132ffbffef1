package service

import (
	"context"
	"strings"
	"testing"

	"github.com/mydayhq/myday/internal/diary/store"
	"github.com/mydayhq/myday/internal/diary/store/drivers/sqlite"
	"github.com/mydayhq/myday/pkg/cryptox"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) store.Store {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	require.NoError(t, st.ApplyMigrations())
	return st
}

func TestRegister(t *testing.T) {
	ctx := context.Background()
	svc := &UserService{Store: newTestStore(t)}

	t.Run("creates a user with hashed password", func(t *testing.T) {
		u, err := svc.Register(ctx, "alice@example.com", "alice", "password123")
		require.NoError(t, err)
		require.NotEmpty(t, u.ID)
		require.Equal(t, "alice@example.com", u.Email)
		require.Equal(t, "alice", u.Username)
		require.NotEqual(t, "password123", u.PasswordHash)
		require.True(t, strings.HasPrefix(u.PasswordHash, "$argon2id$"))
		require.NoError(t, cryptox.VerifyPassword("password123", u.PasswordHash))
		require.True(t, u.TwoFA)
	})

	t.Run("rejects missing fields", func(t *testing.T) {
		_, err := svc.Register(ctx, "", "bob", "password123")
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)

		_, err = svc.Register(ctx, "bob@example.com", "", "password123")
		require.ErrorAs(t, err, &verr)

		_, err = svc.Register(ctx, "bob@example.com", "bob", "")
		require.ErrorAs(t, err, &verr)
	})

	t.Run("rejects short password", func(t *testing.T) {
		_, err := svc.Register(ctx, "bob@example.com", "bob", "short")
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
	})

	t.Run("reports email conflict before username conflict", func(t *testing.T) {
		// Both collide with alice; email wins.
		_, err := svc.Register(ctx, "alice@example.com", "alice", "password123")
		require.ErrorIs(t, err, ErrEmailTaken)
	})

	t.Run("reports username conflict", func(t *testing.T) {
		_, err := svc.Register(ctx, "alice2@example.com", "alice", "password123")
		require.ErrorIs(t, err, ErrUsernameTaken)
	})
}

func TestAuthenticate(t *testing.T) {
	ctx := context.Background()
	svc := &UserService{Store: newTestStore(t)}

	u, err := svc.Register(ctx, "carol@example.com", "carol", "password123")
	require.NoError(t, err)

	t.Run("succeeds with correct credentials", func(t *testing.T) {
		got, err := svc.Authenticate(ctx, "carol@example.com", "password123")
		require.NoError(t, err)
		require.Equal(t, u.ID, got.ID)
	})

	t.Run("unknown email reports user not found", func(t *testing.T) {
		_, err := svc.Authenticate(ctx, "nobody@example.com", "password123")
		require.ErrorIs(t, err, ErrUserNotFound)
	})

	t.Run("wrong password reports invalid credentials", func(t *testing.T) {
		_, err := svc.Authenticate(ctx, "carol@example.com", "wrongwrong")
		require.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestUpdateSettings(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := &UserService{Store: st}

	u, err := svc.Register(ctx, "dave@example.com", "dave", "password123")
	require.NoError(t, err)

	strPtr := func(s string) *string { return &s }
	boolPtr := func(b bool) *bool { return &b }

	t.Run("requires current password", func(t *testing.T) {
		_, err := svc.UpdateSettings(ctx, u.ID, UpdateSettingsParams{})
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
	})

	t.Run("rejects wrong current password", func(t *testing.T) {
		_, err := svc.UpdateSettings(ctx, u.ID, UpdateSettingsParams{
			CurrentPassword: "wrongwrong",
			Username:        strPtr("dave2"),
		})
		require.ErrorIs(t, err, ErrCurrentPassword)
	})

	t.Run("changes username", func(t *testing.T) {
		got, err := svc.UpdateSettings(ctx, u.ID, UpdateSettingsParams{
			CurrentPassword: "password123",
			Username:        strPtr("dave2"),
		})
		require.NoError(t, err)
		require.Equal(t, "dave2", got.Username)
	})

	t.Run("keeping the same username is not a conflict", func(t *testing.T) {
		got, err := svc.UpdateSettings(ctx, u.ID, UpdateSettingsParams{
			CurrentPassword: "password123",
			Username:        strPtr("dave2"),
		})
		require.NoError(t, err)
		require.Equal(t, "dave2", got.Username)
	})

	t.Run("rejects a username taken by someone else", func(t *testing.T) {
		_, err := svc.Register(ctx, "erin@example.com", "erin", "password123")
		require.NoError(t, err)

		_, err = svc.UpdateSettings(ctx, u.ID, UpdateSettingsParams{
			CurrentPassword: "password123",
			Username:        strPtr("erin"),
		})
		require.ErrorIs(t, err, ErrUsernameTaken)
	})

	t.Run("flips two_fa", func(t *testing.T) {
		got, err := svc.UpdateSettings(ctx, u.ID, UpdateSettingsParams{
			CurrentPassword: "password123",
			TwoFA:           boolPtr(false),
		})
		require.NoError(t, err)
		require.False(t, got.TwoFA)
	})

	t.Run("password change revokes refresh tokens", func(t *testing.T) {
		tokens := newTestTokenService(t, st)
		pair, err := tokens.IssueTokens(ctx, u)
		require.NoError(t, err)

		_, err = svc.UpdateSettings(ctx, u.ID, UpdateSettingsParams{
			CurrentPassword: "password123",
			NewPassword:     strPtr("newpassword123"),
		})
		require.NoError(t, err)

		// Old refresh token no longer works.
		_, err = tokens.Refresh(ctx, pair.RefreshToken)
		require.ErrorIs(t, err, ErrInvalidRefresh)

		// New password works, old does not.
		_, err = svc.Authenticate(ctx, "dave@example.com", "newpassword123")
		require.NoError(t, err)
		_, err = svc.Authenticate(ctx, "dave@example.com", "password123")
		require.ErrorIs(t, err, ErrInvalidCredentials)
	})
}
