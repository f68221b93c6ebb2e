package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kinematics-suite/backend/internal/domain/user"
)

func newTestAuthStore(t *testing.T) *AuthStore {
	t.Helper()
	s, err := NewAuthSQLite(filepath.Join(t.TempDir(), "auth.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestAuthStore_UserRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := newTestAuthStore(t)

	u, err := user.New("Ada", "Lovelace", "ada", user.RoleTeacher, "hash", time.Now())
	require.NoError(t, err)
	require.NoError(t, s.CreateUser(ctx, u))
	assert.NotZero(t, u.ID)

	got, err := s.GetUserByUsername(ctx, "ada")
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)
	assert.Equal(t, user.RoleTeacher, got.Role)
	assert.True(t, got.IsActive)
	assert.Nil(t, got.ImagePath)
	assert.WithinDuration(t, u.CreatedAt, got.CreatedAt, time.Microsecond)

	path := "/tmp/user_1.png"
	got.ImagePath = &path
	got.SetActive(false, time.Now())
	require.NoError(t, s.UpdateUser(ctx, got))

	again, err := s.GetUser(ctx, u.ID)
	require.NoError(t, err)
	assert.False(t, again.IsActive)
	require.NotNil(t, again.ImagePath)
	assert.Equal(t, path, *again.ImagePath)
}

func TestAuthStore_DuplicateUsername(t *testing.T) {
	ctx := context.Background()
	s := newTestAuthStore(t)

	first, _ := user.New("Ada", "", "ada", user.RoleStudent, "hash", time.Now())
	second, _ := user.New("Other", "", "ada", user.RoleStudent, "hash", time.Now())

	require.NoError(t, s.CreateUser(ctx, first))
	assert.ErrorIs(t, s.CreateUser(ctx, second), ErrConflict)
}

func TestAuthStore_NotFound(t *testing.T) {
	ctx := context.Background()
	s := newTestAuthStore(t)

	_, err := s.GetUser(ctx, 42)
	assert.ErrorIs(t, err, ErrNotFound)

	ghost := &user.User{ID: 42, UpdatedAt: time.Now()}
	assert.ErrorIs(t, s.UpdateUser(ctx, ghost), ErrNotFound)
	assert.ErrorIs(t, s.DeleteUser(ctx, 42), ErrNotFound)
}

func TestAuthStore_Tokens(t *testing.T) {
	ctx := context.Background()
	s := newTestAuthStore(t)
	now := time.Now()

	require.NoError(t, s.SaveToken(ctx, "old", "Bearer", now.Add(-10*24*time.Hour)))
	require.NoError(t, s.SaveToken(ctx, "fresh", "Bearer", now.Add(-time.Hour)))
	assert.ErrorIs(t, s.SaveToken(ctx, "fresh", "Bearer", now), ErrConflict)

	ok, err := s.TokenExists(ctx, "old")
	require.NoError(t, err)
	assert.True(t, ok)

	removed, err := s.DeleteTokensBefore(ctx, now.Add(-7*24*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, int64(1), removed)

	ok, err = s.TokenExists(ctx, "old")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = s.TokenExists(ctx, "fresh")
	require.NoError(t, err)
	assert.True(t, ok)
}
