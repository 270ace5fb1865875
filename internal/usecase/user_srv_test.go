package usecase

import (
	"context"
	"testing"

	"telegram-auth/internal/data/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestUserService(t *testing.T) (UserService, *repository.Repository) {
	t.Helper()
	repo := repository.NewMemoryRepository()
	return NewUserService(repo.User, zap.NewNop()), repo
}

func TestSetProfile_CreatesUser(t *testing.T) {
	svc, repo := newTestUserService(t)
	ctx := context.Background()

	user, err := svc.SetProfile(ctx, "12345", "alice", "password123")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "alice", user.Name)
	assert.Equal(t, "12345", user.TelegramID)
	assert.NotEmpty(t, user.ID)
	assert.False(t, user.CreatedAt.IsZero())

	// password is hashed, never stored in plaintext
	stored, err := repo.User.FindByName(ctx, "alice")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.NotEqual(t, "password123", stored.PasswordHash)
	assert.NotEmpty(t, stored.PasswordHash)
}

func TestSetProfile_ShortPasswordRejected(t *testing.T) {
	svc, repo := newTestUserService(t)
	ctx := context.Background()

	user, err := svc.SetProfile(ctx, "12345", "alice", "short")
	assert.ErrorIs(t, err, ErrPasswordTooShort)
	assert.Nil(t, user)

	// no record was written
	stored, err := repo.User.FindByName(ctx, "alice")
	require.NoError(t, err)
	assert.Nil(t, stored)
}

func TestSetProfile_UpdatesExistingProfile(t *testing.T) {
	svc, _ := newTestUserService(t)
	ctx := context.Background()

	created, err := svc.SetProfile(ctx, "12345", "alice", "password123")
	require.NoError(t, err)

	updated, err := svc.SetProfile(ctx, "12345", "alice2", "newpassword")
	require.NoError(t, err)

	// same record: id and created_at survive the update
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
	assert.Equal(t, "alice2", updated.Name)

	// old name is free again, new password is the one that works
	free, err := svc.CheckName(ctx, "alice")
	require.NoError(t, err)
	assert.True(t, free)

	_, err = svc.Login(ctx, "alice2", "newpassword")
	assert.NoError(t, err)
	_, err = svc.Login(ctx, "alice2", "password123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestSetProfile_NameTakenByOtherIdentity(t *testing.T) {
	svc, _ := newTestUserService(t)
	ctx := context.Background()

	_, err := svc.SetProfile(ctx, "12345", "alice", "password123")
	require.NoError(t, err)

	user, err := svc.SetProfile(ctx, "67890", "alice", "password456")
	assert.ErrorIs(t, err, ErrNameTaken)
	assert.Nil(t, user)
}

func TestSetProfile_SameIdentityMayKeepOwnName(t *testing.T) {
	svc, _ := newTestUserService(t)
	ctx := context.Background()

	_, err := svc.SetProfile(ctx, "12345", "alice", "password123")
	require.NoError(t, err)

	// re-setting the profile with the same name only rotates the password
	user, err := svc.SetProfile(ctx, "12345", "alice", "otherpassword")
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Name)
}

func TestCheckName(t *testing.T) {
	svc, _ := newTestUserService(t)
	ctx := context.Background()

	free, err := svc.CheckName(ctx, "alice")
	require.NoError(t, err)
	assert.True(t, free)

	_, err = svc.SetProfile(ctx, "12345", "alice", "password123")
	require.NoError(t, err)

	free, err = svc.CheckName(ctx, "alice")
	require.NoError(t, err)
	assert.False(t, free)
}

func TestLogin(t *testing.T) {
	svc, _ := newTestUserService(t)
	ctx := context.Background()

	_, err := svc.SetProfile(ctx, "12345", "alice", "password123")
	require.NoError(t, err)

	user, err := svc.Login(ctx, "alice", "password123")
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Name)
	assert.Equal(t, "12345", user.TelegramID)

	_, err = svc.Login(ctx, "alice", "wrongpassword")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(ctx, "bob", "password123")
	assert.ErrorIs(t, err, ErrUserNotFound)
}
