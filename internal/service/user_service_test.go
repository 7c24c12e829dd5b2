package service

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-metaverse-api/internal/model"
	"go-metaverse-api/internal/repository"
	"go-metaverse-api/pkg/apierror"
)

func seedUser(t *testing.T, users *repository.MemoryUserRepository, username string) string {
	t.Helper()

	account := model.Account{
		ID:           "id-" + username,
		Username:     username,
		PasswordHash: "hash",
		Role:         model.RoleUser,
		CreatedAt:    time.Now().UTC(),
		UpdatedAt:    time.Now().UTC(),
	}
	require.NoError(t, users.Create(context.Background(), account))
	return account.ID
}

func TestUserService_UpdateMetadata(t *testing.T) {
	users := repository.NewMemoryUserRepository()
	avatars := repository.NewMemoryAvatarRepository()
	svc := NewUserService(users, avatars)

	userID := seedUser(t, users, "alice")
	require.NoError(t, avatars.Create(context.Background(), model.Avatar{ID: "avatar-1", Name: "Timmy", ImageURL: "https://example.com/timmy.png"}))

	err := svc.UpdateMetadata(context.Background(), userID, "avatar-1")
	require.NoError(t, err)

	stored, err := users.FindByID(context.Background(), userID)
	require.NoError(t, err)
	require.NotNil(t, stored.AvatarID)
	assert.Equal(t, "avatar-1", *stored.AvatarID)
}

func TestUserService_UpdateMetadataUnknownAvatar(t *testing.T) {
	users := repository.NewMemoryUserRepository()
	avatars := repository.NewMemoryAvatarRepository()
	svc := NewUserService(users, avatars)

	userID := seedUser(t, users, "alice")

	err := svc.UpdateMetadata(context.Background(), userID, "999")
	assert.ErrorIs(t, err, model.ErrAvatarNotFound)

	stored, err := users.FindByID(context.Background(), userID)
	require.NoError(t, err)
	assert.Nil(t, stored.AvatarID)
}

func TestUserService_UpdateMetadataEmptyAvatarID(t *testing.T) {
	svc := NewUserService(repository.NewMemoryUserRepository(), repository.NewMemoryAvatarRepository())

	err := svc.UpdateMetadata(context.Background(), "whoever", "  ")
	require.Error(t, err)

	var apiErr *apierror.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.HTTPStatus)
}

func TestUserService_BulkMetadataOmitsUnknownIDs(t *testing.T) {
	users := repository.NewMemoryUserRepository()
	avatars := repository.NewMemoryAvatarRepository()
	svc := NewUserService(users, avatars)

	aliceID := seedUser(t, users, "alice")
	bobID := seedUser(t, users, "bob")

	result, err := svc.BulkMetadata(context.Background(), []string{aliceID, "missing", bobID})
	require.NoError(t, err)
	require.Len(t, result, 2)
	assert.Equal(t, aliceID, result[0].UserID)
	assert.Equal(t, bobID, result[1].UserID)
}

func TestUserService_BulkMetadataEmptyInput(t *testing.T) {
	svc := NewUserService(repository.NewMemoryUserRepository(), repository.NewMemoryAvatarRepository())

	result, err := svc.BulkMetadata(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, result)
}
