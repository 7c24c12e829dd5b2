package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-metaverse-api/internal/model"
	"go-metaverse-api/internal/repository"
	"go-metaverse-api/pkg/apierror"
)

func TestSpaceService_CreateAndGet(t *testing.T) {
	svc := NewSpaceService(repository.NewMemorySpaceRepository())

	spaceID, err := svc.Create(context.Background(), "owner-1", "Lobby", "100x200")
	require.NoError(t, err)
	require.NotEmpty(t, spaceID)

	space, err := svc.Get(context.Background(), spaceID)
	require.NoError(t, err)
	assert.Equal(t, "Lobby", space.Name)
	assert.Equal(t, 100, space.Width)
	assert.Equal(t, 200, space.Height)
	assert.Equal(t, "owner-1", space.OwnerID)
	assert.Equal(t, "100x200", space.Dimensions())
}

func TestSpaceService_CreateValidation(t *testing.T) {
	svc := NewSpaceService(repository.NewMemorySpaceRepository())

	cases := []struct {
		name       string
		spaceName  string
		dimensions string
	}{
		{"empty name", "", "100x200"},
		{"missing separator", "Lobby", "100200"},
		{"non-numeric width", "Lobby", "abcx200"},
		{"zero height", "Lobby", "100x0"},
		{"negative width", "Lobby", "-5x10"},
		{"empty dimensions", "Lobby", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), "owner-1", tc.spaceName, tc.dimensions)
			require.Error(t, err)

			var apiErr *apierror.APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, http.StatusBadRequest, apiErr.HTTPStatus)
		})
	}
}

func TestSpaceService_ListOwnFiltersByOwner(t *testing.T) {
	svc := NewSpaceService(repository.NewMemorySpaceRepository())

	_, err := svc.Create(context.Background(), "owner-1", "Lobby", "10x10")
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), "owner-2", "Office", "20x20")
	require.NoError(t, err)

	spaces, err := svc.ListOwn(context.Background(), "owner-1")
	require.NoError(t, err)
	require.Len(t, spaces, 1)
	assert.Equal(t, "Lobby", spaces[0].Name)
}

func TestSpaceService_DeleteOwnerOnly(t *testing.T) {
	svc := NewSpaceService(repository.NewMemorySpaceRepository())

	spaceID, err := svc.Create(context.Background(), "owner-1", "Lobby", "10x10")
	require.NoError(t, err)

	err = svc.Delete(context.Background(), "intruder", spaceID)
	assert.ErrorIs(t, err, model.ErrForbidden)

	require.NoError(t, svc.Delete(context.Background(), "owner-1", spaceID))

	_, err = svc.Get(context.Background(), spaceID)
	assert.ErrorIs(t, err, model.ErrSpaceNotFound)
}

func TestSpaceService_DeleteUnknownSpace(t *testing.T) {
	svc := NewSpaceService(repository.NewMemorySpaceRepository())

	err := svc.Delete(context.Background(), "owner-1", "missing")
	assert.ErrorIs(t, err, model.ErrSpaceNotFound)
}
