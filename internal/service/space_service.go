package service

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"go-metaverse-api/internal/model"
	"go-metaverse-api/pkg/apierror"
)

type spaceStore interface {
	Create(ctx context.Context, s model.Space) error
	FindByID(ctx context.Context, id string) (model.Space, error)
	ListByOwner(ctx context.Context, ownerID string) ([]model.Space, error)
	Delete(ctx context.Context, id string) error
}

type SpaceService struct {
	spaces spaceStore
}

func NewSpaceService(spaces spaceStore) *SpaceService {
	return &SpaceService{spaces: spaces}
}

func (s *SpaceService) Create(ctx context.Context, ownerID string, name string, dimensions string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", apierror.New("name is required", "", http.StatusBadRequest)
	}

	width, height, err := parseDimensions(dimensions)
	if err != nil {
		return "", err
	}

	space := model.Space{
		ID:        uuid.NewString(),
		Name:      name,
		Width:     width,
		Height:    height,
		OwnerID:   ownerID,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.spaces.Create(ctx, space); err != nil {
		return "", err
	}

	return space.ID, nil
}

func (s *SpaceService) Get(ctx context.Context, id string) (model.Space, error) {
	return s.spaces.FindByID(ctx, id)
}

func (s *SpaceService) ListOwn(ctx context.Context, ownerID string) ([]model.Space, error) {
	return s.spaces.ListByOwner(ctx, ownerID)
}

// Delete removes a space. Only the owner may delete it; anyone else
// holding a valid token gets ErrForbidden.
func (s *SpaceService) Delete(ctx context.Context, requesterID string, id string) error {
	space, err := s.spaces.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if space.OwnerID != requesterID {
		return model.ErrForbidden
	}

	return s.spaces.Delete(ctx, id)
}

// parseDimensions accepts the "WIDTHxHEIGHT" wire form, e.g. "100x200".
func parseDimensions(raw string) (int, int, error) {
	left, right, found := strings.Cut(strings.TrimSpace(raw), "x")
	if !found {
		return 0, 0, apierror.New("dimensions must be WIDTHxHEIGHT", raw, http.StatusBadRequest)
	}

	width, err := strconv.Atoi(left)
	if err != nil || width <= 0 {
		return 0, 0, apierror.New("dimensions must be WIDTHxHEIGHT", raw, http.StatusBadRequest)
	}

	height, err := strconv.Atoi(right)
	if err != nil || height <= 0 {
		return 0, 0, apierror.New("dimensions must be WIDTHxHEIGHT", raw, http.StatusBadRequest)
	}

	return width, height, nil
}
