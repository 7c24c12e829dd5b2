package service

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"go-metaverse-api/internal/model"
	"go-metaverse-api/pkg/apierror"
)

type avatarStore interface {
	Create(ctx context.Context, a model.Avatar) error
	List(ctx context.Context) ([]model.Avatar, error)
}

type AvatarService struct {
	avatars avatarStore
}

func NewAvatarService(avatars avatarStore) *AvatarService {
	return &AvatarService{avatars: avatars}
}

func (s *AvatarService) Create(ctx context.Context, name string, imageURL string) (string, error) {
	name = strings.TrimSpace(name)
	imageURL = strings.TrimSpace(imageURL)

	if name == "" || imageURL == "" {
		return "", apierror.New("name and imageUrl are required", "", http.StatusBadRequest)
	}

	avatar := model.Avatar{
		ID:        uuid.NewString(),
		Name:      name,
		ImageURL:  imageURL,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.avatars.Create(ctx, avatar); err != nil {
		return "", err
	}

	return avatar.ID, nil
}

func (s *AvatarService) List(ctx context.Context) ([]model.Avatar, error) {
	return s.avatars.List(ctx)
}
