package service

import (
	"context"
	"net/http"
	"strings"

	"go-metaverse-api/internal/model"
	"go-metaverse-api/pkg/apierror"
)

type userMetadataStore interface {
	UpdateAvatar(ctx context.Context, userID string, avatarID string) error
	ListByIDs(ctx context.Context, ids []string) ([]model.UserAvatar, error)
}

type avatarChecker interface {
	Exists(ctx context.Context, id string) (bool, error)
}

type UserService struct {
	users   userMetadataStore
	avatars avatarChecker
}

func NewUserService(users userMetadataStore, avatars avatarChecker) *UserService {
	return &UserService{users: users, avatars: avatars}
}

// UpdateMetadata points the account at an avatar. The avatar must exist
// in the catalog; a dangling id is a validation failure, not a 404.
func (s *UserService) UpdateMetadata(ctx context.Context, userID string, avatarID string) error {
	avatarID = strings.TrimSpace(avatarID)
	if avatarID == "" {
		return apierror.New("avatarId is required", "", http.StatusBadRequest)
	}

	exists, err := s.avatars.Exists(ctx, avatarID)
	if err != nil {
		return err
	}
	if !exists {
		return model.ErrAvatarNotFound
	}

	return s.users.UpdateAvatar(ctx, userID, avatarID)
}

// BulkMetadata resolves avatar associations for the given account ids.
// Unknown ids are dropped silently.
func (s *UserService) BulkMetadata(ctx context.Context, ids []string) ([]model.UserAvatar, error) {
	if len(ids) == 0 {
		return []model.UserAvatar{}, nil
	}
	return s.users.ListByIDs(ctx, ids)
}
