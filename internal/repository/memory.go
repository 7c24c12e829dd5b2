package repository

import (
	"context"
	"strings"
	"sync"

	"go-metaverse-api/internal/model"
)

// In-memory repositories backing the test suite. They uphold the same
// contract as the Postgres ones; in particular MemoryUserRepository.Create
// is an atomic insert-if-absent, matching the unique index on
// lower(username).

type MemoryUserRepository struct {
	mu    sync.Mutex
	byKey map[string]model.Account
	byID  map[string]model.Account
}

func NewMemoryUserRepository() *MemoryUserRepository {
	return &MemoryUserRepository{
		byKey: map[string]model.Account{},
		byID:  map[string]model.Account{},
	}
}

func (r *MemoryUserRepository) Create(_ context.Context, u model.Account) error {
	key := strings.ToLower(u.Username)

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byKey[key]; exists {
		return model.ErrUserAlreadyExists
	}
	r.byKey[key] = u
	r.byID[u.ID] = u
	return nil
}

func (r *MemoryUserRepository) FindByUsername(_ context.Context, username string) (model.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, exists := r.byKey[strings.ToLower(strings.TrimSpace(username))]
	if !exists {
		return model.Account{}, model.ErrUserNotFound
	}
	return u, nil
}

func (r *MemoryUserRepository) FindByID(_ context.Context, id string) (model.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, exists := r.byID[id]
	if !exists {
		return model.Account{}, model.ErrUserNotFound
	}
	return u, nil
}

func (r *MemoryUserRepository) UpdateAvatar(_ context.Context, userID string, avatarID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, exists := r.byID[userID]
	if !exists {
		return model.ErrUserNotFound
	}
	u.AvatarID = &avatarID
	r.byID[userID] = u
	r.byKey[strings.ToLower(u.Username)] = u
	return nil
}

func (r *MemoryUserRepository) ListByIDs(_ context.Context, ids []string) ([]model.UserAvatar, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]model.UserAvatar, 0, len(ids))
	for _, id := range ids {
		u, exists := r.byID[id]
		if !exists {
			continue
		}
		out = append(out, model.UserAvatar{UserID: u.ID, AvatarID: u.AvatarID})
	}
	return out, nil
}

type MemoryAvatarRepository struct {
	mu      sync.Mutex
	avatars map[string]model.Avatar
	order   []string
}

func NewMemoryAvatarRepository() *MemoryAvatarRepository {
	return &MemoryAvatarRepository{avatars: map[string]model.Avatar{}}
}

func (r *MemoryAvatarRepository) Create(_ context.Context, a model.Avatar) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.avatars[a.ID] = a
	r.order = append(r.order, a.ID)
	return nil
}

func (r *MemoryAvatarRepository) Exists(_ context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, exists := r.avatars[id]
	return exists, nil
}

func (r *MemoryAvatarRepository) List(_ context.Context) ([]model.Avatar, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]model.Avatar, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.avatars[id])
	}
	return out, nil
}

type MemorySpaceRepository struct {
	mu     sync.Mutex
	spaces map[string]model.Space
	order  []string
}

func NewMemorySpaceRepository() *MemorySpaceRepository {
	return &MemorySpaceRepository{spaces: map[string]model.Space{}}
}

func (r *MemorySpaceRepository) Create(_ context.Context, s model.Space) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.spaces[s.ID] = s
	r.order = append(r.order, s.ID)
	return nil
}

func (r *MemorySpaceRepository) FindByID(_ context.Context, id string) (model.Space, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, exists := r.spaces[id]
	if !exists {
		return model.Space{}, model.ErrSpaceNotFound
	}
	return s, nil
}

func (r *MemorySpaceRepository) ListByOwner(_ context.Context, ownerID string) ([]model.Space, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]model.Space, 0)
	for _, id := range r.order {
		if s := r.spaces[id]; s.OwnerID == ownerID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *MemorySpaceRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.spaces[id]; !exists {
		return model.ErrSpaceNotFound
	}
	delete(r.spaces, id)
	for i, sid := range r.order {
		if sid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}
