package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"go-metaverse-api/internal/model"
)

type AvatarRepository struct {
	pool *pgxpool.Pool
}

func NewAvatarRepository(pool *pgxpool.Pool) *AvatarRepository {
	return &AvatarRepository{pool: pool}
}

func (r *AvatarRepository) Create(ctx context.Context, a model.Avatar) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO avatars (id, name, image_url, created_at)
		 VALUES ($1, $2, $3, $4)`,
		a.ID, a.Name, a.ImageURL, a.CreatedAt)
	if err != nil {
		return fmt.Errorf("create avatar: %w", err)
	}
	return nil
}

func (r *AvatarRepository) Exists(ctx context.Context, id string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM avatars WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check avatar exists: %w", err)
	}
	return exists, nil
}

func (r *AvatarRepository) List(ctx context.Context) ([]model.Avatar, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, name, image_url, created_at FROM avatars ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("list avatars: %w", err)
	}
	defer rows.Close()

	avatars := make([]model.Avatar, 0)
	for rows.Next() {
		var a model.Avatar
		if err := rows.Scan(&a.ID, &a.Name, &a.ImageURL, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan avatar: %w", err)
		}
		avatars = append(avatars, a)
	}
	return avatars, rows.Err()
}
