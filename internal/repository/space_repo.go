package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"go-metaverse-api/internal/model"
)

type SpaceRepository struct {
	pool *pgxpool.Pool
}

func NewSpaceRepository(pool *pgxpool.Pool) *SpaceRepository {
	return &SpaceRepository{pool: pool}
}

func (r *SpaceRepository) Create(ctx context.Context, s model.Space) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO spaces (id, name, width, height, owner_id, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		s.ID, s.Name, s.Width, s.Height, s.OwnerID, s.CreatedAt)
	if err != nil {
		return fmt.Errorf("create space: %w", err)
	}
	return nil
}

func (r *SpaceRepository) FindByID(ctx context.Context, id string) (model.Space, error) {
	var s model.Space
	err := r.pool.QueryRow(ctx,
		`SELECT id, name, width, height, owner_id, created_at
		 FROM spaces WHERE id = $1`, id).
		Scan(&s.ID, &s.Name, &s.Width, &s.Height, &s.OwnerID, &s.CreatedAt)

	if errors.Is(err, pgx.ErrNoRows) {
		return model.Space{}, model.ErrSpaceNotFound
	}
	if err != nil {
		return model.Space{}, fmt.Errorf("find space by id: %w", err)
	}
	return s, nil
}

func (r *SpaceRepository) ListByOwner(ctx context.Context, ownerID string) ([]model.Space, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, name, width, height, owner_id, created_at
		 FROM spaces WHERE owner_id = $1 ORDER BY created_at`, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list spaces by owner: %w", err)
	}
	defer rows.Close()

	spaces := make([]model.Space, 0)
	for rows.Next() {
		var s model.Space
		if err := rows.Scan(&s.ID, &s.Name, &s.Width, &s.Height, &s.OwnerID, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan space: %w", err)
		}
		spaces = append(spaces, s)
	}
	return spaces, rows.Err()
}

func (r *SpaceRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM spaces WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete space: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrSpaceNotFound
	}
	return nil
}
