package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"go-metaverse-api/internal/model"
)

const uniqueViolationCode = "23505"

type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

// Create inserts the account and relies on the unique index on
// lower(username) to arbitrate concurrent signups: exactly one insert
// wins, the rest surface ErrUserAlreadyExists.
func (r *UserRepository) Create(ctx context.Context, u model.Account) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO users (id, username, password_hash, role, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		u.ID, u.Username, u.PasswordHash, u.Role, u.CreatedAt, u.UpdatedAt)

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
		return model.ErrUserAlreadyExists
	}
	if err != nil {
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (model.Account, error) {
	var u model.Account
	err := r.pool.QueryRow(ctx,
		`SELECT id, username, password_hash, role, avatar_id, created_at, updated_at
		 FROM users WHERE lower(username) = lower($1)`, strings.TrimSpace(username)).
		Scan(&u.ID, &u.Username, &u.PasswordHash, &u.Role, &u.AvatarID, &u.CreatedAt, &u.UpdatedAt)

	if errors.Is(err, pgx.ErrNoRows) {
		return model.Account{}, model.ErrUserNotFound
	}
	if err != nil {
		return model.Account{}, fmt.Errorf("find user by username: %w", err)
	}
	return u, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (model.Account, error) {
	var u model.Account
	err := r.pool.QueryRow(ctx,
		`SELECT id, username, password_hash, role, avatar_id, created_at, updated_at
		 FROM users WHERE id = $1`, id).
		Scan(&u.ID, &u.Username, &u.PasswordHash, &u.Role, &u.AvatarID, &u.CreatedAt, &u.UpdatedAt)

	if errors.Is(err, pgx.ErrNoRows) {
		return model.Account{}, model.ErrUserNotFound
	}
	if err != nil {
		return model.Account{}, fmt.Errorf("find user by id: %w", err)
	}
	return u, nil
}

func (r *UserRepository) UpdateAvatar(ctx context.Context, userID string, avatarID string) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE users SET avatar_id = $2, updated_at = now() WHERE id = $1`,
		userID, avatarID)
	if err != nil {
		return fmt.Errorf("update avatar: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrUserNotFound
	}
	return nil
}

// ListByIDs returns the avatar association for every id that resolves
// to an account. Unknown ids are omitted, not an error.
func (r *UserRepository) ListByIDs(ctx context.Context, ids []string) ([]model.UserAvatar, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT u.id, u.avatar_id, a.image_url
		 FROM users u
		 LEFT JOIN avatars a ON a.id = u.avatar_id
		 WHERE u.id = ANY($1)`, ids)
	if err != nil {
		return nil, fmt.Errorf("list users by ids: %w", err)
	}
	defer rows.Close()

	out := make([]model.UserAvatar, 0, len(ids))
	for rows.Next() {
		var ua model.UserAvatar
		if err := rows.Scan(&ua.UserID, &ua.AvatarID, &ua.ImageURL); err != nil {
			return nil, fmt.Errorf("scan user avatar: %w", err)
		}
		out = append(out, ua)
	}
	return out, rows.Err()
}
