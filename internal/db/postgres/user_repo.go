package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"Snapfeed/internal/core/users"
)

type postgresUserRepo struct {
	db *sql.DB
}

// NewUserRepository creates a new PostgreSQL user repository
func NewUserRepository(db *sql.DB) users.Repository {
	return &postgresUserRepo{db: db}
}

// GetByID retrieves a user's public profile by id
func (r *postgresUserRepo) GetByID(ctx context.Context, id string) (*users.User, error) {
	user := &users.User{}
	query := `SELECT id, username, profile_picture, created_at, updated_at FROM users WHERE id = $1`

	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&user.ID, &user.Username, &user.ProfilePicture, &user.CreatedAt, &user.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, users.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user by id: %w", err)
	}

	return user, nil
}

// Upsert creates or updates a profile row
func (r *postgresUserRepo) Upsert(ctx context.Context, user *users.User) (*users.User, error) {
	query := `
		INSERT INTO users (id, username, profile_picture)
		VALUES ($1, $2, $3)
		ON CONFLICT (id) DO UPDATE
		SET username = EXCLUDED.username,
		    profile_picture = EXCLUDED.profile_picture,
		    updated_at = NOW()
		RETURNING id, username, profile_picture, created_at, updated_at
	`

	err := r.db.QueryRowContext(ctx, query, user.ID, user.Username, user.ProfilePicture).
		Scan(&user.ID, &user.Username, &user.ProfilePicture, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert user: %w", err)
	}

	return user, nil
}
