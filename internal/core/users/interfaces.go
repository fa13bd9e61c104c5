package users

import "context"

// Repository defines the interface for user profile persistence
type Repository interface {
	// GetByID retrieves a user's public profile by id.
	// Returns ErrUserNotFound when no profile row exists.
	GetByID(ctx context.Context, id string) (*User, error)

	// Upsert creates or updates a profile row. Idempotent; used by
	// the identity sync tooling and by tests to seed authors.
	Upsert(ctx context.Context, user *User) (*User, error)
}
