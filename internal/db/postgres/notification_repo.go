package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"Snapfeed/internal/core/notifications"
)

type postgresNotificationRepo struct {
	db *sql.DB
}

// NewNotificationRepository creates a new PostgreSQL notification repository
func NewNotificationRepository(db *sql.DB) notifications.Repository {
	return &postgresNotificationRepo{db: db}
}

// Create inserts a new notification and fills in generated fields
func (r *postgresNotificationRepo) Create(ctx context.Context, notification *notifications.Notification) error {
	query := `
		INSERT INTO notifications (from_id, to_id, type, content)
		VALUES ($1, $2, $3, $4)
		RETURNING id, is_read, created_at
	`

	err := r.db.QueryRowContext(ctx, query,
		notification.From, notification.To, notification.Type, notification.Content).
		Scan(&notification.ID, &notification.Read, &notification.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert notification: %w", err)
	}

	return nil
}
