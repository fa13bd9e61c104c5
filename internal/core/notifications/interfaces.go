package notifications

import "context"

// Repository defines the data access interface for notifications
type Repository interface {
	// Create inserts a new notification and fills in its generated
	// id, read flag, and timestamp.
	Create(ctx context.Context, notification *Notification) error
}
