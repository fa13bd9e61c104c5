package notifications

import "time"

// TypeLike is the notification category recorded for like/unlike actions.
const TypeLike = "like"

// Notification is a one-way record emitted as a side effect of an
// interaction. This core only creates notifications; reading and
// marking them belongs to the notification feed surface.
type Notification struct {
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	From      string    `json:"from" db:"from_id"`
	To        string    `json:"to" db:"to_id"`
	Type      string    `json:"type" db:"type"`
	Content   string    `json:"content" db:"content"`
	ID        int64     `json:"id" db:"id"`
	Read      bool      `json:"isRead" db:"is_read"`
}
