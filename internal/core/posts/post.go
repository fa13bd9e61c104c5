package posts

import (
	"time"

	"Snapfeed/internal/core/notifications"
)

// Post represents a post row in the database.
// Interaction state (likes, comments) lives in its own tables and is
// aggregated into a PostView when serving reads.
type Post struct {
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	ID          string    `json:"id" db:"id"`
	AuthorID    string    `json:"authorId" db:"author_id"`
	Title       string    `json:"title" db:"title"`
	Description string    `json:"description" db:"description"`
	Image       string    `json:"image" db:"image_url"`
}

// Comment represents a single comment row on a post.
// Comments are append-only: there is no edit or delete operation.
type Comment struct {
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	PostID    string    `json:"postId" db:"post_id"`
	AuthorID  string    `json:"authorId" db:"author_id"`
	Text      string    `json:"text" db:"content"`
	ID        int64     `json:"id" db:"id"`
}

// CreatePostRequest represents input for creating a new post.
// Image carries the raw payload (data URI) or a pre-hosted reference;
// the stored value is always the media host's canonical URL.
type CreatePostRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Image       string `json:"image"`
}

// AuthorView is the public projection of a post's author.
// Never the full user record: only username and profile picture.
type AuthorView struct {
	ID             string `json:"id"`
	Username       string `json:"username"`
	ProfilePicture string `json:"profilePicture"`
}

// CommentView is a comment as rendered in post responses.
type CommentView struct {
	CreatedAt time.Time `json:"createdAt"`
	Author    string    `json:"author"`
	Text      string    `json:"text"`
}

// PostView is the full view of a post with author projection and
// aggregated interaction state. Comments are populated on single-post
// fetches and omitted from list responses.
type PostView struct {
	CreatedAt    time.Time     `json:"createdAt"`
	Author       *AuthorView   `json:"author"`
	ID           string        `json:"id"`
	Title        string        `json:"title"`
	Description  string        `json:"description"`
	Image        string        `json:"image,omitempty"`
	Likes        []string      `json:"likes"`
	Comments     []CommentView `json:"comments,omitempty"`
	CommentCount int           `json:"commentCount"`
}

// ToggleLikeResult reports the outcome of a like/unlike toggle.
type ToggleLikeResult struct {
	Notification *notifications.Notification `json:"notification"`
	Message      string                      `json:"message"`
	Liked        bool                        `json:"liked"`
}
