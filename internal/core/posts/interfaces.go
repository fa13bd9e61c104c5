package posts

import "context"

// Service defines the business logic interface for posts.
// Orchestrates the repository, the media store, and the notification
// emitter; handlers translate its errors to transport status codes.
type Service interface {
	// CreatePost validates input, uploads the image to the media host,
	// and persists a new post. Validation order: title, description,
	// image. Upload failure aborts before anything is persisted.
	CreatePost(ctx context.Context, authorID string, req CreatePostRequest) (*PostView, error)

	// DeletePost removes a post after an ownership check, then
	// best-effort deletes the hosted image. Image cleanup failure is
	// logged, never propagated.
	DeletePost(ctx context.Context, requesterID, postID string) error

	// ListPosts returns all posts, newest first, with author projection.
	// An empty store yields an empty slice, not an error.
	ListPosts(ctx context.Context) ([]*PostView, error)

	// GetPost returns a single post with author projection and its
	// full ordered comment list.
	GetPost(ctx context.Context, postID string) (*PostView, error)

	// ToggleLike adds the requester to the post's like set if absent,
	// removes them if present, then records one notification to the
	// post's author. Notification write failure propagates.
	ToggleLike(ctx context.Context, requesterID, postID string) (*ToggleLikeResult, error)

	// CommentOnPost appends a comment to the post's comment sequence.
	CommentOnPost(ctx context.Context, requesterID, postID, text string) error
}

// Repository defines the data access interface for posts
type Repository interface {
	// Create inserts a new post row
	Create(ctx context.Context, post *Post) error

	// GetByID retrieves a raw post row by id.
	// Returns ErrNotFound when the id does not resolve.
	GetByID(ctx context.Context, id string) (*Post, error)

	// GetView retrieves a post with author projection, like set, and
	// full ordered comments. Returns ErrNotFound when absent.
	GetView(ctx context.Context, id string) (*PostView, error)

	// ListViews retrieves all posts ordered by created_at descending
	// with author projection, like sets, and comment counts.
	ListViews(ctx context.Context) ([]*PostView, error)

	// Delete removes a post row; likes and comments cascade.
	// Returns ErrNotFound when the id does not resolve.
	Delete(ctx context.Context, id string) error

	// ToggleLike atomically removes the (post, user) like row if it
	// exists, otherwise inserts it. Runs in a single transaction so
	// concurrent toggles on the same post cannot lose updates.
	// Returns liked=true when the call added the like.
	ToggleLike(ctx context.Context, postID, userID string) (liked bool, err error)

	// AddComment appends a comment to a post
	AddComment(ctx context.Context, comment *Comment) error
}
