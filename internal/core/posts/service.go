package posts

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"Snapfeed/internal/core/notifications"
	"Snapfeed/internal/core/users"
	"Snapfeed/internal/media"
)

// postService implements the Service interface.
// All state lives in the repositories; the service holds no mutable
// state of its own, so one instance serves concurrent requests.
type postService struct {
	repo          Repository
	mediaStore    media.Store
	notifications notifications.Repository
	userRepo      users.Repository
	logger        *slog.Logger
}

// NewService creates a new post service instance
func NewService(repo Repository, mediaStore media.Store, notificationRepo notifications.Repository, userRepo users.Repository, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &postService{
		repo:          repo,
		mediaStore:    mediaStore,
		notifications: notificationRepo,
		userRepo:      userRepo,
		logger:        logger,
	}
}

// CreatePost validates input, uploads the image, and persists the post.
// Validation failures and upload failures happen before any persistence,
// so a failed request never leaves a partial post behind.
func (s *postService) CreatePost(ctx context.Context, authorID string, req CreatePostRequest) (*PostView, error) {
	if req.Title == "" {
		return nil, NewValidationError("title", "Title is required")
	}
	if req.Description == "" {
		return nil, NewValidationError("description", "Description is required")
	}
	if req.Image == "" {
		return nil, NewValidationError("image", "Image is required")
	}

	imageURL, err := s.mediaStore.Upload(ctx, req.Image)
	if err != nil {
		s.logger.Error("image upload failed",
			"error", err,
			"author", authorID)
		return nil, err
	}

	post := &Post{
		ID:          uuid.NewString(),
		AuthorID:    authorID,
		Title:       req.Title,
		Description: req.Description,
		Image:       imageURL,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, post); err != nil {
		return nil, fmt.Errorf("creating post: %w", err)
	}

	s.logger.Info("post created",
		"post", post.ID,
		"author", authorID)

	view, err := s.repo.GetView(ctx, post.ID)
	if err != nil {
		return nil, fmt.Errorf("loading created post: %w", err)
	}
	return view, nil
}

// DeletePost removes a post after verifying the requester owns it.
// The hosted image is cleaned up afterwards on a best-effort basis:
// the post row is already gone and is not rolled back if cleanup fails.
func (s *postService) DeletePost(ctx context.Context, requesterID, postID string) error {
	post, err := s.repo.GetByID(ctx, postID)
	if err != nil {
		return err
	}

	if post.AuthorID != requesterID {
		return ErrNotAuthorized
	}

	if err := s.repo.Delete(ctx, postID); err != nil {
		return fmt.Errorf("deleting post: %w", err)
	}

	if post.Image != "" {
		publicID := media.PublicIDFromURL(post.Image)
		if err := s.mediaStore.Destroy(ctx, publicID); err != nil {
			s.logger.Warn("hosted image cleanup failed",
				"error", err,
				"post", postID,
				"publicId", publicID)
		}
	}

	s.logger.Info("post deleted",
		"post", postID,
		"author", requesterID)

	return nil
}

// ListPosts returns all posts, newest first
func (s *postService) ListPosts(ctx context.Context) ([]*PostView, error) {
	views, err := s.repo.ListViews(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing posts: %w", err)
	}
	return views, nil
}

// GetPost returns a single post with its full comment list
func (s *postService) GetPost(ctx context.Context, postID string) (*PostView, error) {
	return s.repo.GetView(ctx, postID)
}

// ToggleLike flips the requester's membership in the post's like set
// and records a notification to the post's author. The toggle itself is
// atomic at the storage layer; the notification write happens after the
// toggle commits and its failure propagates to the caller.
func (s *postService) ToggleLike(ctx context.Context, requesterID, postID string) (*ToggleLikeResult, error) {
	post, err := s.repo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	liked, err := s.repo.ToggleLike(ctx, postID, requesterID)
	if err != nil {
		return nil, fmt.Errorf("toggling like: %w", err)
	}

	// Snapshot the requester's username into the notification content.
	// A missing profile row falls back to the raw id rather than failing
	// the request: profiles are owned by the external identity system.
	name := requesterID
	if u, lookupErr := s.userRepo.GetByID(ctx, requesterID); lookupErr == nil && u.Username != "" {
		name = u.Username
	}

	var content, message string
	if liked {
		content = fmt.Sprintf("%s liked your post.", name)
		message = "Post liked successfully"
	} else {
		content = fmt.Sprintf("%s unliked your post.", name)
		message = "Post unliked successfully"
	}

	notification := &notifications.Notification{
		From:    requesterID,
		To:      post.AuthorID,
		Type:    notifications.TypeLike,
		Content: content,
	}
	if err := s.notifications.Create(ctx, notification); err != nil {
		return nil, fmt.Errorf("recording like notification: %w", err)
	}

	s.logger.Info("like toggled",
		"post", postID,
		"user", requesterID,
		"liked", liked)

	return &ToggleLikeResult{
		Liked:        liked,
		Message:      message,
		Notification: notification,
	}, nil
}

// CommentOnPost appends a comment to the post's comment sequence.
// The post lookup runs first so an unknown id reports NotFound even
// when the text is also missing.
func (s *postService) CommentOnPost(ctx context.Context, requesterID, postID, text string) error {
	if _, err := s.repo.GetByID(ctx, postID); err != nil {
		return err
	}

	if text == "" {
		return NewValidationError("text", "Comment text is required")
	}

	comment := &Comment{
		PostID:   postID,
		AuthorID: requesterID,
		Text:     text,
	}
	if err := s.repo.AddComment(ctx, comment); err != nil {
		return fmt.Errorf("adding comment: %w", err)
	}

	s.logger.Info("comment added",
		"post", postID,
		"author", requesterID)

	return nil
}
