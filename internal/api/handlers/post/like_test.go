package post

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"Snapfeed/internal/core/notifications"
	"Snapfeed/internal/core/posts"
)

func serveLike(handler *LikeHandler, req *http.Request) *httptest.ResponseRecorder {
	r := chi.NewRouter()
	r.Post("/like/{id}", handler.HandleLike)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHandleLike_ReturnsMessageAndNotification(t *testing.T) {
	mockService := &mockPostService{
		toggleFunc: func(ctx context.Context, requesterID, postID string) (*posts.ToggleLikeResult, error) {
			return &posts.ToggleLikeResult{
				Liked:   true,
				Message: "Post liked successfully",
				Notification: &notifications.Notification{
					From:    requesterID,
					To:      "author",
					Type:    notifications.TypeLike,
					Content: "alice liked your post.",
				},
			}, nil
		},
	}
	handler := NewLikeHandler(mockService)

	req := authedRequest(http.MethodPost, "/like/post1", nil, "liker")
	w := serveLike(handler, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp likePostResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Message != "Post liked successfully" {
		t.Errorf("unexpected message: %q", resp.Message)
	}
	if resp.Notification == nil || resp.Notification.To != "author" {
		t.Errorf("expected notification addressed to the author, got %+v", resp.Notification)
	}
}

func TestHandleLike_UnlikeMessageIsDistinct(t *testing.T) {
	mockService := &mockPostService{
		toggleFunc: func(ctx context.Context, requesterID, postID string) (*posts.ToggleLikeResult, error) {
			return &posts.ToggleLikeResult{
				Liked:        false,
				Message:      "Post unliked successfully",
				Notification: &notifications.Notification{},
			}, nil
		},
	}
	handler := NewLikeHandler(mockService)

	req := authedRequest(http.MethodPost, "/like/post1", nil, "liker")
	w := serveLike(handler, req)

	var resp likePostResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Message != "Post unliked successfully" {
		t.Errorf("unexpected message: %q", resp.Message)
	}
}

func TestHandleLike_NotFound(t *testing.T) {
	mockService := &mockPostService{
		toggleFunc: func(ctx context.Context, requesterID, postID string) (*posts.ToggleLikeResult, error) {
			return nil, posts.ErrNotFound
		},
	}
	handler := NewLikeHandler(mockService)

	req := authedRequest(http.MethodPost, "/like/missing", nil, "liker")
	w := serveLike(handler, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
}

func TestHandleLike_Unauthenticated(t *testing.T) {
	handler := NewLikeHandler(&mockPostService{})

	req := authedRequest(http.MethodPost, "/like/post1", nil, "")
	w := serveLike(handler, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", w.Code)
	}
}
