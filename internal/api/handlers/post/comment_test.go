package post

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"Snapfeed/internal/core/posts"
)

func serveComment(handler *CommentHandler, req *http.Request) *httptest.ResponseRecorder {
	r := chi.NewRouter()
	r.Post("/comment/{id}", handler.HandleComment)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHandleComment_Success(t *testing.T) {
	var gotPost, gotAuthor, gotText string
	mockService := &mockPostService{
		commentFunc: func(ctx context.Context, requesterID, postID, text string) error {
			gotAuthor = requesterID
			gotPost = postID
			gotText = text
			return nil
		},
	}
	handler := NewCommentHandler(mockService)

	req := authedRequest(http.MethodPost, "/comment/post1", []byte(`{"text":"nice shot"}`), "commenter")
	w := serveComment(handler, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if gotPost != "post1" || gotAuthor != "commenter" || gotText != "nice shot" {
		t.Errorf("unexpected service call: post=%q author=%q text=%q", gotPost, gotAuthor, gotText)
	}

	var resp commentPostResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Message != "Comment added successfully" {
		t.Errorf("unexpected message: %q", resp.Message)
	}
}

func TestHandleComment_MissingTextIs400(t *testing.T) {
	mockService := &mockPostService{
		commentFunc: func(ctx context.Context, requesterID, postID, text string) error {
			return posts.NewValidationError("text", "Comment text is required")
		},
	}
	handler := NewCommentHandler(mockService)

	req := authedRequest(http.MethodPost, "/comment/post1", []byte(`{}`), "commenter")
	w := serveComment(handler, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}

	var resp errorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode error: %v", err)
	}
	if resp.Message != "Comment text is required" {
		t.Errorf("unexpected message: %q", resp.Message)
	}
}

func TestHandleComment_PostNotFound(t *testing.T) {
	mockService := &mockPostService{
		commentFunc: func(ctx context.Context, requesterID, postID, text string) error {
			return posts.ErrNotFound
		},
	}
	handler := NewCommentHandler(mockService)

	req := authedRequest(http.MethodPost, "/comment/missing", []byte(`{"text":"hi"}`), "commenter")
	w := serveComment(handler, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
}

func TestHandleComment_Unauthenticated(t *testing.T) {
	handler := NewCommentHandler(&mockPostService{})

	req := authedRequest(http.MethodPost, "/comment/post1", []byte(`{"text":"hi"}`), "")
	w := serveComment(handler, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", w.Code)
	}
}
