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

// serveDelete routes the request through chi so URL params resolve
func serveDelete(handler *DeleteHandler, req *http.Request) *httptest.ResponseRecorder {
	r := chi.NewRouter()
	r.Delete("/{id}", handler.HandleDelete)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHandleDelete_Success(t *testing.T) {
	var gotRequester, gotPost string
	mockService := &mockPostService{
		deleteFunc: func(ctx context.Context, requesterID, postID string) error {
			gotRequester = requesterID
			gotPost = postID
			return nil
		},
	}
	handler := NewDeleteHandler(mockService)

	req := authedRequest(http.MethodDelete, "/post1", nil, "owner")
	w := serveDelete(handler, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if gotRequester != "owner" || gotPost != "post1" {
		t.Errorf("unexpected service call: requester=%q post=%q", gotRequester, gotPost)
	}

	var resp deletePostResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Message != "Post deleted successfully" {
		t.Errorf("unexpected message: %q", resp.Message)
	}
}

func TestHandleDelete_NotFound(t *testing.T) {
	mockService := &mockPostService{
		deleteFunc: func(ctx context.Context, requesterID, postID string) error {
			return posts.ErrNotFound
		},
	}
	handler := NewDeleteHandler(mockService)

	req := authedRequest(http.MethodDelete, "/missing", nil, "owner")
	w := serveDelete(handler, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
}

func TestHandleDelete_NotAuthorIs403(t *testing.T) {
	mockService := &mockPostService{
		deleteFunc: func(ctx context.Context, requesterID, postID string) error {
			return posts.ErrNotAuthorized
		},
	}
	handler := NewDeleteHandler(mockService)

	req := authedRequest(http.MethodDelete, "/post1", nil, "intruder")
	w := serveDelete(handler, req)

	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", w.Code)
	}

	var resp errorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode error: %v", err)
	}
	if resp.Error != "NotAuthorized" {
		t.Errorf("expected NotAuthorized, got %q", resp.Error)
	}
}

func TestHandleDelete_Unauthenticated(t *testing.T) {
	handler := NewDeleteHandler(&mockPostService{})

	req := authedRequest(http.MethodDelete, "/post1", nil, "")
	w := serveDelete(handler, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", w.Code)
	}
}
