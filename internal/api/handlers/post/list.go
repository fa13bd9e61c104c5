package post

import (
	"encoding/json"
	"log"
	"net/http"

	"Snapfeed/internal/core/posts"
)

// ListHandler handles feed listing requests
type ListHandler struct {
	service posts.Service
}

// NewListHandler creates a new list handler
func NewListHandler(service posts.Service) *ListHandler {
	return &ListHandler{service: service}
}

type listPostsResponse struct {
	Message string            `json:"message"`
	Posts   []*posts.PostView `json:"posts"`
}

// HandleList handles GET /
// Returns all posts, newest first, with author projection. An empty
// store is a normal 200 with an empty list.
func (h *ListHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	views, err := h.service.ListPosts(r.Context())
	if err != nil {
		handleServiceError(w, err)
		return
	}

	message := "All posts fetched successfully"
	if len(views) == 0 {
		message = "No posts found"
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(listPostsResponse{
		Message: message,
		Posts:   views,
	}); err != nil {
		log.Printf("Failed to encode list response: %v", err)
	}
}
