package post

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"Snapfeed/internal/api/middleware"
	"Snapfeed/internal/core/posts"
)

// CommentHandler handles comment creation requests
type CommentHandler struct {
	service posts.Service
}

// NewCommentHandler creates a new comment handler
func NewCommentHandler(service posts.Service) *CommentHandler {
	return &CommentHandler{service: service}
}

type commentPostInput struct {
	Text string `json:"text"`
}

type commentPostResponse struct {
	Message string `json:"message"`
}

// HandleComment handles POST /comment/{id}
// Appends a comment authored by the requester to the post.
func (h *CommentHandler) HandleComment(w http.ResponseWriter, r *http.Request) {
	postID := chi.URLParam(r, "id")
	if postID == "" {
		writeError(w, http.StatusBadRequest, "InvalidRequest", "Post id is required")
		return
	}

	// 100KB is plenty for comment text
	r.Body = http.MaxBytesReader(w, r.Body, 100*1024)

	var input commentPostInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "InvalidRequest", "Invalid request body")
		return
	}

	userID := middleware.GetUserID(r)
	if userID == "" {
		writeError(w, http.StatusUnauthorized, "AuthRequired", "Authentication required")
		return
	}

	if err := h.service.CommentOnPost(r.Context(), userID, postID, input.Text); err != nil {
		handleServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(commentPostResponse{
		Message: "Comment added successfully",
	}); err != nil {
		log.Printf("Failed to encode comment response: %v", err)
	}
}
