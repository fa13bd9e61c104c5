package post

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"Snapfeed/internal/core/posts"
)

// GetHandler handles single-post fetch requests
type GetHandler struct {
	service posts.Service
}

// NewGetHandler creates a new get handler
func NewGetHandler(service posts.Service) *GetHandler {
	return &GetHandler{service: service}
}

type getPostResponse struct {
	Message string          `json:"message"`
	Post    *posts.PostView `json:"post"`
}

// HandleGet handles GET /{id}
// Returns one post with author projection and its full comment list.
func (h *GetHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	postID := chi.URLParam(r, "id")
	if postID == "" {
		writeError(w, http.StatusBadRequest, "InvalidRequest", "Post id is required")
		return
	}

	view, err := h.service.GetPost(r.Context(), postID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(getPostResponse{
		Message: "Post fetched successfully",
		Post:    view,
	}); err != nil {
		log.Printf("Failed to encode get response: %v", err)
	}
}
