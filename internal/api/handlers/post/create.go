package post

import (
	"encoding/json"
	"log"
	"net/http"

	"Snapfeed/internal/api/middleware"
	"Snapfeed/internal/core/posts"
)

// CreateHandler handles post creation requests
type CreateHandler struct {
	service posts.Service
}

// NewCreateHandler creates a new create handler
func NewCreateHandler(service posts.Service) *CreateHandler {
	return &CreateHandler{service: service}
}

// createPostResponse echoes the full created post back to the client
type createPostResponse struct {
	Message string          `json:"message"`
	Post    *posts.PostView `json:"post"`
}

// HandleCreate handles POST /
// Creates a new post owned by the authenticated user.
func (h *CreateHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	// 10MB allows inline data-URI image payloads while bounding abuse
	r.Body = http.MaxBytesReader(w, r.Body, 10*1024*1024)

	var req posts.CreatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		if err.Error() == "http: request body too large" {
			writeError(w, http.StatusRequestEntityTooLarge, "RequestTooLarge",
				"Request body too large (max 10MB)")
			return
		}
		writeError(w, http.StatusBadRequest, "InvalidRequest", "Invalid request body")
		return
	}

	userID := middleware.GetUserID(r)
	if userID == "" {
		writeError(w, http.StatusUnauthorized, "AuthRequired", "Authentication required")
		return
	}

	view, err := h.service.CreatePost(r.Context(), userID, req)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(createPostResponse{
		Message: "Post created successfully",
		Post:    view,
	}); err != nil {
		// Headers already sent; just log
		log.Printf("Failed to encode post creation response: %v", err)
	}
}
