package post

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"Snapfeed/internal/api/middleware"
	"Snapfeed/internal/core/notifications"
	"Snapfeed/internal/core/posts"
)

// LikeHandler handles like/unlike toggle requests
type LikeHandler struct {
	service posts.Service
}

// NewLikeHandler creates a new like handler
func NewLikeHandler(service posts.Service) *LikeHandler {
	return &LikeHandler{service: service}
}

type likePostResponse struct {
	Message      string                      `json:"message"`
	Notification *notifications.Notification `json:"notification"`
}

// HandleLike handles POST /like/{id}
// Toggles the requester's membership in the post's like set and returns
// the notification recorded for the post's author.
func (h *LikeHandler) HandleLike(w http.ResponseWriter, r *http.Request) {
	postID := chi.URLParam(r, "id")
	if postID == "" {
		writeError(w, http.StatusBadRequest, "InvalidRequest", "Post id is required")
		return
	}

	userID := middleware.GetUserID(r)
	if userID == "" {
		writeError(w, http.StatusUnauthorized, "AuthRequired", "Authentication required")
		return
	}

	result, err := h.service.ToggleLike(r.Context(), userID, postID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(likePostResponse{
		Message:      result.Message,
		Notification: result.Notification,
	}); err != nil {
		log.Printf("Failed to encode like response: %v", err)
	}
}
