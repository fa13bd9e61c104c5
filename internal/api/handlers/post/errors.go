package post

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"Snapfeed/internal/core/posts"
	"Snapfeed/internal/media"
)

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// writeError writes a JSON error response
func writeError(w http.ResponseWriter, statusCode int, errorType, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(errorResponse{
		Error:   errorType,
		Message: message,
	}); err != nil {
		log.Printf("Failed to encode error response: %v", err)
	}
}

// handleServiceError maps service errors to HTTP responses
func handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case posts.IsValidationError(err):
		var valErr *posts.ValidationError
		errors.As(err, &valErr)
		writeError(w, http.StatusBadRequest, "InvalidRequest", valErr.Message)

	case errors.Is(err, media.ErrUploadFailed):
		writeError(w, http.StatusBadRequest, "UploadFailed", "Image upload failed.")

	case errors.Is(err, posts.ErrNotFound):
		writeError(w, http.StatusNotFound, "PostNotFound", "Post not found")

	case errors.Is(err, posts.ErrNotAuthorized):
		writeError(w, http.StatusForbidden, "NotAuthorized",
			"You are not authorized to delete this post")

	default:
		// Don't leak internal error details to clients
		log.Printf("Unexpected error in post handler: %v", err)
		writeError(w, http.StatusInternalServerError, "InternalServerError",
			"An internal error occurred")
	}
}
