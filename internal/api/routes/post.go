package routes

import (
	"github.com/go-chi/chi/v5"

	"Snapfeed/internal/api/handlers/post"
	"Snapfeed/internal/api/middleware"
	"Snapfeed/internal/core/posts"
)

// RegisterPostRoutes registers the post endpoints on the router.
// Reads are public; every mutation requires a bearer identity.
func RegisterPostRoutes(r chi.Router, service posts.Service, authMiddleware *middleware.AuthMiddleware) {
	listHandler := post.NewListHandler(service)
	getHandler := post.NewGetHandler(service)
	createHandler := post.NewCreateHandler(service)
	deleteHandler := post.NewDeleteHandler(service)
	likeHandler := post.NewLikeHandler(service)
	commentHandler := post.NewCommentHandler(service)

	r.Get("/", listHandler.HandleList)
	r.Get("/{id}", getHandler.HandleGet)

	r.With(authMiddleware.RequireAuth).Post("/", createHandler.HandleCreate)
	r.With(authMiddleware.RequireAuth).Post("/like/{id}", likeHandler.HandleLike)
	r.With(authMiddleware.RequireAuth).Post("/comment/{id}", commentHandler.HandleComment)
	r.With(authMiddleware.RequireAuth).Delete("/{id}", deleteHandler.HandleDelete)
}
