package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (s *Server) buildRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(s.requestIDMiddleware)
	r.Use(s.loggingMiddleware)
	r.Use(s.recoveryMiddleware)

	r.Get("/health", s.handleHealth)

	r.Route("/api", func(r chi.Router) {
		// No auth required.
		r.Post("/auth/signup", s.handleSignup)
		r.Post("/auth/login", s.handleLogin)

		r.Group(func(r chi.Router) {
			r.Use(s.authMiddleware)

			r.Get("/categories", s.handleListCategories)

			r.Route("/users", func(r chi.Router) {
				r.Get("/school-level/{schoolLevel}/grade/{grade}", s.handleUsersByLevelAndGrade)

				r.Route("/{userID}", func(r chi.Router) {
					r.Get("/", s.handleGetUser)
					r.Put("/", s.handleUpdateUser)
					r.Get("/friends", s.handleListFriends)
					r.Post("/friends/{friendID}", s.handleAddFriend)
					r.Delete("/friends/{friendID}", s.handleRemoveFriend)
				})
			})

			r.Route("/posts", func(r chi.Router) {
				r.Post("/", s.handleCreatePost)
				r.Get("/user/{userID}", s.handleListPosts)
				r.Get("/{postID}/user/{userID}", s.handleGetPost)
				r.Delete("/{postID}/user/{userID}", s.handleDeletePost)
			})

			r.Route("/comments", func(r chi.Router) {
				r.Post("/", s.handleCreateComment)
				r.Get("/post/{postID}/user/{userID}", s.handleListComments)
				r.Delete("/{commentID}/user/{userID}", s.handleDeleteComment)
			})
		})
	})

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
