package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/minseok/enigma/internal/server/services"
)

type createPostRequest struct {
	Title       string `json:"title"`
	Content     string `json:"content"`
	CategoryID  string `json:"category_id"`
	SchoolLevel string `json:"school_level"`
}

func (s *Server) handleCreatePost(w http.ResponseWriter, r *http.Request) {
	var req createPostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid JSON body")
		return
	}
	if req.Title == "" || req.CategoryID == "" {
		writeBadRequest(w, "title and category_id are required")
		return
	}

	// The author is always the authenticated subject.
	identity := identityFromContext(r.Context())

	view, err := s.posts.CreatePost(r.Context(), services.CreatePostParams{
		Title:       req.Title,
		Content:     req.Content,
		AuthorID:    identity.UserID,
		CategoryID:  req.CategoryID,
		SchoolLevel: req.SchoolLevel,
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, view)
}

func (s *Server) handleListPosts(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerMatches(w, r, "userID")
	if !ok {
		return
	}

	views, err := s.posts.GetPosts(r.Context(), userID)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, views)
}

func (s *Server) handleGetPost(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerMatches(w, r, "userID")
	if !ok {
		return
	}

	view, err := s.posts.GetPost(r.Context(), chi.URLParam(r, "postID"), userID)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, view)
}

func (s *Server) handleDeletePost(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerMatches(w, r, "userID")
	if !ok {
		return
	}

	if err := s.posts.DeletePost(r.Context(), chi.URLParam(r, "postID"), userID); err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, nil)
}
