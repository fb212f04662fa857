package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/minseok/enigma/internal/server/services"
)

type createCommentRequest struct {
	PostID      string `json:"post_id"`
	Content     string `json:"content"`
	SchoolLevel string `json:"school_level"`
}

func (s *Server) handleCreateComment(w http.ResponseWriter, r *http.Request) {
	var req createCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid JSON body")
		return
	}
	if req.PostID == "" || req.Content == "" {
		writeBadRequest(w, "post_id and content are required")
		return
	}

	identity := identityFromContext(r.Context())

	view, err := s.comments.CreateComment(r.Context(), services.CreateCommentParams{
		PostID:      req.PostID,
		UserID:      identity.UserID,
		Content:     req.Content,
		SchoolLevel: req.SchoolLevel,
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, view)
}

func (s *Server) handleListComments(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerMatches(w, r, "userID")
	if !ok {
		return
	}

	views, err := s.comments.CommentsByPost(r.Context(), chi.URLParam(r, "postID"), userID)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, views)
}

func (s *Server) handleDeleteComment(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerMatches(w, r, "userID")
	if !ok {
		return
	}

	if err := s.comments.DeleteComment(r.Context(), chi.URLParam(r, "commentID"), userID); err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, nil)
}
