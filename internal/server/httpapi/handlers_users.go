package httpapi

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/minseok/enigma/internal/server/models"
	"github.com/minseok/enigma/internal/server/services"
)

type updateUserRequest struct {
	Password    string `json:"password,omitempty"`
	Email       string `json:"email,omitempty"`
	SchoolLevel string `json:"school_level"`
	Grade       int    `json:"grade"`
}

func (s *Server) handleGetUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerMatches(w, r, "userID")
	if !ok {
		return
	}

	view, err := s.users.GetUser(r.Context(), userID)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, view)
}

func (s *Server) handleUpdateUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerMatches(w, r, "userID")
	if !ok {
		return
	}

	var req updateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid JSON body")
		return
	}
	if req.Grade <= 0 {
		writeBadRequest(w, "a positive grade is required")
		return
	}

	view, err := s.users.UpdateUser(r.Context(), userID, services.UpdateUserParams{
		Password:    req.Password,
		Email:       req.Email,
		SchoolLevel: req.SchoolLevel,
		Grade:       req.Grade,
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, view)
}

func (s *Server) handleUsersByLevelAndGrade(w http.ResponseWriter, r *http.Request) {
	level, err := models.ParseSchoolLevel(chi.URLParam(r, "schoolLevel"))
	if err != nil {
		writeDomainError(w, err)
		return
	}

	grade, err := strconv.Atoi(chi.URLParam(r, "grade"))
	if err != nil || grade <= 0 {
		writeBadRequest(w, "grade must be a positive integer")
		return
	}

	views, err := s.users.UsersBySchoolLevelAndGrade(r.Context(), level, grade)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, views)
}

func (s *Server) handleAddFriend(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerMatches(w, r, "userID")
	if !ok {
		return
	}

	if err := s.users.AddFriend(r.Context(), userID, chi.URLParam(r, "friendID")); err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, nil)
}

func (s *Server) handleRemoveFriend(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerMatches(w, r, "userID")
	if !ok {
		return
	}

	if err := s.users.RemoveFriend(r.Context(), userID, chi.URLParam(r, "friendID")); err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, nil)
}

func (s *Server) handleListFriends(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerMatches(w, r, "userID")
	if !ok {
		return
	}

	views, err := s.users.Friends(r.Context(), userID)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, views)
}
