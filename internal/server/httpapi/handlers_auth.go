package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/minseok/enigma/internal/server/services"
)

type signupRequest struct {
	UserName    string `json:"user_name"`
	Password    string `json:"password"`
	Email       string `json:"email"`
	SchoolLevel string `json:"school_level"`
	Grade       int    `json:"grade"`
}

type loginRequest struct {
	UserName string `json:"user_name"`
	Password string `json:"password"`
}

func (s *Server) handleSignup(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid JSON body")
		return
	}

	if req.UserName == "" || req.Password == "" || req.Email == "" || req.Grade <= 0 {
		writeBadRequest(w, "user_name, password, email, and a positive grade are required")
		return
	}

	err := s.auth.Signup(r.Context(), services.SignupParams{
		UserName:    req.UserName,
		Password:    req.Password,
		Email:       req.Email,
		SchoolLevel: req.SchoolLevel,
		Grade:       req.Grade,
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}

	s.logger.Info(r.Context(), "user signed up", "user_name", req.UserName)
	writeJSON(w, http.StatusCreated, nil)
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid JSON body")
		return
	}

	result, err := s.auth.Login(r.Context(), req.UserName, req.Password)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}
