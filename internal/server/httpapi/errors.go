package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/minseok/enigma/internal/common"
)

// Error is the structured error body every failing response carries.
type Error struct {
	Status  int    `json:"status"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

const (
	errCodeBadRequest   = "bad_request"
	errCodeUnauthorized = "unauthorized"
	errCodeForbidden    = "forbidden"
	errCodeNotFound     = "not_found"
	errCodeConflict     = "conflict"
	errCodeInternal     = "internal_error"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		_ = json.NewEncoder(w).Encode(v)
	}
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, Error{Status: status, Code: code, Message: message})
}

func writeBadRequest(w http.ResponseWriter, message string) {
	writeError(w, http.StatusBadRequest, errCodeBadRequest, message)
}

func writeUnauthorized(w http.ResponseWriter, message string) {
	writeError(w, http.StatusUnauthorized, errCodeUnauthorized, message)
}

// writeDomainError maps a sentinel domain error onto its transport status.
// The error's own message is the user-facing text; anything not in the
// taxonomy becomes an opaque 500 so internal detail never leaks.
func writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, common.ErrUserNameTaken), errors.Is(err, common.ErrEmailTaken):
		writeError(w, http.StatusConflict, errCodeConflict, err.Error())
	case errors.Is(err, common.ErrWeakPassword), errors.Is(err, common.ErrInvalidSchoolLevel):
		writeError(w, http.StatusBadRequest, errCodeBadRequest, err.Error())
	case errors.Is(err, common.ErrInvalidCredentials), errors.Is(err, common.ErrInvalidToken):
		writeError(w, http.StatusUnauthorized, errCodeUnauthorized, err.Error())
	case errors.Is(err, common.ErrInvalidAccess):
		writeError(w, http.StatusForbidden, errCodeForbidden, err.Error())
	case errors.Is(err, common.ErrUserNotFound),
		errors.Is(err, common.ErrPostNotFound),
		errors.Is(err, common.ErrCommentNotFound),
		errors.Is(err, common.ErrCategoryNotFound),
		errors.Is(err, common.ErrNotFound):
		writeError(w, http.StatusNotFound, errCodeNotFound, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, errCodeInternal, common.ErrInternal.Error())
	}
}
