package httpapi

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/minseok/enigma/internal/server/auth"
)

type ctxKey string

const (
	identityKey  ctxKey = "identity"
	requestIDKey ctxKey = "requestID"
)

// authMiddleware validates the bearer token and stores the asserted identity
// in the request context.
func (s *Server) authMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			writeUnauthorized(w, "missing token")
			return
		}

		identity, err := s.tokens.Verify(token)
		if err != nil {
			writeUnauthorized(w, err.Error())
			return
		}

		ctx := context.WithValue(r.Context(), identityKey, identity)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func identityFromContext(ctx context.Context) *auth.Identity {
	id, _ := ctx.Value(identityKey).(*auth.Identity)
	return id
}

// callerMatches enforces that the authenticated subject is the user named in
// the path. Acting on someone else's behalf is a forbidden cross-access.
func callerMatches(w http.ResponseWriter, r *http.Request, param string) (string, bool) {
	userID := chi.URLParam(r, param)
	identity := identityFromContext(r.Context())
	if identity == nil || identity.UserID != userID {
		writeError(w, http.StatusForbidden, errCodeForbidden, "cannot act on behalf of another user")
		return "", false
	}
	return userID, true
}

func (s *Server) requestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := context.WithValue(r.Context(), requestIDKey, uuid.NewString())
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)

		requestID, _ := r.Context().Value(requestIDKey).(string)
		s.logger.Info(r.Context(), "request",
			"request_id", requestID,
			"method", r.Method,
			"path", r.URL.Path,
			"duration", time.Since(start).String(),
		)
	})
}

func (s *Server) recoveryMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				s.logger.Error(r.Context(), "panic in handler", "panic", rec)
				writeError(w, http.StatusInternalServerError, errCodeInternal, "internal error")
			}
		}()
		next.ServeHTTP(w, r)
	})
}
