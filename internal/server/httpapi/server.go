// Package httpapi is the REST boundary of the community server. It owns
// routing, JSON serialization, bearer-token authentication, and the mapping
// of domain errors to transport status codes; all business rules live in the
// services package.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/minseok/enigma/internal/logging"
	"github.com/minseok/enigma/internal/server/auth"
	"github.com/minseok/enigma/internal/server/services"
)

type Server struct {
	address    string
	logger     logging.Logger
	tokens     auth.TokenCodec
	auth       *services.AuthService
	users      *services.UserService
	posts      *services.PostService
	comments   *services.CommentService
	categories *services.CategoryService
}

func NewServer(
	address string,
	l logging.Logger,
	tokens auth.TokenCodec,
	as *services.AuthService,
	us *services.UserService,
	ps *services.PostService,
	cs *services.CommentService,
	cats *services.CategoryService,
) *Server {
	return &Server{
		address:    address,
		logger:     l.With("module", "http_server"),
		tokens:     tokens,
		auth:       as,
		users:      us,
		posts:      ps,
		comments:   cs,
		categories: cats,
	}
}

// Run serves until ctx is cancelled, then drains in-flight requests.
func (s *Server) Run(ctx context.Context) error {

	srv := &http.Server{
		Addr:              s.address,
		Handler:           s.buildRouter(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, "shutdown error", "error", err.Error())
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
