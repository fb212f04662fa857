// Package server initializes and runs the community server: it opens the
// database, applies migrations, wires services, and starts the HTTP API with
// graceful shutdown.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/minseok/enigma/internal/logging"
	"github.com/minseok/enigma/internal/server/auth"
	"github.com/minseok/enigma/internal/server/config"
	"github.com/minseok/enigma/internal/server/httpapi"
	"github.com/minseok/enigma/internal/server/repositories/repomanager"
	"github.com/minseok/enigma/internal/server/services"
)

type App struct {
	config *config.Config
	logger logging.Logger
	server *httpapi.Server
	db     *sql.DB
}

func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {

	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	db, err := sql.Open("pgx", cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	rm := repomanager.NewPostgresRepositoryManager()
	if err := rm.RunMigrations(ctx, db); err != nil {
		return nil, fmt.Errorf("migration error: %w", err)
	}

	hasher := auth.NewBcryptHasher()
	tokens := auth.NewJWTCodec([]byte(cfg.SecretKey), cfg.TokenValidityDuration)

	as := services.NewAuthService(db, rm, hasher, tokens)
	us := services.NewUserService(db, rm, hasher)
	ps := services.NewPostService(db, rm)
	cs := services.NewCommentService(db, rm)
	cats := services.NewCategoryService(db, rm)

	server := httpapi.NewServer(cfg.EndpointAddr, logger, tokens, as, us, ps, cs, cats)

	return &App{config: cfg, logger: logger, server: server, db: db}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := app.server.Run(ctx); err != nil {
			app.logger.Error(ctx, err.Error())
			cancelFunc()
		}
	}()

	wg.Wait()

	if err := app.db.Close(); err != nil {
		app.logger.Error(ctx, "db close error", "error", err.Error())
	}
}
