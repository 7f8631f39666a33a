// Package server initializes and runs the landing application: it wires the
// storage backends, the visit counter, the signup pipeline, and the public
// HTTP server, and handles graceful shutdown.
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

	"github.com/dmitrijs2005/landing/internal/logging"
	"github.com/dmitrijs2005/landing/internal/server/config"
	"github.com/dmitrijs2005/landing/internal/server/counter"
	"github.com/dmitrijs2005/landing/internal/server/objectstore"
	"github.com/dmitrijs2005/landing/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/landing/internal/server/services"
	"github.com/dmitrijs2005/landing/internal/server/turnstile"
	"github.com/dmitrijs2005/landing/internal/server/web"
)

type App struct {
	config *config.Config
	logger logging.Logger
	db     *sql.DB
	server *web.Server
}

// NewApp builds the application from configuration. An empty DatabaseDSN
// selects the in-memory backends, so the whole service runs without external
// dependencies in development and tests.
func NewApp(c *config.Config) (*App, error) {

	sl := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	logger := logging.NewSlogLogger(sl)

	var (
		db      *sql.DB
		repos   repomanager.RepositoryManager
		objects objectstore.Putter
	)

	if c.DatabaseDSN != "" {
		var err error
		db, err = sql.Open("pgx", c.DatabaseDSN)
		if err != nil {
			return nil, fmt.Errorf("db init error: %w", err)
		}

		pm := repomanager.NewPostgresRepositoryManager()
		if err := pm.EnsureSchema(context.Background(), db); err != nil {
			return nil, fmt.Errorf("db init error: %w", err)
		}
		repos = pm

		s3, err := objectstore.NewS3Store(context.Background(), c)
		if err != nil {
			return nil, fmt.Errorf("object store init error: %w", err)
		}
		objects = s3
	} else {
		repos = repomanager.NewMemoryRepositoryManager()
		objects = objectstore.NewMemoryStore()
	}

	var verifier services.TokenVerifier
	if c.TurnstileSiteKey != "" && c.TurnstileSecret != "" {
		verifier = turnstile.New(c.TurnstileSecret)
	}

	visits := counter.NewActor(repos.Counters(db))
	signup := services.NewSignupService(db, repos, verifier)

	srv, err := web.NewServer(c, logger, visits, repos.Flags(db), objects, signup)
	if err != nil {
		return nil, err
	}

	return &App{config: c, logger: logger, db: db, server: srv}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {
	if err := app.server.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()

	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error(ctx, "db close error", "error", err)
		}
	}
}
