// Package web is the public HTTP surface of the landing service: routing,
// request dispatch, and the JSON/HTML handlers behind it.
package web

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrijs2005/landing/internal/logging"
	"github.com/dmitrijs2005/landing/internal/server/config"
	"github.com/dmitrijs2005/landing/internal/server/counter"
	"github.com/dmitrijs2005/landing/internal/server/objectstore"
	"github.com/dmitrijs2005/landing/internal/server/repositories/flags"
	"github.com/dmitrijs2005/landing/internal/server/security"
	"github.com/dmitrijs2005/landing/internal/server/services"
)

const shutdownTimeout = 5 * time.Second

type Server struct {
	config  *config.Config
	logger  logging.Logger
	visits  *counter.Actor
	flags   flags.Repository
	objects objectstore.Putter
	signup  *services.SignupService
}

func NewServer(c *config.Config, l logging.Logger, visits *counter.Actor,
	fl flags.Repository, objects objectstore.Putter, signup *services.SignupService) (*Server, error) {
	return &Server{
		config:  c,
		logger:  l.With("module", "web_server"),
		visits:  visits,
		flags:   fl,
		objects: objects,
		signup:  signup,
	}, nil
}

// Handler builds the router. Every response passes through the hardening
// middleware; the page handler layers its per-request CSP on top.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	r.Use(s.requestID)
	r.Use(s.logRequests)
	r.Use(security.Middleware)

	r.Get("/", s.handlePage)

	r.Post("/api/visits", s.handleVisits)
	r.Get("/api/flag", s.handleFlagGet)
	r.Put("/api/flag", s.handleFlagPut)
	r.Post("/api/signup", s.handleSignup)
	r.Put("/api/r2", s.handleObjectPut)

	r.Get("/robots.txt", s.handleRobots)
	r.Get("/sitemap.xml", s.handleSitemap)
	r.Get("/favicon.svg", s.handleFaviconSVG)
	r.Get("/og.svg", s.handleOGCard)

	r.NotFound(s.handleNotFound)

	return r
}

func (s *Server) Run(ctx context.Context) error {

	srv := &http.Server{
		Addr:    s.config.EndpointAddr,
		Handler: s.Handler(),
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, "shutdown error", "error", err)
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.config.EndpointAddr)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
