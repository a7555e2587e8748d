// Package web hosts the dashboard HTTP server.
package web

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/louisbranch/covidtracker/internal/platform/timeouts"
	webapp "github.com/louisbranch/covidtracker/internal/services/web/app"
	module "github.com/louisbranch/covidtracker/internal/services/web/module"
	"github.com/louisbranch/covidtracker/internal/services/web/modules"
	"github.com/louisbranch/covidtracker/internal/services/web/platform/httpx"
	"github.com/louisbranch/covidtracker/internal/services/web/platform/observability"
	"github.com/louisbranch/covidtracker/internal/services/web/routepath"
	"github.com/louisbranch/covidtracker/internal/services/web/static"
	"go.opentelemetry.io/otel/trace"
)

// Config defines the inputs for the dashboard server.
type Config struct {
	HTTPAddr string
	Survival module.SurvivalEstimator
	Tracker  module.TrackerSnapshots
	// Logger receives request logs. Nil uses the standard logger.
	Logger *log.Logger
	// TracerProvider records request spans. Nil uses the global provider.
	TracerProvider trace.TracerProvider
}

// Server hosts the dashboard HTTP server.
type Server struct {
	httpAddr   string
	httpServer *http.Server
}

// NewHandler composes every module behind the shared middleware chain.
func NewHandler(config Config) (http.Handler, error) {
	deps := module.Dependencies{Survival: config.Survival, Tracker: config.Tracker}
	root, err := webapp.Compose(webapp.ComposeInput{Modules: modules.DefaultModules(deps)})
	if err != nil {
		return nil, fmt.Errorf("compose modules: %w", err)
	}
	mux := http.NewServeMux()
	mux.Handle(routepath.StaticPrefix, http.StripPrefix(routepath.StaticPrefix, http.FileServer(http.FS(static.FS))))
	mux.Handle(routepath.Root, root)
	return httpx.Chain(
		mux,
		httpx.RecoverPanic(),
		httpx.RequestID(),
		httpx.Trace("web", config.TracerProvider),
		observability.RequestLogger(config.Logger),
	), nil
}

// NewServer builds a configured dashboard server.
func NewServer(config Config) (*Server, error) {
	httpAddr := strings.TrimSpace(config.HTTPAddr)
	if httpAddr == "" {
		return nil, errors.New("http address is required")
	}
	handler, err := NewHandler(config)
	if err != nil {
		return nil, fmt.Errorf("build handler: %w", err)
	}
	return &Server{
		httpAddr: httpAddr,
		httpServer: &http.Server{
			Addr:              httpAddr,
			Handler:           handler,
			ReadHeaderTimeout: timeouts.ReadHeader,
		},
	}, nil
}

// ListenAndServe runs the HTTP server until the context ends.
//
// On cancellation, it performs a bounded shutdown so in-flight requests
// are drained before hard close.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("web server is nil")
	}
	if ctx == nil {
		return errors.New("context is required")
	}

	serveErr := make(chan error, 1)
	log.Printf("web listening on %s", s.httpAddr)
	go func() {
		serveErr <- s.httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		err := s.httpServer.Shutdown(shutdownCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve http: %w", err)
	}
}

// Close stops the listener immediately.
func (s *Server) Close() {
	if s == nil || s.httpServer == nil {
		return
	}
	if err := s.httpServer.Close(); err != nil {
		log.Printf("close http server: %v", err)
	}
}
