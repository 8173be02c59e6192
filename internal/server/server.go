// Package server serves field guide entries over HTTP. Every request grows
// its own tree from its own seed, so concurrent requests share nothing but
// the service's seed sequence.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/alexisbeaulieu97/fieldguide/internal/config"
	"github.com/alexisbeaulieu97/fieldguide/internal/fieldguide"
	"github.com/alexisbeaulieu97/fieldguide/internal/ports"
	"github.com/alexisbeaulieu97/fieldguide/internal/render"
)

const (
	shutdownTimeout = 5 * time.Second
	recentCapacity  = 10
)

// Service is the slice of fieldguide.Service the server needs.
type Service interface {
	NextSeed() uint64
	GenerateSeeded(ctx context.Context, seed uint64) (*fieldguide.Specimen, error)
	Draw(ctx context.Context, specimen *fieldguide.Specimen, surface render.Surface) error
	Events() ports.EventPublisher
}

// Server routes HTTP requests to the service.
type Server struct {
	svc    Service
	cfg    config.Config
	logger ports.Logger
	router *mux.Router
	recent *history
	sub    ports.Subscription
}

// New wires routes and, when the service publishes events, starts recording
// recently generated entries.
func New(svc Service, cfg config.Config, logger ports.Logger) (*Server, error) {
	if logger == nil {
		logger = ports.NopLogger{}
	}

	s := &Server{
		svc:    svc,
		cfg:    cfg,
		logger: logger.With("component", "server"),
		recent: newHistory(recentCapacity),
	}

	if publisher := svc.Events(); publisher != nil {
		sub, err := publisher.Subscribe(ports.EventTreeGenerated, s.recent.record)
		if err != nil {
			return nil, fmt.Errorf("subscribe to tree events: %w", err)
		}
		s.sub = sub
	}

	s.routes()
	return s, nil
}

func (s *Server) routes() {
	r := mux.NewRouter()
	r.Use(s.correlate, s.logRequests)

	r.HandleFunc("/", s.handleIndex).Methods(http.MethodGet)
	r.HandleFunc("/healthz", s.handleHealth).Methods(http.MethodGet)
	r.HandleFunc("/recent", s.handleRecent).Methods(http.MethodGet)
	r.HandleFunc("/tree.{format:svg|png|json}", s.handleTree).Methods(http.MethodGet)
	r.HandleFunc("/trees/{seed:[0-9]+}.{format:svg|png|json}", s.handleTree).Methods(http.MethodGet)
	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		sendError(w, "not found", http.StatusNotFound)
	})

	s.router = r
}

// Handler returns the routed handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Close stops recording recent entries.
func (s *Server) Close() {
	if s.sub != nil {
		s.sub.Unsubscribe()
	}
}

// ListenAndServe serves on addr until ctx is done, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is done.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return context.WithoutCancel(ctx) },
	}

	serverErrors := make(chan error, 1)
	go func() {
		s.logger.Info(ctx, "web service listening", "addr", ln.Addr().String())
		serverErrors <- srv.Serve(ln)
	}()

	select {
	case err := <-serverErrors:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
		s.logger.Info(context.WithoutCancel(ctx), "shutting down web service")
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
