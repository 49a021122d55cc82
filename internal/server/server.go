package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/vivek-dahikar/AutoRegisterAgent/config"
	"github.com/vivek-dahikar/AutoRegisterAgent/internal/handlers"
	"github.com/vivek-dahikar/AutoRegisterAgent/internal/logging"
	"github.com/vivek-dahikar/AutoRegisterAgent/internal/mq"
	"github.com/vivek-dahikar/AutoRegisterAgent/internal/services"
	"github.com/vivek-dahikar/AutoRegisterAgent/internal/store"
	"github.com/vivek-dahikar/AutoRegisterAgent/internal/textgen"
)

const shutdownTimeout = 10 * time.Second

// Server wraps the HTTP server and router.
type Server struct {
	httpServer *http.Server
	router     *chi.Mux
	queue      *mq.MQ
	events     *services.EventPublisher
	logger     logging.Logger
}

type options struct {
	generator textgen.Generator
	creds     services.CredentialStore
	queue     *mq.MQ
	queueSet  bool
}

// Option overrides a dependency that New would otherwise build from config.
type Option func(*options)

// WithGenerator replaces the Ollama generator.
func WithGenerator(g textgen.Generator) Option {
	return func(o *options) { o.generator = g }
}

// WithCredentialStore replaces the in-memory credential store.
func WithCredentialStore(s services.CredentialStore) Option {
	return func(o *options) { o.creds = s }
}

// WithQueue replaces the configured event queue. A nil queue disables events.
func WithQueue(q *mq.MQ) Option {
	return func(o *options) {
		o.queue = q
		o.queueSet = true
	}
}

// New constructs a Server with basic middleware and defaults.
func New(ctx context.Context, cfg config.Config, logger logging.Logger, opts ...Option) (*Server, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var o options
	for _, opt := range opts {
		opt(&o)
	}

	if o.generator == nil {
		ollama, err := textgen.NewOllamaGenerator(cfg.LLM, nil)
		if err != nil {
			return nil, err
		}
		o.generator = ollama
	}
	generator := textgen.WithTimeout(o.generator, cfg.LLM.Timeout)

	if !o.queueSet {
		queue, err := mq.Open(ctx, cfg.MQ)
		if err != nil {
			return nil, err
		}
		o.queue = queue
	}

	if o.creds == nil {
		o.creds = store.NewCredentialRepository()
	}

	events := services.NewEventPublisher(o.queue, cfg.MQ.Channel, logger)
	authService := services.NewAuthService(o.creds, generator, events, logger)
	relayService := services.NewRelayService(generator)

	requestTimeout := cfg.LLM.Timeout + 5*time.Second

	router := chi.NewRouter()
	router.Use(
		middleware.RequestID,
		middleware.RealIP,
		middleware.Logger,
		handlers.Recoverer(logger),
		middleware.Timeout(requestTimeout),
	)
	router.Get("/healthz", handlers.Healthz)
	handlers.AuthRouter(router, authService, logger)
	handlers.ProcessRouter(router, relayService, logger)

	httpServer := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: requestTimeout + 5*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return &Server{
		httpServer: httpServer,
		router:     router,
		queue:      o.queue,
		events:     events,
		logger:     logger,
	}, nil
}

// Router exposes the chi router for route registration.
func (s *Server) Router() *chi.Mux {
	return s.router
}

// Addr returns the configured listen address.
func (s *Server) Addr() string {
	return s.httpServer.Addr
}

// Run listens on the configured address and serves until ctx is done.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.httpServer.Addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", s.httpServer.Addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is done, then shuts down gracefully.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info(ctx, "http server listening", "addr", ln.Addr().String())
		errCh <- s.httpServer.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()
	s.logger.Info(shutdownCtx, "shutting down http server")
	if err := s.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown stops accepting requests, waits for in-flight ones and pending
// auth events, then closes the event queue.
func (s *Server) Shutdown(ctx context.Context) error {
	err := s.httpServer.Shutdown(ctx)
	if werr := s.events.Wait(ctx); werr != nil {
		s.logger.Warn(ctx, "auth events still pending at shutdown", "error", werr)
	}
	if s.queue != nil {
		if qerr := s.queue.Close(); qerr != nil && err == nil {
			err = qerr
		}
	}
	return err
}
