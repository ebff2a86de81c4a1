package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/agbru/dogyears/internal/fact"
	"github.com/agbru/dogyears/internal/logging"
	"github.com/agbru/dogyears/internal/submission"
)

const (
	defaultShutdownTimeout   = 5 * time.Second
	defaultReadHeaderTimeout = 5 * time.Second
)

// Config holds the HTTP server settings.
type Config struct {
	Addr            string
	FactTimeout     time.Duration
	ShutdownTimeout time.Duration
	Security        SecurityConfig
}

// Server serves the dog years API.
type Server struct {
	provider fact.Provider
	config   Config
	logger   logging.Logger
	metrics  *Metrics
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the request logger.
func WithLogger(l logging.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithMetrics shares m instead of a server-private registry.
func WithMetrics(m *Metrics) Option {
	return func(s *Server) {
		if m != nil {
			s.metrics = m
		}
	}
}

// New creates a server. Zero config fields take their defaults.
func New(provider fact.Provider, config Config, opts ...Option) *Server {
	if config.FactTimeout <= 0 {
		config.FactTimeout = submission.DefaultTimeout
	}
	if config.ShutdownTimeout <= 0 {
		config.ShutdownTimeout = defaultShutdownTimeout
	}
	if config.Security.AllowedMethods == nil {
		config.Security = DefaultSecurityConfig()
	}
	s := &Server{
		provider: provider,
		config:   config,
		logger:   logging.NopLogger{},
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.metrics == nil {
		s.metrics = NewMetrics()
	}
	return s
}

// Handler returns the routed handler with all middleware applied.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	routes := map[string]http.HandlerFunc{
		"/api/convert":   s.handleConvert,
		"/api/fact":      s.handleFact,
		"/api/calculate": s.handleCalculate,
		"/healthz":       s.handleHealth,
		"/metrics":       s.handleMetrics,
	}
	for path, h := range routes {
		mux.HandleFunc(path, s.chain(h))
	}
	return mux
}

func (s *Server) chain(h http.HandlerFunc) http.HandlerFunc {
	return requestIDMiddleware(s.loggingMiddleware(s.metricsMiddleware(SecurityMiddleware(s.config.Security, h))))
}

// ListenAndServe listens on the configured address and serves until ctx
// is done.
func (s *Server) ListenAndServe(ctx context.Context) error {
	var lc net.ListenConfig
	ln, err := lc.Listen(ctx, "tcp", s.config.Addr)
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is done, then shuts down
// gracefully within the shutdown timeout.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: defaultReadHeaderTimeout,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s.logger.Info("server listening", logging.String("addr", ln.Addr().String()))
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.config.ShutdownTimeout)
		defer cancel()
		s.logger.Info("server shutting down")
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
