package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/klauspost/compress/gzhttp"

	"github.com/sanverite/tactical-console/internal/assets"
	"github.com/sanverite/tactical-console/internal/core"
)

// DefaultAddress listens on all interfaces at the default port.
const DefaultAddress = ":3000"

// ServerOptions configures the HTTP server.
// Timeouts are conservative defaults suitable for a device-local server.
type ServerOptions struct {
	Addr              string
	ReadTimeout       time.Duration
	ReadHeaderTimeout time.Duration
	WriteTimeout      time.Duration
	IdleTimeout       time.Duration
	ShutdownTimeout   time.Duration
	Logger            *slog.Logger

	// Compress enables gzip responses for clients that accept it.
	// Bodies smaller than CompressMinBytes are sent as-is; zero selects
	// gzhttp.DefaultMinSize.
	Compress         bool
	CompressMinBytes int
}

// Providers supplies the data behind the API routes.
type Providers struct {
	Status      core.StatusProvider
	Orientation core.OrientationProvider
	Position    core.PositionProvider

	// Canonical selects the variant served at /api/telemetry. Empty
	// means core.VariantOrientation.
	Canonical core.Variant
}

// Server hosts the console's HTTP surface.
type Server struct {
	http     *http.Server
	ctx      core.Context
	p        Providers
	assets   *assets.Resolver
	routes   map[string]http.HandlerFunc
	logger   *slog.Logger
	opts     ServerOptions
	listener net.Listener
	serveErr chan error
}

// NewServer constructs a server. The route table is fixed here and never
// changes afterwards. The server does not listen until Start is called;
// Handler may be used directly without starting it.
func NewServer(ctx core.Context, p Providers, resolver *assets.Resolver, opts ServerOptions) (*Server, error) {
	if p.Status == nil || p.Orientation == nil || p.Position == nil {
		return nil, errors.New("api: all providers are required")
	}
	if resolver == nil {
		return nil, errors.New("api: asset resolver is required")
	}
	if p.Canonical == "" {
		p.Canonical = core.VariantOrientation
	}
	if _, err := core.ParseVariant(string(p.Canonical)); err != nil {
		return nil, fmt.Errorf("api: %w", err)
	}
	if opts.Addr == "" {
		opts.Addr = DefaultAddress
	}
	if opts.ReadTimeout == 0 {
		opts.ReadTimeout = 5 * time.Second
	}
	if opts.ReadHeaderTimeout == 0 {
		opts.ReadHeaderTimeout = 2 * time.Second
	}
	if opts.WriteTimeout == 0 {
		opts.WriteTimeout = 10 * time.Second
	}
	if opts.IdleTimeout == 0 {
		opts.IdleTimeout = 60 * time.Second
	}
	if opts.ShutdownTimeout == 0 {
		opts.ShutdownTimeout = 5 * time.Second
	}
	if opts.CompressMinBytes == 0 {
		opts.CompressMinBytes = gzhttp.DefaultMinSize
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	logger := opts.Logger.With("component", "api")

	s := &Server{
		ctx:    ctx,
		p:      p,
		assets: resolver,
		logger: logger,
		opts:   opts,

		serveErr: make(chan error, 1),
	}

	s.routes = map[string]http.HandlerFunc{
		"/api/status":                s.handleStatus,
		"/api/telemetry":             s.handleTelemetry,
		"/api/telemetry/orientation": s.handleOrientation,
		"/api/telemetry/position":    s.handlePosition,
		"/api/healthz":               s.handleHealthz,
	}

	var handler http.Handler = withBasicMiddleware(http.HandlerFunc(s.dispatch), logger)
	if opts.Compress {
		wrap, err := gzhttp.NewWrapper(gzhttp.MinSize(opts.CompressMinBytes))
		if err != nil {
			return nil, fmt.Errorf("api: gzip wrapper: %w", err)
		}
		handler = wrap(handler)
	}

	s.http = &http.Server{
		Addr:              opts.Addr,
		Handler:           handler,
		ReadTimeout:       opts.ReadTimeout,
		ReadHeaderTimeout: opts.ReadHeaderTimeout,
		WriteTimeout:      opts.WriteTimeout,
		IdleTimeout:       opts.IdleTimeout,
		ErrorLog:          slog.NewLogLogger(logger.Handler(), slog.LevelError),
		BaseContext: func(l net.Listener) context.Context {
			return context.Background()
		},
	}
	return s, nil
}

// Handler returns the full middleware-wrapped handler.
func (s *Server) Handler() http.Handler { return s.http.Handler }

// Routes returns the exact paths answered by the API, in no order.
func (s *Server) Routes() []string {
	out := make([]string, 0, len(s.routes))
	for path := range s.routes {
		out = append(out, path)
	}
	return out
}

// Start binds the listen address and serves in a background goroutine.
// Bind errors are returned; use Stop for graceful shutdown.
func (s *Server) Start() error {
	ln, err := net.Listen("tcp", s.http.Addr)
	if err != nil {
		return fmt.Errorf("api: listen %s: %w", s.http.Addr, err)
	}
	s.listener = ln
	go func() {
		s.logger.Info("listening", "addr", ln.Addr().String(), "assets", s.assets.Root())
		if err := s.http.Serve(ln); !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("serve failed", "error", err)
			s.serveErr <- fmt.Errorf("api: serve: %w", err)
		}
	}()
	return nil
}

// Err delivers at most one error if serving stops for any reason other
// than Stop. The channel is never closed.
func (s *Server) Err() <-chan error { return s.serveErr }

// Addr returns the bound address once Start has returned, or the
// configured address before that.
func (s *Server) Addr() string {
	if s.listener != nil {
		return s.listener.Addr().String()
	}
	return s.http.Addr
}

// Stop gracefully shuts down the server, waiting up to ShutdownTimeout.
func (s *Server) Stop(ctx context.Context) error {
	timeout := s.opts.ShutdownTimeout
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	return s.http.Shutdown(ctx)
}
