// Package server exposes the executive suite over HTTP: PIN login, JSON
// view models, report previews and PDF downloads, and the POS cart.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	larkreport "github.com/alnah/go-larkreport"
	"github.com/alnah/go-larkreport/internal/fixtures"
	"github.com/alnah/go-larkreport/internal/session"
	"github.com/alnah/go-larkreport/internal/suite"
)

// Defaults applied to zero Config values.
const (
	DefaultAddr         = "localhost:8501"
	DefaultReadTimeout  = 15 * time.Second
	DefaultWriteTimeout = 30 * time.Second
	defaultIdleTimeout  = 60 * time.Second
	shutdownTimeout     = 10 * time.Second
)

// Exporter renders report sections. *larkreport.Service satisfies it.
type Exporter interface {
	Export(ctx context.Context, in larkreport.Input) ([]byte, error)
	Preview(ctx context.Context, in larkreport.Input) (string, error)
}

// Config holds server settings.
type Config struct {
	Addr         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration

	Title   string                // Report header, empty = larkreport.DefaultTitle
	Date    string                // Date value resolved per request ("auto", literal, or empty)
	Receipt suite.ReceiptSettings // Branding and pricing of receipts

	Now func() time.Time // Clock, nil = time.Now
}

// Server serves the suite.
type Server struct {
	cfg      Config
	store    *fixtures.Store
	sessions *session.Store
	exporter Exporter
	log      *zap.Logger
	handler  http.Handler
}

// New builds a Server. A nil logger disables logging.
func New(cfg Config, store *fixtures.Store, exporter Exporter, log *zap.Logger) *Server {
	if cfg.Addr == "" {
		cfg.Addr = DefaultAddr
	}
	if cfg.ReadTimeout == 0 {
		cfg.ReadTimeout = DefaultReadTimeout
	}
	if cfg.WriteTimeout == 0 {
		cfg.WriteTimeout = DefaultWriteTimeout
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if log == nil {
		log = zap.NewNop()
	}

	s := &Server{
		cfg:      cfg,
		store:    store,
		sessions: session.NewStore(),
		exporter: exporter,
		log:      log,
	}

	var h http.Handler = s.routes()
	h = loggingMiddleware(log)(h)
	h = recoveryMiddleware(log)(h)
	s.handler = h
	return s
}

// Handler returns the root handler with middleware applied.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Addr returns the listen address.
func (s *Server) Addr() string {
	return s.cfg.Addr
}

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.handler,
		ReadTimeout:       s.cfg.ReadTimeout,
		ReadHeaderTimeout: s.cfg.ReadTimeout,
		WriteTimeout:      s.cfg.WriteTimeout,
		IdleTimeout:       defaultIdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("server starting", zap.String("addr", s.cfg.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.log.Info("server shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down: %w", err)
	}
	return nil
}

func (s *Server) routes() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.HandleFunc("POST /login", s.handleLogin)
	mux.HandleFunc("POST /logout", s.handleLogout)

	mux.Handle("GET /api/kpis", s.requireAuth(s.handleKPIs))
	mux.Handle("GET /api/products", s.requireAuth(s.handleProducts))
	mux.Handle("GET /api/menu", s.requireAuth(s.handleMenu))
	mux.Handle("GET /api/alerts", s.requireAuth(s.handleAlerts))
	mux.Handle("GET /api/inventory", s.requireAuth(s.handleInventory))
	mux.Handle("GET /api/inventory/reorder", s.requireAuth(s.handleReorder))
	mux.Handle("GET /api/reports", s.requireAuth(s.handleReportList))
	mux.Handle("GET /api/reports/{section}", s.requireAuth(s.handleReport))
	mux.Handle("GET /reports/{file}", s.requireAuth(s.handleReportFile))

	mux.Handle("GET /api/cart", s.requireAuth(s.handleCart))
	mux.Handle("POST /api/cart", s.requireAuth(s.handleCartAdd))
	mux.Handle("POST /api/cart/charge", s.requireAuth(s.handleCharge))
	mux.Handle("GET /api/receipt", s.requireAuth(s.handleReceipt))

	return mux
}
