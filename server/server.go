package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/healthwrapped/models"
	"github.com/healthwrapped/templates"
	"go.uber.org/zap"
)

const slidesPath = "/slides"

// Loader produces the snapshot for one page view.
type Loader interface {
	Download(ctx context.Context) (*models.WrappedData, error)
}

// Server hosts the Wrapped page.
type Server struct {
	*http.Server
	loader Loader
	logger *zap.Logger
}

func newRouter(logger *zap.Logger) chi.Router {
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(loggingMiddleware(logger))
	router.Use(middleware.Recoverer)
	router.Get("/health", healthHandler)
	return router
}

// New wires the page routes around loader.
func New(addr string, loader Loader, logger *zap.Logger) *Server {
	router := newRouter(logger)
	s := &Server{
		Server: &http.Server{
			Addr:              addr,
			Handler:           router,
			ReadHeaderTimeout: 15 * time.Second,
		},
		loader: loader,
		logger: logger,
	}

	fs := http.FileServerFS(templates.Static())
	router.Handle("/static/*", http.StripPrefix("/static/", fs))

	router.Get("/", s.indexHandler)
	router.Get(slidesPath, s.slidesHandler)

	return s
}

// NewSnapshotServer serves a fixed snapshot at /wrapped, standing in for the
// aggregation service during development.
func NewSnapshotServer(addr string, snapshot *models.WrappedData, logger *zap.Logger) *Server {
	router := newRouter(logger)
	router.With(corsMiddleware).Get("/wrapped", snapshotHandler(snapshot, logger))
	router.With(corsMiddleware).Options("/wrapped", snapshotHandler(snapshot, logger))

	return &Server{
		Server: &http.Server{
			Addr:              addr,
			Handler:           router,
			ReadHeaderTimeout: 15 * time.Second,
		},
		logger: logger,
	}
}

// Serve listens until ctx is cancelled, then shuts down gracefully.
func (s *Server) Serve(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("Server starting", zap.String("addr", s.Addr))
		if err := s.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("Server shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.Shutdown(shutdownCtx)
}
