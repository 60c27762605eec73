// Package server assembles the HTTP router and runs the listener.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/janisto/banner-server/internal/http/routes"
	"github.com/janisto/banner-server/internal/platform/api"
	applog "github.com/janisto/banner-server/internal/platform/logging"
	appmiddleware "github.com/janisto/banner-server/internal/platform/middleware"
	"github.com/janisto/banner-server/internal/platform/respond"
)

const (
	// Title is the API name reported in the OpenAPI info block.
	Title = "Banner Server API"

	shutdownTimeout = 10 * time.Second
)

// NewRouter builds the router with the base middleware stack and all routes.
// Unmatched paths and unmatched methods both fall back to a 404 ErrorBody.
func NewRouter(version string) chi.Router {
	router := chi.NewRouter()
	router.NotFound(respond.NotFoundHandler())
	router.MethodNotAllowed(respond.NotFoundHandler())

	// Base middleware stack
	router.Use(
		appmiddleware.Security(),
		appmiddleware.Vary(),
		appmiddleware.CORS(),
		appmiddleware.RequestID(),
		applog.RequestLogger(),
		applog.AccessLogger(),
		respond.Recoverer(),
		// GetHead answers HEAD on GET routes.
		chimiddleware.GetHead,
	)

	routes.Register(api.New(router, Title, version))
	return router
}

// NewHTTPServer wraps handler in an http.Server. Only the header read is
// bounded; request handling itself has no timeout.
func NewHTTPServer(handler http.Handler) *http.Server {
	return &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		MaxHeaderBytes:    64 << 10, // 64 KB
	}
}

// Listen binds a TCP listener on addr.
func Listen(addr string) (net.Listener, error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("bind %s: %w", addr, err)
	}
	return ln, nil
}

// Run serves srv on ln until ctx is cancelled, then shuts down gracefully.
// It returns nil after a clean shutdown and the serve error otherwise.
func Run(ctx context.Context, srv *http.Server, ln net.Listener) error {
	serveErr := make(chan error, 1)
	go func() {
		serveErr <- srv.Serve(ln)
	}()

	select {
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve: %w", err)
	case <-ctx.Done():
	}

	applog.LogInfo(ctx, "shutdown signal received")
	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
