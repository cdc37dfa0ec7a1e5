// Package server provides HTTP server initialization and lifecycle
// management for the heritage query API.
package server

import (
	"context"
	"fmt"
	"log"
	"net"
	"net/http"
	"time"

	"github.com/scrypster/heritage/internal/config"
	"github.com/scrypster/heritage/web/handlers"
)

// securityHeadersMiddleware adds security headers to all HTTP
// responses.
func securityHeadersMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")
		next.ServeHTTP(w, r)
	})
}

// Start initializes and starts the HTTP server serving queries against
// source. It returns the actual address being listened on (useful for
// testing with port 0) and the WebSocket hub so callers can broadcast
// dataset events. The server shuts down when ctx is cancelled.
func Start(ctx context.Context, cfg *config.Config, source *DatasetSource) (string, *handlers.WebSocketHub, error) {
	mux := http.NewServeMux()

	api := handlers.NewAPIHandlers(source)
	hub := handlers.NewWebSocketHub()
	ws := handlers.NewWSHandler(source, hub)

	mux.HandleFunc("/api/health", api.HandleHealth)
	mux.HandleFunc("/api/stats", api.HandleStats)
	mux.HandleFunc("/api/person", api.HandlePerson)
	mux.HandleFunc("/api/path", api.HandlePath)
	mux.Handle("/ws", ws)

	rl := handlers.NewRateLimiter(cfg.Limits.RateLimitPerSec, cfg.Limits.RateLimitBurst)

	var handler http.Handler = mux
	handler = handlers.RateLimitMiddleware(handler, rl)
	handler = handlers.RequireAuth(handler, cfg)
	handler = securityHeadersMiddleware(handler)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return "", nil, fmt.Errorf("server: listen on %s: %w", addr, err)
	}

	srv := &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		if err := srv.Serve(ln); err != nil && err != http.ErrServerClosed {
			log.Printf("server: serve: %v", err)
		}
	}()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Printf("server: shutdown: %v", err)
		}
	}()

	return ln.Addr().String(), hub, nil
}
