// Package web serves the employee table over HTTP.
//
// The browser drives the table through htmx: every header click, row click,
// cell double-click, input blur and form submission is a small POST that
// emits the matching widget event and returns the re-rendered table. Table
// state lives only in this process.
package web

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/JonMunkholm/employee-table/internal/config"
	"github.com/JonMunkholm/employee-table/internal/notify"
	appmw "github.com/JonMunkholm/employee-table/internal/web/middleware"
	"github.com/JonMunkholm/employee-table/internal/widget"
)

// Server is the HTTP front end for one employee table.
type Server struct {
	// mu serialises widget events; the widget itself does not lock.
	mu         sync.Mutex
	widget     *widget.Widget
	lastSubmit widget.SubmitResult

	notes   *notify.Presenter
	cfg     *config.Config
	router  *chi.Mux
	server  *http.Server
	limiter *rateLimiter
}

// NewServer creates a server for w. Notifications pushed by the widget must
// go to notes so the page can poll them.
func NewServer(w *widget.Widget, notes *notify.Presenter, cfg *config.Config) *Server {
	s := &Server{
		widget: w,
		notes:  notes,
		cfg:    cfg,
		router: chi.NewRouter(),
	}
	w.Submitted.Subscribe(func(res widget.SubmitResult) { s.lastSubmit = res })

	s.setupMiddleware()
	s.setupRoutes()
	return s
}

// setupMiddleware configures middleware for all routes.
func (s *Server) setupMiddleware() {
	s.router.Use(middleware.RequestID)
	s.router.Use(appmw.TrustedRealIP(s.cfg.Security.TrustedProxies))
	s.router.Use(appmw.Logger)
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.Timeout(s.cfg.Server.RequestTimeout))
	s.router.Use(securityHeaders(s.cfg.Security.EnableCSP))

	if s.cfg.Rate.Enabled {
		s.limiter = newRateLimiter(s.cfg.Rate.RequestsPerMinute, time.Minute)
		s.router.Use(s.limiter.middleware)
	}
}

// setupRoutes configures all HTTP routes.
func (s *Server) setupRoutes() {
	s.router.Get("/", s.handleIndex)
	s.router.Get("/notifications", s.handleNotifications)

	// Table interactions; each returns the re-rendered table.
	s.router.Post("/columns/{col}/sort", s.handleSortColumn)
	s.router.Post("/rows/{row}/select", s.handleSelectRow)
	s.router.Post("/cells/{row}/{col}/edit", s.handleBeginEdit)
	s.router.Post("/edit/input", s.handleEditInput)
	s.router.Post("/edit/end", s.handleEndEdit)
	s.router.Post("/employees", s.handleAddEmployee)

	s.router.Route("/api", func(r chi.Router) {
		r.Use(appmw.APIKeyAuth(&s.cfg.Security))
		r.Get("/grid", s.handleGridJSON)
	})
}

// Start listens on the configured address until Shutdown is called.
func (s *Server) Start() error {
	s.server = &http.Server{
		Addr:         s.cfg.Server.Addr(),
		Handler:      s.router,
		ReadTimeout:  s.cfg.Server.ReadTimeout,
		WriteTimeout: s.cfg.Server.WriteTimeout,
		IdleTimeout:  s.cfg.Server.IdleTimeout,
	}
	return s.server.ListenAndServe()
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.limiter != nil {
		s.limiter.stop()
	}
	if s.server == nil {
		return nil
	}
	return s.server.Shutdown(ctx)
}

// Router returns the underlying chi router for testing.
func (s *Server) Router() *chi.Mux {
	return s.router
}

// securityHeaders adds security headers to all responses.
func securityHeaders(enableCSP bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("X-Content-Type-Options", "nosniff")
			w.Header().Set("X-Frame-Options", "DENY")
			w.Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")

			// htmx is loaded from unpkg; styles are inline.
			if enableCSP {
				w.Header().Set("Content-Security-Policy",
					"default-src 'self'; script-src 'self' 'unsafe-inline' https://unpkg.com; style-src 'self' 'unsafe-inline'")
			}

			next.ServeHTTP(w, r)
		})
	}
}

// writeJSON encodes v as JSON and writes it to w.
// Encoding errors are only logged since headers are already sent.
func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("json encode error", "error", err)
	}
}
