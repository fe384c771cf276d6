// Package api provides the HTTP surface of the planner: read endpoints for
// the dashboard, calendar, list, clients, and finance views, and mutation
// endpoints that call back into the planner core.
package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/agencyflow/agencyflow/internal/app/planner"
	"github.com/agencyflow/agencyflow/internal/domain"
)

// Server is the AgencyFlow HTTP API server.
type Server struct {
	planner        *planner.Planner
	captions       domain.CaptionGenerator
	metricsEnabled bool
}

// NewServer creates a new API server.
func NewServer(p *planner.Planner, captions domain.CaptionGenerator) *Server {
	return &Server{planner: p, captions: captions}
}

// EnableMetrics enables the /metrics Prometheus endpoint.
func (s *Server) EnableMetrics() { s.metricsEnabled = true }

// Handler returns the chi router with all routes mounted.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(confirmMiddleware)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{
			"status": "ok",
		})
	})

	r.Route("/api", func(r chi.Router) {
		r.Get("/state", s.handleState)

		r.Post("/brands", s.handleAddBrand)
		r.Delete("/brands/{id}", s.handleDeleteBrand)

		r.Get("/content", s.handleListContent)
		r.Post("/content", s.handleAddContent)
		r.Post("/content/{id}/toggle", s.handleToggleContent)
		r.Delete("/content/{id}", s.handleDeleteContent)

		r.Post("/finances", s.handleAddFinance)
		r.Delete("/finances/{id}", s.handleDeleteFinance)

		r.Post("/reset-month", s.handleResetMonth)

		r.Get("/dashboard", s.handleDashboard)
		r.Get("/calendar", s.handleCalendar)

		r.Post("/caption", s.handleCaption)
	})

	if s.metricsEnabled {
		r.Handle("/metrics", promhttp.Handler())
	}

	return r
}

// Run starts the HTTP server on the given address.
func (s *Server) Run(addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return srv.ListenAndServe()
}

// ─── Response Helpers ───────────────────────────────────────────────────────

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
