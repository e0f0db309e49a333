/*
server.go - HTTP router and middleware configuration

PURPOSE:
  Configures the chi router, middleware stack, and route definitions.
  This is the wiring layer that connects URLs to handlers.

MIDDLEWARE STACK:
  1. Logger:     Request logging
  2. Recoverer:  Panic recovery (500 instead of crash)
  3. RequestID:  Unique ID per request for tracing
  4. CORS:       Cross-origin requests for a frontend
  5. RequireAuth on /api/leases: bearer-token to owner resolution

ROUTE GROUPS:
  /api/leases/*     Lease records and derived calculations (authenticated)
  /api/scenarios/*  Demo data loaders (open; dev environments only)

SEE ALSO:
  - handlers.go: Handler implementations
  - cmd/server/main.go: Server startup
*/
package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// NewRouter creates a router with all routes configured.
func NewRouter(h *Handler, verifier TokenVerifier) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:5173", "http://localhost:8080"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	r.Route("/api", func(r chi.Router) {
		r.Route("/leases", func(r chi.Router) {
			r.Use(RequireAuth(verifier))
			r.Get("/", h.ListLeases)
			r.Post("/", h.CreateLease)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", h.GetLease)
				r.Put("/", h.UpdateLease)
				r.Delete("/", h.DeleteLease)
				r.Get("/calculation", h.GetCalculation)
				r.Get("/journal-entries", h.GetJournalEntries)
				r.Get("/sublease-income", h.GetSubleaseIncome)
			})
		})

		r.Route("/scenarios", func(r chi.Router) {
			r.Get("/", h.ListScenarios)
			r.Post("/load", h.LoadScenario)
		})
	})

	return r
}
