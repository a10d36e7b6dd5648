/*
server.go - HTTP router and middleware configuration

PURPOSE:
  Configures the HTTP router (chi), middleware stack, and route
  definitions. This is the wiring layer that connects URLs to handlers.

MIDDLEWARE STACK:
  1. Logger:     Request logging
  2. Recoverer:  Panic recovery (500 instead of crash)
  3. RequestID:  Unique ID per request for tracing
  4. CORS:       Cross-origin requests for the frontend

ROUTE GROUPS:
  /api/compensation/*   Calculation and autofill
  /api/rates/*          Reference tables
  /api/profiles/*       Stored physician profiles
  /api/examples/*       Example presets
  /                     Minimal landing page

SEE ALSO:
  - handlers.go: Handler implementations
  - cmd/server/main.go: Server startup
*/
package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// NewRouter creates a new router with all routes configured.
func NewRouter(h *Handler, allowedOrigins []string) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	r.Route("/api", func(r chi.Router) {
		r.Route("/compensation", func(r chi.Router) {
			r.Post("/calculate", h.Calculate)
			r.Post("/direct-care-days", h.DirectCareDays)
		})

		r.Route("/rates", func(r chi.Router) {
			r.Get("/ranks", h.ListRanks)
			r.Get("/shifts", h.ListShiftRates)
		})

		r.Route("/profiles", func(r chi.Router) {
			r.Get("/", h.ListProfiles)
			r.Post("/", h.CreateProfile)
			r.Get("/{id}", h.GetProfile)
			r.Put("/{id}", h.UpdateProfile)
			r.Delete("/{id}", h.DeleteProfile)
			r.Post("/{id}/calculate", h.CalculateProfile)
		})

		r.Route("/examples", func(r chi.Router) {
			r.Get("/", h.ListExamples)
			r.Post("/{id}/calculate", h.CalculateExample)
		})
	})

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(`<!DOCTYPE html>
<html>
<head><title>Hospitalist Compensation Calculator</title></head>
<body style="font-family: system-ui; max-width: 800px; margin: 50px auto; padding: 20px;">
<h1>Hospitalist Compensation Calculator API</h1>
<p>FY27 (July 1, 2026 - June 30, 2027). Estimates only; final numbers are
confirmed when the schedule is published.</p>
<h2>API Endpoints</h2>
<ul>
<li>POST <code>/api/compensation/calculate</code> - run a calculation</li>
<li><a href="/api/rates/ranks">/api/rates/ranks</a> - rank table</li>
<li><a href="/api/rates/shifts">/api/rates/shifts</a> - shift reference</li>
<li><a href="/api/profiles">/api/profiles</a> - stored profiles</li>
<li><a href="/api/examples">/api/examples</a> - example physicians</li>
</ul>
</body>
</html>`))
	})

	return r
}
