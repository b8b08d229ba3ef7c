package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

// NewRouter wires all handlers onto a chi router. CORS is open to all
// origins; the API is consumed directly from browsers.
func NewRouter(auth *AuthHandler, plan *PlanHandler, health *HealthHandler) *chi.Mux {
	r := chi.NewRouter()
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	}))

	r.Get("/health", health.Health)

	// Account endpoints
	r.Post("/signup", auth.Signup)
	r.Post("/login", auth.Login)

	// Trip-planning pipeline
	r.Post("/api/plan", plan.Plan)
	r.Get("/api/suggest", plan.Suggest)
	r.Post("/api/suggest/select", plan.SelectSuggestion)
	r.Get("/api/geocode/reverse", plan.ReverseGeocode)
	r.Get("/api/state", plan.State)

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("Metrosync API"))
	})

	return r
}
