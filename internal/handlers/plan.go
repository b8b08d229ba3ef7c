package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/DHAIRYADHOLU/Metrosync/internal/geocode"
	"github.com/DHAIRYADHOLU/Metrosync/internal/metrics"
	"github.com/DHAIRYADHOLU/Metrosync/internal/models"
	"github.com/DHAIRYADHOLU/Metrosync/internal/planner"
	"github.com/DHAIRYADHOLU/Metrosync/internal/suggest"
)

// PlanHandler serves the trip-planning pipeline: route planning, address
// suggestions and reverse geocoding, plus per-session planner state.
type PlanHandler struct {
	planner   *planner.Planner
	suggester *suggest.Provider
	resolver  *geocode.Resolver
	metrics   *metrics.Collector
	sessions  *sessionStore
}

// NewPlanHandler creates the handler for the planning endpoints.
func NewPlanHandler(p *planner.Planner, s *suggest.Provider, r *geocode.Resolver, m *metrics.Collector) *PlanHandler {
	return &PlanHandler{
		planner:   p,
		suggester: s,
		resolver:  r,
		metrics:   m,
		sessions:  newSessionStore(),
	}
}

// PlanResponse is the JSON response for POST /api/plan.
type PlanResponse struct {
	DistanceKm string               `json:"distanceKm"`
	Duration   string               `json:"duration"`
	Steps      []models.Step        `json:"steps"`
	Itinerary  []planner.DisplayRow `json:"itinerary"`
}

// SuggestResponse is the JSON response for GET /api/suggest.
type SuggestResponse struct {
	Suggestions []models.AddressSuggestion `json:"suggestions"`
}

// AddressResponse is the JSON response for GET /api/geocode/reverse.
type AddressResponse struct {
	Address string `json:"address"`
}

// Plan handles POST /api/plan. One routing call per request; a failure is
// terminal for the request and never overwrites session state from a
// newer attempt.
func (h *PlanHandler) Plan(w http.ResponseWriter, r *http.Request) {
	var req models.TripRequest
	if err := parseJSONBody(r, &req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	session := h.sessions.fromRequest(r)
	var gen uint64
	if session != nil {
		gen = session.Begin()
	}

	start := time.Now()
	plan, err := h.planner.Plan(r.Context(), req)
	h.metrics.CollaboratorDuration.WithLabelValues("directions").Observe(time.Since(start).Seconds())

	mode := string(req.Mode)
	switch {
	case err == nil:
		h.metrics.PlansTotal.WithLabelValues(mode, "ok").Inc()
		if session != nil {
			session.Dispatch(planner.SetPlan{Generation: gen, Plan: plan})
		}
		writeJSON(w, http.StatusOK, PlanResponse{
			DistanceKm: plan.DistanceKm,
			Duration:   plan.DurationLabel,
			Steps:      plan.Steps,
			Itinerary:  planner.Present(plan.Steps),
		})
	case errors.Is(err, planner.ErrInvalidRequest):
		h.metrics.PlansTotal.WithLabelValues(mode, "invalid").Inc()
		writeMessage(w, http.StatusBadRequest, "Please enter valid start and end addresses.")
	case errors.Is(err, planner.ErrNoRouteFound):
		h.metrics.PlansTotal.WithLabelValues(mode, "no_route").Inc()
		if session != nil {
			session.Dispatch(planner.PlanFailed{Generation: gen, Notice: "No route found. Please check your start and end addresses."})
		}
		writeMessage(w, http.StatusNotFound, "No route found. Please check your start and end addresses.")
	default:
		log.Printf("Routing request failed: %v", err)
		h.metrics.PlansTotal.WithLabelValues(mode, "error").Inc()
		if session != nil {
			session.Dispatch(planner.PlanFailed{Generation: gen, Notice: "Directions service unavailable."})
		}
		writeMessage(w, http.StatusBadGateway, "Directions service unavailable.")
	}
}

// Suggest handles GET /api/suggest?input=...&field=start|destination.
func (h *PlanHandler) Suggest(w http.ResponseWriter, r *http.Request) {
	input := r.URL.Query().Get("input")
	field := r.URL.Query().Get("field")

	start := time.Now()
	suggestions, err := h.suggester.Suggest(r.Context(), input)
	h.metrics.CollaboratorDuration.WithLabelValues("autocomplete").Observe(time.Since(start).Seconds())
	if err != nil {
		log.Printf("Autocomplete failed: %v", err)
		h.metrics.SuggestionsTotal.WithLabelValues("error").Inc()
		writeMessage(w, http.StatusBadGateway, "Address suggestions unavailable.")
		return
	}
	if len(suggestions) == 0 {
		h.metrics.SuggestionsTotal.WithLabelValues("skipped").Inc()
	} else {
		h.metrics.SuggestionsTotal.WithLabelValues("ok").Inc()
	}

	if session := h.sessions.fromRequest(r); session != nil {
		switch field {
		case "start":
			session.Dispatch(planner.SetStartSuggestions{Suggestions: suggestions})
		case "destination":
			session.Dispatch(planner.SetDestinationSuggestions{Suggestions: suggestions})
		}
	}

	writeJSON(w, http.StatusOK, SuggestResponse{Suggestions: suggestions})
}

// selectSuggestionRequest is the body of POST /api/suggest/select.
type selectSuggestionRequest struct {
	Field       string `json:"field"`
	Description string `json:"description"`
}

// SelectSuggestion handles POST /api/suggest/select: it copies the chosen
// description into the matching address field and clears that field's
// suggestion list only.
func (h *PlanHandler) SelectSuggestion(w http.ResponseWriter, r *http.Request) {
	var req selectSuggestionRequest
	if err := parseJSONBody(r, &req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	session := h.sessions.fromRequest(r)
	if session == nil {
		writeMessage(w, http.StatusBadRequest, "Session token required")
		return
	}

	var state planner.State
	switch req.Field {
	case "start":
		state = session.Dispatch(planner.SelectStartSuggestion{Description: req.Description})
	case "destination":
		state = session.Dispatch(planner.SelectDestinationSuggestion{Description: req.Description})
	default:
		writeMessage(w, http.StatusBadRequest, "field must be start or destination")
		return
	}

	writeJSON(w, http.StatusOK, stateResponse(state))
}

// ReverseGeocode handles GET /api/geocode/reverse?lat=...&lng=... . On
// success the session's origin field is overwritten with the resolved
// address; on failure nothing is updated.
func (h *PlanHandler) ReverseGeocode(w http.ResponseWriter, r *http.Request) {
	lat, errLat := strconv.ParseFloat(r.URL.Query().Get("lat"), 64)
	lng, errLng := strconv.ParseFloat(r.URL.Query().Get("lng"), 64)
	if errLat != nil || errLng != nil {
		writeMessage(w, http.StatusBadRequest, "lat and lng are required")
		return
	}

	start := time.Now()
	address, err := h.resolver.ResolveCoordinate(r.Context(), lat, lng)
	h.metrics.CollaboratorDuration.WithLabelValues("geocode").Observe(time.Since(start).Seconds())

	switch {
	case err == nil:
		h.metrics.GeocodesTotal.WithLabelValues("ok").Inc()
		if session := h.sessions.fromRequest(r); session != nil {
			session.Dispatch(planner.SetOrigin{Text: address})
		}
		writeJSON(w, http.StatusOK, AddressResponse{Address: address})
	case errors.Is(err, geocode.ErrNoResult):
		h.metrics.GeocodesTotal.WithLabelValues("no_result").Inc()
		writeMessage(w, http.StatusNotFound, "Could not fetch address for the current location.")
	default:
		log.Printf("Reverse geocoding failed: %v", err)
		h.metrics.GeocodesTotal.WithLabelValues("error").Inc()
		writeMessage(w, http.StatusBadGateway, "Failed to get current location.")
	}
}

// StateResponse is the JSON snapshot of a session's planner state.
type StateResponse struct {
	Origin                 string                     `json:"origin"`
	Destination            string                     `json:"destination"`
	Mode                   models.TravelMode          `json:"mode,omitempty"`
	StartSuggestions       []models.AddressSuggestion `json:"startSuggestions"`
	DestinationSuggestions []models.AddressSuggestion `json:"destinationSuggestions"`
	Plan                   *models.RoutePlan          `json:"plan,omitempty"`
	Notice                 string                     `json:"notice,omitempty"`
}

func stateResponse(s planner.State) StateResponse {
	return StateResponse{
		Origin:                 s.Origin,
		Destination:            s.Destination,
		Mode:                   s.Mode,
		StartSuggestions:       s.StartSuggestions,
		DestinationSuggestions: s.DestinationSuggestions,
		Plan:                   s.Plan,
		Notice:                 s.Notice,
	}
}

// State handles GET /api/state.
func (h *PlanHandler) State(w http.ResponseWriter, r *http.Request) {
	session := h.sessions.fromRequest(r)
	if session == nil {
		writeMessage(w, http.StatusBadRequest, "Session token required")
		return
	}
	writeJSON(w, http.StatusOK, stateResponse(session.State()))
}
