// Package planner turns an (origin, destination, mode) triple into a
// route plan: total distance, total duration and an ordered step list.
package planner

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/DHAIRYADHOLU/Metrosync/internal/maps"
	"github.com/DHAIRYADHOLU/Metrosync/internal/models"
)

var (
	// ErrInvalidRequest marks a request rejected before any routing call.
	ErrInvalidRequest = errors.New("invalid trip request")
	// ErrNoRouteFound marks a routing response without a usable route.
	ErrNoRouteFound = errors.New("no route found")
)

// transitVehicleKinds is the fixed mode filter applied to every
// transit-routed request.
var transitVehicleKinds = []string{"bus", "subway", "train"}

// DirectionsAPI is the slice of the provider client the planner needs.
type DirectionsAPI interface {
	Directions(ctx context.Context, req maps.DirectionsRequest) (*maps.DirectionsResponse, error)
}

// Planner issues routing queries and collapses the response to a single
// route summary.
type Planner struct {
	api DirectionsAPI
}

// NewPlanner creates a planner backed by the given directions client.
func NewPlanner(api DirectionsAPI) *Planner {
	return &Planner{api: api}
}

// Plan validates the request, issues exactly one routing call and derives
// the plan from the first leg of the first returned route. Alternate
// routes and extra legs are discarded. On any failure no partial plan is
// produced.
func (p *Planner) Plan(ctx context.Context, req models.TripRequest) (*models.RoutePlan, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}

	resp, err := p.api.Directions(ctx, buildDirectionsRequest(req))
	if err != nil {
		return nil, fmt.Errorf("routing request failed: %w", err)
	}
	if !resp.OK() {
		return nil, fmt.Errorf("%w: provider status %s", ErrNoRouteFound, resp.Status)
	}
	if len(resp.Routes) == 0 || len(resp.Routes[0].Legs) == 0 {
		return nil, fmt.Errorf("%w: provider returned no legs", ErrNoRouteFound)
	}

	leg := resp.Routes[0].Legs[0]
	if len(leg.Steps) == 0 {
		return nil, fmt.Errorf("%w: provider returned no steps", ErrNoRouteFound)
	}

	steps := make([]models.Step, 0, len(leg.Steps))
	for _, s := range leg.Steps {
		steps = append(steps, convertStep(s))
	}

	return &models.RoutePlan{
		DistanceKm:    fmt.Sprintf("%.2f", float64(leg.Distance.Value)/1000),
		DurationLabel: FormatDuration(leg.Duration.Value),
		Steps:         steps,
	}, nil
}

// buildDirectionsRequest shapes the outgoing query by travel mode.
// Transit-routed requests (TRANSIT and TRAIN) carry the vehicle-kind
// filter; driving and walking carry none.
func buildDirectionsRequest(req models.TripRequest) maps.DirectionsRequest {
	out := maps.DirectionsRequest{
		Origin:      req.Origin,
		Destination: req.Destination,
	}
	switch {
	case req.Mode.IsTransit():
		out.Mode = "transit"
		out.TransitModes = transitVehicleKinds
	case req.Mode == models.ModeDriving:
		out.Mode = "driving"
	default:
		out.Mode = "walking"
	}
	return out
}

func convertStep(s maps.RouteStep) models.Step {
	step := models.Step{
		TravelMode:       models.TravelMode(s.TravelMode),
		InstructionsHTML: s.HTMLInstructions,
		DistanceMeters:   s.Distance.Value,
		DurationSeconds:  s.Duration.Value,
	}
	if s.TransitDetails != nil {
		step.Transit = &models.TransitDetails{
			LineName:          s.TransitDetails.Line.Name,
			LineShortName:     s.TransitDetails.Line.ShortName,
			VehicleName:       s.TransitDetails.Line.Vehicle.Name,
			NumStops:          s.TransitDetails.NumStops,
			DepartureTimeText: s.TransitDetails.DepartureTime.Text,
			ArrivalTimeText:   s.TransitDetails.ArrivalTime.Text,
		}
	}
	return step
}

// FormatDuration renders provider seconds as a human duration label:
// "15 min" under an hour, "1h 15m" from an hour up. Seconds are rounded
// to whole minutes first.
func FormatDuration(seconds int) string {
	minutes := int(math.Round(float64(seconds) / 60))
	if minutes < 60 {
		return fmt.Sprintf("%d min", minutes)
	}
	return fmt.Sprintf("%dh %dm", minutes/60, minutes%60)
}
