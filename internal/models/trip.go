package models

import "errors"

// TravelMode selects how a trip is routed. TRAIN is kept as a distinct
// selection (the UI offers it separately) but routes as transit.
type TravelMode string

const (
	ModeTransit TravelMode = "TRANSIT"
	ModeDriving TravelMode = "DRIVING"
	ModeWalking TravelMode = "WALKING"
	ModeTrain   TravelMode = "TRAIN"
)

// IsTransit reports whether the mode is routed as public transit.
func (m TravelMode) IsTransit() bool {
	return m == ModeTransit || m == ModeTrain
}

// Valid reports whether the mode is one of the supported selections.
func (m TravelMode) Valid() bool {
	switch m {
	case ModeTransit, ModeDriving, ModeWalking, ModeTrain:
		return true
	}
	return false
}

// TripRequest is a single planning request. It is built from user input at
// submit time and never persisted.
type TripRequest struct {
	Origin      string     `json:"origin"`
	Destination string     `json:"destination"`
	Mode        TravelMode `json:"mode"`
}

// Validate checks the request before any routing call is made.
func (r *TripRequest) Validate() error {
	if r.Origin == "" || r.Destination == "" {
		return errors.New("origin and destination are required")
	}
	if !r.Mode.Valid() {
		return errors.New("unsupported travel mode: " + string(r.Mode))
	}
	return nil
}

// TransitDetails carries the transit-specific fields of a step. All fields
// come straight from the routing provider.
type TransitDetails struct {
	LineName          string `json:"lineName"`
	LineShortName     string `json:"lineShortName"`
	VehicleName       string `json:"vehicleName"`
	NumStops          int    `json:"numStops"`
	DepartureTimeText string `json:"departureTimeText"`
	ArrivalTimeText   string `json:"arrivalTimeText"`
}

// Step is one instruction unit within a route leg. Steps are immutable and
// owned by their parent RoutePlan.
type Step struct {
	TravelMode       TravelMode      `json:"travelMode"`
	InstructionsHTML string          `json:"instructionsHtml"`
	DistanceMeters   int             `json:"distanceMeters"`
	DurationSeconds  int             `json:"durationSeconds"`
	Transit          *TransitDetails `json:"transit,omitempty"`
}

// RoutePlan is the summary of one successful planning call: leg 0 of
// route 0 of the provider response. DistanceKm and DurationLabel are always
// derived together and Steps is never empty.
type RoutePlan struct {
	DistanceKm    string `json:"distanceKm"`
	DurationLabel string `json:"duration"`
	Steps         []Step `json:"steps"`
}

// AddressSuggestion is one autocomplete candidate for a partial address.
type AddressSuggestion struct {
	Description string `json:"description"`
}
