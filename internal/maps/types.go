package maps

// Provider status codes shared by the directions, geocoding and places
// endpoints. Anything other than StatusOK (including StatusZeroResults) is
// a non-OK outcome for the caller to police.
const (
	StatusOK          = "OK"
	StatusZeroResults = "ZERO_RESULTS"
)

// TextValue is the provider's {text, value} pair for distances (meters)
// and durations (seconds).
type TextValue struct {
	Text  string `json:"text"`
	Value int    `json:"value"`
}

// TransitLine identifies the line of a transit step.
type TransitLine struct {
	Name      string  `json:"name"`
	ShortName string  `json:"short_name"`
	Vehicle   Vehicle `json:"vehicle"`
}

// Vehicle is the vehicle descriptor of a transit line.
type Vehicle struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// TransitTime is a departure or arrival time as rendered by the provider.
type TransitTime struct {
	Text string `json:"text"`
}

// TransitDetails is present on steps ridden on public transit.
type TransitDetails struct {
	Line          TransitLine `json:"line"`
	NumStops      int         `json:"num_stops"`
	DepartureTime TransitTime `json:"departure_time"`
	ArrivalTime   TransitTime `json:"arrival_time"`
}

// RouteStep is one instruction unit within a leg.
type RouteStep struct {
	TravelMode       string          `json:"travel_mode"`
	HTMLInstructions string          `json:"html_instructions"`
	Distance         TextValue       `json:"distance"`
	Duration         TextValue       `json:"duration"`
	TransitDetails   *TransitDetails `json:"transit_details,omitempty"`
}

// RouteLeg is one origin-to-destination segment of a route.
type RouteLeg struct {
	Distance TextValue   `json:"distance"`
	Duration TextValue   `json:"duration"`
	Steps    []RouteStep `json:"steps"`
}

// Route is one computed route alternative.
type Route struct {
	Summary string     `json:"summary"`
	Legs    []RouteLeg `json:"legs"`
}

// DirectionsResponse is the typed decode of a directions call. Status is
// validated once here at the boundary; callers never see raw JSON.
type DirectionsResponse struct {
	Status       string  `json:"status"`
	ErrorMessage string  `json:"error_message,omitempty"`
	Routes       []Route `json:"routes"`
}

// OK reports whether the provider found at least one route.
func (r *DirectionsResponse) OK() bool {
	return r.Status == StatusOK
}

// GeocodeResult is one reverse-geocoding candidate.
type GeocodeResult struct {
	FormattedAddress string `json:"formatted_address"`
}

// GeocodeResponse is the typed decode of a reverse-geocoding call.
type GeocodeResponse struct {
	Status  string          `json:"status"`
	Results []GeocodeResult `json:"results"`
}

// OK reports whether the provider returned at least one candidate.
func (r *GeocodeResponse) OK() bool {
	return r.Status == StatusOK
}

// Prediction is one autocomplete candidate.
type Prediction struct {
	Description string `json:"description"`
}

// AutocompleteResponse is the typed decode of a place-autocomplete call.
type AutocompleteResponse struct {
	Status      string       `json:"status"`
	Predictions []Prediction `json:"predictions"`
}

// OK reports whether the provider returned predictions.
func (r *AutocompleteResponse) OK() bool {
	return r.Status == StatusOK
}

// DirectionsRequest is the outgoing routing query. TransitModes constrains
// the transit vehicle kinds considered and is only set for transit-routed
// requests.
type DirectionsRequest struct {
	Origin       string
	Destination  string
	Mode         string // "transit", "driving" or "walking"
	TransitModes []string
}
