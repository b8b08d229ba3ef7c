package maps

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// Client calls the mapping provider's web-service endpoints (directions,
// reverse geocoding, place autocomplete). It issues exactly one request
// per method call and decodes the response into typed structs at the
// boundary. Cancellation is driven entirely by the caller's context; the
// client imposes no timeout of its own.
type Client struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

// NewClient creates a provider client. httpClient may be nil, in which
// case http.DefaultClient is used.
func NewClient(baseURL, apiKey string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		client:  httpClient,
	}
}

// Directions requests a route for the given origin/destination/mode.
func (c *Client) Directions(ctx context.Context, req DirectionsRequest) (*DirectionsResponse, error) {
	params := url.Values{}
	params.Set("origin", req.Origin)
	params.Set("destination", req.Destination)
	params.Set("mode", req.Mode)
	if len(req.TransitModes) > 0 {
		params.Set("transit_mode", strings.Join(req.TransitModes, "|"))
	}

	var resp DirectionsResponse
	if err := c.get(ctx, "/directions/json", params, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ReverseGeocode resolves a coordinate pair to address candidates.
func (c *Client) ReverseGeocode(ctx context.Context, lat, lng float64) (*GeocodeResponse, error) {
	params := url.Values{}
	params.Set("latlng", formatCoord(lat)+","+formatCoord(lng))

	var resp GeocodeResponse
	if err := c.get(ctx, "/geocode/json", params, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// PlaceAutocomplete requests address predictions for partial input.
func (c *Client) PlaceAutocomplete(ctx context.Context, input string) (*AutocompleteResponse, error) {
	params := url.Values{}
	params.Set("input", input)

	var resp AutocompleteResponse
	if err := c.get(ctx, "/place/autocomplete/json", params, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// get performs a single GET against the provider and decodes the JSON body.
func (c *Client) get(ctx context.Context, path string, params url.Values, out interface{}) error {
	params.Set("key", c.apiKey)
	reqURL := c.baseURL + path + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("provider request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("provider returned HTTP %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode provider response: %w", err)
	}
	return nil
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
