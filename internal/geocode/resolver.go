// Package geocode resolves geographic coordinates to canonical address
// strings through the mapping provider.
package geocode

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/DHAIRYADHOLU/Metrosync/internal/maps"
)

// ErrNoResult is returned when the provider has no address candidate for
// the coordinate.
var ErrNoResult = errors.New("no address found for location")

// fixTimeout bounds the whole resolve. 10s matches the time a client
// waits for a device position fix.
const fixTimeout = 10 * time.Second

// GeocodingAPI is the slice of the provider client the resolver needs.
type GeocodingAPI interface {
	ReverseGeocode(ctx context.Context, lat, lng float64) (*maps.GeocodeResponse, error)
}

// Resolver turns coordinates into a formatted address.
type Resolver struct {
	api GeocodingAPI
}

// NewResolver creates a resolver backed by the given provider client.
func NewResolver(api GeocodingAPI) *Resolver {
	return &Resolver{api: api}
}

// ResolveCoordinate reverse-geocodes a coordinate pair and returns the
// first candidate's formatted address. It either succeeds completely or
// returns an error; there is no partial result.
func (r *Resolver) ResolveCoordinate(ctx context.Context, lat, lng float64) (string, error) {
	if lat < -90 || lat > 90 {
		return "", fmt.Errorf("latitude out of range: %f", lat)
	}
	if lng < -180 || lng > 180 {
		return "", fmt.Errorf("longitude out of range: %f", lng)
	}

	ctx, cancel := context.WithTimeout(ctx, fixTimeout)
	defer cancel()

	resp, err := r.api.ReverseGeocode(ctx, lat, lng)
	if err != nil {
		return "", fmt.Errorf("reverse geocoding failed: %w", err)
	}
	if !resp.OK() || len(resp.Results) == 0 {
		return "", ErrNoResult
	}
	return resp.Results[0].FormattedAddress, nil
}
