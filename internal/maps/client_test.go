package maps

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
)

func TestDirectionsQueryShaping(t *testing.T) {
	var gotPath string
	var gotQuery url.Values

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.Query()
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"OK","routes":[{"legs":[{"distance":{"value":1200},"duration":{"value":900},"steps":[{"travel_mode":"WALKING","html_instructions":"Head north"}]}]}]}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "test-key", srv.Client())

	resp, err := client.Directions(context.Background(), DirectionsRequest{
		Origin:       "CN Tower, Toronto",
		Destination:  "Union Station, Toronto",
		Mode:         "transit",
		TransitModes: []string{"bus", "subway", "train"},
	})
	if err != nil {
		t.Fatalf("Directions failed: %v", err)
	}

	if gotPath != "/directions/json" {
		t.Errorf("path = %q, want /directions/json", gotPath)
	}
	if got := gotQuery.Get("origin"); got != "CN Tower, Toronto" {
		t.Errorf("origin = %q", got)
	}
	if got := gotQuery.Get("mode"); got != "transit" {
		t.Errorf("mode = %q, want transit", got)
	}
	if got := gotQuery.Get("transit_mode"); got != "bus|subway|train" {
		t.Errorf("transit_mode = %q, want bus|subway|train", got)
	}
	if got := gotQuery.Get("key"); got != "test-key" {
		t.Errorf("key = %q, want test-key", got)
	}

	if !resp.OK() {
		t.Fatalf("status = %q, want OK", resp.Status)
	}
	if len(resp.Routes) != 1 || len(resp.Routes[0].Legs) != 1 {
		t.Fatalf("unexpected route shape: %+v", resp.Routes)
	}
	leg := resp.Routes[0].Legs[0]
	if leg.Distance.Value != 1200 || leg.Duration.Value != 900 {
		t.Errorf("leg = %+v", leg)
	}
}

func TestDirectionsOmitsFilterWhenUnset(t *testing.T) {
	var gotQuery url.Values

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Write([]byte(`{"status":"OK","routes":[]}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "k", srv.Client())
	_, err := client.Directions(context.Background(), DirectionsRequest{
		Origin:      "a",
		Destination: "b",
		Mode:        "driving",
	})
	if err != nil {
		t.Fatalf("Directions failed: %v", err)
	}
	if _, present := gotQuery["transit_mode"]; present {
		t.Error("transit_mode present on a driving request")
	}
}

func TestReverseGeocode(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("latlng"); got != "43.7,-79.4" {
			t.Errorf("latlng = %q", got)
		}
		w.Write([]byte(`{"status":"OK","results":[{"formatted_address":"290 Bremner Blvd, Toronto"}]}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "k", srv.Client())
	resp, err := client.ReverseGeocode(context.Background(), 43.7, -79.4)
	if err != nil {
		t.Fatalf("ReverseGeocode failed: %v", err)
	}
	if !resp.OK() || len(resp.Results) != 1 {
		t.Fatalf("unexpected response: %+v", resp)
	}
	if resp.Results[0].FormattedAddress != "290 Bremner Blvd, Toronto" {
		t.Errorf("address = %q", resp.Results[0].FormattedAddress)
	}
}

func TestPlaceAutocompleteNonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"ZERO_RESULTS","predictions":[]}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "k", srv.Client())
	resp, err := client.PlaceAutocomplete(context.Background(), "Union")
	if err != nil {
		t.Fatalf("PlaceAutocomplete failed: %v", err)
	}
	// A non-OK provider status is not a transport error; policy belongs to
	// the caller.
	if resp.OK() {
		t.Error("OK() = true for ZERO_RESULTS")
	}
}

func TestGetRejectsHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "k", srv.Client())
	if _, err := client.PlaceAutocomplete(context.Background(), "Union"); err == nil {
		t.Fatal("expected error on HTTP 500")
	}
}
