package suggest

import (
	"context"
	"errors"
	"testing"

	"github.com/DHAIRYADHOLU/Metrosync/internal/maps"
)

type fakeAutocomplete struct {
	resp  *maps.AutocompleteResponse
	err   error
	calls int
}

func (f *fakeAutocomplete) PlaceAutocomplete(ctx context.Context, input string) (*maps.AutocompleteResponse, error) {
	f.calls++
	return f.resp, f.err
}

func TestSuggestShortInputSkipsProvider(t *testing.T) {
	tests := []string{"", "U", "Un", "ab"}

	for _, input := range tests {
		t.Run("input "+input, func(t *testing.T) {
			api := &fakeAutocomplete{}
			p := NewProvider(api)

			got, err := p.Suggest(context.Background(), input)
			if err != nil {
				t.Fatalf("Suggest(%q) failed: %v", input, err)
			}
			if len(got) != 0 {
				t.Errorf("Suggest(%q) = %v, want empty", input, got)
			}
			if api.calls != 0 {
				t.Errorf("provider called %d times for %q", api.calls, input)
			}
		})
	}
}

func TestSuggestReturnsOrderedDescriptions(t *testing.T) {
	api := &fakeAutocomplete{resp: &maps.AutocompleteResponse{
		Status: maps.StatusOK,
		Predictions: []maps.Prediction{
			{Description: "Union Station, Toronto, ON"},
			{Description: "Union Station Bus Terminal, Toronto, ON"},
		},
	}}
	p := NewProvider(api)

	got, err := p.Suggest(context.Background(), "Union")
	if err != nil {
		t.Fatalf("Suggest failed: %v", err)
	}
	if api.calls != 1 {
		t.Errorf("provider called %d times, want 1", api.calls)
	}
	if len(got) != 2 {
		t.Fatalf("got %d suggestions, want 2", len(got))
	}
	if got[0].Description != "Union Station, Toronto, ON" {
		t.Errorf("first suggestion = %q, provider order not preserved", got[0].Description)
	}
}

func TestSuggestNonOKStatusIsEmptyNotError(t *testing.T) {
	api := &fakeAutocomplete{resp: &maps.AutocompleteResponse{Status: "OVER_QUERY_LIMIT"}}
	p := NewProvider(api)

	got, err := p.Suggest(context.Background(), "Union")
	if err != nil {
		t.Fatalf("Suggest failed: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("got %v, want empty list on non-OK status", got)
	}
}

func TestSuggestTransportFailureIsError(t *testing.T) {
	p := NewProvider(&fakeAutocomplete{err: errors.New("connection refused")})
	if _, err := p.Suggest(context.Background(), "Union"); err == nil {
		t.Fatal("expected error on transport failure")
	}
}
