// Package suggest provides address autocompletion for partial user input.
package suggest

import (
	"context"
	"fmt"
	"unicode/utf8"

	"github.com/DHAIRYADHOLU/Metrosync/internal/maps"
	"github.com/DHAIRYADHOLU/Metrosync/internal/models"
)

// minInputLength gates request volume: inputs of 2 characters or fewer
// never reach the provider.
const minInputLength = 3

// AutocompleteAPI is the slice of the provider client the suggester needs.
type AutocompleteAPI interface {
	PlaceAutocomplete(ctx context.Context, input string) (*maps.AutocompleteResponse, error)
}

// Provider turns partial text into an ordered list of address candidates.
type Provider struct {
	api AutocompleteAPI
}

// NewProvider creates a suggestion provider backed by the given client.
func NewProvider(api AutocompleteAPI) *Provider {
	return &Provider{api: api}
}

// Suggest returns candidate addresses for partial input. Short inputs
// return an empty list without any provider call. A non-OK provider status
// also maps to an empty list; only transport failures are errors.
func (p *Provider) Suggest(ctx context.Context, partial string) ([]models.AddressSuggestion, error) {
	if utf8.RuneCountInString(partial) < minInputLength {
		return nil, nil
	}

	resp, err := p.api.PlaceAutocomplete(ctx, partial)
	if err != nil {
		return nil, fmt.Errorf("autocomplete failed: %w", err)
	}
	if !resp.OK() {
		return nil, nil
	}

	suggestions := make([]models.AddressSuggestion, 0, len(resp.Predictions))
	for _, pred := range resp.Predictions {
		suggestions = append(suggestions, models.AddressSuggestion{Description: pred.Description})
	}
	return suggestions, nil
}
