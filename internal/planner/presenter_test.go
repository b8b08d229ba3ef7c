package planner

import (
	"testing"

	"github.com/DHAIRYADHOLU/Metrosync/internal/models"
)

func TestPresentIconByTravelMode(t *testing.T) {
	rows := Present([]models.Step{
		{TravelMode: models.ModeWalking, InstructionsHTML: "Walk"},
		{TravelMode: models.ModeTransit, InstructionsHTML: "Ride"},
		{TravelMode: models.ModeDriving, InstructionsHTML: "Drive"},
	})

	if rows[0].Icon != IconWalk {
		t.Errorf("walking icon = %q", rows[0].Icon)
	}
	if rows[1].Icon != IconTransit {
		t.Errorf("transit icon = %q", rows[1].Icon)
	}
	if rows[2].Icon != IconDefault {
		t.Errorf("driving icon = %q", rows[2].Icon)
	}
}

func TestPresentDecodesHTMLEntities(t *testing.T) {
	rows := Present([]models.Step{
		{TravelMode: models.ModeWalking, InstructionsHTML: "Walk to King St W &amp; Bay St &lt;5 min&gt;"},
	})
	want := "Walk to King St W & Bay St <5 min>"
	if rows[0].Instructions != want {
		t.Errorf("Instructions = %q, want %q", rows[0].Instructions, want)
	}
}

func TestPresentTransitBlockGate(t *testing.T) {
	full := &models.TransitDetails{
		LineName:          "Yonge-University",
		LineShortName:     "1",
		VehicleName:       "Subway",
		NumStops:          5,
		DepartureTimeText: "10:05 AM",
		ArrivalTimeText:   "10:15 AM",
	}

	tests := []struct {
		name    string
		mutate  func(models.TransitDetails) *models.TransitDetails
		wantRow bool
	}{
		{"all present", func(d models.TransitDetails) *models.TransitDetails { return &d }, true},
		{"no transit details", func(d models.TransitDetails) *models.TransitDetails { return nil }, false},
		{"missing line", func(d models.TransitDetails) *models.TransitDetails { d.LineName = ""; return &d }, false},
		{"missing arrival time", func(d models.TransitDetails) *models.TransitDetails { d.ArrivalTimeText = ""; return &d }, false},
		{"single stop", func(d models.TransitDetails) *models.TransitDetails { d.NumStops = 1; return &d }, false},
		{"zero stops", func(d models.TransitDetails) *models.TransitDetails { d.NumStops = 0; return &d }, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rows := Present([]models.Step{{
				TravelMode:       models.ModeTransit,
				InstructionsHTML: "Subway towards Finch",
				Transit:          tc.mutate(*full),
			}})

			if got := rows[0].Transit != nil; got != tc.wantRow {
				t.Errorf("transit block present = %v, want %v", got, tc.wantRow)
			}
			// The base instruction always renders.
			if rows[0].Instructions != "Subway towards Finch" {
				t.Errorf("Instructions = %q", rows[0].Instructions)
			}
		})
	}
}

func TestPresentTransitRowContent(t *testing.T) {
	rows := Present([]models.Step{{
		TravelMode: models.ModeTransit,
		Transit: &models.TransitDetails{
			LineName:          "Queen",
			LineShortName:     "501",
			VehicleName:       "Streetcar",
			NumStops:          8,
			DepartureTimeText: "9:41 AM",
			ArrivalTimeText:   "10:02 AM",
		},
	}})

	transit := rows[0].Transit
	if transit == nil {
		t.Fatal("expected transit block")
	}
	if transit.Label != "Streetcar Queen" {
		t.Errorf("Label = %q", transit.Label)
	}
	if transit.ShortName != "501" || transit.NumStops != 8 || transit.DepartureTime != "9:41 AM" {
		t.Errorf("transit row = %+v", transit)
	}
}

func TestPresentIsPure(t *testing.T) {
	steps := []models.Step{
		{TravelMode: models.ModeWalking, InstructionsHTML: "Walk &amp; wait"},
	}
	Present(steps)
	if steps[0].InstructionsHTML != "Walk &amp; wait" {
		t.Error("Present mutated its input")
	}
}
