package planner

import (
	"html"

	"github.com/DHAIRYADHOLU/Metrosync/internal/models"
)

// Icon categories for display rows, selected by step travel mode.
const (
	IconWalk    = "walk"
	IconTransit = "bus"
	IconDefault = "route"
)

// TransitRow is the transit block of a display row: line label, short
// code, departure time and stop count.
type TransitRow struct {
	Label         string `json:"label"`
	ShortName     string `json:"shortName"`
	DepartureTime string `json:"departureTime"`
	NumStops      int    `json:"numStops"`
}

// DisplayRow is one rendered itinerary entry.
type DisplayRow struct {
	Icon         string      `json:"icon"`
	Instructions string      `json:"instructions"`
	Transit      *TransitRow `json:"transit,omitempty"`
}

// Present projects route steps into display rows. It is a pure projection:
// no network calls and no mutation of the plan. Instruction text is
// HTML-entity-decoded; this neutralizes the provider's escaping but is not
// a sanitizer.
func Present(steps []models.Step) []DisplayRow {
	rows := make([]DisplayRow, 0, len(steps))
	for _, step := range steps {
		rows = append(rows, presentStep(step))
	}
	return rows
}

func presentStep(step models.Step) DisplayRow {
	row := DisplayRow{
		Icon:         iconFor(step.TravelMode),
		Instructions: html.UnescapeString(step.InstructionsHTML),
	}

	// The transit block needs the line, an arrival time and more than one
	// stop; a step missing any of these shows only the instruction text.
	t := step.Transit
	if t != nil && t.LineName != "" && t.ArrivalTimeText != "" && t.NumStops > 1 {
		row.Transit = &TransitRow{
			Label:         t.VehicleName + " " + t.LineName,
			ShortName:     t.LineShortName,
			DepartureTime: t.DepartureTimeText,
			NumStops:      t.NumStops,
		}
	}
	return row
}

func iconFor(mode models.TravelMode) string {
	switch mode {
	case models.ModeWalking:
		return IconWalk
	case models.ModeTransit:
		return IconTransit
	default:
		return IconDefault
	}
}
