package planner

import (
	"sync"

	"github.com/DHAIRYADHOLU/Metrosync/internal/models"
)

// State is the explicit, immutable planner state for one session. It
// replaces the scatter of independent mutable fields the UI would
// otherwise keep; every change goes through Reduce.
type State struct {
	Origin      string
	Destination string
	Mode        models.TravelMode

	StartSuggestions       []models.AddressSuggestion
	DestinationSuggestions []models.AddressSuggestion

	Plan   *models.RoutePlan
	Notice string

	// Generation counts planning attempts. A SetPlan or PlanFailed action
	// carrying an older generation is stale and discarded, so a superseded
	// in-flight request can never overwrite newer state.
	Generation uint64
}

// Action is a named state transition. Concrete actions are the only way
// State changes.
type Action interface {
	isAction()
}

type SetOrigin struct{ Text string }
type SetDestination struct{ Text string }
type SetMode struct{ Mode models.TravelMode }

type SetStartSuggestions struct{ Suggestions []models.AddressSuggestion }
type SetDestinationSuggestions struct{ Suggestions []models.AddressSuggestion }

// SelectStartSuggestion copies the suggestion into the origin field and
// clears the origin suggestion list only.
type SelectStartSuggestion struct{ Description string }

// SelectDestinationSuggestion copies the suggestion into the destination
// field and clears the destination suggestion list only.
type SelectDestinationSuggestion struct{ Description string }

// PlanStarted opens a new planning attempt and invalidates any still
// in-flight one.
type PlanStarted struct{}

// SetPlan installs the plan produced by attempt Generation. Stale
// generations are ignored.
type SetPlan struct {
	Generation uint64
	Plan       *models.RoutePlan
}

// PlanFailed records the failure notice for attempt Generation. The
// previously displayed plan is retained.
type PlanFailed struct {
	Generation uint64
	Notice     string
}

type ClearPlan struct{}

func (SetOrigin) isAction()                   {}
func (SetDestination) isAction()              {}
func (SetMode) isAction()                     {}
func (SetStartSuggestions) isAction()         {}
func (SetDestinationSuggestions) isAction()   {}
func (SelectStartSuggestion) isAction()       {}
func (SelectDestinationSuggestion) isAction() {}
func (PlanStarted) isAction()                 {}
func (SetPlan) isAction()                     {}
func (PlanFailed) isAction()                  {}
func (ClearPlan) isAction()                   {}

// Reduce applies one action to a state and returns the next state. It is
// a pure function: the input state is never mutated.
func Reduce(s State, a Action) State {
	switch act := a.(type) {
	case SetOrigin:
		s.Origin = act.Text
		s.StartSuggestions = nil
	case SetDestination:
		s.Destination = act.Text
		s.DestinationSuggestions = nil
	case SetMode:
		s.Mode = act.Mode
	case SetStartSuggestions:
		s.StartSuggestions = act.Suggestions
	case SetDestinationSuggestions:
		s.DestinationSuggestions = act.Suggestions
	case SelectStartSuggestion:
		s.Origin = act.Description
		s.StartSuggestions = nil
	case SelectDestinationSuggestion:
		s.Destination = act.Description
		s.DestinationSuggestions = nil
	case PlanStarted:
		s.Generation++
		s.Notice = ""
	case SetPlan:
		if act.Generation == s.Generation {
			s.Plan = act.Plan
			s.Notice = ""
		}
	case PlanFailed:
		if act.Generation == s.Generation {
			s.Notice = act.Notice
		}
	case ClearPlan:
		s.Plan = nil
	}
	return s
}

// Store is a mutex-guarded State for concurrent handler use. One Store
// exists per session.
type Store struct {
	mu    sync.Mutex
	state State
}

// NewStore creates an empty planner state store.
func NewStore() *Store {
	return &Store{}
}

// Dispatch applies an action and returns the resulting state.
func (st *Store) Dispatch(a Action) State {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.state = Reduce(st.state, a)
	return st.state
}

// Begin opens a planning attempt and returns its generation token. The
// token must be handed back with SetPlan or PlanFailed.
func (st *Store) Begin() uint64 {
	return st.Dispatch(PlanStarted{}).Generation
}

// State returns a snapshot of the current state.
func (st *Store) State() State {
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.state
}
