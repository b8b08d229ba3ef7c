package handlers

import (
	"net/http"
	"sync"

	"github.com/DHAIRYADHOLU/Metrosync/internal/planner"
)

// sessionTokenHeader carries the token issued at login. Requests without
// it still work; they just have no server-side planner state.
const sessionTokenHeader = "X-Session-Token"

// sessionStore maps session tokens to their planner state stores.
type sessionStore struct {
	mu       sync.Mutex
	sessions map[string]*planner.Store
}

func newSessionStore() *sessionStore {
	return &sessionStore{sessions: make(map[string]*planner.Store)}
}

// get returns the state store for a token, creating it on first use.
func (s *sessionStore) get(token string) *planner.Store {
	s.mu.Lock()
	defer s.mu.Unlock()
	st, ok := s.sessions[token]
	if !ok {
		st = planner.NewStore()
		s.sessions[token] = st
	}
	return st
}

// fromRequest returns the request's session store, or nil when the request
// carries no token.
func (s *sessionStore) fromRequest(r *http.Request) *planner.Store {
	token := r.Header.Get(sessionTokenHeader)
	if token == "" {
		return nil
	}
	return s.get(token)
}
