// Package session tracks live game sessions and their action logs.
package session

import (
	"sync"
	"time"

	"github.com/jwdomes/mushland-game/internal/engine"
)

// Session is one single-player game. The action log is append-only and,
// together with Seed, reproduces the game state exactly.
type Session struct {
	mu        sync.Mutex
	ID        string
	Seed      uint64
	CreatedAt time.Time
	actions   []engine.Action
}

func newSession(id string, seed uint64) *Session {
	return &Session{
		ID:        id,
		Seed:      seed,
		CreatedAt: time.Now(),
	}
}

// Record appends an accepted action to the log.
func (s *Session) Record(a engine.Action) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.actions = append(s.actions, a)
}

// Reset clears the log and switches to a new seed.
func (s *Session) Reset(seed uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Seed = seed
	s.actions = nil
}

// Actions returns a copy of the log.
func (s *Session) Actions() []engine.Action {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]engine.Action, len(s.actions))
	copy(out, s.actions)
	return out
}

// Replay rebuilds the current state from the seed and the action log.
func (s *Session) Replay(e *engine.Engine) engine.State {
	s.mu.Lock()
	seed := s.Seed
	s.mu.Unlock()
	return e.Replay(seed, s.Actions())
}
