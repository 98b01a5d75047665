package session

import (
	"errors"
	"math/rand/v2"
	"sync"

	"github.com/google/uuid"
)

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrTooManySessions = errors.New("too many sessions")
)

// Manager manages multiple sessions.
type Manager struct {
	mu       sync.Mutex
	sessions map[string]*Session
	limit    int
}

// NewManager creates a manager holding at most limit sessions (0 = unbounded).
func NewManager(limit int) *Manager {
	return &Manager{sessions: make(map[string]*Session), limit: limit}
}

// Create starts a new session. A zero seed picks a random one.
func (m *Manager) Create(seed uint64) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.limit > 0 && len(m.sessions) >= m.limit {
		return nil, ErrTooManySessions
	}
	s := newSession(uuid.NewString(), NewSeed(seed))
	m.sessions[s.ID] = s
	return s, nil
}

// Get returns a session by ID.
func (m *Manager) Get(id string) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return s, nil
}

func (m *Manager) Remove(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
}

func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

// NewSeed returns seed, or a random non-zero seed when seed is zero.
func NewSeed(seed uint64) uint64 {
	for seed == 0 {
		seed = rand.Uint64()
	}
	return seed
}
