package session

import (
	"sync"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/josephcrivera/Blokus-Game-Simulation/engine"
)

// Manager tracks live sessions by ID.
type Manager struct {
	mu       sync.RWMutex
	log      *logrus.Logger
	sessions map[uuid.UUID]*Session
}

// NewManager builds an empty manager.
func NewManager(logger *logrus.Logger) *Manager {
	return &Manager{
		log:      logger,
		sessions: make(map[uuid.UUID]*Session),
	}
}

// Create starts a new session and registers it.
func (m *Manager) Create(numPlayers, size int, startPositions []engine.Point) (*Session, error) {
	s, err := New(numPlayers, size, startPositions, m.log)
	if err != nil {
		return nil, err
	}
	m.mu.Lock()
	m.sessions[s.ID] = s
	m.mu.Unlock()
	return s, nil
}

// Get returns the session with the given ID, if registered.
func (m *Manager) Get(id uuid.UUID) (*Session, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[id]
	return s, ok
}

// Remove drops the session from the registry.
func (m *Manager) Remove(id uuid.UUID) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
}

// Len returns the number of registered sessions.
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}
