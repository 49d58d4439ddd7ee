package cart

import "sync"

// Manager is the process-wide cart authority: every consumer asking for the
// same session gets the same *Store, so all of them see one consistent cart.
type Manager struct {
	mu        sync.Mutex
	stores    map[string]*Store
	persister Persister
}

func NewManager(p Persister) *Manager {
	return &Manager{
		stores:    make(map[string]*Store),
		persister: p,
	}
}

// Get returns the store for a session, rehydrating it from durable storage
// on first access.
func (m *Manager) Get(sessionID string) *Store {
	m.mu.Lock()
	defer m.mu.Unlock()

	if s, ok := m.stores[sessionID]; ok {
		return s
	}
	s := NewStore(sessionID, m.persister)
	m.stores[sessionID] = s
	return s
}

// Drop forgets the in-memory store for a session, forcing the next Get to
// rehydrate from durable storage. Used when a guest session expires.
func (m *Manager) Drop(sessionID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.stores, sessionID)
}
