package room

import "sync"

// Store is the registry's backing map. The manager layers get-or-create
// atomicity on top; implementations only need to be individually safe.
type Store interface {
	GetRoom(id string) (*Room, bool)
	SaveRoom(r *Room)
	DeleteRoom(id string)
	Rooms() []*Room
}

// Manager is the session registry: it owns all rooms and is the only
// component that creates or destroys them.
type Manager struct {
	mu    sync.Mutex
	store Store
}

func NewManager(s Store) *Manager {
	return &Manager{store: s}
}

// GetOrCreate returns the room for id, creating an empty one if none exists.
// Concurrent calls with the same unseen id observe a single room.
func (m *Manager) GetOrCreate(id string) *Room {
	m.mu.Lock()
	defer m.mu.Unlock()
	if r, ok := m.store.GetRoom(id); ok {
		return r
	}
	r := New(id)
	m.store.SaveRoom(r)
	return r
}

func (m *Manager) Get(id string) (*Room, bool) {
	return m.store.GetRoom(id)
}

// Remove evicts a room. Removing an unknown id is a no-op.
func (m *Manager) Remove(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.store.DeleteRoom(id)
}

// FindByPlayer scans for the room seating the named player. Linear scan:
// the active room count is expected to stay small.
func (m *Manager) FindByPlayer(name string) (*Room, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, r := range m.store.Rooms() {
		if r.HasPlayer(name) {
			return r, true
		}
	}
	return nil, false
}

func (m *Manager) Rooms() []*Room {
	return m.store.Rooms()
}

func (m *Manager) Count() int {
	return len(m.store.Rooms())
}
