package core

import "sync"

const fallbackLanguage = "javascript"

// Registry is the process-wide authority mapping room ids to rooms.
// Rooms are created lazily on first join and removed the moment they
// become empty. Only the hub run loop mutates it; Len may be read from
// other goroutines (the health endpoint).
type Registry struct {
	mu              sync.RWMutex
	rooms           map[string]*Room
	defaultLanguage string
}

// NewRegistry constructs an empty registry. Rooms created through it
// start with the given language tag.
func NewRegistry(defaultLanguage string) *Registry {
	if defaultLanguage == "" {
		defaultLanguage = fallbackLanguage
	}
	return &Registry{
		rooms:           make(map[string]*Room),
		defaultLanguage: defaultLanguage,
	}
}

// GetOrCreate returns the room with the given id, creating it with an
// empty document and the default language if unknown.
func (reg *Registry) GetOrCreate(id string) *Room {
	reg.mu.Lock()
	defer reg.mu.Unlock()

	room, ok := reg.rooms[id]
	if !ok {
		room = NewRoom(id, reg.defaultLanguage)
		reg.rooms[id] = room
	}
	return room
}

// Get returns the room with the given id, or false if absent.
func (reg *Registry) Get(id string) (*Room, bool) {
	reg.mu.RLock()
	defer reg.mu.RUnlock()

	room, ok := reg.rooms[id]
	return room, ok
}

// Remove deletes the room entry. No-op if absent.
func (reg *Registry) Remove(id string) {
	reg.mu.Lock()
	defer reg.mu.Unlock()

	delete(reg.rooms, id)
}

// Len returns the number of active rooms.
func (reg *Registry) Len() int {
	reg.mu.RLock()
	defer reg.mu.RUnlock()

	return len(reg.rooms)
}
