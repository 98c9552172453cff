package core

import "sort"

// Room is the unit of collaboration: one shared document, one language
// tag, and the set of members editing it. All fields are mutated only by
// the hub run loop.
type Room struct {
	ID       string
	Code     string
	Language string

	users   map[string]*User
	clients map[*Client]struct{}
}

// NewRoom constructs an empty room with the given language tag.
func NewRoom(id, language string) *Room {
	return &Room{
		ID:       id,
		Language: language,
		users:    make(map[string]*User),
		clients:  make(map[*Client]struct{}),
	}
}

// AddClient inserts a connection into the room's broadcast set.
func (r *Room) AddClient(c *Client) {
	r.clients[c] = struct{}{}
}

// RemoveClient deletes a connection from the room's broadcast set.
func (r *Room) RemoveClient(c *Client) {
	delete(r.clients, c)
}

// SetUser registers or refreshes a member entry.
func (r *Room) SetUser(u *User) {
	r.users[u.ID] = u
}

// RemoveUser deletes a member entry. No-op if absent.
func (r *Room) RemoveUser(id string) {
	delete(r.users, id)
}

// UserByID returns the member with the given id.
func (r *Room) UserByID(id string) (*User, bool) {
	u, ok := r.users[id]
	return u, ok
}

// Empty reports whether the room has no members left.
func (r *Room) Empty() bool {
	return len(r.users) == 0
}

// Broadcast sends an event to every connection in the room, optionally
// skipping the sender. Slow consumers are dropped, not waited for.
func (r *Room) Broadcast(ev *Event, exclude *Client) {
	for client := range r.clients {
		if client == exclude {
			continue
		}
		client.deliver(ev)
	}
}

// Snapshot copies the room's shared state. Users are sorted by id so
// repeated snapshots of the same state compare equal.
func (r *Room) Snapshot() RoomState {
	users := make([]User, 0, len(r.users))
	for _, u := range r.users {
		users = append(users, *u)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })

	return RoomState{
		ID:       r.ID,
		Users:    users,
		Code:     r.Code,
		Language: r.Language,
	}
}
