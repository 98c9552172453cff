package core

// EventKind is a notification the core emits to clients.
type EventKind int

const (
	// EventRoomJoined delivers the full room snapshot to a joining client.
	EventRoomJoined EventKind = iota
	// EventRoomUpdate refreshes membership and shared state for everyone in a room.
	EventRoomUpdate
	// EventCodeChanged notifies other members about a document replacement.
	EventCodeChanged
	// EventCursorMoved notifies other members about a caret move.
	EventCursorMoved
	// EventLanguageChanged notifies all members about a language switch.
	EventLanguageChanged
	// EventError notifies a client about a domain error. Reserved; no
	// handler currently emits it.
	EventError
)

// RoomState is a point-in-time copy of a room's shared state.
type RoomState struct {
	ID       string
	Users    []User
	Code     string
	Language string
}

// Event is sent to clients to describe what happened in the system.
type Event struct {
	Kind     EventKind
	Room     *RoomState  // room-joined, room-update
	Code     string      // code-changed
	UserID   string      // code-changed, cursor-moved
	Change   *CodeChange // code-changed
	Position *Cursor     // cursor-moved
	Language string      // language-changed
	Error    *CoreError
}
