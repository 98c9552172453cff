package core

import (
	"context"

	"github.com/rs/zerolog"
)

// Hub is the synchronization engine. A single run loop owns every room
// mutation, so concurrent connections never interleave partial updates
// to the same room's shared state.
type Hub struct {
	registry *Registry
	log      *zerolog.Logger

	register   chan *Client
	unregister chan *Client
	commands   chan clientCommand
}

type clientCommand struct {
	client *Client
	cmd    *Command
}

// NewHub creates a hub over the given registry. A nil logger disables logging.
func NewHub(registry *Registry, logger *zerolog.Logger) *Hub {
	if registry == nil {
		registry = NewRegistry("")
	}
	if logger == nil {
		nop := zerolog.Nop()
		logger = &nop
	}
	return &Hub{
		registry:   registry,
		log:        logger,
		register:   make(chan *Client),
		unregister: make(chan *Client),
		commands:   make(chan clientCommand, 64),
	}
}

// Registry exposes the room registry for read-only consumers.
func (h *Hub) Registry() *Registry {
	return h.registry
}

// RegisterClient attaches a connection to the hub. The hub pumps the
// client's command channel until it is closed.
func (h *Hub) RegisterClient(c *Client) {
	h.register <- c
}

// UnregisterClient stops command intake for a connection. The hub treats
// the closed channel as a disconnect and performs an implicit leave.
func (h *Hub) UnregisterClient(c *Client) {
	c.Close()
}

// Run processes registrations and commands until ctx is cancelled.
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case c := <-h.register:
			go h.pump(ctx, c)
		case c := <-h.unregister:
			h.handleLeave(c)
		case cc := <-h.commands:
			h.dispatch(cc.client, cc.cmd)
		case <-ctx.Done():
			return
		}
	}
}

// pump forwards one client's commands into the shared hub queue. When the
// command channel closes (disconnect), the client is unregistered.
func (h *Hub) pump(ctx context.Context, c *Client) {
	for cmd := range c.Commands {
		select {
		case h.commands <- clientCommand{client: c, cmd: cmd}:
		case <-ctx.Done():
			return
		}
	}
	select {
	case h.unregister <- c:
	case <-ctx.Done():
	}
}

func (h *Hub) dispatch(c *Client, cmd *Command) {
	if cmd == nil {
		return
	}
	switch cmd.Kind {
	case CommandJoinRoom:
		h.handleJoin(c, cmd.Room, cmd.User)
	case CommandLeaveRoom:
		h.handleLeave(c)
	case CommandCodeChange:
		h.handleCodeChange(c, cmd.Room, cmd.Change)
	case CommandCursorMove:
		h.handleCursorMove(c, cmd.Room, cmd.UserID, cmd.Position)
	case CommandLanguageChange:
		h.handleLanguageChange(cmd.Room, cmd.Language)
	}
}

// handleJoin binds the connection to a room and registers the user.
// Joining the current room again just refreshes the user entry; joining
// a different room performs an implicit leave of the previous one so a
// connection is never a member of two rooms at once.
func (h *Hub) handleJoin(c *Client, roomID string, user *User) {
	if roomID == "" || user == nil || user.ID == "" {
		return
	}

	if c.roomID != "" && c.roomID != roomID {
		h.detach(c)
	}

	room := h.registry.GetOrCreate(roomID)
	room.AddClient(c)
	room.SetUser(user)
	c.roomID = roomID
	c.userID = user.ID

	snap := room.Snapshot()
	c.deliver(&Event{Kind: EventRoomJoined, Room: &snap})
	room.Broadcast(&Event{Kind: EventRoomUpdate, Room: &snap}, nil)

	h.log.Debug().
		Str("client_id", c.ID).
		Str("room", roomID).
		Str("user_id", user.ID).
		Int("members", len(snap.Users)).
		Msg("user joined room")
}

// handleLeave removes the bound user from its room. Unbound connections
// are ignored.
func (h *Hub) handleLeave(c *Client) {
	if c.roomID == "" {
		return
	}
	h.detach(c)
}

// detach clears the session binding and removes the user from its room,
// deleting the room if it emptied and notifying the remaining members
// otherwise.
func (h *Hub) detach(c *Client) {
	roomID, userID := c.roomID, c.userID
	c.roomID, c.userID = "", ""

	room, ok := h.registry.Get(roomID)
	if !ok {
		return
	}

	room.RemoveClient(c)
	room.RemoveUser(userID)

	if room.Empty() {
		h.registry.Remove(roomID)
		h.log.Debug().Str("room", roomID).Msg("room deleted (empty)")
		return
	}

	snap := room.Snapshot()
	room.Broadcast(&Event{Kind: EventRoomUpdate, Room: &snap}, nil)

	h.log.Debug().
		Str("client_id", c.ID).
		Str("room", roomID).
		Str("user_id", userID).
		Int("members", len(snap.Users)).
		Msg("user left room")
}

// handleCodeChange replaces the room's document with the change content.
// Last write wins; there is no merging of concurrent edits. The sender
// is excluded from the broadcast since it holds the authoritative local
// value already.
func (h *Hub) handleCodeChange(c *Client, roomID string, change *CodeChange) {
	if change == nil {
		return
	}
	room, ok := h.registry.Get(roomID)
	if !ok {
		return
	}

	room.Code = change.Content
	room.Broadcast(&Event{
		Kind:   EventCodeChanged,
		Code:   change.Content,
		UserID: change.UserID,
		Change: change,
	}, c)
}

// handleCursorMove updates a member's caret and tells the other members.
// Unknown rooms or non-member user ids are ignored.
func (h *Hub) handleCursorMove(c *Client, roomID, userID string, pos *Cursor) {
	if pos == nil {
		return
	}
	room, ok := h.registry.Get(roomID)
	if !ok {
		return
	}
	user, ok := room.UserByID(userID)
	if !ok {
		return
	}

	user.Cursor = pos
	room.Broadcast(&Event{
		Kind:     EventCursorMoved,
		UserID:   userID,
		Position: pos,
	}, c)
}

// handleLanguageChange switches the room's language tag and notifies
// every member, sender included, with both the language event and a
// full room update.
func (h *Hub) handleLanguageChange(roomID, language string) {
	if language == "" {
		return
	}
	room, ok := h.registry.Get(roomID)
	if !ok {
		return
	}

	room.Language = language
	room.Broadcast(&Event{Kind: EventLanguageChanged, Language: language}, nil)

	snap := room.Snapshot()
	room.Broadcast(&Event{Kind: EventRoomUpdate, Room: &snap}, nil)
}
