package core

import "sync"

// Client is one live connection as seen by the core layer. The transport
// writes commands into Commands and drains Events; the session binding
// fields are owned exclusively by the hub run loop.
type Client struct {
	ID       string
	Commands chan *Command
	Events   chan *Event

	closeOnce sync.Once

	// Session binding. Empty strings mean the connection is unbound.
	userID string
	roomID string
}

// NewClient constructs a client with initialized channels.
func NewClient(id string) *Client {
	return &Client{
		ID:       id,
		Commands: make(chan *Command, 16),
		Events:   make(chan *Event, 32),
	}
}

// Close stops command intake. Safe to call more than once.
func (c *Client) Close() {
	c.closeOnce.Do(func() {
		close(c.Commands)
	})
}

// deliver hands an event to the client without blocking. A stalled
// consumer simply misses broadcasts until it reconnects.
func (c *Client) deliver(ev *Event) {
	select {
	case c.Events <- ev:
	default:
	}
}
