package core

// CommandKind describes what the client wants to do.
type CommandKind int

const (
	// CommandJoinRoom binds the connection to a room and registers the user.
	CommandJoinRoom CommandKind = iota
	// CommandLeaveRoom removes the user from its current room.
	CommandLeaveRoom
	// CommandCodeChange replaces the room's shared document text.
	CommandCodeChange
	// CommandCursorMove updates a member's caret position.
	CommandCursorMove
	// CommandLanguageChange switches the room's shared language tag.
	CommandLanguageChange
)

// CodeChange is a full-document replacement sent by one user.
type CodeChange struct {
	Type     string
	Position int
	Content  string
	UserID   string
}

// Command represents an action requested by a client.
type Command struct {
	Kind     CommandKind
	Room     string
	User     *User       // join
	Change   *CodeChange // code change
	UserID   string      // cursor move
	Position *Cursor     // cursor move
	Language string      // language change
}
