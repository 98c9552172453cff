package core

// Cursor is a caret position inside the shared document.
type Cursor struct {
	Line   int
	Column int
}

// User is a room participant as seen by the core layer. Identity is
// client-generated and unverified; ID is the membership key.
type User struct {
	ID     string
	Name   string
	Color  string
	Cursor *Cursor
}
