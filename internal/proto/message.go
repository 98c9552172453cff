// Package proto defines the JSON wire contract between clients and the
// server. Inbound payloads are validated here so malformed messages are
// dropped at the boundary and never reach the sync engine.
package proto

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Inbound is the envelope for messages coming from the client.
type Inbound struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

// Outbound is the envelope for messages sent to the client.
type Outbound struct {
	Type  string `json:"type"`
	Data  any    `json:"data,omitempty"`
	Error *Error `json:"error,omitempty"`
}

// Client -> server event names.
const (
	InboundTypeJoinRoom       = "join-room"
	InboundTypeLeaveRoom      = "leave-room"
	InboundTypeCodeChange     = "code-change"
	InboundTypeCursorMove     = "cursor-move"
	InboundTypeLanguageChange = "language-change"
)

// Server -> client event names.
const (
	OutboundTypeRoomJoined      = "room-joined"
	OutboundTypeRoomUpdate      = "room-update"
	OutboundTypeCodeChanged     = "code-changed"
	OutboundTypeCursorMoved     = "cursor-moved"
	OutboundTypeLanguageChanged = "language-changed"
	// OutboundTypeError is reserved; no server handler emits it today.
	OutboundTypeError = "error"
)

// ErrMalformed is returned by decode helpers for payloads that are not
// valid JSON or miss required fields.
var ErrMalformed = errors.New("malformed payload")

// CursorPayload is a caret position inside the document.
type CursorPayload struct {
	Line   int `json:"line"`
	Column int `json:"column"`
}

// UserPayload describes a participant on the wire.
type UserPayload struct {
	ID     string         `json:"id"`
	Name   string         `json:"name"`
	Color  string         `json:"color"`
	Cursor *CursorPayload `json:"cursor,omitempty"`
}

// RoomPayload is a full room snapshot.
type RoomPayload struct {
	ID       string        `json:"id"`
	Users    []UserPayload `json:"users"`
	Code     string        `json:"code"`
	Language string        `json:"language"`
}

// CodeChangePayload is one full-document replacement.
type CodeChangePayload struct {
	Type     string `json:"type,omitempty"`
	Position int    `json:"position,omitempty"`
	Content  string `json:"content"`
	UserID   string `json:"userId"`
}

// JoinRoomData requests membership in a room.
type JoinRoomData struct {
	RoomID string      `json:"roomId"`
	User   UserPayload `json:"user"`
}

// LeaveRoomData carries no required fields; the room is implied by the
// connection's session binding.
type LeaveRoomData struct {
	RoomID string `json:"roomId,omitempty"`
}

// CodeChangeData replaces a room's document text.
type CodeChangeData struct {
	RoomID string            `json:"roomId"`
	Change CodeChangePayload `json:"change"`
}

// CursorMoveData updates a member's caret position.
type CursorMoveData struct {
	RoomID   string        `json:"roomId"`
	UserID   string        `json:"userId"`
	Position CursorPayload `json:"position"`
}

// LanguageChangeData switches a room's language tag.
type LanguageChangeData struct {
	RoomID   string `json:"roomId"`
	Language string `json:"language"`
}

// RoomJoinedData is sent to the joining connection only.
type RoomJoinedData struct {
	Room RoomPayload `json:"room"`
}

// RoomUpdateData refreshes room state for every member.
type RoomUpdateData struct {
	Users    []UserPayload `json:"users"`
	Code     string        `json:"code"`
	Language string        `json:"language"`
}

// CodeChangedData is sent to every member except the sender.
type CodeChangedData struct {
	Code   string            `json:"code"`
	UserID string            `json:"userId"`
	Change CodeChangePayload `json:"change"`
}

// CursorMovedData is sent to every member except the sender.
type CursorMovedData struct {
	UserID   string        `json:"userId"`
	Position CursorPayload `json:"position"`
}

// LanguageChangedData is sent to every member including the sender.
type LanguageChangedData struct {
	Language string `json:"language"`
}

// Error describes a protocol-level error response.
type Error struct {
	Code string `json:"code"`
	Msg  string `json:"msg"`
}

// DecodeJoinRoom validates and decodes a join-room payload.
func DecodeJoinRoom(data json.RawMessage) (JoinRoomData, error) {
	var d JoinRoomData
	if err := json.Unmarshal(data, &d); err != nil {
		return d, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if d.RoomID == "" {
		return d, fmt.Errorf("%w: missing roomId", ErrMalformed)
	}
	if d.User.ID == "" {
		return d, fmt.Errorf("%w: missing user.id", ErrMalformed)
	}
	return d, nil
}

// DecodeLeaveRoom decodes a leave-room payload. An empty body is valid.
func DecodeLeaveRoom(data json.RawMessage) (LeaveRoomData, error) {
	var d LeaveRoomData
	if len(data) == 0 {
		return d, nil
	}
	if err := json.Unmarshal(data, &d); err != nil {
		return d, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return d, nil
}

// DecodeCodeChange validates and decodes a code-change payload. An empty
// content string is a legal document state, so only the references are
// required.
func DecodeCodeChange(data json.RawMessage) (CodeChangeData, error) {
	var d CodeChangeData
	if err := json.Unmarshal(data, &d); err != nil {
		return d, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if d.RoomID == "" {
		return d, fmt.Errorf("%w: missing roomId", ErrMalformed)
	}
	if d.Change.UserID == "" {
		return d, fmt.Errorf("%w: missing change.userId", ErrMalformed)
	}
	return d, nil
}

// DecodeCursorMove validates and decodes a cursor-move payload.
func DecodeCursorMove(data json.RawMessage) (CursorMoveData, error) {
	var d CursorMoveData
	if err := json.Unmarshal(data, &d); err != nil {
		return d, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if d.RoomID == "" {
		return d, fmt.Errorf("%w: missing roomId", ErrMalformed)
	}
	if d.UserID == "" {
		return d, fmt.Errorf("%w: missing userId", ErrMalformed)
	}
	return d, nil
}

// DecodeLanguageChange validates and decodes a language-change payload.
func DecodeLanguageChange(data json.RawMessage) (LanguageChangeData, error) {
	var d LanguageChangeData
	if err := json.Unmarshal(data, &d); err != nil {
		return d, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if d.RoomID == "" {
		return d, fmt.Errorf("%w: missing roomId", ErrMalformed)
	}
	if d.Language == "" {
		return d, fmt.Errorf("%w: missing language", ErrMalformed)
	}
	return d, nil
}
