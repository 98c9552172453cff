package proto

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestDecodeJoinRoom(t *testing.T) {
	data := json.RawMessage(`{"roomId":"ABCD1234","user":{"id":"u1","name":"Alice","color":"#3B82F6"}}`)

	d, err := DecodeJoinRoom(data)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if d.RoomID != "ABCD1234" || d.User.ID != "u1" || d.User.Name != "Alice" {
		t.Fatalf("unexpected payload: %+v", d)
	}
}

func TestDecodeJoinRoomRejectsMissingFields(t *testing.T) {
	cases := map[string]string{
		"missing roomId":  `{"user":{"id":"u1"}}`,
		"missing user id": `{"roomId":"r1","user":{"name":"Alice"}}`,
		"not json":        `{`,
	}

	for name, raw := range cases {
		if _, err := DecodeJoinRoom(json.RawMessage(raw)); !errors.Is(err, ErrMalformed) {
			t.Errorf("%s: expected ErrMalformed, got %v", name, err)
		}
	}
}

func TestDecodeLeaveRoomAllowsEmptyBody(t *testing.T) {
	if _, err := DecodeLeaveRoom(nil); err != nil {
		t.Fatalf("empty leave payload must be valid: %v", err)
	}
	if _, err := DecodeLeaveRoom(json.RawMessage(`{"roomId":"r1"}`)); err != nil {
		t.Fatalf("decode: %v", err)
	}
}

func TestDecodeCodeChange(t *testing.T) {
	data := json.RawMessage(`{"roomId":"r1","change":{"content":"print(1)","userId":"u1"}}`)

	d, err := DecodeCodeChange(data)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if d.Change.Content != "print(1)" || d.Change.UserID != "u1" {
		t.Fatalf("unexpected payload: %+v", d)
	}

	// Clearing the whole document is legal.
	empty := json.RawMessage(`{"roomId":"r1","change":{"content":"","userId":"u1"}}`)
	if _, err := DecodeCodeChange(empty); err != nil {
		t.Fatalf("empty content must be valid: %v", err)
	}

	missing := json.RawMessage(`{"roomId":"r1","change":{"content":"x"}}`)
	if _, err := DecodeCodeChange(missing); !errors.Is(err, ErrMalformed) {
		t.Fatalf("expected ErrMalformed for missing userId, got %v", err)
	}
}

func TestDecodeCursorMove(t *testing.T) {
	data := json.RawMessage(`{"roomId":"r1","userId":"u1","position":{"line":3,"column":7}}`)

	d, err := DecodeCursorMove(data)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if d.Position.Line != 3 || d.Position.Column != 7 {
		t.Fatalf("unexpected position: %+v", d.Position)
	}

	missing := json.RawMessage(`{"roomId":"r1","position":{"line":1,"column":1}}`)
	if _, err := DecodeCursorMove(missing); !errors.Is(err, ErrMalformed) {
		t.Fatalf("expected ErrMalformed for missing userId, got %v", err)
	}
}

func TestDecodeLanguageChange(t *testing.T) {
	data := json.RawMessage(`{"roomId":"r1","language":"python"}`)

	d, err := DecodeLanguageChange(data)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if d.Language != "python" {
		t.Fatalf("unexpected payload: %+v", d)
	}

	missing := json.RawMessage(`{"roomId":"r1"}`)
	if _, err := DecodeLanguageChange(missing); !errors.Is(err, ErrMalformed) {
		t.Fatalf("expected ErrMalformed for missing language, got %v", err)
	}
}
