package core

import "testing"

func TestRegistryGetOrCreate(t *testing.T) {
	reg := NewRegistry("")

	room := reg.GetOrCreate("room1")
	if room.ID != "room1" || room.Code != "" || room.Language != "javascript" {
		t.Fatalf("unexpected new room: %+v", room)
	}
	if !room.Empty() {
		t.Fatal("new room should have no members")
	}

	again := reg.GetOrCreate("room1")
	if again != room {
		t.Fatal("GetOrCreate must return the existing room")
	}
	if reg.Len() != 1 {
		t.Fatalf("expected 1 room, got %d", reg.Len())
	}
}

func TestRegistryDefaultLanguage(t *testing.T) {
	reg := NewRegistry("python")

	room := reg.GetOrCreate("room1")
	if room.Language != "python" {
		t.Fatalf("expected configured default language, got %q", room.Language)
	}
}

func TestRegistryGetAbsent(t *testing.T) {
	reg := NewRegistry("")

	if _, ok := reg.Get("missing"); ok {
		t.Fatal("Get must not create rooms")
	}
	if reg.Len() != 0 {
		t.Fatalf("expected no rooms, got %d", reg.Len())
	}
}

func TestRegistryRemove(t *testing.T) {
	reg := NewRegistry("")
	reg.GetOrCreate("room1")

	reg.Remove("room1")
	if _, ok := reg.Get("room1"); ok {
		t.Fatal("room still present after Remove")
	}

	// Removing an unknown id is a no-op.
	reg.Remove("ghost")
	if reg.Len() != 0 {
		t.Fatalf("expected empty registry, got %d", reg.Len())
	}
}
