package core

import "testing"

func TestRoomBroadcastExcludesSender(t *testing.T) {
	room := NewRoom("room1", "javascript")
	alice := NewClient("conn-a")
	bob := NewClient("conn-b")
	room.AddClient(alice)
	room.AddClient(bob)

	room.Broadcast(&Event{Kind: EventCodeChanged, Code: "x"}, alice)

	select {
	case ev := <-bob.Events:
		if ev.Code != "x" {
			t.Fatalf("unexpected payload: %+v", ev)
		}
	default:
		t.Fatal("bob did not receive broadcast")
	}

	select {
	case ev := <-alice.Events:
		t.Fatalf("sender received its own broadcast: %+v", ev)
	default:
	}
}

func TestRoomBroadcastDropsSlowConsumer(t *testing.T) {
	room := NewRoom("room1", "javascript")
	slow := NewClient("conn-slow")
	room.AddClient(slow)

	// Fill the event buffer, then broadcast once more. The extra event
	// is dropped rather than blocking the engine.
	for i := 0; i < cap(slow.Events); i++ {
		slow.deliver(&Event{Kind: EventRoomUpdate})
	}
	room.Broadcast(&Event{Kind: EventCodeChanged}, nil)

	if len(slow.Events) != cap(slow.Events) {
		t.Fatalf("expected full buffer, got %d", len(slow.Events))
	}
}

func TestRoomSnapshotCopiesUsers(t *testing.T) {
	room := NewRoom("room1", "go")
	room.Code = "package main"
	room.SetUser(&User{ID: "u2", Name: "Bob"})
	room.SetUser(&User{ID: "u1", Name: "Alice"})

	snap := room.Snapshot()
	if snap.ID != "room1" || snap.Code != "package main" || snap.Language != "go" {
		t.Fatalf("unexpected snapshot: %+v", snap)
	}
	if len(snap.Users) != 2 || snap.Users[0].ID != "u1" || snap.Users[1].ID != "u2" {
		t.Fatalf("expected users sorted by id, got %+v", snap.Users)
	}

	// Mutating the snapshot must not reach the room.
	snap.Users[0].Name = "changed"
	if u, _ := room.UserByID("u1"); u.Name != "Alice" {
		t.Fatalf("snapshot aliases room state: %+v", u)
	}
}

func TestRoomEmptyTracksUsers(t *testing.T) {
	room := NewRoom("room1", "javascript")
	if !room.Empty() {
		t.Fatal("new room should be empty")
	}

	room.SetUser(&User{ID: "u1"})
	if room.Empty() {
		t.Fatal("room with a member is not empty")
	}

	room.RemoveUser("u1")
	if !room.Empty() {
		t.Fatal("room should be empty after last member leaves")
	}

	// Removing an unknown member is harmless.
	room.RemoveUser("ghost")
}
