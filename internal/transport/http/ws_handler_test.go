package http

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"github.com/rs/zerolog"

	"github.com/rohits2404/Code-Editor/internal/config"
	"github.com/rohits2404/Code-Editor/internal/core"
	"github.com/rohits2404/Code-Editor/internal/executor"
	"github.com/rohits2404/Code-Editor/internal/proto"
)

func startTestServer(t *testing.T) (*httptest.Server, *core.Hub) {
	t.Helper()

	hub := core.NewHub(core.NewRegistry(""), nil)
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	go hub.Run(ctx)

	logger := zerolog.Nop()
	exec := executor.NewService("", "", &logger)
	server := NewServer(hub, exec, config.Config{
		Addr:              ":0",
		ReadHeaderTimeout: time.Second,
	}, &logger)

	ts := httptest.NewServer(server.Handler)
	t.Cleanup(ts.Close)

	return ts, hub
}

type outboundEnvelope struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

func dialWS(t *testing.T, ctx context.Context, ts *httptest.Server) *websocket.Conn {
	t.Helper()

	wsURL := strings.Replace(ts.URL, "http", "ws", 1) + "/ws"
	conn, _, err := websocket.Dial(ctx, wsURL, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() { conn.Close(websocket.StatusNormalClosure, "done") })
	return conn
}

func sendEvent(t *testing.T, ctx context.Context, conn *websocket.Conn, eventType string, data any) {
	t.Helper()

	payload, err := json.Marshal(data)
	if err != nil {
		t.Fatalf("marshal %s: %v", eventType, err)
	}
	if err := wsjson.Write(ctx, conn, proto.Inbound{Type: eventType, Data: payload}); err != nil {
		t.Fatalf("write %s: %v", eventType, err)
	}
}

// readUntil drains the connection until an envelope of the wanted type arrives.
func readUntil(t *testing.T, ctx context.Context, conn *websocket.Conn, eventType string) outboundEnvelope {
	t.Helper()

	for {
		var env outboundEnvelope
		if err := wsjson.Read(ctx, conn, &env); err != nil {
			t.Fatalf("read while waiting for %s: %v", eventType, err)
		}
		if env.Type == eventType {
			return env
		}
	}
}

func TestWebSocketJoinDeliversRoomSnapshot(t *testing.T) {
	ts, _ := startTestServer(t)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	conn := dialWS(t, ctx, ts)
	sendEvent(t, ctx, conn, proto.InboundTypeJoinRoom, proto.JoinRoomData{
		RoomID: "ABCD1234",
		User:   proto.UserPayload{ID: "u1", Name: "Alice"},
	})

	env := readUntil(t, ctx, conn, proto.OutboundTypeRoomJoined)
	var joined proto.RoomJoinedData
	if err := json.Unmarshal(env.Data, &joined); err != nil {
		t.Fatalf("unmarshal room-joined: %v", err)
	}
	if joined.Room.ID != "ABCD1234" || joined.Room.Code != "" || joined.Room.Language != "javascript" {
		t.Fatalf("unexpected room snapshot: %+v", joined.Room)
	}
	if len(joined.Room.Users) != 1 || joined.Room.Users[0].Name != "Alice" {
		t.Fatalf("unexpected users: %+v", joined.Room.Users)
	}
	if joined.Room.Users[0].Color == "" {
		t.Fatal("server should assign a color to users joining without one")
	}
}

func TestWebSocketCodeChangeReachesOthersOnly(t *testing.T) {
	ts, _ := startTestServer(t)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	alice := dialWS(t, ctx, ts)
	bob := dialWS(t, ctx, ts)

	sendEvent(t, ctx, alice, proto.InboundTypeJoinRoom, proto.JoinRoomData{
		RoomID: "room1",
		User:   proto.UserPayload{ID: "u1", Name: "Alice"},
	})
	readUntil(t, ctx, alice, proto.OutboundTypeRoomJoined)

	sendEvent(t, ctx, bob, proto.InboundTypeJoinRoom, proto.JoinRoomData{
		RoomID: "room1",
		User:   proto.UserPayload{ID: "u2", Name: "Bob"},
	})
	readUntil(t, ctx, bob, proto.OutboundTypeRoomJoined)

	// Wait for the two-member update on Alice before editing.
	for {
		env := readUntil(t, ctx, alice, proto.OutboundTypeRoomUpdate)
		var update proto.RoomUpdateData
		if err := json.Unmarshal(env.Data, &update); err != nil {
			t.Fatalf("unmarshal room-update: %v", err)
		}
		if len(update.Users) == 2 {
			break
		}
	}

	sendEvent(t, ctx, alice, proto.InboundTypeCodeChange, proto.CodeChangeData{
		RoomID: "room1",
		Change: proto.CodeChangePayload{Content: "print(1)", UserID: "u1"},
	})

	env := readUntil(t, ctx, bob, proto.OutboundTypeCodeChanged)
	var changed proto.CodeChangedData
	if err := json.Unmarshal(env.Data, &changed); err != nil {
		t.Fatalf("unmarshal code-changed: %v", err)
	}
	if changed.Code != "print(1)" || changed.UserID != "u1" {
		t.Fatalf("unexpected code-changed: %+v", changed)
	}

	// The sender must not get its own edit back.
	echoCtx, echoCancel := context.WithTimeout(ctx, 300*time.Millisecond)
	defer echoCancel()
	var env2 outboundEnvelope
	if err := wsjson.Read(echoCtx, alice, &env2); err == nil && env2.Type == proto.OutboundTypeCodeChanged {
		t.Fatalf("edit echoed back to sender: %+v", env2)
	}
}

func TestWebSocketLanguageChangeNotifiesSenderToo(t *testing.T) {
	ts, _ := startTestServer(t)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	conn := dialWS(t, ctx, ts)
	sendEvent(t, ctx, conn, proto.InboundTypeJoinRoom, proto.JoinRoomData{
		RoomID: "room1",
		User:   proto.UserPayload{ID: "u1", Name: "Alice"},
	})
	readUntil(t, ctx, conn, proto.OutboundTypeRoomJoined)

	sendEvent(t, ctx, conn, proto.InboundTypeLanguageChange, proto.LanguageChangeData{
		RoomID:   "room1",
		Language: "python",
	})

	env := readUntil(t, ctx, conn, proto.OutboundTypeLanguageChanged)
	var changed proto.LanguageChangedData
	if err := json.Unmarshal(env.Data, &changed); err != nil {
		t.Fatalf("unmarshal language-changed: %v", err)
	}
	if changed.Language != "python" {
		t.Fatalf("unexpected language: %q", changed.Language)
	}

	env = readUntil(t, ctx, conn, proto.OutboundTypeRoomUpdate)
	var update proto.RoomUpdateData
	if err := json.Unmarshal(env.Data, &update); err != nil {
		t.Fatalf("unmarshal room-update: %v", err)
	}
	if update.Language != "python" {
		t.Fatalf("room-update missing new language: %+v", update)
	}
}

func TestWebSocketMalformedEventsAreIgnored(t *testing.T) {
	ts, _ := startTestServer(t)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	conn := dialWS(t, ctx, ts)

	// Unknown event name and a join missing its roomId: both dropped
	// without killing the connection.
	sendEvent(t, ctx, conn, "bogus-event", map[string]string{"x": "y"})
	sendEvent(t, ctx, conn, proto.InboundTypeJoinRoom, proto.JoinRoomData{
		User: proto.UserPayload{ID: "u1", Name: "Alice"},
	})

	sendEvent(t, ctx, conn, proto.InboundTypeJoinRoom, proto.JoinRoomData{
		RoomID: "room1",
		User:   proto.UserPayload{ID: "u1", Name: "Alice"},
	})
	readUntil(t, ctx, conn, proto.OutboundTypeRoomJoined)
}

func TestWebSocketDisconnectCleansUpRoom(t *testing.T) {
	ts, hub := startTestServer(t)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	conn := dialWS(t, ctx, ts)
	sendEvent(t, ctx, conn, proto.InboundTypeJoinRoom, proto.JoinRoomData{
		RoomID: "room1",
		User:   proto.UserPayload{ID: "u1", Name: "Alice"},
	})
	readUntil(t, ctx, conn, proto.OutboundTypeRoomJoined)

	conn.Close(websocket.StatusNormalClosure, "bye")

	deadline := time.Now().Add(2 * time.Second)
	for hub.Registry().Len() != 0 {
		if time.Now().After(deadline) {
			t.Fatal("room not removed after last member disconnected")
		}
		time.Sleep(10 * time.Millisecond)
	}
}
