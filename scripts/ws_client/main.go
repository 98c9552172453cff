// Command ws_client is a terminal client for manual testing. Typed lines
// replace the shared document; edits are coalesced with a 200ms
// trailing-edge debounce before transmission, so rapid typing produces a
// single code-change carrying only the latest content.
package main

import (
	"bufio"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"

	"github.com/rohits2404/Code-Editor/internal/proto"
	"github.com/rohits2404/Code-Editor/internal/utils"
)

const debounceWindow = 200 * time.Millisecond

func main() {
	if err := run(); err != nil {
		log.Printf("ws_client: %v", err)
		os.Exit(1)
	}
}

func run() error {
	addr := flag.String("addr", "ws://localhost:3001/ws", "WebSocket address")
	name := flag.String("name", "cli-user", "display name")
	room := flag.String("room", "ABCD1234", "room to join")
	flag.Parse()

	baseCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithCancel(baseCtx)
	defer cancel()

	conn, _, err := websocket.Dial(ctx, *addr, nil)
	if err != nil {
		return fmt.Errorf("dial: %w", err)
	}
	defer conn.Close(websocket.StatusNormalClosure, "bye")

	userID := utils.NewID()

	send := func(eventType string, data any) {
		payload, marshalErr := json.Marshal(data)
		if marshalErr != nil {
			log.Printf("marshal %s: %v", eventType, marshalErr)
			return
		}
		if writeErr := wsjson.Write(ctx, conn, proto.Inbound{Type: eventType, Data: payload}); writeErr != nil {
			cancel()
			log.Printf("send: %v", writeErr)
		}
	}

	send(proto.InboundTypeJoinRoom, proto.JoinRoomData{
		RoomID: *room,
		User:   proto.UserPayload{ID: userID, Name: *name},
	})

	fmt.Printf("Connected to %s as %s in room %s\n", *addr, *name, *room)
	fmt.Println("Type text to edit the document, /lang <tag> to switch language, /leave to leave. Ctrl+C to exit.")

	go func() {
		defer cancel()
		readLoop(ctx, conn)
	}()

	inputLoop(ctx, *room, userID, send)

	stop()
	cancel()
	_ = conn.Close(websocket.StatusNormalClosure, "bye")
	return nil
}

// inputLoop reads stdin lines. Document edits go through a trailing-edge
// debounce timer; commands are sent immediately.
func inputLoop(ctx context.Context, room, userID string, send func(string, any)) {
	lines := make(chan string)
	go func() {
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			lines <- scanner.Text()
		}
		close(lines)
	}()

	timer := time.NewTimer(debounceWindow)
	if !timer.Stop() {
		<-timer.C
	}
	var pending string
	var dirty bool

	for {
		select {
		case line, ok := <-lines:
			if !ok {
				return
			}
			switch {
			case strings.HasPrefix(line, "/lang "):
				send(proto.InboundTypeLanguageChange, proto.LanguageChangeData{
					RoomID:   room,
					Language: strings.TrimSpace(strings.TrimPrefix(line, "/lang ")),
				})
			case line == "/leave":
				send(proto.InboundTypeLeaveRoom, proto.LeaveRoomData{})
			default:
				pending = line
				dirty = true
				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
				timer.Reset(debounceWindow)
			}

		case <-timer.C:
			if dirty {
				send(proto.InboundTypeCodeChange, proto.CodeChangeData{
					RoomID: room,
					Change: proto.CodeChangePayload{Content: pending, UserID: userID},
				})
				dirty = false
			}

		case <-ctx.Done():
			return
		}
	}
}

func readLoop(ctx context.Context, conn *websocket.Conn) {
	for {
		var outbound struct {
			Type string          `json:"type"`
			Data json.RawMessage `json:"data"`
		}
		if err := wsjson.Read(ctx, conn, &outbound); err != nil {
			switch websocket.CloseStatus(err) {
			case websocket.StatusNormalClosure, websocket.StatusGoingAway:
				return
			}
			if ctx.Err() == nil {
				log.Printf("read error: %v", err)
			}
			return
		}

		switch outbound.Type {
		case proto.OutboundTypeRoomJoined:
			var evt proto.RoomJoinedData
			if err := json.Unmarshal(outbound.Data, &evt); err != nil {
				continue
			}
			fmt.Printf("[%s] joined: %d user(s), language %s\n", evt.Room.ID, len(evt.Room.Users), evt.Room.Language)
		case proto.OutboundTypeRoomUpdate:
			var evt proto.RoomUpdateData
			if err := json.Unmarshal(outbound.Data, &evt); err != nil {
				continue
			}
			names := make([]string, 0, len(evt.Users))
			for _, u := range evt.Users {
				names = append(names, u.Name)
			}
			fmt.Printf("room update: users=[%s] language=%s\n", strings.Join(names, ", "), evt.Language)
		case proto.OutboundTypeCodeChanged:
			var evt proto.CodeChangedData
			if err := json.Unmarshal(outbound.Data, &evt); err != nil {
				continue
			}
			fmt.Printf("%s changed the document:\n%s\n", evt.UserID, evt.Code)
		case proto.OutboundTypeCursorMoved:
			var evt proto.CursorMovedData
			if err := json.Unmarshal(outbound.Data, &evt); err != nil {
				continue
			}
			fmt.Printf("%s moved cursor to %d:%d\n", evt.UserID, evt.Position.Line, evt.Position.Column)
		case proto.OutboundTypeLanguageChanged:
			var evt proto.LanguageChangedData
			if err := json.Unmarshal(outbound.Data, &evt); err != nil {
				continue
			}
			fmt.Printf("language changed to %s\n", evt.Language)
		}
	}
}
