package http

import (
	"fmt"

	"github.com/rohits2404/Code-Editor/internal/core"
	"github.com/rohits2404/Code-Editor/internal/languages"
	"github.com/rohits2404/Code-Editor/internal/proto"
)

// inboundToCommand converts a wire envelope into a core command. Unknown
// event names and malformed payloads yield an error; the caller drops
// those messages without touching the engine.
func inboundToCommand(inbound proto.Inbound) (*core.Command, error) {
	switch inbound.Type {
	case proto.InboundTypeJoinRoom:
		d, err := proto.DecodeJoinRoom(inbound.Data)
		if err != nil {
			return nil, err
		}
		user := userFromPayload(d.User)
		if user.Color == "" {
			user.Color = languages.RandomColor()
		}
		return &core.Command{
			Kind: core.CommandJoinRoom,
			Room: d.RoomID,
			User: user,
		}, nil

	case proto.InboundTypeLeaveRoom:
		if _, err := proto.DecodeLeaveRoom(inbound.Data); err != nil {
			return nil, err
		}
		return &core.Command{Kind: core.CommandLeaveRoom}, nil

	case proto.InboundTypeCodeChange:
		d, err := proto.DecodeCodeChange(inbound.Data)
		if err != nil {
			return nil, err
		}
		return &core.Command{
			Kind: core.CommandCodeChange,
			Room: d.RoomID,
			Change: &core.CodeChange{
				Type:     d.Change.Type,
				Position: d.Change.Position,
				Content:  d.Change.Content,
				UserID:   d.Change.UserID,
			},
		}, nil

	case proto.InboundTypeCursorMove:
		d, err := proto.DecodeCursorMove(inbound.Data)
		if err != nil {
			return nil, err
		}
		return &core.Command{
			Kind:     core.CommandCursorMove,
			Room:     d.RoomID,
			UserID:   d.UserID,
			Position: &core.Cursor{Line: d.Position.Line, Column: d.Position.Column},
		}, nil

	case proto.InboundTypeLanguageChange:
		d, err := proto.DecodeLanguageChange(inbound.Data)
		if err != nil {
			return nil, err
		}
		return &core.Command{
			Kind:     core.CommandLanguageChange,
			Room:     d.RoomID,
			Language: d.Language,
		}, nil

	default:
		return nil, fmt.Errorf("%w: unknown event %q", proto.ErrMalformed, inbound.Type)
	}
}

// outboundFromEvent converts a core event into its wire envelope.
func outboundFromEvent(ev *core.Event) proto.Outbound {
	switch ev.Kind {
	case core.EventRoomJoined:
		return proto.Outbound{
			Type: proto.OutboundTypeRoomJoined,
			Data: proto.RoomJoinedData{Room: roomPayload(ev.Room)},
		}
	case core.EventRoomUpdate:
		room := roomPayload(ev.Room)
		return proto.Outbound{
			Type: proto.OutboundTypeRoomUpdate,
			Data: proto.RoomUpdateData{
				Users:    room.Users,
				Code:     room.Code,
				Language: room.Language,
			},
		}
	case core.EventCodeChanged:
		return proto.Outbound{
			Type: proto.OutboundTypeCodeChanged,
			Data: proto.CodeChangedData{
				Code:   ev.Code,
				UserID: ev.UserID,
				Change: changePayload(ev.Change),
			},
		}
	case core.EventCursorMoved:
		var pos proto.CursorPayload
		if ev.Position != nil {
			pos = proto.CursorPayload{Line: ev.Position.Line, Column: ev.Position.Column}
		}
		return proto.Outbound{
			Type: proto.OutboundTypeCursorMoved,
			Data: proto.CursorMovedData{UserID: ev.UserID, Position: pos},
		}
	case core.EventLanguageChanged:
		return proto.Outbound{
			Type: proto.OutboundTypeLanguageChanged,
			Data: proto.LanguageChangedData{Language: ev.Language},
		}
	case core.EventError:
		var protoErr *proto.Error
		if ev.Error != nil {
			protoErr = &proto.Error{Code: ev.Error.Code, Msg: ev.Error.Message}
		}
		return proto.Outbound{Type: proto.OutboundTypeError, Error: protoErr}
	default:
		return proto.Outbound{Type: proto.OutboundTypeError}
	}
}

func userFromPayload(p proto.UserPayload) *core.User {
	u := &core.User{
		ID:    p.ID,
		Name:  p.Name,
		Color: p.Color,
	}
	if p.Cursor != nil {
		u.Cursor = &core.Cursor{Line: p.Cursor.Line, Column: p.Cursor.Column}
	}
	return u
}

func userPayload(u core.User) proto.UserPayload {
	p := proto.UserPayload{
		ID:    u.ID,
		Name:  u.Name,
		Color: u.Color,
	}
	if u.Cursor != nil {
		p.Cursor = &proto.CursorPayload{Line: u.Cursor.Line, Column: u.Cursor.Column}
	}
	return p
}

func roomPayload(state *core.RoomState) proto.RoomPayload {
	if state == nil {
		return proto.RoomPayload{Users: []proto.UserPayload{}}
	}
	users := make([]proto.UserPayload, 0, len(state.Users))
	for _, u := range state.Users {
		users = append(users, userPayload(u))
	}
	return proto.RoomPayload{
		ID:       state.ID,
		Users:    users,
		Code:     state.Code,
		Language: state.Language,
	}
}

func changePayload(change *core.CodeChange) proto.CodeChangePayload {
	if change == nil {
		return proto.CodeChangePayload{}
	}
	return proto.CodeChangePayload{
		Type:     change.Type,
		Position: change.Position,
		Content:  change.Content,
		UserID:   change.UserID,
	}
}
