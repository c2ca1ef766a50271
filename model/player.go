package model

import (
	"encoding/json"
	"log/slog"

	"github.com/gorilla/websocket"
	"github.com/oklog/ulid/v2"
)

type Player struct {
	ID    string
	Name  string
	Ready bool
	Alive bool
	Role  Role
	Conn  *websocket.Conn
}

func NewPlayer(name string, conn *websocket.Conn) *Player {
	player := &Player{
		ID:    ulid.Make().String(),
		Name:  name,
		Ready: false,
		Alive: true,
		Role:  R_NONE,
		Conn:  conn,
	}
	slog.Info("プレイヤーを作成しました", "id", player.ID, "name", player.Name)
	return player
}

func (p *Player) Emit(event string, data any) {
	if p.Conn == nil {
		return
	}
	raw, err := json.Marshal(Event{Type: event, Data: data})
	if err != nil {
		slog.Error("イベントの作成に失敗しました", "event", event, "error", err)
		return
	}
	if err := p.Conn.WriteMessage(websocket.TextMessage, raw); err != nil {
		slog.Warn("イベントの送信に失敗しました", "player", p.String(), "event", event, "error", err)
	}
}

func (p *Player) Connected() bool {
	return p.Conn != nil
}

func (p *Player) Close() {
	if p.Conn == nil {
		return
	}
	p.Conn.Close()
	p.Conn = nil
	slog.Info("プレイヤーをクローズしました", "player", p.String())
}

func (p *Player) Ref() PlayerRef {
	return PlayerRef{ID: p.ID, Name: p.Name}
}

func (p Player) String() string {
	return p.Name
}
