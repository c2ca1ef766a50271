package core

import (
	"log/slog"
	"math/rand"
	"strconv"
	"sync"

	"github.com/nachtrunde/werwolf-server/logic"
	"github.com/nachtrunde/werwolf-server/model"
	"github.com/nachtrunde/werwolf-server/service"
)

type LobbyRegistry struct {
	config     *model.Config
	gameLogger *service.GameLogger
	lobbies    sync.Map
}

func NewLobbyRegistry(config *model.Config) *LobbyRegistry {
	return &LobbyRegistry{
		config: config,
	}
}

func (r *LobbyRegistry) SetGameLogger(gameLogger *service.GameLogger) {
	r.gameLogger = gameLogger
}

func (r *LobbyRegistry) Create() *logic.Lobby {
	for {
		code := strconv.Itoa(1000 + rand.Intn(9000))
		lobby := logic.NewLobby(code, r.config)
		if r.gameLogger != nil {
			lobby.SetGameLogger(r.gameLogger)
		}
		if _, loaded := r.lobbies.LoadOrStore(code, lobby); !loaded {
			slog.Info("ロビーを作成しました", "lobby", code)
			return lobby
		}
	}
}

func (r *LobbyRegistry) Find(code string) *logic.Lobby {
	value, exists := r.lobbies.Load(code)
	if !exists {
		return nil
	}
	return value.(*logic.Lobby)
}

func (r *LobbyRegistry) Remove(code string) {
	if value, loaded := r.lobbies.LoadAndDelete(code); loaded {
		value.(*logic.Lobby).Teardown()
		slog.Info("ロビーを削除しました", "lobby", code)
	}
}

func (r *LobbyRegistry) Empty() bool {
	empty := true
	r.lobbies.Range(func(key, value any) bool {
		empty = false
		return false
	})
	return empty
}
