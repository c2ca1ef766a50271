package logic

import (
	"log/slog"
	"sync"

	"github.com/nachtrunde/werwolf-server/model"
	"github.com/nachtrunde/werwolf-server/service"
	"github.com/nachtrunde/werwolf-server/util"
)

const (
	msgLobbyMissing   = "Lobby existiert nicht"
	msgLobbyRunning   = "Das Spiel läuft bereits."
	msgTooFewPlayers  = "Mindestens 4 Spieler benötigt."
	msgNotAllReady    = "Nicht alle Spieler sind bereit."
	msgAlreadyStarted = "Das Spiel wurde bereits gestartet."
)

type Lobby struct {
	Code       string
	mu         sync.Mutex
	players    []*model.Player
	game       *Game
	config     *model.Config
	gameLogger *service.GameLogger
	closed     bool
}

func NewLobby(code string, config *model.Config) *Lobby {
	return &Lobby{
		Code:    code,
		players: make([]*model.Player, 0),
		config:  config,
	}
}

func (l *Lobby) SetGameLogger(gameLogger *service.GameLogger) {
	l.gameLogger = gameLogger
}

func (l *Lobby) Game() *Game {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.game
}

func (l *Lobby) Players() []*model.Player {
	l.mu.Lock()
	defer l.mu.Unlock()
	players := make([]*model.Player, len(l.players))
	copy(players, l.players)
	return players
}

func (l *Lobby) Join(player *model.Player, created bool) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed {
		player.Emit(model.E_ERROR_MESSAGE, msgLobbyMissing)
		return false
	}
	if l.game != nil {
		player.Emit(model.E_ERROR_MESSAGE, msgLobbyRunning)
		return false
	}
	l.players = append(l.players, player)
	slog.Info("プレイヤーがロビーに参加しました", "lobby", l.Code, "player", player.String())
	event := model.E_LOBBY_JOINED
	if created {
		event = model.E_LOBBY_CREATED
	}
	player.Emit(event, l.state())
	l.broadcastLobbyUpdate()
	return true
}

func (l *Lobby) SetReady(player *model.Player, ready bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.game != nil {
		return
	}
	player.Ready = ready
	slog.Info("準備状態を更新しました", "lobby", l.Code, "player", player.String(), "ready", ready)
	l.broadcastLobbyUpdate()
}

func (l *Lobby) StartGame(player *model.Player) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.game != nil {
		player.Emit(model.E_ERROR_MESSAGE, msgAlreadyStarted)
		return
	}
	if len(l.players) < l.config.Game.MinPlayers {
		player.Emit(model.E_ERROR_MESSAGE, msgTooFewPlayers)
		return
	}
	for _, p := range l.players {
		if !p.Ready {
			player.Emit(model.E_ERROR_MESSAGE, msgNotAllReady)
			return
		}
	}
	util.AssignRoles(l.players)
	l.game = NewGame(l)
	if l.gameLogger != nil {
		l.game.SetGameLogger(l.gameLogger)
	}
	for _, p := range l.players {
		p.Emit(model.E_GAME_STARTED, model.GameStarted{Role: p.Role, LobbyID: l.Code})
	}
	l.game.start()
}

func (l *Lobby) HandleAction(player *model.Player, packet model.Packet) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.game == nil || l.game.IsFinished() {
		player.Emit(model.E_ERROR_MESSAGE, msgWrongPhase)
		return
	}
	switch packet.Type {
	case model.E_SET_LOVERS:
		l.game.handleSetLovers(player, packet.Lover1, packet.Lover2)
	case model.E_SEER_ACTION:
		l.game.handleSeerAction(player, packet.TargetID)
	case model.E_WOLF_ACTION:
		l.game.handleWolfAction(player, packet.TargetID)
	case model.E_WITCH_HEAL:
		l.game.handleWitchHeal(player)
	case model.E_WITCH_POISON:
		l.game.handleWitchPoison(player, packet.TargetID)
	case model.E_WITCH_DONE:
		l.game.handleWitchDone(player)
	case model.E_DAY_VOTE:
		l.game.handleDayVote(player, packet.TargetID)
	default:
		slog.Warn("不明なアクションを受信しました", "lobby", l.Code, "type", packet.Type)
	}
}

func (l *Lobby) HandleDisconnect(player *model.Player) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	player.Close()
	if l.game == nil || l.game.IsFinished() {
		for i, p := range l.players {
			if p == player {
				l.players = append(l.players[:i], l.players[i+1:]...)
				break
			}
		}
		slog.Info("プレイヤーがロビーから退出しました", "lobby", l.Code, "player", player.String())
		l.broadcastLobbyUpdate()
		return l.checkEmpty()
	}
	player.Alive = false
	slog.Info("プレイヤーが切断されました", "lobby", l.Code, "player", player.String())
	l.game.handleDisconnect(player)
	l.broadcastLobbyUpdate()
	return l.checkEmpty()
}

func (l *Lobby) Teardown() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.closed = true
	if l.game != nil {
		l.game.stop()
	}
	slog.Info("ロビーを破棄します", "lobby", l.Code)
}

func (l *Lobby) checkEmpty() bool {
	for _, p := range l.players {
		if p.Connected() {
			return false
		}
	}
	l.closed = true
	return true
}

func (l *Lobby) state() model.LobbyState {
	players := make([]model.LobbyPlayer, 0, len(l.players))
	for _, p := range l.players {
		players = append(players, model.LobbyPlayer{
			ID:    p.ID,
			Name:  p.Name,
			Ready: p.Ready,
			Alive: p.Alive,
		})
	}
	return model.LobbyState{LobbyID: l.Code, Players: players}
}

func (l *Lobby) broadcast(event string, data any) {
	for _, p := range l.players {
		p.Emit(event, data)
	}
}

func (l *Lobby) broadcastLobbyUpdate() {
	l.broadcast(model.E_LOBBY_UPDATE, l.state().Players)
}

func (l *Lobby) emitPlayerList() {
	refs := make([]model.PlayerRef, 0, len(l.players))
	for _, p := range l.players {
		refs = append(refs, p.Ref())
	}
	l.broadcast(model.E_PLAYER_LIST, refs)
}
