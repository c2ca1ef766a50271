package logic

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/nachtrunde/werwolf-server/model"
	"github.com/nachtrunde/werwolf-server/service"
	"github.com/nachtrunde/werwolf-server/util"
	"github.com/oklog/ulid/v2"
)

const (
	msgWrongPhase    = "Diese Aktion ist in der aktuellen Phase nicht erlaubt."
	msgNotAmor       = "Nur der lebende Armor darf die Verliebten wählen."
	msgNotSeer       = "Nur der lebende Seher darf ein Ziel wählen."
	msgNotWolf       = "Nur lebende Werwölfe dürfen abstimmen."
	msgNotWitch      = "Nur die lebende Hexe darf Tränke einsetzen."
	msgNotAlive      = "Nur lebende Spieler dürfen abstimmen."
	msgInvalidTarget = "Ungültiges Ziel - Spieler muss am Leben sein."
	msgInvalidLovers = "Ungültige Wahl - zwei verschiedene lebende Spieler wählen."
	msgHealUsed      = "Der Heiltrank wurde bereits verwendet."
	msgNoHealVictim  = "Es gibt kein Opfer zum Heilen."
	msgPoisonUsed    = "Der Gifttrank wurde bereits verwendet."
	msgVoteUnanimous = "Wählt einheitlich!"
	msgTooFewAlive   = "Spiel beendet - zu wenige Spieler übrig"
)

type Game struct {
	ID         string
	lobby      *Lobby
	phase      model.Phase
	nightRound int
	lovers     []string
	usedHeal   bool
	usedPoison bool

	wolfTarget   *string
	healTarget   *string
	poisonTarget *string

	nightResolved bool
	wolfVotes     map[int]*VoteTally
	dayVote       *VoteTally
	dayActive     bool
	dayTimer      *time.Timer

	gameLogger *service.GameLogger
}

func NewGame(lobby *Lobby) *Game {
	game := &Game{
		ID:         ulid.Make().String(),
		lobby:      lobby,
		phase:      model.P_LOBBY,
		nightRound: 0,
		lovers:     nil,
		wolfVotes:  make(map[int]*VoteTally),
	}
	slog.Info("ゲームを作成しました", "id", game.ID, "lobby", lobby.Code)
	return game
}

func (g *Game) SetGameLogger(gameLogger *service.GameLogger) {
	g.gameLogger = gameLogger
}

func (g *Game) Phase() model.Phase {
	return g.phase
}

func (g *Game) NightRound() int {
	return g.nightRound
}

func (g *Game) IsFinished() bool {
	return g.phase == model.P_FINISHED
}

func (g *Game) players() []*model.Player {
	return g.lobby.players
}

func (g *Game) alivePlayers() []*model.Player {
	return util.AlivePlayers(g.players())
}

func (g *Game) aliveWerewolves() []*model.Player {
	return util.FilterPlayers(g.players(), func(player *model.Player) bool {
		return player.Alive && player.Role == model.R_WEREWOLF
	})
}

func (g *Game) appendLog(line string) {
	if g.gameLogger != nil {
		g.gameLogger.AppendLog(g.ID, line)
	}
}

func (g *Game) start() {
	slog.Info("ゲームを開始します", "id", g.ID, "lobby", g.lobby.Code)
	if g.gameLogger != nil {
		g.gameLogger.TrackStartGame(g.ID, g.players())
	}
	g.startFirstNight()
}

func (g *Game) startFirstNight() {
	g.nightResolved = false
	g.lobby.broadcast(model.E_PHASE_UPDATE, model.P_NIGHT_AMOR.Public())
	g.lobby.emitPlayerList()
	amor := util.FindAliveByRole(g.players(), model.R_AMOR)
	if amor == nil {
		g.startSeerPhase()
		return
	}
	g.phase = model.P_NIGHT_AMOR
	slog.Info("アモールフェーズを開始します", "id", g.ID)
	amor.Emit(model.E_CHOOSE_LOVERS, util.PlayerRefs(g.alivePlayers()))
}

func (g *Game) nextNight() {
	if g.phase != model.P_DAY {
		return
	}
	g.nightResolved = false
	g.lobby.broadcast(model.E_PHASE_UPDATE, model.P_NIGHT_SEER.Public())
	g.startSeerPhase()
}

func (g *Game) handleSetLovers(player *model.Player, lover1, lover2 *string) {
	if g.phase != model.P_NIGHT_AMOR {
		player.Emit(model.E_ERROR_MESSAGE, msgWrongPhase)
		return
	}
	if player.Role != model.R_AMOR || !player.Alive {
		player.Emit(model.E_ERROR_MESSAGE, msgNotAmor)
		return
	}
	if lover1 == nil || lover2 == nil || *lover1 == *lover2 {
		player.Emit(model.E_ERROR_MESSAGE, msgInvalidLovers)
		return
	}
	first := util.FindPlayerByID(g.players(), *lover1)
	second := util.FindPlayerByID(g.players(), *lover2)
	if first == nil || second == nil || !first.Alive || !second.Alive {
		player.Emit(model.E_ERROR_MESSAGE, msgInvalidLovers)
		return
	}
	g.lovers = []string{first.ID, second.ID}
	slog.Info("恋人を設定しました", "id", g.ID, "lover1", first.String(), "lover2", second.String())
	g.appendLog(fmt.Sprintf("%d,lovers,%s,%s", g.nightRound, first.ID, second.ID))
	refs := []model.PlayerRef{first.Ref(), second.Ref()}
	first.Emit(model.E_LOVERS_SET, refs)
	second.Emit(model.E_LOVERS_SET, refs)
	if player != first && player != second {
		player.Emit(model.E_LOVERS_SET, refs)
	}
	g.startSeerPhase()
}

func (g *Game) startSeerPhase() {
	seer := util.FindAliveByRole(g.players(), model.R_SEER)
	if seer == nil {
		g.startWolfPhase()
		return
	}
	g.phase = model.P_NIGHT_SEER
	slog.Info("占い師フェーズを開始します", "id", g.ID)
	seer.Emit(model.E_SEER_TURN, util.PlayerRefs(g.alivePlayers()))
}

func (g *Game) handleSeerAction(player *model.Player, targetID *string) {
	if g.phase != model.P_NIGHT_SEER {
		player.Emit(model.E_ERROR_MESSAGE, msgWrongPhase)
		return
	}
	if player.Role != model.R_SEER || !player.Alive {
		player.Emit(model.E_ERROR_MESSAGE, msgNotSeer)
		return
	}
	if targetID == nil {
		player.Emit(model.E_ERROR_MESSAGE, msgInvalidTarget)
		return
	}
	target := util.FindPlayerByID(g.players(), *targetID)
	if target == nil || !target.Alive {
		player.Emit(model.E_ERROR_MESSAGE, msgInvalidTarget)
		return
	}
	slog.Info("占い結果を送信しました", "id", g.ID, "seer", player.String(), "target", target.String(), "role", target.Role)
	g.appendLog(fmt.Sprintf("%d,seer,%s,%s,%s", g.nightRound, player.ID, target.ID, target.Role.Name))
	player.Emit(model.E_SEER_RESULT, model.SeerResult{Name: target.Name, Role: target.Role})
	g.startWolfPhase()
}

func (g *Game) finish(message string) {
	g.phase = model.P_FINISHED
	g.dayActive = false
	g.stopDayTimer()
	slog.Info("ゲームが終了しました", "id", g.ID, "lobby", g.lobby.Code)
	g.appendLog(fmt.Sprintf("%d,end,%s", g.nightRound, message))
	if g.gameLogger != nil {
		g.gameLogger.TrackEndGame(g.ID)
	}
	g.lobby.broadcast(model.E_GAME_END, message)
}

func (g *Game) stop() {
	g.stopDayTimer()
	g.phase = model.P_FINISHED
}

func (g *Game) stopDayTimer() {
	if g.dayTimer != nil {
		g.dayTimer.Stop()
		g.dayTimer = nil
	}
}

func (g *Game) handleDisconnect(player *model.Player) {
	switch g.phase {
	case model.P_NIGHT_AMOR:
		if util.FindAliveByRole(g.players(), model.R_AMOR) == nil {
			g.startSeerPhase()
		}
	case model.P_NIGHT_SEER:
		if util.FindAliveByRole(g.players(), model.R_SEER) == nil {
			g.startWolfPhase()
		}
	case model.P_NIGHT_WOLVES:
		tally := g.wolfVotes[g.nightRound]
		if tally == nil {
			return
		}
		tally.Remove(player.ID)
		wolves := g.aliveWerewolves()
		if len(wolves) == 0 {
			g.startWitchPhase()
			return
		}
		update := tally.Update()
		for _, wolf := range wolves {
			wolf.Emit(model.E_WOLF_VOTE_UPDATE, update)
		}
		slog.Info("切断により投票状況を更新しました", "id", g.ID, "expected", update.Expected, "received", update.Received)
		if tally.Complete() {
			g.finalizeWolfVotes()
		}
	case model.P_NIGHT_WITCH:
		if util.FindAliveByRole(g.players(), model.R_WITCH) == nil {
			g.finishNight()
		}
	case model.P_DAY:
		if g.dayVote == nil || !g.dayActive {
			return
		}
		g.dayVote.Remove(player.ID)
		update := g.dayVote.Update()
		for _, p := range g.alivePlayers() {
			p.Emit(model.E_DAY_VOTE_UPDATE, update)
		}
		slog.Info("切断により昼の投票状況を更新しました", "id", g.ID, "expected", update.Expected, "received", update.Received)
		if g.dayVote.Complete() {
			g.finalizeDayVotes()
		}
	}
}
