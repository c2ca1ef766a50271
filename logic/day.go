package logic

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/nachtrunde/werwolf-server/model"
	"github.com/nachtrunde/werwolf-server/util"
)

func (g *Game) startDayPhase() {
	g.phase = model.P_DAY
	g.lobby.broadcast(model.E_PHASE_UPDATE, model.P_DAY.Public())
	living := g.alivePlayers()
	if len(living) <= 2 {
		slog.Info("生存者が少ないため、ゲームを終了します", "id", g.ID, "alive", len(living))
		g.finish(msgTooFewAlive)
		return
	}
	g.dayVote = NewVoteTally(true, g.alivePlayers)
	g.dayActive = true
	slog.Info("昼フェーズを開始します", "id", g.ID, "alive", len(living))
	options := util.PlayerRefs(living)
	for _, player := range g.players() {
		player.Emit(model.E_DAY_VOTE_START, model.DayVoteStart{
			Players: options,
			CanVote: player.Alive,
		})
	}
}

func (g *Game) handleDayVote(player *model.Player, targetID *string) {
	if g.phase != model.P_DAY || !g.dayActive {
		player.Emit(model.E_ERROR_MESSAGE, msgWrongPhase)
		return
	}
	if !player.Alive {
		player.Emit(model.E_ERROR_MESSAGE, msgNotAlive)
		return
	}
	if targetID != nil {
		target := util.FindPlayerByID(g.players(), *targetID)
		if target == nil || !target.Alive {
			player.Emit(model.E_ERROR_MESSAGE, msgInvalidTarget)
			return
		}
	}
	g.dayVote.Record(player.ID, targetID)
	update := g.dayVote.Update()
	for _, p := range g.alivePlayers() {
		p.Emit(model.E_DAY_VOTE_UPDATE, update)
	}
	slog.Info("昼の投票を受信しました", "id", g.ID, "voter", player.String(), "expected", update.Expected, "received", update.Received)
	if g.dayVote.Complete() {
		g.finalizeDayVotes()
	}
}

func (g *Game) finalizeDayVotes() {
	if g.dayVote == nil || !g.dayActive || !g.dayVote.Complete() {
		return
	}
	target, counts, tie := g.dayVote.PluralityOutcome()
	var message string
	var lynchTarget *string
	switch {
	case target == nil && !tie:
		message = "Niemand wurde gelyncht - keine Stimmen abgegeben."
	case tie:
		message = "Unentschieden - niemand wird gelyncht."
	default:
		victim := util.FindPlayerByID(g.players(), *target)
		if victim != nil {
			victim.Alive = false
			lynchTarget = target
			message = fmt.Sprintf("%s wurde gelyncht.", victim.Name)
			g.appendLog(fmt.Sprintf("%d,lynch,%s", g.nightRound, victim.ID))
		}
	}
	g.dayActive = false
	slog.Info("昼の投票を集計しました", "id", g.ID, "message", message)
	g.lobby.broadcast(model.E_DAY_VOTE_RESULT, model.DayVoteResult{
		Result:      message,
		LynchTarget: lynchTarget,
		Votes:       counts,
	})
	g.lobby.emitPlayerList()

	lobby := g.lobby
	g.dayTimer = time.AfterFunc(lobby.config.Game.DayResultDelay*time.Millisecond, func() {
		lobby.mu.Lock()
		defer lobby.mu.Unlock()
		g.nextNight()
	})
}
