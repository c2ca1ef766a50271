package logic

import (
	"fmt"
	"log/slog"

	"github.com/nachtrunde/werwolf-server/model"
	"github.com/nachtrunde/werwolf-server/util"
)

func (g *Game) startWolfPhase() {
	wolves := g.aliveWerewolves()
	if len(wolves) == 0 {
		g.startWitchPhase()
		return
	}
	g.phase = model.P_NIGHT_WOLVES
	g.nightRound++
	g.wolfTarget = nil
	g.nightResolved = false
	tally := NewVoteTally(false, g.aliveWerewolves)
	g.wolfVotes[g.nightRound] = tally
	slog.Info("人狼フェーズを開始します", "id", g.ID, "round", g.nightRound, "wolves", len(wolves))
	choices := util.PlayerRefs(g.alivePlayers())
	for _, wolf := range wolves {
		wolf.Emit(model.E_WOLF_VOTE_END, nil)
		wolf.Emit(model.E_WOLF_TURN, choices)
		wolf.Emit(model.E_WOLF_VOTE_UPDATE, tally.Update())
	}
}

func (g *Game) handleWolfAction(player *model.Player, targetID *string) {
	if g.phase != model.P_NIGHT_WOLVES {
		player.Emit(model.E_ERROR_MESSAGE, msgWrongPhase)
		return
	}
	if player.Role != model.R_WEREWOLF || !player.Alive {
		player.Emit(model.E_ERROR_MESSAGE, msgNotWolf)
		return
	}
	if targetID != nil {
		target := util.FindPlayerByID(g.players(), *targetID)
		if target == nil || !target.Alive {
			player.Emit(model.E_ERROR_MESSAGE, msgInvalidTarget)
			return
		}
	}
	tally := g.wolfVotes[g.nightRound]
	tally.Record(player.ID, targetID)
	update := tally.Update()
	for _, wolf := range g.aliveWerewolves() {
		wolf.Emit(model.E_WOLF_VOTE_UPDATE, update)
	}
	slog.Info("人狼の投票を受信しました", "id", g.ID, "round", g.nightRound, "wolf", player.String(), "expected", update.Expected, "received", update.Received)
	if tally.Complete() {
		g.finalizeWolfVotes()
	}
}

func (g *Game) finalizeWolfVotes() {
	tally := g.wolfVotes[g.nightRound]
	if tally == nil || !tally.Complete() {
		return
	}
	wolves := g.aliveWerewolves()
	target, unanimous := tally.UnanimousTarget()
	if !unanimous {
		slog.Info("人狼の投票が一致していません", "id", g.ID, "round", g.nightRound)
		for _, wolf := range wolves {
			wolf.Emit(model.E_WOLF_MESSAGE, msgVoteUnanimous)
		}
		return
	}
	g.wolfTarget = &target
	g.appendLog(fmt.Sprintf("%d,attack,%s", g.nightRound, target))
	slog.Info("襲撃対象を設定しました", "id", g.ID, "round", g.nightRound, "target", target)
	for _, wolf := range wolves {
		wolf.Emit(model.E_WOLF_RESULT, model.WolfResult{TargetID: target, Tie: false})
		wolf.Emit(model.E_WOLF_VOTE_END, nil)
	}
	g.startWitchPhase()
}

func (g *Game) startWitchPhase() {
	witch := util.FindAliveByRole(g.players(), model.R_WITCH)
	if witch == nil {
		g.finishNight()
		return
	}
	g.phase = model.P_NIGHT_WITCH
	slog.Info("魔女フェーズを開始します", "id", g.ID, "round", g.nightRound)
	var victimName *string
	if g.wolfTarget != nil {
		if victim := util.FindPlayerByID(g.players(), *g.wolfTarget); victim != nil {
			victimName = &victim.Name
		}
	}
	witch.Emit(model.E_WITCH_TURN, model.WitchTurn{
		Victim:    victimName,
		CanHeal:   !g.usedHeal && victimName != nil,
		CanPoison: !g.usedPoison,
		Players:   util.PlayerRefs(g.alivePlayers()),
	})
}

func (g *Game) guardWitch(player *model.Player) bool {
	if g.phase != model.P_NIGHT_WITCH {
		player.Emit(model.E_ERROR_MESSAGE, msgWrongPhase)
		return false
	}
	if player.Role != model.R_WITCH || !player.Alive {
		player.Emit(model.E_ERROR_MESSAGE, msgNotWitch)
		return false
	}
	return true
}

func (g *Game) handleWitchHeal(player *model.Player) {
	if !g.guardWitch(player) {
		return
	}
	if g.usedHeal {
		player.Emit(model.E_ERROR_MESSAGE, msgHealUsed)
		return
	}
	if g.wolfTarget == nil {
		player.Emit(model.E_ERROR_MESSAGE, msgNoHealVictim)
		return
	}
	g.healTarget = g.wolfTarget
	g.usedHeal = true
	g.appendLog(fmt.Sprintf("%d,heal,%s", g.nightRound, *g.healTarget))
	slog.Info("治癒対象を設定しました", "id", g.ID, "round", g.nightRound, "target", *g.healTarget)
}

func (g *Game) handleWitchPoison(player *model.Player, targetID *string) {
	if !g.guardWitch(player) {
		return
	}
	if g.usedPoison {
		player.Emit(model.E_ERROR_MESSAGE, msgPoisonUsed)
		return
	}
	if targetID == nil {
		return
	}
	target := util.FindPlayerByID(g.players(), *targetID)
	if target == nil || !target.Alive {
		player.Emit(model.E_ERROR_MESSAGE, msgInvalidTarget)
		return
	}
	g.poisonTarget = targetID
	g.usedPoison = true
	g.appendLog(fmt.Sprintf("%d,poison,%s", g.nightRound, target.ID))
	slog.Info("毒対象を設定しました", "id", g.ID, "round", g.nightRound, "target", target.String())
}

func (g *Game) handleWitchDone(player *model.Player) {
	if !g.guardWitch(player) {
		return
	}
	g.finishNight()
}

func (g *Game) finishNight() {
	if g.nightResolved {
		slog.Warn("夜の処理は既に完了しています", "id", g.ID, "round", g.nightRound)
		return
	}
	g.nightResolved = true
	deaths := make([]string, 0)
	if g.wolfTarget != nil && g.healTarget == nil {
		if victim := util.FindPlayerByID(g.players(), *g.wolfTarget); victim != nil && victim.Alive {
			victim.Alive = false
			deaths = append(deaths, victim.Name)
		}
	}
	if g.poisonTarget != nil {
		if victim := util.FindPlayerByID(g.players(), *g.poisonTarget); victim != nil && victim.Alive {
			victim.Alive = false
			deaths = append(deaths, victim.Name)
		}
	}
	if len(g.lovers) == 2 {
		lover1 := util.FindPlayerByID(g.players(), g.lovers[0])
		lover2 := util.FindPlayerByID(g.players(), g.lovers[1])
		if lover1 != nil && lover2 != nil {
			if !lover1.Alive && lover2.Alive {
				lover2.Alive = false
				deaths = append(deaths, lover2.Name+" (Liebeskummer)")
			} else if !lover2.Alive && lover1.Alive {
				lover1.Alive = false
				deaths = append(deaths, lover1.Name+" (Liebeskummer)")
			}
		}
	}
	slog.Info("夜の結果を処理しました", "id", g.ID, "round", g.nightRound, "deaths", len(deaths))
	g.appendLog(fmt.Sprintf("%d,nightDeaths,%d", g.nightRound, len(deaths)))
	if len(deaths) == 0 {
		deaths = append(deaths, "Niemand ist gestorben.")
	}
	g.lobby.broadcast(model.E_NIGHT_DEATHS, deaths)

	g.wolfTarget = nil
	g.healTarget = nil
	g.poisonTarget = nil
	delete(g.wolfVotes, g.nightRound)

	g.lobby.emitPlayerList()
	g.startDayPhase()
}
