package logic

import (
	"testing"

	"github.com/nachtrunde/werwolf-server/model"
	"github.com/stretchr/testify/assert"
)

func TestNightResolutionIsIdempotent(t *testing.T) {
	t.Log("夜の解決を2回呼んでも、死亡は1回しか処理されない")
	lobby, players := newTestLobby(model.R_WEREWOLF, model.R_SEER, model.R_VILLAGER, model.R_VILLAGER, model.R_VILLAGER)
	victim := players[2]
	lobby.game.wolfTarget = ref(victim.ID)

	lobby.game.finishNight()
	assert.False(t, victim.Alive)
	assert.Equal(t, model.P_DAY, lobby.game.Phase())
	aliveAfterFirst := len(lobby.game.alivePlayers())

	lobby.game.finishNight()
	assert.Equal(t, aliveAfterFirst, len(lobby.game.alivePlayers()))
}

func TestHealPreventsWolfKill(t *testing.T) {
	lobby, players := newTestLobby(model.R_WEREWOLF, model.R_WITCH, model.R_VILLAGER, model.R_VILLAGER, model.R_VILLAGER)
	witch, victim := players[1], players[2]
	lobby.game.wolfTarget = ref(victim.ID)
	lobby.game.phase = model.P_NIGHT_WITCH

	lobby.HandleAction(witch, model.Packet{Type: model.E_WITCH_HEAL})
	assert.True(t, lobby.game.usedHeal)

	lobby.HandleAction(witch, model.Packet{Type: model.E_WITCH_DONE})
	assert.True(t, victim.Alive)
	assert.Equal(t, model.P_DAY, lobby.game.Phase())
}

func TestHealPotionIsSingleUse(t *testing.T) {
	lobby, players := newTestLobby(model.R_WEREWOLF, model.R_WITCH, model.R_VILLAGER, model.R_VILLAGER, model.R_VILLAGER)
	witch := players[1]
	lobby.game.usedHeal = true
	lobby.game.wolfTarget = ref(players[2].ID)
	lobby.game.phase = model.P_NIGHT_WITCH

	lobby.HandleAction(witch, model.Packet{Type: model.E_WITCH_HEAL})
	assert.Nil(t, lobby.game.healTarget)

	lobby.HandleAction(witch, model.Packet{Type: model.E_WITCH_DONE})
	assert.False(t, players[2].Alive)
}

func TestPoisonKillsTarget(t *testing.T) {
	lobby, players := newTestLobby(model.R_WEREWOLF, model.R_WITCH, model.R_VILLAGER, model.R_VILLAGER, model.R_VILLAGER)
	witch, target := players[1], players[3]
	lobby.game.phase = model.P_NIGHT_WITCH

	lobby.HandleAction(witch, model.Packet{Type: model.E_WITCH_POISON, TargetID: ref(target.ID)})
	assert.True(t, lobby.game.usedPoison)

	lobby.HandleAction(witch, model.Packet{Type: model.E_WITCH_DONE})
	assert.False(t, target.Alive)
}

func TestPoisonDeclineKeepsPotion(t *testing.T) {
	lobby, players := newTestLobby(model.R_WEREWOLF, model.R_WITCH, model.R_VILLAGER, model.R_VILLAGER, model.R_VILLAGER)
	witch := players[1]
	lobby.game.phase = model.P_NIGHT_WITCH

	lobby.HandleAction(witch, model.Packet{Type: model.E_WITCH_POISON})
	assert.False(t, lobby.game.usedPoison)
	assert.Nil(t, lobby.game.poisonTarget)
}

func TestOnlyWitchMayUsePotions(t *testing.T) {
	lobby, players := newTestLobby(model.R_WEREWOLF, model.R_WITCH, model.R_VILLAGER, model.R_VILLAGER, model.R_VILLAGER)
	lobby.game.phase = model.P_NIGHT_WITCH

	lobby.HandleAction(players[2], model.Packet{Type: model.E_WITCH_POISON, TargetID: ref(players[0].ID)})
	assert.False(t, lobby.game.usedPoison)
}

func TestLoveCascade(t *testing.T) {
	t.Log("恋人の片方が死ぬと、もう片方も後を追う")
	lobby, players := newTestLobby(model.R_WEREWOLF, model.R_AMOR, model.R_VILLAGER, model.R_VILLAGER, model.R_VILLAGER, model.R_VILLAGER)
	lover1, lover2 := players[2], players[3]
	lobby.game.lovers = []string{lover1.ID, lover2.ID}
	lobby.game.wolfTarget = ref(lover1.ID)

	lobby.game.finishNight()
	assert.False(t, lover1.Alive)
	assert.False(t, lover2.Alive)
}

func TestLoveCascadeOnlyWithOneSurvivor(t *testing.T) {
	lobby, players := newTestLobby(model.R_WEREWOLF, model.R_AMOR, model.R_VILLAGER, model.R_VILLAGER, model.R_VILLAGER, model.R_VILLAGER)
	lover1, lover2 := players[2], players[3]
	lobby.game.lovers = []string{lover1.ID, lover2.ID}
	lobby.game.wolfTarget = ref(players[4].ID)

	lobby.game.finishNight()
	assert.True(t, lover1.Alive)
	assert.True(t, lover2.Alive)
}

func TestLoveCascadeDoesNotChain(t *testing.T) {
	lobby, players := newTestLobby(model.R_WEREWOLF, model.R_AMOR, model.R_VILLAGER, model.R_VILLAGER, model.R_VILLAGER, model.R_VILLAGER)
	lover1, lover2 := players[2], players[3]
	bystander := players[4]
	lobby.game.lovers = []string{lover1.ID, lover2.ID}
	lobby.game.wolfTarget = ref(lover1.ID)
	lobby.game.poisonTarget = ref(bystander.ID)

	lobby.game.finishNight()
	assert.False(t, lover1.Alive)
	assert.False(t, lover2.Alive)
	assert.False(t, bystander.Alive)
	assert.Equal(t, 3, len(lobby.game.alivePlayers()))
}

func TestHealedVictimThenPoisonedStillDies(t *testing.T) {
	lobby, players := newTestLobby(model.R_WEREWOLF, model.R_WITCH, model.R_VILLAGER, model.R_VILLAGER, model.R_VILLAGER)
	victim := players[2]
	lobby.game.wolfTarget = ref(victim.ID)
	lobby.game.healTarget = ref(victim.ID)
	lobby.game.poisonTarget = ref(victim.ID)

	lobby.game.finishNight()
	assert.False(t, victim.Alive)
}

func TestNightStateResetAfterResolution(t *testing.T) {
	lobby, players := newTestLobby(model.R_WEREWOLF, model.R_SEER, model.R_VILLAGER, model.R_VILLAGER, model.R_VILLAGER)
	lobby.game.startWolfPhase()
	lobby.HandleAction(players[0], actionPacket(model.E_WOLF_ACTION, ref(players[2].ID)))

	assert.Equal(t, model.P_DAY, lobby.game.Phase())
	assert.Nil(t, lobby.game.wolfTarget)
	assert.Nil(t, lobby.game.healTarget)
	assert.Nil(t, lobby.game.poisonTarget)
	assert.Nil(t, lobby.game.wolfVotes[1])
}
