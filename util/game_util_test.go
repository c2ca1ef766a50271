package util

import (
	"testing"

	"github.com/nachtrunde/werwolf-server/model"
	"github.com/stretchr/testify/assert"
)

func countRole(roles []model.Role, role model.Role) int {
	count := 0
	for _, r := range roles {
		if r == role {
			count++
		}
	}
	return count
}

func TestBuildRolePool(t *testing.T) {
	tests := []struct {
		players    int
		werewolves int
		seer       int
		witch      int
		amor       int
	}{
		{players: 4, werewolves: 2, seer: 1, witch: 0, amor: 0},
		{players: 5, werewolves: 2, seer: 1, witch: 1, amor: 0},
		{players: 6, werewolves: 2, seer: 1, witch: 1, amor: 1},
		{players: 7, werewolves: 3, seer: 1, witch: 1, amor: 1},
		{players: 10, werewolves: 3, seer: 1, witch: 1, amor: 1},
	}
	for _, tt := range tests {
		roles := BuildRolePool(tt.players)
		assert.Equal(t, tt.players, len(roles), "players=%d", tt.players)
		assert.Equal(t, tt.werewolves, countRole(roles, model.R_WEREWOLF), "players=%d", tt.players)
		assert.Equal(t, tt.seer, countRole(roles, model.R_SEER), "players=%d", tt.players)
		assert.Equal(t, tt.witch, countRole(roles, model.R_WITCH), "players=%d", tt.players)
		assert.Equal(t, tt.amor, countRole(roles, model.R_AMOR), "players=%d", tt.players)
	}
}

func TestAssignRoles(t *testing.T) {
	players := make([]*model.Player, 0, 7)
	for _, name := range []string{"A", "B", "C", "D", "E", "F", "G"} {
		player := model.NewPlayer(name, nil)
		player.Alive = false
		players = append(players, player)
	}
	AssignRoles(players)

	assigned := make([]model.Role, 0, len(players))
	for _, player := range players {
		assert.True(t, player.Alive)
		assert.NotEqual(t, model.R_NONE, player.Role)
		assigned = append(assigned, player.Role)
	}
	assert.Equal(t, 3, countRole(assigned, model.R_WEREWOLF))
	assert.Equal(t, 1, countRole(assigned, model.R_SEER))
	assert.Equal(t, 1, countRole(assigned, model.R_WITCH))
	assert.Equal(t, 1, countRole(assigned, model.R_AMOR))
	assert.Equal(t, 1, countRole(assigned, model.R_VILLAGER))
}

func TestFindAliveByRole(t *testing.T) {
	seer := model.NewPlayer("Seherin", nil)
	seer.Role = model.R_SEER
	seer.Alive = true
	dead := model.NewPlayer("Tot", nil)
	dead.Role = model.R_WITCH
	dead.Alive = false
	players := []*model.Player{seer, dead}

	assert.Equal(t, seer, FindAliveByRole(players, model.R_SEER))
	assert.Nil(t, FindAliveByRole(players, model.R_WITCH))
	assert.True(t, HasRole(players, model.R_WITCH))
}

func TestAliveHelpers(t *testing.T) {
	players := make([]*model.Player, 0, 4)
	for i, alive := range []bool{true, false, true, true} {
		player := model.NewPlayer(string(rune('A'+i)), nil)
		player.Alive = alive
		players = append(players, player)
	}

	assert.Equal(t, 3, CountAlive(players))
	assert.Equal(t, 3, len(AlivePlayers(players)))
	assert.Equal(t, players[1], FindPlayerByID(players, players[1].ID))
	assert.Nil(t, FindPlayerByID(players, "fehlt"))
}
