package util

import (
	"math/rand"

	"github.com/nachtrunde/werwolf-server/model"
)

func BuildRolePool(playerCount int) []model.Role {
	roles := []model.Role{model.R_WEREWOLF}
	if playerCount >= 3 {
		roles = append(roles, model.R_WEREWOLF)
	}
	if playerCount >= 4 {
		roles = append(roles, model.R_SEER)
	}
	if playerCount >= 5 {
		roles = append(roles, model.R_WITCH)
	}
	if playerCount >= 6 {
		roles = append(roles, model.R_AMOR)
	}
	if playerCount >= 7 {
		roles = append(roles, model.R_WEREWOLF)
	}
	for len(roles) < playerCount {
		roles = append(roles, model.R_VILLAGER)
	}
	return roles
}

func AssignRoles(players []*model.Player) {
	roles := BuildRolePool(len(players))
	rand.Shuffle(len(roles), func(i, j int) {
		roles[i], roles[j] = roles[j], roles[i]
	})
	for i, player := range players {
		player.Role = roles[i]
		player.Alive = true
	}
}

func FilterPlayers(players []*model.Player, filter func(*model.Player) bool) []*model.Player {
	filtered := make([]*model.Player, 0)
	for _, player := range players {
		if filter(player) {
			filtered = append(filtered, player)
		}
	}
	return filtered
}

func FindPlayerByID(players []*model.Player, id string) *model.Player {
	for _, player := range players {
		if player.ID == id {
			return player
		}
	}
	return nil
}

func AlivePlayers(players []*model.Player) []*model.Player {
	return FilterPlayers(players, func(player *model.Player) bool {
		return player.Alive
	})
}

func CountAlive(players []*model.Player) int {
	return len(AlivePlayers(players))
}

func FindAliveByRole(players []*model.Player, role model.Role) *model.Player {
	for _, player := range players {
		if player.Alive && player.Role == role {
			return player
		}
	}
	return nil
}

func HasRole(players []*model.Player, role model.Role) bool {
	for _, player := range players {
		if player.Role == role {
			return true
		}
	}
	return false
}

func PlayerRefs(players []*model.Player) []model.PlayerRef {
	refs := make([]model.PlayerRef, 0, len(players))
	for _, player := range players {
		refs = append(refs, player.Ref())
	}
	return refs
}
