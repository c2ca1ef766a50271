package model

import "encoding/json"

type Role struct {
	Name string
	Team Team
}

var (
	R_WEREWOLF = Role{Name: "Werwolf", Team: T_WEREWOLF}
	R_SEER     = Role{Name: "Seher", Team: T_VILLAGE}
	R_WITCH    = Role{Name: "Hexe", Team: T_VILLAGE}
	R_AMOR     = Role{Name: "Armor", Team: T_VILLAGE}
	R_VILLAGER = Role{Name: "Dorfbewohner", Team: T_VILLAGE}
	R_NONE     = Role{Name: "NONE", Team: T_NONE}
)

type Team string

const (
	T_VILLAGE  Team = "DORF"
	T_WEREWOLF Team = "WERWOLF"
	T_NONE     Team = "NONE"
)

func (r Role) String() string {
	return r.Name
}

func (r Role) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.String())
}
