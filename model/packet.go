package model

const (
	E_CREATE_LOBBY = "create_lobby"
	E_JOIN_LOBBY   = "join_lobby"
	E_PLAYER_READY = "player_ready"
	E_START_GAME   = "start_game"
	E_SET_LOVERS   = "set_lovers"
	E_SEER_ACTION  = "seer_action"
	E_WOLF_ACTION  = "wolf_action"
	E_WITCH_HEAL   = "witch_heal"
	E_WITCH_POISON = "witch_poison"
	E_WITCH_DONE   = "witch_done"
	E_DAY_VOTE     = "day_vote"

	E_LOBBY_CREATED    = "lobby_created"
	E_LOBBY_JOINED     = "lobby_joined"
	E_LOBBY_UPDATE     = "lobby_update"
	E_PLAYER_LIST      = "player_list"
	E_GAME_STARTED     = "game_started"
	E_PHASE_UPDATE     = "phase_update"
	E_CHOOSE_LOVERS    = "choose_lovers"
	E_LOVERS_SET       = "lovers_set"
	E_SEER_TURN        = "seer_turn"
	E_SEER_RESULT      = "seer_result"
	E_WOLF_TURN        = "wolf_turn"
	E_WOLF_VOTE_UPDATE = "wolf_vote_update"
	E_WOLF_MESSAGE     = "wolf_message"
	E_WOLF_RESULT      = "wolf_result"
	E_WOLF_VOTE_END    = "wolf_vote_end"
	E_WITCH_TURN       = "witch_turn"
	E_NIGHT_DEATHS     = "night_deaths"
	E_DAY_VOTE_START   = "day_vote_start"
	E_DAY_VOTE_UPDATE  = "day_vote_update"
	E_DAY_VOTE_RESULT  = "day_vote_result"
	E_GAME_END         = "game_end"
	E_ERROR_MESSAGE    = "error_message"
)

type Packet struct {
	Type       string  `json:"type"`
	LobbyID    string  `json:"lobbyId,omitempty"`
	PlayerName string  `json:"playerName,omitempty"`
	TargetID   *string `json:"targetId,omitempty"`
	Lover1     *string `json:"lover1,omitempty"`
	Lover2     *string `json:"lover2,omitempty"`
	Ready      *bool   `json:"ready,omitempty"`
}

type Event struct {
	Type string `json:"type"`
	Data any    `json:"data,omitempty"`
}

type PlayerRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type LobbyPlayer struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Ready bool   `json:"ready"`
	Alive bool   `json:"alive"`
}

type LobbyState struct {
	LobbyID string        `json:"lobbyId"`
	Players []LobbyPlayer `json:"players"`
}

type GameStarted struct {
	Role    Role   `json:"role"`
	LobbyID string `json:"lobbyId"`
}

type VoteUpdate struct {
	Expected int `json:"expected"`
	Received int `json:"received"`
}

type WolfResult struct {
	TargetID string `json:"targetId"`
	Tie      bool   `json:"tie"`
}

type SeerResult struct {
	Name string `json:"name"`
	Role Role   `json:"role"`
}

type WitchTurn struct {
	Victim    *string     `json:"victim"`
	CanHeal   bool        `json:"canHeal"`
	CanPoison bool        `json:"canPoison"`
	Players   []PlayerRef `json:"players"`
}

type DayVoteStart struct {
	Players []PlayerRef `json:"players"`
	CanVote bool        `json:"canVote"`
}

type DayVoteResult struct {
	Result      string         `json:"result"`
	LynchTarget *string        `json:"lynchTarget"`
	Votes       map[string]int `json:"votes"`
}
