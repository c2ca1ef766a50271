package model

type Phase string

const (
	P_LOBBY        Phase = "LOBBY"
	P_NIGHT_AMOR   Phase = "NIGHT_AMOR"
	P_NIGHT_SEER   Phase = "NIGHT_SEER"
	P_NIGHT_WOLVES Phase = "NIGHT_WOLVES"
	P_NIGHT_WITCH  Phase = "NIGHT_WITCH"
	P_DAY          Phase = "DAY"
	P_FINISHED     Phase = "FINISHED"
)

func (p Phase) String() string {
	return string(p)
}

func (p Phase) Public() string {
	switch p {
	case P_DAY:
		return "Tag"
	case P_FINISHED:
		return "Ende"
	}
	return "Nacht"
}

func (p Phase) IsNight() bool {
	switch p {
	case P_NIGHT_AMOR, P_NIGHT_SEER, P_NIGHT_WOLVES, P_NIGHT_WITCH:
		return true
	}
	return false
}
