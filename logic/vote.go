package logic

import (
	"github.com/nachtrunde/werwolf-server/model"
)

type VoteTally struct {
	votes        map[string]*string
	allowAbstain bool
	eligible     func() []*model.Player
}

func NewVoteTally(allowAbstain bool, eligible func() []*model.Player) *VoteTally {
	return &VoteTally{
		votes:        make(map[string]*string),
		allowAbstain: allowAbstain,
		eligible:     eligible,
	}
}

func (t *VoteTally) Record(voterID string, targetID *string) {
	if targetID == nil && !t.allowAbstain {
		delete(t.votes, voterID)
		return
	}
	t.votes[voterID] = targetID
}

func (t *VoteTally) Remove(voterID string) {
	delete(t.votes, voterID)
}

func (t *VoteTally) filtered() map[string]*string {
	eligible := make(map[string]struct{})
	for _, player := range t.eligible() {
		eligible[player.ID] = struct{}{}
	}
	votes := make(map[string]*string)
	for voter, target := range t.votes {
		if _, ok := eligible[voter]; ok {
			votes[voter] = target
		}
	}
	return votes
}

func (t *VoteTally) Expected() int {
	return len(t.eligible())
}

func (t *VoteTally) Received() int {
	return len(t.filtered())
}

func (t *VoteTally) Complete() bool {
	expected := t.Expected()
	return expected > 0 && len(t.filtered()) == expected
}

func (t *VoteTally) Update() model.VoteUpdate {
	return model.VoteUpdate{Expected: t.Expected(), Received: t.Received()}
}

func (t *VoteTally) UnanimousTarget() (string, bool) {
	var target string
	first := true
	for _, vote := range t.filtered() {
		if vote == nil {
			return "", false
		}
		if first {
			target = *vote
			first = false
			continue
		}
		if *vote != target {
			return "", false
		}
	}
	if first {
		return "", false
	}
	return target, true
}

func (t *VoteTally) Counts() map[string]int {
	counts := make(map[string]int)
	for _, vote := range t.filtered() {
		if vote != nil {
			counts[*vote]++
		}
	}
	return counts
}

func (t *VoteTally) PluralityOutcome() (*string, map[string]int, bool) {
	counts := t.Counts()
	var max int
	for _, count := range counts {
		if count > max {
			max = count
		}
	}
	if max == 0 {
		return nil, counts, false
	}
	top := make([]string, 0, 1)
	for target, count := range counts {
		if count == max {
			top = append(top, target)
		}
	}
	if len(top) > 1 {
		return nil, counts, true
	}
	return &top[0], counts, false
}
