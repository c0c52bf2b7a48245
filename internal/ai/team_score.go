package ai

import (
	"github.com/udisondev/battlesim/internal/data"
	"github.com/udisondev/battlesim/internal/model"
)

// Team score thresholds.
const (
	strongStatTotal   = 500
	fastSpeed         = 90
	typeVarietyMin    = 5
	moveVarietyMin    = 8
	wideCoverageMin   = 10
	narrowCoverageMin = 6
)

// ScoreTeam rates a roster: strong and fast members, type and move variety,
// and how many defending types the team hits super-effectively.
func ScoreTeam(cat *data.Catalog, team []model.Combatant) int {
	score := 0
	types := make(map[string]bool)
	moves := make(map[string]bool)
	coverage := make(map[string]bool)

	for i := range team {
		mon := &team[i]
		if mon.Stats.Total() >= strongStatTotal {
			score++
		}
		if mon.Stats.Spe > fastSpeed {
			score++
		}
		for _, t := range mon.Types {
			types[t] = true
		}
		for _, name := range mon.Moves {
			moves[data.Normalize(name)] = true

			mv := cat.Move(name)
			if mv.Type == "" {
				continue
			}
			for _, def := range cat.Types() {
				if cat.Effectiveness(mv.Type, def) == 2.0 {
					coverage[def] = true
				}
			}
		}
	}

	if len(types) >= typeVarietyMin {
		score++
	}
	if len(moves) >= moveVarietyMin {
		score++
	}
	switch {
	case len(coverage) >= wideCoverageMin:
		score += 2
	case len(coverage) >= narrowCoverageMin:
		score++
	}
	return score
}
