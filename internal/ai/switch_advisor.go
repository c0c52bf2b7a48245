package ai

import (
	"github.com/udisondev/battlesim/internal/data"
	"github.com/udisondev/battlesim/internal/model"
)

// BenchEntry is a bench combatant and its current HP.
type BenchEntry struct {
	Combatant *model.Combatant
	HP        int
}

// SwitchInput is the matchup the switch heuristic looks at.
// Speeds are already weather- and ability-adjusted.
type SwitchInput struct {
	Current       *model.Combatant
	CurrentHP     int
	CurrentSpeed  int
	Opponent      *model.Combatant
	OpponentSpeed int
	Bench         []BenchEntry // roster order
}

// ShouldSwitch returns the bench index to switch to, or false to stay in.
//
// A faster combatant never switches. Threat is the summed power of opponent
// moves super-effective against any of the current combatant's types; a
// threat at least as large as the remaining HP keeps it in. Otherwise the first living bench entry that resists any opponent move wins.
func ShouldSwitch(cat *data.Catalog, in SwitchInput) (int, bool) {
	if in.Current == nil || in.Opponent == nil {
		return 0, false
	}
	if in.CurrentSpeed > in.OpponentSpeed {
		return 0, false
	}

	threat := IncomingThreat(cat, in.Opponent, in.Current)
	if threat >= in.CurrentHP {
		return 0, false
	}

	for i, entry := range in.Bench {
		if entry.HP <= 0 || entry.Combatant == nil {
			continue
		}
		if resistsAny(cat, entry.Combatant, in.Opponent) {
			return i, true
		}
	}
	return 0, false
}

// IncomingThreat sums the power of attacker moves that are super-effective
// against any of the target's types.
func IncomingThreat(cat *data.Catalog, attacker, target *model.Combatant) int {
	threat := 0
	for _, name := range attacker.Moves {
		mv := cat.Move(name)
		if mv.Type == "" {
			continue
		}
		for _, def := range target.Types {
			if cat.Effectiveness(mv.Type, def) > 1.0 {
				threat += mv.Power
				break
			}
		}
	}
	return threat
}

func resistsAny(cat *data.Catalog, candidate, opponent *model.Combatant) bool {
	for _, name := range opponent.Moves {
		mv := cat.Move(name)
		if mv.Type == "" {
			continue
		}
		if cat.Combined(mv.Type, candidate.Types) < 1.0 {
			return true
		}
	}
	return false
}
