package ai

import (
	"github.com/udisondev/battlesim/internal/data"
	"github.com/udisondev/battlesim/internal/model"
)

// Score weights of the move heuristic.
const (
	scoreSTAB          = 2
	scoreSuperEffect   = 3 // per defending type
	scoreDesperate     = 7
	scoreAfflicted     = -5
	scoreSetupEarly    = 3
	scoreSetupLate     = -1
	scoreHealLow       = 3
	scoreHealHigh      = -2
	scoreCrippleEarly  = 2
	scoreSleepEarly    = 3
	scoreVolatile      = 2
	scoreWeatherMatch  = 2
	scoreProtect       = 2
	scoreSubstituteFit = 2
)

// StatusLookup returns the status record of a combatant.
type StatusLookup func(c *model.Combatant) model.StatusRecord

// ChooseMove picks the best of moves for attacker against defender.
// Moves whose type has no effect on any defending type are skipped. The
// strictly highest score wins; ties keep the earlier move in the list.
// Returns false if every move was skipped.
func ChooseMove(cat *data.Catalog, attacker, defender *model.Combatant, moves []string, turn int, hpRatio float64, statusOf StatusLookup) (string, bool) {
	var (
		best      string
		bestScore int
		found     bool
	)
	for _, name := range moves {
		mv := cat.Move(name)
		if immuneAny(cat, mv.Type, defender.Types) {
			continue
		}

		score := ScoreMove(cat, mv, attacker, defender, turn, hpRatio, statusOf)
		if !found || score > bestScore {
			best, bestScore, found = name, score, true
		}
	}
	return best, found
}

// ScoreMove returns the heuristic score of one move.
func ScoreMove(cat *data.Catalog, mv data.Move, attacker, defender *model.Combatant, turn int, hpRatio float64, statusOf StatusLookup) int {
	score := 0
	if mv.Type != "" && attacker.HasType(mv.Type) {
		score += scoreSTAB
	}
	for _, def := range defender.Types {
		if cat.Effectiveness(mv.Type, def) == 2.0 {
			score += scoreSuperEffect
		}
	}

	var target model.StatusRecord
	if statusOf != nil {
		target = statusOf(defender)
	}
	return score + situational(mv, attacker, turn, hpRatio, target)
}

func situational(mv data.Move, attacker *model.Combatant, turn int, hpRatio float64, target model.StatusRecord) int {
	score := 0

	// Отчаянный ход: при низком HP ставка на confuse/infatuate.
	if hpRatio < 0.3 && (mv.Effect == data.EffectInfatuate || mv.Effect == data.EffectConfuse) {
		if afflicted(mv.Effect, target) {
			score += scoreAfflicted
		} else {
			score += scoreDesperate
		}
	}

	switch {
	case mv.Effect.IsSetup():
		if turn <= 2 && hpRatio > 0.7 {
			score += scoreSetupEarly
		} else {
			score += scoreSetupLate
		}
	case mv.Effect == data.EffectHeal:
		if hpRatio < 0.4 {
			score += scoreHealLow
		} else {
			score += scoreHealHigh
		}
	case mv.Effect == data.EffectToxic, mv.Effect == data.EffectParalyze:
		if turn <= 3 {
			score += scoreCrippleEarly
		}
	case mv.Effect == data.EffectSleep:
		if turn <= 3 {
			score += scoreSleepEarly
		}
	case mv.Effect == data.EffectInfatuate, mv.Effect == data.EffectConfuse:
		if afflicted(mv.Effect, target) {
			score += scoreAfflicted
		} else {
			score += scoreVolatile
		}
	case mv.Effect == data.EffectRain:
		if attacker.HasType("Water") {
			score += scoreWeatherMatch
		}
	case mv.Effect == data.EffectSun:
		if attacker.HasType("Fire") {
			score += scoreWeatherMatch
		}
	case mv.Effect == data.EffectProtect:
		score += scoreProtect
	case mv.Effect == data.EffectSubstitute:
		if hpRatio > 0.5 {
			score += scoreSubstituteFit
		}
	}
	return score
}

func afflicted(e data.Effect, target model.StatusRecord) bool {
	if e == data.EffectInfatuate {
		return target.Infatuated
	}
	return target.Confused
}

// immuneAny reports whether the move type does nothing to any defending type.
func immuneAny(cat *data.Catalog, moveType string, defTypes []string) bool {
	for _, def := range defTypes {
		if cat.Effectiveness(moveType, def) == 0 {
			return true
		}
	}
	return false
}
