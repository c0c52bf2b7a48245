package battle

import (
	"math"

	"github.com/udisondev/battlesim/internal/model"
)

// Damage constants. Every battle is fought at level 50.
const (
	battleLevel    = 50
	baseCritChance = 0.0625
	critPower      = 2.0
	spreadMin      = 0.85
	spreadRange    = 0.15
	weatherBoost   = 1.5
	weatherPenalty = 0.5
)

// DamageInput is everything the damage roll needs, already resolved from
// the combatants, their abilities and items.
type DamageInput struct {
	Power         int
	Attack        float64
	Defense       float64
	Effectiveness float64
	MoveType      string
	Weather       model.Weather

	TypeBoost  float64 // held-item type boost, 0 means none
	CritScale  float64 // crit chance multiplier, 0 means none
	LowHPBoost float64 // ability boost at low HP, 0 means none
}

// DamageResult is the outcome of one damage roll.
type DamageResult struct {
	Damage int
	Crit   bool
	Power  float64
}

// BaseDamage applies the level-50 damage formula:
// floor((((2*50/5+2) * power * atk/def)/50 + 2) * effectiveness * spread).
func BaseDamage(power, atk, def, effectiveness, spread float64) int {
	if def < 1 {
		def = 1
	}
	levelFactor := float64(2*battleLevel/5 + 2)
	raw := (levelFactor*power*atk/def)/50 + 2
	return int(math.Floor(raw * effectiveness * spread))
}

// WeatherModifier returns the power multiplier of a move type under weather.
func WeatherModifier(moveType string, w model.Weather) float64 {
	switch {
	case w == model.WeatherRain && moveType == "Water":
		return weatherBoost
	case w == model.WeatherRain && moveType == "Fire":
		return weatherPenalty
	case w == model.WeatherSun && moveType == "Fire":
		return weatherBoost
	case w == model.WeatherSun && moveType == "Water":
		return weatherPenalty
	}
	return 1.0
}

// CalcDamage rolls crit and spread and returns the damage dealt.
// Modifiers apply in order: item type boost, weather, crit, low-HP boost.
func CalcDamage(in DamageInput, rng RNG) DamageResult {
	power := float64(in.Power)
	if in.TypeBoost > 0 {
		power *= in.TypeBoost
	}
	power *= WeatherModifier(in.MoveType, in.Weather)

	critChance := baseCritChance
	if in.CritScale > 0 {
		critChance *= in.CritScale
	}
	crit := chance(rng, critChance)
	if crit {
		power *= critPower
	}

	if in.LowHPBoost > 0 {
		power *= in.LowHPBoost
	}

	spread := spreadMin + rng.Float64()*spreadRange
	dmg := BaseDamage(power, in.Attack, in.Defense, in.Effectiveness, spread)
	if dmg < 0 {
		dmg = 0
	}
	return DamageResult{Damage: dmg, Crit: crit, Power: power}
}
