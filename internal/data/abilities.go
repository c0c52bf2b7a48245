package data

import "github.com/udisondev/battlesim/internal/model"

// AbilityKind selects how an ability's payload is applied.
type AbilityKind int

const (
	AbilityInert AbilityKind = iota
	AbilityLowerStat
	AbilitySetWeather
	AbilityWeatherSpeed
	AbilityStatusAttack
	AbilityTypeBoostLowHP
	AbilityContactStatus
	AbilityTypeImmunity
	AbilityAbsorbType
	AbilityShedSkin
	AbilityWeatherHeal
	AbilityPreventStatus
	AbilityPressure
	AbilityInnerFocus
)

// Ability is a typed ability effect. Only the fields its Kind uses are set.
type Ability struct {
	Name    string
	Trigger Trigger
	Kind    AbilityKind

	Type       string
	Stat       model.StatName
	Status     model.Status
	Weather    model.Weather
	Chance     float64 // 0..1
	Multiplier float64
	Threshold  float64 // HP ratio
	Value      int     // flat HP
}

// Is reports whether the ability fires at the trigger point.
func (a Ability) Is(t Trigger) bool {
	return a.Kind != AbilityInert && a.Trigger == t
}

var abilityDefs = []Ability{
	{Name: "Intimidate", Trigger: TriggerEntry, Kind: AbilityLowerStat, Stat: model.StatAtk, Multiplier: 0.67},
	{Name: "Drizzle", Trigger: TriggerEntry, Kind: AbilitySetWeather, Weather: model.WeatherRain},
	{Name: "Drought", Trigger: TriggerEntry, Kind: AbilitySetWeather, Weather: model.WeatherSun},

	{Name: "Swift Swim", Trigger: TriggerSpeed, Kind: AbilityWeatherSpeed, Weather: model.WeatherRain, Multiplier: 2},
	{Name: "Chlorophyll", Trigger: TriggerSpeed, Kind: AbilityWeatherSpeed, Weather: model.WeatherSun, Multiplier: 2},

	{Name: "Guts", Trigger: TriggerAttack, Kind: AbilityStatusAttack, Multiplier: 1.5},

	{Name: "Blaze", Trigger: TriggerLowHPBoost, Kind: AbilityTypeBoostLowHP, Type: "Fire", Multiplier: 1.5, Threshold: 0.333},
	{Name: "Torrent", Trigger: TriggerLowHPBoost, Kind: AbilityTypeBoostLowHP, Type: "Water", Multiplier: 1.5, Threshold: 0.333},
	{Name: "Overgrow", Trigger: TriggerLowHPBoost, Kind: AbilityTypeBoostLowHP, Type: "Grass", Multiplier: 1.5, Threshold: 0.333},
	{Name: "Swarm", Trigger: TriggerLowHPBoost, Kind: AbilityTypeBoostLowHP, Type: "Bug", Multiplier: 1.5, Threshold: 0.333},

	{Name: "Static", Trigger: TriggerContact, Kind: AbilityContactStatus, Status: model.StatusParalyzed, Chance: 0.3},
	{Name: "Flame Body", Trigger: TriggerContact, Kind: AbilityContactStatus, Status: model.StatusBurned, Chance: 0.3},
	{Name: "Cute Charm", Trigger: TriggerContact, Kind: AbilityContactStatus, Status: model.StatusInfatuated, Chance: 0.3},
	{Name: "Poison Point", Trigger: TriggerContact, Kind: AbilityContactStatus, Status: model.StatusPoisoned, Chance: 0.3},

	{Name: "Levitate", Trigger: TriggerImmunity, Kind: AbilityTypeImmunity, Type: "Ground"},
	{Name: "Flash Fire", Trigger: TriggerImmunity, Kind: AbilityTypeImmunity, Type: "Fire"},

	{Name: "Volt Absorb", Trigger: TriggerHealOnHit, Kind: AbilityAbsorbType, Type: "Electric", Multiplier: 0.25},
	{Name: "Water Absorb", Trigger: TriggerHealOnHit, Kind: AbilityAbsorbType, Type: "Water", Multiplier: 0.25},

	{Name: "Shed Skin", Trigger: TriggerEndTurn, Kind: AbilityShedSkin, Chance: 1.0 / 3.0},
	{Name: "Rain Dish", Trigger: TriggerEndTurn, Kind: AbilityWeatherHeal, Weather: model.WeatherRain, Value: 6},

	{Name: "Limber", Trigger: TriggerStatusGuard, Kind: AbilityPreventStatus, Status: model.StatusParalyzed},
	{Name: "Insomnia", Trigger: TriggerStatusGuard, Kind: AbilityPreventStatus, Status: model.StatusAsleep},
	{Name: "Vital Spirit", Trigger: TriggerStatusGuard, Kind: AbilityPreventStatus, Status: model.StatusAsleep},
	{Name: "Immunity", Trigger: TriggerStatusGuard, Kind: AbilityPreventStatus, Status: model.StatusPoisoned},
	{Name: "Water Veil", Trigger: TriggerStatusGuard, Kind: AbilityPreventStatus, Status: model.StatusBurned},
	{Name: "Own Tempo", Trigger: TriggerStatusGuard, Kind: AbilityPreventStatus, Status: model.StatusConfused},
	{Name: "Oblivious", Trigger: TriggerStatusGuard, Kind: AbilityPreventStatus, Status: model.StatusInfatuated},

	{Name: "Pressure", Trigger: TriggerPPDrain, Kind: AbilityPressure},
	{Name: "Inner Focus", Trigger: TriggerFlinchGuard, Kind: AbilityInnerFocus},
}
