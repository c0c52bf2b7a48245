package data

import "github.com/udisondev/battlesim/internal/model"

// Category selects the attack/defense stat pair of a move.
type Category string

const (
	CategoryNone     Category = ""
	CategoryPhysical Category = "Physical"
	CategorySpecial  Category = "Special"
	CategoryStatus   Category = "Status"
)

// Effect tags the primary or secondary behavior of a move.
type Effect string

const (
	EffectNone       Effect = ""
	EffectAtkUp      Effect = "atk_up"
	EffectSpaSpdUp   Effect = "spa_spd_up"
	EffectAtkDefUp   Effect = "atk_def_up"
	EffectAtkSpeUp   Effect = "atk_spe_up"
	EffectHeal       Effect = "heal"
	EffectToxic      Effect = "toxic"
	EffectParalyze   Effect = "paralyze"
	EffectSleep      Effect = "sleep"
	EffectBurn       Effect = "burn"
	EffectConfuse    Effect = "confuse"
	EffectInfatuate  Effect = "infatuate"
	EffectRain       Effect = "rain"
	EffectSun        Effect = "sun"
	EffectProtect    Effect = "protect"
	EffectSubstitute Effect = "substitute"
	EffectFlinch     Effect = "flinch"
	EffectFakeOut    Effect = "first_turn_flinch"
)

// IsSetup reports whether the effect raises the user's stats.
func (e Effect) IsSetup() bool {
	switch e {
	case EffectAtkUp, EffectSpaSpdUp, EffectAtkDefUp, EffectAtkSpeUp:
		return true
	}
	return false
}

// PrimaryStatus returns the status a move inflicts unconditionally on hit.
func (e Effect) PrimaryStatus() model.Status {
	switch e {
	case EffectParalyze:
		return model.StatusParalyzed
	case EffectBurn:
		return model.StatusBurned
	case EffectToxic:
		return model.StatusPoisoned
	case EffectSleep:
		return model.StatusAsleep
	case EffectConfuse:
		return model.StatusConfused
	case EffectInfatuate:
		return model.StatusInfatuated
	}
	return model.StatusNone
}

// Weather returns the weather the effect sets, if any.
func (e Effect) Weather() model.Weather {
	switch e {
	case EffectRain:
		return model.WeatherRain
	case EffectSun:
		return model.WeatherSun
	}
	return model.WeatherNone
}

// StageBoosts returns the stat stages the effect grants its user.
func (e Effect) StageBoosts() []model.StatName {
	switch e {
	case EffectAtkUp:
		return []model.StatName{model.StatAtk, model.StatAtk}
	case EffectSpaSpdUp:
		return []model.StatName{model.StatSpA, model.StatSpD}
	case EffectAtkDefUp:
		return []model.StatName{model.StatAtk, model.StatDef}
	case EffectAtkSpeUp:
		return []model.StatName{model.StatAtk, model.StatSpe}
	}
	return nil
}

// Move is the static metadata of one move.
type Move struct {
	Name     string
	Type     string
	Category Category
	Power    int
	Accuracy int // percent
	Effect   Effect

	// Secondary status roll of damaging moves.
	Status       model.Status
	StatusChance int // percent

	FlinchChance int // percent, EffectFlinch only
}

// IsDamaging reports whether the move reaches the damage phase.
func (m Move) IsDamaging() bool {
	return m.Category != CategoryStatus && m.Category != CategoryNone && m.Power > 0
}

// IsContact approximates contact: physical damaging moves make contact.
func (m Move) IsContact() bool {
	return m.Category == CategoryPhysical && m.Power > 0
}

// moveDefs: встроенный каталог приёмов.
var moveDefs = []Move{
	// Normal
	{Name: "Tackle", Type: "Normal", Category: CategoryPhysical, Power: 40, Accuracy: 100},
	{Name: "Body Slam", Type: "Normal", Category: CategoryPhysical, Power: 85, Accuracy: 100, Status: model.StatusParalyzed, StatusChance: 30},
	{Name: "Return", Type: "Normal", Category: CategoryPhysical, Power: 102, Accuracy: 100},
	{Name: "Double-Edge", Type: "Normal", Category: CategoryPhysical, Power: 120, Accuracy: 100},
	{Name: "Headbutt", Type: "Normal", Category: CategoryPhysical, Power: 70, Accuracy: 100, Effect: EffectFlinch, FlinchChance: 30},
	{Name: "Fake Out", Type: "Normal", Category: CategoryPhysical, Power: 40, Accuracy: 100, Effect: EffectFakeOut},
	{Name: "Hyper Voice", Type: "Normal", Category: CategorySpecial, Power: 90, Accuracy: 100},
	{Name: "Swords Dance", Type: "Normal", Category: CategoryStatus, Accuracy: 100, Effect: EffectAtkUp},
	{Name: "Recover", Type: "Normal", Category: CategoryStatus, Accuracy: 100, Effect: EffectHeal},
	{Name: "Soft-Boiled", Type: "Normal", Category: CategoryStatus, Accuracy: 100, Effect: EffectHeal},
	{Name: "Milk Drink", Type: "Normal", Category: CategoryStatus, Accuracy: 100, Effect: EffectHeal},
	{Name: "Protect", Type: "Normal", Category: CategoryStatus, Accuracy: 100, Effect: EffectProtect},
	{Name: "Substitute", Type: "Normal", Category: CategoryStatus, Accuracy: 100, Effect: EffectSubstitute},
	{Name: "Attract", Type: "Normal", Category: CategoryStatus, Accuracy: 100, Effect: EffectInfatuate},

	// Fire
	{Name: "Ember", Type: "Fire", Category: CategorySpecial, Power: 40, Accuracy: 100, Status: model.StatusBurned, StatusChance: 10},
	{Name: "Flamethrower", Type: "Fire", Category: CategorySpecial, Power: 95, Accuracy: 100, Status: model.StatusBurned, StatusChance: 10},
	{Name: "Fire Blast", Type: "Fire", Category: CategorySpecial, Power: 120, Accuracy: 85, Status: model.StatusBurned, StatusChance: 10},
	{Name: "Heat Wave", Type: "Fire", Category: CategorySpecial, Power: 100, Accuracy: 90, Status: model.StatusBurned, StatusChance: 10},
	{Name: "Fire Punch", Type: "Fire", Category: CategoryPhysical, Power: 75, Accuracy: 100, Status: model.StatusBurned, StatusChance: 10},
	{Name: "Will-O-Wisp", Type: "Fire", Category: CategoryStatus, Accuracy: 75, Effect: EffectBurn},
	{Name: "Sunny Day", Type: "Fire", Category: CategoryStatus, Accuracy: 100, Effect: EffectSun},

	// Water
	{Name: "Surf", Type: "Water", Category: CategorySpecial, Power: 95, Accuracy: 100},
	{Name: "Hydro Pump", Type: "Water", Category: CategorySpecial, Power: 120, Accuracy: 80},
	{Name: "Water Pulse", Type: "Water", Category: CategorySpecial, Power: 60, Accuracy: 100, Status: model.StatusConfused, StatusChance: 20},
	{Name: "Waterfall", Type: "Water", Category: CategoryPhysical, Power: 80, Accuracy: 100, Effect: EffectFlinch, FlinchChance: 20},
	{Name: "Rain Dance", Type: "Water", Category: CategoryStatus, Accuracy: 100, Effect: EffectRain},

	// Electric
	{Name: "Thunderbolt", Type: "Electric", Category: CategorySpecial, Power: 95, Accuracy: 100, Status: model.StatusParalyzed, StatusChance: 10},
	{Name: "Thunder", Type: "Electric", Category: CategorySpecial, Power: 120, Accuracy: 70, Status: model.StatusParalyzed, StatusChance: 30},
	{Name: "Thunder Punch", Type: "Electric", Category: CategoryPhysical, Power: 75, Accuracy: 100, Status: model.StatusParalyzed, StatusChance: 10},
	{Name: "Spark", Type: "Electric", Category: CategoryPhysical, Power: 65, Accuracy: 100, Status: model.StatusParalyzed, StatusChance: 30},
	{Name: "Thunder Wave", Type: "Electric", Category: CategoryStatus, Accuracy: 100, Effect: EffectParalyze},

	// Grass
	{Name: "Razor Leaf", Type: "Grass", Category: CategoryPhysical, Power: 55, Accuracy: 95},
	{Name: "Leaf Blade", Type: "Grass", Category: CategoryPhysical, Power: 90, Accuracy: 100},
	{Name: "Giga Drain", Type: "Grass", Category: CategorySpecial, Power: 60, Accuracy: 100},
	{Name: "Solar Beam", Type: "Grass", Category: CategorySpecial, Power: 120, Accuracy: 100},
	{Name: "Sleep Powder", Type: "Grass", Category: CategoryStatus, Accuracy: 75, Effect: EffectSleep},
	{Name: "Spore", Type: "Grass", Category: CategoryStatus, Accuracy: 100, Effect: EffectSleep},

	// Ice
	{Name: "Ice Beam", Type: "Ice", Category: CategorySpecial, Power: 95, Accuracy: 100},
	{Name: "Blizzard", Type: "Ice", Category: CategorySpecial, Power: 120, Accuracy: 70},
	{Name: "Ice Punch", Type: "Ice", Category: CategoryPhysical, Power: 75, Accuracy: 100},

	// Fighting
	{Name: "Brick Break", Type: "Fighting", Category: CategoryPhysical, Power: 75, Accuracy: 100},
	{Name: "Cross Chop", Type: "Fighting", Category: CategoryPhysical, Power: 100, Accuracy: 80},
	{Name: "Sky Uppercut", Type: "Fighting", Category: CategoryPhysical, Power: 85, Accuracy: 90},
	{Name: "Focus Punch", Type: "Fighting", Category: CategoryPhysical, Power: 150, Accuracy: 100},
	{Name: "Bulk Up", Type: "Fighting", Category: CategoryStatus, Accuracy: 100, Effect: EffectAtkDefUp},

	// Poison
	{Name: "Sludge Bomb", Type: "Poison", Category: CategorySpecial, Power: 90, Accuracy: 100, Status: model.StatusPoisoned, StatusChance: 30},
	{Name: "Poison Jab", Type: "Poison", Category: CategoryPhysical, Power: 80, Accuracy: 100, Status: model.StatusPoisoned, StatusChance: 30},
	{Name: "Toxic", Type: "Poison", Category: CategoryStatus, Accuracy: 85, Effect: EffectToxic},

	// Ground
	{Name: "Earthquake", Type: "Ground", Category: CategoryPhysical, Power: 100, Accuracy: 100},
	{Name: "Dig", Type: "Ground", Category: CategoryPhysical, Power: 80, Accuracy: 100},
	{Name: "Mud-Slap", Type: "Ground", Category: CategorySpecial, Power: 20, Accuracy: 100},

	// Flying
	{Name: "Wing Attack", Type: "Flying", Category: CategoryPhysical, Power: 60, Accuracy: 100},
	{Name: "Aerial Ace", Type: "Flying", Category: CategoryPhysical, Power: 60, Accuracy: 100},
	{Name: "Drill Peck", Type: "Flying", Category: CategoryPhysical, Power: 80, Accuracy: 100},
	{Name: "Fly", Type: "Flying", Category: CategoryPhysical, Power: 90, Accuracy: 95},

	// Psychic
	{Name: "Psychic", Type: "Psychic", Category: CategorySpecial, Power: 90, Accuracy: 100},
	{Name: "Psybeam", Type: "Psychic", Category: CategorySpecial, Power: 65, Accuracy: 100, Status: model.StatusConfused, StatusChance: 10},
	{Name: "Extrasensory", Type: "Psychic", Category: CategorySpecial, Power: 80, Accuracy: 100, Effect: EffectFlinch, FlinchChance: 10},
	{Name: "Hypnosis", Type: "Psychic", Category: CategoryStatus, Accuracy: 60, Effect: EffectSleep},
	{Name: "Calm Mind", Type: "Psychic", Category: CategoryStatus, Accuracy: 100, Effect: EffectSpaSpdUp},

	// Bug
	{Name: "Megahorn", Type: "Bug", Category: CategoryPhysical, Power: 120, Accuracy: 85},
	{Name: "Signal Beam", Type: "Bug", Category: CategorySpecial, Power: 75, Accuracy: 100, Status: model.StatusConfused, StatusChance: 10},
	{Name: "Silver Wind", Type: "Bug", Category: CategorySpecial, Power: 60, Accuracy: 100},

	// Rock
	{Name: "Rock Slide", Type: "Rock", Category: CategoryPhysical, Power: 75, Accuracy: 90, Effect: EffectFlinch, FlinchChance: 30},
	{Name: "Rock Tomb", Type: "Rock", Category: CategoryPhysical, Power: 50, Accuracy: 80},

	// Ghost
	{Name: "Shadow Ball", Type: "Ghost", Category: CategorySpecial, Power: 80, Accuracy: 100},
	{Name: "Lick", Type: "Ghost", Category: CategoryPhysical, Power: 20, Accuracy: 100, Status: model.StatusParalyzed, StatusChance: 30},
	{Name: "Confuse Ray", Type: "Ghost", Category: CategoryStatus, Accuracy: 100, Effect: EffectConfuse},

	// Dragon
	{Name: "Dragon Claw", Type: "Dragon", Category: CategoryPhysical, Power: 80, Accuracy: 100},
	{Name: "Outrage", Type: "Dragon", Category: CategoryPhysical, Power: 120, Accuracy: 100},
	{Name: "Dragonbreath", Type: "Dragon", Category: CategorySpecial, Power: 60, Accuracy: 100, Status: model.StatusParalyzed, StatusChance: 30},
	{Name: "Dragon Dance", Type: "Dragon", Category: CategoryStatus, Accuracy: 100, Effect: EffectAtkSpeUp},

	// Dark
	{Name: "Bite", Type: "Dark", Category: CategoryPhysical, Power: 60, Accuracy: 100, Effect: EffectFlinch, FlinchChance: 30},
	{Name: "Crunch", Type: "Dark", Category: CategoryPhysical, Power: 80, Accuracy: 100},
	{Name: "Faint Attack", Type: "Dark", Category: CategoryPhysical, Power: 60, Accuracy: 100},

	// Steel
	{Name: "Iron Tail", Type: "Steel", Category: CategoryPhysical, Power: 100, Accuracy: 75},
	{Name: "Meteor Mash", Type: "Steel", Category: CategoryPhysical, Power: 100, Accuracy: 85},
	{Name: "Steel Wing", Type: "Steel", Category: CategoryPhysical, Power: 70, Accuracy: 90},
}
