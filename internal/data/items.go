package data

import "github.com/udisondev/battlesim/internal/model"

// ItemKind selects how an item's payload is applied.
type ItemKind int

const (
	ItemInert ItemKind = iota
	ItemEvasion
	ItemTypeBoost
	ItemCritBoost
	ItemCureStatus
	ItemCureAll
	ItemSurvive
	ItemFlinch
	ItemHealPercent
	ItemHealFlat
	ItemStatBoost
	ItemLifesteal
	ItemCureStatDrops
)

// Item is a typed held-item effect. Only the fields its Kind uses are set.
type Item struct {
	Name    string
	Trigger Trigger
	Kind    ItemKind

	Type       string
	Stat       model.StatName
	Status     model.Status
	Stages     int
	Value      float64 // flat HP or percent of max HP
	Multiplier float64
	Chance     float64 // 0..1
	Threshold  float64 // HP ratio
}

// Is reports whether the item fires at the trigger point.
func (it Item) Is(t Trigger) bool {
	return it.Kind != ItemInert && it.Trigger == t
}

// OneShot reports whether the item is consumed after it fires.
func (it Item) OneShot() bool {
	switch it.Kind {
	case ItemCureStatus, ItemCureAll, ItemHealFlat, ItemStatBoost, ItemCureStatDrops:
		return true
	}
	return false
}

func typeBoost(name, typ string) Item {
	return Item{Name: name, Trigger: TriggerOnMove, Kind: ItemTypeBoost, Type: typ, Multiplier: 1.1}
}

func cureStatus(name string, s model.Status) Item {
	return Item{Name: name, Trigger: TriggerStatus, Kind: ItemCureStatus, Status: s}
}

var itemDefs = []Item{
	{Name: "Brightpowder", Trigger: TriggerOnHit, Kind: ItemEvasion, Multiplier: 0.9},
	{Name: "King's Rock", Trigger: TriggerOnHit, Kind: ItemFlinch, Chance: 0.1},
	{Name: "Scope Lens", Trigger: TriggerOnMove, Kind: ItemCritBoost, Multiplier: 1.5},
	{Name: "Focus Band", Trigger: TriggerFatalHit, Kind: ItemSurvive, Chance: 0.1},
	{Name: "Leftovers", Trigger: TriggerEndTurn, Kind: ItemHealPercent, Value: 6.25},
	{Name: "Shell Bell", Trigger: TriggerDamageDealt, Kind: ItemLifesteal, Multiplier: 0.125},
	{Name: "Sitrus Berry", Trigger: TriggerLowHP, Kind: ItemHealFlat, Value: 30, Threshold: 0.5},
	{Name: "Liechi Berry", Trigger: TriggerLowHP, Kind: ItemStatBoost, Stat: model.StatAtk, Stages: 1, Threshold: 0.25},
	{Name: "Lum Berry", Trigger: TriggerStatus, Kind: ItemCureAll},
	{Name: "White Herb", Trigger: TriggerStatDrop, Kind: ItemCureStatDrops},

	cureStatus("Cheri Berry", model.StatusParalyzed),
	cureStatus("Chesto Berry", model.StatusAsleep),
	cureStatus("Pecha Berry", model.StatusPoisoned),
	cureStatus("Persim Berry", model.StatusConfused),
	cureStatus("Mental Herb", model.StatusInfatuated),

	typeBoost("Charcoal", "Fire"),
	typeBoost("Dragon Fang", "Dragon"),
	typeBoost("Hard Stone", "Rock"),
	typeBoost("Metal Coat", "Steel"),
	typeBoost("Mystic Water", "Water"),
	typeBoost("Nevermeltice", "Ice"),
	typeBoost("Poison Barb", "Poison"),
	typeBoost("Sharp Beak", "Flying"),
	typeBoost("Silk Scarf", "Normal"),
	typeBoost("Silverpowder", "Bug"),
	typeBoost("Soft Sand", "Ground"),
	typeBoost("Spell Tag", "Ghost"),
	typeBoost("Twistedspoon", "Psychic"),
}
