package battle

import (
	"github.com/udisondev/battlesim/internal/data"
	"github.com/udisondev/battlesim/internal/model"
)

const (
	entryStatFactor = 0.67
	maxSleepTurns   = 3
)

func (b *Battle) abilityOf(f *fighter) data.Ability {
	return b.cat.Ability(f.c.Ability)
}

// itemOf returns the held item, or an inert item once a one-shot item is used.
func (b *Battle) itemOf(f *fighter) data.Item {
	it := b.cat.Item(f.c.Item)
	if it.OneShot() && f.itemUsed {
		return data.Item{Name: it.Name}
	}
	return it
}

func (b *Battle) consume(f *fighter, it data.Item) {
	if it.OneShot() {
		f.itemUsed = true
	}
	b.emit(f, EventItem, 0, it.Name)
}

// fireEntry runs entry abilities once per stint.
func (b *Battle) fireEntry(f *fighter) {
	if f == nil || !f.entryPending || !f.alive() {
		return
	}
	f.entryPending = false

	ab := b.abilityOf(f)
	if !ab.Is(data.TriggerEntry) {
		return
	}
	switch ab.Kind {
	case data.AbilityLowerStat:
		opp := b.active[f.side.Opponent()]
		if opp == nil || !opp.alive() {
			return
		}
		before := opp.stats.Get(ab.Stat)
		factor := ab.Multiplier
		if factor <= 0 {
			factor = entryStatFactor
		}
		after := max(1, int(float64(before)*factor))
		opp.stats.Set(ab.Stat, after)
		opp.lowered[ab.Stat] = true
		b.emit(opp, EventStatDrop, before-after, ab.Name+": "+string(ab.Stat))
		b.restoreDrops(opp)
	case data.AbilitySetWeather:
		b.setWeather(f, ab.Weather)
	}
}

// restoreDrops lets a stat-drop item undo entry drops and negative stages.
func (b *Battle) restoreDrops(f *fighter) {
	it := b.itemOf(f)
	if !it.Is(data.TriggerStatDrop) || it.Kind != data.ItemCureStatDrops {
		return
	}
	for stat := range f.lowered {
		f.stats.Set(stat, f.c.Stats.Get(stat))
	}
	clear(f.lowered)
	for stat, s := range f.stages {
		if s < 0 {
			f.stages[stat] = 0
		}
	}
	b.consume(f, it)
}

func (b *Battle) setWeather(src *fighter, w model.Weather) {
	if w == model.WeatherNone {
		return
	}
	b.weather.Set(w, b.opts.WeatherTurns)
	b.emit(src, EventWeather, b.weather.TurnsLeft, w.String())
}

// inflict applies a status to target unless it already has it or its ability
// guards against it. Reactive items fire on success.
func (b *Battle) inflict(target *fighter, st model.Status, toxic bool) bool {
	if st == model.StatusNone || !target.alive() || target.status.Has(st) {
		return false
	}
	if ab := b.abilityOf(target); ab.Is(data.TriggerStatusGuard) && ab.Status == st {
		b.emit(target, EventStatusGuard, 0, ab.Name+": "+st.String())
		return false
	}

	switch {
	case st == model.StatusPoisoned && toxic:
		target.status.BadlyPoison()
	case st == model.StatusAsleep:
		target.status.Sleep(b.rng.IntN(maxSleepTurns) + 1)
	default:
		target.status.Inflict(st)
	}
	detail := st.String()
	if toxic {
		detail = "badly " + detail
	}
	b.emit(target, EventStatus, 0, detail)
	b.reactToStatus(target, st)
	return true
}

// reactToStatus fires status-cure items.
func (b *Battle) reactToStatus(f *fighter, st model.Status) {
	it := b.itemOf(f)
	if !it.Is(data.TriggerStatus) {
		return
	}
	switch it.Kind {
	case data.ItemCureStatus:
		if it.Status != st {
			return
		}
		f.status.Cure(st)
	case data.ItemCureAll:
		f.status.CureAll()
	default:
		return
	}
	b.consume(f, it)
	b.emit(f, EventCure, 0, st.String())
}

// lowHPItem fires berries that trigger below an HP threshold.
func (b *Battle) lowHPItem(f *fighter) {
	it := b.itemOf(f)
	if !it.Is(data.TriggerLowHP) || !f.alive() {
		return
	}
	if float64(f.hp) > it.Threshold*MaxHP {
		return
	}
	switch it.Kind {
	case data.ItemHealFlat:
		b.consume(f, it)
		b.emit(f, EventHeal, f.heal(int(it.Value)), it.Name)
	case data.ItemStatBoost:
		b.consume(f, it)
		b.emit(f, EventBoost, f.raiseStage(it.Stat, it.Stages), string(it.Stat))
	}
}

// endOfTurn runs leftovers-style items and end-of-turn abilities.
func (b *Battle) endOfTurn(f *fighter) {
	if f == nil || !f.alive() {
		return
	}
	if it := b.itemOf(f); it.Is(data.TriggerEndTurn) && it.Kind == data.ItemHealPercent {
		if healed := f.heal(int(MaxHP * it.Value / 100)); healed > 0 {
			b.emit(f, EventHeal, healed, it.Name)
		}
	}

	ab := b.abilityOf(f)
	if !ab.Is(data.TriggerEndTurn) {
		return
	}
	switch ab.Kind {
	case data.AbilityShedSkin:
		if f.status.HasPersistent() && chance(b.rng, ab.Chance) {
			f.status.CurePersistent()
			b.emit(f, EventCure, 0, ab.Name)
		}
	case data.AbilityWeatherHeal:
		if b.weather.Is(ab.Weather) {
			if healed := f.heal(ab.Value); healed > 0 {
				b.emit(f, EventHeal, healed, ab.Name)
			}
		}
	}
}

// speed returns the weather- and ability-adjusted speed.
func (b *Battle) speed(f *fighter) int {
	if f == nil {
		return 0
	}
	spe := f.stat(model.StatSpe)
	if ab := b.abilityOf(f); ab.Is(data.TriggerSpeed) && b.weather.Is(ab.Weather) {
		spe *= ab.Multiplier
	}
	return int(spe)
}

// attackStat returns the offensive stat of a move with ability modifiers.
func (b *Battle) attackStat(f *fighter, mv data.Move) float64 {
	if mv.Category == data.CategorySpecial {
		return f.stat(model.StatSpA)
	}
	atk := f.stat(model.StatAtk)
	if ab := b.abilityOf(f); ab.Is(data.TriggerAttack) && f.status.HasMajor() {
		atk *= ab.Multiplier
	}
	return atk
}

func (b *Battle) defenseStat(f *fighter, mv data.Move) float64 {
	if mv.Category == data.CategorySpecial {
		return f.stat(model.StatSpD)
	}
	return f.stat(model.StatDef)
}

func (b *Battle) damageInput(att, def *fighter, mv data.Move, eff float64) DamageInput {
	in := DamageInput{
		Power:         mv.Power,
		Attack:        b.attackStat(att, mv),
		Defense:       b.defenseStat(def, mv),
		Effectiveness: eff,
		MoveType:      mv.Type,
		Weather:       b.weather.Kind,
	}
	it := b.itemOf(att)
	switch {
	case it.Kind == data.ItemTypeBoost && it.Type == mv.Type:
		in.TypeBoost = it.Multiplier
	case it.Kind == data.ItemCritBoost:
		in.CritScale = it.Multiplier
	}
	if ab := b.abilityOf(att); ab.Is(data.TriggerLowHPBoost) && ab.Type == mv.Type &&
		float64(att.hp) <= ab.Threshold*MaxHP {
		in.LowHPBoost = ab.Multiplier
	}
	return in
}

// accuracy returns the effective accuracy of a move against the target.
func (b *Battle) accuracy(mv data.Move, target *fighter) int {
	acc := mv.Accuracy
	if acc <= 0 {
		acc = 100
	}
	if data.Normalize(mv.Name) == "thunder" {
		switch {
		case b.weather.Is(model.WeatherRain):
			return 100
		case b.weather.Is(model.WeatherSun):
			acc = 50
		}
	}
	if it := b.itemOf(target); it.Kind == data.ItemEvasion {
		acc = int(float64(acc) * it.Multiplier)
	}
	return acc
}
