package battle

import (
	"fmt"

	"github.com/udisondev/battlesim/internal/data"
	"github.com/udisondev/battlesim/internal/model"
)

// Gate probabilities of the pre-action checks.
const (
	volatileCureChance  = 0.3
	volatileBlockChance = 0.5
	paralysisChance     = 0.25
	healMoveAmount      = 50
)

// outcome is what the resolution phase of an action reports to upkeep.
type outcome struct {
	move   data.Move
	landed bool // the damage phase hit the target or its substitute
	hitSub bool
	dealt  int
}

// act runs one combatant's action: PP, gates, resolution and upkeep.
func (b *Battle) act(actor, target *fighter, moveName string) {
	if actor == nil || !actor.alive() || b.active[actor.side] != actor {
		return
	}

	// a. Counter, flinch flag and PP.
	actor.activeTurns++
	flinched := actor.status.Flinched
	actor.status.Flinched = false

	usable := true
	switch {
	case moveName == "":
		b.emit(actor, EventNoMove, 0, "")
		usable = false
	case actor.pp[moveName] <= 0:
		b.emit(actor, EventNoPP, 0, moveName)
		usable = false
	default:
		actor.pp[moveName]--
		if ab := b.abilityOf(target); ab.Is(data.TriggerPPDrain) && actor.pp[moveName] > 0 {
			actor.pp[moveName]--
		}
	}

	// b. The target chosen this turn is already down.
	if target == nil || !target.alive() {
		b.emit(actor, EventSkipped, 0, "target fainted")
		return
	}

	var out outcome
	if usable {
		out = b.resolve(actor, target, moveName, flinched)
	} else if flinched {
		b.emit(actor, EventFlinch, 0, "")
	}
	b.upkeep(actor, target, out)
}

// resolve covers gates through item reactions to damage.
func (b *Battle) resolve(actor, target *fighter, moveName string, flinched bool) outcome {
	mv := b.cat.Move(moveName)
	out := outcome{move: mv}
	b.emit(actor, EventMove, 0, mv.Name)

	// c.
	if b.blocked(actor, flinched) {
		return out
	}

	// d.
	b.lowHPItem(actor)

	if targetsSelf(mv) {
		b.applySelfEffect(actor, mv)
		return out
	}

	// e.
	if target.protected {
		b.emit(target, EventProtected, 0, mv.Name)
		return out
	}
	if acc := b.accuracy(mv, target); roll100(b.rng) > acc {
		b.emit(actor, EventMiss, acc, mv.Name)
		return out
	}

	// f, g.
	if st := mv.Effect.PrimaryStatus(); st != model.StatusNone {
		if target.subHP > 0 && !mv.IsDamaging() {
			b.emit(target, EventSubstitute, target.subHP, "blocked "+mv.Name)
			return out
		}
		b.inflict(target, st, mv.Effect == data.EffectToxic)
	}

	// h.
	if !mv.IsDamaging() {
		return out
	}

	// i.
	if w := mv.Effect.Weather(); w != model.WeatherNone {
		b.setWeather(actor, w)
	}

	// j.
	b.strike(actor, target, mv, &out)
	if !out.landed {
		return out
	}

	// k.
	if !out.hitSub && target.alive() && mv.Status != model.StatusNone && mv.StatusChance > 0 &&
		percent(b.rng, mv.StatusChance) {
		b.inflict(target, mv.Status, false)
	}

	// l.
	if mv.IsContact() && !out.hitSub {
		if ab := b.abilityOf(target); ab.Is(data.TriggerContact) && chance(b.rng, ab.Chance) {
			b.inflict(actor, ab.Status, false)
		}
	}

	// m.
	if it := b.itemOf(actor); it.Is(data.TriggerDamageDealt) && it.Kind == data.ItemLifesteal && out.dealt > 0 {
		if healed := actor.heal(int(float64(out.dealt) * it.Multiplier)); healed > 0 {
			b.emit(actor, EventHeal, healed, it.Name)
		}
	}
	if !target.alive() && !out.hitSub && out.dealt > 0 {
		if it := b.itemOf(target); it.Is(data.TriggerFatalHit) && it.Kind == data.ItemSurvive && chance(b.rng, it.Chance) {
			target.hp = 1
			b.emit(target, EventSurvive, 1, it.Name)
		}
	}
	return out
}

// blocked runs the pre-action gates in order: flinch, volatile statuses,
// paralysis, sleep.
func (b *Battle) blocked(f *fighter, flinched bool) bool {
	if flinched {
		b.emit(f, EventFlinch, 0, "")
		return true
	}

	s := &f.status
	if s.IsVolatile() {
		if chance(b.rng, volatileCureChance) {
			s.Cure(model.StatusConfused)
			s.Cure(model.StatusInfatuated)
			b.emit(f, EventVolatileEnd, 0, "")
		} else if chance(b.rng, volatileBlockChance) {
			s.VolatileTurns++
			b.emit(f, EventImmobilized, s.VolatileTurns, "")
			return true
		}
	}

	if s.Paralyzed && chance(b.rng, paralysisChance) {
		b.emit(f, EventFullyPara, 0, "")
		return true
	}

	if s.AsleepTurns > 0 {
		s.AsleepTurns--
		if s.AsleepTurns == 0 {
			b.emit(f, EventWake, 0, "")
		} else {
			b.emit(f, EventAsleep, s.AsleepTurns, "")
		}
		return true
	}
	return false
}

// strike is the damage phase.
func (b *Battle) strike(actor, target *fighter, mv data.Move, out *outcome) {
	eff := b.cat.Combined(mv.Type, target.c.Types)
	if ab := b.abilityOf(target); ab.Is(data.TriggerImmunity) && ab.Type == mv.Type {
		b.emit(target, EventNoEffect, 0, ab.Name)
		return
	}
	if eff == 0 {
		b.emit(target, EventNoEffect, 0, mv.Name)
		return
	}

	res := CalcDamage(b.damageInput(actor, target, mv, eff), b.rng)
	if res.Crit {
		b.emit(actor, EventCrit, 0, mv.Name)
	}

	if ab := b.abilityOf(target); ab.Is(data.TriggerHealOnHit) && ab.Type == mv.Type {
		healed := target.heal(int(MaxHP * ab.Multiplier))
		b.emit(target, EventAbsorb, healed, ab.Name)
		return
	}

	out.landed = true
	if target.subHP > 0 {
		absorbed := min(res.Damage, target.subHP)
		target.subHP -= absorbed
		out.hitSub = true
		out.dealt = absorbed
		detail := "absorbed"
		if target.subHP == 0 {
			detail = "broke"
		}
		b.emit(target, EventSubstitute, absorbed, detail)
		return
	}

	out.dealt = target.damage(res.Damage)
	b.emit(target, EventDamage, out.dealt, fmt.Sprintf("%s x%g", mv.Name, eff))
}

// targetsSelf reports whether a non-damaging move only affects its user or
// the field.
func targetsSelf(mv data.Move) bool {
	if mv.IsDamaging() {
		return false
	}
	switch {
	case mv.Effect == data.EffectHeal, mv.Effect.IsSetup(),
		mv.Effect == data.EffectProtect, mv.Effect == data.EffectSubstitute,
		mv.Effect.Weather() != model.WeatherNone:
		return true
	}
	return false
}

func (b *Battle) applySelfEffect(f *fighter, mv data.Move) {
	switch {
	case mv.Effect == data.EffectHeal:
		b.emit(f, EventHeal, f.heal(healMoveAmount), mv.Name)
	case mv.Effect.IsSetup():
		for _, stat := range mv.Effect.StageBoosts() {
			b.emit(f, EventBoost, f.raiseStage(stat, 1), string(stat))
		}
	case mv.Effect == data.EffectProtect:
		f.protected = true
		b.emit(f, EventProtected, 0, "braced")
	case mv.Effect == data.EffectSubstitute:
		if f.subHP > 0 || f.hp <= substituteHP {
			b.emit(f, EventFailed, 0, mv.Name)
			return
		}
		f.hp -= substituteHP
		f.subHP = substituteHP
		b.emit(f, EventSubstitute, substituteHP, "created")
	default:
		b.setWeather(f, mv.Effect.Weather())
	}
}

// upkeep runs after every action that reached the target: passive damage,
// flinch registration, weather countdown, end-of-turn effects, faints.
func (b *Battle) upkeep(actor, target *fighter, out outcome) {
	// n.
	b.passiveDamage(actor)

	// o.
	b.registerFlinch(actor, target, out)

	// p.
	if kind := b.weather.Kind; b.weather.Tick() {
		b.emit(nil, EventWeatherEnd, 0, kind.String())
	}

	// q.
	b.endOfTurn(b.active[model.SidePlayer])
	b.endOfTurn(b.active[model.SideEnemy])

	// r.
	b.faint(target)
	b.faint(actor)
}

const passiveDivisor = 8

func (b *Battle) passiveDamage(f *fighter) {
	if !f.alive() {
		return
	}
	if f.status.Burned {
		b.emit(f, EventPassive, f.damage(max(1, f.hp/passiveDivisor)), "burn")
	}
	if f.status.Poisoned && f.alive() {
		if n := f.status.ToxicCounter; n > 0 {
			loss := (f.hp / 16) * n
			f.status.ToxicCounter++
			b.emit(f, EventPassive, f.damage(loss), "toxic")
		} else {
			b.emit(f, EventPassive, f.damage(max(1, f.hp/passiveDivisor)), "poison")
		}
	}
}

func (b *Battle) registerFlinch(actor, target *fighter, out outcome) {
	if !out.landed || out.hitSub || !target.alive() {
		return
	}
	if ab := b.abilityOf(target); ab.Is(data.TriggerFlinchGuard) {
		return
	}

	var flinch bool
	switch out.move.Effect {
	case data.EffectFlinch:
		flinch = percent(b.rng, out.move.FlinchChance)
	case data.EffectFakeOut:
		flinch = actor.activeTurns == 1
	}
	if !flinch {
		if it := b.itemOf(actor); it.Kind == data.ItemFlinch && chance(b.rng, it.Chance) {
			flinch = true
		}
	}
	if flinch {
		target.status.Flinched = true
		b.emit(target, EventFlinchSet, 0, out.move.Name)
	}
}
