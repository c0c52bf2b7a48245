package battle

import (
	"github.com/udisondev/battlesim/internal/model"
)

// Battle-scale constants. HP is tracked on a 0..100 scale regardless of the
// base HP stat.
const (
	MaxHP        = 100
	MaxPP        = 10
	maxStage     = 6
	substituteHP = 25
)

// fighter is the runtime record of one roster slot. Records are keyed by
// slot identity, never by name, so duplicate names stay independent.
type fighter struct {
	id   int
	side model.Side
	slot int
	c    *model.Combatant

	hp       int
	pp       map[string]int
	itemUsed bool
	status   model.StatusRecord

	// Per-stint state, reset on every switch-in.
	appeared     bool
	activeTurns  int
	entryPending bool
	stats        model.Stats
	stages       map[model.StatName]int
	lowered      map[model.StatName]bool
	protected    bool
	subHP        int
}

func newFighter(id int, side model.Side, slot int, c model.Combatant) *fighter {
	cc := c
	cc.Types = append([]string(nil), c.Types...)
	cc.Moves = append([]string(nil), c.Moves...)

	f := &fighter{
		id:      id,
		side:    side,
		slot:    slot,
		c:       &cc,
		hp:      MaxHP,
		pp:      make(map[string]int, len(cc.Moves)),
		stats:   cc.Stats,
		stages:  make(map[model.StatName]int),
		lowered: make(map[model.StatName]bool),
	}
	for _, m := range cc.Moves {
		f.pp[m] = MaxPP
	}
	return f
}

func (f *fighter) alive() bool { return f.hp > 0 }

// resetStint clears everything that only lasts while the fighter is out.
// Status persists across switches.
func (f *fighter) resetStint() {
	f.activeTurns = 0
	f.entryPending = true
	f.stats = f.c.Stats
	clear(f.stages)
	clear(f.lowered)
	f.protected = false
	f.subHP = 0
	f.status.Flinched = false
}

// usableMoves returns the known moves with PP left, in roster order.
func (f *fighter) usableMoves() []string {
	out := make([]string, 0, len(f.c.Moves))
	for _, m := range f.c.Moves {
		if f.pp[m] > 0 {
			out = append(out, m)
		}
	}
	return out
}

func (f *fighter) heal(amount int) int {
	if amount <= 0 || !f.alive() {
		return 0
	}
	before := f.hp
	f.hp = min(MaxHP, f.hp+amount)
	return f.hp - before
}

func (f *fighter) damage(amount int) int {
	if amount <= 0 {
		return 0
	}
	before := f.hp
	f.hp = max(0, f.hp-amount)
	return before - f.hp
}

// raiseStage moves a stat stage, clamped to ±6. Returns the applied delta.
func (f *fighter) raiseStage(stat model.StatName, delta int) int {
	cur := f.stages[stat]
	next := min(maxStage, max(-maxStage, cur+delta))
	f.stages[stat] = next
	return next - cur
}

// stat returns the in-battle value of a stat with stages applied.
func (f *fighter) stat(name model.StatName) float64 {
	return float64(f.stats.Get(name)) * StageMultiplier(f.stages[name])
}

// StageMultiplier converts a stat stage into its multiplier:
// (2+s)/2 for raised stages and 2/(2-s) for lowered ones.
func StageMultiplier(stage int) float64 {
	if stage >= 0 {
		return float64(2+stage) / 2
	}
	return 2 / float64(2-stage)
}

// Snapshot is the observable state of one roster slot.
type Snapshot struct {
	Name   string
	Side   model.Side
	Slot   int
	HP     int
	PP     map[string]int
	Status model.StatusRecord
	Active bool
}

func (b *Battle) snapshot(f *fighter) Snapshot {
	pp := make(map[string]int, len(f.pp))
	for k, v := range f.pp {
		pp[k] = v
	}
	return Snapshot{
		Name:   f.c.Name,
		Side:   f.side,
		Slot:   f.slot,
		HP:     f.hp,
		PP:     pp,
		Status: f.status,
		Active: b.active[f.side] == f,
	}
}

// Roster returns snapshots of one side in roster order.
func (b *Battle) Roster(side model.Side) []Snapshot {
	out := make([]Snapshot, 0, len(b.rosters[side]))
	for _, f := range b.rosters[side] {
		out = append(out, b.snapshot(f))
	}
	return out
}

// Active returns the snapshot of a side's active combatant.
func (b *Battle) Active(side model.Side) (Snapshot, bool) {
	f := b.active[side]
	if f == nil {
		return Snapshot{}, false
	}
	return b.snapshot(f), true
}

// Weather returns the current weather.
func (b *Battle) Weather() model.WeatherState {
	return b.weather
}

// Turn returns the turn about to be played.
func (b *Battle) Turn() int {
	return b.turn
}

func (b *Battle) living(side model.Side) int {
	n := 0
	for _, f := range b.rosters[side] {
		if f.alive() {
			n++
		}
	}
	return n
}

// firstLivingBench returns the first living non-active fighter in roster order.
func (b *Battle) firstLivingBench(side model.Side) *fighter {
	for _, f := range b.rosters[side] {
		if f != b.active[side] && f.alive() {
			return f
		}
	}
	return nil
}
