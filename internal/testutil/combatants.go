package testutil

import "github.com/udisondev/battlesim/internal/model"

// EvenStats is a flat 100 stat line.
var EvenStats = model.Stats{HP: 100, Atk: 100, Def: 100, SpA: 100, SpD: 100, Spe: 100}

// Option tweaks a combatant built by NewCombatant.
type Option func(*model.Combatant)

// NewCombatant builds a combatant with EvenStats.
func NewCombatant(name string, types []string, moves []string, opts ...Option) model.Combatant {
	c := model.Combatant{
		Name:  name,
		Types: types,
		Moves: moves,
		Stats: EvenStats,
	}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// WithSpeed overrides the speed stat.
func WithSpeed(spe int) Option {
	return func(c *model.Combatant) { c.Stats.Spe = spe }
}

// WithStats overrides the whole stat block.
func WithStats(s model.Stats) Option {
	return func(c *model.Combatant) { c.Stats = s }
}

// WithAbility sets the ability.
func WithAbility(name string) Option {
	return func(c *model.Combatant) { c.Ability = name }
}

// WithItem sets the held item.
func WithItem(name string) Option {
	return func(c *model.Combatant) { c.Item = name }
}
