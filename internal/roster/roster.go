// Package roster loads combatant rosters from YAML files.
package roster

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/udisondev/battlesim/internal/data"
	"github.com/udisondev/battlesim/internal/model"
)

// ErrInvalidRoster is wrapped by every validation failure.
var ErrInvalidRoster = errors.New("invalid roster")

// DefaultStats fills stat entries a roster file leaves out.
var DefaultStats = model.Stats{HP: 80, Atk: 80, Def: 80, SpA: 80, SpD: 80, Spe: 80}

// File is the on-disk roster layout.
type File struct {
	Combatants []Entry `yaml:"combatants"`
}

// Entry is one combatant in a roster file.
type Entry struct {
	Name    string       `yaml:"name"`
	Types   []string     `yaml:"types"`
	Moves   []string     `yaml:"moves"`
	Item    string       `yaml:"item"`
	Ability string       `yaml:"ability"`
	Stats   *model.Stats `yaml:"stats"`
}

// Load reads and validates a roster file. Unlike config, a missing roster
// file is an error.
func Load(path string, cat *data.Catalog) ([]model.Combatant, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading roster %s: %w", path, err)
	}
	cs, err := Parse(raw, cat)
	if err != nil {
		return nil, fmt.Errorf("loading roster %s: %w", path, err)
	}
	return cs, nil
}

// Parse decodes and validates roster YAML. Unknown moves, abilities and
// items are kept (they resolve to inert effects) and logged when cat is set.
func Parse(raw []byte, cat *data.Catalog) ([]model.Combatant, error) {
	var f File
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parsing roster: %w", err)
	}

	cs := make([]model.Combatant, 0, len(f.Combatants))
	for _, e := range f.Combatants {
		cs = append(cs, e.toCombatant())
	}
	if err := Validate(cs); err != nil {
		return nil, err
	}
	if cat != nil {
		warnUnknown(cat, cs)
	}
	return cs, nil
}

func (e Entry) toCombatant() model.Combatant {
	stats := DefaultStats
	if e.Stats != nil {
		for _, name := range []model.StatName{model.StatHP, model.StatAtk, model.StatDef, model.StatSpA, model.StatSpD, model.StatSpe} {
			if v := e.Stats.Get(name); v > 0 {
				stats.Set(name, v)
			}
		}
	}
	return model.Combatant{
		Name:    e.Name,
		Types:   e.Types,
		Moves:   e.Moves,
		Stats:   stats,
		Item:    e.Item,
		Ability: e.Ability,
	}
}

// Validate checks the shape rules of one side: at least one combatant,
// unique names, 1..2 types and 1..4 moves each.
func Validate(cs []model.Combatant) error {
	if len(cs) == 0 {
		return fmt.Errorf("%w: no combatants", ErrInvalidRoster)
	}
	seen := make(map[string]bool, len(cs))
	for i, c := range cs {
		if c.Name == "" {
			return fmt.Errorf("%w: combatant %d has no name", ErrInvalidRoster, i)
		}
		key := data.Normalize(c.Name)
		if seen[key] {
			return fmt.Errorf("%w: duplicate name %q", ErrInvalidRoster, c.Name)
		}
		seen[key] = true

		if len(c.Types) == 0 || len(c.Types) > model.MaxTypes {
			return fmt.Errorf("%w: %s has %d types, want 1..%d", ErrInvalidRoster, c.Name, len(c.Types), model.MaxTypes)
		}
		if len(c.Moves) == 0 || len(c.Moves) > model.MaxMoves {
			return fmt.Errorf("%w: %s has %d moves, want 1..%d", ErrInvalidRoster, c.Name, len(c.Moves), model.MaxMoves)
		}
	}
	return nil
}

func warnUnknown(cat *data.Catalog, cs []model.Combatant) {
	for _, c := range cs {
		for _, m := range c.Moves {
			if !cat.HasMove(m) {
				slog.Warn("unknown move resolves to inert", "combatant", c.Name, "move", m)
			}
		}
	}
}
