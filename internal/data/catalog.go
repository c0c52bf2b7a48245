// Package data holds the static reference tables of a battle: the type chart,
// the move catalog and the ability and item registries. A Catalog is immutable
// after construction and may be shared by any number of concurrent battles.
package data

import (
	"log/slog"
	"slices"
	"strings"
	"sync"

	"golang.org/x/text/cases"
)

// Catalog bundles the four reference tables. Lookups are case-insensitive and
// treat '-', '_' and runs of spaces alike ("thunder-wave" == "Thunder Wave").
type Catalog struct {
	chart     map[string]map[string]float64
	types     []string
	moves     map[string]Move
	abilities map[string]Ability
	items     map[string]Item
}

// NewCatalog builds a catalog from the given tables. Later duplicates win.
func NewCatalog(chart map[string]map[string]float64, moves []Move, abilities []Ability, items []Item) *Catalog {
	c := &Catalog{
		chart:     make(map[string]map[string]float64, len(chart)),
		moves:     make(map[string]Move, len(moves)),
		abilities: make(map[string]Ability, len(abilities)),
		items:     make(map[string]Item, len(items)),
	}

	seen := make(map[string]bool)
	addType := func(t string) {
		if !seen[t] {
			seen[t] = true
			c.types = append(c.types, t)
		}
	}
	for _, t := range allTypes {
		if _, ok := chart[t]; ok {
			addType(t)
		}
	}
	for atk, row := range chart {
		cp := make(map[string]float64, len(row))
		for def, mul := range row {
			cp[def] = mul
		}
		c.chart[atk] = cp
		addType(atk)
	}

	for _, m := range moves {
		if m.Accuracy == 0 {
			m.Accuracy = 100
		}
		c.moves[Normalize(m.Name)] = m
	}
	for _, a := range abilities {
		c.abilities[Normalize(a.Name)] = a
	}
	for _, it := range items {
		c.items[Normalize(it.Name)] = it
	}
	return c
}

var defaultCatalog = sync.OnceValue(func() *Catalog {
	c := NewCatalog(typeChart, moveDefs, abilityDefs, itemDefs)
	slog.Debug("loaded battle catalog",
		"types", len(c.types),
		"moves", len(c.moves),
		"abilities", len(c.abilities),
		"items", len(c.items))
	return c
})

// Default returns the built-in catalog.
func Default() *Catalog {
	return defaultCatalog()
}

// Normalize folds a move, ability or item name into its lookup key.
func Normalize(name string) string {
	// cases.Caser хранит состояние, поэтому создаём новый на каждый вызов.
	folded := cases.Fold().String(name)
	folded = strings.NewReplacer("-", " ", "_", " ").Replace(folded)
	return strings.Join(strings.Fields(folded), " ")
}

// Effectiveness returns the multiplier of one attacking type against one
// defending type. Missing pairs are neutral.
func (c *Catalog) Effectiveness(atk, def string) float64 {
	if row, ok := c.chart[atk]; ok {
		if mul, ok := row[def]; ok {
			return mul
		}
	}
	return 1.0
}

// Combined multiplies the effectiveness across every defending type.
// A zero anywhere makes the whole result zero.
func (c *Catalog) Combined(atk string, defTypes []string) float64 {
	total := 1.0
	for _, def := range defTypes {
		mul := c.Effectiveness(atk, def)
		if mul == 0 {
			return 0
		}
		total *= mul
	}
	return total
}

// Types returns every known elemental type.
func (c *Catalog) Types() []string {
	return slices.Clone(c.types)
}

// Move returns the move by name. Unknown moves are inert: power 0, no type,
// no category, accuracy 100.
func (c *Catalog) Move(name string) Move {
	if m, ok := c.moves[Normalize(name)]; ok {
		return m
	}
	return Move{Name: name, Accuracy: 100}
}

// HasMove reports whether the move is in the catalog.
func (c *Catalog) HasMove(name string) bool {
	_, ok := c.moves[Normalize(name)]
	return ok
}

// Ability returns the ability by name. Unknown or empty names are inert.
func (c *Catalog) Ability(name string) Ability {
	if name == "" {
		return Ability{}
	}
	if a, ok := c.abilities[Normalize(name)]; ok {
		return a
	}
	return Ability{Name: name}
}

// Item returns the item by name. Unknown or empty names are inert.
func (c *Catalog) Item(name string) Item {
	if name == "" {
		return Item{}
	}
	if it, ok := c.items[Normalize(name)]; ok {
		return it
	}
	return Item{Name: name}
}

// MoveCount returns the number of catalogued moves.
func (c *Catalog) MoveCount() int { return len(c.moves) }
