package model

import "slices"

// Roster limits for a single combatant.
const (
	MaxTypes = 2
	MaxMoves = 4
)

// StatName identifies one entry of a Stats block.
type StatName string

const (
	StatHP  StatName = "hp"
	StatAtk StatName = "atk"
	StatDef StatName = "def"
	StatSpA StatName = "spa"
	StatSpD StatName = "spd"
	StatSpe StatName = "spe"
)

// Stats is the base stat block of a combatant.
type Stats struct {
	HP  int `yaml:"hp"`
	Atk int `yaml:"atk"`
	Def int `yaml:"def"`
	SpA int `yaml:"spa"`
	SpD int `yaml:"spd"`
	Spe int `yaml:"spe"`
}

// Get returns the stat by name. Unknown names return 0.
func (s Stats) Get(name StatName) int {
	switch name {
	case StatHP:
		return s.HP
	case StatAtk:
		return s.Atk
	case StatDef:
		return s.Def
	case StatSpA:
		return s.SpA
	case StatSpD:
		return s.SpD
	case StatSpe:
		return s.Spe
	default:
		return 0
	}
}

// Set overwrites the stat by name. Unknown names are ignored.
func (s *Stats) Set(name StatName, v int) {
	switch name {
	case StatHP:
		s.HP = v
	case StatAtk:
		s.Atk = v
	case StatDef:
		s.Def = v
	case StatSpA:
		s.SpA = v
	case StatSpD:
		s.SpD = v
	case StatSpe:
		s.Spe = v
	}
}

// Total returns the sum of all six stats.
func (s Stats) Total() int {
	return s.HP + s.Atk + s.Def + s.SpA + s.SpD + s.Spe
}

// Combatant is a roster entry. Identity and stats are never mutated by the
// battle engine; runtime values (HP, PP, status) live in the battle state.
type Combatant struct {
	Name    string   `yaml:"name"`
	Types   []string `yaml:"types"`
	Moves   []string `yaml:"moves"`
	Stats   Stats    `yaml:"stats"`
	Item    string   `yaml:"item,omitempty"`
	Ability string   `yaml:"ability,omitempty"`
}

// HasType reports whether t is one of the combatant's elemental types.
func (c *Combatant) HasType(t string) bool {
	return slices.Contains(c.Types, t)
}

// String returns "Name (Type1/Type2)".
func (c *Combatant) String() string {
	s := c.Name + " ("
	for i, t := range c.Types {
		if i > 0 {
			s += "/"
		}
		s += t
	}
	return s + ")"
}
