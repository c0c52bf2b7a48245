package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/battlesim/internal/data"
	"github.com/udisondev/battlesim/internal/model"
	"github.com/udisondev/battlesim/internal/testutil"
)

func noStatus(*model.Combatant) model.StatusRecord { return model.StatusRecord{} }

func TestChooseMove_STABSuperEffectiveBeatsNeutral(t *testing.T) {
	cat := data.Default()
	attacker := testutil.NewCombatant("Blastoise", []string{"Water"}, []string{"Tackle", "Surf"})
	defender := testutil.NewCombatant("Arcanine", []string{"Fire"}, nil)

	surf := ScoreMove(cat, cat.Move("Surf"), &attacker, &defender, 5, 1.0, noStatus)
	tackle := ScoreMove(cat, cat.Move("Tackle"), &attacker, &defender, 5, 1.0, noStatus)
	assert.GreaterOrEqual(t, surf-tackle, 5)

	got, ok := ChooseMove(cat, &attacker, &defender, attacker.Moves, 5, 1.0, noStatus)
	require.True(t, ok)
	assert.Equal(t, "Surf", got)
}

func TestChooseMove_SkipsImmune(t *testing.T) {
	cat := data.Default()
	attacker := testutil.NewCombatant("Pikachu", []string{"Electric"}, []string{"Thunderbolt", "Thunder Wave"})
	defender := testutil.NewCombatant("Golem", []string{"Rock", "Ground"}, nil)

	_, ok := ChooseMove(cat, &attacker, &defender, attacker.Moves, 1, 1.0, noStatus)
	assert.False(t, ok, "every move is Electric vs Ground")
}

func TestChooseMove_ImmuneOnAnyType(t *testing.T) {
	cat := data.Default()
	attacker := testutil.NewCombatant("Snorlax", []string{"Normal"}, []string{"Return", "Earthquake"})
	defender := testutil.NewCombatant("Gengar", []string{"Ghost", "Poison"}, nil)

	got, ok := ChooseMove(cat, &attacker, &defender, attacker.Moves, 5, 1.0, noStatus)
	require.True(t, ok)
	assert.Equal(t, "Earthquake", got)
}

func TestChooseMove_TieKeepsFirst(t *testing.T) {
	cat := data.Default()
	attacker := testutil.NewCombatant("Ditto", []string{"Normal"}, []string{"Brick Break", "Crunch", "Surf"})
	defender := testutil.NewCombatant("Mew", []string{"Psychic"}, nil)

	// Crunch: 0 STAB + 3 super-effective. Brick Break is resisted, Surf is neutral.
	got, ok := ChooseMove(cat, &attacker, &defender, attacker.Moves, 5, 1.0, noStatus)
	require.True(t, ok)
	assert.Equal(t, "Crunch", got)

	attacker.Moves = []string{"Surf", "Ice Beam"}
	got, _ = ChooseMove(cat, &attacker, &defender, attacker.Moves, 5, 1.0, noStatus)
	assert.Equal(t, "Surf", got, "equal scores keep list order")
}

func TestChooseMove_UnknownMoveIsScoredNeutral(t *testing.T) {
	cat := data.Default()
	attacker := testutil.NewCombatant("Ditto", []string{"Normal"}, []string{"Mystery"})
	defender := testutil.NewCombatant("Onix", []string{"Rock", "Ground"}, nil)

	got, ok := ChooseMove(cat, &attacker, &defender, attacker.Moves, 1, 1.0, noStatus)
	require.True(t, ok)
	assert.Equal(t, "Mystery", got)
}

func TestScoreMove_Situational(t *testing.T) {
	cat := data.Default()
	water := testutil.NewCombatant("Kingdra", []string{"Water", "Dragon"}, nil)
	normal := testutil.NewCombatant("Snorlax", []string{"Normal"}, nil)
	target := testutil.NewCombatant("Dummy", []string{"Normal"}, nil)

	confused := func(*model.Combatant) model.StatusRecord { return model.StatusRecord{Confused: true} }

	tests := []struct {
		name     string
		move     string
		attacker *model.Combatant
		turn     int
		hpRatio  float64
		statusOf StatusLookup
		want     int
	}{
		{"setup early healthy", "Swords Dance", &normal, 1, 0.9, noStatus, 2 + 3},
		{"setup late", "Swords Dance", &normal, 3, 0.9, noStatus, 2 - 1},
		{"setup hurt", "Dragon Dance", &normal, 1, 0.5, noStatus, -1},
		{"heal low", "Recover", &normal, 5, 0.3, noStatus, 2 + 3},
		{"heal high", "Recover", &normal, 5, 0.8, noStatus, 2 - 2},
		{"toxic early", "Toxic", &normal, 3, 1.0, noStatus, 2},
		{"toxic late", "Toxic", &normal, 4, 1.0, noStatus, 0},
		{"sleep early", "Spore", &normal, 2, 1.0, noStatus, 3},
		{"confuse fresh", "Confuse Ray", &normal, 5, 1.0, noStatus, 2},
		{"confuse already", "Confuse Ray", &normal, 5, 1.0, confused, -5},
		{"desperate confuse", "Confuse Ray", &normal, 5, 0.2, noStatus, 7 + 2},
		{"desperate confuse already", "Confuse Ray", &normal, 5, 0.2, confused, -5 - 5},
		{"desperate attract", "Attract", &normal, 5, 0.2, confused, 2 + 7 + 2},
		{"rain with water", "Rain Dance", &water, 5, 1.0, noStatus, 2 + 2},
		{"rain without water", "Rain Dance", &normal, 5, 1.0, noStatus, 0},
		{"sun without fire", "Sunny Day", &water, 5, 1.0, noStatus, 0},
		{"protect", "Protect", &normal, 5, 1.0, noStatus, 2 + 2},
		{"substitute healthy", "Substitute", &normal, 5, 0.6, noStatus, 2 + 2},
		{"substitute hurt", "Substitute", &normal, 5, 0.5, noStatus, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ScoreMove(cat, cat.Move(tt.move), tt.attacker, &target, tt.turn, tt.hpRatio, tt.statusOf)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestScoreMove_SuperEffectivePerType(t *testing.T) {
	cat := data.Default()
	attacker := testutil.NewCombatant("Jynx", []string{"Ice", "Psychic"}, nil)
	defender := testutil.NewCombatant("Dragonite", []string{"Dragon", "Flying"}, nil)

	// STAB + 3 for Dragon + 3 for Flying.
	assert.Equal(t, 8, ScoreMove(cat, cat.Move("Ice Beam"), &attacker, &defender, 5, 1.0, nil))
}
