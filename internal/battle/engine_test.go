package battle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/battlesim/internal/data"
	"github.com/udisondev/battlesim/internal/model"
	"github.com/udisondev/battlesim/internal/testutil"
)

func normal(name string, moves ...string) model.Combatant {
	return testutil.NewCombatant(name, []string{"Normal"}, moves)
}

func newTestBattle(t *testing.T, player, enemy []model.Combatant, rng RNG, opts Options) *Battle {
	t.Helper()
	return New(data.Default(), player, enemy, rng, opts)
}

func duel(t *testing.T, player, enemy model.Combatant, rng RNG) *Battle {
	t.Helper()
	return newTestBattle(t, []model.Combatant{player}, []model.Combatant{enemy}, rng, Options{})
}

func countEvents(events []Event, kind EventKind) int {
	n := 0
	for _, e := range events {
		if e.Action == kind {
			n++
		}
	}
	return n
}

func firstMove(t *testing.T, events []Event) Event {
	t.Helper()
	for _, e := range events {
		if e.Action == EventMove {
			return e
		}
	}
	t.Fatal("no move event")
	return Event{}
}

func TestNew(t *testing.T) {
	b := newTestBattle(t,
		[]model.Combatant{normal("Alpha", "Tackle"), normal("Beta", "Tackle")},
		[]model.Combatant{normal("Gamma", "Tackle")},
		testutil.NeverRNG(), Options{})

	p, ok := b.Active(model.SidePlayer)
	require.True(t, ok)
	assert.Equal(t, "Alpha", p.Name)
	assert.Equal(t, MaxHP, p.HP)
	assert.Equal(t, MaxPP, p.PP["Tackle"])

	e, ok := b.Active(model.SideEnemy)
	require.True(t, ok)
	assert.Equal(t, "Gamma", e.Name)

	assert.Equal(t, 1, b.Turn())
	assert.Equal(t, PhaseOngoing, b.Phase())
	assert.Equal(t, model.WeatherNone, b.Weather().Kind)
	assert.Equal(t, 2, countEvents(b.Events(), EventSendOut))
}

func TestNew_DoesNotMutateInput(t *testing.T) {
	player := []model.Combatant{normal("Alpha", "Tackle")}
	enemy := []model.Combatant{normal("Gamma", "Tackle")}

	b := newTestBattle(t, player, enemy, testutil.NeverRNG(), Options{})
	b.Run()

	assert.Equal(t, []string{"Tackle"}, player[0].Moves)
	assert.Equal(t, testutil.EvenStats, player[0].Stats)
}

func TestNew_EmptyRoster(t *testing.T) {
	t.Run("enemy empty", func(t *testing.T) {
		b := newTestBattle(t, []model.Combatant{normal("Alpha", "Tackle")}, nil, testutil.NeverRNG(), Options{})
		assert.False(t, b.Step())
		assert.Equal(t, PlayerWins, b.Result().Verdict)
	})
	t.Run("both empty", func(t *testing.T) {
		b := newTestBattle(t, nil, nil, testutil.NeverRNG(), Options{})
		res := b.Run()
		assert.Equal(t, Draw, res.Verdict)
		assert.Equal(t, 0, res.Turns)
	})
}

func TestStep_SpeedOrder(t *testing.T) {
	tests := []struct {
		name      string
		playerSpe int
		enemySpe  int
		want      model.Side
	}{
		{name: "player faster", playerSpe: 150, enemySpe: 50, want: model.SidePlayer},
		{name: "enemy faster", playerSpe: 50, enemySpe: 150, want: model.SideEnemy},
		{name: "tie goes to enemy", playerSpe: 100, enemySpe: 100, want: model.SideEnemy},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := duel(t,
				testutil.NewCombatant("Alpha", []string{"Normal"}, []string{"Tackle"}, testutil.WithSpeed(tt.playerSpe)),
				testutil.NewCombatant("Gamma", []string{"Normal"}, []string{"Tackle"}, testutil.WithSpeed(tt.enemySpe)),
				testutil.NeverRNG())

			require.True(t, b.Step())
			assert.Equal(t, tt.want, firstMove(t, b.Events()).Side)
		})
	}
}

func TestRun_PlayerWins(t *testing.T) {
	b := duel(t, normal("Alpha", "Tackle"), normal("Gamma", "Wait"), testutil.NeverRNG())

	res := b.Run()

	assert.Equal(t, PlayerWins, res.Verdict)
	assert.Equal(t, 6, res.Turns)
	assert.Equal(t, [2]int{1, 0}, res.Remaining)
	assert.Equal(t, PhasePlayerWon, b.Phase())
	assert.False(t, b.Step())

	last := res.Events[len(res.Events)-1]
	assert.Equal(t, EventVerdict, last.Action)
	assert.Equal(t, "player_wins", last.Detail)
}

func TestRun_TurnCapDraw(t *testing.T) {
	b := newTestBattle(t,
		[]model.Combatant{normal("Alpha", "Wait")},
		[]model.Combatant{normal("Gamma", "Wait")},
		testutil.NeverRNG(), Options{TurnCap: 3})

	res := b.Run()

	assert.Equal(t, Draw, res.Verdict)
	assert.Equal(t, 3, res.Turns)
	assert.Equal(t, PhaseDraw, b.Phase())
	assert.Equal(t, [2]int{1, 1}, res.Remaining)

	last := res.Events[len(res.Events)-1]
	assert.Equal(t, EventVerdict, last.Action)
	assert.Equal(t, 3, last.Turn)
	assert.Equal(t, 3, b.Turn())
}

func TestRun_DefaultTurnCap(t *testing.T) {
	b := newTestBattle(t,
		[]model.Combatant{normal("Alpha", "Wait")},
		[]model.Combatant{normal("Gamma", "Wait")},
		testutil.NeverRNG(), Options{})

	res := b.Run()

	assert.Equal(t, Draw, res.Verdict)
	assert.Equal(t, DefaultTurnCap, res.Turns)
}

func TestRun_OutOfPP(t *testing.T) {
	b := newTestBattle(t,
		[]model.Combatant{normal("Alpha", "Wait")},
		[]model.Combatant{normal("Gamma", "Wait")},
		testutil.NeverRNG(), Options{TurnCap: 12})

	res := b.Run()

	assert.Equal(t, Draw, res.Verdict)
	assert.Equal(t, 4, countEvents(res.Events, EventNoMove))
	for _, side := range []model.Side{model.SidePlayer, model.SideEnemy} {
		assert.Equal(t, 0, b.Roster(side)[0].PP["Wait"])
	}
}

func TestMutualKnockoutIsDraw(t *testing.T) {
	b := duel(t,
		testutil.NewCombatant("Alpha", []string{"Normal"}, []string{"Tackle"}, testutil.WithSpeed(150)),
		normal("Gamma", "Tackle"),
		testutil.NeverRNG())
	b.active[model.SidePlayer].hp = 1
	b.active[model.SidePlayer].status.Burned = true
	b.active[model.SideEnemy].hp = 1

	assert.False(t, b.Step())

	res := b.Result()
	assert.Equal(t, Draw, res.Verdict)
	assert.Equal(t, 1, res.Turns)
	assert.Equal(t, [2]int{0, 0}, res.Remaining)
	assert.Equal(t, PhaseDraw, b.Phase())
}

func TestFaintReplacesFromBench(t *testing.T) {
	b := newTestBattle(t,
		[]model.Combatant{normal("Clone", "Tackle"), normal("Clone", "Tackle")},
		[]model.Combatant{testutil.NewCombatant("Gamma", []string{"Normal"}, []string{"Tackle"}, testutil.WithSpeed(150))},
		testutil.NeverRNG(), Options{})
	b.active[model.SidePlayer].hp = 1

	require.True(t, b.Step())

	roster := b.Roster(model.SidePlayer)
	assert.Equal(t, 0, roster[0].HP)
	assert.False(t, roster[0].Active)
	assert.Equal(t, MaxHP, roster[1].HP)
	assert.True(t, roster[1].Active)
	assert.Equal(t, PhaseOngoing, b.Phase())

	// The fainted combatant never gets its action.
	enemy, _ := b.Active(model.SideEnemy)
	assert.Equal(t, MaxHP, enemy.HP)
	assert.Equal(t, 1, countEvents(b.Events(), EventFaint))
	assert.Equal(t, 1, countEvents(b.Events(), EventMove))
}

func TestEliminationEnemyWins(t *testing.T) {
	b := duel(t,
		normal("Alpha", "Tackle"),
		testutil.NewCombatant("Gamma", []string{"Normal"}, []string{"Tackle"}, testutil.WithSpeed(150)),
		testutil.NeverRNG())
	b.active[model.SidePlayer].hp = 1

	res := b.Run()

	assert.Equal(t, EnemyWins, res.Verdict)
	assert.Equal(t, 1, res.Turns)
	assert.Equal(t, PhaseEnemyWon, b.Phase())
	assert.Equal(t, 1, countEvents(res.Events, EventEliminated))
}

func TestFakeOutFlinchesOnlyOnFirstTurn(t *testing.T) {
	b := duel(t,
		testutil.NewCombatant("Alpha", []string{"Fighting"}, []string{"Fake Out"}, testutil.WithSpeed(150)),
		testutil.NewCombatant("Gamma", []string{"Normal"}, []string{"Tackle"}, testutil.WithSpeed(50)),
		testutil.NeverRNG())

	require.True(t, b.Step())
	p, _ := b.Active(model.SidePlayer)
	e, _ := b.Active(model.SideEnemy)
	assert.Equal(t, MaxHP, p.HP)
	assert.Equal(t, 81, e.HP)
	assert.False(t, e.Status.Flinched)
	assert.Equal(t, 1, countEvents(b.Events(), EventFlinch))

	require.True(t, b.Step())
	p, _ = b.Active(model.SidePlayer)
	assert.Equal(t, 81, p.HP)
	assert.Equal(t, 1, countEvents(b.Events(), EventFlinch))
}

func TestInnerFocusBlocksFlinch(t *testing.T) {
	b := duel(t,
		testutil.NewCombatant("Alpha", []string{"Fighting"}, []string{"Fake Out"}, testutil.WithSpeed(150)),
		testutil.NewCombatant("Gamma", []string{"Normal"}, []string{"Tackle"},
			testutil.WithSpeed(50), testutil.WithAbility("Inner Focus")),
		testutil.NeverRNG())

	require.True(t, b.Step())
	p, _ := b.Active(model.SidePlayer)
	assert.Equal(t, 81, p.HP)
	assert.Zero(t, countEvents(b.Events(), EventFlinch))
}

func TestEntryAbility(t *testing.T) {
	t.Run("intimidate lowers attack once per stint", func(t *testing.T) {
		b := duel(t,
			testutil.NewCombatant("Alpha", []string{"Normal"}, []string{"Wait"}, testutil.WithAbility("Intimidate")),
			normal("Gamma", "Wait"),
			testutil.NeverRNG())

		require.True(t, b.Step())
		require.True(t, b.Step())

		enemy := b.active[model.SideEnemy]
		assert.Equal(t, 67, enemy.stats.Atk)
		assert.True(t, enemy.lowered[model.StatAtk])
		assert.Equal(t, 100, enemy.c.Stats.Atk)
	})

	t.Run("white herb restores the drop", func(t *testing.T) {
		b := duel(t,
			testutil.NewCombatant("Alpha", []string{"Normal"}, []string{"Wait"}, testutil.WithAbility("Intimidate")),
			testutil.NewCombatant("Gamma", []string{"Normal"}, []string{"Wait"}, testutil.WithItem("White Herb")),
			testutil.NeverRNG())

		b.fireEntry(b.active[model.SidePlayer])

		enemy := b.active[model.SideEnemy]
		assert.Equal(t, 100, enemy.stats.Atk)
		assert.True(t, enemy.itemUsed)
	})

	t.Run("drizzle sets rain that ticks per action", func(t *testing.T) {
		b := duel(t,
			testutil.NewCombatant("Alpha", []string{"Water"}, []string{"Wait"}, testutil.WithAbility("Drizzle")),
			normal("Gamma", "Wait"),
			testutil.NeverRNG())

		require.True(t, b.Step())
		assert.Equal(t, model.WeatherState{Kind: model.WeatherRain, TurnsLeft: 3}, b.Weather())

		require.True(t, b.Step())
		assert.Equal(t, 1, b.Weather().TurnsLeft)

		require.True(t, b.Step())
		assert.Equal(t, model.WeatherNone, b.Weather().Kind)
		assert.Equal(t, 1, countEvents(b.Events(), EventWeatherEnd))
	})
}

func TestSwitchBeforeActing(t *testing.T) {
	b := newTestBattle(t,
		[]model.Combatant{
			testutil.NewCombatant("Torch", []string{"Fire"}, []string{"Ember"}, testutil.WithSpeed(50)),
			testutil.NewCombatant("Shell", []string{"Water"}, []string{"Tackle"}),
		},
		[]model.Combatant{testutil.NewCombatant("Wave", []string{"Water"}, []string{"Surf"})},
		testutil.NeverRNG(), Options{})

	require.True(t, b.Step())

	p, _ := b.Active(model.SidePlayer)
	assert.Equal(t, "Shell", p.Name)
	assert.Equal(t, 79, p.HP)
	assert.Equal(t, MaxHP, b.Roster(model.SidePlayer)[0].HP)
	assert.Equal(t, 1, countEvents(b.Events(), EventSwitch))
}

func TestSwitchInResetsStintKeepsStatus(t *testing.T) {
	b := newTestBattle(t,
		[]model.Combatant{normal("Alpha", "Tackle"), normal("Beta", "Tackle")},
		[]model.Combatant{normal("Gamma", "Tackle")},
		testutil.NeverRNG(), Options{})

	alpha := b.active[model.SidePlayer]
	alpha.stages[model.StatAtk] = 2
	alpha.stats.Atk = 50
	alpha.status.Burned = true
	alpha.activeTurns = 4
	alpha.entryPending = false

	b.sendIn(model.SidePlayer, b.rosters[model.SidePlayer][1], EventSwitch)
	b.sendIn(model.SidePlayer, alpha, EventSwitch)

	assert.Zero(t, alpha.stages[model.StatAtk])
	assert.Equal(t, 100, alpha.stats.Atk)
	assert.True(t, alpha.status.Burned)
	assert.Zero(t, alpha.activeTurns)
	assert.True(t, alpha.entryPending)
}

func randomRosters() ([]model.Combatant, []model.Combatant) {
	player := []model.Combatant{
		testutil.NewCombatant("Blastoise", []string{"Water"}, []string{"Surf", "Ice Beam", "Protect", "Toxic"}),
		testutil.NewCombatant("Jolteon", []string{"Electric"}, []string{"Thunderbolt", "Thunder Wave", "Bite", "Substitute"},
			testutil.WithSpeed(130), testutil.WithItem("Leftovers")),
		testutil.NewCombatant("Gengar", []string{"Ghost", "Poison"}, []string{"Shadow Ball", "Confuse Ray", "Hypnosis", "Thunderbolt"},
			testutil.WithSpeed(110), testutil.WithAbility("Levitate")),
	}
	enemy := []model.Combatant{
		testutil.NewCombatant("Gyarados", []string{"Water", "Flying"}, []string{"Earthquake", "Rain Dance", "Bite", "Swords Dance"},
			testutil.WithAbility("Intimidate")),
		testutil.NewCombatant("Charizard", []string{"Fire", "Flying"}, []string{"Flamethrower", "Sunny Day", "Earthquake", "Fake Out"},
			testutil.WithSpeed(105), testutil.WithItem("Focus Band")),
		testutil.NewCombatant("Snorlax", []string{"Normal"}, []string{"Body Slam", "Recover", "Return", "Headbutt"},
			testutil.WithSpeed(30), testutil.WithAbility("Guts")),
	}
	return player, enemy
}

func TestRandomBattlesKeepInvariants(t *testing.T) {
	player, enemy := randomRosters()

	for seed := uint64(1); seed <= 25; seed++ {
		b := newTestBattle(t, player, enemy, NewRNG(seed), Options{})

		check := func() {
			for _, side := range []model.Side{model.SidePlayer, model.SideEnemy} {
				for _, s := range b.Roster(side) {
					assert.GreaterOrEqual(t, s.HP, 0)
					assert.LessOrEqual(t, s.HP, MaxHP)
					for move, pp := range s.PP {
						assert.GreaterOrEqual(t, pp, 0, "%s %s", s.Name, move)
						assert.LessOrEqual(t, pp, MaxPP, "%s %s", s.Name, move)
					}
					if s.Status.ToxicCounter > 0 {
						assert.True(t, s.Status.Poisoned)
					}
				}
			}
			w := b.Weather()
			if w.Kind == model.WeatherNone {
				assert.Zero(t, w.TurnsLeft)
			} else {
				assert.Positive(t, w.TurnsLeft)
				assert.LessOrEqual(t, w.TurnsLeft, DefaultWeatherTurns)
			}
		}

		for b.Step() {
			check()
		}
		check()

		res := b.Result()
		assert.NotEqual(t, VerdictNone, res.Verdict, "seed %d", seed)
		assert.LessOrEqual(t, res.Turns, DefaultTurnCap)
		assert.True(t, b.Phase().IsTerminal())
	}
}

func TestSameSeedReplays(t *testing.T) {
	player, enemy := randomRosters()

	first := newTestBattle(t, player, enemy, NewRNG(42), Options{}).Run()
	second := newTestBattle(t, player, enemy, NewRNG(42), Options{}).Run()

	assert.Equal(t, first.Verdict, second.Verdict)
	assert.Equal(t, first.Turns, second.Turns)
	assert.Equal(t, first.Events, second.Events)
}

func TestOnEventReceivesEverything(t *testing.T) {
	var seen []Event
	b := newTestBattle(t,
		[]model.Combatant{normal("Alpha", "Tackle")},
		[]model.Combatant{normal("Gamma", "Wait")},
		testutil.NeverRNG(),
		Options{OnEvent: func(e Event) { seen = append(seen, e) }})

	res := b.Run()

	assert.Equal(t, res.Events, seen)
}

func TestParseVerdict(t *testing.T) {
	for _, v := range []Verdict{PlayerWins, EnemyWins, Draw} {
		assert.Equal(t, v, ParseVerdict(v.String()))
	}
	assert.Equal(t, VerdictNone, ParseVerdict("bogus"))
}
