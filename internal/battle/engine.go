// Package battle runs one-on-one battles between two rosters: turn order,
// the per-action pipeline, damage and status resolution, fainting and
// replacement. A Battle is single-threaded and owns all of its state.
package battle

import (
	"log/slog"

	"github.com/looplab/fsm"

	"github.com/udisondev/battlesim/internal/ai"
	"github.com/udisondev/battlesim/internal/data"
	"github.com/udisondev/battlesim/internal/model"
)

// Defaults applied when Options leaves a field zero.
const (
	DefaultTurnCap      = 100
	DefaultWeatherTurns = 5
)

// Options tunes a battle.
type Options struct {
	TurnCap      int
	WeatherTurns int

	// OnEvent, if set, receives every event as it is emitted.
	OnEvent func(Event)
}

func (o Options) withDefaults() Options {
	if o.TurnCap <= 0 {
		o.TurnCap = DefaultTurnCap
	}
	if o.WeatherTurns <= 0 {
		o.WeatherTurns = DefaultWeatherTurns
	}
	return o
}

// Verdict is the final outcome of a battle.
type Verdict int

const (
	VerdictNone Verdict = iota
	PlayerWins
	EnemyWins
	Draw
)

func (v Verdict) String() string {
	switch v {
	case PlayerWins:
		return "player_wins"
	case EnemyWins:
		return "enemy_wins"
	case Draw:
		return "draw"
	default:
		return "none"
	}
}

// ParseVerdict is the inverse of Verdict.String.
func ParseVerdict(s string) Verdict {
	for _, v := range []Verdict{PlayerWins, EnemyWins, Draw} {
		if v.String() == s {
			return v
		}
	}
	return VerdictNone
}

// Result is what a finished battle reports.
type Result struct {
	Verdict Verdict
	Turns   int
	// Remaining is the number of living combatants per side.
	Remaining [2]int
	Events    []Event
}

// Battle is the state of one battle.
type Battle struct {
	cat  *data.Catalog
	rng  RNG
	opts Options

	rosters     [2][]*fighter
	active      [2]*fighter
	byCombatant map[*model.Combatant]*fighter
	weather     model.WeatherState
	turn        int
	turnsPlayed int

	phase   *fsm.FSM
	verdict Verdict
	events  []Event
}

// New sets up a battle with the first roster entry of each side active.
// The rosters are copied; the caller's combatants are never mutated.
func New(cat *data.Catalog, player, enemy []model.Combatant, rng RNG, opts Options) *Battle {
	b := &Battle{
		cat:         cat,
		rng:         rng,
		opts:        opts.withDefaults(),
		byCombatant: make(map[*model.Combatant]*fighter, len(player)+len(enemy)),
		turn:        1,
		phase:       newPhaseMachine(),
	}

	id := 0
	for side, roster := range [2][]model.Combatant{player, enemy} {
		for slot, c := range roster {
			f := newFighter(id, model.Side(side), slot, c)
			id++
			b.rosters[side] = append(b.rosters[side], f)
			b.byCombatant[f.c] = f
		}
	}

	for _, side := range []model.Side{model.SidePlayer, model.SideEnemy} {
		if len(b.rosters[side]) > 0 {
			b.sendIn(side, b.rosters[side][0], EventSendOut)
		}
	}

	slog.Debug("battle created",
		"player", len(player),
		"enemy", len(enemy),
		"turn_cap", b.opts.TurnCap)

	b.checkTerminal()
	return b
}

// Step plays one turn. It returns false once the battle is over.
func (b *Battle) Step() bool {
	if b.verdict != VerdictNone {
		return false
	}
	if b.turn > b.opts.TurnCap {
		b.finish(Draw, eventDraw)
		return false
	}

	b.playTurn()
	b.turnsPlayed = b.turn
	if b.verdict != VerdictNone {
		return false
	}

	if b.turn >= b.opts.TurnCap {
		b.finish(Draw, eventDraw)
		return false
	}
	b.turn++
	return true
}

// Run plays the battle to the end.
func (b *Battle) Run() Result {
	for b.Step() {
	}
	return b.Result()
}

// Result returns the outcome so far. Verdict is VerdictNone while ongoing.
func (b *Battle) Result() Result {
	return Result{
		Verdict:   b.verdict,
		Turns:     b.turnsPlayed,
		Remaining: [2]int{b.living(model.SidePlayer), b.living(model.SideEnemy)},
		Events:    append([]Event(nil), b.events...),
	}
}

// Events returns the narrative so far.
func (b *Battle) Events() []Event {
	return append([]Event(nil), b.events...)
}

func (b *Battle) playTurn() {
	for _, f := range b.active {
		if f != nil {
			f.protected = false
		}
	}

	// 1. Entry abilities of fresh actives.
	b.fireEntry(b.active[model.SidePlayer])
	b.fireEntry(b.active[model.SideEnemy])

	// 2. Switch decisions see the pre-switch matchup on both sides.
	var switches [2]*fighter
	for _, side := range []model.Side{model.SidePlayer, model.SideEnemy} {
		switches[side] = b.adviseSwitch(side)
	}
	for _, side := range []model.Side{model.SidePlayer, model.SideEnemy} {
		if switches[side] != nil {
			b.sendIn(side, switches[side], EventSwitch)
		}
	}
	b.fireEntry(b.active[model.SidePlayer])
	b.fireEntry(b.active[model.SideEnemy])

	// 3. Order by post-switch speed. Ties go to the enemy.
	first, second := model.SideEnemy, model.SidePlayer
	if b.speed(b.active[model.SidePlayer]) > b.speed(b.active[model.SideEnemy]) {
		first, second = model.SidePlayer, model.SideEnemy
	}

	// 4. Both choices are made before anyone acts.
	type choice struct {
		actor, target *fighter
		move          string
	}
	var plan []choice
	for _, side := range []model.Side{first, second} {
		actor, target := b.active[side], b.active[side.Opponent()]
		if actor == nil || target == nil {
			continue
		}
		move, _ := ai.ChooseMove(b.cat, actor.c, target.c, actor.usableMoves(), b.turn,
			float64(actor.hp)/MaxHP, b.statusOf)
		plan = append(plan, choice{actor: actor, target: target, move: move})
	}

	// 5. Actions in speed order, with a terminal check after each.
	for _, ch := range plan {
		b.act(ch.actor, ch.target, ch.move)
		if b.checkTerminal() {
			return
		}
	}
}

func (b *Battle) statusOf(c *model.Combatant) model.StatusRecord {
	if f, ok := b.byCombatant[c]; ok {
		return f.status
	}
	return model.StatusRecord{}
}

func (b *Battle) adviseSwitch(side model.Side) *fighter {
	cur, opp := b.active[side], b.active[side.Opponent()]
	if cur == nil || opp == nil || !cur.alive() {
		return nil
	}
	bench := make([]ai.BenchEntry, 0, len(b.rosters[side]))
	fighters := make([]*fighter, 0, len(b.rosters[side]))
	for _, f := range b.rosters[side] {
		if f == cur {
			continue
		}
		bench = append(bench, ai.BenchEntry{Combatant: f.c, HP: f.hp})
		fighters = append(fighters, f)
	}
	idx, ok := ai.ShouldSwitch(b.cat, ai.SwitchInput{
		Current:       cur.c,
		CurrentHP:     cur.hp,
		CurrentSpeed:  b.speed(cur),
		Opponent:      opp.c,
		OpponentSpeed: b.speed(opp),
		Bench:         bench,
	})
	if !ok || idx < 0 || idx >= len(fighters) {
		return nil
	}
	return fighters[idx]
}

// sendIn makes f the active fighter of side.
func (b *Battle) sendIn(side model.Side, f *fighter, kind EventKind) {
	if prev := b.active[side]; prev != nil && prev != f {
		prev.protected = false
		prev.subHP = 0
	}
	if !f.appeared {
		f.appeared = true
		f.status = model.StatusRecord{}
	}
	f.resetStint()
	b.active[side] = f
	b.emit(f, kind, f.hp, "")
}

// faint handles a fighter that dropped to 0 HP: replace it from the bench
// or mark its side eliminated.
func (b *Battle) faint(f *fighter) {
	if f == nil || f.alive() || b.active[f.side] != f {
		return
	}
	b.emit(f, EventFaint, 0, "")
	b.transition(eventFaint)

	next := b.firstLivingBench(f.side)
	if next == nil {
		b.active[f.side] = nil
		b.emit(f, EventEliminated, 0, f.side.String())
		return
	}
	b.sendIn(f.side, next, EventSwitch)
	b.transition(eventReplace)
}

// checkTerminal ends the battle when a side has no living combatant.
func (b *Battle) checkTerminal() bool {
	if b.verdict != VerdictNone {
		return true
	}
	playerOut := b.living(model.SidePlayer) == 0
	enemyOut := b.living(model.SideEnemy) == 0
	switch {
	case playerOut && enemyOut:
		b.finish(Draw, eventDraw)
	case enemyOut:
		b.finish(PlayerWins, eventPlayerWin)
	case playerOut:
		b.finish(EnemyWins, eventEnemyWin)
	default:
		return false
	}
	return true
}

func (b *Battle) finish(v Verdict, event string) {
	if b.verdict != VerdictNone {
		return
	}
	b.verdict = v
	b.transition(event)
	b.emit(nil, EventVerdict, 0, v.String())
	slog.Debug("battle finished", "verdict", v, "turn", b.turn)
}
