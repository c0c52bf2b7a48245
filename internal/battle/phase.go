package battle

import (
	"context"
	"log/slog"

	"github.com/looplab/fsm"
)

// Phase is the state of the battle machine.
type Phase string

const (
	PhaseOngoing      Phase = "ongoing"
	PhaseFaintPending Phase = "fainted_pending_replacement"
	PhasePlayerWon    Phase = "player_won"
	PhaseEnemyWon     Phase = "enemy_won"
	PhaseDraw         Phase = "draw"
)

const (
	eventFaint     = "faint"
	eventReplace   = "replace"
	eventPlayerWin = "player_win"
	eventEnemyWin  = "enemy_win"
	eventDraw      = "draw"
)

func newPhaseMachine() *fsm.FSM {
	live := []string{string(PhaseOngoing), string(PhaseFaintPending)}
	return fsm.NewFSM(
		string(PhaseOngoing),
		fsm.Events{
			{Name: eventFaint, Src: []string{string(PhaseOngoing)}, Dst: string(PhaseFaintPending)},
			{Name: eventReplace, Src: []string{string(PhaseFaintPending)}, Dst: string(PhaseOngoing)},
			{Name: eventPlayerWin, Src: live, Dst: string(PhasePlayerWon)},
			{Name: eventEnemyWin, Src: live, Dst: string(PhaseEnemyWon)},
			{Name: eventDraw, Src: live, Dst: string(PhaseDraw)},
		},
		fsm.Callbacks{
			"enter_state": func(_ context.Context, e *fsm.Event) {
				slog.Debug("battle phase changed", "from", e.Src, "to", e.Dst)
			},
		},
	)
}

// transition fires a phase event if the current phase allows it.
func (b *Battle) transition(event string) {
	if !b.phase.Can(event) {
		return
	}
	if err := b.phase.Event(context.Background(), event); err != nil {
		slog.Debug("battle phase transition rejected", "event", event, "err", err)
	}
}

// Phase returns the current phase.
func (b *Battle) Phase() Phase {
	return Phase(b.phase.Current())
}

// IsTerminal reports whether the phase ends the battle.
func (p Phase) IsTerminal() bool {
	return p == PhasePlayerWon || p == PhaseEnemyWon || p == PhaseDraw
}
