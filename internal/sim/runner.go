// Package sim runs batches of independent battles in parallel and
// aggregates their verdicts.
package sim

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/udisondev/battlesim/internal/battle"
	"github.com/udisondev/battlesim/internal/data"
	"github.com/udisondev/battlesim/internal/model"
)

// ErrNoBattles is returned when a batch is asked to run zero battles.
var ErrNoBattles = errors.New("batch has no battles")

// RunOptions configures a batch.
type RunOptions struct {
	Battles int
	Workers int
	// Seed of the first battle; battle i uses Seed+i.
	Seed   uint64
	Battle battle.Options
}

// Outcome is the result of one battle in a batch.
type Outcome struct {
	Index           int
	Seed            uint64
	Verdict         battle.Verdict
	Turns           int
	PlayerRemaining int
	EnemyRemaining  int
}

// Report is a finished batch.
type Report struct {
	RunID     uuid.UUID
	Seed      uint64
	StartedAt time.Time
	Duration  time.Duration
	Outcomes  []Outcome
	Summary   Summary
}

// Runner runs batches against a shared read-only catalog.
type Runner struct {
	cat  *data.Catalog
	opts RunOptions
}

// NewRunner creates a runner. Workers defaults to 1.
func NewRunner(cat *data.Catalog, opts RunOptions) *Runner {
	if opts.Workers <= 0 {
		opts.Workers = 1
	}
	return &Runner{cat: cat, opts: opts}
}

// Run plays opts.Battles battles between the two rosters, one battle per
// worker at a time. Each battle owns its state and RNG.
func (r *Runner) Run(ctx context.Context, player, enemy []model.Combatant) (*Report, error) {
	if r.opts.Battles <= 0 {
		return nil, ErrNoBattles
	}

	rep := &Report{
		RunID:     uuid.New(),
		Seed:      r.opts.Seed,
		StartedAt: time.Now(),
		Outcomes:  make([]Outcome, r.opts.Battles),
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.opts.Workers)

	for i := range r.opts.Battles {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			seed := r.opts.Seed + uint64(i)
			res := battle.New(r.cat, player, enemy, battle.NewRNG(seed), r.opts.Battle).Run()
			rep.Outcomes[i] = Outcome{
				Index:           i,
				Seed:            seed,
				Verdict:         res.Verdict,
				Turns:           res.Turns,
				PlayerRemaining: res.Remaining[model.SidePlayer],
				EnemyRemaining:  res.Remaining[model.SideEnemy],
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("running batch %s: %w", rep.RunID, err)
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("running batch %s: %w", rep.RunID, err)
	}

	rep.Duration = time.Since(rep.StartedAt)
	rep.Summary = Summarize(rep.Outcomes)

	slog.Debug("batch finished",
		"run_id", rep.RunID,
		"battles", rep.Summary.Battles,
		"player_wins", rep.Summary.PlayerWins,
		"enemy_wins", rep.Summary.EnemyWins,
		"draws", rep.Summary.Draws,
		"duration", rep.Duration)

	return rep, nil
}
