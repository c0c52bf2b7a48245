package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/udisondev/battlesim/internal/battle"
	"github.com/udisondev/battlesim/internal/sim"
)

// ErrRunNotFound is returned when no batch run has the requested id.
var ErrRunNotFound = errors.New("battle run not found")

// ResultRepository persists batch reports.
type ResultRepository struct {
	pool *pgxpool.Pool
}

// NewResultRepository creates a new result repository.
func NewResultRepository(pool *pgxpool.Pool) *ResultRepository {
	return &ResultRepository{pool: pool}
}

func pgUUID(id uuid.UUID) pgtype.UUID {
	return pgtype.UUID{Bytes: id, Valid: true}
}

// SaveReport stores the run summary and every outcome in one transaction.
func (r *ResultRepository) SaveReport(ctx context.Context, rep *sim.Report) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	s := rep.Summary
	if _, err := tx.Exec(ctx,
		`INSERT INTO battle_runs
		   (run_id, seed, battles, player_wins, enemy_wins, draws, avg_turns, started_at, duration_ms)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		pgUUID(rep.RunID), int64(rep.Seed), s.Battles, s.PlayerWins, s.EnemyWins, s.Draws,
		s.AvgTurns, rep.StartedAt, rep.Duration.Milliseconds(),
	); err != nil {
		return fmt.Errorf("inserting run %s: %w", rep.RunID, err)
	}

	if len(rep.Outcomes) > 0 {
		rows := make([][]any, 0, len(rep.Outcomes))
		for _, o := range rep.Outcomes {
			rows = append(rows, []any{
				pgUUID(rep.RunID), o.Index, int64(o.Seed), o.Verdict.String(),
				o.Turns, o.PlayerRemaining, o.EnemyRemaining,
			})
		}
		if _, err := tx.CopyFrom(ctx,
			pgx.Identifier{"battle_outcomes"},
			[]string{"run_id", "battle_index", "seed", "verdict", "turns", "player_remaining", "enemy_remaining"},
			pgx.CopyFromRows(rows),
		); err != nil {
			return fmt.Errorf("inserting outcomes for run %s: %w", rep.RunID, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// LoadSummary returns the stored summary of a run.
func (r *ResultRepository) LoadSummary(ctx context.Context, runID uuid.UUID) (sim.Summary, error) {
	var s sim.Summary
	err := r.pool.QueryRow(ctx,
		`SELECT battles, player_wins, enemy_wins, draws, avg_turns
		 FROM battle_runs WHERE run_id = $1`,
		pgUUID(runID),
	).Scan(&s.Battles, &s.PlayerWins, &s.EnemyWins, &s.Draws, &s.AvgTurns)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return s, fmt.Errorf("loading summary %s: %w", runID, ErrRunNotFound)
		}
		return s, fmt.Errorf("loading summary %s: %w", runID, err)
	}
	return s, nil
}

// LoadReport returns a stored run with its outcomes in battle order.
func (r *ResultRepository) LoadReport(ctx context.Context, runID uuid.UUID) (*sim.Report, error) {
	rep := &sim.Report{RunID: runID}
	var (
		seed       int64
		durationMS int64
	)
	err := r.pool.QueryRow(ctx,
		`SELECT seed, battles, player_wins, enemy_wins, draws, avg_turns, started_at, duration_ms
		 FROM battle_runs WHERE run_id = $1`,
		pgUUID(runID),
	).Scan(&seed, &rep.Summary.Battles, &rep.Summary.PlayerWins, &rep.Summary.EnemyWins,
		&rep.Summary.Draws, &rep.Summary.AvgTurns, &rep.StartedAt, &durationMS)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("loading run %s: %w", runID, ErrRunNotFound)
		}
		return nil, fmt.Errorf("loading run %s: %w", runID, err)
	}
	rep.Seed = uint64(seed)
	rep.Duration = time.Duration(durationMS) * time.Millisecond

	rows, err := r.pool.Query(ctx,
		`SELECT battle_index, seed, verdict, turns, player_remaining, enemy_remaining
		 FROM battle_outcomes WHERE run_id = $1
		 ORDER BY battle_index`,
		pgUUID(runID),
	)
	if err != nil {
		return nil, fmt.Errorf("loading outcomes for run %s: %w", runID, err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			o       sim.Outcome
			oSeed   int64
			verdict string
		)
		if err := rows.Scan(&o.Index, &oSeed, &verdict, &o.Turns, &o.PlayerRemaining, &o.EnemyRemaining); err != nil {
			return nil, fmt.Errorf("scanning outcome for run %s: %w", runID, err)
		}
		o.Seed = uint64(oSeed)
		o.Verdict = battle.ParseVerdict(verdict)
		rep.Outcomes = append(rep.Outcomes, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating outcomes for run %s: %w", runID, err)
	}
	return rep, nil
}

// DeleteRun removes a run and its outcomes.
func (r *ResultRepository) DeleteRun(ctx context.Context, runID uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM battle_runs WHERE run_id = $1`, pgUUID(runID))
	if err != nil {
		return fmt.Errorf("deleting run %s: %w", runID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("deleting run %s: %w", runID, ErrRunNotFound)
	}
	return nil
}
