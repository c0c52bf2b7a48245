package db

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/battlesim/internal/battle"
	"github.com/udisondev/battlesim/internal/data"
	"github.com/udisondev/battlesim/internal/model"
	"github.com/udisondev/battlesim/internal/sim"
	"github.com/udisondev/battlesim/internal/testutil"
)

func catalog() *data.Catalog { return data.Default() }

func batchRosters() ([]model.Combatant, []model.Combatant) {
	player := []model.Combatant{
		testutil.NewCombatant("Blastoise", []string{"Water"}, []string{"Surf", "Ice Beam"}),
	}
	enemy := []model.Combatant{
		testutil.NewCombatant("Charizard", []string{"Fire", "Flying"}, []string{"Flamethrower", "Fake Out"}),
	}
	return player, enemy
}

func sampleReport() *sim.Report {
	outcomes := []sim.Outcome{
		{Index: 0, Seed: 10, Verdict: battle.PlayerWins, Turns: 12, PlayerRemaining: 2},
		{Index: 1, Seed: 11, Verdict: battle.EnemyWins, Turns: 8, EnemyRemaining: 1},
		{Index: 2, Seed: 12, Verdict: battle.Draw, Turns: 100, PlayerRemaining: 1, EnemyRemaining: 1},
	}
	return &sim.Report{
		RunID:     uuid.New(),
		Seed:      10,
		StartedAt: time.Now().UTC().Truncate(time.Millisecond),
		Duration:  1500 * time.Millisecond,
		Outcomes:  outcomes,
		Summary:   sim.Summarize(outcomes),
	}
}

func TestResultRepository_SaveAndLoad(t *testing.T) {
	pool := setupTestDB(t)
	repo := NewResultRepository(pool)
	ctx := context.Background()
	rep := sampleReport()

	require.NoError(t, repo.SaveReport(ctx, rep))

	summary, err := repo.LoadSummary(ctx, rep.RunID)
	require.NoError(t, err)
	assert.Equal(t, rep.Summary, summary)

	loaded, err := repo.LoadReport(ctx, rep.RunID)
	require.NoError(t, err)
	assert.Equal(t, rep.Seed, loaded.Seed)
	assert.Equal(t, rep.Duration, loaded.Duration)
	assert.True(t, rep.StartedAt.Equal(loaded.StartedAt))
	assert.Equal(t, rep.Outcomes, loaded.Outcomes)
}

func TestResultRepository_HugeSeedRoundTrips(t *testing.T) {
	pool := setupTestDB(t)
	repo := NewResultRepository(pool)
	ctx := context.Background()

	rep := sampleReport()
	rep.Seed = ^uint64(0)
	rep.Outcomes = rep.Outcomes[:1]
	rep.Outcomes[0].Seed = ^uint64(0)
	rep.Summary = sim.Summarize(rep.Outcomes)

	require.NoError(t, repo.SaveReport(ctx, rep))

	loaded, err := repo.LoadReport(ctx, rep.RunID)
	require.NoError(t, err)
	assert.Equal(t, rep.Seed, loaded.Seed)
	assert.Equal(t, rep.Outcomes[0].Seed, loaded.Outcomes[0].Seed)
}

func TestResultRepository_DuplicateRun(t *testing.T) {
	pool := setupTestDB(t)
	repo := NewResultRepository(pool)
	ctx := context.Background()
	rep := sampleReport()

	require.NoError(t, repo.SaveReport(ctx, rep))
	assert.Error(t, repo.SaveReport(ctx, rep))

	// The failed save rolled back and left the first copy intact.
	loaded, err := repo.LoadReport(ctx, rep.RunID)
	require.NoError(t, err)
	assert.Len(t, loaded.Outcomes, len(rep.Outcomes))
}

func TestResultRepository_NotFound(t *testing.T) {
	pool := setupTestDB(t)
	repo := NewResultRepository(pool)
	ctx := context.Background()
	missing := uuid.New()

	_, err := repo.LoadSummary(ctx, missing)
	assert.ErrorIs(t, err, ErrRunNotFound)

	_, err = repo.LoadReport(ctx, missing)
	assert.ErrorIs(t, err, ErrRunNotFound)

	assert.ErrorIs(t, repo.DeleteRun(ctx, missing), ErrRunNotFound)
}

func TestResultRepository_DeleteCascades(t *testing.T) {
	pool := setupTestDB(t)
	repo := NewResultRepository(pool)
	ctx := context.Background()
	rep := sampleReport()

	require.NoError(t, repo.SaveReport(ctx, rep))
	require.NoError(t, repo.DeleteRun(ctx, rep.RunID))

	var n int
	require.NoError(t, pool.QueryRow(ctx,
		`SELECT count(*) FROM battle_outcomes WHERE run_id = $1`, pgUUID(rep.RunID)).Scan(&n))
	assert.Zero(t, n)
}

func TestResultRepository_PersistsRealBatch(t *testing.T) {
	pool := setupTestDB(t)
	repo := NewResultRepository(pool)
	ctx := context.Background()

	player, enemy := batchRosters()
	rep, err := sim.NewRunner(catalog(), sim.RunOptions{Battles: 5, Workers: 2, Seed: 3}).Run(ctx, player, enemy)
	require.NoError(t, err)

	require.NoError(t, repo.SaveReport(ctx, rep))

	summary, err := repo.LoadSummary(ctx, rep.RunID)
	require.NoError(t, err)
	assert.Equal(t, rep.Summary.Battles, summary.Battles)
	assert.InDelta(t, rep.Summary.AvgTurns, summary.AvgTurns, 1e-9)
}

func TestRunMigrationsPool_Idempotent(t *testing.T) {
	pool := setupTestDB(t)
	ctx := context.Background()

	require.NoError(t, RunMigrationsPool(ctx, pool))
	require.NoError(t, RunMigrationsPool(ctx, pool))

	var exists bool
	require.NoError(t, pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM information_schema.tables WHERE table_name = 'battle_outcomes')`).Scan(&exists))
	assert.True(t, exists)
}
