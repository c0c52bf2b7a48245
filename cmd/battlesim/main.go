package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/udisondev/battlesim/internal/ai"
	"github.com/udisondev/battlesim/internal/battle"
	"github.com/udisondev/battlesim/internal/config"
	"github.com/udisondev/battlesim/internal/data"
	"github.com/udisondev/battlesim/internal/db"
	"github.com/udisondev/battlesim/internal/model"
	"github.com/udisondev/battlesim/internal/roster"
	"github.com/udisondev/battlesim/internal/sim"
)

const ConfigPath = "config/battlesim.yaml"

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		slog.Info("shutting down", "signal", sig)
		cancel()
	}()

	if err := run(ctx); err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfgPath := ConfigPath
	if p := os.Getenv("BATTLESIM_CONFIG"); p != "" {
		cfgPath = p
	}
	cfg, err := config.LoadSimulator(cfgPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logLevel := parseLogLevel(cfg.LogLevel)
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	})))

	slog.Info("battlesim starting",
		"log_level", cfg.LogLevel,
		"battles", cfg.Battles,
		"workers", cfg.Workers,
		"seed", cfg.Seed)

	cat := data.Default()

	player, err := roster.Load(cfg.PlayerRoster, cat)
	if err != nil {
		return fmt.Errorf("loading player roster: %w", err)
	}
	enemy, err := roster.Load(cfg.EnemyRoster, cat)
	if err != nil {
		return fmt.Errorf("loading enemy roster: %w", err)
	}
	slog.Info("rosters loaded",
		"player", names(player),
		"player_score", ai.ScoreTeam(cat, player),
		"enemy", names(enemy),
		"enemy_score", ai.ScoreTeam(cat, enemy))

	battleOpts := battle.Options{
		TurnCap:      cfg.TurnCap,
		WeatherTurns: cfg.WeatherTurns,
	}
	runner := sim.NewRunner(cat, sim.RunOptions{
		Battles: cfg.Battles,
		Workers: cfg.Workers,
		Seed:    cfg.Seed,
		Battle:  battleOpts,
	})
	rep, err := runner.Run(ctx, player, enemy)
	if err != nil {
		return fmt.Errorf("running batch: %w", err)
	}

	slog.Info("batch complete",
		"run_id", rep.RunID,
		"battles", rep.Summary.Battles,
		"player_wins", rep.Summary.PlayerWins,
		"enemy_wins", rep.Summary.EnemyWins,
		"draws", rep.Summary.Draws,
		"player_win_rate", fmt.Sprintf("%.3f", rep.Summary.PlayerWinRate()),
		"avg_turns", fmt.Sprintf("%.1f", rep.Summary.AvgTurns),
		"duration", rep.Duration)

	if slog.Default().Enabled(ctx, slog.LevelDebug) {
		narrate(cat, player, enemy, cfg.Seed, battleOpts)
	}

	if !cfg.StoreResults {
		return nil
	}
	return store(ctx, cfg.Database.DSN(), rep)
}

// narrate replays the first battle of the batch and logs its events.
func narrate(cat *data.Catalog, player, enemy []model.Combatant, seed uint64, opts battle.Options) {
	opts.OnEvent = func(e battle.Event) {
		slog.Debug("event",
			"turn", e.Turn,
			"side", e.Side,
			"actor", e.Actor,
			"action", e.Action,
			"value", e.Value,
			"detail", e.Detail)
	}
	res := battle.New(cat, player, enemy, battle.NewRNG(seed), opts).Run()
	slog.Debug("replayed battle", "seed", seed, "verdict", res.Verdict, "turns", res.Turns)
}

func store(ctx context.Context, dsn string, rep *sim.Report) error {
	database, err := db.New(ctx, dsn)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	defer database.Close()
	slog.Info("database connected")

	if err := db.RunMigrations(ctx, dsn); err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}
	slog.Info("database migrations applied")

	if err := db.NewResultRepository(database.Pool()).SaveReport(ctx, rep); err != nil {
		return fmt.Errorf("saving report: %w", err)
	}
	slog.Info("report stored", "run_id", rep.RunID, "outcomes", len(rep.Outcomes))
	return nil
}

func names(cs []model.Combatant) []string {
	out := make([]string, 0, len(cs))
	for _, c := range cs {
		out = append(out, c.Name)
	}
	return out
}

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
