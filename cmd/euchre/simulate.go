package main

import (
	"fmt"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/lox/euchre/internal/bot"
	"github.com/lox/euchre/internal/config"
	"github.com/lox/euchre/internal/game"
	"github.com/lox/euchre/internal/randutil"
	"github.com/lox/euchre/internal/simulator"
	"github.com/lox/euchre/internal/statistics"
)

type SimulateCmd struct {
	Games    int      `short:"n" default:"1000" help:"Number of games to play"`
	Seed     int64    `help:"Base seed; game i uses seed+i (0 picks one)"`
	Parallel int      `short:"p" help:"Games to run at once (0 uses every CPU)"`
	Strategy []string `short:"s" default:"heuristic" sep:"," help:"Bot strategies: one for every seat, one per team, or one per seat"`
	Config   string   `short:"c" default:"euchre.hcl" type:"path" help:"Read bot thresholds and winning score from this file"`
	Out      string   `short:"o" help:"Write a JSON report to this file"`
	Debug    bool     `help:"Log every game"`
}

// expandStrategies spreads one, two (per team) or four (per seat) names
// across the table.
func expandStrategies(names []string) ([game.NumSeats]string, error) {
	var seats [game.NumSeats]string
	for i, n := range names {
		names[i] = strings.ToLower(strings.TrimSpace(n))
		if !slices.Contains(bot.Strategies, names[i]) {
			return seats, fmt.Errorf("unknown strategy %q (want one of %s)", n, strings.Join(bot.Strategies, ", "))
		}
	}

	switch len(names) {
	case 1:
		for seat := range seats {
			seats[seat] = names[0]
		}
	case game.NumTeams:
		for seat := range seats {
			seats[seat] = names[game.TeamOf(seat)]
		}
	case game.NumSeats:
		copy(seats[:], names)
	default:
		return seats, fmt.Errorf("expected 1, %d or %d strategies, got %d", game.NumTeams, game.NumSeats, len(names))
	}
	return seats, nil
}

func (c *SimulateCmd) Run() error {
	logger := setupConsoleLogger(c.Debug)
	ctx, cancel := setupSignalHandler(logger)
	defer cancel()

	strategies, err := expandStrategies(c.Strategy)
	if err != nil {
		return err
	}
	cfg, err := config.Load(c.Config)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	seed := randutil.Seed(c.Seed)
	step := max(1, c.Games/20)
	start := time.Now()

	simLogger := logger
	if !c.Debug {
		simLogger = nil
	}
	stats, err := simulator.Run(ctx, simulator.Config{
		Games:        c.Games,
		Seed:         seed,
		Parallelism:  c.Parallel,
		Strategies:   strategies,
		Thresholds:   cfg.Thresholds(),
		WinningScore: cfg.Game.WinningScore,
		Logger:       simLogger,
		Progress: func(done, total int) {
			if done%step == 0 || done == total {
				fmt.Fprintf(os.Stderr, "\rSimulated %d/%d games", done, total)
			}
		},
	})
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return fmt.Errorf("simulation failed: %w", err)
	}
	logger.Info("Simulation complete", "games", stats.Games, "seed", seed, "elapsed", time.Since(start).Round(time.Millisecond))

	simulator.PrintSummary(os.Stdout, stats, strategies)

	if c.Out != "" {
		if err := statistics.NewReport(stats, strategies, seed).WriteFile(c.Out); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
		logger.Info("Report written", "path", c.Out)
	}
	return nil
}
