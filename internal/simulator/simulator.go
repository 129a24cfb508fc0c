package simulator

import (
	"context"
	"fmt"
	"io"
	"runtime"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/lox/euchre/internal/bot"
	"github.com/lox/euchre/internal/game"
	"github.com/lox/euchre/internal/randutil"
	"github.com/lox/euchre/internal/statistics"
)

// Config holds configuration for running simulations
type Config struct {
	Games        int
	Seed         int64
	Parallelism  int                   // Concurrent games; 0 means GOMAXPROCS
	Strategies   [game.NumSeats]string // Strategy per seat; empty means heuristic
	Thresholds   bot.Thresholds
	WinningScore int
	Logger       *log.Logger

	// Progress, when set, is called after each game with the number done
	Progress func(done, total int)
}

// Simulator plays independent bot-only games
type Simulator struct {
	config Config
}

// New creates a new simulator with the given configuration
func New(config Config) *Simulator {
	if config.Logger == nil {
		config.Logger = log.New(io.Discard)
	}
	if config.Parallelism <= 0 {
		config.Parallelism = runtime.GOMAXPROCS(0)
	}
	if config.WinningScore <= 0 {
		config.WinningScore = game.WinningScore
	}
	for i, s := range config.Strategies {
		if s == "" {
			config.Strategies[i] = bot.StrategyHeuristic
		}
	}
	return &Simulator{config: config}
}

// Run plays every game and aggregates the results. Game i is seeded with
// Seed+i so any single game can be replayed. Each game owns its own
// engine, agents and random sources.
func (s *Simulator) Run(ctx context.Context) (*statistics.Statistics, error) {
	if s.config.Games <= 0 {
		return nil, fmt.Errorf("invalid games count: %d", s.config.Games)
	}

	results := make([]*game.GameResult, s.config.Games)
	var (
		mu   sync.Mutex
		done int
	)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.config.Parallelism)
	for i := range s.config.Games {
		g.Go(func() error {
			result, err := s.PlayGame(ctx, i)
			if err != nil {
				return err
			}
			results[i] = result

			if s.config.Progress != nil {
				mu.Lock()
				done++
				s.config.Progress(done, s.config.Games)
				mu.Unlock()
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	stats := &statistics.Statistics{}
	for _, r := range results {
		stats.Add(r)
	}
	if err := stats.Validate(); err != nil {
		return nil, fmt.Errorf("statistics validation failed: %w", err)
	}
	return stats, nil
}

// PlayGame plays game i of the batch
func (s *Simulator) PlayGame(ctx context.Context, i int) (*game.GameResult, error) {
	seed := s.config.Seed + int64(i)

	var agents [game.NumSeats]game.Agent
	for seat, strategy := range s.config.Strategies {
		rng := randutil.New(randutil.Derive(seed, seat+1))
		agent, err := bot.New(strategy, rng, s.config.Thresholds, s.config.Logger)
		if err != nil {
			return nil, fmt.Errorf("seat %d: %w", seat, err)
		}
		agents[seat] = agent
	}

	var names [game.NumSeats]string
	copy(names[:], bot.Names)
	g := game.NewGame(randutil.New(seed), names,
		game.WithWinningScore(s.config.WinningScore),
		game.WithID(fmt.Sprintf("sim-%d", seed)))
	engine := game.NewGameEngine(g, agents, s.config.Logger)

	result, err := engine.PlayGame(ctx)
	if err != nil {
		return nil, fmt.Errorf("game %d (seed %d): %w", i, seed, err)
	}
	return result, nil
}

// Run is a convenience function for running a simulation
func Run(ctx context.Context, config Config) (*statistics.Statistics, error) {
	return New(config).Run(ctx)
}

// PrintSummary prints a summary of simulation results
func PrintSummary(w io.Writer, stats *statistics.Statistics, strategies [game.NumSeats]string) {
	low, high := stats.ConfidenceInterval95()

	fmt.Fprintf(w, "\n=== FINAL RESULTS (%s) ===\n", strings.Join(strategies[:], " / "))
	fmt.Fprintf(w, "Games played: %d (%d hands, %d redeals)\n", stats.Games, stats.Hands, stats.Redeals)

	fmt.Fprintf(w, "\n=== TEAMS ===\n")
	for team := range game.NumTeams {
		t := stats.Teams[team]
		fmt.Fprintf(w, "%s (seats %d & %d, %s/%s): %d wins (%.1f%%), %d points\n",
			game.DefaultTeamNames[team], team, team+2, strategies[team], strategies[team+2],
			t.Wins, stats.WinRate(team)*100, t.Points)
		fmt.Fprintf(w, "  named trump %d times, scored %.1f%%, %d marches, %d alone, euchred opponents %d times\n",
			t.Made, stats.MakerSuccessRate(team)*100, t.Marches, t.LoneTries, t.Euchred)
	}

	fmt.Fprintf(w, "\n=== MARGIN (%s minus %s) ===\n", game.DefaultTeamNames[0], game.DefaultTeamNames[1])
	fmt.Fprintf(w, "Mean: %.3f points/game\n", stats.Mean())
	fmt.Fprintf(w, "Median: %.3f\n", stats.Median())
	fmt.Fprintf(w, "Std Dev: %.3f\n", stats.StdDev())
	fmt.Fprintf(w, "95%% CI: [%.3f, %.3f]\n", low, high)
	fmt.Fprintf(w, "Hand outcomes: %d euchres, %d marches, %d lone marches\n", stats.Euchres, stats.Marches, stats.LoneMarches)
}
