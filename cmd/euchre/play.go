package main

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"os"

	"github.com/lox/euchre/euchre"
	"github.com/lox/euchre/internal/bot"
	"github.com/lox/euchre/internal/config"
	"github.com/lox/euchre/internal/display"
	"github.com/lox/euchre/internal/game"
	"github.com/lox/euchre/internal/randutil"
)

type PlayCmd struct {
	Config  string `short:"c" default:"euchre.hcl" type:"path" help:"Table configuration file (missing file uses defaults)"`
	Seed    int64  `help:"Seed for the shuffle and random bots (0 picks one)"`
	Name    string `short:"n" help:"Your name at the table"`
	Delay   string `help:"Pause after each bot decision, e.g. 300ms"`
	LogFile string `help:"Write logs to this file"`
}

// seatPlan is who sits where for an interactive game
type seatPlan struct {
	Names      [game.NumSeats]string
	Strategies [game.NumSeats]string
	Human      int
}

// planSeats fills the table from the config. With no seats configured the
// player takes seat 0 opposite three heuristic bots.
func planSeats(cfg *config.Config, name string, rng *rand.Rand) seatPlan {
	plan := seatPlan{Human: euchre.NoSeat}

	if len(cfg.Seats) == 0 {
		plan.Human = 0
		plan.Names[0] = "You"
		for i, n := range bot.PickNames(rng, game.NumSeats-1) {
			plan.Names[i+1] = n
			plan.Strategies[i+1] = bot.StrategyHeuristic
		}
	} else {
		for i, s := range cfg.Seats {
			plan.Names[i] = s.Name
			plan.Strategies[i] = s.Strategy
			if s.Human {
				plan.Human = i
			}
		}
	}

	if name != "" && plan.Human != euchre.NoSeat {
		plan.Names[plan.Human] = name
	}
	return plan
}

func (c *PlayCmd) loadConfig() (*config.Config, error) {
	cfg, err := config.Load(c.Config)
	if err != nil {
		return nil, err
	}
	if c.Seed != 0 {
		cfg.Game.Seed = c.Seed
	}
	if c.Delay != "" {
		cfg.Bot.Delay = c.Delay
	}
	if c.LogFile != "" {
		cfg.UI.LogFile = c.LogFile
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func (c *PlayCmd) Run() error {
	cfg, err := c.loadConfig()
	if err != nil {
		return err
	}

	logger, closer, err := setupLogger(cfg.UI.LogFile, cfg.UI.LogLevel)
	if err != nil {
		return err
	}
	defer closer.Close()

	ctx, cancel := setupSignalHandler(logger)
	defer cancel()

	seed := randutil.Seed(cfg.Game.Seed)
	rng := randutil.New(seed)
	plan := planSeats(cfg, c.Name, rng)
	delay, err := cfg.ThinkingDelay()
	if err != nil {
		return err
	}
	logger.Info("Starting interactive game", "seed", seed, "players", plan.Names, "human", plan.Human)

	styles := display.NewStyles(os.Stdout, cfg.UI.Color)
	formatter := display.NewEventFormatter(display.FormattingOptions{
		ShowReasoning: cfg.UI.ShowReasoning,
		Perspective:   plan.Human,
		TeamNames:     cfg.TeamNames(),
	}, styles)

	var agents [game.NumSeats]game.Agent
	for seat := range game.NumSeats {
		if seat == plan.Human {
			prompter := display.NewTerminalPrompter(os.Stdin, os.Stdout, formatter, styles, logger,
				display.WithQuitHandler(cancel))
			agents[seat] = game.NewHumanAgent(prompter, logger)
			continue
		}
		agent, err := bot.New(plan.Strategies[seat], randutil.New(randutil.Derive(seed, seat+1)), cfg.Thresholds(), logger)
		if err != nil {
			return fmt.Errorf("seat %d: %w", seat, err)
		}
		agents[seat] = agent
	}

	g := game.NewGame(rng, plan.Names,
		game.WithWinningScore(cfg.Game.WinningScore),
		game.WithDealer(cfg.Game.Dealer),
		game.WithTeamNames(cfg.TeamNames()))
	engine := game.NewGameEngine(g, agents, logger)
	engine.GetEventBus().Subscribe(display.NewRenderer(os.Stdout, formatter, logger,
		display.WithDelay(delay),
		display.WithHumanSeat(plan.Human)))

	fmt.Println(styles.Banner.Render(display.Banner()))

	result, err := engine.PlayGame(ctx)
	if errors.Is(err, context.Canceled) {
		logger.Info("Game abandoned", "hands", len(result.Hands), "scores", result.Scores)
		fmt.Println("\nThanks for playing!")
		return nil
	}
	if err != nil {
		return fmt.Errorf("game failed: %w", err)
	}
	logger.Info("Game finished", "winner", result.Winner, "scores", result.Scores, "hands", len(result.Hands))
	return nil
}
