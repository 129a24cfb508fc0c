// Package config loads the HCL file describing a table: who sits where,
// how the bots bid and how the terminal renders the game.
//
//	game {
//	  winning_score = 10
//	  team_names    = ["Red", "Black"]
//	}
//
//	seat "You" { human = true }
//	seat "Cow" { strategy = "heuristic" }
//	seat "Dog" { strategy = "heuristic" }
//	seat "Cat" { strategy = "random" }
//
//	bot {
//	  order_threshold = 75
//	  alone_threshold = 83
//	  call_count      = 3
//	  delay           = "600ms"
//	}
//
//	ui {
//	  color     = "auto"
//	  log_level = "info"
//	  log_file  = "euchre.log"
//	}
package config

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/lox/euchre/internal/bot"
	"github.com/lox/euchre/internal/game"
)

// DefaultFilename is looked for in the working directory
const DefaultFilename = "euchre.hcl"

// Config represents the complete table configuration
type Config struct {
	Game  *GameSettings `hcl:"game,block"`
	Seats []SeatConfig  `hcl:"seat,block"`
	Bot   *BotSettings  `hcl:"bot,block"`
	UI    *UISettings   `hcl:"ui,block"`
}

// GameSettings contains game-level rules
type GameSettings struct {
	WinningScore int      `hcl:"winning_score,optional"`
	Dealer       int      `hcl:"dealer,optional"`
	TeamNames    []string `hcl:"team_names,optional"`
	Seed         int64    `hcl:"seed,optional"`
}

// SeatConfig describes one seat, in clockwise order from seat 0
type SeatConfig struct {
	Name     string `hcl:"name,label"`
	Human    bool   `hcl:"human,optional"`
	Strategy string `hcl:"strategy,optional"`
}

// BotSettings tunes the automated players
type BotSettings struct {
	OrderThreshold int    `hcl:"order_threshold,optional"`
	AloneThreshold int    `hcl:"alone_threshold,optional"`
	CallCount      int    `hcl:"call_count,optional"`
	Delay          string `hcl:"delay,optional"`
}

// UISettings controls terminal output
type UISettings struct {
	Color         string `hcl:"color,optional"`
	ShowReasoning bool   `hcl:"show_reasoning,optional"`
	LogLevel      string `hcl:"log_level,optional"`
	LogFile       string `hcl:"log_file,optional"`
}

// Color profiles accepted by ui.color
var ColorProfiles = []string{"auto", "ascii", "ansi", "ansi256", "truecolor"}

// Default returns default configuration. Seats are left empty so the
// caller can name the bots.
func Default() *Config {
	return &Config{
		Game: &GameSettings{
			WinningScore: game.WinningScore,
			TeamNames:    slices.Clone(game.DefaultTeamNames[:]),
		},
		Bot: &BotSettings{
			OrderThreshold: bot.DefaultThresholds.Order,
			AloneThreshold: bot.DefaultThresholds.Alone,
			CallCount:      bot.DefaultThresholds.CallCount,
			Delay:          "600ms",
		},
		UI: &UISettings{
			Color:    "auto",
			LogLevel: "info",
			LogFile:  "euchre.log",
		},
	}
}

// Load loads configuration from an HCL file. A missing file yields the
// defaults.
func Load(filename string) (*Config, error) {
	src, err := os.ReadFile(filename)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	return Parse(src, filename)
}

// Parse decodes HCL source and fills in defaults for anything omitted
func Parse(src []byte, filename string) (*Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var cfg Config
	diags = gohcl.DecodeBody(file.Body, nil, &cfg)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	cfg.applyDefaults()
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	def := Default()
	if c.Game == nil {
		c.Game = def.Game
	}
	if c.Game.WinningScore == 0 {
		c.Game.WinningScore = def.Game.WinningScore
	}
	if len(c.Game.TeamNames) == 0 {
		c.Game.TeamNames = def.Game.TeamNames
	}

	if c.Bot == nil {
		c.Bot = def.Bot
	}
	if c.Bot.OrderThreshold == 0 {
		c.Bot.OrderThreshold = def.Bot.OrderThreshold
	}
	if c.Bot.AloneThreshold == 0 {
		c.Bot.AloneThreshold = def.Bot.AloneThreshold
	}
	if c.Bot.CallCount == 0 {
		c.Bot.CallCount = def.Bot.CallCount
	}
	if c.Bot.Delay == "" {
		c.Bot.Delay = def.Bot.Delay
	}

	if c.UI == nil {
		c.UI = def.UI
	}
	if c.UI.Color == "" {
		c.UI.Color = def.UI.Color
	}
	if c.UI.LogLevel == "" {
		c.UI.LogLevel = def.UI.LogLevel
	}
	if c.UI.LogFile == "" {
		c.UI.LogFile = def.UI.LogFile
	}

	for i := range c.Seats {
		if !c.Seats[i].Human && c.Seats[i].Strategy == "" {
			c.Seats[i].Strategy = bot.StrategyHeuristic
		}
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Game.WinningScore < 1 {
		return fmt.Errorf("winning score must be positive: %d", c.Game.WinningScore)
	}
	if c.Game.Dealer < 0 || c.Game.Dealer >= game.NumSeats {
		return fmt.Errorf("dealer must be a seat between 0 and %d: %d", game.NumSeats-1, c.Game.Dealer)
	}
	if len(c.Game.TeamNames) != game.NumTeams {
		return fmt.Errorf("team_names needs exactly %d names, got %d", game.NumTeams, len(c.Game.TeamNames))
	}

	if len(c.Seats) != 0 && len(c.Seats) != game.NumSeats {
		return fmt.Errorf("configure all %d seats or none, got %d", game.NumSeats, len(c.Seats))
	}
	humans := 0
	seen := map[string]bool{}
	for _, s := range c.Seats {
		if seen[s.Name] {
			return fmt.Errorf("seat %q: duplicate name", s.Name)
		}
		seen[s.Name] = true
		if s.Human {
			humans++
			continue
		}
		if !slices.Contains(bot.Strategies, strings.ToLower(s.Strategy)) {
			return fmt.Errorf("seat %q: invalid strategy %s", s.Name, s.Strategy)
		}
	}
	if humans > 1 {
		return fmt.Errorf("at most one human seat is supported, got %d", humans)
	}

	if c.Bot.OrderThreshold < 0 || c.Bot.AloneThreshold < 0 {
		return errors.New("bot thresholds must not be negative")
	}
	if c.Bot.CallCount < 1 || c.Bot.CallCount > game.HandSize {
		return fmt.Errorf("bot call_count must be between 1 and %d: %d", game.HandSize, c.Bot.CallCount)
	}
	if _, err := c.ThinkingDelay(); err != nil {
		return err
	}

	if !slices.Contains(ColorProfiles, c.UI.Color) {
		return fmt.Errorf("invalid ui color %q (want one of %s)", c.UI.Color, strings.Join(ColorProfiles, ", "))
	}
	return nil
}

// ThinkingDelay parses the pause shown before each bot decision
func (c *Config) ThinkingDelay() (time.Duration, error) {
	d, err := time.ParseDuration(c.Bot.Delay)
	if err != nil {
		return 0, fmt.Errorf("invalid bot delay %q: %w", c.Bot.Delay, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("bot delay must not be negative: %s", d)
	}
	return d, nil
}

// Thresholds returns the heuristic bidding thresholds
func (c *Config) Thresholds() bot.Thresholds {
	return bot.Thresholds{
		Order:     c.Bot.OrderThreshold,
		Alone:     c.Bot.AloneThreshold,
		CallCount: c.Bot.CallCount,
	}
}

// TeamNames returns the configured team names as a fixed array
func (c *Config) TeamNames() [game.NumTeams]string {
	var names [game.NumTeams]string
	copy(names[:], c.Game.TeamNames)
	return names
}

// HumanSeat returns the seat index of the human player, or -1
func (c *Config) HumanSeat() int {
	for i, s := range c.Seats {
		if s.Human {
			return i
		}
	}
	return -1
}
