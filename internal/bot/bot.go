package bot

import (
	"fmt"
	rand "math/rand/v2"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/lox/euchre/internal/game"
)

// Strategy names accepted by New
const (
	StrategyHeuristic = "heuristic"
	StrategyRandom    = "random"
)

// Strategies lists every strategy New can build
var Strategies = []string{StrategyHeuristic, StrategyRandom}

// Names is the pool automated players are named from
var Names = []string{"Cow", "Dog", "Cat", "Pig"}

// PickNames samples n distinct bot names
func PickNames(rng *rand.Rand, n int) []string {
	if n > len(Names) {
		n = len(Names)
	}
	names := append([]string(nil), Names...)
	rng.Shuffle(len(names), func(i, j int) {
		names[i], names[j] = names[j], names[i]
	})
	return names[:n]
}

// New builds the agent for strategy. The rng is only used by strategies
// that make random choices.
func New(strategy string, rng *rand.Rand, thresholds Thresholds, logger *log.Logger) (game.Agent, error) {
	switch strings.ToLower(strings.TrimSpace(strategy)) {
	case StrategyHeuristic, "":
		return NewHeuristic(thresholds, logger), nil
	case StrategyRandom:
		if rng == nil {
			return nil, fmt.Errorf("strategy %q needs a random source", strategy)
		}
		return NewRandBot(rng, logger), nil
	default:
		return nil, fmt.Errorf("unknown strategy %q (want one of %s)", strategy, strings.Join(Strategies, ", "))
	}
}

// ThinkingContext accumulates bot thoughts during decision making
type ThinkingContext struct {
	thoughts []string
}

// AddThought adds a thought to the thinking process
func (tc *ThinkingContext) AddThought(format string, args ...any) {
	tc.thoughts = append(tc.thoughts, fmt.Sprintf(format, args...))
}

// GetThoughts returns the complete stream of thoughts
func (tc *ThinkingContext) GetThoughts() string {
	if len(tc.thoughts) == 0 {
		return "No clear reasoning available"
	}
	return strings.Join(tc.thoughts, ". ")
}
