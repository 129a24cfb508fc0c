package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/euchre/euchre"
	"github.com/lox/euchre/internal/bot"
	"github.com/lox/euchre/internal/config"
	"github.com/lox/euchre/internal/randutil"
)

func TestExpandStrategies(t *testing.T) {
	t.Parallel()

	seats, err := expandStrategies([]string{"Random"})
	require.NoError(t, err)
	assert.Equal(t, [4]string{"random", "random", "random", "random"}, seats)

	seats, err = expandStrategies([]string{"heuristic", " random"})
	require.NoError(t, err)
	assert.Equal(t, [4]string{"heuristic", "random", "heuristic", "random"}, seats)

	seats, err = expandStrategies([]string{"random", "heuristic", "heuristic", "random"})
	require.NoError(t, err)
	assert.Equal(t, [4]string{"random", "heuristic", "heuristic", "random"}, seats)

	_, err = expandStrategies([]string{"random", "random", "random"})
	assert.ErrorContains(t, err, "expected 1, 2 or 4")
	_, err = expandStrategies([]string{"shark"})
	assert.ErrorContains(t, err, "unknown strategy")
}

func TestPlanSeatsDefaultTable(t *testing.T) {
	t.Parallel()

	plan := planSeats(config.Default(), "Ada", randutil.New(3))
	assert.Equal(t, 0, plan.Human)
	assert.Equal(t, "Ada", plan.Names[0])
	for seat := 1; seat < 4; seat++ {
		assert.Contains(t, bot.Names, plan.Names[seat])
		assert.Equal(t, bot.StrategyHeuristic, plan.Strategies[seat])
	}
	assert.NotEqual(t, plan.Names[1], plan.Names[2])
}

func TestPlanSeatsFromConfig(t *testing.T) {
	t.Parallel()

	cfg, err := config.Parse([]byte(`
seat "A" { strategy = "random" }
seat "B" {}
seat "C" { human = true }
seat "D" {}
`), "test.hcl")
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	plan := planSeats(cfg, "", randutil.New(1))
	assert.Equal(t, 2, plan.Human)
	assert.Equal(t, [4]string{"A", "B", "C", "D"}, plan.Names)
	assert.Equal(t, "random", plan.Strategies[0])
	assert.Equal(t, bot.StrategyHeuristic, plan.Strategies[1])

	cfg.Seats[2].Human = false
	cfg.Seats[2].Strategy = bot.StrategyHeuristic
	plan = planSeats(cfg, "Ada", randutil.New(1))
	assert.Equal(t, euchre.NoSeat, plan.Human)
	assert.Equal(t, "C", plan.Names[2], "a bots-only table ignores the player name")
}
