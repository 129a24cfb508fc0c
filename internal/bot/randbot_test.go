package bot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/euchre/euchre"
	"github.com/lox/euchre/internal/game"
	"github.com/lox/euchre/internal/randutil"
)

func TestRandBotNeverCallsTurnedDownSuit(t *testing.T) {
	t.Parallel()
	r := NewRandBot(randutil.New(1), quietLogger())
	state := game.TableState{Hand: cards("JhAhKhQh9s"), Revealed: euchre.MustParseCard("Th")}

	calls := 0
	for range 200 {
		d := r.DecideCall(state)
		if d.Action == game.Call {
			calls++
			assert.NotEqual(t, euchre.Hearts, d.Suit)
			assert.True(t, d.Suit.Valid())
		}
	}
	assert.Positive(t, calls)
}

func TestRandBotPlaysLegalCards(t *testing.T) {
	t.Parallel()
	r := NewRandBot(randutil.New(2), quietLogger())
	state := game.TableState{Hand: cards("9sTsJhAdKc"), Trump: hearts()}
	legal := cards("9sTs")

	for range 50 {
		assert.Contains(t, legal, r.ChooseCard(state, legal))
		assert.Contains(t, state.Hand, r.DecideDiscard(state))
	}
}

func TestRandBotDeterministic(t *testing.T) {
	t.Parallel()
	state := game.TableState{Hand: cards("9sTsJhAdKc"), Revealed: euchre.MustParseCard("Qd")}

	run := func() []game.Decision {
		r := NewRandBot(randutil.New(9), quietLogger())
		var out []game.Decision
		for range 20 {
			out = append(out, r.DecideOrder(state), r.DecideCall(state))
		}
		return out
	}
	assert.Equal(t, run(), run())
}

func TestNew(t *testing.T) {
	t.Parallel()

	a, err := New("heuristic", nil, DefaultThresholds, quietLogger())
	require.NoError(t, err)
	assert.IsType(t, &Heuristic{}, a)

	a, err = New(" Random ", randutil.New(1), DefaultThresholds, quietLogger())
	require.NoError(t, err)
	assert.IsType(t, &RandBot{}, a)

	_, err = New("random", nil, DefaultThresholds, quietLogger())
	assert.Error(t, err)

	_, err = New("shark", nil, DefaultThresholds, quietLogger())
	assert.ErrorContains(t, err, "unknown strategy")
}

func TestPickNames(t *testing.T) {
	t.Parallel()
	names := PickNames(randutil.New(3), 3)
	require.Len(t, names, 3)
	for _, n := range names {
		assert.Contains(t, Names, n)
	}
	assert.NotEqual(t, names[0], names[1])
	assert.NotEqual(t, names[1], names[2])
	assert.NotEqual(t, names[0], names[2])
	assert.Len(t, PickNames(randutil.New(3), 9), len(Names))
}
