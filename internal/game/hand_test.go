package game

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/euchre/euchre"
	"github.com/lox/euchre/internal/randutil"
)

var (
	jackHearts = euchre.MustParseCard("Jh")
	tenHearts  = euchre.MustParseCard("Th")
	nineSpades = euchre.MustParseCard("9s")
	kingSpades = euchre.MustParseCard("Ks")
)

func TestDeal(t *testing.T) {
	t.Parallel()
	h := newTestHand(t, heartsDeal, "Th")

	assert.Equal(t, PhaseBidding1, h.Phase())
	for seat := 0; seat < NumSeats; seat++ {
		assert.Len(t, h.Player(seat).Hand, HandSize, "seat %d", seat)
	}
	assert.Equal(t, euchre.MustParseCards("JhJdAhKhQh"), h.Player(1).Hand)
	assert.Equal(t, tenHearts, h.Revealed())
	assert.Len(t, h.Undealt(), 3)
	assert.Equal(t, euchre.DeckSize, countCards(h))
	assert.Equal(t, 1, h.CurrentSeat(), "seat left of the dealer bids first")

	var pe *PhaseError
	assert.ErrorAs(t, h.Deal(), &pe)
}

func TestDealDeterministic(t *testing.T) {
	t.Parallel()

	deal := func() [NumSeats][]euchre.Card {
		var players [NumSeats]*Player
		for i, name := range testNames {
			players[i] = NewPlayer(i, name)
		}
		h := NewHand(randutil.New(42), players, NewTeams(DefaultTeamNames), NewTurnOrder(2))
		require.NoError(t, h.Deal())
		var hands [NumSeats][]euchre.Card
		for i, p := range players {
			hands[i] = p.Hand
		}
		return hands
	}

	assert.Equal(t, deal(), deal())
}

func TestAllPassRedeals(t *testing.T) {
	t.Parallel()
	h := newTestHand(t, heartsDeal, "Th")

	for i := 0; i < NumSeats; i++ {
		require.NoError(t, h.Pass(h.CurrentSeat()))
	}
	assert.Equal(t, PhaseBidding2, h.Phase())
	assert.Equal(t, 1, h.CurrentSeat(), "round 2 starts left of the dealer again")
	assert.Equal(t, euchre.DeckSize, countCards(h))

	for i := 0; i < NumSeats; i++ {
		require.NoError(t, h.Pass(h.CurrentSeat()))
	}
	assert.Equal(t, PhaseRedeal, h.Phase())
	assert.True(t, h.Phase().IsOver())
	assert.Equal(t, euchre.NoSeat, h.CurrentSeat())
	for seat := 0; seat < NumSeats; seat++ {
		assert.Empty(t, h.Player(seat).Hand)
	}
	_, ok := h.Trump()
	assert.False(t, ok)

	bids := h.Bids()
	require.Len(t, bids, 2*NumSeats)
	assert.Equal(t, 1, bids[0].Round)
	assert.Equal(t, 2, bids[7].Round)
	assert.Equal(t, 0, bids[7].Seat, "dealer bids last")
}

func TestActOutOfTurn(t *testing.T) {
	t.Parallel()
	h := newTestHand(t, heartsDeal, "Th")

	err := h.Pass(2)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotYourTurn)
	assert.True(t, IsInvalidDecision(err))
	assert.Empty(t, h.Bids())
	assert.Equal(t, 1, h.CurrentSeat())

	assert.ErrorIs(t, h.OrderUp(0, false), ErrNotYourTurn)
}

func TestPhaseMisuse(t *testing.T) {
	t.Parallel()
	h := newTestHand(t, heartsDeal, "Th")

	var pe *PhaseError
	_, err := h.Play(1, jackHearts)
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "play", pe.Op)
	assert.Equal(t, PhaseBidding1, pe.Phase)

	assert.ErrorAs(t, h.Call(1, euchre.Spades, false), &pe)
	assert.ErrorAs(t, h.Discard(0, nineSpades), &pe)

	_, err = h.Score()
	assert.ErrorAs(t, err, &pe)
	assert.False(t, IsInvalidDecision(err))
}

func TestOrderUpDealerDiscards(t *testing.T) {
	t.Parallel()
	h := newTestHand(t, heartsDeal, "Th")

	require.NoError(t, h.OrderUp(1, false))
	assert.Equal(t, PhaseDiscard, h.Phase())
	assert.Equal(t, 0, h.CurrentSeat())

	dealer := h.Player(0)
	assert.Len(t, dealer.Hand, HandSize+1)
	assert.True(t, dealer.Holds(tenHearts))

	trump, ok := h.Trump()
	require.True(t, ok)
	assert.Equal(t, euchre.Hearts, trump.Suit)
	assert.Equal(t, euchre.Diamonds, trump.Left)
	assert.Equal(t, 1, trump.Maker)
	assert.False(t, trump.IsAlone())
	assert.Equal(t, 1, h.Maker())

	err := h.Discard(0, jackHearts)
	assert.True(t, IsInvalidDecision(err))
	assert.ErrorIs(t, err, ErrCardNotHeld)
	assert.ErrorIs(t, h.Discard(1, jackHearts), ErrNotYourTurn)
	assert.Equal(t, PhaseDiscard, h.Phase())

	require.NoError(t, h.Discard(0, nineSpades))
	assert.Len(t, dealer.Hand, HandSize)
	assert.False(t, dealer.Holds(nineSpades))
	discarded, ok := h.Discarded()
	assert.True(t, ok)
	assert.Equal(t, nineSpades, discarded)

	assert.Equal(t, PhasePlaying, h.Phase())
	assert.Equal(t, 1, h.CurrentSeat(), "seat left of the dealer leads")
	assert.Equal(t, euchre.DeckSize, countCards(h))
}

func TestCallRejectsTurnedDownSuit(t *testing.T) {
	t.Parallel()
	h := newTestHand(t, heartsDeal, "Th")
	for i := 0; i < NumSeats; i++ {
		require.NoError(t, h.Pass(h.CurrentSeat()))
	}

	assert.False(t, h.CanCall(euchre.Hearts))
	assert.ElementsMatch(t, []euchre.Suit{euchre.Spades, euchre.Diamonds, euchre.Clubs}, h.ValidCalls())

	err := h.Call(1, euchre.Hearts, false)
	require.Error(t, err)
	assert.True(t, IsInvalidDecision(err))
	assert.Equal(t, PhaseBidding2, h.Phase())
	assert.Equal(t, 1, h.CurrentSeat())
	assert.Len(t, h.Bids(), NumSeats)

	var pe *PhaseError
	assert.ErrorAs(t, h.OrderUp(1, false), &pe)

	require.NoError(t, h.Call(1, euchre.Diamonds, false))
	assert.Equal(t, PhasePlaying, h.Phase(), "no discard after a round 2 call")
	trump, _ := h.Trump()
	assert.Equal(t, euchre.Diamonds, trump.Suit)
	assert.Equal(t, euchre.Hearts, trump.Left)
	assert.Len(t, h.Player(0).Hand, HandSize)
	assert.Equal(t, euchre.DeckSize, countCards(h))
}

func TestGoingAloneSkipsPartner(t *testing.T) {
	t.Parallel()
	h := newTestHand(t, heartsDeal, "Th")

	require.NoError(t, h.OrderUp(1, true))
	west, east := h.Player(1), h.Player(3)
	assert.True(t, west.Alone)
	assert.True(t, east.Skipped)
	assert.Empty(t, east.Hand)

	trump, _ := h.Trump()
	assert.Equal(t, 1, trump.Alone)

	require.NoError(t, h.Discard(0, nineSpades))
	assert.Equal(t, euchre.DeckSize, countCards(h))

	seats := []int{}
	for len(h.Tricks()) < 1 {
		seat := h.CurrentSeat()
		seats = append(seats, seat)
		_, err := h.Play(seat, h.LegalPlays(seat)[0])
		require.NoError(t, err)
	}
	assert.Equal(t, []int{1, 2, 0}, seats, "the skipped seat never plays")
	tricks := h.Tricks()
	require.Len(t, tricks, 1)
	assert.Len(t, tricks[0].Plays, 3)
	assert.Equal(t, 1, tricks[0].Winner.Seat)
}

func TestDealerSkippedWhenPartnerGoesAlone(t *testing.T) {
	t.Parallel()
	h := newTestHand(t, heartsDeal, "Th")

	require.NoError(t, h.Pass(1))
	require.NoError(t, h.OrderUp(2, true))

	assert.Equal(t, PhasePlaying, h.Phase(), "a skipped dealer does not pick up")
	assert.True(t, h.Player(0).Skipped)
	assert.Empty(t, h.Player(0).Hand)
	assert.Equal(t, 1, h.CurrentSeat())

	trump, _ := h.Trump()
	assert.Equal(t, 0, trump.Maker)
	assert.Equal(t, 2, trump.Alone)
	assert.Equal(t, euchre.DeckSize, countCards(h))
}

func TestPlayMustFollowSuit(t *testing.T) {
	t.Parallel()
	h := newTestHand(t, heartsDeal, "Th")
	require.NoError(t, h.OrderUp(1, false))
	require.NoError(t, h.Discard(0, nineSpades))

	_, err := h.Play(1, jackHearts)
	require.NoError(t, err)
	assert.Nil(t, h.LegalPlays(1), "only the seat to act has legal plays")

	// North and East are void in hearts so anything goes
	assert.Len(t, h.LegalPlays(2), HandSize)
	_, err = h.Play(2, euchre.MustParseCard("9c"))
	require.NoError(t, err)
	_, err = h.Play(3, euchre.MustParseCard("Ad"))
	require.NoError(t, err)

	// South holds the ten of hearts and must follow
	assert.Equal(t, []euchre.Card{tenHearts}, h.LegalPlays(0))
	done, err := h.Play(0, kingSpades)
	require.Error(t, err)
	assert.Nil(t, done)
	assert.True(t, IsInvalidDecision(err))
	assert.Len(t, h.CurrentTrick(), 3)
	assert.True(t, h.Player(0).Holds(kingSpades))

	done, err = h.Play(0, tenHearts)
	require.NoError(t, err)
	require.NotNil(t, done)
	assert.Equal(t, 1, done.Number)
	assert.Equal(t, 1, done.Leader)
	assert.Equal(t, euchre.Play{Seat: 1, Card: jackHearts}, done.Winner)
	assert.Empty(t, h.CurrentTrick())
	assert.Equal(t, 1, h.Player(1).Tricks)
	assert.Equal(t, 1, h.CurrentSeat(), "trick winner leads")
}

func TestWinnerLeadsNextTrick(t *testing.T) {
	t.Parallel()
	h := newTestHand(t, heartsDeal, "Th")
	for i := 0; i < NumSeats; i++ {
		require.NoError(t, h.Pass(h.CurrentSeat()))
	}
	// Spades trump: South holds every spade but the ace
	require.NoError(t, h.Call(1, euchre.Spades, false))

	plays := []struct {
		seat int
		card string
	}{
		{1, "Ah"}, {2, "9c"}, {3, "9d"}, {0, "Js"}, // South trumps in
	}
	for _, p := range plays {
		_, err := h.Play(p.seat, euchre.MustParseCard(p.card))
		require.NoError(t, err)
	}
	assert.Equal(t, 0, h.CurrentSeat())
	_, err := h.Play(1, euchre.MustParseCard("Kh"))
	assert.ErrorIs(t, err, ErrNotYourTurn)
}

func TestFullHandScoring(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		alone  bool
		kind   ScoreKind
		points int
	}{
		{"march", false, ScoreMarch, PointsMarch},
		{"lone march", true, ScoreLoneMarch, PointsLoneMarch},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			h := newTestHand(t, heartsDeal, "Th")
			require.NoError(t, h.OrderUp(1, tt.alone))
			require.NoError(t, h.Discard(0, nineSpades))

			for h.Phase() == PhasePlaying {
				seat := h.CurrentSeat()
				_, err := h.Play(seat, h.LegalPlays(seat)[0])
				require.NoError(t, err)
				require.Equal(t, euchre.DeckSize, countCards(h))
			}
			assert.Equal(t, PhaseScoring, h.Phase())
			assert.Len(t, h.Tricks(), TricksPerHand)

			score, err := h.Score()
			require.NoError(t, err)
			assert.Equal(t, tt.kind, score.Kind)
			assert.Equal(t, 1, score.Team)
			assert.Equal(t, tt.points, score.Points)
			assert.Equal(t, TricksPerHand, score.MakerTricks)
			assert.Equal(t, tt.points, h.teams[1].Score)
			assert.Equal(t, 0, h.teams[0].Score)
			assert.Equal(t, PhaseRotate, h.Phase())

			result, ok := h.Result()
			assert.True(t, ok)
			assert.Equal(t, score, result)

			_, err = h.Score()
			assert.Error(t, err, "a hand scores once")
		})
	}
}

func TestTableStateHidesOtherHands(t *testing.T) {
	t.Parallel()
	h := newTestHand(t, heartsDeal, "Th")

	state := h.TableState(1)
	assert.Equal(t, 1, state.Seat)
	assert.Equal(t, "West", state.Name)
	assert.Equal(t, h.Player(1).Hand, state.Hand)
	assert.Nil(t, state.Trump)
	assert.Equal(t, tenHearts, state.Revealed)
	assert.Equal(t, WinningScore, state.WinningScore)

	state.Hand[0] = nineSpades
	assert.Equal(t, jackHearts, h.Player(1).Hand[0], "state is a copy")

	require.NoError(t, h.OrderUp(1, false))
	require.NoError(t, h.Discard(0, nineSpades))
	_, err := h.Play(1, jackHearts)
	require.NoError(t, err)

	state = h.TableState(2)
	require.NotNil(t, state.Trump)
	assert.Equal(t, euchre.Hearts, state.Trump.Suit)
	assert.Len(t, state.Trick, 1)
	best, ok := state.Winning()
	assert.True(t, ok)
	assert.Equal(t, 1, best.Seat)
	assert.False(t, state.PartnerWinning())
	assert.True(t, h.TableState(3).PartnerWinning())
}

func TestInvalidDecisionLeavesStateUntouched(t *testing.T) {
	t.Parallel()
	h := newTestHand(t, heartsDeal, "Th")
	before := h.Snapshot()

	assert.Error(t, h.Pass(3))
	assert.Error(t, h.OrderUp(2, true))
	assert.Equal(t, before, h.Snapshot())

	err := h.Pass(1)
	require.NoError(t, err)
	assert.False(t, errors.Is(err, ErrNotYourTurn))
}
