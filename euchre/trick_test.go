package euchre

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func plays(cards string) []Play {
	cs := MustParseCards(cards)
	out := make([]Play, len(cs))
	for i, c := range cs {
		out[i] = Play{Seat: i, Card: c}
	}
	return out
}

func TestResolveTrickScenarios(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		trump Suit
		trick string
		want  string
	}{
		{name: "highest of led suit without trump", trump: Hearts, trick: "9dAdTdQd", want: "Ad"},
		{name: "jack of unrelated color is plain", trump: Spades, trick: "JdTdAdKd", want: "Ad"},
		{name: "right bower beats ace of trump", trump: Diamonds, trick: "9dAdTdJd", want: "Jd"},
		{name: "ace of led suit in last seat", trump: Diamonds, trick: "KhQh9hAh", want: "Ah"},
		{name: "single trump wins", trump: Clubs, trick: "AsKs9cQs", want: "9c"},
		{name: "left bower beats ace of trump", trump: Clubs, trick: "AcJs9cKc", want: "Js"},
		{name: "right beats left", trump: Hearts, trick: "JdJhAhKh", want: "Jh"},
		{name: "off suit never wins", trump: Hearts, trick: "9sAcAdKc", want: "9s"},
		{name: "led left bower holds against plain cards", trump: Spades, trick: "JcAcKc9d", want: "Jc"},
		{name: "led left bower beaten by right", trump: Spades, trick: "JcAsJsKc", want: "Js"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			winner := ResolveTrick(plays(tt.trick), NewTrump(tt.trump, 0))
			assert.Equal(t, MustParseCard(tt.want), winner.Card)
		})
	}
}

func TestResolveTrickReturnsWinningSeat(t *testing.T) {
	t.Parallel()
	trick := []Play{
		{Seat: 2, Card: MustParseCard("9d")},
		{Seat: 3, Card: MustParseCard("Ad")},
		{Seat: 0, Card: MustParseCard("Td")},
		{Seat: 1, Card: MustParseCard("Qd")},
	}
	w := ResolveTrick(trick, NewTrump(Hearts, 0))
	assert.Equal(t, 3, w.Seat)
}

func TestResolveTrickPanicsWhenEmpty(t *testing.T) {
	t.Parallel()
	assert.Panics(t, func() { ResolveTrick(nil, NewTrump(Hearts, 0)) })
}

// A card whose effective suit is neither the led suit nor trump can never
// win, whatever it is played against.
func TestOffSuitCardNeverWins(t *testing.T) {
	t.Parallel()
	deck := FullDeck()
	for _, suit := range Suits {
		tr := NewTrump(suit, 0)
		for _, lead := range deck {
			led := tr.LedSuit(lead)
			for _, c := range deck {
				if c == lead {
					continue
				}
				if tr.EffectiveSuit(c) == led || tr.IsTrump(c) {
					continue
				}
				for _, other := range deck {
					if other == lead || other == c {
						continue
					}
					trick := []Play{{0, lead}, {1, c}, {2, other}}
					assert.NotEqual(t, 1, ResolveTrick(trick, tr).Seat,
						"trump %s lead %s: %s must not win", suit.Name(), lead, c)
				}
			}
		}
	}
}

func TestLegalPlays(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		trump Suit
		hand  string
		trick string
		want  string
	}{
		{name: "leader may play anything", trump: Hearts, hand: "9sAcJd", trick: "", want: "9sAcJd"},
		{name: "must follow led suit", trump: Hearts, hand: "9sAcTs", trick: "Ks", want: "9sTs"},
		{name: "void plays anything", trump: Hearts, hand: "9cAcJh", trick: "Ks", want: "9cAcJh"},
		{name: "left bower does not follow its printed suit", trump: Hearts, hand: "Jd9c", trick: "Ad", want: "Jd9c"},
		{name: "left bower excluded when others follow", trump: Hearts, hand: "JdTd9c", trick: "Ad", want: "Td"},
		{name: "left bower follows trump lead", trump: Hearts, hand: "Jd9cTd", trick: "9h", want: "Jd"},
		{name: "led left bower calls for trump", trump: Hearts, hand: "Ad9hKc", trick: "Jd", want: "9h"},
		{name: "led left bower with no trump in hand", trump: Hearts, hand: "Ad9sKc", trick: "Jd", want: "Ad9sKc"},
		{name: "plain jack follows its suit", trump: Spades, hand: "JdAh", trick: "9d", want: "Jd"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var trick []Play
			if tt.trick != "" {
				trick = plays(tt.trick)
			}
			got := LegalPlays(MustParseCards(tt.hand), trick, NewTrump(tt.trump, 0))
			assert.ElementsMatch(t, MustParseCards(tt.want), got)
		})
	}
}

func TestLegalPlaysNeverEmpty(t *testing.T) {
	t.Parallel()
	deck := FullDeck()
	for _, suit := range Suits {
		tr := NewTrump(suit, 0)
		for _, lead := range deck {
			for start := 0; start+5 <= len(deck); start += 3 {
				hand := deck[start : start+5]
				if Contains(hand, lead) {
					continue
				}
				legal := LegalPlays(hand, []Play{{0, lead}}, tr)
				require.NotEmpty(t, legal)
				for _, c := range legal {
					assert.True(t, Contains(hand, c))
				}
			}
		}
	}
}

func TestCurrentWinner(t *testing.T) {
	t.Parallel()
	_, ok := CurrentWinner(nil, NewTrump(Hearts, 0))
	assert.False(t, ok)

	w, ok := CurrentWinner(plays("9sAs"), NewTrump(Hearts, 0))
	require.True(t, ok)
	assert.Equal(t, 1, w.Seat)
}
