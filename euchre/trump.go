package euchre

import "fmt"

// Effective ranks for trump cards. Plain cards rank at their face value (9-14).
const (
	RightBowerRank = 21
	LeftBowerRank  = 20
	TrumpAceRank   = 19
	TrumpKingRank  = 18
	TrumpQueenRank = 17
	TrumpTenRank   = 16
	TrumpNineRank  = 15
)

// NoSeat marks an absent seat, e.g. no player going alone
const NoSeat = -1

// Trump is the trump context for one hand: the trump suit, the suit whose
// jack becomes the left bower, the team that named it and the lone seat.
type Trump struct {
	Suit  Suit `json:"suit"`
	Left  Suit `json:"left"`
	Maker int  `json:"maker"` // team index that named trump, or NoSeat for a hypothetical context
	Alone int  `json:"alone"` // seat going alone, or NoSeat
}

// NewTrump builds the trump context for suit named by team maker
func NewTrump(suit Suit, maker int) Trump {
	return Trump{
		Suit:  suit,
		Left:  suit.Partner(),
		Maker: maker,
		Alone: NoSeat,
	}
}

// WithAlone returns a copy of t with seat marked as going alone
func (t Trump) WithAlone(seat int) Trump {
	t.Alone = seat
	return t
}

// IsAlone reports whether the maker is playing without a partner
func (t Trump) IsAlone() bool {
	return t.Alone != NoSeat
}

// String returns e.g. "♥ Hearts"
func (t Trump) String() string {
	return fmt.Sprintf("%s %s", t.Suit.String(), t.Suit.Name())
}

// IsRightBower reports whether c is the jack of the trump suit
func (t Trump) IsRightBower(c Card) bool {
	return c.Rank == Jack && c.Suit == t.Suit
}

// IsLeftBower reports whether c is the jack of the same-color suit
func (t Trump) IsLeftBower(c Card) bool {
	return c.Rank == Jack && c.Suit == t.Left
}

// IsTrump reports whether c belongs to the trump suit, including the left bower
func (t Trump) IsTrump(c Card) bool {
	return c.Suit == t.Suit || t.IsLeftBower(c)
}

// EffectiveSuit returns the suit c counts as: trump for the left bower,
// its printed suit otherwise.
func (t Trump) EffectiveSuit(c Card) Suit {
	if t.IsLeftBower(c) {
		return t.Suit
	}
	return c.Suit
}

// EffectiveRank returns the ordering key for c under this trump. Trump
// cards rank 15-21, so any trump outranks any plain card. Plain cards
// are only comparable within a suit.
func (t Trump) EffectiveRank(c Card) int {
	switch {
	case t.IsRightBower(c):
		return RightBowerRank
	case t.IsLeftBower(c):
		return LeftBowerRank
	case c.Suit == t.Suit:
		switch c.Rank {
		case Ace:
			return TrumpAceRank
		case King:
			return TrumpKingRank
		case Queen:
			return TrumpQueenRank
		case Ten:
			return TrumpTenRank
		case Nine:
			return TrumpNineRank
		}
	}
	return c.Value()
}

// CountSuit returns how many cards in hand count as suit s under this trump
func (t Trump) CountSuit(hand []Card, s Suit) int {
	n := 0
	for _, c := range hand {
		if t.EffectiveSuit(c) == s {
			n++
		}
	}
	return n
}

// Stronger reports whether a ranks above b when neither has to follow
// suit: by effective rank, then by suit order so the result is total.
func (t Trump) Stronger(a, b Card) bool {
	ra, rb := t.EffectiveRank(a), t.EffectiveRank(b)
	if ra != rb {
		return ra > rb
	}
	return a.Suit > b.Suit
}

// Highest returns the strongest card in cards
func (t Trump) Highest(cards []Card) (Card, bool) {
	if len(cards) == 0 {
		return Card{}, false
	}
	best := cards[0]
	for _, c := range cards[1:] {
		if t.Stronger(c, best) {
			best = c
		}
	}
	return best, true
}

// Lowest returns the weakest card in cards
func (t Trump) Lowest(cards []Card) (Card, bool) {
	if len(cards) == 0 {
		return Card{}, false
	}
	low := cards[0]
	for _, c := range cards[1:] {
		if t.Stronger(low, c) {
			low = c
		}
	}
	return low, true
}
