package game

import "github.com/lox/euchre/euchre"

// Decision represents a bidding decision with reasoning
type Decision struct {
	Action    Action
	Suit      euchre.Suit // For Call, the suit named
	Reasoning string      // Human-readable explanation
}

// TableState represents the read-only state of the table for decision making.
// Only the acting seat's own cards are included.
type TableState struct {
	Seat     int
	Name     string
	Hand     []euchre.Card
	Phase    Phase
	Dealer   int
	Revealed euchre.Card // Up card in round 1, turned-down card afterwards

	Trump       *euchre.Trump // nil while bidding
	Trick       []euchre.Play // Cards played so far in the current trick
	TricksTaken [NumSeats]int
	Skipped     [NumSeats]bool
	Bids        []Bid

	Scores       [NumTeams]int
	WinningScore int
}

// IsDealer reports whether the acting seat dealt this hand
func (s TableState) IsDealer() bool {
	return s.Seat == s.Dealer
}

// Partner returns the acting seat's partner
func (s TableState) Partner() int {
	return Partner(s.Seat)
}

// Leading reports whether the acting seat plays first in the trick
func (s TableState) Leading() bool {
	return len(s.Trick) == 0
}

// Winning returns the play currently taking the trick
func (s TableState) Winning() (euchre.Play, bool) {
	if s.Trump == nil {
		return euchre.Play{}, false
	}
	return euchre.CurrentWinner(s.Trick, *s.Trump)
}

// PartnerWinning reports whether the acting seat's partner holds the trick
func (s TableState) PartnerWinning() bool {
	best, ok := s.Winning()
	return ok && best.Seat == s.Partner()
}

// Agent represents any entity (human or bot) that makes decisions for a seat.
// Agents receive immutable state and return decisions; the engine validates
// and applies them, so no agent can mutate the hand directly.
type Agent interface {
	// DecideOrder chooses between ordering up the revealed card and passing
	DecideOrder(state TableState) Decision
	// DecideCall names a suit other than the turned-down one, or passes
	DecideCall(state TableState) Decision
	// DecideAlone is asked after the seat's bid names trump
	DecideAlone(state TableState, suit euchre.Suit) bool
	// DecideDiscard chooses the dealer's discard from six cards
	DecideDiscard(state TableState) euchre.Card
	// ChooseCard picks one of the legal cards
	ChooseCard(state TableState, legal []euchre.Card) euchre.Card
}

// TableState builds the decision view for seat
func (h *HandState) TableState(seat int) TableState {
	s := TableState{
		Seat:     seat,
		Name:     h.players[seat].Name,
		Hand:     append([]euchre.Card(nil), h.players[seat].Hand...),
		Phase:    h.phase,
		Dealer:   h.dealer,
		Revealed: h.revealed,
		Trick:    h.CurrentTrick(),
		Bids:     h.Bids(),

		WinningScore: h.target,
	}
	if h.trump != nil {
		trump := *h.trump
		s.Trump = &trump
	}
	for i, p := range h.players {
		s.TricksTaken[i] = p.Tricks
		s.Skipped[i] = p.Skipped
	}
	for i, t := range h.teams {
		if t != nil {
			s.Scores[i] = t.Score
		}
	}
	return s
}
