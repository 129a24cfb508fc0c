package game

import (
	"fmt"

	"github.com/lox/euchre/euchre"
)

// HandState is the state machine for a single deal: dealing, two rounds of
// bidding, the dealer's discard, five tricks and scoring.
type HandState struct {
	players [NumSeats]*Player
	teams   [NumTeams]*Team
	order   *TurnOrder
	deck    *euchre.Deck
	dealer  int
	phase   Phase
	target  int // game score that ends the game

	revealed euchre.Card
	bids     []Bid
	bidIndex int

	trump      *euchre.Trump
	maker      int
	discarded  euchre.Card
	hasDiscard bool
	setAside   []euchre.Card // hand of a partner sitting out

	trick  []euchre.Play
	tricks []CompletedTrick
	result *HandScore
}

// CompletedTrick is a finished trick and its winner
type CompletedTrick struct {
	Number int           `json:"number"`
	Leader int           `json:"leader"`
	Plays  []euchre.Play `json:"plays"`
	Winner euchre.Play   `json:"winner"`
}

// Deal shuffles and deals five cards to each seat in packets of three then
// two, starting left of the dealer, and turns up the next card.
func (h *HandState) Deal() error {
	if h.phase != PhaseDealing {
		return &PhaseError{Op: "deal", Phase: h.phase}
	}

	h.deck.Shuffle()
	for _, packet := range []int{3, 2} {
		for _, seat := range h.order.Order() {
			cards := h.deck.Deal(packet)
			if cards == nil {
				return fmt.Errorf("deck exhausted dealing to seat %d", seat)
			}
			h.players[seat].Receive(cards...)
		}
	}

	revealed, ok := h.deck.DealOne()
	if !ok {
		return fmt.Errorf("deck exhausted revealing up card")
	}
	h.revealed = revealed
	h.phase = PhaseBidding1
	return nil
}

// CurrentSeat returns the seat expected to act, or NoSeat when the hand is
// not waiting on a player.
func (h *HandState) CurrentSeat() int {
	switch h.phase {
	case PhaseBidding1, PhaseBidding2:
		return h.order.Order()[h.bidIndex]
	case PhaseDiscard:
		return h.dealer
	case PhasePlaying:
		active := h.activeOrder()
		if len(h.trick) < len(active) {
			return active[len(h.trick)]
		}
	}
	return euchre.NoSeat
}

// Play plays card for seat into the current trick. When the trick fills up
// it is resolved, the winner leads next and the completed trick is returned.
func (h *HandState) Play(seat int, card euchre.Card) (*CompletedTrick, error) {
	if h.phase != PhasePlaying {
		return nil, &PhaseError{Op: "play", Phase: h.phase}
	}
	if err := h.checkTurn(seat); err != nil {
		return nil, err
	}

	p := h.players[seat]
	if !p.Holds(card) {
		return nil, &InvalidDecisionError{Seat: seat, Reason: "play " + card.String(), Err: ErrCardNotHeld}
	}
	if !euchre.IsLegalPlay(p.Hand, h.trick, *h.trump, card) {
		led := h.trump.LedSuit(h.trick[0].Card)
		return nil, &InvalidDecisionError{Seat: seat, Reason: fmt.Sprintf("%s does not follow %s", card, led.Name())}
	}

	_ = p.Remove(card)
	h.trick = append(h.trick, euchre.Play{Seat: seat, Card: card})
	if len(h.trick) < len(h.activeOrder()) {
		return nil, nil
	}

	winner := euchre.ResolveTrick(h.trick, *h.trump)
	done := CompletedTrick{
		Number: len(h.tricks) + 1,
		Leader: h.trick[0].Seat,
		Plays:  h.trick,
		Winner: winner,
	}
	h.tricks = append(h.tricks, done)
	h.players[winner.Seat].Tricks++
	h.trick = nil
	h.order.SetLeader(winner.Seat)

	if len(h.tricks) == TricksPerHand {
		h.phase = PhaseScoring
	}
	return &done, nil
}

// Score awards points for the finished hand and moves to Rotate
func (h *HandState) Score() (HandScore, error) {
	if h.phase != PhaseScoring {
		return HandScore{}, &PhaseError{Op: "score", Phase: h.phase}
	}
	result := ScoreHand(h.players, *h.trump)
	h.teams[result.Team].AddPoints(result.Points)
	h.result = &result
	h.phase = PhaseRotate
	return result, nil
}

// LegalPlays returns the cards seat may play now, or nil when it is not
// that seat's turn to play.
func (h *HandState) LegalPlays(seat int) []euchre.Card {
	if h.phase != PhasePlaying || h.CurrentSeat() != seat {
		return nil
	}
	return euchre.LegalPlays(h.players[seat].Hand, h.trick, *h.trump)
}

// Phase returns the current phase
func (h *HandState) Phase() Phase { return h.phase }

// Dealer returns the dealer's seat
func (h *HandState) Dealer() int { return h.dealer }

// Revealed returns the turned-up card
func (h *HandState) Revealed() euchre.Card { return h.revealed }

// Maker returns the seat that named trump, or NoSeat
func (h *HandState) Maker() int { return h.maker }

// Trump returns the trump context once it has been named
func (h *HandState) Trump() (euchre.Trump, bool) {
	if h.trump == nil {
		return euchre.Trump{}, false
	}
	return *h.trump, true
}

// Bids returns the bidding history
func (h *HandState) Bids() []Bid {
	return append([]Bid(nil), h.bids...)
}

// CurrentTrick returns the plays in the trick under way
func (h *HandState) CurrentTrick() []euchre.Play {
	return append([]euchre.Play(nil), h.trick...)
}

// Tricks returns the completed tricks
func (h *HandState) Tricks() []CompletedTrick {
	return append([]CompletedTrick(nil), h.tricks...)
}

// Discarded returns the dealer's discard, if any
func (h *HandState) Discarded() (euchre.Card, bool) {
	return h.discarded, h.hasDiscard
}

// Result returns the score once the hand has been scored
func (h *HandState) Result() (HandScore, bool) {
	if h.result == nil {
		return HandScore{}, false
	}
	return *h.result, true
}

// Player returns the player at seat
func (h *HandState) Player(seat int) *Player {
	return h.players[seat]
}

func (h *HandState) checkTurn(seat int) error {
	if seat < 0 || seat >= NumSeats {
		return &InvalidDecisionError{Seat: seat, Reason: "no such seat", Err: ErrNotYourTurn}
	}
	if cur := h.CurrentSeat(); cur != seat {
		return &InvalidDecisionError{Seat: seat, Reason: fmt.Sprintf("seat %d is to act", cur), Err: ErrNotYourTurn}
	}
	return nil
}

// activeOrder returns the acting order without any seat sitting out
func (h *HandState) activeOrder() []int {
	out := make([]int, 0, NumSeats)
	for _, seat := range h.order.Order() {
		if h.players[seat].IsActive() {
			out = append(out, seat)
		}
	}
	return out
}

// startPlay hands the lead to the first active seat left of the dealer
func (h *HandState) startPlay() {
	h.order = NewTurnOrder(h.dealer)
	h.order.SetLeader(h.activeOrder()[0])
	h.phase = PhasePlaying
}

// Undealt returns the cards still in the deck after the deal
func (h *HandState) Undealt() []euchre.Card {
	return h.deck.Remaining()
}
