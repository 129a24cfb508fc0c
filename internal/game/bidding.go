package game

import (
	"fmt"

	"github.com/lox/euchre/euchre"
)

// Action is a bidding action
type Action int

const (
	Pass Action = iota
	OrderUp
	Call
)

// String returns the string representation of an action
func (a Action) String() string {
	switch a {
	case Pass:
		return "pass"
	case OrderUp:
		return "order up"
	case Call:
		return "call"
	default:
		return "unknown"
	}
}

// Bid records one bidding action
type Bid struct {
	Seat   int         `json:"seat"`
	Round  int         `json:"round"`
	Action Action      `json:"action"`
	Suit   euchre.Suit `json:"suit"`
	Alone  bool        `json:"alone"`
}

// MarshalText encodes the action for snapshots
func (a Action) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// Pass records a pass for seat in the current bidding round. When the
// fourth seat passes, round 1 moves to round 2 and round 2 ends in a redeal.
func (h *HandState) Pass(seat int) error {
	if !h.phase.IsBidding() {
		return &PhaseError{Op: "pass", Phase: h.phase}
	}
	if err := h.checkTurn(seat); err != nil {
		return err
	}

	h.bids = append(h.bids, Bid{Seat: seat, Round: h.biddingRound(), Action: Pass})
	h.bidIndex++
	if h.bidIndex < NumSeats {
		return nil
	}

	h.bidIndex = 0
	if h.phase == PhaseBidding1 {
		h.phase = PhaseBidding2
		return nil
	}

	// Nobody named trump: hands go back to the deck
	for _, p := range h.players {
		p.ClearHand()
	}
	h.phase = PhaseRedeal
	return nil
}

// OrderUp makes the revealed card's suit trump. Unless the dealer sits
// out, the dealer picks up the revealed card and must discard.
func (h *HandState) OrderUp(seat int, alone bool) error {
	if h.phase != PhaseBidding1 {
		return &PhaseError{Op: "order up", Phase: h.phase}
	}
	if err := h.checkTurn(seat); err != nil {
		return err
	}

	suit := h.revealed.Suit
	h.bids = append(h.bids, Bid{Seat: seat, Round: 1, Action: OrderUp, Suit: suit, Alone: alone})
	h.setTrump(seat, suit, alone)

	dealer := h.players[h.dealer]
	if dealer.Skipped {
		h.startPlay()
		return nil
	}
	dealer.Receive(h.revealed)
	h.phase = PhaseDiscard
	return nil
}

// Call names a trump suit in round 2. The turned-down suit may not be
// named; holding cards of the suit is not required.
func (h *HandState) Call(seat int, suit euchre.Suit, alone bool) error {
	if h.phase != PhaseBidding2 {
		return &PhaseError{Op: "call", Phase: h.phase}
	}
	if err := h.checkTurn(seat); err != nil {
		return err
	}
	if !suit.Valid() {
		return &InvalidDecisionError{Seat: seat, Reason: fmt.Sprintf("unknown suit %d", suit)}
	}
	if suit == h.revealed.Suit {
		return &InvalidDecisionError{Seat: seat, Reason: "cannot call the turned-down suit " + suit.Name()}
	}

	h.bids = append(h.bids, Bid{Seat: seat, Round: 2, Action: Call, Suit: suit, Alone: alone})
	h.setTrump(seat, suit, alone)
	h.startPlay()
	return nil
}

// Discard drops one card from the dealer's six-card hand after an order-up
func (h *HandState) Discard(seat int, card euchre.Card) error {
	if h.phase != PhaseDiscard {
		return &PhaseError{Op: "discard", Phase: h.phase}
	}
	if seat != h.dealer {
		return &InvalidDecisionError{Seat: seat, Reason: "only the dealer discards", Err: ErrNotYourTurn}
	}
	if err := h.players[seat].Remove(card); err != nil {
		return &InvalidDecisionError{Seat: seat, Reason: "discard " + card.String(), Err: err}
	}
	h.discarded = card
	h.hasDiscard = true
	h.startPlay()
	return nil
}

// ValidCalls returns the suits that may be named in round 2
func (h *HandState) ValidCalls() []euchre.Suit {
	out := make([]euchre.Suit, 0, 3)
	for _, s := range euchre.Suits {
		if s != h.revealed.Suit {
			out = append(out, s)
		}
	}
	return out
}

func (h *HandState) biddingRound() int {
	if h.phase == PhaseBidding2 {
		return 2
	}
	return 1
}

func (h *HandState) setTrump(seat int, suit euchre.Suit, alone bool) {
	trump := euchre.NewTrump(suit, TeamOf(seat))
	if alone {
		trump = trump.WithAlone(seat)
		h.players[seat].Alone = true
		partner := h.players[Partner(seat)]
		partner.Skipped = true
		h.setAside = append(h.setAside, partner.Hand...)
		partner.ClearHand()
	}
	h.trump = &trump
	h.maker = seat
}

// CanCall reports whether suit may be named in round 2
func (h *HandState) CanCall(suit euchre.Suit) bool {
	return h.phase == PhaseBidding2 && suit.Valid() && suit != h.revealed.Suit
}
