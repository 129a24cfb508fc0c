package game

import (
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/require"

	"github.com/lox/euchre/euchre"
	"github.com/lox/euchre/internal/randutil"
)

func quietLogger() *log.Logger {
	return log.New(io.Discard)
}

// stackedDeck builds a deck that deals hands[seat] to each seat when
// dealer deals, with up as the revealed card. Unused cards follow in
// canonical order.
func stackedDeck(t *testing.T, dealer int, hands [NumSeats]string, up string) *euchre.Deck {
	t.Helper()

	var parsed [NumSeats][]euchre.Card
	for seat, h := range hands {
		parsed[seat] = euchre.MustParseCards(strings.ReplaceAll(h, " ", ""))
		require.Len(t, parsed[seat], HandSize, "seat %d", seat)
	}

	order := NewTurnOrder(dealer).Order()
	cards := make([]euchre.Card, 0, euchre.DeckSize)
	for _, seat := range order {
		cards = append(cards, parsed[seat][:3]...)
	}
	for _, seat := range order {
		cards = append(cards, parsed[seat][3:]...)
	}
	cards = append(cards, euchre.MustParseCard(up))
	for _, c := range euchre.FullDeck() {
		if !euchre.Contains(cards, c) {
			cards = append(cards, c)
		}
	}

	deck, err := euchre.NewOrderedDeck(cards)
	require.NoError(t, err)
	return deck
}

var testNames = [NumSeats]string{"South", "West", "North", "East"}

// newTestHand deals a stacked hand with dealer 0
func newTestHand(t *testing.T, hands [NumSeats]string, up string) *HandState {
	t.Helper()

	var players [NumSeats]*Player
	for i, name := range testNames {
		players[i] = NewPlayer(i, name)
	}
	teams := NewTeams(DefaultTeamNames)
	h := NewHand(randutil.New(1), players, teams, NewTurnOrder(0), WithDeck(stackedDeck(t, 0, hands, up)))
	require.NoError(t, h.Deal())
	return h
}

// Hearts-heavy deal used by most hand tests: West holds both bowers.
var heartsDeal = [NumSeats]string{
	"9s Ts Js Qs Ks", // South (dealer)
	"Jh Jd Ah Kh Qh", // West
	"9c Tc Jc Qc Kc", // North
	"9d Td Qd Kd Ad", // East
}

// countCards totals every card the hand accounts for
func countCards(h *HandState) int {
	n := len(h.Undealt()) + len(h.setAside) + len(h.trick)
	for _, p := range h.players {
		n += len(p.Hand)
	}
	for _, tr := range h.tricks {
		n += len(tr.Plays)
	}
	if h.hasDiscard {
		n++
	}
	if h.phase == PhaseBidding2 || (h.trump != nil && !dealerPickedUp(h)) {
		n++ // revealed card turned down
	} else if h.phase == PhaseBidding1 {
		n++ // revealed card still face up
	}
	return n
}

func dealerPickedUp(h *HandState) bool {
	for _, b := range h.bids {
		if b.Action == OrderUp {
			return !h.players[h.dealer].Skipped
		}
	}
	return false
}

// scriptAgent answers with fixed policies and counts calls
type scriptAgent struct {
	order      Action
	call       func(TableState) Decision
	alone      bool
	discard    func(TableState) euchre.Card
	choose     func(TableState, []euchre.Card) euchre.Card
	orderCalls int
	callCalls  int
	playCalls  int
}

func (a *scriptAgent) DecideOrder(state TableState) Decision {
	a.orderCalls++
	return Decision{Action: a.order, Suit: state.Revealed.Suit}
}

func (a *scriptAgent) DecideCall(state TableState) Decision {
	a.callCalls++
	if a.call != nil {
		return a.call(state)
	}
	return Decision{Action: Pass}
}

func (a *scriptAgent) DecideAlone(TableState, euchre.Suit) bool {
	return a.alone
}

func (a *scriptAgent) DecideDiscard(state TableState) euchre.Card {
	if a.discard != nil {
		return a.discard(state)
	}
	return state.Hand[0]
}

func (a *scriptAgent) ChooseCard(state TableState, legal []euchre.Card) euchre.Card {
	a.playCalls++
	if a.choose != nil {
		return a.choose(state, legal)
	}
	return legal[0]
}

// eagerAgent orders up every time and plays its first legal card
func eagerAgent() *scriptAgent {
	return &scriptAgent{order: OrderUp}
}

// passAgent never names trump
func passAgent() *scriptAgent {
	return &scriptAgent{order: Pass}
}

// eventRecorder captures published events
type eventRecorder struct {
	events []GameEvent
}

func (r *eventRecorder) OnEvent(e GameEvent) {
	r.events = append(r.events, e)
}

func (r *eventRecorder) ofType(et EventType) []GameEvent {
	var out []GameEvent
	for _, e := range r.events {
		if e.EventType() == et {
			out = append(out, e)
		}
	}
	return out
}
