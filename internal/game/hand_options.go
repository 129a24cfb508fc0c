package game

import (
	"math/rand/v2"

	"github.com/lox/euchre/euchre"
)

// HandOption configures a HandState during creation.
type HandOption func(*handConfig)

type handConfig struct {
	rng  *rand.Rand
	deck   *euchre.Deck // overrides RNG-driven deck creation
	target int
}

// WithDeck uses a specific deck, typically an ordered deck from tests
func WithDeck(deck *euchre.Deck) HandOption {
	return func(c *handConfig) {
		c.deck = deck
	}
}

// WithTarget sets the game score reported to agents in TableState
func WithTarget(score int) HandOption {
	return func(c *handConfig) {
		c.target = score
	}
}

// NewHand creates a hand for the given table. The RNG is required to make
// randomness explicit and testing deterministic. The turn order is cloned
// so trick leaders never leak back into the game's dealer rotation.
//
// Example usage:
//
//	h := NewHand(randutil.New(42), players, teams, NewTurnOrder(0))
//	if err := h.Deal(); err != nil { ... }
//
//	// Fixed deal for a test
//	deck, _ := euchre.NewOrderedDeck(cards)
//	h := NewHand(rng, players, teams, order, WithDeck(deck))
func NewHand(rng *rand.Rand, players [NumSeats]*Player, teams [NumTeams]*Team, order *TurnOrder, opts ...HandOption) *HandState {
	if rng == nil {
		panic("rng is required for hand creation")
	}
	if order == nil {
		panic("turn order is required for hand creation")
	}
	for _, p := range players {
		if p == nil {
			panic("all four seats must be filled")
		}
	}

	cfg := &handConfig{rng: rng, target: WinningScore}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.deck == nil {
		cfg.deck = euchre.NewDeck(cfg.rng)
	}

	for _, p := range players {
		p.Reset()
	}

	return &HandState{
		players: players,
		teams:   teams,
		order:   order.Clone(),
		deck:    cfg.deck,
		dealer:  order.Dealer(),
		phase:   PhaseDealing,
		maker:   euchre.NoSeat,
		target:  cfg.target,
	}
}
