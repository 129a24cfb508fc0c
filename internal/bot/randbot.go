package bot

import (
	rand "math/rand/v2"

	"github.com/charmbracelet/log"

	"github.com/lox/euchre/euchre"
	"github.com/lox/euchre/internal/game"
)

// RandBot is a simple bot that makes uniform random legal choices
type RandBot struct {
	rng    *rand.Rand
	logger *log.Logger
}

var _ game.Agent = (*RandBot)(nil)

// NewRandBot creates a new RandBot instance
func NewRandBot(rng *rand.Rand, logger *log.Logger) *RandBot {
	if logger == nil {
		logger = log.Default()
	}
	return &RandBot{rng: rng, logger: logger.WithPrefix("randbot")}
}

// DecideOrder orders up or passes with equal odds
func (r *RandBot) DecideOrder(state game.TableState) game.Decision {
	if r.rng.IntN(2) == 0 {
		return game.Decision{Action: game.Pass, Reasoning: "rand-bot random pass"}
	}
	return game.Decision{Action: game.OrderUp, Suit: state.Revealed.Suit, Reasoning: "rand-bot random order"}
}

// DecideCall picks uniformly among passing and the three callable suits
func (r *RandBot) DecideCall(state game.TableState) game.Decision {
	options := make([]euchre.Suit, 0, len(euchre.Suits)-1)
	for _, s := range euchre.Suits {
		if s != state.Revealed.Suit {
			options = append(options, s)
		}
	}
	i := r.rng.IntN(len(options) + 1)
	if i == len(options) {
		return game.Decision{Action: game.Pass, Reasoning: "rand-bot random pass"}
	}
	return game.Decision{Action: game.Call, Suit: options[i], Reasoning: "rand-bot random call"}
}

// DecideAlone goes alone one time in four
func (r *RandBot) DecideAlone(game.TableState, euchre.Suit) bool {
	return r.rng.IntN(4) == 0
}

// DecideDiscard drops a random card
func (r *RandBot) DecideDiscard(state game.TableState) euchre.Card {
	return state.Hand[r.rng.IntN(len(state.Hand))]
}

// ChooseCard plays a random legal card
func (r *RandBot) ChooseCard(state game.TableState, legal []euchre.Card) euchre.Card {
	card := legal[r.rng.IntN(len(legal))]
	r.logger.Debug("Random card", "player", state.Name, "card", card, "options", len(legal))
	return card
}
