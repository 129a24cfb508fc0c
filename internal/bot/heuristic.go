package bot

import (
	"github.com/charmbracelet/log"

	"github.com/lox/euchre/euchre"
	"github.com/lox/euchre/internal/game"
)

// Thresholds tune the heuristic bidder
type Thresholds struct {
	Order     int // minimum strength to order up the revealed card
	Alone     int // minimum strength to go alone
	CallCount int // minimum cards of a suit to name it in round two
}

// DefaultThresholds: ordering needs roughly two bowers and an ace, going
// alone needs three aces behind both bowers.
var DefaultThresholds = Thresholds{Order: 75, Alone: 83, CallCount: 3}

// EvaluateHandStrength sums the effective ranks of hand as if suit were trump
func EvaluateHandStrength(hand []euchre.Card, suit euchre.Suit) int {
	trump := euchre.NewTrump(suit, euchre.NoSeat)
	total := 0
	for _, c := range hand {
		total += trump.EffectiveRank(c)
	}
	return total
}

// Heuristic bids on summed hand strength and plays greedily: high to win,
// low when the trick is already lost or safe with partner.
type Heuristic struct {
	thresholds Thresholds
	logger     *log.Logger
}

var _ game.Agent = (*Heuristic)(nil)

// NewHeuristic creates a heuristic bot. Zero thresholds take the defaults.
func NewHeuristic(thresholds Thresholds, logger *log.Logger) *Heuristic {
	if thresholds.Order == 0 {
		thresholds.Order = DefaultThresholds.Order
	}
	if thresholds.Alone == 0 {
		thresholds.Alone = DefaultThresholds.Alone
	}
	if thresholds.CallCount == 0 {
		thresholds.CallCount = DefaultThresholds.CallCount
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Heuristic{thresholds: thresholds, logger: logger.WithPrefix("bot")}
}

// Thresholds returns the bot's bidding thresholds
func (b *Heuristic) Thresholds() Thresholds {
	return b.thresholds
}

// DecideOrder orders up when the hand is strong enough with the revealed
// suit as trump.
func (b *Heuristic) DecideOrder(state game.TableState) game.Decision {
	thinking := &ThinkingContext{}
	suit := state.Revealed.Suit
	strength := b.strength(state, suit, thinking)

	action := game.Pass
	if strength >= b.thresholds.Order {
		action = game.OrderUp
		thinking.AddThought("%d meets the order threshold of %d, ordering up", strength, b.thresholds.Order)
	} else {
		thinking.AddThought("%d is short of %d, passing", strength, b.thresholds.Order)
	}

	return b.decide(state, "order", game.Decision{Action: action, Suit: suit}, strength, thinking)
}

// DecideCall names the suit it holds the most of, if it holds enough of
// it. The turned-down suit is never considered.
func (b *Heuristic) DecideCall(state game.TableState) game.Decision {
	thinking := &ThinkingContext{}
	turned := state.Revealed.Suit
	thinking.AddThought("%s was turned down", turned.Name())

	best, bestCount, bestStrength := euchre.Suit(-1), 0, 0
	for _, s := range euchre.Suits {
		if s == turned {
			continue
		}
		count := euchre.NewTrump(s, euchre.NoSeat).CountSuit(state.Hand, s)
		strength := EvaluateHandStrength(state.Hand, s)
		if count > bestCount || (count == bestCount && strength > bestStrength) {
			best, bestCount, bestStrength = s, count, strength
		}
	}

	if best.Valid() && bestCount >= b.thresholds.CallCount {
		thinking.AddThought("holding %d %s, calling it", bestCount, best.Name())
		return b.decide(state, "call", game.Decision{Action: game.Call, Suit: best}, bestStrength, thinking)
	}
	thinking.AddThought("no suit with %d or more cards, passing", b.thresholds.CallCount)
	return b.decide(state, "call", game.Decision{Action: game.Pass}, bestStrength, thinking)
}

// DecideAlone goes alone only with a near-certain march
func (b *Heuristic) DecideAlone(state game.TableState, suit euchre.Suit) bool {
	strength := b.strength(state, suit, &ThinkingContext{})
	alone := strength >= b.thresholds.Alone
	b.logger.Debug("Alone decision", "player", state.Name, "trump", suit.Name(), "strength", strength, "alone", alone)
	return alone
}

// DecideDiscard drops the weakest card, keeping trump whenever a plain
// card can go instead.
func (b *Heuristic) DecideDiscard(state game.TableState) euchre.Card {
	trump := b.trump(state)
	plain := make([]euchre.Card, 0, len(state.Hand))
	for _, c := range state.Hand {
		if !trump.IsTrump(c) {
			plain = append(plain, c)
		}
	}
	candidates := plain
	if len(candidates) == 0 {
		candidates = state.Hand
	}
	card, _ := trump.Lowest(candidates)
	b.logger.Debug("Discarding", "player", state.Name, "card", card)
	return card
}

// ChooseCard leads its strongest card, ducks under a partner who is
// already winning, takes the trick with its strongest winner when it can
// and otherwise throws its weakest card.
func (b *Heuristic) ChooseCard(state game.TableState, legal []euchre.Card) euchre.Card {
	trump := b.trump(state)
	thinking := &ThinkingContext{}

	var card euchre.Card
	switch {
	case state.Leading():
		card, _ = trump.Highest(legal)
		thinking.AddThought("leading with %s", card.Name())
	case state.PartnerWinning():
		card, _ = trump.Lowest(legal)
		thinking.AddThought("partner has the trick, playing %s", card.Name())
	default:
		best, _ := state.Winning()
		led := trump.LedSuit(state.Trick[0].Card)
		var winners []euchre.Card
		for _, c := range legal {
			if trump.Beats(c, best.Card, led) {
				winners = append(winners, c)
			}
		}
		if len(winners) > 0 {
			card, _ = trump.Highest(winners)
			thinking.AddThought("%s beats %s", card.Name(), best.Card.Name())
		} else {
			card, _ = trump.Lowest(legal)
			thinking.AddThought("cannot beat %s, throwing %s", best.Card.Name(), card.Name())
		}
	}

	b.logger.Debug("Card chosen", "player", state.Name, "card", card, "reasoning", thinking.GetThoughts())
	return card
}

// strength evaluates the hand for suit. A dealer weighing the revealed
// card counts it in place of their weakest card.
func (b *Heuristic) strength(state game.TableState, suit euchre.Suit, thinking *ThinkingContext) int {
	hand := state.Hand
	if state.Phase == game.PhaseBidding1 && state.IsDealer() && suit == state.Revealed.Suit {
		trump := euchre.NewTrump(suit, euchre.NoSeat)
		weakest, _ := trump.Lowest(hand)
		hand = make([]euchre.Card, 0, len(state.Hand))
		for _, c := range state.Hand {
			if c != weakest {
				hand = append(hand, c)
			}
		}
		hand = append(hand, state.Revealed)
		thinking.AddThought("picking up %s and dropping %s", state.Revealed.Name(), weakest.Name())
	}
	strength := EvaluateHandStrength(hand, suit)
	thinking.AddThought("hand strength with %s trump is %d", suit.Name(), strength)
	return strength
}

// trump returns the hand's trump context, or a plain context keyed on
// the revealed suit before trump is set.
func (b *Heuristic) trump(state game.TableState) euchre.Trump {
	if state.Trump != nil {
		return *state.Trump
	}
	return euchre.NewTrump(state.Revealed.Suit, euchre.NoSeat)
}

func (b *Heuristic) decide(state game.TableState, kind string, d game.Decision, strength int, thinking *ThinkingContext) game.Decision {
	d.Reasoning = thinking.GetThoughts()
	b.logger.Info("Bot decision made",
		"player", state.Name,
		"kind", kind,
		"hand", state.Hand,
		"strength", strength,
		"decision", d.Action.String(),
		"reasoning", d.Reasoning)
	return d
}
