package game

import (
	"github.com/charmbracelet/log"

	"github.com/lox/euchre/euchre"
)

// MaxPromptAttempts bounds how often a human is re-prompted for one decision
const MaxPromptAttempts = 5

// Prompter collects decisions from a person. Implementations live in the
// presentation layer; the game package only validates the answers.
type Prompter interface {
	// PromptOrder asks whether to order up the revealed card
	PromptOrder(state TableState) (bool, error)
	// PromptCall asks for a suit to name, or ok=false to pass
	PromptCall(state TableState) (suit euchre.Suit, ok bool, err error)
	// PromptAlone asks whether to play alone with suit as trump
	PromptAlone(state TableState, suit euchre.Suit) (bool, error)
	// PromptDiscard asks the dealer which card to drop
	PromptDiscard(state TableState) (euchre.Card, error)
	// PromptPlay asks for a card from legal
	PromptPlay(state TableState, legal []euchre.Card) (euchre.Card, error)
	// Reject tells the person why their last answer was refused
	Reject(reason string)
}

// HumanAgent adapts a Prompter to the Agent interface. Answers the rules
// would refuse are rejected and asked again; prompt failures fall back to
// passing or the first legal card.
type HumanAgent struct {
	prompter Prompter
	logger   *log.Logger
}

var _ Agent = (*HumanAgent)(nil)

// NewHumanAgent creates a new human agent
func NewHumanAgent(prompter Prompter, logger *log.Logger) *HumanAgent {
	if logger == nil {
		logger = log.Default()
	}
	return &HumanAgent{
		prompter: prompter,
		logger:   logger.WithPrefix("human"),
	}
}

// DecideOrder prompts for order-up or pass
func (h *HumanAgent) DecideOrder(state TableState) Decision {
	if h.prompter == nil {
		return Decision{Action: Pass, Reasoning: "no user interface available"}
	}
	order, err := h.prompter.PromptOrder(state)
	if err != nil {
		h.logger.Warn("Order prompt failed, passing", "error", err)
		return Decision{Action: Pass, Reasoning: "input error"}
	}
	if order {
		return Decision{Action: OrderUp, Suit: state.Revealed.Suit, Reasoning: "player ordered up"}
	}
	return Decision{Action: Pass, Reasoning: "player passed"}
}

// DecideCall prompts for a suit until one other than the turned-down suit
// is named or the player passes.
func (h *HumanAgent) DecideCall(state TableState) Decision {
	if h.prompter == nil {
		return Decision{Action: Pass, Reasoning: "no user interface available"}
	}
	for attempt := 0; attempt < MaxPromptAttempts; attempt++ {
		suit, ok, err := h.prompter.PromptCall(state)
		if err != nil {
			h.logger.Warn("Call prompt failed, passing", "error", err)
			return Decision{Action: Pass, Reasoning: "input error"}
		}
		if !ok {
			return Decision{Action: Pass, Reasoning: "player passed"}
		}
		if !suit.Valid() || suit == state.Revealed.Suit {
			h.prompter.Reject(suit.Name() + " was turned down, choose another suit or pass")
			continue
		}
		return Decision{Action: Call, Suit: suit, Reasoning: "player called " + suit.Name()}
	}
	return Decision{Action: Pass, Reasoning: "too many invalid answers"}
}

// DecideAlone prompts whether to go alone
func (h *HumanAgent) DecideAlone(state TableState, suit euchre.Suit) bool {
	if h.prompter == nil {
		return false
	}
	alone, err := h.prompter.PromptAlone(state, suit)
	if err != nil {
		h.logger.Warn("Alone prompt failed, playing with partner", "error", err)
		return false
	}
	return alone
}

// DecideDiscard prompts until the dealer names a card they hold
func (h *HumanAgent) DecideDiscard(state TableState) euchre.Card {
	fallback := state.Hand[0]
	if state.Trump != nil {
		fallback, _ = state.Trump.Lowest(state.Hand)
	}
	if h.prompter == nil {
		return fallback
	}
	for attempt := 0; attempt < MaxPromptAttempts; attempt++ {
		card, err := h.prompter.PromptDiscard(state)
		if err != nil {
			h.logger.Warn("Discard prompt failed", "error", err, "fallback", fallback)
			return fallback
		}
		if euchre.Contains(state.Hand, card) {
			return card
		}
		h.prompter.Reject("you do not hold " + card.Name())
	}
	return fallback
}

// ChooseCard prompts until a legal card is chosen
func (h *HumanAgent) ChooseCard(state TableState, legal []euchre.Card) euchre.Card {
	if h.prompter == nil {
		return legal[0]
	}
	for attempt := 0; attempt < MaxPromptAttempts; attempt++ {
		card, err := h.prompter.PromptPlay(state, legal)
		if err != nil {
			h.logger.Warn("Play prompt failed", "error", err, "fallback", legal[0])
			return legal[0]
		}
		if euchre.Contains(legal, card) {
			return card
		}
		if euchre.Contains(state.Hand, card) {
			h.prompter.Reject(card.Name() + " does not follow suit")
		} else {
			h.prompter.Reject("you do not hold " + card.Name())
		}
	}
	return legal[0]
}
