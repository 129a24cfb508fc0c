package game

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/euchre/euchre"
)

// MaxDecisionAttempts bounds how often an agent is asked again after an
// invalid decision before the engine applies a fallback.
const MaxDecisionAttempts = 3

// GameEngine runs the hand loop shared by interactive play and simulation.
// It is single-threaded: exactly one seat is asked for a decision at a time.
type GameEngine struct {
	game     *Game
	agents   [NumSeats]Agent
	logger   *log.Logger
	eventBus EventBus
	clock    quartz.Clock
}

// EngineOption configures a GameEngine
type EngineOption func(*GameEngine)

// WithEventBus publishes to an existing bus
func WithEventBus(bus EventBus) EngineOption {
	return func(ge *GameEngine) {
		ge.eventBus = bus
	}
}

// WithClock sets the clock used for event timestamps
func WithClock(clock quartz.Clock) EngineOption {
	return func(ge *GameEngine) {
		ge.clock = clock
	}
}

// NewGameEngine creates a new game engine with one agent per seat
func NewGameEngine(game *Game, agents [NumSeats]Agent, logger *log.Logger, opts ...EngineOption) *GameEngine {
	for seat, a := range agents {
		if a == nil {
			panic(fmt.Sprintf("no agent for seat %d", seat))
		}
	}
	ge := &GameEngine{
		game:   game,
		agents: agents,
		logger: logger,
	}
	for _, opt := range opts {
		opt(ge)
	}
	if ge.eventBus == nil {
		ge.eventBus = NewEventBus()
	}
	if ge.clock == nil {
		ge.clock = quartz.NewReal()
	}
	if ge.logger == nil {
		ge.logger = log.Default()
	}
	ge.logger = ge.logger.WithPrefix("engine")
	return ge
}

// GetEventBus returns the event bus for subscribing to game events
func (ge *GameEngine) GetEventBus() EventBus {
	return ge.eventBus
}

// Game returns the game being played
func (ge *GameEngine) Game() *Game {
	return ge.game
}

// HandResult summarizes one scored hand
type HandResult struct {
	Number  int              `json:"number"`
	Dealer  int              `json:"dealer"`
	Redeals int              `json:"redeals"` // deals thrown in before this one
	Maker   int              `json:"maker"`   // seat that named trump
	Trump   euchre.Trump     `json:"trump"`
	Bids    []Bid            `json:"bids"`
	Tricks  []CompletedTrick `json:"tricks"`
	Score   HandScore        `json:"score"`
	Scores  [NumTeams]int    `json:"scores"` // after this hand
}

// GameResult summarizes a finished game
type GameResult struct {
	GameID      string        `json:"game_id"`
	Winner      int           `json:"winner"`
	Scores      [NumTeams]int `json:"scores"`
	Hands       []HandResult  `json:"hands"`
	Redeals     int           `json:"redeals"`
	Euchres     int           `json:"euchres"`
	Marches     int           `json:"marches"`
	LoneMarches int           `json:"lone_marches"`
}

// PlayGame plays hands until a team reaches the winning score. The context
// is checked between hands and between redeals; a cancelled game returns
// the partial result with the context's error.
func (ge *GameEngine) PlayGame(ctx context.Context) (*GameResult, error) {
	g := ge.game
	result := &GameResult{GameID: g.ID}

	ge.logger.Info("Starting game", "id", g.ID, "target", g.WinningScore)

	for {
		if winner, ok := g.Winner(); ok {
			result.Winner = winner
			result.Scores = g.Scores()
			ge.logger.Info("Game over", "winner", g.Teams[winner].Name, "scores", result.Scores, "hands", len(result.Hands))
			ge.eventBus.Publish(GameEndEvent{
				baseEvent: ge.base(g.Snapshot()),
				Winner:    winner,
				Scores:    result.Scores,
				Hands:     len(result.Hands),
			})
			return result, nil
		}
		if err := ctx.Err(); err != nil {
			result.Scores = g.Scores()
			return result, err
		}

		hr, err := ge.PlayHand(ctx)
		if err != nil {
			result.Scores = g.Scores()
			return result, err
		}
		result.Hands = append(result.Hands, *hr)
		result.Redeals += hr.Redeals
		switch hr.Score.Kind {
		case ScoreEuchred:
			result.Euchres++
		case ScoreMarch:
			result.Marches++
		case ScoreLoneMarch:
			result.LoneMarches++
		}
	}
}

// PlayHand runs a complete hand from the deal to scoring, redealing with
// the next dealer whenever every seat passes twice. The dealer moves on
// once the hand is scored.
func (ge *GameEngine) PlayHand(ctx context.Context) (*HandResult, error) {
	g := ge.game
	redeals := 0

	var hand *HandState
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		hand = g.NewHand()
		if err := hand.Deal(); err != nil {
			return nil, fmt.Errorf("deal: %w", err)
		}
		ge.logger.Debug("Dealt hand", "dealer", g.Players[hand.Dealer()].Name, "revealed", hand.Revealed())
		ge.eventBus.Publish(HandStartEvent{
			baseEvent: ge.base(hand.Snapshot()),
			Hand:      g.HandsPlayed + 1,
			Dealer:    hand.Dealer(),
			Revealed:  hand.Revealed(),
		})

		for hand.Phase().IsBidding() {
			if err := ge.bid(hand, hand.CurrentSeat()); err != nil {
				return nil, err
			}
		}
		if hand.Phase() != PhaseRedeal {
			break
		}

		redeals++
		g.Redeals++
		ge.logger.Debug("Everyone passed, redealing", "dealer", g.Players[hand.Dealer()].Name)
		ge.eventBus.Publish(RedealEvent{
			baseEvent:  ge.base(hand.Snapshot()),
			Dealer:     hand.Dealer(),
			TurnedDown: hand.Revealed(),
		})
		g.Turns.NextDealer()
	}

	if hand.Phase() == PhaseDiscard {
		if err := ge.discard(hand); err != nil {
			return nil, err
		}
	}

	for hand.Phase() == PhasePlaying {
		if err := ge.play(hand, hand.CurrentSeat()); err != nil {
			return nil, err
		}
	}

	score, err := hand.Score()
	if err != nil {
		return nil, err
	}
	g.HandsPlayed++

	trump, _ := hand.Trump()
	result := &HandResult{
		Number:  g.HandsPlayed,
		Dealer:  hand.Dealer(),
		Redeals: redeals,
		Maker:   hand.Maker(),
		Trump:   trump,
		Bids:    hand.Bids(),
		Tricks:  hand.Tricks(),
		Score:   score,
		Scores:  g.Scores(),
	}

	ge.logger.Debug("Hand complete",
		"hand", result.Number,
		"trump", trump.Suit.Name(),
		"maker", g.Players[result.Maker].Name,
		"outcome", score.Kind,
		"points", score.Points,
		"scores", result.Scores)
	ge.eventBus.Publish(HandEndEvent{
		baseEvent: ge.base(hand.Snapshot()),
		Score:     score,
		Scores:    result.Scores,
	})

	g.Turns.NextDealer()
	return result, nil
}

// bid asks seat for a bid until one is accepted, falling back to a pass
func (ge *GameEngine) bid(hand *HandState, seat int) error {
	agent := ge.agents[seat]
	name := ge.game.Players[seat].Name

	var decision Decision
	var err error
	for attempt := 1; attempt <= MaxDecisionAttempts; attempt++ {
		state := hand.TableState(seat)
		if hand.Phase() == PhaseBidding1 {
			decision = agent.DecideOrder(state)
		} else {
			decision = agent.DecideCall(state)
		}

		err = ge.applyBid(hand, seat, agent, decision)
		if err == nil {
			break
		}
		if !IsInvalidDecision(err) {
			return err
		}
		ge.logger.Warn("Rejected bid", "player", name, "attempt", attempt, "error", err)
	}
	if err != nil {
		ge.logger.Error("Falling back to pass", "player", name, "error", err)
		decision = Decision{Action: Pass, Reasoning: "fallback after invalid decisions"}
		if err := hand.Pass(seat); err != nil {
			return err
		}
	}

	bids := hand.Bids()
	bid := bids[len(bids)-1]
	ge.logger.Debug("Bid", "player", name, "round", bid.Round, "action", bid.Action, "suit", bid.Suit.Name(), "alone", bid.Alone, "reasoning", decision.Reasoning)
	ge.eventBus.Publish(BidEvent{
		baseEvent: ge.base(hand.Snapshot()),
		Bid:       bid,
		Reasoning: decision.Reasoning,
	})

	if trump, ok := hand.Trump(); ok {
		ge.eventBus.Publish(TrumpSetEvent{
			baseEvent: ge.base(hand.Snapshot()),
			Trump:     trump,
			Seat:      seat,
		})
	}
	return nil
}

func (ge *GameEngine) applyBid(hand *HandState, seat int, agent Agent, d Decision) error {
	switch d.Action {
	case Pass:
		return hand.Pass(seat)
	case OrderUp:
		if hand.Phase() != PhaseBidding1 {
			return &InvalidDecisionError{Seat: seat, Reason: "the up card has been turned down"}
		}
		alone := agent.DecideAlone(hand.TableState(seat), hand.Revealed().Suit)
		return hand.OrderUp(seat, alone)
	case Call:
		if hand.Phase() != PhaseBidding2 {
			return &InvalidDecisionError{Seat: seat, Reason: "order up or pass while the up card is showing"}
		}
		if !hand.CanCall(d.Suit) {
			// Let the hand produce the rejection without asking about going alone
			return hand.Call(seat, d.Suit, false)
		}
		alone := agent.DecideAlone(hand.TableState(seat), d.Suit)
		return hand.Call(seat, d.Suit, alone)
	default:
		return &InvalidDecisionError{Seat: seat, Reason: fmt.Sprintf("unknown action %d", d.Action)}
	}
}

// discard asks the dealer for a discard, falling back to the lowest card
func (ge *GameEngine) discard(hand *HandState) error {
	seat := hand.Dealer()
	name := ge.game.Players[seat].Name

	var err error
	for attempt := 1; attempt <= MaxDecisionAttempts; attempt++ {
		card := ge.agents[seat].DecideDiscard(hand.TableState(seat))
		if err = hand.Discard(seat, card); err == nil {
			break
		}
		if !IsInvalidDecision(err) {
			return err
		}
		ge.logger.Warn("Rejected discard", "player", name, "attempt", attempt, "error", err)
	}
	if err != nil {
		trump, _ := hand.Trump()
		low, _ := trump.Lowest(hand.Player(seat).Hand)
		ge.logger.Error("Falling back to lowest discard", "player", name, "card", low)
		if err := hand.Discard(seat, low); err != nil {
			return err
		}
	}

	ge.eventBus.Publish(DiscardEvent{
		baseEvent: ge.base(hand.Snapshot()),
		Seat:      seat,
	})
	return nil
}

// play asks seat for a card, falling back to the first legal card
func (ge *GameEngine) play(hand *HandState, seat int) error {
	name := ge.game.Players[seat].Name

	var card euchre.Card
	var done *CompletedTrick
	var err error
	for attempt := 1; attempt <= MaxDecisionAttempts; attempt++ {
		legal := hand.LegalPlays(seat)
		card = ge.agents[seat].ChooseCard(hand.TableState(seat), legal)
		if done, err = hand.Play(seat, card); err == nil {
			break
		}
		if !IsInvalidDecision(err) {
			return err
		}
		ge.logger.Warn("Rejected card", "player", name, "card", card, "attempt", attempt, "error", err)
	}
	if err != nil {
		card = hand.LegalPlays(seat)[0]
		ge.logger.Error("Falling back to first legal card", "player", name, "card", card)
		if done, err = hand.Play(seat, card); err != nil {
			return err
		}
	}

	ge.logger.Debug("Card played", "player", name, "card", card)
	ge.eventBus.Publish(CardPlayedEvent{
		baseEvent: ge.base(hand.Snapshot()),
		Play:      euchre.Play{Seat: seat, Card: card},
	})

	if done != nil {
		ge.logger.Debug("Trick complete", "trick", done.Number, "winner", ge.game.Players[done.Winner.Seat].Name, "card", done.Winner.Card)
		ge.eventBus.Publish(TrickCompleteEvent{
			baseEvent: ge.base(hand.Snapshot()),
			Trick:     *done,
		})
	}
	return nil
}

func (ge *GameEngine) base(s Snapshot) baseEvent {
	return baseEvent{Snapshot: s, timestamp: ge.now()}
}

func (ge *GameEngine) now() time.Time {
	return ge.clock.Now()
}
