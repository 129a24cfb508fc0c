package game

import (
	"time"

	"github.com/lox/euchre/euchre"
)

// EventType represents a game event type with type safety
type EventType string

// EventType constants for game domain events
const (
	EventTypeHandStart     EventType = "hand_start"
	EventTypeBid           EventType = "bid"
	EventTypeTrumpSet      EventType = "trump_set"
	EventTypeRedeal        EventType = "redeal"
	EventTypeDiscard       EventType = "discard"
	EventTypeCardPlayed    EventType = "card_played"
	EventTypeTrickComplete EventType = "trick_complete"
	EventTypeHandEnd       EventType = "hand_end"
	EventTypeGameEnd       EventType = "game_end"
)

// String returns the string representation of the event type
func (et EventType) String() string {
	return string(et)
}

// GameEvent represents any event that occurs during a game. Every event
// carries a snapshot of the table taken right after the transition.
type GameEvent interface {
	EventType() EventType
	Timestamp() time.Time
	State() Snapshot
}

type baseEvent struct {
	Snapshot  Snapshot
	timestamp time.Time
}

func (e baseEvent) Timestamp() time.Time { return e.timestamp }
func (e baseEvent) State() Snapshot      { return e.Snapshot }

// HandStartEvent is published after the deal
type HandStartEvent struct {
	baseEvent
	Hand     int // 1-based hand number within the game
	Dealer   int
	Revealed euchre.Card
}

func (e HandStartEvent) EventType() EventType { return EventTypeHandStart }

// BidEvent is published for every bidding action
type BidEvent struct {
	baseEvent
	Bid       Bid
	Reasoning string
}

func (e BidEvent) EventType() EventType { return EventTypeBid }

// TrumpSetEvent is published when a bid names trump
type TrumpSetEvent struct {
	baseEvent
	Trump euchre.Trump
	Seat  int // seat that named trump
}

func (e TrumpSetEvent) EventType() EventType { return EventTypeTrumpSet }

// RedealEvent is published when every seat passes twice
type RedealEvent struct {
	baseEvent
	Dealer     int
	TurnedDown euchre.Card
}

func (e RedealEvent) EventType() EventType { return EventTypeRedeal }

// DiscardEvent is published when the dealer discards. The card is not
// included since other seats never see it.
type DiscardEvent struct {
	baseEvent
	Seat int
}

func (e DiscardEvent) EventType() EventType { return EventTypeDiscard }

// CardPlayedEvent is published for every card played
type CardPlayedEvent struct {
	baseEvent
	Play euchre.Play
}

func (e CardPlayedEvent) EventType() EventType { return EventTypeCardPlayed }

// TrickCompleteEvent is published when a trick is resolved
type TrickCompleteEvent struct {
	baseEvent
	Trick CompletedTrick
}

func (e TrickCompleteEvent) EventType() EventType { return EventTypeTrickComplete }

// HandEndEvent is published after a hand is scored
type HandEndEvent struct {
	baseEvent
	Score  HandScore
	Scores [NumTeams]int
}

func (e HandEndEvent) EventType() EventType { return EventTypeHandEnd }

// GameEndEvent is published once a team reaches the winning score
type GameEndEvent struct {
	baseEvent
	Winner int
	Scores [NumTeams]int
	Hands  int
}

func (e GameEndEvent) EventType() EventType { return EventTypeGameEnd }

// EventSubscriber can subscribe to game events
type EventSubscriber interface {
	OnEvent(event GameEvent)
}

// EventSubscriberFunc adapts a function to an EventSubscriber
type EventSubscriberFunc func(event GameEvent)

// OnEvent calls f(event)
func (f EventSubscriberFunc) OnEvent(event GameEvent) { f(event) }

// EventBus manages event publishing and subscription
type EventBus interface {
	Subscribe(subscriber EventSubscriber)
	Unsubscribe(subscriber EventSubscriber)
	Publish(event GameEvent)
}

// SimpleEventBus is a basic in-memory event bus. Delivery is synchronous
// and in subscription order, so subscribers observe events in game order.
type SimpleEventBus struct {
	subscribers []EventSubscriber
}

// NewEventBus creates a new event bus
func NewEventBus() EventBus {
	return &SimpleEventBus{
		subscribers: make([]EventSubscriber, 0),
	}
}

// Subscribe adds a subscriber to receive events
func (bus *SimpleEventBus) Subscribe(subscriber EventSubscriber) {
	bus.subscribers = append(bus.subscribers, subscriber)
}

// Unsubscribe removes a subscriber. Function subscribers are not
// comparable and cannot be removed.
func (bus *SimpleEventBus) Unsubscribe(subscriber EventSubscriber) {
	if _, ok := subscriber.(EventSubscriberFunc); ok {
		return
	}
	for i, sub := range bus.subscribers {
		if _, ok := sub.(EventSubscriberFunc); ok {
			continue
		}
		if sub == subscriber {
			bus.subscribers = append(bus.subscribers[:i], bus.subscribers[i+1:]...)
			break
		}
	}
}

// Publish sends an event to all subscribers
func (bus *SimpleEventBus) Publish(event GameEvent) {
	for _, subscriber := range bus.subscribers {
		subscriber.OnEvent(event)
	}
}
