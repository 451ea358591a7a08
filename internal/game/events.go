package game

import (
	"time"

	"github.com/lox/blackjack/internal/deck"
)

// EventType represents a game event type with type safety
type EventType string

const (
	EventTypeRoundStarted EventType = "round_started"
	EventTypePlayerAction EventType = "player_action"
	EventTypeDealerDraw   EventType = "dealer_draw"
	EventTypeRoundSettled EventType = "round_settled"
)

// String returns the string representation of the event type
func (et EventType) String() string {
	return string(et)
}

// Event represents any event that occurs during a round
type Event interface {
	EventType() EventType
	Timestamp() time.Time
}

// RoundStartedEvent is published when a bet is accepted and dealing begins
type RoundStartedEvent struct {
	Number    int
	Bet       int
	Bankroll  int
	timestamp time.Time
}

func (e RoundStartedEvent) EventType() EventType { return EventTypeRoundStarted }
func (e RoundStartedEvent) Timestamp() time.Time { return e.timestamp }

// NewRoundStartedEvent creates a new round started event
func NewRoundStartedEvent(number, bet, bankroll int) RoundStartedEvent {
	return RoundStartedEvent{
		Number:    number,
		Bet:       bet,
		Bankroll:  bankroll,
		timestamp: time.Now(),
	}
}

// PlayerActionEvent is published after each applied player action. Card is
// nil for actions that draw no card (Stand, Split).
type PlayerActionEvent struct {
	HandIndex int
	Action    Action
	Card      *deck.Card
	Value     int
	timestamp time.Time
}

func (e PlayerActionEvent) EventType() EventType { return EventTypePlayerAction }
func (e PlayerActionEvent) Timestamp() time.Time { return e.timestamp }

// NewPlayerActionEvent creates a new player action event
func NewPlayerActionEvent(handIndex int, action Action, card *deck.Card, value int) PlayerActionEvent {
	return PlayerActionEvent{
		HandIndex: handIndex,
		Action:    action,
		Card:      card,
		Value:     value,
		timestamp: time.Now(),
	}
}

// DealerDrawEvent is published for each card the dealer draws
type DealerDrawEvent struct {
	Card      deck.Card
	Value     int
	timestamp time.Time
}

func (e DealerDrawEvent) EventType() EventType { return EventTypeDealerDraw }
func (e DealerDrawEvent) Timestamp() time.Time { return e.timestamp }

// NewDealerDrawEvent creates a new dealer draw event
func NewDealerDrawEvent(card deck.Card, value int) DealerDrawEvent {
	return DealerDrawEvent{Card: card, Value: value, timestamp: time.Now()}
}

// RoundSettledEvent is published exactly once, when the round settles
type RoundSettledEvent struct {
	Result    Result
	timestamp time.Time
}

func (e RoundSettledEvent) EventType() EventType { return EventTypeRoundSettled }
func (e RoundSettledEvent) Timestamp() time.Time { return e.timestamp }

// NewRoundSettledEvent creates a new round settled event
func NewRoundSettledEvent(result Result) RoundSettledEvent {
	return RoundSettledEvent{Result: result, timestamp: time.Now()}
}

// EventSubscriber can subscribe to round events
type EventSubscriber interface {
	OnEvent(event Event)
}

// EventBus manages event publishing and subscription
type EventBus interface {
	Subscribe(subscriber EventSubscriber)
	Unsubscribe(subscriber EventSubscriber)
	Publish(event Event)
}

// SimpleEventBus is a basic in-memory event bus implementation
type SimpleEventBus struct {
	subscribers []EventSubscriber
}

// NewEventBus creates a new event bus
func NewEventBus() EventBus {
	return &SimpleEventBus{subscribers: make([]EventSubscriber, 0)}
}

// Subscribe adds a subscriber to receive events
func (bus *SimpleEventBus) Subscribe(subscriber EventSubscriber) {
	bus.subscribers = append(bus.subscribers, subscriber)
}

// Unsubscribe removes a subscriber from receiving events
func (bus *SimpleEventBus) Unsubscribe(subscriber EventSubscriber) {
	for i, sub := range bus.subscribers {
		if sub == subscriber {
			bus.subscribers = append(bus.subscribers[:i], bus.subscribers[i+1:]...)
			break
		}
	}
}

// Publish sends an event to all subscribers
func (bus *SimpleEventBus) Publish(event Event) {
	for _, subscriber := range bus.subscribers {
		subscriber.OnEvent(event)
	}
}
