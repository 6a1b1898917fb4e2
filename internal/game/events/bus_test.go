package events

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/mitchelldurbincs/TerritoryCapture/internal/game/core"
)

func TestEventBus(t *testing.T) {
	bus := NewEventBus(zerolog.Nop())

	received := false
	var receivedEvent Event

	id := bus.SubscribeFunc(TypeGameStarted, func(e Event) {
		received = true
		receivedEvent = e
	})
	assert.Equal(t, "game.started_func_1", id)

	bus.Publish(NewGameStartedEvent("test-game", 5, 3))

	assert.True(t, received, "Event handler should have been called")
	assert.Equal(t, TypeGameStarted, receivedEvent.Type())
	assert.Equal(t, "test-game", receivedEvent.GameID())
	assert.False(t, receivedEvent.Timestamp().IsZero())
}

func TestEventBusMultipleHandlersInOrder(t *testing.T) {
	bus := NewEventBus(zerolog.Nop())

	var calls []string
	bus.SubscribeFunc(TypeTurnStarted, func(e Event) { calls = append(calls, "first") })
	bus.SubscribeFunc(TypeTurnStarted, func(e Event) { calls = append(calls, "second") })
	bus.SubscribeFunc(TypeTurnEnded, func(e Event) { calls = append(calls, "other") })

	bus.Publish(NewTurnStartedEvent("test-game", 1, 0))

	assert.Equal(t, []string{"first", "second"}, calls)
	assert.Equal(t, 2, bus.GetFuncHandlerCount(TypeTurnStarted))
}

type TestSubscriber struct {
	id              string
	interestedTypes map[string]bool
	receivedEvents  []Event
}

func (ts *TestSubscriber) ID() string {
	return ts.id
}

func (ts *TestSubscriber) HandleEvent(e Event) {
	ts.receivedEvents = append(ts.receivedEvents, e)
}

func (ts *TestSubscriber) InterestedIn(eventType string) bool {
	if ts.interestedTypes == nil {
		return true
	}
	return ts.interestedTypes[eventType]
}

func TestEventBusSubscriber(t *testing.T) {
	bus := NewEventBus(zerolog.Nop())

	subscriber := &TestSubscriber{
		id: "test-subscriber",
		interestedTypes: map[string]bool{
			TypeTileCaptured: true,
			TypeGameEnded:    true,
		},
	}

	bus.Subscribe(subscriber)
	assert.Equal(t, 1, bus.GetSubscriberCount())

	bus.Publish(NewTileCapturedEvent("test-game", 0, core.NeutralID, core.NewCoordinate(1, 1), core.BoostNone, 2))
	bus.Publish(NewTurnStartedEvent("test-game", 1, 0))
	bus.Publish(NewGameEndedEvent("test-game", 0, time.Minute, 10))

	assert.Len(t, subscriber.receivedEvents, 2)
	assert.Equal(t, TypeTileCaptured, subscriber.receivedEvents[0].Type())
	assert.Equal(t, TypeGameEnded, subscriber.receivedEvents[1].Type())

	bus.Unsubscribe(subscriber.ID())
	bus.Publish(NewGameEndedEvent("test-game", 0, time.Minute, 10))

	assert.Len(t, subscriber.receivedEvents, 2)
	assert.Equal(t, 0, bus.GetSubscriberCount())
}

func TestEventBusRecoversFromPanics(t *testing.T) {
	bus := NewEventBus(zerolog.Nop())

	after := false
	bus.SubscribeFunc(TypePlayerWon, func(e Event) { panic("boom") })
	bus.SubscribeFunc(TypePlayerWon, func(e Event) { after = true })

	assert.NotPanics(t, func() {
		bus.Publish(NewPlayerWonEvent("test-game", 0, core.NewCoordinate(4, 1), 3))
	})
	assert.True(t, after, "later handlers still run")
}
