package states

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mitchelldurbincs/TerritoryCapture/internal/game/events"
)

func TestTurnPhase_String(t *testing.T) {
	tests := []struct {
		phase    TurnPhase
		expected string
	}{
		{PhasePlayer0Active, "Player0Active"},
		{PhasePlayer1Active, "Player1Active"},
		{TurnPhase(7), "Unknown(7)"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.phase.String())
		})
	}
}

func TestTurnPhase_Alternation(t *testing.T) {
	assert.Equal(t, PhasePlayer1Active, PhasePlayer0Active.Next())
	assert.Equal(t, PhasePlayer0Active, PhasePlayer1Active.Next())

	assert.True(t, PhasePlayer0Active.CanTransitionTo(PhasePlayer1Active))
	assert.True(t, PhasePlayer1Active.CanTransitionTo(PhasePlayer0Active))
	assert.False(t, PhasePlayer0Active.CanTransitionTo(PhasePlayer0Active))
	assert.False(t, TurnPhase(5).CanTransitionTo(PhasePlayer0Active))

	assert.Equal(t, 0, PhasePlayer0Active.PlayerID())
	assert.Equal(t, 1, PhasePlayer1Active.PlayerID())
}

func TestTurnMachine_Advance(t *testing.T) {
	bus := events.NewEventBus(zerolog.Nop())
	var published []*events.StateTransitionEvent
	bus.SubscribeFunc(events.TypeStateTransition, func(e events.Event) {
		published = append(published, e.(*events.StateTransitionEvent))
	})

	tm := NewTurnMachine("game-1", bus, zerolog.Nop())
	assert.Equal(t, PhasePlayer0Active, tm.CurrentPhase())
	assert.Equal(t, 0, tm.ActivePlayer())

	assert.Equal(t, PhasePlayer1Active, tm.Advance(2, "end turn"))
	assert.Equal(t, PhasePlayer0Active, tm.Advance(3, "end turn"))
	assert.Equal(t, 0, tm.ActivePlayer())

	history := tm.GetHistory()
	require.Len(t, history, 2)
	assert.Equal(t, PhasePlayer0Active, history[0].From)
	assert.Equal(t, PhasePlayer1Active, history[0].To)
	assert.Equal(t, 2, history[0].Turn)
	assert.Equal(t, 3, history[1].Turn)

	require.Len(t, published, 2)
	assert.Equal(t, "game-1", published[0].GameID())
	assert.Equal(t, "Player0Active", published[0].FromPhase)
	assert.Equal(t, "Player1Active", published[0].ToPhase)
}

func TestTurnMachine_RejectsInvalidTransition(t *testing.T) {
	tm := NewTurnMachine("game-2", nil, zerolog.Nop())

	err := tm.TransitionTo(PhasePlayer0Active, 1, "stay")
	assert.Error(t, err)
	assert.Equal(t, PhasePlayer0Active, tm.CurrentPhase())
	assert.Empty(t, tm.GetHistory())
}

func TestTurnMachine_HistoryIsBounded(t *testing.T) {
	tm := NewTurnMachine("game-3", nil, zerolog.Nop())
	tm.maxHistorySize = 3

	for turn := 2; turn <= 10; turn++ {
		tm.Advance(turn, "end turn")
	}

	history := tm.GetHistory()
	require.Len(t, history, 3)
	assert.Equal(t, 8, history[0].Turn)
	assert.Equal(t, 10, history[2].Turn)

	history[0].Reason = "mutated"
	assert.Equal(t, "end turn", tm.GetHistory()[0].Reason, "GetHistory returns a copy")
}
