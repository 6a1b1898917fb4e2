package states

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/mitchelldurbincs/TerritoryCapture/internal/game/events"
)

const defaultMaxHistory = 1000

// Transition represents a turn hand-over in the history
type Transition struct {
	From      TurnPhase
	To        TurnPhase
	Turn      int
	Timestamp time.Time
	Reason    string
}

// TurnMachine tracks the active phase and the history of hand-overs.
// It is owned by a single match and is not safe for concurrent use.
type TurnMachine struct {
	gameID         string
	currentPhase   TurnPhase
	history        []Transition
	maxHistorySize int
	publisher      events.Publisher
	logger         zerolog.Logger
}

// NewTurnMachine creates a machine starting with player 0 active.
// publisher may be nil.
func NewTurnMachine(gameID string, publisher events.Publisher, logger zerolog.Logger) *TurnMachine {
	return &TurnMachine{
		gameID:         gameID,
		currentPhase:   PhasePlayer0Active,
		history:        make([]Transition, 0, 64),
		maxHistorySize: defaultMaxHistory,
		publisher:      publisher,
		logger:         logger.With().Str("component", "TurnMachine").Logger(),
	}
}

// CurrentPhase returns the active phase
func (tm *TurnMachine) CurrentPhase() TurnPhase {
	return tm.currentPhase
}

// ActivePlayer returns the id of the player whose turn it is
func (tm *TurnMachine) ActivePlayer() int {
	return tm.currentPhase.PlayerID()
}

// Advance passes the turn to the other player. turn is the turn number
// the new phase begins.
func (tm *TurnMachine) Advance(turn int, reason string) TurnPhase {
	target := tm.currentPhase.Next()
	if err := tm.TransitionTo(target, turn, reason); err != nil {
		// Next() always yields an allowed target.
		panic(err)
	}
	return target
}

// TransitionTo moves to targetPhase if the hand-over is allowed.
func (tm *TurnMachine) TransitionTo(targetPhase TurnPhase, turn int, reason string) error {
	if !tm.currentPhase.CanTransitionTo(targetPhase) {
		return fmt.Errorf("invalid transition from %s to %s", tm.currentPhase, targetPhase)
	}

	previousPhase := tm.currentPhase
	tm.addToHistory(Transition{
		From:      previousPhase,
		To:        targetPhase,
		Turn:      turn,
		Timestamp: time.Now(),
		Reason:    reason,
	})
	tm.currentPhase = targetPhase

	if tm.publisher != nil {
		tm.publisher.Publish(events.NewStateTransitionEvent(
			tm.gameID,
			previousPhase.String(),
			targetPhase.String(),
			reason,
		))
	}

	tm.logger.Debug().
		Str("from_phase", previousPhase.String()).
		Str("to_phase", targetPhase.String()).
		Int("turn", turn).
		Str("reason", reason).
		Msg("Turn handed over")

	return nil
}

func (tm *TurnMachine) addToHistory(transition Transition) {
	tm.history = append(tm.history, transition)
	if len(tm.history) > tm.maxHistorySize {
		tm.history = tm.history[len(tm.history)-tm.maxHistorySize:]
	}
}

// GetHistory returns a copy of the transition history
func (tm *TurnMachine) GetHistory() []Transition {
	history := make([]Transition, len(tm.history))
	copy(history, tm.history)
	return history
}
