package game

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/mitchelldurbincs/TerritoryCapture/internal/game/core"
	"github.com/mitchelldurbincs/TerritoryCapture/internal/game/events"
)

// TurnProcessor handles the orchestration of ending a turn
type TurnProcessor struct {
	engine *Engine
	logger zerolog.Logger
}

// NewTurnProcessor creates a new turn processor
func NewTurnProcessor(engine *Engine) *TurnProcessor {
	return &TurnProcessor{
		engine: engine,
		logger: engine.logger.With().Str("component", "TurnProcessor").Logger(),
	}
}

// EndTurn resolves captures, checks for a winner and, if the match goes
// on, passes the turn to the other player.
func (tp *TurnProcessor) EndTurn() error {
	if err := tp.validateGameState(); err != nil {
		return err
	}

	e := tp.engine
	turnLogger := tp.logger.With().Int("turn", e.turn).Int("player_id", e.currentPlayer).Logger()
	turnLogger.Debug().Msg("Ending turn")

	captured := tp.processResolutionPhase(turnLogger)
	tp.publishTurnEnded(len(captured))

	if winner, won := e.CheckWin(); won {
		tp.finishGame(winner, turnLogger)
		return nil
	}

	tp.processTransitionPhase(turnLogger)
	return nil
}

// validateGameState ensures the match is still running
func (tp *TurnProcessor) validateGameState() error {
	e := tp.engine
	if e.gameOver {
		tp.logger.Warn().
			Int("turn", e.turn).
			Int("winner", e.winner).
			Msg("Attempted to end turn in a game that is already over")
		return core.NewGameError(e.turn, core.NeutralID, "end turn", core.ErrGameOver)
	}
	return nil
}

// processResolutionPhase advances all contested tiles
func (tp *TurnProcessor) processResolutionPhase(turnLogger zerolog.Logger) []core.Coordinate {
	results := tp.engine.ResolveCaptures()

	captured := make([]core.Coordinate, 0, len(results))
	for _, r := range results {
		captured = append(captured, r.Tile)
	}

	turnLogger.Debug().
		Int("captured", len(captured)).
		Msg("Finished resolving captures")
	return captured
}

// finishGame records the winner and publishes the end-of-game events
func (tp *TurnProcessor) finishGame(winner int, turnLogger zerolog.Logger) {
	e := tp.engine
	e.gameOver = true
	e.winner = winner

	turnLogger.Info().
		Int("winner", winner).
		Dur("duration", time.Since(e.startTime)).
		Msg("Game over")

	e.eventBus.Publish(events.NewPlayerWonEvent(e.gameID, winner, e.layout.Objective, e.turn))
	e.eventBus.Publish(events.NewGameEndedEvent(e.gameID, winner, time.Since(e.startTime), e.turn))
}

// processTransitionPhase hands the turn to the other player and starts it
func (tp *TurnProcessor) processTransitionPhase(turnLogger zerolog.Logger) {
	e := tp.engine
	e.turnMachine.Advance(e.turn+1, "end turn")

	e.currentPlayer = e.turnMachine.ActivePlayer()
	e.turn++

	turnLogger.Debug().
		Int("next_player_id", e.currentPlayer).
		Int("next_turn", e.turn).
		Msg("Turn passed")

	e.StartTurn()
}

// publishTurnEnded publishes the turn ended event
func (tp *TurnProcessor) publishTurnEnded(captured int) {
	e := tp.engine
	e.eventBus.Publish(events.NewTurnEndedEvent(
		e.gameID,
		e.turn,
		e.currentPlayer,
		captured,
		time.Since(e.turnStartTime),
	))
}
