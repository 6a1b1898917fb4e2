package rules

import (
	"github.com/rs/zerolog"

	"github.com/mitchelldurbincs/TerritoryCapture/internal/game/core"
)

// WinConditionChecker detects the end of a match
type WinConditionChecker struct {
	logger zerolog.Logger
}

// NewWinConditionChecker creates a new win condition checker
func NewWinConditionChecker(logger zerolog.Logger) *WinConditionChecker {
	return &WinConditionChecker{
		logger: logger.With().Str("component", "WinConditionChecker").Logger(),
	}
}

// CheckObjective returns the player holding an objective tile taken from
// its defender. Tiles are scanned in row-major order and the first match wins.
func (wc *WinConditionChecker) CheckObjective(board *core.Board) (int, bool) {
	for tile := range board.AllTiles() {
		if !tile.IsObjective || tile.IsNeutral() || tile.Owner == tile.DefenderID {
			continue
		}
		wc.logger.Info().
			Int("winner_player_id", tile.Owner).
			Int("defender_id", tile.DefenderID).
			Str("objective", tile.Pos().String()).
			Msg("Winner determined")
		return tile.Owner, true
	}

	wc.logger.Debug().Msg("No objective has fallen")
	return core.NeutralID, false
}
