package game

import (
	"github.com/rs/zerolog"

	"github.com/mitchelldurbincs/TerritoryCapture/internal/game/core"
	"github.com/mitchelldurbincs/TerritoryCapture/internal/game/events"
)

// IncomeManager pays out resource yield at the start of a player's turn
type IncomeManager struct {
	publisher events.Publisher
	gameID    string
	logger    zerolog.Logger
}

// NewIncomeManager creates a new income manager
func NewIncomeManager(publisher events.Publisher, gameID string, logger zerolog.Logger) *IncomeManager {
	return &IncomeManager{
		publisher: publisher,
		gameID:    gameID,
		logger:    logger.With().Str("component", "IncomeManager").Logger(),
	}
}

// Income sums the resource yield of every tile the player owns
func (im *IncomeManager) Income(board *core.Board, playerID int) int {
	total := 0
	for tile := range board.OwnedTiles(playerID) {
		total += tile.ResourceYield
	}
	return total
}

// ApplyIncome credits the player with their income and returns the amount paid
func (im *IncomeManager) ApplyIncome(board *core.Board, player *core.Player, turn int) int {
	income := im.Income(board, player.ID)
	player.AddResources(income)

	im.logger.Debug().
		Int("turn", turn).
		Int("player_id", player.ID).
		Int("income", income).
		Int("resources", player.Resources).
		Msg("Income applied")

	if income > 0 && im.publisher != nil {
		im.publisher.Publish(events.NewIncomeAppliedEvent(im.gameID, player.ID, income, player.Resources, turn))
	}
	return income
}
