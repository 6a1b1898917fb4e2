package processor

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/mitchelldurbincs/TerritoryCapture/internal/game/core"
	"github.com/mitchelldurbincs/TerritoryCapture/internal/game/events"
)

// CaptureResult describes a tile that changed hands during resolution.
type CaptureResult struct {
	Tile          core.Coordinate
	PlayerID      int
	PreviousOwner int
}

// CaptureProcessor starts, abandons and resolves capture attempts. Every
// rejected request leaves board and players untouched.
type CaptureProcessor struct {
	gameID    string
	publisher events.Publisher
	logger    zerolog.Logger
}

// NewCaptureProcessor creates a capture processor. publisher may be nil.
func NewCaptureProcessor(gameID string, publisher events.Publisher, logger zerolog.Logger) *CaptureProcessor {
	return &CaptureProcessor{
		gameID:    gameID,
		publisher: publisher,
		logger:    logger.With().Str("component", "CaptureProcessor").Logger(),
	}
}

// StartCapture makes attacker contest the tile at (x, y) for cost resources
// and one capture slot.
func (cp *CaptureProcessor) StartCapture(board *core.Board, attacker *core.Player, x, y, cost int) error {
	if err := cp.validateStart(board, attacker, x, y, cost); err != nil {
		wrapped := core.WrapCaptureError(attacker.ID, x, y, err)
		cp.logger.Debug().Err(wrapped).Int("player_id", attacker.ID).Msg("Capture rejected")
		cp.publish(events.NewCaptureRejectedEvent(cp.gameID, attacker.ID, core.NewCoordinate(x, y), err))
		return wrapped
	}

	// validateStart guarantees both of these succeed.
	attacker.TrySpendResources(cost)
	attacker.TryReserveCaptureSlot()

	tile := board.GetTile(x, y)
	tile.BeginCapture(attacker.ID)

	cp.logger.Debug().
		Int("player_id", attacker.ID).
		Int("x", x).
		Int("y", y).
		Int("cost", cost).
		Int("resources_left", attacker.Resources).
		Int("capacity_used", attacker.CapacityUsed).
		Msg("Capture started")
	cp.publish(events.NewCaptureStartedEvent(cp.gameID, attacker.ID, tile.Pos(), cost))

	return nil
}

func (cp *CaptureProcessor) validateStart(board *core.Board, attacker *core.Player, x, y, cost int) error {
	if !board.InBounds(x, y) {
		return core.ErrInvalidCoordinates
	}
	tile := board.GetTile(x, y)
	if tile.IsContested() {
		return core.ErrTileContested
	}
	if !tile.CanBeCapturedBy(attacker, board) {
		return core.ErrNotCapturable
	}
	if !attacker.HasFreeCaptureSlot() {
		return core.ErrNoCaptureSlot
	}
	if cost < 0 || attacker.Resources < cost {
		return core.ErrInsufficientResources
	}
	return nil
}

// AbandonCapture withdraws player's contest on (x, y). Progress is lost,
// the slot is released and the cost is not refunded.
func (cp *CaptureProcessor) AbandonCapture(board *core.Board, player *core.Player, x, y int) error {
	if !board.InBounds(x, y) {
		return core.WrapCaptureError(player.ID, x, y, core.ErrInvalidCoordinates)
	}
	tile := board.GetTile(x, y)
	if tile.CapturingPlayerID != player.ID {
		return core.WrapCaptureError(player.ID, x, y, core.ErrNotContestedByPlayer)
	}

	lost := tile.CaptureProgress
	tile.ClearCapture()
	player.ReleaseCaptureSlot()

	cp.logger.Debug().
		Int("player_id", player.ID).
		Int("x", x).
		Int("y", y).
		Int("lost_progress", lost).
		Msg("Capture abandoned")
	cp.publish(events.NewCaptureAbandonedEvent(cp.gameID, player.ID, tile.Pos(), lost))

	return nil
}

// ResolveCaptures advances every contested tile once, in row-major order,
// and releases the attacker's slot for each completed capture.
func (cp *CaptureProcessor) ResolveCaptures(board *core.Board, players []*core.Player, turn int) []CaptureResult {
	var results []CaptureResult

	for tile := range board.AllTiles() {
		if !tile.IsContested() {
			continue
		}

		attackerID := tile.CapturingPlayerID
		if attackerID < 0 || attackerID >= len(players) || players[attackerID] == nil {
			cp.logger.Error().
				Err(core.WrapCaptureError(attackerID, tile.X(), tile.Y(), core.ErrInvalidPlayer)).
				Msg("Dropping contest held by unknown player")
			tile.ClearCapture()
			continue
		}
		attacker := players[attackerID]

		previousOwner := tile.Owner
		if !tile.AdvanceCapture(attacker, board) {
			cp.publish(events.NewCaptureProgressEvent(cp.gameID, attackerID, tile.Pos(), tile.CaptureProgress, tile.CaptureTarget))
			continue
		}

		attacker.ReleaseCaptureSlot()
		results = append(results, CaptureResult{
			Tile:          tile.Pos(),
			PlayerID:      attackerID,
			PreviousOwner: previousOwner,
		})

		cp.logger.Info().
			Int("turn", turn).
			Int("player_id", attackerID).
			Int("previous_owner", previousOwner).
			Str("tile", tile.Pos().String()).
			Str("boost", tile.Boost.String()).
			Msg("Tile captured")
		cp.publish(events.NewTileCapturedEvent(cp.gameID, attackerID, previousOwner, tile.Pos(), tile.Boost, turn))
	}

	return results
}

func (cp *CaptureProcessor) publish(e events.Event) {
	if cp.publisher != nil {
		cp.publisher.Publish(e)
	}
}

func (r CaptureResult) String() string {
	return fmt.Sprintf("player %d took %s from %d", r.PlayerID, r.Tile, r.PreviousOwner)
}
