package rules

import "github.com/mitchelldurbincs/TerritoryCapture/internal/game/core"

// CaptureTargetCalculator lists the tiles a player may start capturing
type CaptureTargetCalculator struct{}

// NewCaptureTargetCalculator creates a new capture target calculator
func NewCaptureTargetCalculator() *CaptureTargetCalculator {
	return &CaptureTargetCalculator{}
}

// Targets returns uncontested tiles the player can capture, row-major.
// Resources and capacity are not considered.
func (c *CaptureTargetCalculator) Targets(board *core.Board, player *core.Player) []*core.Tile {
	var targets []*core.Tile
	for tile := range board.AllTiles() {
		if isTarget(tile, board, player) {
			targets = append(targets, tile)
		}
	}
	return targets
}

// Mask returns a flattened boolean mask of length W*H, indexed y*W+x,
// where true marks a legal capture target.
func (c *CaptureTargetCalculator) Mask(board *core.Board, player *core.Player) []bool {
	mask := make([]bool, len(board.T))
	for i := range board.T {
		mask[i] = isTarget(&board.T[i], board, player)
	}
	return mask
}

func isTarget(tile *core.Tile, board *core.Board, player *core.Player) bool {
	return !tile.IsContested() && tile.CanBeCapturedBy(player, board)
}
