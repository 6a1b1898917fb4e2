package testutil

import (
	"github.com/mitchelldurbincs/TerritoryCapture/internal/game/core"
)

// DefaultTestStats are the standard starting values used across tests
func DefaultTestStats() core.PlayerStats {
	return core.PlayerStats{
		StartingResources:          20,
		BaseActionPoints:           1,
		CaptureRate:                10,
		BaseCapacity:               2,
		AdjacencyBonusPerNeighbour: 5,
	}
}

// CreateTestBoard creates a test board with the given dimensions
func CreateTestBoard(width, height int) *core.Board {
	return core.NewBoard(width, height)
}

// CreateTestBoardWithOwners creates a test board and assigns tile owners
func CreateTestBoardWithOwners(width, height int, owners map[core.Coordinate]int) *core.Board {
	board := core.NewBoard(width, height)
	for coord, owner := range owners {
		board.TileAt(coord).Owner = owner
	}
	return board
}

// CreateTestPlayers creates count players with the given stats
func CreateTestPlayers(count int, stats core.PlayerStats) []*core.Player {
	players := make([]*core.Player, count)
	for i := range players {
		players[i] = core.NewPlayer(i, stats)
	}
	return players
}

// CreateSimpleTestSetup creates a 5x3 board with player 0's base at (0,1)
// and player 1's objective at (4,1), plus two players with DefaultTestStats.
func CreateSimpleTestSetup() (*core.Board, []*core.Player) {
	board := CreateTestBoard(5, 3)

	base := board.GetTile(0, 1)
	base.Owner = 0
	base.IsBase = true

	objective := board.GetTile(4, 1)
	objective.Owner = 1
	objective.IsObjective = true
	objective.DefenderID = 1

	return board, CreateTestPlayers(2, DefaultTestStats())
}
