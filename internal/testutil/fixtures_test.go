package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mitchelldurbincs/TerritoryCapture/internal/game/core"
)

func TestCreateSimpleTestSetup(t *testing.T) {
	board, players := CreateSimpleTestSetup()

	require.Len(t, players, 2)
	assert.Equal(t, 20, players[0].Resources)
	assert.Equal(t, 2, players[1].CapacityMax)

	assert.True(t, board.GetTile(0, 1).IsBase)
	assert.Equal(t, 0, board.GetTile(0, 1).Owner)
	assert.True(t, board.GetTile(4, 1).IsObjective)
	assert.Equal(t, 1, board.GetTile(4, 1).DefenderID)
}

func TestCreateTestBoardWithOwners(t *testing.T) {
	board := CreateTestBoardWithOwners(3, 3, map[core.Coordinate]int{
		core.NewCoordinate(1, 1): 0,
		core.NewCoordinate(2, 2): 1,
	})

	assert.Equal(t, 0, board.GetTile(1, 1).Owner)
	assert.Equal(t, 1, board.GetTile(2, 2).Owner)
	assert.True(t, board.GetTile(0, 0).IsNeutral())
}

func TestAssertPanic(t *testing.T) {
	board := CreateTestBoard(2, 2)
	AssertPanic(t, func() { board.GetTile(2, 0) })
	assert.Equal(t, NewTestRNG(3).Intn(1000), NewTestRNG(3).Intn(1000), "seeded RNG is deterministic")
}
