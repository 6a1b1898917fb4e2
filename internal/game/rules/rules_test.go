package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mitchelldurbincs/TerritoryCapture/internal/game/core"
	"github.com/mitchelldurbincs/TerritoryCapture/internal/testutil"
)

func objectiveBoard() *core.Board {
	board, _ := testutil.CreateSimpleTestSetup()
	return board
}

func TestCheckObjective(t *testing.T) {
	wc := NewWinConditionChecker(testutil.NopLogger())

	t.Run("defender still holds the objective", func(t *testing.T) {
		_, won := wc.CheckObjective(objectiveBoard())
		assert.False(t, won)
	})

	t.Run("attacker took the objective", func(t *testing.T) {
		board := objectiveBoard()
		board.GetTile(4, 1).Owner = 0

		winner, won := wc.CheckObjective(board)
		require.True(t, won)
		assert.Equal(t, 0, winner)
	})

	t.Run("neutral objective", func(t *testing.T) {
		board := objectiveBoard()
		board.GetTile(4, 1).Owner = core.NeutralID

		winner, won := wc.CheckObjective(board)
		assert.False(t, won)
		assert.Equal(t, core.NeutralID, winner)
	})

	t.Run("undefended objective counts for any owner", func(t *testing.T) {
		board := core.NewBoard(3, 1)
		objective := board.GetTile(2, 0)
		objective.IsObjective = true
		objective.Owner = 1

		winner, won := wc.CheckObjective(board)
		require.True(t, won)
		assert.Equal(t, 1, winner)
	})
}

func TestCaptureTargets(t *testing.T) {
	board := objectiveBoard()
	player := core.NewPlayer(0, testutil.DefaultTestStats())
	calc := NewCaptureTargetCalculator()

	var coords []core.Coordinate
	for _, tile := range calc.Targets(board, player) {
		coords = append(coords, tile.Pos())
	}
	assert.Equal(t, []core.Coordinate{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 2}}, coords)

	board.GetTile(1, 1).BeginCapture(0)
	mask := calc.Mask(board, player)
	require.Len(t, mask, 15)
	assert.True(t, mask[board.Idx(0, 0)])
	assert.False(t, mask[board.Idx(1, 1)], "contested tiles are not targets")
	assert.True(t, mask[board.Idx(0, 2)])
	assert.False(t, mask[board.Idx(0, 1)], "own base")
	assert.False(t, mask[board.Idx(4, 1)], "no adjacent territory")
}
