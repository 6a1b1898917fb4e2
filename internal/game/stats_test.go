package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStats(t *testing.T) {
	e := newTestEngine(t, 5, 3)
	require.True(t, e.TryStartCapture(1, 1))

	stats := e.Stats()
	require.Len(t, stats, 2)

	assert.Equal(t, PlayerStats{
		PlayerID:       0,
		OwnedTiles:     1,
		Income:         1,
		ActiveCaptures: 1,
		Resources:      6,
		CapacityUsed:   1,
		CapacityMax:    2,
		ActionPoints:   1,
	}, stats[0])

	assert.Equal(t, PlayerStats{
		PlayerID:     1,
		OwnedTiles:   1,
		Income:       1,
		Resources:    10,
		CapacityMax:  2,
		ActionPoints: 1,
	}, stats[1])
}

func TestIncomeManager(t *testing.T) {
	e := newTestEngine(t, 5, 3)
	p0, _ := e.Player(0)
	seen := recordEvents(e)

	e.Tile(1, 1).Owner = 0
	e.Tile(1, 1).ResourceYield = 4

	assert.Equal(t, 5, e.incomeManager.Income(e.board, 0))
	paid := e.incomeManager.ApplyIncome(e.board, p0, e.TurnNumber())
	assert.Equal(t, 5, paid)
	assert.Equal(t, 16, p0.Resources)
	assert.Len(t, *seen, 1)

	// a player with no yield gets no event
	e.board.GetTile(4, 1).ResourceYield = 0
	p1, _ := e.Player(1)
	assert.Equal(t, 0, e.incomeManager.ApplyIncome(e.board, p1, e.TurnNumber()))
	assert.Len(t, *seen, 1)
}
