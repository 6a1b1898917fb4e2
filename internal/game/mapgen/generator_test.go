package mapgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mitchelldurbincs/TerritoryCapture/internal/game/core"
)

func TestDefaultMapConfig(t *testing.T) {
	config := DefaultMapConfig(9, 5)

	assert.Equal(t, 9, config.Width)
	assert.Equal(t, 5, config.Height)
	assert.Equal(t, 1, config.TileYield)
	assert.Equal(t, core.DefaultCaptureTarget, config.CaptureTarget)
	assert.Equal(t, 20, config.ObjectiveDefense)
	assert.Equal(t, 0, config.AttackerID)
	assert.Equal(t, 1, config.DefenderID)
}

func TestGenerateMap_BaseAndObjective(t *testing.T) {
	board, layout := NewGenerator(DefaultMapConfig(5, 3)).GenerateMap()

	assert.Equal(t, core.NewCoordinate(0, 1), layout.Base)
	assert.Equal(t, core.NewCoordinate(4, 1), layout.Objective)

	base := board.GetTile(0, 1)
	assert.True(t, base.IsBase)
	assert.Equal(t, 0, base.Owner)

	objective := board.GetTile(4, 1)
	assert.True(t, objective.IsObjective)
	assert.Equal(t, 1, objective.Owner)
	assert.Equal(t, 1, objective.DefenderID)
	assert.Equal(t, 20, objective.DefenseLevel)

	owned := 0
	for tile := range board.AllTiles() {
		assert.Equal(t, 1, tile.ResourceYield)
		assert.Equal(t, 100, tile.CaptureTarget)
		assert.False(t, tile.IsContested())
		if !tile.IsNeutral() {
			owned++
		}
	}
	assert.Equal(t, 2, owned, "only the base and the objective start owned")
}

func TestGenerateMap_Boosts(t *testing.T) {
	board, layout := NewGenerator(DefaultMapConfig(9, 5)).GenerateMap()

	expected := map[core.Coordinate]core.BoostType{
		core.NewCoordinate(4, 2): core.BoostFasterCapture,
		core.NewCoordinate(4, 0): core.BoostExtraCapacity,
		core.NewCoordinate(4, 4): core.BoostExtraAP,
		core.NewCoordinate(7, 1): core.BoostAreaJammer,
		core.NewCoordinate(1, 0): core.BoostExtraIncome,
		core.NewCoordinate(1, 4): core.BoostShieldUp,
	}
	require.Len(t, layout.Boosts, len(expected))

	for tile := range board.AllTiles() {
		want, ok := expected[tile.Pos()]
		if !ok {
			want = core.BoostNone
		}
		assert.Equal(t, want, tile.Boost, "boost at %s", tile.Pos())
	}
}

func TestGenerateMap_SmallBoardsSkipCollisions(t *testing.T) {
	tests := []struct {
		name   string
		w, h   int
		boosts map[core.Coordinate]core.BoostType
	}{
		{
			// every spot is off-board or on the base/objective
			name: "2x1",
			w:    2, h: 1,
			boosts: map[core.Coordinate]core.BoostType{},
		},
		{
			name: "3x1",
			w:    3, h: 1,
			boosts: map[core.Coordinate]core.BoostType{
				core.NewCoordinate(1, 0): core.BoostFasterCapture,
			},
		},
		{
			name: "5x3",
			w:    5, h: 3,
			boosts: map[core.Coordinate]core.BoostType{
				core.NewCoordinate(2, 1): core.BoostFasterCapture,
				core.NewCoordinate(2, 0): core.BoostExtraCapacity,
				core.NewCoordinate(2, 2): core.BoostExtraAP,
				core.NewCoordinate(3, 0): core.BoostAreaJammer,
				core.NewCoordinate(1, 0): core.BoostExtraIncome,
				core.NewCoordinate(1, 2): core.BoostShieldUp,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board, layout := NewGenerator(DefaultMapConfig(tt.w, tt.h)).GenerateMap()
			assert.Len(t, layout.Boosts, len(tt.boosts))

			for tile := range board.AllTiles() {
				want, ok := tt.boosts[tile.Pos()]
				if !ok {
					want = core.BoostNone
				}
				assert.Equal(t, want, tile.Boost, "boost at %s", tile.Pos())
			}
		})
	}
}
