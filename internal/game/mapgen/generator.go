package mapgen

import (
	"github.com/mitchelldurbincs/TerritoryCapture/internal/game/core"
)

// MapConfig holds configuration for map generation
type MapConfig struct {
	Width            int
	Height           int
	TileYield        int
	CaptureTarget    int
	ObjectiveDefense int
	AttackerID       int // owns the base
	DefenderID       int // owns and defends the objective
}

// DefaultMapConfig returns the standard layout settings for a w x h board
func DefaultMapConfig(w, h int) MapConfig {
	return MapConfig{
		Width:            w,
		Height:           h,
		TileYield:        1,
		CaptureTarget:    core.DefaultCaptureTarget,
		ObjectiveDefense: 20,
		AttackerID:       0,
		DefenderID:       1,
	}
}

// BoostPlacement is a boosted tile in the fixed layout
type BoostPlacement struct {
	Pos   core.Coordinate
	Boost core.BoostType
}

// Layout records where the generator put everything
type Layout struct {
	Base      core.Coordinate
	Objective core.Coordinate
	Boosts    []BoostPlacement
}

// Generator builds the fixed starting layout
type Generator struct {
	config MapConfig
}

// NewGenerator creates a new map generator
func NewGenerator(config MapConfig) *Generator {
	return &Generator{config: config}
}

// GenerateMap creates a new board with the base, objective and boosts placed
func (g *Generator) GenerateMap() (*core.Board, Layout) {
	board := core.NewBoard(g.config.Width, g.config.Height)

	for tile := range board.AllTiles() {
		tile.ResourceYield = g.config.TileYield
		tile.CaptureTarget = g.config.CaptureTarget
	}

	layout := Layout{
		Base:      g.placeBase(board),
		Objective: g.placeObjective(board),
	}
	layout.Boosts = g.placeBoosts(board)

	return board, layout
}

func (g *Generator) placeBase(b *core.Board) core.Coordinate {
	t := b.GetTile(0, b.H/2)
	t.Owner = g.config.AttackerID
	t.IsBase = true
	return t.Pos()
}

func (g *Generator) placeObjective(b *core.Board) core.Coordinate {
	t := b.GetTile(b.W-1, b.H/2)
	t.Owner = g.config.DefenderID
	t.IsObjective = true
	t.DefenderID = g.config.DefenderID
	t.DefenseLevel = g.config.ObjectiveDefense
	return t.Pos()
}

// boostSpots lists the fixed boost positions, in placement order
func boostSpots(w, h int) []BoostPlacement {
	return []BoostPlacement{
		{Pos: core.NewCoordinate(w/2, h/2), Boost: core.BoostFasterCapture},
		{Pos: core.NewCoordinate(w/2, 0), Boost: core.BoostExtraCapacity},
		{Pos: core.NewCoordinate(w/2, h-1), Boost: core.BoostExtraAP},
		{Pos: core.NewCoordinate(w-2, h/2-1), Boost: core.BoostAreaJammer},
		{Pos: core.NewCoordinate(1, 0), Boost: core.BoostExtraIncome},
		{Pos: core.NewCoordinate(1, h-1), Boost: core.BoostShieldUp},
	}
}

func (g *Generator) placeBoosts(b *core.Board) []BoostPlacement {
	var placed []BoostPlacement
	for _, spot := range boostSpots(b.W, b.H) {
		if !b.InBounds(spot.Pos.X, spot.Pos.Y) {
			continue
		}
		t := b.GetTile(spot.Pos.X, spot.Pos.Y)
		if t.IsBase || t.IsObjective || t.Boost != core.BoostNone {
			continue
		}
		t.Boost = spot.Boost
		placed = append(placed, spot)
	}
	return placed
}
