package core

import (
	"fmt"
	"iter"
)

type Board struct {
	W, H int
	T    []Tile // length = W*H (row-major)
}

// NewBoard creates a board of neutral, unboosted tiles.
func NewBoard(w, h int) *Board {
	b := &Board{W: w, H: h, T: make([]Tile, w*h)}
	for i := range b.T {
		x, y := b.XY(i)
		b.T[i] = newTile(x, y)
	}
	return b
}

func (b *Board) Idx(x, y int) int { return NewCoordinate(x, y).ToIndex(b.W) }

func (b *Board) XY(idx int) (int, int) {
	c := FromIndex(idx, b.W)
	return c.X, c.Y
}

// InBounds checks if coordinates are within board boundaries
func (b *Board) InBounds(x, y int) bool {
	return NewCoordinate(x, y).Within(b.W, b.H)
}

// GetTile returns the tile at (x, y). Callers validate bounds first; an
// out-of-range lookup is a programming error and panics.
func (b *Board) GetTile(x, y int) *Tile {
	if !b.InBounds(x, y) {
		panic(fmt.Errorf("tile (%d,%d) on %dx%d board: %w", x, y, b.W, b.H, ErrInvalidCoordinates))
	}
	return &b.T[b.Idx(x, y)]
}

// TileAt is GetTile for a Coordinate.
func (b *Board) TileAt(c Coordinate) *Tile {
	return b.GetTile(c.X, c.Y)
}

// Neighbours4 returns the orthogonally adjacent tiles that exist on the grid,
// in N, E, S, W order.
func (b *Board) Neighbours4(t *Tile) []*Tile {
	neighbours := make([]*Tile, 0, 4)
	for _, c := range t.pos.Neighbours(b.W, b.H) {
		neighbours = append(neighbours, &b.T[c.ToIndex(b.W)])
	}
	return neighbours
}

// AllTiles yields every tile in row-major order.
func (b *Board) AllTiles() iter.Seq[*Tile] {
	return func(yield func(*Tile) bool) {
		for i := range b.T {
			if !yield(&b.T[i]) {
				return
			}
		}
	}
}

// OwnedTiles yields the tiles owned by playerID in row-major order.
func (b *Board) OwnedTiles(playerID int) iter.Seq[*Tile] {
	return func(yield func(*Tile) bool) {
		for t := range b.AllTiles() {
			if t.Owner == playerID && !yield(t) {
				return
			}
		}
	}
}

// CountOwnedBoost counts tiles owned by playerID carrying the given boost.
func (b *Board) CountOwnedBoost(playerID int, boost BoostType) int {
	count := 0
	for t := range b.OwnedTiles(playerID) {
		if t.Boost == boost {
			count++
		}
	}
	return count
}

// ContestedBy counts tiles currently being captured by playerID.
func (b *Board) ContestedBy(playerID int) int {
	count := 0
	for t := range b.AllTiles() {
		if t.CapturingPlayerID == playerID {
			count++
		}
	}
	return count
}
