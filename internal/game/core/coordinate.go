package core

import "fmt"

// Coordinate is a tile position; (0,0) is the top-left corner.
type Coordinate struct {
	X, Y int
}

func NewCoordinate(x, y int) Coordinate {
	return Coordinate{X: x, Y: y}
}

// FromIndex maps a row-major board index back to its position
func FromIndex(idx, width int) Coordinate {
	return Coordinate{X: idx % width, Y: idx / width}
}

// ToIndex is the row-major board index of c
func (c Coordinate) ToIndex(width int) int {
	return c.Y*width + c.X
}

// Within reports whether c lies on a width x height grid
func (c Coordinate) Within(width, height int) bool {
	return c.X >= 0 && c.X < width && c.Y >= 0 && c.Y < height
}

// neighbourOffsets is the N, E, S, W visiting order used for adjacency
var neighbourOffsets = [4]Coordinate{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

// Neighbours returns the orthogonal neighbours of c that lie on the grid,
// in N, E, S, W order.
func (c Coordinate) Neighbours(width, height int) []Coordinate {
	out := make([]Coordinate, 0, len(neighbourOffsets))
	for _, off := range neighbourOffsets {
		n := Coordinate{X: c.X + off.X, Y: c.Y + off.Y}
		if n.Within(width, height) {
			out = append(out, n)
		}
	}
	return out
}

func (c Coordinate) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}
