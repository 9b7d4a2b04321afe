package board

import "fmt"

// Coord identifies a board position. Valid positions are 1-based; whether a
// Coord is valid depends on the Board it is used with.
type Coord struct {
	X, Y int
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Translate returns the coordinate offset by (dx, dy).
func (c Coord) Translate(dx, dy int) Coord {
	return Coord{c.X + dx, c.Y + dy}
}
