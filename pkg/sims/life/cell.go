package life

import "lifegame/pkg/board"

// Rule applies Conway's B3/S23 rule: a live cell survives with two or three
// live neighbors, a dead cell is born with exactly three.
func Rule(alive bool, neighbors int) bool {
	return neighbors == 3 || (alive && neighbors == 2)
}

// Cell is the content held by every playable position of a life Board.
type Cell struct {
	alive bool
	next  bool
}

// NewCell returns a dead cell.
func NewCell() *Cell { return &Cell{} }

// Kind reports board.KindLife.
func (c *Cell) Kind() board.Kind { return board.KindLife }

// Alive reports the visible state.
func (c *Cell) Alive() bool { return c.alive }

// Toggle flips the visible state. Callers are responsible for notifying the
// board.
func (c *Cell) Toggle() {
	c.alive = !c.alive
	c.next = c.alive
}

// ComputeNext stores the state for the next generation given the number of
// live neighbors and reports whether it differs from the current state.
func (c *Cell) ComputeNext(neighbors int) bool {
	c.next = Rule(c.alive, neighbors)
	return c.next != c.alive
}

// Commit makes the pending state visible and reports whether it changed.
func (c *Cell) Commit() bool {
	old := c.alive
	c.alive = c.next
	return c.alive != old
}
