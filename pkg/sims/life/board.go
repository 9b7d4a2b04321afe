// Package life implements Conway's Game of Life on a guarded board.
package life

import (
	"fmt"
	"iter"

	"lifegame/pkg/board"
	"lifegame/pkg/core"
)

// Board is a square board whose playable positions always hold a *Cell.
type Board struct {
	grid       *board.Board
	offsets    [8]int
	generation int
}

// NewBoard returns a size*size board of dead cells.
func NewBoard(size int) *Board {
	g := board.New(size, size)
	s := g.Stride()
	b := &Board{
		grid:    g,
		offsets: [8]int{-s - 1, -s, -s + 1, -1, 1, s - 1, s, s + 1},
	}
	b.populate()
	return b
}

func (b *Board) populate() {
	for i := range b.grid.ValidIndexes() {
		b.put(i, NewCell())
	}
}

// put writes through the board's checked path. Failure means the valid index
// list is corrupt.
func (b *Board) put(i int, c *Cell) {
	if err := b.grid.SetIndex(i, c); err != nil {
		panic(err)
	}
}

// Size returns the side length of the board.
func (b *Board) Size() int { return b.grid.Width() }

// Generation returns the number of Advance calls since creation or the last
// ClearAll.
func (b *Board) Generation() int { return b.generation }

// Get returns the content at c. Playable positions always hold a *Cell.
func (b *Board) Get(c board.Coord) (board.Content, error) { return b.grid.Get(c) }

// IsAlive reports whether the cell at c is alive. Positions off the playable
// region are never alive.
func (b *Board) IsAlive(c board.Coord) bool {
	if !b.grid.Contains(c) {
		return false
	}
	cell, ok := b.grid.At(b.grid.Index(c)).(*Cell)
	return ok && cell.alive
}

// ValidPositions yields every playable position in row-major order.
func (b *Board) ValidPositions() iter.Seq[board.Coord] { return b.grid.ValidPositions() }

// OccupiedPositions yields the positions holding a live cell.
func (b *Board) OccupiedPositions() iter.Seq[board.Coord] {
	return func(yield func(board.Coord) bool) {
		for i := range b.grid.ValidIndexes() {
			if b.aliveAt(i) && !yield(b.grid.Coord(i)) {
				return
			}
		}
	}
}

// PositionsOf yields the playable positions whose content has kind k.
func (b *Board) PositionsOf(k board.Kind) iter.Seq[board.Coord] { return b.grid.PositionsOf(k) }

// All yields every playable position with its cell.
func (b *Board) All() iter.Seq2[board.Coord, board.Content] { return b.grid.All() }

// Subscribe registers fn for change notifications.
func (b *Board) Subscribe(fn board.ChangeFunc) (unsubscribe func()) {
	return b.grid.Subscribe(fn)
}

// Population counts live cells.
func (b *Board) Population() int {
	n := 0
	for i := range b.grid.ValidIndexes() {
		if b.aliveAt(i) {
			n++
		}
	}
	return n
}

func (b *Board) aliveAt(i int) bool {
	cell, ok := b.grid.At(i).(*Cell)
	return ok && cell.alive
}

// Toggle flips the cell at c and notifies observers.
func (b *Board) Toggle(c board.Coord) error {
	if !b.grid.Contains(c) {
		return fmt.Errorf("%w: %v", board.ErrOutOfRange, c)
	}
	i := b.grid.Index(c)
	cell := b.grid.At(i).(*Cell)
	cell.Toggle()
	b.put(i, cell)
	return nil
}

// Advance moves the board forward one generation and returns the number of
// cells that changed state. Each change is reported to observers once, after
// every next state has been computed.
func (b *Board) Advance() int {
	for i := range b.grid.ValidIndexes() {
		n := 0
		for _, off := range b.offsets {
			if b.aliveAt(i + off) {
				n++
			}
		}
		b.grid.At(i).(*Cell).ComputeNext(n)
	}

	changed := 0
	for i := range b.grid.ValidIndexes() {
		cell := b.grid.At(i).(*Cell)
		if cell.Commit() {
			b.put(i, cell)
			changed++
		}
	}
	b.generation++
	return changed
}

// ClearAll replaces every cell with a fresh dead one.
func (b *Board) ClearAll() {
	b.grid.ClearAll()
	b.populate()
	b.generation = 0
}

// Scatter toggles count random positions at least margin cells away from the
// edge. When the board is too small for the margin, the whole board is used.
func (b *Board) Scatter(rng *core.RNG, count, margin int) {
	size := b.Size()
	if margin < 0 || size-2*margin < 1 {
		margin = 0
	}
	lo, hi := 1+margin, size-margin+1
	for ; count > 0; count-- {
		c := board.Coord{X: rng.IntRange(lo, hi), Y: rng.IntRange(lo, hi)}
		_ = b.Toggle(c)
	}
}
