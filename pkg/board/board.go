// Package board provides a fixed-size rectangular grid surrounded by a one-cell
// guard border. Cells are stored in a flat slice padded on every side so that
// neighbor lookups never need bounds checks.
package board

import (
	"errors"
	"fmt"
	"iter"
)

var (
	// ErrOutOfRange is returned when a position lies outside the padded
	// array or addresses the guard border through a mutation.
	ErrOutOfRange = errors.New("board: position out of range")
	// ErrInvalidContent is returned when writing nil or Guard.
	ErrInvalidContent = errors.New("board: invalid content")
)

// ChangeFunc receives the position and new content after every successful
// mutation.
type ChangeFunc func(pos Coord, content Content)

type observer struct {
	id int
	fn ChangeFunc
}

// Board is a w*h grid of Content padded by a Guard border.
type Board struct {
	w, h  int
	cells []Content
	valid []int

	observers []observer
	nextID    int
}

// New allocates a board with the given playable dimensions. Every valid
// position starts Empty.
func New(w, h int) *Board {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	b := &Board{w: w, h: h, cells: make([]Content, (w+2)*(h+2))}
	b.valid = make([]int, 0, w*h)
	for i := range b.cells {
		if b.Contains(b.Coord(i)) {
			b.cells[i] = Empty
			b.valid = append(b.valid, i)
			continue
		}
		b.cells[i] = Guard
	}
	return b
}

// Clone returns a deep copy of the board. Observers are not copied.
func (b *Board) Clone() *Board {
	return &Board{
		w:     b.w,
		h:     b.h,
		cells: append([]Content(nil), b.cells...),
		valid: b.valid,
	}
}

// View returns a board sharing storage with b. Writes through either board
// are visible to both, but each notifies only its own observers.
func (b *Board) View() *Board {
	return &Board{w: b.w, h: b.h, cells: b.cells, valid: b.valid}
}

// Width returns the number of playable columns.
func (b *Board) Width() int { return b.w }

// Height returns the number of playable rows.
func (b *Board) Height() int { return b.h }

// Stride is the row length of the padded array.
func (b *Board) Stride() int { return b.w + 2 }

// Len is the size of the padded array.
func (b *Board) Len() int { return len(b.cells) }

// Index returns the linear index for c.
func (b *Board) Index(c Coord) int { return c.X + c.Y*b.Stride() }

// Coord returns the coordinate for linear index i.
func (b *Board) Coord(i int) Coord {
	s := b.Stride()
	return Coord{X: i % s, Y: i / s}
}

// Contains reports whether c lies inside the playable region.
func (b *Board) Contains(c Coord) bool {
	return 1 <= c.X && c.X <= b.w && 1 <= c.Y && c.Y <= b.h
}

func (b *Board) inArray(c Coord) bool {
	return 0 <= c.X && c.X < b.Stride() && 0 <= c.Y && c.Y < b.h+2
}

// At returns the content at linear index i without validation.
func (b *Board) At(i int) Content { return b.cells[i] }

// Get returns the content at c, which may be Guard for border positions.
func (b *Board) Get(c Coord) (Content, error) {
	if !b.inArray(c) {
		return nil, fmt.Errorf("%w: %v", ErrOutOfRange, c)
	}
	return b.cells[b.Index(c)], nil
}

// Set stores v at c and notifies observers.
func (b *Board) Set(c Coord, v Content) error {
	if !b.inArray(c) {
		return fmt.Errorf("%w: %v", ErrOutOfRange, c)
	}
	return b.SetIndex(b.Index(c), v)
}

// SetIndex stores v at linear index i and notifies observers. All mutations
// after construction go through here.
func (b *Board) SetIndex(i int, v Content) error {
	if i < 0 || i >= len(b.cells) || b.cells[i] == Guard {
		return fmt.Errorf("%w: index %d", ErrOutOfRange, i)
	}
	if v == nil || v == Guard {
		return fmt.Errorf("%w: %v", ErrInvalidContent, v)
	}
	b.cells[i] = v
	b.notify(b.Coord(i), v)
	return nil
}

// Clear sets c back to Empty.
func (b *Board) Clear(c Coord) error {
	return b.Set(c, Empty)
}

// ClearAll sets every occupied position back to Empty.
func (b *Board) ClearAll() {
	for _, i := range b.valid {
		if b.cells[i] != Empty {
			b.cells[i] = Empty
			b.notify(b.Coord(i), Empty)
		}
	}
}

// Subscribe registers fn for change notifications. Observers run synchronously
// in subscription order. The returned func removes the subscription.
func (b *Board) Subscribe(fn ChangeFunc) (unsubscribe func()) {
	id := b.nextID
	b.nextID++
	b.observers = append(b.observers, observer{id: id, fn: fn})
	return func() {
		for k, o := range b.observers {
			if o.id == id {
				b.observers = append(b.observers[:k:k], b.observers[k+1:]...)
				return
			}
		}
	}
}

func (b *Board) notify(pos Coord, v Content) {
	for _, o := range b.observers {
		o.fn(pos, v)
	}
}

// ValidIndexes yields the linear index of every playable position in
// row-major order.
func (b *Board) ValidIndexes() iter.Seq[int] {
	return func(yield func(int) bool) {
		for _, i := range b.valid {
			if !yield(i) {
				return
			}
		}
	}
}

// ValidPositions yields every playable position in row-major order.
func (b *Board) ValidPositions() iter.Seq[Coord] {
	return b.positions(func(Content) bool { return true })
}

// OccupiedPositions yields the playable positions that are not Empty.
func (b *Board) OccupiedPositions() iter.Seq[Coord] {
	return b.positions(func(v Content) bool { return v != Empty })
}

// VacantPositions yields the playable positions that are Empty.
func (b *Board) VacantPositions() iter.Seq[Coord] {
	return b.positions(func(v Content) bool { return v == Empty })
}

// PositionsOf yields the playable positions whose content has kind k.
func (b *Board) PositionsOf(k Kind) iter.Seq[Coord] {
	return b.positions(func(v Content) bool { return v.Kind() == k })
}

// All yields every playable position with its content.
func (b *Board) All() iter.Seq2[Coord, Content] {
	return func(yield func(Coord, Content) bool) {
		for _, i := range b.valid {
			if !yield(b.Coord(i), b.cells[i]) {
				return
			}
		}
	}
}

func (b *Board) positions(match func(Content) bool) iter.Seq[Coord] {
	return func(yield func(Coord) bool) {
		for _, i := range b.valid {
			if !match(b.cells[i]) {
				continue
			}
			if !yield(b.Coord(i)) {
				return
			}
		}
	}
}
