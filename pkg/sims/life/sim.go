package life

import (
	"lifegame/pkg/board"
	"lifegame/pkg/core"
)

// Life adapts a Board to the core.Sim and core.Editor interfaces.
type Life struct {
	cfg    Config
	board  *Board
	stable bool
}

// New returns a Life simulation with the default configuration and the given size.
func New(size int) *Life {
	cfg := DefaultConfig()
	cfg.Size = size
	return NewWithConfig(withScatter(cfg))
}

// NewWithConfig returns a Life simulation configured from the provided options.
func NewWithConfig(cfg Config) *Life {
	return &Life{cfg: cfg, board: NewBoard(cfg.Size)}
}

// Name returns the simulation identifier.
func (l *Life) Name() string { return "life" }

// Size returns the grid dimensions.
func (l *Life) Size() core.Size {
	s := l.board.Size()
	return core.Size{W: s, H: s}
}

// Board exposes the underlying board for rendering and inspection.
func (l *Life) Board() *Board { return l.board }

// Config returns the active configuration.
func (l *Life) Config() Config { return l.cfg }

// Reset clears the board and scatters random live cells. A zero seed uses the
// configured seed.
func (l *Life) Reset(seed int64) {
	if seed == 0 {
		seed = l.cfg.Seed
	}
	rng := core.NewRNG(seed)
	l.board.ClearAll()
	l.board.Scatter(rng, rng.IntRange(l.cfg.ScatterMin, l.cfg.ScatterMax), l.cfg.Margin)
	l.stable = false
}

// Step advances the simulation by one generation.
func (l *Life) Step() int {
	n := l.board.Advance()
	l.stable = n == 0
	return n
}

// Stable reports whether the last Step changed nothing.
func (l *Life) Stable() bool { return l.stable }

// Population counts live cells.
func (l *Life) Population() int { return l.board.Population() }

// Toggle flips the cell at (x, y).
func (l *Life) Toggle(x, y int) error {
	err := l.board.Toggle(board.Coord{X: x, Y: y})
	if err == nil {
		l.stable = false
	}
	return err
}

// Clear kills every cell.
func (l *Life) Clear() {
	l.board.ClearAll()
	l.stable = false
}
