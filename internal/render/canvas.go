package render

import (
	"image/color"
	"iter"

	"lifegame/pkg/board"
)

// Source is a board that can be walked and observed.
type Source interface {
	All() iter.Seq2[board.Coord, board.Content]
	Subscribe(fn board.ChangeFunc) (unsubscribe func())
}

// Canvas mirrors the playable region of a board into an RGBA buffer. After
// the initial paint only the cells named by change notifications are redrawn.
type Canvas struct {
	w, h    int
	palette []color.RGBA
	cells   []uint8
	pixels  []byte
	dirty   bool
	stop    func()
}

// NewCanvas paints src once and subscribes to its changes.
func NewCanvas(w, h int, src Source, palette []color.RGBA) *Canvas {
	c := &Canvas{
		w:       w,
		h:       h,
		palette: palette,
		cells:   make([]uint8, w*h),
		pixels:  make([]byte, 4*w*h),
	}
	for pos, v := range src.All() {
		c.set(pos, v)
	}
	fillPaletteRGBA(c.pixels, c.cells, c.palette)
	c.dirty = true
	c.stop = src.Subscribe(c.Paint)
	return c
}

// Paint redraws a single cell. It is a board.ChangeFunc.
func (c *Canvas) Paint(pos board.Coord, v board.Content) {
	i, ok := c.set(pos, v)
	if !ok {
		return
	}
	if len(c.palette) == 0 {
		putRGBA(c.pixels, i, color.RGBA{})
	} else {
		putRGBA(c.pixels, i, c.palette[min(int(c.cells[i]), len(c.palette)-1)])
	}
	c.dirty = true
}

func (c *Canvas) set(pos board.Coord, v board.Content) (int, bool) {
	x, y := pos.X-1, pos.Y-1
	if x < 0 || x >= c.w || y < 0 || y >= c.h {
		return 0, false
	}
	i := y*c.w + x
	c.cells[i] = ContentIndex(v)
	return i, true
}

// Cells exposes the palette index of every cell in row-major order.
func (c *Canvas) Cells() []uint8 { return c.cells }

// Pixels exposes the RGBA buffer.
func (c *Canvas) Pixels() []byte { return c.pixels }

// Size returns the canvas dimensions in cells.
func (c *Canvas) Size() (int, int) { return c.w, c.h }

// TakeDirty reports whether any cell was repainted since the last call.
func (c *Canvas) TakeDirty() bool {
	d := c.dirty
	c.dirty = false
	return d
}

// Close stops following the board.
func (c *Canvas) Close() {
	if c.stop != nil {
		c.stop()
		c.stop = nil
	}
}
