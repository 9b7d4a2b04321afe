package render

import (
	"image/color"

	"lifegame/pkg/board"
)

// Palette indexes produced by ContentIndex.
const (
	IndexEmpty uint8 = iota
	IndexDead
	IndexAlive
	IndexBlack
	IndexWhite
	IndexGuard
)

type livingContent interface {
	Alive() bool
}

type coloredContent interface {
	Color() color.RGBA
}

// ContentIndex maps a board content to its palette index.
func ContentIndex(c board.Content) uint8 {
	switch c.Kind() {
	case board.KindLife:
		if l, ok := c.(livingContent); ok && l.Alive() {
			return IndexAlive
		}
		return IndexDead
	case board.KindBlack:
		return IndexBlack
	case board.KindWhite:
		return IndexWhite
	case board.KindGuard:
		return IndexGuard
	default:
		return IndexEmpty
	}
}

// DefaultPalette returns the colors for each palette index. Marker colors come
// from the markers themselves.
func DefaultPalette() []color.RGBA {
	return []color.RGBA{
		IndexEmpty: {R: 0, G: 0, B: 0, A: 255},
		IndexDead:  {R: 0, G: 0, B: 0, A: 255},
		IndexAlive: {R: 128, G: 128, B: 128, A: 255},
		IndexBlack: colorOf(board.Black),
		IndexWhite: colorOf(board.White),
		IndexGuard: {R: 40, G: 40, B: 40, A: 255},
	}
}

func colorOf(c board.Content) color.RGBA {
	if cc, ok := c.(coloredContent); ok {
		return cc.Color()
	}
	return color.RGBA{}
}
