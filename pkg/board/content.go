package board

import "image/color"

// Kind enumerates the content variants a board slot can hold.
type Kind uint8

const (
	KindEmpty Kind = iota
	KindGuard
	KindLife
	KindBlack
	KindWhite
)

func (k Kind) String() string {
	switch k {
	case KindEmpty:
		return "empty"
	case KindGuard:
		return "guard"
	case KindLife:
		return "life"
	case KindBlack:
		return "black"
	case KindWhite:
		return "white"
	default:
		return "unknown"
	}
}

// Content is the value occupying one board slot.
type Content interface {
	Kind() Kind
}

type emptyContent struct{}

func (emptyContent) Kind() Kind { return KindEmpty }

type guardContent struct{}

func (guardContent) Kind() Kind { return KindGuard }

// Marker is an immutable colored piece used by plain boards.
type Marker struct {
	kind  Kind
	color color.RGBA
}

// Kind reports KindBlack or KindWhite.
func (m Marker) Kind() Kind { return m.kind }

// Color returns the display color of the marker.
func (m Marker) Color() color.RGBA { return m.color }

var (
	// Empty marks an unoccupied valid position.
	Empty Content = emptyContent{}
	// Guard fills the one-cell border around the playable region.
	Guard Content = guardContent{}

	Black = Marker{kind: KindBlack, color: color.RGBA{R: 128, G: 128, B: 128, A: 255}}
	White = Marker{kind: KindWhite, color: color.RGBA{R: 255, G: 255, B: 255, A: 255}}
)
