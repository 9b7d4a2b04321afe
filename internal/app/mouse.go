package app

import (
	"image"

	"lifegame/pkg/core"
)

// cellAt maps a cursor position in screen pixels to the 1-based cell under it.
func cellAt(px, py, scale int, size core.Size) (image.Point, bool) {
	if scale <= 0 || px < 0 || py < 0 {
		return image.Point{}, false
	}
	x, y := px/scale+1, py/scale+1
	if x > size.W || y > size.H {
		return image.Point{}, false
	}
	return image.Point{X: x, Y: y}, true
}
