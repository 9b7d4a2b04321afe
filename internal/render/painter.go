//go:build ebiten

package render

import "github.com/hajimehoshi/ebiten/v2"

// GridPainter uploads a Canvas into a single image and draws it scaled.
type GridPainter struct {
	canvas *Canvas
	img    *ebiten.Image
}

// NewGridPainter allocates a painter for the canvas.
func NewGridPainter(c *Canvas) *GridPainter {
	w, h := c.Size()
	return &GridPainter{canvas: c, img: ebiten.NewImage(w, h)}
}

// Blit uploads pending canvas changes and draws the image onto dst.
func (gp *GridPainter) Blit(dst *ebiten.Image, scale int) {
	if gp.canvas.TakeDirty() {
		gp.img.WritePixels(gp.canvas.Pixels())
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}
