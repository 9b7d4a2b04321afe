package render

import (
	"image/color"
	"slices"
	"testing"

	"lifegame/pkg/board"
	"lifegame/pkg/sims/life"
)

func TestContentIndex(t *testing.T) {
	cell := life.NewCell()
	cases := []struct {
		content board.Content
		want    uint8
	}{
		{board.Empty, IndexEmpty},
		{board.Guard, IndexGuard},
		{board.Black, IndexBlack},
		{board.White, IndexWhite},
		{cell, IndexDead},
	}
	for _, tc := range cases {
		if got := ContentIndex(tc.content); got != tc.want {
			t.Fatalf("ContentIndex(%v) = %d, expected %d", tc.content.Kind(), got, tc.want)
		}
	}
	cell.Toggle()
	if ContentIndex(cell) != IndexAlive {
		t.Fatal("live cell should map to IndexAlive")
	}
}

func TestCanvasFollowsBoard(t *testing.T) {
	b := board.New(3, 2)
	_ = b.Set(board.Coord{X: 1, Y: 1}, board.Black)

	palette := DefaultPalette()
	c := NewCanvas(3, 2, b, palette)
	if !c.TakeDirty() {
		t.Fatal("fresh canvas should need an upload")
	}
	want := []uint8{IndexBlack, IndexEmpty, IndexEmpty, IndexEmpty, IndexEmpty, IndexEmpty}
	if !slices.Equal(c.Cells(), want) {
		t.Fatalf("initial cells %v", c.Cells())
	}

	_ = b.Set(board.Coord{X: 3, Y: 2}, board.White)
	if c.Cells()[5] != IndexWhite || !c.TakeDirty() {
		t.Fatal("canvas did not repaint the changed cell")
	}
	px := c.Pixels()[5*4 : 5*4+4]
	white := board.White.Color()
	if !slices.Equal(px, []byte{white.R, white.G, white.B, white.A}) {
		t.Fatalf("pixel %v, expected %v", px, white)
	}

	c.Close()
	_ = b.Set(board.Coord{X: 2, Y: 1}, board.Black)
	if c.Cells()[1] != IndexEmpty || c.TakeDirty() {
		t.Fatal("closed canvas kept following the board")
	}
}

func TestCanvasLifeBoard(t *testing.T) {
	lb := life.NewBoard(4)
	c := NewCanvas(4, 4, lb, DefaultPalette())
	c.TakeDirty()

	_ = lb.Toggle(board.Coord{X: 2, Y: 3})
	if c.Cells()[(3-1)*4+(2-1)] != IndexAlive {
		t.Fatal("toggle not reflected on canvas")
	}
	lb.ClearAll()
	for i, v := range c.Cells() {
		if v != IndexDead {
			t.Fatalf("cell %d = %d after clear, expected dead", i, v)
		}
	}
}

func TestFillPaletteRGBA(t *testing.T) {
	buf := make([]byte, 8)
	fillPaletteRGBA(buf, []uint8{0, 9}, []color.RGBA{{R: 1, A: 2}, {G: 3, A: 4}})
	if !slices.Equal(buf, []byte{1, 0, 0, 2, 0, 3, 0, 4}) {
		t.Fatalf("buf %v", buf)
	}
	fillPaletteRGBA(buf, []uint8{1, 1}, nil)
	if !slices.Equal(buf, make([]byte, 8)) {
		t.Fatal("empty palette should clear")
	}
}
