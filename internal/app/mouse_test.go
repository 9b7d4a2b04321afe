package app

import (
	"image"
	"testing"

	"lifegame/pkg/core"
)

func TestCellAt(t *testing.T) {
	size := core.Size{W: 30, H: 30}
	cases := []struct {
		px, py int
		want   image.Point
		ok     bool
	}{
		{0, 0, image.Point{1, 1}, true},
		{15, 16, image.Point{1, 2}, true},
		{479, 479, image.Point{30, 30}, true},
		{480, 10, image.Point{}, false},
		{10, 490, image.Point{}, false},
		{-1, 3, image.Point{}, false},
	}
	for _, tc := range cases {
		got, ok := cellAt(tc.px, tc.py, 16, size)
		if ok != tc.ok || got != tc.want {
			t.Fatalf("cellAt(%d,%d) = %v,%v expected %v,%v", tc.px, tc.py, got, ok, tc.want, tc.ok)
		}
	}
	if _, ok := cellAt(1, 1, 0, size); ok {
		t.Fatal("zero scale should not map")
	}
}
