package life

import (
	"slices"
	"testing"

	"lifegame/pkg/board"
	"lifegame/pkg/core"
)

func coreRNG(seed int64) *core.RNG { return core.NewRNG(seed) }

var (
	_ core.Sim    = (*Life)(nil)
	_ core.Editor = (*Life)(nil)
)

func TestResetDeterministic(t *testing.T) {
	l := New(30)
	l.Reset(0)
	first := slices.Collect(l.Board().OccupiedPositions())
	if len(first) == 0 {
		t.Fatal("reset produced an empty board")
	}

	l.Step()
	l.Reset(0)
	if again := slices.Collect(l.Board().OccupiedPositions()); !slices.Equal(first, again) {
		t.Fatal("Reset with config seed not deterministic")
	}

	l.Reset(777)
	if other := slices.Collect(l.Board().OccupiedPositions()); slices.Equal(first, other) {
		t.Fatal("different seeds should produce different boards")
	}
}

func TestStepReportsStable(t *testing.T) {
	l := New(6)
	for _, c := range []board.Coord{{X: 2, Y: 2}, {X: 3, Y: 2}, {X: 2, Y: 3}, {X: 3, Y: 3}} {
		if err := l.Toggle(c.X, c.Y); err != nil {
			t.Fatal(err)
		}
	}
	if n := l.Step(); n != 0 || !l.Stable() {
		t.Fatalf("block step = %d stable=%v", n, l.Stable())
	}
	if l.Population() != 4 {
		t.Fatalf("population %d", l.Population())
	}
	if err := l.Toggle(6, 6); err != nil || l.Stable() {
		t.Fatal("toggle should clear the stable flag")
	}
	l.Clear()
	if l.Population() != 0 {
		t.Fatal("clear left live cells")
	}
	if err := l.Toggle(7, 1); err == nil {
		t.Fatal("expected out of range toggle to fail")
	}
	if s := l.Size(); s.W != 6 || s.H != 6 || l.Name() != "life" {
		t.Fatalf("unexpected identity %q %+v", l.Name(), s)
	}
}
