package testutil

import (
	"testing"

	"github.com/udisondev/hexgrid/internal/grid"
	"github.com/udisondev/hexgrid/internal/hex"
)

// AssertWalkablePath checks that path leads from start to goal one hex at a
// time over contained, unblocked cells. start itself is not part of path.
func AssertWalkablePath(t testing.TB, g *grid.Grid, start, goal hex.Cube, path []hex.Cube) {
	t.Helper()

	if len(path) == 0 {
		t.Fatalf("path from %v to %v is empty", start, goal)
	}
	if last := path[len(path)-1]; last != goal {
		t.Fatalf("path ends at %v, want %v", last, goal)
	}

	prev := start
	for i, c := range path {
		if d := hex.Distance(prev, c); d != 1 {
			t.Fatalf("step %d: %v -> %v spans %d hexes", i, prev, c, d)
		}
		blocked, err := g.IsBlocked(c)
		if err != nil {
			t.Fatalf("step %d: %v", i, err)
		}
		if blocked {
			t.Fatalf("step %d: %v is blocked", i, c)
		}
		prev = c
	}
}

// AssertWithinGrid checks that every cube is a cell of g.
func AssertWithinGrid(t testing.TB, g *grid.Grid, cubes []hex.Cube) {
	t.Helper()

	for _, c := range cubes {
		if !g.Contains(c) {
			t.Fatalf("%v is outside the grid", c)
		}
	}
}
