package testutil

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/udisondev/hexgrid/internal/grid"
	"github.com/udisondev/hexgrid/internal/hex"
)

// GroundGrid builds a width × height all-ground grid over GroundWaterCatalog.
func GroundGrid(t testing.TB, width, height int, layout hex.Layout) *grid.Grid {
	t.Helper()
	g, err := grid.NewRect(width, height, layout, GroundWaterCatalog(), Fixtures.Ground)
	require.NoError(t, err)
	return g
}

// Cubes converts (col, row) pairs in layout to cube coordinates.
func Cubes(layout hex.Layout, colRows ...[2]int) []hex.Cube {
	out := make([]hex.Cube, len(colRows))
	for i, cr := range colRows {
		out[i] = hex.NewOffset(layout, cr[0], cr[1]).Cube()
	}
	return out
}

// At converts one (col, row) pair in layout to a cube coordinate.
func At(layout hex.Layout, col, row int) hex.Cube {
	return hex.NewOffset(layout, col, row).Cube()
}
