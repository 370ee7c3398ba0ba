package grid_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/hexgrid/internal/grid"
	"github.com/udisondev/hexgrid/internal/hex"
	"github.com/udisondev/hexgrid/internal/terrain"
	"github.com/udisondev/hexgrid/internal/testutil"
)

func TestNewRect(t *testing.T) {
	layouts := []hex.Layout{hex.OddRowsRight, hex.EvenRowsRight, hex.OddColumnsDown, hex.EvenColumnsDown}

	for _, l := range layouts {
		t.Run(l.String(), func(t *testing.T) {
			g, err := grid.NewRect(4, 3, l, testutil.GroundWaterCatalog(), ground)
			require.NoError(t, err)
			assert.Equal(t, 12, g.Len())

			for row := range 3 {
				for col := range 4 {
					cell, ok := g.CellOffset(hex.NewOffset(l, col, row))
					require.True(t, ok, "[%d, %d]", col, row)
					assert.Equal(t, ground, cell.Terrain)
					assert.False(t, cell.Blocked)
				}
			}
			assert.False(t, g.ContainsOffset(hex.NewOffset(l, 4, 0)))
			assert.False(t, g.ContainsOffset(hex.NewOffset(l, 0, 3)))
		})
	}
}

func TestNewRectErrors(t *testing.T) {
	_, err := grid.NewRect(-1, 3, layout, testutil.GroundWaterCatalog(), ground)
	assert.ErrorIs(t, err, grid.ErrInvalidDimensions)

	// the area would overflow int
	_, err = grid.NewRect(math.MaxInt, 4, layout, testutil.GroundWaterCatalog(), ground)
	assert.ErrorIs(t, err, grid.ErrInvalidDimensions)

	_, err = grid.NewRect(3, 3, layout, nil, ground)
	assert.ErrorIs(t, err, grid.ErrNilCatalog)

	_, err = grid.NewRect(3, 3, layout, testutil.GroundWaterCatalog(), terrain.Forest)
	assert.ErrorIs(t, err, terrain.ErrUnknownTerrainType)

	g, err := grid.NewRect(0, 5, layout, testutil.GroundWaterCatalog(), ground)
	require.NoError(t, err)
	assert.Zero(t, g.Len())
}

func TestResize(t *testing.T) {
	g := testutil.GroundGrid(t, 3, 3, layout)
	require.NoError(t, g.SetTerrain(water, at(1, 1)))
	require.NoError(t, g.SetBlocked(true, at(0, 0), at(2, 2)))

	require.NoError(t, g.Resize(4, 2, layout, water))
	assert.Equal(t, 8, g.Len())

	cell, ok := g.Cell(at(1, 1))
	require.True(t, ok)
	assert.Equal(t, water, cell.Terrain, "retained cell keeps terrain")

	blocked, err := g.IsBlocked(at(0, 0))
	require.NoError(t, err)
	assert.True(t, blocked, "retained cell keeps blocking")

	assert.False(t, g.Contains(at(2, 2)), "outside the new rectangle")

	cell, ok = g.Cell(at(3, 0))
	require.True(t, ok)
	assert.Equal(t, grid.Cell{Coord: at(3, 0), Terrain: water}, cell, "new cell uses default terrain, unblocked")

	cell, ok = g.Cell(at(2, 0))
	require.True(t, ok)
	assert.Equal(t, ground, cell.Terrain, "retained cell ignores new default")
}

func TestResizeRejectsBadInputWithoutChanges(t *testing.T) {
	g := testutil.GroundGrid(t, 3, 3, layout)

	require.ErrorIs(t, g.Resize(2, -2, layout, ground), grid.ErrInvalidDimensions)
	require.ErrorIs(t, g.Resize(5, 5, layout, terrain.Mountain), terrain.ErrUnknownTerrainType)
	require.ErrorIs(t, g.Resize(5, 5, hex.Layout(9), ground), hex.ErrUnknownLayout)
	require.ErrorIs(t, g.Resize(math.MaxInt, math.MaxInt, layout, ground), grid.ErrInvalidDimensions)
	require.ErrorIs(t, g.Resize(grid.MaxCells, 2, layout, ground), grid.ErrInvalidDimensions)
	assert.Equal(t, 9, g.Len())
}
