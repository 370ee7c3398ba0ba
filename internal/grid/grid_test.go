package grid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/hexgrid/internal/grid"
	"github.com/udisondev/hexgrid/internal/hex"
	"github.com/udisondev/hexgrid/internal/terrain"
	"github.com/udisondev/hexgrid/internal/testutil"
)

const layout = hex.OddRowsRight

var (
	ground  = testutil.Fixtures.Ground
	water   = testutil.Fixtures.Water
	walking = testutil.Fixtures.Walking
)

func at(col, row int) hex.Cube {
	return testutil.At(layout, col, row)
}

func TestNewRequiresCatalog(t *testing.T) {
	g, err := grid.New(nil)
	require.ErrorIs(t, err, grid.ErrNilCatalog)
	assert.Nil(t, g)
}

func TestAddCells(t *testing.T) {
	g, err := grid.New(testutil.GroundWaterCatalog())
	require.NoError(t, err)

	require.NoError(t, g.AddCells(
		grid.Cell{Coord: at(0, 0), Terrain: ground},
		grid.Cell{Coord: at(1, 0), Terrain: water, Blocked: true},
	))
	assert.Equal(t, 2, g.Len())

	cell, ok := g.Cell(at(1, 0))
	require.True(t, ok)
	assert.Equal(t, grid.Cell{Coord: at(1, 0), Terrain: water, Blocked: true}, cell)
}

func TestAddCellsRejectsWholeBatch(t *testing.T) {
	tests := []struct {
		name    string
		cells   []grid.Cell
		wantErr error
	}{
		{
			name: "uncataloged terrain",
			cells: []grid.Cell{
				{Coord: at(2, 2), Terrain: ground},
				{Coord: at(2, 1), Terrain: terrain.Mountain},
			},
			wantErr: terrain.ErrUnknownTerrainType,
		},
		{
			name: "coordinate already in grid",
			cells: []grid.Cell{
				{Coord: at(2, 2), Terrain: ground},
				{Coord: at(0, 0), Terrain: water},
			},
			wantErr: grid.ErrDuplicateCoordinate,
		},
		{
			name: "coordinate repeated in batch",
			cells: []grid.Cell{
				{Coord: at(2, 2), Terrain: ground},
				{Coord: at(2, 2), Terrain: water},
			},
			wantErr: grid.ErrDuplicateCoordinate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := grid.New(testutil.GroundWaterCatalog())
			require.NoError(t, err)
			require.NoError(t, g.AddCells(grid.Cell{Coord: at(0, 0), Terrain: ground}))

			err = g.AddCells(tt.cells...)
			require.ErrorIs(t, err, tt.wantErr)

			assert.Equal(t, 1, g.Len(), "no partial insert")
			assert.False(t, g.Contains(at(2, 2)))
			cell, _ := g.Cell(at(0, 0))
			assert.Equal(t, ground, cell.Terrain, "existing cell untouched")
		})
	}
}

func TestAddCellsNamesUnknownTerrain(t *testing.T) {
	g, err := grid.New(testutil.GroundWaterCatalog())
	require.NoError(t, err)

	err = g.AddCells(grid.Cell{Coord: at(0, 0), Terrain: terrain.Forest})
	assert.ErrorContains(t, err, "forest")
}

func TestRemoveCells(t *testing.T) {
	g := testutil.GroundGrid(t, 3, 3, layout)

	g.RemoveCells(at(1, 1), at(7, 7))
	assert.Equal(t, 8, g.Len())
	assert.False(t, g.Contains(at(1, 1)))

	assert.NotPanics(t, func() { g.RemoveCells(at(1, 1)) })
	assert.Equal(t, 8, g.Len())
}

func TestIsBlocked(t *testing.T) {
	g := testutil.GroundGrid(t, 3, 3, layout)

	blocked, err := g.IsBlocked(at(1, 1))
	require.NoError(t, err)
	assert.False(t, blocked)

	require.NoError(t, g.SetBlocked(true, at(1, 1)))
	blocked, err = g.IsBlocked(at(1, 1))
	require.NoError(t, err)
	assert.True(t, blocked)

	_, err = g.IsBlocked(at(5, 5))
	assert.ErrorIs(t, err, grid.ErrCellNotFound)
}

func TestSetBlockedIsAtomic(t *testing.T) {
	g := testutil.GroundGrid(t, 3, 3, layout)

	err := g.SetBlocked(true, at(0, 0), at(9, 9))
	require.ErrorIs(t, err, grid.ErrCellNotFound)

	blocked, err := g.IsBlocked(at(0, 0))
	require.NoError(t, err)
	assert.False(t, blocked)
}

func TestSetTerrain(t *testing.T) {
	g := testutil.GroundGrid(t, 3, 3, layout)

	require.NoError(t, g.SetTerrain(water, at(1, 1), at(2, 2)))
	cost, err := g.MovementCost(at(1, 1), walking)
	require.NoError(t, err)
	assert.Equal(t, 2, cost)

	err = g.SetTerrain(terrain.Mountain, at(0, 0))
	require.ErrorIs(t, err, terrain.ErrUnknownTerrainType)

	err = g.SetTerrain(water, at(0, 0), at(4, 4))
	require.ErrorIs(t, err, grid.ErrCellNotFound)
	cell, _ := g.Cell(at(0, 0))
	assert.Equal(t, ground, cell.Terrain)
}

func TestNeighborsOrder(t *testing.T) {
	g := testutil.GroundGrid(t, 3, 3, layout)

	want := testutil.Cubes(layout, [2]int{2, 1}, [2]int{2, 0}, [2]int{1, 0}, [2]int{0, 1}, [2]int{1, 2}, [2]int{2, 2})
	assert.Equal(t, want, g.Neighbors(at(1, 1), false))

	// corner keeps only contained cells
	assert.Equal(t, testutil.Cubes(layout, [2]int{1, 0}, [2]int{0, 1}), g.Neighbors(at(0, 0), false))
}

func TestNeighborsPassable(t *testing.T) {
	g := testutil.GroundGrid(t, 3, 3, layout)
	require.NoError(t, g.SetBlocked(true, at(2, 1), at(1, 0)))

	all := g.Neighbors(at(1, 1), false)
	passable := g.Neighbors(at(1, 1), true)
	assert.Len(t, all, 6)
	assert.Equal(t, testutil.Cubes(layout, [2]int{2, 0}, [2]int{0, 1}, [2]int{1, 2}, [2]int{2, 2}), passable)
}

func TestNeighborSymmetry(t *testing.T) {
	g := testutil.GroundGrid(t, 5, 4, layout)
	require.NoError(t, g.SetBlocked(true, at(1, 1), at(3, 2), at(4, 0)))

	for _, a := range g.Coordinates() {
		for _, b := range g.Neighbors(a, false) {
			assert.Contains(t, g.Neighbors(b, false), a, "%v <-> %v", a, b)
		}

		aBlocked, err := g.IsBlocked(a)
		require.NoError(t, err)
		if aBlocked {
			continue
		}
		for _, b := range g.Neighbors(a, true) {
			assert.Contains(t, g.Neighbors(b, true), a, "passable %v <-> %v", a, b)
		}
	}
}

func TestMovementCost(t *testing.T) {
	g := testutil.GroundGrid(t, 2, 2, layout)

	cost, err := g.MovementCost(at(0, 0), walking)
	require.NoError(t, err)
	assert.Equal(t, 1, cost)

	cost, err = g.MovementCost(at(0, 0), testutil.Fixtures.Swimming)
	require.NoError(t, err)
	assert.Equal(t, 3, cost)

	_, err = g.MovementCost(at(0, 0), terrain.Flying)
	assert.ErrorIs(t, err, terrain.ErrUnknownMovementType)

	_, err = g.MovementCost(at(6, 6), walking)
	assert.ErrorIs(t, err, grid.ErrCellNotFound)
}

func TestCellsAndCoordinates(t *testing.T) {
	g := testutil.GroundGrid(t, 2, 2, layout)
	require.NoError(t, g.SetBlocked(true, at(1, 1)))

	coords := g.Coordinates()
	assert.Equal(t, testutil.Cubes(layout, [2]int{0, 0}, [2]int{1, 0}, [2]int{0, 1}, [2]int{1, 1}), coords)

	cells := g.Cells()
	require.Len(t, cells, 4)
	for i, c := range cells {
		assert.Equal(t, coords[i], c.Coord)
		assert.Equal(t, ground, c.Terrain)
		assert.Equal(t, c.Coord == at(1, 1), c.Blocked)
	}

	// snapshots do not alias grid state
	cells[0].Blocked = true
	blocked, err := g.IsBlocked(cells[0].Coord)
	require.NoError(t, err)
	assert.False(t, blocked)
}

func TestOffsetWrappers(t *testing.T) {
	g := testutil.GroundGrid(t, 3, 3, layout)
	o := hex.NewOffset(layout, 1, 1)

	assert.True(t, g.ContainsOffset(o))
	assert.False(t, g.ContainsOffset(hex.NewOffset(layout, 3, 0)))

	require.NoError(t, g.SetBlockedOffset(true, o))
	blocked, err := g.IsBlockedOffset(o)
	require.NoError(t, err)
	assert.True(t, blocked)

	require.NoError(t, g.SetTerrainOffset(water, hex.NewOffset(layout, 0, 0)))
	cost, err := g.MovementCostOffset(hex.NewOffset(layout, 0, 0), walking)
	require.NoError(t, err)
	assert.Equal(t, 2, cost)

	cell, ok := g.CellOffset(hex.NewOffset(layout, 0, 0))
	require.True(t, ok)
	assert.Equal(t, water, cell.Terrain)

	assert.Equal(t,
		[]hex.Offset{hex.NewOffset(layout, 1, 0), hex.NewOffset(layout, 0, 1)},
		g.NeighborsOffset(hex.NewOffset(layout, 0, 0), false))
}

func TestOffsetRangeWrappers(t *testing.T) {
	g := testutil.GroundGrid(t, 3, 3, layout)
	corner := hex.NewOffset(layout, 0, 0)
	neighbors := []hex.Offset{hex.NewOffset(layout, 1, 0), hex.NewOffset(layout, 0, 1)}

	got, err := g.RangeOffset(corner, 1)
	require.NoError(t, err)
	assert.Equal(t, neighbors, got)

	got, err = g.MovementRangeOffset(corner, 1, walking)
	require.NoError(t, err)
	assert.ElementsMatch(t, neighbors, got)

	got, err = g.ExactMovementRangeOffset(corner, 1, walking)
	require.NoError(t, err)
	assert.ElementsMatch(t, neighbors, got)

	got, err = g.RangeOffset(corner, 0)
	require.NoError(t, err)
	assert.Empty(t, got)

	_, err = g.MovementRangeOffset(hex.NewOffset(layout, 5, 5), 1, walking)
	require.ErrorIs(t, err, grid.ErrCellNotFound)
}

func TestOffsetRangeWrappersUseCenterLayout(t *testing.T) {
	g := testutil.GroundGrid(t, 3, 3, layout)
	// the same cell as (1, 1) in odd-rows-right
	center := hex.ToOffset(hex.EvenColumnsDown, at(1, 1))

	got, err := g.RangeOffset(center, 1)
	require.NoError(t, err)
	require.Len(t, got, 6)
	for _, o := range got {
		assert.Equal(t, hex.EvenColumnsDown, o.Layout)
		assert.True(t, g.ContainsOffset(o))
	}
}

func TestAddAndRemoveCellsByOffset(t *testing.T) {
	g, err := grid.New(testutil.GroundWaterCatalog())
	require.NoError(t, err)

	a, b := hex.NewOffset(layout, 0, 0), hex.NewOffset(layout, 1, 1)
	require.NoError(t, g.AddCells(
		grid.OffsetCell(a, ground, false),
		grid.OffsetCell(b, water, true),
	))
	assert.Equal(t, 2, g.Len())

	cell, ok := g.CellOffset(b)
	require.True(t, ok)
	assert.Equal(t, grid.Cell{Coord: at(1, 1), Terrain: water, Blocked: true}, cell)

	g.RemoveCellsOffset(a, hex.NewOffset(layout, 2, 2))
	assert.False(t, g.ContainsOffset(a))
	assert.Equal(t, 1, g.Len())
}
