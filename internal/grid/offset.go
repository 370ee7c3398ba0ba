package grid

import (
	"github.com/udisondev/hexgrid/internal/hex"
	"github.com/udisondev/hexgrid/internal/terrain"
)

// Offset forms of the cube-keyed queries. Each converts with the offset's own
// layout and delegates.

// OffsetCell builds a Cell positioned by an offset coordinate, for AddCells.
func OffsetCell(o hex.Offset, t terrain.TerrainType, blocked bool) Cell {
	return Cell{Coord: o.Cube(), Terrain: t, Blocked: blocked}
}

func (g *Grid) RemoveCellsOffset(offsets ...hex.Offset) {
	g.RemoveCells(hex.Cubes(offsets)...)
}

func (g *Grid) ContainsOffset(o hex.Offset) bool {
	return g.Contains(o.Cube())
}

func (g *Grid) CellOffset(o hex.Offset) (Cell, bool) {
	return g.Cell(o.Cube())
}

func (g *Grid) IsBlockedOffset(o hex.Offset) (bool, error) {
	return g.IsBlocked(o.Cube())
}

func (g *Grid) SetBlockedOffset(blocked bool, offsets ...hex.Offset) error {
	return g.SetBlocked(blocked, hex.Cubes(offsets)...)
}

func (g *Grid) SetTerrainOffset(t terrain.TerrainType, offsets ...hex.Offset) error {
	return g.SetTerrain(t, hex.Cubes(offsets)...)
}

// NeighborsOffset returns neighbors in o's layout.
func (g *Grid) NeighborsOffset(o hex.Offset, onlyPassable bool) []hex.Offset {
	return hex.Offsets(o.Layout, g.Neighbors(o.Cube(), onlyPassable))
}

func (g *Grid) MovementCostOffset(o hex.Offset, m terrain.MovementType) (int, error) {
	return g.MovementCost(o.Cube(), m)
}

// ShortestPathOffset returns the path in start's layout.
func (g *Grid) ShortestPathOffset(start, goal hex.Offset, m terrain.MovementType) ([]hex.Offset, error) {
	path, err := g.ShortestPath(start.Cube(), goal.Cube(), m)
	return offsets(start.Layout, path, err)
}

// RangeOffset returns the range in center's layout.
func (g *Grid) RangeOffset(center hex.Offset, radius int) ([]hex.Offset, error) {
	cells, err := g.Range(center.Cube(), radius)
	return offsets(center.Layout, cells, err)
}

// MovementRangeOffset returns the movement range in center's layout.
func (g *Grid) MovementRangeOffset(center hex.Offset, budget int, m terrain.MovementType) ([]hex.Offset, error) {
	cells, err := g.MovementRange(center.Cube(), budget, m)
	return offsets(center.Layout, cells, err)
}

// ExactMovementRangeOffset returns the exact movement range in center's layout.
func (g *Grid) ExactMovementRangeOffset(center hex.Offset, budget int, m terrain.MovementType) ([]hex.Offset, error) {
	cells, err := g.ExactMovementRange(center.Cube(), budget, m)
	return offsets(center.Layout, cells, err)
}

func offsets(layout hex.Layout, cells []hex.Cube, err error) ([]hex.Offset, error) {
	if err != nil || cells == nil {
		return nil, err
	}
	return hex.Offsets(layout, cells), nil
}
