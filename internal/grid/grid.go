// Package grid holds the hex cells of a map and answers containment,
// adjacency, blocking and movement-cost queries over them.
//
// A Grid is not safe for concurrent mutation. Callers serialize writes
// (SetBlocked, SetTerrain, AddCells, RemoveCells, Resize) against every
// other call; read-only queries may run in parallel.
package grid

import (
	"cmp"
	"errors"
	"fmt"
	"slices"

	"github.com/udisondev/hexgrid/internal/hex"
	"github.com/udisondev/hexgrid/internal/terrain"
)

var (
	ErrNilCatalog          = errors.New("grid requires a catalog")
	ErrCellNotFound        = errors.New("cell not found")
	ErrDuplicateCoordinate = errors.New("duplicate coordinate")
	ErrInvalidDimensions   = errors.New("invalid grid dimensions")
)

// Cell is a snapshot of one grid position.
type Cell struct {
	Coord   hex.Cube
	Terrain terrain.TerrainType
	Blocked bool
}

type cellState struct {
	terrain terrain.TerrainType
	blocked bool
}

// Grid is a set of cells keyed by cube coordinate, priced by one catalog.
type Grid struct {
	catalog *terrain.Catalog
	cells   map[hex.Cube]*cellState
}

// New creates an empty grid priced by catalog.
func New(catalog *terrain.Catalog) (*Grid, error) {
	if catalog == nil {
		return nil, ErrNilCatalog
	}
	return &Grid{
		catalog: catalog,
		cells:   make(map[hex.Cube]*cellState),
	}, nil
}

// Catalog returns the catalog the grid was built with.
func (g *Grid) Catalog() *terrain.Catalog {
	return g.catalog
}

// Len returns the number of cells.
func (g *Grid) Len() int {
	return len(g.cells)
}

// AddCells inserts cells. The batch is all-or-nothing: an uncataloged terrain
// or a coordinate already present (in the grid or earlier in the batch)
// rejects every cell.
func (g *Grid) AddCells(cells ...Cell) error {
	batch := make(map[hex.Cube]struct{}, len(cells))
	for _, c := range cells {
		if !g.catalog.HasTerrain(c.Terrain) {
			return fmt.Errorf("add cell %v: %w: %v", c.Coord, terrain.ErrUnknownTerrainType, c.Terrain)
		}
		if _, exists := g.cells[c.Coord]; exists {
			return fmt.Errorf("add cell: %w: %v", ErrDuplicateCoordinate, c.Coord)
		}
		if _, exists := batch[c.Coord]; exists {
			return fmt.Errorf("add cell: %w: %v repeated in batch", ErrDuplicateCoordinate, c.Coord)
		}
		batch[c.Coord] = struct{}{}
	}

	for _, c := range cells {
		g.cells[c.Coord] = &cellState{terrain: c.Terrain, blocked: c.Blocked}
	}
	return nil
}

// RemoveCells deletes the given coordinates. Absent coordinates are ignored.
func (g *Grid) RemoveCells(coords ...hex.Cube) {
	for _, c := range coords {
		delete(g.cells, c)
	}
}

// Contains reports whether c is a cell of the grid.
func (g *Grid) Contains(c hex.Cube) bool {
	_, ok := g.cells[c]
	return ok
}

// Cell returns the state of the cell at c.
func (g *Grid) Cell(c hex.Cube) (Cell, bool) {
	st, ok := g.cells[c]
	if !ok {
		return Cell{}, false
	}
	return Cell{Coord: c, Terrain: st.terrain, Blocked: st.blocked}, true
}

// IsBlocked reports whether the cell at c is blocked.
func (g *Grid) IsBlocked(c hex.Cube) (bool, error) {
	st, ok := g.cells[c]
	if !ok {
		return false, fmt.Errorf("%w: %v", ErrCellNotFound, c)
	}
	return st.blocked, nil
}

// SetBlocked marks every coordinate as blocked or unblocked. Nothing changes
// if any coordinate is absent.
func (g *Grid) SetBlocked(blocked bool, coords ...hex.Cube) error {
	if err := g.requireAll(coords); err != nil {
		return fmt.Errorf("set blocked: %w", err)
	}
	for _, c := range coords {
		g.cells[c].blocked = blocked
	}
	return nil
}

// SetTerrain changes the terrain of every coordinate. Nothing changes if t is
// not in the catalog or any coordinate is absent.
func (g *Grid) SetTerrain(t terrain.TerrainType, coords ...hex.Cube) error {
	if !g.catalog.HasTerrain(t) {
		return fmt.Errorf("set terrain: %w: %v", terrain.ErrUnknownTerrainType, t)
	}
	if err := g.requireAll(coords); err != nil {
		return fmt.Errorf("set terrain: %w", err)
	}
	for _, c := range coords {
		g.cells[c].terrain = t
	}
	return nil
}

func (g *Grid) requireAll(coords []hex.Cube) error {
	for _, c := range coords {
		if _, ok := g.cells[c]; !ok {
			return fmt.Errorf("%w: %v", ErrCellNotFound, c)
		}
	}
	return nil
}

// Neighbors returns the contained neighbors of c in hex.Directions order,
// leaving out blocked ones when onlyPassable is set.
func (g *Grid) Neighbors(c hex.Cube, onlyPassable bool) []hex.Cube {
	return g.AppendNeighbors(make([]hex.Cube, 0, len(hex.Directions)), c, onlyPassable)
}

// AppendNeighbors is Neighbors writing into dst.
func (g *Grid) AppendNeighbors(dst []hex.Cube, c hex.Cube, onlyPassable bool) []hex.Cube {
	for _, d := range hex.Directions {
		n := c.Add(d)
		st, ok := g.cells[n]
		if !ok || (onlyPassable && st.blocked) {
			continue
		}
		dst = append(dst, n)
	}
	return dst
}

// MovementCost is the cost for m to step onto the cell at c.
func (g *Grid) MovementCost(c hex.Cube, m terrain.MovementType) (int, error) {
	st, ok := g.cells[c]
	if !ok {
		return 0, fmt.Errorf("%w: %v", ErrCellNotFound, c)
	}
	return g.catalog.Cost(m, st.terrain)
}

// Cells returns a snapshot of every cell ordered by z, then x.
func (g *Grid) Cells() []Cell {
	out := make([]Cell, 0, len(g.cells))
	for c, st := range g.cells {
		out = append(out, Cell{Coord: c, Terrain: st.terrain, Blocked: st.blocked})
	}
	slices.SortFunc(out, func(a, b Cell) int { return compareCubes(a.Coord, b.Coord) })
	return out
}

// Coordinates returns every cell coordinate ordered by z, then x.
func (g *Grid) Coordinates() []hex.Cube {
	out := make([]hex.Cube, 0, len(g.cells))
	for c := range g.cells {
		out = append(out, c)
	}
	slices.SortFunc(out, compareCubes)
	return out
}

func compareCubes(a, b hex.Cube) int {
	if c := cmp.Compare(a.Z(), b.Z()); c != 0 {
		return c
	}
	return cmp.Compare(a.X(), b.X())
}
