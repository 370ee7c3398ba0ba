package grid

import (
	"fmt"
	"log/slog"

	"github.com/udisondev/hexgrid/internal/hex"
	"github.com/udisondev/hexgrid/internal/terrain"
)

// NewRect builds a width × height grid of offset coordinates (0..width-1,
// 0..height-1) in layout, every cell unblocked with defaultTerrain.
func NewRect(width, height int, layout hex.Layout, catalog *terrain.Catalog, defaultTerrain terrain.TerrainType) (*Grid, error) {
	g, err := New(catalog)
	if err != nil {
		return nil, err
	}
	if err := g.Resize(width, height, layout, defaultTerrain); err != nil {
		return nil, err
	}
	return g, nil
}

// MaxCells caps the area of a rectangular grid.
const MaxCells = 1 << 24

// Resize reshapes the grid into a width × height rectangle in layout.
// Cells inside the new rectangle keep their state, cells outside are
// removed, and missing cells are added unblocked with defaultTerrain.
func (g *Grid) Resize(width, height int, layout hex.Layout, defaultTerrain terrain.TerrainType) error {
	if width < 0 || height < 0 || (width > 0 && height > MaxCells/width) {
		return fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	if !layout.Valid() {
		return fmt.Errorf("resize: %w: %v", hex.ErrUnknownLayout, layout)
	}
	if !g.catalog.HasTerrain(defaultTerrain) {
		return fmt.Errorf("resize: %w: %v", terrain.ErrUnknownTerrainType, defaultTerrain)
	}

	keep := make(map[hex.Cube]*cellState, width*height)
	added := 0
	for row := range height {
		for col := range width {
			c := hex.NewOffset(layout, col, row).Cube()
			if st, ok := g.cells[c]; ok {
				keep[c] = st
				continue
			}
			keep[c] = &cellState{terrain: defaultTerrain}
			added++
		}
	}

	removed := len(g.cells) - (len(keep) - added)
	g.cells = keep

	slog.Debug("grid resized",
		"width", width, "height", height, "layout", layout,
		"cells", len(keep), "added", added, "removed", removed)
	return nil
}
