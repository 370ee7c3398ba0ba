// Package scenario loads a map fixture with a batch of range and path
// queries from YAML and runs the batch against the grid.
package scenario

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/udisondev/hexgrid/internal/grid"
	"github.com/udisondev/hexgrid/internal/hex"
	"github.com/udisondev/hexgrid/internal/terrain"
)

var (
	ErrCatalogSource   = errors.New("scenario needs exactly one of catalog or catalog_file")
	ErrUnknownTerrain  = errors.New("unknown terrain name")
	ErrUnknownMovement = errors.New("unknown movement name")
	ErrUnknownKind     = errors.New("unknown query kind")
)

// Kind selects the grid operation a query runs.
type Kind string

const (
	KindPath               Kind = "path"
	KindRange              Kind = "range"
	KindMovementRange      Kind = "movement_range"
	KindExactMovementRange Kind = "exact_movement_range"
)

// Point is a [col, row] pair in the scenario layout.
type Point [2]int

// Document is the YAML form of a scenario.
type Document struct {
	Layout         hex.Layout        `yaml:"layout"`
	Width          int               `yaml:"width"`
	Height         int               `yaml:"height"`
	DefaultTerrain string            `yaml:"default_terrain"`
	Catalog        *terrain.Document `yaml:"catalog"`
	CatalogFile    string            `yaml:"catalog_file"`
	Terrain        []TerrainPatch    `yaml:"terrain"`
	Blocked        []Point           `yaml:"blocked"`
	Queries        []QueryDefinition `yaml:"queries"`
}

// TerrainPatch paints cells with one terrain.
type TerrainPatch struct {
	Terrain string  `yaml:"terrain"`
	Cells   []Point `yaml:"cells"`
}

// QueryDefinition is one query as written in the document.
type QueryDefinition struct {
	Name     string `yaml:"name"`
	Kind     Kind   `yaml:"kind"`
	From     Point  `yaml:"from"`
	To       Point  `yaml:"to"`
	Radius   int    `yaml:"radius"`
	Budget   int    `yaml:"budget"`
	Movement string `yaml:"movement"`
}

// Query is a resolved query ready to run.
type Query struct {
	Name     string
	Kind     Kind
	From     hex.Cube
	To       hex.Cube
	Radius   int
	Budget   int
	Movement terrain.MovementType
}

// Scenario is a built grid plus its query batch.
type Scenario struct {
	Layout  hex.Layout
	Grid    *grid.Grid
	Queries []Query
}

// Load reads a scenario file. A relative catalog_file resolves against the
// scenario's directory.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenario %s: %w", path, err)
	}

	s, err := Parse(data, filepath.Dir(path))
	if err != nil {
		return nil, fmt.Errorf("scenario %s: %w", path, err)
	}

	slog.Info("scenario loaded",
		"path", path, "layout", s.Layout, "cells", s.Grid.Len(), "queries", len(s.Queries))
	return s, nil
}

// Parse decodes and builds a scenario; baseDir anchors a relative catalog_file.
func Parse(data []byte, baseDir string) (*Scenario, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing scenario: %w", err)
	}
	return doc.Build(baseDir)
}

// Build creates the grid, applies terrain and blocking, and resolves queries.
func (d Document) Build(baseDir string) (*Scenario, error) {
	catalog, err := d.catalog(baseDir)
	if err != nil {
		return nil, err
	}

	def, ok := catalog.TerrainByName(d.DefaultTerrain)
	if !ok {
		return nil, fmt.Errorf("default_terrain: %w: %q", ErrUnknownTerrain, d.DefaultTerrain)
	}

	g, err := grid.NewRect(d.Width, d.Height, d.Layout, catalog, def)
	if err != nil {
		return nil, fmt.Errorf("building grid: %w", err)
	}

	for _, patch := range d.Terrain {
		t, ok := catalog.TerrainByName(patch.Terrain)
		if !ok {
			return nil, fmt.Errorf("terrain patch: %w: %q", ErrUnknownTerrain, patch.Terrain)
		}
		if err := g.SetTerrain(t, d.cubes(patch.Cells)...); err != nil {
			return nil, fmt.Errorf("terrain patch %q: %w", patch.Terrain, err)
		}
	}

	if err := g.SetBlocked(true, d.cubes(d.Blocked)...); err != nil {
		return nil, fmt.Errorf("blocked cells: %w", err)
	}

	queries := make([]Query, 0, len(d.Queries))
	for i, qd := range d.Queries {
		q, err := d.resolve(catalog, qd)
		if err != nil {
			return nil, fmt.Errorf("query %d (%s): %w", i, qd.Name, err)
		}
		queries = append(queries, q)
	}

	return &Scenario{Layout: d.Layout, Grid: g, Queries: queries}, nil
}

func (d Document) catalog(baseDir string) (*terrain.Catalog, error) {
	switch {
	case d.Catalog != nil && d.CatalogFile == "":
		return d.Catalog.Build()
	case d.Catalog == nil && d.CatalogFile != "":
		path := d.CatalogFile
		if !filepath.IsAbs(path) {
			path = filepath.Join(baseDir, path)
		}
		return terrain.LoadCatalog(path)
	default:
		return nil, ErrCatalogSource
	}
}

func (d Document) resolve(catalog *terrain.Catalog, qd QueryDefinition) (Query, error) {
	q := Query{
		Name:   qd.Name,
		Kind:   qd.Kind,
		From:   d.cube(qd.From),
		To:     d.cube(qd.To),
		Radius: qd.Radius,
		Budget: qd.Budget,
	}
	if q.Name == "" {
		q.Name = fmt.Sprintf("%s %v", qd.Kind, qd.From)
	}

	switch qd.Kind {
	case KindRange:
		return q, nil
	case KindPath, KindMovementRange, KindExactMovementRange:
		m, ok := catalog.MovementByName(qd.Movement)
		if !ok {
			return q, fmt.Errorf("%w: %q", ErrUnknownMovement, qd.Movement)
		}
		q.Movement = m
		return q, nil
	default:
		return q, fmt.Errorf("%w: %q", ErrUnknownKind, qd.Kind)
	}
}

func (d Document) cube(p Point) hex.Cube {
	return hex.NewOffset(d.Layout, p[0], p[1]).Cube()
}

func (d Document) cubes(points []Point) []hex.Cube {
	out := make([]hex.Cube, len(points))
	for i, p := range points {
		out[i] = d.cube(p)
	}
	return out
}
