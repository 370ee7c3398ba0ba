package terrain

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrDuplicateName is returned when a catalog document reuses a terrain name;
// cost rows refer to terrains by name, so names must be unique there.
var ErrDuplicateName = errors.New("duplicate terrain name")

// Document is the YAML form of a catalog.
//
//	terrains:
//	  - {id: 0, name: ground}
//	  - {id: 1, name: water}
//	movements:
//	  - id: 0
//	    name: walking
//	    costs: {ground: 1, water: 3}
type Document struct {
	Terrains  []TerrainEntry  `yaml:"terrains"`
	Movements []MovementEntry `yaml:"movements"`
}

// TerrainEntry is one terrain in a catalog document.
type TerrainEntry struct {
	ID   int    `yaml:"id"`
	Name string `yaml:"name"`
}

// MovementEntry is one movement type and its costs keyed by terrain name.
type MovementEntry struct {
	ID    int            `yaml:"id"`
	Name  string         `yaml:"name"`
	Costs map[string]int `yaml:"costs"`
}

// Build validates the document through NewCatalog.
func (d Document) Build() (*Catalog, error) {
	terrains := make([]TerrainType, 0, len(d.Terrains))
	byName := make(map[string]TerrainType, len(d.Terrains))
	for _, e := range d.Terrains {
		t := TerrainType{ID: e.ID, Name: e.Name}
		if _, dup := byName[e.Name]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateName, e.Name)
		}
		byName[e.Name] = t
		terrains = append(terrains, t)
	}

	rows := make([]CostRow, 0, len(d.Movements))
	for _, e := range d.Movements {
		row := CostRow{
			Movement: MovementType{ID: e.ID, Name: e.Name},
			Costs:    make(map[TerrainType]int, len(e.Costs)),
		}
		for name, cost := range e.Costs {
			t, ok := byName[name]
			if !ok {
				// Not a member by name, so NewCatalog reports it as unknown.
				t = TerrainType{ID: -1, Name: name}
			}
			row.Costs[t] = cost
		}
		rows = append(rows, row)
	}

	return NewCatalog(terrains, rows)
}

// ParseCatalog decodes a YAML catalog document and builds the catalog.
func ParseCatalog(data []byte) (*Catalog, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing catalog: %w", err)
	}
	return doc.Build()
}

// LoadCatalog reads and builds a catalog from a YAML file.
func LoadCatalog(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog %s: %w", path, err)
	}

	c, err := ParseCatalog(data)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}

	slog.Info("terrain catalog loaded", "path", path, "terrains", len(c.terrains), "movements", len(c.movements))
	return c, nil
}
