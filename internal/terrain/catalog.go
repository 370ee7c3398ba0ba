// Package terrain defines terrain kinds, movement kinds and the cost matrix
// between them.
package terrain

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

var (
	ErrEmptyCatalog        = errors.New("catalog has no movement types")
	ErrIncompleteCostRow   = errors.New("movement cost row is incomplete")
	ErrUnknownTerrainInRow = errors.New("movement cost row references unknown terrain")
	ErrDuplicateID         = errors.New("duplicate catalog id")
	ErrNonPositiveCost     = errors.New("movement cost must be positive")
	ErrUnknownMovementType = errors.New("unknown movement type")
	ErrUnknownTerrainType  = errors.New("unknown terrain type")
)

// TerrainType describes the ground cover of a cell.
type TerrainType struct {
	ID   int
	Name string
}

func (t TerrainType) String() string { return t.Name }

// MovementType describes how a unit traverses terrain.
type MovementType struct {
	ID   int
	Name string
}

func (m MovementType) String() string { return m.Name }

// CostRow is the per-terrain step cost for one movement type.
type CostRow struct {
	Movement MovementType
	Costs    map[TerrainType]int
}

// Catalog is an immutable terrain × movement cost table.
//
// Members get a dense index at construction and costs live in one flat
// slice, row per movement type. Index to member is a plain slice; id to index
// goes through a map because ids are arbitrary ints, possibly sparse or
// negative, so an id-indexed array could not bound its size.
type Catalog struct {
	terrains  []TerrainType
	movements []MovementType

	terrainIdx  map[int]int
	movementIdx map[int]int

	// costs[m*len(terrains)+t]
	costs []int
}

// NewCatalog validates and builds a catalog. Every row must price every
// declared terrain and nothing else.
func NewCatalog(terrains []TerrainType, rows []CostRow) (*Catalog, error) {
	if len(rows) == 0 {
		return nil, ErrEmptyCatalog
	}

	c := &Catalog{
		terrains:    make([]TerrainType, len(terrains)),
		movements:   make([]MovementType, len(rows)),
		terrainIdx:  make(map[int]int, len(terrains)),
		movementIdx: make(map[int]int, len(rows)),
		costs:       make([]int, len(rows)*len(terrains)),
	}
	copy(c.terrains, terrains)

	for i, t := range terrains {
		if prev, dup := c.terrainIdx[t.ID]; dup {
			return nil, fmt.Errorf("%w: terrain id %d used by %q and %q",
				ErrDuplicateID, t.ID, terrains[prev].Name, t.Name)
		}
		c.terrainIdx[t.ID] = i
	}

	for mi, row := range rows {
		m := row.Movement
		if prev, dup := c.movementIdx[m.ID]; dup {
			return nil, fmt.Errorf("%w: movement id %d used by %q and %q",
				ErrDuplicateID, m.ID, rows[prev].Movement.Name, m.Name)
		}
		c.movementIdx[m.ID] = mi
		c.movements[mi] = m

		if err := c.fillRow(mi, row); err != nil {
			return nil, err
		}
	}

	return c, nil
}

func (c *Catalog) fillRow(mi int, row CostRow) error {
	var missing, unknown []string
	for _, t := range c.terrains {
		if _, ok := row.Costs[t]; !ok {
			missing = append(missing, t.Name)
		}
	}
	for t := range row.Costs {
		if !c.HasTerrain(t) {
			unknown = append(unknown, t.Name)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("%w: %q lacks %s", ErrIncompleteCostRow, row.Movement.Name, strings.Join(missing, ", "))
	}
	if len(unknown) > 0 {
		slices.Sort(unknown)
		return fmt.Errorf("%w: %q has %s", ErrUnknownTerrainInRow, row.Movement.Name, strings.Join(unknown, ", "))
	}

	base := mi * len(c.terrains)
	for ti, t := range c.terrains {
		cost := row.Costs[t]
		if cost < 1 {
			return fmt.Errorf("%w: %q on %q costs %d", ErrNonPositiveCost, row.Movement.Name, t.Name, cost)
		}
		c.costs[base+ti] = cost
	}
	return nil
}

// Cost returns the step cost for movement m entering terrain t.
func (c *Catalog) Cost(m MovementType, t TerrainType) (int, error) {
	mi, ok := c.movementIndex(m)
	if !ok {
		return 0, fmt.Errorf("%w: %v", ErrUnknownMovementType, m)
	}
	ti, ok := c.terrainIndex(t)
	if !ok {
		return 0, fmt.Errorf("%w: %v", ErrUnknownTerrainType, t)
	}
	return c.costs[mi*len(c.terrains)+ti], nil
}

// HasTerrain reports whether t (id and name) is a catalog member.
func (c *Catalog) HasTerrain(t TerrainType) bool {
	_, ok := c.terrainIndex(t)
	return ok
}

// HasMovement reports whether m (id and name) is a catalog member.
func (c *Catalog) HasMovement(m MovementType) bool {
	_, ok := c.movementIndex(m)
	return ok
}

// TerrainByID looks up a terrain type by id.
func (c *Catalog) TerrainByID(id int) (TerrainType, bool) {
	i, ok := c.terrainIdx[id]
	if !ok {
		return TerrainType{}, false
	}
	return c.terrains[i], true
}

// MovementByID looks up a movement type by id.
func (c *Catalog) MovementByID(id int) (MovementType, bool) {
	i, ok := c.movementIdx[id]
	if !ok {
		return MovementType{}, false
	}
	return c.movements[i], true
}

// TerrainByName looks up a terrain type by name.
func (c *Catalog) TerrainByName(name string) (TerrainType, bool) {
	for _, t := range c.terrains {
		if t.Name == name {
			return t, true
		}
	}
	return TerrainType{}, false
}

// MovementByName looks up a movement type by name.
func (c *Catalog) MovementByName(name string) (MovementType, bool) {
	for _, m := range c.movements {
		if m.Name == name {
			return m, true
		}
	}
	return MovementType{}, false
}

// Terrains returns the terrain types in declaration order.
func (c *Catalog) Terrains() []TerrainType {
	out := make([]TerrainType, len(c.terrains))
	copy(out, c.terrains)
	return out
}

// Movements returns the movement types in declaration order.
func (c *Catalog) Movements() []MovementType {
	out := make([]MovementType, len(c.movements))
	copy(out, c.movements)
	return out
}

func (c *Catalog) terrainIndex(t TerrainType) (int, bool) {
	i, ok := c.terrainIdx[t.ID]
	if !ok || c.terrains[i] != t {
		return 0, false
	}
	return i, true
}

func (c *Catalog) movementIndex(m MovementType) (int, bool) {
	i, ok := c.movementIdx[m.ID]
	if !ok || c.movements[i] != m {
		return 0, false
	}
	return i, true
}
