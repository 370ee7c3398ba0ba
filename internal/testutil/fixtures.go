package testutil

import "github.com/udisondev/hexgrid/internal/terrain"

// Fixtures holds the catalog members shared by tests.
var Fixtures = struct {
	Ground terrain.TerrainType
	Water  terrain.TerrainType

	Walking  terrain.MovementType
	Swimming terrain.MovementType
}{
	Ground:   terrain.Ground,
	Water:    terrain.Water,
	Walking:  terrain.Walking,
	Swimming: terrain.Swimming,
}

// GroundWaterCatalog builds a two-terrain catalog: walking pays 1 on ground
// and 2 on water, swimming pays 3 on ground and 1 on water.
func GroundWaterCatalog() *terrain.Catalog {
	c, err := terrain.NewCatalog(
		[]terrain.TerrainType{Fixtures.Ground, Fixtures.Water},
		[]terrain.CostRow{
			{Movement: Fixtures.Walking, Costs: map[terrain.TerrainType]int{Fixtures.Ground: 1, Fixtures.Water: 2}},
			{Movement: Fixtures.Swimming, Costs: map[terrain.TerrainType]int{Fixtures.Ground: 3, Fixtures.Water: 1}},
		},
	)
	if err != nil {
		panic("testutil: ground/water catalog: " + err.Error())
	}
	return c
}
