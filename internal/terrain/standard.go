package terrain

// Terrain and movement types of the Standard catalog.
var (
	Ground   = TerrainType{ID: 0, Name: "ground"}
	Forest   = TerrainType{ID: 1, Name: "forest"}
	Water    = TerrainType{ID: 2, Name: "water"}
	Mountain = TerrainType{ID: 3, Name: "mountain"}

	Walking  = MovementType{ID: 0, Name: "walking"}
	Swimming = MovementType{ID: 1, Name: "swimming"}
	Flying   = MovementType{ID: 2, Name: "flying"}
)

// Standard builds a fresh catalog with the common tactics terrain set.
// Each call returns a new value; nothing is shared between callers.
func Standard() *Catalog {
	c, err := NewCatalog(
		[]TerrainType{Ground, Forest, Water, Mountain},
		[]CostRow{
			{Movement: Walking, Costs: map[TerrainType]int{Ground: 1, Forest: 2, Water: 3, Mountain: 4}},
			{Movement: Swimming, Costs: map[TerrainType]int{Ground: 2, Forest: 3, Water: 1, Mountain: 6}},
			{Movement: Flying, Costs: map[TerrainType]int{Ground: 1, Forest: 1, Water: 1, Mountain: 2}},
		},
	)
	if err != nil {
		panic(err)
	}
	return c
}
