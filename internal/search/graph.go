// Package search implements range flood fills and A* path search over a hex
// graph. Functions are pure over the Graph they are given; scratch storage
// comes from package-level pools.
package search

import (
	"github.com/udisondev/hexgrid/internal/hex"
	"github.com/udisondev/hexgrid/internal/terrain"
)

// Graph is the query surface the search functions need from a grid.
type Graph interface {
	// AppendNeighbors appends the contained neighbors of c to dst in
	// hex.Directions order, skipping blocked cells when onlyPassable is set.
	AppendNeighbors(dst []hex.Cube, c hex.Cube, onlyPassable bool) []hex.Cube

	// MovementCost is the cost for m to step onto c.
	MovementCost(c hex.Cube, m terrain.MovementType) (int, error)
}

// Heuristic is the hex distance between a and b. It never overestimates
// while every step costs at least 1.
func Heuristic(a, b hex.Cube) int {
	return hex.Distance(a, b)
}
