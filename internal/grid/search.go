package grid

import (
	"fmt"

	"github.com/udisondev/hexgrid/internal/hex"
	"github.com/udisondev/hexgrid/internal/search"
	"github.com/udisondev/hexgrid/internal/terrain"
)

// Range returns the cells within radius unweighted steps of center, ignoring
// blocking and terrain. Center is excluded and must be a cell of the grid.
func (g *Grid) Range(center hex.Cube, radius int) ([]hex.Cube, error) {
	if err := g.requireAll([]hex.Cube{center}); err != nil {
		return nil, fmt.Errorf("range: %w", err)
	}
	return search.Range(g, center, radius), nil
}

// MovementRange returns the cells m can reach from center within budget
// using the ring-bounded expansion of search.MovementRange.
func (g *Grid) MovementRange(center hex.Cube, budget int, m terrain.MovementType) ([]hex.Cube, error) {
	if err := g.checkMovement(m); err != nil {
		return nil, err
	}
	if err := g.requireAll([]hex.Cube{center}); err != nil {
		return nil, fmt.Errorf("movement range: %w", err)
	}
	return search.MovementRange(g, center, budget, m)
}

// ExactMovementRange returns every cell whose cheapest route from center
// costs at most budget.
func (g *Grid) ExactMovementRange(center hex.Cube, budget int, m terrain.MovementType) ([]hex.Cube, error) {
	if err := g.checkMovement(m); err != nil {
		return nil, err
	}
	if err := g.requireAll([]hex.Cube{center}); err != nil {
		return nil, fmt.Errorf("movement range: %w", err)
	}
	return search.MovementRangeExact(g, center, budget, m)
}

// ShortestPath returns the cheapest path from start to goal for m, start
// excluded and goal last. It is empty when goal is unreachable or equals
// start. Both ends must be cells of the grid.
func (g *Grid) ShortestPath(start, goal hex.Cube, m terrain.MovementType) ([]hex.Cube, error) {
	if err := g.checkMovement(m); err != nil {
		return nil, err
	}
	if err := g.requireAll([]hex.Cube{start, goal}); err != nil {
		return nil, fmt.Errorf("shortest path: %w", err)
	}
	return search.ShortestPath(g, start, goal, m)
}

// PathCost sums the step costs of path for m.
func (g *Grid) PathCost(path []hex.Cube, m terrain.MovementType) (int, error) {
	return search.PathCost(g, path, m)
}

func (g *Grid) checkMovement(m terrain.MovementType) error {
	if !g.catalog.HasMovement(m) {
		return fmt.Errorf("%w: %v", terrain.ErrUnknownMovementType, m)
	}
	return nil
}
