package search

import (
	"fmt"

	"github.com/udisondev/hexgrid/internal/hex"
	"github.com/udisondev/hexgrid/internal/terrain"
)

// Range returns every cell within radius unweighted steps of center, walking
// through any contained neighbor regardless of blocking or terrain. Cells are
// listed ring by ring; center is excluded.
func Range(g Graph, center hex.Cube, radius int) []hex.Cube {
	if radius <= 0 {
		return nil
	}

	visited := visitedSets.Get()
	defer visitedSets.Put(visited)
	ring := coordLists.Get()
	defer coordLists.Put(ring)
	next := coordLists.Get()
	defer coordLists.Put(next)
	nbuf := coordLists.Get()
	defer coordLists.Put(nbuf)

	var out []hex.Cube
	visited[center] = struct{}{}
	*ring = append(*ring, center)

	for step := 0; step < radius && len(*ring) > 0; step++ {
		*next = (*next)[:0]
		for _, at := range *ring {
			*nbuf = g.AppendNeighbors((*nbuf)[:0], at, false)
			for _, n := range *nbuf {
				if _, seen := visited[n]; seen {
					continue
				}
				visited[n] = struct{}{}
				*next = append(*next, n)
				out = append(out, n)
			}
		}
		*ring, *next = *next, *ring
	}
	return out
}

// MovementRange returns the cells m can reach from center within budget,
// through passable neighbors. Center is excluded.
//
// The expansion is bounded by rings: ring k holds cells first accepted k
// steps out, priced at the cheapest route through ring k-1. Accepted cells
// are never re-priced, so a cell first accepted at a high cost can hide
// cheaper routes through it that would only appear in a later ring. Use
// MovementRangeExact when that matters.
func MovementRange(g Graph, center hex.Cube, budget int, m terrain.MovementType) ([]hex.Cube, error) {
	if budget <= 0 {
		return nil, nil
	}

	accepted := costMaps.Get()
	defer costMaps.Put(accepted)
	candidates := costMaps.Get()
	defer costMaps.Put(candidates)
	ring := coordLists.Get()
	defer coordLists.Put(ring)
	next := coordLists.Get()
	defer coordLists.Put(next)
	nbuf := coordLists.Get()
	defer coordLists.Put(nbuf)

	var out []hex.Cube
	accepted[center] = 0
	*ring = append(*ring, center)

	for step := 0; step < budget && len(*ring) > 0; step++ {
		*next = (*next)[:0]
		clear(candidates)

		for _, at := range *ring {
			base := accepted[at]
			*nbuf = g.AppendNeighbors((*nbuf)[:0], at, true)
			for _, n := range *nbuf {
				if _, done := accepted[n]; done {
					continue
				}
				cost, err := g.MovementCost(n, m)
				if err != nil {
					return nil, fmt.Errorf("movement range from %v: %w", center, err)
				}
				total := base + cost
				if total > budget {
					continue
				}
				if prev, ok := candidates[n]; !ok {
					*next = append(*next, n)
					candidates[n] = total
				} else if total < prev {
					candidates[n] = total
				}
			}
		}

		for _, n := range *next {
			accepted[n] = candidates[n]
			out = append(out, n)
		}
		*ring, *next = *next, *ring
	}
	return out, nil
}

// MovementRangeExact returns every cell whose cheapest passable route from
// center costs at most budget. It is a budget-bounded Dijkstra search and,
// unlike MovementRange, re-prices cells whenever a cheaper route appears.
// Cells are listed in the order they are settled; center is excluded.
func MovementRangeExact(g Graph, center hex.Cube, budget int, m terrain.MovementType) ([]hex.Cube, error) {
	if budget <= 0 {
		return nil, nil
	}

	open := frontiers.Get()
	defer frontiers.Put(open)
	best := costMaps.Get()
	defer costMaps.Put(best)
	settled := visitedSets.Get()
	defer visitedSets.Put(settled)
	nbuf := coordLists.Get()
	defer coordLists.Put(nbuf)

	var out []hex.Cube
	best[center] = 0
	open.push(center, 0, 0)

	for open.Len() > 0 {
		current := open.pop()
		if _, done := settled[current.at]; done {
			continue
		}
		settled[current.at] = struct{}{}
		if current.at != center {
			out = append(out, current.at)
		}

		*nbuf = g.AppendNeighbors((*nbuf)[:0], current.at, true)
		for _, n := range *nbuf {
			if _, done := settled[n]; done {
				continue
			}
			cost, err := g.MovementCost(n, m)
			if err != nil {
				return nil, fmt.Errorf("movement range from %v: %w", center, err)
			}
			total := current.cost + cost
			if total > budget {
				continue
			}
			if prev, seen := best[n]; seen && prev <= total {
				continue
			}
			best[n] = total
			open.push(n, total, total)
		}
	}
	return out, nil
}
