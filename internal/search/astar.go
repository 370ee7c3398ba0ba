package search

import (
	"container/heap"
	"fmt"

	"github.com/udisondev/hexgrid/internal/hex"
	"github.com/udisondev/hexgrid/internal/terrain"
)

// ShortestPath finds a minimum-cost path from start to goal for movement m
// using A*. The result excludes start and ends with goal. It is nil when
// start == goal or goal cannot be reached; only cost lookups fail.
//
// Equal-priority entries pop in insertion order, so results are repeatable.
func ShortestPath(g Graph, start, goal hex.Cube, m terrain.MovementType) ([]hex.Cube, error) {
	if start == goal {
		return nil, nil
	}

	open := frontiers.Get()
	defer frontiers.Put(open)
	costSoFar := costMaps.Get()
	defer costMaps.Put(costSoFar)
	cameFrom := predecessorMaps.Get()
	defer predecessorMaps.Put(cameFrom)
	nbuf := coordLists.Get()
	defer coordLists.Put(nbuf)

	costSoFar[start] = 0
	open.push(start, 0, Heuristic(start, goal))

	for open.Len() > 0 {
		current := open.pop()
		if current.cost > costSoFar[current.at] {
			continue // superseded by a cheaper push
		}
		if current.at == goal {
			break
		}

		*nbuf = g.AppendNeighbors((*nbuf)[:0], current.at, true)
		for _, next := range *nbuf {
			step, err := g.MovementCost(next, m)
			if err != nil {
				return nil, fmt.Errorf("path %v -> %v: %w", start, goal, err)
			}
			newCost := current.cost + step
			if old, seen := costSoFar[next]; seen && old <= newCost {
				continue
			}
			costSoFar[next] = newCost
			cameFrom[next] = current.at
			open.push(next, newCost, newCost+Heuristic(next, goal))
		}
	}

	if _, reached := cameFrom[goal]; !reached {
		return nil, nil
	}
	return reconstructPath(cameFrom, start, goal), nil
}

// reconstructPath walks predecessors back from goal and reverses.
func reconstructPath(cameFrom map[hex.Cube]hex.Cube, start, goal hex.Cube) []hex.Cube {
	path := make([]hex.Cube, 0, hex.Distance(start, goal)+1)
	for at := goal; at != start; at = cameFrom[at] {
		path = append(path, at)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// PathCost sums the step costs of path for movement m. The start cell is not
// part of path and costs nothing.
func PathCost(g Graph, path []hex.Cube, m terrain.MovementType) (int, error) {
	total := 0
	for _, c := range path {
		step, err := g.MovementCost(c, m)
		if err != nil {
			return 0, err
		}
		total += step
	}
	return total, nil
}

// frontierItem is an open-list entry ordered by priority, then seq.
type frontierItem struct {
	at       hex.Cube
	cost     int // g at push time
	priority int // g + h
	seq      uint64
}

// frontier is a min-heap of frontierItem implementing container/heap.
type frontier struct {
	items []frontierItem
	seq   uint64
}

func (f *frontier) Len() int { return len(f.items) }

func (f *frontier) Less(i, j int) bool {
	a, b := f.items[i], f.items[j]
	if a.priority != b.priority {
		return a.priority < b.priority
	}
	return a.seq < b.seq
}

func (f *frontier) Swap(i, j int) { f.items[i], f.items[j] = f.items[j], f.items[i] }

func (f *frontier) Push(x any) { f.items = append(f.items, x.(frontierItem)) }

func (f *frontier) Pop() any {
	n := len(f.items)
	item := f.items[n-1]
	f.items = f.items[:n-1]
	return item
}

func (f *frontier) push(at hex.Cube, cost, priority int) {
	heap.Push(f, frontierItem{at: at, cost: cost, priority: priority, seq: f.seq})
	f.seq++
}

func (f *frontier) pop() frontierItem {
	return heap.Pop(f).(frontierItem)
}

func (f *frontier) reset() {
	f.items = f.items[:0]
	f.seq = 0
}
