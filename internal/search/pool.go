package search

import (
	"sync"

	"github.com/udisondev/hexgrid/internal/hex"
)

// Pool recycles scratch containers of one type between searches.
// Get hands out a cleared instance owned by the caller until Put.
type Pool[T any] struct {
	pool  sync.Pool
	reset func(T)
}

// NewPool creates a pool; newFn allocates, reset clears an instance in place.
func NewPool[T any](newFn func() T, reset func(T)) *Pool[T] {
	p := &Pool[T]{reset: reset}
	p.pool.New = func() any {
		return newFn()
	}
	return p
}

// Get returns a cleared container, recycled when one is available.
func (p *Pool[T]) Get() T {
	return p.pool.Get().(T)
}

// Put clears v and makes it available to later Get calls.
// v must not be used after Put.
func (p *Pool[T]) Put(v T) {
	p.reset(v)
	p.pool.Put(v)
}

const defaultScratchCap = 64

// Scratch pools, one per container type used by the searches.
var (
	costMaps = NewPool(
		func() map[hex.Cube]int { return make(map[hex.Cube]int, defaultScratchCap) },
		func(m map[hex.Cube]int) { clear(m) },
	)
	predecessorMaps = NewPool(
		func() map[hex.Cube]hex.Cube { return make(map[hex.Cube]hex.Cube, defaultScratchCap) },
		func(m map[hex.Cube]hex.Cube) { clear(m) },
	)
	visitedSets = NewPool(
		func() map[hex.Cube]struct{} { return make(map[hex.Cube]struct{}, defaultScratchCap) },
		func(m map[hex.Cube]struct{}) { clear(m) },
	)
	frontiers = NewPool(
		func() *frontier { return &frontier{items: make([]frontierItem, 0, defaultScratchCap)} },
		func(f *frontier) { f.reset() },
	)
	coordLists = NewPool(
		func() *[]hex.Cube {
			s := make([]hex.Cube, 0, defaultScratchCap)
			return &s
		},
		func(s *[]hex.Cube) { *s = (*s)[:0] },
	)
)
