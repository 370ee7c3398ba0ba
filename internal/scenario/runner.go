package scenario

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/udisondev/hexgrid/internal/grid"
	"github.com/udisondev/hexgrid/internal/hex"
)

// Result is the outcome of one query.
type Result struct {
	Query    Query
	Cells    []hex.Cube
	Cost     int // total movement cost, path queries only
	Duration time.Duration
	Err      error
}

// Runner executes query batches in parallel on a grid that nobody mutates
// while the batch runs.
type Runner struct {
	workers int
	metrics *Metrics
}

// NewRunner creates a runner with at most workers concurrent queries.
// metrics may be nil.
func NewRunner(workers int, metrics *Metrics) *Runner {
	if workers < 1 {
		workers = 1
	}
	return &Runner{workers: workers, metrics: metrics}
}

// Run executes queries and returns their results in input order. The first
// failing query cancels the rest and its error is returned.
func (r *Runner) Run(ctx context.Context, g *grid.Grid, queries []Query) ([]Result, error) {
	results := make([]Result, len(queries))
	start := time.Now()

	eg, ectx := errgroup.WithContext(ctx)
	eg.SetLimit(r.workers)

	for i, q := range queries {
		eg.Go(func() error {
			if err := ectx.Err(); err != nil {
				return err
			}
			res := Execute(g, q)
			r.metrics.observe(res)
			results[i] = res
			if res.Err != nil {
				return fmt.Errorf("query %q: %w", q.Name, res.Err)
			}
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}

	slog.Info("query batch done", "queries", len(queries), "workers", r.workers, "elapsed", time.Since(start))
	return results, nil
}

// Execute runs a single query.
func Execute(g *grid.Grid, q Query) Result {
	res := Result{Query: q}
	began := time.Now()

	switch q.Kind {
	case KindPath:
		res.Cells, res.Err = g.ShortestPath(q.From, q.To, q.Movement)
		if res.Err == nil {
			res.Cost, res.Err = g.PathCost(res.Cells, q.Movement)
		}
	case KindRange:
		res.Cells, res.Err = g.Range(q.From, q.Radius)
	case KindMovementRange:
		res.Cells, res.Err = g.MovementRange(q.From, q.Budget, q.Movement)
	case KindExactMovementRange:
		res.Cells, res.Err = g.ExactMovementRange(q.From, q.Budget, q.Movement)
	default:
		res.Err = fmt.Errorf("%w: %q", ErrUnknownKind, q.Kind)
	}

	res.Duration = time.Since(began)
	return res
}
