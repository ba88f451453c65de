// Package engine drives repeated rounds of neighbor counting and batch
// removal over a grid until a round removes nothing.
package engine

import (
	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-stockgrid/model"
	"github.com/sheikhrachel/go-stockgrid/rules"
)

// ErrNegativeThreshold is returned when a negative removal threshold is
// supplied. It is reported before any mutation of the grid.
var ErrNegativeThreshold = errors.New("threshold must be non-negative")

// Options holds the knobs for a stabilization run
type Options struct {
	// Threshold is the minimum neighbor count an Occupied cell needs to
	// survive a round. Zero is legal and stabilizes immediately.
	Threshold int
	// UseParallel selects the errgroup counting pass
	UseParallel bool
	// UseMemoryPool reuses the per-round counter buffer
	UseMemoryPool bool
	// MaxRounds caps the number of rounds; 0 means run to fixpoint
	MaxRounds int
	// OnRound, if set, is called after each round that removed cells
	OnRound func(round, removed int)
}

// DefaultOptions returns the reference run configuration
func DefaultOptions() Options {
	return Options{
		Threshold:     rules.DefaultThreshold,
		UseParallel:   true,
		UseMemoryPool: true,
	}
}

// Result reports the outcome of a stabilization run. Rounds counts only
// rounds that removed at least one cell.
type Result struct {
	Rounds       int
	TotalRemoved int
	Stable       bool
}

// Stabilize mutates the grid in place, applying removal rounds until a
// round removes zero cells (or MaxRounds is hit, leaving Stable false).
// Each round counts neighbors against the grid state before any of that
// round's removals; removals within a round never influence each other.
// Termination is guaranteed: cells only ever move Occupied -> Removed,
// so a finite grid reaches a fixpoint in at most width*height rounds.
func Stabilize(g *model.Grid, opts Options) (Result, error) {
	if opts.Threshold < 0 {
		return Result{}, errors.Wrapf(ErrNegativeThreshold, "[Stabilize] threshold: %d", opts.Threshold)
	}

	var pool *model.CounterPool
	if opts.UseMemoryPool {
		pool = model.NewCounterPool()
	}

	var res Result
	for {
		if opts.MaxRounds > 0 && res.Rounds >= opts.MaxRounds {
			return res, nil
		}

		removed := step(g, opts, pool)
		if removed == 0 {
			res.Stable = true
			return res, nil
		}

		res.Rounds++
		res.TotalRemoved += removed
		if opts.OnRound != nil {
			opts.OnRound(res.Rounds, removed)
		}
	}
}

// Step applies a single counting + removal round and returns the number
// of cells removed.
func Step(g *model.Grid, opts Options) (int, error) {
	if opts.Threshold < 0 {
		return 0, errors.Wrapf(ErrNegativeThreshold, "[Step] threshold: %d", opts.Threshold)
	}
	return step(g, opts, nil), nil
}

// step counts against the current grid, then applies the batch removal
func step(g *model.Grid, opts Options, pool *model.CounterPool) int {
	counter := g.AdjacentCounts(opts.UseParallel, pool)
	removed := g.RemoveBelowThreshold(counter, opts.Threshold)
	model.CounterToPool(counter, pool)
	return removed
}
