package model

import (
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-stockgrid/rules"
)

// Counter holds the per-cell count of Occupied neighbors for a grid of
// the same shape. It is rebuilt from scratch every round; values are
// always in [0, 8].
type Counter struct {
	width  int
	height int
	counts [][]int
}

// NewCounter creates a zeroed counter with the specified dimensions
func NewCounter(width, height int) *Counter {
	counts := make([][]int, height)
	for i := range counts {
		counts[i] = make([]int, width)
	}
	return &Counter{
		width:  width,
		height: height,
		counts: counts,
	}
}

// GetWidth returns the width of the counter
func (c *Counter) GetWidth() int {
	return c.width
}

// GetHeight returns the height of the counter
func (c *Counter) GetHeight() int {
	return c.height
}

// Get returns the neighbor count at a cell; out-of-bounds reads are 0
func (c *Counter) Get(x, y int) int {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return 0
	}
	return c.counts[y][x]
}

// Reset resets the counter to new dimensions, zeroing all counts
func (c *Counter) Reset(width, height int) {
	c.width = width
	c.height = height

	// Resize rows if needed
	if len(c.counts) != height {
		c.counts = make([][]int, height)
	}
	for i := range c.counts {
		if len(c.counts[i]) != width {
			c.counts[i] = make([]int, width)
		} else {
			// Clear existing counts
			for j := range c.counts[i] {
				c.counts[i][j] = 0
			}
		}
	}
}

// Clear zeroes all counts
func (c *Counter) Clear() {
	for y := 0; y < c.height; y++ {
		for x := 0; x < c.width; x++ {
			c.counts[y][x] = 0
		}
	}
}

// AdjacentCounts computes the full neighbor counter for the grid,
// choosing the serial or parallel pass. The grid is only read.
func (g *Grid) AdjacentCounts(parallel bool, pool *CounterPool) *Counter {
	if parallel {
		return g.AdjacentCountsParallel(pool)
	}
	return g.AdjacentCountsSerial(pool)
}

// AdjacentCountsSerial computes the neighbor counter in a single pass
func (g *Grid) AdjacentCountsSerial(pool *CounterPool) *Counter {
	counter := counterFor(g, pool)

	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			counter.counts[y][x] = g.CountNeighbors(x, y)
		}
	}

	return counter
}

// AdjacentCountsParallel computes the neighbor counter using one worker
// per CPU, each owning a disjoint band of rows. Workers only read the
// grid and only write their own counter rows.
func (g *Grid) AdjacentCountsParallel(pool *CounterPool) *Counter {
	counter := counterFor(g, pool)

	var (
		eg            errgroup.Group
		numWorkers    = runtime.NumCPU()
		rowsPerWorker = (g.height + numWorkers - 1) / numWorkers // Ceiling division
	)

	for i := 0; i < numWorkers; i++ {
		var (
			startRow = i * rowsPerWorker
			endRow   = min(startRow+rowsPerWorker, g.height)
		)
		if startRow >= g.height {
			break
		}

		eg.Go(func() error {
			for y := startRow; y < endRow; y++ {
				for x := 0; x < g.width; x++ {
					counter.counts[y][x] = g.CountNeighbors(x, y)
				}
			}
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		fmt.Printf("Error in parallel counting: %v\n", err)
	}

	return counter
}

// RemoveBelowThreshold transitions every Occupied cell whose neighbor
// count is strictly below threshold to Removed, returning the number of
// cells removed. The counter must have been computed from the current
// grid state; all removals in a round are decided from that snapshot.
func (g *Grid) RemoveBelowThreshold(counter *Counter, threshold int) int {
	removed := 0
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if rules.ShouldRemove(g.cells[y][x] == Occupied, counter.counts[y][x], threshold) {
				g.cells[y][x] = Removed
				removed++
			}
		}
	}
	return removed
}

// counterFor returns a counter sized for the grid, pooled if available
func counterFor(g *Grid, pool *CounterPool) *Counter {
	if pool != nil {
		return pool.Get(g.width, g.height)
	}
	return NewCounter(g.width, g.height)
}
