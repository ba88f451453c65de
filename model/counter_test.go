package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// counterFixture is the 3x4 board from the neighbor-counting worked
// example, with its full expected counter.
const counterFixture = "@.@.\n.@..\n@@.@"

var counterFixtureExpected = [][]int{
	{1, 3, 1, 1},
	{4, 4, 4, 2},
	{2, 2, 3, 0},
}

func TestAdjacentCountsSerial(t *testing.T) {
	g, err := Parse(counterFixture)
	require.NoError(t, err)

	counter := g.AdjacentCountsSerial(nil)
	require.Equal(t, g.GetWidth(), counter.GetWidth())
	require.Equal(t, g.GetHeight(), counter.GetHeight())

	for y, row := range counterFixtureExpected {
		for x, want := range row {
			assert.Equal(t, want, counter.Get(x, y), "cell (%d, %d)", x, y)
		}
	}
}

func TestAdjacentCountsParallelMatchesSerial(t *testing.T) {
	for _, dims := range []struct{ w, h int }{
		{1, 1}, {1, 16}, {16, 1}, {3, 3}, {7, 5}, {40, 25},
	} {
		g := NewGrid(dims.w, dims.h)
		g.Randomize(0.5)

		var (
			serial   = g.AdjacentCountsSerial(nil)
			parallel = g.AdjacentCountsParallel(nil)
		)
		for y := 0; y < dims.h; y++ {
			for x := 0; x < dims.w; x++ {
				require.Equal(t, serial.Get(x, y), parallel.Get(x, y),
					"%dx%d grid, cell (%d, %d)", dims.w, dims.h, x, y)
			}
		}
	}
}

func TestAdjacentCountsReadOnly(t *testing.T) {
	g, err := Parse(counterFixture)
	require.NoError(t, err)

	before := g.Hash()
	g.AdjacentCounts(true, nil)
	g.AdjacentCounts(false, nil)
	assert.Equal(t, before, g.Hash())
}

func TestCounterGetOutOfBounds(t *testing.T) {
	c := NewCounter(2, 2)
	assert.Equal(t, 0, c.Get(-1, 0))
	assert.Equal(t, 0, c.Get(0, -1))
	assert.Equal(t, 0, c.Get(2, 0))
	assert.Equal(t, 0, c.Get(0, 2))
}

func TestCounterPoolReuse(t *testing.T) {
	pool := NewCounterPool()

	c := pool.Get(4, 3)
	require.Equal(t, 4, c.GetWidth())
	require.Equal(t, 3, c.GetHeight())
	c.counts[1][2] = 7
	CounterToPool(c, pool)

	// A pooled counter comes back zeroed, at whatever dimensions asked
	c2 := pool.Get(2, 5)
	require.Equal(t, 2, c2.GetWidth())
	require.Equal(t, 5, c2.GetHeight())
	for y := 0; y < 5; y++ {
		for x := 0; x < 2; x++ {
			assert.Equal(t, 0, c2.Get(x, y))
		}
	}

	// Nil pool is a no-op
	CounterToPool(NewCounter(1, 1), nil)
}

func TestAdjacentCountsWithPool(t *testing.T) {
	g, err := Parse(counterFixture)
	require.NoError(t, err)

	pool := NewCounterPool()
	for i := 0; i < 3; i++ {
		counter := g.AdjacentCounts(false, pool)
		for y, row := range counterFixtureExpected {
			for x, want := range row {
				require.Equal(t, want, counter.Get(x, y))
			}
		}
		CounterToPool(counter, pool)
	}
}

func TestRemoveBelowThreshold(t *testing.T) {
	g, err := Parse(counterFixture)
	require.NoError(t, err)

	counter := g.AdjacentCountsSerial(nil)
	removed := g.RemoveBelowThreshold(counter, 4)

	// Occupied cells: (0,0)=1, (2,0)=1, (1,1)=4, (0,2)=2, (1,2)=2,
	// (3,2)=0 -- only (1,1) survives a threshold of 4
	assert.Equal(t, 5, removed)
	assert.Equal(t, "x.x.\n.@..\nxx.x", Render(g))
}

func TestRemoveBelowThresholdLeavesEmptyAndRemovedAlone(t *testing.T) {
	g, err := Parse("x.x\n.x.")
	require.NoError(t, err)

	counter := g.AdjacentCountsSerial(nil)
	removed := g.RemoveBelowThreshold(counter, 8)

	assert.Equal(t, 0, removed)
	assert.Equal(t, "x.x\n.x.", Render(g))
}
