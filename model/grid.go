package model

import (
	"crypto/md5"
	"fmt"
	"math/rand"
)

// Grid represents a rectangular board of cells. Dimensions are fixed
// at construction; cell states are mutated in place.
type Grid struct {
	width  int
	height int
	cells  [][]CellState
}

// NewGrid creates a new grid with the specified dimensions, all cells Empty
func NewGrid(width, height int) *Grid {
	cells := make([][]CellState, height)
	for i := range cells {
		cells[i] = make([]CellState, width)
	}
	return &Grid{
		width:  width,
		height: height,
		cells:  cells,
	}
}

// GetWidth returns the width of the grid
func (g *Grid) GetWidth() int {
	return g.width
}

// GetHeight returns the height of the grid
func (g *Grid) GetHeight() int {
	return g.height
}

// Set sets a cell's state; out-of-bounds writes are ignored
func (g *Grid) Set(x, y int, state CellState) {
	if x >= 0 && x < g.width && y >= 0 && y < g.height {
		g.cells[y][x] = state
	}
}

// Get returns the state of a cell; out-of-bounds reads are Empty
func (g *Grid) Get(x, y int) CellState {
	if x < 0 || x >= g.width || y < 0 || y >= g.height {
		return Empty
	}
	return g.cells[y][x]
}

// CountNeighbors counts Occupied cells among the up-to-8 neighbors of
// (x, y). Neighbors outside the grid contribute nothing; there is no
// wraparound, a border cell simply has fewer candidates.
func (g *Grid) CountNeighbors(x, y int) int {
	count := 0

	// Calculate bounds once using integer min/max
	minX := max(0, x-1)
	maxX := min(g.width-1, x+1)
	minY := max(0, y-1)
	maxY := min(g.height-1, y+1)

	for ny := minY; ny <= maxY; ny++ {
		for nx := minX; nx <= maxX; nx++ {
			if nx == x && ny == y {
				continue // Skip the cell itself
			}
			if g.cells[ny][nx] == Occupied {
				count++
			}
		}
	}

	return count
}

// Count returns the total number of cells in the given state
func (g *Grid) Count(state CellState) (count int) {
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if g.cells[y][x] == state {
				count++
			}
		}
	}
	return
}

// Hash returns an MD5 fingerprint of the current grid state
func (g *Grid) Hash() string {
	h := md5.New()
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			h.Write([]byte{byte(g.cells[y][x])})
		}
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}

// Randomize fills the grid with Occupied cells at the given density,
// leaving the rest Empty
func (g *Grid) Randomize(density float64) {
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if rand.Float64() < density {
				g.cells[y][x] = Occupied
			} else {
				g.cells[y][x] = Empty
			}
		}
	}
}
