package main

import (
	"fmt"
	"os"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-stockgrid/engine"
	"github.com/sheikhrachel/go-stockgrid/model"
	"github.com/sheikhrachel/go-stockgrid/utils"
)

// loadGrid reads and parses the initial grid from a text file
func loadGrid(path string) (*model.Grid, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "[loadGrid] failed to read file: %+v", path)
	}

	grid, err := model.Parse(string(data))
	if err != nil {
		return nil, errors.Wrapf(err, "[loadGrid] failed to parse grid from file: %+v", path)
	}

	return grid, nil
}

// displayRunInfo shows the initial run information
func displayRunInfo(config utils.Config, grid *model.Grid) {
	fmt.Printf("Grid: %dx%d | Occupied: %d | Threshold: %d\n",
		grid.GetWidth(), grid.GetHeight(), grid.Count(model.Occupied), config.Threshold)
	fmt.Printf("Features: Memory Pool: %v, Parallel: %v\n",
		config.UseMemoryPool, config.UseParallel)
}

// displayRoundStatus shows per-round progress
func displayRoundStatus(round, removed int, stats *utils.Stats) {
	fmt.Printf("Round: %d | Removed: %d | Avg removed: %.1f | %.1f rounds/sec\n",
		round, removed, stats.AverageRemoved, stats.RoundsPerSecond)
}

// displayRunSummary shows the final run summary
func displayRunSummary(result engine.Result, stats *utils.Stats, elapsed time.Duration) {
	fmt.Printf("Stabilized after %d rounds, total cells removed: %d\n",
		result.Rounds, result.TotalRemoved)
	if !result.Stable {
		fmt.Println("Warning: stopped at max_rounds before reaching a fixpoint")
	}
	if result.Rounds > 0 {
		fmt.Printf("Performance: %.1f rounds/sec | Avg removed: %.1f\n",
			stats.RoundsPerSecond, stats.AverageRemoved)
	}
	fmt.Printf("Execution time: %.2f ms\n", float64(elapsed.Nanoseconds())/1e6)
}

// displayFinalGrid optionally renders the final grid state
func displayFinalGrid(config utils.Config, grid *model.Grid) {
	if config.Display {
		renderer := &model.TerminalRenderer{}
		renderer.Clear()
		renderer.Display(grid)
	}
	if config.RenderFinal {
		fmt.Println(model.Render(grid))
	}
}
