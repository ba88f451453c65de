package main

import (
	"fmt"
	"os"
	"time"

	"github.com/sheikhrachel/go-stockgrid/engine"
	"github.com/sheikhrachel/go-stockgrid/utils"
)

func main() {
	// Load configuration - fallback to defaults if file doesn't exist
	config, err := utils.LoadConfig("config.json")
	if err != nil {
		fmt.Println("Using default configuration (config.json not found)")
		config = utils.DefaultConfig()
	}

	// An input path argument overrides the configured one
	if len(os.Args) > 1 {
		config.InputPath = os.Args[1]
	}

	grid, err := loadGrid(config.InputPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %+v\n", err)
		os.Exit(1)
	}

	displayRunInfo(config, grid)

	var (
		stats         = utils.NewStats()
		lastRoundTime = time.Now()
		start         = time.Now()
	)

	result, err := engine.Stabilize(grid, engine.Options{
		Threshold:     config.Threshold,
		UseParallel:   config.UseParallel,
		UseMemoryPool: config.UseMemoryPool,
		MaxRounds:     config.MaxRounds,
		OnRound: func(round, removed int) {
			now := time.Now()
			stats.Update(round, removed, now.Sub(lastRoundTime))
			lastRoundTime = now
			if config.ShowRounds {
				displayRoundStatus(round, removed, stats)
			}
		},
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %+v\n", err)
		os.Exit(1)
	}

	displayRunSummary(result, stats, time.Since(start))
	displayFinalGrid(config, grid)
}
