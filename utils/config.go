package utils

import (
	"encoding/json"
	"os"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-stockgrid/rules"
)

// Config holds the configuration for a stabilization run
type Config struct {
	InputPath     string `json:"input_path"`
	Threshold     int    `json:"threshold"`
	UseParallel   bool   `json:"use_parallel"`
	UseMemoryPool bool   `json:"use_memory_pool"`
	MaxRounds     int    `json:"max_rounds"`
	ShowRounds    bool   `json:"show_rounds"`
	RenderFinal   bool   `json:"render_final"`
	Display       bool   `json:"display"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		InputPath:     "input.txt",
		Threshold:     rules.DefaultThreshold,
		UseParallel:   true,
		UseMemoryPool: true,
		MaxRounds:     0, // Run to fixpoint
		ShowRounds:    false,
		RenderFinal:   false,
		Display:       false,
	}
}

// LoadConfig loads configuration from JSON file
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	return config, nil
}
