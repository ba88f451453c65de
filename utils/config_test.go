package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()
	assert.Equal(t, "input.txt", config.InputPath)
	assert.Equal(t, 4, config.Threshold)
	assert.True(t, config.UseParallel)
	assert.True(t, config.UseMemoryPool)
	assert.Equal(t, 0, config.MaxRounds)
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"input_path": "grid.txt",
		"threshold": 3,
		"use_parallel": false,
		"max_rounds": 10,
		"show_rounds": true
	}`), 0o644))

	config, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "grid.txt", config.InputPath)
	assert.Equal(t, 3, config.Threshold)
	assert.False(t, config.UseParallel)
	assert.Equal(t, 10, config.MaxRounds)
	assert.True(t, config.ShowRounds)
	// Unset fields keep their defaults
	assert.True(t, config.UseMemoryPool)
}

func TestLoadConfigMissingFile(t *testing.T) {
	config, err := LoadConfig(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
	// Defaults come back alongside the error so callers can fall through
	assert.Equal(t, DefaultConfig(), config)
}

func TestLoadConfigInvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := LoadConfig(path)
	assert.Error(t, err)
}
