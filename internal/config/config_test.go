package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaultGlobalConfig(t *testing.T) {
	cfg := NewDefaultGlobalConfig()

	assert.Equal(t, DefaultMaxLCSCells, cfg.CompareConfig.MaxLCSCells)
	assert.Equal(t, DefaultInteractiveBudgetCells, cfg.CompareConfig.InteractiveBudgetCells)
	assert.Equal(t, DefaultImageMatchThreshold, cfg.ImageConfig.MatchThreshold)
	assert.Equal(t, DefaultPixelTolerance, cfg.ImageConfig.PixelTolerance)
	assert.Equal(t, DefaultWorkerQueueSize, cfg.WorkerConfig.QueueSize)
	assert.Equal(t, DefaultLogLevel, cfg.LogConfig.LogLevel)
}

func TestValidateConfig_Defaults(t *testing.T) {
	cfg := NewDefaultGlobalConfig()
	assert.NoError(t, ValidateConfig(cfg))
}

func TestValidateConfig_InvalidLogLevel(t *testing.T) {
	cfg := NewDefaultGlobalConfig()
	cfg.LogConfig.LogLevel = "loud"

	err := ValidateConfig(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loglevel")
}

func TestValidateConfig_InvalidImageThreshold(t *testing.T) {
	cfg := NewDefaultGlobalConfig()
	cfg.ImageConfig.MatchThreshold = 1.5

	assert.Error(t, ValidateConfig(cfg))
}

func TestLoadGlobalConfig_YAMLOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := []byte("compare_config:\n  max_lcs_cells: 1000\nlog_config:\n  log_level: debug\n")
	require.NoError(t, os.WriteFile(path, content, 0644))

	cfg, err := LoadGlobalConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 1000, cfg.CompareConfig.MaxLCSCells)
	assert.Equal(t, "debug", cfg.LogConfig.LogLevel)
	// Untouched sections keep their defaults.
	assert.Equal(t, DefaultImageMatchThreshold, cfg.ImageConfig.MatchThreshold)
}

func TestLoadGlobalConfig_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadGlobalConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultMaxLCSCells, cfg.CompareConfig.MaxLCSCells)
}
