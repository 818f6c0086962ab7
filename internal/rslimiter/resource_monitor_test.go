package rslimiter

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestResourceMonitor_Snapshot(t *testing.T) {
	monitor := NewResourceMonitor(0.9, zerolog.Nop())

	usage := monitor.Snapshot()

	assert.Greater(t, usage.Goroutines, 0)
	assert.GreaterOrEqual(t, usage.SystemMemUsedPercent, 0.0)
	assert.LessOrEqual(t, usage.SystemMemUsedPercent, 100.0)
}

func TestResourceMonitor_ThresholdDefault(t *testing.T) {
	monitor := NewResourceMonitor(0, zerolog.Nop())

	assert.Equal(t, 0.9, monitor.systemMemThreshold)
}
