package rslimiter

import (
	"runtime"

	"github.com/rs/zerolog"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
)

// ResourceUsage is a point-in-time snapshot of system resource consumption.
type ResourceUsage struct {
	SystemMemUsedPercent float64
	CPUUsedPercent       float64
	AllocatedMB          int64
	Goroutines           int
}

// ResourceMonitor reports system resource usage so expensive diff
// computations can be flagged before they start. It only observes and logs;
// it never blocks or aborts work.
type ResourceMonitor struct {
	systemMemThreshold float64
	logger             zerolog.Logger
}

// NewResourceMonitor creates a new resource monitor. systemMemThreshold is
// the used-memory fraction above which MemoryPressureHigh reports true.
func NewResourceMonitor(systemMemThreshold float64, logger zerolog.Logger) *ResourceMonitor {
	if systemMemThreshold <= 0 {
		systemMemThreshold = 0.9
	}
	return &ResourceMonitor{
		systemMemThreshold: systemMemThreshold,
		logger:             logger.With().Str("component", "ResourceMonitor").Logger(),
	}
}

// Snapshot collects current system and runtime usage. Collection errors leave
// the affected fields at zero rather than failing the caller.
func (rm *ResourceMonitor) Snapshot() ResourceUsage {
	usage := ResourceUsage{
		Goroutines: runtime.NumGoroutine(),
	}

	var memStats runtime.MemStats
	runtime.ReadMemStats(&memStats)
	usage.AllocatedMB = int64(memStats.Alloc / 1024 / 1024)

	if vm, err := mem.VirtualMemory(); err == nil {
		usage.SystemMemUsedPercent = vm.UsedPercent
	} else {
		rm.logger.Warn().Err(err).Msg("Failed to read system memory usage")
	}

	if percents, err := cpu.Percent(0, false); err == nil && len(percents) > 0 {
		usage.CPUUsedPercent = percents[0]
	}

	return usage
}

// MemoryPressureHigh reports whether system memory usage is above the
// configured threshold.
func (rm *ResourceMonitor) MemoryPressureHigh() bool {
	vm, err := mem.VirtualMemory()
	if err != nil {
		rm.logger.Warn().Err(err).Msg("Failed to read system memory usage")
		return false
	}
	return vm.UsedPercent/100 >= rm.systemMemThreshold
}
