package config

const (
	// Compare Defaults
	DefaultMaxLCSCells            = 5_000_000
	DefaultInteractiveBudgetCells = 5_000_000

	// Image Defaults
	DefaultImageMatchThreshold = 0.9
	DefaultPixelTolerance      = 10

	// Worker Defaults
	DefaultWorkerQueueSize = 16

	// Storage Defaults
	DefaultUsageDBPath       = "database/doccompare/usage.db"
	DefaultParquetExportPath = ""

	// Log Defaults
	DefaultLogLevel      = "info"
	DefaultLogFormat     = "console"
	DefaultLogFile       = ""
	DefaultMaxLogSizeMB  = 100
	DefaultMaxLogBackups = 3
)
