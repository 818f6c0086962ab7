package config

// StorageConfig defines configuration for caller-side persistence.
// ParquetExportPath is optional; when empty no export is written.
type StorageConfig struct {
	UsageDBPath       string `json:"usage_db_path,omitempty" yaml:"usage_db_path,omitempty"`
	ParquetExportPath string `json:"parquet_export_path,omitempty" yaml:"parquet_export_path,omitempty"`
}

// NewDefaultStorageConfig creates default storage configuration
func NewDefaultStorageConfig() StorageConfig {
	return StorageConfig{
		UsageDBPath:       DefaultUsageDBPath,
		ParquetExportPath: DefaultParquetExportPath,
	}
}
