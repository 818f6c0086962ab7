package config

// WorkerConfig defines configuration for the deferred full-diff worker
type WorkerConfig struct {
	QueueSize int `json:"queue_size,omitempty" yaml:"queue_size,omitempty" validate:"omitempty,gt=0"`
}

// NewDefaultWorkerConfig creates default worker configuration
func NewDefaultWorkerConfig() WorkerConfig {
	return WorkerConfig{
		QueueSize: DefaultWorkerQueueSize,
	}
}
