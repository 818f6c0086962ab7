package differ

// DiffConfig holds configuration for line diffing
type DiffConfig struct {
	// MaxLCSCells bounds the n*m LCS table size. Above it the differ falls
	// back to the approximate set-intersection estimator.
	MaxLCSCells int
}

// DefaultDiffConfig returns default configuration
func DefaultDiffConfig() DiffConfig {
	return DiffConfig{
		MaxLCSCells: 5_000_000,
	}
}
