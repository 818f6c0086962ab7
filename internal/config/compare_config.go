package config

// CompareConfig defines configuration for the text comparison layers.
// MaxLCSCells bounds the exact LCS table size (n*m); beyond it the line diff
// degrades to the approximate set-intersection estimator.
// InteractiveBudgetCells is the stricter ceiling the deferred full-diff
// service uses to decide between computing inline and offloading to the
// worker.
type CompareConfig struct {
	MaxLCSCells            int `json:"max_lcs_cells,omitempty" yaml:"max_lcs_cells,omitempty" validate:"omitempty,gt=0"`
	InteractiveBudgetCells int `json:"interactive_budget_cells,omitempty" yaml:"interactive_budget_cells,omitempty" validate:"omitempty,gt=0"`
}

// NewDefaultCompareConfig creates default compare configuration
func NewDefaultCompareConfig() CompareConfig {
	return CompareConfig{
		MaxLCSCells:            DefaultMaxLCSCells,
		InteractiveBudgetCells: DefaultInteractiveBudgetCells,
	}
}
