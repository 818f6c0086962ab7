package models

// ComparisonResult is the root output of a single pair comparison.
type ComparisonResult struct {
	MatchPercent int              `json:"match_percent"`
	TextDiff     TextDiffResult   `json:"text_diff"`
	Jaccard      int              `json:"jaccard"`
	Structured   StructuredResult `json:"structured"`
	Images       ImageMatchResult `json:"images"`
	Metadata     MetadataResult   `json:"metadata"`
	Error        string           `json:"error,omitempty"`
}

// PairComparison attaches a result to the identity of the pair it was
// computed for within a batch.
type PairComparison struct {
	IndexA int              `json:"index_a"`
	IndexB int              `json:"index_b"`
	NameA  string           `json:"name_a"`
	NameB  string           `json:"name_b"`
	Result ComparisonResult `json:"result"`
}
