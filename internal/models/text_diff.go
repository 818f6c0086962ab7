package models

// LineDiffType defines the role of a line in a line-level diff.
type LineDiffType string

const (
	// LineSame indicates a line present in both documents.
	LineSame LineDiffType = "same"
	// LineAdded indicates a line present only in document B.
	LineAdded LineDiffType = "added"
	// LineRemoved indicates a line present only in document A.
	LineRemoved LineDiffType = "removed"
)

// LineDiffOp is a single line-level diff operation. Concatenating Same and
// Removed contents in order reproduces document A; Same and Added reproduce
// document B.
type LineDiffOp struct {
	Type    LineDiffType `json:"type"`
	Content string       `json:"content"`
}

// DiffStats summarizes a line-level diff.
type DiffStats struct {
	MatchPercent int `json:"match_percent"`
	Added        int `json:"added"`
	Removed      int `json:"removed"`
	Matching     int `json:"matching"`
}

// TextDiffResult holds the outcome of the line diff layer. Ops is nil when
// the approximate path was taken; callers that still need a precise sequence
// go through the deferred full-diff service.
type TextDiffResult struct {
	Ops    []LineDiffOp `json:"ops,omitempty"`
	Stats  DiffStats    `json:"stats"`
	Approx bool         `json:"approx,omitempty"`
}
