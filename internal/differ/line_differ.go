package differ

import (
	"math"
	"strings"

	"github.com/aleister1102/doccompare/internal/models"
	"github.com/rs/zerolog"
)

// LineDiffer computes line-level diffs between two texts using an LCS table
// over a normalized equality predicate. Inputs whose n*m cell product exceeds
// the configured ceiling degrade to an approximate estimate that carries
// stats but no per-line op sequence.
type LineDiffer struct {
	config DiffConfig
	logger zerolog.Logger
}

// NewLineDiffer creates a new line differ
func NewLineDiffer(config DiffConfig, logger zerolog.Logger) *LineDiffer {
	return &LineDiffer{
		config: config,
		logger: logger.With().Str("component", "LineDiffer").Logger(),
	}
}

// SplitLines splits text into lines on either CRLF or LF.
func SplitLines(text string) []string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

// NormalizeLine trims leading/trailing whitespace and collapses internal
// whitespace runs to single spaces.
func NormalizeLine(line string) string {
	return strings.Join(strings.Fields(line), " ")
}

// Diff compares two texts line by line. Large inputs take the approximate
// path; the result is marked Approx and omits the op sequence.
func (ld *LineDiffer) Diff(textA, textB string) models.TextDiffResult {
	linesA := SplitLines(textA)
	linesB := SplitLines(textB)

	n := len(linesA)
	m := len(linesB)

	if ld.config.MaxLCSCells > 0 && n*m > ld.config.MaxLCSCells {
		ld.logger.Debug().
			Int("lines_a", n).
			Int("lines_b", m).
			Int("max_cells", ld.config.MaxLCSCells).
			Msg("Cell product exceeds ceiling, using approximate diff")
		return approximateDiff(linesA, linesB)
	}

	return exactDiff(linesA, linesB)
}

// DiffExact compares two texts with the exact LCS algorithm regardless of
// the size ceiling. The deferred full-diff service uses this path.
func (ld *LineDiffer) DiffExact(textA, textB string) models.TextDiffResult {
	return exactDiff(SplitLines(textA), SplitLines(textB))
}

// exactDiff builds the LCS table bottom-up and backtracks it into a forward
// ordered op sequence. Ties on the backtrack favor "added".
func exactDiff(linesA, linesB []string) models.TextDiffResult {
	n := len(linesA)
	m := len(linesB)

	normA := make([]string, n)
	for i, line := range linesA {
		normA[i] = NormalizeLine(line)
	}
	normB := make([]string, m)
	for j, line := range linesB {
		normB[j] = NormalizeLine(line)
	}

	table := make([][]int, n+1)
	for i := range table {
		table[i] = make([]int, m+1)
	}
	for i := 1; i <= n; i++ {
		for j := 1; j <= m; j++ {
			if normA[i-1] == normB[j-1] {
				table[i][j] = table[i-1][j-1] + 1
			} else {
				table[i][j] = max(table[i-1][j], table[i][j-1])
			}
		}
	}

	ops := make([]models.LineDiffOp, 0, n+m)
	matching := 0
	added := 0
	removed := 0

	i, j := n, m
	for i > 0 || j > 0 {
		switch {
		case i > 0 && j > 0 && normA[i-1] == normB[j-1]:
			ops = append(ops, models.LineDiffOp{Type: models.LineSame, Content: linesA[i-1]})
			matching++
			i--
			j--
		case j > 0 && (i == 0 || table[i][j-1] >= table[i-1][j]):
			ops = append(ops, models.LineDiffOp{Type: models.LineAdded, Content: linesB[j-1]})
			added++
			j--
		default:
			ops = append(ops, models.LineDiffOp{Type: models.LineRemoved, Content: linesA[i-1]})
			removed++
			i--
		}
	}

	// Backtracking fills back-to-front; reverse into document order.
	for lo, hi := 0, len(ops)-1; lo < hi; lo, hi = lo+1, hi-1 {
		ops[lo], ops[hi] = ops[hi], ops[lo]
	}

	return models.TextDiffResult{
		Ops: ops,
		Stats: models.DiffStats{
			MatchPercent: percentOf(matching, max(n, m)),
			Added:        added,
			Removed:      removed,
			Matching:     matching,
		},
	}
}

// percentOf rounds 100*part/total to the nearest integer, with 100 when
// total is zero (empty versus empty is a perfect match).
func percentOf(part, total int) int {
	if total == 0 {
		return 100
	}
	return int(math.Round(float64(part) / float64(total) * 100))
}
