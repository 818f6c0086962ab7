package differ

import "github.com/aleister1102/doccompare/internal/models"

// approximateDiff estimates diff stats for inputs too large for the exact
// LCS. Each document is reduced to a set of distinct lines under exact string
// equality (no normalization) and the intersection is probed from the smaller
// set. No per-line op sequence is produced.
func approximateDiff(linesA, linesB []string) models.TextDiffResult {
	setA := lineSet(linesA)
	setB := lineSet(linesB)

	intersection := 0
	if len(setA) <= len(setB) {
		for line := range setA {
			if _, ok := setB[line]; ok {
				intersection++
			}
		}
	} else {
		for line := range setB {
			if _, ok := setA[line]; ok {
				intersection++
			}
		}
	}

	n := len(linesA)
	m := len(linesB)
	maxLen := max(n, m)
	if maxLen == 0 {
		maxLen = 1
	}

	return models.TextDiffResult{
		Approx: true,
		Stats: models.DiffStats{
			MatchPercent: percentOf(intersection, maxLen),
			Added:        max(0, m-intersection),
			Removed:      max(0, n-intersection),
			Matching:     intersection,
		},
	}
}

func lineSet(lines []string) map[string]struct{} {
	set := make(map[string]struct{}, len(lines))
	for _, line := range lines {
		set[line] = struct{}{}
	}
	return set
}
