package differ

import (
	"math"
	"strings"
)

// JaccardScorer computes whole-document bag-of-words similarity. The score is
// order- and duplication-insensitive, complementing the order-sensitive line
// diff.
type JaccardScorer struct{}

// NewJaccardScorer creates a new Jaccard scorer
func NewJaccardScorer() *JaccardScorer {
	return &JaccardScorer{}
}

// Score returns round(100 * |intersection| / |union|) over the distinct
// lower-cased tokens of each text. Two documents with no tokens at all are
// trivially identical and score 100.
func (js *JaccardScorer) Score(textA, textB string) int {
	setA := tokenSet(textA)
	setB := tokenSet(textB)

	if len(setA) == 0 && len(setB) == 0 {
		return 100
	}

	intersection := 0
	for token := range setA {
		if _, ok := setB[token]; ok {
			intersection++
		}
	}

	union := len(setA) + len(setB) - intersection
	if union == 0 {
		union = 1
	}

	return int(math.Round(float64(intersection) / float64(union) * 100))
}

func tokenSet(text string) map[string]struct{} {
	fields := strings.Fields(strings.ToLower(text))
	set := make(map[string]struct{}, len(fields))
	for _, field := range fields {
		set[field] = struct{}{}
	}
	return set
}
