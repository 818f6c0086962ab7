package extractor

import (
	"math"
	"sort"

	"github.com/aleister1102/doccompare/internal/models"
)

// MultisetComparator performs count-aware comparison of two entity bags. A
// value appearing k times in one document and j times in the other
// contributes min(k,j) matches against max(k,j) total items.
type MultisetComparator struct{}

// NewMultisetComparator creates a new multiset comparator
func NewMultisetComparator() *MultisetComparator {
	return &MultisetComparator{}
}

// Compare accumulates matches and totals across all entity kinds combined and
// emits a Mismatch for every (kind, value) whose counts differ. Kinds are
// visited in their fixed order and values in sorted order so the mismatch
// list is deterministic.
func (mc *MultisetComparator) Compare(bagA, bagB models.EntityBag) models.StructuredResult {
	totalItems := 0
	matches := 0
	mismatches := make([]models.Mismatch, 0)

	for _, kind := range models.EntityKinds {
		countsA := countMap(bagA[kind])
		countsB := countMap(bagB[kind])

		for _, value := range unionKeys(countsA, countsB) {
			c1 := countsA[value]
			c2 := countsB[value]

			totalItems += max(c1, c2)
			matches += min(c1, c2)

			if c1 != c2 {
				mismatches = append(mismatches, models.Mismatch{
					Kind:     kind,
					Value:    value,
					CountInA: c1,
					CountInB: c2,
				})
			}
		}
	}

	percent := 100
	if totalItems > 0 {
		percent = int(math.Round(float64(matches) / float64(totalItems) * 100))
	}

	return models.StructuredResult{
		MatchPercent: percent,
		Mismatches:   mismatches,
	}
}

func countMap(values []string) map[string]int {
	counts := make(map[string]int, len(values))
	for _, value := range values {
		counts[value]++
	}
	return counts
}

func unionKeys(a, b map[string]int) []string {
	seen := make(map[string]struct{}, len(a)+len(b))
	keys := make([]string, 0, len(a)+len(b))
	for key := range a {
		if _, ok := seen[key]; !ok {
			seen[key] = struct{}{}
			keys = append(keys, key)
		}
	}
	for key := range b {
		if _, ok := seen[key]; !ok {
			seen[key] = struct{}{}
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)
	return keys
}
