package comparer

import (
	"github.com/aleister1102/doccompare/internal/errorwrapper"
	"github.com/aleister1102/doccompare/internal/models"
)

// CompareAll runs every unordered pair of documents through the comparer, in
// index order. A pair that fails produces a zero-percent placeholder carrying
// the error message; the batch keeps going.
func (c *Comparer) CompareAll(documents []models.Document) []models.PairComparison {
	pairCount := len(documents) * (len(documents) - 1) / 2
	pairs := make([]models.PairComparison, 0, pairCount)

	for i := 0; i < len(documents); i++ {
		for j := i + 1; j < len(documents); j++ {
			result, err := c.Compare(&documents[i], &documents[j])
			if err != nil {
				pairErr := errorwrapper.NewComparisonError(i, j, err)
				c.logger.Error().
					Err(pairErr).
					Str("document_a", documents[i].Name).
					Str("document_b", documents[j].Name).
					Msg("Pair comparison failed")
				result = ErrorResult(pairErr)
			}
			pairs = append(pairs, models.PairComparison{
				IndexA: i,
				IndexB: j,
				NameA:  documents[i].Name,
				NameB:  documents[j].Name,
				Result: result,
			})
		}
	}

	return pairs
}

// ErrorCount returns how many pairs in a batch carry an error placeholder.
func ErrorCount(pairs []models.PairComparison) int {
	count := 0
	for _, pair := range pairs {
		if pair.Result.Error != "" {
			count++
		}
	}
	return count
}
