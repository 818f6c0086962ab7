package extractor

import (
	"strings"

	"github.com/aleister1102/doccompare/internal/models"
	"github.com/rs/zerolog"
)

// EntityExtractor collects typed spans (dates, emails, amounts, phone
// numbers) from raw text using the compiled entity patterns.
type EntityExtractor struct {
	logger zerolog.Logger
}

// NewEntityExtractor creates a new entity extractor
func NewEntityExtractor(logger zerolog.Logger) *EntityExtractor {
	return &EntityExtractor{
		logger: logger.With().Str("component", "EntityExtractor").Logger(),
	}
}

// Extract returns all non-overlapping matches per entity kind, trimmed, as an
// ordered multiset. Duplicates are retained as separate occurrences.
func (ee *EntityExtractor) Extract(text string) models.EntityBag {
	bag := make(models.EntityBag, len(models.EntityKinds))

	for _, kind := range models.EntityKinds {
		matches := entityPatterns[kind].FindAllString(text, -1)
		values := make([]string, 0, len(matches))
		for _, match := range matches {
			values = append(values, strings.TrimSpace(match))
		}
		bag[kind] = values
	}

	return bag
}
