package extractor

import (
	"regexp"

	"github.com/aleister1102/doccompare/internal/models"
)

// Entity patterns are heuristic by intent. The phone pattern in particular is
// permissive and tolerates false positives; this layer scores similarity, it
// does not validate data.
var entityPatterns = map[models.EntityKind]*regexp.Regexp{
	models.EntityDate:   regexp.MustCompile(`(?i)\b\d{1,2}[/\-.]\d{1,2}[/\-.]\d{2,4}\b|\b(Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)[a-z]* \d{1,2},? \d{4}\b`),
	models.EntityEmail:  regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`),
	models.EntityAmount: regexp.MustCompile(`\$\d{1,3}(,\d{3})*(\.\d{2})?|\b\d{1,3}(,\d{3})*(\.\d{2})?\s?(USD|EUR|GBP)\b`),
	models.EntityPhone:  regexp.MustCompile(`\b\+?\d{1,4}?[-.\s]?\(?\d{1,3}?\)?[-.\s]?\d{1,4}[-.\s]?\d{1,4}[-.\s]?\d{1,9}\b`),
}
