package metadata

import (
	"math"
	"strconv"
	"strings"

	"github.com/aleister1102/doccompare/internal/models"
	"github.com/rs/zerolog"
)

// sizeRatioThreshold is the relative difference under which two sizes or
// word counts still count as matching.
const sizeRatioThreshold = 0.05

// MetadataComparator performs coarse structural checks on a document pair:
// file size, word count, and declared type. Each check contributes one unit
// to the denominator. A failed type check lowers the score but emits no diff
// row.
type MetadataComparator struct {
	logger zerolog.Logger
}

// NewMetadataComparator creates a new metadata comparator
func NewMetadataComparator(logger zerolog.Logger) *MetadataComparator {
	return &MetadataComparator{
		logger: logger.With().Str("component", "MetadataComparator").Logger(),
	}
}

// Compare runs the three checks and returns the rounded percentage of
// checks that passed together with diff rows for the visible failures.
func (mc *MetadataComparator) Compare(docA, docB *models.Document) models.MetadataResult {
	diffs := make([]models.MetadataDiff, 0)
	matched := 0
	totalChecks := 0

	totalChecks++
	if relativeDiff(float64(docA.Size), float64(docB.Size)) < sizeRatioThreshold {
		matched++
	} else {
		diffs = append(diffs, models.MetadataDiff{
			Key:    "File Size",
			ValueA: FormatBytes(docA.Size),
			ValueB: FormatBytes(docB.Size),
		})
	}

	totalChecks++
	wcA := wordCount(docA.Content)
	wcB := wordCount(docB.Content)
	if relativeDiff(float64(wcA), float64(wcB)) < sizeRatioThreshold {
		matched++
	} else {
		diffs = append(diffs, models.MetadataDiff{
			Key:    "Word Count",
			ValueA: strconv.Itoa(wcA),
			ValueB: strconv.Itoa(wcB),
		})
	}

	totalChecks++
	if docA.Type == docB.Type {
		matched++
	}
	// A type mismatch is counted against the score but intentionally emits
	// no diff row.

	return models.MetadataResult{
		MatchPercent: int(math.Round(float64(matched) / float64(totalChecks) * 100)),
		Diffs:        diffs,
	}
}

// relativeDiff is |a-b| / max(a, b or 1), the denominator guarded so a pair
// of zeroes compares as equal rather than dividing by zero.
func relativeDiff(a, b float64) float64 {
	denominator := b
	if denominator == 0 {
		denominator = 1
	}
	if a > denominator {
		denominator = a
	}
	return math.Abs(a-b) / denominator
}

func wordCount(content string) int {
	return len(strings.Fields(content))
}

// FormatBytes renders a byte count in Bytes/KB/MB with up to two decimals,
// trailing zeroes trimmed.
func FormatBytes(bytes int64) string {
	if bytes <= 0 {
		return "0 Bytes"
	}

	const unit = 1024
	sizes := []string{"Bytes", "KB", "MB"}

	exponent := int(math.Floor(math.Log(float64(bytes)) / math.Log(unit)))
	if exponent >= len(sizes) {
		exponent = len(sizes) - 1
	}

	value := float64(bytes) / math.Pow(unit, float64(exponent))
	rounded := math.Round(value*100) / 100
	return strconv.FormatFloat(rounded, 'f', -1, 64) + " " + sizes[exponent]
}
