package metadata

import (
	"testing"

	"github.com/aleister1102/doccompare/internal/models"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestComparator() *MetadataComparator {
	return NewMetadataComparator(zerolog.Nop())
}

func TestMetadataComparator_IdenticalDocuments(t *testing.T) {
	comparator := newTestComparator()
	doc := &models.Document{Name: "a.txt", Type: "text/plain", Size: 1000, Content: "one two three"}

	result := comparator.Compare(doc, doc)

	assert.Equal(t, 100, result.MatchPercent)
	assert.Empty(t, result.Diffs)
}

func TestMetadataComparator_SizeMismatch(t *testing.T) {
	comparator := newTestComparator()
	docA := &models.Document{Type: "text/plain", Size: 1000, Content: "same words here"}
	docB := &models.Document{Type: "text/plain", Size: 2000, Content: "same words here"}

	result := comparator.Compare(docA, docB)

	assert.Equal(t, 67, result.MatchPercent)
	require.Len(t, result.Diffs, 1)
	assert.Equal(t, "File Size", result.Diffs[0].Key)
}

func TestMetadataComparator_SizeWithinFivePercent(t *testing.T) {
	comparator := newTestComparator()
	docA := &models.Document{Type: "text/plain", Size: 1000, Content: "x"}
	docB := &models.Document{Type: "text/plain", Size: 1040, Content: "x"}

	result := comparator.Compare(docA, docB)

	assert.Equal(t, 100, result.MatchPercent)
}

func TestMetadataComparator_WordCountMismatch(t *testing.T) {
	comparator := newTestComparator()
	docA := &models.Document{Type: "text/plain", Size: 100, Content: "one two three four five"}
	docB := &models.Document{Type: "text/plain", Size: 100, Content: "one two"}

	result := comparator.Compare(docA, docB)

	assert.Equal(t, 67, result.MatchPercent)
	require.Len(t, result.Diffs, 1)
	assert.Equal(t, "Word Count", result.Diffs[0].Key)
	assert.Equal(t, "5", result.Diffs[0].ValueA)
	assert.Equal(t, "2", result.Diffs[0].ValueB)
}

func TestMetadataComparator_TypeMismatchHasNoDiffRow(t *testing.T) {
	comparator := newTestComparator()
	docA := &models.Document{Type: "text/plain", Size: 100, Content: "same"}
	docB := &models.Document{Type: "text/markdown", Size: 100, Content: "same"}

	result := comparator.Compare(docA, docB)

	// The failed type check lowers the score but stays invisible in diffs.
	assert.Equal(t, 67, result.MatchPercent)
	assert.Empty(t, result.Diffs)
}

func TestMetadataComparator_ZeroSizes(t *testing.T) {
	comparator := newTestComparator()
	docA := &models.Document{Type: "text/plain", Size: 0, Content: ""}
	docB := &models.Document{Type: "text/plain", Size: 0, Content: ""}

	result := comparator.Compare(docA, docB)

	assert.Equal(t, 100, result.MatchPercent)
}

func TestFormatBytes(t *testing.T) {
	assert.Equal(t, "0 Bytes", FormatBytes(0))
	assert.Equal(t, "512 Bytes", FormatBytes(512))
	assert.Equal(t, "1 KB", FormatBytes(1024))
	assert.Equal(t, "1.5 KB", FormatBytes(1536))
	assert.Equal(t, "2 MB", FormatBytes(2*1024*1024))
}
