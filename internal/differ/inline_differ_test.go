package differ

import (
	"testing"

	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInlineDiffer_IdenticalLines(t *testing.T) {
	differ := NewInlineDiffer()

	diffs := differ.Highlight("same line", "same line")

	require.Len(t, diffs, 1)
	assert.Equal(t, diffmatchpatch.DiffEqual, diffs[0].Type)
}

func TestInlineDiffer_HighlightText(t *testing.T) {
	differ := NewInlineDiffer()

	out := differ.HighlightText("total: 100 USD", "total: 250 USD")

	assert.Contains(t, out, "total: ")
	assert.Contains(t, out, "-100-")
	assert.Contains(t, out, "+250+")
}
