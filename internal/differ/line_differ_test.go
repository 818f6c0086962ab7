package differ

import (
	"fmt"
	"strings"
	"testing"

	"github.com/aleister1102/doccompare/internal/models"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDiffer() *LineDiffer {
	return NewLineDiffer(DefaultDiffConfig(), zerolog.Nop())
}

func TestLineDiffer_IdenticalDocuments(t *testing.T) {
	differ := newTestDiffer()

	result := differ.Diff("A\nB\nC", "A\nB\nC")

	assert.Equal(t, 100, result.Stats.MatchPercent)
	assert.Equal(t, 0, result.Stats.Added)
	assert.Equal(t, 0, result.Stats.Removed)
	assert.Equal(t, 3, result.Stats.Matching)
	assert.False(t, result.Approx)
	for _, op := range result.Ops {
		assert.Equal(t, models.LineSame, op.Type)
	}
}

func TestLineDiffer_SingleLineChanged(t *testing.T) {
	differ := newTestDiffer()

	result := differ.Diff("A\nB\nC", "A\nX\nC")

	assert.Equal(t, 67, result.Stats.MatchPercent)
	assert.Equal(t, 1, result.Stats.Added)
	assert.Equal(t, 1, result.Stats.Removed)
	assert.Equal(t, 2, result.Stats.Matching)

	var added, removed []string
	for _, op := range result.Ops {
		switch op.Type {
		case models.LineAdded:
			added = append(added, op.Content)
		case models.LineRemoved:
			removed = append(removed, op.Content)
		}
	}
	assert.Equal(t, []string{"X"}, added)
	assert.Equal(t, []string{"B"}, removed)
}

func TestLineDiffer_BothEmpty(t *testing.T) {
	differ := newTestDiffer()

	result := differ.Diff("", "")

	assert.Equal(t, 100, result.Stats.MatchPercent)
	assert.Equal(t, 0, result.Stats.Added)
	assert.Equal(t, 0, result.Stats.Removed)
}

func TestLineDiffer_MirrorImage(t *testing.T) {
	textA := "one\ntwo\nthree\nfour"
	textB := "one\nTWO\nthree\nfive"
	differ := newTestDiffer()

	forward := differ.Diff(textA, textB)
	backward := differ.Diff(textB, textA)

	assert.Equal(t, forward.Stats.MatchPercent, backward.Stats.MatchPercent)
	assert.Equal(t, forward.Stats.Matching, backward.Stats.Matching)
	assert.Equal(t, forward.Stats.Added, backward.Stats.Removed)
	assert.Equal(t, forward.Stats.Removed, backward.Stats.Added)
}

func TestLineDiffer_OpsReconstructBothDocuments(t *testing.T) {
	textA := "alpha\nbeta\ngamma"
	textB := "alpha\ndelta\ngamma\nepsilon"
	differ := newTestDiffer()

	result := differ.Diff(textA, textB)

	var rebuiltA, rebuiltB []string
	for _, op := range result.Ops {
		switch op.Type {
		case models.LineSame:
			rebuiltA = append(rebuiltA, op.Content)
			rebuiltB = append(rebuiltB, op.Content)
		case models.LineRemoved:
			rebuiltA = append(rebuiltA, op.Content)
		case models.LineAdded:
			rebuiltB = append(rebuiltB, op.Content)
		}
	}
	assert.Equal(t, textA, strings.Join(rebuiltA, "\n"))
	assert.Equal(t, textB, strings.Join(rebuiltB, "\n"))
}

func TestLineDiffer_NormalizedEquality(t *testing.T) {
	differ := newTestDiffer()

	result := differ.Diff("  hello   world  ", "hello world")

	assert.Equal(t, 100, result.Stats.MatchPercent)
	require.Len(t, result.Ops, 1)
	assert.Equal(t, models.LineSame, result.Ops[0].Type)
	// Ops carry the document A spelling, not the normalized form.
	assert.Equal(t, "  hello   world  ", result.Ops[0].Content)
}

func TestLineDiffer_CRLFAndLFAgree(t *testing.T) {
	differ := newTestDiffer()

	result := differ.Diff("A\r\nB\r\nC", "A\nB\nC")

	assert.Equal(t, 100, result.Stats.MatchPercent)
}

func TestLineDiffer_ApproximateFallback(t *testing.T) {
	cfg := DiffConfig{MaxLCSCells: 4}
	differ := NewLineDiffer(cfg, zerolog.Nop())

	result := differ.Diff("A\nB\nC", "A\nX\nC")

	assert.True(t, result.Approx)
	assert.Nil(t, result.Ops)
	// Distinct-line intersection is {A, C}.
	assert.Equal(t, 2, result.Stats.Matching)
	assert.Equal(t, 1, result.Stats.Added)
	assert.Equal(t, 1, result.Stats.Removed)
	assert.Equal(t, 67, result.Stats.MatchPercent)
}

func TestLineDiffer_DiffExactIgnoresCeiling(t *testing.T) {
	cfg := DiffConfig{MaxLCSCells: 1}
	differ := NewLineDiffer(cfg, zerolog.Nop())

	result := differ.DiffExact("A\nB\nC", "A\nX\nC")

	assert.False(t, result.Approx)
	require.NotNil(t, result.Ops)
	assert.Equal(t, 67, result.Stats.MatchPercent)
}

func TestLineDiffer_SelfDiffProperty(t *testing.T) {
	differ := newTestDiffer()
	texts := []string{
		"",
		"single",
		"a\nb\nc\nd\ne",
		"repeated\nrepeated\nrepeated",
		"tabs\tand  spaces\nmore",
	}

	for i, text := range texts {
		t.Run(fmt.Sprintf("case_%d", i), func(t *testing.T) {
			result := differ.Diff(text, text)
			assert.Equal(t, 100, result.Stats.MatchPercent)
			for _, op := range result.Ops {
				assert.Equal(t, models.LineSame, op.Type)
			}
		})
	}
}
