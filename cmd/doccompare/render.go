package main

import (
	"fmt"
	"io"

	"github.com/aleister1102/doccompare/internal/differ"
	"github.com/aleister1102/doccompare/internal/models"
)

// printSummary writes a one-line-per-pair table of aggregate and per-layer
// scores.
func printSummary(w io.Writer, pairs []models.PairComparison) {
	fmt.Fprintf(w, "%-24s %-24s %7s %6s %8s %7s %7s %6s\n",
		"DOCUMENT A", "DOCUMENT B", "MATCH", "TEXT", "JACCARD", "ENTITY", "IMAGES", "META")

	for _, pair := range pairs {
		if pair.Result.Error != "" {
			fmt.Fprintf(w, "%-24s %-24s %6d%%  error: %s\n",
				truncateName(pair.NameA), truncateName(pair.NameB), pair.Result.MatchPercent, pair.Result.Error)
			continue
		}

		textScore := fmt.Sprintf("%d%%", pair.Result.TextDiff.Stats.MatchPercent)
		if pair.Result.TextDiff.Approx {
			textScore = "~" + textScore
		}

		fmt.Fprintf(w, "%-24s %-24s %6d%% %6s %7d%% %6d%% %6d%% %5d%%\n",
			truncateName(pair.NameA),
			truncateName(pair.NameB),
			pair.Result.MatchPercent,
			textScore,
			pair.Result.Jaccard,
			pair.Result.Structured.MatchPercent,
			pair.Result.Images.MatchPercent,
			pair.Result.Metadata.MatchPercent)
	}
}

// printDetails writes the line diff, entity mismatches, unmatched images and
// metadata differences for every pair. Removed lines that were replaced by an
// adjacent added line get a word-level highlight.
func printDetails(w io.Writer, pairs []models.PairComparison) {
	inline := differ.NewInlineDiffer()

	for _, pair := range pairs {
		fmt.Fprintf(w, "\n=== %s vs %s ===\n", pair.NameA, pair.NameB)
		if pair.Result.Error != "" {
			fmt.Fprintf(w, "  comparison failed: %s\n", pair.Result.Error)
			continue
		}

		printLineDiff(w, inline, pair.Result.TextDiff)
		printMismatches(w, pair.Result.Structured)
		printImageDiffs(w, pair.Result.Images)
		printMetadataDiffs(w, pair.Result.Metadata)
	}
}

func printLineDiff(w io.Writer, inline *differ.InlineDiffer, textDiff models.TextDiffResult) {
	if textDiff.Approx {
		fmt.Fprintf(w, "  text diff is approximate (line-set estimate, +%d/-%d)\n",
			textDiff.Stats.Added, textDiff.Stats.Removed)
		return
	}

	ops := textDiff.Ops
	for i := 0; i < len(ops); i++ {
		op := ops[i]
		switch op.Type {
		case models.LineRemoved:
			// A removed line directly followed by an added one is treated as
			// an edit and rendered with intra-line highlights.
			if i+1 < len(ops) && ops[i+1].Type == models.LineAdded {
				fmt.Fprintf(w, "  ~ %s\n", inline.HighlightText(op.Content, ops[i+1].Content))
				i++
				continue
			}
			fmt.Fprintf(w, "  - %s\n", op.Content)
		case models.LineAdded:
			fmt.Fprintf(w, "  + %s\n", op.Content)
		default:
			fmt.Fprintf(w, "    %s\n", op.Content)
		}
	}
}

func printMismatches(w io.Writer, structured models.StructuredResult) {
	for _, mismatch := range structured.Mismatches {
		fmt.Fprintf(w, "  entity %s %q: %d in A, %d in B\n",
			mismatch.Kind, mismatch.Value, mismatch.CountInA, mismatch.CountInB)
	}
}

func printImageDiffs(w io.Writer, images models.ImageMatchResult) {
	for _, diff := range images.Diffs {
		fmt.Fprintf(w, "  unmatched image #%d in document %s\n", diff.Index, diff.Side)
	}
}

func printMetadataDiffs(w io.Writer, metadata models.MetadataResult) {
	for _, diff := range metadata.Diffs {
		fmt.Fprintf(w, "  metadata %s: %s vs %s\n", diff.Key, diff.ValueA, diff.ValueB)
	}
}

func truncateName(name string) string {
	if len(name) <= 24 {
		return name
	}
	return name[:21] + "..."
}
