package differ

import (
	"github.com/sergi/go-diff/diffmatchpatch"
)

// InlineDiffer produces character-level diffs for inline highlighting of
// changed line pairs in the presentation layer. Its output never feeds the
// scoring pipeline.
type InlineDiffer struct {
	dmp *diffmatchpatch.DiffMatchPatch
}

// NewInlineDiffer creates a new inline differ
func NewInlineDiffer() *InlineDiffer {
	return &InlineDiffer{
		dmp: diffmatchpatch.New(),
	}
}

// Highlight diffs two lines and cleans the result up for human readability.
func (id *InlineDiffer) Highlight(lineA, lineB string) []diffmatchpatch.Diff {
	diffs := id.dmp.DiffMain(lineA, lineB, false)
	return id.dmp.DiffCleanupSemantic(diffs)
}

// HighlightText renders the diff with +...+ and -...- markers around
// inserted and deleted segments.
func (id *InlineDiffer) HighlightText(lineA, lineB string) string {
	var out []byte
	for _, diff := range id.Highlight(lineA, lineB) {
		switch diff.Type {
		case diffmatchpatch.DiffInsert:
			out = append(out, '+')
			out = append(out, diff.Text...)
			out = append(out, '+')
		case diffmatchpatch.DiffDelete:
			out = append(out, '-')
			out = append(out, diff.Text...)
			out = append(out, '-')
		default:
			out = append(out, diff.Text...)
		}
	}
	return string(out)
}
