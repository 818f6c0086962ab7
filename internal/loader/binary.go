package loader

import "strings"

const (
	binarySniffLen        = 1000
	binaryControlRatio    = 0.1
	minExtractedStringLen = 4
)

// IsBinary reports whether data looks like binary content. It samples the
// first kilobyte and counts control characters outside the usual text set;
// above a tenth of the sample the content is treated as binary.
func IsBinary(data []byte) bool {
	if len(data) == 0 {
		return false
	}

	sample := data
	if len(sample) > binarySniffLen {
		sample = sample[:binarySniffLen]
	}

	controlCount := 0
	for _, b := range sample {
		if b < 32 && b != '\t' && b != '\n' && b != '\r' {
			controlCount++
		}
	}

	return float64(controlCount)/float64(len(sample)) > binaryControlRatio
}

// ExtractStrings pulls runs of printable ASCII out of binary data, one run
// per line, skipping anything shorter than four characters.
func ExtractStrings(data []byte) string {
	var lines []string
	var current strings.Builder

	flush := func() {
		if current.Len() >= minExtractedStringLen {
			lines = append(lines, current.String())
		}
		current.Reset()
	}

	for _, b := range data {
		if b >= 32 && b < 127 {
			current.WriteByte(b)
		} else {
			flush()
		}
	}
	flush()

	return strings.Join(lines, "\n")
}
