package models

// ImageSide identifies which document an unmatched image belongs to.
type ImageSide string

const (
	// SideA is the left document of the pair.
	SideA ImageSide = "a"
	// SideB is the right document of the pair.
	SideB ImageSide = "b"
)

// ImageDiff is an image that could not be paired above the match threshold.
type ImageDiff struct {
	Side    ImageSide `json:"side"`
	Index   int       `json:"index"`
	Payload []byte    `json:"payload,omitempty"`
}

// ImageMatchResult holds the outcome of the image similarity layer.
type ImageMatchResult struct {
	MatchPercent int         `json:"match_percent"`
	Diffs        []ImageDiff `json:"diffs"`
}
