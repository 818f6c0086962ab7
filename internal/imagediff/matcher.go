package imagediff

import (
	"math"

	"github.com/aleister1102/doccompare/internal/models"
	"github.com/rs/zerolog"
)

// MatcherConfig holds configuration for image matching
type MatcherConfig struct {
	MatchThreshold float64
	PixelTolerance int
}

// DefaultMatcherConfig returns default configuration
func DefaultMatcherConfig() MatcherConfig {
	return MatcherConfig{
		MatchThreshold: 0.9,
		PixelTolerance: 10,
	}
}

// ImageMatcher pairs images across two documents with a greedy best-match
// strategy. For each left image, in order, the highest-similarity unconsumed
// right image above the threshold is taken; consumed right images are never
// reconsidered, so the outcome depends on left-side order.
type ImageMatcher struct {
	comparer  *PixelComparer
	threshold float64
	logger    zerolog.Logger
}

// NewImageMatcher creates a new image matcher
func NewImageMatcher(config MatcherConfig, logger zerolog.Logger) *ImageMatcher {
	return &ImageMatcher{
		comparer:  NewPixelComparer(config.PixelTolerance),
		threshold: config.MatchThreshold,
		logger:    logger.With().Str("component", "ImageMatcher").Logger(),
	}
}

// Match compares two ordered image sequences. Unpairable images end up as
// diffs on their respective sides; two empty sequences are a perfect match.
func (im *ImageMatcher) Match(imagesA, imagesB [][]byte) models.ImageMatchResult {
	if len(imagesA) == 0 && len(imagesB) == 0 {
		return models.ImageMatchResult{MatchPercent: 100, Diffs: []models.ImageDiff{}}
	}

	matches := 0
	diffs := make([]models.ImageDiff, 0)
	consumed := make(map[int]struct{}, len(imagesB))

	for i, imageA := range imagesA {
		bestIndex := -1
		bestScore := 0.0

		for j, imageB := range imagesB {
			if _, taken := consumed[j]; taken {
				continue
			}
			similarity := im.comparer.Similarity(imageA, imageB)
			if similarity > bestScore {
				bestScore = similarity
				bestIndex = j
			}
		}

		if bestIndex >= 0 && bestScore > im.threshold {
			matches++
			consumed[bestIndex] = struct{}{}
		} else {
			diffs = append(diffs, models.ImageDiff{Side: models.SideA, Index: i, Payload: imageA})
		}
	}

	for j, imageB := range imagesB {
		if _, taken := consumed[j]; !taken {
			diffs = append(diffs, models.ImageDiff{Side: models.SideB, Index: j, Payload: imageB})
		}
	}

	maxCount := max(len(imagesA), len(imagesB))
	percent := 100
	if maxCount > 0 {
		percent = int(math.Round(float64(matches) / float64(maxCount) * 100))
	}

	return models.ImageMatchResult{
		MatchPercent: percent,
		Diffs:        diffs,
	}
}
