package comparer

import (
	"fmt"
	"math"

	"github.com/aleister1102/doccompare/internal/config"
	"github.com/aleister1102/doccompare/internal/differ"
	"github.com/aleister1102/doccompare/internal/errorwrapper"
	"github.com/aleister1102/doccompare/internal/extractor"
	"github.com/aleister1102/doccompare/internal/imagediff"
	"github.com/aleister1102/doccompare/internal/metadata"
	"github.com/aleister1102/doccompare/internal/models"
	"github.com/rs/zerolog"
)

// Comparer orchestrates all comparison layers for a document pair and blends
// their scores into a single weighted match percentage.
type Comparer struct {
	lineDiffer    *differ.LineDiffer
	jaccardScorer *differ.JaccardScorer
	entities      *extractor.EntityExtractor
	multiset      *extractor.MultisetComparator
	imageMatcher  *imagediff.ImageMatcher
	metadata      *metadata.MetadataComparator
	logger        zerolog.Logger
}

// ComparerBuilder provides a fluent interface for creating a Comparer
type ComparerBuilder struct {
	compareConfig config.CompareConfig
	imageConfig   config.ImageConfig
	logger        zerolog.Logger
}

// NewComparerBuilder creates a new builder
func NewComparerBuilder(logger zerolog.Logger) *ComparerBuilder {
	return &ComparerBuilder{
		compareConfig: config.NewDefaultCompareConfig(),
		imageConfig:   config.NewDefaultImageConfig(),
		logger:        logger,
	}
}

// WithCompareConfig sets the compare configuration
func (b *ComparerBuilder) WithCompareConfig(cfg config.CompareConfig) *ComparerBuilder {
	b.compareConfig = cfg
	return b
}

// WithImageConfig sets the image configuration
func (b *ComparerBuilder) WithImageConfig(cfg config.ImageConfig) *ComparerBuilder {
	b.imageConfig = cfg
	return b
}

// Build creates a new Comparer instance
func (b *ComparerBuilder) Build() (*Comparer, error) {
	if b.compareConfig.MaxLCSCells <= 0 {
		return nil, errorwrapper.NewValidationError("max_lcs_cells", b.compareConfig.MaxLCSCells, "LCS cell ceiling must be positive")
	}

	diffConfig := differ.DiffConfig{MaxLCSCells: b.compareConfig.MaxLCSCells}
	matcherConfig := imagediff.MatcherConfig{
		MatchThreshold: b.imageConfig.MatchThreshold,
		PixelTolerance: b.imageConfig.PixelTolerance,
	}

	return &Comparer{
		lineDiffer:    differ.NewLineDiffer(diffConfig, b.logger),
		jaccardScorer: differ.NewJaccardScorer(),
		entities:      extractor.NewEntityExtractor(b.logger),
		multiset:      extractor.NewMultisetComparator(),
		imageMatcher:  imagediff.NewImageMatcher(matcherConfig, b.logger),
		metadata:      metadata.NewMetadataComparator(b.logger),
		logger:        b.logger.With().Str("component", "Comparer").Logger(),
	}, nil
}

// NewComparer creates a Comparer with default layer configuration
func NewComparer(logger zerolog.Logger) (*Comparer, error) {
	return NewComparerBuilder(logger).Build()
}

// Compare runs every layer for the pair and aggregates the weighted score.
// A panic anywhere in the layers is converted into an error at this boundary
// so one bad pair cannot abort a batch.
func (c *Comparer) Compare(docA, docB *models.Document) (result models.ComparisonResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errorwrapper.NewError("comparison panicked: %v", r)
		}
	}()

	if docA == nil || docB == nil {
		return models.ComparisonResult{}, errorwrapper.NewValidationError("documents", nil, "both documents are required")
	}

	textDiff := c.lineDiffer.Diff(docA.Content, docB.Content)
	jaccard := c.jaccardScorer.Score(docA.Content, docB.Content)
	structured := c.multiset.Compare(c.entities.Extract(docA.Content), c.entities.Extract(docB.Content))
	images := c.imageMatcher.Match(docA.Images, docB.Images)
	meta := c.metadata.Compare(docA, docB)

	hasImages := docA.HasImages() || docB.HasImages()
	effectiveText := blendTextScores(textDiff.Stats.MatchPercent, jaccard)

	var weighted float64
	if hasImages {
		weighted = effectiveText*0.50 +
			float64(images.MatchPercent)*0.20 +
			float64(structured.MatchPercent)*0.15 +
			float64(meta.MatchPercent)*0.15
	} else {
		weighted = effectiveText*0.60 +
			float64(structured.MatchPercent)*0.20 +
			float64(meta.MatchPercent)*0.20
	}

	result = models.ComparisonResult{
		MatchPercent: int(math.Round(weighted)),
		TextDiff:     textDiff,
		Jaccard:      jaccard,
		Structured:   structured,
		Images:       images,
		Metadata:     meta,
	}

	c.logger.Debug().
		Str("doc_a", docA.Name).
		Str("doc_b", docB.Name).
		Int("match_percent", result.MatchPercent).
		Bool("approx", textDiff.Approx).
		Msg("Pair comparison finished")

	return result, nil
}

// blendTextScores corrects reordering false negatives: near-identical token
// content with a low positional line score leans on the Jaccard side.
func blendTextScores(lineMatchPercent, jaccard int) float64 {
	if jaccard > 85 && lineMatchPercent < 70 {
		return float64(jaccard)*0.8 + float64(lineMatchPercent)*0.2
	}
	return float64(lineMatchPercent)*0.7 + float64(jaccard)*0.3
}

// ErrorResult builds the 0% placeholder a batch caller substitutes for a
// failed pair.
func ErrorResult(err error) models.ComparisonResult {
	return models.ComparisonResult{
		MatchPercent: 0,
		Error:        fmt.Sprintf("%v", err),
	}
}
