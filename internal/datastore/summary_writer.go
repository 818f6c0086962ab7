package datastore

import (
	"os"
	"path/filepath"
	"time"

	"github.com/aleister1102/doccompare/internal/errorwrapper"
	"github.com/aleister1102/doccompare/internal/models"
	"github.com/parquet-go/parquet-go"
	"github.com/rs/zerolog"
)

// ComparisonSummaryRecord defines the Parquet schema for one compared pair.
// Layer scores that did not run for a pair stay at zero.
type ComparisonSummaryRecord struct {
	RunTimestamp   int64   `parquet:"run_timestamp"`
	DocumentA      string  `parquet:"document_a"`
	DocumentB      string  `parquet:"document_b"`
	MatchPercent   int32   `parquet:"match_percent"`
	TextPercent    int32   `parquet:"text_percent"`
	JaccardPercent int32   `parquet:"jaccard_percent"`
	EntityPercent  int32   `parquet:"entity_percent"`
	ImagePercent   int32   `parquet:"image_percent"`
	MetaPercent    int32   `parquet:"meta_percent"`
	TextApprox     bool    `parquet:"text_approx"`
	Error          *string `parquet:"error,optional"`
}

// SummaryWriter exports batch results to a Parquet file for downstream
// analysis.
type SummaryWriter struct {
	logger zerolog.Logger
}

// NewSummaryWriter creates a new summary writer
func NewSummaryWriter(logger zerolog.Logger) *SummaryWriter {
	return &SummaryWriter{
		logger: logger.With().Str("component", "SummaryWriter").Logger(),
	}
}

// Write serializes every pair comparison to outputPath, replacing any
// existing file.
func (sw *SummaryWriter) Write(outputPath string, pairs []models.PairComparison) error {
	if err := os.MkdirAll(filepath.Dir(outputPath), 0755); err != nil {
		return errorwrapper.WrapError(err, "failed to create export directory")
	}

	file, err := os.Create(outputPath)
	if err != nil {
		return errorwrapper.WrapError(err, "failed to create export file")
	}
	defer file.Close()

	writer := parquet.NewGenericWriter[ComparisonSummaryRecord](file, parquet.Compression(&parquet.Zstd))
	now := time.Now().UnixMilli()

	records := make([]ComparisonSummaryRecord, 0, len(pairs))
	for _, pair := range pairs {
		records = append(records, toSummaryRecord(pair, now))
	}

	if len(records) > 0 {
		if _, err := writer.Write(records); err != nil {
			return errorwrapper.WrapError(err, "failed to write summary records")
		}
	}

	if err := writer.Close(); err != nil {
		return errorwrapper.WrapError(err, "failed to finalize parquet file")
	}

	sw.logger.Info().
		Str("path", outputPath).
		Int("records", len(records)).
		Msg("Exported comparison summary")
	return nil
}

func toSummaryRecord(pair models.PairComparison, timestamp int64) ComparisonSummaryRecord {
	record := ComparisonSummaryRecord{
		RunTimestamp:   timestamp,
		DocumentA:      pair.NameA,
		DocumentB:      pair.NameB,
		MatchPercent:   int32(pair.Result.MatchPercent),
		TextPercent:    int32(pair.Result.TextDiff.Stats.MatchPercent),
		JaccardPercent: int32(pair.Result.Jaccard),
		EntityPercent:  int32(pair.Result.Structured.MatchPercent),
		ImagePercent:   int32(pair.Result.Images.MatchPercent),
		MetaPercent:    int32(pair.Result.Metadata.MatchPercent),
		TextApprox:     pair.Result.TextDiff.Approx,
	}

	if pair.Result.Error != "" {
		errText := pair.Result.Error
		record.Error = &errText
	}
	return record
}
