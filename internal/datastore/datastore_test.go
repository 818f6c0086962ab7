package datastore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/aleister1102/doccompare/internal/models"
	"github.com/parquet-go/parquet-go"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *UsageStore {
	t.Helper()
	store, err := NewUsageStore(filepath.Join(t.TempDir(), "usage.db"), zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestUsageStore_EmptyHistory(t *testing.T) {
	store := newTestStore(t)

	total, err := store.TotalComparisons()
	require.NoError(t, err)
	assert.Equal(t, int64(0), total)

	runs, err := store.RecentRuns(10)
	require.NoError(t, err)
	assert.Empty(t, runs)
}

func TestUsageStore_RecordAndSum(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.RecordRun(3, 3, 0))
	require.NoError(t, store.RecordRun(4, 6, 1))

	total, err := store.TotalComparisons()
	require.NoError(t, err)
	assert.Equal(t, int64(9), total)

	runs, err := store.RecentRuns(10)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, 6, runs[0].PairCount, "newest run first")
	assert.Equal(t, 1, runs[0].ErrorCount)
}

func TestSummaryWriter_RoundTrip(t *testing.T) {
	outputPath := filepath.Join(t.TempDir(), "export", "summary.parquet")
	writer := NewSummaryWriter(zerolog.Nop())

	pairs := []models.PairComparison{
		{
			IndexA: 0,
			IndexB: 1,
			NameA:  "a.txt",
			NameB:  "b.txt",
			Result: models.ComparisonResult{
				MatchPercent: 87,
				Jaccard:      90,
				TextDiff: models.TextDiffResult{
					Stats: models.DiffStats{MatchPercent: 85},
				},
			},
		},
		{
			IndexA: 0,
			IndexB: 2,
			NameA:  "a.txt",
			NameB:  "c.bin",
			Result: models.ComparisonResult{Error: "comparison failed"},
		},
	}

	require.NoError(t, writer.Write(outputPath, pairs))

	file, err := os.Open(outputPath)
	require.NoError(t, err)
	defer file.Close()

	reader := parquet.NewGenericReader[ComparisonSummaryRecord](file)
	defer reader.Close()

	records := make([]ComparisonSummaryRecord, 2)
	n, _ := reader.Read(records)
	require.Equal(t, 2, n)

	assert.Equal(t, "a.txt", records[0].DocumentA)
	assert.Equal(t, int32(87), records[0].MatchPercent)
	assert.Nil(t, records[0].Error)

	assert.Equal(t, "c.bin", records[1].DocumentB)
	require.NotNil(t, records[1].Error)
	assert.Equal(t, "comparison failed", *records[1].Error)
}

func TestSummaryWriter_EmptyBatchProducesValidFile(t *testing.T) {
	outputPath := filepath.Join(t.TempDir(), "summary.parquet")
	writer := NewSummaryWriter(zerolog.Nop())

	require.NoError(t, writer.Write(outputPath, nil))

	_, err := os.Stat(outputPath)
	assert.NoError(t, err)
}
