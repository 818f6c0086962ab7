package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/aleister1102/doccompare/internal/comparer"
	"github.com/aleister1102/doccompare/internal/config"
	"github.com/aleister1102/doccompare/internal/datastore"
	"github.com/aleister1102/doccompare/internal/diffservice"
	"github.com/aleister1102/doccompare/internal/loader"
	"github.com/aleister1102/doccompare/internal/logger"
	"github.com/aleister1102/doccompare/internal/models"
	"github.com/aleister1102/doccompare/internal/rslimiter"
	"github.com/rs/zerolog"
)

func main() {
	flags := ParseFlags()

	gCfg, err := config.LoadGlobalConfig(flags.GlobalConfigFile)
	if err != nil {
		log.Fatalf("[FATAL] Could not load global config using path '%s': %v", flags.GlobalConfigFile, err)
	}

	zLogger, err := logger.New(gCfg.LogConfig)
	if err != nil {
		log.Fatalf("[FATAL] Could not initialize logger: %v", err)
	}

	usageStore, err := datastore.NewUsageStore(gCfg.StorageConfig.UsageDBPath, zLogger)
	if err != nil {
		zLogger.Fatal().Err(err).Msg("Failed to open usage database")
	}
	defer usageStore.Close()

	if flags.ShowHistory {
		printHistory(usageStore)
		return
	}

	monitor := rslimiter.NewResourceMonitor(0, zLogger)
	if monitor.MemoryPressureHigh() {
		zLogger.Warn().Msg("System memory pressure is high before loading documents")
	}

	documentLoader := loader.NewDocumentLoader(zLogger)
	documents, err := documentLoader.LoadAll(flags.Files)
	if err != nil {
		zLogger.Fatal().Err(err).Msg("Failed to load documents")
	}

	docComparer, err := comparer.NewComparerBuilder(zLogger).
		WithCompareConfig(gCfg.CompareConfig).
		WithImageConfig(gCfg.ImageConfig).
		Build()
	if err != nil {
		zLogger.Fatal().Err(err).Msg("Failed to build comparer")
	}

	pairs := docComparer.CompareAll(documents)

	printSummary(os.Stdout, pairs)
	if flags.ShowDetails {
		resolveApproximateDiffs(zLogger, gCfg, monitor, documents, pairs)
		printDetails(os.Stdout, pairs)
	}

	if err := usageStore.RecordRun(len(documents), len(pairs), comparer.ErrorCount(pairs)); err != nil {
		zLogger.Warn().Err(err).Msg("Failed to record run in usage database")
	}

	if gCfg.StorageConfig.ParquetExportPath != "" {
		summaryWriter := datastore.NewSummaryWriter(zLogger)
		if err := summaryWriter.Write(gCfg.StorageConfig.ParquetExportPath, pairs); err != nil {
			zLogger.Error().Err(err).Msg("Failed to export comparison summary")
		}
	}
}

// resolveApproximateDiffs replaces approximate text diffs with exact ones
// before detail rendering. Oversized pairs go through the deferred full-diff
// service so the exact computation runs off the interactive path and lands in
// its pair cache.
func resolveApproximateDiffs(zLogger zerolog.Logger, gCfg *config.GlobalConfig, monitor *rslimiter.ResourceMonitor, documents []models.Document, pairs []models.PairComparison) {
	diffService, err := diffservice.NewFullDiffServiceBuilder(zLogger).
		WithCompareConfig(gCfg.CompareConfig).
		WithWorkerConfig(gCfg.WorkerConfig).
		WithResourceMonitor(monitor).
		Build()
	if err != nil {
		zLogger.Warn().Err(err).Msg("Full diff service unavailable, approximate results stand")
		return
	}
	defer diffService.Close()

	for i := range pairs {
		pair := &pairs[i]
		if pair.Result.Error != "" || !pair.Result.TextDiff.Approx {
			continue
		}
		full, err := diffService.GetFullDiff(context.Background(), pair.IndexA, pair.IndexB,
			documents[pair.IndexA].Content, documents[pair.IndexB].Content)
		if err != nil {
			zLogger.Warn().Err(err).
				Str("document_a", pair.NameA).
				Str("document_b", pair.NameB).
				Msg("Could not resolve full diff for pair")
			continue
		}
		pair.Result.TextDiff = full
	}
}

func printHistory(store *datastore.UsageStore) {
	total, err := store.TotalComparisons()
	if err != nil {
		log.Fatalf("[FATAL] Could not read usage history: %v", err)
	}
	fmt.Printf("Total comparisons recorded: %d\n", total)

	runs, err := store.RecentRuns(10)
	if err != nil {
		log.Fatalf("[FATAL] Could not read usage history: %v", err)
	}
	for _, run := range runs {
		fmt.Printf("  %s  documents=%d pairs=%d errors=%d\n",
			run.RunTime.Format("2006-01-02 15:04:05"), run.DocumentCount, run.PairCount, run.ErrorCount)
	}
}
