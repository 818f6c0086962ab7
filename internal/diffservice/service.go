package diffservice

import (
	"context"
	"sync"

	"github.com/aleister1102/doccompare/internal/config"
	"github.com/aleister1102/doccompare/internal/differ"
	"github.com/aleister1102/doccompare/internal/errorwrapper"
	"github.com/aleister1102/doccompare/internal/models"
	"github.com/aleister1102/doccompare/internal/rslimiter"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// FullDiffService computes exact line diffs on demand, off the interactive
// path for large pairs, with a pair-keyed cache. Small pairs are computed
// inline; pairs beyond the interactive budget go to the worker. A caller may
// stop waiting, but a dispatched computation always finishes and its result
// is applied to the cache when it arrives.
type FullDiffService struct {
	cache             *PairCache
	lineDiffer        *differ.LineDiffer
	worker            *lcsWorker
	monitor           *rslimiter.ResourceMonitor
	interactiveBudget int
	logger            zerolog.Logger

	waitersMu sync.Mutex
	waiters   map[string]chan models.TextDiffResult
	pumpWg    sync.WaitGroup
}

// FullDiffServiceBuilder provides a fluent interface for creating the service
type FullDiffServiceBuilder struct {
	compareConfig config.CompareConfig
	workerConfig  config.WorkerConfig
	monitor       *rslimiter.ResourceMonitor
	logger        zerolog.Logger
}

// NewFullDiffServiceBuilder creates a new builder
func NewFullDiffServiceBuilder(logger zerolog.Logger) *FullDiffServiceBuilder {
	return &FullDiffServiceBuilder{
		compareConfig: config.NewDefaultCompareConfig(),
		workerConfig:  config.NewDefaultWorkerConfig(),
		logger:        logger,
	}
}

// WithCompareConfig sets the compare configuration
func (b *FullDiffServiceBuilder) WithCompareConfig(cfg config.CompareConfig) *FullDiffServiceBuilder {
	b.compareConfig = cfg
	return b
}

// WithWorkerConfig sets the worker configuration
func (b *FullDiffServiceBuilder) WithWorkerConfig(cfg config.WorkerConfig) *FullDiffServiceBuilder {
	b.workerConfig = cfg
	return b
}

// WithResourceMonitor sets the resource monitor
func (b *FullDiffServiceBuilder) WithResourceMonitor(monitor *rslimiter.ResourceMonitor) *FullDiffServiceBuilder {
	b.monitor = monitor
	return b
}

// Build creates the service and starts its worker and response pump
func (b *FullDiffServiceBuilder) Build() (*FullDiffService, error) {
	if b.compareConfig.InteractiveBudgetCells <= 0 {
		return nil, errorwrapper.NewValidationError("interactive_budget_cells", b.compareConfig.InteractiveBudgetCells, "interactive budget must be positive")
	}

	monitor := b.monitor
	if monitor == nil {
		monitor = rslimiter.NewResourceMonitor(0, b.logger)
	}

	service := &FullDiffService{
		cache:             NewPairCache(),
		lineDiffer:        differ.NewLineDiffer(differ.DiffConfig{}, b.logger),
		worker:            newLCSWorker(b.workerConfig.QueueSize, b.logger),
		monitor:           monitor,
		interactiveBudget: b.compareConfig.InteractiveBudgetCells,
		logger:            b.logger.With().Str("component", "FullDiffService").Logger(),
		waiters:           make(map[string]chan models.TextDiffResult),
	}

	service.worker.start()
	service.pumpWg.Add(1)
	go service.pumpResponses()

	return service, nil
}

// NewFullDiffService creates a service with default configuration
func NewFullDiffService(logger zerolog.Logger) (*FullDiffService, error) {
	return NewFullDiffServiceBuilder(logger).Build()
}

// GetFullDiff returns the exact line diff for a pair, consulting the cache
// first. A hit for either orientation of the pair is returned verbatim. On a
// miss within the interactive budget the diff is computed inline; beyond it
// the request goes to the worker and the call waits for the response or for
// ctx. Waiting ending early does not cancel the computation.
func (s *FullDiffService) GetFullDiff(ctx context.Context, indexA, indexB int, textA, textB string) (models.TextDiffResult, error) {
	if cached, ok := s.cache.Get(indexA, indexB); ok {
		s.logger.Debug().Int("index_a", indexA).Int("index_b", indexB).Msg("Pair cache hit")
		return cached, nil
	}

	n := len(differ.SplitLines(textA))
	m := len(differ.SplitLines(textB))
	cells := n * m

	if cells <= s.interactiveBudget {
		result := s.lineDiffer.DiffExact(textA, textB)
		s.cache.Put(indexA, indexB, result)
		return result, nil
	}

	if s.monitor.MemoryPressureHigh() {
		s.logger.Warn().
			Int("cells", cells).
			Msg("System memory pressure is high before oversized diff")
	}

	return s.computeViaWorker(ctx, indexA, indexB, textA, textB)
}

// computeViaWorker dispatches the pair to the worker and waits. If dispatch
// itself fails the exact diff runs synchronously on the caller's path as a
// degraded-but-correct fallback.
func (s *FullDiffService) computeViaWorker(ctx context.Context, indexA, indexB int, textA, textB string) (models.TextDiffResult, error) {
	requestID := uuid.NewString()
	waiter := make(chan models.TextDiffResult, 1)
	s.registerWaiter(requestID, waiter)

	request := diffRequest{
		ID:     requestID,
		IndexA: indexA,
		IndexB: indexB,
		TextA:  textA,
		TextB:  textB,
	}

	if err := s.worker.dispatch(request); err != nil {
		s.removeWaiter(requestID)
		s.logger.Warn().Err(err).Msg("Worker dispatch failed, computing synchronously")
		result := s.lineDiffer.DiffExact(textA, textB)
		s.cache.Put(indexA, indexB, result)
		return result, nil
	}

	select {
	case result := <-waiter:
		return result, nil
	case <-ctx.Done():
		// The computation keeps running; the response pump will still cache
		// its result when it lands.
		s.removeWaiter(requestID)
		return models.TextDiffResult{}, errorwrapper.WrapError(ctx.Err(), "stopped waiting for full diff")
	}
}

// pumpResponses applies every worker response to the cache and wakes the
// request's waiter if it is still registered.
func (s *FullDiffService) pumpResponses() {
	defer s.pumpWg.Done()
	for response := range s.worker.responses {
		s.cache.Put(response.IndexA, response.IndexB, response.Result)

		s.waitersMu.Lock()
		waiter, ok := s.waiters[response.ID]
		if ok {
			delete(s.waiters, response.ID)
		}
		s.waitersMu.Unlock()

		if ok {
			waiter <- response.Result
		}
	}
}

func (s *FullDiffService) registerWaiter(id string, waiter chan models.TextDiffResult) {
	s.waitersMu.Lock()
	defer s.waitersMu.Unlock()
	s.waiters[id] = waiter
}

func (s *FullDiffService) removeWaiter(id string) {
	s.waitersMu.Lock()
	defer s.waitersMu.Unlock()
	delete(s.waiters, id)
}

// Invalidate clears the pair cache. Callers invoke it whenever any document
// in the set is replaced or the set size changes.
func (s *FullDiffService) Invalidate() {
	s.cache.Clear()
}

// CacheSize returns the number of cached pairs.
func (s *FullDiffService) CacheSize() int {
	return s.cache.Len()
}

// Close stops the worker and waits for in-flight responses to be applied.
func (s *FullDiffService) Close() {
	s.worker.stop()
	s.pumpWg.Wait()
}
