package diffservice

import (
	"sync"

	"github.com/aleister1102/doccompare/internal/differ"
	"github.com/aleister1102/doccompare/internal/errorwrapper"
	"github.com/aleister1102/doccompare/internal/models"
	"github.com/rs/zerolog"
)

// diffRequest carries one full-diff computation to the worker. The worker
// shares no state with the caller: it receives copies of both texts and a
// correlation ID, and answers exactly once on the response channel.
type diffRequest struct {
	ID     string
	IndexA int
	IndexB int
	TextA  string
	TextB  string
}

// diffResponse carries the completed result back, tagged with the request's
// correlation ID and pair identity.
type diffResponse struct {
	ID     string
	IndexA int
	IndexB int
	Result models.TextDiffResult
}

// lcsWorker runs exact line diffs off the interactive path. Once a request
// is accepted it always runs to completion; there is no cancellation.
type lcsWorker struct {
	requests   chan diffRequest
	responses  chan diffResponse
	lineDiffer *differ.LineDiffer
	logger     zerolog.Logger
	mu         sync.RWMutex
	stopped    bool
	wg         sync.WaitGroup
}

// newLCSWorker creates a worker with a bounded request queue
func newLCSWorker(queueSize int, logger zerolog.Logger) *lcsWorker {
	if queueSize <= 0 {
		queueSize = 1
	}
	workerLogger := logger.With().Str("component", "LCSWorker").Logger()
	return &lcsWorker{
		requests:   make(chan diffRequest, queueSize),
		responses:  make(chan diffResponse, queueSize),
		lineDiffer: differ.NewLineDiffer(differ.DiffConfig{}, workerLogger),
		logger:     workerLogger,
	}
}

// start launches the worker loop.
func (w *lcsWorker) start() {
	w.wg.Add(1)
	go w.run()
}

func (w *lcsWorker) run() {
	defer w.wg.Done()
	for request := range w.requests {
		// DiffExact ignores any size ceiling; accepted work always runs to
		// completion.
		result := w.lineDiffer.DiffExact(request.TextA, request.TextB)
		w.logger.Debug().
			Str("request_id", request.ID).
			Int("ops", len(result.Ops)).
			Msg("Full diff computed on worker")
		w.responses <- diffResponse{
			ID:     request.ID,
			IndexA: request.IndexA,
			IndexB: request.IndexB,
			Result: result,
		}
	}
	close(w.responses)
}

// dispatch submits a request without blocking. It fails when the worker has
// been stopped or the queue is full; callers treat that as a cue to compute
// synchronously instead.
func (w *lcsWorker) dispatch(request diffRequest) error {
	w.mu.RLock()
	defer w.mu.RUnlock()

	if w.stopped {
		return errorwrapper.ErrWorkerUnavailable
	}

	select {
	case w.requests <- request:
		return nil
	default:
		return errorwrapper.WrapError(errorwrapper.ErrWorkerUnavailable, "request queue full")
	}
}

// stop closes the request channel and waits for in-flight work to finish.
// Accepted requests still complete and deliver their responses.
func (w *lcsWorker) stop() {
	w.mu.Lock()
	if w.stopped {
		w.mu.Unlock()
		return
	}
	w.stopped = true
	close(w.requests)
	w.mu.Unlock()

	w.wg.Wait()
}
