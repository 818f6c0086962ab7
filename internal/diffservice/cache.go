package diffservice

import (
	"sync"

	"github.com/aleister1102/doccompare/internal/models"
)

// PairKey identifies one comparison by the unordered pair of document
// indices. Ordering is normalized so (a, b) and (b, a) hit the same entry.
type PairKey struct {
	Low  int
	High int
}

// NewPairKey normalizes two document indices into a pair key
func NewPairKey(indexA, indexB int) PairKey {
	if indexA > indexB {
		indexA, indexB = indexB, indexA
	}
	return PairKey{Low: indexA, High: indexB}
}

// PairCache maps pair identities to previously computed full line diffs. It
// lives for the current document set and must be cleared whenever any
// document is replaced or the set size changes. A lookup for the reversed
// orientation returns the stored result verbatim: added/removed roles are
// those of the orientation that computed it.
//
// Concurrent requests for the same uncached pair may both compute and both
// store; the second write wins benignly since both hold the same result.
type PairCache struct {
	mu      sync.RWMutex
	entries map[PairKey]models.TextDiffResult
}

// NewPairCache creates an empty pair cache
func NewPairCache() *PairCache {
	return &PairCache{
		entries: make(map[PairKey]models.TextDiffResult),
	}
}

// Get returns the cached result for the pair in either orientation.
func (pc *PairCache) Get(indexA, indexB int) (models.TextDiffResult, bool) {
	pc.mu.RLock()
	defer pc.mu.RUnlock()
	result, ok := pc.entries[NewPairKey(indexA, indexB)]
	return result, ok
}

// Put stores the result for the pair.
func (pc *PairCache) Put(indexA, indexB int, result models.TextDiffResult) {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	pc.entries[NewPairKey(indexA, indexB)] = result
}

// Clear removes all entries. Callers invoke it when the document set changes.
func (pc *PairCache) Clear() {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	pc.entries = make(map[PairKey]models.TextDiffResult)
}

// Len returns the number of cached pairs.
func (pc *PairCache) Len() int {
	pc.mu.RLock()
	defer pc.mu.RUnlock()
	return len(pc.entries)
}
