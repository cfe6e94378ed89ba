package catalog

import (
	"github.com/vocab-forge/vocabforge/internal/db"
)

// Allocator assigns the human-facing integer sequence numbers.
// Allocation recomputes max(int_id)+1 from the local cache, so it can
// never regress below already-seen values, but it is NOT atomic across
// concurrent writers against the remote store: two clients allocating
// offline can pick overlapping ranges, reconciled only by the remote
// reassigning ids on create. Accepted at this scale.
type Allocator struct {
	cache *db.DB
}

// NewAllocator creates an allocator over the local cache tier.
func NewAllocator(cache *db.DB) *Allocator {
	return &Allocator{cache: cache}
}

// NextIntID returns the next unused sequence number, max(int_id)+1.
// Nothing is reserved until the caller inserts rows bearing the value;
// batch callers take first+i for the i-th item and must hold the store
// mutex from allocation through insert.
func (a *Allocator) NextIntID() (int, error) {
	max, err := a.cache.MaxIntID()
	if err != nil {
		return 0, err
	}
	return max + 1, nil
}
