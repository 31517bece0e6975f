// Package bloom provides duplicate source detection using Bloom filters.
package bloom

import (
	"sync"

	"github.com/bits-and-blooms/bloom/v3"
)

// Filter records content keys seen during a batch. It is safe for
// concurrent use.
type Filter struct {
	mu sync.Mutex
	f  *bloom.BloomFilter
}

// NewFilter creates a new Bloom filter sized for n expected items
// with the given false positive rate.
func NewFilter(n uint, fpRate float64) *Filter {
	return &Filter{
		f: bloom.NewWithEstimates(n, fpRate),
	}
}

// Seen adds key and reports whether it might have been added before.
func (f *Filter) Seen(key string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.f.TestAndAddString(key)
}

// EstimatedCount returns the approximate number of items in the filter.
func (f *Filter) EstimatedCount() uint {
	f.mu.Lock()
	defer f.mu.Unlock()
	return uint(f.f.ApproximatedSize())
}
