// Package bloom deduplicates batch URLs using Bloom filters.
package bloom

import (
	"strings"
	"sync"

	"github.com/bits-and-blooms/bloom/v3"
	"github.com/fwojciec/pagemd"
)

// Ensure Filter implements pagemd.URLFilter at compile time.
var _ pagemd.URLFilter = (*Filter)(nil)

// Filter wraps a Bloom filter for URL deduplication.
// Filter is safe for concurrent use.
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

// key drops the fragment so anchors on one article count as a single URL.
func key(url string) string {
	if i := strings.IndexByte(url, '#'); i >= 0 {
		return url[:i]
	}
	return url
}

// Add records the URL and reports whether it was possibly added before.
// False positives are possible; false negatives are not.
func (f *Filter) Add(url string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.f.TestAndAddString(key(url))
}

// Test returns true if the URL might be in the filter.
func (f *Filter) Test(url string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.f.TestString(key(url))
}

// EstimatedCount returns the approximate number of items in the filter.
func (f *Filter) EstimatedCount() uint {
	f.mu.Lock()
	defer f.mu.Unlock()
	return uint(f.f.ApproximatedSize())
}
