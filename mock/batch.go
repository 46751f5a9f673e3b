package mock

import (
	"context"

	"github.com/fwojciec/pagemd"
)

var (
	_ pagemd.URLSource     = (*URLSource)(nil)
	_ pagemd.DomainLimiter = (*DomainLimiter)(nil)
	_ pagemd.URLFilter     = (*URLFilter)(nil)
)

// URLSource is a mock implementation of pagemd.URLSource.
type URLSource struct {
	DiscoverFn func(ctx context.Context, sourceURL string) ([]string, error)
}

func (s *URLSource) Discover(ctx context.Context, sourceURL string) ([]string, error) {
	return s.DiscoverFn(ctx, sourceURL)
}

// DomainLimiter is a mock implementation of pagemd.DomainLimiter.
type DomainLimiter struct {
	WaitFn func(ctx context.Context, domain string) error
}

func (l *DomainLimiter) Wait(ctx context.Context, domain string) error {
	return l.WaitFn(ctx, domain)
}

// URLFilter is a mock implementation of pagemd.URLFilter.
type URLFilter struct {
	AddFn func(url string) bool
}

func (f *URLFilter) Add(url string) bool {
	return f.AddFn(url)
}
