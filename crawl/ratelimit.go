package crawl

import (
	"context"
	"net"
	"strings"
	"sync"

	"github.com/fwojciec/pagemd"
	"golang.org/x/time/rate"
)

var _ pagemd.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter keeps one token bucket per site so that a batch spread over
// many publishers runs in parallel while each publisher sees a steady rate.
type DomainLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	rps      float64
	burst    int
}

// LimiterOption configures a DomainLimiter.
type LimiterOption func(*DomainLimiter)

// WithBurst allows n requests to a site back to back before throttling.
func WithBurst(n int) LimiterOption {
	return func(d *DomainLimiter) {
		if n > 0 {
			d.burst = n
		}
	}
}

// NewDomainLimiter creates a DomainLimiter allowing rps requests per second
// to each site, with no bursting unless WithBurst is given.
func NewDomainLimiter(rps float64, opts ...LimiterOption) *DomainLimiter {
	d := &DomainLimiter{
		limiters: make(map[string]*rate.Limiter),
		rps:      rps,
		burst:    1,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Wait blocks until a request to domain is allowed.
// Hosts differing only in case, port or a leading "www." share a bucket.
// Returns the context error if ctx ends first.
func (d *DomainLimiter) Wait(ctx context.Context, domain string) error {
	key := siteKey(domain)

	d.mu.Lock()
	limiter, ok := d.limiters[key]
	if !ok {
		limiter = rate.NewLimiter(rate.Limit(d.rps), d.burst)
		d.limiters[key] = limiter
	}
	d.mu.Unlock()

	return limiter.Wait(ctx)
}

func siteKey(host string) string {
	if h, _, err := net.SplitHostPort(host); err == nil {
		host = h
	}
	host = strings.ToLower(host)
	return strings.TrimPrefix(host, "www.")
}
