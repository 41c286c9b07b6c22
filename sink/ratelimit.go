package sink

import (
	"io"

	"go.uber.org/atomic"
	"golang.org/x/time/rate"

	"github.com/omnioperator/omnilog/log"
)

// RateLimitedSink drops records which exceed the rate of its limiter, protecting the next sink from a statement in a
// hot loop. It never waits for the limiter, so callers are never blocked.
type RateLimitedSink struct {
	next    log.Sink
	limiter *rate.Limiter
	exempt  log.Level

	dropped atomic.Uint64
}

var (
	_ log.Sink  = (*RateLimitedSink)(nil)
	_ io.Closer = (*RateLimitedSink)(nil)
)

// RateLimited wraps next so that records below the exempt level are subject to limiter; records at or above the exempt
// level are always forwarded.
func RateLimited(next log.Sink, limiter *rate.Limiter, exempt log.Level) *RateLimitedSink {
	return &RateLimitedSink{next: next, limiter: limiter, exempt: exempt}
}

// Log implements log.Sink.
func (r *RateLimitedSink) Log(rec log.Record) {
	if rec.Level < r.exempt && !r.limiter.Allow() {
		r.dropped.Inc()
		return
	}

	r.next.Log(rec)
}

// Dropped returns the number of records which were dropped due to the rate limit.
func (r *RateLimitedSink) Dropped() uint64 {
	return r.dropped.Load()
}

// Close closes the wrapped sink.
func (r *RateLimitedSink) Close() error {
	return closeSink(r.next)
}
