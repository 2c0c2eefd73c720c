// Package stats holds the process-scoped request counter. The counter
// exists for diagnostics only: it is created at startup, incremented by
// the request-log middleware, and read by the health endpoint.
package stats

import "sync/atomic"

// Counter is a monotonically increasing request counter.
type Counter struct {
	n atomic.Uint64
}

// NewCounter creates a counter starting at zero.
func NewCounter() *Counter {
	return &Counter{}
}

// Inc increments the counter and returns the new value, which doubles
// as the request's sequence number in logs.
func (c *Counter) Inc() uint64 {
	return c.n.Add(1)
}

// Total returns the number of requests served so far.
func (c *Counter) Total() uint64 {
	return c.n.Load()
}
