// Package ratelimit implements an in-process fixed-window request counter.
//
// Each identifier owns one window. The first check after a window has
// expired starts a new one, so bursts of up to twice the limit can straddle
// a window boundary. Memory is one entry per active identifier; Sweep drops
// entries whose window is over.
package ratelimit

import (
	"context"
	"math"
	"sync"
	"time"
)

// DefaultSweepInterval is used by RunSweeper when given a non-positive interval.
const DefaultSweepInterval = 5 * time.Minute

type Policy struct {
	Window      time.Duration
	MaxRequests int
}

type Result struct {
	Allowed   bool
	Limit     int
	Remaining int
	ResetAt   time.Time
}

// RetryAfter is the whole number of seconds until the window resets, never less than 1.
func (r Result) RetryAfter(now time.Time) int {
	secs := int(math.Ceil(r.ResetAt.Sub(now).Seconds()))
	if secs < 1 {
		return 1
	}
	return secs
}

type entry struct {
	count   int
	resetAt time.Time
}

type Limiter struct {
	mu      sync.Mutex
	entries map[string]*entry
	now     func() time.Time
}

type Option func(*Limiter)

func WithClock(now func() time.Time) Option {
	return func(l *Limiter) {
		l.now = now
	}
}

func New(opts ...Option) *Limiter {
	l := &Limiter{
		entries: make(map[string]*entry),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Check counts one request for identifier and reports whether it fits in
// the current window.
func (l *Limiter) Check(identifier string, window time.Duration, maxRequests int) Result {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	e, exists := l.entries[identifier]
	if !exists || now.After(e.resetAt) {
		e = &entry{resetAt: now.Add(window)}
		l.entries[identifier] = e
	}

	e.count++

	remaining := maxRequests - e.count
	if remaining < 0 {
		remaining = 0
	}

	return Result{
		Allowed:   e.count <= maxRequests,
		Limit:     maxRequests,
		Remaining: remaining,
		ResetAt:   e.resetAt,
	}
}

func (l *Limiter) Allow(identifier string, p Policy) Result {
	return l.Check(identifier, p.Window, p.MaxRequests)
}

// Sweep removes expired entries and returns how many were dropped.
func (l *Limiter) Sweep() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	removed := 0
	for id, e := range l.entries {
		if now.After(e.resetAt) {
			delete(l.entries, id)
			removed++
		}
	}
	return removed
}

// RunSweeper calls Sweep every interval until ctx is done. onSweep, if set,
// receives the number of entries removed by each pass. A non-positive
// interval falls back to DefaultSweepInterval.
func (l *Limiter) RunSweeper(ctx context.Context, interval time.Duration, onSweep func(removed int)) {
	if interval <= 0 {
		interval = DefaultSweepInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			removed := l.Sweep()
			if onSweep != nil {
				onSweep(removed)
			}
		}
	}
}

func (l *Limiter) Reset(identifier string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.entries, identifier)
}

func (l *Limiter) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}
