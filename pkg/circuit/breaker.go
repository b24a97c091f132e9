package circuit

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"
)

// ErrOpen is returned without invoking the wrapped call while the breaker is open.
var ErrOpen = errors.New("circuit breaker is open")

type State int

const (
	StateClosed State = iota
	StateOpen
	StateHalfOpen
)

func (s State) String() string {
	switch s {
	case StateClosed:
		return "closed"
	case StateOpen:
		return "open"
	case StateHalfOpen:
		return "half_open"
	default:
		return "unknown"
	}
}

// Breaker is a failure-threshold circuit breaker. One instance is meant to
// guard one remote surface for the whole process lifetime.
type Breaker struct {
	name string

	mu            sync.Mutex
	state         State
	failures      int
	lastFailureAt time.Time
	trialInFlight bool

	threshold     int
	timeout       time.Duration
	isFailure     func(error) bool
	now           func() time.Time
	onStateChange func(name string, from, to State)
}

type Option func(*Breaker)

func WithFailureThreshold(n int) Option {
	return func(b *Breaker) {
		if n > 0 {
			b.threshold = n
		}
	}
}

// WithTimeout sets how long the breaker stays open before admitting a trial call.
func WithTimeout(d time.Duration) Option {
	return func(b *Breaker) {
		if d > 0 {
			b.timeout = d
		}
	}
}

// WithIsFailure decides which errors count against the breaker. Errors it
// rejects are returned to the caller but leave the state untouched.
func WithIsFailure(fn func(error) bool) Option {
	return func(b *Breaker) {
		b.isFailure = fn
	}
}

func WithClock(now func() time.Time) Option {
	return func(b *Breaker) {
		b.now = now
	}
}

func WithStateChangeHook(fn func(name string, from, to State)) Option {
	return func(b *Breaker) {
		b.onStateChange = fn
	}
}

func New(name string, opts ...Option) *Breaker {
	b := &Breaker{
		name:      name,
		state:     StateClosed,
		threshold: 5,
		timeout:   60 * time.Second,
		isFailure: defaultIsFailure,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

func defaultIsFailure(err error) bool {
	return err != nil && !errors.Is(err, context.Canceled)
}

// Execute runs fn if the breaker admits the call and records its outcome.
func (b *Breaker) Execute(ctx context.Context, fn func(ctx context.Context) error) error {
	trial, err := b.admit()
	if err != nil {
		return err
	}

	callErr := fn(ctx)
	b.record(callErr, trial)
	return callErr
}

func (b *Breaker) admit() (trial bool, err error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	switch b.state {
	case StateClosed:
		return false, nil
	case StateOpen:
		if b.now().Sub(b.lastFailureAt) <= b.timeout {
			return false, fmt.Errorf("%s: %w", b.name, ErrOpen)
		}
		b.transition(StateHalfOpen)
		b.trialInFlight = true
		return true, nil
	default:
		if b.trialInFlight {
			return false, fmt.Errorf("%s: %w", b.name, ErrOpen)
		}
		b.trialInFlight = true
		return true, nil
	}
}

func (b *Breaker) record(err error, trial bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if trial {
		b.trialInFlight = false
	}

	if err == nil || !b.isFailure(err) {
		if trial {
			b.failures = 0
			b.lastFailureAt = time.Time{}
			b.transition(StateClosed)
		} else if b.state == StateClosed && err == nil {
			b.failures = 0
		}
		return
	}

	b.failures++
	b.lastFailureAt = b.now()

	if trial || (b.state == StateClosed && b.failures >= b.threshold) {
		b.transition(StateOpen)
	}
}

// transition must be called with b.mu held.
func (b *Breaker) transition(to State) {
	from := b.state
	if from == to {
		return
	}
	b.state = to
	if b.onStateChange != nil {
		b.onStateChange(b.name, from, to)
	}
}

func (b *Breaker) Name() string {
	return b.name
}

func (b *Breaker) State() State {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.state
}

func (b *Breaker) IsOpen() bool {
	return b.State() == StateOpen
}

func (b *Breaker) Failures() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.failures
}

// Reset forces the breaker closed. Intended for tests and admin tooling.
func (b *Breaker) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.failures = 0
	b.lastFailureAt = time.Time{}
	b.trialInFlight = false
	b.transition(StateClosed)
}
