package circuit

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errRemote = errors.New("remote down")

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func failing(ctx context.Context) error { return errRemote }
func ok(ctx context.Context) error      { return nil }

func TestBreaker_InitialState(t *testing.T) {
	b := New("test")
	assert.False(t, b.IsOpen())
	assert.Equal(t, StateClosed, b.State())
	assert.Equal(t, "test", b.Name())
	assert.Equal(t, 0, b.Failures())
}

func TestBreaker_OpensAfterThresholdAndSkipsCall(t *testing.T) {
	b := New("test", WithFailureThreshold(3))
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		assert.ErrorIs(t, b.Execute(ctx, failing), errRemote)
	}
	assert.True(t, b.IsOpen())

	called := false
	err := b.Execute(ctx, func(context.Context) error {
		called = true
		return nil
	})
	assert.ErrorIs(t, err, ErrOpen)
	assert.False(t, called)
}

func TestBreaker_HalfOpenSuccessCloses(t *testing.T) {
	clock := &fakeClock{now: time.Unix(1_700_000_000, 0)}
	var transitions []string
	b := New("fiscal",
		WithFailureThreshold(2),
		WithTimeout(time.Minute),
		WithClock(clock.Now),
		WithStateChangeHook(func(_ string, from, to State) {
			transitions = append(transitions, from.String()+"->"+to.String())
		}),
	)
	ctx := context.Background()

	_ = b.Execute(ctx, failing)
	_ = b.Execute(ctx, failing)
	require.True(t, b.IsOpen())

	clock.Advance(time.Minute)
	assert.ErrorIs(t, b.Execute(ctx, ok), ErrOpen, "timeout must be strictly exceeded")

	clock.Advance(time.Millisecond)
	calls := 0
	err := b.Execute(ctx, func(context.Context) error {
		calls++
		assert.Equal(t, StateHalfOpen, b.State())
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
	assert.Equal(t, StateClosed, b.State())
	assert.Equal(t, 0, b.Failures())
	assert.Equal(t, []string{"closed->open", "open->half_open", "half_open->closed"}, transitions)
}

func TestBreaker_HalfOpenFailureReopens(t *testing.T) {
	clock := &fakeClock{now: time.Unix(1_700_000_000, 0)}
	b := New("fiscal", WithFailureThreshold(1), WithTimeout(time.Second), WithClock(clock.Now))
	ctx := context.Background()

	_ = b.Execute(ctx, failing)
	clock.Advance(2 * time.Second)

	assert.ErrorIs(t, b.Execute(ctx, failing), errRemote)
	assert.Equal(t, StateOpen, b.State())

	// last_failure_at was refreshed, so the breaker rejects again right away.
	assert.ErrorIs(t, b.Execute(ctx, ok), ErrOpen)
}

func TestBreaker_HalfOpenAdmitsSingleTrial(t *testing.T) {
	clock := &fakeClock{now: time.Unix(1_700_000_000, 0)}
	b := New("fiscal", WithFailureThreshold(1), WithTimeout(time.Second), WithClock(clock.Now))
	ctx := context.Background()

	_ = b.Execute(ctx, failing)
	clock.Advance(2 * time.Second)

	release := make(chan struct{})
	entered := make(chan struct{})
	done := make(chan error, 1)
	go func() {
		done <- b.Execute(ctx, func(context.Context) error {
			close(entered)
			<-release
			return nil
		})
	}()
	<-entered

	assert.ErrorIs(t, b.Execute(ctx, ok), ErrOpen)

	close(release)
	require.NoError(t, <-done)
	assert.Equal(t, StateClosed, b.State())
}

func TestBreaker_SuccessResetsFailureCount(t *testing.T) {
	b := New("test", WithFailureThreshold(3))
	ctx := context.Background()

	_ = b.Execute(ctx, failing)
	_ = b.Execute(ctx, failing)
	require.NoError(t, b.Execute(ctx, ok))
	assert.Equal(t, 0, b.Failures())

	_ = b.Execute(ctx, failing)
	_ = b.Execute(ctx, failing)
	assert.False(t, b.IsOpen())
}

func TestBreaker_IgnoredErrorsDoNotCount(t *testing.T) {
	errBadInput := errors.New("bad input")
	b := New("test",
		WithFailureThreshold(1),
		WithIsFailure(func(err error) bool { return !errors.Is(err, errBadInput) }),
	)

	err := b.Execute(context.Background(), func(context.Context) error { return errBadInput })
	assert.ErrorIs(t, err, errBadInput)
	assert.Equal(t, StateClosed, b.State())
	assert.Equal(t, 0, b.Failures())
}

func TestBreaker_ConcurrentFailuresAreCounted(t *testing.T) {
	b := New("test", WithFailureThreshold(1000))
	ctx := context.Background()

	var wg sync.WaitGroup
	var calls atomic.Int64
	for i := 0; i < 200; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = b.Execute(ctx, func(context.Context) error {
				calls.Add(1)
				return errRemote
			})
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(200), calls.Load())
	assert.Equal(t, 200, b.Failures())
}

func TestBreaker_Reset(t *testing.T) {
	b := New("test", WithFailureThreshold(1))
	_ = b.Execute(context.Background(), failing)
	require.True(t, b.IsOpen())

	b.Reset()
	assert.Equal(t, StateClosed, b.State())
	assert.NoError(t, b.Execute(context.Background(), ok))
}
