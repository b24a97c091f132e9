package retry

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type statusErr int

func (e statusErr) Error() string   { return fmt.Sprintf("status %d", int(e)) }
func (e statusErr) HTTPStatus() int { return int(e) }

func TestDo_SucceedsFirstTry(t *testing.T) {
	calls := 0
	err := Do(context.Background(), func() error {
		calls++
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func TestDo_BackoffTiming(t *testing.T) {
	var stamps []time.Time
	err := Do(context.Background(), func() error {
		stamps = append(stamps, time.Now())
		return statusErr(503)
	},
		WithMaxAttempts(4),
		WithBaseDelay(100*time.Millisecond),
		WithMultiplier(2),
	)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrExhausted)
	require.Len(t, stamps, 4)

	want := []time.Duration{100 * time.Millisecond, 200 * time.Millisecond, 400 * time.Millisecond}
	for i, atLeast := range want {
		gap := stamps[i+1].Sub(stamps[i])
		assert.GreaterOrEqual(t, gap, atLeast, "gap before attempt %d", i+2)
	}
}

func TestDo_ExhaustedKeepsLastError(t *testing.T) {
	err := Do(context.Background(), func() error {
		return statusErr(429)
	}, WithMaxAttempts(2), WithBaseDelay(time.Millisecond))

	var exhausted *ExhaustedError
	require.ErrorAs(t, err, &exhausted)
	assert.Equal(t, 2, exhausted.Attempts)

	var status statusErr
	require.ErrorAs(t, err, &status)
	assert.Equal(t, 429, status.HTTPStatus())
}

func TestDo_NonRetryableSurfacesImmediately(t *testing.T) {
	calls := 0
	boom := statusErr(400)
	err := Do(context.Background(), func() error {
		calls++
		return boom
	}, WithBaseDelay(time.Millisecond))

	assert.Equal(t, boom, err)
	assert.NotErrorIs(t, err, ErrExhausted)
	assert.Equal(t, 1, calls)
}

func TestDo_RecoversAfterTransientFailures(t *testing.T) {
	calls := 0
	var hooks []int
	err := Do(context.Background(), func() error {
		calls++
		if calls < 3 {
			return syscall.ECONNRESET
		}
		return nil
	},
		WithBaseDelay(time.Millisecond),
		WithOnRetry(func(attempt int, _ time.Duration, _ error) {
			hooks = append(hooks, attempt)
		}),
	)

	require.NoError(t, err)
	assert.Equal(t, 3, calls)
	assert.Equal(t, []int{1, 2}, hooks)
}

func TestDo_ContextCancelledDuringWait(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	calls := 0
	err := Do(ctx, func() error {
		calls++
		return statusErr(500)
	}, WithMaxAttempts(5), WithBaseDelay(time.Second))

	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Equal(t, 1, calls)
}

func TestDoValue_ReturnsResult(t *testing.T) {
	calls := 0
	v, err := DoValue(context.Background(), func() (string, error) {
		calls++
		if calls == 1 {
			return "", io.ErrUnexpectedEOF
		}
		return "ok", nil
	}, WithBaseDelay(time.Millisecond))

	require.NoError(t, err)
	assert.Equal(t, "ok", v)
}

func TestBackoff(t *testing.T) {
	cfg := Config{BaseDelay: time.Second, MaxDelay: 10 * time.Second, Multiplier: 2}

	tests := []struct {
		k    int
		want time.Duration
	}{
		{1, time.Second},
		{2, 2 * time.Second},
		{3, 4 * time.Second},
		{4, 8 * time.Second},
		{5, 10 * time.Second},
		{60, 10 * time.Second},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, cfg.Backoff(tt.k), "k=%d", tt.k)
	}
}

func TestDefaultIsRetryable(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"500", statusErr(500), true},
		{"503 wrapped", fmt.Errorf("call: %w", statusErr(503)), true},
		{"429", statusErr(429), true},
		{"404", statusErr(404), false},
		{"401", statusErr(401), false},
		{"conn reset", syscall.ECONNRESET, true},
		{"conn refused", &net.OpError{Op: "dial", Err: syscall.ECONNREFUSED}, true},
		{"dns", &net.DNSError{Err: "no such host", Name: "bank", IsNotFound: true}, true},
		{"unexpected eof", io.ErrUnexpectedEOF, true},
		{"cancelled", context.Canceled, false},
		{"plain", errors.New("bad input"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DefaultIsRetryable(tt.err))
		})
	}
}
