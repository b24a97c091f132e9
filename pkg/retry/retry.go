package retry

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"net"
	"net/http"
	"syscall"
	"time"
)

// ErrExhausted marks a retryable failure that was still failing after the
// last allowed attempt. The last underlying error stays in the chain.
var ErrExhausted = errors.New("retries exhausted")

type Config struct {
	MaxAttempts int
	BaseDelay   time.Duration
	MaxDelay    time.Duration
	Multiplier  float64
	IsRetryable func(error) bool
	OnRetry     func(attempt int, delay time.Duration, err error)
}

type Option func(*Config)

func DefaultConfig() Config {
	return Config{
		MaxAttempts: 3,
		BaseDelay:   1 * time.Second,
		MaxDelay:    10 * time.Second,
		Multiplier:  2,
		IsRetryable: DefaultIsRetryable,
	}
}

func WithMaxAttempts(attempts int) Option {
	return func(c *Config) {
		c.MaxAttempts = attempts
	}
}

func WithBaseDelay(d time.Duration) Option {
	return func(c *Config) {
		c.BaseDelay = d
	}
}

func WithMaxDelay(d time.Duration) Option {
	return func(c *Config) {
		c.MaxDelay = d
	}
}

func WithMultiplier(m float64) Option {
	return func(c *Config) {
		c.Multiplier = m
	}
}

func WithRetryable(fn func(error) bool) Option {
	return func(c *Config) {
		c.IsRetryable = fn
	}
}

// WithOnRetry registers a hook called before each backoff wait.
func WithOnRetry(fn func(attempt int, delay time.Duration, err error)) Option {
	return func(c *Config) {
		c.OnRetry = fn
	}
}

// WithConfig replaces every setting at once; zero fields keep their defaults.
func WithConfig(cfg Config) Option {
	return func(c *Config) {
		if cfg.MaxAttempts > 0 {
			c.MaxAttempts = cfg.MaxAttempts
		}
		if cfg.BaseDelay > 0 {
			c.BaseDelay = cfg.BaseDelay
		}
		if cfg.MaxDelay > 0 {
			c.MaxDelay = cfg.MaxDelay
		}
		if cfg.Multiplier > 0 {
			c.Multiplier = cfg.Multiplier
		}
		if cfg.IsRetryable != nil {
			c.IsRetryable = cfg.IsRetryable
		}
		if cfg.OnRetry != nil {
			c.OnRetry = cfg.OnRetry
		}
	}
}

// Always treats every error as transient.
func Always(error) bool { return true }

type ExhaustedError struct {
	Attempts int
	Err      error
}

func (e *ExhaustedError) Error() string {
	return fmt.Sprintf("max retries (%d) exceeded: %v", e.Attempts, e.Err)
}

func (e *ExhaustedError) Unwrap() []error {
	return []error{ErrExhausted, e.Err}
}

func Do(ctx context.Context, fn func() error, opts ...Option) error {
	_, err := DoValue(ctx, func() (struct{}, error) {
		return struct{}{}, fn()
	}, opts...)
	return err
}

// DoValue runs fn until it succeeds, fails with a non-retryable error, or
// MaxAttempts is reached. Non-retryable errors are returned unchanged.
func DoValue[T any](ctx context.Context, fn func() (T, error), opts ...Option) (T, error) {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.MaxAttempts < 1 {
		cfg.MaxAttempts = 1
	}
	if cfg.IsRetryable == nil {
		cfg.IsRetryable = DefaultIsRetryable
	}

	var zero T
	for attempt := 1; ; attempt++ {
		result, err := fn()
		if err == nil {
			return result, nil
		}

		if ctx.Err() != nil || !cfg.IsRetryable(err) {
			return zero, err
		}

		if attempt >= cfg.MaxAttempts {
			return zero, &ExhaustedError{Attempts: cfg.MaxAttempts, Err: err}
		}

		delay := cfg.Backoff(attempt)
		if cfg.OnRetry != nil {
			cfg.OnRetry(attempt, delay, err)
		}

		timer := time.NewTimer(delay)
		select {
		case <-timer.C:
		case <-ctx.Done():
			timer.Stop()
			return zero, ctx.Err()
		}
	}
}

// Backoff returns the wait before retry k (k >= 1):
// min(BaseDelay * Multiplier^(k-1), MaxDelay).
func (c Config) Backoff(k int) time.Duration {
	if k < 1 {
		k = 1
	}
	mult := c.Multiplier
	if mult <= 0 {
		mult = 1
	}

	delay := float64(c.BaseDelay) * math.Pow(mult, float64(k-1))
	if c.MaxDelay > 0 && delay > float64(c.MaxDelay) {
		return c.MaxDelay
	}
	if delay > math.MaxInt64 {
		return time.Duration(math.MaxInt64)
	}
	return time.Duration(delay)
}

// DefaultIsRetryable accepts connection-level failures and remote errors
// reporting HTTP 5xx or 429 through an HTTPStatus() int method.
func DefaultIsRetryable(err error) bool {
	if err == nil || errors.Is(err, context.Canceled) {
		return false
	}

	var status interface{ HTTPStatus() int }
	if errors.As(err, &status) {
		code := status.HTTPStatus()
		return code == http.StatusTooManyRequests || (code >= 500 && code < 600)
	}

	if errors.Is(err, syscall.ECONNRESET) ||
		errors.Is(err, syscall.ECONNREFUSED) ||
		errors.Is(err, syscall.ECONNABORTED) ||
		errors.Is(err, syscall.EPIPE) ||
		errors.Is(err, io.ErrUnexpectedEOF) ||
		errors.Is(err, io.EOF) {
		return true
	}

	var netErr net.Error
	return errors.As(err, &netErr)
}
