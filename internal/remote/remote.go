// Package remote holds the plumbing shared by the outbound API clients.
package remote

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/grachmannico95/fiscal-bridge/internal/domain"
	"github.com/grachmannico95/fiscal-bridge/internal/metrics"
	"github.com/grachmannico95/fiscal-bridge/pkg/circuit"
	"github.com/grachmannico95/fiscal-bridge/pkg/logger"
	"github.com/grachmannico95/fiscal-bridge/pkg/retry"
)

// MaxBodySize caps how much of a response body is read.
const MaxBodySize = 16 << 20

const maxErrorBody = 512

// RetryOptions builds the retry settings for one operation, logging and
// counting each scheduled retry.
func RetryOptions(ctx context.Context, log *logger.Logger, m *metrics.Metrics, op string, cfg retry.Config) []retry.Option {
	return []retry.Option{
		retry.WithConfig(cfg),
		retry.WithOnRetry(func(attempt int, delay time.Duration, err error) {
			log.Warn(ctx, "Retrying remote call",
				"operation", op,
				"attempt", attempt,
				"delay_ms", delay.Milliseconds(),
				"error", err.Error(),
			)
			m.IncRetry(op)
		}),
	}
}

// ReadBody reads the whole body as raw bytes and closes it.
func ReadBody(resp *http.Response) ([]byte, error) {
	defer resp.Body.Close()
	body, err := io.ReadAll(io.LimitReader(resp.Body, MaxBodySize))
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}
	return body, nil
}

// NewRemoteError builds a RemoteError with a bounded copy of the body.
func NewRemoteError(service, op string, status int, body string) *domain.RemoteError {
	if len(body) > maxErrorBody {
		body = body[:maxErrorBody]
	}
	return &domain.RemoteError{Service: service, Op: op, StatusCode: status, Body: body}
}

// Unavailable maps exhausted retries and breaker rejections to
// domain.ErrServiceUnavailable, keeping the original chain.
func Unavailable(err error) error {
	if err == nil || errors.Is(err, domain.ErrServiceUnavailable) {
		return err
	}
	if errors.Is(err, retry.ErrExhausted) || errors.Is(err, circuit.ErrOpen) {
		return fmt.Errorf("%w: %w", domain.ErrServiceUnavailable, err)
	}
	return err
}

// IsServiceFailure reports whether err says something about the health of
// the remote service rather than about the caller's request.
func IsServiceFailure(err error) bool {
	if err == nil || errors.Is(err, context.Canceled) {
		return false
	}
	if errors.Is(err, retry.ErrExhausted) || errors.Is(err, domain.ErrServiceUnavailable) {
		return true
	}
	return retry.DefaultIsRetryable(err)
}
