package ratelimit

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

type LimiterSuite struct {
	suite.Suite
	now     time.Time
	limiter *Limiter
}

func TestLimiterSuite(t *testing.T) {
	suite.Run(t, new(LimiterSuite))
}

func (s *LimiterSuite) SetupTest() {
	s.now = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	s.limiter = New(WithClock(func() time.Time { return s.now }))
}

func (s *LimiterSuite) advance(d time.Duration) {
	s.now = s.now.Add(d)
}

func (s *LimiterSuite) TestFourthRequestInWindowRejected() {
	for i := 1; i <= 3; i++ {
		res := s.limiter.Check("10.0.0.1", time.Second, 3)
		s.True(res.Allowed, "request %d", i)
		s.Equal(3-i, res.Remaining)
		s.Equal(3, res.Limit)
	}

	res := s.limiter.Check("10.0.0.1", time.Second, 3)
	s.False(res.Allowed)
	s.Equal(0, res.Remaining)
	s.Equal(s.now.Add(time.Second), res.ResetAt)
}

func (s *LimiterSuite) TestNewWindowAfterExpiry() {
	for i := 0; i < 4; i++ {
		s.limiter.Check("10.0.0.1", time.Second, 3)
	}

	s.advance(time.Second + time.Millisecond)

	res := s.limiter.Check("10.0.0.1", time.Second, 3)
	s.True(res.Allowed)
	s.Equal(2, res.Remaining)
	s.Equal(s.now.Add(time.Second), res.ResetAt)
}

func (s *LimiterSuite) TestWindowBoundaryIsInclusive() {
	s.limiter.Check("a", time.Second, 1)
	s.advance(time.Second)

	res := s.limiter.Check("a", time.Second, 1)
	s.False(res.Allowed, "window only expires once now is past reset_at")
}

func (s *LimiterSuite) TestIdentifiersAreIndependent() {
	s.limiter.Check("a", time.Minute, 1)
	s.False(s.limiter.Check("a", time.Minute, 1).Allowed)
	s.True(s.limiter.Check("b", time.Minute, 1).Allowed)
}

func (s *LimiterSuite) TestSweepRemovesExpiredOnly() {
	s.limiter.Check("short", time.Second, 5)
	s.limiter.Check("long", time.Hour, 5)
	s.Equal(2, s.limiter.Len())

	s.advance(2 * time.Second)
	s.Equal(1, s.limiter.Sweep())
	s.Equal(1, s.limiter.Len())
}

func (s *LimiterSuite) TestReset() {
	s.limiter.Check("a", time.Minute, 1)
	s.limiter.Reset("a")
	s.True(s.limiter.Check("a", time.Minute, 1).Allowed)
}

func (s *LimiterSuite) TestRetryAfter() {
	res := s.limiter.Allow("a", Policy{Window: 1500 * time.Millisecond, MaxRequests: 1})
	s.Equal(2, res.RetryAfter(s.now))
	s.Equal(1, res.RetryAfter(s.now.Add(time.Hour)))
}

func (s *LimiterSuite) TestConcurrentChecksDoNotLoseIncrements() {
	limiter := New()
	var wg sync.WaitGroup
	var mu sync.Mutex
	allowed := 0

	for i := 0; i < 500; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if limiter.Check("shared", time.Hour, 100).Allowed {
				mu.Lock()
				allowed++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	s.Equal(100, allowed)
	res := limiter.Check("shared", time.Hour, 100)
	s.False(res.Allowed)
}

func (s *LimiterSuite) TestRunSweeperStopsWithContext() {
	limiter := New()
	for i := 0; i < 3; i++ {
		limiter.Check(fmt.Sprintf("id-%d", i), time.Millisecond, 1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	swept := make(chan int, 10)
	done := make(chan struct{})
	go func() {
		limiter.RunSweeper(ctx, 5*time.Millisecond, func(n int) {
			select {
			case swept <- n:
			default:
			}
		})
		close(done)
	}()

	s.Eventually(func() bool { return limiter.Len() == 0 }, time.Second, 5*time.Millisecond)
	cancel()
	<-done
	s.NotEmpty(swept)
}

func (s *LimiterSuite) TestRunSweeperNonPositiveIntervalUsesDefault() {
	limiter := New()

	for _, interval := range []time.Duration{0, -time.Second} {
		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan struct{})
		go func() {
			defer close(done)
			limiter.RunSweeper(ctx, interval, nil)
		}()

		cancel()
		select {
		case <-done:
		case <-time.After(time.Second):
			s.Failf("sweeper did not stop", "interval %s", interval)
		}
	}
}
