package bank

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/grachmannico95/fiscal-bridge/internal/domain"
	"github.com/grachmannico95/fiscal-bridge/internal/metrics"
	"github.com/grachmannico95/fiscal-bridge/internal/remote"
	"github.com/grachmannico95/fiscal-bridge/pkg/logger"
	"github.com/grachmannico95/fiscal-bridge/pkg/ratelimit"
	"github.com/grachmannico95/fiscal-bridge/pkg/retry"
)

const (
	serviceName      = "bank"
	opFetchPage      = "bank.fetch_page"
	transactionsPath = "/statements/transactions"
	queryDateLayout  = "02-01-2006"
)

type Config struct {
	BaseURL     string
	PageLimit   int
	MaxPages    int
	Location    *time.Location
	HTTPTimeout time.Duration
	Retry       retry.Config
	RateLimit   ratelimit.Policy
}

// FetchRequest names a statement range by calendar day. Only the year,
// month and day of StartDate and EndDate are sent; their zone is ignored.
type FetchRequest struct {
	MerchantID string
	Token      string
	StartDate  time.Time
	EndDate    time.Time
}

// Client reads incoming credit payments from the bank statement API.
type Client struct {
	cfg        Config
	httpClient *http.Client
	limiter    *ratelimit.Limiter
	logger     *logger.Logger
	metrics    *metrics.Metrics
	now        func() time.Time
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

func WithClock(now func() time.Time) Option {
	return func(c *Client) {
		c.now = now
	}
}

// WithLimiter throttles outbound page requests per merchant.
func WithLimiter(l *ratelimit.Limiter) Option {
	return func(c *Client) {
		c.limiter = l
	}
}

func New(cfg Config, log *logger.Logger, m *metrics.Metrics, opts ...Option) *Client {
	if cfg.PageLimit <= 0 {
		cfg.PageLimit = 100
	}
	if cfg.MaxPages <= 0 {
		cfg.MaxPages = 100
	}
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}
	if cfg.HTTPTimeout <= 0 {
		cfg.HTTPTimeout = 30 * time.Second
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")

	c := &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.HTTPTimeout},
		logger:     log,
		metrics:    m,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// FetchPayments walks every statement page for the range and returns the
// incoming credit transactions as canonical payments. Pages are requested
// strictly in order since each cursor comes from the previous response.
func (c *Client) FetchPayments(ctx context.Context, req FetchRequest) ([]domain.CanonicalPayment, error) {
	if req.MerchantID == "" || req.Token == "" {
		return nil, fmt.Errorf("%w: merchant id and token are required", domain.ErrInvalidInput)
	}
	if req.EndDate.Before(req.StartDate) {
		return nil, fmt.Errorf("%w: end date before start date", domain.ErrInvalidInput)
	}

	c.logger.Info(ctx, "Fetching bank statement",
		"start_date", req.StartDate.Format(queryDateLayout),
		"end_date", req.EndDate.Format(queryDateLayout),
	)

	var all []rawTransaction
	cursor := ""
	pages := 0

	for {
		if err := c.throttle(ctx, req.MerchantID); err != nil {
			return nil, err
		}

		page, err := retry.DoValue(ctx, func() (*statementPage, error) {
			return c.fetchPage(ctx, req, cursor)
		}, remote.RetryOptions(ctx, c.logger, c.metrics, opFetchPage, c.cfg.Retry)...)
		if err != nil {
			c.logger.Error(ctx, "Failed to fetch statement page",
				"page", pages+1,
				"error", err,
			)
			return nil, remote.Unavailable(err)
		}

		pages++
		c.metrics.IncPagesFetched()
		all = append(all, page.Transactions...)

		if !page.ExistNextPage {
			break
		}

		if pages >= c.cfg.MaxPages {
			c.logger.Warn(ctx, "Statement page ceiling reached, returning partial result",
				"max_pages", c.cfg.MaxPages,
				"transactions", len(all),
			)
			c.metrics.IncPageCeilingHit()
			break
		}

		next := page.NextPageID.String()
		if next == "" {
			return nil, fmt.Errorf("%w: next page announced without cursor", domain.ErrProtocol)
		}

		cursor = next
	}

	payments := c.canonicalize(ctx, all)

	c.logger.Info(ctx, "Bank statement fetched",
		"pages", pages,
		"transactions", len(all),
		"incoming_payments", len(payments),
	)

	return payments, nil
}

func (c *Client) canonicalize(ctx context.Context, txs []rawTransaction) []domain.CanonicalPayment {
	payments := make([]domain.CanonicalPayment, 0, len(txs))
	for _, tx := range txs {
		if !tx.isIncomingCredit() {
			continue
		}

		raw := tx.dateTime()
		date, ok := parseDateTime(raw, c.cfg.Location)
		if !ok {
			date = c.now().In(c.cfg.Location)
			c.logger.Warn(ctx, "Unparseable transaction date, using current time",
				"external_id", tx.externalID(),
				"raw_date", raw,
			)
			c.metrics.IncDateFallback()
		}

		payments = append(payments, tx.canonical(date))
	}
	return payments
}

func (c *Client) throttle(ctx context.Context, merchantID string) error {
	if c.limiter == nil || c.cfg.RateLimit.MaxRequests <= 0 {
		return nil
	}

	for {
		res := c.limiter.Allow(serviceName+":"+merchantID, c.cfg.RateLimit)
		if res.Allowed {
			return nil
		}

		wait := res.ResetAt.Sub(c.now())
		if wait <= 0 {
			wait = time.Millisecond
		}
		c.logger.Warn(ctx, "Outbound bank rate limit reached, waiting for next window",
			"wait_ms", wait.Milliseconds(),
		)

		timer := time.NewTimer(wait)
		select {
		case <-timer.C:
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		}
	}
}

func (c *Client) fetchPage(ctx context.Context, req FetchRequest, cursor string) (*statementPage, error) {
	httpReq, err := c.newPageRequest(ctx, req, cursor)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("bank request: %w", err)
	}

	raw, err := remote.ReadBody(resp)
	if err != nil {
		return nil, err
	}

	body, err := decodeBody(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: decode body: %v", domain.ErrProtocol, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		remoteErr := remote.NewRemoteError(serviceName, "fetch statement", resp.StatusCode, string(body))
		switch {
		case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
			return nil, fmt.Errorf("%w: %w", domain.ErrAuth, remoteErr)
		case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500:
			return nil, remoteErr
		default:
			return nil, fmt.Errorf("%w: %w", domain.ErrProtocol, remoteErr)
		}
	}

	var page statementPage
	if err := json.Unmarshal(body, &page); err != nil {
		return nil, fmt.Errorf("%w: parse statement: %v", domain.ErrProtocol, err)
	}
	if status := page.Status.String(); status != statusSuccess {
		return nil, fmt.Errorf("%w: statement status %q", domain.ErrProtocol, status)
	}

	return &page, nil
}

func (c *Client) newPageRequest(ctx context.Context, req FetchRequest, cursor string) (*http.Request, error) {
	start := req.StartDate.Format(queryDateLayout)
	end := req.EndDate.Format(queryDateLayout)

	q := url.Values{}
	q.Set("startDate", start)
	if cursor != "" {
		q.Set("followId", cursor)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.BaseURL+transactionsPath+"?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("build bank request: %w", err)
	}

	httpReq.Header.Set("Id", req.MerchantID)
	httpReq.Header.Set("Token", req.Token)
	httpReq.Header.Set("startDate", start)
	httpReq.Header.Set("endDate", end)
	httpReq.Header.Set("limit", strconv.Itoa(c.cfg.PageLimit))
	httpReq.Header.Set("Accept", "application/json")

	return httpReq, nil
}
