package fiscal

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/grachmannico95/fiscal-bridge/internal/domain"
	"github.com/grachmannico95/fiscal-bridge/internal/metrics"
	"github.com/grachmannico95/fiscal-bridge/internal/remote"
	"github.com/grachmannico95/fiscal-bridge/pkg/circuit"
	"github.com/grachmannico95/fiscal-bridge/pkg/logger"
	"github.com/grachmannico95/fiscal-bridge/pkg/retry"
)

const (
	serviceName = "fiscal"

	opSignIn        = "fiscal.signin"
	opCurrentShift  = "fiscal.current_shift"
	opOpenShift     = "fiscal.open_shift"
	opCreateReceipt = "fiscal.create_receipt"

	headerLicenseKey = "X-License-Key"
)

type Config struct {
	BaseURL          string
	ReceiptBaseURL   string
	HTTPTimeout      time.Duration
	Retry            retry.Config
	BreakerThreshold int
	BreakerTimeout   time.Duration
}

// Client drives the sign-in, shift and receipt workflow of the fiscal API.
// A single circuit breaker guards every call the client makes.
type Client struct {
	cfg        Config
	httpClient *http.Client
	breaker    *circuit.Breaker
	logger     *logger.Logger
	metrics    *metrics.Metrics
	newID      func() string

	breakerOpts []circuit.Option
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithBreakerOptions appends options to the client's breaker.
func WithBreakerOptions(opts ...circuit.Option) Option {
	return func(c *Client) {
		c.breakerOpts = append(c.breakerOpts, opts...)
	}
}

func WithIDGenerator(fn func() string) Option {
	return func(c *Client) {
		c.newID = fn
	}
}

func New(cfg Config, log *logger.Logger, m *metrics.Metrics, opts ...Option) *Client {
	if cfg.HTTPTimeout <= 0 {
		cfg.HTTPTimeout = 30 * time.Second
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	cfg.ReceiptBaseURL = strings.TrimRight(cfg.ReceiptBaseURL, "/")
	if cfg.ReceiptBaseURL == "" {
		cfg.ReceiptBaseURL = cfg.BaseURL
	}

	c := &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.HTTPTimeout},
		logger:     log,
		metrics:    m,
		newID:      uuid.NewString,
	}
	for _, opt := range opts {
		opt(c)
	}

	breakerOpts := []circuit.Option{
		circuit.WithIsFailure(remote.IsServiceFailure),
		circuit.WithStateChangeHook(func(name string, from, to circuit.State) {
			log.Warn(context.Background(), "Circuit breaker state changed",
				"breaker", name,
				"from", from.String(),
				"to", to.String(),
			)
			m.IncCircuitTransition(name, to.String())
		}),
	}
	if cfg.BreakerThreshold > 0 {
		breakerOpts = append(breakerOpts, circuit.WithFailureThreshold(cfg.BreakerThreshold))
	}
	if cfg.BreakerTimeout > 0 {
		breakerOpts = append(breakerOpts, circuit.WithTimeout(cfg.BreakerTimeout))
	}
	c.breaker = circuit.New(serviceName, append(breakerOpts, c.breakerOpts...)...)

	return c
}

func (c *Client) BreakerState() circuit.State {
	return c.breaker.State()
}

// IssueReceipt signs in, makes sure a shift is open and submits the receipt.
// Every invocation authenticates again; tokens are not cached.
func (c *Client) IssueReceipt(ctx context.Context, login, password, licenseKey string, req domain.ReceiptRequest) (*domain.IssuedReceipt, error) {
	if len(req.Goods) == 0 || len(req.Payments) == 0 {
		return nil, fmt.Errorf("%w: receipt needs at least one good and one payment", domain.ErrInvalidInput)
	}

	c.logger.Info(ctx, "Starting receipt issuance", "cashier_login", login)

	token, err := c.SignIn(ctx, login, password)
	if err != nil {
		return nil, err
	}

	shift, err := c.CurrentShift(ctx, token)
	if err != nil {
		return nil, err
	}

	if shift.IsOpen() {
		c.logger.Info(ctx, "Using active shift", "shift_id", shift.ID)
	} else {
		c.logger.Info(ctx, "No active shift, opening a new one")
		shift, err = c.OpenShift(ctx, token, licenseKey)
		if err != nil {
			return nil, err
		}
	}

	receipt, err := c.CreateReceipt(ctx, token, licenseKey, req)
	if err != nil {
		return nil, err
	}

	c.logger.Info(ctx, "Receipt issuance complete",
		"receipt_id", receipt.ID,
		"status", string(receipt.Status),
		"shift_id", shift.ID,
	)
	return receipt, nil
}

func (c *Client) SignIn(ctx context.Context, login, password string) (string, error) {
	var out signInResponse
	err := c.call(ctx, opSignIn, func() error {
		return c.doJSON(ctx, http.MethodPost, c.cfg.BaseURL+"/cashier/signin", "", "",
			signInRequest{Login: login, Password: password}, &out, signInStatus)
	})
	if err != nil {
		return "", err
	}
	if out.AccessToken == "" {
		return "", fmt.Errorf("%w: sign-in response without access token", domain.ErrProtocol)
	}
	return out.AccessToken, nil
}

// CurrentShift returns the cashier's current shift, or nil when there is none.
func (c *Client) CurrentShift(ctx context.Context, token string) (*domain.Shift, error) {
	var (
		out   shiftResponse
		found = true
	)
	err := c.call(ctx, opCurrentShift, func() error {
		err := c.doJSON(ctx, http.MethodGet, c.cfg.BaseURL+"/cashier/shift", token, "", nil, &out, shiftStatus)
		var remoteErr *domain.RemoteError
		if errors.As(err, &remoteErr) && remoteErr.StatusCode == http.StatusNotFound {
			found = false
			return nil
		}
		return err
	})
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	return out.toDomain(), nil
}

func (c *Client) OpenShift(ctx context.Context, token, licenseKey string) (*domain.Shift, error) {
	var out shiftResponse
	err := c.call(ctx, opOpenShift, func() error {
		return c.doJSON(ctx, http.MethodPost, c.cfg.BaseURL+"/shifts", token, licenseKey, nil, &out, shiftStatus)
	})
	if err != nil {
		return nil, err
	}
	if out.ID == "" {
		return nil, fmt.Errorf("%w: open shift response without id", domain.ErrShift)
	}

	shift := out.toDomain()
	c.logger.Info(ctx, "Shift opened", "shift_id", shift.ID, "status", string(shift.Status))
	return shift, nil
}

// CreateReceipt submits a sell receipt to the receipt host. Amounts in req
// must already be in minor units.
func (c *Client) CreateReceipt(ctx context.Context, token, licenseKey string, req domain.ReceiptRequest) (*domain.IssuedReceipt, error) {
	body := toSellRequest(c.newID(), req)

	var out receiptResponse
	err := c.call(ctx, opCreateReceipt, func() error {
		return c.doJSON(ctx, http.MethodPost, c.cfg.ReceiptBaseURL+"/receipts/sell", token, licenseKey, body, &out, receiptStatus)
	})
	if err != nil {
		return nil, err
	}
	if out.ID == "" {
		return nil, fmt.Errorf("%w: receipt response without id, status=%q", domain.ErrProtocol, out.Status)
	}
	if !validReceiptStatus(out.Status) {
		c.logger.Error(ctx, "Receipt accepted with unrecognized status",
			"remote_receipt_id", out.ID,
			"status", out.Status,
		)
		return nil, &domain.UnrecognizedReceiptError{RemoteReceiptID: out.ID, Status: out.Status}
	}

	receipt := out.toDomain()
	c.metrics.IncReceiptIssued(string(receipt.Status))
	return receipt, nil
}

// call runs one workflow step through the breaker, retrying the HTTP
// exchange inside it.
func (c *Client) call(ctx context.Context, op string, fn func() error) error {
	err := c.breaker.Execute(ctx, func(ctx context.Context) error {
		return retry.Do(ctx, fn, remote.RetryOptions(ctx, c.logger, c.metrics, op, c.cfg.Retry)...)
	})
	if err != nil {
		c.logger.Error(ctx, "Fiscal API call failed",
			"operation", op,
			"breaker_state", c.breaker.State().String(),
			"error", err,
		)
		return remote.Unavailable(err)
	}
	return nil
}

// statusMapper classifies a non-2xx answer. Returning the RemoteError
// unwrapped leaves it retryable when the status is 5xx or 429.
type statusMapper func(*domain.RemoteError) error

func transient(e *domain.RemoteError) bool {
	return e.StatusCode == http.StatusTooManyRequests || e.StatusCode >= 500
}

func signInStatus(e *domain.RemoteError) error {
	switch {
	case transient(e):
		return e
	case e.StatusCode == http.StatusUnauthorized,
		e.StatusCode == http.StatusForbidden,
		e.StatusCode == http.StatusUnprocessableEntity:
		return fmt.Errorf("%w: %w", domain.ErrAuth, e)
	default:
		return fmt.Errorf("%w: %w", domain.ErrProtocol, e)
	}
}

func shiftStatus(e *domain.RemoteError) error {
	switch {
	case transient(e):
		return e
	case e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden:
		return fmt.Errorf("%w: %w", domain.ErrAuth, e)
	default:
		return fmt.Errorf("%w: %w", domain.ErrShift, e)
	}
}

func receiptStatus(e *domain.RemoteError) error {
	switch {
	case transient(e):
		return e
	case e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden:
		return fmt.Errorf("%w: %w", domain.ErrAuth, e)
	default:
		return fmt.Errorf("%w: %w", domain.ErrReceipt, e)
	}
}

func (c *Client) doJSON(ctx context.Context, method, url, token, licenseKey string, in, out any, mapStatus statusMapper) error {
	var body *bytes.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(payload)
	} else {
		body = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return fmt.Errorf("build fiscal request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if licenseKey != "" {
		req.Header.Set(headerLicenseKey, licenseKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("fiscal request: %w", err)
	}

	raw, err := remote.ReadBody(resp)
	if err != nil {
		return err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return mapStatus(remote.NewRemoteError(serviceName, method+" "+req.URL.Path, resp.StatusCode, string(raw)))
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("%w: parse fiscal response: %v", domain.ErrProtocol, err)
	}
	return nil
}
