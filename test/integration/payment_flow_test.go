package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"

	"github.com/grachmannico95/fiscal-bridge/internal/bank"
	"github.com/grachmannico95/fiscal-bridge/internal/config"
	"github.com/grachmannico95/fiscal-bridge/internal/eventbus"
	"github.com/grachmannico95/fiscal-bridge/internal/fiscal"
	"github.com/grachmannico95/fiscal-bridge/internal/handler"
	"github.com/grachmannico95/fiscal-bridge/internal/metrics"
	"github.com/grachmannico95/fiscal-bridge/internal/server"
	"github.com/grachmannico95/fiscal-bridge/internal/service"
	"github.com/grachmannico95/fiscal-bridge/internal/storage"
	"github.com/grachmannico95/fiscal-bridge/pkg/logger"
	"github.com/grachmannico95/fiscal-bridge/pkg/ratelimit"
	"github.com/grachmannico95/fiscal-bridge/pkg/retry"
	"github.com/grachmannico95/fiscal-bridge/pkg/vault"
)

const encryptionKey = "0123456789abcdef0123456789abcdef"

// stubBank serves two incoming credits and one debit on a single page,
// Windows-1251 encoded like the real statement API.
func stubBank(t *testing.T) *httptest.Server {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "merchant-1", r.Header.Get("Id"))
		assert.Equal(t, "bank-token", r.Header.Get("Token"))

		body, err := json.Marshal(map[string]any{
			"status":          "SUCCESS",
			"exist_next_page": false,
			"transactions": []map[string]any{
				{
					"ID": "1", "TRANTYPE": "C", "SUM_E": "150.00", "CCY": "UAH",
					"AUT_CNTR_NAM": "ІВАНЕНКО ІВАН", "OSND": "Оплата за рахунком 17",
					"DATE_TIME_DAT_OD_TIM_P": "10.01.2024 09:15:00",
				},
				{
					"ID": "2", "TRANTYPE": "C", "SUM_E": "75,25", "CCY": "UAH",
					"AUT_CNTR_NAM": "ТОВ Ромашка", "OSND": "Передплата",
					"DATE_TIME_DAT_OD_TIM_P": "12.01.2024 14:00:00",
				},
				{
					"ID": "3", "TRANTYPE": "D", "SUM_E": "20.00",
					"DATE_TIME_DAT_OD_TIM_P": "12.01.2024 15:00:00",
				},
			},
		})
		require.NoError(t, err)

		encoded, err := charmap.Windows1251.NewEncoder().Bytes(body)
		require.NoError(t, err)
		w.Header().Set("Content-Type", "application/json; charset=windows-1251")
		_, _ = w.Write(encoded)
	}))
	t.Cleanup(srv.Close)
	return srv
}

type stubFiscal struct {
	srv        *httptest.Server
	down       atomic.Bool
	requests   atomic.Int32
	sellCount  atomic.Int32
	receiptSeq atomic.Int32
}

func newStubFiscal(t *testing.T) *stubFiscal {
	f := &stubFiscal{}

	f.srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.requests.Add(1)
		if f.down.Load() {
			w.WriteHeader(http.StatusBadGateway)
			return
		}

		w.Header().Set("Content-Type", "application/json")

		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/cashier/signin":
			_ = json.NewEncoder(w).Encode(map[string]any{"access_token": "tok", "token_type": "bearer"})

		case r.Method == http.MethodGet && r.URL.Path == "/cashier/shift":
			w.WriteHeader(http.StatusNotFound)

		case r.Method == http.MethodPost && r.URL.Path == "/shifts":
			assert.Equal(t, "license-key", r.Header.Get("X-License-Key"))
			w.WriteHeader(http.StatusAccepted)
			_ = json.NewEncoder(w).Encode(map[string]any{"id": "shift-1", "status": "OPENED"})

		case r.Method == http.MethodPost && r.URL.Path == "/receipts/sell":
			f.sellCount.Add(1)
			n := f.receiptSeq.Add(1)
			w.WriteHeader(http.StatusCreated)
			_ = json.NewEncoder(w).Encode(map[string]any{
				"id":          fmt.Sprintf("rcpt-%d", n),
				"status":      "DONE",
				"fiscal_code": fmt.Sprintf("FC-%d", n),
				"created_at":  "2024-01-15T10:00:00+02:00",
			})

		default:
			t.Errorf("unexpected fiscal request %s %s", r.Method, r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	t.Cleanup(f.srv.Close)
	return f
}

func setupTestServer(t *testing.T, bankURL, fiscalURL string) (*httptest.Server, eventbus.EventBus) {
	log := logger.NewNop()
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)

	v, err := vault.NewFromString(encryptionKey)
	require.NoError(t, err)

	fastRetry := retry.Config{
		MaxAttempts: 2,
		BaseDelay:   time.Millisecond,
		MaxDelay:    5 * time.Millisecond,
		Multiplier:  2,
	}

	limiter := ratelimit.New()
	bankClient := bank.New(bank.Config{
		BaseURL:   bankURL,
		PageLimit: 100,
		MaxPages:  10,
		Location:  time.FixedZone("EET", 2*60*60),
		Retry:     fastRetry,
	}, log, m, bank.WithLimiter(limiter))

	fiscalClient := fiscal.New(fiscal.Config{
		BaseURL:          fiscalURL,
		Retry:            fastRetry,
		BreakerThreshold: 2,
		BreakerTimeout:   time.Minute,
	}, log, m)

	repo := storage.NewMemoryStore()

	bus := eventbus.New(log, &eventbus.Config{
		ChannelBuffer: 100,
		MaxRetries:    3,
	})
	err = bus.Subscribe(eventbus.EventTypePaymentFetched, eventbus.NewPaymentConsumer(repo, log, m, 2))
	require.NoError(t, err)
	require.NoError(t, bus.Start(context.Background()))

	handlers := server.Handlers{
		Company: handler.NewCompanyHandler(service.NewCompanyService(repo, v, log), log),
		Payment: handler.NewPaymentHandler(service.NewPaymentService(repo, bankClient, bus, v, log), log),
		Receipt: handler.NewReceiptHandler(service.NewReceiptService(repo, fiscalClient, v, log), log),
		Health:  handler.NewHealthHandler(fiscalClient.BreakerState),
	}

	cfg := &config.Config{
		Server: config.ServerConfig{
			Port: "8080",
			Host: "0.0.0.0",
		},
		RateLimit: config.RateLimitConfig{
			API:      config.LimitClass{Window: time.Minute, MaxRequests: 100},
			External: config.LimitClass{Window: time.Minute, MaxRequests: 5},
			Read:     config.LimitClass{Window: time.Minute, MaxRequests: 100},
		},
	}

	srv := server.New(cfg, log, limiter, m, reg, handlers)
	testServer := httptest.NewServer(srv.Handler())
	t.Cleanup(testServer.Close)

	return testServer, bus
}

func TestPaymentToReceiptFlow(t *testing.T) {
	fiscalStub := newStubFiscal(t)
	srv, bus := setupTestServer(t, stubBank(t).URL, fiscalStub.srv.URL)
	defer bus.Shutdown(context.Background())

	companyID := createCompany(t, srv.URL)

	// Sync January
	status, body := doJSON(t, http.MethodPost, srv.URL+"/companies/"+companyID+"/payments/sync",
		map[string]string{"start_date": "2024-01-01", "end_date": "2024-01-31"})
	require.Equal(t, http.StatusAccepted, status)
	assert.Equal(t, float64(2), body["fetched"])

	var items []any
	require.Eventually(t, func() bool {
		items = listPayments(t, srv.URL, companyID, "")
		return len(items) == 2
	}, 2*time.Second, 20*time.Millisecond)

	// Newest first
	newest := items[0].(map[string]any)
	assert.Equal(t, "PB_2", newest["external_id"])
	assert.Equal(t, "ТОВ Ромашка", newest["sender_name"])
	paymentID := newest["id"].(string)

	// Issue receipt
	status, body = doJSON(t, http.MethodPost, srv.URL+"/payments/"+paymentID+"/receipt", nil)
	require.Equal(t, http.StatusCreated, status)
	assert.Equal(t, "rcpt-1", body["remote_receipt_id"])
	assert.Equal(t, "DONE", body["status"])

	// Duplicate is rejected without reaching the fiscal API
	status, _ = doJSON(t, http.MethodPost, srv.URL+"/payments/"+paymentID+"/receipt", nil)
	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, int32(1), fiscalStub.sellCount.Load())

	status, body = doJSON(t, http.MethodGet, srv.URL+"/payments/"+paymentID+"/receipt", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "FC-1", body["fiscal_code"])

	pending := listPayments(t, srv.URL, companyID, "without_receipt=true")
	require.Len(t, pending, 1)
	assert.Equal(t, "PB_1", pending[0].(map[string]any)["external_id"])

	// Re-syncing the same range stores nothing new
	status, _ = doJSON(t, http.MethodPost, srv.URL+"/companies/"+companyID+"/payments/sync",
		map[string]string{"start_date": "2024-01-01", "end_date": "2024-01-31"})
	require.Equal(t, http.StatusAccepted, status)
	time.Sleep(200 * time.Millisecond)
	assert.Len(t, listPayments(t, srv.URL, companyID, ""), 2)
}

func TestReceiptFlow_FiscalOutage(t *testing.T) {
	fiscalStub := newStubFiscal(t)
	fiscalStub.down.Store(true)
	srv, bus := setupTestServer(t, stubBank(t).URL, fiscalStub.srv.URL)
	defer bus.Shutdown(context.Background())

	companyID := createCompany(t, srv.URL)
	status, _ := doJSON(t, http.MethodPost, srv.URL+"/companies/"+companyID+"/payments/sync",
		map[string]string{"start_date": "2024-01-01", "end_date": "2024-01-31"})
	require.Equal(t, http.StatusAccepted, status)

	var items []any
	require.Eventually(t, func() bool {
		items = listPayments(t, srv.URL, companyID, "")
		return len(items) == 2
	}, 2*time.Second, 20*time.Millisecond)
	paymentID := items[0].(map[string]any)["id"].(string)

	status, _ = doJSON(t, http.MethodPost, srv.URL+"/payments/"+paymentID+"/receipt", nil)
	assert.Equal(t, http.StatusServiceUnavailable, status)

	status, _ = doJSON(t, http.MethodPost, srv.URL+"/payments/"+paymentID+"/receipt", nil)
	assert.Equal(t, http.StatusServiceUnavailable, status)

	// Breaker is open now, the fiscal API is not called again
	calls := fiscalStub.requests.Load()
	status, _ = doJSON(t, http.MethodPost, srv.URL+"/payments/"+paymentID+"/receipt", nil)
	assert.Equal(t, http.StatusServiceUnavailable, status)
	assert.Equal(t, calls, fiscalStub.requests.Load())
	assert.Zero(t, fiscalStub.sellCount.Load())

	status, body := doJSON(t, http.MethodGet, srv.URL+"/health", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "open", body["fiscal_circuit"])
	assert.Equal(t, "degraded", body["status"])

	resp, err := http.Get(srv.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()
	metricsBody, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(metricsBody), `fiscal_bridge_circuit_transitions_total{breaker="fiscal",to="open"} 1`)
}

func TestSync_RateLimited(t *testing.T) {
	srv, bus := setupTestServer(t, stubBank(t).URL, newStubFiscal(t).srv.URL)
	defer bus.Shutdown(context.Background())

	companyID := createCompany(t, srv.URL)
	url := srv.URL + "/companies/" + companyID + "/payments/sync"
	req := map[string]string{"start_date": "2024-01-01", "end_date": "2024-01-31"}

	for i := 0; i < 5; i++ {
		status, _ := doJSON(t, http.MethodPost, url, req)
		require.Equal(t, http.StatusAccepted, status)
	}

	payload, err := json.Marshal(req)
	require.NoError(t, err)
	resp, err := http.Post(url, "application/json", bytes.NewReader(payload))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusTooManyRequests, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get("Retry-After"))
	assert.Equal(t, "0", resp.Header.Get("X-RateLimit-Remaining"))
}

func TestCompanyNotFound(t *testing.T) {
	srv, bus := setupTestServer(t, stubBank(t).URL, newStubFiscal(t).srv.URL)
	defer bus.Shutdown(context.Background())

	status, _ := doJSON(t, http.MethodGet, srv.URL+"/companies/nonexistent", nil)
	assert.Equal(t, http.StatusNotFound, status)

	status, _ = doJSON(t, http.MethodPost, srv.URL+"/companies/nonexistent/payments/sync",
		map[string]string{"start_date": "2024-01-01", "end_date": "2024-01-31"})
	assert.Equal(t, http.StatusNotFound, status)
}

func TestHealthCheck(t *testing.T) {
	srv, bus := setupTestServer(t, stubBank(t).URL, newStubFiscal(t).srv.URL)
	defer bus.Shutdown(context.Background())

	status, body := doJSON(t, http.MethodGet, srv.URL+"/health", nil)
	require.Equal(t, http.StatusOK, status)

	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, "closed", body["fiscal_circuit"])
	assert.NotEmpty(t, body["timestamp"])
}

func createCompany(t *testing.T, baseURL string) string {
	status, body := doJSON(t, http.MethodPost, baseURL+"/companies", map[string]string{
		"name":             "ФОП Петренко",
		"tax_id":           "3012345678",
		"bank_merchant_id": "merchant-1",
		"bank_token":       "bank-token",
		"cashier_login":    "cashier",
		"cashier_pin":      "1234",
		"license_key":      "license-key",
	})
	require.Equal(t, http.StatusCreated, status)
	assert.Equal(t, true, body["has_bank_credentials"])
	assert.Equal(t, true, body["has_fiscal_credentials"])
	assert.NotContains(t, fmt.Sprint(body), "bank-token")

	id, ok := body["id"].(string)
	require.True(t, ok)
	return id
}

func listPayments(t *testing.T, baseURL, companyID, query string) []any {
	status, body := doJSON(t, http.MethodGet, baseURL+"/companies/"+companyID+"/payments?"+query, nil)
	require.Equal(t, http.StatusOK, status)

	items, ok := body["items"].([]any)
	require.True(t, ok)
	return items
}

func doJSON(t *testing.T, method, url string, in any) (int, map[string]any) {
	var reader io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequest(method, url, reader)
	require.NoError(t, err)
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var result map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil && err != io.EOF {
		require.NoError(t, err)
	}
	return resp.StatusCode, result
}
