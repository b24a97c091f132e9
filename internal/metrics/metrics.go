package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the counters for the external integrations. The lossy
// fallbacks of the bank client are reported here as well as in the log.
type Metrics struct {
	BankDateFallbacks   prometheus.Counter
	BankPageCeilingHits prometheus.Counter
	BankPagesFetched    prometheus.Counter
	RetryAttempts       *prometheus.CounterVec
	CircuitTransitions  *prometheus.CounterVec
	RateLimitRejections *prometheus.CounterVec
	ReceiptsIssued      *prometheus.CounterVec
	PaymentsStored      prometheus.Counter
}

// New registers all metrics on reg. Tests pass prometheus.NewRegistry().
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		BankDateFallbacks: f.NewCounter(prometheus.CounterOpts{
			Name: "fiscal_bridge_bank_date_fallbacks_total",
			Help: "Bank transactions whose date could not be parsed and was replaced by the current time",
		}),
		BankPageCeilingHits: f.NewCounter(prometheus.CounterOpts{
			Name: "fiscal_bridge_bank_page_ceiling_hits_total",
			Help: "Statement fetches stopped early at the page safety ceiling",
		}),
		BankPagesFetched: f.NewCounter(prometheus.CounterOpts{
			Name: "fiscal_bridge_bank_pages_fetched_total",
			Help: "Statement pages fetched from the bank",
		}),
		RetryAttempts: f.NewCounterVec(prometheus.CounterOpts{
			Name: "fiscal_bridge_retry_attempts_total",
			Help: "Retries scheduled after a transient failure, by operation",
		}, []string{"operation"}),
		CircuitTransitions: f.NewCounterVec(prometheus.CounterOpts{
			Name: "fiscal_bridge_circuit_transitions_total",
			Help: "Circuit breaker state transitions",
		}, []string{"breaker", "to"}),
		RateLimitRejections: f.NewCounterVec(prometheus.CounterOpts{
			Name: "fiscal_bridge_ratelimit_rejections_total",
			Help: "Requests rejected by the rate limiter, by limit class",
		}, []string{"class"}),
		ReceiptsIssued: f.NewCounterVec(prometheus.CounterOpts{
			Name: "fiscal_bridge_receipts_issued_total",
			Help: "Fiscal receipts returned by the fiscal API, by status",
		}, []string{"status"}),
		PaymentsStored: f.NewCounter(prometheus.CounterOpts{
			Name: "fiscal_bridge_payments_stored_total",
			Help: "New payments stored after a statement sync",
		}),
	}
}

// NewNop returns metrics bound to a private registry.
func NewNop() *Metrics {
	return New(prometheus.NewRegistry())
}

func (m *Metrics) IncDateFallback() {
	m.BankDateFallbacks.Inc()
}

func (m *Metrics) IncPageCeilingHit() {
	m.BankPageCeilingHits.Inc()
}

func (m *Metrics) IncPagesFetched() {
	m.BankPagesFetched.Inc()
}

func (m *Metrics) IncRetry(operation string) {
	m.RetryAttempts.WithLabelValues(operation).Inc()
}

func (m *Metrics) IncCircuitTransition(breaker, to string) {
	m.CircuitTransitions.WithLabelValues(breaker, to).Inc()
}

func (m *Metrics) IncRateLimitRejection(class string) {
	m.RateLimitRejections.WithLabelValues(class).Inc()
}

func (m *Metrics) IncReceiptIssued(status string) {
	m.ReceiptsIssued.WithLabelValues(status).Inc()
}

func (m *Metrics) IncPaymentsStored() {
	m.PaymentsStored.Inc()
}
