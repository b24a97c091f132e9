package eventbus

import (
	"time"

	"github.com/grachmannico95/fiscal-bridge/internal/domain"
)

type EventType string

const (
	EventTypePaymentFetched EventType = "payment_fetched"
)

type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	Payload   interface{} `json:"payload"`
	Timestamp time.Time   `json:"timestamp"`
	Retries   int         `json:"retries"`
}

// PaymentFetchedEvent carries one incoming payment read from a bank
// statement sync.
type PaymentFetchedEvent struct {
	SyncID    string                  `json:"sync_id"`
	CompanyID string                  `json:"company_id"`
	Payment   domain.CanonicalPayment `json:"payment"`
}
