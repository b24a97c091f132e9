package eventbus

import (
	"context"
	"fmt"

	"github.com/grachmannico95/fiscal-bridge/internal/domain"
	"github.com/grachmannico95/fiscal-bridge/internal/metrics"
	"github.com/grachmannico95/fiscal-bridge/pkg/logger"
)

// PaymentConsumer stores payments fetched from the bank. Storage is keyed by
// company and external id, so replaying an event or re-syncing the same
// range never creates duplicates.
type PaymentConsumer struct {
	repo        domain.Repository
	logger      *logger.Logger
	metrics     *metrics.Metrics
	workerCount int
}

func NewPaymentConsumer(repo domain.Repository, log *logger.Logger, m *metrics.Metrics, workerCount int) *PaymentConsumer {
	if workerCount < 1 {
		workerCount = 1
	}
	return &PaymentConsumer{
		repo:        repo,
		logger:      log,
		metrics:     m,
		workerCount: workerCount,
	}
}

func (pc *PaymentConsumer) Consume(ctx context.Context, event Event) error {
	// Check idempotency
	processed, err := pc.repo.IsEventProcessed(ctx, event.ID)
	if err != nil {
		pc.logger.Error(ctx, "Failed to check event processed status",
			"event_id", event.ID,
			"error", err,
		)
		return err
	}

	if processed {
		pc.logger.Debug(ctx, "Event already processed, skipping",
			"event_id", event.ID,
		)
		return nil
	}

	payload, ok := event.Payload.(PaymentFetchedEvent)
	if !ok {
		pc.logger.Error(ctx, "Invalid payload type for payment event",
			"event_id", event.ID,
		)
		return fmt.Errorf("%w: %T", ErrInvalidPayload, event.Payload)
	}

	ctx = logger.WithCompanyID(ctx, payload.CompanyID)

	payment, created, err := pc.repo.UpsertPayment(ctx, payload.CompanyID, payload.Payment)
	if err != nil {
		pc.logger.Error(ctx, "Failed to store payment",
			"event_id", event.ID,
			"external_id", payload.Payment.ExternalID,
			"error", err,
		)
		return err
	}

	err = pc.repo.MarkEventProcessed(ctx, event.ID)
	if err != nil {
		pc.logger.Error(ctx, "Failed to mark event as processed",
			"event_id", event.ID,
			"error", err,
		)
		return err
	}

	if created {
		pc.metrics.IncPaymentsStored()
	}

	pc.logger.Debug(logger.WithPaymentID(ctx, payment.ID), "Payment stored",
		"event_id", event.ID,
		"sync_id", payload.SyncID,
		"external_id", payload.Payment.ExternalID,
		"created", created,
	)

	return nil
}

func (pc *PaymentConsumer) GetWorkerCount() int {
	return pc.workerCount
}
