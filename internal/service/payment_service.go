package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/grachmannico95/fiscal-bridge/internal/bank"
	"github.com/grachmannico95/fiscal-bridge/internal/domain"
	"github.com/grachmannico95/fiscal-bridge/internal/eventbus"
	"github.com/grachmannico95/fiscal-bridge/pkg/logger"
)

type BankClient interface {
	FetchPayments(ctx context.Context, req bank.FetchRequest) ([]domain.CanonicalPayment, error)
}

type SyncResult struct {
	SyncID    string    `json:"sync_id"`
	CompanyID string    `json:"company_id"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
	Fetched   int       `json:"fetched"`
}

type PaymentService interface {
	SyncPayments(ctx context.Context, companyID string, startDate, endDate time.Time) (*SyncResult, error)
	ListPayments(ctx context.Context, companyID string, page, perPage int, withoutReceipt bool) ([]domain.Payment, int, error)
}

type paymentService struct {
	repo     domain.Repository
	bank     BankClient
	eventBus eventbus.EventBus
	cipher   Cipher
	logger   *logger.Logger
}

func NewPaymentService(repo domain.Repository, bankClient BankClient, eventBus eventbus.EventBus, cipher Cipher, log *logger.Logger) PaymentService {
	return &paymentService{
		repo:     repo,
		bank:     bankClient,
		eventBus: eventBus,
		cipher:   cipher,
		logger:   log,
	}
}

// SyncPayments reads the company's incoming payments for the range from the
// bank and hands each one to the event bus for storage. It returns once all
// events are published; storage happens asynchronously.
func (s *paymentService) SyncPayments(ctx context.Context, companyID string, startDate, endDate time.Time) (*SyncResult, error) {
	ctx = logger.WithCompanyID(ctx, companyID)

	if endDate.Before(startDate) {
		return nil, fmt.Errorf("%w: end_date before start_date", domain.ErrInvalidInput)
	}

	company, err := s.repo.GetCompany(ctx, companyID)
	if err != nil {
		s.logger.Error(ctx, "Failed to get company",
			"error", err,
		)
		return nil, err
	}

	if !company.HasBankCredentials() {
		return nil, fmt.Errorf("%w: bank", domain.ErrCredentialsNotConfigured)
	}

	token, err := s.cipher.Decrypt(company.BankTokenEncrypted)
	if err != nil {
		s.logger.Error(ctx, "Failed to decrypt bank token",
			"error", err,
		)
		return nil, err
	}

	syncID := uuid.New().String()
	ctx = logger.WithTraceID(ctx, syncID)

	s.logger.Info(ctx, "Starting payment sync",
		"start_date", startDate.Format(time.DateOnly),
		"end_date", endDate.Format(time.DateOnly),
	)

	payments, err := s.bank.FetchPayments(ctx, bank.FetchRequest{
		MerchantID: company.BankMerchantID,
		Token:      token,
		StartDate:  startDate,
		EndDate:    endDate,
	})
	if err != nil {
		s.logger.Error(ctx, "Failed to fetch bank payments",
			"error", err,
		)
		return nil, err
	}

	for _, payment := range payments {
		event := eventbus.Event{
			ID:   syncID + ":" + payment.ExternalID,
			Type: eventbus.EventTypePaymentFetched,
			Payload: eventbus.PaymentFetchedEvent{
				SyncID:    syncID,
				CompanyID: companyID,
				Payment:   payment,
			},
			Timestamp: time.Now(),
		}

		if err := s.eventBus.Publish(ctx, event); err != nil {
			s.logger.Error(ctx, "Failed to publish payment event",
				"external_id", payment.ExternalID,
				"error", err,
			)
			return nil, err
		}
	}

	s.logger.Info(ctx, "Payment sync published",
		"fetched", len(payments),
	)

	return &SyncResult{
		SyncID:    syncID,
		CompanyID: companyID,
		StartDate: startDate,
		EndDate:   endDate,
		Fetched:   len(payments),
	}, nil
}

func (s *paymentService) ListPayments(ctx context.Context, companyID string, page, perPage int, withoutReceipt bool) ([]domain.Payment, int, error) {
	ctx = logger.WithCompanyID(ctx, companyID)

	s.logger.Debug(ctx, "Listing payments",
		"page", page,
		"per_page", perPage,
		"without_receipt", withoutReceipt,
	)

	payments, total, err := s.repo.ListPayments(ctx, companyID, page, perPage, withoutReceipt)
	if err != nil {
		s.logger.Error(ctx, "Failed to list payments",
			"error", err,
		)
		return nil, 0, err
	}

	return payments, total, nil
}
