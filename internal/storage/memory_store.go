package storage

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/grachmannico95/fiscal-bridge/internal/domain"
)

type MemoryStore struct {
	companies       map[string]*domain.Company
	payments        map[string]*domain.Payment
	paymentKeys     map[string]string // company id + external id -> payment id
	companyPayments map[string][]string
	receipts        map[string]*domain.Receipt // by payment id
	processedEvents map[string]bool
	mu              sync.RWMutex
	now             func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		companies:       make(map[string]*domain.Company),
		payments:        make(map[string]*domain.Payment),
		paymentKeys:     make(map[string]string),
		companyPayments: make(map[string][]string),
		receipts:        make(map[string]*domain.Receipt),
		processedEvents: make(map[string]bool),
		now:             time.Now,
	}
}

func paymentKey(companyID, externalID string) string {
	return companyID + "\x00" + externalID
}

func (s *MemoryStore) CreateCompany(ctx context.Context, company *domain.Company) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if company.ID == "" {
		company.ID = uuid.NewString()
	}
	if _, exists := s.companies[company.ID]; exists {
		return fmt.Errorf("%w: company %s already exists", domain.ErrInvalidInput, company.ID)
	}
	if company.CreatedAt.IsZero() {
		company.CreatedAt = s.now()
	}

	stored := *company
	s.companies[company.ID] = &stored

	return nil
}

func (s *MemoryStore) GetCompany(ctx context.Context, companyID string) (*domain.Company, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	company, exists := s.companies[companyID]
	if !exists {
		return nil, domain.ErrCompanyNotFound
	}

	out := *company
	return &out, nil
}

func (s *MemoryStore) ListCompanies(ctx context.Context) ([]domain.Company, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	companies := make([]domain.Company, 0, len(s.companies))
	for _, c := range s.companies {
		companies = append(companies, *c)
	}

	slices.SortFunc(companies, func(a, b domain.Company) int {
		if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
			return c
		}
		if a.ID < b.ID {
			return -1
		}
		if a.ID > b.ID {
			return 1
		}
		return 0
	})

	return companies, nil
}

// UpsertPayment stores a payment unless one with the same external id
// already exists for the company. The bool reports whether it was created.
// Existing payments are returned unchanged so a re-sync never clears the
// receipt flag.
func (s *MemoryStore) UpsertPayment(ctx context.Context, companyID string, payment domain.CanonicalPayment) (*domain.Payment, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.companies[companyID]; !exists {
		return nil, false, domain.ErrCompanyNotFound
	}
	if payment.ExternalID == "" {
		return nil, false, fmt.Errorf("%w: payment without external id", domain.ErrInvalidInput)
	}

	key := paymentKey(companyID, payment.ExternalID)
	if id, exists := s.paymentKeys[key]; exists {
		out := *s.payments[id]
		return &out, false, nil
	}

	stored := &domain.Payment{
		ID:               uuid.NewString(),
		CompanyID:        companyID,
		CanonicalPayment: payment,
		CreatedAt:        s.now(),
	}
	s.payments[stored.ID] = stored
	s.paymentKeys[key] = stored.ID
	s.companyPayments[companyID] = append(s.companyPayments[companyID], stored.ID)

	out := *stored
	return &out, true, nil
}

func (s *MemoryStore) GetPayment(ctx context.Context, paymentID string) (*domain.Payment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	payment, exists := s.payments[paymentID]
	if !exists {
		return nil, domain.ErrPaymentNotFound
	}

	out := *payment
	return &out, nil
}

// ListPayments returns one page of the company's payments, newest payment
// date first, plus the total matching count.
func (s *MemoryStore) ListPayments(ctx context.Context, companyID string, page, perPage int, withoutReceipt bool) ([]domain.Payment, int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, exists := s.companies[companyID]; !exists {
		return nil, 0, domain.ErrCompanyNotFound
	}

	var filtered []domain.Payment
	for _, id := range s.companyPayments[companyID] {
		p := s.payments[id]
		if withoutReceipt && p.ReceiptIssued {
			continue
		}
		filtered = append(filtered, *p)
	}

	slices.SortStableFunc(filtered, func(a, b domain.Payment) int {
		return b.PaymentDate.Compare(a.PaymentDate)
	})

	total := len(filtered)

	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = 10
	}

	start := (page - 1) * perPage
	end := start + perPage

	if start >= total {
		return []domain.Payment{}, total, nil
	}
	if end > total {
		end = total
	}

	return filtered[start:end], total, nil
}

// SaveReceipt records the receipt and marks its payment as issued in one
// step. A second receipt for the same payment is rejected.
func (s *MemoryStore) SaveReceipt(ctx context.Context, receipt domain.Receipt) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	payment, exists := s.payments[receipt.PaymentID]
	if !exists {
		return domain.ErrPaymentNotFound
	}
	if _, exists := s.receipts[receipt.PaymentID]; exists || payment.ReceiptIssued {
		return domain.ErrReceiptAlreadyIssued
	}

	if receipt.ID == "" {
		receipt.ID = uuid.NewString()
	}
	if receipt.IssuedAt.IsZero() {
		receipt.IssuedAt = s.now()
	}

	s.receipts[receipt.PaymentID] = &receipt
	payment.ReceiptIssued = true

	return nil
}

func (s *MemoryStore) GetReceiptByPayment(ctx context.Context, paymentID string) (*domain.Receipt, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	receipt, exists := s.receipts[paymentID]
	if !exists {
		return nil, domain.ErrReceiptNotFound
	}

	out := *receipt
	return &out, nil
}

func (s *MemoryStore) IsEventProcessed(ctx context.Context, eventID string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.processedEvents[eventID], nil
}

func (s *MemoryStore) MarkEventProcessed(ctx context.Context, eventID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.processedEvents[eventID] = true

	return nil
}
