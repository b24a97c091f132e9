package domain

import "context"

type Repository interface {
	// Companies
	CreateCompany(ctx context.Context, company *Company) error
	GetCompany(ctx context.Context, companyID string) (*Company, error)
	ListCompanies(ctx context.Context) ([]Company, error)

	// Payments, unique per (company, external id)
	UpsertPayment(ctx context.Context, companyID string, payment CanonicalPayment) (*Payment, bool, error)
	GetPayment(ctx context.Context, paymentID string) (*Payment, error)
	ListPayments(ctx context.Context, companyID string, page, perPage int, withoutReceipt bool) ([]Payment, int, error)

	// Receipts; SaveReceipt also marks the payment as issued
	SaveReceipt(ctx context.Context, receipt Receipt) error
	GetReceiptByPayment(ctx context.Context, paymentID string) (*Receipt, error)

	// Idempotency tracking
	IsEventProcessed(ctx context.Context, eventID string) (bool, error)
	MarkEventProcessed(ctx context.Context, eventID string) error
}
