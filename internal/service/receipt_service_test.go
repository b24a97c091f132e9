package service_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/grachmannico95/fiscal-bridge/internal/domain"
	"github.com/grachmannico95/fiscal-bridge/internal/service"
	"github.com/grachmannico95/fiscal-bridge/mocks"
	"github.com/grachmannico95/fiscal-bridge/pkg/logger"
	"github.com/grachmannico95/fiscal-bridge/pkg/vault"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type receiptDeps struct {
	repo   *mocks.MockRepository
	issuer *mocks.MockReceiptIssuer
	vault  *vault.Vault
	svc    service.ReceiptService
}

func newReceiptDeps(t *testing.T) receiptDeps {
	d := receiptDeps{
		repo:   mocks.NewMockRepository(t),
		issuer: mocks.NewMockReceiptIssuer(t),
		vault:  newVault(t),
	}
	d.svc = service.NewReceiptService(d.repo, d.issuer, d.vault, logger.New("info"))
	return d
}

func fiscalCompany(t *testing.T, v *vault.Vault) *domain.Company {
	return &domain.Company{
		ID:                  "c1",
		Name:                "ТОВ Ромашка",
		TaxID:               "12345678",
		CashierLogin:        "cashier",
		CashierPinEncrypted: encrypt(t, v, "4321"),
		LicenseKeyEncrypted: encrypt(t, v, "license-abc"),
	}
}

func storedPayment() *domain.Payment {
	return &domain.Payment{
		ID:        "p1",
		CompanyID: "c1",
		CanonicalPayment: domain.CanonicalPayment{
			ExternalID:  "PB_1",
			Amount:      decimal.RequireFromString("50.005"),
			SenderName:  "ІВАНЕНКО ІВАН",
			Description: "Оплата   за\nпослуги",
			Currency:    "UAH",
		},
	}
}

func TestIssueForPayment_Success(t *testing.T) {
	// Setup
	d := newReceiptDeps(t)
	ctx := context.Background()
	issuedAt := time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC)

	var saved domain.Receipt

	// Mock expectations
	d.repo.EXPECT().
		GetPayment(mock.Anything, "p1").
		Return(storedPayment(), nil).
		Once()

	d.repo.EXPECT().
		GetCompany(mock.Anything, "c1").
		Return(fiscalCompany(t, d.vault), nil).
		Once()

	d.issuer.EXPECT().
		IssueReceipt(mock.Anything, "cashier", "4321", "license-abc", mock.MatchedBy(func(req domain.ReceiptRequest) bool {
			if len(req.Goods) != 1 || len(req.Payments) != 1 {
				return false
			}
			good := req.Goods[0]
			return good.Code == "PAY-PB_1" &&
				good.Name == "Оплата за послуги" &&
				good.Price == 5001 &&
				good.Quantity == domain.UnitQuantity &&
				req.Payments[0].Method == domain.PaymentMethodCashless &&
				req.Payments[0].Value == 5001 &&
				req.CashierName == "ТОВ Ромашка" &&
				req.Header == "Платіж від: ІВАНЕНКО ІВАН" &&
				req.Footer == "Дякуємо за співпрацю!"
		})).
		Return(&domain.IssuedReceipt{
			ID:         "remote-1",
			Status:     domain.ReceiptStatusDone,
			FiscalCode: "FC-1",
			CreatedAt:  issuedAt,
		}, nil).
		Once()

	d.repo.EXPECT().
		SaveReceipt(mock.Anything, mock.AnythingOfType("domain.Receipt")).
		Run(func(ctx context.Context, receipt domain.Receipt) {
			saved = receipt
		}).
		Return(nil).
		Once()

	// Execute
	receipt, err := d.svc.IssueForPayment(ctx, "p1")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "remote-1", receipt.RemoteReceiptID)
	assert.Equal(t, "FC-1", receipt.FiscalCode)
	assert.Equal(t, domain.ReceiptStatusDone, receipt.Status)
	assert.Equal(t, issuedAt, receipt.IssuedAt)
	assert.Equal(t, "p1", saved.PaymentID)
	assert.Equal(t, "c1", saved.CompanyID)
	assert.NotEmpty(t, saved.ID)
}

func TestIssueForPayment_FallbackGoodName(t *testing.T) {
	// Setup
	d := newReceiptDeps(t)
	payment := storedPayment()
	payment.Description = "   "

	// Mock expectations
	d.repo.EXPECT().GetPayment(mock.Anything, "p1").Return(payment, nil).Once()
	d.repo.EXPECT().GetCompany(mock.Anything, "c1").Return(fiscalCompany(t, d.vault), nil).Once()

	d.issuer.EXPECT().
		IssueReceipt(mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.MatchedBy(func(req domain.ReceiptRequest) bool {
			return req.Goods[0].Name == "Платіж від: ІВАНЕНКО ІВАН"
		})).
		Return(&domain.IssuedReceipt{ID: "remote-1", Status: domain.ReceiptStatusDone}, nil).
		Once()

	d.repo.EXPECT().SaveReceipt(mock.Anything, mock.Anything).Return(nil).Once()

	// Execute
	receipt, err := d.svc.IssueForPayment(context.Background(), "p1")

	// Assert
	require.NoError(t, err)
	assert.False(t, receipt.IssuedAt.IsZero())
}

func TestIssueForPayment_AlreadyIssued(t *testing.T) {
	// Setup
	d := newReceiptDeps(t)
	payment := storedPayment()
	payment.ReceiptIssued = true

	// Mock expectations
	d.repo.EXPECT().GetPayment(mock.Anything, "p1").Return(payment, nil).Once()

	// Execute
	receipt, err := d.svc.IssueForPayment(context.Background(), "p1")

	// Assert
	assert.Nil(t, receipt)
	assert.ErrorIs(t, err, domain.ErrReceiptAlreadyIssued)
}

func TestIssueForPayment_PaymentNotFound(t *testing.T) {
	// Setup
	d := newReceiptDeps(t)

	// Mock expectations
	d.repo.EXPECT().GetPayment(mock.Anything, "missing").Return(nil, domain.ErrPaymentNotFound).Once()

	// Execute
	_, err := d.svc.IssueForPayment(context.Background(), "missing")

	// Assert
	assert.ErrorIs(t, err, domain.ErrPaymentNotFound)
}

func TestIssueForPayment_NoFiscalCredentials(t *testing.T) {
	// Setup
	d := newReceiptDeps(t)

	// Mock expectations
	d.repo.EXPECT().GetPayment(mock.Anything, "p1").Return(storedPayment(), nil).Once()
	d.repo.EXPECT().GetCompany(mock.Anything, "c1").Return(&domain.Company{ID: "c1", Name: "ТОВ Ромашка"}, nil).Once()

	// Execute
	_, err := d.svc.IssueForPayment(context.Background(), "p1")

	// Assert
	assert.ErrorIs(t, err, domain.ErrCredentialsNotConfigured)
}

func TestIssueForPayment_IssuerError(t *testing.T) {
	// Setup
	d := newReceiptDeps(t)

	// Mock expectations
	d.repo.EXPECT().GetPayment(mock.Anything, "p1").Return(storedPayment(), nil).Once()
	d.repo.EXPECT().GetCompany(mock.Anything, "c1").Return(fiscalCompany(t, d.vault), nil).Once()
	d.issuer.EXPECT().
		IssueReceipt(mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil, domain.ErrServiceUnavailable).
		Once()

	// Execute
	_, err := d.svc.IssueForPayment(context.Background(), "p1")

	// Assert
	assert.ErrorIs(t, err, domain.ErrServiceUnavailable)
	d.repo.AssertNotCalled(t, "SaveReceipt", mock.Anything, mock.Anything)
}

func TestIssueForPayment_UnrecognizedStatusNeedsReconciliation(t *testing.T) {
	// Setup
	d := newReceiptDeps(t)
	issuerErr := &domain.UnrecognizedReceiptError{RemoteReceiptID: "remote-7", Status: "CREATED"}

	// Mock expectations
	d.repo.EXPECT().GetPayment(mock.Anything, "p1").Return(storedPayment(), nil).Once()
	d.repo.EXPECT().GetCompany(mock.Anything, "c1").Return(fiscalCompany(t, d.vault), nil).Once()
	d.issuer.EXPECT().
		IssueReceipt(mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil, issuerErr).
		Once()

	// Execute
	receipt, err := d.svc.IssueForPayment(context.Background(), "p1")

	// Assert
	assert.Nil(t, receipt)
	assert.ErrorIs(t, err, domain.ErrReconciliationRequired)
	assert.ErrorIs(t, err, domain.ErrProtocol)

	var recErr *domain.ReconciliationError
	require.ErrorAs(t, err, &recErr)
	assert.Equal(t, "p1", recErr.PaymentID)
	assert.Equal(t, "remote-7", recErr.RemoteReceiptID)
	d.repo.AssertNotCalled(t, "SaveReceipt", mock.Anything, mock.Anything)
}

func TestIssueForPayment_SaveFailsNeedsReconciliation(t *testing.T) {
	// Setup
	d := newReceiptDeps(t)
	saveErr := errors.New("disk full")

	// Mock expectations
	d.repo.EXPECT().GetPayment(mock.Anything, "p1").Return(storedPayment(), nil).Once()
	d.repo.EXPECT().GetCompany(mock.Anything, "c1").Return(fiscalCompany(t, d.vault), nil).Once()
	d.issuer.EXPECT().
		IssueReceipt(mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(&domain.IssuedReceipt{ID: "remote-9", Status: domain.ReceiptStatusDone}, nil).
		Once()
	d.repo.EXPECT().SaveReceipt(mock.Anything, mock.Anything).Return(saveErr).Once()

	// Execute
	receipt, err := d.svc.IssueForPayment(context.Background(), "p1")

	// Assert
	assert.Nil(t, receipt)
	assert.ErrorIs(t, err, domain.ErrReconciliationRequired)
	assert.ErrorIs(t, err, saveErr)

	var recErr *domain.ReconciliationError
	require.ErrorAs(t, err, &recErr)
	assert.Equal(t, "p1", recErr.PaymentID)
	assert.Equal(t, "remote-9", recErr.RemoteReceiptID)
}

func TestIssueForPayment_InProgress(t *testing.T) {
	// Setup
	d := newReceiptDeps(t)
	entered := make(chan struct{})
	release := make(chan struct{})

	// Mock expectations
	d.repo.EXPECT().
		GetPayment(mock.Anything, "p1").
		Run(func(ctx context.Context, paymentID string) {
			close(entered)
			<-release
		}).
		Return(nil, domain.ErrPaymentNotFound).
		Once()

	// Execute
	var wg sync.WaitGroup
	var firstErr error
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, firstErr = d.svc.IssueForPayment(context.Background(), "p1")
	}()

	<-entered
	_, err := d.svc.IssueForPayment(context.Background(), "p1")
	close(release)
	wg.Wait()

	// Assert
	assert.ErrorIs(t, err, domain.ErrReceiptInProgress)
	assert.ErrorIs(t, firstErr, domain.ErrPaymentNotFound)
}

func TestGetReceipt(t *testing.T) {
	// Setup
	d := newReceiptDeps(t)
	expected := &domain.Receipt{ID: "r1", PaymentID: "p1"}

	// Mock expectations
	d.repo.EXPECT().GetReceiptByPayment(mock.Anything, "p1").Return(expected, nil).Once()
	d.repo.EXPECT().GetReceiptByPayment(mock.Anything, "p2").Return(nil, domain.ErrReceiptNotFound).Once()

	// Execute
	receipt, err := d.svc.GetReceipt(context.Background(), "p1")
	_, missingErr := d.svc.GetReceipt(context.Background(), "p2")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, expected, receipt)
	assert.ErrorIs(t, missingErr, domain.ErrReceiptNotFound)
}
