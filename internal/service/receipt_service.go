package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/grachmannico95/fiscal-bridge/internal/domain"
	"github.com/grachmannico95/fiscal-bridge/internal/fiscal"
	"github.com/grachmannico95/fiscal-bridge/pkg/logger"
)

const (
	receiptFooter   = "Дякуємо за співпрацю!"
	maxGoodNameLen  = 128
	goodCodePrefix  = "PAY-"
	receiptHeaderFm = "Платіж від: %s"
)

type ReceiptIssuer interface {
	IssueReceipt(ctx context.Context, login, password, licenseKey string, req domain.ReceiptRequest) (*domain.IssuedReceipt, error)
}

type ReceiptService interface {
	IssueForPayment(ctx context.Context, paymentID string) (*domain.Receipt, error)
	GetReceipt(ctx context.Context, paymentID string) (*domain.Receipt, error)
}

type receiptService struct {
	repo     domain.Repository
	issuer   ReceiptIssuer
	cipher   Cipher
	logger   *logger.Logger
	inFlight sync.Map // payment id -> struct{}
}

func NewReceiptService(repo domain.Repository, issuer ReceiptIssuer, cipher Cipher, log *logger.Logger) ReceiptService {
	return &receiptService{
		repo:   repo,
		issuer: issuer,
		cipher: cipher,
		logger: log,
	}
}

// IssueForPayment fiscalises one stored payment. Once the fiscal API has
// returned a receipt the call is never repeated: if the local write fails a
// *domain.ReconciliationError is returned with the remote receipt id.
func (s *receiptService) IssueForPayment(ctx context.Context, paymentID string) (*domain.Receipt, error) {
	ctx = logger.WithPaymentID(ctx, paymentID)

	if _, busy := s.inFlight.LoadOrStore(paymentID, struct{}{}); busy {
		s.logger.Warn(ctx, "Receipt issuance already in progress")
		return nil, domain.ErrReceiptInProgress
	}
	defer s.inFlight.Delete(paymentID)

	payment, err := s.repo.GetPayment(ctx, paymentID)
	if err != nil {
		s.logger.Error(ctx, "Failed to get payment",
			"error", err,
		)
		return nil, err
	}

	ctx = logger.WithCompanyID(ctx, payment.CompanyID)

	if payment.ReceiptIssued {
		s.logger.Warn(ctx, "Attempted to issue duplicate receipt")
		return nil, domain.ErrReceiptAlreadyIssued
	}

	company, err := s.repo.GetCompany(ctx, payment.CompanyID)
	if err != nil {
		s.logger.Error(ctx, "Failed to get company",
			"error", err,
		)
		return nil, err
	}

	if !company.HasFiscalCredentials() {
		s.logger.Error(ctx, "Fiscal credentials not configured")
		return nil, fmt.Errorf("%w: fiscal", domain.ErrCredentialsNotConfigured)
	}

	pin, err := s.cipher.Decrypt(company.CashierPinEncrypted)
	if err != nil {
		s.logger.Error(ctx, "Failed to decrypt cashier pin",
			"error", err,
		)
		return nil, err
	}

	licenseKey, err := s.cipher.Decrypt(company.LicenseKeyEncrypted)
	if err != nil {
		s.logger.Error(ctx, "Failed to decrypt license key",
			"error", err,
		)
		return nil, err
	}

	req := buildReceiptRequest(company, payment)

	s.logger.Info(ctx, "Issuing fiscal receipt",
		"amount_minor", req.Payments[0].Value,
	)

	issued, err := s.issuer.IssueReceipt(ctx, company.CashierLogin, pin, licenseKey, req)
	if err != nil {
		var unrecognized *domain.UnrecognizedReceiptError
		if errors.As(err, &unrecognized) {
			s.logger.Error(ctx, "Receipt issued remotely with unrecognized status, manual reconciliation required",
				"remote_receipt_id", unrecognized.RemoteReceiptID,
				"status", unrecognized.Status,
			)
			return nil, &domain.ReconciliationError{
				PaymentID:       payment.ID,
				RemoteReceiptID: unrecognized.RemoteReceiptID,
				Err:             err,
			}
		}

		s.logger.Error(ctx, "Failed to issue fiscal receipt",
			"error", err,
		)
		return nil, err
	}

	receipt := domain.Receipt{
		ID:              uuid.New().String(),
		CompanyID:       company.ID,
		PaymentID:       payment.ID,
		RemoteReceiptID: issued.ID,
		FiscalCode:      issued.FiscalCode,
		ReceiptURL:      issued.ReceiptURL,
		PDFURL:          issued.PDFURL,
		Status:          issued.Status,
		Amount:          payment.Amount,
		IssuedAt:        issued.CreatedAt,
	}
	if receipt.IssuedAt.IsZero() {
		receipt.IssuedAt = time.Now()
	}

	if err := s.repo.SaveReceipt(ctx, receipt); err != nil {
		s.logger.Error(ctx, "Receipt issued remotely but not recorded, manual reconciliation required",
			"remote_receipt_id", issued.ID,
			"fiscal_code", issued.FiscalCode,
			"error", err,
		)
		return nil, &domain.ReconciliationError{
			PaymentID:       payment.ID,
			RemoteReceiptID: issued.ID,
			Err:             err,
		}
	}

	s.logger.Info(ctx, "Receipt saved",
		"receipt_id", receipt.ID,
		"remote_receipt_id", receipt.RemoteReceiptID,
		"status", string(receipt.Status),
	)

	return &receipt, nil
}

func (s *receiptService) GetReceipt(ctx context.Context, paymentID string) (*domain.Receipt, error) {
	ctx = logger.WithPaymentID(ctx, paymentID)

	receipt, err := s.repo.GetReceiptByPayment(ctx, paymentID)
	if err != nil {
		if !errors.Is(err, domain.ErrReceiptNotFound) {
			s.logger.Error(ctx, "Failed to get receipt",
				"error", err,
			)
		}
		return nil, err
	}

	return receipt, nil
}

// buildReceiptRequest describes a bank payment as a single cashless sale of
// one unit priced at the payment amount.
func buildReceiptRequest(company *domain.Company, payment *domain.Payment) domain.ReceiptRequest {
	amount := fiscal.ToMinorUnits(payment.Amount)

	return domain.ReceiptRequest{
		Goods: []domain.ReceiptGood{{
			Code:     goodCodePrefix + payment.ExternalID,
			Name:     goodName(payment),
			Price:    amount,
			Quantity: domain.UnitQuantity,
		}},
		Payments: []domain.ReceiptPayment{{
			Method: domain.PaymentMethodCashless,
			Value:  amount,
		}},
		CashierName: company.Name,
		Header:      fmt.Sprintf(receiptHeaderFm, payment.SenderName),
		Footer:      receiptFooter,
	}
}

func goodName(payment *domain.Payment) string {
	name := strings.Join(strings.Fields(payment.Description), " ")
	if name == "" {
		name = fmt.Sprintf(receiptHeaderFm, payment.SenderName)
	}

	runes := []rune(name)
	if len(runes) > maxGoodNameLen {
		name = string(runes[:maxGoodNameLen])
	}
	return name
}
