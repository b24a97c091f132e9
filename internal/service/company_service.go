package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/grachmannico95/fiscal-bridge/internal/domain"
	"github.com/grachmannico95/fiscal-bridge/pkg/logger"
)

// Cipher encrypts and decrypts stored credentials. *vault.Vault satisfies it.
type Cipher interface {
	Encrypt(plaintext string) (string, error)
	Decrypt(serialized string) (string, error)
}

// CompanyInput carries plaintext credentials as entered by the user. They
// are encrypted before anything is stored.
type CompanyInput struct {
	Name           string `json:"name"`
	TaxID          string `json:"tax_id"`
	BankMerchantID string `json:"bank_merchant_id"`
	BankToken      string `json:"bank_token"`
	CashierLogin   string `json:"cashier_login"`
	CashierPin     string `json:"cashier_pin"`
	LicenseKey     string `json:"license_key"`
}

type CompanyService interface {
	CreateCompany(ctx context.Context, input CompanyInput) (*domain.Company, error)
	GetCompany(ctx context.Context, companyID string) (*domain.Company, error)
	ListCompanies(ctx context.Context) ([]domain.Company, error)
}

type companyService struct {
	repo   domain.Repository
	cipher Cipher
	logger *logger.Logger
}

func NewCompanyService(repo domain.Repository, cipher Cipher, log *logger.Logger) CompanyService {
	return &companyService{
		repo:   repo,
		cipher: cipher,
		logger: log,
	}
}

func (s *companyService) CreateCompany(ctx context.Context, input CompanyInput) (*domain.Company, error) {
	input.Name = strings.TrimSpace(input.Name)
	input.TaxID = strings.TrimSpace(input.TaxID)
	if input.Name == "" || input.TaxID == "" {
		return nil, fmt.Errorf("%w: name and tax_id are required", domain.ErrInvalidInput)
	}
	if (input.BankMerchantID == "") != (input.BankToken == "") {
		return nil, fmt.Errorf("%w: bank_merchant_id and bank_token go together", domain.ErrInvalidInput)
	}

	company := &domain.Company{
		ID:             uuid.New().String(),
		Name:           input.Name,
		TaxID:          input.TaxID,
		BankMerchantID: strings.TrimSpace(input.BankMerchantID),
		CashierLogin:   strings.TrimSpace(input.CashierLogin),
	}

	ctx = logger.WithCompanyID(ctx, company.ID)

	secrets := []struct {
		plain string
		dst   *string
	}{
		{input.BankToken, &company.BankTokenEncrypted},
		{input.CashierPin, &company.CashierPinEncrypted},
		{input.LicenseKey, &company.LicenseKeyEncrypted},
	}
	for _, secret := range secrets {
		if secret.plain == "" {
			continue
		}
		enc, err := s.cipher.Encrypt(secret.plain)
		if errors.Is(err, domain.ErrInvalidPlaintext) {
			return nil, fmt.Errorf("%w: %w", domain.ErrInvalidInput, err)
		}
		if err != nil {
			s.logger.Error(ctx, "Failed to encrypt credential",
				"error", err,
			)
			return nil, fmt.Errorf("encrypt credential: %w", err)
		}
		*secret.dst = enc
	}

	err := s.repo.CreateCompany(ctx, company)
	if err != nil {
		s.logger.Error(ctx, "Failed to create company",
			"error", err,
		)
		return nil, err
	}

	s.logger.Info(ctx, "Company created",
		"has_bank_credentials", company.HasBankCredentials(),
		"has_fiscal_credentials", company.HasFiscalCredentials(),
	)

	return company, nil
}

func (s *companyService) GetCompany(ctx context.Context, companyID string) (*domain.Company, error) {
	ctx = logger.WithCompanyID(ctx, companyID)

	company, err := s.repo.GetCompany(ctx, companyID)
	if err != nil {
		s.logger.Error(ctx, "Failed to get company",
			"error", err,
		)
		return nil, err
	}

	return company, nil
}

func (s *companyService) ListCompanies(ctx context.Context) ([]domain.Company, error) {
	companies, err := s.repo.ListCompanies(ctx)
	if err != nil {
		s.logger.Error(ctx, "Failed to list companies",
			"error", err,
		)
		return nil, err
	}

	return companies, nil
}
