package handler

import (
	"net/http"
	"time"

	"github.com/grachmannico95/fiscal-bridge/internal/domain"
	"github.com/grachmannico95/fiscal-bridge/internal/service"
	"github.com/grachmannico95/fiscal-bridge/pkg/logger"
	"github.com/labstack/echo/v4"
)

type CompanyHandler struct {
	service service.CompanyService
	logger  *logger.Logger
}

func NewCompanyHandler(service service.CompanyService, log *logger.Logger) *CompanyHandler {
	return &CompanyHandler{
		service: service,
		logger:  log,
	}
}

// companyResponse never carries credentials, only whether they are set.
type companyResponse struct {
	ID                   string    `json:"id"`
	Name                 string    `json:"name"`
	TaxID                string    `json:"tax_id"`
	BankMerchantID       string    `json:"bank_merchant_id,omitempty"`
	CashierLogin         string    `json:"cashier_login,omitempty"`
	HasBankCredentials   bool      `json:"has_bank_credentials"`
	HasFiscalCredentials bool      `json:"has_fiscal_credentials"`
	CreatedAt            time.Time `json:"created_at"`
}

func toCompanyResponse(c domain.Company) companyResponse {
	return companyResponse{
		ID:                   c.ID,
		Name:                 c.Name,
		TaxID:                c.TaxID,
		BankMerchantID:       c.BankMerchantID,
		CashierLogin:         c.CashierLogin,
		HasBankCredentials:   c.HasBankCredentials(),
		HasFiscalCredentials: c.HasFiscalCredentials(),
		CreatedAt:            c.CreatedAt,
	}
}

func (h *CompanyHandler) Create(c echo.Context) error {
	ctx := c.Request().Context()

	var input service.CompanyInput
	if err := c.Bind(&input); err != nil {
		return badRequest(c, "invalid request body")
	}

	h.logger.Info(ctx, "Handling create company request")

	company, err := h.service.CreateCompany(ctx, input)
	if err != nil {
		return respondError(c, h.logger, err)
	}

	return c.JSON(http.StatusCreated, toCompanyResponse(*company))
}

func (h *CompanyHandler) Get(c echo.Context) error {
	company, err := h.service.GetCompany(c.Request().Context(), c.Param("id"))
	if err != nil {
		return respondError(c, h.logger, err)
	}

	return c.JSON(http.StatusOK, toCompanyResponse(*company))
}

func (h *CompanyHandler) List(c echo.Context) error {
	companies, err := h.service.ListCompanies(c.Request().Context())
	if err != nil {
		return respondError(c, h.logger, err)
	}

	items := make([]companyResponse, 0, len(companies))
	for _, company := range companies {
		items = append(items, toCompanyResponse(company))
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"items": items,
		"total": len(items),
	})
}
