package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/grachmannico95/fiscal-bridge/internal/service"
	"github.com/grachmannico95/fiscal-bridge/pkg/logger"
	"github.com/labstack/echo/v4"
)

type PaymentHandler struct {
	service service.PaymentService
	logger  *logger.Logger
}

func NewPaymentHandler(service service.PaymentService, log *logger.Logger) *PaymentHandler {
	return &PaymentHandler{
		service: service,
		logger:  log,
	}
}

type syncRequest struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

func (h *PaymentHandler) Sync(c echo.Context) error {
	ctx := c.Request().Context()
	companyID := c.Param("id")

	var req syncRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	startDate, err := time.Parse(time.DateOnly, req.StartDate)
	if err != nil {
		return badRequest(c, "start_date must be YYYY-MM-DD")
	}

	endDate, err := time.Parse(time.DateOnly, req.EndDate)
	if err != nil {
		return badRequest(c, "end_date must be YYYY-MM-DD")
	}

	h.logger.Info(logger.WithCompanyID(ctx, companyID), "Handling payment sync request")

	result, err := h.service.SyncPayments(ctx, companyID, startDate, endDate)
	if err != nil {
		return respondError(c, h.logger, err)
	}

	return c.JSON(http.StatusAccepted, map[string]interface{}{
		"sync_id":    result.SyncID,
		"company_id": result.CompanyID,
		"start_date": result.StartDate.Format(time.DateOnly),
		"end_date":   result.EndDate.Format(time.DateOnly),
		"fetched":    result.Fetched,
		"status":     "processing",
	})
}

func (h *PaymentHandler) List(c echo.Context) error {
	ctx := c.Request().Context()
	companyID := c.Param("id")

	page, err := strconv.Atoi(c.QueryParam("page"))
	if err != nil || page < 1 {
		page = 1
	}

	perPage, err := strconv.Atoi(c.QueryParam("per_page"))
	if err != nil || perPage < 1 {
		perPage = 10
	}

	withoutReceipt := false
	if raw := c.QueryParam("without_receipt"); raw != "" {
		withoutReceipt, err = strconv.ParseBool(raw)
		if err != nil {
			return badRequest(c, "without_receipt must be true or false")
		}
	}

	payments, total, err := h.service.ListPayments(ctx, companyID, page, perPage, withoutReceipt)
	if err != nil {
		return respondError(c, h.logger, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"company_id": companyID,
		"items":      payments,
		"page":       page,
		"per_page":   perPage,
		"total":      total,
	})
}
