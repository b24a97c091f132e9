package handler

import (
	"errors"
	"net/http"

	"github.com/grachmannico95/fiscal-bridge/internal/domain"
	"github.com/grachmannico95/fiscal-bridge/pkg/logger"
	"github.com/labstack/echo/v4"
)

type errorResponse struct {
	Error           string `json:"error"`
	RemoteReceiptID string `json:"remote_receipt_id,omitempty"`
}

// statusFor maps the error taxonomy to an HTTP status and a client-safe message.
func statusFor(err error) (int, string) {
	var recErr *domain.ReconciliationError

	switch {
	case errors.As(err, &recErr):
		return http.StatusInternalServerError, "receipt issued but not recorded, manual reconciliation required"
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, domain.ErrCompanyNotFound),
		errors.Is(err, domain.ErrPaymentNotFound),
		errors.Is(err, domain.ErrReceiptNotFound):
		return http.StatusNotFound, err.Error()
	case errors.Is(err, domain.ErrReceiptAlreadyIssued),
		errors.Is(err, domain.ErrReceiptInProgress):
		return http.StatusConflict, err.Error()
	case errors.Is(err, domain.ErrDecryption), errors.Is(err, domain.ErrFormat):
		return http.StatusBadRequest, "stored credentials cannot be decrypted, re-enter them"
	case errors.Is(err, domain.ErrCredentialsNotConfigured):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, domain.ErrAuth):
		return http.StatusUnprocessableEntity, "remote service rejected the credentials"
	case errors.Is(err, domain.ErrServiceUnavailable):
		return http.StatusServiceUnavailable, "remote service unavailable, try again later"
	case errors.Is(err, domain.ErrProtocol),
		errors.Is(err, domain.ErrShift),
		errors.Is(err, domain.ErrReceipt):
		return http.StatusBadGateway, err.Error()
	}

	return http.StatusInternalServerError, "internal error"
}

func respondError(c echo.Context, log *logger.Logger, err error) error {
	status, msg := statusFor(err)

	if status >= http.StatusInternalServerError {
		log.Error(c.Request().Context(), "Request failed",
			"status", status,
			"error", err,
		)
	}

	resp := errorResponse{Error: msg}
	var recErr *domain.ReconciliationError
	if errors.As(err, &recErr) {
		resp.RemoteReceiptID = recErr.RemoteReceiptID
	}

	return c.JSON(status, resp)
}

func badRequest(c echo.Context, msg string) error {
	return c.JSON(http.StatusBadRequest, errorResponse{Error: msg})
}
