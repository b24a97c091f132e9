package domain

import (
	"errors"
	"fmt"

	"github.com/grachmannico95/fiscal-bridge/pkg/circuit"
	"github.com/grachmannico95/fiscal-bridge/pkg/vault"
)

var (
	ErrFormat             = vault.ErrFormat
	ErrDecryption         = vault.ErrDecryption
	ErrInvalidPlaintext   = vault.ErrInvalidPlaintext
	ErrAuth               = errors.New("remote rejected credentials")
	ErrProtocol           = errors.New("unexpected response from remote")
	ErrShift              = errors.New("shift operation failed")
	ErrReceipt            = errors.New("receipt issuance failed")
	ErrCircuitOpen        = circuit.ErrOpen
	ErrServiceUnavailable = errors.New("service unavailable")

	ErrInvalidInput             = errors.New("invalid input")
	ErrCompanyNotFound          = errors.New("company not found")
	ErrPaymentNotFound          = errors.New("payment not found")
	ErrReceiptNotFound          = errors.New("receipt not found")
	ErrReceiptAlreadyIssued     = errors.New("receipt already issued for payment")
	ErrReceiptInProgress        = errors.New("receipt issuance already in progress for payment")
	ErrCredentialsNotConfigured = errors.New("credentials not configured")
	ErrReconciliationRequired   = errors.New("receipt issued remotely but not recorded")
)

// RemoteError is a non-2xx answer from an external API.
type RemoteError struct {
	Service    string
	Op         string
	StatusCode int
	Body       string
}

func (e *RemoteError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("%s %s: status %d", e.Service, e.Op, e.StatusCode)
	}
	return fmt.Sprintf("%s %s: status %d: %s", e.Service, e.Op, e.StatusCode, e.Body)
}

func (e *RemoteError) HTTPStatus() int {
	return e.StatusCode
}

// ReconciliationError reports a receipt the fiscal authority accepted but
// that could not be written locally. It must be resolved by hand; retrying
// would issue a second fiscal receipt.
type ReconciliationError struct {
	PaymentID       string
	RemoteReceiptID string
	Err             error
}

func (e *ReconciliationError) Error() string {
	return fmt.Sprintf("payment %s: remote receipt %s not recorded: %v", e.PaymentID, e.RemoteReceiptID, e.Err)
}

func (e *ReconciliationError) Unwrap() []error {
	return []error{ErrReconciliationRequired, e.Err}
}

// UnrecognizedReceiptError reports a receipt the fiscal API accepted and
// assigned an id to, but answered with a status this client does not know.
// The receipt exists remotely, so it must not be submitted again.
type UnrecognizedReceiptError struct {
	RemoteReceiptID string
	Status          string
}

func (e *UnrecognizedReceiptError) Error() string {
	return fmt.Sprintf("receipt %s accepted with unrecognized status %q", e.RemoteReceiptID, e.Status)
}

func (e *UnrecognizedReceiptError) Unwrap() error {
	return ErrProtocol
}
