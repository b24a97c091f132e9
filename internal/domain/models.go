package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CanonicalPayment is one incoming credit transaction as read from the bank
// statement, normalised for storage.
type CanonicalPayment struct {
	ExternalID     string          `json:"external_id"`
	Amount         decimal.Decimal `json:"amount"`
	SenderName     string          `json:"sender_name"`
	SenderAccount  string          `json:"sender_account"`
	SenderTaxID    string          `json:"sender_tax_id"`
	Description    string          `json:"description"`
	PaymentDate    time.Time       `json:"payment_date"`
	Currency       string          `json:"currency"`
	DocumentNumber string          `json:"document_number"`
}

type Company struct {
	ID                  string    `json:"id"`
	Name                string    `json:"name"`
	TaxID               string    `json:"tax_id"`
	BankMerchantID      string    `json:"bank_merchant_id,omitempty"`
	BankTokenEncrypted  string    `json:"-"`
	CashierLogin        string    `json:"cashier_login,omitempty"`
	CashierPinEncrypted string    `json:"-"`
	LicenseKeyEncrypted string    `json:"-"`
	CreatedAt           time.Time `json:"created_at"`
}

func (c Company) HasBankCredentials() bool {
	return c.BankMerchantID != "" && c.BankTokenEncrypted != ""
}

func (c Company) HasFiscalCredentials() bool {
	return c.CashierLogin != "" && c.CashierPinEncrypted != "" && c.LicenseKeyEncrypted != ""
}

type Payment struct {
	ID        string `json:"id"`
	CompanyID string `json:"company_id"`
	CanonicalPayment
	ReceiptIssued bool      `json:"receipt_issued"`
	CreatedAt     time.Time `json:"created_at"`
}

type PaymentMethod string

const (
	PaymentMethodCash     PaymentMethod = "CASH"
	PaymentMethodCashless PaymentMethod = "CASHLESS"
	PaymentMethodCard     PaymentMethod = "CARD"
)

// UnitQuantity is one piece in the fiscal API's thousandths-of-a-unit quantity.
const UnitQuantity = 1000

type ReceiptGood struct {
	Code     string `json:"code"`
	Name     string `json:"name"`
	Price    int64  `json:"price"`
	Quantity int    `json:"quantity"`
}

type ReceiptPayment struct {
	Method PaymentMethod `json:"method"`
	Value  int64         `json:"value"`
}

// ReceiptRequest carries monetary values in minor currency units.
type ReceiptRequest struct {
	Goods       []ReceiptGood    `json:"goods"`
	Payments    []ReceiptPayment `json:"payments"`
	CashierName string           `json:"cashier_name,omitempty"`
	Header      string           `json:"header,omitempty"`
	Footer      string           `json:"footer,omitempty"`
}

type ReceiptStatus string

const (
	ReceiptStatusDone    ReceiptStatus = "DONE"
	ReceiptStatusPending ReceiptStatus = "PENDING"
	ReceiptStatusError   ReceiptStatus = "ERROR"
)

type IssuedReceipt struct {
	ID         string        `json:"id"`
	Status     ReceiptStatus `json:"status"`
	FiscalCode string        `json:"fiscal_code,omitempty"`
	ReceiptURL string        `json:"receipt_url,omitempty"`
	PDFURL     string        `json:"pdf_url,omitempty"`
	CreatedAt  time.Time     `json:"created_at"`
}

type ShiftStatus string

const (
	ShiftStatusOpened ShiftStatus = "OPENED"
	ShiftStatusClosed ShiftStatus = "CLOSED"
)

type Shift struct {
	ID       string      `json:"id"`
	Status   ShiftStatus `json:"status"`
	OpenedAt time.Time   `json:"opened_at"`
	ClosedAt *time.Time  `json:"closed_at,omitempty"`
}

func (s *Shift) IsOpen() bool {
	return s != nil && s.Status == ShiftStatusOpened
}

// Receipt is the locally stored record of an issued fiscal receipt.
type Receipt struct {
	ID              string          `json:"id"`
	CompanyID       string          `json:"company_id"`
	PaymentID       string          `json:"payment_id"`
	RemoteReceiptID string          `json:"remote_receipt_id"`
	FiscalCode      string          `json:"fiscal_code,omitempty"`
	ReceiptURL      string          `json:"receipt_url,omitempty"`
	PDFURL          string          `json:"pdf_url,omitempty"`
	Status          ReceiptStatus   `json:"status"`
	Amount          decimal.Decimal `json:"amount"`
	IssuedAt        time.Time       `json:"issued_at"`
}
