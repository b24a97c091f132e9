package fiscal

import (
	"time"

	"github.com/grachmannico95/fiscal-bridge/internal/domain"
)

type signInRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

type signInResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type shiftResponse struct {
	ID       string  `json:"id"`
	Serial   int     `json:"serial"`
	Status   string  `json:"status"`
	OpenedAt string  `json:"opened_at"`
	ClosedAt *string `json:"closed_at"`
}

type goodItem struct {
	Code  string `json:"code"`
	Name  string `json:"name"`
	Price int64  `json:"price"`
}

type receiptGood struct {
	Good     goodItem `json:"good"`
	Quantity int      `json:"quantity"`
}

type receiptPayment struct {
	Type  string `json:"type"`
	Value int64  `json:"value"`
}

// sellRequest is the body of POST /receipts/sell. ID is generated by the
// client so that a retried submission is recognised by the fiscal API.
type sellRequest struct {
	ID          string           `json:"id,omitempty"`
	Goods       []receiptGood    `json:"goods"`
	Payments    []receiptPayment `json:"payments"`
	CashierName string           `json:"cashier_name,omitempty"`
	Header      string           `json:"header,omitempty"`
	Footer      string           `json:"footer,omitempty"`
}

type receiptResponse struct {
	ID         string `json:"id"`
	Type       string `json:"type"`
	Status     string `json:"status"`
	FiscalCode string `json:"fiscal_code"`
	ReceiptURL string `json:"receipt_url"`
	PDFURL     string `json:"pdf_url"`
	CreatedAt  string `json:"created_at"`
}

func toSellRequest(id string, req domain.ReceiptRequest) sellRequest {
	out := sellRequest{
		ID:          id,
		Goods:       make([]receiptGood, 0, len(req.Goods)),
		Payments:    make([]receiptPayment, 0, len(req.Payments)),
		CashierName: req.CashierName,
		Header:      req.Header,
		Footer:      req.Footer,
	}
	for _, g := range req.Goods {
		qty := g.Quantity
		if qty == 0 {
			qty = domain.UnitQuantity
		}
		out.Goods = append(out.Goods, receiptGood{
			Good:     goodItem{Code: g.Code, Name: g.Name, Price: g.Price},
			Quantity: qty,
		})
	}
	for _, p := range req.Payments {
		out.Payments = append(out.Payments, receiptPayment{Type: string(p.Method), Value: p.Value})
	}
	return out
}

func (s shiftResponse) toDomain() *domain.Shift {
	shift := &domain.Shift{
		ID:       s.ID,
		Status:   domain.ShiftStatus(s.Status),
		OpenedAt: parseTimestamp(s.OpenedAt),
	}
	if s.ClosedAt != nil && *s.ClosedAt != "" {
		closed := parseTimestamp(*s.ClosedAt)
		shift.ClosedAt = &closed
	}
	return shift
}

func (r receiptResponse) toDomain() *domain.IssuedReceipt {
	return &domain.IssuedReceipt{
		ID:         r.ID,
		Status:     domain.ReceiptStatus(r.Status),
		FiscalCode: r.FiscalCode,
		ReceiptURL: r.ReceiptURL,
		PDFURL:     r.PDFURL,
		CreatedAt:  parseTimestamp(r.CreatedAt),
	}
}

func validReceiptStatus(s string) bool {
	switch domain.ReceiptStatus(s) {
	case domain.ReceiptStatusDone, domain.ReceiptStatusPending, domain.ReceiptStatusError:
		return true
	}
	return false
}

// parseTimestamp accepts RFC 3339 with or without a zone; the zero time is
// returned for anything else.
func parseTimestamp(s string) time.Time {
	for _, layout := range []string{time.RFC3339Nano, "2006-01-02T15:04:05.999999"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
