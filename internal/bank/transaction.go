package bank

import (
	"bytes"
	"encoding/json"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/encoding/charmap"

	"github.com/grachmannico95/fiscal-bridge/internal/domain"
)

const (
	statusSuccess   = "SUCCESS"
	directionCredit = "C"
	defaultCurrency = "UAH"
	unknownSender   = "Unknown"
)

// field accepts a JSON string, number, bool or null. Field types have
// drifted between statement API revisions, so every value is kept as text.
type field string

func (f *field) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*f = ""
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = field(s)
		return nil
	}
	*f = field(b)
	return nil
}

func (f field) String() string {
	return strings.TrimSpace(string(f))
}

// rawTransaction is one entry of the statement feed. Only the fields the
// canonical payment needs are declared; all of them are optional.
type rawTransaction struct {
	ID                     field `json:"ID"`
	TechnicalTransactionID field `json:"TECHNICAL_TRANSACTION_ID"`
	DocumentNumber         field `json:"NUM_DOC"`
	ProcessingDate         field `json:"DAT_OD"`
	ProcessingTime         field `json:"TIM_P"`
	DateTime               field `json:"DATE_TIME_DAT_OD_TIM_P"`
	CounterpartyTaxID      field `json:"AUT_CNTR_CRF"`
	CounterpartyAccount    field `json:"AUT_CNTR_ACC"`
	CounterpartyName       field `json:"AUT_CNTR_NAM"`
	Currency               field `json:"CCY"`
	DebitSum               field `json:"SUM"`
	CreditSum              field `json:"SUM_E"`
	Purpose                field `json:"OSND"`
	Direction              field `json:"TRANTYPE"`
}

type statementPage struct {
	Status        field            `json:"status"`
	ExistNextPage flexBool         `json:"exist_next_page"`
	NextPageID    field            `json:"next_page_id"`
	Transactions  []rawTransaction `json:"transactions"`
}

// flexBool accepts true/false as JSON booleans or strings.
type flexBool bool

func (b *flexBool) UnmarshalJSON(data []byte) error {
	var f field
	if err := f.UnmarshalJSON(data); err != nil {
		return err
	}
	*b = flexBool(strings.EqualFold(f.String(), "true"))
	return nil
}

// decodeBody converts a Windows-1251 response body to UTF-8. It must be
// given the raw bytes; text that was already decoded cannot be repaired.
func decodeBody(raw []byte) ([]byte, error) {
	return charmap.Windows1251.NewDecoder().Bytes(raw)
}

func parseAmount(s string) decimal.Decimal {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", ".")
	if s == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

func (t rawTransaction) isIncomingCredit() bool {
	return t.Direction.String() == directionCredit && parseAmount(t.CreditSum.String()).IsPositive()
}

func (t rawTransaction) externalID() string {
	if id := t.TechnicalTransactionID.String(); id != "" {
		return id
	}
	return "PB_" + t.ID.String()
}

func (t rawTransaction) dateTime() string {
	if dt := t.DateTime.String(); dt != "" {
		return dt
	}
	return strings.TrimSpace(t.ProcessingDate.String() + " " + t.ProcessingTime.String())
}

func (t rawTransaction) amount() decimal.Decimal {
	if s := t.CreditSum.String(); s != "" {
		return parseAmount(s)
	}
	return parseAmount(t.DebitSum.String())
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

// canonical maps the raw transaction; paymentDate is resolved by the caller
// so that date fallbacks can be reported.
func (t rawTransaction) canonical(paymentDate time.Time) domain.CanonicalPayment {
	return domain.CanonicalPayment{
		ExternalID:     t.externalID(),
		Amount:         t.amount(),
		SenderName:     orDefault(t.CounterpartyName.String(), unknownSender),
		SenderAccount:  t.CounterpartyAccount.String(),
		SenderTaxID:    t.CounterpartyTaxID.String(),
		Description:    t.Purpose.String(),
		PaymentDate:    paymentDate,
		Currency:       orDefault(t.Currency.String(), defaultCurrency),
		DocumentNumber: t.DocumentNumber.String(),
	}
}

var dateLayouts = []string{
	"02.01.2006 15:04:05",
	"02.01.2006 15:04",
	"02.01.2006",
}

// parseDateTime reads DD.MM.YYYY[ HH:MM[:SS]] in loc. Missing time parts
// default to midnight.
func parseDateTime(s string, loc *time.Location) (time.Time, bool) {
	s = strings.Join(strings.Fields(s), " ")
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
