package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the calendar-date format used for grouping orders by day.
const DateLayout = "2006-01-02"

// ParseStatus describes the outcome of normalizing a specialized field.
type ParseStatus int

// Parse statuses. Missing and Unparseable are kept apart for reporting even though
// aggregation treats both as absent.
const (
	StatusMissing ParseStatus = iota
	StatusUnparseable
	StatusValid
)

// String returns the status name.
func (s ParseStatus) String() string {
	switch s {
	case StatusMissing:
		return "missing"
	case StatusUnparseable:
		return "unparseable"
	case StatusValid:
		return "valid"
	default:
		return "unknown"
	}
}

// MarshalText renders the status as its name.
func (s ParseStatus) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Timestamp is a normalized order timestamp.
type Timestamp struct {
	Time   time.Time   `json:"time"`
	Raw    string      `json:"raw,omitempty"`
	Status ParseStatus `json:"status"`
}

// Valid reports whether the timestamp parsed.
func (t Timestamp) Valid() bool {
	return t.Status == StatusValid
}

// Date returns the calendar date of a parsed timestamp.
func (t Timestamp) Date() (string, bool) {
	if !t.Valid() {
		return "", false
	}

	return t.Time.Format(DateLayout), true
}

// Price is a monetary amount converted into the reference currency.
type Price struct {
	Amount   decimal.Decimal `json:"amount"`
	Currency string          `json:"currency,omitempty"`
	Raw      string          `json:"raw,omitempty"`
	Status   ParseStatus     `json:"status"`
}

// Valid reports whether the price parsed.
func (p Price) Valid() bool {
	return p.Status == StatusValid
}

// Order is a normalized order row.
type Order struct {
	ID        string                    `json:"id"`
	UserID    string                    `json:"userId"`
	BookID    string                    `json:"bookId"`
	Quantity  Optional[int64]           `json:"quantity"`
	Timestamp Timestamp                 `json:"timestamp"`
	DateOnly  Optional[string]          `json:"dateOnly"`
	UnitPrice Price                     `json:"unitPrice"`
	PaidPrice Optional[decimal.Decimal] `json:"paidPrice"`
	Extra     map[string]string         `json:"extra,omitempty"`
}
