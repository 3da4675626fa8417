package normalizer

import (
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"bookstats/internal/models"
)

// Order column names.
const (
	OrderID        = "id"
	OrderUserID    = "user_id"
	OrderBookID    = "book_id"
	OrderQuantity  = "quantity"
	OrderTimestamp = "timestamp"
	OrderUnitPrice = "unit_price"
)

// OrderNormalizer cleans order records.
type OrderNormalizer struct {
	timestamps *TimestampNormalizer
	currency   *CurrencyNormalizer
}

// NewOrderNormalizer creates a new order normalizer.
func NewOrderNormalizer(timestamps *TimestampNormalizer, currency *CurrencyNormalizer) *OrderNormalizer {
	return &OrderNormalizer{
		timestamps: timestamps,
		currency:   currency,
	}
}

// Normalize drops exact duplicates and converts each record to an Order.
// Timestamp and unit price carry parse statuses instead of sentinels.
func (o *OrderNormalizer) Normalize(records []models.RawRecord) []models.Order {
	records = DeduplicateRecords(records)
	extraCols := unionColumns(records,
		OrderID, OrderUserID, OrderBookID, OrderQuantity, OrderTimestamp, OrderUnitPrice)

	orders := make([]models.Order, 0, len(records))

	for _, r := range records {
		rawTS, hasTS := r.Get(OrderTimestamp)
		rawPrice, hasPrice := r.Get(OrderUnitPrice)
		rawQty, hasQty := r.Get(OrderQuantity)

		order := models.Order{
			ID:        canonicalID(r, OrderID),
			UserID:    canonicalID(r, OrderUserID),
			BookID:    canonicalID(r, OrderBookID),
			Quantity:  ParseQuantity(rawQty, hasQty),
			Timestamp: o.timestamps.Normalize(rawTS, hasTS),
			UnitPrice: o.currency.Normalize(rawPrice, hasPrice),
			Extra:     fillExtra(r, extraCols),
		}

		if date, ok := order.Timestamp.Date(); ok {
			order.DateOnly = models.Some(date)
		}

		order.PaidPrice = PaidPrice(order.Quantity, order.UnitPrice)
		orders = append(orders, order)
	}

	return orders
}

// ParseQuantity reads an integral quantity; fractional or non-numeric values are absent.
func ParseQuantity(raw string, present bool) models.Optional[int64] {
	if !present || isNull(raw) {
		return models.None[int64]()
	}

	s := strings.TrimSpace(raw)

	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return models.Some(n)
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(f, 0) || f != math.Trunc(f) {
		return models.None[int64]()
	}

	return models.Some(int64(f))
}

// PaidPrice is quantity times unit price, absent when either side is.
func PaidPrice(quantity models.Optional[int64], unit models.Price) models.Optional[decimal.Decimal] {
	if !quantity.Valid || !unit.Valid() {
		return models.None[decimal.Decimal]()
	}

	return models.Some(unit.Amount.Mul(decimal.NewFromInt(quantity.Value)))
}
