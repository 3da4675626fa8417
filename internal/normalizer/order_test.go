package normalizer

import (
	"testing"

	"bookstats/internal/models"
)

func newTestOrderNormalizer() *OrderNormalizer {
	return NewOrderNormalizer(NewTimestampNormalizer(), NewCurrencyNormalizer())
}

func TestParseQuantity(t *testing.T) {
	tests := []struct {
		input   string
		present bool
		want    models.Optional[int64]
	}{
		{"3", true, models.Some[int64](3)},
		{" 4 ", true, models.Some[int64](4)},
		{"2.0", true, models.Some[int64](2)},
		{"2.5", true, models.None[int64]()},
		{"NULL", true, models.None[int64]()},
		{"", false, models.None[int64]()},
		{"many", true, models.None[int64]()},
	}

	for _, tt := range tests {
		if got := ParseQuantity(tt.input, tt.present); got != tt.want {
			t.Errorf("ParseQuantity(%q) = %+v, want %+v", tt.input, got, tt.want)
		}
	}
}

func TestOrderNormalizer_Normalize(t *testing.T) {
	o := newTestOrderNormalizer()

	orders := o.Normalize([]models.RawRecord{
		{"id": "1", "user_id": "10.0", "book_id": "7", "quantity": "2", "timestamp": "2021-03-04 2:30 P.M.", "unit_price": "$1,234.56", "channel": "web"},
		{"id": "1", "user_id": "10.0", "book_id": "7", "quantity": "2", "timestamp": "2021-03-04 2:30 P.M.", "unit_price": "$1,234.56", "channel": "web"},
		{"id": "2", "user_id": "11", "book_id": "8", "quantity": "1", "timestamp": "not-a-date", "unit_price": "garbage"},
		{"id": "3", "user_id": "11", "book_id": "8", "timestamp": "2021-03-05", "unit_price": "€10"},
	})

	if len(orders) != 3 {
		t.Fatalf("expected 3 orders after dedup, got %d", len(orders))
	}

	first := orders[0]
	if first.UserID != "10" {
		t.Errorf("UserID = %q, want 10", first.UserID)
	}

	if first.DateOnly != models.Some("2021-03-04") {
		t.Errorf("DateOnly = %+v", first.DateOnly)
	}

	if !first.PaidPrice.Valid || first.PaidPrice.Value.String() != "2469.12" {
		t.Errorf("PaidPrice = %+v, want 2469.12", first.PaidPrice)
	}

	second := orders[1]
	if second.Timestamp.Status != models.StatusUnparseable || second.UnitPrice.Status != models.StatusUnparseable {
		t.Errorf("expected parse failures, got %v / %v", second.Timestamp.Status, second.UnitPrice.Status)
	}

	if second.DateOnly.Valid || second.PaidPrice.Valid {
		t.Errorf("failed fields must stay absent: %+v", second)
	}

	if second.Extra["channel"] != models.NoInfo {
		t.Errorf("missing channel = %q, want sentinel", second.Extra["channel"])
	}

	third := orders[2]
	if third.Quantity.Valid || third.PaidPrice.Valid {
		t.Errorf("missing quantity must leave paid price absent: %+v", third)
	}

	if !third.UnitPrice.Valid() || third.UnitPrice.Amount.String() != "12" {
		t.Errorf("UnitPrice = %+v, want 12", third.UnitPrice)
	}
}
