package normalizer

import (
	"errors"
	"fmt"

	"bookstats/internal/models"
)

// ErrNilDataset is returned when there is nothing to normalize.
var ErrNilDataset = errors.New("invalid data: raw dataset is nil")

// Issue describes a structural problem in a source table. Issues never stop the pipeline.
type Issue struct {
	Table  string
	Column string
}

func (i Issue) String() string {
	return fmt.Sprintf("%s: column %q absent from every record", i.Table, i.Column)
}

// Validator checks raw tables for the columns the aggregates rely on.
type Validator struct {
	required map[string][]string
}

// NewValidator creates a new validator instance.
func NewValidator() *Validator {
	return &Validator{
		required: map[string][]string{
			"customers": {CustomerID, CustomerName, CustomerAddress, CustomerPhone, CustomerEmail},
			"books":     {BookID, BookTitle, BookAuthor, BookYear},
			"orders":    {OrderID, OrderUserID, OrderBookID, OrderQuantity, OrderTimestamp, OrderUnitPrice},
		},
	}
}

// Validate rejects input that cannot be processed at all.
func (v *Validator) Validate(raw *models.RawDataset) error {
	if raw == nil {
		return ErrNilDataset
	}

	return nil
}

// Inspect reports required columns that no record of a non-empty table carries.
func (v *Validator) Inspect(raw *models.RawDataset) []Issue {
	if raw == nil {
		return nil
	}

	tables := []struct {
		name    string
		records []models.RawRecord
	}{
		{"customers", raw.Customers},
		{"books", stripAll(raw.Books)},
		{"orders", raw.Orders},
	}

	var issues []Issue

	for _, tbl := range tables {
		if len(tbl.records) == 0 {
			continue
		}

		for _, col := range v.required[tbl.name] {
			if !anyHas(tbl.records, col) {
				issues = append(issues, Issue{Table: tbl.name, Column: col})
			}
		}
	}

	return issues
}

func stripAll(records []models.RawRecord) []models.RawRecord {
	out := make([]models.RawRecord, 0, len(records))
	for _, r := range records {
		out = append(out, StripKeyMarkers(r))
	}

	return out
}

func anyHas(records []models.RawRecord, col string) bool {
	for _, r := range records {
		if _, ok := r[col]; ok {
			return true
		}
	}

	return false
}
