package analytics

import "bookstats/internal/models"

// Summary counts rows and field-level failures per table.
type Summary struct {
	Customers             int `json:"customers"`
	Books                 int `json:"books"`
	BooksWithoutYear      int `json:"booksWithoutYear"`
	Orders                int `json:"orders"`
	MissingTimestamps     int `json:"missingTimestamps"`
	UnparseableTimestamps int `json:"unparseableTimestamps"`
	MissingPrices         int `json:"missingPrices"`
	UnparseablePrices     int `json:"unparseablePrices"`
	MissingQuantities     int `json:"missingQuantities"`
}

// Summarize tallies the dataset.
func Summarize(ds *models.Dataset) Summary {
	s := Summary{
		Customers: len(ds.Customers),
		Books:     len(ds.Books),
		Orders:    len(ds.Orders),
	}

	for _, b := range ds.Books {
		if !b.Year.Valid {
			s.BooksWithoutYear++
		}
	}

	for _, o := range ds.Orders {
		switch o.Timestamp.Status {
		case models.StatusMissing:
			s.MissingTimestamps++
		case models.StatusUnparseable:
			s.UnparseableTimestamps++
		}

		switch o.UnitPrice.Status {
		case models.StatusMissing:
			s.MissingPrices++
		case models.StatusUnparseable:
			s.UnparseablePrices++
		}

		if !o.Quantity.Valid {
			s.MissingQuantities++
		}
	}

	return s
}
