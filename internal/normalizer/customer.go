package normalizer

import "bookstats/internal/models"

// Customer column names.
const (
	CustomerID      = "id"
	CustomerName    = "name"
	CustomerAddress = "address"
	CustomerPhone   = "phone"
	CustomerEmail   = "email"
)

// CustomerNormalizer cleans customer records.
type CustomerNormalizer struct{}

// NewCustomerNormalizer creates a new customer normalizer.
func NewCustomerNormalizer() *CustomerNormalizer {
	return &CustomerNormalizer{}
}

// Normalize drops exact duplicates, canonicalizes phones and sentinel-fills the rest.
// A missing phone still formats, to 000-000-0000.
func (c *CustomerNormalizer) Normalize(records []models.RawRecord) []models.Customer {
	records = DeduplicateRecords(records)
	extraCols := unionColumns(records, CustomerID, CustomerName, CustomerAddress, CustomerPhone, CustomerEmail)

	customers := make([]models.Customer, 0, len(records))

	for _, r := range records {
		phone, _ := r.Get(CustomerPhone)

		customers = append(customers, models.Customer{
			ID:      canonicalID(r, CustomerID),
			Name:    fillText(r, CustomerName),
			Address: fillText(r, CustomerAddress),
			Phone:   NormalizePhone(phone),
			Email:   fillText(r, CustomerEmail),
			Extra:   fillExtra(r, extraCols),
		})
	}

	return customers
}
