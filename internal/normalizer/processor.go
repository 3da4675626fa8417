// Package normalizer turns raw customer, catalog and order records into typed, cleaned tables.
package normalizer

import (
	"fmt"

	"bookstats/internal/logger"
	"bookstats/internal/models"
)

// Processor validates a raw dataset and runs every table through its normalizer.
type Processor struct {
	validator *Validator
	customers *CustomerNormalizer
	catalog   *CatalogNormalizer
	orders    *OrderNormalizer
	log       *logger.Logger
}

// NewProcessor creates a new processor instance.
func NewProcessor(log *logger.Logger) *Processor {
	if log == nil {
		log = logger.Discard()
	}

	return &Processor{
		validator: NewValidator(),
		customers: NewCustomerNormalizer(),
		catalog:   NewCatalogNormalizer(),
		orders:    NewOrderNormalizer(NewTimestampNormalizer(), NewCurrencyNormalizer()),
		log:       log,
	}
}

// Process normalizes all three tables. Bad fields never fail the run; only a nil
// dataset does.
func (p *Processor) Process(raw *models.RawDataset) (*models.Dataset, error) {
	if err := p.validator.Validate(raw); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	for _, issue := range p.validator.Inspect(raw) {
		p.log.Warn("source table is missing a column", "table", issue.Table, "column", issue.Column)
	}

	ds := &models.Dataset{
		Customers: p.customers.Normalize(raw.Customers),
		Books:     p.catalog.Normalize(raw.Books),
		Orders:    p.orders.Normalize(raw.Orders),
	}

	p.log.Info("normalized dataset",
		"customers", len(ds.Customers), "customers_dropped", len(raw.Customers)-len(ds.Customers),
		"books", len(ds.Books), "books_dropped", len(raw.Books)-len(ds.Books),
		"orders", len(ds.Orders), "orders_dropped", len(raw.Orders)-len(ds.Orders),
	)

	return ds, nil
}
