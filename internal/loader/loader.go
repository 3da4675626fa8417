// Package loader reads the customer, catalog and order sources into raw records.
package loader

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"bookstats/internal/models"
)

// ErrUnsupportedFormat is returned for order files with an unknown extension.
var ErrUnsupportedFormat = errors.New("unsupported file format")

// Sources names the three input files.
type Sources struct {
	Customers string
	Catalog   string
	Orders    string
}

// Load reads all three sources.
func Load(ctx context.Context, src Sources) (*models.RawDataset, error) {
	customers, err := LoadCSV(src.Customers)
	if err != nil {
		return nil, fmt.Errorf("failed to load customers: %w", err)
	}

	books, err := LoadCatalog(src.Catalog)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}

	orders, err := LoadOrders(ctx, src.Orders)
	if err != nil {
		return nil, fmt.Errorf("failed to load orders: %w", err)
	}

	return &models.RawDataset{
		Customers: customers,
		Books:     books,
		Orders:    orders,
	}, nil
}

// LoadOrders picks a reader from the file extension.
func LoadOrders(ctx context.Context, path string) ([]models.RawRecord, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".parquet":
		return LoadParquet(ctx, path)
	case ".csv":
		return LoadCSV(path)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
}

// put stores v under key unless it is empty, so absent values stay absent.
func put(r models.RawRecord, key, v string) {
	if v == "" {
		return
	}

	r[key] = v
}
