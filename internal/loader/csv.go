package loader

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"bookstats/internal/models"
)

// LoadCSV reads a headed CSV file. Empty cells are treated as absent.
func LoadCSV(path string) ([]models.RawRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return ReadCSV(f)
}

// ReadCSV reads headed CSV rows from r.
func ReadCSV(r io.Reader) ([]models.RawRecord, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil
	}

	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	for i, h := range header {
		header[i] = strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
	}

	var records []models.RawRecord

	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return nil, fmt.Errorf("read row %d: %w", len(records)+2, err)
		}

		rec := make(models.RawRecord, len(header))
		for i, h := range header {
			if i < len(row) {
				put(rec, h, row[i])
			}
		}

		records = append(records, rec)
	}

	return records, nil
}
