package loader

import (
	"context"
	"fmt"

	"github.com/apache/arrow/go/v17/arrow/array"
	"github.com/apache/arrow/go/v17/arrow/memory"
	"github.com/apache/arrow/go/v17/parquet/file"
	"github.com/apache/arrow/go/v17/parquet/pqarrow"

	"bookstats/internal/models"
)

// parquetBatchRows is the number of rows read per record batch.
const parquetBatchRows = 1024

// LoadParquet reads every row of a Parquet file. Null cells are absent; other cells
// are rendered as text for the normalizers.
func LoadParquet(ctx context.Context, path string) ([]models.RawRecord, error) {
	pf, err := file.OpenParquetFile(path, false)
	if err != nil {
		return nil, fmt.Errorf("open parquet: %w", err)
	}
	defer pf.Close()

	fr, err := pqarrow.NewFileReader(pf, pqarrow.ArrowReadProperties{}, memory.DefaultAllocator)
	if err != nil {
		return nil, fmt.Errorf("create arrow reader: %w", err)
	}

	tbl, err := fr.ReadTable(ctx)
	if err != nil {
		return nil, fmt.Errorf("read table: %w", err)
	}
	defer tbl.Release()

	fields := tbl.Schema().Fields()
	records := make([]models.RawRecord, 0, tbl.NumRows())

	tr := array.NewTableReader(tbl, parquetBatchRows)
	defer tr.Release()

	for tr.Next() {
		rec := tr.Record()

		for row := 0; row < int(rec.NumRows()); row++ {
			raw := make(models.RawRecord, len(fields))

			for col, field := range fields {
				column := rec.Column(col)
				if column.IsNull(row) {
					continue
				}

				put(raw, field.Name, column.ValueStr(row))
			}

			records = append(records, raw)
		}
	}

	if err := tr.Err(); err != nil {
		return nil, fmt.Errorf("iterate table: %w", err)
	}

	return records, nil
}
