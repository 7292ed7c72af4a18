// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package process

import (
	"fmt"
	"os"

	"github.com/parquet-go/parquet-go"

	"github.com/paperstat/paperstat/pkg/types"
)

// writeParquetTable writes the aggregate table as Parquet. Column names
// come from the parquet struct tags on types.PaperRecord, so the schema
// matches the CSV header. An empty record slice produces a valid file with
// schema and zero rows.
func writeParquetTable(path string, records []types.PaperRecord) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}

	pw := parquet.NewGenericWriter[types.PaperRecord](f)
	if len(records) > 0 {
		if _, err := pw.Write(records); err != nil {
			pw.Close()
			f.Close()
			return fmt.Errorf("writing parquet rows: %w", err)
		}
	}
	if err := pw.Close(); err != nil {
		f.Close()
		return fmt.Errorf("closing parquet writer: %w", err)
	}
	return f.Close()
}
