// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package process

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/paperstat/paperstat/pkg/types"
)

// aggregateColumns is the header of the aggregate table, in output order.
var aggregateColumns = []string{
	"paper_id", "arxiv_id", "text_path", "equation_path",
	"domain", "year",
	"word_count", "sentence_count", "avg_sentence_length",
	"flesch_reading_ease", "gunning_fog", "smog_index",
	"title", "authors", "published_date",
	"primary_category", "categories", "doi", "journal_ref",
}

// recordRow renders one aggregate record as CSV fields in column order.
func recordRow(r types.PaperRecord) []string {
	return []string{
		r.PaperID, r.ArxivID, r.TextPath, r.EquationPath,
		r.Domain, strconv.Itoa(r.Year),
		strconv.Itoa(r.WordCount), strconv.Itoa(r.SentenceCount), formatFloat(r.AvgSentenceLength),
		formatFloat(r.FleschReadingEase), formatFloat(r.GunningFog), formatFloat(r.SMOGIndex),
		r.Title, r.Authors, r.PublishedDate,
		r.PrimaryCategory, r.Categories, r.DOI, r.JournalRef,
	}
}

// formatFloat renders a float with the minimal digits that round-trip.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// writeCSVTable writes the aggregate table as CSV with a header row. An
// empty record slice still produces the header.
func writeCSVTable(path string, records []types.PaperRecord) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}

	cw := csv.NewWriter(f)
	if err := cw.Write(aggregateColumns); err != nil {
		f.Close()
		return fmt.Errorf("writing header: %w", err)
	}
	for _, r := range records {
		if err := cw.Write(recordRow(r)); err != nil {
			f.Close()
			return fmt.Errorf("writing row %s: %w", r.PaperID, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		f.Close()
		return fmt.Errorf("flushing CSV: %w", err)
	}
	return f.Close()
}

// writeEquationsCSV writes a per-paper equation side-table with columns
// placeholder, equation, type, length.
func writeEquationsCSV(path string, eqs []types.EquationRecord) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}

	cw := csv.NewWriter(f)
	if err := cw.Write([]string{"placeholder", "equation", "type", "length"}); err != nil {
		f.Close()
		return fmt.Errorf("writing header: %w", err)
	}
	for _, eq := range eqs {
		row := []string{eq.Placeholder, eq.Equation, string(eq.Kind), strconv.Itoa(eq.WordCount)}
		if err := cw.Write(row); err != nil {
			f.Close()
			return fmt.Errorf("writing row %s: %w", eq.Placeholder, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		f.Close()
		return fmt.Errorf("flushing CSV: %w", err)
	}
	return f.Close()
}
