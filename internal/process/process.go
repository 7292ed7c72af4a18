// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package process drives the readability pipeline: it walks a directory of
// PDFs and, per file, extracts text, isolates equations, scores readability,
// enriches with catalog metadata, and accumulates one aggregate record.
package process

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/paperstat/paperstat/internal/catalog"
	"github.com/paperstat/paperstat/internal/equations"
	"github.com/paperstat/paperstat/internal/pdftext"
	"github.com/paperstat/paperstat/internal/readability"
	"github.com/paperstat/paperstat/pkg/types"
)

// MetadataSource answers catalog lookups for arXiv IDs. Satisfied by
// catalog.Client; tests substitute fakes.
type MetadataSource interface {
	PaperMetadata(ctx context.Context, arxivID string, cfg types.CatalogConfig) (*types.PaperMetadata, error)
}

// Pipeline holds the collaborators and settings for one processing run.
type Pipeline struct {
	// Extractor converts PDF files to cleaned text.
	Extractor pdftext.Extractor

	// Catalog answers metadata lookups. Nil disables them, same as
	// Process.SkipMetadata.
	Catalog MetadataSource

	// Process holds directory, format, and backend settings.
	Process types.ProcessConfig

	// CatalogConfig holds timeout, user agent, and politeness delay for
	// catalog calls.
	CatalogConfig types.CatalogConfig
}

// BatchResult holds the outcome of a processing run.
type BatchResult struct {
	Processed int
	Skipped   int
	Failed    []string
	Records   []types.PaperRecord
}

// Total returns the total number of directory entries considered.
func (r BatchResult) Total() int {
	return r.Processed + r.Skipped + len(r.Failed)
}

// HasFailures reports whether any files failed.
func (r BatchResult) HasFailures() bool {
	return len(r.Failed) > 0
}

// Run scans the input directory for PDF files (non-recursive, sorted order),
// processes each one, writes the aggregate table, and prints per-file status
// and a final summary to w. Individual file failures are recorded and
// skipped over; only an unreadable input directory or an unwritable
// aggregate table aborts the run.
func (p *Pipeline) Run(ctx context.Context, w io.Writer) (*BatchResult, error) {
	entries, err := os.ReadDir(p.Process.InputDir)
	if err != nil {
		return nil, fmt.Errorf("reading input directory %s: %w", p.Process.InputDir, err)
	}

	if err := os.MkdirAll(p.Process.OutputDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating output directory %s: %w", p.Process.OutputDir, err)
	}

	var result BatchResult
	lookupsOn := p.Catalog != nil && !p.Process.SkipMetadata
	seenPDF := false

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !strings.HasSuffix(name, ".pdf") {
			fmt.Fprintf(w, "skipped: %s (not a PDF)\n", name)
			result.Skipped++
			continue
		}

		select {
		case <-ctx.Done():
			return &result, ctx.Err()
		default:
		}

		// Politeness pause between consecutive catalog calls.
		if seenPDF && lookupsOn && p.CatalogConfig.Delay > 0 {
			time.Sleep(p.CatalogConfig.Delay)
		}
		seenPDF = true

		fmt.Fprintf(w, "processing: %s\n", name)
		record, err := p.ProcessFile(ctx, name, w)
		if err != nil {
			fmt.Fprintf(w, "failed:  %s (%v)\n", name, err)
			result.Failed = append(result.Failed, name)
			continue
		}
		result.Records = append(result.Records, record)
		result.Processed++
	}

	if err := p.writeTable(result.Records); err != nil {
		return &result, err
	}

	fmt.Fprintf(w, "\nBatch summary: %d processed, %d skipped, %d failed (total: %d)\n",
		result.Processed, result.Skipped, len(result.Failed), result.Total())
	return &result, nil
}

// ProcessFile runs the per-paper stages for one PDF: extract, isolate
// equations, write the text file and (when equations exist) the equation
// side-table, fetch metadata, score readability, and build the aggregate
// record. Metadata failures degrade to defaults with a warning on w; any
// other stage error fails the file.
func (p *Pipeline) ProcessFile(ctx context.Context, name string, w io.Writer) (types.PaperRecord, error) {
	pdfPath := filepath.Join(p.Process.InputDir, name)
	stem := strings.TrimSuffix(name, ".pdf")

	text, err := p.Extractor.ExtractText(pdfPath)
	if err != nil {
		return types.PaperRecord{}, fmt.Errorf("extracting text: %w", err)
	}

	body, eqs := equations.Isolate(text)

	textPath := filepath.Join(p.Process.OutputDir, stem+".txt")
	if err := os.WriteFile(textPath, []byte(body), 0o644); err != nil {
		return types.PaperRecord{}, fmt.Errorf("writing text file: %w", err)
	}

	equationPath := ""
	if len(eqs) > 0 {
		equationPath = filepath.Join(p.Process.OutputDir, stem+"_equations.csv")
		if err := writeEquationsCSV(equationPath, eqs); err != nil {
			return types.PaperRecord{}, fmt.Errorf("writing equation table: %w", err)
		}
	}

	arxivID := catalog.ExtractID(name)
	var meta *types.PaperMetadata
	if p.Catalog != nil && !p.Process.SkipMetadata && arxivID != "" {
		meta, err = p.Catalog.PaperMetadata(ctx, arxivID, p.CatalogConfig)
		if err != nil {
			fmt.Fprintf(w, "  warning: metadata unavailable: %s (%v)\n", arxivID, err)
			meta = nil
		}
	}

	metrics := readability.Analyze(body)

	record := types.PaperRecord{
		PaperID:           stem,
		ArxivID:           arxivID,
		TextPath:          textPath,
		EquationPath:      equationPath,
		Domain:            "Unknown",
		Year:              time.Now().Year(),
		WordCount:         metrics.WordCount,
		SentenceCount:     metrics.SentenceCount,
		AvgSentenceLength: metrics.AvgSentenceLength,
		FleschReadingEase: metrics.FleschReadingEase,
		GunningFog:        metrics.GunningFog,
		SMOGIndex:         metrics.SMOGIndex,
	}

	if meta != nil {
		if meta.PrimaryCategory != "" {
			record.Domain = meta.Domain()
		}
		if !meta.Published.IsZero() {
			record.Year = meta.Published.Year()
			record.PublishedDate = meta.Published.Format("2006-01-02")
		}
		record.Title = meta.Title
		record.Authors = meta.Authors
		record.PrimaryCategory = meta.PrimaryCategory
		record.Categories = meta.Categories
		record.DOI = meta.DOI
		record.JournalRef = meta.JournalRef
	}

	return record, nil
}

// writeTable persists the aggregate table in the configured format. The
// table is written even when no files processed, so downstream consumers
// always find it.
func (p *Pipeline) writeTable(records []types.PaperRecord) error {
	switch p.Process.Format {
	case types.OutputParquet:
		path := filepath.Join(p.Process.OutputDir, "paper_metadata.parquet")
		if err := writeParquetTable(path, records); err != nil {
			return fmt.Errorf("writing aggregate table: %w", err)
		}
	case types.OutputCSV, "":
		path := filepath.Join(p.Process.OutputDir, "paper_metadata.csv")
		if err := writeCSVTable(path, records); err != nil {
			return fmt.Errorf("writing aggregate table: %w", err)
		}
	default:
		return fmt.Errorf("unknown output format %q", p.Process.Format)
	}
	return nil
}
