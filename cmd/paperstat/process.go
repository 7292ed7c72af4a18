package main

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/paperstat/paperstat/internal/catalog"
	"github.com/paperstat/paperstat/internal/pdftext"
	"github.com/paperstat/paperstat/internal/process"
	"github.com/paperstat/paperstat/pkg/types"
)

const (
	defaultTimeout   = 30 * time.Second
	defaultDelay     = 3 * time.Second
	defaultUserAgent = "paperstat/0.1"
)

var processCmd = &cobra.Command{
	Use:   "process",
	Short: "Process a directory of PDFs into text files and a readability table",
	Long: `Process scans a directory for PDF files and, for each one, extracts the
text, isolates LaTeX equations behind placeholders, computes readability
statistics, and looks up arXiv catalog metadata. Per-paper text files and
equation side-tables are written to the output directory along with an
aggregate table (CSV or Parquet).

Individual file failures are reported and skipped; the run only fails when
the input directory is unreadable or the aggregate table cannot be written.`,
	RunE: runProcess,
}

func init() {
	processCmd.Flags().String("input", "", "directory scanned for PDF files (required)")
	processCmd.Flags().String("output", "", "directory for text files and the aggregate table (required)")
	processCmd.MarkFlagRequired("input")
	processCmd.MarkFlagRequired("output")

	processCmd.Flags().String("format", "", "aggregate table format: csv or parquet (default csv)")
	processCmd.Flags().String("backend", "", "PDF extraction backend: textlayer or stream (default textlayer)")
	processCmd.Flags().Duration("timeout", 0, "catalog HTTP timeout (default 30s)")
	processCmd.Flags().Duration("delay", 0, "pause between consecutive catalog calls (default 3s)")
	processCmd.Flags().String("user-agent", "", "User-Agent for catalog requests")
	processCmd.Flags().Bool("skip-metadata", false, "skip catalog lookups; records get default domain and year")

	rootCmd.AddCommand(processCmd)
}

func runProcess(cmd *cobra.Command, args []string) error {
	inputDir, _ := cmd.Flags().GetString("input")
	outputDir, _ := cmd.Flags().GetString("output")
	skipMetadata, _ := cmd.Flags().GetBool("skip-metadata")

	procCfg := types.ProcessConfig{
		InputDir:     inputDir,
		OutputDir:    outputDir,
		Format:       types.OutputFormat(stringSetting(cmd, "format", "process.format", string(types.OutputCSV))),
		Backend:      types.ExtractionBackend(stringSetting(cmd, "backend", "process.backend", string(types.BackendTextLayer))),
		SkipMetadata: skipMetadata,
	}
	catalogCfg := types.CatalogConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:   durationSetting(cmd, "timeout", "catalog.timeout", defaultTimeout),
			UserAgent: stringSetting(cmd, "user-agent", "catalog.user_agent", defaultUserAgent),
		},
		Delay: durationSetting(cmd, "delay", "catalog.delay", defaultDelay),
	}

	extractor, err := pdftext.NewExtractor(procCfg.Backend)
	if err != nil {
		return err
	}

	p := &process.Pipeline{
		Extractor:     extractor,
		Catalog:       &catalog.Client{Client: &http.Client{Timeout: catalogCfg.Timeout}},
		Process:       procCfg,
		CatalogConfig: catalogCfg,
	}

	// Per-file failures are already reported in the batch output and do not
	// affect the exit status; only table-level errors do.
	_, err = p.Run(context.Background(), os.Stdout)
	return err
}
