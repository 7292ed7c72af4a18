// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/paperstat/paperstat/internal/store"
	"github.com/paperstat/paperstat/pkg/types"
)

var storeCmd = &cobra.Command{
	Use:   "store",
	Short: "Manage the paper store (ingest, query, export)",
	Long: `Store manages a local SQLite database of processed papers built from
aggregate pipeline tables. Use subcommands to ingest a table, query it with
filters and full-text search, or export matching records.`,
}

// --- ingest subcommand ---

var storeIngestCmd = &cobra.Command{
	Use:   "ingest",
	Short: "Ingest an aggregate table into the paper store",
	Long: `Ingest reads an aggregate CSV table and upserts its rows into the store,
keyed by paper ID, so re-ingesting a table replaces earlier rows. Each row's
processed text file is indexed for full-text search when readable.`,
	RunE: runStoreIngest,
}

func runStoreIngest(cmd *cobra.Command, args []string) error {
	tablePath, _ := cmd.Flags().GetString("table")
	textDir, _ := cmd.Flags().GetString("text-dir")

	s, err := store.NewStore(storeConfig(cmd))
	if err != nil {
		return err
	}
	defer s.Close()

	summary, err := s.Ingest(context.Background(), tablePath, textDir, os.Stdout)
	if err != nil {
		return err
	}
	if summary.Failed > 0 {
		return fmt.Errorf("%d row(s) failed ingestion", summary.Failed)
	}
	return nil
}

// --- query subcommand ---

var storeQueryCmd = &cobra.Command{
	Use:   "query",
	Short: "Query the paper store with filters and full-text search",
	Long: `Query lists stored papers matching the given filters: subject domain,
publication year range, and an FTS5 full-text search over titles and paper
bodies. Without filters it lists stored papers up to the limit.`,
	RunE: runStoreQuery,
}

func runStoreQuery(cmd *cobra.Command, args []string) error {
	s, err := store.NewStore(storeConfig(cmd))
	if err != nil {
		return err
	}
	defer s.Close()

	results, err := s.Query(context.Background(), storeQueryOpts(cmd))
	if err != nil {
		return err
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	return formatQueryOutput(results, jsonOutput)
}

func formatQueryOutput(results []types.PaperRecord, jsonOutput bool) error {
	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}

	if len(results) == 0 {
		fmt.Println("No results found.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-16s  %-8s  %-5s  %-7s  %-7s  %s\n",
		"Paper", "Domain", "Year", "Words", "Flesch", "Title")
	fmt.Fprintln(os.Stdout, strings.Repeat("-", 90))

	for _, r := range results {
		paper := r.PaperID
		if len(paper) > 16 {
			paper = paper[:13] + "..."
		}
		title := r.Title
		if len(title) > 40 {
			title = title[:37] + "..."
		}
		fmt.Fprintf(os.Stdout, "%-16s  %-8s  %-5d  %-7d  %-7.1f  %s\n",
			paper, r.Domain, r.Year, r.WordCount, r.FleschReadingEase, title)
	}

	fmt.Fprintf(os.Stdout, "\n%d results\n", len(results))
	return nil
}

// --- export subcommand ---

var storeExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export stored papers to YAML or JSON",
	Long: `Export writes stored records to stdout as YAML or JSON. It supports the
same filter flags as query for partial exports.`,
	RunE: runStoreExport,
}

func runStoreExport(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("fmt")

	s, err := store.NewStore(storeConfig(cmd))
	if err != nil {
		return err
	}
	defer s.Close()

	opts := storeQueryOpts(cmd)

	switch format {
	case "yaml", "":
		return s.ExportYAML(context.Background(), os.Stdout, opts)
	case "json":
		return s.ExportJSON(context.Background(), os.Stdout, opts)
	default:
		return fmt.Errorf("unsupported format %q: use yaml or json", format)
	}
}

// --- shared helpers ---

func storeConfig(cmd *cobra.Command) types.StoreConfig {
	return types.StoreConfig{
		DBPath:     stringSetting(cmd, "db", "store.db_path", "paperstat.db"),
		MaxResults: viper.GetInt("store.max_results"),
	}
}

func storeQueryOpts(cmd *cobra.Command) store.QueryOptions {
	domain, _ := cmd.Flags().GetString("domain")
	yearFrom, _ := cmd.Flags().GetInt("year-from")
	yearTo, _ := cmd.Flags().GetInt("year-to")
	match, _ := cmd.Flags().GetString("match")
	limit, _ := cmd.Flags().GetInt("limit")

	return store.QueryOptions{
		Domain:     domain,
		YearFrom:   yearFrom,
		YearTo:     yearTo,
		Match:      match,
		MaxResults: limit,
	}
}

func init() {
	// Shared flag on the parent command, inherited by subcommands.
	storeCmd.PersistentFlags().String("db", "", "SQLite database file (default paperstat.db)")

	// Ingest flags.
	storeIngestCmd.Flags().String("table", "", "aggregate CSV table to ingest (required)")
	storeIngestCmd.MarkFlagRequired("table")
	storeIngestCmd.Flags().String("text-dir", "", "directory of processed text files (default: paths recorded in the table)")

	// Query flags.
	storeQueryCmd.Flags().String("domain", "", "filter by subject domain (cs, math, ...)")
	storeQueryCmd.Flags().Int("year-from", 0, "earliest publication year")
	storeQueryCmd.Flags().Int("year-to", 0, "latest publication year")
	storeQueryCmd.Flags().String("match", "", "FTS5 full-text search over titles and bodies")
	storeQueryCmd.Flags().Int("limit", 0, "maximum results (0 = use default)")
	storeQueryCmd.Flags().Bool("json", false, "output results as JSON")

	// Export flags.
	storeExportCmd.Flags().String("fmt", "yaml", "export format: yaml or json")
	storeExportCmd.Flags().String("domain", "", "filter by subject domain for partial export")
	storeExportCmd.Flags().Int("year-from", 0, "earliest publication year for partial export")
	storeExportCmd.Flags().Int("year-to", 0, "latest publication year for partial export")
	storeExportCmd.Flags().String("match", "", "full-text search filter for partial export")
	storeExportCmd.Flags().Int("limit", 0, "maximum records to export (0 = all)")

	// Wire subcommands.
	storeCmd.AddCommand(storeIngestCmd)
	storeCmd.AddCommand(storeQueryCmd)
	storeCmd.AddCommand(storeExportCmd)

	rootCmd.AddCommand(storeCmd)
}
