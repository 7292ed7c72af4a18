package main

import (
	"context"
	"fmt"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/paperstat/paperstat/internal/catalog"
	"github.com/paperstat/paperstat/pkg/types"
)

var lookupCmd = &cobra.Command{
	Use:   "lookup <arxiv-id>",
	Short: "Look up arXiv catalog metadata for one paper",
	Long: `Lookup queries the arXiv API for a single ID and prints the metadata
bundle as field: value lines. The command fails when the catalog has no
answer for the ID.`,
	Args: cobra.ExactArgs(1),
	RunE: runLookup,
}

func init() {
	lookupCmd.Flags().Duration("timeout", 0, "catalog HTTP timeout (default 30s)")
	lookupCmd.Flags().String("user-agent", "", "User-Agent for catalog requests")

	rootCmd.AddCommand(lookupCmd)
}

func runLookup(cmd *cobra.Command, args []string) error {
	cfg := types.CatalogConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:   durationSetting(cmd, "timeout", "catalog.timeout", defaultTimeout),
			UserAgent: stringSetting(cmd, "user-agent", "catalog.user_agent", defaultUserAgent),
		},
	}

	client := &catalog.Client{Client: &http.Client{Timeout: cfg.Timeout}}
	meta, err := client.PaperMetadata(context.Background(), args[0], cfg)
	if err != nil {
		return fmt.Errorf("looking up %s: %w", args[0], err)
	}

	published := ""
	if !meta.Published.IsZero() {
		published = meta.Published.Format("2006-01-02")
	}

	fmt.Printf("arxiv_id: %s\n", args[0])
	fmt.Printf("title: %s\n", meta.Title)
	fmt.Printf("authors: %s\n", meta.Authors)
	fmt.Printf("published: %s\n", published)
	fmt.Printf("primary_category: %s\n", meta.PrimaryCategory)
	fmt.Printf("categories: %s\n", meta.Categories)
	fmt.Printf("doi: %s\n", meta.DOI)
	fmt.Printf("journal_ref: %s\n", meta.JournalRef)
	return nil
}
