// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package catalog looks up paper metadata on the arXiv export API.
//
// Lookups are best-effort enrichment: callers treat any returned error as
// "metadata unavailable" and substitute defaults rather than failing the
// paper being processed.
package catalog

import (
	"context"
	"encoding/xml"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/paperstat/paperstat/internal/httputil"
	"github.com/paperstat/paperstat/pkg/types"
)

// catalogAPIBase is the arXiv query endpoint. Declared as a var so tests
// can substitute an httptest server.
var catalogAPIBase = "https://export.arxiv.org/api/query"

// Client queries the arXiv catalog.
type Client struct {
	Client *http.Client
}

// PaperMetadata fetches the metadata bundle for one arXiv ID. Any failure
// (transport, non-200 status, malformed feed, unknown ID) is reported as an
// error; the caller decides what defaults to substitute.
func (c *Client) PaperMetadata(ctx context.Context, arxivID string, cfg types.CatalogConfig) (*types.PaperMetadata, error) {
	if arxivID == "" {
		return nil, fmt.Errorf("empty arXiv ID")
	}

	apiURL := fmt.Sprintf("%s?id_list=%s&max_results=1", catalogAPIBase, url.QueryEscape(arxivID))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, apiURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", cfg.UserAgent)

	resp, err := httputil.DoWithRetry(ctx, c.Client, req, 0)
	if err != nil {
		return nil, fmt.Errorf("arXiv API request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("arXiv API returned HTTP %d", resp.StatusCode)
	}

	var feed arxivFeed
	if err := xml.NewDecoder(resp.Body).Decode(&feed); err != nil {
		return nil, fmt.Errorf("parsing arXiv response: %w", err)
	}

	if len(feed.Entries) == 0 {
		return nil, fmt.Errorf("no entries found for arXiv ID %s", arxivID)
	}

	entry := feed.Entries[0]

	// Malformed IDs come back as a feed whose single entry is an error record.
	if strings.Contains(entry.ID, "/api/errors") {
		return nil, fmt.Errorf("arXiv API rejected ID %s", arxivID)
	}

	published, err := time.Parse(time.RFC3339, entry.Published)
	if err != nil {
		return nil, fmt.Errorf("parsing published date: %w", err)
	}

	meta := &types.PaperMetadata{
		Title:           collapseWhitespace(entry.Title),
		Published:       published,
		PrimaryCategory: entry.PrimaryCategory.Term,
		DOI:             entry.DOI,
		JournalRef:      entry.JournalRef,
	}

	var authors []string
	for _, a := range entry.Authors {
		authors = append(authors, strings.TrimSpace(a.Name))
	}
	meta.Authors = strings.Join(authors, "; ")

	var categories []string
	for _, cat := range entry.Categories {
		categories = append(categories, cat.Term)
	}
	meta.Categories = strings.Join(categories, ", ")

	if meta.JournalRef == "" {
		meta.JournalRef = "arXiv"
	}

	return meta, nil
}

// arXiv Atom feed XML structures. The arxiv-namespace extension elements
// (primary_category, doi, journal_ref) match on local name.
type arxivFeed struct {
	Entries []arxivEntry `xml:"entry"`
}

type arxivEntry struct {
	ID              string          `xml:"id"`
	Title           string          `xml:"title"`
	Published       string          `xml:"published"`
	Authors         []arxivAuthor   `xml:"author"`
	PrimaryCategory arxivCategory   `xml:"primary_category"`
	Categories      []arxivCategory `xml:"category"`
	DOI             string          `xml:"doi"`
	JournalRef      string          `xml:"journal_ref"`
}

type arxivAuthor struct {
	Name string `xml:"name"`
}

type arxivCategory struct {
	Term string `xml:"term,attr"`
}

// collapseWhitespace trims a string and folds internal whitespace runs to
// single spaces. Atom feeds wrap long titles across indented lines.
func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
