// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/paperstat/paperstat/pkg/types"
)

// QueryOptions holds filters for store queries.
type QueryOptions struct {
	// Domain filters by top-level subject area ("cs", "math").
	Domain string

	// YearFrom and YearTo bound the publication year inclusively. Zero
	// disables a bound.
	YearFrom int
	YearTo   int

	// Match is an FTS5 full-text query over paper ID, title, and body.
	Match string

	// MaxResults limits result count. Zero uses the store default.
	MaxResults int
}

// IsEmpty reports whether the query has no search terms or filters.
func (q QueryOptions) IsEmpty() bool {
	return q.Domain == "" && q.YearFrom == 0 && q.YearTo == 0 && q.Match == ""
}

const recordColumns = `p.paper_id, p.arxiv_id, p.text_path, p.equation_path,
	p.domain, p.year, p.word_count, p.sentence_count, p.avg_sentence_length,
	p.flesch_reading_ease, p.gunning_fog, p.smog_index,
	p.title, p.authors, p.published_date, p.primary_category, p.categories,
	p.doi, p.journal_ref`

// Query returns records matching the filters, ranked by relevance for
// full-text queries or ordered by paper ID otherwise.
func (s *Store) Query(ctx context.Context, opts QueryOptions) ([]types.PaperRecord, error) {
	maxResults := opts.MaxResults
	if maxResults <= 0 {
		maxResults = s.maxResults
	}

	var (
		qb     strings.Builder
		args   []any
		useFTS = opts.Match != ""
	)

	if useFTS {
		qb.WriteString(`SELECT ` + recordColumns + `
			FROM papers_fts
			JOIN papers p ON p.rowid = papers_fts.rowid
			WHERE papers_fts MATCH ?`)
		args = append(args, opts.Match)
	} else {
		qb.WriteString(`SELECT ` + recordColumns + `
			FROM papers p
			WHERE 1=1`)
	}

	if opts.Domain != "" {
		qb.WriteString(` AND p.domain = ?`)
		args = append(args, opts.Domain)
	}
	if opts.YearFrom > 0 {
		qb.WriteString(` AND p.year >= ?`)
		args = append(args, opts.YearFrom)
	}
	if opts.YearTo > 0 {
		qb.WriteString(` AND p.year <= ?`)
		args = append(args, opts.YearTo)
	}

	if useFTS {
		qb.WriteString(` ORDER BY papers_fts.rank`)
	} else {
		qb.WriteString(` ORDER BY p.paper_id`)
	}
	qb.WriteString(` LIMIT ?`)
	args = append(args, maxResults)

	rows, err := s.db.QueryContext(ctx, qb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("querying papers: %w", err)
	}
	defer rows.Close()

	var results []types.PaperRecord
	for rows.Next() {
		var r types.PaperRecord
		if err := rows.Scan(
			&r.PaperID, &r.ArxivID, &r.TextPath, &r.EquationPath,
			&r.Domain, &r.Year, &r.WordCount, &r.SentenceCount, &r.AvgSentenceLength,
			&r.FleschReadingEase, &r.GunningFog, &r.SMOGIndex,
			&r.Title, &r.Authors, &r.PublishedDate, &r.PrimaryCategory, &r.Categories,
			&r.DOI, &r.JournalRef,
		); err != nil {
			return nil, fmt.Errorf("scanning row: %w", err)
		}
		results = append(results, r)
	}

	return results, rows.Err()
}
