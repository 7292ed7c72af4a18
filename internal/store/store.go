// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package store persists aggregate pipeline records in SQLite and serves
// filtered and full-text queries over them.
package store

import (
	"context"
	"database/sql"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/paperstat/paperstat/pkg/types"
)

// Store manages the paper database.
type Store struct {
	db         *sql.DB
	maxResults int
}

// NewStore opens or creates the SQLite database at cfg.DBPath. It creates
// the parent directory and the schema if they do not exist.
func NewStore(cfg types.StoreConfig) (*Store, error) {
	if dir := filepath.Dir(cfg.DBPath); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", cfg.DBPath+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = 20
	}

	s := &Store{db: db, maxResults: maxResults}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS papers (
			rowid INTEGER PRIMARY KEY AUTOINCREMENT,
			paper_id TEXT NOT NULL UNIQUE,
			arxiv_id TEXT,
			text_path TEXT,
			equation_path TEXT,
			domain TEXT,
			year INTEGER,
			word_count INTEGER,
			sentence_count INTEGER,
			avg_sentence_length REAL,
			flesch_reading_ease REAL,
			gunning_fog REAL,
			smog_index REAL,
			title TEXT,
			authors TEXT,
			published_date TEXT,
			primary_category TEXT,
			categories TEXT,
			doi TEXT,
			journal_ref TEXT,
			body TEXT,
			ingested_at TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_papers_domain ON papers(domain)`,
		`CREATE INDEX IF NOT EXISTS idx_papers_year ON papers(year)`,
	}

	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}

	// FTS5 virtual table with triggers for sync.
	var ftsExists int
	if err := s.db.QueryRow(
		`SELECT count(*) FROM sqlite_master WHERE type='table' AND name='papers_fts'`,
	).Scan(&ftsExists); err != nil {
		return fmt.Errorf("checking FTS table: %w", err)
	}

	if ftsExists == 0 {
		ftsStatements := []string{
			`CREATE VIRTUAL TABLE papers_fts USING fts5(paper_id, title, body, content=papers, content_rowid=rowid)`,
			`CREATE TRIGGER papers_ai AFTER INSERT ON papers BEGIN
				INSERT INTO papers_fts(rowid, paper_id, title, body) VALUES (new.rowid, new.paper_id, new.title, new.body);
			END`,
			`CREATE TRIGGER papers_ad AFTER DELETE ON papers BEGIN
				INSERT INTO papers_fts(papers_fts, rowid, paper_id, title, body) VALUES('delete', old.rowid, old.paper_id, old.title, old.body);
			END`,
			`CREATE TRIGGER papers_au AFTER UPDATE ON papers BEGIN
				INSERT INTO papers_fts(papers_fts, rowid, paper_id, title, body) VALUES('delete', old.rowid, old.paper_id, old.title, old.body);
				INSERT INTO papers_fts(rowid, paper_id, title, body) VALUES (new.rowid, new.paper_id, new.title, new.body);
			END`,
		}
		for _, stmt := range ftsStatements {
			if _, err := s.db.Exec(stmt); err != nil {
				return fmt.Errorf("creating FTS infrastructure: %w", err)
			}
		}
	}

	return nil
}

// IngestSummary holds counts from an aggregate table ingestion run.
type IngestSummary struct {
	Ingested int
	Updated  int
	Failed   int
}

// Total returns the number of rows processed.
func (s IngestSummary) Total() int {
	return s.Ingested + s.Updated + s.Failed
}

// Ingest reads an aggregate CSV table and upserts its rows keyed by
// paper_id, so re-ingesting a table replaces earlier rows. Each row's
// processed text file is loaded into the full-text body when readable;
// textDir overrides the location recorded in the table. Malformed rows are
// counted and skipped.
func (s *Store) Ingest(ctx context.Context, csvPath, textDir string, w io.Writer) (IngestSummary, error) {
	f, err := os.Open(csvPath)
	if err != nil {
		return IngestSummary{}, fmt.Errorf("opening aggregate table %s: %w", csvPath, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	header, err := r.Read()
	if err != nil {
		return IngestSummary{}, fmt.Errorf("reading table header: %w", err)
	}
	col := make(map[string]int, len(header))
	for i, name := range header {
		col[name] = i
	}

	var summary IngestSummary

	for {
		select {
		case <-ctx.Done():
			return summary, ctx.Err()
		default:
		}

		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return summary, fmt.Errorf("reading table row: %w", err)
		}

		rec, err := recordFromRow(col, row)
		if err != nil {
			fmt.Fprintf(w, "failed  %s: %v\n", rowField(col, row, "paper_id"), err)
			summary.Failed++
			continue
		}

		body := loadBody(rec, textDir)

		isUpdate, err := s.upsertPaper(ctx, rec, body)
		if err != nil {
			fmt.Fprintf(w, "failed  %s: %v\n", rec.PaperID, err)
			summary.Failed++
			continue
		}
		if isUpdate {
			fmt.Fprintf(w, "updated %s\n", rec.PaperID)
			summary.Updated++
		} else {
			fmt.Fprintf(w, "ingested %s\n", rec.PaperID)
			summary.Ingested++
		}
	}

	fmt.Fprintf(w, "\ningested: %d, updated: %d, failed: %d\n",
		summary.Ingested, summary.Updated, summary.Failed)

	return summary, nil
}

func (s *Store) upsertPaper(ctx context.Context, rec types.PaperRecord, body string) (isUpdate bool, err error) {
	var existing int
	if err := s.db.QueryRowContext(ctx,
		`SELECT count(*) FROM papers WHERE paper_id = ?`, rec.PaperID,
	).Scan(&existing); err != nil {
		return false, fmt.Errorf("checking existing row: %w", err)
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO papers (paper_id, arxiv_id, text_path, equation_path, domain, year,
			word_count, sentence_count, avg_sentence_length,
			flesch_reading_ease, gunning_fog, smog_index,
			title, authors, published_date, primary_category, categories, doi, journal_ref,
			body, ingested_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(paper_id) DO UPDATE SET
			arxiv_id=excluded.arxiv_id, text_path=excluded.text_path,
			equation_path=excluded.equation_path, domain=excluded.domain,
			year=excluded.year, word_count=excluded.word_count,
			sentence_count=excluded.sentence_count,
			avg_sentence_length=excluded.avg_sentence_length,
			flesch_reading_ease=excluded.flesch_reading_ease,
			gunning_fog=excluded.gunning_fog, smog_index=excluded.smog_index,
			title=excluded.title, authors=excluded.authors,
			published_date=excluded.published_date,
			primary_category=excluded.primary_category, categories=excluded.categories,
			doi=excluded.doi, journal_ref=excluded.journal_ref,
			body=excluded.body, ingested_at=excluded.ingested_at`,
		rec.PaperID, rec.ArxivID, rec.TextPath, rec.EquationPath, rec.Domain, rec.Year,
		rec.WordCount, rec.SentenceCount, rec.AvgSentenceLength,
		rec.FleschReadingEase, rec.GunningFog, rec.SMOGIndex,
		rec.Title, rec.Authors, rec.PublishedDate, rec.PrimaryCategory, rec.Categories,
		rec.DOI, rec.JournalRef, body, time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return false, fmt.Errorf("upserting paper: %w", err)
	}

	return existing > 0, nil
}

// rowField returns the named column of row, or "" when the table lacks it.
func rowField(col map[string]int, row []string, name string) string {
	i, ok := col[name]
	if !ok || i >= len(row) {
		return ""
	}
	return row[i]
}

// recordFromRow builds a PaperRecord from one CSV row, resolving columns
// by header name.
func recordFromRow(col map[string]int, row []string) (types.PaperRecord, error) {
	get := func(name string) string { return rowField(col, row, name) }

	rec := types.PaperRecord{
		PaperID:         get("paper_id"),
		ArxivID:         get("arxiv_id"),
		TextPath:        get("text_path"),
		EquationPath:    get("equation_path"),
		Domain:          get("domain"),
		Title:           get("title"),
		Authors:         get("authors"),
		PublishedDate:   get("published_date"),
		PrimaryCategory: get("primary_category"),
		Categories:      get("categories"),
		DOI:             get("doi"),
		JournalRef:      get("journal_ref"),
	}
	if rec.PaperID == "" {
		return rec, fmt.Errorf("missing paper_id")
	}

	ints := []struct {
		name string
		dst  *int
	}{
		{"year", &rec.Year},
		{"word_count", &rec.WordCount},
		{"sentence_count", &rec.SentenceCount},
	}
	for _, f := range ints {
		v := get(f.name)
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return rec, fmt.Errorf("parsing %s: %w", f.name, err)
		}
		*f.dst = n
	}

	floats := []struct {
		name string
		dst  *float64
	}{
		{"avg_sentence_length", &rec.AvgSentenceLength},
		{"flesch_reading_ease", &rec.FleschReadingEase},
		{"gunning_fog", &rec.GunningFog},
		{"smog_index", &rec.SMOGIndex},
	}
	for _, f := range floats {
		v := get(f.name)
		if v == "" {
			continue
		}
		x, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return rec, fmt.Errorf("parsing %s: %w", f.name, err)
		}
		*f.dst = x
	}

	return rec, nil
}

// loadBody reads the processed text for a record. An unreadable or missing
// file is not an error: the row still ingests, just without a full-text
// body.
func loadBody(rec types.PaperRecord, textDir string) string {
	path := rec.TextPath
	if textDir != "" {
		path = filepath.Join(textDir, rec.PaperID+".txt")
	}
	if path == "" {
		return ""
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	return string(data)
}
