// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the paperstat pipeline.
package types

import (
	"strings"
	"time"
)

// PaperMetadata holds the catalog's view of a paper, as returned by the
// arXiv API. All fields are already rendered the way the aggregate table
// stores them: joined author and category lists, defaulted journal reference.
type PaperMetadata struct {
	// Title is the paper title with internal whitespace collapsed.
	Title string `json:"title" yaml:"title"`

	// Authors is the author list joined by "; " in source order.
	Authors string `json:"authors" yaml:"authors"`

	// Published is the first publication date reported by the catalog.
	Published time.Time `json:"published" yaml:"published"`

	// PrimaryCategory is the primary subject classification (e.g. "cs.LG").
	PrimaryCategory string `json:"primary_category" yaml:"primary_category"`

	// Categories is the full category list joined by ", ".
	Categories string `json:"categories" yaml:"categories"`

	// DOI is the registered DOI, or empty when the catalog reports none.
	DOI string `json:"doi" yaml:"doi"`

	// JournalRef is the journal reference, or the literal "arXiv" when the
	// paper has not been published elsewhere.
	JournalRef string `json:"journal_ref" yaml:"journal_ref"`
}

// Domain returns the top-level subject area of the primary category:
// "cs.LG" yields "cs". Empty when no primary category is set.
func (m PaperMetadata) Domain() string {
	return strings.SplitN(m.PrimaryCategory, ".", 2)[0]
}

// PaperRecord is one row of the aggregate output table: identity, output file
// paths, text statistics, and whatever catalog metadata was retrievable.
// Metadata columns are empty strings when the catalog lookup failed.
type PaperRecord struct {
	// PaperID is the PDF filename without its extension.
	PaperID string `json:"paper_id" yaml:"paper_id" parquet:"paper_id"`

	// ArxivID is the identifier derived from the filename, or empty when the
	// filename does not follow arXiv naming.
	ArxivID string `json:"arxiv_id" yaml:"arxiv_id" parquet:"arxiv_id"`

	// TextPath is the path of the processed text file written for this paper.
	TextPath string `json:"text_path" yaml:"text_path" parquet:"text_path"`

	// EquationPath is the path of the equation side-table, or empty when the
	// paper contained no equations.
	EquationPath string `json:"equation_path" yaml:"equation_path" parquet:"equation_path"`

	// Domain is the top-level subject area ("cs", "math", ...), or "Unknown"
	// when no metadata was available.
	Domain string `json:"domain" yaml:"domain" parquet:"domain"`

	// Year is the publication year, or the processing year when no metadata
	// was available.
	Year int `json:"year" yaml:"year" parquet:"year"`

	// WordCount counts word tokens in the placeholder-stripped text.
	WordCount int `json:"word_count" yaml:"word_count" parquet:"word_count"`

	// SentenceCount counts sentences surviving the length filter.
	SentenceCount int `json:"sentence_count" yaml:"sentence_count" parquet:"sentence_count"`

	// AvgSentenceLength is WordCount/SentenceCount, or 0.0 with no sentences.
	AvgSentenceLength float64 `json:"avg_sentence_length" yaml:"avg_sentence_length" parquet:"avg_sentence_length"`

	// FleschReadingEase is the Flesch Reading Ease score of the cleaned text.
	FleschReadingEase float64 `json:"flesch_reading_ease" yaml:"flesch_reading_ease" parquet:"flesch_reading_ease"`

	// GunningFog is the Gunning Fog index of the cleaned text.
	GunningFog float64 `json:"gunning_fog" yaml:"gunning_fog" parquet:"gunning_fog"`

	// SMOGIndex is the SMOG grade of the cleaned text.
	SMOGIndex float64 `json:"smog_index" yaml:"smog_index" parquet:"smog_index"`

	// Title is the catalog title, or empty.
	Title string `json:"title" yaml:"title" parquet:"title"`

	// Authors is the "; "-joined author list, or empty.
	Authors string `json:"authors" yaml:"authors" parquet:"authors"`

	// PublishedDate is the publication date as YYYY-MM-DD, or empty.
	PublishedDate string `json:"published_date" yaml:"published_date" parquet:"published_date"`

	// PrimaryCategory is the primary subject classification, or empty.
	PrimaryCategory string `json:"primary_category" yaml:"primary_category" parquet:"primary_category"`

	// Categories is the ", "-joined category list, or empty.
	Categories string `json:"categories" yaml:"categories" parquet:"categories"`

	// DOI is the registered DOI, or empty.
	DOI string `json:"doi" yaml:"doi" parquet:"doi"`

	// JournalRef is the journal reference, "arXiv" for unpublished preprints,
	// or empty when no metadata was available.
	JournalRef string `json:"journal_ref" yaml:"journal_ref" parquet:"journal_ref"`
}
