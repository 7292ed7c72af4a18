package types

import "time"

// HTTPConfig holds shared HTTP settings used by stages that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "paperstat/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// CatalogConfig holds settings for catalog metadata lookups.
type CatalogConfig struct {
	HTTPConfig `yaml:",inline"`

	// Delay is the politeness pause between consecutive catalog calls
	// (default 0; the catalog asks batch users for 3s).
	Delay time.Duration `json:"delay" yaml:"delay"`
}

// ExtractionBackend identifies the PDF text-extraction strategy.
type ExtractionBackend string

const (
	BackendTextLayer ExtractionBackend = "textlayer"
	BackendStream    ExtractionBackend = "stream"
)

// OutputFormat selects the aggregate table format.
type OutputFormat string

const (
	OutputCSV     OutputFormat = "csv"
	OutputParquet OutputFormat = "parquet"
)

// ProcessConfig holds settings for the processing pipeline.
type ProcessConfig struct {
	// InputDir is the directory scanned for PDF files (non-recursive).
	InputDir string `json:"input_dir" yaml:"input_dir"`

	// OutputDir receives per-paper text files, equation side-tables, and the
	// aggregate table.
	OutputDir string `json:"output_dir" yaml:"output_dir"`

	// Format selects the aggregate table format: csv or parquet.
	Format OutputFormat `json:"format" yaml:"format"`

	// Backend selects the extraction strategy: textlayer or stream.
	Backend ExtractionBackend `json:"backend" yaml:"backend"`

	// SkipMetadata disables catalog lookups; every record gets default
	// domain and year.
	SkipMetadata bool `json:"skip_metadata" yaml:"skip_metadata"`
}

// StoreConfig holds settings for the paper store.
type StoreConfig struct {
	// DBPath is the SQLite database file path.
	DBPath string `json:"db_path" yaml:"db_path"`

	// MaxResults is the default maximum number of query results (default 20).
	MaxResults int `json:"max_results" yaml:"max_results"`
}

// PipelineConfig groups all stage configurations for the pipeline.
type PipelineConfig struct {
	Process ProcessConfig `json:"process" yaml:"process"`
	Catalog CatalogConfig `json:"catalog" yaml:"catalog"`
	Store   StoreConfig   `json:"store" yaml:"store"`
}
