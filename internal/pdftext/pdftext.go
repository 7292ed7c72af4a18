// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pdftext extracts and normalizes text from PDF files with
// pluggable backends.
package pdftext

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/paperstat/paperstat/pkg/types"
)

// Extractor turns a PDF file into cleaned text. Different backends
// (text layer, content stream) implement this interface.
type Extractor interface {
	// Name returns the backend identifier.
	Name() string

	// ExtractText reads the PDF at path and returns its text, one segment
	// per page in document order, pages separated by a blank line, with the
	// page-level cleanup rules already applied.
	ExtractText(path string) (string, error)
}

// NewExtractor returns the extraction backend for the given name. An empty
// name selects the text-layer backend.
func NewExtractor(backend types.ExtractionBackend) (Extractor, error) {
	switch backend {
	case types.BackendTextLayer, "":
		return &TextLayerExtractor{}, nil
	case types.BackendStream:
		return &StreamExtractor{}, nil
	default:
		return nil, fmt.Errorf("unknown extraction backend %q", backend)
	}
}

// pageNumberRe matches a line consisting solely of a digit run (the usual
// centered page number) together with the blank space around it.
var pageNumberRe = regexp.MustCompile(`\s*\n\s*\d+\s*\n\s*`)

// hyphenBreakRe matches a hyphen at a line break and the continuation of
// the broken word.
var hyphenBreakRe = regexp.MustCompile(`-\n(\w+)`)

// cleanPage applies the per-page cleanup rules in order: page-number lines
// collapse to a single newline, then line-wrapped words are rejoined.
// Ligature glyphs pass through as the font encodes them.
func cleanPage(text string) string {
	text = pageNumberRe.ReplaceAllString(text, "\n")
	text = hyphenBreakRe.ReplaceAllString(text, "$1")
	return text
}

// joinPages concatenates cleaned pages with a blank line between them.
func joinPages(pages []string) string {
	return strings.Join(pages, "\n\n")
}
