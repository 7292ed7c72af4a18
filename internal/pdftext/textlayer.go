// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pdftext

import (
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// TextLayerExtractor reads the PDF's embedded text layer. Row-by-row
// reconstruction keeps real line breaks in the output, which the cleanup
// rules (page numbers, hyphenation) depend on.
type TextLayerExtractor struct{}

// Name returns the backend identifier.
func (e *TextLayerExtractor) Name() string { return "textlayer" }

// ExtractText extracts per-page text and applies the shared cleanup rules.
func (e *TextLayerExtractor) ExtractText(path string) (string, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("opening PDF: %w", err)
	}
	defer f.Close()

	var pages []string
	for i := 1; i <= r.NumPage(); i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}

		rows, err := page.GetTextByRow()
		if err != nil {
			return "", fmt.Errorf("reading page %d: %w", i, err)
		}

		var b strings.Builder
		for _, row := range rows {
			words := make([]string, 0, len(row.Content))
			for _, word := range row.Content {
				words = append(words, word.S)
			}
			b.WriteString(strings.Join(words, " "))
			b.WriteByte('\n')
		}
		pages = append(pages, cleanPage(b.String()))
	}

	return joinPages(pages), nil
}
