// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pdftext

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/paperstat/paperstat/pkg/types"
)

func TestCleanPage(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			"page number collapses to newline",
			"end of section.\n42\nNext section starts",
			"end of section.\nNext section starts",
		},
		{
			"page number with surrounding blanks",
			"end of section.\n\n  42  \n\nNext section starts",
			"end of section.\nNext section starts",
		},
		{
			"hyphenated word rejoined",
			"a distri-\nbuted system",
			"a distributed system",
		},
		{
			"hyphen inside line untouched",
			"state-of-the-art results",
			"state-of-the-art results",
		},
		{
			"digits inside a line untouched",
			"accuracy of 95 percent\nand more",
			"accuracy of 95 percent\nand more",
		},
		{
			"multi digit page number",
			"end of page.\n107\nStart of next",
			"end of page.\nStart of next",
		},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cleanPage(tt.in); got != tt.want {
				t.Errorf("cleanPage(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestCleanPageOrder(t *testing.T) {
	// The page-number rule runs first: the digit line between the hyphen
	// and the continuation collapses, then the dehyphenation rule joins
	// across the single newline it left behind.
	in := "distri-\n12\nbuted"
	want := "distributed"
	if got := cleanPage(in); got != want {
		t.Errorf("cleanPage(%q) = %q, want %q", in, got, want)
	}
}

func TestJoinPages(t *testing.T) {
	got := joinPages([]string{"page one", "page two", ""})
	want := "page one\n\npage two\n\n"
	if got != want {
		t.Errorf("joinPages = %q, want %q", got, want)
	}
}

func TestNewExtractor(t *testing.T) {
	tests := []struct {
		name     string
		backend  types.ExtractionBackend
		wantName string
		wantErr  bool
	}{
		{"textlayer", types.BackendTextLayer, "textlayer", false},
		{"stream", types.BackendStream, "stream", false},
		{"default empty", "", "textlayer", false},
		{"unknown", "mupdf", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, err := NewExtractor(tt.backend)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("NewExtractor: %v", err)
			}
			if e.Name() != tt.wantName {
				t.Errorf("Name() = %q, want %q", e.Name(), tt.wantName)
			}
		})
	}
}

func TestExtractTextUnreadableFile(t *testing.T) {
	backends := []Extractor{&TextLayerExtractor{}, &StreamExtractor{}}
	for _, e := range backends {
		t.Run(e.Name(), func(t *testing.T) {
			if _, err := e.ExtractText(filepath.Join(t.TempDir(), "missing.pdf")); err == nil {
				t.Error("expected error for missing file")
			}
		})
	}
}

func TestExtractTextInvalidDocument(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "not-a-pdf.pdf")
	if err := os.WriteFile(path, []byte("this is plain text, not a PDF"), 0o644); err != nil {
		t.Fatal(err)
	}

	backends := []Extractor{&TextLayerExtractor{}, &StreamExtractor{}}
	for _, e := range backends {
		t.Run(e.Name(), func(t *testing.T) {
			if _, err := e.ExtractText(path); err == nil {
				t.Error("expected error for invalid document")
			}
		})
	}
}

func TestTextFromStream(t *testing.T) {
	stream := strings.Join([]string{
		"BT",
		"/F1 12 Tf",
		"72 720 Td",
		"(The model achieves) Tj",
		"0 -14 Td",
		"[(an accuracy) -250 (of 95%.)] TJ",
		"T*",
		"(Final line with \\050parens\\051) Tj",
		"ET",
	}, "\n")

	got := textFromStream([]byte(stream))

	for _, want := range []string{"The model achieves", "an accuracyof 95%.", "Final line with (parens)"} {
		if !strings.Contains(got, want) {
			t.Errorf("textFromStream output %q missing %q", got, want)
		}
	}
	// Td moves become line breaks so page-number cleanup sees real lines.
	if !strings.Contains(got, "achieves\n") {
		t.Errorf("expected newline after Td move, got %q", got)
	}
}

func TestDecodePDFString(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "hello", "hello"},
		{"escaped parens", `\(x\)`, "(x)"},
		{"newline tab", `a\nb\tc`, "a\nb\tc"},
		{"octal space", `a\040b`, "a b"},
		{"octal one digit", `\7x`, "\x07x"},
		{"backslash", `a\\b`, `a\b`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := decodePDFString([]byte(tt.in)); got != tt.want {
				t.Errorf("decodePDFString(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
