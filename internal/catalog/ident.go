// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package catalog

import "regexp"

// arxivFilePattern matches arXiv-named PDF files: "2301.07041.pdf",
// "2301.07041v2.pdf". The ID is captured without the version suffix.
var arxivFilePattern = regexp.MustCompile(`(\d{4}\.\d{4,5})(v\d+)?\.pdf$`)

// ExtractID pulls the arXiv ID out of a PDF filename, stripping any version
// suffix and the extension. Returns "" when the filename does not follow
// arXiv naming. Callers pass base names, not full paths.
func ExtractID(filename string) string {
	m := arxivFilePattern.FindStringSubmatch(filename)
	if m == nil {
		return ""
	}
	return m[1]
}
