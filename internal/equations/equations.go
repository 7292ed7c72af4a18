// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package equations isolates LaTeX-style equations behind placeholder
// tokens so math markup cannot pollute sentence detection or word counts.
// The isolated sources stay recoverable through the returned records.
package equations

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/paperstat/paperstat/pkg/types"
)

// patterns pairs each equation regex with the kind it captures. Order
// matters: equation environments are consumed before bracket display
// blocks, which are consumed before inline dollar spans, so a later pass
// never reaches inside text an earlier pass already replaced.
var patterns = []struct {
	re   *regexp.Regexp
	kind types.EquationKind
}{
	{regexp.MustCompile(`(?s)\\begin\{equation\}(.*?)\\end\{equation\}`), types.EquationDisplay},
	{regexp.MustCompile(`(?s)\\\[(.*?)\\\]`), types.EquationDisplay},
	{regexp.MustCompile(`(?s)\$(.*?)\$`), types.EquationInline},
}

// Isolate replaces every equation occurrence in text with a placeholder of
// the form [EQ_<KIND>_<id>] and returns the transformed text plus one
// record per placeholder, in assignment order. IDs come from a single
// counter shared across all kinds, starting at 1.
//
// Each pattern pass finds all its matches against a snapshot of the text
// as it stood when the pass started, then substitutes them one by one,
// each replacing the first literal occurrence of its matched source. On
// text that already contains only placeholders, Isolate returns the input
// unchanged with no records.
func Isolate(text string) (string, []types.EquationRecord) {
	var records []types.EquationRecord
	counter := 1

	for _, p := range patterns {
		snapshot := text
		for _, m := range p.re.FindAllStringSubmatch(snapshot, -1) {
			body := strings.TrimSpace(m[1])
			placeholder := fmt.Sprintf("[EQ_%s_%d]", p.kind, counter)
			text = strings.Replace(text, m[0], placeholder, 1)
			records = append(records, types.EquationRecord{
				Placeholder: placeholder,
				Equation:    body,
				Kind:        p.kind,
				WordCount:   len(strings.Fields(body)),
			})
			counter++
		}
	}

	return text, records
}
