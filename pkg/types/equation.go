// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// EquationKind distinguishes display equations from inline ones.
type EquationKind string

const (
	EquationDisplay EquationKind = "DISPLAY"
	EquationInline  EquationKind = "INLINE"
)

// EquationRecord captures one equation lifted out of a paper's text. Created
// during isolation, persisted to the per-paper side-table, never mutated.
type EquationRecord struct {
	// Placeholder is the token substituted into the text, e.g. "[EQ_DISPLAY_1]".
	// Unique within a paper.
	Placeholder string `json:"placeholder" yaml:"placeholder"`

	// Equation is the equation body with surrounding whitespace trimmed.
	Equation string `json:"equation" yaml:"equation"`

	// Kind is DISPLAY or INLINE.
	Kind EquationKind `json:"type" yaml:"type"`

	// WordCount counts whitespace-separated tokens of the body.
	WordCount int `json:"length" yaml:"length"`
}
