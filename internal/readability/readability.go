// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package readability computes word and sentence statistics plus standard
// readability scores over equation-stripped paper text.
package readability

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/paperstat/paperstat/pkg/types"
)

// placeholderRe matches the tokens the equation isolator substitutes into
// text, e.g. "[EQ_DISPLAY_12]". They are removed before any counting so a
// placeholder never registers as a word.
var placeholderRe = regexp.MustCompile(`\[EQ_\w+_\d+\]`)

// wordRe tokenizes words: runs of word characters and internal hyphens.
var wordRe = regexp.MustCompile(`\b[\w-]+\b`)

// Analyze strips equation placeholders from text and computes the metrics
// bundle. All counts are zero and all ratios exactly 0.0 on empty input.
func Analyze(text string) types.ReadabilityMetrics {
	clean := placeholderRe.ReplaceAllString(text, "")

	sentences := splitSentences(clean)
	words := wordRe.FindAllString(clean, -1)

	m := types.ReadabilityMetrics{
		WordCount:     len(words),
		SentenceCount: len(sentences),
	}
	if len(sentences) > 0 {
		m.AvgSentenceLength = float64(len(words)) / float64(len(sentences))
	}

	st := computeStats(clean)
	m.FleschReadingEase = st.fleschReadingEase()
	m.GunningFog = st.gunningFog()
	m.SMOGIndex = st.smogIndex()

	return m
}

// splitSentences splits text at sentence boundaries: a whitespace run
// immediately preceded by '.', '!' or '?' and immediately followed by an
// uppercase letter. A period sitting directly after a one- or two-letter
// token does not end a sentence; that shape is almost always an
// abbreviation or initial ("et al. Then", "J. Smith"). Pieces are trimmed,
// and only those strictly between 10 and 500 characters survive; anything
// outside that range is extraction noise.
func splitSentences(text string) []string {
	var out []string
	keep := func(piece string) {
		piece = strings.TrimSpace(piece)
		if n := utf8.RuneCountInString(piece); n > 10 && n < 500 {
			out = append(out, piece)
		}
	}

	start := 0
	for i := 0; i < len(text); {
		if !isSpaceByte(text[i]) {
			i++
			continue
		}
		j := i
		for j < len(text) && isSpaceByte(text[j]) {
			j++
		}
		if i > start && isTerminator(text[i-1]) && j < len(text) &&
			text[j] >= 'A' && text[j] <= 'Z' && !abbreviationBefore(text, i-1) {
			keep(text[start:i])
			start = j
		}
		i = j
	}
	keep(text[start:])

	return out
}

// abbreviationBefore reports whether the '.' at dotIdx directly follows a
// one- or two-letter token.
func abbreviationBefore(text string, dotIdx int) bool {
	if text[dotIdx] != '.' {
		return false
	}
	n := 0
	for k := dotIdx - 1; k >= 0 && isWordByte(text[k]); k-- {
		n++
		if n > 2 {
			return false
		}
	}
	return n == 1 || n == 2
}

func isSpaceByte(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r', '\f', '\v':
		return true
	}
	return false
}

func isTerminator(b byte) bool {
	return b == '.' || b == '!' || b == '?'
}

func isWordByte(b byte) bool {
	return b == '_' ||
		(b >= '0' && b <= '9') ||
		(b >= 'A' && b <= 'Z') ||
		(b >= 'a' && b <= 'z')
}
