// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package readability

import (
	"math"
	"strings"
	"unicode"
)

// textStats holds the counts the readability formulas draw on. Sentence
// splitting here is deliberately simpler than splitSentences: the score
// formulas were calibrated against plain terminator counting, not against
// the noise-filtered sentences used for the reported sentence count.
type textStats struct {
	words         int
	sentences     int
	syllables     int
	polysyllables int // words of three or more syllables
}

// computeStats tokenizes text once for all three score formulas.
func computeStats(text string) textStats {
	var st textStats

	for _, tok := range strings.Fields(text) {
		word := strings.TrimFunc(tok, func(r rune) bool {
			return !unicode.IsLetter(r) && !unicode.IsNumber(r)
		})
		if word == "" {
			continue
		}
		st.words++
		syl := countSyllables(word)
		st.syllables += syl
		if syl >= 3 {
			st.polysyllables++
		}
	}

	for _, piece := range splitTerminators(text) {
		if strings.IndexFunc(piece, isAlphanumeric) >= 0 {
			st.sentences++
		}
	}

	return st
}

// splitTerminators splits text on runs of sentence terminators.
func splitTerminators(text string) []string {
	return strings.FieldsFunc(text, func(r rune) bool {
		return r == '.' || r == '!' || r == '?'
	})
}

func isAlphanumeric(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsNumber(r)
}

// countSyllables estimates syllables with a vowel-group heuristic: each
// maximal run of vowels counts once, a silent final "e" is dropped (unless
// the word ends in "le", as in "table"), and every word counts at least
// one syllable.
func countSyllables(word string) int {
	word = strings.ToLower(word)

	count := 0
	prevVowel := false
	for _, r := range word {
		v := isVowel(r)
		if v && !prevVowel {
			count++
		}
		prevVowel = v
	}

	if count > 1 && strings.HasSuffix(word, "e") && !strings.HasSuffix(word, "le") {
		count--
	}
	if count == 0 {
		count = 1
	}
	return count
}

func isVowel(r rune) bool {
	switch r {
	case 'a', 'e', 'i', 'o', 'u', 'y':
		return true
	}
	return false
}

// fleschReadingEase scores reading ease on the 0-100-ish Flesch scale;
// higher is easier. Zero with no words or sentences.
func (st textStats) fleschReadingEase() float64 {
	if st.words == 0 || st.sentences == 0 {
		return 0
	}
	asl := float64(st.words) / float64(st.sentences)
	asw := float64(st.syllables) / float64(st.words)
	return 206.835 - 1.015*asl - 84.6*asw
}

// gunningFog estimates the years of education needed to follow the text.
// Zero with no words or sentences.
func (st textStats) gunningFog() float64 {
	if st.words == 0 || st.sentences == 0 {
		return 0
	}
	asl := float64(st.words) / float64(st.sentences)
	hard := float64(st.polysyllables) / float64(st.words) * 100
	return 0.4 * (asl + hard)
}

// smogIndex estimates reading grade from polysyllable density. The formula
// is defined for samples of at least three sentences; below that it
// returns zero.
func (st textStats) smogIndex() float64 {
	if st.sentences < 3 || st.words == 0 {
		return 0
	}
	return 1.0430*math.Sqrt(float64(st.polysyllables)*30.0/float64(st.sentences)) + 3.1291
}
