// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package readability

import (
	"math"
	"strings"
	"testing"
)

func TestAnalyzeProcessedText(t *testing.T) {
	in := "The model achieves [EQ_DISPLAY_1] accuracy of 95%. It outperforms baselines."

	m := Analyze(in)

	// The, model, achieves, accuracy, of, 95, It, outperforms, baselines.
	if m.WordCount != 9 {
		t.Errorf("WordCount = %d, want 9", m.WordCount)
	}
	if m.SentenceCount != 2 {
		t.Errorf("SentenceCount = %d, want 2", m.SentenceCount)
	}
	if m.AvgSentenceLength != 4.5 {
		t.Errorf("AvgSentenceLength = %v, want 4.5", m.AvgSentenceLength)
	}
}

func TestAnalyzePlaceholdersNotCounted(t *testing.T) {
	with := "The proof uses [EQ_INLINE_3] relations. Convergence follows [EQ_DISPLAY_4] directly."
	without := "The proof uses  relations. Convergence follows  directly."

	got := Analyze(with)
	want := Analyze(without)

	if got.WordCount != want.WordCount {
		t.Errorf("WordCount with placeholders = %d, without = %d", got.WordCount, want.WordCount)
	}
	if got.SentenceCount != want.SentenceCount {
		t.Errorf("SentenceCount with placeholders = %d, without = %d", got.SentenceCount, want.SentenceCount)
	}
}

func TestAnalyzeEmptyText(t *testing.T) {
	m := Analyze("")

	if m.WordCount != 0 {
		t.Errorf("WordCount = %d, want 0", m.WordCount)
	}
	if m.SentenceCount != 0 {
		t.Errorf("SentenceCount = %d, want 0", m.SentenceCount)
	}
	if m.AvgSentenceLength != 0.0 {
		t.Errorf("AvgSentenceLength = %v, want 0.0", m.AvgSentenceLength)
	}
	if m.FleschReadingEase != 0.0 || m.GunningFog != 0.0 || m.SMOGIndex != 0.0 {
		t.Errorf("scores = %v/%v/%v, want all 0.0", m.FleschReadingEase, m.GunningFog, m.SMOGIndex)
	}
}

func TestAnalyzeZeroSentencesAvg(t *testing.T) {
	// Ten characters: below the sentence length floor, so no sentence
	// survives, but the two words still count.
	m := Analyze("tiny words")

	if m.WordCount != 2 {
		t.Errorf("WordCount = %d, want 2", m.WordCount)
	}
	if m.SentenceCount != 0 {
		t.Errorf("SentenceCount = %d, want 0", m.SentenceCount)
	}
	if m.AvgSentenceLength != 0.0 {
		t.Errorf("AvgSentenceLength = %v, want exactly 0.0", m.AvgSentenceLength)
	}
}

func TestAnalyzeAvgIsExactDivision(t *testing.T) {
	m := Analyze("Alpha beta gamma delta run. Epsilon zeta eta theta end.")

	if m.WordCount != 10 {
		t.Fatalf("WordCount = %d, want 10", m.WordCount)
	}
	if m.SentenceCount != 2 {
		t.Fatalf("SentenceCount = %d, want 2", m.SentenceCount)
	}
	if m.AvgSentenceLength != 5.0 {
		t.Errorf("AvgSentenceLength = %v, want 5.0", m.AvgSentenceLength)
	}
}

func TestSplitSentences(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{
			"period split",
			"The results were strong. Further work is needed.",
			[]string{"The results were strong.", "Further work is needed."},
		},
		{
			"two letter abbreviation holds",
			"Results from Smith et al. Showed strong gains overall.",
			[]string{"Results from Smith et al. Showed strong gains overall."},
		},
		{
			"initial holds",
			"Authored by J. Smith during the winter review cycle.",
			[]string{"Authored by J. Smith during the winter review cycle."},
		},
		{
			"lowercase continuation holds",
			"the value dropped. then it rose again slowly.",
			[]string{"the value dropped. then it rose again slowly."},
		},
		{
			"exclamation and question split",
			"What a result! Should we trust it? Yes we should.",
			[]string{"What a result!", "Should we trust it?", "Yes we should."},
		},
		{
			"short piece filtered",
			"Too short. Also this one is long enough to keep.",
			[]string{"Also this one is long enough to keep."},
		},
		{
			"no terminator still counts when long enough",
			"a fragment without any terminator at all",
			[]string{"a fragment without any terminator at all"},
		},
		{"empty", "", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := splitSentences(tt.in)
			if len(got) != len(tt.want) {
				t.Fatalf("len = %d, want %d (got %q)", len(got), len(tt.want), got)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("piece[%d] = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestSplitSentencesLongPieceFiltered(t *testing.T) {
	long := strings.Repeat("word ", 120) + "end. Short tail sentence here."
	got := splitSentences(long)
	if len(got) != 1 {
		t.Fatalf("len = %d, want 1 (over-long lead should drop)", len(got))
	}
	if got[0] != "Short tail sentence here." {
		t.Errorf("kept = %q, want the tail sentence", got[0])
	}
}

func TestCountSyllables(t *testing.T) {
	tests := []struct {
		word string
		want int
	}{
		{"the", 1},
		{"cat", 1},
		{"make", 1},
		{"table", 2},
		{"apple", 2},
		{"office", 2},
		{"banana", 3},
		{"readability", 5},
		{"university", 5},
		{"rhythm", 1},
		{"strength", 1},
		{"queue", 1},
		{"99", 1},
	}
	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			if got := countSyllables(tt.word); got != tt.want {
				t.Errorf("countSyllables(%q) = %d, want %d", tt.word, got, tt.want)
			}
		})
	}
}

const simpleProse = "The cat sat on the mat. The dog ran to the park. We all slept well that night."

const denseProse = "Extraordinary methodological considerations necessitate comprehensive evaluation. " +
	"Sophisticated computational infrastructure facilitates unprecedented experimentation. " +
	"Multidimensional optimization algorithms demonstrate remarkable scalability."

func TestScoresOrdering(t *testing.T) {
	simple := Analyze(simpleProse)
	dense := Analyze(denseProse)

	if simple.FleschReadingEase <= dense.FleschReadingEase {
		t.Errorf("Flesch: simple %v should exceed dense %v", simple.FleschReadingEase, dense.FleschReadingEase)
	}
	if simple.GunningFog >= dense.GunningFog {
		t.Errorf("Fog: simple %v should be below dense %v", simple.GunningFog, dense.GunningFog)
	}
	if simple.SMOGIndex >= dense.SMOGIndex {
		t.Errorf("SMOG: simple %v should be below dense %v", simple.SMOGIndex, dense.SMOGIndex)
	}
}

func TestSMOGNeedsThreeSentences(t *testing.T) {
	two := Analyze("The cat sat on the mat. The dog ran to the park.")
	if two.SMOGIndex != 0.0 {
		t.Errorf("SMOG on two sentences = %v, want 0.0", two.SMOGIndex)
	}

	// Three sentences with no polysyllables: the formula floor.
	st := computeStats("The cat sat. The dog ran. We all slept.")
	if st.polysyllables != 0 {
		t.Fatalf("polysyllables = %d, want 0", st.polysyllables)
	}
	if got := st.smogIndex(); math.Abs(got-3.1291) > 1e-9 {
		t.Errorf("smogIndex = %v, want 3.1291", got)
	}
}

func TestComputeStats(t *testing.T) {
	st := computeStats("The banana was ripe. Nobody complained about it!")

	if st.words != 8 {
		t.Errorf("words = %d, want 8", st.words)
	}
	if st.sentences != 2 {
		t.Errorf("sentences = %d, want 2", st.sentences)
	}
	// banana (a|a|a), nobody (o|o|y), complained (o|ai|e).
	if st.polysyllables != 3 {
		t.Errorf("polysyllables = %d, want 3", st.polysyllables)
	}
}
