// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// ReadabilityMetrics holds the text statistics computed for one paper.
// Derived from the placeholder-stripped text, never persisted on its own.
type ReadabilityMetrics struct {
	// WordCount counts word tokens (runs of word characters and internal
	// hyphens) in the cleaned text.
	WordCount int `json:"word_count" yaml:"word_count"`

	// SentenceCount counts sentences between 10 and 500 characters; shorter
	// and longer fragments are treated as extraction noise.
	SentenceCount int `json:"sentence_count" yaml:"sentence_count"`

	// AvgSentenceLength is WordCount/SentenceCount, or exactly 0.0 when no
	// sentences survive filtering.
	AvgSentenceLength float64 `json:"avg_sentence_length" yaml:"avg_sentence_length"`

	// FleschReadingEase scores reading ease; higher is easier.
	FleschReadingEase float64 `json:"flesch_reading_ease" yaml:"flesch_reading_ease"`

	// GunningFog estimates the years of education needed to follow the text.
	GunningFog float64 `json:"gunning_fog" yaml:"gunning_fog"`

	// SMOGIndex estimates reading grade from polysyllable density. Zero when
	// the text has fewer than three sentences.
	SMOGIndex float64 `json:"smog_index" yaml:"smog_index"`
}
