// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// WritingQuality holds the independent writing-quality assessment. It is a
// standalone surface: the plagiarism scorer never reads any of these fields.
type WritingQuality struct {
	// GrammarScore is 100 minus 10 per detected grammar issue, floored at 0.
	GrammarScore int `json:"grammar_score" yaml:"grammar_score"`

	// VocabularyScore reflects the density of sophisticated vocabulary,
	// capped at 100.
	VocabularyScore int `json:"vocabulary_score" yaml:"vocabulary_score"`

	// SentenceStructureScore rewards a mix of short, medium, and long
	// sentences and penalizes extreme length variance.
	SentenceStructureScore int `json:"sentence_structure_score" yaml:"sentence_structure_score"`

	// LetterQualityScore reflects capitalization, punctuation spacing, and
	// paragraph formatting hygiene.
	LetterQualityScore int `json:"letter_quality_score" yaml:"letter_quality_score"`

	// OverallScore is the rounded mean of the four sub-scores.
	OverallScore int `json:"overall_score" yaml:"overall_score"`

	// IsHighQuality is true when OverallScore >= 75.
	IsHighQuality bool `json:"is_high_quality" yaml:"is_high_quality"`

	// Details holds one human-readable line per sub-score.
	Details []string `json:"details" yaml:"details"`
}
