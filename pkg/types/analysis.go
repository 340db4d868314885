// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines the shared value records exchanged between the
// analysis engine, the history store, and the presentation boundaries.
// All records are immutable once constructed; the engine never mutates
// a result after returning it.
package types

// RepeatedPhrase is a contiguous 3-6 word span that occurs more than once
// in a single text, with its occurrence count.
type RepeatedPhrase struct {
	// Phrase is the span rejoined with single spaces, already normalized.
	Phrase string `json:"phrase" yaml:"phrase"`

	// Count is the number of occurrences across all start positions. Always >= 2.
	Count int `json:"count" yaml:"count"`
}

// HumanPattern records three consecutive identical "meaningless" tokens in
// the raw text, the signature of keyboard-mash or filler typing.
type HumanPattern struct {
	// Word is the repeated token, lowercased with non-letters stripped.
	Word string `json:"word" yaml:"word"`

	// Position is the zero-based index of the first token in the
	// whitespace-split raw text.
	Position int `json:"position" yaml:"position"`

	// Sequence is the three tokens joined by single spaces.
	Sequence string `json:"sequence" yaml:"sequence"`
}

// SourceCredibility is a coarse trust tier assigned to a synthetic source domain.
type SourceCredibility string

const (
	CredibilityHigh   SourceCredibility = "High"
	CredibilityMedium SourceCredibility = "Medium"
	CredibilityLow    SourceCredibility = "Low"
)

// WebSource is a synthetic presentation-only source record. Sources are
// generated locally from a seeded randomness source and never feed back
// into the plagiarism score.
type WebSource struct {
	Title           string            `json:"title" yaml:"title"`
	URL             string            `json:"url" yaml:"url"`
	Domain          string            `json:"domain" yaml:"domain"`
	ContentType     string            `json:"content_type" yaml:"content_type"`
	MatchPercentage int               `json:"match_percentage" yaml:"match_percentage"`
	Snippet         string            `json:"snippet" yaml:"snippet"`
	Credibility     SourceCredibility `json:"credibility" yaml:"credibility"`
}

// AnalysisResult is the composite outcome of analyzing one text passage.
type AnalysisResult struct {
	// PlagiarismScore is the heuristic copied-content score in [0,100].
	PlagiarismScore int `json:"plagiarism_score" yaml:"plagiarism_score"`

	// HumanWriteScore is always 100 - PlagiarismScore.
	HumanWriteScore int `json:"human_write_score" yaml:"human_write_score"`

	// RepeatedPhrases lists the top repeated spans, at most five.
	RepeatedPhrases []RepeatedPhrase `json:"repeated_phrases" yaml:"repeated_phrases"`

	// IsHumanWriting reports whether any human typing pattern was detected.
	IsHumanWriting bool `json:"is_human_writing" yaml:"is_human_writing"`

	// HumanPatterns lists every detected meaningless-token run.
	HumanPatterns []HumanPattern `json:"human_patterns" yaml:"human_patterns"`

	// WebSources holds synthetic source decoration. Empty when the score
	// is zero or no generator is configured.
	WebSources []WebSource `json:"web_sources,omitempty" yaml:"web_sources,omitempty"`
}
