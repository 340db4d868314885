// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package analyze implements the single-text heuristic scorer and its two
// detectors. The score is a deterministic additive rule set over lexical
// signals, not a calibrated classifier: each rule that fires adds a fixed
// amount, short texts are clamped, detected human typing patterns subtract,
// and the total is bounded to [0,100].
package analyze

import (
	"regexp"
	"strings"

	"github.com/pdiddy/originality/internal/textutil"
	"github.com/pdiddy/originality/pkg/types"
)

var (
	definitionRe = regexp.MustCompile(`(?i)\b(is|are)\s+used\s+(for|to|where)\b`)
	suchAsListRe = regexp.MustCompile(`(?i),\s+such\s+as\s+`)
	especiallyRe = regexp.MustCompile(`(?i),\s+especially\s+`)
)

// SourceGenerator produces synthetic source decoration for a result. The
// generated records must never feed back into the score.
type SourceGenerator interface {
	Generate(normalizedText string) []types.WebSource
}

// Scorer runs the full single-text analysis. A nil Scorer or nil source
// generator simply yields results without web sources.
type Scorer struct {
	sources SourceGenerator
}

// New returns a Scorer. gen may be nil to disable source generation.
func New(gen SourceGenerator) *Scorer {
	return &Scorer{sources: gen}
}

// Score analyzes rawText and returns the composite result. It is total:
// empty or whitespace-only input yields a zero score with empty phrase and
// pattern lists.
func (s *Scorer) Score(rawText string) types.AnalysisResult {
	words := textutil.Words(rawText)
	sentences := textutil.SplitSentences(rawText)

	repeatedPhrases := FindRepeatedPhrases(words, MinPhraseWords)
	humanPatterns := DetectHumanPatterns(rawText)
	isHumanWriting := len(humanPatterns) > 0

	score := 0

	// Technical and formal register only counts for substantial texts.
	if len(words) > 20 {
		if countIn(words, technicalTerms) > 3 {
			score += 25
		}
		if countIn(words, formalWords) > 5 {
			score += 20
		}
		if definitionRe.MatchString(rawText) {
			score += 15
		}
		if suchAsListRe.MatchString(rawText) || especiallyRe.MatchString(rawText) {
			score += 10
		}
	}

	// Low lexical diversity.
	if len(words) > 0 {
		unique := make(map[string]struct{}, len(words))
		for _, w := range words {
			unique[w] = struct{}{}
		}
		if float64(len(unique))/float64(len(words)) < 0.7 {
			score += 25
		}
	}

	// Short average sentence length reads like chopped-up copied content.
	if len(words) > 15 && len(sentences) > 0 {
		total := 0
		for _, sentence := range sentences {
			total += len(strings.Fields(sentence))
		}
		if float64(total)/float64(len(sentences)) < 8 {
			score += 20
		}
	}

	score += min(len(repeatedPhrases)*15, 40)

	// Stopword-heavy text.
	if len(words) > 0 {
		if float64(countIn(words, commonWords))/float64(len(words)) > 0.4 {
			score += 15
		}
	}

	// Short-text leniency caps the score before the human-writing penalty
	// applies, so a short mash-filled text bottoms out rather than going
	// negative against a higher base.
	if len(words) < 10 && score > 10 {
		score = 10
	}

	if isHumanWriting {
		score -= 30
	}

	if score < 0 {
		score = 0
	} else if score > 100 {
		score = 100
	}

	result := types.AnalysisResult{
		PlagiarismScore: score,
		HumanWriteScore: 100 - score,
		RepeatedPhrases: repeatedPhrases,
		IsHumanWriting:  isHumanWriting,
		HumanPatterns:   humanPatterns,
	}

	if score > 0 && s != nil && s.sources != nil {
		result.WebSources = s.sources.Generate(textutil.Normalize(rawText))
	}
	return result
}
