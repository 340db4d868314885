// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package quality implements the standalone writing-quality assessment:
// four independent sub-scores (grammar, vocabulary, sentence structure,
// formatting) averaged into an overall score. It shares the lexical
// primitives with the plagiarism scorer but is never consulted by it.
package quality

import (
	"fmt"
	"math"
	"regexp"
	"strings"

	"github.com/pdiddy/originality/internal/textutil"
	"github.com/pdiddy/originality/pkg/types"
)

// HighQualityThreshold is the overall score at or above which text is
// flagged as high quality.
const HighQualityThreshold = 75

// sophisticatedWords is the advanced-vocabulary list. Matching is by
// case-insensitive substring, so inflected forms count too.
var sophisticatedWords = []string{
	"consequently", "nevertheless", "furthermore", "moreover", "therefore",
	"comprehensive", "fundamental", "significant", "substantial", "essential",
	"elaborate", "demonstrate", "establish", "implement", "facilitate",
	"paradigm", "methodology", "framework", "perspective", "conceptual",
	"analysis", "synthesis", "evaluation", "assessment", "examination",
	"proficient", "adequate", "sufficient", "efficient", "effective",
	"ambiguous", "explicit", "implicit", "inherent", "integral",
}

var grammarChecks = []struct {
	re    *regexp.Regexp
	issue string
}{
	{regexp.MustCompile(`(?i)\b(a|an)\s+[aeiou]`), "Article-vowel mismatch"},
	{regexp.MustCompile(`(?i)\b(a|an)\s+[^aeiou\s]`), "Article-consonant mismatch"},
	{regexp.MustCompile(`\b\w+s\s+\w+s\b`), "Possible double plural"},
	{regexp.MustCompile(`\s{2,}`), "Extra spaces"},
	{regexp.MustCompile(`[.!?]{2,}`), "Excessive punctuation"},
	{regexp.MustCompile(`[a-z]+[.!?]\s+[a-z]`), "Missing capitalization after sentence"},
}

var (
	anyCapitalRe   = regexp.MustCompile(`[A-Z]`)
	startCapitalRe = regexp.MustCompile(`^[A-Z]`)
	noSpacePunctRe = regexp.MustCompile(`[a-z][.!?][a-z]`)
	endPunctRe     = regexp.MustCompile(`[.!?]$`)
	paragraphRe    = regexp.MustCompile(`\n\s*\n`)
)

// Assess computes the full quality report for a raw text passage.
func Assess(text string) types.WritingQuality {
	words := textutil.Words(text)
	sentences := textutil.SplitSentences(text)

	issues := CheckGrammar(text)
	grammarScore := max(0, 100-10*len(issues))

	advanced := SophisticatedWords(words)
	vocabularyScore := 0
	if len(words) > 0 {
		vocabularyScore = int(math.Min(100, float64(len(advanced))/float64(len(words))*200))
	}

	structureScore := sentenceStructureScore(sentences)
	letterScore := letterQualityScore(text)

	overall := int(math.Round(float64(grammarScore+vocabularyScore+structureScore+letterScore) / 4))

	return types.WritingQuality{
		GrammarScore:           grammarScore,
		VocabularyScore:        vocabularyScore,
		SentenceStructureScore: structureScore,
		LetterQualityScore:     letterScore,
		OverallScore:           overall,
		IsHighQuality:          overall >= HighQualityThreshold,
		Details: []string{
			fmt.Sprintf("Grammar: %d%% (%d issues)", grammarScore, len(issues)),
			fmt.Sprintf("Vocabulary: %d%% (%d advanced words)", vocabularyScore, len(advanced)),
			fmt.Sprintf("Sentence Structure: %d%% variety", structureScore),
			fmt.Sprintf("Letter Quality: %d%%", letterScore),
		},
	}
}

// CheckGrammar returns one issue tag per matched grammar pattern.
func CheckGrammar(text string) []string {
	issues := make([]string, 0, len(grammarChecks)+1)
	for _, check := range grammarChecks {
		if check.re.MatchString(text) {
			issues = append(issues, check.issue)
		}
	}
	if text != "" && !anyCapitalRe.MatchString(text) {
		issues = append(issues, "No capitalization")
	}
	return issues
}

// SophisticatedWords returns the words that contain an advanced-vocabulary
// entry as a substring.
func SophisticatedWords(words []string) []string {
	matched := make([]string, 0)
	for _, w := range words {
		lower := strings.ToLower(w)
		for _, advanced := range sophisticatedWords {
			if strings.Contains(lower, advanced) {
				matched = append(matched, w)
				break
			}
		}
	}
	return matched
}

// sentenceStructureScore rewards a mix of short (<=8 words), medium (9-15),
// and long (>15) sentences from a base of 50, then penalizes extreme or
// missing length variance.
func sentenceStructureScore(sentences []string) int {
	if len(sentences) == 0 {
		return 0
	}

	lengths := make([]float64, len(sentences))
	total := 0.0
	for i, s := range sentences {
		lengths[i] = float64(len(strings.Fields(s)))
		total += lengths[i]
	}
	mean := total / float64(len(lengths))

	variance := 0.0
	hasShort, hasMedium, hasLong := false, false, false
	for _, length := range lengths {
		variance += (length - mean) * (length - mean)
		switch {
		case length <= 8:
			hasShort = true
		case length <= 15:
			hasMedium = true
		default:
			hasLong = true
		}
	}
	variance /= float64(len(lengths))

	score := 50
	switch {
	case hasShort && hasMedium && hasLong:
		score += 30
	case hasShort && hasMedium:
		score += 20
	case hasMedium && hasLong:
		score += 15
	}

	if variance > 100 {
		score -= 10
	} else if variance < 5 {
		score -= 15
	}

	if score < 0 {
		score = 0
	} else if score > 100 {
		score = 100
	}
	return score
}

// letterQualityScore deducts from 100 for capitalization, punctuation
// spacing, tab, and paragraph-structure defects.
func letterQualityScore(text string) int {
	score := 100

	if !startCapitalRe.MatchString(text) {
		score -= 10
	}
	if len(textutil.SplitSentences(text)) > 1 && !endPunctRe.MatchString(text) {
		score -= 5
	}
	if noSpacePunctRe.MatchString(text) {
		score -= 10
	}
	if strings.Contains(text, "\t") {
		score -= 5
	}
	if len(text) > 200 && !paragraphRe.MatchString(text) {
		score -= 10
	}

	if score < 0 {
		score = 0
	}
	return score
}
