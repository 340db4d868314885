// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package analyze

import (
	"regexp"
	"strings"

	"github.com/pdiddy/originality/pkg/types"
)

var (
	vowelRe         = regexp.MustCompile(`(?i)[aeiou]`)
	consonantOnlyRe = regexp.MustCompile(`(?i)^[bcdfghjklmnpqrstvwxyz]{3,}$`)
	nonLetterRe     = regexp.MustCompile(`[^a-z]`)
)

// IsMeaningless reports whether a word looks like keyboard mash or filler:
// it has no vowel, or contains three or more identical consecutive
// characters, or consists entirely of consonant letters with length >= 3.
func IsMeaningless(word string) bool {
	return !vowelRe.MatchString(word) ||
		hasTripledRune(word) ||
		consonantOnlyRe.MatchString(word)
}

// hasTripledRune reports a run of 3+ identical characters ("grrr", "hmmm").
// Comparison is case-insensitive.
func hasTripledRune(word string) bool {
	runes := []rune(strings.ToLower(word))
	run := 1
	for i := 1; i < len(runes); i++ {
		if runes[i] == runes[i-1] {
			run++
			if run >= 3 {
				return true
			}
		} else {
			run = 1
		}
	}
	return false
}

// DetectHumanPatterns scans the raw (unnormalized) text for three
// consecutive identical meaningless tokens. Tokens come from a plain
// whitespace split; each is lowercased and stripped of non-letters before
// comparison. Every matching window is reported, including overlaps.
func DetectHumanPatterns(originalText string) []types.HumanPattern {
	tokens := strings.Fields(originalText)
	patterns := make([]types.HumanPattern, 0)

	for i := 0; i+3 <= len(tokens); i++ {
		w1 := cleanToken(tokens[i])
		w2 := cleanToken(tokens[i+1])
		w3 := cleanToken(tokens[i+2])

		if w1 != "" && w1 == w2 && w2 == w3 && IsMeaningless(w1) {
			patterns = append(patterns, types.HumanPattern{
				Word:     w1,
				Position: i,
				Sequence: w1 + " " + w2 + " " + w3,
			})
		}
	}
	return patterns
}

func cleanToken(token string) string {
	return nonLetterRe.ReplaceAllString(strings.ToLower(token), "")
}
