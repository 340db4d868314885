// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package analyze

import (
	"sort"
	"strings"

	"github.com/pdiddy/originality/pkg/types"
)

const (
	// MinPhraseWords is the shortest span the repeated-phrase detector
	// considers.
	MinPhraseWords = 3

	// maxPhraseWords is the longest span considered.
	maxPhraseWords = 6

	// maxReportedPhrases caps the returned list.
	maxReportedPhrases = 5
)

// FindRepeatedPhrases counts every contiguous span of minLen..6 words across
// all start positions and returns the spans occurring more than once, sorted
// by descending count. Ties keep first-encountered order (enumeration is by
// start position, then length). At most five phrases are returned.
//
// Enumeration is O(W * 4) spans over W words, which is fine under the input
// cap enforced at the boundary.
func FindRepeatedPhrases(words []string, minLen int) []types.RepeatedPhrase {
	if minLen <= 0 {
		minLen = MinPhraseWords
	}

	counts := make(map[string]int)
	order := make([]string, 0, len(words))

	for i := 0; i < len(words); i++ {
		maxLen := maxPhraseWords
		if remaining := len(words) - i; remaining < maxLen {
			maxLen = remaining
		}
		for length := minLen; length <= maxLen; length++ {
			phrase := strings.Join(words[i:i+length], " ")
			if _, seen := counts[phrase]; !seen {
				order = append(order, phrase)
			}
			counts[phrase]++
		}
	}

	repeated := make([]types.RepeatedPhrase, 0)
	for _, phrase := range order {
		if counts[phrase] > 1 {
			repeated = append(repeated, types.RepeatedPhrase{Phrase: phrase, Count: counts[phrase]})
		}
	}

	sort.SliceStable(repeated, func(i, j int) bool {
		return repeated[i].Count > repeated[j].Count
	})

	if len(repeated) > maxReportedPhrases {
		repeated = repeated[:maxReportedPhrases]
	}
	return repeated
}
