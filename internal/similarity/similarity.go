// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package similarity implements the pairwise document comparator: a weighted
// composite of Jaccard word-set overlap, bigram-set overlap, and normalized
// longest-common-subsequence length. It is independent of the single-text
// heuristic scorer and usable on its own.
package similarity

import (
	"math"

	"github.com/pdiddy/originality/internal/textutil"
)

// Weights of the three component metrics. They sum to 1.
const (
	jaccardWeight = 0.4
	bigramWeight  = 0.3
	lcsWeight     = 0.3
)

// Score compares two raw texts and returns a similarity in [0,100].
// Both inputs are normalized first; if either side normalizes to nothing
// the score is 0. The composite is symmetric in its arguments and a
// non-degenerate text compared with itself scores 100.
func Score(text1, text2 string) int {
	words1 := textutil.Words(text1)
	words2 := textutil.Words(text2)
	if len(words1) == 0 || len(words2) == 0 {
		return 0
	}

	jaccard := setSimilarity(toSet(words1), toSet(words2))

	bigrams1 := toSet(textutil.NGrams(words1, 2))
	bigrams2 := toSet(textutil.NGrams(words2, 2))
	bigram := setSimilarity(bigrams1, bigrams2)

	lcs := float64(2*textutil.LCSLength(words1, words2)) / float64(len(words1)+len(words2))

	composite := jaccard*jaccardWeight + bigram*bigramWeight + lcs*lcsWeight
	return int(math.Round(composite * 100))
}

func toSet(items []string) map[string]struct{} {
	set := make(map[string]struct{}, len(items))
	for _, it := range items {
		set[it] = struct{}{}
	}
	return set
}

// setSimilarity is |intersection| / |union|. Two empty sets yield 0, which
// keeps single-word texts (no bigrams) from scoring free bigram overlap.
func setSimilarity(a, b map[string]struct{}) float64 {
	intersection := 0
	for k := range a {
		if _, ok := b[k]; ok {
			intersection++
		}
	}
	union := len(a) + len(b) - intersection
	if union == 0 {
		return 0
	}
	return float64(intersection) / float64(union)
}
