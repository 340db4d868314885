// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package analyze

// Fixed vocabulary lists backing the lexical heuristics. The lists are part
// of the scoring contract: changing them changes scores.

// technicalTerms marks networking/documentation vocabulary typical of
// copied technical prose.
var technicalTerms = wordSet(
	"protocol", "algorithm", "network", "data", "system", "layer",
	"transmission", "packet", "flow", "efficiency", "throughput",
)

// formalWords marks formal or academic register.
var formalWords = wordSet(
	"allows", "using", "improves", "especially", "connections",
	"delivery", "such", "layer",
)

// commonWords is the stopword list used for the common-word-ratio heuristic.
var commonWords = wordSet(
	"the", "and", "or", "but", "in", "on", "at", "to", "for", "of",
	"with", "by",
)

func wordSet(words ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}

func countIn(words []string, set map[string]struct{}) int {
	n := 0
	for _, w := range words {
		if _, ok := set[w]; ok {
			n++
		}
	}
	return n
}
