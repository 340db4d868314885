// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package analyze

import (
	"strings"
	"testing"

	"github.com/pdiddy/originality/internal/textutil"
)

func TestFindRepeatedPhrasesEmpty(t *testing.T) {
	tests := []struct {
		name  string
		words []string
	}{
		{"nil words", nil},
		{"fewer than three words", []string{"too", "short"}},
		{"no repeats", []string{"each", "word", "appears", "exactly", "once", "here"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FindRepeatedPhrases(tt.words, MinPhraseWords)
			if len(got) != 0 {
				t.Errorf("FindRepeatedPhrases(%v) = %v, want empty", tt.words, got)
			}
		})
	}
}

func TestFindRepeatedPhrasesRepeatedSentence(t *testing.T) {
	words := textutil.Words("The protocol allows efficient data transmission. " +
		"The protocol allows efficient data transmission.")

	got := FindRepeatedPhrases(words, MinPhraseWords)
	if len(got) != 5 {
		t.Fatalf("got %d phrases, want 5 (capped): %v", len(got), got)
	}
	if got[0].Phrase != "the protocol allows" {
		t.Errorf("first phrase = %q, want %q", got[0].Phrase, "the protocol allows")
	}
	for _, p := range got {
		if p.Count != 2 {
			t.Errorf("phrase %q count = %d, want 2", p.Phrase, p.Count)
		}
	}
}

func TestFindRepeatedPhrasesSortedByCount(t *testing.T) {
	// "a b c" occurs three times; every other repeated span occurs twice.
	words := strings.Fields("a b c a b c a b c")

	got := FindRepeatedPhrases(words, MinPhraseWords)
	if len(got) != 5 {
		t.Fatalf("got %d phrases, want 5: %v", len(got), got)
	}
	if got[0].Phrase != "a b c" || got[0].Count != 3 {
		t.Errorf("top phrase = %+v, want {a b c 3}", got[0])
	}
	for i := 1; i < len(got); i++ {
		if got[i].Count > got[i-1].Count {
			t.Errorf("phrases not sorted by descending count: %v", got)
		}
	}
}

func TestFindRepeatedPhrasesMoreRepetitionNeverLowersCounts(t *testing.T) {
	base := strings.Fields("the network layer moves packets the network layer moves packets")
	extended := append(append([]string{}, base...), "the", "network", "layer", "moves", "packets")

	baseCounts := map[string]int{}
	for _, p := range FindRepeatedPhrases(base, MinPhraseWords) {
		baseCounts[p.Phrase] = p.Count
	}
	extCounts := map[string]int{}
	for _, p := range FindRepeatedPhrases(extended, MinPhraseWords) {
		extCounts[p.Phrase] = p.Count
	}

	for phrase, count := range baseCounts {
		if ext, ok := extCounts[phrase]; ok && ext < count {
			t.Errorf("phrase %q count dropped from %d to %d after more repetition", phrase, count, ext)
		}
	}
}

func TestFindRepeatedPhrasesDefaultMinLen(t *testing.T) {
	words := strings.Fields("x y z x y z")

	withZero := FindRepeatedPhrases(words, 0)
	withDefault := FindRepeatedPhrases(words, MinPhraseWords)
	if len(withZero) != len(withDefault) {
		t.Errorf("minLen 0 returned %d phrases, default returned %d", len(withZero), len(withDefault))
	}
}
