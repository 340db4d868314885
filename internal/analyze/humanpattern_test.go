// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package analyze

import (
	"reflect"
	"testing"

	"github.com/pdiddy/originality/pkg/types"
)

func TestIsMeaningless(t *testing.T) {
	tests := []struct {
		word string
		want bool
	}{
		{"asdf", true},     // no vowel
		{"xkcd", true},     // no vowel
		{"hmm", true},      // no vowel
		{"aaa", true},      // tripled character
		{"grrreat", true},  // tripled character despite vowels
		{"bcd", true},      // consonants only, length >= 3
		{"hello", false},
		{"network", false},
		{"running", false}, // only a doubled character
		{"a", false},
		{"io", false},
	}
	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			if got := IsMeaningless(tt.word); got != tt.want {
				t.Errorf("IsMeaningless(%q) = %v, want %v", tt.word, got, tt.want)
			}
		})
	}
}

func TestDetectHumanPatterns(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []types.HumanPattern
	}{
		{
			name: "empty text",
			text: "",
			want: []types.HumanPattern{},
		},
		{
			name: "single mash run",
			text: "asdf asdf asdf real words here",
			want: []types.HumanPattern{
				{Word: "asdf", Position: 0, Sequence: "asdf asdf asdf"},
			},
		},
		{
			name: "overlapping windows all reported",
			text: "xkcd xkcd xkcd xkcd",
			want: []types.HumanPattern{
				{Word: "xkcd", Position: 0, Sequence: "xkcd xkcd xkcd"},
				{Word: "xkcd", Position: 1, Sequence: "xkcd xkcd xkcd"},
			},
		},
		{
			name: "repeated meaningful word is not a pattern",
			text: "hello hello hello",
			want: []types.HumanPattern{},
		},
		{
			name: "punctuation and case stripped before comparison",
			text: "Asdf, asdf! ASDF?",
			want: []types.HumanPattern{
				{Word: "asdf", Position: 0, Sequence: "asdf asdf asdf"},
			},
		},
		{
			name: "non-consecutive repeats do not match",
			text: "asdf asdf real asdf",
			want: []types.HumanPattern{},
		},
		{
			name: "mid-text position recorded",
			text: "some text then zzz zzz zzz",
			want: []types.HumanPattern{
				{Word: "zzz", Position: 3, Sequence: "zzz zzz zzz"},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DetectHumanPatterns(tt.text)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("DetectHumanPatterns(%q) = %+v, want %+v", tt.text, got, tt.want)
			}
		})
	}
}
