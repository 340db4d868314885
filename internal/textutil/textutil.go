// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package textutil provides the lexical primitives shared by the analysis
// engine: normalization, sentence splitting, n-gram extraction, and the
// longest-common-subsequence length. Every function is pure and total over
// any string input, including the empty string.
package textutil

import (
	"regexp"
	"strings"
)

var (
	nonWordRe    = regexp.MustCompile(`[^\w\s]`)
	whitespaceRe = regexp.MustCompile(`\s+`)
	sentenceRe   = regexp.MustCompile(`[.!?]+`)
)

// Normalize lowercases text, strips every character that is neither a word
// character nor whitespace, collapses whitespace runs to single spaces, and
// trims the ends. Applying Normalize to its own output is a no-op.
func Normalize(text string) string {
	s := strings.ToLower(text)
	s = nonWordRe.ReplaceAllString(s, "")
	s = whitespaceRe.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// Words normalizes text and splits it into word tokens. Empty input yields
// an empty slice, never nil elements.
func Words(text string) []string {
	normalized := Normalize(text)
	if normalized == "" {
		return []string{}
	}
	return strings.Split(normalized, " ")
}

// SplitSentences splits text on runs of sentence-ending punctuation and
// drops entries that trim to empty.
func SplitSentences(text string) []string {
	parts := sentenceRe.Split(text, -1)
	sentences := make([]string, 0, len(parts))
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			sentences = append(sentences, p)
		}
	}
	return sentences
}

// NGrams returns every contiguous window of n words joined by single
// spaces, in left-to-right order. Fewer than n words yields an empty slice.
func NGrams(words []string, n int) []string {
	if n <= 0 || len(words) < n {
		return []string{}
	}
	grams := make([]string, 0, len(words)-n+1)
	for i := 0; i+n <= len(words); i++ {
		grams = append(grams, strings.Join(words[i:i+n], " "))
	}
	return grams
}

// Truncate enforces the boundary input cap: text longer than maxChars runes
// is cut, shorter text passes through unchanged. A non-positive cap disables
// truncation.
func Truncate(text string, maxChars int) string {
	if maxChars <= 0 {
		return text
	}
	runes := []rune(text)
	if len(runes) <= maxChars {
		return text
	}
	return string(runes[:maxChars])
}

// LCSLength returns the length of the longest common subsequence of the two
// word sequences. Matching is exact per word; case is expected to be
// normalized upstream. O(m*n) time and space.
func LCSLength(a, b []string) int {
	m, n := len(a), len(b)
	if m == 0 || n == 0 {
		return 0
	}
	dp := make([][]int, m+1)
	for i := range dp {
		dp[i] = make([]int, n+1)
	}
	for i := 1; i <= m; i++ {
		for j := 1; j <= n; j++ {
			if a[i-1] == b[j-1] {
				dp[i][j] = dp[i-1][j-1] + 1
			} else if dp[i-1][j] >= dp[i][j-1] {
				dp[i][j] = dp[i-1][j]
			} else {
				dp[i][j] = dp[i][j-1]
			}
		}
	}
	return dp[m][n]
}
