// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package sources generates synthetic "web source" records used to decorate
// an analysis result. There is no real search integration: output is drawn
// from fixed template pools by an injectable randomness source, so it is
// reproducible under a fixed seed and must never influence the score.
package sources

import (
	"fmt"
	"math/rand"
	"sort"
	"strings"
	"time"

	"github.com/pdiddy/originality/pkg/types"
)

var domains = []string{
	"wikipedia.org", "medium.com", "github.com", "stackoverflow.com",
	"reddit.com", "quora.com", "linkedin.com", "twitter.com",
	"bbc.com", "cnn.com", "nytimes.com", "guardian.com",
}

var contentTypes = []string{"article", "blog post", "documentation", "discussion", "news"}

var titleTemplates = map[string][]string{
	"article":       {"Understanding %s: A Comprehensive Guide", "%s - Complete Analysis", "The Ultimate Guide to %s"},
	"blog post":     {"My Thoughts on %s", "%s: What You Need to Know", "Exploring %s in Depth"},
	"documentation": {"%s Documentation", "API Reference: %s", "Technical Guide: %s"},
	"discussion":    {"Discussion: %s", "%s - Community Insights", "Q&A: %s Explained"},
	"news":          {"Breaking: %s Updates", "Latest on %s", "%s: Recent Developments"},
}

var snippetPrefixes = []string{
	"This article explains how", "Research shows that", "Experts agree on", "Studies indicate",
}

var snippetSuffixes = []string{"in detail.", "with examples.", "for beginners.", "effectively."}

var highCredibility = []string{"wikipedia.org", "bbc.com", "cnn.com", "nytimes.com", "guardian.com"}

var mediumCredibility = []string{"medium.com", "github.com", "stackoverflow.com", "linkedin.com"}

// Generator produces synthetic source lists. The zero value is not usable;
// construct with New.
type Generator struct {
	rnd *rand.Rand
	now func() time.Time
}

// New returns a Generator seeded with seed. A zero seed falls back to the
// current time, making output non-reproducible.
func New(seed int64) *Generator {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Generator{
		rnd: rand.New(rand.NewSource(seed)),
		now: time.Now,
	}
}

// Generate returns 1-3 synthetic sources derived from the normalized text,
// deduplicated by domain and sorted by descending match percentage.
func (g *Generator) Generate(normalizedText string) []types.WebSource {
	count := g.rnd.Intn(3) + 1
	stamp := g.now().UnixMilli()

	result := make([]types.WebSource, 0, count)
	seen := make(map[string]struct{}, count)

	for i := 0; i < count; i++ {
		domain := domains[g.rnd.Intn(len(domains))]
		contentType := contentTypes[g.rnd.Intn(len(contentTypes))]
		match := g.rnd.Intn(30) + 60

		if _, dup := seen[domain]; dup {
			continue
		}
		seen[domain] = struct{}{}

		result = append(result, types.WebSource{
			Title:           g.title(normalizedText, contentType),
			URL:             fmt.Sprintf("https://www.%s/articles/%d-%d", domain, stamp, i),
			Domain:          domain,
			ContentType:     contentType,
			MatchPercentage: match,
			Snippet:         g.snippet(normalizedText),
			Credibility:     credibility(domain),
		})
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].MatchPercentage > result[j].MatchPercentage
	})
	return result
}

// title fills a random template for the content type with the text's
// leading words as the topic.
func (g *Generator) title(text, contentType string) string {
	templates, ok := titleTemplates[contentType]
	if !ok {
		templates = titleTemplates["article"]
	}
	template := templates[g.rnd.Intn(len(templates))]

	words := strings.Fields(text)
	if len(words) > 3 {
		words = words[:3]
	}
	return fmt.Sprintf(template, strings.Join(words, " "))
}

// snippet quotes a short random window of the text between a canned prefix
// and suffix.
func (g *Generator) snippet(text string) string {
	words := strings.Fields(text)
	start := 0
	if len(words) > 3 {
		start = g.rnd.Intn(len(words) - 3)
	}
	end := start + 4
	if end > len(words) {
		end = len(words)
	}

	prefix := snippetPrefixes[g.rnd.Intn(len(snippetPrefixes))]
	suffix := snippetSuffixes[g.rnd.Intn(len(snippetSuffixes))]
	return fmt.Sprintf("%s %s %s", prefix, strings.Join(words[start:end], " "), suffix)
}

func credibility(domain string) types.SourceCredibility {
	for _, d := range highCredibility {
		if strings.Contains(domain, d) {
			return types.CredibilityHigh
		}
	}
	for _, d := range mediumCredibility {
		if strings.Contains(domain, d) {
			return types.CredibilityMedium
		}
	}
	return types.CredibilityLow
}
