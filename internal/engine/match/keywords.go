package match

import (
	"regexp"
	"sort"
	"strings"
)

const topKeywordCount = 20

// KeywordAnalysis reports how well a resume covers the dominant terms of a
// job description.
type KeywordAnalysis struct {
	// Presence maps each top keyword to its occurrence count in the resume.
	Presence map[string]int `json:"keyword_presence"`
	// Coverage is the fraction of top keywords present at least once.
	Coverage float64 `json:"keyword_coverage"`
	// TopKeywords are the job's most frequent terms, by count, ties broken
	// by first appearance.
	TopKeywords []string `json:"top_keywords"`
}

// AnalyzeKeywords finds the job description's up-to-20 most frequent
// significant terms and counts whole-word occurrences of each in the resume.
// Coverage is keywords-found over keywords-considered; zero when the job
// text yields no keywords at all.
func AnalyzeKeywords(resumeText, jdText string) KeywordAnalysis {
	counts := make(map[string]int)
	var order []string
	for _, tok := range keywordTokens(jdText) {
		if counts[tok] == 0 {
			order = append(order, tok)
		}
		counts[tok]++
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})
	top := capSlice(order, topKeywordCount)

	analysis := KeywordAnalysis{
		Presence:    make(map[string]int, len(top)),
		TopKeywords: top,
	}
	if len(top) == 0 {
		return analysis
	}

	lower := strings.ToLower(resumeText)
	found := 0
	for _, kw := range top {
		re := regexp.MustCompile(boundaryPattern(kw))
		n := len(re.FindAllStringIndex(lower, -1))
		analysis.Presence[kw] = n
		if n > 0 {
			found++
		}
	}
	analysis.Coverage = float64(found) / float64(len(top))
	return analysis
}

// keywordTokens splits lowercased text into candidate keywords. Letters,
// digits, and the symbols + # . count as word characters so "c++", "c#", and
// "node.js" survive as single tokens; trailing dots are trimmed so sentence
// punctuation does not split vocabularies. Tokens shorter than three
// characters and stop words are dropped.
func keywordTokens(text string) []string {
	var tokens []string
	var cur strings.Builder
	flush := func() {
		if cur.Len() == 0 {
			return
		}
		tok := strings.TrimRight(cur.String(), ".")
		cur.Reset()
		if len(tok) >= 3 && !stopWords[tok] {
			tokens = append(tokens, tok)
		}
	}
	for _, r := range strings.ToLower(text) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '+' || r == '#' || r == '.' {
			cur.WriteRune(r)
			continue
		}
		flush()
	}
	flush()
	return tokens
}
