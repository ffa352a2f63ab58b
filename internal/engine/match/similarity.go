package match

import (
	"math"
	"strings"

	"github.com/anatolykoptev/go_resume/internal/engine"
)

// ContentSimilarity computes TF-IDF cosine similarity between a resume and a
// job description over a two-document corpus. Result is in [0, 1]: identical
// texts score 1.0, texts with no shared terms score 0. Symmetric in its
// arguments.
func ContentSimilarity(resumeText, jdText string) float64 {
	a := similarityTokens(resumeText)
	b := similarityTokens(jdText)
	if len(a) == 0 || len(b) == 0 {
		return 0
	}

	tfA := termCounts(a)
	tfB := termCounts(b)

	// Smoothed IDF over n=2 documents: ln((1+n)/(1+df)) + 1.
	vecA := make(map[string]float64, len(tfA))
	vecB := make(map[string]float64, len(tfB))
	for term, tf := range tfA {
		vecA[term] = float64(tf) * idf2(tfB[term] > 0)
	}
	for term, tf := range tfB {
		vecB[term] = float64(tf) * idf2(tfA[term] > 0)
	}
	normalize(vecA)
	normalize(vecB)

	var dot float64
	for term, wa := range vecA {
		dot += wa * vecB[term]
	}
	if dot > 1 {
		dot = 1 // guard against float drift on identical texts
	}
	return dot
}

// similarityTokens normalizes text and keeps tokens of two or more
// characters, minus stop words.
func similarityTokens(text string) []string {
	fields := strings.Fields(engine.CleanText(text))
	out := fields[:0]
	for _, f := range fields {
		if len(f) >= 2 && !stopWords[f] {
			out = append(out, f)
		}
	}
	return out
}

func termCounts(tokens []string) map[string]int {
	m := make(map[string]int, len(tokens))
	for _, t := range tokens {
		m[t]++
	}
	return m
}

func idf2(inOther bool) float64 {
	df := 1
	if inOther {
		df = 2
	}
	return math.Log(3.0/float64(1+df)) + 1
}

func normalize(vec map[string]float64) {
	var sum float64
	for _, w := range vec {
		sum += w * w
	}
	if sum == 0 {
		return
	}
	n := math.Sqrt(sum)
	for term, w := range vec {
		vec[term] = w / n
	}
}
