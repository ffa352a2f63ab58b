package match

import (
	"strings"

	"github.com/anatolykoptev/go_resume/internal/engine"
)

// ExtractSkills returns the vocabulary terms present in text, in vocabulary
// order. Presence is binary; a skill is reported once no matter how often it
// occurs.
//
// Two detection passes, unioned:
//   - phrase pass: the term appears space-bounded inside the normalized text
//     (handles multi-word terms like "machine learning");
//   - pattern pass: the term's whole-word regex matches the raw lowercased
//     text (handles terms normalization destroys, like "c++" and "node.js",
//     without letting "java" fire inside "javascript").
func ExtractSkills(text string, vocab *Vocabulary) []string {
	norm := " " + engine.CleanText(text) + " "
	lower := strings.ToLower(text)

	var found []string
	for _, term := range vocab.Terms() {
		if strings.Contains(norm, " "+term+" ") || vocab.termRe[term].MatchString(lower) {
			found = append(found, term)
		}
	}
	return found
}
