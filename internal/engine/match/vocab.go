package match

import (
	"regexp"
	"strings"
)

// Vocabulary is the process-wide skill lexicon: category → ordered skill
// terms, lowercase canonical form. Immutable after construction; a term
// belongs to at most one category (first category wins). Safe for concurrent
// use by any number of analyses.
type Vocabulary struct {
	categories []string
	byCategory map[string][]string
	category   map[string]string
	all        []string
	termRe     map[string]*regexp.Regexp
}

// Category is one named group of skill terms, used to build a Vocabulary.
type Category struct {
	Name  string
	Terms []string
}

// NewVocabulary builds an immutable vocabulary from ordered categories.
// Duplicate terms across categories are kept only in the first category seen.
func NewVocabulary(categories []Category) *Vocabulary {
	v := &Vocabulary{
		byCategory: make(map[string][]string, len(categories)),
		category:   make(map[string]string),
		termRe:     make(map[string]*regexp.Regexp),
	}
	for _, c := range categories {
		var kept []string
		for _, t := range c.Terms {
			term := strings.ToLower(strings.TrimSpace(t))
			if term == "" {
				continue
			}
			if _, dup := v.category[term]; dup {
				continue
			}
			v.category[term] = c.Name
			v.all = append(v.all, term)
			v.termRe[term] = regexp.MustCompile(boundaryPattern(term))
			kept = append(kept, term)
		}
		if len(kept) > 0 {
			v.categories = append(v.categories, c.Name)
			v.byCategory[c.Name] = kept
		}
	}
	return v
}

// Terms returns every skill term in category order. Callers must not modify
// the returned slice.
func (v *Vocabulary) Terms() []string { return v.all }

// Categories returns category names in construction order.
func (v *Vocabulary) Categories() []string { return v.categories }

// CategoryOf returns the category a term belongs to.
func (v *Vocabulary) CategoryOf(term string) (string, bool) {
	c, ok := v.category[term]
	return c, ok
}

// Categorize groups the given skills by vocabulary category, preserving
// category and term order. Unknown skills are dropped.
func (v *Vocabulary) Categorize(skills []string) map[string][]string {
	in := make(map[string]bool, len(skills))
	for _, s := range skills {
		in[s] = true
	}
	out := make(map[string][]string)
	for _, cat := range v.categories {
		for _, term := range v.byCategory[cat] {
			if in[term] {
				out[cat] = append(out[cat], term)
			}
		}
	}
	return out
}

// boundaryPattern builds a whole-word regex for a lowercase term. Word-char
// edges get \b anchors; punctuation edges ("c++", ".net") are left bare so
// the pattern still matches — a trailing \b after "+" would never match.
func boundaryPattern(term string) string {
	p := regexp.QuoteMeta(term)
	if isWordChar(rune(term[0])) {
		p = `\b` + p
	}
	if isWordChar(rune(term[len(term)-1])) {
		p += `\b`
	}
	return p
}

func isWordChar(r rune) bool {
	return r == '_' || (r >= '0' && r <= '9') || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

// DefaultVocabulary returns the built-in skill lexicon. Built once at startup
// and passed into every extractor call.
func DefaultVocabulary() *Vocabulary {
	return NewVocabulary([]Category{
		{Name: "programming_languages", Terms: []string{
			"python", "java", "c++", "c#", "javascript", "typescript", "ruby", "php",
			"swift", "kotlin", "go", "rust", "perl", "scala",
		}},
		{Name: "web_dev", Terms: []string{
			"html", "css", "react", "angular", "vue.js", "node.js", "express",
			"django", "flask", "spring boot", "asp.net", "jquery", "bootstrap", "tailwind",
		}},
		{Name: "databases", Terms: []string{
			"sql", "mysql", "postgresql", "mongodb", "firebase", "redis", "oracle",
			"cassandra", "dynamodb", "sqlite",
		}},
		{Name: "cloud", Terms: []string{
			"aws", "azure", "google cloud", "heroku", "digitalocean", "kubernetes",
			"docker", "terraform", "cloudformation",
		}},
		{Name: "data_science", Terms: []string{
			"machine learning", "deep learning", "nlp", "data analysis", "tensorflow",
			"pytorch", "keras", "scikit-learn", "pandas", "numpy", "tableau", "power bi",
		}},
		{Name: "devops", Terms: []string{
			"git", "github", "gitlab", "ci/cd", "jenkins", "travis ci", "circle ci",
			"ansible", "puppet", "chef",
		}},
		{Name: "soft_skills", Terms: []string{
			"communication", "teamwork", "leadership", "problem-solving",
			"time management", "critical thinking", "adaptability", "creativity",
		}},
	})
}
