package match

import (
	"regexp"
	"sort"
	"strings"
)

// Canonical resume sections and the header lines that open them. A header
// counts only when followed by a colon, a line break, or end of text — the
// word "experience" mid-sentence does not start a section.
var sectionHeaders = []struct {
	name    string
	headers []string
}{
	{"education", []string{"education", "academic background", "academic qualifications"}},
	{"experience", []string{"experience", "work experience", "professional experience", "employment"}},
	{"skills", []string{"skills", "technical skills", "core competencies", "expertise"}},
	{"projects", []string{"projects", "personal projects", "academic projects"}},
}

var headerRe = func() map[string]*regexp.Regexp {
	m := make(map[string]*regexp.Regexp)
	for _, s := range sectionHeaders {
		for _, h := range s.headers {
			m[h] = regexp.MustCompile(regexp.QuoteMeta(h) + `[ \t]*(?::|\r?\n|$)`)
		}
	}
	return m
}()

// SegmentSections splits resume text into named sections. For each section
// kind the earliest matching header wins; each section then spans from its
// header to the next found header (or end of text). Sections with no header
// are simply absent from the result.
func SegmentSections(text string) map[string]string {
	lower := strings.ToLower(text)

	type hit struct {
		name string
		pos  int
	}
	var hits []hit
	for _, s := range sectionHeaders {
		best := -1
		for _, h := range s.headers {
			if loc := headerRe[h].FindStringIndex(lower); loc != nil {
				if best == -1 || loc[0] < best {
					best = loc[0]
				}
			}
		}
		if best >= 0 {
			hits = append(hits, hit{s.name, best})
		}
	}
	if len(hits) == 0 {
		return map[string]string{}
	}

	sort.Slice(hits, func(i, j int) bool { return hits[i].pos < hits[j].pos })

	out := make(map[string]string, len(hits))
	for i, h := range hits {
		end := len(text)
		if i+1 < len(hits) {
			end = hits[i+1].pos
		}
		out[h.name] = text[h.pos:end]
	}
	return out
}
