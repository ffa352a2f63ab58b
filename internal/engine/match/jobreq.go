package match

import (
	"bytes"
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/anatolykoptev/go_resume/internal/engine"
)

// SkillImportance tags how strongly a job description demands a skill.
type SkillImportance string

const (
	ImportanceMustHave  SkillImportance = "must_have"
	ImportancePreferred SkillImportance = "preferred"
	ImportanceStandard  SkillImportance = "standard"
)

// SkillRequirements maps skills to their importance, preserving insertion
// order. A skill keeps the first importance it was classified with; later
// mentions never re-tag it.
type SkillRequirements struct {
	order []string
	tags  map[string]SkillImportance
}

func newSkillRequirements() *SkillRequirements {
	return &SkillRequirements{tags: make(map[string]SkillImportance)}
}

// insert records a skill unless already present. Reports whether it was added.
func (r *SkillRequirements) insert(skill string, imp SkillImportance) bool {
	if _, ok := r.tags[skill]; ok {
		return false
	}
	r.order = append(r.order, skill)
	r.tags[skill] = imp
	return true
}

// Skills returns the skill names in insertion order.
func (r *SkillRequirements) Skills() []string { return r.order }

// Importance returns the tag for a skill.
func (r *SkillRequirements) Importance(skill string) (SkillImportance, bool) {
	imp, ok := r.tags[skill]
	return imp, ok
}

// Len returns the number of required skills.
func (r *SkillRequirements) Len() int { return len(r.order) }

// MarshalJSON emits a JSON object in insertion order.
func (r *SkillRequirements) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, s := range r.order {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(s)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		v, err := json.Marshal(r.tags[s])
		if err != nil {
			return nil, err
		}
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON restores a requirements object. Go decodes JSON object keys
// in document order via json.Decoder tokens, so insertion order survives a
// cache round-trip.
func (r *SkillRequirements) UnmarshalJSON(data []byte) error {
	r.order = nil
	r.tags = make(map[string]SkillImportance)
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("skill requirements: expected object, got %v", tok)
	}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("skill requirements: expected string key, got %v", keyTok)
		}
		var imp SkillImportance
		if err := dec.Decode(&imp); err != nil {
			return err
		}
		r.insert(key, imp)
	}
	_, err = dec.Token() // closing brace
	return err
}

// ExperienceRequirement is one "N years of X" demand from a job description.
type ExperienceRequirement struct {
	Skill string `json:"skill"`
	Years int    `json:"years"`
}

// EducationRequirement captures whether and what degree a job demands.
type EducationRequirement struct {
	DegreeRequired bool   `json:"degree_required"`
	DegreeLevel    string `json:"degree_level,omitempty"`
	Field          string `json:"field,omitempty"`
}

// JobRequirements is the structured view of one job description.
type JobRequirements struct {
	Skills     *SkillRequirements      `json:"skills"`
	Experience []ExperienceRequirement `json:"experience_requirements"`
	Education  EducationRequirement    `json:"education_requirements"`
}

const (
	tokenWindow = 10 // tokens either side in the phrase pass
	charWindow  = 50 // characters either side in the fallback pass
)

var (
	mustHaveCues  = []string{"must", "required", "essential", "necessary"}
	preferredCues = []string{"preferred", "nice to have", "plus", "desirable"}

	yearsRe = regexp.MustCompile(`(\d+)\+?\s*(?:-|\s*to\s*)?(?:\d+\s*)?(?:years|year|yr|yrs)(?:\s*of\s*experience)?`)

	degreeRequiredRe = regexp.MustCompile(`(?:degree|bachelor'?s?|master'?s?|phd|doctorate) required`)
	degreeLevelRe    = regexp.MustCompile(`(?:associate|bachelor(?:'s)?|master(?:'s)?|phd|doctorate)`)
	degreeFieldRe    = regexp.MustCompile(`(?:degree|bachelor|master|phd|doctorate) (?:in|of) ([a-z ]+)`)
)

// ExtractJobRequirements parses a job description into skill, experience, and
// education requirements. Empty text is the only failure.
func ExtractJobRequirements(jd string, vocab *Vocabulary) (*JobRequirements, error) {
	if strings.TrimSpace(jd) == "" {
		return nil, fmt.Errorf("extract job requirements: %w", ErrParse)
	}
	engine.IncrJobParses()

	return &JobRequirements{
		Skills:     extractJobSkills(jd, vocab),
		Experience: extractExperienceReqs(jd, vocab),
		Education:  extractEducationReq(jd),
	}, nil
}

// classifyImportance reads the text surrounding a skill mention.
// Must-have cues outrank preferred cues when both appear.
func classifyImportance(context string) SkillImportance {
	for _, cue := range mustHaveCues {
		if strings.Contains(context, cue) {
			return ImportanceMustHave
		}
	}
	for _, cue := range preferredCues {
		if strings.Contains(context, cue) {
			return ImportancePreferred
		}
	}
	return ImportanceStandard
}

// extractJobSkills finds vocabulary skills in the job text and tags each with
// the importance read from its first occurrence's context. Two passes: a
// token-window pass over normalized text, then a character-window pass over
// the raw lowercased text for terms normalization destroys.
func extractJobSkills(jd string, vocab *Vocabulary) *SkillRequirements {
	reqs := newSkillRequirements()

	tokens := strings.Fields(engine.CleanText(jd))
	for _, term := range vocab.Terms() {
		termToks := strings.Fields(term)
		if pos := findPhrase(tokens, termToks); pos >= 0 {
			lo := max(0, pos-tokenWindow)
			hi := min(len(tokens), pos+len(termToks)+tokenWindow)
			ctx := strings.Join(tokens[lo:hi], " ")
			reqs.insert(term, classifyImportance(ctx))
		}
	}

	lower := strings.ToLower(jd)
	for _, term := range vocab.Terms() {
		loc := vocab.termRe[term].FindStringIndex(lower)
		if loc == nil {
			continue
		}
		ctx := lower[max(0, loc[0]-charWindow):min(len(lower), loc[1]+charWindow)]
		reqs.insert(term, classifyImportance(ctx))
	}

	return reqs
}

// findPhrase returns the index of the first occurrence of phrase inside
// tokens, or -1.
func findPhrase(tokens, phrase []string) int {
	if len(phrase) == 0 {
		return -1
	}
	for i := 0; i+len(phrase) <= len(tokens); i++ {
		match := true
		for j, p := range phrase {
			if tokens[i+j] != p {
				match = false
				break
			}
		}
		if match {
			return i
		}
	}
	return -1
}

// extractExperienceReqs pairs "N years" mentions with the vocabulary skills
// named near them. Every skill appearing within ±50 characters of a years
// figure gets a requirement; when no skill is nearby anywhere, the first
// figure becomes a single "general" requirement.
func extractExperienceReqs(jd string, vocab *Vocabulary) []ExperienceRequirement {
	lower := strings.ToLower(jd)
	matches := yearsRe.FindAllStringSubmatchIndex(lower, -1)
	if len(matches) == 0 {
		return nil
	}

	var reqs []ExperienceRequirement
	firstYears := -1
	for _, m := range matches {
		years, err := strconv.Atoi(lower[m[2]:m[3]])
		if err != nil {
			continue
		}
		if firstYears < 0 {
			firstYears = years
		}
		ctx := lower[max(0, m[0]-charWindow):min(len(lower), m[1]+charWindow)]
		for _, skill := range vocab.Terms() {
			if strings.Contains(ctx, skill) {
				reqs = append(reqs, ExperienceRequirement{Skill: skill, Years: years})
			}
		}
	}
	if len(reqs) == 0 && firstYears >= 0 {
		reqs = append(reqs, ExperienceRequirement{Skill: "general", Years: firstYears})
	}
	return reqs
}

// extractEducationReq reads degree demands from the job text. A degree is
// required either by an explicit "<level> required" phrase or by a must-have
// cue within ±50 characters of a degree-level mention.
func extractEducationReq(jd string) EducationRequirement {
	lower := strings.ToLower(jd)

	var req EducationRequirement
	req.DegreeRequired = degreeRequiredRe.MatchString(lower)

	if loc := degreeLevelRe.FindStringIndex(lower); loc != nil {
		req.DegreeLevel = lower[loc[0]:loc[1]]
		if !req.DegreeRequired {
			ctx := lower[max(0, loc[0]-charWindow):min(len(lower), loc[1]+charWindow)]
			for _, cue := range mustHaveCues {
				if strings.Contains(ctx, cue) {
					req.DegreeRequired = true
					break
				}
			}
		}
	}

	if m := degreeFieldRe.FindStringSubmatch(lower); m != nil {
		req.Field = strings.TrimSpace(m[1])
	}
	return req
}
