package match

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/anatolykoptev/go_resume/internal/engine"
)

// EducationInfo holds education signals found in a resume.
type EducationInfo struct {
	Degrees      []string `json:"degrees"`
	Institutions []string `json:"institutions"`
	Dates        []string `json:"dates"`
}

// ExperienceInfo holds work-experience signals found in a resume.
// Duration is total years across dated ranges, nil when no usable date pairs
// exist — "no data" and "zero years" are different answers.
type ExperienceInfo struct {
	Positions []string `json:"positions"`
	Companies []string `json:"companies"`
	Duration  *float64 `json:"duration,omitempty"`
}

// ExtractedResume is the structured view of one resume.
type ExtractedResume struct {
	RawText           string              `json:"-"`
	Email             string              `json:"email,omitempty"`
	Phone             string              `json:"phone,omitempty"`
	Skills            []string            `json:"skills"`
	CategorizedSkills map[string][]string `json:"categorized_skills"`
	Education         EducationInfo       `json:"education"`
	Experience        ExperienceInfo      `json:"experience"`
	Sections          map[string]string   `json:"-"`
}

const (
	maxDegreeDates = 4
	maxPositions   = 5
	maxCompanies   = 5
)

var (
	emailRe = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)
	phoneRe = regexp.MustCompile(`(?:\+?\d{1,2}\s?)?(?:\(\d{3}\)|\d{3})[-.\s]?\d{3}[-.\s]?\d{4}`)

	// Degree mentions: level keyword, optional connective, optional field.
	// The leading \b keeps "ba" from firing inside "background".
	degreeRe = regexp.MustCompile(`(?i)\b(?:bachelor|master|phd|doctorate|bs|ms|ba|mba|associate|diploma)(?:'s|s)?\b\s*(?:degree\s*|of\s*|in\s*)?(?:science|arts|engineering|business|education|fine arts|law|medicine|nursing|technology|administration)?`)

	institutionRe = regexp.MustCompile(`(?i)\b(?:university|college|institute|school) of [a-z ]+`)

	// Date tokens: "Jan 2020", "January 2020", "Sept. 2021", or a bare year.
	eduDateRe = regexp.MustCompile(`(?i)(?:jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\.?,? \d{4}|(?:19|20)\d{2}`)
	// Experience ranges additionally end in "present"/"current".
	expDateRe = regexp.MustCompile(`(?i)(?:jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\.?,? \d{4}|(?:19|20)\d{2}|\b(?:present|current)\b`)

	titleRe   = regexp.MustCompile(`(?i)\b(?:software|senior|junior|lead|principal|staff|data|product|project|program|web|full[\s-]?stack|front[\s-]?end|back[\s-]?end)? ?(?:engineer|developer|scientist|analyst|manager|director|administrator|designer|architect|consultant)\b`)
	companyRe = regexp.MustCompile(`(?:at|with|for) ([A-Z][A-Za-z0-9'\-.&]+(?: [A-Z][A-Za-z0-9'\-.&]+)*)`)
)

// ExtractResumeFeatures parses raw resume text into structured features.
// Empty (or whitespace-only) text is the only failure; every optional field
// that cannot be found is returned absent rather than as an error.
func ExtractResumeFeatures(text string, vocab *Vocabulary) (*ExtractedResume, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("extract resume: %w", ErrParse)
	}
	engine.IncrResumeParses()

	sections := SegmentSections(text)
	skills := ExtractSkills(text, vocab)

	return &ExtractedResume{
		RawText:           text,
		Email:             emailRe.FindString(text),
		Phone:             strings.TrimSpace(phoneRe.FindString(text)),
		Skills:            skills,
		CategorizedSkills: vocab.Categorize(skills),
		Education:         extractEducation(text, sections),
		Experience:        extractExperience(sections),
		Sections:          sections,
	}, nil
}

// extractEducation scans the education section, or the whole document when no
// education header was found.
func extractEducation(text string, sections map[string]string) EducationInfo {
	scope := text
	if sec, ok := sections["education"]; ok {
		scope = sec
	}

	var info EducationInfo
	for _, m := range degreeRe.FindAllString(scope, -1) {
		info.Degrees = append(info.Degrees, strings.ToLower(strings.TrimSpace(m)))
	}
	for _, m := range institutionRe.FindAllString(scope, -1) {
		info.Institutions = append(info.Institutions, strings.ToLower(strings.TrimSpace(m)))
	}
	info.Dates = capSlice(eduDateRe.FindAllString(scope, -1), maxDegreeDates)
	return info
}

// extractExperience works only on an explicit experience section; without one
// the resume yields no positions, companies, or duration.
func extractExperience(sections map[string]string) ExperienceInfo {
	sec, ok := sections["experience"]
	if !ok || strings.TrimSpace(sec) == "" {
		return ExperienceInfo{}
	}

	var info ExperienceInfo
	for _, m := range capSlice(titleRe.FindAllString(sec, -1), maxPositions) {
		info.Positions = append(info.Positions, strings.ToLower(strings.TrimSpace(m)))
	}
	for _, m := range capSlice(companyRe.FindAllStringSubmatch(sec, -1), maxCompanies) {
		info.Companies = append(info.Companies, m[1])
	}
	info.Duration = totalDuration(expDateRe.FindAllString(sec, -1))
	return info
}

// totalDuration pairs date tokens in document order as (start, end) ranges
// and sums their lengths in years, rounded to one decimal. Pairs with an
// unparseable member are skipped; a trailing unpaired token is ignored.
func totalDuration(dates []string) *float64 {
	var total float64
	for i := 0; i+1 < len(dates); i += 2 {
		start, ok1 := parseResumeDate(dates[i])
		end, ok2 := parseResumeDate(dates[i+1])
		if !ok1 || !ok2 {
			continue
		}
		total += end.Sub(start).Hours() / 24 / 365.25
	}
	if total <= 0 {
		return nil
	}
	total = round1(total)
	return &total
}

var monthPrefix = map[string]time.Month{
	"jan": time.January, "feb": time.February, "mar": time.March,
	"apr": time.April, "may": time.May, "jun": time.June,
	"jul": time.July, "aug": time.August, "sep": time.September,
	"oct": time.October, "nov": time.November, "dec": time.December,
}

// parseResumeDate turns a matched date token into a point in time.
// "present"/"current" mean now; a bare year means January 1 of that year;
// month names are recognized by their first three letters.
func parseResumeDate(tok string) (time.Time, bool) {
	t := strings.ToLower(strings.TrimSpace(tok))
	if strings.Contains(t, "present") || strings.Contains(t, "current") {
		return time.Now(), true
	}
	t = strings.NewReplacer(".", "", ",", "").Replace(t)

	fields := strings.Fields(t)
	switch len(fields) {
	case 1:
		if y, err := strconv.Atoi(fields[0]); err == nil && y >= 1900 && y < 2100 {
			return time.Date(y, time.January, 1, 0, 0, 0, 0, time.UTC), true
		}
	case 2:
		y, err := strconv.Atoi(fields[1])
		if err != nil || len(fields[0]) < 3 {
			break
		}
		if m, ok := monthPrefix[fields[0][:3]]; ok {
			return time.Date(y, m, 1, 0, 0, 0, 0, time.UTC), true
		}
	}
	return time.Time{}, false
}

func capSlice[T any](s []T, n int) []T {
	if len(s) > n {
		return s[:n]
	}
	return s
}
