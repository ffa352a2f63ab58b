package match

import (
	"strings"

	"github.com/anatolykoptev/go_resume/internal/engine"
)

// Suggestion priorities.
const (
	PriorityHigh   = "High"
	PriorityMedium = "Medium"
	PriorityLow    = "Low"
)

// Suggestion is one actionable improvement derived from a score result.
type Suggestion struct {
	Category string `json:"category"`
	Message  string `json:"message"`
	Priority string `json:"priority"`
}

// Thresholds below which a component triggers advice.
const (
	skillsThreshold     = 50
	keywordThreshold    = 40
	similarityThreshold = 30
	experienceThreshold = 50
	educationThreshold  = 50
	polishThreshold     = 85
	overallThreshold    = 40
)

// GenerateSuggestions derives resume advice from a score result. Rules fire
// in a fixed order so output is deterministic; the generic polish advice
// appears only when nothing specific fired, while the overall-match warning
// stacks on top of whatever else was said.
func GenerateSuggestions(result *ScoreResult) []Suggestion {
	engine.IncrSuggestRequests()

	var out []Suggestion

	if len(result.MissingSkills.MustHave) > 0 {
		out = append(out, Suggestion{
			Category: "Critical Skills",
			Message: "Add these essential skills to your resume: " +
				strings.Join(result.MissingSkills.MustHave, ", "),
			Priority: PriorityHigh,
		})
	}
	if len(result.MissingSkills.Preferred) > 0 {
		out = append(out, Suggestion{
			Category: "Preferred Skills",
			Message: "Consider highlighting experience with: " +
				strings.Join(result.MissingSkills.Preferred, ", "),
			Priority: PriorityMedium,
		})
	}

	cs := result.ComponentScores
	if cs.SkillsMatch < skillsThreshold {
		out = append(out, Suggestion{
			Category: "Skills Alignment",
			Message:  "Your skills section needs significant alignment with the job requirements",
			Priority: PriorityHigh,
		})
	}
	if cs.KeywordMatch < keywordThreshold {
		out = append(out, Suggestion{
			Category: "Keywords",
			Message:  "Include more keywords from the job description in your resume",
			Priority: PriorityMedium,
		})
	}
	if cs.ContentSimilarity < similarityThreshold {
		out = append(out, Suggestion{
			Category: "Content Relevance",
			Message:  "Tailor your resume content to better match the job description",
			Priority: PriorityMedium,
		})
	}
	if cs.ExperienceMatch < experienceThreshold {
		out = append(out, Suggestion{
			Category: "Experience",
			Message:  "Highlight relevant experience that matches the job requirements",
			Priority: PriorityHigh,
		})
	}
	if cs.EducationMatch < educationThreshold {
		out = append(out, Suggestion{
			Category: "Education",
			Message:  "Ensure your education section clearly states your qualifications",
			Priority: PriorityMedium,
		})
	}

	if len(out) == 0 && result.Score < polishThreshold {
		out = append(out,
			Suggestion{
				Category: "Resume Format",
				Message:  "Consider restructuring your resume to highlight relevant qualifications",
				Priority: PriorityLow,
			},
			Suggestion{
				Category: "Quantify Achievements",
				Message:  "Add measurable achievements and impact metrics to stand out",
				Priority: PriorityMedium,
			})
	}

	if result.Score < overallThreshold {
		out = append(out, Suggestion{
			Category: "Overall Match",
			Message:  "This position may not be the best fit for your current skill set",
			Priority: PriorityHigh,
		})
	}

	return out
}
