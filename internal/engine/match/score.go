package match

import (
	"fmt"
	"math"
	"strings"

	"github.com/anatolykoptev/go_resume/internal/engine"
)

// Component weights in the final score. Skills dominate; the rest refine.
const (
	weightSkills     = 0.40
	weightKeywords   = 0.20
	weightSimilarity = 0.15
	weightExperience = 0.15
	weightEducation  = 0.10
)

// importanceWeights scale each job skill's contribution to the skills
// component.
var importanceWeights = map[SkillImportance]float64{
	ImportanceMustHave:  2.0,
	ImportancePreferred: 1.5,
	ImportanceStandard:  1.0,
}

// ComponentScores are the five sub-scores behind a final score, each 0–100.
type ComponentScores struct {
	SkillsMatch       float64 `json:"skills_match"`
	KeywordMatch      float64 `json:"keyword_match"`
	ContentSimilarity float64 `json:"content_similarity"`
	ExperienceMatch   float64 `json:"experience_match"`
	EducationMatch    float64 `json:"education_match"`
}

// MatchedSkills partitions the job's skills the resume has, by importance.
type MatchedSkills struct {
	MustHave  []string `json:"must_have"`
	Preferred []string `json:"preferred"`
	Standard  []string `json:"standard"`
}

// MissingSkills lists job skills the resume lacks. Standard-importance gaps
// are not reported; they only cost weight.
type MissingSkills struct {
	MustHave  []string `json:"must_have"`
	Preferred []string `json:"preferred"`
}

// ScoreResult is the full outcome of scoring one resume against one job
// description. All scores are rounded to one decimal.
type ScoreResult struct {
	Score           float64         `json:"score"`
	ComponentScores ComponentScores `json:"component_scores"`
	MatchedSkills   MatchedSkills   `json:"matched_skills"`
	MissingSkills   MissingSkills   `json:"missing_skills"`

	KeywordPresence map[string]int          `json:"keyword_analysis"`
	TopKeywords     []string                `json:"top_keywords"`
	ExperienceReqs  []ExperienceRequirement `json:"experience_requirements"`
	EducationReqs   EducationRequirement    `json:"education_requirements"`
}

// Score evaluates an extracted resume against a job description.
// Deterministic: the same pair always yields the same result, which is what
// makes caching by content hash sound.
func Score(resume *ExtractedResume, jdText string, vocab *Vocabulary) (*ScoreResult, error) {
	if resume == nil {
		return nil, fmt.Errorf("score: nil resume: %w", ErrInvalidInput)
	}
	if strings.TrimSpace(jdText) == "" {
		return nil, fmt.Errorf("score: empty job description: %w", ErrInvalidInput)
	}
	engine.IncrScoreRequests()

	job, err := ExtractJobRequirements(jdText, vocab)
	if err != nil {
		return nil, err
	}

	resumeHas := make(map[string]bool, len(resume.Skills))
	for _, s := range resume.Skills {
		resumeHas[s] = true
	}

	var matched MatchedSkills
	var missing MissingSkills
	var totalWeight, matchedWeight float64
	for _, skill := range job.Skills.Skills() {
		imp, _ := job.Skills.Importance(skill)
		w := importanceWeights[imp]
		totalWeight += w
		if resumeHas[skill] {
			matchedWeight += w
			switch imp {
			case ImportanceMustHave:
				matched.MustHave = append(matched.MustHave, skill)
			case ImportancePreferred:
				matched.Preferred = append(matched.Preferred, skill)
			default:
				matched.Standard = append(matched.Standard, skill)
			}
			continue
		}
		switch imp {
		case ImportanceMustHave:
			missing.MustHave = append(missing.MustHave, skill)
		case ImportancePreferred:
			missing.Preferred = append(missing.Preferred, skill)
		}
	}

	skillsScore := 0.0
	if totalWeight > 0 {
		skillsScore = matchedWeight / totalWeight * 100
	}

	kw := AnalyzeKeywords(resume.RawText, jdText)
	simScore := ContentSimilarity(resume.RawText, jdText) * 100
	expScore := EvaluateExperience(resume.Experience, job.Experience) * 100
	eduScore := EvaluateEducation(resume.Education, job.Education) * 100
	kwScore := kw.Coverage * 100

	final := skillsScore*weightSkills +
		kwScore*weightKeywords +
		simScore*weightSimilarity +
		expScore*weightExperience +
		eduScore*weightEducation

	return &ScoreResult{
		Score: round1(final),
		ComponentScores: ComponentScores{
			SkillsMatch:       round1(skillsScore),
			KeywordMatch:      round1(kwScore),
			ContentSimilarity: round1(simScore),
			ExperienceMatch:   round1(expScore),
			EducationMatch:    round1(eduScore),
		},
		MatchedSkills:   matched,
		MissingSkills:   missing,
		KeywordPresence: kw.Presence,
		TopKeywords:     kw.TopKeywords,
		ExperienceReqs:  job.Experience,
		EducationReqs:   job.Education,
	}, nil
}

func round1(x float64) float64 {
	return math.Round(x*10) / 10
}
