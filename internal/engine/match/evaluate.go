package match

import "strings"

// degreeRanks orders degree levels. Checked in order with substring matching
// so "bachelor's degree" and "bachelors" both rank as bachelor.
var degreeRanks = []struct {
	name string
	rank int
}{
	{"associate", 1},
	{"bachelor", 2},
	{"bachelors", 2},
	{"master", 3},
	{"masters", 3},
	{"phd", 4},
	{"doctorate", 4},
}

// EvaluateExperience scores resume experience against job demands on a fixed
// scale. Only a "general" years requirement is comparable to the resume's
// total duration; skill-specific years cannot be attributed from resume text
// alone, so those cases fall back to the neutral 0.5.
//
//	no duration data or no requirements  → 0.5
//	meets the general requirement        → 1.0
//	within 70% of it                     → 0.7
//	below that                           → 0.4
func EvaluateExperience(exp ExperienceInfo, reqs []ExperienceRequirement) float64 {
	if exp.Duration == nil || len(reqs) == 0 {
		return 0.5
	}
	general := 0
	for _, r := range reqs {
		if r.Skill == "general" {
			general = r.Years
			break
		}
	}
	if general <= 0 {
		return 0.5
	}
	switch years := *exp.Duration; {
	case years >= float64(general):
		return 1.0
	case years >= 0.7*float64(general):
		return 0.7
	default:
		return 0.4
	}
}

// EvaluateEducation scores resume education against the job's degree demand.
//
//	no degree required                 → 1.0
//	required but resume shows none     → 0.0
//	required, no specific level named  → 0.8
//	resume level ≥ required            → 1.0
//	exactly one level below            → 0.7
//	further below                      → 0.3
func EvaluateEducation(edu EducationInfo, req EducationRequirement) float64 {
	if !req.DegreeRequired {
		return 1.0
	}
	if len(edu.Degrees) == 0 {
		return 0.0
	}
	if req.DegreeLevel == "" {
		return 0.8
	}

	highest := 0
	for _, degree := range edu.Degrees {
		d := strings.ToLower(degree)
		for _, dr := range degreeRanks {
			if strings.Contains(d, dr.name) && dr.rank > highest {
				highest = dr.rank
			}
		}
	}

	required := 0
	level := strings.ToLower(req.DegreeLevel)
	for _, dr := range degreeRanks {
		if strings.Contains(level, dr.name) {
			required = dr.rank
			break
		}
	}

	switch {
	case highest >= required:
		return 1.0
	case highest == required-1:
		return 0.7
	default:
		return 0.3
	}
}
