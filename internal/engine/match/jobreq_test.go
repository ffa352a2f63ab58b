package match

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyImportance(t *testing.T) {
	tests := []struct {
		context string
		want    SkillImportance
	}{
		{"python is required for this role", ImportanceMustHave},
		{"candidates must know docker", ImportanceMustHave},
		{"kubernetes is essential", ImportanceMustHave},
		{"terraform would be nice to have", ImportancePreferred},
		{"redis experience preferred", ImportancePreferred},
		{"aws is a plus", ImportancePreferred},
		{"we use git daily", ImportanceStandard},
		{"", ImportanceStandard},
		// Must-have cues outrank preferred ones.
		{"required, though react alone is a plus", ImportanceMustHave},
	}
	for _, tt := range tests {
		if got := classifyImportance(tt.context); got != tt.want {
			t.Errorf("classifyImportance(%q) = %q, want %q", tt.context, got, tt.want)
		}
	}
}

func TestExtractJobRequirements_Skills(t *testing.T) {
	v := DefaultVocabulary()
	tests := []struct {
		name  string
		jd    string
		skill string
		want  SkillImportance
	}{
		{"explicit requirement", "Python is required for this position", "python", ImportanceMustHave},
		{"preferred wording", "Docker experience is nice to have", "docker", ImportancePreferred},
		{"plain mention", "Our stack includes PostgreSQL", "postgresql", ImportanceStandard},
		{"punctuated term via fallback", "C++ knowledge is required", "c++", ImportanceMustHave},
		{"multi-word phrase", "Deep familiarity with machine learning is essential", "machine learning", ImportanceMustHave},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reqs, err := ExtractJobRequirements(tt.jd, v)
			require.NoError(t, err)
			imp, ok := reqs.Skills.Importance(tt.skill)
			require.True(t, ok, "skill %q not found in %v", tt.skill, reqs.Skills.Skills())
			assert.Equal(t, tt.want, imp)
		})
	}
}

func TestExtractJobRequirements_Empty(t *testing.T) {
	// Same failure contract as resume extraction: empty input is a parse
	// failure, not an invalid-argument failure.
	_, err := ExtractJobRequirements("   ", DefaultVocabulary())
	if !errors.Is(err, ErrParse) {
		t.Errorf("err = %v, want ErrParse", err)
	}
	if errors.Is(err, ErrInvalidInput) {
		t.Errorf("err = %v, must not be ErrInvalidInput", err)
	}
}

func TestSkillRequirements_FirstInsertWins(t *testing.T) {
	r := newSkillRequirements()
	if !r.insert("python", ImportanceMustHave) {
		t.Fatal("first insert should succeed")
	}
	if r.insert("python", ImportancePreferred) {
		t.Error("second insert should be rejected")
	}
	imp, _ := r.Importance("python")
	if imp != ImportanceMustHave {
		t.Errorf("importance = %q, want must_have", imp)
	}
}

func TestSkillRequirements_JSONOrderRoundTrip(t *testing.T) {
	r := newSkillRequirements()
	r.insert("zz-last-alphabetically", ImportanceMustHave)
	r.insert("aa-first-alphabetically", ImportancePreferred)
	r.insert("middle", ImportanceStandard)

	data, err := json.Marshal(r)
	require.NoError(t, err)

	var back SkillRequirements
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, r.Skills(), back.Skills(), "insertion order must survive a round-trip")
	for _, s := range r.Skills() {
		want, _ := r.Importance(s)
		got, _ := back.Importance(s)
		assert.Equal(t, want, got, "importance of %s", s)
	}
}

func TestExtractExperienceReqs(t *testing.T) {
	v := DefaultVocabulary()

	t.Run("skill in context", func(t *testing.T) {
		reqs := extractExperienceReqs("We need 5+ years of python experience.", v)
		require.NotEmpty(t, reqs)
		assert.Contains(t, reqs, ExperienceRequirement{Skill: "python", Years: 5})
	})

	t.Run("general fallback", func(t *testing.T) {
		reqs := extractExperienceReqs("At least 3 years of experience in our industry.", v)
		assert.Equal(t, []ExperienceRequirement{{Skill: "general", Years: 3}}, reqs)
	})

	t.Run("no years mentioned", func(t *testing.T) {
		assert.Empty(t, extractExperienceReqs("Senior role, strong fundamentals.", v))
	})

	t.Run("range takes lower bound", func(t *testing.T) {
		reqs := extractExperienceReqs("2-4 years of sql work.", v)
		require.NotEmpty(t, reqs)
		assert.Contains(t, reqs, ExperienceRequirement{Skill: "sql", Years: 2})
	})
}

func TestExtractEducationReq(t *testing.T) {
	tests := []struct {
		name         string
		jd           string
		wantRequired bool
		wantLevel    string
		wantField    string
	}{
		{
			name:         "explicit degree required",
			jd:           "Bachelor's degree required for this position",
			wantRequired: true,
			wantLevel:    "bachelor's",
		},
		{
			name:         "must-have cue near level",
			jd:           "PhD in computer science, must have Kubernetes",
			wantRequired: true,
			wantLevel:    "phd",
			wantField:    "computer science",
		},
		{
			name:         "preferred degree is not required",
			jd:           "Master's degree preferred",
			wantLevel:    "master's",
			wantRequired: false,
		},
		{
			name:         "no education mention",
			jd:           "Ship features, review code.",
			wantRequired: false,
		},
		{
			name:         "field extraction",
			jd:           "degree in software engineering required",
			wantRequired: false, // "degree" and "required" are not adjacent and no level is named
			wantField:    "software engineering required", // greedy field capture, inherited behavior
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := extractEducationReq(tt.jd)
			assert.Equal(t, tt.wantRequired, got.DegreeRequired, "required")
			assert.Equal(t, tt.wantLevel, got.DegreeLevel, "level")
			assert.Equal(t, tt.wantField, got.Field, "field")
		})
	}
}
