package match

import (
	"strings"
	"testing"
)

func TestSegmentSections(t *testing.T) {
	resume := `John Doe
john@example.com

EDUCATION
BS in Computer Science, University of Texas

Experience:
Software Engineer at Acme Corp
Jan 2020 - Jan 2022

Technical Skills
Python, Docker, PostgreSQL
`
	sections := SegmentSections(resume)

	if len(sections) != 3 {
		t.Fatalf("got %d sections (%v), want 3", len(sections), sections)
	}
	if !strings.Contains(sections["education"], "University of Texas") {
		t.Errorf("education section missing content: %q", sections["education"])
	}
	if !strings.Contains(sections["experience"], "Acme Corp") {
		t.Errorf("experience section missing content: %q", sections["experience"])
	}
	if !strings.Contains(sections["skills"], "PostgreSQL") {
		t.Errorf("skills section missing content: %q", sections["skills"])
	}

	// Each section ends where the next begins.
	if strings.Contains(sections["education"], "Acme Corp") {
		t.Error("education section bleeds into experience")
	}
	if strings.Contains(sections["experience"], "PostgreSQL") {
		t.Error("experience section bleeds into skills")
	}
}

func TestSegmentSections_HeaderNeedsTerminator(t *testing.T) {
	// "experience" mid-sentence is not a header.
	sections := SegmentSections("I have experience in many things and skills to match.")
	if len(sections) != 0 {
		t.Errorf("expected no sections, got %v", sections)
	}
}

func TestSegmentSections_SynonymHeaders(t *testing.T) {
	resume := "Academic Background\nMIT\n\nEmployment\nDeveloper at Initech\n"
	sections := SegmentSections(resume)
	if _, ok := sections["education"]; !ok {
		t.Errorf("academic background should map to education: %v", sections)
	}
	if _, ok := sections["experience"]; !ok {
		t.Errorf("employment should map to experience: %v", sections)
	}
}

func TestSegmentSections_EarliestHeaderWins(t *testing.T) {
	resume := "Work Experience\nfirst stint\n\nProfessional Experience\nsecond stint\n"
	sections := SegmentSections(resume)
	if !strings.Contains(sections["experience"], "first stint") {
		t.Errorf("experience should start at the earliest header: %q", sections["experience"])
	}
}

func TestSegmentSections_Empty(t *testing.T) {
	if got := SegmentSections(""); len(got) != 0 {
		t.Errorf("expected empty map, got %v", got)
	}
}
