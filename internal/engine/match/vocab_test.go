package match

import (
	"reflect"
	"testing"
)

func TestDefaultVocabulary(t *testing.T) {
	v := DefaultVocabulary()

	wantCats := []string{
		"programming_languages", "web_dev", "databases", "cloud",
		"data_science", "devops", "soft_skills",
	}
	if !reflect.DeepEqual(v.Categories(), wantCats) {
		t.Errorf("categories = %v, want %v", v.Categories(), wantCats)
	}

	if cat, ok := v.CategoryOf("python"); !ok || cat != "programming_languages" {
		t.Errorf("CategoryOf(python) = %q, %v", cat, ok)
	}
	if cat, ok := v.CategoryOf("kubernetes"); !ok || cat != "cloud" {
		t.Errorf("CategoryOf(kubernetes) = %q, %v", cat, ok)
	}
	if _, ok := v.CategoryOf("cobol"); ok {
		t.Error("CategoryOf(cobol) should be absent")
	}

	// Every term belongs to exactly one category.
	seen := make(map[string]bool)
	for _, term := range v.Terms() {
		if seen[term] {
			t.Errorf("term %q appears twice", term)
		}
		seen[term] = true
	}
}

func TestNewVocabulary_DuplicateTermKeepsFirst(t *testing.T) {
	v := NewVocabulary([]Category{
		{Name: "a", Terms: []string{"go", "rust"}},
		{Name: "b", Terms: []string{"Go", "zig"}},
	})
	if cat, _ := v.CategoryOf("go"); cat != "a" {
		t.Errorf("duplicate term should stay in first category, got %q", cat)
	}
	if got := len(v.Terms()); got != 3 {
		t.Errorf("len(Terms) = %d, want 3", got)
	}
}

func TestVocabulary_Categorize(t *testing.T) {
	v := DefaultVocabulary()
	got := v.Categorize([]string{"docker", "python", "java", "nonsense"})
	want := map[string][]string{
		"programming_languages": {"python", "java"},
		"cloud":                 {"docker"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Categorize = %v, want %v", got, want)
	}
}

func TestBoundaryPattern(t *testing.T) {
	tests := []struct {
		term    string
		text    string
		matches bool
	}{
		{"java", "senior java developer", true},
		{"java", "javascript developer", false},
		{"java", "worked with java.", true},
		{"go", "go developer", true},
		{"go", "google and django", false},
		{"c++", "knows c++ well", true},
		{"c++", "c developer", false},
		{"node.js", "node.js services", true},
		{"node.js", "nodexjs", false},
		{"c#", "c# and .net", true},
	}
	for _, tt := range tests {
		re := DefaultVocabulary().termRe[tt.term]
		if re == nil {
			t.Fatalf("no pattern for %q", tt.term)
		}
		if got := re.MatchString(tt.text); got != tt.matches {
			t.Errorf("pattern %q on %q = %v, want %v", tt.term, tt.text, got, tt.matches)
		}
	}
}
