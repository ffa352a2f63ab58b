package match

import (
	"math"
	"reflect"
	"testing"
)

func TestKeywordTokens(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{
			name: "punctuated tech terms survive",
			in:   "C++ and Node.js devs.",
			want: []string{"c++", "node.js", "devs"},
		},
		{
			name: "stop words and short tokens dropped",
			in:   "we do ml on the backend",
			want: []string{"backend"},
		},
		{
			name: "case folded",
			in:   "Kubernetes KUBERNETES kubernetes",
			want: []string{"kubernetes", "kubernetes", "kubernetes"},
		},
		{
			name: "empty",
			in:   "",
			want: nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := keywordTokens(tt.in); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("keywordTokens(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestAnalyzeKeywords(t *testing.T) {
	jd := "python python python backend backend api"
	resume := "python api developer"

	got := AnalyzeKeywords(resume, jd)

	want := []string{"python", "backend", "api"}
	if !reflect.DeepEqual(got.TopKeywords, want) {
		t.Errorf("top keywords = %v, want %v", got.TopKeywords, want)
	}
	if got.Presence["python"] != 1 || got.Presence["backend"] != 0 || got.Presence["api"] != 1 {
		t.Errorf("presence = %v", got.Presence)
	}
	if math.Abs(got.Coverage-2.0/3.0) > 1e-9 {
		t.Errorf("coverage = %v, want 2/3", got.Coverage)
	}
}

func TestAnalyzeKeywords_TieBreakByFirstAppearance(t *testing.T) {
	got := AnalyzeKeywords("", "zebra apple zebra apple mango")
	want := []string{"zebra", "apple", "mango"}
	if !reflect.DeepEqual(got.TopKeywords, want) {
		t.Errorf("top keywords = %v, want %v", got.TopKeywords, want)
	}
}

func TestAnalyzeKeywords_WholeWordCounting(t *testing.T) {
	got := AnalyzeKeywords("javascript javascript java", "java java")
	if got.Presence["java"] != 1 {
		t.Errorf("java count = %d, want 1 (javascript must not count)", got.Presence["java"])
	}
}

func TestAnalyzeKeywords_EmptyJob(t *testing.T) {
	got := AnalyzeKeywords("some resume", "")
	if got.Coverage != 0 || len(got.TopKeywords) != 0 {
		t.Errorf("empty job: coverage=%v top=%v", got.Coverage, got.TopKeywords)
	}
}

func TestAnalyzeKeywords_CapsAtTwenty(t *testing.T) {
	jd := ""
	words := []string{
		"alpha", "bravo", "charlie", "delta", "echofox", "foxtrot", "golf",
		"hotel", "india", "juliet", "kilo", "lima", "mike", "november",
		"oscar", "papa", "quebec", "romeo", "sierra", "tango", "uniform",
		"victor", "whiskey",
	}
	for _, w := range words {
		jd += w + " "
	}
	got := AnalyzeKeywords("", jd)
	if len(got.TopKeywords) != 20 {
		t.Errorf("top keywords = %d entries, want 20", len(got.TopKeywords))
	}
}
