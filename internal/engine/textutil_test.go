package engine

import "testing"

func TestCleanText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"lowercases", "Hello World", "hello world"},
		{"strips punctuation", "C++, C#, and .NET!", "c c and net"},
		{"collapses whitespace", "a\t\tb\n\n  c", "a b c"},
		{"trims edges", "  leading and trailing  ", "leading and trailing"},
		{"keeps digits", "Python 3.12 since 2019", "python 3 12 since 2019"},
		{"empty", "", ""},
		{"only punctuation", "!!! ???", ""},
		{"unicode replaced", "naïve café", "na ve caf"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CleanText(tt.in); got != tt.want {
				t.Errorf("CleanText(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestCleanText_Idempotent(t *testing.T) {
	inputs := []string{"Hello, World!", "a  b\tc", "Python & Go @ 2024"}
	for _, in := range inputs {
		once := CleanText(in)
		if twice := CleanText(once); twice != once {
			t.Errorf("CleanText not idempotent for %q: %q != %q", in, once, twice)
		}
	}
}

func TestTruncate(t *testing.T) {
	if got := Truncate("abcdef", 3); got != "abc" {
		t.Errorf("Truncate = %q, want %q", got, "abc")
	}
	if got := Truncate("ab", 10); got != "ab" {
		t.Errorf("Truncate = %q, want %q", got, "ab")
	}
}
