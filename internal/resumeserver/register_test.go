package resumeserver

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/anatolykoptev/go_resume/internal/engine"
	"github.com/anatolykoptev/go_resume/internal/engine/match"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func TestRegisterTools(t *testing.T) {
	server := mcp.NewServer(&mcp.Implementation{Name: "go_resume_test", Version: "test"}, nil)
	// Registration must not panic and all schemas must be derivable.
	RegisterTools(server, match.DefaultVocabulary())
}

func TestResolveResume_Inline(t *testing.T) {
	engine.Init(engine.Config{MaxResumeChars: 100})
	text, err := resolveResume(ResumeInput{Resume: "Jane Smith, Python developer"})
	if err != nil {
		t.Fatalf("resolveResume error: %v", err)
	}
	if text != "Jane Smith, Python developer" {
		t.Errorf("text = %q", text)
	}
}

func TestResolveResume_File(t *testing.T) {
	engine.Init(engine.Config{})
	path := filepath.Join(t.TempDir(), "resume.txt")
	if err := os.WriteFile(path, []byte("Jane Smith\nSkills\nPython"), 0600); err != nil {
		t.Fatal(err)
	}

	text, err := resolveResume(ResumeInput{ResumeFile: path})
	if err != nil {
		t.Fatalf("resolveResume error: %v", err)
	}
	if !strings.Contains(text, "Python") {
		t.Errorf("text = %q", text)
	}
}

func TestResolveResume_MissingBoth(t *testing.T) {
	engine.Init(engine.Config{})
	if _, err := resolveResume(ResumeInput{}); err == nil {
		t.Error("expected error when neither resume nor resume_file is set")
	}
}

func TestResolveResume_FileNotFound(t *testing.T) {
	engine.Init(engine.Config{})
	if _, err := resolveResume(ResumeInput{ResumeFile: "/nonexistent/resume.pdf"}); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestResolveResume_InlineWinsOverFile(t *testing.T) {
	engine.Init(engine.Config{})
	text, err := resolveResume(ResumeInput{Resume: "inline text", ResumeFile: "/nonexistent/resume.pdf"})
	if err != nil {
		t.Fatalf("inline text should win without touching the file: %v", err)
	}
	if text != "inline text" {
		t.Errorf("text = %q", text)
	}
}

func TestResolveResume_Truncates(t *testing.T) {
	engine.Init(engine.Config{MaxResumeChars: 10})
	text, err := resolveResume(ResumeInput{Resume: strings.Repeat("a", 50)})
	if err != nil {
		t.Fatalf("resolveResume error: %v", err)
	}
	if len(text) > 10 {
		t.Errorf("len = %d, want ≤10", len(text))
	}
}

func TestResolveJob(t *testing.T) {
	engine.Init(engine.Config{MaxJobChars: 1000})
	if _, err := resolveJob("  "); err == nil {
		t.Error("expected error for blank job description")
	}
	jd, err := resolveJob("Python required")
	if err != nil || jd != "Python required" {
		t.Errorf("resolveJob = %q, %v", jd, err)
	}
}
