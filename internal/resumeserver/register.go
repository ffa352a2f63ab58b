// Package resumeserver exposes the resume analysis engine as MCP tools:
// resume_score, resume_parse, job_requirements, analysis_history_list.
package resumeserver

import (
	"fmt"
	"os"
	"strings"

	"github.com/anatolykoptev/go_resume/internal/engine"
	"github.com/anatolykoptev/go_resume/internal/engine/match"
	"github.com/anatolykoptev/go_resume/internal/ingest"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// RegisterTools registers all resume analysis tools on the given MCP server.
// The vocabulary is shared read-only across all tool calls.
func RegisterTools(server *mcp.Server, vocab *match.Vocabulary) {
	registerResumeScore(server, vocab)
	registerResumeParse(server, vocab)
	registerJobRequirements(server, vocab)
	registerAnalysisHistoryList(server)
}

// resolveResume turns a ResumeInput into plain resume text, reading and
// converting a file when no inline text was given. The result is capped at
// the configured limit so a huge upload cannot stall scoring.
func resolveResume(input ResumeInput) (string, error) {
	text := input.Resume
	if text == "" && input.ResumeFile != "" {
		data, err := os.ReadFile(input.ResumeFile)
		if err != nil {
			return "", fmt.Errorf("read resume file: %w", err)
		}
		text, _, err = ingest.ExtractText(data)
		if err != nil {
			return "", err
		}
	}
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("resume or resume_file is required")
	}
	if limit := engine.Cfg.MaxResumeChars; limit > 0 {
		text = engine.TruncateRunes(text, limit, "")
	}
	return text, nil
}

// resolveJob validates and caps job description text.
func resolveJob(jd string) (string, error) {
	if strings.TrimSpace(jd) == "" {
		return "", fmt.Errorf("job_description is required")
	}
	if limit := engine.Cfg.MaxJobChars; limit > 0 {
		jd = engine.TruncateRunes(jd, limit, "")
	}
	return jd, nil
}
