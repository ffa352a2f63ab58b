package resumeserver

import (
	"context"
	"fmt"

	"github.com/anatolykoptev/go_resume/internal/engine"
	"github.com/anatolykoptev/go_resume/internal/engine/match"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func registerResumeParse(server *mcp.Server, vocab *match.Vocabulary) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "resume_parse",
		Description: "Parse a resume into structured features: contact info, detected skills grouped by category, degrees and institutions, job titles, companies, and estimated total years of experience. Accepts inline text or a PDF/DOCX/plain-text file path.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, req *mcp.CallToolRequest, input ResumeParseInput) (*mcp.CallToolResult, ResumeParseOutput, error) {
		resumeText, err := resolveResume(input.ResumeInput)
		if err != nil {
			return nil, ResumeParseOutput{}, err
		}

		cacheKey := engine.CacheKey("resume_parse", resumeText)
		if out, ok := engine.CacheLoadJSON[ResumeParseOutput](ctx, cacheKey); ok {
			return nil, out, nil
		}

		resume, err := match.ExtractResumeFeatures(resumeText, vocab)
		if err != nil {
			return nil, ResumeParseOutput{}, err
		}

		out := ResumeParseOutput{
			Resume:  resume,
			Summary: parseSummary(resume),
		}
		engine.CacheStoreJSON(ctx, cacheKey, out)
		return nil, out, nil
	})
}

func parseSummary(r *match.ExtractedResume) string {
	duration := "unknown"
	if r.Experience.Duration != nil {
		duration = fmt.Sprintf("%.1f years", *r.Experience.Duration)
	}
	return fmt.Sprintf(
		"Found %d skills across %d categories, %d degrees, %d positions; estimated experience: %s",
		len(r.Skills), len(r.CategorizedSkills), len(r.Education.Degrees),
		len(r.Experience.Positions), duration,
	)
}
