package resumeserver

import (
	"context"
	"fmt"

	"github.com/anatolykoptev/go_resume/internal/engine"
	"github.com/anatolykoptev/go_resume/internal/engine/match"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func registerJobRequirements(server *mcp.Server, vocab *match.Vocabulary) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "job_requirements",
		Description: "Extract structured requirements from a job description: skills tagged must-have/preferred/standard by surrounding language, years-of-experience demands, and degree requirements (level and field).",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, req *mcp.CallToolRequest, input JobRequirementsInput) (*mcp.CallToolResult, JobRequirementsOutput, error) {
		jdText, err := resolveJob(input.JobDescription)
		if err != nil {
			return nil, JobRequirementsOutput{}, err
		}

		cacheKey := engine.CacheKey("job_requirements", jdText)
		if out, ok := engine.CacheLoadJSON[JobRequirementsOutput](ctx, cacheKey); ok {
			return nil, out, nil
		}

		reqs, err := match.ExtractJobRequirements(jdText, vocab)
		if err != nil {
			return nil, JobRequirementsOutput{}, err
		}

		mustHave := 0
		for _, s := range reqs.Skills.Skills() {
			if imp, _ := reqs.Skills.Importance(s); imp == match.ImportanceMustHave {
				mustHave++
			}
		}
		out := JobRequirementsOutput{
			Requirements: reqs,
			Summary: fmt.Sprintf("Found %d required skills (%d must-have), %d experience requirements; degree required: %t",
				reqs.Skills.Len(), mustHave, len(reqs.Experience), reqs.Education.DegreeRequired),
		}
		engine.CacheStoreJSON(ctx, cacheKey, out)
		return nil, out, nil
	})
}
