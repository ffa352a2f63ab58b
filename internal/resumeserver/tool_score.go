package resumeserver

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/anatolykoptev/go_resume/internal/engine"
	"github.com/anatolykoptev/go_resume/internal/engine/match"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func registerResumeScore(server *mcp.Server, vocab *match.Vocabulary) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "resume_score",
		Description: "Score a resume against a job description (0–100) with a full breakdown: weighted skills match, keyword coverage, TF-IDF content similarity, experience and education fit, matched/missing skills by importance, and prioritized improvement suggestions. Accepts inline text or a PDF/DOCX/plain-text file path.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, req *mcp.CallToolRequest, input ResumeScoreInput) (*mcp.CallToolResult, ResumeScoreOutput, error) {
		resumeText, err := resolveResume(input.ResumeInput)
		if err != nil {
			return nil, ResumeScoreOutput{}, err
		}
		jdText, err := resolveJob(input.JobDescription)
		if err != nil {
			return nil, ResumeScoreOutput{}, err
		}

		out, err := scoreResume(ctx, vocab, resumeText, jdText, input.Label)
		return nil, out, err
	})
}

// scoreResume runs the cached scoring flow. Every scored analysis appends a
// history row, cache hits included — the cache dedupes computation, not the
// record of having run it.
func scoreResume(ctx context.Context, vocab *match.Vocabulary, resumeText, jdText, label string) (ResumeScoreOutput, error) {
	cacheKey := engine.CacheKey("resume_score", resumeText, jdText)
	if out, ok := engine.CacheLoadJSON[ResumeScoreOutput](ctx, cacheKey); ok {
		recordHistory(ctx, label, out.Result)
		return out, nil
	}

	resume, err := match.ExtractResumeFeatures(resumeText, vocab)
	if err != nil {
		return ResumeScoreOutput{}, err
	}
	result, err := match.Score(resume, jdText, vocab)
	if err != nil {
		return ResumeScoreOutput{}, err
	}

	out := ResumeScoreOutput{
		Result:      result,
		Suggestions: match.GenerateSuggestions(result),
		Summary:     scoreSummary(result),
	}

	recordHistory(ctx, label, result)
	engine.CacheStoreJSON(ctx, cacheKey, out)
	return out, nil
}

func recordHistory(ctx context.Context, label string, result *match.ScoreResult) {
	if !engine.Cfg.HistoryEnabled || result == nil {
		return
	}
	if _, err := match.RecordAnalysis(ctx, label, result); err != nil {
		slog.Warn("resume_score: history write failed", slog.Any("error", err))
	}
}

func scoreSummary(r *match.ScoreResult) string {
	cs := r.ComponentScores
	return fmt.Sprintf(
		"Resume scored %.1f/100 against the job description (skills %.1f, keywords %.1f, content %.1f, experience %.1f, education %.1f; %d must-have skills missing)",
		r.Score, cs.SkillsMatch, cs.KeywordMatch, cs.ContentSimilarity,
		cs.ExperienceMatch, cs.EducationMatch, len(r.MissingSkills.MustHave),
	)
}
