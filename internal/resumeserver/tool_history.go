package resumeserver

import (
	"context"

	"github.com/anatolykoptev/go_resume/internal/engine/match"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func registerAnalysisHistoryList(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "analysis_history_list",
		Description: "List past resume analyses, newest first: final and component scores, matched/missing skill counts, and the missing must-have skills. Only scores are stored; resume and job description text never persist.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, req *mcp.CallToolRequest, input match.HistoryListInput) (*mcp.CallToolResult, match.HistoryListResult, error) {
		res, err := match.ListAnalyses(ctx, input)
		if err != nil {
			return nil, match.HistoryListResult{}, err
		}
		return nil, *res, nil
	})
}
