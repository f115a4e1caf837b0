package mcptools

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/okian/worddee/internal/domain/model"
)

// ScoreTool handles the score_sentence MCP tool.
type ScoreTool struct {
	scorer Scorer
}

// NewScoreTool creates a ScoreTool.
func NewScoreTool(scorer Scorer) *ScoreTool {
	return &ScoreTool{scorer: scorer}
}

// Definition returns the MCP tool definition for score_sentence.
func (t *ScoreTool) Definition() mcp.Tool {
	return mcp.NewTool("score_sentence",
		mcp.WithDescription(
			"Score an English sentence that should use a target vocabulary word. "+
				"Returns score (0-100), level, suggestion and corrected_sentence as JSON.",
		),
		mcp.WithString("word",
			mcp.Required(),
			mcp.Description("Target vocabulary word"),
		),
		mcp.WithString("sentence",
			mcp.Required(),
			mcp.Description("The learner's sentence"),
		),
		mcp.WithBoolean("local",
			mcp.Description("Skip the remote evaluator and use the built-in engine"),
		),
	)
}

// Handle processes the score_sentence tool call.
func (t *ScoreTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sub := model.Submission{
		Word:     req.GetString("word", ""),
		Sentence: req.GetString("sentence", ""),
	}
	if strings.TrimSpace(sub.Word) == "" {
		return mcp.NewToolResultError("'word' is required"), nil
	}
	if strings.TrimSpace(sub.Sentence) == "" {
		return mcp.NewToolResultError("'sentence' is required"), nil
	}

	score := t.scorer.Score
	if boolArg(req, "local", false) {
		score = t.scorer.ScoreLocal
	}

	res, err := score(ctx, sub)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to score sentence: %v", err)), nil
	}
	return jsonResult(res)
}
