package mcptools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
)

// WordTool handles the word_of_the_day MCP tool.
type WordTool struct {
	words WordSource
}

// NewWordTool creates a WordTool.
func NewWordTool(words WordSource) *WordTool {
	return &WordTool{words: words}
}

// Definition returns the MCP tool definition for word_of_the_day.
func (t *WordTool) Definition() mcp.Tool {
	return mcp.NewTool("word_of_the_day",
		mcp.WithDescription("Pick a random vocabulary word with its definition."),
	)
}

// Handle processes the word_of_the_day tool call.
func (t *WordTool) Handle(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	w, err := t.words.Word(ctx)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to pick a word: %v", err)), nil
	}
	return jsonResult(w)
}
