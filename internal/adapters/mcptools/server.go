// Package mcptools exposes the scoring service as MCP tools.
//
// Each tool follows the same shape:
// - A struct with its dependency injected via constructor
// - Definition() returns the mcp.Tool schema
// - Handle() processes the request and returns a result
package mcptools

import (
	"context"

	"github.com/mark3labs/mcp-go/server"
	"github.com/okian/worddee/internal/domain/model"
)

// Dependencies bundles what the tools need from the service.
type Dependencies interface {
	Scorer
	WordSource
}

// New builds an MCP server with every worddee tool registered.
func New(deps Dependencies, version string) *server.MCPServer {
	s := server.NewMCPServer(
		"worddee",
		version,
		server.WithToolCapabilities(true),
		server.WithRecovery(),
		server.WithInstructions(instructions),
	)

	scoreTool := NewScoreTool(deps)
	s.AddTool(scoreTool.Definition(), scoreTool.Handle)

	wordTool := NewWordTool(deps)
	s.AddTool(wordTool.Definition(), wordTool.Handle)

	return s
}

// ServeStdio runs s over stdin/stdout until the input closes.
func ServeStdio(s *server.MCPServer) error {
	return server.ServeStdio(s)
}

const instructions = "worddee scores English practice sentences. " +
	"Call word_of_the_day to get a target word, then score_sentence with the learner's sentence."

// Scorer scores submissions.
type Scorer interface {
	Score(ctx context.Context, sub model.Submission) (model.ScoreResult, error)
	ScoreLocal(ctx context.Context, sub model.Submission) (model.ScoreResult, error)
}

// WordSource returns words of the day.
type WordSource interface {
	Word(ctx context.Context) (model.Word, error)
}
