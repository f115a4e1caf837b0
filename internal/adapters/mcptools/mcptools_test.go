package mcptools

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/okian/worddee/internal/domain/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDeps struct {
	result   model.ScoreResult
	err      error
	word     model.Word
	wordErr  error
	remote   int
	local    int
	lastSeen model.Submission
}

func (f *fakeDeps) Score(_ context.Context, sub model.Submission) (model.ScoreResult, error) {
	f.remote++
	f.lastSeen = sub
	return f.result, f.err
}

func (f *fakeDeps) ScoreLocal(_ context.Context, sub model.Submission) (model.ScoreResult, error) {
	f.local++
	f.lastSeen = sub
	return f.result, f.err
}

func (f *fakeDeps) Word(context.Context) (model.Word, error) {
	return f.word, f.wordErr
}

// makeReq builds a mcp.CallToolRequest with the given arguments.
func makeReq(args map[string]interface{}) mcp.CallToolRequest {
	req := mcp.CallToolRequest{}
	req.Params.Arguments = args
	return req
}

// resultText extracts the text content from a tool result.
func resultText(r *mcp.CallToolResult) string {
	if r == nil || len(r.Content) == 0 {
		return ""
	}
	for _, c := range r.Content {
		if tc, ok := c.(mcp.TextContent); ok {
			return tc.Text
		}
	}
	return ""
}

func TestScoreTool_Definition(t *testing.T) {
	def := NewScoreTool(&fakeDeps{}).Definition()

	assert.Equal(t, "score_sentence", def.Name)
	assert.Contains(t, def.InputSchema.Properties, "word")
	assert.Contains(t, def.InputSchema.Properties, "sentence")
	assert.Contains(t, def.InputSchema.Properties, "local")
	assert.ElementsMatch(t, []string{"word", "sentence"}, def.InputSchema.Required)
}

func TestScoreTool_Handle(t *testing.T) {
	want := model.ScoreResult{Score: 80, Level: model.LevelIntermediate, Suggestion: "Good job!", CorrectedSentence: "x"}

	t.Run("scores through the service", func(t *testing.T) {
		deps := &fakeDeps{result: want}
		res, err := NewScoreTool(deps).Handle(context.Background(), makeReq(map[string]interface{}{
			"word":     "Innovation",
			"sentence": "The team showed great innovation.",
		}))
		require.NoError(t, err)
		require.False(t, res.IsError)

		var got model.ScoreResult
		require.NoError(t, json.Unmarshal([]byte(resultText(res)), &got))
		assert.Equal(t, want, got)
		assert.Equal(t, 1, deps.remote)
		assert.Equal(t, 0, deps.local)
		assert.Equal(t, "Innovation", deps.lastSeen.Word)
	})

	t.Run("local flag bypasses the remote evaluator", func(t *testing.T) {
		deps := &fakeDeps{result: want}
		res, err := NewScoreTool(deps).Handle(context.Background(), makeReq(map[string]interface{}{
			"word":     "Innovation",
			"sentence": "The team showed great innovation.",
			"local":    true,
		}))
		require.NoError(t, err)
		assert.False(t, res.IsError)
		assert.Equal(t, 0, deps.remote)
		assert.Equal(t, 1, deps.local)
	})

	t.Run("missing arguments are tool errors", func(t *testing.T) {
		deps := &fakeDeps{}
		tool := NewScoreTool(deps)

		res, err := tool.Handle(context.Background(), makeReq(map[string]interface{}{"sentence": "Hi."}))
		require.NoError(t, err)
		assert.True(t, res.IsError)
		assert.Contains(t, resultText(res), "'word'")

		res, err = tool.Handle(context.Background(), makeReq(map[string]interface{}{"word": "hi", "sentence": "  "}))
		require.NoError(t, err)
		assert.True(t, res.IsError)
		assert.Contains(t, resultText(res), "'sentence'")
		assert.Zero(t, deps.remote)
	})

	t.Run("service failures are tool errors", func(t *testing.T) {
		deps := &fakeDeps{err: errors.New("local evaluation failed")}
		res, err := NewScoreTool(deps).Handle(context.Background(), makeReq(map[string]interface{}{
			"word": "a", "sentence": "b",
		}))
		require.NoError(t, err)
		assert.True(t, res.IsError)
		assert.Contains(t, resultText(res), "local evaluation failed")
	})
}

func TestWordTool(t *testing.T) {
	t.Run("returns the picked word", func(t *testing.T) {
		deps := &fakeDeps{word: model.Word{Word: "Eloquent", Definition: "Fluent or persuasive in speaking or writing"}}
		tool := NewWordTool(deps)
		assert.Equal(t, "word_of_the_day", tool.Definition().Name)

		res, err := tool.Handle(context.Background(), makeReq(nil))
		require.NoError(t, err)

		var got model.Word
		require.NoError(t, json.Unmarshal([]byte(resultText(res)), &got))
		assert.Equal(t, deps.word, got)
	})

	t.Run("reports picker failures", func(t *testing.T) {
		res, err := NewWordTool(&fakeDeps{wordErr: errors.New("no words configured")}).Handle(context.Background(), makeReq(nil))
		require.NoError(t, err)
		assert.True(t, res.IsError)
	})
}

func TestNew(t *testing.T) {
	s := New(&fakeDeps{}, "test")
	require.NotNil(t, s)

	resp := s.HandleMessage(context.Background(), json.RawMessage(`{"jsonrpc":"2.0","id":1,"method":"tools/list"}`))
	raw, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "score_sentence")
	assert.Contains(t, string(raw), "word_of_the_day")
}
