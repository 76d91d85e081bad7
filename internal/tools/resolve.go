package tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"go.uber.org/zap"

	"github.com/HendryAvila/personamatch/internal/logging"
	"github.com/HendryAvila/personamatch/internal/matching"
	"github.com/HendryAvila/personamatch/internal/roster"
)

// ResolveTool handles the persona_resolve MCP tool: assignment table
// lookup followed by the partition fallback walk.
type ResolveTool struct {
	engine   *matching.Engine
	roster   RosterSource
	recorder Recorder
	logger   *zap.Logger
}

// NewResolveTool creates a ResolveTool.
func NewResolveTool(engine *matching.Engine, src RosterSource, logger *zap.Logger) *ResolveTool {
	return &ResolveTool{engine: engine, roster: src, logger: logging.OrNop(logger)}
}

// SetRecorder wires the optional resolution history.
func (t *ResolveTool) SetRecorder(r Recorder) {
	t.recorder = r
}

// Definition returns the MCP tool definition for persona_resolve.
func (t *ResolveTool) Definition() mcp.Tool {
	opts := []mcp.ToolOption{
		mcp.WithDescription(
			"Assign exactly one persona from a complete questionnaire. " +
				"Looks up the pre-assigned persona for the answer combination and, if that persona is " +
				"inactive, walks the fallback order of the chosen energy. Feminine and masculine answers " +
				"never resolve to a persona of the other partition. " +
				"Statuses: resolved, incomplete_answers, no_active_candidates, branch_exhausted.",
		),
	}
	opts = append(opts, dimensionParams(t.engine.Catalog(), true)...)
	return mcp.NewTool("persona_resolve", opts...)
}

// Handle processes the persona_resolve tool call.
func (t *ResolveTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	answers := answersFromRequest(t.engine.Catalog(), req)

	snapshot, err := t.roster.Snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading roster: %w", err)
	}

	res := t.engine.ResolvePreassigned(answers, snapshot)
	out := resolution{Result: res}
	if res.Status == matching.StatusIncompleteAnswers {
		out.Missing = t.engine.Missing(answers)
	}
	out.RecordID = recordOutcome(ctx, t.recorder, t.logger, roster.ModePreassigned, answers, res)
	return jsonResult(out)
}
