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

// ScoreTool handles the persona_score MCP tool: weighted tag-overlap
// ranking over the live roster.
type ScoreTool struct {
	engine   *matching.Engine
	roster   RosterSource
	recorder Recorder
	logger   *zap.Logger
}

// NewScoreTool creates a ScoreTool.
func NewScoreTool(engine *matching.Engine, src RosterSource, logger *zap.Logger) *ScoreTool {
	return &ScoreTool{engine: engine, roster: src, logger: logging.OrNop(logger)}
}

// SetRecorder wires the optional resolution history.
func (t *ScoreTool) SetRecorder(r Recorder) {
	t.recorder = r
}

// Definition returns the MCP tool definition for persona_score.
func (t *ScoreTool) Definition() mcp.Tool {
	opts := []mcp.ToolOption{
		mcp.WithDescription(
			"Rank the active roster by weighted tag overlap with the answers and return the best persona. " +
				"Answers may be partial. Always returns a persona when any persona is active. " +
				"If no persona matches the chosen energy, the whole active roster is ranked and " +
				"used_energy_fallback is set.",
		),
	}
	opts = append(opts, dimensionParams(t.engine.Catalog(), false)...)
	opts = append(opts, mcp.WithString("tags",
		mcp.Description("Optional tag overrides per dimension, e.g. 'focus=courage push, tone=direct'. "+
			"Overrides replace the catalog tags of that dimension's option."),
	))
	return mcp.NewTool("persona_score", opts...)
}

// Handle processes the persona_score tool call.
func (t *ScoreTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cat := t.engine.Catalog()
	answers := answersFromRequest(cat, req)

	overrides, err := parseTagOverrides(cat, req.GetString("tags", ""))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	answers = applyTagOverrides(cat, answers, overrides)

	snapshot, err := t.roster.Snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading roster: %w", err)
	}

	res := t.engine.ResolveByScoring(answers, snapshot)
	out := resolution{Result: res}
	out.RecordID = recordOutcome(ctx, t.recorder, t.logger, roster.ModeScoring, answers, res)
	return jsonResult(out)
}
