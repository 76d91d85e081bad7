package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/HendryAvila/personamatch/internal/catalog"
	"github.com/HendryAvila/personamatch/internal/matching"
)

// BuildKeyTool handles the persona_build_key MCP tool.
type BuildKeyTool struct {
	engine *matching.Engine
}

// NewBuildKeyTool creates a BuildKeyTool.
func NewBuildKeyTool(engine *matching.Engine) *BuildKeyTool {
	return &BuildKeyTool{engine: engine}
}

// Definition returns the MCP tool definition for persona_build_key.
func (t *BuildKeyTool) Definition() mcp.Tool {
	opts := []mcp.ToolOption{
		mcp.WithDescription(
			"Encode questionnaire answers as the canonical assignment key. " +
				"Reports which dimensions are still missing when the answers are incomplete. " +
				"Does not read the roster.",
		),
	}
	opts = append(opts, dimensionParams(t.engine.Catalog(), false)...)
	return mcp.NewTool("persona_build_key", opts...)
}

type keyResponse struct {
	Complete bool                  `json:"complete"`
	Key      string                `json:"key,omitempty"`
	Assigned string                `json:"assigned_slug,omitempty"`
	Missing  []catalog.DimensionID `json:"missing,omitempty"`
}

// Handle processes the persona_build_key tool call.
func (t *BuildKeyTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	answers := answersFromRequest(t.engine.Catalog(), req)

	key, ok := t.engine.BuildKey(answers)
	resp := keyResponse{Complete: ok, Key: key}
	if ok {
		resp.Assigned, _ = t.engine.Lookup(key)
	} else {
		resp.Missing = t.engine.Missing(answers)
	}
	return jsonResult(resp)
}
