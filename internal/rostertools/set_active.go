package rostertools

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/HendryAvila/personamatch/internal/roster"
)

// SetActiveTool handles the roster_set_active MCP tool.
type SetActiveTool struct {
	store *roster.Store
}

// NewSetActiveTool creates a SetActiveTool.
func NewSetActiveTool(store *roster.Store) *SetActiveTool {
	return &SetActiveTool{store: store}
}

// Definition returns the MCP tool definition for roster_set_active.
func (t *SetActiveTool) Definition() mcp.Tool {
	return mcp.NewTool("roster_set_active",
		mcp.WithDescription(
			"Mark a persona available or unavailable. Inactive personas are skipped by both resolvers; "+
				"persona_resolve falls back along the partition order instead.",
		),
		mcp.WithString("slug",
			mcp.Required(),
			mcp.Description("Persona slug"),
		),
		mcp.WithBoolean("active",
			mcp.Required(),
			mcp.Description("true to make the persona assignable, false to retire it"),
		),
	)
}

// Handle processes the roster_set_active tool call.
func (t *SetActiveTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	slug := strings.TrimSpace(req.GetString("slug", ""))
	if slug == "" {
		return mcp.NewToolResultError("'slug' is required"), nil
	}
	active, ok := req.GetArguments()["active"].(bool)
	if !ok {
		return mcp.NewToolResultError("'active' is required"), nil
	}

	if err := t.store.SetActive(ctx, slug, active); err != nil {
		if errors.Is(err, roster.ErrNotFound) {
			return mcp.NewToolResultError(fmt.Sprintf("no persona with slug %q", slug)), nil
		}
		return mcp.NewToolResultError(fmt.Sprintf("updating persona: %v", err)), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("Persona %q is now %s", slug, activeLabel(active))), nil
}
