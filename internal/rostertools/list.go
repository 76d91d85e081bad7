package rostertools

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/HendryAvila/personamatch/internal/roster"
)

// ListTool handles the roster_list MCP tool.
type ListTool struct {
	store *roster.Store
}

// NewListTool creates a ListTool.
func NewListTool(store *roster.Store) *ListTool {
	return &ListTool{store: store}
}

// Definition returns the MCP tool definition for roster_list.
func (t *ListTool) Definition() mcp.Tool {
	return mcp.NewTool("roster_list",
		mcp.WithDescription(
			"List the personas in the roster in roster order, with partition, tags, and availability. "+
				"Roster order breaks ties in scored resolution.",
		),
		mcp.WithBoolean("active_only",
			mcp.Description("Only list active personas (default: false)"),
		),
	)
}

// Handle processes the roster_list tool call.
func (t *ListTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	list, err := t.store.List(ctx, boolArg(req, "active_only", false))
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("listing roster: %v", err)), nil
	}
	if len(list) == 0 {
		return mcp.NewToolResultText("The roster is empty."), nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%d personas:\n\n", len(list))
	for i, p := range list {
		fmt.Fprintf(&b, "[%d] %s (%s) - %s | %s | intensity %d\n    tags: %s\n",
			i+1, p.Slug, p.Name, p.PartitionTag, activeLabel(p.Active), p.IntensityLevel,
			strings.Join(p.Tags, ", "),
		)
	}
	return mcp.NewToolResultText(b.String()), nil
}
