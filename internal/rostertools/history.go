package rostertools

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/HendryAvila/personamatch/internal/roster"
)

// HistoryTool handles the resolution_history MCP tool.
type HistoryTool struct {
	store *roster.Store
}

// NewHistoryTool creates a HistoryTool.
func NewHistoryTool(store *roster.Store) *HistoryTool {
	return &HistoryTool{store: store}
}

// Definition returns the MCP tool definition for resolution_history.
func (t *HistoryTool) Definition() mcp.Tool {
	return mcp.NewTool("resolution_history",
		mcp.WithDescription(
			"Show recent persona resolutions, newest first: mode, status, key, requested and resolved persona, "+
				"and whether a fallback was used.",
		),
		mcp.WithNumber("limit",
			mcp.Description("Max records (default: 10)"),
		),
	)
}

// Handle processes the resolution_history tool call.
func (t *HistoryTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	records, err := t.store.RecentResolutions(ctx, intArg(req, "limit", 10))
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("reading history: %v", err)), nil
	}
	if len(records) == 0 {
		return mcp.NewToolResultText("No resolutions recorded yet."), nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%d recent resolutions:\n\n", len(records))
	for i, r := range records {
		var flags []string
		if r.UsedFallback {
			flags = append(flags, "fallback")
		}
		if r.UsedEnergyFallback {
			flags = append(flags, "energy fallback")
		}
		if r.Mode == roster.ModeScoring {
			flags = append(flags, fmt.Sprintf("score %d", r.Score))
		}
		extra := ""
		if len(flags) > 0 {
			extra = " | " + strings.Join(flags, ", ")
		}

		fmt.Fprintf(&b, "[%d] %s %s: %s -> %s%s\n    key: %s | %s\n",
			i+1, r.Mode, r.Status, orDash(r.RequestedSlug), orDash(r.ResolvedSlug), extra,
			orDash(r.Key), r.CreatedAt,
		)
	}
	return mcp.NewToolResultText(b.String()), nil
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
