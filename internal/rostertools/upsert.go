package rostertools

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/HendryAvila/personamatch/internal/persona"
	"github.com/HendryAvila/personamatch/internal/roster"
)

// UpsertTool handles the roster_upsert MCP tool.
type UpsertTool struct {
	store *roster.Store
}

// NewUpsertTool creates an UpsertTool.
func NewUpsertTool(store *roster.Store) *UpsertTool {
	return &UpsertTool{store: store}
}

// Definition returns the MCP tool definition for roster_upsert.
func (t *UpsertTool) Definition() mcp.Tool {
	return mcp.NewTool("roster_upsert",
		mcp.WithDescription(
			"Add a persona to the roster or replace an existing one by slug. "+
				"New personas go to the end of the roster order. "+
				"The pre-assigned table only names declared personas; new slugs are reachable through persona_score.",
		),
		mcp.WithString("slug",
			mcp.Required(),
			mcp.Description("Stable persona identifier, e.g. 'sienna'"),
		),
		mcp.WithString("partition",
			mcp.Required(),
			mcp.Description("Compatibility partition: feminine or masculine"),
			mcp.Enum("feminine", "masculine"),
		),
		mcp.WithString("name",
			mcp.Description("Display name"),
		),
		mcp.WithString("tags",
			mcp.Description("Comma or space separated style tags used by scoring"),
		),
		mcp.WithNumber("intensity",
			mcp.Description("Intensity level, 0 or more (default: 0)"),
		),
		mcp.WithBoolean("active",
			mcp.Description("Whether the persona can be assigned (default: true)"),
		),
	)
}

// Handle processes the roster_upsert tool call.
func (t *UpsertTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	slug := strings.TrimSpace(req.GetString("slug", ""))
	if slug == "" {
		return mcp.NewToolResultError("'slug' is required"), nil
	}
	partition, err := persona.ParsePartition(req.GetString("partition", ""))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	p := persona.Persona{
		Slug:           slug,
		Name:           strings.TrimSpace(req.GetString("name", "")),
		Tags:           splitTags(req.GetString("tags", "")),
		IntensityLevel: intArg(req, "intensity", 0),
		PartitionTag:   partition,
		Active:         boolArg(req, "active", true),
	}
	if p.Name == "" {
		p.Name = slug
	}

	if err := t.store.Upsert(ctx, p); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("saving persona: %v", err)), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("Persona %q saved (%s, %s)", slug, partition, activeLabel(p.Active))), nil
}
