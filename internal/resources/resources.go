// Package resources implements MCP resource handlers for persona matching.
//
// Resources provide read-only data that the host can consume for context.
// They use URI-based addressing (persona://...) following MCP conventions.
package resources

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/HendryAvila/personamatch/internal/catalog"
	"github.com/HendryAvila/personamatch/internal/persona"
)

const (
	CatalogURI = "persona://catalog"
	RosterURI  = "persona://roster"
)

// RosterSource yields the current roster.
type RosterSource interface {
	Snapshot(ctx context.Context) ([]persona.Persona, error)
}

// Handler manages persona resource endpoints.
type Handler struct {
	catalog *catalog.Catalog
	roster  RosterSource
}

// NewHandler creates a resource Handler with its dependencies.
func NewHandler(cat *catalog.Catalog, src RosterSource) *Handler {
	return &Handler{catalog: cat, roster: src}
}

// CatalogResource returns the MCP resource definition for the questionnaire.
func (h *Handler) CatalogResource() mcp.Resource {
	return mcp.NewResource(
		CatalogURI,
		"Persona Questionnaire Catalog",
		mcp.WithResourceDescription("Questionnaire dimensions in key order, with their options, tags, and scoring weights"),
		mcp.WithMIMEType("application/json"),
	)
}

// HandleCatalog returns the catalog as JSON.
func (h *Handler) HandleCatalog(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	return jsonResource(req.Params.URI, map[string]any{
		"key_delimiter": catalog.KeyDelimiter,
		"size":          h.catalog.Size(),
		"dimensions":    h.catalog.Dimensions(),
	})
}

// RosterResource returns the MCP resource definition for the live roster.
func (h *Handler) RosterResource() mcp.Resource {
	return mcp.NewResource(
		RosterURI,
		"Persona Roster",
		mcp.WithResourceDescription("Current roster in roster order, inactive personas included"),
		mcp.WithMIMEType("application/json"),
	)
}

// HandleRoster returns the roster snapshot as JSON.
func (h *Handler) HandleRoster(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	list, err := h.roster.Snapshot(ctx)
	if err != nil {
		return errorResource(req.Params.URI, fmt.Sprintf("loading roster: %v", err)), nil
	}
	if list == nil {
		list = []persona.Persona{}
	}
	return jsonResource(req.Params.URI, list)
}
