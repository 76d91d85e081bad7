// Package tools implements the MCP tool handlers for persona resolution.
//
// Each tool receives its dependencies via its struct and returns a handler
// compatible with mcp-go's CallToolRequest signature.
//
// Design principles:
// - SRP: each file = one tool
// - DIP: tools depend on RosterSource and Recorder, not on the SQLite store
// - OCP: new tools are added without modifying existing ones
package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/HendryAvila/personamatch/internal/catalog"
	"github.com/HendryAvila/personamatch/internal/matching"
	"github.com/HendryAvila/personamatch/internal/persona"
	"github.com/HendryAvila/personamatch/internal/roster"
)

// RosterSource yields the roster snapshot for one resolution call.
type RosterSource interface {
	Snapshot(ctx context.Context) ([]persona.Persona, error)
}

// Recorder persists resolution outcomes. Optional.
type Recorder interface {
	RecordResolution(ctx context.Context, mode string, answers []matching.Answer, res matching.Result) (*roster.Record, error)
}

// StaticRoster serves a fixed roster. Used when the store is unavailable.
type StaticRoster []persona.Persona

// Snapshot returns a deep copy of the roster.
func (r StaticRoster) Snapshot(context.Context) ([]persona.Persona, error) {
	out := make([]persona.Persona, len(r))
	for i := range r {
		out[i] = r[i].Clone()
	}
	return out, nil
}

// dimensionParams returns one enum string parameter per catalog dimension.
func dimensionParams(cat *catalog.Catalog, required bool) []mcp.ToolOption {
	var opts []mcp.ToolOption
	for _, dim := range cat.Dimensions() {
		ids := make([]string, len(dim.Options))
		for i, o := range dim.Options {
			ids[i] = o.ID
		}
		props := []mcp.PropertyOption{
			mcp.Description(fmt.Sprintf("%s One of: %s", dim.Question, strings.Join(ids, ", "))),
			mcp.Enum(ids...),
		}
		if required {
			props = append(props, mcp.Required())
		}
		opts = append(opts, mcp.WithString(string(dim.ID), props...))
	}
	return opts
}

// answersFromRequest reads one answer per catalog dimension, in catalog
// order. Blank dimensions are left out.
func answersFromRequest(cat *catalog.Catalog, req mcp.CallToolRequest) []matching.Answer {
	var answers []matching.Answer
	for _, dim := range cat.Order() {
		opt := strings.TrimSpace(req.GetString(string(dim), ""))
		if opt == "" {
			continue
		}
		answers = append(answers, matching.Answer{Dimension: dim, Option: opt})
	}
	return answers
}

// parseTagOverrides parses "focus=courage push, tone=direct" into tag lists
// per dimension.
func parseTagOverrides(cat *catalog.Catalog, raw string) (map[catalog.DimensionID][]string, error) {
	out := map[catalog.DimensionID][]string{}
	for _, entry := range strings.Split(raw, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		dim, tags, ok := strings.Cut(entry, "=")
		if !ok {
			return nil, fmt.Errorf("malformed tag override %q: want dimension=tag1 tag2", entry)
		}
		id := catalog.DimensionID(strings.TrimSpace(dim))
		if !cat.HasDimension(id) {
			return nil, fmt.Errorf("unknown dimension %q in tag override", id)
		}
		out[id] = append(out[id], strings.Fields(tags)...)
	}
	return out, nil
}

// applyTagOverrides attaches tags to answers. A dimension with tags but no
// answer gets a tag-only answer.
func applyTagOverrides(cat *catalog.Catalog, answers []matching.Answer, tags map[catalog.DimensionID][]string) []matching.Answer {
	seen := map[catalog.DimensionID]bool{}
	for i := range answers {
		if t, ok := tags[answers[i].Dimension]; ok {
			answers[i].Tags = t
		}
		seen[answers[i].Dimension] = true
	}
	for _, dim := range cat.Order() {
		if t, ok := tags[dim]; ok && !seen[dim] {
			answers = append(answers, matching.Answer{Dimension: dim, Tags: t})
		}
	}
	return answers
}

// resolution is the JSON body returned by the resolve and score tools.
type resolution struct {
	matching.Result
	Missing  []catalog.DimensionID `json:"missing,omitempty"`
	RecordID string                `json:"record_id,omitempty"`
}

// jsonResult renders v as an indented JSON text result.
func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling result: %w", err)
	}
	return mcp.NewToolResultText(string(data)), nil
}
