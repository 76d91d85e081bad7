// Package prompts implements MCP prompt handlers for persona matching.
//
// MCP prompts are user-triggered workflows (like slash commands) that
// instruct the AI to execute a specific sequence. Unlike tools (which
// the AI calls), prompts are initiated by the user.
package prompts

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/HendryAvila/personamatch/internal/catalog"
)

// QuestionnairePrompt handles the persona-questionnaire MCP prompt.
// It walks the user through every catalog question and then resolves.
type QuestionnairePrompt struct {
	catalog *catalog.Catalog
}

// NewQuestionnairePrompt creates a QuestionnairePrompt.
func NewQuestionnairePrompt(cat *catalog.Catalog) *QuestionnairePrompt {
	return &QuestionnairePrompt{catalog: cat}
}

// Definition returns the MCP prompt definition for registration.
func (p *QuestionnairePrompt) Definition() mcp.Prompt {
	return mcp.NewPrompt("persona-questionnaire",
		mcp.WithPromptDescription(
			"Ask the persona questionnaire one question at a time and assign a persona from the answers.",
		),
		mcp.WithArgument("mode",
			mcp.ArgumentDescription(
				"Resolution mode: 'preassigned' (fixed table with partition fallback) or 'scoring' (tag overlap). Default: preassigned",
			),
		),
	)
}

// Handle processes the persona-questionnaire prompt request.
func (p *QuestionnairePrompt) Handle(ctx context.Context, req mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	mode := "preassigned"
	if m := strings.TrimSpace(req.Params.Arguments["mode"]); m != "" {
		mode = m
	}
	if mode != "preassigned" && mode != "scoring" {
		return nil, fmt.Errorf("unknown mode %q: must be preassigned or scoring", mode)
	}

	tool := "persona_resolve"
	if mode == "scoring" {
		tool = "persona_score"
	}

	var b strings.Builder
	b.WriteString("Help me find the right coaching persona.\n\n")
	b.WriteString("Ask me these questions one at a time. Offer only the listed options and record the option ID I pick:\n\n")
	for i, dim := range p.catalog.Dimensions() {
		fmt.Fprintf(&b, "%d. %s (`%s`)\n", i+1, dim.Question, dim.ID)
		for _, o := range dim.Options {
			fmt.Fprintf(&b, "   - %s -> `%s`\n", o.Label, o.ID)
		}
	}
	fmt.Fprintf(&b, "\nWhen every question is answered, call `%s` with one argument per question.\n", tool)
	b.WriteString("Then:\n")
	b.WriteString("1. Introduce the resolved persona by name\n")
	b.WriteString("2. If used_fallback is true, say my first match is unavailable and this is the closest available one\n")
	b.WriteString("3. If the status is incomplete_answers, ask the missing questions again\n")
	b.WriteString("4. If the status is branch_exhausted or no_active_candidates, tell me no persona is available right now. Do not pick one from another energy\n")

	return &mcp.GetPromptResult{
		Description: fmt.Sprintf("Persona questionnaire (%s)", mode),
		Messages: []mcp.PromptMessage{
			{
				Role:    mcp.RoleUser,
				Content: mcp.NewTextContent(b.String()),
			},
		},
	}, nil
}
