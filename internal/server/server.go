// Package server wires all MCP components and creates the server instance.
//
// This is the composition root (DIP): it creates concrete implementations
// and injects them into the tools/prompts/resources that depend on abstractions.
// No business logic lives here, only wiring.
package server

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"

	"github.com/HendryAvila/personamatch/internal/catalog"
	"github.com/HendryAvila/personamatch/internal/config"
	"github.com/HendryAvila/personamatch/internal/logging"
	"github.com/HendryAvila/personamatch/internal/matching"
	"github.com/HendryAvila/personamatch/internal/persona"
	"github.com/HendryAvila/personamatch/internal/prompts"
	"github.com/HendryAvila/personamatch/internal/resources"
	"github.com/HendryAvila/personamatch/internal/roster"
	"github.com/HendryAvila/personamatch/internal/rostertools"
	"github.com/HendryAvila/personamatch/internal/tools"
)

// Version is set at build time via ldflags.
var Version = "dev"

// Runtime holds the resolved dependencies shared by the MCP server and the
// CLI.
type Runtime struct {
	Catalog *catalog.Catalog
	Engine  *matching.Engine
	Roster  tools.RosterSource
	// Store is nil when the roster database could not be opened. Roster
	// reads then fall back to the seed roster.
	Store  *roster.Store
	Logger *zap.Logger

	recordResolutions bool
}

// Recorder returns the resolution history sink, or nil when recording is
// disabled or the store is unavailable.
func (r *Runtime) Recorder() tools.Recorder {
	if r.Store == nil || !r.recordResolutions {
		return nil
	}
	return r.Store
}

// Close releases the store. It is safe to call on a Runtime without one.
func (r *Runtime) Close() {
	if r.Store == nil {
		return
	}
	if err := r.Store.Close(); err != nil {
		r.Logger.Warn("roster store close", zap.Error(err))
	}
}

// Build loads the catalog, constructs the engine, and opens the roster
// store. A catalog, seed, or weight error is fatal. A store error is not:
// the runtime falls back to the seed roster and logs a warning.
func Build(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*Runtime, error) {
	logger = logging.OrNop(logger)

	cat := catalog.Default()
	if cfg.CatalogFile != "" {
		loaded, err := catalog.LoadFile(cfg.CatalogFile)
		if err != nil {
			return nil, fmt.Errorf("loading catalog: %w", err)
		}
		cat = loaded
	}

	engine, err := NewEngine(cat, cfg)
	if err != nil {
		return nil, err
	}

	seed := persona.Builtin()
	if cfg.RosterSeedFile != "" {
		seed, err = persona.LoadFile(cfg.RosterSeedFile)
		if err != nil {
			return nil, fmt.Errorf("loading roster seed: %w", err)
		}
	}

	rt := &Runtime{
		Catalog:           cat,
		Engine:            engine,
		Roster:            tools.StaticRoster(seed),
		Logger:            logger,
		recordResolutions: cfg.RecordResolutions,
	}

	// The roster store is independent: if it fails to initialize, both
	// resolvers keep working against the seed roster.
	store, err := roster.New(roster.Config{DataDir: cfg.DataDir, MaxHistoryLimit: cfg.HistoryLimit})
	if err != nil {
		logger.Warn("roster store disabled", zap.Error(err))
		return rt, nil
	}
	n, err := store.SeedIfEmpty(ctx, seed)
	if err != nil {
		_ = store.Close()
		logger.Warn("roster store disabled: seeding failed", zap.Error(err))
		return rt, nil
	}
	if n > 0 {
		logger.Info("roster seeded", zap.Int("personas", n), zap.String("data_dir", cfg.DataDir))
	}

	rt.Store = store
	rt.Roster = store
	return rt, nil
}

// NewEngine builds the matching engine for cat with the scoring settings
// from cfg. Every weighted dimension must exist in cat.
func NewEngine(cat *catalog.Catalog, cfg *config.Config) (*matching.Engine, error) {
	opts := []matching.Option{matching.WithStrictEnergy(cfg.Scoring.StrictEnergy)}
	if weights := cfg.ScoringWeights(); weights != nil {
		for dim := range weights {
			if !cat.HasDimension(dim) {
				return nil, fmt.Errorf("scoring.weights names unknown dimension %q", dim)
			}
		}
		opts = append(opts, matching.WithWeights(weights))
	}
	engine, err := matching.New(cat, opts...)
	if err != nil {
		return nil, fmt.Errorf("building engine: %w", err)
	}
	return engine, nil
}

// New creates and configures the MCP server with all tools, prompts,
// and resources registered. This is the single place where all
// dependencies are resolved.
//
// The returned cleanup function closes the roster store's database
// connection and must be called on shutdown (typically via defer).
// It is always non-nil and safe to call even if store init failed.
func New(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*server.MCPServer, func(), error) {
	rt, err := Build(ctx, cfg, logger)
	if err != nil {
		return nil, noop, err
	}
	return NewFromRuntime(rt), rt.Close, nil
}

// NewFromRuntime registers every MCP component against rt.
func NewFromRuntime(rt *Runtime) *server.MCPServer {
	s := server.NewMCPServer(
		"personamatch",
		Version,
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(false, true),
		server.WithPromptCapabilities(true),
		server.WithRecovery(),
		server.WithInstructions(serverInstructions()),
	)

	// --- Register resolution tools ---

	buildKeyTool := tools.NewBuildKeyTool(rt.Engine)
	s.AddTool(buildKeyTool.Definition(), buildKeyTool.Handle)

	resolveTool := tools.NewResolveTool(rt.Engine, rt.Roster, rt.Logger)
	s.AddTool(resolveTool.Definition(), resolveTool.Handle)

	scoreTool := tools.NewScoreTool(rt.Engine, rt.Roster, rt.Logger)
	s.AddTool(scoreTool.Definition(), scoreTool.Handle)

	if rec := rt.Recorder(); rec != nil {
		resolveTool.SetRecorder(rec)
		scoreTool.SetRecorder(rec)
	}

	// --- Register roster tools ---

	if rt.Store != nil {
		registerRosterTools(s, rt.Store)
	}

	// --- Register prompts ---

	questionnaire := prompts.NewQuestionnairePrompt(rt.Catalog)
	s.AddPrompt(questionnaire.Definition(), questionnaire.Handle)

	// --- Register resources ---

	resourceHandler := resources.NewHandler(rt.Catalog, rt.Roster)
	s.AddResource(resourceHandler.CatalogResource(), resourceHandler.HandleCatalog)
	s.AddResource(resourceHandler.RosterResource(), resourceHandler.HandleRoster)

	return s
}

// noop is a no-op cleanup function used when the runtime failed to build.
func noop() {}

func registerRosterTools(s *server.MCPServer, store *roster.Store) {
	list := rostertools.NewListTool(store)
	s.AddTool(list.Definition(), list.Handle)

	upsert := rostertools.NewUpsertTool(store)
	s.AddTool(upsert.Definition(), upsert.Handle)

	setActive := rostertools.NewSetActiveTool(store)
	s.AddTool(setActive.Definition(), setActive.Handle)

	history := rostertools.NewHistoryTool(store)
	s.AddTool(history.Definition(), history.Handle)
}

// serverInstructions returns the system instructions that tell the AI
// how to use personamatch.
func serverInstructions() string {
	return `You have access to personamatch, which assigns exactly one coaching persona from a short questionnaire.

## FLOW

1. Ask the questionnaire (or use the persona-questionnaire prompt). The questions and
   their option IDs are in the persona://catalog resource.
2. Call persona_resolve with one option ID per question.
3. Present the returned persona.

## READING RESULTS

- status=resolved: a persona was assigned. If used_fallback is true the ideal persona
  (requested_slug) is unavailable and resolved_slug is the closest available one.
- status=incomplete_answers: ask the questions listed in "missing" and call again.
- status=branch_exhausted: no persona of the chosen energy is available. Do NOT pick a
  persona of another energy yourself.
- status=no_active_candidates: the roster has no available persona at all.

## SCORING

persona_score ranks the live roster by tag overlap. Use it when answers are partial or
when the roster contains personas the fixed table does not know about. It always
returns a persona when any persona is active.

## ROSTER ADMIN

roster_list, roster_upsert, roster_set_active, and resolution_history are available
when the roster database is writable. Only use them when the user asks to manage personas.`
}
