package main

import (
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/HendryAvila/personamatch/internal/catalog"
	"github.com/HendryAvila/personamatch/internal/config"
	"github.com/HendryAvila/personamatch/internal/logging"
	"github.com/HendryAvila/personamatch/internal/matching"
	"github.com/HendryAvila/personamatch/internal/persona"
	"github.com/HendryAvila/personamatch/internal/roster"
	"github.com/HendryAvila/personamatch/internal/server"
)

func newRootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:           "personamatch",
		Short:         "Assign a coaching persona from questionnaire answers",
		SilenceUsage:  true,
		SilenceErrors: true,
		Long: `personamatch maps four questionnaire answers (energy, focus, tone, progress)
to exactly one persona. Feminine and masculine answers never cross partitions.

Add to your AI tool's MCP config:

  {
    "mcpServers": {
      "personamatch": {
        "command": "personamatch",
        "args": ["serve"]
      }
    }
  }`,
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default: ~/.personamatch/config.toml)")

	load := func() (*config.Config, error) {
		return config.Load(configPath)
	}

	root.AddCommand(
		newServeCmd(load),
		newResolveCmd(load),
		newValidateCmd(load),
		newConfigCmd(load),
		newVersionCmd(),
	)
	return root
}

type configLoader func() (*config.Config, error)

// =============================================================================
// SERVE
// =============================================================================

func newServeCmd(load configLoader) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the MCP server (stdio transport)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := load()
			if err != nil {
				return err
			}
			logger, err := logging.New(cfg.LogLevel)
			if err != nil {
				return fmt.Errorf("creating logger: %w", err)
			}
			defer func() { _ = logger.Sync() }()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			s, cleanup, err := server.New(ctx, cfg, logger)
			if err != nil {
				return fmt.Errorf("creating server: %w", err)
			}
			defer cleanup()

			logger.Info("serving", zap.String("version", server.Version), zap.String("data_dir", cfg.DataDir))
			return mcpserver.ServeStdio(s, mcpserver.WithErrorLogger(zap.NewStdLog(logger)))
		},
	}
}

// =============================================================================
// RESOLVE
// =============================================================================

func newResolveCmd(load configLoader) *cobra.Command {
	var (
		answers []string
		scoring bool
		noRecord bool
	)
	cmd := &cobra.Command{
		Use:   "resolve --answer energy=feminine --answer focus=clarity_mindset ...",
		Short: "Resolve one persona and print the result as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := load()
			if err != nil {
				return err
			}
			parsed, err := parseAnswerFlags(answers)
			if err != nil {
				return err
			}
			logger, err := logging.New(cfg.LogLevel)
			if err != nil {
				return fmt.Errorf("creating logger: %w", err)
			}
			defer func() { _ = logger.Sync() }()

			if noRecord {
				cfg.RecordResolutions = false
			}
			rt, err := server.Build(cmd.Context(), cfg, logger)
			if err != nil {
				return err
			}
			defer rt.Close()

			snapshot, err := rt.Roster.Snapshot(cmd.Context())
			if err != nil {
				return fmt.Errorf("loading roster: %w", err)
			}

			mode := roster.ModePreassigned
			res := rt.Engine.ResolvePreassigned(parsed, snapshot)
			if scoring {
				mode = roster.ModeScoring
				res = rt.Engine.ResolveByScoring(parsed, snapshot)
			}
			if rec := rt.Recorder(); rec != nil {
				if _, err := rec.RecordResolution(cmd.Context(), mode, parsed, res); err != nil {
					logger.Warn("recording resolution failed", zap.Error(err))
				}
			}

			out := struct {
				matching.Result
				Missing []catalog.DimensionID `json:"missing,omitempty"`
			}{Result: res}
			if res.Status == matching.StatusIncompleteAnswers {
				out.Missing = rt.Engine.Missing(parsed)
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(out)
		},
	}
	cmd.Flags().StringArrayVarP(&answers, "answer", "a", nil, "Answer as dimension=option (repeatable; the last answer per dimension wins)")
	cmd.Flags().BoolVar(&scoring, "scoring", false, "Use weighted tag scoring instead of the assignment table")
	cmd.Flags().BoolVar(&noRecord, "no-record", false, "Do not append this resolution to the history")
	return cmd
}

// parseAnswerFlags turns dimension=option pairs into answers, preserving
// flag order so the engine's last-wins rule applies.
func parseAnswerFlags(values []string) ([]matching.Answer, error) {
	out := make([]matching.Answer, 0, len(values))
	for _, v := range values {
		dim, opt, ok := strings.Cut(v, "=")
		dim, opt = strings.TrimSpace(dim), strings.TrimSpace(opt)
		if !ok || dim == "" {
			return nil, fmt.Errorf("invalid --answer %q: want dimension=option", v)
		}
		out = append(out, matching.Answer{Dimension: catalog.DimensionID(dim), Option: opt})
	}
	return out, nil
}

// =============================================================================
// VALIDATE
// =============================================================================

func newValidateCmd(load configLoader) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check the config, catalog, assignment table, and roster seed without opening the database",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := load()
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			fmt.Fprintln(w, "config: ok")

			cat := catalog.Default()
			if cfg.CatalogFile != "" {
				if cat, err = catalog.LoadFile(cfg.CatalogFile); err != nil {
					return err
				}
			}
			fmt.Fprintf(w, "catalog: %d dimensions, %d keys\n", len(cat.Order()), cat.Size())

			engine, err := server.NewEngine(cat, cfg)
			if err != nil {
				return err
			}
			fmt.Fprintf(w, "table: %d entries, %d personas assigned\n", engine.Table().Len(), len(engine.Table().Slugs()))

			seed := persona.Builtin()
			if cfg.RosterSeedFile != "" {
				if seed, err = persona.LoadFile(cfg.RosterSeedFile); err != nil {
					return err
				}
			}
			declared := map[string]bool{}
			for _, slugs := range persona.Declared() {
				for _, s := range slugs {
					declared[s] = true
				}
			}
			var extra []string
			for _, p := range seed {
				if !declared[p.Slug] {
					extra = append(extra, p.Slug)
				}
			}
			fmt.Fprintf(w, "seed: %d personas", len(seed))
			if len(extra) > 0 {
				fmt.Fprintf(w, " (reachable by scoring only: %s)", strings.Join(extra, ", "))
			}
			fmt.Fprintln(w)
			return nil
		},
	}
}

// =============================================================================
// CONFIG / VERSION
// =============================================================================

func newConfigCmd(load configLoader) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as TOML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := load()
			if err != nil {
				return err
			}
			data, err := cfg.Encode()
			if err != nil {
				return fmt.Errorf("encoding config: %w", err)
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "personamatch v%s\n", server.Version)
		},
	}
}
