// Package config loads the personamatch TOML configuration.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/HendryAvila/personamatch/internal/catalog"
)

// EnvLogLevel overrides log_level when set.
const EnvLogLevel = "PERSONAMATCH_LOG_LEVEL"

// FileName is the config file name inside the data directory.
const FileName = "config.toml"

// ValidLogLevels lists the accepted log_level values.
var ValidLogLevels = []string{"debug", "info", "warn", "error"}

// Config is the on-disk configuration. Missing keys keep their defaults.
type Config struct {
	DataDir           string  `toml:"data_dir"`
	LogLevel          string  `toml:"log_level"`
	CatalogFile       string  `toml:"catalog_file"`
	RosterSeedFile    string  `toml:"roster_seed_file"`
	RecordResolutions bool    `toml:"record_resolutions"`
	HistoryLimit      int     `toml:"history_limit"`
	Scoring           Scoring `toml:"scoring"`
}

// Scoring tunes the weighted scoring resolver.
type Scoring struct {
	StrictEnergy bool `toml:"strict_energy"`
	// Weights overrides the catalog weight of the named dimensions.
	Weights map[string]int `toml:"weights,omitempty"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		DataDir:           defaultDataDir(),
		LogLevel:          "info",
		RecordResolutions: true,
		HistoryLimit:      100,
		Scoring:           Scoring{StrictEnergy: true},
	}
}

// DefaultPath returns ~/.personamatch/config.toml.
func DefaultPath() string {
	return filepath.Join(defaultDataDir(), FileName)
}

func defaultDataDir() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".personamatch")
}

// Load reads path over the defaults. An empty path means DefaultPath. A
// missing file is not an error. Unknown keys are rejected.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultPath()
	}
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("reading config: %w", err)
	default:
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(cfg); err != nil {
			var strict *toml.StrictMissingError
			if errors.As(err, &strict) {
				return nil, fmt.Errorf("parsing config %s: %s", path, strict.String())
			}
			return nil, fmt.Errorf("parsing config %s: %w", path, err)
		}
	}

	if lvl := strings.TrimSpace(os.Getenv(EnvLogLevel)); lvl != "" {
		cfg.LogLevel = lvl
	}
	cfg.LogLevel = strings.ToLower(cfg.LogLevel)
	cfg.DataDir = expandHome(cfg.DataDir)
	cfg.CatalogFile = expandHome(cfg.CatalogFile)
	cfg.RosterSeedFile = expandHome(cfg.RosterSeedFile)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks value ranges. It does not touch the filesystem.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.DataDir) == "" {
		return fmt.Errorf("config: data_dir is required")
	}
	if !isValidLogLevel(c.LogLevel) {
		return fmt.Errorf("config: invalid log_level %q: must be one of: %s",
			c.LogLevel, strings.Join(ValidLogLevels, ", "))
	}
	if c.HistoryLimit < 0 {
		return fmt.Errorf("config: history_limit must be >= 0, got %d", c.HistoryLimit)
	}
	for dim, w := range c.Scoring.Weights {
		if strings.TrimSpace(dim) == "" {
			return fmt.Errorf("config: scoring.weights has an empty dimension name")
		}
		if w < 0 {
			return fmt.Errorf("config: scoring.weights.%s must be >= 0, got %d", dim, w)
		}
	}
	return nil
}

// ScoringWeights returns the weight overrides keyed by dimension. Nil when
// none are configured.
func (c *Config) ScoringWeights() map[catalog.DimensionID]int {
	if len(c.Scoring.Weights) == 0 {
		return nil
	}
	out := make(map[catalog.DimensionID]int, len(c.Scoring.Weights))
	for dim, w := range c.Scoring.Weights {
		out[catalog.DimensionID(dim)] = w
	}
	return out
}

// Encode renders the configuration as TOML.
func (c *Config) Encode() ([]byte, error) {
	return toml.Marshal(c)
}

func isValidLogLevel(level string) bool {
	for _, l := range ValidLogLevels {
		if l == level {
			return true
		}
	}
	return false
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
