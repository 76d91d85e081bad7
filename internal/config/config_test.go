package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/HendryAvila/personamatch/internal/catalog"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), FileName)
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

// --- Load ---

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	t.Setenv(EnvLogLevel, "")
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if diff := cmp.Diff(Default(), cfg); diff != "" {
		t.Errorf("config differs from defaults (-want +got):\n%s", diff)
	}
}

func TestLoad_OverlaysFileOnDefaults(t *testing.T) {
	t.Setenv(EnvLogLevel, "")
	dir := t.TempDir()
	path := writeConfig(t, `
data_dir = "`+filepath.ToSlash(dir)+`"
log_level = "DEBUG"
record_resolutions = false

[scoring]
strict_energy = false

[scoring.weights]
focus = 0
tone = 5
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.DataDir != filepath.ToSlash(dir) {
		t.Errorf("DataDir = %s", cfg.DataDir)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %s, want debug", cfg.LogLevel)
	}
	if cfg.RecordResolutions {
		t.Error("RecordResolutions should be false")
	}
	if cfg.HistoryLimit != 100 {
		t.Errorf("HistoryLimit = %d, want default 100", cfg.HistoryLimit)
	}
	if cfg.Scoring.StrictEnergy {
		t.Error("StrictEnergy should be false")
	}
	want := map[catalog.DimensionID]int{catalog.DimensionFocus: 0, catalog.DimensionTone: 5}
	if diff := cmp.Diff(want, cfg.ScoringWeights()); diff != "" {
		t.Errorf("weights (-want +got):\n%s", diff)
	}
}

func TestLoad_EnvOverridesLogLevel(t *testing.T) {
	t.Setenv(EnvLogLevel, "warn")
	cfg, err := Load(writeConfig(t, `log_level = "debug"`))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.LogLevel != "warn" {
		t.Errorf("LogLevel = %s, want warn", cfg.LogLevel)
	}
}

func TestLoad_ExpandsHome(t *testing.T) {
	t.Setenv(EnvLogLevel, "")
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}
	cfg, err := Load(writeConfig(t, `catalog_file = "~/catalog.yaml"`))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.CatalogFile != filepath.Join(home, "catalog.yaml") {
		t.Errorf("CatalogFile = %s", cfg.CatalogFile)
	}
}

func TestLoad_Rejects(t *testing.T) {
	t.Setenv(EnvLogLevel, "")
	tests := []struct {
		name    string
		body    string
		wantSub string
	}{
		{"unknown key", `colour = "blue"`, "colour"},
		{"bad syntax", `log_level = `, "parsing config"},
		{"bad level", `log_level = "loud"`, "invalid log_level"},
		{"negative weight", "[scoring.weights]\nfocus = -1", "must be >= 0"},
		{"negative history", `history_limit = -3`, "history_limit"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.wantSub) {
				t.Errorf("error = %v, want substring %q", err, tt.wantSub)
			}
		})
	}
}

// --- Validate / Encode ---

func TestValidate_EmptyDataDir(t *testing.T) {
	cfg := Default()
	cfg.DataDir = " "
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for empty data_dir")
	}
}

func TestScoringWeights_NilWhenUnset(t *testing.T) {
	if w := Default().ScoringWeights(); w != nil {
		t.Errorf("ScoringWeights = %v, want nil", w)
	}
}

func TestEncode_RoundTrips(t *testing.T) {
	t.Setenv(EnvLogLevel, "")
	cfg := Default()
	cfg.Scoring.Weights = map[string]int{"progress": 4}

	data, err := cfg.Encode()
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "strict_energy = true") {
		t.Errorf("encoded config missing scoring table:\n%s", data)
	}

	got, err := Load(writeConfig(t, string(data)))
	if err != nil {
		t.Fatalf("reloading encoded config: %v", err)
	}
	if diff := cmp.Diff(cfg, got); diff != "" {
		t.Errorf("round trip (-want +got):\n%s", diff)
	}
}
