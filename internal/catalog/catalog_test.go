package catalog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// --- Default ---

func TestDefault_FourDimensionsInCanonicalOrder(t *testing.T) {
	c := Default()
	want := []DimensionID{DimensionEnergy, DimensionFocus, DimensionTone, DimensionProgress}
	got := c.Order()
	if len(got) != len(want) {
		t.Fatalf("Order() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Order()[%d] = %s, want %s", i, got[i], want[i])
		}
	}
}

func TestDefault_Size192(t *testing.T) {
	if got := Default().Size(); got != 192 {
		t.Errorf("Size() = %d, want 192", got)
	}
}

func TestDefault_OptionCounts(t *testing.T) {
	want := map[DimensionID]int{
		DimensionEnergy:   3,
		DimensionFocus:    4,
		DimensionTone:     4,
		DimensionProgress: 4,
	}
	for _, d := range Default().Dimensions() {
		if len(d.Options) != want[d.ID] {
			t.Errorf("dimension %s has %d options, want %d", d.ID, len(d.Options), want[d.ID])
		}
	}
}

func TestDefault_EnergyOptionsArePartitionNames(t *testing.T) {
	c := Default()
	for _, opt := range []string{"feminine", "masculine", "either"} {
		if !c.HasOption(DimensionEnergy, opt) {
			t.Errorf("energy option %q missing", opt)
		}
	}
}

func TestDefault_AllNonEnergyOptionsHaveTags(t *testing.T) {
	for _, d := range Default().Dimensions() {
		if d.ID == DimensionEnergy {
			continue
		}
		for _, o := range d.Options {
			if len(o.Tags) == 0 {
				t.Errorf("%s/%s has no tags", d.ID, o.ID)
			}
		}
	}
}

// --- Keys / SplitKey ---

func TestKeys_EnumeratesFullSpaceWithoutDuplicates(t *testing.T) {
	c := Default()
	keys := c.Keys()
	if len(keys) != c.Size() {
		t.Fatalf("Keys() returned %d keys, want %d", len(keys), c.Size())
	}
	seen := make(map[string]bool, len(keys))
	for _, k := range keys {
		if seen[k] {
			t.Errorf("duplicate key %s", k)
		}
		seen[k] = true
		if _, ok := c.SplitKey(k); !ok {
			t.Errorf("SplitKey rejected enumerated key %s", k)
		}
	}
	if keys[0] != "feminine|clarity_mindset|gentle_compassionate|principles_logic" {
		t.Errorf("first key = %s", keys[0])
	}
}

func TestSplitKey(t *testing.T) {
	c := Default()

	parts, ok := c.SplitKey("either|emotions_healing|encouraging_supportive|belief_support")
	if !ok {
		t.Fatal("valid key rejected")
	}
	if parts[DimensionTone] != "encouraging_supportive" {
		t.Errorf("tone = %s", parts[DimensionTone])
	}

	for _, bad := range []string{
		"",
		"either|emotions_healing|encouraging_supportive",
		"either|emotions_healing|encouraging_supportive|belief_support|extra",
		"neutral|emotions_healing|encouraging_supportive|belief_support",
	} {
		if _, ok := c.SplitKey(bad); ok {
			t.Errorf("SplitKey(%q) should fail", bad)
		}
	}
}

// --- Accessors ---

func TestOptionTags_ReturnsCopy(t *testing.T) {
	c := Default()
	tags := c.OptionTags(DimensionFocus, "clarity_mindset")
	if len(tags) == 0 {
		t.Fatal("expected tags")
	}
	tags[0] = "mutated"
	if c.OptionTags(DimensionFocus, "clarity_mindset")[0] == "mutated" {
		t.Error("OptionTags exposes internal state")
	}
	if c.OptionTags(DimensionFocus, "nope") != nil {
		t.Error("unknown option should have nil tags")
	}
	if c.OptionTags("nope", "clarity_mindset") != nil {
		t.Error("unknown dimension should have nil tags")
	}
}

func TestDimensions_ReturnsCopy(t *testing.T) {
	c := Default()
	dims := c.Dimensions()
	dims[0].Options[0].ID = "mutated"
	if !c.HasOption(DimensionEnergy, "feminine") {
		t.Error("Dimensions() exposes internal state")
	}
	d, _ := c.Dimension(DimensionEnergy)
	if d.Options[0].ID != "feminine" {
		t.Errorf("Dimension() option = %s, want feminine", d.Options[0].ID)
	}
}

func TestWeight(t *testing.T) {
	c := Default()
	if c.Weight(DimensionFocus) != 3 {
		t.Errorf("focus weight = %d, want 3", c.Weight(DimensionFocus))
	}
	if c.Weight("unknown") != 0 {
		t.Error("unknown dimension weight should be 0")
	}
}

// --- New validation ---

func TestNew_Rejects(t *testing.T) {
	opt := []Option{{ID: "a"}}
	tests := []struct {
		name    string
		dims    []Dimension
		wantSub string
	}{
		{"empty", nil, "at least one dimension"},
		{"empty id", []Dimension{{ID: " ", Options: opt}}, "empty id"},
		{"duplicate dimension", []Dimension{{ID: "x", Options: opt}, {ID: "x", Options: opt}}, "duplicate dimension"},
		{"no options", []Dimension{{ID: "x"}}, "no options"},
		{"negative weight", []Dimension{{ID: "x", Weight: -1, Options: opt}}, "negative weight"},
		{"empty option", []Dimension{{ID: "x", Options: []Option{{ID: ""}}}}, "empty id"},
		{"delimiter", []Dimension{{ID: "x", Options: []Option{{ID: "a|b"}}}}, "key delimiter"},
		{"duplicate option", []Dimension{{ID: "x", Options: []Option{{ID: "a"}, {ID: "a"}}}}, "duplicate option"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.dims)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.wantSub) {
				t.Errorf("error = %v, want substring %q", err, tt.wantSub)
			}
		})
	}
}

// --- LoadFile ---

func TestLoadFile_Valid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	content := `dimensions:
  - id: energy
    question: Energy?
    weight: 1
    options:
      - id: feminine
      - id: masculine
  - id: focus
    weight: 2
    options:
      - id: clarity_mindset
        label: Clarity
        tags: [clarity]
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	c, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if c.Size() != 2 {
		t.Errorf("Size() = %d, want 2", c.Size())
	}
	if got := c.OptionTags(DimensionFocus, "clarity_mindset"); len(got) != 1 || got[0] != "clarity" {
		t.Errorf("tags = %v", got)
	}
}

func TestParse_InvalidYAML(t *testing.T) {
	if _, err := Parse([]byte("dimensions: [")); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestParse_EmptyCatalog(t *testing.T) {
	if _, err := Parse([]byte("dimensions: []")); err == nil {
		t.Fatal("expected validation error")
	}
}

func TestLoadFile_Missing(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected error")
	}
}
