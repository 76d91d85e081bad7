package persona

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// --- Partition ---

func TestParsePartition(t *testing.T) {
	tests := []struct {
		in      string
		want    Partition
		wantErr bool
	}{
		{"feminine", PartitionFeminine, false},
		{"MASCULINE", PartitionMasculine, false},
		{" either ", PartitionEither, false},
		{"neutral", PartitionUnknown, true},
		{"", PartitionUnknown, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParsePartition(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParsePartition(%q) err = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParsePartition(%q) = %s, want %s", tt.in, got, tt.want)
			}
		})
	}
}

func TestPartition_Locked(t *testing.T) {
	if !PartitionFeminine.Locked() || !PartitionMasculine.Locked() {
		t.Error("feminine and masculine must be locked")
	}
	if PartitionEither.Locked() {
		t.Error("either must not be locked")
	}
	if PartitionUnknown.Locked() {
		t.Error("unknown must not be locked")
	}
}

func TestPartition_JSONRoundTrip(t *testing.T) {
	p := Persona{Slug: "x", PartitionTag: PartitionMasculine}
	data, err := json.Marshal(p)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !strings.Contains(string(data), `"partition":"masculine"`) {
		t.Errorf("partition not encoded by name: %s", data)
	}

	var back Persona
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if back.PartitionTag != PartitionMasculine {
		t.Errorf("PartitionTag = %s, want masculine", back.PartitionTag)
	}
}

// --- Persona helpers ---

func TestClone_DoesNotShareTags(t *testing.T) {
	p := Persona{Slug: "sienna", Tags: []string{"a", "b"}}
	c := p.Clone()
	c.Tags[0] = "changed"
	if p.Tags[0] != "a" {
		t.Error("Clone shares the tag backing array")
	}
}

func TestFindActiveIn(t *testing.T) {
	roster := []Persona{
		{Slug: "maya", Active: false},
		{Slug: "sienna", Active: true, Name: "first"},
		{Slug: "sienna", Active: true, Name: "second"},
	}

	if _, ok := FindActiveIn(roster, "maya", PartitionEither); ok {
		t.Error("inactive persona should not be found")
	}
	got, ok := FindActiveIn(roster, "sienna", PartitionEither)
	if !ok {
		t.Fatal("sienna should be found")
	}
	if got.Name != "first" {
		t.Errorf("FindActiveIn returned %q, want first match", got.Name)
	}
	if _, ok := FindActiveIn(nil, "sienna", PartitionFeminine); ok {
		t.Error("nil roster should find nothing")
	}
}

func TestFindActiveIn_LockedPartitionSkipsMistagged(t *testing.T) {
	roster := []Persona{
		{Slug: "sienna", Active: true, PartitionTag: PartitionMasculine, Name: "mistagged"},
		{Slug: "sienna", Active: true, PartitionTag: PartitionFeminine, Name: "tagged"},
	}

	got, ok := FindActiveIn(roster, "sienna", PartitionFeminine)
	if !ok || got.Name != "tagged" {
		t.Errorf("feminine lookup = %+v, %v; want the feminine entry", got, ok)
	}
	if _, ok := FindActiveIn(roster[:1], "sienna", PartitionFeminine); ok {
		t.Error("a masculine entry must not satisfy a feminine lookup")
	}
	got, ok = FindActiveIn(roster, "sienna", PartitionEither)
	if !ok || got.Name != "mistagged" {
		t.Errorf("either lookup = %+v, %v; want first active entry", got, ok)
	}
}

func TestValidate_DeclaredSlugKeepsPartition(t *testing.T) {
	err := Persona{Slug: "sienna", PartitionTag: PartitionMasculine}.Validate()
	if err == nil || !strings.Contains(err.Error(), "declared feminine") {
		t.Errorf("err = %v, want declared partition error", err)
	}
	if err := (Persona{Slug: "sienna", PartitionTag: PartitionFeminine}).Validate(); err != nil {
		t.Errorf("declared partition rejected: %v", err)
	}
	if err := (Persona{Slug: "zoe", PartitionTag: PartitionMasculine}).Validate(); err != nil {
		t.Errorf("undeclared slug may take either locked partition: %v", err)
	}
}

func TestDeclaredPartition(t *testing.T) {
	if p, ok := DeclaredPartition("rowan"); !ok || p != PartitionMasculine {
		t.Errorf("rowan = %s, %v", p, ok)
	}
	if _, ok := DeclaredPartition("zoe"); ok {
		t.Error("zoe is not declared")
	}
}

func TestAnyActive(t *testing.T) {
	if AnyActive(nil) {
		t.Error("nil roster has no active personas")
	}
	if AnyActive([]Persona{{Slug: "a"}}) {
		t.Error("inactive-only roster has no active personas")
	}
	if !AnyActive([]Persona{{Slug: "a"}, {Slug: "b", Active: true}}) {
		t.Error("expected an active persona")
	}
}

// --- Builtin ---

func TestBuiltin_TwelvePersonasAllActive(t *testing.T) {
	b := Builtin()
	if len(b) != 12 {
		t.Fatalf("Builtin() returned %d personas, want 12", len(b))
	}
	seen := map[string]bool{}
	for _, p := range b {
		if err := p.Validate(); err != nil {
			t.Errorf("builtin persona invalid: %v", err)
		}
		if !p.Active {
			t.Errorf("builtin persona %s should be active", p.Slug)
		}
		if seen[p.Slug] {
			t.Errorf("duplicate builtin slug %s", p.Slug)
		}
		seen[p.Slug] = true
	}
}

func TestBuiltin_ReturnsFreshCopy(t *testing.T) {
	a := Builtin()
	a[0].Tags[0] = "mutated"
	a[0].Active = false
	b := Builtin()
	if b[0].Tags[0] == "mutated" || !b[0].Active {
		t.Error("Builtin() must not expose the shared declaration")
	}
}

func TestDeclared_SplitsByPartition(t *testing.T) {
	d := Declared()
	fem := d[PartitionFeminine]
	masc := d[PartitionMasculine]
	if len(fem) != 6 || len(masc) != 6 {
		t.Fatalf("Declared() sizes = %d/%d, want 6/6", len(fem), len(masc))
	}
	if fem[0] != "sienna" || masc[0] != "marcus" {
		t.Errorf("declaration order lost: %v / %v", fem, masc)
	}
	if len(d[PartitionEither]) != 0 {
		t.Error("no persona is declared in the either partition")
	}
}

// --- LoadFile ---

func TestLoadFile_Valid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roster.yaml")
	content := `personas:
  - slug: sienna
    name: Sienna
    partition: feminine
    intensity_level: 2
    active: true
    tags: [clarity, gentle]
  - id: custom-id
    slug: marcus
    partition: masculine
    active: false
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d personas, want 2", len(got))
	}
	if got[0].PartitionTag != PartitionFeminine || !got[0].Active {
		t.Errorf("sienna decoded wrong: %+v", got[0])
	}
	if got[0].ID != "sienna" {
		t.Errorf("missing ID should default to slug, got %q", got[0].ID)
	}
	if got[1].ID != "custom-id" || got[1].Active {
		t.Errorf("marcus decoded wrong: %+v", got[1])
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantSub string
	}{
		{"bad partition", "personas:\n  - slug: a\n    partition: neutral\n", "invalid partition"},
		{"either partition", "personas:\n  - slug: a\n    partition: either\n", "must be feminine or masculine"},
		{"missing slug", "personas:\n  - partition: feminine\n", "slug is required"},
		{"declared slug wrong partition", "personas:\n  - slug: sienna\n    partition: masculine\n", "declared feminine"},
		{"duplicate", "personas:\n  - slug: a\n    partition: feminine\n  - slug: a\n    partition: feminine\n", "duplicate slug"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.content))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.wantSub) {
				t.Errorf("error = %v, want substring %q", err, tt.wantSub)
			}
		})
	}
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}
