package roster_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"

	"github.com/HendryAvila/personamatch/internal/catalog"
	"github.com/HendryAvila/personamatch/internal/matching"
	"github.com/HendryAvila/personamatch/internal/persona"
	"github.com/HendryAvila/personamatch/internal/roster"
)

// newTestStore creates a Store backed by a temp directory for isolation.
func newTestStore(t *testing.T) *roster.Store {
	t.Helper()
	s, err := roster.New(roster.Config{DataDir: t.TempDir(), MaxHistoryLimit: 5})
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func seeded(t *testing.T) *roster.Store {
	t.Helper()
	s := newTestStore(t)
	if _, err := s.SeedIfEmpty(context.Background(), persona.Builtin()); err != nil {
		t.Fatalf("seed: %v", err)
	}
	return s
}

func slugs(list []persona.Persona) []string {
	out := make([]string, len(list))
	for i, p := range list {
		out[i] = p.Slug
	}
	return out
}

// ─── New / Initialization ───────────────────────────────────────────────────

func TestNew_CreatesDBFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested")
	s, err := roster.New(roster.Config{DataDir: dir})
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	defer s.Close()

	if _, err := os.Stat(filepath.Join(dir, "roster.db")); err != nil {
		t.Errorf("roster.db not created: %v", err)
	}
}

func TestNew_IdempotentReopen(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	s1, err := roster.New(roster.Config{DataDir: dir})
	if err != nil {
		t.Fatalf("first New(): %v", err)
	}
	if _, err := s1.SeedIfEmpty(ctx, persona.Builtin()); err != nil {
		t.Fatal(err)
	}
	s1.Close()

	s2, err := roster.New(roster.Config{DataDir: dir})
	if err != nil {
		t.Fatalf("second New(): %v", err)
	}
	defer s2.Close()

	n, err := s2.Count(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if n != 12 {
		t.Errorf("Count after reopen = %d, want 12", n)
	}
}

// ─── Personas ───────────────────────────────────────────────────────────────

func TestSeedIfEmpty_PreservesOrderAndFields(t *testing.T) {
	s := seeded(t)
	got, err := s.Snapshot(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(persona.Builtin(), got); diff != "" {
		t.Errorf("snapshot differs from builtin roster (-want +got):\n%s", diff)
	}
}

func TestSeedIfEmpty_SkipsNonEmpty(t *testing.T) {
	s := seeded(t)
	n, err := s.SeedIfEmpty(context.Background(), []persona.Persona{
		{Slug: "extra", PartitionTag: persona.PartitionFeminine, Active: true},
	})
	if err != nil {
		t.Fatal(err)
	}
	if n != 0 {
		t.Errorf("seeded %d personas into a non-empty roster", n)
	}
	if _, err := s.Get(context.Background(), "extra"); !errors.Is(err, roster.ErrNotFound) {
		t.Errorf("extra should not exist, err = %v", err)
	}
}

func TestUpsert_NewSlugAppendsExistingKeepsPosition(t *testing.T) {
	s := seeded(t)
	ctx := context.Background()

	if err := s.Upsert(ctx, persona.Persona{Slug: "zoe", Name: "Zoe", PartitionTag: persona.PartitionFeminine, Active: true}); err != nil {
		t.Fatal(err)
	}
	sienna, err := s.Get(ctx, "sienna")
	if err != nil {
		t.Fatal(err)
	}
	sienna.Name = "Sienna II"
	sienna.Tags = []string{"analytical"}
	if err := s.Upsert(ctx, *sienna); err != nil {
		t.Fatal(err)
	}

	list, err := s.List(ctx, false)
	if err != nil {
		t.Fatal(err)
	}
	names := slugs(list)
	if names[0] != "sienna" || names[len(names)-1] != "zoe" {
		t.Errorf("order = %v, want sienna first and zoe last", names)
	}
	if list[0].Name != "Sienna II" || len(list[0].Tags) != 1 {
		t.Errorf("update not applied: %+v", list[0])
	}

	zoe, err := s.Get(ctx, "zoe")
	if err != nil {
		t.Fatal(err)
	}
	if zoe.ID != "zoe" {
		t.Errorf("ID = %q, want slug default", zoe.ID)
	}
	if zoe.Tags == nil {
		t.Error("tags should decode to an empty slice")
	}
}

func TestUpsert_RejectsInvalid(t *testing.T) {
	s := newTestStore(t)
	tests := map[string]persona.Persona{
		"no slug":                       {PartitionTag: persona.PartitionFeminine},
		"open partition":                {Slug: "x", PartitionTag: persona.PartitionEither},
		"negative level":                {Slug: "x", PartitionTag: persona.PartitionMasculine, IntensityLevel: -1},
		"declared slug moved partition": {Slug: "sienna", PartitionTag: persona.PartitionMasculine, Active: true},
	}
	for name, p := range tests {
		if err := s.Upsert(context.Background(), p); err == nil {
			t.Errorf("%s: expected error", name)
		}
	}
}

func TestSetActive(t *testing.T) {
	s := seeded(t)
	ctx := context.Background()

	if err := s.SetActive(ctx, "maya", false); err != nil {
		t.Fatal(err)
	}
	active, err := s.List(ctx, true)
	if err != nil {
		t.Fatal(err)
	}
	if len(active) != 11 {
		t.Errorf("active count = %d, want 11", len(active))
	}
	for _, p := range active {
		if p.Slug == "maya" {
			t.Error("maya should be inactive")
		}
	}

	all, _ := s.Snapshot(ctx)
	if len(all) != 12 {
		t.Errorf("snapshot should keep inactive personas, got %d", len(all))
	}

	if err := s.SetActive(ctx, "ghost", true); !errors.Is(err, roster.ErrNotFound) {
		t.Errorf("SetActive(ghost) err = %v, want ErrNotFound", err)
	}
}

func TestSnapshot_DrivesResolution(t *testing.T) {
	s := seeded(t)
	ctx := context.Background()
	if err := s.SetActive(ctx, "sienna", false); err != nil {
		t.Fatal(err)
	}
	snap, err := s.Snapshot(ctx)
	if err != nil {
		t.Fatal(err)
	}

	answers := []matching.Answer{
		{Dimension: catalog.DimensionEnergy, Option: "feminine"},
		{Dimension: catalog.DimensionFocus, Option: "clarity_mindset"},
		{Dimension: catalog.DimensionTone, Option: "gentle_compassionate"},
		{Dimension: catalog.DimensionProgress, Option: "principles_logic"},
	}
	res := matching.ResolvePreassigned(answers, snap)
	if res.ResolvedSlug != "maya" || !res.UsedFallback {
		t.Errorf("got %s (fallback=%v), want maya via fallback", res.ResolvedSlug, res.UsedFallback)
	}
}

// ─── Resolution history ─────────────────────────────────────────────────────

func TestRecordResolution_RoundTrip(t *testing.T) {
	s := seeded(t)
	ctx := context.Background()
	snap, _ := s.Snapshot(ctx)

	answers := []matching.Answer{
		{Dimension: catalog.DimensionEnergy, Option: "masculine"},
		{Dimension: catalog.DimensionFocus, Option: "clarity_mindset", Tags: []string{"analytical"}},
	}
	res := matching.ResolveByScoring(answers, snap)

	rec, err := s.RecordResolution(ctx, roster.ModeScoring, answers, res)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := uuid.Parse(rec.ID); err != nil {
		t.Errorf("ID %q is not a UUID: %v", rec.ID, err)
	}

	got, err := s.RecentResolutions(ctx, 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 {
		t.Fatalf("got %d records, want 1", len(got))
	}
	if diff := cmp.Diff(*rec, got[0]); diff != "" {
		t.Errorf("record mismatch (-want +got):\n%s", diff)
	}
	if got[0].ResolvedSlug != res.ResolvedSlug || got[0].Score != res.Score {
		t.Errorf("record does not reflect result: %+v", got[0])
	}
}

func TestRecordResolution_RejectsUnknownMode(t *testing.T) {
	s := newTestStore(t)
	if _, err := s.RecordResolution(context.Background(), "guess", nil, matching.Result{}); err == nil {
		t.Fatal("expected error for unknown mode")
	}
}

func TestRecentResolutions_NewestFirstAndClamped(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	var ids []string
	for i := 0; i < 7; i++ {
		rec, err := s.RecordResolution(ctx, roster.ModePreassigned, nil, matching.Result{Status: matching.StatusIncompleteAnswers})
		if err != nil {
			t.Fatal(err)
		}
		ids = append(ids, rec.ID)
	}

	got, err := s.RecentResolutions(ctx, 50)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 5 {
		t.Fatalf("got %d records, want clamp to 5", len(got))
	}
	if got[0].ID != ids[6] {
		t.Errorf("newest record = %s, want %s", got[0].ID, ids[6])
	}
	if got[0].Answers == nil {
		t.Error("answers should decode to an empty slice")
	}

	def, err := s.RecentResolutions(ctx, 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(def) != 5 {
		t.Errorf("default limit returned %d, want 5", len(def))
	}
}
