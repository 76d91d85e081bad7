// Package roster persists the live persona roster and the resolution
// history in SQLite.
//
// The matching engine never talks to this package. Callers take a
// Snapshot, hand it to the engine, and optionally record the Result.
package roster

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/HendryAvila/personamatch/internal/matching"
	"github.com/HendryAvila/personamatch/internal/persona"
)

// openDB is a package-level var to allow test injection.
var openDB = sql.Open

// ErrNotFound is returned when a persona slug is not in the roster.
var ErrNotFound = errors.New("persona not found")

// Resolution modes recorded in the history.
const (
	ModePreassigned = "preassigned"
	ModeScoring     = "scoring"
)

// ─── Types ───────────────────────────────────────────────────────────────────

// Record is one persisted resolution.
type Record struct {
	ID                 string            `json:"id"`
	Mode               string            `json:"mode"`
	Status             matching.Status   `json:"status"`
	Key                string            `json:"key,omitempty"`
	RequestedSlug      string            `json:"requested_slug,omitempty"`
	ResolvedSlug       string            `json:"resolved_slug,omitempty"`
	UsedFallback       bool              `json:"used_fallback"`
	UsedEnergyFallback bool              `json:"used_energy_fallback"`
	Score              int               `json:"score"`
	Answers            []matching.Answer `json:"answers"`
	CreatedAt          string            `json:"created_at"`
}

// ─── Config ──────────────────────────────────────────────────────────────────

// Config holds roster store configuration.
type Config struct {
	DataDir         string
	MaxHistoryLimit int
}

// DefaultConfig returns the default configuration for the roster store.
func DefaultConfig() Config {
	home, _ := os.UserHomeDir()
	return Config{
		DataDir:         filepath.Join(home, ".personamatch"),
		MaxHistoryLimit: 100,
	}
}

// ─── Store ───────────────────────────────────────────────────────────────────

// Store is the SQLite-backed roster and resolution history.
type Store struct {
	db  *sql.DB
	cfg Config
}

// New creates the data directory if needed, opens SQLite with WAL mode, and
// runs migrations.
func New(cfg Config) (*Store, error) {
	if err := os.MkdirAll(cfg.DataDir, 0o700); err != nil {
		return nil, fmt.Errorf("roster: create data dir: %w", err)
	}
	if cfg.MaxHistoryLimit <= 0 {
		cfg.MaxHistoryLimit = DefaultConfig().MaxHistoryLimit
	}

	dbPath := filepath.Join(cfg.DataDir, "roster.db")
	db, err := openDB("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("roster: open database: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA foreign_keys = ON",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("roster: pragma %q: %w", p, err)
		}
	}

	s := &Store{db: db, cfg: cfg}
	if err := s.migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("roster: migration: %w", err)
	}
	return s, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// ─── Migrations ──────────────────────────────────────────────────────────────

func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS personas (
			slug       TEXT    PRIMARY KEY,
			id         TEXT    NOT NULL,
			name       TEXT    NOT NULL DEFAULT '',
			tags       TEXT    NOT NULL DEFAULT '[]',
			intensity  INTEGER NOT NULL DEFAULT 0,
			partition  TEXT    NOT NULL,
			active     INTEGER NOT NULL DEFAULT 1,
			position   INTEGER NOT NULL,
			created_at TEXT    NOT NULL,
			updated_at TEXT    NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_personas_position ON personas(position);

		CREATE TABLE IF NOT EXISTS resolutions (
			id                   TEXT    PRIMARY KEY,
			mode                 TEXT    NOT NULL,
			status               TEXT    NOT NULL,
			answer_key           TEXT    NOT NULL DEFAULT '',
			requested_slug       TEXT    NOT NULL DEFAULT '',
			resolved_slug        TEXT    NOT NULL DEFAULT '',
			used_fallback        INTEGER NOT NULL DEFAULT 0,
			used_energy_fallback INTEGER NOT NULL DEFAULT 0,
			score                INTEGER NOT NULL DEFAULT 0,
			answers              TEXT    NOT NULL DEFAULT '[]',
			created_at           TEXT    NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_resolutions_created ON resolutions(created_at DESC);
	`
	_, err := s.db.Exec(schema)
	return err
}

// ─── Personas ────────────────────────────────────────────────────────────────

// Upsert inserts or replaces a persona. A new slug is appended to the end
// of the roster order; an existing slug keeps its position.
func (s *Store) Upsert(ctx context.Context, p persona.Persona) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if p.ID == "" {
		p.ID = p.Slug
	}
	tags, err := json.Marshal(nonNil(p.Tags))
	if err != nil {
		return fmt.Errorf("roster: encode tags: %w", err)
	}

	now := Now()
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO personas (slug, id, name, tags, intensity, partition, active, position, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, (SELECT COALESCE(MAX(position), 0) + 1 FROM personas), ?, ?)
		ON CONFLICT(slug) DO UPDATE SET
			id         = excluded.id,
			name       = excluded.name,
			tags       = excluded.tags,
			intensity  = excluded.intensity,
			partition  = excluded.partition,
			active     = excluded.active,
			updated_at = excluded.updated_at`,
		p.Slug, p.ID, p.Name, string(tags), p.IntensityLevel, p.PartitionTag.String(), boolInt(p.Active), now, now,
	)
	if err != nil {
		return fmt.Errorf("roster: upsert %q: %w", p.Slug, err)
	}
	return nil
}

// Get returns one persona by slug, or ErrNotFound.
func (s *Store) Get(ctx context.Context, slug string) (*persona.Persona, error) {
	rows, err := s.db.QueryContext(ctx, selectPersonas+` WHERE slug = ?`, slug)
	if err != nil {
		return nil, fmt.Errorf("roster: get %q: %w", slug, err)
	}
	list, err := scanPersonas(rows)
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, slug)
	}
	return &list[0], nil
}

// List returns the roster in roster order. With activeOnly, inactive
// personas are skipped.
func (s *Store) List(ctx context.Context, activeOnly bool) ([]persona.Persona, error) {
	query := selectPersonas
	if activeOnly {
		query += ` WHERE active = 1`
	}
	query += ` ORDER BY position ASC`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("roster: list: %w", err)
	}
	return scanPersonas(rows)
}

// Snapshot returns the full roster, inactive personas included, for a
// single resolution call.
func (s *Store) Snapshot(ctx context.Context) ([]persona.Persona, error) {
	return s.List(ctx, false)
}

// SetActive flips a persona's availability.
func (s *Store) SetActive(ctx context.Context, slug string, active bool) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE personas SET active = ?, updated_at = ? WHERE slug = ?`,
		boolInt(active), Now(), slug,
	)
	if err != nil {
		return fmt.Errorf("roster: set active %q: %w", slug, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("roster: set active %q: %w", slug, err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, slug)
	}
	return nil
}

// Count returns the number of personas, active or not.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM personas`).Scan(&n); err != nil {
		return 0, fmt.Errorf("roster: count: %w", err)
	}
	return n, nil
}

// SeedIfEmpty inserts personas in order when the roster is empty. It
// returns the number of personas inserted.
func (s *Store) SeedIfEmpty(ctx context.Context, personas []persona.Persona) (int, error) {
	n, err := s.Count(ctx)
	if err != nil {
		return 0, err
	}
	if n > 0 {
		return 0, nil
	}
	for _, p := range personas {
		if err := s.Upsert(ctx, p); err != nil {
			return 0, err
		}
	}
	return len(personas), nil
}

const selectPersonas = `SELECT slug, id, name, tags, intensity, partition, active FROM personas`

func scanPersonas(rows *sql.Rows) ([]persona.Persona, error) {
	defer rows.Close()

	var out []persona.Persona
	for rows.Next() {
		var (
			p         persona.Persona
			tags      string
			partition string
			active    int
		)
		if err := rows.Scan(&p.Slug, &p.ID, &p.Name, &tags, &p.IntensityLevel, &partition, &active); err != nil {
			return nil, fmt.Errorf("roster: scan persona: %w", err)
		}
		if err := json.Unmarshal([]byte(tags), &p.Tags); err != nil {
			return nil, fmt.Errorf("roster: decode tags of %q: %w", p.Slug, err)
		}
		pt, err := persona.ParsePartition(partition)
		if err != nil {
			return nil, fmt.Errorf("roster: persona %q: %w", p.Slug, err)
		}
		p.PartitionTag = pt
		p.Active = active == 1
		out = append(out, p)
	}
	return out, rows.Err()
}

// ─── Resolution history ──────────────────────────────────────────────────────

// RecordResolution appends a resolution outcome to the history.
func (s *Store) RecordResolution(ctx context.Context, mode string, answers []matching.Answer, res matching.Result) (*Record, error) {
	if mode != ModePreassigned && mode != ModeScoring {
		return nil, fmt.Errorf("roster: invalid resolution mode %q", mode)
	}
	encoded, err := json.Marshal(nonNilAnswers(answers))
	if err != nil {
		return nil, fmt.Errorf("roster: encode answers: %w", err)
	}

	rec := &Record{
		ID:                 uuid.NewString(),
		Mode:               mode,
		Status:             res.Status,
		Key:                res.Key,
		RequestedSlug:      res.RequestedSlug,
		ResolvedSlug:       res.ResolvedSlug,
		UsedFallback:       res.UsedFallback,
		UsedEnergyFallback: res.UsedEnergyFallback,
		Score:              res.Score,
		Answers:            nonNilAnswers(answers),
		CreatedAt:          Now(),
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO resolutions (id, mode, status, answer_key, requested_slug, resolved_slug,
			used_fallback, used_energy_fallback, score, answers, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.ID, rec.Mode, string(rec.Status), rec.Key, rec.RequestedSlug, rec.ResolvedSlug,
		boolInt(rec.UsedFallback), boolInt(rec.UsedEnergyFallback), rec.Score, string(encoded), rec.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("roster: record resolution: %w", err)
	}
	return rec, nil
}

// RecentResolutions returns the newest records first. limit is clamped to
// [1, MaxHistoryLimit].
func (s *Store) RecentResolutions(ctx context.Context, limit int) ([]Record, error) {
	if limit <= 0 {
		limit = 10
	}
	if limit > s.cfg.MaxHistoryLimit {
		limit = s.cfg.MaxHistoryLimit
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, mode, status, answer_key, requested_slug, resolved_slug,
			used_fallback, used_energy_fallback, score, answers, created_at
		FROM resolutions
		ORDER BY created_at DESC, rowid DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("roster: recent resolutions: %w", err)
	}
	defer rows.Close()

	var out []Record
	for rows.Next() {
		var (
			r                       Record
			status, answers         string
			usedFallback, usedEnerg int
		)
		if err := rows.Scan(&r.ID, &r.Mode, &status, &r.Key, &r.RequestedSlug, &r.ResolvedSlug,
			&usedFallback, &usedEnerg, &r.Score, &answers, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("roster: scan resolution: %w", err)
		}
		if err := json.Unmarshal([]byte(answers), &r.Answers); err != nil {
			return nil, fmt.Errorf("roster: decode answers of %s: %w", r.ID, err)
		}
		r.Status = matching.Status(status)
		r.UsedFallback = usedFallback == 1
		r.UsedEnergyFallback = usedEnerg == 1
		out = append(out, r)
	}
	return out, rows.Err()
}

// ─── Helpers ─────────────────────────────────────────────────────────────────

// timeLayout is fixed width so stored timestamps sort lexically.
const timeLayout = "2006-01-02T15:04:05.000000000Z"

// Now returns the current UTC time in the format stored in the database.
func Now() string {
	return time.Now().UTC().Format(timeLayout)
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func nonNil(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		if t = strings.TrimSpace(t); t != "" {
			out = append(out, t)
		}
	}
	return out
}

func nonNilAnswers(a []matching.Answer) []matching.Answer {
	if a == nil {
		return []matching.Answer{}
	}
	return a
}
