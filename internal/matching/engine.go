package matching

import (
	"fmt"
	"sync"

	"github.com/HendryAvila/personamatch/internal/catalog"
	"github.com/HendryAvila/personamatch/internal/persona"
)

// Engine bundles the catalog, assignment table, and fallback plan. It is
// immutable after construction and safe for concurrent use.
type Engine struct {
	catalog      *catalog.Catalog
	table        *AssignmentTable
	plan         *FallbackPlan
	weights      map[catalog.DimensionID]int
	strictEnergy bool
}

// Option configures an Engine.
type Option func(*Engine)

// WithWeights overrides scoring weights per dimension. Dimensions not named
// keep their catalog weight. Negative weights are clamped to 0.
func WithWeights(weights map[catalog.DimensionID]int) Option {
	return func(e *Engine) {
		for dim, w := range weights {
			if w < 0 {
				w = 0
			}
			e.weights[dim] = w
		}
	}
}

// WithStrictEnergy toggles the strict partition filter of the scoring
// resolver. It is on by default.
func WithStrictEnergy(strict bool) Option {
	return func(e *Engine) {
		e.strictEnergy = strict
	}
}

// NewEngine assembles an engine from already validated parts.
func NewEngine(cat *catalog.Catalog, table *AssignmentTable, plan *FallbackPlan, opts ...Option) *Engine {
	e := &Engine{
		catalog:      cat,
		table:        table,
		plan:         plan,
		weights:      make(map[catalog.DimensionID]int),
		strictEnergy: true,
	}
	for _, d := range cat.Dimensions() {
		e.weights[d.ID] = d.Weight
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// New builds an engine for cat using the shipped assignment table and
// fallback orders. It fails if the table does not cover cat exactly, which
// is how a catalog/table mismatch is caught at startup.
func New(cat *catalog.Catalog, opts ...Option) (*Engine, error) {
	declared := persona.Declared()

	table, err := NewAssignmentTable(cat, defaultAssignments, declared)
	if err != nil {
		return nil, fmt.Errorf("building assignment table: %w", err)
	}
	plan, err := NewFallbackPlan(declared, defaultFallbackOrders)
	if err != nil {
		return nil, fmt.Errorf("building fallback plan: %w", err)
	}
	return NewEngine(cat, table, plan, opts...), nil
}

var defaultEngine = sync.OnceValue(func() *Engine {
	e, err := New(catalog.Default())
	if err != nil {
		panic(err)
	}
	return e
})

// Default returns the engine for the builtin catalog. It panics on first
// use if the shipped tables are inconsistent.
func Default() *Engine {
	return defaultEngine()
}

// Catalog returns the engine's catalog.
func (e *Engine) Catalog() *catalog.Catalog { return e.catalog }

// Table returns the engine's assignment table.
func (e *Engine) Table() *AssignmentTable { return e.table }

// Plan returns the engine's fallback plan.
func (e *Engine) Plan() *FallbackPlan { return e.plan }

// Lookup returns the primary target slug for a canonical key.
func (e *Engine) Lookup(key string) (string, bool) {
	return e.table.Lookup(key)
}

// BuildKey builds a canonical key with the default engine.
func BuildKey(answers []Answer) (string, bool) {
	return Default().BuildKey(answers)
}

// ResolvePreassigned resolves with the default engine.
func ResolvePreassigned(answers []Answer, roster []persona.Persona) Result {
	return Default().ResolvePreassigned(answers, roster)
}

// ResolveByScoring scores with the default engine.
func ResolveByScoring(answers []Answer, roster []persona.Persona) Result {
	return Default().ResolveByScoring(answers, roster)
}
