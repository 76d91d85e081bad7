// Package matching resolves questionnaire answers into exactly one persona.
//
// Two resolvers share one immutable Engine:
//   - ResolvePreassigned: canonical key -> assignment table -> partition
//     fallback order. May legitimately return no persona when the locked
//     partition is exhausted.
//   - ResolveByScoring: tag-overlap scoring over the roster. Always returns
//     a persona when the roster has an active one.
//
// Every outcome is a Result variant. Nothing in this package returns an
// error or panics at resolution time, performs I/O, or retains the roster.
package matching

import (
	"github.com/HendryAvila/personamatch/internal/catalog"
	"github.com/HendryAvila/personamatch/internal/persona"
)

// Status tags the variant of a Result.
type Status string

const (
	// StatusResolved means a persona was returned, primary or fallback.
	StatusResolved Status = "resolved"
	// StatusIncompleteAnswers means a required dimension was unanswered.
	// The caller should re-prompt; no assignment was attempted.
	StatusIncompleteAnswers Status = "incomplete_answers"
	// StatusNoActiveCandidates means the roster had no active persona.
	StatusNoActiveCandidates Status = "no_active_candidates"
	// StatusBranchExhausted means the locked partition's fallback order was
	// walked with no active match. The caller must not cross partitions.
	StatusBranchExhausted Status = "branch_exhausted"
)

// Answer is one (dimension, option) pair. Tags are only read by the
// scoring resolver; when empty, the catalog option's tags are used.
type Answer struct {
	Dimension catalog.DimensionID `json:"dimension"`
	Option    string              `json:"option"`
	Tags      []string            `json:"tags,omitempty"`
}

// Result is the outcome of a resolution call. An empty ResolvedSlug and a
// nil Persona mean no persona was assigned.
type Result struct {
	Status             Status            `json:"status"`
	Key                string            `json:"key,omitempty"`
	Partition          persona.Partition `json:"partition"`
	RequestedSlug      string            `json:"requested_slug,omitempty"`
	ResolvedSlug       string            `json:"resolved_slug,omitempty"`
	Persona            *persona.Persona  `json:"persona,omitempty"`
	UsedFallback       bool              `json:"used_fallback"`
	UsedEnergyFallback bool              `json:"used_energy_fallback"`
	Score              int               `json:"score,omitempty"`
}

// OK reports whether a persona was assigned.
func (r Result) OK() bool {
	return r.Status == StatusResolved && r.Persona != nil
}
