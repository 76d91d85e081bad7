package matching

import (
	"github.com/HendryAvila/personamatch/internal/catalog"
	"github.com/HendryAvila/personamatch/internal/persona"
)

// ResolvePreassigned resolves answers through the assignment table.
//
//  1. Build the canonical key. Incomplete answers stop here.
//  2. Look up the ideal slug.
//  3. If it is active in roster, return it. For a locked partition the
//     roster entry must carry that partition tag; a mis-tagged entry is
//     treated as unavailable.
//  4. Otherwise walk the answer's partition fallback order and return the
//     first active slug.
//  5. If the order is exhausted, return StatusBranchExhausted. A locked
//     partition is never widened into another partition.
//
// A roster with no active persona at all yields StatusNoActiveCandidates
// before any fallback walk. roster is only read.
func (e *Engine) ResolvePreassigned(answers []Answer, roster []persona.Persona) Result {
	key, ok := e.BuildKey(answers)
	if !ok {
		return Result{Status: StatusIncompleteAnswers}
	}

	partition := e.keyPartition(key)
	requested, _ := e.table.Lookup(key)

	res := Result{
		Key:           key,
		Partition:     partition,
		RequestedSlug: requested,
	}

	if !persona.AnyActive(roster) {
		res.Status = StatusNoActiveCandidates
		return res
	}

	if requested != "" {
		if p, ok := persona.FindActiveIn(roster, requested, partition); ok {
			res.Status = StatusResolved
			res.ResolvedSlug = p.Slug
			res.Persona = &p
			return res
		}
	}

	res.UsedFallback = true
	for _, slug := range e.plan.Order(partition) {
		if slug == requested {
			continue
		}
		if p, ok := persona.FindActiveIn(roster, slug, partition); ok {
			res.Status = StatusResolved
			res.ResolvedSlug = p.Slug
			res.Persona = &p
			return res
		}
	}

	res.Status = StatusBranchExhausted
	return res
}

// keyPartition reads the energy option out of a canonical key.
func (e *Engine) keyPartition(key string) persona.Partition {
	parts, ok := e.catalog.SplitKey(key)
	if !ok {
		return persona.PartitionUnknown
	}
	return partitionOf(parts[catalog.DimensionEnergy])
}
