package matching

import (
	"strings"

	"github.com/HendryAvila/personamatch/internal/catalog"
	"github.com/HendryAvila/personamatch/internal/persona"
)

// ResolveByScoring ranks the roster by tag overlap with the answers. It is
// the path for rosters the assignment table does not model.
//
//  1. Inactive personas are dropped. An empty remainder yields
//     StatusNoActiveCandidates and nothing is scored.
//  2. With strict energy filtering on and a locked energy answer, only
//     personas of that partition are candidates. If none are left, every
//     active persona is a candidate and UsedEnergyFallback is set.
//  3. score = sum over answered dimensions of
//     weight(dim) * |candidate tags ∩ answer tags|.
//     Answers without tags use the catalog option's tags. An answer with
//     an illegal option counts as unanswered, exactly as in BuildKey.
//  4. The highest score wins. Ties go to the earliest candidate in roster
//     order.
//
// Answers need not be complete. A persona is always returned when the
// roster has an active one.
func (e *Engine) ResolveByScoring(answers []Answer, roster []persona.Persona) Result {
	active := make([]int, 0, len(roster))
	for i := range roster {
		if roster[i].Active {
			active = append(active, i)
		}
	}

	res := Result{Partition: persona.PartitionUnknown}
	if key, ok := e.BuildKey(answers); ok {
		res.Key = key
	}

	answerTags, energy := e.answerTagSets(answers)
	if energy != "" {
		res.Partition = partitionOf(energy)
	}

	if len(active) == 0 {
		res.Status = StatusNoActiveCandidates
		return res
	}

	candidates := active
	if e.strictEnergy && res.Partition.Locked() {
		filtered := make([]int, 0, len(active))
		for _, i := range active {
			if roster[i].PartitionTag == res.Partition {
				filtered = append(filtered, i)
			}
		}
		if len(filtered) > 0 {
			candidates = filtered
		} else {
			res.UsedEnergyFallback = true
		}
	}

	best, bestScore := -1, -1
	for _, i := range candidates {
		score := e.score(roster[i].Tags, answerTags)
		if score > bestScore {
			best, bestScore = i, score
		}
	}

	winner := roster[best].Clone()
	res.Status = StatusResolved
	res.RequestedSlug = winner.Slug
	res.ResolvedSlug = winner.Slug
	res.Persona = &winner
	res.Score = bestScore
	return res
}

// answerTagSets returns the normalized tag set per answered dimension and
// the chosen energy option, under the same answer policy as BuildKey. An
// illegal energy option leaves energy unanswered, so no partition filter
// applies.
func (e *Engine) answerTagSets(answers []Answer) (map[catalog.DimensionID]map[string]bool, string) {
	latest := e.latestAnswers(answers)

	sets := make(map[catalog.DimensionID]map[string]bool, len(latest))
	energy := ""
	for dim, a := range latest {
		if dim == catalog.DimensionEnergy {
			energy = a.Option
		}

		tags := a.Tags
		if len(tags) == 0 {
			tags = e.catalog.OptionTags(dim, a.Option)
		}
		set := tagSet(tags)
		if len(set) > 0 {
			sets[dim] = set
		}
	}
	return sets, energy
}

// score sums weighted overlaps in catalog order.
func (e *Engine) score(personaTags []string, answerTags map[catalog.DimensionID]map[string]bool) int {
	own := tagSet(personaTags)
	total := 0
	for _, dim := range e.catalog.Order() {
		want, ok := answerTags[dim]
		if !ok {
			continue
		}
		w := e.weights[dim]
		if w == 0 {
			continue
		}
		overlap := 0
		for tag := range want {
			if own[tag] {
				overlap++
			}
		}
		total += w * overlap
	}
	return total
}

func tagSet(tags []string) map[string]bool {
	set := make(map[string]bool, len(tags))
	for _, t := range tags {
		t = strings.ToLower(strings.TrimSpace(t))
		if t != "" {
			set[t] = true
		}
	}
	return set
}
