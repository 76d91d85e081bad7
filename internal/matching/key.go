package matching

import (
	"strings"

	"github.com/HendryAvila/personamatch/internal/catalog"
)

// BuildKey encodes answers as a canonical key: one option ID per catalog
// dimension, in catalog order, joined by catalog.KeyDelimiter.
//
// Answer order does not matter. Answers for unknown dimensions are ignored.
// When a dimension is answered more than once the last answer wins. An
// option that is not legal for its dimension counts as unanswered, and so
// does a tag-only answer.
// Returns ("", false) if any dimension is left unanswered.
func (e *Engine) BuildKey(answers []Answer) (string, bool) {
	chosen := e.selectOptions(answers)
	order := e.catalog.Order()

	parts := make([]string, len(order))
	for i, dim := range order {
		opt, ok := chosen[dim]
		if !ok {
			return "", false
		}
		parts[i] = opt
	}
	return strings.Join(parts, catalog.KeyDelimiter), true
}

// latestAnswers applies the last-wins policy shared by both resolvers.
// Answers for unknown dimensions are ignored. An answer naming an option
// that is not legal for its dimension counts as unanswered: it clears any
// earlier answer for that dimension and its tags are dropped. An answer
// with no option is kept only when it carries tags; the key path still
// treats that dimension as unanswered.
func (e *Engine) latestAnswers(answers []Answer) map[catalog.DimensionID]Answer {
	latest := make(map[catalog.DimensionID]Answer, len(answers))
	for _, a := range answers {
		if !e.catalog.HasDimension(a.Dimension) {
			continue
		}
		tagOnly := a.Option == "" && len(a.Tags) > 0
		if !tagOnly && !e.catalog.HasOption(a.Dimension, a.Option) {
			delete(latest, a.Dimension)
			continue
		}
		latest[a.Dimension] = a
	}
	return latest
}

// selectOptions returns the chosen option per dimension after latestAnswers.
func (e *Engine) selectOptions(answers []Answer) map[catalog.DimensionID]string {
	latest := e.latestAnswers(answers)
	chosen := make(map[catalog.DimensionID]string, len(latest))
	for dim, a := range latest {
		if a.Option != "" {
			chosen[dim] = a.Option
		}
	}
	return chosen
}

// Missing lists, in catalog order, the dimensions BuildKey would find
// unanswered.
func (e *Engine) Missing(answers []Answer) []catalog.DimensionID {
	chosen := e.selectOptions(answers)
	var out []catalog.DimensionID
	for _, dim := range e.catalog.Order() {
		if _, ok := chosen[dim]; !ok {
			out = append(out, dim)
		}
	}
	return out
}
