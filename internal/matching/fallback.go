package matching

import (
	"fmt"

	"github.com/HendryAvila/personamatch/internal/persona"
)

// defaultFallbackOrders ranks substitutes per partition when the ideal
// persona is unavailable. Locked lists only name personas of their own
// partition. The either list interleaves both partitions in a fixed
// priority order.
var defaultFallbackOrders = map[persona.Partition][]string{
	persona.PartitionFeminine:  {"sienna", "maya", "aurora", "ivy", "nora", "luna"},
	persona.PartitionMasculine: {"marcus", "elias", "theo", "jonah", "rowan", "kai"},
	persona.PartitionEither: {
		"sienna", "marcus", "maya", "elias", "aurora", "theo",
		"ivy", "jonah", "nora", "rowan", "luna", "kai",
	},
}

// FallbackPlan holds the validated fallback order of every partition.
type FallbackPlan struct {
	orders map[persona.Partition][]string
}

// NewFallbackPlan validates orders against the declared persona set.
//
// Every partition in persona.Partitions needs an order. A locked order may
// only name slugs declared in that same partition, so a fallback walk can
// never cross into another locked partition. The either order may name any
// declared slug. Duplicates are rejected everywhere.
func NewFallbackPlan(declared map[persona.Partition][]string, orders map[persona.Partition][]string) (*FallbackPlan, error) {
	owner := slugOwners(declared)
	plan := &FallbackPlan{orders: make(map[persona.Partition][]string, len(orders))}

	for _, p := range persona.Partitions {
		order, ok := orders[p]
		if !ok || len(order) == 0 {
			return nil, fmt.Errorf("fallback plan: no order for partition %s", p)
		}

		seen := make(map[string]bool, len(order))
		for _, slug := range order {
			if seen[slug] {
				return nil, fmt.Errorf("fallback plan: %s order lists %q twice", p, slug)
			}
			seen[slug] = true

			slugPartition, declaredSlug := owner[slug]
			if !declaredSlug {
				return nil, fmt.Errorf("fallback plan: %s order names undeclared persona %q", p, slug)
			}
			if p.Locked() && slugPartition != p {
				return nil, fmt.Errorf("fallback plan: %s order names %s persona %q", p, slugPartition, slug)
			}
		}

		plan.orders[p] = append([]string(nil), order...)
	}

	return plan, nil
}

// Order returns a copy of the fallback order for p. Unknown partitions use
// the either order.
func (f *FallbackPlan) Order(p persona.Partition) []string {
	order := f.orders[f.branch(p)]
	out := make([]string, len(order))
	copy(out, order)
	return out
}

// branch picks the order a partition walks.
func (f *FallbackPlan) branch(p persona.Partition) persona.Partition {
	if p.Locked() {
		return p
	}
	return persona.PartitionEither
}
