package matching

import (
	"fmt"
	"sort"

	"github.com/HendryAvila/personamatch/internal/catalog"
	"github.com/HendryAvila/personamatch/internal/persona"
)

// AssignmentTable is a total, immutable map from canonical key to the
// ideal persona slug.
type AssignmentTable struct {
	entries map[string]string
}

// NewAssignmentTable validates entries against the catalog and the declared
// persona set and returns an immutable table.
//
// The table must contain exactly one entry per key in the catalog's
// combinatorial space, every value must be a declared slug, and every key
// whose energy option is a locked partition must map into that partition.
func NewAssignmentTable(cat *catalog.Catalog, entries map[string]string, declared map[persona.Partition][]string) (*AssignmentTable, error) {
	if len(entries) != cat.Size() {
		return nil, fmt.Errorf("assignment table has %d entries, catalog space is %d", len(entries), cat.Size())
	}

	owner := slugOwners(declared)

	for _, key := range cat.Keys() {
		slug, ok := entries[key]
		if !ok {
			return nil, fmt.Errorf("assignment table is missing key %q", key)
		}
		slugPartition, ok := owner[slug]
		if !ok {
			return nil, fmt.Errorf("assignment table maps %q to undeclared persona %q", key, slug)
		}

		parts, _ := cat.SplitKey(key)
		energy, hasEnergy := parts[catalog.DimensionEnergy]
		if !hasEnergy {
			continue
		}
		if p := partitionOf(energy); p.Locked() && p != slugPartition {
			return nil, fmt.Errorf("assignment table maps %s key %q to %s persona %q", p, key, slugPartition, slug)
		}
	}

	copied := make(map[string]string, len(entries))
	for k, v := range entries {
		copied[k] = v
	}
	return &AssignmentTable{entries: copied}, nil
}

// Lookup returns the ideal slug for a canonical key. It misses only for
// keys outside the catalog space.
func (t *AssignmentTable) Lookup(key string) (string, bool) {
	slug, ok := t.entries[key]
	return slug, ok
}

// Len returns the number of entries.
func (t *AssignmentTable) Len() int {
	return len(t.entries)
}

// Slugs returns the distinct slugs the table assigns, sorted.
func (t *AssignmentTable) Slugs() []string {
	seen := make(map[string]bool)
	for _, s := range t.entries {
		seen[s] = true
	}
	out := make([]string, 0, len(seen))
	for s := range seen {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}

// slugOwners inverts a declaration into slug -> partition.
func slugOwners(declared map[persona.Partition][]string) map[string]persona.Partition {
	owner := make(map[string]persona.Partition)
	for p, slugs := range declared {
		for _, s := range slugs {
			owner[s] = p
		}
	}
	return owner
}

// partitionOf maps an energy option to its partition. Unknown options are
// PartitionUnknown, which is treated like Either for fallback purposes.
func partitionOf(energyOption string) persona.Partition {
	p, err := persona.ParsePartition(energyOption)
	if err != nil {
		return persona.PartitionUnknown
	}
	return p
}
