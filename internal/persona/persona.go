// Package persona defines the persona record, its compatibility partition,
// and the builtin roster declaration.
//
// Personas are owned by the roster collaborator. The matching engine only
// reads snapshots of them and never creates, mutates, or deletes one.
package persona

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// --- Partition enum ---

// Partition is the hard compatibility attribute of a persona.
//
// Feminine and Masculine are locked partitions: a resolution that starts in
// one of them never returns a persona from the other. Either is the
// partition-agnostic branch and may draw from both.
type Partition uint8

const (
	PartitionUnknown Partition = iota
	PartitionFeminine
	PartitionMasculine
	PartitionEither
)

// partitionNames maps partitions to their wire names. The wire names are
// also the option IDs of the energy dimension.
var partitionNames = map[Partition]string{
	PartitionFeminine:  "feminine",
	PartitionMasculine: "masculine",
	PartitionEither:    "either",
}

// Partitions lists every valid partition in declaration order.
var Partitions = []Partition{PartitionFeminine, PartitionMasculine, PartitionEither}

// String returns the wire name, or "unknown".
func (p Partition) String() string {
	if name, ok := partitionNames[p]; ok {
		return name
	}
	return "unknown"
}

// Locked reports whether fallback must stay inside this partition.
func (p Partition) Locked() bool {
	return p == PartitionFeminine || p == PartitionMasculine
}

// ParsePartition converts a wire name into a Partition.
func ParsePartition(s string) (Partition, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for p, n := range partitionNames {
		if n == name {
			return p, nil
		}
	}
	return PartitionUnknown, fmt.Errorf("invalid partition %q: must be one of: feminine, masculine, either", s)
}

// MarshalText implements encoding.TextMarshaler.
func (p Partition) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *Partition) UnmarshalText(text []byte) error {
	parsed, err := ParsePartition(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// UnmarshalYAML implements yaml.Unmarshaler so seed files can spell
// partitions by name.
func (p *Partition) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	return p.UnmarshalText([]byte(s))
}

// --- Persona ---

// Persona is one selectable persona in a roster snapshot.
type Persona struct {
	ID             string    `json:"id" yaml:"id"`
	Slug           string    `json:"slug" yaml:"slug"`
	Name           string    `json:"name" yaml:"name"`
	Tags           []string  `json:"tags" yaml:"tags"`
	IntensityLevel int       `json:"intensity_level" yaml:"intensity_level"`
	PartitionTag   Partition `json:"partition" yaml:"partition"`
	Active         bool      `json:"active" yaml:"active"`
}

// Clone returns a deep copy so callers can hand a persona out without
// sharing the backing tag array with the roster it came from.
func (p Persona) Clone() Persona {
	c := p
	if p.Tags != nil {
		c.Tags = make([]string, len(p.Tags))
		copy(c.Tags, p.Tags)
	}
	return c
}

// Validate checks the fields every roster entry must carry.
func (p Persona) Validate() error {
	if strings.TrimSpace(p.Slug) == "" {
		return fmt.Errorf("persona slug is required")
	}
	if !p.PartitionTag.Locked() {
		return fmt.Errorf("persona %q: partition must be feminine or masculine, got %s", p.Slug, p.PartitionTag)
	}
	if p.IntensityLevel < 0 {
		return fmt.Errorf("persona %q: intensity level must be >= 0", p.Slug)
	}
	if want, ok := DeclaredPartition(p.Slug); ok && want != p.PartitionTag {
		return fmt.Errorf("persona %q is declared %s, got %s", p.Slug, want, p.PartitionTag)
	}
	return nil
}

// FindActiveIn returns the first active persona in roster with the given
// slug. For a locked partition an entry tagged with any other partition is
// skipped; Either accepts every entry. The returned persona is a copy.
func FindActiveIn(roster []Persona, slug string, partition Partition) (Persona, bool) {
	for i := range roster {
		p := &roster[i]
		if !p.Active || p.Slug != slug {
			continue
		}
		if partition.Locked() && p.PartitionTag != partition {
			continue
		}
		return p.Clone(), true
	}
	return Persona{}, false
}

// AnyActive reports whether roster holds at least one active persona.
func AnyActive(roster []Persona) bool {
	for i := range roster {
		if roster[i].Active {
			return true
		}
	}
	return false
}
