// Package catalog describes the questionnaire: its dimensions, their
// closed option sets, and the canonical order keys are built in.
//
// Option sets never change shape within a release. The assignment table is
// validated against the Cartesian product of every dimension's options, so
// adding an option here without extending the table fails at startup.
package catalog

import (
	"fmt"
	"strings"
)

// KeyDelimiter separates option IDs inside a canonical key.
const KeyDelimiter = "|"

// DimensionID names one questionnaire axis.
type DimensionID string

const (
	DimensionEnergy   DimensionID = "energy"
	DimensionFocus    DimensionID = "focus"
	DimensionTone     DimensionID = "tone"
	DimensionProgress DimensionID = "progress"
)

// Option is one legal answer for a dimension.
type Option struct {
	ID    string   `json:"id" yaml:"id"`
	Label string   `json:"label" yaml:"label"`
	Tags  []string `json:"tags,omitempty" yaml:"tags"`
}

// Dimension is one questionnaire axis.
type Dimension struct {
	ID       DimensionID `json:"id" yaml:"id"`
	Question string      `json:"question" yaml:"question"`
	Weight   int         `json:"weight" yaml:"weight"` // scoring weight, 0 disables the dimension in scoring
	Options  []Option    `json:"options" yaml:"options"`
}

// Catalog is an immutable, validated questionnaire description.
type Catalog struct {
	dims    []Dimension
	index   map[DimensionID]int
	options map[DimensionID]map[string]int
}

// New validates dims and builds a Catalog. Dimension order is the
// canonical key order.
func New(dims []Dimension) (*Catalog, error) {
	if len(dims) == 0 {
		return nil, fmt.Errorf("catalog: at least one dimension is required")
	}

	c := &Catalog{
		dims:    make([]Dimension, len(dims)),
		index:   make(map[DimensionID]int, len(dims)),
		options: make(map[DimensionID]map[string]int, len(dims)),
	}

	for i, d := range dims {
		if strings.TrimSpace(string(d.ID)) == "" {
			return nil, fmt.Errorf("catalog: dimension %d has an empty id", i)
		}
		if _, dup := c.index[d.ID]; dup {
			return nil, fmt.Errorf("catalog: duplicate dimension %q", d.ID)
		}
		if len(d.Options) == 0 {
			return nil, fmt.Errorf("catalog: dimension %q has no options", d.ID)
		}
		if d.Weight < 0 {
			return nil, fmt.Errorf("catalog: dimension %q has negative weight %d", d.ID, d.Weight)
		}

		opts := make(map[string]int, len(d.Options))
		for j, o := range d.Options {
			if strings.TrimSpace(o.ID) == "" {
				return nil, fmt.Errorf("catalog: dimension %q option %d has an empty id", d.ID, j)
			}
			if strings.Contains(o.ID, KeyDelimiter) {
				return nil, fmt.Errorf("catalog: option %q in %q contains the key delimiter %q", o.ID, d.ID, KeyDelimiter)
			}
			if _, dup := opts[o.ID]; dup {
				return nil, fmt.Errorf("catalog: duplicate option %q in dimension %q", o.ID, d.ID)
			}
			opts[o.ID] = j
		}

		c.dims[i] = cloneDimension(d)
		c.index[d.ID] = i
		c.options[d.ID] = opts
	}

	return c, nil
}

// Dimensions returns a copy of the dimensions in canonical order.
func (c *Catalog) Dimensions() []Dimension {
	out := make([]Dimension, len(c.dims))
	for i, d := range c.dims {
		out[i] = cloneDimension(d)
	}
	return out
}

// Order returns the dimension IDs in canonical key order.
func (c *Catalog) Order() []DimensionID {
	out := make([]DimensionID, len(c.dims))
	for i, d := range c.dims {
		out[i] = d.ID
	}
	return out
}

// Dimension looks up a dimension by ID.
func (c *Catalog) Dimension(id DimensionID) (Dimension, bool) {
	i, ok := c.index[id]
	if !ok {
		return Dimension{}, false
	}
	return cloneDimension(c.dims[i]), true
}

// HasDimension reports whether id is part of the catalog.
func (c *Catalog) HasDimension(id DimensionID) bool {
	_, ok := c.index[id]
	return ok
}

// HasOption reports whether option is legal for dimension.
func (c *Catalog) HasOption(dim DimensionID, option string) bool {
	_, ok := c.options[dim][option]
	return ok
}

// OptionTags returns the default tags of an option, or nil if the option
// is unknown. The returned slice is a copy.
func (c *Catalog) OptionTags(dim DimensionID, option string) []string {
	i, ok := c.index[dim]
	if !ok {
		return nil
	}
	j, ok := c.options[dim][option]
	if !ok {
		return nil
	}
	tags := c.dims[i].Options[j].Tags
	out := make([]string, len(tags))
	copy(out, tags)
	return out
}

// Weight returns the scoring weight of a dimension, 0 if unknown.
func (c *Catalog) Weight(dim DimensionID) int {
	i, ok := c.index[dim]
	if !ok {
		return 0
	}
	return c.dims[i].Weight
}

// Size is the number of distinct answer tuples: the product of every
// dimension's option count.
func (c *Catalog) Size() int {
	n := 1
	for _, d := range c.dims {
		n *= len(d.Options)
	}
	return n
}

// Keys enumerates every canonical key of the combinatorial space, in
// catalog order with the last dimension varying fastest.
func (c *Catalog) Keys() []string {
	keys := make([]string, 0, c.Size())
	parts := make([]string, len(c.dims))

	var walk func(depth int)
	walk = func(depth int) {
		if depth == len(c.dims) {
			keys = append(keys, strings.Join(parts, KeyDelimiter))
			return
		}
		for _, o := range c.dims[depth].Options {
			parts[depth] = o.ID
			walk(depth + 1)
		}
	}
	walk(0)

	return keys
}

// SplitKey breaks a canonical key into dimension -> option. It returns false
// when the key does not have one legal option per dimension.
func (c *Catalog) SplitKey(key string) (map[DimensionID]string, bool) {
	parts := strings.Split(key, KeyDelimiter)
	if len(parts) != len(c.dims) {
		return nil, false
	}
	out := make(map[DimensionID]string, len(parts))
	for i, d := range c.dims {
		if !c.HasOption(d.ID, parts[i]) {
			return nil, false
		}
		out[d.ID] = parts[i]
	}
	return out, true
}

func cloneDimension(d Dimension) Dimension {
	c := d
	c.Options = make([]Option, len(d.Options))
	for i, o := range d.Options {
		c.Options[i] = o
		if o.Tags != nil {
			c.Options[i].Tags = append([]string(nil), o.Tags...)
		}
	}
	return c
}
