package persona

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// seedFile is the on-disk shape of a roster seed:
//
//	personas:
//	  - slug: sienna
//	    name: Sienna
//	    partition: feminine
//	    intensity_level: 2
//	    active: true
//	    tags: [clarity, gentle]
type seedFile struct {
	Personas []Persona `yaml:"personas"`
}

// LoadFile reads a YAML roster seed and validates every entry.
// Slugs must be unique within the file.
func LoadFile(path string) ([]Persona, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading roster seed %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes a YAML roster seed.
func Parse(data []byte) ([]Persona, error) {
	var f seedFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing roster seed: %w", err)
	}

	seen := make(map[string]bool, len(f.Personas))
	for i, p := range f.Personas {
		if err := p.Validate(); err != nil {
			return nil, fmt.Errorf("roster seed entry %d: %w", i, err)
		}
		if seen[p.Slug] {
			return nil, fmt.Errorf("roster seed entry %d: duplicate slug %q", i, p.Slug)
		}
		seen[p.Slug] = true
		if p.ID == "" {
			f.Personas[i].ID = p.Slug
		}
	}
	return f.Personas, nil
}
