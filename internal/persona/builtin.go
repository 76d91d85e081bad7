package persona

// builtinPersonas is the curated roster declaration shipped with each
// release. It is the "declared valid persona set": assignment tables and
// fallback orders may only name these slugs.
//
// Tags line up with the catalog option tags so the scoring path can rank
// these personas without an assignment table.
var builtinPersonas = []Persona{
	// --- Feminine ---
	{ID: "p01", Slug: "sienna", Name: "Sienna", IntensityLevel: 2, PartitionTag: PartitionFeminine,
		Tags: []string{"feminine", "clarity", "mindset", "gentle", "warm", "principles", "logic"}},
	{ID: "p02", Slug: "maya", Name: "Maya", IntensityLevel: 2, PartitionTag: PartitionFeminine,
		Tags: []string{"feminine", "emotions", "healing", "encouraging", "supportive", "belief", "reassurance"}},
	{ID: "p03", Slug: "aurora", Name: "Aurora", IntensityLevel: 1, PartitionTag: PartitionFeminine,
		Tags: []string{"feminine", "purpose", "meaning", "calm", "grounded", "belief", "faith"}},
	{ID: "p04", Slug: "ivy", Name: "Ivy", IntensityLevel: 4, PartitionTag: PartitionFeminine,
		Tags: []string{"feminine", "confidence", "courage", "direct", "candid", "accountability", "goals"}},
	{ID: "p05", Slug: "nora", Name: "Nora", IntensityLevel: 1, PartitionTag: PartitionFeminine,
		Tags: []string{"feminine", "clarity", "perspective", "calm", "steady", "small-steps", "habits"}},
	{ID: "p06", Slug: "luna", Name: "Luna", IntensityLevel: 1, PartitionTag: PartitionFeminine,
		Tags: []string{"feminine", "emotions", "self-compassion", "gentle", "compassionate", "small-steps", "routine"}},

	// --- Masculine ---
	{ID: "p07", Slug: "marcus", Name: "Marcus", IntensityLevel: 4, PartitionTag: PartitionMasculine,
		Tags: []string{"masculine", "clarity", "mindset", "direct", "challenging", "principles", "reasoning"}},
	{ID: "p08", Slug: "elias", Name: "Elias", IntensityLevel: 2, PartitionTag: PartitionMasculine,
		Tags: []string{"masculine", "emotions", "healing", "gentle", "warm", "belief", "reassurance"}},
	{ID: "p09", Slug: "theo", Name: "Theo", IntensityLevel: 3, PartitionTag: PartitionMasculine,
		Tags: []string{"masculine", "confidence", "growth", "encouraging", "upbeat", "small-steps", "habits"}},
	{ID: "p10", Slug: "jonah", Name: "Jonah", IntensityLevel: 2, PartitionTag: PartitionMasculine,
		Tags: []string{"masculine", "purpose", "direction", "calm", "grounded", "principles", "logic"}},
	{ID: "p11", Slug: "rowan", Name: "Rowan", IntensityLevel: 5, PartitionTag: PartitionMasculine,
		Tags: []string{"masculine", "confidence", "courage", "direct", "challenging", "accountability", "push"}},
	{ID: "p12", Slug: "kai", Name: "Kai", IntensityLevel: 3, PartitionTag: PartitionMasculine,
		Tags: []string{"masculine", "purpose", "meaning", "encouraging", "supportive", "small-steps", "routine"}},
}

// Builtin returns a fresh, fully active copy of the builtin roster.
func Builtin() []Persona {
	out := make([]Persona, len(builtinPersonas))
	for i, p := range builtinPersonas {
		c := p.Clone()
		c.Active = true
		out[i] = c
	}
	return out
}

// Declared returns the builtin slugs grouped by locked partition, in
// declaration order.
func Declared() map[Partition][]string {
	out := make(map[Partition][]string, 2)
	for _, p := range builtinPersonas {
		out[p.PartitionTag] = append(out[p.PartitionTag], p.Slug)
	}
	return out
}

// DeclaredPartition returns the partition a builtin slug is declared in.
func DeclaredPartition(slug string) (Partition, bool) {
	for _, p := range builtinPersonas {
		if p.Slug == slug {
			return p.PartitionTag, true
		}
	}
	return PartitionUnknown, false
}
