package catalog

// defaultDimensions is the questionnaire shipped with this release.
//
// The energy options double as partition names (see persona.Partition).
var defaultDimensions = []Dimension{
	{
		ID:       DimensionEnergy,
		Question: "What kind of energy would you like your guide to have?",
		Weight:   1,
		Options: []Option{
			{ID: "feminine", Label: "Feminine energy", Tags: []string{"feminine"}},
			{ID: "masculine", Label: "Masculine energy", Tags: []string{"masculine"}},
			{ID: "either", Label: "No preference"},
		},
	},
	{
		ID:       DimensionFocus,
		Question: "What do you most want to work on right now?",
		Weight:   3,
		Options: []Option{
			{ID: "clarity_mindset", Label: "Clarity and mindset", Tags: []string{"clarity", "mindset", "perspective"}},
			{ID: "emotions_healing", Label: "Emotions and healing", Tags: []string{"emotions", "healing", "self-compassion"}},
			{ID: "confidence_growth", Label: "Confidence and growth", Tags: []string{"confidence", "growth", "courage"}},
			{ID: "purpose_direction", Label: "Purpose and direction", Tags: []string{"purpose", "direction", "meaning"}},
		},
	},
	{
		ID:       DimensionTone,
		Question: "How do you want to be spoken to?",
		Weight:   2,
		Options: []Option{
			{ID: "gentle_compassionate", Label: "Gentle and compassionate", Tags: []string{"gentle", "compassionate", "warm"}},
			{ID: "encouraging_supportive", Label: "Encouraging and supportive", Tags: []string{"encouraging", "supportive", "upbeat"}},
			{ID: "direct_challenging", Label: "Direct and challenging", Tags: []string{"direct", "challenging", "candid"}},
			{ID: "calm_grounded", Label: "Calm and grounded", Tags: []string{"calm", "grounded", "steady"}},
		},
	},
	{
		ID:       DimensionProgress,
		Question: "What helps you make progress?",
		Weight:   1,
		Options: []Option{
			{ID: "principles_logic", Label: "Principles and logic", Tags: []string{"principles", "logic", "reasoning"}},
			{ID: "belief_support", Label: "Someone who believes in me", Tags: []string{"belief", "reassurance", "faith"}},
			{ID: "small_steps", Label: "Small, steady steps", Tags: []string{"small-steps", "habits", "routine"}},
			{ID: "accountability_push", Label: "Accountability and a push", Tags: []string{"accountability", "goals", "push"}},
		},
	},
}

// Default returns the builtin catalog. It panics if the builtin
// declaration is invalid, which is a build defect.
func Default() *Catalog {
	c, err := New(defaultDimensions)
	if err != nil {
		panic(err)
	}
	return c
}
