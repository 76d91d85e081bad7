package matching

// defaultAssignments maps every canonical key of the default catalog to its
// ideal persona. Keys are energy|focus|tone|progress.
//
// The table is hand-curated. NewAssignmentTable rejects it at startup if
// it stops covering the catalog or crosses a locked partition.
var defaultAssignments = map[string]string{
	// --- feminine ---
	"feminine|clarity_mindset|gentle_compassionate|principles_logic":        "sienna",
	"feminine|clarity_mindset|gentle_compassionate|belief_support":          "sienna",
	"feminine|clarity_mindset|gentle_compassionate|small_steps":             "sienna",
	"feminine|clarity_mindset|gentle_compassionate|accountability_push":     "sienna",
	"feminine|clarity_mindset|encouraging_supportive|principles_logic":      "sienna",
	"feminine|clarity_mindset|encouraging_supportive|belief_support":        "sienna",
	"feminine|clarity_mindset|encouraging_supportive|small_steps":           "nora",
	"feminine|clarity_mindset|encouraging_supportive|accountability_push":   "sienna",
	"feminine|clarity_mindset|direct_challenging|principles_logic":          "sienna",
	"feminine|clarity_mindset|direct_challenging|belief_support":            "sienna",
	"feminine|clarity_mindset|direct_challenging|small_steps":               "nora",
	"feminine|clarity_mindset|direct_challenging|accountability_push":       "sienna",
	"feminine|clarity_mindset|calm_grounded|principles_logic":               "nora",
	"feminine|clarity_mindset|calm_grounded|belief_support":                 "nora",
	"feminine|clarity_mindset|calm_grounded|small_steps":                    "nora",
	"feminine|clarity_mindset|calm_grounded|accountability_push":            "nora",
	"feminine|emotions_healing|gentle_compassionate|principles_logic":       "luna",
	"feminine|emotions_healing|gentle_compassionate|belief_support":         "luna",
	"feminine|emotions_healing|gentle_compassionate|small_steps":            "luna",
	"feminine|emotions_healing|gentle_compassionate|accountability_push":    "luna",
	"feminine|emotions_healing|encouraging_supportive|principles_logic":     "maya",
	"feminine|emotions_healing|encouraging_supportive|belief_support":       "maya",
	"feminine|emotions_healing|encouraging_supportive|small_steps":          "maya",
	"feminine|emotions_healing|encouraging_supportive|accountability_push":  "maya",
	"feminine|emotions_healing|direct_challenging|principles_logic":         "maya",
	"feminine|emotions_healing|direct_challenging|belief_support":           "maya",
	"feminine|emotions_healing|direct_challenging|small_steps":              "luna",
	"feminine|emotions_healing|direct_challenging|accountability_push":      "maya",
	"feminine|emotions_healing|calm_grounded|principles_logic":              "maya",
	"feminine|emotions_healing|calm_grounded|belief_support":                "maya",
	"feminine|emotions_healing|calm_grounded|small_steps":                   "luna",
	"feminine|emotions_healing|calm_grounded|accountability_push":           "maya",
	"feminine|confidence_growth|gentle_compassionate|principles_logic":      "sienna",
	"feminine|confidence_growth|gentle_compassionate|belief_support":        "ivy",
	"feminine|confidence_growth|gentle_compassionate|small_steps":           "ivy",
	"feminine|confidence_growth|gentle_compassionate|accountability_push":   "ivy",
	"feminine|confidence_growth|encouraging_supportive|principles_logic":    "ivy",
	"feminine|confidence_growth|encouraging_supportive|belief_support":      "maya",
	"feminine|confidence_growth|encouraging_supportive|small_steps":         "ivy",
	"feminine|confidence_growth|encouraging_supportive|accountability_push": "ivy",
	"feminine|confidence_growth|direct_challenging|principles_logic":        "ivy",
	"feminine|confidence_growth|direct_challenging|belief_support":          "ivy",
	"feminine|confidence_growth|direct_challenging|small_steps":             "ivy",
	"feminine|confidence_growth|direct_challenging|accountability_push":     "ivy",
	"feminine|confidence_growth|calm_grounded|principles_logic":             "ivy",
	"feminine|confidence_growth|calm_grounded|belief_support":               "aurora",
	"feminine|confidence_growth|calm_grounded|small_steps":                  "ivy",
	"feminine|confidence_growth|calm_grounded|accountability_push":          "ivy",
	"feminine|purpose_direction|gentle_compassionate|principles_logic":      "sienna",
	"feminine|purpose_direction|gentle_compassionate|belief_support":        "aurora",
	"feminine|purpose_direction|gentle_compassionate|small_steps":           "aurora",
	"feminine|purpose_direction|gentle_compassionate|accountability_push":   "aurora",
	"feminine|purpose_direction|encouraging_supportive|principles_logic":    "aurora",
	"feminine|purpose_direction|encouraging_supportive|belief_support":      "aurora",
	"feminine|purpose_direction|encouraging_supportive|small_steps":         "aurora",
	"feminine|purpose_direction|encouraging_supportive|accountability_push": "aurora",
	"feminine|purpose_direction|direct_challenging|principles_logic":        "aurora",
	"feminine|purpose_direction|direct_challenging|belief_support":          "aurora",
	"feminine|purpose_direction|direct_challenging|small_steps":             "aurora",
	"feminine|purpose_direction|direct_challenging|accountability_push":     "aurora",
	"feminine|purpose_direction|calm_grounded|principles_logic":             "aurora",
	"feminine|purpose_direction|calm_grounded|belief_support":               "aurora",
	"feminine|purpose_direction|calm_grounded|small_steps":                  "aurora",
	"feminine|purpose_direction|calm_grounded|accountability_push":          "aurora",

	// --- masculine ---
	"masculine|clarity_mindset|gentle_compassionate|principles_logic":        "marcus",
	"masculine|clarity_mindset|gentle_compassionate|belief_support":          "marcus",
	"masculine|clarity_mindset|gentle_compassionate|small_steps":             "marcus",
	"masculine|clarity_mindset|gentle_compassionate|accountability_push":     "marcus",
	"masculine|clarity_mindset|encouraging_supportive|principles_logic":      "marcus",
	"masculine|clarity_mindset|encouraging_supportive|belief_support":        "marcus",
	"masculine|clarity_mindset|encouraging_supportive|small_steps":           "marcus",
	"masculine|clarity_mindset|encouraging_supportive|accountability_push":   "marcus",
	"masculine|clarity_mindset|direct_challenging|principles_logic":          "marcus",
	"masculine|clarity_mindset|direct_challenging|belief_support":            "marcus",
	"masculine|clarity_mindset|direct_challenging|small_steps":               "marcus",
	"masculine|clarity_mindset|direct_challenging|accountability_push":       "marcus",
	"masculine|clarity_mindset|calm_grounded|principles_logic":               "marcus",
	"masculine|clarity_mindset|calm_grounded|belief_support":                 "marcus",
	"masculine|clarity_mindset|calm_grounded|small_steps":                    "marcus",
	"masculine|clarity_mindset|calm_grounded|accountability_push":            "marcus",
	"masculine|emotions_healing|gentle_compassionate|principles_logic":       "elias",
	"masculine|emotions_healing|gentle_compassionate|belief_support":         "elias",
	"masculine|emotions_healing|gentle_compassionate|small_steps":            "elias",
	"masculine|emotions_healing|gentle_compassionate|accountability_push":    "elias",
	"masculine|emotions_healing|encouraging_supportive|principles_logic":     "elias",
	"masculine|emotions_healing|encouraging_supportive|belief_support":       "elias",
	"masculine|emotions_healing|encouraging_supportive|small_steps":          "elias",
	"masculine|emotions_healing|encouraging_supportive|accountability_push":  "elias",
	"masculine|emotions_healing|direct_challenging|principles_logic":         "marcus",
	"masculine|emotions_healing|direct_challenging|belief_support":           "elias",
	"masculine|emotions_healing|direct_challenging|small_steps":              "elias",
	"masculine|emotions_healing|direct_challenging|accountability_push":      "elias",
	"masculine|emotions_healing|calm_grounded|principles_logic":              "elias",
	"masculine|emotions_healing|calm_grounded|belief_support":                "elias",
	"masculine|emotions_healing|calm_grounded|small_steps":                   "elias",
	"masculine|emotions_healing|calm_grounded|accountability_push":           "elias",
	"masculine|confidence_growth|gentle_compassionate|principles_logic":      "theo",
	"masculine|confidence_growth|gentle_compassionate|belief_support":        "elias",
	"masculine|confidence_growth|gentle_compassionate|small_steps":           "theo",
	"masculine|confidence_growth|gentle_compassionate|accountability_push":   "rowan",
	"masculine|confidence_growth|encouraging_supportive|principles_logic":    "theo",
	"masculine|confidence_growth|encouraging_supportive|belief_support":      "theo",
	"masculine|confidence_growth|encouraging_supportive|small_steps":         "theo",
	"masculine|confidence_growth|encouraging_supportive|accountability_push": "theo",
	"masculine|confidence_growth|direct_challenging|principles_logic":        "rowan",
	"masculine|confidence_growth|direct_challenging|belief_support":          "rowan",
	"masculine|confidence_growth|direct_challenging|small_steps":             "rowan",
	"masculine|confidence_growth|direct_challenging|accountability_push":     "rowan",
	"masculine|confidence_growth|calm_grounded|principles_logic":             "theo",
	"masculine|confidence_growth|calm_grounded|belief_support":               "theo",
	"masculine|confidence_growth|calm_grounded|small_steps":                  "theo",
	"masculine|confidence_growth|calm_grounded|accountability_push":          "rowan",
	"masculine|purpose_direction|gentle_compassionate|principles_logic":      "jonah",
	"masculine|purpose_direction|gentle_compassionate|belief_support":        "elias",
	"masculine|purpose_direction|gentle_compassionate|small_steps":           "kai",
	"masculine|purpose_direction|gentle_compassionate|accountability_push":   "jonah",
	"masculine|purpose_direction|encouraging_supportive|principles_logic":    "kai",
	"masculine|purpose_direction|encouraging_supportive|belief_support":      "kai",
	"masculine|purpose_direction|encouraging_supportive|small_steps":         "kai",
	"masculine|purpose_direction|encouraging_supportive|accountability_push": "kai",
	"masculine|purpose_direction|direct_challenging|principles_logic":        "jonah",
	"masculine|purpose_direction|direct_challenging|belief_support":          "jonah",
	"masculine|purpose_direction|direct_challenging|small_steps":             "kai",
	"masculine|purpose_direction|direct_challenging|accountability_push":     "jonah",
	"masculine|purpose_direction|calm_grounded|principles_logic":             "jonah",
	"masculine|purpose_direction|calm_grounded|belief_support":               "jonah",
	"masculine|purpose_direction|calm_grounded|small_steps":                  "jonah",
	"masculine|purpose_direction|calm_grounded|accountability_push":          "jonah",

	// --- either ---
	"either|clarity_mindset|gentle_compassionate|principles_logic":        "sienna",
	"either|clarity_mindset|gentle_compassionate|belief_support":          "sienna",
	"either|clarity_mindset|gentle_compassionate|small_steps":             "sienna",
	"either|clarity_mindset|gentle_compassionate|accountability_push":     "sienna",
	"either|clarity_mindset|encouraging_supportive|principles_logic":      "sienna",
	"either|clarity_mindset|encouraging_supportive|belief_support":        "sienna",
	"either|clarity_mindset|encouraging_supportive|small_steps":           "nora",
	"either|clarity_mindset|encouraging_supportive|accountability_push":   "sienna",
	"either|clarity_mindset|direct_challenging|principles_logic":          "marcus",
	"either|clarity_mindset|direct_challenging|belief_support":            "marcus",
	"either|clarity_mindset|direct_challenging|small_steps":               "marcus",
	"either|clarity_mindset|direct_challenging|accountability_push":       "marcus",
	"either|clarity_mindset|calm_grounded|principles_logic":               "nora",
	"either|clarity_mindset|calm_grounded|belief_support":                 "nora",
	"either|clarity_mindset|calm_grounded|small_steps":                    "nora",
	"either|clarity_mindset|calm_grounded|accountability_push":            "nora",
	"either|emotions_healing|gentle_compassionate|principles_logic":       "elias",
	"either|emotions_healing|gentle_compassionate|belief_support":         "elias",
	"either|emotions_healing|gentle_compassionate|small_steps":            "luna",
	"either|emotions_healing|gentle_compassionate|accountability_push":    "elias",
	"either|emotions_healing|encouraging_supportive|principles_logic":     "maya",
	"either|emotions_healing|encouraging_supportive|belief_support":       "maya",
	"either|emotions_healing|encouraging_supportive|small_steps":          "maya",
	"either|emotions_healing|encouraging_supportive|accountability_push":  "maya",
	"either|emotions_healing|direct_challenging|principles_logic":         "marcus",
	"either|emotions_healing|direct_challenging|belief_support":           "maya",
	"either|emotions_healing|direct_challenging|small_steps":              "luna",
	"either|emotions_healing|direct_challenging|accountability_push":      "maya",
	"either|emotions_healing|calm_grounded|principles_logic":              "maya",
	"either|emotions_healing|calm_grounded|belief_support":                "maya",
	"either|emotions_healing|calm_grounded|small_steps":                   "luna",
	"either|emotions_healing|calm_grounded|accountability_push":           "maya",
	"either|confidence_growth|gentle_compassionate|principles_logic":      "sienna",
	"either|confidence_growth|gentle_compassionate|belief_support":        "elias",
	"either|confidence_growth|gentle_compassionate|small_steps":           "theo",
	"either|confidence_growth|gentle_compassionate|accountability_push":   "ivy",
	"either|confidence_growth|encouraging_supportive|principles_logic":    "theo",
	"either|confidence_growth|encouraging_supportive|belief_support":      "theo",
	"either|confidence_growth|encouraging_supportive|small_steps":         "theo",
	"either|confidence_growth|encouraging_supportive|accountability_push": "theo",
	"either|confidence_growth|direct_challenging|principles_logic":        "ivy",
	"either|confidence_growth|direct_challenging|belief_support":          "ivy",
	"either|confidence_growth|direct_challenging|small_steps":             "ivy",
	"either|confidence_growth|direct_challenging|accountability_push":     "ivy",
	"either|confidence_growth|calm_grounded|principles_logic":             "theo",
	"either|confidence_growth|calm_grounded|belief_support":               "aurora",
	"either|confidence_growth|calm_grounded|small_steps":                  "theo",
	"either|confidence_growth|calm_grounded|accountability_push":          "ivy",
	"either|purpose_direction|gentle_compassionate|principles_logic":      "jonah",
	"either|purpose_direction|gentle_compassionate|belief_support":        "aurora",
	"either|purpose_direction|gentle_compassionate|small_steps":           "kai",
	"either|purpose_direction|gentle_compassionate|accountability_push":   "aurora",
	"either|purpose_direction|encouraging_supportive|principles_logic":    "kai",
	"either|purpose_direction|encouraging_supportive|belief_support":      "kai",
	"either|purpose_direction|encouraging_supportive|small_steps":         "kai",
	"either|purpose_direction|encouraging_supportive|accountability_push": "kai",
	"either|purpose_direction|direct_challenging|principles_logic":        "jonah",
	"either|purpose_direction|direct_challenging|belief_support":          "aurora",
	"either|purpose_direction|direct_challenging|small_steps":             "kai",
	"either|purpose_direction|direct_challenging|accountability_push":     "aurora",
	"either|purpose_direction|calm_grounded|principles_logic":             "jonah",
	"either|purpose_direction|calm_grounded|belief_support":               "aurora",
	"either|purpose_direction|calm_grounded|small_steps":                  "aurora",
	"either|purpose_direction|calm_grounded|accountability_push":          "aurora",
}
