package query

// Category vocabularies the planner recognizes inside a free-text query.
// Keys are in normalized (lowercase, singular) form; values are the
// canonical term as the indexer stores it.

var cuisineVocab = map[string]string{
	"african":        "african",
	"american":       "american",
	"british":        "british",
	"cajun":          "cajun",
	"caribbean":      "caribbean",
	"chinese":        "chinese",
	"french":         "french",
	"german":         "german",
	"greek":          "greek",
	"indian":         "indian",
	"irish":          "irish",
	"italian":        "italian",
	"japanese":       "japanese",
	"korean":         "korean",
	"mediterranean":  "mediterranean",
	"mexican":        "mexican",
	"middle eastern": "middle eastern",
	"spanish":        "spanish",
	"thai":           "thai",
	"vietnamese":     "vietnamese",
}

var dietVocab = map[string]string{
	"vegan":       "vegan",
	"vegetarian":  "vegetarian",
	"pescetarian": "pescetarian",
	"paleo":       "paleo",
	"primal":      "primal",
	"whole30":     "whole30",
	"keto":        "ketogenic",
	"ketogenic":   "ketogenic",
	"gluten free": "gluten free",
	"dairy free":  "dairy free",
}

var mealTypeVocab = map[string]string{
	"breakfast":   "breakfast",
	"brunch":      "brunch",
	"lunch":       "lunch",
	"dinner":      "dinner",
	"dessert":     "dessert",
	"snack":       "snack",
	"appetizer":   "appetizer",
	"starter":     "appetizer",
	"salad":       "salad",
	"soup":        "soup",
	"side dish":   "side dish",
	"main course": "main course",
}

// Difficulty synonyms canonicalize to the three difficulty classes. The time
// pattern consumes "quick" and "fast" before this map is consulted, so they
// plan as a time-bucket preference, not a difficulty one.
var difficultyVocab = map[string]string{
	"easy":         "easy",
	"simple":       "easy",
	"effortless":   "easy",
	"hard":         "hard",
	"difficult":    "hard",
	"complex":      "hard",
	"advanced":     "hard",
	"challenging":  "hard",
	"medium":       "medium",
	"intermediate": "medium",
}

// Filler words stripped from queries before free-text matching.
var fillerWords = map[string]bool{
	"recipe":  true,
	"make":    true,
	"cooking": true,
	"cook":    true,
	"idea":    true,
}
