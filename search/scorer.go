package search

import (
	"math"
	"slices"
	"strings"

	"github.com/forkful/forkful/core"
	"github.com/forkful/forkful/textnorm"
)

// scoreContext carries the per-search inputs the scorer needs. Scoring is
// pure: identical contexts produce identical scores.
type scoreContext struct {
	terms              []string
	requestIngredients []string // normalized space-free forms, deduplicated
	boosters           core.Boosters
	mealConstrained    bool
	docFreq            map[string]int
	totalDocs          int
	period             Period
}

// scoreCandidate accumulates the six independent relevance signals for one
// candidate.
func (s *Searcher) scoreCandidate(recipe *core.Recipe, sc *scoreContext) float64 {
	w := s.cfg.Weights
	var score float64

	// Title relevance: IDF-weighted free-text matches, so rarer terms weigh
	// more.
	if len(sc.terms) > 0 && sc.totalDocs > 0 {
		titleTokens := make(map[string]bool)
		for _, token := range textnorm.Tokens(recipe.Title) {
			titleTokens[token] = true
		}
		var idfSum float64
		for _, term := range sc.terms {
			if !titleTokens[term] {
				continue
			}
			if df := sc.docFreq[term]; df > 0 {
				idfSum += math.Log(float64(sc.totalDocs) / float64(df))
			}
		}
		score += idfSum * w.TitleIDF
	}

	dishTypes := normalizeSet(recipe.DishTypes)

	// Time-of-day bonus, suppressed whenever the meal type is already
	// constrained by a filter or booster.
	if !sc.mealConstrained {
		score += s.timeOfDay.bonus(sc.period, dishTypes)
	}

	// Ingredient coverage against the combined ad-hoc and pantry set.
	if len(sc.requestIngredients) > 0 && len(recipe.Ingredients) > 0 {
		matched := 0
		for _, ingredient := range recipe.Ingredients {
			flat := textnorm.Flat(ingredient.Name)
			if flat == "" {
				continue
			}
			for _, request := range sc.requestIngredients {
				if strings.Contains(flat, request) || strings.Contains(request, flat) {
					matched++
					break
				}
			}
		}
		coverage := float64(matched) / float64(len(recipe.Ingredients))
		score += float64(matched)*w.IngredientMatch + math.Min(coverage*w.CoverageScale, w.CoverageCap)
	}

	// Category boosters.
	score += w.Cuisine * countMatches(sc.boosters.Cuisines, normalizeSet(recipe.Cuisines))
	score += w.Diet * countMatches(sc.boosters.Diets, normalizeSet(recipe.Diets))
	score += w.MealType * countMatches(sc.boosters.MealTypes, dishTypes)
	if slices.Contains(sc.boosters.Difficulties, string(recipe.Difficulty())) {
		score += w.Difficulty
	}

	// Time bucket contributes a flat bonus once, on the first preferred
	// bucket the recipe's cook time satisfies.
	bucket := recipe.TimeBucket()
	for _, preferred := range sc.boosters.TimeBuckets {
		if preferred == bucket {
			score += w.TimeBucket
			break
		}
	}

	return score
}

// countMatches counts how many preferred values the recipe carries.
func countMatches(preferred, have []string) float64 {
	if len(preferred) == 0 || len(have) == 0 {
		return 0
	}
	var count float64
	for _, p := range preferred {
		if slices.Contains(have, p) {
			count++
		}
	}
	return count
}

func normalizeSet(values []string) []string {
	normalized := make([]string, 0, len(values))
	for _, v := range values {
		if n := textnorm.Normalize(v); n != "" {
			normalized = append(normalized, n)
		}
	}
	return normalized
}
