package search

import (
	"strings"

	"github.com/forkful/forkful/core"
	"github.com/forkful/forkful/textnorm"
)

// flattenAllergens normalizes allergen terms into their space-free matching
// form. Terms that normalize to nothing are dropped here: an unmatchable
// allergen contributes no exclusions, it never fails the search. An empty
// term would otherwise substring-match every ingredient.
func flattenAllergens(allergens []string) []string {
	flat := make([]string, 0, len(allergens))
	for _, a := range allergens {
		if f := textnorm.Flat(a); f != "" {
			flat = append(flat, f)
		}
	}
	return flat
}

// matchAllergen reports the first allergen sharing a substring relationship
// (in either direction) with any of the recipe's ingredient names. Matching
// is over normalized, space-free forms, so "peanut" matches "peanut butter"
// and vice versa.
func matchAllergen(recipe *core.Recipe, flatAllergens []string) (string, bool) {
	if len(flatAllergens) == 0 {
		return "", false
	}
	for _, ingredient := range recipe.Ingredients {
		name := textnorm.Flat(ingredient.Name)
		if name == "" {
			continue
		}
		for _, allergen := range flatAllergens {
			if strings.Contains(name, allergen) || strings.Contains(allergen, name) {
				return allergen, true
			}
		}
	}
	return "", false
}
