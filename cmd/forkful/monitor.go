package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/forkful/forkful/core"
)

// stderrMonitor prints each search stage to stderr for --verbose runs.
type stderrMonitor struct{}

func (m *stderrMonitor) Start(query string) {
	fmt.Fprintf(os.Stderr, "query: %q\n", query)
}

func (m *stderrMonitor) AfterPlan(terms []string, boosters core.Boosters) {
	fmt.Fprintf(os.Stderr, "plan: terms=[%s]", strings.Join(terms, " "))
	if len(boosters.Cuisines) > 0 {
		fmt.Fprintf(os.Stderr, " cuisines=%v", boosters.Cuisines)
	}
	if len(boosters.Diets) > 0 {
		fmt.Fprintf(os.Stderr, " diets=%v", boosters.Diets)
	}
	if len(boosters.MealTypes) > 0 {
		fmt.Fprintf(os.Stderr, " mealTypes=%v", boosters.MealTypes)
	}
	if len(boosters.TimeBuckets) > 0 {
		fmt.Fprintf(os.Stderr, " timeBuckets=%v", boosters.TimeBuckets)
	}
	if len(boosters.Difficulties) > 0 {
		fmt.Fprintf(os.Stderr, " difficulties=%v", boosters.Difficulties)
	}
	fmt.Fprintln(os.Stderr)
}

func (m *stderrMonitor) AfterRetrieval(ids []core.ID) {
	fmt.Fprintf(os.Stderr, "retrieved %d candidates\n", len(ids))
}

func (m *stderrMonitor) AllergenExcluded(recipe *core.Recipe, allergen string) {
	fmt.Fprintf(os.Stderr, "excluded %q (allergen %q)\n", recipe.Title, allergen)
}

func (m *stderrMonitor) ScoredCandidate(recipe *core.Recipe, score float64) {
	fmt.Fprintf(os.Stderr, "scored %q: %.2f\n", recipe.Title, score)
}

func (m *stderrMonitor) Finish(results []core.RankedRecipe) {
	fmt.Fprintf(os.Stderr, "returning %d results\n", len(results))
}
