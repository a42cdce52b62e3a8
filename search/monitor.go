package search

import (
	"github.com/forkful/forkful/core"
)

// SearchMonitor provides hooks to observe the search process.
// Implement this interface to track intermediate steps and results during search.
type SearchMonitor interface {
	Start(query string)
	AfterPlan(terms []string, boosters core.Boosters)
	AfterRetrieval(ids []core.ID)
	AllergenExcluded(recipe *core.Recipe, allergen string)
	ScoredCandidate(recipe *core.Recipe, score float64)
	Finish(results []core.RankedRecipe)
}

// noopMonitor is a no-op implementation of SearchMonitor
type noopMonitor struct{}

var _ SearchMonitor = (*noopMonitor)(nil)

func (n *noopMonitor) Start(_ string)                            {}
func (n *noopMonitor) AfterPlan(_ []string, _ core.Boosters)     {}
func (n *noopMonitor) AfterRetrieval(_ []core.ID)                {}
func (n *noopMonitor) AllergenExcluded(_ *core.Recipe, _ string) {}
func (n *noopMonitor) ScoredCandidate(_ *core.Recipe, _ float64) {}
func (n *noopMonitor) Finish(_ []core.RankedRecipe)              {}
