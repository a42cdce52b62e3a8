package storage

import (
	"context"

	"github.com/forkful/forkful/core"
)

// IndexCategory names one of the inverted-index mappings. Title and
// ingredient postings are the two halves of the free-text token index; the
// remaining categories back the hard filters and boosters.
type IndexCategory string

const (
	CategoryTitle      IndexCategory = "title"
	CategoryIngredient IndexCategory = "ingredient"
	CategoryCuisine    IndexCategory = "cuisine"
	CategoryDiet       IndexCategory = "diet"
	CategoryMealType   IndexCategory = "mealtype"
	CategoryTimeBucket IndexCategory = "timebucket"
	CategoryDifficulty IndexCategory = "difficulty"
)

// Categories lists every index category in a stable order.
var Categories = []IndexCategory{
	CategoryTitle, CategoryIngredient, CategoryCuisine, CategoryDiet,
	CategoryMealType, CategoryTimeBucket, CategoryDifficulty,
}

// IndexSnapshot is the complete, finalized output of one index build: the
// validated recipe records, per-category term postings (sorted, deduplicated
// recipe ids) and the IDF statistics over the union of title and ingredient
// postings. A snapshot is immutable once built and replaces the previously
// published corpus as a whole; recipes and indices are never patched
// independently of each other.
type IndexSnapshot struct {
	Recipes   []*core.Recipe
	Postings  map[IndexCategory]map[string][]core.ID
	DocFreq   map[string]int
	TotalDocs int
}

// NewIndexSnapshot returns an empty snapshot with all category maps
// allocated.
func NewIndexSnapshot() *IndexSnapshot {
	postings := make(map[IndexCategory]map[string][]core.ID, len(Categories))
	for _, c := range Categories {
		postings[c] = make(map[string][]core.ID)
	}
	return &IndexSnapshot{
		Postings: postings,
		DocFreq:  make(map[string]int),
	}
}

// RecipeRepository provides read access to the published recipe corpus.
// Recipe records enter the store only through an index publish, so readers
// always see the corpus the current index was built from.
// Implementations must be safe for concurrent readers.
type RecipeRepository interface {
	// GetRecipe retrieves a single recipe by id.
	// Returns ErrNotFound if the recipe doesn't exist.
	GetRecipe(ctx context.Context, id core.ID) (*core.Recipe, error)

	// GetRecipes retrieves multiple recipes by id, preserving the order of
	// ids. Missing recipes are skipped, not an error.
	GetRecipes(ctx context.Context, ids ...core.ID) ([]*core.Recipe, error)

	// AllRecipeIDs returns every stored recipe id in ascending order.
	AllRecipeIDs(ctx context.Context) ([]core.ID, error)

	// CountRecipes returns the number of stored recipes.
	CountRecipes(ctx context.Context) (int, error)

	// Close releases repository resources.
	Close() error
}

// IndexRepository provides storage for the inverted indices and IDF
// statistics. Reads always resolve against the most recently published
// snapshot; a reader never observes a partially replaced index.
type IndexRepository interface {
	// ReplaceIndex atomically publishes a snapshot, recipe records
	// included, fully superseding any previously published corpus.
	ReplaceIndex(ctx context.Context, snapshot *IndexSnapshot) error

	// Postings returns the sorted recipe ids indexed under term in the
	// given category. An unknown term yields an empty slice, not an error.
	Postings(ctx context.Context, category IndexCategory, term string) ([]core.ID, error)

	// DocFrequency returns the number of recipes whose title or ingredient
	// tokens contain term. Unknown terms yield zero.
	DocFrequency(ctx context.Context, term string) (int, error)

	// TotalDocs returns the document count of the published index.
	TotalDocs(ctx context.Context) (int, error)

	// Close releases repository resources.
	Close() error
}

// ProfileRepository provides storage for user personalization profiles.
type ProfileRepository interface {
	// SaveProfile stores a profile, replacing any existing profile for the
	// same user id. Timestamps are populated automatically.
	SaveProfile(ctx context.Context, profile *core.UserProfile) error

	// GetProfile retrieves the profile for a user id.
	// Returns ErrNotFound if no profile exists.
	GetProfile(ctx context.Context, userId string) (*core.UserProfile, error)

	// DeleteProfile removes the profile for a user id.
	// Returns ErrNotFound if no profile exists.
	DeleteProfile(ctx context.Context, userId string) error

	// Close releases repository resources.
	Close() error
}
