package core

import (
	"encoding/binary"
	"time"

	"github.com/go-crypt/x/blake2b"
)

// ID is a unique identifier for domain entities.
// Corpus-supplied recipe ids are used verbatim; entities without a natural id
// (user profiles keyed by free-text user names) derive one from content.
type ID uint64

// IDFromContent generates a deterministic ID from text content using BLAKE2b hashing.
// This ensures that identical content produces identical IDs.
func IDFromContent(text string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// Difficulty classifies how demanding a recipe is to prepare.
// It is always derived, never taken from corpus input.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Ingredient is a single recipe ingredient.
// Amount and Unit are display-only; matching uses Name.
type Ingredient struct {
	Id     ID
	Name   string
	Amount float64
	Unit   string
}

// Recipe is a single corpus recipe.
//
// Cuisines, Diets and DishTypes carry the corpus values verbatim (normalized
// during indexing). Difficulty and the time bucket are computed from the other
// fields so that ranking stays deterministic across reindex runs. Image,
// Summary, Servings and SourceURL are opaque display fields and never
// participate in retrieval or scoring.
type Recipe struct {
	Id             ID
	Title          string
	ReadyInMinutes int
	Servings       int
	Image          string
	Summary        string
	SourceURL      string
	Cuisines       []string
	Diets          []string
	DishTypes      []string
	Ingredients    []Ingredient
}

// Difficulty derives the recipe's difficulty class.
func (r *Recipe) Difficulty() Difficulty {
	return ComputeDifficulty(r.Title, len(r.Ingredients), r.ReadyInMinutes)
}

// TimeBucket derives the recipe's cook-time bucket label.
func (r *Recipe) TimeBucket() string {
	return BucketTime(r.ReadyInMinutes)
}

// Filters are explicit, hard constraints on a search. A nil or empty slice
// imposes no constraint for that category; values within one category are
// alternatives (OR), categories combine with AND.
type Filters struct {
	Cuisines     []string
	Diets        []string
	MealTypes    []string
	TimeBuckets  []string
	Difficulties []string
}

// Empty reports whether no category carries a constraint.
func (f Filters) Empty() bool {
	return len(f.Cuisines) == 0 && len(f.Diets) == 0 && len(f.MealTypes) == 0 &&
		len(f.TimeBuckets) == 0 && len(f.Difficulties) == 0
}

// Boosters are soft per-category preferences. They share the Filters shape but
// only ever affect ranking score, never exclusion.
type Boosters struct {
	Cuisines     []string
	Diets        []string
	MealTypes    []string
	TimeBuckets  []string
	Difficulties []string
}

// Empty reports whether no category carries a preference.
func (b Boosters) Empty() bool {
	return len(b.Cuisines) == 0 && len(b.Diets) == 0 && len(b.MealTypes) == 0 &&
		len(b.TimeBuckets) == 0 && len(b.Difficulties) == 0
}

// Merge fills each empty category of b from fallback. Query-derived boosters
// take priority per category; stored user defaults only cover the gaps.
func (b Boosters) Merge(fallback Boosters) Boosters {
	merged := b
	if len(merged.Cuisines) == 0 {
		merged.Cuisines = fallback.Cuisines
	}
	if len(merged.Diets) == 0 {
		merged.Diets = fallback.Diets
	}
	if len(merged.MealTypes) == 0 {
		merged.MealTypes = fallback.MealTypes
	}
	if len(merged.TimeBuckets) == 0 {
		merged.TimeBuckets = fallback.TimeBuckets
	}
	if len(merged.Difficulties) == 0 {
		merged.Difficulties = fallback.Difficulties
	}
	return merged
}

// UserProfile is the per-user personalization snapshot read at search time.
// The profile service owns mutation; the engine only reads it.
type UserProfile struct {
	UserId      string
	Allergies   []string
	Ingredients []string
	Preferences Boosters
	InsertedAt  time.Time
	UpdatedAt   time.Time
}

// RankedRecipe is a scored search result.
type RankedRecipe struct {
	Recipe *Recipe
	Score  float64
}
