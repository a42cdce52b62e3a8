package forkful

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/forkful/forkful/config"
	"github.com/forkful/forkful/core"
	"github.com/forkful/forkful/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const corpusJSON = `[
  {
    "id": 1,
    "title": "Chicken Noodle Soup",
    "readyInMinutes": 45,
    "cuisines": ["American"],
    "dishTypes": ["lunch", "soup"],
    "extendedIngredients": [
      {"id": 11, "name": "chicken breast", "amount": 2, "unit": "pieces"},
      {"id": 12, "name": "egg noodles", "amount": 200, "unit": "g"}
    ]
  },
  {
    "id": 2,
    "title": "Quick Chicken Tacos",
    "readyInMinutes": 15,
    "cuisines": ["Mexican"],
    "dishTypes": ["dinner"],
    "extendedIngredients": [
      {"id": 21, "name": "chicken thighs", "amount": 4, "unit": "pieces"},
      {"id": 22, "name": "corn tortillas", "amount": 8, "unit": "pieces"}
    ]
  },
  {
    "id": 3,
    "title": "Peanut Butter Cookies",
    "readyInMinutes": 25,
    "dishTypes": ["dessert"],
    "extendedIngredients": [
      {"id": 31, "name": "peanut butter", "amount": 1, "unit": "cup"},
      {"id": 32, "name": "flour", "amount": 2, "unit": "cups"}
    ]
  }
]`

func TestOpen(t *testing.T) {
	t.Run("create new engine", func(t *testing.T) {
		cfg := config.Default()
		cfg.StorePath = filepath.Join(t.TempDir(), "store")

		engine, err := Open(cfg)
		require.NoError(t, err)
		require.NotNil(t, engine)
		defer engine.Close()

		assert.NotNil(t, engine.RecipeRepository())
		assert.NotNil(t, engine.ProfileRepository())
		assert.NotNil(t, engine.backend)
		assert.NotNil(t, engine.logger)
	})

	t.Run("nil config uses defaults with in-memory store", func(t *testing.T) {
		engine, err := Open(nil)
		require.NoError(t, err)
		defer engine.Close()
	})

	t.Run("invalid config", func(t *testing.T) {
		cfg := config.Default()
		cfg.MaxResults = 0
		_, err := Open(cfg)
		assert.ErrorIs(t, err, config.ErrInvalidConfig)
	})

	t.Run("error with invalid path", func(t *testing.T) {
		tmpFile := filepath.Join(t.TempDir(), "not_a_dir")
		require.NoError(t, os.WriteFile(tmpFile, []byte("x"), 0644))

		cfg := config.Default()
		cfg.StorePath = tmpFile
		engine, err := Open(cfg)
		assert.Error(t, err)
		assert.Nil(t, engine)
	})
}

func TestEngine_Close(t *testing.T) {
	engine, err := Open(nil)
	require.NoError(t, err)

	assert.NoError(t, engine.Close())
}

func TestEngine_IndexAndSearch(t *testing.T) {
	engine, err := Open(nil)
	require.NoError(t, err)
	defer engine.Close()
	ctx := context.Background()

	indexed, skipped, err := engine.Index(ctx, strings.NewReader(corpusJSON))
	require.NoError(t, err)
	assert.Equal(t, 3, indexed)
	assert.Zero(t, skipped)

	results, err := engine.Search(ctx, search.Params{Query: "chicken"})
	require.NoError(t, err)
	require.Len(t, results, 2)
	for _, r := range results {
		assert.Contains(t, []core.ID{1, 2}, r.Recipe.Id)
	}
}

func TestEngine_IndexSkipsMalformed(t *testing.T) {
	engine, err := Open(nil)
	require.NoError(t, err)
	defer engine.Close()
	ctx := context.Background()

	corpus := `[
	  {"id": 1, "title": "Toast", "readyInMinutes": 5,
	   "extendedIngredients": [{"id": 11, "name": "bread"}]},
	  {"id": 2, "title": "", "readyInMinutes": 10,
	   "extendedIngredients": [{"id": 21, "name": "mystery"}]}
	]`
	indexed, skipped, err := engine.Index(ctx, strings.NewReader(corpus))
	require.NoError(t, err)
	assert.Equal(t, 1, indexed)
	assert.Equal(t, 1, skipped)

	// The malformed recipe is neither indexed nor stored.
	count, err := engine.RecipeRepository().CountRecipes(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestEngine_ReindexReplacesWholeIndex(t *testing.T) {
	engine, err := Open(nil)
	require.NoError(t, err)
	defer engine.Close()
	ctx := context.Background()

	_, _, err = engine.Index(ctx, strings.NewReader(corpusJSON))
	require.NoError(t, err)

	smaller := `[
	  {"id": 9, "title": "Garlic Bread", "readyInMinutes": 12,
	   "extendedIngredients": [{"id": 91, "name": "bread"}, {"id": 92, "name": "garlic"}]}
	]`
	_, _, err = engine.Index(ctx, strings.NewReader(smaller))
	require.NoError(t, err)

	// Terms from the superseded index no longer retrieve anything.
	results, err := engine.Search(ctx, search.Params{Query: "chicken"})
	require.NoError(t, err)
	assert.Empty(t, results)

	results, err = engine.Search(ctx, search.Params{Query: "garlic"})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, core.ID(9), results[0].Recipe.Id)

	// The recipe records themselves are superseded too: an unconstrained
	// search enumerates the published corpus, not leftovers from before.
	results, err = engine.Search(ctx, search.Params{})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, core.ID(9), results[0].Recipe.Id)

	count, err := engine.RecipeRepository().CountRecipes(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestEngine_PersonalizedSearch(t *testing.T) {
	engine, err := Open(nil)
	require.NoError(t, err)
	defer engine.Close()
	ctx := context.Background()

	_, _, err = engine.Index(ctx, strings.NewReader(corpusJSON))
	require.NoError(t, err)

	require.NoError(t, engine.ProfileRepository().SaveProfile(ctx, &core.UserProfile{
		UserId:    "alice",
		Allergies: []string{"peanut"},
	}))

	results, err := engine.Search(ctx, search.Params{UserId: "alice"})
	require.NoError(t, err)
	for _, r := range results {
		assert.NotEqual(t, core.ID(3), r.Recipe.Id,
			"peanut butter cookies must be excluded for alice")
	}
}
