package badger

import (
	"context"
	"encoding/binary"
	"errors"

	"github.com/dgraph-io/badger/v4"
	"github.com/forkful/forkful/core"
	"github.com/forkful/forkful/storage"
)

// RecipeRepository implements storage.RecipeRepository for BadgerDB. It
// reads the recipe records of the published corpus generation; records are
// written by IndexRepository.ReplaceIndex as part of a publish, never here.
type RecipeRepository struct {
	backend *Backend
}

var _ storage.RecipeRepository = (*RecipeRepository)(nil)

// NewRecipeRepository creates a new RecipeRepository.
func NewRecipeRepository(backend *Backend) *RecipeRepository {
	return &RecipeRepository{backend: backend}
}

// Close releases repository resources.
func (r *RecipeRepository) Close() error {
	return nil
}

// GetRecipe retrieves a single recipe by id.
func (r *RecipeRepository) GetRecipe(ctx context.Context, id core.ID) (*core.Recipe, error) {
	gen, err := r.backend.currentGeneration()
	if err != nil {
		return nil, err
	}
	if gen == 0 {
		return nil, storage.ErrNotFound
	}

	var recipe *core.Recipe
	err = r.backend.WithTx(func(tx *badger.Txn) error {
		item, err := tx.Get(makeRecipeKey(gen, id))
		if err != nil {
			if errors.Is(err, badger.ErrKeyNotFound) {
				return storage.ErrNotFound
			}
			return err
		}
		return item.Value(func(val []byte) error {
			recipe, err = storage.UnmarshalRecipe(val)
			return err
		})
	}, false)
	if err != nil {
		return nil, err
	}
	return recipe, nil
}

// GetRecipes retrieves multiple recipes by id, preserving the order of ids.
// Missing recipes are skipped.
func (r *RecipeRepository) GetRecipes(ctx context.Context, ids ...core.ID) ([]*core.Recipe, error) {
	gen, err := r.backend.currentGeneration()
	if err != nil || gen == 0 {
		return nil, err
	}

	recipes := make([]*core.Recipe, 0, len(ids))
	err = r.backend.WithTx(func(tx *badger.Txn) error {
		for _, id := range ids {
			item, err := tx.Get(makeRecipeKey(gen, id))
			if err != nil {
				if errors.Is(err, badger.ErrKeyNotFound) {
					continue
				}
				return err
			}
			var recipe *core.Recipe
			err = item.Value(func(val []byte) error {
				recipe, err = storage.UnmarshalRecipe(val)
				return err
			})
			if err != nil {
				return err
			}
			recipes = append(recipes, recipe)
		}
		return nil
	}, false)
	if err != nil {
		return nil, err
	}
	return recipes, nil
}

// AllRecipeIDs returns every recipe id of the published corpus in ascending
// order. Keys carry the id in BigEndian, so iteration order is already
// ascending.
func (r *RecipeRepository) AllRecipeIDs(ctx context.Context) ([]core.ID, error) {
	gen, err := r.backend.currentGeneration()
	if err != nil || gen == 0 {
		return nil, err
	}

	var ids []core.ID
	prefix := recipeGenPrefix(gen)
	err = r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = prefix
		opts.PrefetchValues = false
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			key := iter.Item().Key()
			if len(key) != len(prefix)+8 {
				continue
			}
			ids = append(ids, core.ID(binary.BigEndian.Uint64(key[len(prefix):])))
		}
		return nil
	}, false)
	if err != nil {
		return nil, err
	}
	return ids, nil
}

// CountRecipes returns the number of recipes in the published corpus.
func (r *RecipeRepository) CountRecipes(ctx context.Context) (int, error) {
	ids, err := r.AllRecipeIDs(ctx)
	if err != nil {
		return 0, err
	}
	return len(ids), nil
}
