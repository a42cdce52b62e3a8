package badger

import (
	"context"
	"errors"
	"log/slog"

	"github.com/dgraph-io/badger/v4"
	"github.com/forkful/forkful/core"
	"github.com/forkful/forkful/storage"
)

// IndexRepository implements storage.IndexRepository for BadgerDB.
//
// Every published snapshot, recipe records included, is written under a
// fresh generation number; the single small pointer key flip at the end is
// what makes the publish atomic. Readers resolve the current generation per
// call, so a search running concurrently with a reindex sees either the old
// corpus or the new one, never a mix.
type IndexRepository struct {
	backend *Backend
	logger  *slog.Logger
}

var _ storage.IndexRepository = (*IndexRepository)(nil)

// NewIndexRepository creates a new IndexRepository.
func NewIndexRepository(backend *Backend) *IndexRepository {
	return &IndexRepository{
		backend: backend,
		logger:  slog.Default(),
	}
}

// Close releases repository resources.
func (r *IndexRepository) Close() error {
	return nil
}

// ReplaceIndex atomically publishes a snapshot, fully superseding any
// previously published corpus: recipe records, postings and IDF statistics
// all move to the new generation together. The superseded generation is
// dropped afterwards; failure to drop it is logged, not fatal, since
// readers can no longer reach it.
func (r *IndexRepository) ReplaceIndex(ctx context.Context, snapshot *storage.IndexSnapshot) error {
	if snapshot == nil {
		return storage.ErrEmptySnapshot
	}

	oldGen, err := r.backend.currentGeneration()
	if err != nil {
		return err
	}
	newGen := oldGen + 1

	wb := r.backend.NewWriteBatch()
	defer wb.Cancel()

	for _, recipe := range snapshot.Recipes {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := wb.Set(makeRecipeKey(newGen, recipe.Id), storage.MarshalRecipe(recipe)); err != nil {
			return err
		}
	}
	for category, terms := range snapshot.Postings {
		for term, ids := range terms {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := wb.Set(makePostingKey(newGen, category, term), storage.MarshalPostings(ids)); err != nil {
				return err
			}
		}
	}
	for term, df := range snapshot.DocFreq {
		if err := wb.Set(makeDocFreqKey(newGen, term), storage.MarshalCount(df)); err != nil {
			return err
		}
	}
	if err := wb.Set(makeTotalDocsKey(newGen), storage.MarshalCount(snapshot.TotalDocs)); err != nil {
		return err
	}
	if err := wb.Flush(); err != nil {
		return err
	}

	// The publish point: readers switch to the new generation here.
	if err := r.backend.publishGeneration(newGen); err != nil {
		return err
	}

	if oldGen > 0 {
		if err := r.backend.DropPrefix(generationPrefixes(oldGen)...); err != nil {
			r.logger.Warn("failed to drop superseded corpus generation", "generation", oldGen, "err", err)
		}
	}
	return nil
}

// Postings returns the sorted recipe ids indexed under term in the given
// category. Unknown terms yield an empty slice.
func (r *IndexRepository) Postings(ctx context.Context, category storage.IndexCategory, term string) ([]core.ID, error) {
	gen, err := r.backend.currentGeneration()
	if err != nil || gen == 0 {
		return nil, err
	}

	var ids []core.ID
	err = r.backend.WithTx(func(tx *badger.Txn) error {
		item, err := tx.Get(makePostingKey(gen, category, term))
		if err != nil {
			if errors.Is(err, badger.ErrKeyNotFound) {
				return nil
			}
			return err
		}
		return item.Value(func(val []byte) error {
			ids, err = storage.UnmarshalPostings(val)
			return err
		})
	}, false)
	if err != nil {
		return nil, err
	}
	return ids, nil
}

// DocFrequency returns the number of recipes whose title or ingredient
// tokens contain term. Unknown terms yield zero.
func (r *IndexRepository) DocFrequency(ctx context.Context, term string) (int, error) {
	gen, err := r.backend.currentGeneration()
	if err != nil || gen == 0 {
		return 0, err
	}
	return r.readCount(makeDocFreqKey(gen, term))
}

// TotalDocs returns the document count of the published index, or zero when
// no index has been published yet.
func (r *IndexRepository) TotalDocs(ctx context.Context) (int, error) {
	gen, err := r.backend.currentGeneration()
	if err != nil || gen == 0 {
		return 0, err
	}
	return r.readCount(makeTotalDocsKey(gen))
}

func (r *IndexRepository) readCount(key []byte) (int, error) {
	var count int
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		item, err := tx.Get(key)
		if err != nil {
			if errors.Is(err, badger.ErrKeyNotFound) {
				return nil
			}
			return err
		}
		return item.Value(func(val []byte) error {
			count, err = storage.UnmarshalCount(val)
			return err
		})
	}, false)
	return count, err
}
