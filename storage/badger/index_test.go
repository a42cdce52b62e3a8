package badger

import (
	"context"
	"testing"

	"github.com/forkful/forkful/core"
	"github.com/forkful/forkful/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func snapshotFixture() *storage.IndexSnapshot {
	snapshot := storage.NewIndexSnapshot()
	snapshot.Postings[storage.CategoryTitle]["chicken"] = []core.ID{1, 2}
	snapshot.Postings[storage.CategoryTitle]["soup"] = []core.ID{1}
	snapshot.Postings[storage.CategoryIngredient]["chicken"] = []core.ID{1, 2}
	snapshot.Postings[storage.CategoryCuisine]["mexican"] = []core.ID{2}
	snapshot.Postings[storage.CategoryTimeBucket]["0-15"] = []core.ID{2}
	snapshot.DocFreq["chicken"] = 2
	snapshot.DocFreq["soup"] = 1
	snapshot.TotalDocs = 2
	return snapshot
}

func TestIndexRepository_ReplaceAndRead(t *testing.T) {
	backend, err := OpenBackend("", true)
	require.NoError(t, err)
	defer backend.Close()
	repo := NewIndexRepository(backend)
	ctx := context.Background()

	require.NoError(t, repo.ReplaceIndex(ctx, snapshotFixture()))

	ids, err := repo.Postings(ctx, storage.CategoryTitle, "chicken")
	require.NoError(t, err)
	assert.Equal(t, []core.ID{1, 2}, ids)

	ids, err = repo.Postings(ctx, storage.CategoryCuisine, "mexican")
	require.NoError(t, err)
	assert.Equal(t, []core.ID{2}, ids)

	df, err := repo.DocFrequency(ctx, "soup")
	require.NoError(t, err)
	assert.Equal(t, 1, df)

	total, err := repo.TotalDocs(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, total)
}

func TestIndexRepository_UnknownTerm(t *testing.T) {
	backend, err := OpenBackend("", true)
	require.NoError(t, err)
	defer backend.Close()
	repo := NewIndexRepository(backend)
	ctx := context.Background()

	require.NoError(t, repo.ReplaceIndex(ctx, snapshotFixture()))

	ids, err := repo.Postings(ctx, storage.CategoryTitle, "unicorn")
	require.NoError(t, err)
	assert.Empty(t, ids)

	df, err := repo.DocFrequency(ctx, "unicorn")
	require.NoError(t, err)
	assert.Zero(t, df)
}

func TestIndexRepository_ReadsBeforeFirstPublish(t *testing.T) {
	backend, err := OpenBackend("", true)
	require.NoError(t, err)
	defer backend.Close()
	repo := NewIndexRepository(backend)
	ctx := context.Background()

	ids, err := repo.Postings(ctx, storage.CategoryTitle, "chicken")
	require.NoError(t, err)
	assert.Empty(t, ids)

	total, err := repo.TotalDocs(ctx)
	require.NoError(t, err)
	assert.Zero(t, total)
}

func TestIndexRepository_ReplaceSupersedesFully(t *testing.T) {
	backend, err := OpenBackend("", true)
	require.NoError(t, err)
	defer backend.Close()
	repo := NewIndexRepository(backend)
	ctx := context.Background()

	require.NoError(t, repo.ReplaceIndex(ctx, snapshotFixture()))

	// The replacement drops "soup" entirely and rewrites "chicken".
	next := storage.NewIndexSnapshot()
	next.Postings[storage.CategoryTitle]["chicken"] = []core.ID{5}
	next.DocFreq["chicken"] = 1
	next.TotalDocs = 1
	require.NoError(t, repo.ReplaceIndex(ctx, next))

	ids, err := repo.Postings(ctx, storage.CategoryTitle, "chicken")
	require.NoError(t, err)
	assert.Equal(t, []core.ID{5}, ids)

	// Terms from the superseded snapshot are gone, not merged.
	ids, err = repo.Postings(ctx, storage.CategoryTitle, "soup")
	require.NoError(t, err)
	assert.Empty(t, ids)

	df, err := repo.DocFrequency(ctx, "soup")
	require.NoError(t, err)
	assert.Zero(t, df)

	total, err := repo.TotalDocs(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, total)
}

func TestIndexRepository_NilSnapshot(t *testing.T) {
	backend, err := OpenBackend("", true)
	require.NoError(t, err)
	defer backend.Close()
	repo := NewIndexRepository(backend)

	err = repo.ReplaceIndex(context.Background(), nil)
	assert.ErrorIs(t, err, storage.ErrEmptySnapshot)
}

func TestIndexRepository_GenerationSurvivesReopen(t *testing.T) {
	tmpDir := t.TempDir()
	ctx := context.Background()

	backend, err := OpenBackend(tmpDir, false)
	require.NoError(t, err)
	repo := NewIndexRepository(backend)
	require.NoError(t, repo.ReplaceIndex(ctx, snapshotFixture()))
	require.NoError(t, backend.Close())

	// A fresh repository resolves the published generation from disk.
	backend, err = OpenBackend(tmpDir, false)
	require.NoError(t, err)
	defer backend.Close()
	repo = NewIndexRepository(backend)

	total, err := repo.TotalDocs(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, total)

	ids, err := repo.Postings(ctx, storage.CategoryTimeBucket, "0-15")
	require.NoError(t, err)
	assert.Equal(t, []core.ID{2}, ids)
}
