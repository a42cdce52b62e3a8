// Copyright 2025 Forkful Labs
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


// Package forkful is an embedded recipe search and ranking engine.
package forkful

import (
	"context"
	"io"
	"log/slog"

	"github.com/forkful/forkful/config"
	"github.com/forkful/forkful/core"
	"github.com/forkful/forkful/index"
	"github.com/forkful/forkful/search"
	"github.com/forkful/forkful/storage"
	"github.com/forkful/forkful/storage/badger"
)

// Engine bundles the storage backend, the repositories and a searcher into
// one handle over a single recipe store.
type Engine struct {
	cfg         *config.Config
	backend     *badger.Backend
	recipeRepo  storage.RecipeRepository
	indexRepo   storage.IndexRepository
	profileRepo storage.ProfileRepository
	searcher    *search.Searcher
	logger      *slog.Logger
}

// EngineOption configures an Engine.
type EngineOption func(*engineOptions)

type engineOptions struct {
	searchOpts []search.Option
}

// WithSearchOptions passes options through to the engine's searcher.
func WithSearchOptions(opts ...search.Option) EngineOption {
	return func(o *engineOptions) {
		o.searchOpts = append(o.searchOpts, opts...)
	}
}

// Open opens an engine over the store at cfg.StorePath; an empty path opens
// an in-memory store. A nil cfg uses defaults.
func Open(cfg *config.Config, opts ...EngineOption) (*Engine, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	options := &engineOptions{}
	for _, opt := range opts {
		opt(options)
	}

	backend, err := badger.OpenBackend(cfg.StorePath, cfg.StorePath == "")
	if err != nil {
		return nil, err
	}

	recipeRepo := badger.NewRecipeRepository(backend)
	indexRepo := badger.NewIndexRepository(backend)
	profileRepo := badger.NewProfileRepository(backend)

	searcher, err := search.NewSearcher(indexRepo, recipeRepo, profileRepo, cfg, options.searchOpts...)
	if err != nil {
		profileRepo.Close()
		indexRepo.Close()
		recipeRepo.Close()
		backend.Close()
		return nil, err
	}

	return &Engine{
		cfg:         cfg,
		backend:     backend,
		recipeRepo:  recipeRepo,
		indexRepo:   indexRepo,
		profileRepo: profileRepo,
		searcher:    searcher,
		logger:      slog.Default(),
	}, nil
}

// Close releases the engine's resources.
func (e *Engine) Close() error {
	if err := e.profileRepo.Close(); err != nil {
		e.logger.Error("error closing profile repository", "err", err)
		return err
	}
	if err := e.indexRepo.Close(); err != nil {
		e.logger.Error("error closing index repository", "err", err)
		return err
	}
	if err := e.recipeRepo.Close(); err != nil {
		e.logger.Error("error closing recipe repository", "err", err)
		return err
	}
	if err := e.backend.Close(); err != nil {
		e.logger.Error("error closing backend storage", "err", err)
		return err
	}
	return nil
}

// Search runs a ranked recipe search.
func (e *Engine) Search(ctx context.Context, params search.Params) ([]core.RankedRecipe, error) {
	return e.searcher.Search(ctx, params)
}

// SearchWithMonitor runs a ranked recipe search with stage callbacks.
func (e *Engine) SearchWithMonitor(ctx context.Context, params search.Params, monitor search.SearchMonitor) ([]core.RankedRecipe, error) {
	return e.searcher.SearchWithMonitor(ctx, params, monitor)
}

// Index loads a recipe corpus from r and atomically publishes a freshly
// built corpus snapshot: recipe records and indices replace the previous
// generation as one unit, so a reindex fully supersedes the old corpus.
// Searches running concurrently keep serving the previous snapshot until
// the publish completes. Returns the number of recipes indexed and the
// number skipped as malformed.
func (e *Engine) Index(ctx context.Context, r io.Reader) (indexed, skipped int, err error) {
	recipes, err := index.LoadCorpus(r)
	if err != nil {
		return 0, 0, err
	}
	return e.IndexRecipes(ctx, recipes)
}

// IndexRecipes atomically publishes a freshly built corpus snapshot over
// the given recipes.
func (e *Engine) IndexRecipes(ctx context.Context, recipes []*core.Recipe) (indexed, skipped int, err error) {
	builderOpts := []index.Option{index.WithLogger(e.logger)}
	if e.cfg.IndexPoolSize > 0 {
		builderOpts = append(builderOpts, index.WithPoolSize(e.cfg.IndexPoolSize))
	}
	builder, err := index.NewBuilder(builderOpts...)
	if err != nil {
		return 0, 0, err
	}
	defer builder.Release()

	snapshot, skipped, err := builder.Build(ctx, recipes)
	if err != nil {
		return 0, skipped, err
	}
	if err := e.indexRepo.ReplaceIndex(ctx, snapshot); err != nil {
		return 0, skipped, err
	}

	e.logger.Info("corpus published", "recipes", len(snapshot.Recipes), "skipped", skipped)
	return len(snapshot.Recipes), skipped, nil
}

// RecipeRepository exposes the engine's recipe store.
func (e *Engine) RecipeRepository() storage.RecipeRepository {
	return e.recipeRepo
}

// ProfileRepository exposes the engine's profile store.
func (e *Engine) ProfileRepository() storage.ProfileRepository {
	return e.profileRepo
}
