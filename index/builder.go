package index

import (
	"cmp"
	"context"
	"log/slog"
	"runtime"
	"slices"
	"sync"
	"sync/atomic"

	"github.com/forkful/forkful/core"
	"github.com/forkful/forkful/storage"
	"github.com/forkful/forkful/textnorm"
	"github.com/panjf2000/ants/v2"
)

// Builder turns a recipe corpus into an immutable index snapshot. Per-recipe
// analysis (tokenizing, normalizing, deriving difficulty and time bucket)
// fans out over a worker pool; term postings accumulate into dynamic sets
// and are finalized into sorted arrays only when the whole corpus has been
// processed, so nothing downstream ever observes in-progress state.
type Builder struct {
	pool   *ants.Pool
	logger *slog.Logger
}

// Option configures a Builder.
type Option func(*Builder) error

// WithPoolSize sets the worker pool size for concurrent recipe analysis.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(b *Builder) error {
		if size < 1 {
			size = 1
		}
		if b.pool != nil {
			b.pool.Release()
		}
		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}
		b.pool = pool
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(b *Builder) error {
		if logger == nil {
			logger = slog.Default()
		}
		b.logger = logger
		return nil
	}
}

// NewBuilder creates a new index builder.
func NewBuilder(opts ...Option) (*Builder, error) {
	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}
	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}

	b := &Builder{
		pool:   pool,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		if err := opt(b); err != nil {
			b.Release()
			return nil, err
		}
	}
	return b, nil
}

// Release releases the worker pool.
// The builder should not be used after calling Release.
func (b *Builder) Release() {
	if b.pool != nil {
		b.pool.Release()
	}
}

// accumulator collects the validated recipes and term -> recipe-id sets
// during the build pass.
type accumulator struct {
	mu      sync.Mutex
	recipes []*core.Recipe
	sets    map[storage.IndexCategory]map[string]map[core.ID]struct{}
}

func newAccumulator() *accumulator {
	sets := make(map[storage.IndexCategory]map[string]map[core.ID]struct{}, len(storage.Categories))
	for _, c := range storage.Categories {
		sets[c] = make(map[string]map[core.ID]struct{})
	}
	return &accumulator{sets: sets}
}

// merge folds one analyzed recipe into the accumulator.
func (a *accumulator) merge(recipe *core.Recipe, entries map[storage.IndexCategory][]string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.recipes = append(a.recipes, recipe)
	for category, terms := range entries {
		for _, term := range terms {
			set := a.sets[category][term]
			if set == nil {
				set = make(map[core.ID]struct{})
				a.sets[category][term] = set
			}
			set[recipe.Id] = struct{}{}
		}
	}
}

// Build analyzes the corpus and returns the finalized snapshot along with
// the number of skipped recipes. Malformed recipes are skipped with a
// warning, never fatal to the batch.
func (b *Builder) Build(ctx context.Context, recipes []*core.Recipe) (*storage.IndexSnapshot, int, error) {
	acc := newAccumulator()
	var skipped atomic.Int64
	var wg sync.WaitGroup

	// On any submit-path failure, drain the workers already in flight
	// before returning so none outlive the call.
	var submitErr error
	for _, recipe := range recipes {
		if err := ctx.Err(); err != nil {
			submitErr = err
			break
		}

		recipe := recipe
		wg.Add(1)
		err := b.pool.Submit(func() {
			defer wg.Done()
			if err := core.ValidateRecipe(recipe); err != nil {
				skipped.Add(1)
				b.logger.Warn("skipping malformed recipe", "id", recipe.Id, "err", err)
				return
			}
			acc.merge(recipe, analyzeRecipe(recipe))
		})
		if err != nil {
			wg.Done()
			submitErr = err
			break
		}
	}
	wg.Wait()

	if submitErr != nil {
		return nil, 0, submitErr
	}
	if err := ctx.Err(); err != nil {
		return nil, 0, err
	}
	return finalize(acc), int(skipped.Load()), nil
}

// analyzeRecipe produces the index entries for one recipe.
func analyzeRecipe(recipe *core.Recipe) map[storage.IndexCategory][]string {
	entries := make(map[storage.IndexCategory][]string, len(storage.Categories))

	entries[storage.CategoryTitle] = textnorm.Tokens(recipe.Title)
	for _, ingredient := range recipe.Ingredients {
		entries[storage.CategoryIngredient] = append(entries[storage.CategoryIngredient],
			textnorm.Tokens(ingredient.Name)...)
	}
	entries[storage.CategoryCuisine] = normalizeAll(recipe.Cuisines)
	entries[storage.CategoryDiet] = normalizeAll(recipe.Diets)
	entries[storage.CategoryMealType] = normalizeAll(recipe.DishTypes)
	entries[storage.CategoryTimeBucket] = []string{recipe.TimeBucket()}
	entries[storage.CategoryDifficulty] = []string{string(recipe.Difficulty())}

	return entries
}

func normalizeAll(values []string) []string {
	normalized := make([]string, 0, len(values))
	for _, v := range values {
		if n := textnorm.Normalize(v); n != "" {
			normalized = append(normalized, n)
		}
	}
	return normalized
}

// finalize converts the dynamic sets into an immutable snapshot with sorted,
// deduplicated postings and derives the IDF statistics over the union of
// title and ingredient postings. The validated recipes travel inside the
// snapshot so a publish replaces records and indices as one unit.
func finalize(acc *accumulator) *storage.IndexSnapshot {
	snapshot := storage.NewIndexSnapshot()
	slices.SortFunc(acc.recipes, func(a, b *core.Recipe) int {
		return cmp.Compare(a.Id, b.Id)
	})
	snapshot.Recipes = acc.recipes
	snapshot.TotalDocs = len(acc.recipes)

	for category, terms := range acc.sets {
		for term, set := range terms {
			ids := make([]core.ID, 0, len(set))
			for id := range set {
				ids = append(ids, id)
			}
			slices.Sort(ids)
			snapshot.Postings[category][term] = ids
		}
	}

	// df(term) = |title postings ∪ ingredient postings|
	for term, titleSet := range acc.sets[storage.CategoryTitle] {
		union := make(map[core.ID]struct{}, len(titleSet))
		for id := range titleSet {
			union[id] = struct{}{}
		}
		for id := range acc.sets[storage.CategoryIngredient][term] {
			union[id] = struct{}{}
		}
		snapshot.DocFreq[term] = len(union)
	}
	for term, ingSet := range acc.sets[storage.CategoryIngredient] {
		if _, seen := snapshot.DocFreq[term]; seen {
			continue
		}
		snapshot.DocFreq[term] = len(ingSet)
	}

	return snapshot
}
