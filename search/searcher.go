package search

import (
	"context"
	"errors"
	"log/slog"
	"slices"
	"sort"
	"time"

	"github.com/forkful/forkful/config"
	"github.com/forkful/forkful/core"
	"github.com/forkful/forkful/query"
	"github.com/forkful/forkful/storage"
	"github.com/forkful/forkful/textnorm"
)

// Searcher serves ranked, filtered, personalized recipe queries against a
// published index.
type Searcher struct {
	indexRepo   storage.IndexRepository
	recipeRepo  storage.RecipeRepository
	profileRepo storage.ProfileRepository // nil disables personalization
	cfg         *config.Config
	timeOfDay   TimeOfDayTable
	clock       func() time.Time
	logger      *slog.Logger
}

// Option configures a Searcher.
type Option func(*Searcher) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Searcher) error {
		if logger == nil {
			logger = slog.Default()
		}
		s.logger = logger
		return nil
	}
}

// WithClock sets the wall-clock source for the time-of-day bonus.
// Default is time.Now. Tests inject a fixed clock to make scoring
// reproducible.
func WithClock(clock func() time.Time) Option {
	return func(s *Searcher) error {
		if clock == nil {
			clock = time.Now
		}
		s.clock = clock
		return nil
	}
}

// WithTimeOfDayTable overrides the time-of-day bonus table.
func WithTimeOfDayTable(table TimeOfDayTable) Option {
	return func(s *Searcher) error {
		if table == nil {
			table = DefaultTimeOfDayTable()
		}
		s.timeOfDay = table
		return nil
	}
}

// NewSearcher creates a new searcher. The profile repository may be nil, in
// which case every search runs unpersonalized.
func NewSearcher(
	indexRepo storage.IndexRepository,
	recipeRepo storage.RecipeRepository,
	profileRepo storage.ProfileRepository,
	cfg *config.Config,
	opts ...Option,
) (*Searcher, error) {
	if indexRepo == nil {
		return nil, ErrIndexRepositoryRequired
	}
	if recipeRepo == nil {
		return nil, ErrRecipeRepositoryRequired
	}
	if cfg == nil {
		cfg = config.Default()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	s := &Searcher{
		indexRepo:   indexRepo,
		recipeRepo:  recipeRepo,
		profileRepo: profileRepo,
		cfg:         cfg,
		timeOfDay:   DefaultTimeOfDayTable(),
		clock:       time.Now,
		logger:      slog.Default(),
	}

	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// Params are the inputs of one search call.
type Params struct {
	// Query is the raw free-text query. May be empty.
	Query string

	// Filters are explicit hard constraints.
	Filters core.Filters

	// UserId selects the personalization profile. Empty or unknown ids
	// simply disable personalization.
	UserId string

	// Ingredients are ad-hoc request ingredients, combined with the
	// profile's pantry for coverage scoring.
	Ingredients []string
}

// Search runs a full query: plan, retrieve, allergen-exclude, score, rank.
// Returns up to MaxResults recipes ordered by descending score. Storage
// errors fail the whole search; no partial result is ever returned.
func (s *Searcher) Search(ctx context.Context, params Params) ([]core.RankedRecipe, error) {
	return s.SearchWithMonitor(ctx, params, nil)
}

// SearchWithMonitor runs a search with stage callbacks for observability.
func (s *Searcher) SearchWithMonitor(ctx context.Context, params Params, monitor SearchMonitor) ([]core.RankedRecipe, error) {
	// Use noop monitor if none provided
	if monitor == nil {
		monitor = &noopMonitor{}
	}

	monitor.Start(params.Query)

	// 1. Plan the query into free-text terms and implicit boosters.
	plan := query.Parse(params.Query)
	monitor.AfterPlan(plan.Terms, plan.Boosters)

	// 2. Resolve filters and free text into a bounded candidate set.
	ids, err := s.retrieve(ctx, plan.Terms, params.Filters)
	if err != nil {
		s.logger.Error("error retrieving candidates", "query", params.Query, "err", err)
		return nil, err
	}
	monitor.AfterRetrieval(ids)

	recipes, err := s.recipeRepo.GetRecipes(ctx, ids...)
	if err != nil {
		s.logger.Error("error loading candidate recipes", "candidateCount", len(ids), "err", err)
		return nil, err
	}

	// 3. Profile snapshot. Absence is not an error, it just disables
	// personalization.
	profile, err := s.loadProfile(ctx, params.UserId)
	if err != nil {
		s.logger.Error("error loading user profile", "userId", params.UserId, "err", err)
		return nil, err
	}

	// 4. Allergen exclusion. Unconditional: no filter, booster or query
	// content can bypass it.
	flatAllergens := flattenAllergens(profile.Allergies)
	kept := make([]*core.Recipe, 0, len(recipes))
	for _, recipe := range recipes {
		if allergen, excluded := matchAllergen(recipe, flatAllergens); excluded {
			monitor.AllergenExcluded(recipe, allergen)
			continue
		}
		kept = append(kept, recipe)
	}

	// 5. Score. Query-derived boosters win per category; stored preferences
	// fill the gaps.
	boosters := plan.Boosters.Merge(profile.Preferences)

	sc, err := s.buildScoreContext(ctx, plan.Terms, params, profile, boosters)
	if err != nil {
		s.logger.Error("error loading index statistics", "err", err)
		return nil, err
	}

	results := make([]core.RankedRecipe, 0, len(kept))
	for _, recipe := range kept {
		score := s.scoreCandidate(recipe, sc)
		monitor.ScoredCandidate(recipe, score)
		results = append(results, core.RankedRecipe{Recipe: recipe, Score: score})
	}

	// Sort by score descending; the stable sort keeps retrieval order on
	// ties.
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	if len(results) > s.cfg.MaxResults {
		results = results[:s.cfg.MaxResults]
	}
	monitor.Finish(results)

	return results, nil
}

// retrieve resolves free-text terms and explicit filters into a bounded,
// ascending-id candidate set. Filter categories combine with AND; the title
// and ingredient indices combine with OR across terms. No constraints at all
// degenerates to "all recipes", still bounded by MaxCandidates.
func (s *Searcher) retrieve(ctx context.Context, terms []string, filters core.Filters) ([]core.ID, error) {
	var candidates map[core.ID]struct{}

	if len(terms) > 0 {
		tokenSet := make(map[core.ID]struct{})
		for _, term := range terms {
			for _, category := range []storage.IndexCategory{storage.CategoryTitle, storage.CategoryIngredient} {
				ids, err := s.indexRepo.Postings(ctx, category, term)
				if err != nil {
					return nil, err
				}
				for _, id := range ids {
					tokenSet[id] = struct{}{}
				}
			}
		}
		candidates = tokenSet
	}

	categoryValues := []struct {
		category storage.IndexCategory
		values   []string
	}{
		{storage.CategoryCuisine, normalizeSet(filters.Cuisines)},
		{storage.CategoryDiet, normalizeSet(filters.Diets)},
		{storage.CategoryMealType, normalizeSet(filters.MealTypes)},
		{storage.CategoryTimeBucket, filters.TimeBuckets},
		{storage.CategoryDifficulty, normalizeSet(filters.Difficulties)},
	}
	for _, cf := range categoryValues {
		if len(cf.values) == 0 {
			continue
		}
		set := make(map[core.ID]struct{})
		for _, value := range cf.values {
			ids, err := s.indexRepo.Postings(ctx, cf.category, value)
			if err != nil {
				return nil, err
			}
			for _, id := range ids {
				set[id] = struct{}{}
			}
		}
		if candidates == nil {
			candidates = set
			continue
		}
		candidates = intersect(candidates, set)
	}

	var ids []core.ID
	if candidates == nil {
		all, err := s.recipeRepo.AllRecipeIDs(ctx)
		if err != nil {
			return nil, err
		}
		ids = all
	} else {
		ids = make([]core.ID, 0, len(candidates))
		for id := range candidates {
			ids = append(ids, id)
		}
		slices.Sort(ids)
	}

	if len(ids) > s.cfg.MaxCandidates {
		ids = ids[:s.cfg.MaxCandidates]
	}
	return ids, nil
}

func (s *Searcher) loadProfile(ctx context.Context, userId string) (*core.UserProfile, error) {
	if userId == "" || s.profileRepo == nil {
		return &core.UserProfile{}, nil
	}
	profile, err := s.profileRepo.GetProfile(ctx, userId)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return &core.UserProfile{}, nil
		}
		return nil, err
	}
	return profile, nil
}

func (s *Searcher) buildScoreContext(
	ctx context.Context,
	terms []string,
	params Params,
	profile *core.UserProfile,
	boosters core.Boosters,
) (*scoreContext, error) {
	totalDocs, err := s.indexRepo.TotalDocs(ctx)
	if err != nil {
		return nil, err
	}
	docFreq := make(map[string]int, len(terms))
	for _, term := range terms {
		df, err := s.indexRepo.DocFrequency(ctx, term)
		if err != nil {
			return nil, err
		}
		docFreq[term] = df
	}

	return &scoreContext{
		terms:              terms,
		requestIngredients: flattenIngredients(params.Ingredients, profile.Ingredients),
		boosters:           boosters,
		mealConstrained:    len(params.Filters.MealTypes) > 0 || len(boosters.MealTypes) > 0,
		docFreq:            docFreq,
		totalDocs:          totalDocs,
		period:             PeriodOf(s.clock()),
	}, nil
}

// flattenIngredients combines ad-hoc and pantry ingredients into deduplicated
// normalized space-free matching forms.
func flattenIngredients(adHoc, pantry []string) []string {
	seen := make(map[string]bool, len(adHoc)+len(pantry))
	flat := make([]string, 0, len(adHoc)+len(pantry))
	for _, ingredient := range append(slices.Clone(adHoc), pantry...) {
		f := textnorm.Flat(ingredient)
		if f == "" || seen[f] {
			continue
		}
		seen[f] = true
		flat = append(flat, f)
	}
	return flat
}

func intersect(a, b map[core.ID]struct{}) map[core.ID]struct{} {
	if len(b) < len(a) {
		a, b = b, a
	}
	out := make(map[core.ID]struct{}, len(a))
	for id := range a {
		if _, ok := b[id]; ok {
			out[id] = struct{}{}
		}
	}
	return out
}
