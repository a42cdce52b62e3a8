// Package config holds the engine configuration: store location, retrieval
// limits and the relevance-scoring weights.
//
// The scoring weights are heuristic tuning values. They are deliberately
// exposed as configuration rather than constants so they can be adjusted
// without a rebuild; the defaults are the values the engine has always
// shipped with.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig indicates a configuration that fails validation.
var ErrInvalidConfig = errors.New("invalid configuration")

// Weights holds the relevance-scoring weights.
type Weights struct {
	// Per-category booster weights, applied per matched preference value.
	Cuisine    float64 `yaml:"cuisine"`
	Diet       float64 `yaml:"diet"`
	MealType   float64 `yaml:"meal_type"`
	Difficulty float64 `yaml:"difficulty"`

	// TimeBucket is a flat bonus applied once when the recipe's cook time
	// falls inside a preferred bucket.
	TimeBucket float64 `yaml:"time_bucket"`

	// Ingredient coverage: IngredientMatch per matched request ingredient,
	// plus coverage*CoverageScale capped at CoverageCap.
	IngredientMatch float64 `yaml:"ingredient_match"`
	CoverageScale   float64 `yaml:"coverage_scale"`
	CoverageCap     float64 `yaml:"coverage_cap"`

	// TitleIDF scales the summed IDF of free-text terms found in the title.
	TitleIDF float64 `yaml:"title_idf"`
}

// Config is the engine configuration.
type Config struct {
	// StorePath is the BadgerDB directory. Empty means in-memory.
	StorePath string `yaml:"store_path"`

	// MaxCandidates bounds the retrieval candidate set.
	MaxCandidates int `yaml:"max_candidates"`

	// MaxResults bounds the final ranked result list.
	MaxResults int `yaml:"max_results"`

	// IndexPoolSize is the worker pool size for index builds.
	// Zero selects the builder default.
	IndexPoolSize int `yaml:"index_pool_size"`

	Weights Weights `yaml:"weights"`
}

// Default returns the configuration the engine ships with.
func Default() *Config {
	return &Config{
		MaxCandidates: 500,
		MaxResults:    10,
		Weights: Weights{
			Cuisine:         7,
			Diet:            25,
			MealType:        10,
			Difficulty:      8,
			TimeBucket:      20,
			IngredientMatch: 4,
			CoverageScale:   10,
			CoverageCap:     10,
			TitleIDF:        10,
		},
	}
}

// Load reads a YAML config file as an overlay on the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration for values the engine cannot run with.
func (c *Config) Validate() error {
	if c.MaxCandidates <= 0 {
		return fmt.Errorf("%w: max_candidates must be positive", ErrInvalidConfig)
	}
	if c.MaxResults <= 0 {
		return fmt.Errorf("%w: max_results must be positive", ErrInvalidConfig)
	}
	if c.MaxResults > c.MaxCandidates {
		return fmt.Errorf("%w: max_results cannot exceed max_candidates", ErrInvalidConfig)
	}
	if c.IndexPoolSize < 0 {
		return fmt.Errorf("%w: index_pool_size cannot be negative", ErrInvalidConfig)
	}
	return nil
}
