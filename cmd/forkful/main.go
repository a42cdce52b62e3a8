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


package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/forkful/forkful"
	"github.com/forkful/forkful/config"
	"github.com/forkful/forkful/core"
	"github.com/forkful/forkful/search"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "forkful",
		Usage: "Recipe search and ranking engine",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:   "index",
				Usage:  "Load a recipe corpus and publish a fresh index over it",
				Action: indexCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "db",
						Aliases:  []string{"d"},
						Usage:    "Path to the store directory",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "corpus",
						Aliases:  []string{"c"},
						Usage:    "Path to the recipe corpus JSON file",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "config",
						Usage: "Path to a YAML configuration file",
					},
				},
			},
			{
				Name:   "search",
				Usage:  "Run a ranked recipe search",
				Action: searchCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "db",
						Aliases:  []string{"d"},
						Usage:    "Path to the store directory",
						Required: true,
					},
					&cli.StringFlag{
						Name:    "query",
						Aliases: []string{"q"},
						Usage:   "Free-text query",
					},
					&cli.StringFlag{
						Name:    "user",
						Aliases: []string{"u"},
						Usage:   "User id for personalization",
					},
					&cli.StringSliceFlag{
						Name:  "cuisine",
						Usage: "Hard cuisine filter (repeatable)",
					},
					&cli.StringSliceFlag{
						Name:  "diet",
						Usage: "Hard diet filter (repeatable)",
					},
					&cli.StringSliceFlag{
						Name:  "meal-type",
						Usage: "Hard meal type filter (repeatable)",
					},
					&cli.StringSliceFlag{
						Name:  "time-bucket",
						Usage: "Hard cook-time bucket filter: 0-15, 16-30, 31-60 or 60+ (repeatable)",
					},
					&cli.StringSliceFlag{
						Name:  "difficulty",
						Usage: "Hard difficulty filter: easy, medium or hard (repeatable)",
					},
					&cli.StringSliceFlag{
						Name:    "ingredient",
						Aliases: []string{"i"},
						Usage:   "On-hand ingredient for coverage scoring (repeatable)",
					},
					&cli.BoolFlag{
						Name:    "verbose",
						Aliases: []string{"v"},
						Usage:   "Print the intermediate search stages",
					},
					&cli.StringFlag{
						Name:  "config",
						Usage: "Path to a YAML configuration file",
					},
				},
			},
			{
				Name:  "profile",
				Usage: "Manage user personalization profiles",
				Subcommands: []*cli.Command{
					{
						Name:   "set",
						Usage:  "Create or replace a user profile",
						Action: profileSetCommand,
						Flags: []cli.Flag{
							&cli.StringFlag{
								Name:     "db",
								Aliases:  []string{"d"},
								Usage:    "Path to the store directory",
								Required: true,
							},
							&cli.StringFlag{
								Name:     "user",
								Aliases:  []string{"u"},
								Usage:    "User id",
								Required: true,
							},
							&cli.StringSliceFlag{
								Name:  "allergy",
								Usage: "Allergen to exclude unconditionally (repeatable)",
							},
							&cli.StringSliceFlag{
								Name:    "ingredient",
								Aliases: []string{"i"},
								Usage:   "Pantry ingredient (repeatable)",
							},
							&cli.StringSliceFlag{
								Name:  "prefer-cuisine",
								Usage: "Preferred cuisine (repeatable)",
							},
							&cli.StringSliceFlag{
								Name:  "prefer-diet",
								Usage: "Preferred diet (repeatable)",
							},
							&cli.StringSliceFlag{
								Name:  "prefer-meal-type",
								Usage: "Preferred meal type (repeatable)",
							},
						},
					},
					{
						Name:   "show",
						Usage:  "Print a user profile",
						Action: profileShowCommand,
						Flags: []cli.Flag{
							&cli.StringFlag{
								Name:     "db",
								Aliases:  []string{"d"},
								Usage:    "Path to the store directory",
								Required: true,
							},
							&cli.StringFlag{
								Name:     "user",
								Aliases:  []string{"u"},
								Usage:    "User id",
								Required: true,
							},
						},
					},
					{
						Name:   "delete",
						Usage:  "Delete a user profile",
						Action: profileDeleteCommand,
						Flags: []cli.Flag{
							&cli.StringFlag{
								Name:     "db",
								Aliases:  []string{"d"},
								Usage:    "Path to the store directory",
								Required: true,
							},
							&cli.StringFlag{
								Name:     "user",
								Aliases:  []string{"u"},
								Usage:    "User id",
								Required: true,
							},
						},
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func loadConfig(c *cli.Context) (*config.Config, error) {
	cfg := config.Default()
	if path := c.String("config"); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return nil, fmt.Errorf("invalid configuration: %w", err)
		}
		cfg = loaded
	}
	cfg.StorePath = c.String("db")
	return cfg, nil
}

func indexCommand(c *cli.Context) error {
	ctx := context.Background()

	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	corpus, err := os.Open(c.String("corpus"))
	if err != nil {
		return fmt.Errorf("failed to open corpus: %w", err)
	}
	defer corpus.Close()

	engine, err := forkful.Open(cfg)
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	defer engine.Close()

	indexed, skipped, err := engine.Index(ctx, corpus)
	if err != nil {
		return fmt.Errorf("indexing failed: %w", err)
	}

	fmt.Fprintf(os.Stderr, "Indexed %d recipes (%d skipped)\n", indexed, skipped)
	return nil
}

func searchCommand(c *cli.Context) error {
	ctx := context.Background()

	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	engine, err := forkful.Open(cfg)
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	defer engine.Close()

	params := search.Params{
		Query:  c.String("query"),
		UserId: c.String("user"),
		Filters: core.Filters{
			Cuisines:     c.StringSlice("cuisine"),
			Diets:        c.StringSlice("diet"),
			MealTypes:    c.StringSlice("meal-type"),
			TimeBuckets:  c.StringSlice("time-bucket"),
			Difficulties: c.StringSlice("difficulty"),
		},
		Ingredients: c.StringSlice("ingredient"),
	}

	var monitor search.SearchMonitor
	if c.Bool("verbose") {
		monitor = &stderrMonitor{}
	}

	results, err := engine.SearchWithMonitor(ctx, params, monitor)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if len(results) == 0 {
		fmt.Println("No recipes found.")
		return nil
	}
	for i, r := range results {
		fmt.Printf("%2d. %-40s %6.1f  (%d min, %s)\n",
			i+1, r.Recipe.Title, r.Score, r.Recipe.ReadyInMinutes, r.Recipe.Difficulty())
	}
	return nil
}

func profileSetCommand(c *cli.Context) error {
	ctx := context.Background()

	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	engine, err := forkful.Open(cfg)
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	defer engine.Close()

	profile := &core.UserProfile{
		UserId:      c.String("user"),
		Allergies:   c.StringSlice("allergy"),
		Ingredients: c.StringSlice("ingredient"),
		Preferences: core.Boosters{
			Cuisines:  c.StringSlice("prefer-cuisine"),
			Diets:     c.StringSlice("prefer-diet"),
			MealTypes: c.StringSlice("prefer-meal-type"),
		},
	}
	if err := engine.ProfileRepository().SaveProfile(ctx, profile); err != nil {
		return fmt.Errorf("failed to save profile: %w", err)
	}

	fmt.Fprintf(os.Stderr, "Profile %q saved\n", profile.UserId)
	return nil
}

func profileShowCommand(c *cli.Context) error {
	ctx := context.Background()

	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	engine, err := forkful.Open(cfg)
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	defer engine.Close()

	profile, err := engine.ProfileRepository().GetProfile(ctx, c.String("user"))
	if err != nil {
		return fmt.Errorf("failed to load profile: %w", err)
	}

	fmt.Printf("User:        %s\n", profile.UserId)
	fmt.Printf("Allergies:   %s\n", strings.Join(profile.Allergies, ", "))
	fmt.Printf("Pantry:      %s\n", strings.Join(profile.Ingredients, ", "))
	fmt.Printf("Cuisines:    %s\n", strings.Join(profile.Preferences.Cuisines, ", "))
	fmt.Printf("Diets:       %s\n", strings.Join(profile.Preferences.Diets, ", "))
	fmt.Printf("Meal types:  %s\n", strings.Join(profile.Preferences.MealTypes, ", "))
	fmt.Printf("Updated:     %s\n", profile.UpdatedAt.Format("2006-01-02 15:04:05"))
	return nil
}

func profileDeleteCommand(c *cli.Context) error {
	ctx := context.Background()

	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	engine, err := forkful.Open(cfg)
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	defer engine.Close()

	if err := engine.ProfileRepository().DeleteProfile(ctx, c.String("user")); err != nil {
		return fmt.Errorf("failed to delete profile: %w", err)
	}

	fmt.Fprintf(os.Stderr, "Profile %q deleted\n", c.String("user"))
	return nil
}

func setupLogger(c *cli.Context) error {
	levelStr := strings.ToLower(c.String("log-level"))

	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
