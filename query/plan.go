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


// Package query parses a raw query string into explicit category hints and
// residual free-text search terms.
//
// Category matches ("vegan", "italian", "dinner", "under 30 minutes") become
// implicit boosters, never hard filters; the words they consume are removed
// from the token stream and whatever remains is the free-text term set used
// for title and ingredient matching.
package query

import (
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/forkful/forkful/core"
	"github.com/forkful/forkful/textnorm"
)

// Plan is the parsed form of a raw query.
type Plan struct {
	// Terms are the residual free-text tokens, normalized. May be empty when
	// the query consisted only of category words.
	Terms []string

	// Boosters are the implicit per-category preferences derived from the
	// query.
	Boosters core.Boosters
}

// timePattern matches explicit cook-time phrases like "under 30 minutes" or
// "in 15 min". It runs against the lowercased raw query, before
// normalization strips standalone numbers.
var timePattern = regexp.MustCompile(`\b(?:under|in|within)\s+(\d+)\s*(?:minutes?|mins?|min)\b`)

// Parse plans a raw query string.
func Parse(raw string) Plan {
	lower := strings.ToLower(strings.TrimSpace(raw))
	plan := Plan{}

	if m := timePattern.FindStringSubmatch(lower); m != nil {
		if minutes, err := strconv.Atoi(m[1]); err == nil {
			plan.Boosters.TimeBuckets = appendUnique(plan.Boosters.TimeBuckets, core.BucketTime(minutes))
		}
		lower = strings.Replace(lower, m[0], " ", 1)
	}

	tokens := textnorm.Tokens(lower)
	for i := 0; i < len(tokens); i++ {
		// Two-word vocabulary entries first ("gluten free", "main course").
		if i+1 < len(tokens) {
			bigram := tokens[i] + " " + tokens[i+1]
			if matched := matchCategory(&plan.Boosters, bigram); matched {
				i++
				continue
			}
		}

		token := tokens[i]
		if token == "quick" || token == "fast" {
			plan.Boosters.TimeBuckets = appendUnique(plan.Boosters.TimeBuckets, "0-15")
			continue
		}
		if matchCategory(&plan.Boosters, token) {
			continue
		}
		if fillerWords[token] {
			continue
		}
		plan.Terms = append(plan.Terms, token)
	}

	return plan
}

// matchCategory records term as a booster if it belongs to any category
// vocabulary. Returns true when the term was consumed.
func matchCategory(boosters *core.Boosters, term string) bool {
	if canonical, ok := cuisineVocab[term]; ok {
		boosters.Cuisines = appendUnique(boosters.Cuisines, canonical)
		return true
	}
	if canonical, ok := dietVocab[term]; ok {
		boosters.Diets = appendUnique(boosters.Diets, canonical)
		return true
	}
	if canonical, ok := mealTypeVocab[term]; ok {
		boosters.MealTypes = appendUnique(boosters.MealTypes, canonical)
		return true
	}
	if canonical, ok := difficultyVocab[term]; ok {
		boosters.Difficulties = appendUnique(boosters.Difficulties, canonical)
		return true
	}
	return false
}

func appendUnique(values []string, value string) []string {
	if slices.Contains(values, value) {
		return values
	}
	return append(values, value)
}
